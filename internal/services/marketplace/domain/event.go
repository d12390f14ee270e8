package domain

import "time"

// EventType identifies a marketplace audit event.
type EventType string

const (
	EventListingCreated   EventType = "LISTING_CREATED"
	EventListingCancelled EventType = "LISTING_CANCELLED"
	EventSaleExecuted     EventType = "SALE_EXECUTED"
	EventBidPlaced        EventType = "BID_PLACED"
	EventBidCancelled     EventType = "BID_CANCELLED"
	EventBidAccepted      EventType = "BID_ACCEPTED"
)

// Event is one audit record appended by a marketplace state transition.
type Event struct {
	ID      string
	Type    EventType
	NFTMint string
	// Actor initiated the transition; Counterparty is the other side of a
	// settlement, when present.
	Actor        string
	Counterparty string
	Price        uint64
	Quantity     uint64
	ListingID    string
	BidID        string
	CreatedAt    time.Time
}
