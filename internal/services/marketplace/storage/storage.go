// Package storage defines persistence contracts for marketplace state.
//
// Mutating operations are transactional: a listing or bid mutation, its
// ledger transfers, and its audit event commit together or not at all.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/flypxyz/marketplace/internal/services/marketplace/core/filter"
	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrInsufficientFunds indicates a debited account lacks the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBalanceOverflow indicates a credit would overflow an account balance.
	ErrBalanceOverflow = errors.New("balance overflow")
)

// TokenAccount tracks one owner's balance for one mint.
type TokenAccount struct {
	Owner     string
	Mint      string
	Balance   uint64
	UpdatedAt time.Time
}

// ListQuery describes one page request over a filtered collection.
type ListQuery struct {
	PageSize  int
	PageToken string
	Filter    filter.SQLCondition
	// Descending reverses the scan order. Only honored by event listings.
	Descending bool
}

// ListingPage is one page of listings.
type ListingPage struct {
	Listings      []domain.Listing
	NextPageToken string
}

// BidPage is one page of bids.
type BidPage struct {
	Bids          []domain.Bid
	NextPageToken string
}

// EventPage is one page of audit events.
type EventPage struct {
	Events        []domain.Event
	NextPageToken string
}

// SaleExecution applies one settled sale: ledger transfers, the listing
// quantity decrement (or close at zero), and the audit event.
type SaleExecution struct {
	ListingID         string
	RemainingQuantity uint64
	Transfers         []domain.Transfer
	Event             domain.Event
}

// BidAcceptance applies one accepted bid: ledger transfers, bid removal,
// and the audit event.
type BidAcceptance struct {
	BidID     string
	Transfers []domain.Transfer
	Event     domain.Event
}

// MintStore persists registered mints and their royalty creators.
type MintStore interface {
	CreateMint(ctx context.Context, mint domain.Mint) error
	GetMint(ctx context.Context, address string) (domain.Mint, error)
}

// TokenAccountStore persists ledger balances.
type TokenAccountStore interface {
	Deposit(ctx context.Context, owner, mint string, amount uint64, at time.Time) (TokenAccount, error)
	GetTokenAccount(ctx context.Context, owner, mint string) (TokenAccount, error)
}

// ListingStore persists listings together with their escrow movements.
type ListingStore interface {
	CreateListing(ctx context.Context, listing domain.Listing, escrow domain.Transfer, event domain.Event) error
	GetListing(ctx context.Context, listingID string) (domain.Listing, error)
	ListListings(ctx context.Context, query ListQuery) (ListingPage, error)
	CancelListing(ctx context.Context, listingID string, refund domain.Transfer, event domain.Event) error
	ExecuteSale(ctx context.Context, sale SaleExecution) error
}

// BidStore persists bids together with their escrow movements.
type BidStore interface {
	PlaceBid(ctx context.Context, bid domain.Bid, escrow domain.Transfer, event domain.Event) error
	GetBid(ctx context.Context, bidID string) (domain.Bid, error)
	ListBids(ctx context.Context, query ListQuery) (BidPage, error)
	CancelBid(ctx context.Context, bidID string, refund domain.Transfer, event domain.Event) error
	AcceptBid(ctx context.Context, acceptance BidAcceptance) error
}

// EventStore reads the audit trail.
type EventStore interface {
	ListEvents(ctx context.Context, query ListQuery) (EventPage, error)
}
