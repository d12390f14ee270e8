package domain

import (
	"time"

	"github.com/flypxyz/marketplace/internal/platform/errors"
	"github.com/flypxyz/marketplace/internal/platform/id"
)

// Listing is an offer to sell a quantity of an NFT mint at a fixed price.
// The listed quantity is escrowed from the seller's token account until the
// listing is cancelled or sold out.
type Listing struct {
	ID        string
	Seller    string
	NFTMint   string
	Price     uint64
	Quantity  uint64
	CreatedAt time.Time
	// ExpiresAt is zero when the listing never expires.
	ExpiresAt time.Time
}

// CreateListingInput describes the fields needed to create a listing.
type CreateListingInput struct {
	Seller    string
	NFTMint   string
	Price     uint64
	Quantity  uint64
	ExpiresAt time.Time
}

// CreateListing validates input and returns a listing with a generated ID.
func CreateListing(input CreateListingInput, now func() time.Time, idGenerator func() (string, error)) (Listing, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	if input.Seller == "" {
		return Listing{}, errors.New(errors.CodeListingEmptySeller, "seller is required")
	}
	if input.NFTMint == "" {
		return Listing{}, errors.New(errors.CodeListingEmptyMint, "nft mint is required")
	}
	if input.Price == 0 {
		return Listing{}, errors.New(errors.CodeListingInvalidPrice, "price must be greater than zero")
	}
	if input.Quantity == 0 {
		return Listing{}, errors.New(errors.CodeListingInvalidQuantity, "quantity must be greater than zero")
	}
	createdAt := now().UTC()
	if !input.ExpiresAt.IsZero() && !input.ExpiresAt.After(createdAt) {
		return Listing{}, errors.New(errors.CodeListingInvalidExpiry, "expiry must be in the future")
	}

	listingID, err := idGenerator()
	if err != nil {
		return Listing{}, errors.Wrap(errors.CodeUnknown, "generate listing id", err)
	}

	return Listing{
		ID:        listingID,
		Seller:    input.Seller,
		NFTMint:   input.NFTMint,
		Price:     input.Price,
		Quantity:  input.Quantity,
		CreatedAt: createdAt,
		ExpiresAt: input.ExpiresAt.UTC(),
	}, nil
}

// Expired reports whether the listing can no longer settle a sale.
func (l Listing) Expired(now time.Time) bool {
	if l.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(l.ExpiresAt)
}
