package domain

import (
	"time"

	"github.com/flypxyz/marketplace/internal/platform/errors"
	"github.com/flypxyz/marketplace/internal/platform/id"
)

// Bid is an offer to buy one unit of an NFT mint. The bid amount is escrowed
// from the bidder's payment account until the bid is cancelled or accepted.
type Bid struct {
	ID          string
	Bidder      string
	NFTMint     string
	PaymentMint string
	Price       uint64
	CreatedAt   time.Time
	// ExpiresAt is zero when the bid never expires.
	ExpiresAt time.Time
}

// PlaceBidInput describes the fields needed to place a bid.
type PlaceBidInput struct {
	Bidder      string
	NFTMint     string
	PaymentMint string
	Price       uint64
	ExpiresAt   time.Time
}

// PlaceBid validates input and returns a bid with a generated ID.
func PlaceBid(input PlaceBidInput, now func() time.Time, idGenerator func() (string, error)) (Bid, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	if input.Bidder == "" {
		return Bid{}, errors.New(errors.CodeBidEmptyBidder, "bidder is required")
	}
	if input.NFTMint == "" || input.PaymentMint == "" {
		return Bid{}, errors.New(errors.CodeBidEmptyMint, "nft mint and payment mint are required")
	}
	if input.Price == 0 {
		return Bid{}, errors.New(errors.CodeBidInvalidPrice, "price must be greater than zero")
	}
	createdAt := now().UTC()
	if !input.ExpiresAt.IsZero() && !input.ExpiresAt.After(createdAt) {
		return Bid{}, errors.New(errors.CodeBidInvalidExpiry, "expiry must be in the future")
	}

	bidID, err := idGenerator()
	if err != nil {
		return Bid{}, errors.Wrap(errors.CodeUnknown, "generate bid id", err)
	}

	return Bid{
		ID:          bidID,
		Bidder:      input.Bidder,
		NFTMint:     input.NFTMint,
		PaymentMint: input.PaymentMint,
		Price:       input.Price,
		CreatedAt:   createdAt,
		ExpiresAt:   input.ExpiresAt.UTC(),
	}, nil
}

// Expired reports whether the bid can no longer be accepted.
func (b Bid) Expired(now time.Time) bool {
	if b.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(b.ExpiresAt)
}
