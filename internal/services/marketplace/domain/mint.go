package domain

import (
	"fmt"
	"time"

	"github.com/flypxyz/marketplace/internal/platform/errors"
)

// Creator is a royalty recipient attached to a mint. Only verified creators
// receive royalty payouts during settlement.
type Creator struct {
	Address      string
	Verified     bool
	SharePercent uint32
}

// Mint is a registered token with royalty metadata.
type Mint struct {
	Address   string
	Creators  []Creator
	CreatedAt time.Time
}

// NewMint validates royalty metadata and returns a mint record.
func NewMint(address string, creators []Creator, now func() time.Time) (Mint, error) {
	if now == nil {
		now = time.Now
	}
	if address == "" {
		return Mint{}, errors.New(errors.CodeMintEmptyAddress, "mint address is required")
	}

	var verifiedTotal uint32
	for i, creator := range creators {
		if creator.Address == "" {
			return Mint{}, errors.New(errors.CodeMintCreatorEmptyAddress,
				fmt.Sprintf("creator %d address is required", i))
		}
		if creator.SharePercent > 100 {
			return Mint{}, errors.WithMetadata(errors.CodeMintCreatorShareInvalid,
				"creator share must be at most 100 percent",
				map[string]string{"creator": creator.Address})
		}
		if creator.Verified {
			verifiedTotal += creator.SharePercent
		}
	}
	if verifiedTotal > 100 {
		return Mint{}, errors.New(errors.CodeMintSharesExceedWhole,
			"verified creator shares exceed 100 percent")
	}

	return Mint{
		Address:   address,
		Creators:  append([]Creator(nil), creators...),
		CreatedAt: now().UTC(),
	}, nil
}
