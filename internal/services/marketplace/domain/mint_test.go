package domain

import (
	"errors"
	"testing"

	platformerrors "github.com/flypxyz/marketplace/internal/platform/errors"
)

func TestNewMintValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		address  string
		creators []Creator
		want     platformerrors.Code
	}{
		{
			name: "empty address",
			want: platformerrors.CodeMintEmptyAddress,
		},
		{
			name:     "creator missing address",
			address:  "mint-1",
			creators: []Creator{{Verified: true, SharePercent: 10}},
			want:     platformerrors.CodeMintCreatorEmptyAddress,
		},
		{
			name:     "creator share above whole",
			address:  "mint-1",
			creators: []Creator{{Address: "creator-1", SharePercent: 101}},
			want:     platformerrors.CodeMintCreatorShareInvalid,
		},
		{
			name:    "verified shares exceed whole",
			address: "mint-1",
			creators: []Creator{
				{Address: "creator-1", Verified: true, SharePercent: 60},
				{Address: "creator-2", Verified: true, SharePercent: 60},
			},
			want: platformerrors.CodeMintSharesExceedWhole,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewMint(tc.address, tc.creators, fixedNow)
			if !errors.Is(err, platformerrors.New(tc.want, "")) {
				t.Fatalf("err = %v, want code %s", err, tc.want)
			}
		})
	}
}

func TestNewMintAllowsUnverifiedSharesAboveWhole(t *testing.T) {
	t.Parallel()

	// Only verified creators are paid, so unverified shares can overlap.
	creators := []Creator{
		{Address: "creator-1", Verified: true, SharePercent: 80},
		{Address: "creator-2", Verified: false, SharePercent: 80},
	}
	mint, err := NewMint("mint-1", creators, fixedNow)
	if err != nil {
		t.Fatalf("NewMint: %v", err)
	}
	if len(mint.Creators) != 2 {
		t.Fatalf("creators = %d, want 2", len(mint.Creators))
	}
	if !mint.CreatedAt.Equal(fixedNow()) {
		t.Fatalf("created at = %v, want %v", mint.CreatedAt, fixedNow())
	}
}
