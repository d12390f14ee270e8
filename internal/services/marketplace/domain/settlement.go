package domain

import (
	"math"
	"math/bits"

	"github.com/flypxyz/marketplace/internal/platform/errors"
)

// Fee constants, expressed in basis points (100% = 10000).
const (
	// FeeDenominator converts basis points to whole amounts.
	FeeDenominator = 10000
	// PlatformFeeBps is the platform fee taken after royalties (2.5%).
	PlatformFeeBps = 250
	// MarketplaceFeeShare is the marketplace's share of the platform fee (90%).
	MarketplaceFeeShare = 9000
	// SecondBidderFeeShare is the second-highest bidder's share of the
	// platform fee (10%).
	SecondBidderFeeShare = 1000
)

// CreatorPayment is one royalty payout owed by a settlement.
type CreatorPayment struct {
	Address string
	Amount  uint64
}

// Settlement is the payment breakdown for one unit sold at Price. The
// individual payouts never exceed Price; any basis-point rounding residue
// stays with the buyer.
type Settlement struct {
	Price           uint64
	SellerPayment   uint64
	CreatorPayments []CreatorPayment
	MarketplaceFee  uint64
	SecondBidderFee uint64
}

// ComputeSettlement splits price into creator royalties, the platform fee,
// and the seller payment. Royalties are paid first to verified creators at
// their whole-percent share. The platform fee is 2.5% of what remains, split
// 90/10 between the marketplace and the second-highest bidder; the second
// bidder's cut is capped at secondHighestBid with the excess routed to the
// marketplace.
func ComputeSettlement(price uint64, creators []Creator, secondHighestBid uint64) (Settlement, error) {
	// Ledger balances are signed 64-bit; a price beyond that range could
	// never settle.
	if price > math.MaxInt64 {
		return Settlement{}, errors.New(errors.CodeSettlementOverflow,
			"price exceeds the ledger range")
	}
	remaining := price
	var creatorPayments []CreatorPayment
	for _, creator := range creators {
		if !creator.Verified {
			continue
		}
		royalty := mulDiv(price, uint64(creator.SharePercent), 100)
		if royalty > remaining {
			return Settlement{}, errors.WithMetadata(errors.CodeSettlementRoyaltyDrain,
				"creator royalties exceed sale price",
				map[string]string{"creator": creator.Address})
		}
		remaining -= royalty
		creatorPayments = append(creatorPayments, CreatorPayment{
			Address: creator.Address,
			Amount:  royalty,
		})
	}

	totalFee := mulDiv(remaining, PlatformFeeBps, FeeDenominator)
	marketplaceFee := mulDiv(totalFee, MarketplaceFeeShare, FeeDenominator)
	secondBidderFee := mulDiv(totalFee, SecondBidderFeeShare, FeeDenominator)
	if secondBidderFee > secondHighestBid {
		marketplaceFee += secondBidderFee - secondHighestBid
		secondBidderFee = secondHighestBid
	}

	return Settlement{
		Price:           price,
		SellerPayment:   remaining - totalFee,
		CreatorPayments: creatorPayments,
		MarketplaceFee:  marketplaceFee,
		SecondBidderFee: secondBidderFee,
	}, nil
}

// mulDiv computes a*b/den without overflowing the intermediate product.
// den must exceed b's contribution to the high word, which holds for every
// caller here since b < den.
func mulDiv(a, b, den uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	quo, _ := bits.Div64(hi, lo, den)
	return quo
}

// Transfer moves an amount of one mint between two ledger accounts.
type Transfer struct {
	From   string
	To     string
	Mint   string
	Amount uint64
}

// SaleParties names the ledger accounts involved in a settlement.
type SaleParties struct {
	// Payer funds the settlement: the buyer on a direct sale, the escrow
	// account on an accepted bid.
	Payer        string
	Seller       string
	Marketplace  string
	SecondBidder string
	PaymentMint  string
}

// BuildSaleTransfers expands a settlement into ledger transfers. Zero-amount
// payouts are omitted.
func BuildSaleTransfers(settlement Settlement, parties SaleParties) []Transfer {
	var transfers []Transfer
	add := func(to string, amount uint64) {
		if amount == 0 {
			return
		}
		transfers = append(transfers, Transfer{
			From:   parties.Payer,
			To:     to,
			Mint:   parties.PaymentMint,
			Amount: amount,
		})
	}

	add(parties.Seller, settlement.SellerPayment)
	for _, payment := range settlement.CreatorPayments {
		add(payment.Address, payment.Amount)
	}
	add(parties.Marketplace, settlement.MarketplaceFee)
	add(parties.SecondBidder, settlement.SecondBidderFee)
	return transfers
}
