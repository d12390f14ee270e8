package marketplace

import (
	marketplacev1 "github.com/flypxyz/marketplace/api/gen/go/marketplace/v1"
	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func mintToProto(mint domain.Mint) *marketplacev1.Mint {
	out := &marketplacev1.Mint{
		Address:   mint.Address,
		CreatedAt: timestamppb.New(mint.CreatedAt),
	}
	for _, creator := range mint.Creators {
		out.Creators = append(out.Creators, &marketplacev1.Creator{
			Address:      creator.Address,
			Verified:     creator.Verified,
			SharePercent: creator.SharePercent,
		})
	}
	return out
}

func creatorsFromProto(creators []*marketplacev1.Creator) []domain.Creator {
	out := make([]domain.Creator, 0, len(creators))
	for _, creator := range creators {
		out = append(out, domain.Creator{
			Address:      creator.GetAddress(),
			Verified:     creator.GetVerified(),
			SharePercent: creator.GetSharePercent(),
		})
	}
	return out
}

func accountToProto(account storage.TokenAccount) *marketplacev1.TokenAccount {
	return &marketplacev1.TokenAccount{
		Owner:       account.Owner,
		MintAddress: account.Mint,
		Balance:     account.Balance,
		UpdatedAt:   timestamppb.New(account.UpdatedAt),
	}
}

func listingToProto(listing domain.Listing) *marketplacev1.Listing {
	out := &marketplacev1.Listing{
		ListingId: listing.ID,
		Seller:    listing.Seller,
		NftMint:   listing.NFTMint,
		Price:     listing.Price,
		Quantity:  listing.Quantity,
		CreatedAt: timestamppb.New(listing.CreatedAt),
	}
	if !listing.ExpiresAt.IsZero() {
		out.ExpiresAt = timestamppb.New(listing.ExpiresAt)
	}
	return out
}

func bidToProto(bid domain.Bid) *marketplacev1.Bid {
	out := &marketplacev1.Bid{
		BidId:       bid.ID,
		Bidder:      bid.Bidder,
		NftMint:     bid.NFTMint,
		PaymentMint: bid.PaymentMint,
		Price:       bid.Price,
		CreatedAt:   timestamppb.New(bid.CreatedAt),
	}
	if !bid.ExpiresAt.IsZero() {
		out.ExpiresAt = timestamppb.New(bid.ExpiresAt)
	}
	return out
}

func saleToProto(settlement domain.Settlement, nftMint, seller, buyer string, executedAt *timestamppb.Timestamp) *marketplacev1.Sale {
	out := &marketplacev1.Sale{
		NftMint:         nftMint,
		Seller:          seller,
		Buyer:           buyer,
		Price:           settlement.Price,
		SellerPayment:   settlement.SellerPayment,
		MarketplaceFee:  settlement.MarketplaceFee,
		SecondBidderFee: settlement.SecondBidderFee,
		ExecutedAt:      executedAt,
	}
	for _, payment := range settlement.CreatorPayments {
		out.CreatorPayments = append(out.CreatorPayments, &marketplacev1.CreatorPayment{
			Address: payment.Address,
			Amount:  payment.Amount,
		})
	}
	return out
}

func eventTypeToProto(eventType domain.EventType) marketplacev1.MarketplaceEventType {
	switch eventType {
	case domain.EventListingCreated:
		return marketplacev1.MarketplaceEventType_MARKETPLACE_EVENT_TYPE_LISTING_CREATED
	case domain.EventListingCancelled:
		return marketplacev1.MarketplaceEventType_MARKETPLACE_EVENT_TYPE_LISTING_CANCELLED
	case domain.EventSaleExecuted:
		return marketplacev1.MarketplaceEventType_MARKETPLACE_EVENT_TYPE_SALE_EXECUTED
	case domain.EventBidPlaced:
		return marketplacev1.MarketplaceEventType_MARKETPLACE_EVENT_TYPE_BID_PLACED
	case domain.EventBidCancelled:
		return marketplacev1.MarketplaceEventType_MARKETPLACE_EVENT_TYPE_BID_CANCELLED
	case domain.EventBidAccepted:
		return marketplacev1.MarketplaceEventType_MARKETPLACE_EVENT_TYPE_BID_ACCEPTED
	default:
		return marketplacev1.MarketplaceEventType_MARKETPLACE_EVENT_TYPE_UNSPECIFIED
	}
}

func eventToProto(event domain.Event) *marketplacev1.MarketplaceEvent {
	return &marketplacev1.MarketplaceEvent{
		EventId:      event.ID,
		Type:         eventTypeToProto(event.Type),
		NftMint:      event.NFTMint,
		Actor:        event.Actor,
		Counterparty: event.Counterparty,
		Price:        event.Price,
		Quantity:     event.Quantity,
		ListingId:    event.ListingID,
		BidId:        event.BidID,
		CreatedAt:    timestamppb.New(event.CreatedAt),
	}
}
