package marketplace

import (
	"context"
	"strings"

	marketplacev1 "github.com/flypxyz/marketplace/api/gen/go/marketplace/v1"
	apperrors "github.com/flypxyz/marketplace/internal/platform/errors"
	"github.com/flypxyz/marketplace/internal/platform/grpc/pagination"
	"github.com/flypxyz/marketplace/internal/services/marketplace/core/filter"
	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultListPageSize = 20
	maxListPageSize     = 100
)

// CreateListing creates a listing and escrows the listed quantity.
func (s *Service) CreateListing(ctx context.Context, in *marketplacev1.CreateListingRequest) (*marketplacev1.CreateListingResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create listing request is required")
	}
	if s == nil || s.stores.Listings == nil || s.stores.Mints == nil {
		return nil, status.Error(codes.Internal, "listing store is not configured")
	}
	seller := strings.TrimSpace(in.GetSeller())
	if err := s.authorize(ctx, seller); err != nil {
		return nil, err
	}

	listing, err := domain.CreateListing(domain.CreateListingInput{
		Seller:    seller,
		NFTMint:   strings.TrimSpace(in.GetNftMint()),
		Price:     in.GetPrice(),
		Quantity:  in.GetQuantity(),
		ExpiresAt: expiryFromProto(in.GetExpiresAt()),
	}, s.clock, s.newID)
	if err != nil {
		return nil, statusFromError(err, "create listing")
	}

	if _, err := s.stores.Mints.GetMint(ctx, listing.NFTMint); err != nil {
		return nil, statusFromError(err, "create listing: nft mint")
	}

	escrow := domain.Transfer{
		From:   listing.Seller,
		To:     vaultOwner(listing.ID),
		Mint:   listing.NFTMint,
		Amount: listing.Quantity,
	}
	eventID, err := s.newID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create listing: %v", err)
	}
	event := domain.Event{
		ID:        eventID,
		Type:      domain.EventListingCreated,
		NFTMint:   listing.NFTMint,
		Actor:     listing.Seller,
		Price:     listing.Price,
		Quantity:  listing.Quantity,
		ListingID: listing.ID,
		CreatedAt: listing.CreatedAt,
	}

	if err := s.stores.Listings.CreateListing(ctx, listing, escrow, event); err != nil {
		return nil, statusFromError(err, "create listing")
	}
	return &marketplacev1.CreateListingResponse{
		Listing: listingToProto(listing),
	}, nil
}

// CancelListing removes a listing and refunds the escrowed quantity. A
// listing can be cancelled after it expires.
func (s *Service) CancelListing(ctx context.Context, in *marketplacev1.CancelListingRequest) (*marketplacev1.CancelListingResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "cancel listing request is required")
	}
	if s == nil || s.stores.Listings == nil {
		return nil, status.Error(codes.Internal, "listing store is not configured")
	}
	listingID := strings.TrimSpace(in.GetListingId())
	seller := strings.TrimSpace(in.GetSeller())
	if listingID == "" {
		return nil, status.Error(codes.InvalidArgument, "listing id is required")
	}
	if seller == "" {
		return nil, status.Error(codes.InvalidArgument, "seller is required")
	}
	if err := s.authorize(ctx, seller); err != nil {
		return nil, err
	}

	listing, err := s.stores.Listings.GetListing(ctx, listingID)
	if err != nil {
		return nil, statusFromError(err, "cancel listing")
	}
	// Ownership mismatches read as missing records.
	if listing.Seller != seller {
		return nil, status.Error(codes.NotFound, "cancel listing: record not found")
	}

	refund := domain.Transfer{
		From:   vaultOwner(listing.ID),
		To:     listing.Seller,
		Mint:   listing.NFTMint,
		Amount: listing.Quantity,
	}
	eventID, err := s.newID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "cancel listing: %v", err)
	}
	event := domain.Event{
		ID:        eventID,
		Type:      domain.EventListingCancelled,
		NFTMint:   listing.NFTMint,
		Actor:     listing.Seller,
		Quantity:  listing.Quantity,
		ListingID: listing.ID,
		CreatedAt: s.now(),
	}

	if err := s.stores.Listings.CancelListing(ctx, listing.ID, refund, event); err != nil {
		return nil, statusFromError(err, "cancel listing")
	}
	return &marketplacev1.CancelListingResponse{}, nil
}

// ExecuteSale settles one unit of a listing against the buyer's payment
// account.
func (s *Service) ExecuteSale(ctx context.Context, in *marketplacev1.ExecuteSaleRequest) (*marketplacev1.ExecuteSaleResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "execute sale request is required")
	}
	if s == nil || s.stores.Listings == nil || s.stores.Mints == nil {
		return nil, status.Error(codes.Internal, "listing store is not configured")
	}
	listingID := strings.TrimSpace(in.GetListingId())
	buyer := strings.TrimSpace(in.GetBuyer())
	paymentMint := strings.TrimSpace(in.GetPaymentMint())
	if listingID == "" {
		return nil, status.Error(codes.InvalidArgument, "listing id is required")
	}
	if buyer == "" {
		return nil, status.Error(codes.InvalidArgument, "buyer is required")
	}
	if paymentMint == "" {
		return nil, status.Error(codes.InvalidArgument, "payment mint is required")
	}
	if err := s.authorize(ctx, buyer); err != nil {
		return nil, err
	}

	listing, err := s.stores.Listings.GetListing(ctx, listingID)
	if err != nil {
		return nil, statusFromError(err, "execute sale")
	}
	now := s.now()
	if listing.Expired(now) {
		return nil, apperrors.New(apperrors.CodeListingExpired, "listing is expired").ToGRPCStatus()
	}

	nftMint, err := s.stores.Mints.GetMint(ctx, listing.NFTMint)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "execute sale: load mint: %v", err)
	}

	settlement, err := domain.ComputeSettlement(listing.Price, nftMint.Creators, in.GetSecondHighestBid())
	if err != nil {
		return nil, statusFromError(err, "execute sale")
	}
	secondBidder := strings.TrimSpace(in.GetSecondBidder())
	if secondBidder == "" {
		settlement.MarketplaceFee += settlement.SecondBidderFee
		settlement.SecondBidderFee = 0
	}

	transfers := domain.BuildSaleTransfers(settlement, domain.SaleParties{
		Payer:        buyer,
		Seller:       listing.Seller,
		Marketplace:  s.treasury,
		SecondBidder: secondBidder,
		PaymentMint:  paymentMint,
	})
	transfers = append(transfers, domain.Transfer{
		From:   vaultOwner(listing.ID),
		To:     buyer,
		Mint:   listing.NFTMint,
		Amount: 1,
	})

	eventID, err := s.newID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "execute sale: %v", err)
	}
	sale := storage.SaleExecution{
		ListingID:         listing.ID,
		RemainingQuantity: listing.Quantity - 1,
		Transfers:         transfers,
		Event: domain.Event{
			ID:           eventID,
			Type:         domain.EventSaleExecuted,
			NFTMint:      listing.NFTMint,
			Actor:        buyer,
			Counterparty: listing.Seller,
			Price:        listing.Price,
			Quantity:     1,
			ListingID:    listing.ID,
			CreatedAt:    now,
		},
	}
	if err := s.stores.Listings.ExecuteSale(ctx, sale); err != nil {
		return nil, statusFromError(err, "execute sale")
	}

	resp := &marketplacev1.ExecuteSaleResponse{
		Sale: saleToProto(settlement, listing.NFTMint, listing.Seller, buyer, timestamppb.New(now)),
	}
	if sale.RemainingQuantity > 0 {
		remaining := listing
		remaining.Quantity = sale.RemainingQuantity
		resp.RemainingListing = listingToProto(remaining)
	}
	return resp, nil
}

// GetListing returns one listing by ID.
func (s *Service) GetListing(ctx context.Context, in *marketplacev1.GetListingRequest) (*marketplacev1.GetListingResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get listing request is required")
	}
	if s == nil || s.stores.Listings == nil {
		return nil, status.Error(codes.Internal, "listing store is not configured")
	}
	listingID := strings.TrimSpace(in.GetListingId())
	if listingID == "" {
		return nil, status.Error(codes.InvalidArgument, "listing id is required")
	}

	listing, err := s.stores.Listings.GetListing(ctx, listingID)
	if err != nil {
		return nil, statusFromError(err, "get listing")
	}
	return &marketplacev1.GetListingResponse{
		Listing: listingToProto(listing),
	}, nil
}

// ListListings returns a filtered page of listings.
func (s *Service) ListListings(ctx context.Context, in *marketplacev1.ListListingsRequest) (*marketplacev1.ListListingsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list listings request is required")
	}
	if s == nil || s.stores.Listings == nil {
		return nil, status.Error(codes.Internal, "listing store is not configured")
	}

	cond, err := filter.ParseListingFilter(in.GetFilter())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "list listings: %v", err)
	}
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListPageSize,
		Max:     maxListPageSize,
	})

	page, err := s.stores.Listings.ListListings(ctx, storage.ListQuery{
		PageSize:  pageSize,
		PageToken: in.GetPageToken(),
		Filter:    cond,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list listings: %v", err)
	}

	resp := &marketplacev1.ListListingsResponse{
		Listings:      make([]*marketplacev1.Listing, 0, len(page.Listings)),
		NextPageToken: page.NextPageToken,
	}
	for _, listing := range page.Listings {
		resp.Listings = append(resp.Listings, listingToProto(listing))
	}
	return resp, nil
}
