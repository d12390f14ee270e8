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

// PlaceBid places a bid and escrows the bid amount.
func (s *Service) PlaceBid(ctx context.Context, in *marketplacev1.PlaceBidRequest) (*marketplacev1.PlaceBidResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "place bid request is required")
	}
	if s == nil || s.stores.Bids == nil || s.stores.Mints == nil {
		return nil, status.Error(codes.Internal, "bid store is not configured")
	}
	bidder := strings.TrimSpace(in.GetBidder())
	if err := s.authorize(ctx, bidder); err != nil {
		return nil, err
	}

	bid, err := domain.PlaceBid(domain.PlaceBidInput{
		Bidder:      bidder,
		NFTMint:     strings.TrimSpace(in.GetNftMint()),
		PaymentMint: strings.TrimSpace(in.GetPaymentMint()),
		Price:       in.GetPrice(),
		ExpiresAt:   expiryFromProto(in.GetExpiresAt()),
	}, s.clock, s.newID)
	if err != nil {
		return nil, statusFromError(err, "place bid")
	}

	if _, err := s.stores.Mints.GetMint(ctx, bid.NFTMint); err != nil {
		return nil, statusFromError(err, "place bid: nft mint")
	}

	escrow := domain.Transfer{
		From:   bid.Bidder,
		To:     escrowOwner(bid.ID),
		Mint:   bid.PaymentMint,
		Amount: bid.Price,
	}
	eventID, err := s.newID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "place bid: %v", err)
	}
	event := domain.Event{
		ID:        eventID,
		Type:      domain.EventBidPlaced,
		NFTMint:   bid.NFTMint,
		Actor:     bid.Bidder,
		Price:     bid.Price,
		BidID:     bid.ID,
		CreatedAt: bid.CreatedAt,
	}

	if err := s.stores.Bids.PlaceBid(ctx, bid, escrow, event); err != nil {
		return nil, statusFromError(err, "place bid")
	}
	return &marketplacev1.PlaceBidResponse{
		Bid: bidToProto(bid),
	}, nil
}

// CancelBid removes a bid and refunds the escrowed amount. A bid can be
// cancelled after it expires.
func (s *Service) CancelBid(ctx context.Context, in *marketplacev1.CancelBidRequest) (*marketplacev1.CancelBidResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "cancel bid request is required")
	}
	if s == nil || s.stores.Bids == nil {
		return nil, status.Error(codes.Internal, "bid store is not configured")
	}
	bidID := strings.TrimSpace(in.GetBidId())
	bidder := strings.TrimSpace(in.GetBidder())
	if bidID == "" {
		return nil, status.Error(codes.InvalidArgument, "bid id is required")
	}
	if bidder == "" {
		return nil, status.Error(codes.InvalidArgument, "bidder is required")
	}
	if err := s.authorize(ctx, bidder); err != nil {
		return nil, err
	}

	bid, err := s.stores.Bids.GetBid(ctx, bidID)
	if err != nil {
		return nil, statusFromError(err, "cancel bid")
	}
	// Ownership mismatches read as missing records.
	if bid.Bidder != bidder {
		return nil, status.Error(codes.NotFound, "cancel bid: record not found")
	}

	refund := domain.Transfer{
		From:   escrowOwner(bid.ID),
		To:     bid.Bidder,
		Mint:   bid.PaymentMint,
		Amount: bid.Price,
	}
	eventID, err := s.newID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "cancel bid: %v", err)
	}
	event := domain.Event{
		ID:        eventID,
		Type:      domain.EventBidCancelled,
		NFTMint:   bid.NFTMint,
		Actor:     bid.Bidder,
		BidID:     bid.ID,
		CreatedAt: s.now(),
	}

	if err := s.stores.Bids.CancelBid(ctx, bid.ID, refund, event); err != nil {
		return nil, statusFromError(err, "cancel bid")
	}
	return &marketplacev1.CancelBidResponse{}, nil
}

// AcceptBid settles a bid against the seller's NFT holdings. The bid amount
// is paid out of escrow; the seller transfers one unit directly to the
// bidder.
func (s *Service) AcceptBid(ctx context.Context, in *marketplacev1.AcceptBidRequest) (*marketplacev1.AcceptBidResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "accept bid request is required")
	}
	if s == nil || s.stores.Bids == nil || s.stores.Mints == nil {
		return nil, status.Error(codes.Internal, "bid store is not configured")
	}
	bidID := strings.TrimSpace(in.GetBidId())
	seller := strings.TrimSpace(in.GetSeller())
	if bidID == "" {
		return nil, status.Error(codes.InvalidArgument, "bid id is required")
	}
	if seller == "" {
		return nil, status.Error(codes.InvalidArgument, "seller is required")
	}
	if err := s.authorize(ctx, seller); err != nil {
		return nil, err
	}

	bid, err := s.stores.Bids.GetBid(ctx, bidID)
	if err != nil {
		return nil, statusFromError(err, "accept bid")
	}
	now := s.now()
	if bid.Expired(now) {
		return nil, apperrors.New(apperrors.CodeBidExpired, "bid is expired").ToGRPCStatus()
	}

	nftMint, err := s.stores.Mints.GetMint(ctx, bid.NFTMint)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "accept bid: load mint: %v", err)
	}

	settlement, err := domain.ComputeSettlement(bid.Price, nftMint.Creators, in.GetSecondHighestBid())
	if err != nil {
		return nil, statusFromError(err, "accept bid")
	}
	secondBidder := strings.TrimSpace(in.GetSecondBidder())
	if secondBidder == "" {
		settlement.MarketplaceFee += settlement.SecondBidderFee
		settlement.SecondBidderFee = 0
	}

	transfers := domain.BuildSaleTransfers(settlement, domain.SaleParties{
		Payer:        escrowOwner(bid.ID),
		Seller:       seller,
		Marketplace:  s.treasury,
		SecondBidder: secondBidder,
		PaymentMint:  bid.PaymentMint,
	})
	// Fee-split flooring can leave part of the escrowed price unpaid. The
	// escrow row dies with the bid, so refund the residue to the bidder.
	var paidOut uint64
	for _, transfer := range transfers {
		paidOut += transfer.Amount
	}
	if residue := bid.Price - paidOut; residue > 0 {
		transfers = append(transfers, domain.Transfer{
			From:   escrowOwner(bid.ID),
			To:     bid.Bidder,
			Mint:   bid.PaymentMint,
			Amount: residue,
		})
	}
	transfers = append(transfers, domain.Transfer{
		From:   seller,
		To:     bid.Bidder,
		Mint:   bid.NFTMint,
		Amount: 1,
	})

	eventID, err := s.newID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "accept bid: %v", err)
	}
	acceptance := storage.BidAcceptance{
		BidID:     bid.ID,
		Transfers: transfers,
		Event: domain.Event{
			ID:           eventID,
			Type:         domain.EventBidAccepted,
			NFTMint:      bid.NFTMint,
			Actor:        seller,
			Counterparty: bid.Bidder,
			Price:        bid.Price,
			Quantity:     1,
			BidID:        bid.ID,
			CreatedAt:    now,
		},
	}
	if err := s.stores.Bids.AcceptBid(ctx, acceptance); err != nil {
		return nil, statusFromError(err, "accept bid")
	}

	return &marketplacev1.AcceptBidResponse{
		Sale: saleToProto(settlement, bid.NFTMint, seller, bid.Bidder, timestamppb.New(now)),
	}, nil
}

// GetBid returns one bid by ID.
func (s *Service) GetBid(ctx context.Context, in *marketplacev1.GetBidRequest) (*marketplacev1.GetBidResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get bid request is required")
	}
	if s == nil || s.stores.Bids == nil {
		return nil, status.Error(codes.Internal, "bid store is not configured")
	}
	bidID := strings.TrimSpace(in.GetBidId())
	if bidID == "" {
		return nil, status.Error(codes.InvalidArgument, "bid id is required")
	}

	bid, err := s.stores.Bids.GetBid(ctx, bidID)
	if err != nil {
		return nil, statusFromError(err, "get bid")
	}
	return &marketplacev1.GetBidResponse{
		Bid: bidToProto(bid),
	}, nil
}

// ListBids returns a filtered page of bids.
func (s *Service) ListBids(ctx context.Context, in *marketplacev1.ListBidsRequest) (*marketplacev1.ListBidsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list bids request is required")
	}
	if s == nil || s.stores.Bids == nil {
		return nil, status.Error(codes.Internal, "bid store is not configured")
	}

	cond, err := filter.ParseBidFilter(in.GetFilter())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "list bids: %v", err)
	}
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListPageSize,
		Max:     maxListPageSize,
	})

	page, err := s.stores.Bids.ListBids(ctx, storage.ListQuery{
		PageSize:  pageSize,
		PageToken: in.GetPageToken(),
		Filter:    cond,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list bids: %v", err)
	}

	resp := &marketplacev1.ListBidsResponse{
		Bids:          make([]*marketplacev1.Bid, 0, len(page.Bids)),
		NextPageToken: page.NextPageToken,
	}
	for _, bid := range page.Bids {
		resp.Bids = append(resp.Bids, bidToProto(bid))
	}
	return resp, nil
}
