// Package marketplace implements the marketplace.v1 gRPC service.
package marketplace

import (
	"context"
	"errors"
	"strings"
	"time"

	marketplacev1 "github.com/flypxyz/marketplace/api/gen/go/marketplace/v1"
	apperrors "github.com/flypxyz/marketplace/internal/platform/errors"
	"github.com/flypxyz/marketplace/internal/platform/id"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
	"github.com/flypxyz/marketplace/internal/services/marketplace/tradegrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TradeGrantMetadataKey is the incoming metadata key carrying a trade grant.
const TradeGrantMetadataKey = "trade-grant"

// DefaultTreasury is the ledger account receiving marketplace fees when no
// treasury is configured.
const DefaultTreasury = "marketplace-treasury"

// Stores groups the persistence contracts the service depends on.
type Stores struct {
	Mints    storage.MintStore
	Accounts storage.TokenAccountStore
	Listings storage.ListingStore
	Bids     storage.BidStore
	Events   storage.EventStore
}

// Service exposes marketplace.v1 gRPC operations.
type Service struct {
	marketplacev1.UnimplementedMarketplaceServiceServer
	stores   Stores
	grants   tradegrant.Config
	treasury string
	clock    func() time.Time
	newID    func() (string, error)
}

// Option customizes service construction.
type Option func(*Service)

// WithTradeGrants enables trade grant verification on mutating operations.
func WithTradeGrants(cfg tradegrant.Config) Option {
	return func(s *Service) {
		s.grants = cfg
	}
}

// WithTreasury overrides the marketplace fee account.
func WithTreasury(account string) Option {
	return func(s *Service) {
		if strings.TrimSpace(account) != "" {
			s.treasury = account
		}
	}
}

// NewService creates a marketplace service backed by the given stores.
func NewService(stores Stores, opts ...Option) *Service {
	s := &Service{
		stores:   stores,
		treasury: DefaultTreasury,
		clock:    time.Now,
		newID:    id.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) now() time.Time {
	if s.clock != nil {
		return s.clock().UTC()
	}
	return time.Now().UTC()
}

// vaultOwner names the ledger account holding a listing's escrowed NFTs.
func vaultOwner(listingID string) string {
	return "vault:" + listingID
}

// escrowOwner names the ledger account holding a bid's escrowed payment.
func escrowOwner(bidID string) string {
	return "escrow:" + bidID
}

// authorize verifies the caller's trade grant for the given wallet. It is a
// no-op when grant verification is not configured.
func (s *Service) authorize(ctx context.Context, wallet string) error {
	if !s.grants.Enabled() {
		return nil
	}
	var grant string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TradeGrantMetadataKey); len(values) > 0 {
			grant = values[0]
		}
	}
	if _, err := tradegrant.Validate(grant, wallet, s.grants); err != nil {
		return statusFromError(err, "verify trade grant")
	}
	return nil
}

// statusFromError maps domain and storage errors to gRPC statuses.
func statusFromError(err error, op string) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr.ToGRPCStatus()
	}
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s: record not found", op)
	case errors.Is(err, storage.ErrAlreadyExists):
		return status.Errorf(codes.AlreadyExists, "%s: record already exists", op)
	case errors.Is(err, storage.ErrInsufficientFunds):
		return status.Errorf(codes.FailedPrecondition, "%s: insufficient funds", op)
	case errors.Is(err, storage.ErrBalanceOverflow):
		return status.Errorf(codes.FailedPrecondition, "%s: balance overflow", op)
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// expiryFromProto converts an optional timestamp to a domain expiry.
func expiryFromProto(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime().UTC()
}
