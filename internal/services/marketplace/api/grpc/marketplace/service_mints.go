package marketplace

import (
	"context"
	"strings"

	marketplacev1 "github.com/flypxyz/marketplace/api/gen/go/marketplace/v1"
	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RegisterMint registers a mint with its royalty creators.
func (s *Service) RegisterMint(ctx context.Context, in *marketplacev1.RegisterMintRequest) (*marketplacev1.RegisterMintResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "register mint request is required")
	}
	if s == nil || s.stores.Mints == nil {
		return nil, status.Error(codes.Internal, "mint store is not configured")
	}

	mint, err := domain.NewMint(strings.TrimSpace(in.GetMintAddress()), creatorsFromProto(in.GetCreators()), s.clock)
	if err != nil {
		return nil, statusFromError(err, "register mint")
	}
	if err := s.stores.Mints.CreateMint(ctx, mint); err != nil {
		return nil, statusFromError(err, "register mint")
	}
	return &marketplacev1.RegisterMintResponse{
		Mint: mintToProto(mint),
	}, nil
}

// GetMint returns one registered mint by address.
func (s *Service) GetMint(ctx context.Context, in *marketplacev1.GetMintRequest) (*marketplacev1.GetMintResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get mint request is required")
	}
	if s == nil || s.stores.Mints == nil {
		return nil, status.Error(codes.Internal, "mint store is not configured")
	}
	address := strings.TrimSpace(in.GetMintAddress())
	if address == "" {
		return nil, status.Error(codes.InvalidArgument, "mint address is required")
	}

	mint, err := s.stores.Mints.GetMint(ctx, address)
	if err != nil {
		return nil, statusFromError(err, "get mint")
	}
	return &marketplacev1.GetMintResponse{
		Mint: mintToProto(mint),
	}, nil
}

// Deposit credits a wallet's account for a registered mint.
func (s *Service) Deposit(ctx context.Context, in *marketplacev1.DepositRequest) (*marketplacev1.DepositResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "deposit request is required")
	}
	if s == nil || s.stores.Accounts == nil {
		return nil, status.Error(codes.Internal, "token account store is not configured")
	}
	owner := strings.TrimSpace(in.GetOwner())
	mint := strings.TrimSpace(in.GetMintAddress())
	if owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner is required")
	}
	if mint == "" {
		return nil, status.Error(codes.InvalidArgument, "mint address is required")
	}
	if in.GetAmount() == 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be greater than zero")
	}
	if err := s.authorize(ctx, owner); err != nil {
		return nil, err
	}

	account, err := s.stores.Accounts.Deposit(ctx, owner, mint, in.GetAmount(), s.now())
	if err != nil {
		return nil, statusFromError(err, "deposit")
	}
	return &marketplacev1.DepositResponse{
		Account: accountToProto(account),
	}, nil
}

// GetTokenAccount returns one ledger account balance.
func (s *Service) GetTokenAccount(ctx context.Context, in *marketplacev1.GetTokenAccountRequest) (*marketplacev1.GetTokenAccountResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get token account request is required")
	}
	if s == nil || s.stores.Accounts == nil {
		return nil, status.Error(codes.Internal, "token account store is not configured")
	}
	owner := strings.TrimSpace(in.GetOwner())
	mint := strings.TrimSpace(in.GetMintAddress())
	if owner == "" || mint == "" {
		return nil, status.Error(codes.InvalidArgument, "owner and mint address are required")
	}

	account, err := s.stores.Accounts.GetTokenAccount(ctx, owner, mint)
	if err != nil {
		return nil, statusFromError(err, "get token account")
	}
	return &marketplacev1.GetTokenAccountResponse{
		Account: accountToProto(account),
	}, nil
}
