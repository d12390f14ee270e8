// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: marketplace/v1/marketplace.proto

package marketplacev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MarketplaceService_RegisterMint_FullMethodName    = "/marketplace.v1.MarketplaceService/RegisterMint"
	MarketplaceService_GetMint_FullMethodName         = "/marketplace.v1.MarketplaceService/GetMint"
	MarketplaceService_Deposit_FullMethodName         = "/marketplace.v1.MarketplaceService/Deposit"
	MarketplaceService_GetTokenAccount_FullMethodName = "/marketplace.v1.MarketplaceService/GetTokenAccount"
	MarketplaceService_CreateListing_FullMethodName   = "/marketplace.v1.MarketplaceService/CreateListing"
	MarketplaceService_CancelListing_FullMethodName   = "/marketplace.v1.MarketplaceService/CancelListing"
	MarketplaceService_ExecuteSale_FullMethodName     = "/marketplace.v1.MarketplaceService/ExecuteSale"
	MarketplaceService_GetListing_FullMethodName      = "/marketplace.v1.MarketplaceService/GetListing"
	MarketplaceService_ListListings_FullMethodName    = "/marketplace.v1.MarketplaceService/ListListings"
	MarketplaceService_PlaceBid_FullMethodName        = "/marketplace.v1.MarketplaceService/PlaceBid"
	MarketplaceService_CancelBid_FullMethodName       = "/marketplace.v1.MarketplaceService/CancelBid"
	MarketplaceService_AcceptBid_FullMethodName       = "/marketplace.v1.MarketplaceService/AcceptBid"
	MarketplaceService_GetBid_FullMethodName          = "/marketplace.v1.MarketplaceService/GetBid"
	MarketplaceService_ListBids_FullMethodName        = "/marketplace.v1.MarketplaceService/ListBids"
	MarketplaceService_ListEvents_FullMethodName      = "/marketplace.v1.MarketplaceService/ListEvents"
)

// MarketplaceServiceClient is the client API for MarketplaceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MarketplaceService runs the NFT marketplace ledger: listings escrow NFTs,
// bids escrow funds, and settlements pay sellers, creators, and fee accounts
// atomically.
type MarketplaceServiceClient interface {
	// Mint registry and token accounts.
	RegisterMint(ctx context.Context, in *RegisterMintRequest, opts ...grpc.CallOption) (*RegisterMintResponse, error)
	GetMint(ctx context.Context, in *GetMintRequest, opts ...grpc.CallOption) (*GetMintResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	GetTokenAccount(ctx context.Context, in *GetTokenAccountRequest, opts ...grpc.CallOption) (*GetTokenAccountResponse, error)
	// Listings.
	CreateListing(ctx context.Context, in *CreateListingRequest, opts ...grpc.CallOption) (*CreateListingResponse, error)
	CancelListing(ctx context.Context, in *CancelListingRequest, opts ...grpc.CallOption) (*CancelListingResponse, error)
	ExecuteSale(ctx context.Context, in *ExecuteSaleRequest, opts ...grpc.CallOption) (*ExecuteSaleResponse, error)
	GetListing(ctx context.Context, in *GetListingRequest, opts ...grpc.CallOption) (*GetListingResponse, error)
	ListListings(ctx context.Context, in *ListListingsRequest, opts ...grpc.CallOption) (*ListListingsResponse, error)
	// Bids.
	PlaceBid(ctx context.Context, in *PlaceBidRequest, opts ...grpc.CallOption) (*PlaceBidResponse, error)
	CancelBid(ctx context.Context, in *CancelBidRequest, opts ...grpc.CallOption) (*CancelBidResponse, error)
	AcceptBid(ctx context.Context, in *AcceptBidRequest, opts ...grpc.CallOption) (*AcceptBidResponse, error)
	GetBid(ctx context.Context, in *GetBidRequest, opts ...grpc.CallOption) (*GetBidResponse, error)
	ListBids(ctx context.Context, in *ListBidsRequest, opts ...grpc.CallOption) (*ListBidsResponse, error)
	// Audit trail.
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
}

type marketplaceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMarketplaceServiceClient(cc grpc.ClientConnInterface) MarketplaceServiceClient {
	return &marketplaceServiceClient{cc}
}

func (c *marketplaceServiceClient) RegisterMint(ctx context.Context, in *RegisterMintRequest, opts ...grpc.CallOption) (*RegisterMintResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterMintResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_RegisterMint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) GetMint(ctx context.Context, in *GetMintRequest, opts ...grpc.CallOption) (*GetMintResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMintResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_GetMint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DepositResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_Deposit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) GetTokenAccount(ctx context.Context, in *GetTokenAccountRequest, opts ...grpc.CallOption) (*GetTokenAccountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTokenAccountResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_GetTokenAccount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) CreateListing(ctx context.Context, in *CreateListingRequest, opts ...grpc.CallOption) (*CreateListingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateListingResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_CreateListing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) CancelListing(ctx context.Context, in *CancelListingRequest, opts ...grpc.CallOption) (*CancelListingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelListingResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_CancelListing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) ExecuteSale(ctx context.Context, in *ExecuteSaleRequest, opts ...grpc.CallOption) (*ExecuteSaleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExecuteSaleResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_ExecuteSale_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) GetListing(ctx context.Context, in *GetListingRequest, opts ...grpc.CallOption) (*GetListingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetListingResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_GetListing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) ListListings(ctx context.Context, in *ListListingsRequest, opts ...grpc.CallOption) (*ListListingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListListingsResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_ListListings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) PlaceBid(ctx context.Context, in *PlaceBidRequest, opts ...grpc.CallOption) (*PlaceBidResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PlaceBidResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_PlaceBid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) CancelBid(ctx context.Context, in *CancelBidRequest, opts ...grpc.CallOption) (*CancelBidResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelBidResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_CancelBid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) AcceptBid(ctx context.Context, in *AcceptBidRequest, opts ...grpc.CallOption) (*AcceptBidResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AcceptBidResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_AcceptBid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) GetBid(ctx context.Context, in *GetBidRequest, opts ...grpc.CallOption) (*GetBidResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBidResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_GetBid_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) ListBids(ctx context.Context, in *ListBidsRequest, opts ...grpc.CallOption) (*ListBidsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBidsResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_ListBids_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *marketplaceServiceClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEventsResponse)
	err := c.cc.Invoke(ctx, MarketplaceService_ListEvents_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarketplaceServiceServer is the server API for MarketplaceService service.
// All implementations must embed UnimplementedMarketplaceServiceServer
// for forward compatibility.
//
// MarketplaceService runs the NFT marketplace ledger: listings escrow NFTs,
// bids escrow funds, and settlements pay sellers, creators, and fee accounts
// atomically.
type MarketplaceServiceServer interface {
	// Mint registry and token accounts.
	RegisterMint(context.Context, *RegisterMintRequest) (*RegisterMintResponse, error)
	GetMint(context.Context, *GetMintRequest) (*GetMintResponse, error)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	GetTokenAccount(context.Context, *GetTokenAccountRequest) (*GetTokenAccountResponse, error)
	// Listings.
	CreateListing(context.Context, *CreateListingRequest) (*CreateListingResponse, error)
	CancelListing(context.Context, *CancelListingRequest) (*CancelListingResponse, error)
	ExecuteSale(context.Context, *ExecuteSaleRequest) (*ExecuteSaleResponse, error)
	GetListing(context.Context, *GetListingRequest) (*GetListingResponse, error)
	ListListings(context.Context, *ListListingsRequest) (*ListListingsResponse, error)
	// Bids.
	PlaceBid(context.Context, *PlaceBidRequest) (*PlaceBidResponse, error)
	CancelBid(context.Context, *CancelBidRequest) (*CancelBidResponse, error)
	AcceptBid(context.Context, *AcceptBidRequest) (*AcceptBidResponse, error)
	GetBid(context.Context, *GetBidRequest) (*GetBidResponse, error)
	ListBids(context.Context, *ListBidsRequest) (*ListBidsResponse, error)
	// Audit trail.
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	mustEmbedUnimplementedMarketplaceServiceServer()
}

// UnimplementedMarketplaceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMarketplaceServiceServer struct{}

func (UnimplementedMarketplaceServiceServer) RegisterMint(context.Context, *RegisterMintRequest) (*RegisterMintResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterMint not implemented")
}
func (UnimplementedMarketplaceServiceServer) GetMint(context.Context, *GetMintRequest) (*GetMintResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMint not implemented")
}
func (UnimplementedMarketplaceServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedMarketplaceServiceServer) GetTokenAccount(context.Context, *GetTokenAccountRequest) (*GetTokenAccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTokenAccount not implemented")
}
func (UnimplementedMarketplaceServiceServer) CreateListing(context.Context, *CreateListingRequest) (*CreateListingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateListing not implemented")
}
func (UnimplementedMarketplaceServiceServer) CancelListing(context.Context, *CancelListingRequest) (*CancelListingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelListing not implemented")
}
func (UnimplementedMarketplaceServiceServer) ExecuteSale(context.Context, *ExecuteSaleRequest) (*ExecuteSaleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExecuteSale not implemented")
}
func (UnimplementedMarketplaceServiceServer) GetListing(context.Context, *GetListingRequest) (*GetListingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetListing not implemented")
}
func (UnimplementedMarketplaceServiceServer) ListListings(context.Context, *ListListingsRequest) (*ListListingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListListings not implemented")
}
func (UnimplementedMarketplaceServiceServer) PlaceBid(context.Context, *PlaceBidRequest) (*PlaceBidResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlaceBid not implemented")
}
func (UnimplementedMarketplaceServiceServer) CancelBid(context.Context, *CancelBidRequest) (*CancelBidResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelBid not implemented")
}
func (UnimplementedMarketplaceServiceServer) AcceptBid(context.Context, *AcceptBidRequest) (*AcceptBidResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptBid not implemented")
}
func (UnimplementedMarketplaceServiceServer) GetBid(context.Context, *GetBidRequest) (*GetBidResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBid not implemented")
}
func (UnimplementedMarketplaceServiceServer) ListBids(context.Context, *ListBidsRequest) (*ListBidsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBids not implemented")
}
func (UnimplementedMarketplaceServiceServer) ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEvents not implemented")
}
func (UnimplementedMarketplaceServiceServer) mustEmbedUnimplementedMarketplaceServiceServer() {}
func (UnimplementedMarketplaceServiceServer) testEmbeddedByValue()                            {}

// UnsafeMarketplaceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MarketplaceServiceServer will
// result in compilation errors.
type UnsafeMarketplaceServiceServer interface {
	mustEmbedUnimplementedMarketplaceServiceServer()
}

func RegisterMarketplaceServiceServer(s grpc.ServiceRegistrar, srv MarketplaceServiceServer) {
	// If the following call panics, it indicates UnimplementedMarketplaceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MarketplaceService_ServiceDesc, srv)
}

func _MarketplaceService_RegisterMint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterMintRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).RegisterMint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_RegisterMint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).RegisterMint(ctx, req.(*RegisterMintRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_GetMint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMintRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).GetMint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_GetMint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).GetMint(ctx, req.(*GetMintRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_GetTokenAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTokenAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).GetTokenAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_GetTokenAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).GetTokenAccount(ctx, req.(*GetTokenAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_CreateListing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateListingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).CreateListing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_CreateListing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).CreateListing(ctx, req.(*CreateListingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_CancelListing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelListingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).CancelListing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_CancelListing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).CancelListing(ctx, req.(*CancelListingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_ExecuteSale_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteSaleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).ExecuteSale(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_ExecuteSale_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).ExecuteSale(ctx, req.(*ExecuteSaleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_GetListing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetListingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).GetListing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_GetListing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).GetListing(ctx, req.(*GetListingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_ListListings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListListingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).ListListings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_ListListings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).ListListings(ctx, req.(*ListListingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_PlaceBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlaceBidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).PlaceBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_PlaceBid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).PlaceBid(ctx, req.(*PlaceBidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_CancelBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelBidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).CancelBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_CancelBid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).CancelBid(ctx, req.(*CancelBidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_AcceptBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcceptBidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).AcceptBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_AcceptBid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).AcceptBid(ctx, req.(*AcceptBidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_GetBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).GetBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_GetBid_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).GetBid(ctx, req.(*GetBidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_ListBids_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBidsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).ListBids(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_ListBids_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).ListBids(ctx, req.(*ListBidsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MarketplaceService_ListEvents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEventsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MarketplaceServiceServer).ListEvents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MarketplaceService_ListEvents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MarketplaceServiceServer).ListEvents(ctx, req.(*ListEventsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MarketplaceService_ServiceDesc is the grpc.ServiceDesc for MarketplaceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MarketplaceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "marketplace.v1.MarketplaceService",
	HandlerType: (*MarketplaceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterMint",
			Handler:    _MarketplaceService_RegisterMint_Handler,
		},
		{
			MethodName: "GetMint",
			Handler:    _MarketplaceService_GetMint_Handler,
		},
		{
			MethodName: "Deposit",
			Handler:    _MarketplaceService_Deposit_Handler,
		},
		{
			MethodName: "GetTokenAccount",
			Handler:    _MarketplaceService_GetTokenAccount_Handler,
		},
		{
			MethodName: "CreateListing",
			Handler:    _MarketplaceService_CreateListing_Handler,
		},
		{
			MethodName: "CancelListing",
			Handler:    _MarketplaceService_CancelListing_Handler,
		},
		{
			MethodName: "ExecuteSale",
			Handler:    _MarketplaceService_ExecuteSale_Handler,
		},
		{
			MethodName: "GetListing",
			Handler:    _MarketplaceService_GetListing_Handler,
		},
		{
			MethodName: "ListListings",
			Handler:    _MarketplaceService_ListListings_Handler,
		},
		{
			MethodName: "PlaceBid",
			Handler:    _MarketplaceService_PlaceBid_Handler,
		},
		{
			MethodName: "CancelBid",
			Handler:    _MarketplaceService_CancelBid_Handler,
		},
		{
			MethodName: "AcceptBid",
			Handler:    _MarketplaceService_AcceptBid_Handler,
		},
		{
			MethodName: "GetBid",
			Handler:    _MarketplaceService_GetBid_Handler,
		},
		{
			MethodName: "ListBids",
			Handler:    _MarketplaceService_ListBids_Handler,
		},
		{
			MethodName: "ListEvents",
			Handler:    _MarketplaceService_ListEvents_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marketplace/v1/marketplace.proto",
}
