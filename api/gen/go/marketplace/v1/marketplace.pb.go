// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: marketplace/v1/marketplace.proto

package marketplacev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// MarketplaceEventType identifies the audit event kind.
type MarketplaceEventType int32

const (
	MarketplaceEventType_MARKETPLACE_EVENT_TYPE_UNSPECIFIED       MarketplaceEventType = 0
	MarketplaceEventType_MARKETPLACE_EVENT_TYPE_LISTING_CREATED   MarketplaceEventType = 1
	MarketplaceEventType_MARKETPLACE_EVENT_TYPE_LISTING_CANCELLED MarketplaceEventType = 2
	MarketplaceEventType_MARKETPLACE_EVENT_TYPE_SALE_EXECUTED     MarketplaceEventType = 3
	MarketplaceEventType_MARKETPLACE_EVENT_TYPE_BID_PLACED        MarketplaceEventType = 4
	MarketplaceEventType_MARKETPLACE_EVENT_TYPE_BID_CANCELLED     MarketplaceEventType = 5
	MarketplaceEventType_MARKETPLACE_EVENT_TYPE_BID_ACCEPTED      MarketplaceEventType = 6
)

// Enum value maps for MarketplaceEventType.
var (
	MarketplaceEventType_name = map[int32]string{
		0: "MARKETPLACE_EVENT_TYPE_UNSPECIFIED",
		1: "MARKETPLACE_EVENT_TYPE_LISTING_CREATED",
		2: "MARKETPLACE_EVENT_TYPE_LISTING_CANCELLED",
		3: "MARKETPLACE_EVENT_TYPE_SALE_EXECUTED",
		4: "MARKETPLACE_EVENT_TYPE_BID_PLACED",
		5: "MARKETPLACE_EVENT_TYPE_BID_CANCELLED",
		6: "MARKETPLACE_EVENT_TYPE_BID_ACCEPTED",
	}
	MarketplaceEventType_value = map[string]int32{
		"MARKETPLACE_EVENT_TYPE_UNSPECIFIED":       0,
		"MARKETPLACE_EVENT_TYPE_LISTING_CREATED":   1,
		"MARKETPLACE_EVENT_TYPE_LISTING_CANCELLED": 2,
		"MARKETPLACE_EVENT_TYPE_SALE_EXECUTED":     3,
		"MARKETPLACE_EVENT_TYPE_BID_PLACED":        4,
		"MARKETPLACE_EVENT_TYPE_BID_CANCELLED":     5,
		"MARKETPLACE_EVENT_TYPE_BID_ACCEPTED":      6,
	}
)

func (x MarketplaceEventType) Enum() *MarketplaceEventType {
	p := new(MarketplaceEventType)
	*p = x
	return p
}

func (x MarketplaceEventType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (MarketplaceEventType) Descriptor() protoreflect.EnumDescriptor {
	return file_marketplace_v1_marketplace_proto_enumTypes[0].Descriptor()
}

func (MarketplaceEventType) Type() protoreflect.EnumType {
	return &file_marketplace_v1_marketplace_proto_enumTypes[0]
}

func (x MarketplaceEventType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use MarketplaceEventType.Descriptor instead.
func (MarketplaceEventType) EnumDescriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{0}
}

// Creator is a royalty recipient attached to a mint.
type Creator struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Address  string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Verified bool                   `protobuf:"varint,2,opt,name=verified,proto3" json:"verified,omitempty"`
	// share_percent is the royalty share in whole percent (0-100).
	SharePercent  uint32 `protobuf:"varint,3,opt,name=share_percent,json=sharePercent,proto3" json:"share_percent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Creator) Reset() {
	*x = Creator{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Creator) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Creator) ProtoMessage() {}

func (x *Creator) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Creator.ProtoReflect.Descriptor instead.
func (*Creator) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{0}
}

func (x *Creator) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Creator) GetVerified() bool {
	if x != nil {
		return x.Verified
	}
	return false
}

func (x *Creator) GetSharePercent() uint32 {
	if x != nil {
		return x.SharePercent
	}
	return 0
}

// Mint is a registered token with royalty metadata.
type Mint struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Creators      []*Creator             `protobuf:"bytes,2,rep,name=creators,proto3" json:"creators,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Mint) Reset() {
	*x = Mint{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Mint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Mint) ProtoMessage() {}

func (x *Mint) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Mint.ProtoReflect.Descriptor instead.
func (*Mint) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{1}
}

func (x *Mint) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Mint) GetCreators() []*Creator {
	if x != nil {
		return x.Creators
	}
	return nil
}

func (x *Mint) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

// TokenAccount tracks one owner's balance for one mint.
type TokenAccount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Owner         string                 `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	MintAddress   string                 `protobuf:"bytes,2,opt,name=mint_address,json=mintAddress,proto3" json:"mint_address,omitempty"`
	Balance       uint64                 `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TokenAccount) Reset() {
	*x = TokenAccount{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TokenAccount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TokenAccount) ProtoMessage() {}

func (x *TokenAccount) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TokenAccount.ProtoReflect.Descriptor instead.
func (*TokenAccount) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{2}
}

func (x *TokenAccount) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *TokenAccount) GetMintAddress() string {
	if x != nil {
		return x.MintAddress
	}
	return ""
}

func (x *TokenAccount) GetBalance() uint64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *TokenAccount) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

// Listing is an NFT sale offer with quantity escrowed to the vault.
type Listing struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ListingId string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	Seller    string                 `protobuf:"bytes,2,opt,name=seller,proto3" json:"seller,omitempty"`
	NftMint   string                 `protobuf:"bytes,3,opt,name=nft_mint,json=nftMint,proto3" json:"nft_mint,omitempty"`
	Price     uint64                 `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	Quantity  uint64                 `protobuf:"varint,5,opt,name=quantity,proto3" json:"quantity,omitempty"`
	CreatedAt *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	// expires_at is unset when the listing never expires.
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Listing) Reset() {
	*x = Listing{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Listing) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Listing) ProtoMessage() {}

func (x *Listing) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Listing.ProtoReflect.Descriptor instead.
func (*Listing) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{3}
}

func (x *Listing) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

func (x *Listing) GetSeller() string {
	if x != nil {
		return x.Seller
	}
	return ""
}

func (x *Listing) GetNftMint() string {
	if x != nil {
		return x.NftMint
	}
	return ""
}

func (x *Listing) GetPrice() uint64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Listing) GetQuantity() uint64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *Listing) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Listing) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

// Bid is an offer to buy with the bid amount escrowed.
type Bid struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	BidId       string                 `protobuf:"bytes,1,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
	Bidder      string                 `protobuf:"bytes,2,opt,name=bidder,proto3" json:"bidder,omitempty"`
	NftMint     string                 `protobuf:"bytes,3,opt,name=nft_mint,json=nftMint,proto3" json:"nft_mint,omitempty"`
	PaymentMint string                 `protobuf:"bytes,4,opt,name=payment_mint,json=paymentMint,proto3" json:"payment_mint,omitempty"`
	Price       uint64                 `protobuf:"varint,5,opt,name=price,proto3" json:"price,omitempty"`
	CreatedAt   *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	// expires_at is unset when the bid never expires.
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Bid) Reset() {
	*x = Bid{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Bid) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Bid) ProtoMessage() {}

func (x *Bid) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Bid.ProtoReflect.Descriptor instead.
func (*Bid) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{4}
}

func (x *Bid) GetBidId() string {
	if x != nil {
		return x.BidId
	}
	return ""
}

func (x *Bid) GetBidder() string {
	if x != nil {
		return x.Bidder
	}
	return ""
}

func (x *Bid) GetNftMint() string {
	if x != nil {
		return x.NftMint
	}
	return ""
}

func (x *Bid) GetPaymentMint() string {
	if x != nil {
		return x.PaymentMint
	}
	return ""
}

func (x *Bid) GetPrice() uint64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Bid) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Bid) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

// CreatorPayment is one royalty payout inside a settlement.
type CreatorPayment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Amount        uint64                 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatorPayment) Reset() {
	*x = CreatorPayment{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatorPayment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatorPayment) ProtoMessage() {}

func (x *CreatorPayment) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatorPayment.ProtoReflect.Descriptor instead.
func (*CreatorPayment) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{5}
}

func (x *CreatorPayment) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *CreatorPayment) GetAmount() uint64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

// Sale reports the settlement breakdown of an executed sale or accepted bid.
type Sale struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	NftMint         string                 `protobuf:"bytes,1,opt,name=nft_mint,json=nftMint,proto3" json:"nft_mint,omitempty"`
	Seller          string                 `protobuf:"bytes,2,opt,name=seller,proto3" json:"seller,omitempty"`
	Buyer           string                 `protobuf:"bytes,3,opt,name=buyer,proto3" json:"buyer,omitempty"`
	Price           uint64                 `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	SellerPayment   uint64                 `protobuf:"varint,5,opt,name=seller_payment,json=sellerPayment,proto3" json:"seller_payment,omitempty"`
	CreatorPayments []*CreatorPayment      `protobuf:"bytes,6,rep,name=creator_payments,json=creatorPayments,proto3" json:"creator_payments,omitempty"`
	MarketplaceFee  uint64                 `protobuf:"varint,7,opt,name=marketplace_fee,json=marketplaceFee,proto3" json:"marketplace_fee,omitempty"`
	SecondBidderFee uint64                 `protobuf:"varint,8,opt,name=second_bidder_fee,json=secondBidderFee,proto3" json:"second_bidder_fee,omitempty"`
	ExecutedAt      *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=executed_at,json=executedAt,proto3" json:"executed_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Sale) Reset() {
	*x = Sale{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Sale) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Sale) ProtoMessage() {}

func (x *Sale) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Sale.ProtoReflect.Descriptor instead.
func (*Sale) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{6}
}

func (x *Sale) GetNftMint() string {
	if x != nil {
		return x.NftMint
	}
	return ""
}

func (x *Sale) GetSeller() string {
	if x != nil {
		return x.Seller
	}
	return ""
}

func (x *Sale) GetBuyer() string {
	if x != nil {
		return x.Buyer
	}
	return ""
}

func (x *Sale) GetPrice() uint64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Sale) GetSellerPayment() uint64 {
	if x != nil {
		return x.SellerPayment
	}
	return 0
}

func (x *Sale) GetCreatorPayments() []*CreatorPayment {
	if x != nil {
		return x.CreatorPayments
	}
	return nil
}

func (x *Sale) GetMarketplaceFee() uint64 {
	if x != nil {
		return x.MarketplaceFee
	}
	return 0
}

func (x *Sale) GetSecondBidderFee() uint64 {
	if x != nil {
		return x.SecondBidderFee
	}
	return 0
}

func (x *Sale) GetExecutedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExecutedAt
	}
	return nil
}

// MarketplaceEvent is one audit record appended by a state transition.
type MarketplaceEvent struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	EventId string                 `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	Type    MarketplaceEventType   `protobuf:"varint,2,opt,name=type,proto3,enum=marketplace.v1.MarketplaceEventType" json:"type,omitempty"`
	NftMint string                 `protobuf:"bytes,3,opt,name=nft_mint,json=nftMint,proto3" json:"nft_mint,omitempty"`
	// actor is the party that initiated the transition.
	Actor string `protobuf:"bytes,4,opt,name=actor,proto3" json:"actor,omitempty"`
	// counterparty is the other side of a settlement, when present.
	Counterparty  string                 `protobuf:"bytes,5,opt,name=counterparty,proto3" json:"counterparty,omitempty"`
	Price         uint64                 `protobuf:"varint,6,opt,name=price,proto3" json:"price,omitempty"`
	Quantity      uint64                 `protobuf:"varint,7,opt,name=quantity,proto3" json:"quantity,omitempty"`
	ListingId     string                 `protobuf:"bytes,8,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	BidId         string                 `protobuf:"bytes,9,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarketplaceEvent) Reset() {
	*x = MarketplaceEvent{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarketplaceEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarketplaceEvent) ProtoMessage() {}

func (x *MarketplaceEvent) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarketplaceEvent.ProtoReflect.Descriptor instead.
func (*MarketplaceEvent) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{7}
}

func (x *MarketplaceEvent) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *MarketplaceEvent) GetType() MarketplaceEventType {
	if x != nil {
		return x.Type
	}
	return MarketplaceEventType_MARKETPLACE_EVENT_TYPE_UNSPECIFIED
}

func (x *MarketplaceEvent) GetNftMint() string {
	if x != nil {
		return x.NftMint
	}
	return ""
}

func (x *MarketplaceEvent) GetActor() string {
	if x != nil {
		return x.Actor
	}
	return ""
}

func (x *MarketplaceEvent) GetCounterparty() string {
	if x != nil {
		return x.Counterparty
	}
	return ""
}

func (x *MarketplaceEvent) GetPrice() uint64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *MarketplaceEvent) GetQuantity() uint64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *MarketplaceEvent) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

func (x *MarketplaceEvent) GetBidId() string {
	if x != nil {
		return x.BidId
	}
	return ""
}

func (x *MarketplaceEvent) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type RegisterMintRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MintAddress   string                 `protobuf:"bytes,1,opt,name=mint_address,json=mintAddress,proto3" json:"mint_address,omitempty"`
	Creators      []*Creator             `protobuf:"bytes,2,rep,name=creators,proto3" json:"creators,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterMintRequest) Reset() {
	*x = RegisterMintRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterMintRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterMintRequest) ProtoMessage() {}

func (x *RegisterMintRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterMintRequest.ProtoReflect.Descriptor instead.
func (*RegisterMintRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{8}
}

func (x *RegisterMintRequest) GetMintAddress() string {
	if x != nil {
		return x.MintAddress
	}
	return ""
}

func (x *RegisterMintRequest) GetCreators() []*Creator {
	if x != nil {
		return x.Creators
	}
	return nil
}

type RegisterMintResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mint          *Mint                  `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterMintResponse) Reset() {
	*x = RegisterMintResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterMintResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterMintResponse) ProtoMessage() {}

func (x *RegisterMintResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterMintResponse.ProtoReflect.Descriptor instead.
func (*RegisterMintResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{9}
}

func (x *RegisterMintResponse) GetMint() *Mint {
	if x != nil {
		return x.Mint
	}
	return nil
}

type GetMintRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MintAddress   string                 `protobuf:"bytes,1,opt,name=mint_address,json=mintAddress,proto3" json:"mint_address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMintRequest) Reset() {
	*x = GetMintRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMintRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMintRequest) ProtoMessage() {}

func (x *GetMintRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMintRequest.ProtoReflect.Descriptor instead.
func (*GetMintRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{10}
}

func (x *GetMintRequest) GetMintAddress() string {
	if x != nil {
		return x.MintAddress
	}
	return ""
}

type GetMintResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Mint          *Mint                  `protobuf:"bytes,1,opt,name=mint,proto3" json:"mint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMintResponse) Reset() {
	*x = GetMintResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMintResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMintResponse) ProtoMessage() {}

func (x *GetMintResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMintResponse.ProtoReflect.Descriptor instead.
func (*GetMintResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{11}
}

func (x *GetMintResponse) GetMint() *Mint {
	if x != nil {
		return x.Mint
	}
	return nil
}

type DepositRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Owner         string                 `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	MintAddress   string                 `protobuf:"bytes,2,opt,name=mint_address,json=mintAddress,proto3" json:"mint_address,omitempty"`
	Amount        uint64                 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositRequest) Reset() {
	*x = DepositRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositRequest) ProtoMessage() {}

func (x *DepositRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositRequest.ProtoReflect.Descriptor instead.
func (*DepositRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{12}
}

func (x *DepositRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *DepositRequest) GetMintAddress() string {
	if x != nil {
		return x.MintAddress
	}
	return ""
}

func (x *DepositRequest) GetAmount() uint64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type DepositResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       *TokenAccount          `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositResponse) Reset() {
	*x = DepositResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositResponse) ProtoMessage() {}

func (x *DepositResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositResponse.ProtoReflect.Descriptor instead.
func (*DepositResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{13}
}

func (x *DepositResponse) GetAccount() *TokenAccount {
	if x != nil {
		return x.Account
	}
	return nil
}

type GetTokenAccountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Owner         string                 `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	MintAddress   string                 `protobuf:"bytes,2,opt,name=mint_address,json=mintAddress,proto3" json:"mint_address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTokenAccountRequest) Reset() {
	*x = GetTokenAccountRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTokenAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTokenAccountRequest) ProtoMessage() {}

func (x *GetTokenAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTokenAccountRequest.ProtoReflect.Descriptor instead.
func (*GetTokenAccountRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{14}
}

func (x *GetTokenAccountRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

func (x *GetTokenAccountRequest) GetMintAddress() string {
	if x != nil {
		return x.MintAddress
	}
	return ""
}

type GetTokenAccountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       *TokenAccount          `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTokenAccountResponse) Reset() {
	*x = GetTokenAccountResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTokenAccountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTokenAccountResponse) ProtoMessage() {}

func (x *GetTokenAccountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTokenAccountResponse.ProtoReflect.Descriptor instead.
func (*GetTokenAccountResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{15}
}

func (x *GetTokenAccountResponse) GetAccount() *TokenAccount {
	if x != nil {
		return x.Account
	}
	return nil
}

type CreateListingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seller        string                 `protobuf:"bytes,1,opt,name=seller,proto3" json:"seller,omitempty"`
	NftMint       string                 `protobuf:"bytes,2,opt,name=nft_mint,json=nftMint,proto3" json:"nft_mint,omitempty"`
	Price         uint64                 `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
	Quantity      uint64                 `protobuf:"varint,4,opt,name=quantity,proto3" json:"quantity,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateListingRequest) Reset() {
	*x = CreateListingRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateListingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateListingRequest) ProtoMessage() {}

func (x *CreateListingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateListingRequest.ProtoReflect.Descriptor instead.
func (*CreateListingRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{16}
}

func (x *CreateListingRequest) GetSeller() string {
	if x != nil {
		return x.Seller
	}
	return ""
}

func (x *CreateListingRequest) GetNftMint() string {
	if x != nil {
		return x.NftMint
	}
	return ""
}

func (x *CreateListingRequest) GetPrice() uint64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *CreateListingRequest) GetQuantity() uint64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *CreateListingRequest) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

type CreateListingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Listing       *Listing               `protobuf:"bytes,1,opt,name=listing,proto3" json:"listing,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateListingResponse) Reset() {
	*x = CreateListingResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateListingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateListingResponse) ProtoMessage() {}

func (x *CreateListingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateListingResponse.ProtoReflect.Descriptor instead.
func (*CreateListingResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{17}
}

func (x *CreateListingResponse) GetListing() *Listing {
	if x != nil {
		return x.Listing
	}
	return nil
}

type CancelListingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ListingId     string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	Seller        string                 `protobuf:"bytes,2,opt,name=seller,proto3" json:"seller,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelListingRequest) Reset() {
	*x = CancelListingRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelListingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelListingRequest) ProtoMessage() {}

func (x *CancelListingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelListingRequest.ProtoReflect.Descriptor instead.
func (*CancelListingRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{18}
}

func (x *CancelListingRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

func (x *CancelListingRequest) GetSeller() string {
	if x != nil {
		return x.Seller
	}
	return ""
}

type CancelListingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelListingResponse) Reset() {
	*x = CancelListingResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelListingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelListingResponse) ProtoMessage() {}

func (x *CancelListingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelListingResponse.ProtoReflect.Descriptor instead.
func (*CancelListingResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{19}
}

type ExecuteSaleRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	ListingId   string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	Buyer       string                 `protobuf:"bytes,2,opt,name=buyer,proto3" json:"buyer,omitempty"`
	PaymentMint string                 `protobuf:"bytes,3,opt,name=payment_mint,json=paymentMint,proto3" json:"payment_mint,omitempty"`
	// second_bidder receives a share of the platform fee; empty routes the
	// whole fee to the marketplace.
	SecondBidder     string `protobuf:"bytes,4,opt,name=second_bidder,json=secondBidder,proto3" json:"second_bidder,omitempty"`
	SecondHighestBid uint64 `protobuf:"varint,5,opt,name=second_highest_bid,json=secondHighestBid,proto3" json:"second_highest_bid,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExecuteSaleRequest) Reset() {
	*x = ExecuteSaleRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteSaleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteSaleRequest) ProtoMessage() {}

func (x *ExecuteSaleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteSaleRequest.ProtoReflect.Descriptor instead.
func (*ExecuteSaleRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{20}
}

func (x *ExecuteSaleRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

func (x *ExecuteSaleRequest) GetBuyer() string {
	if x != nil {
		return x.Buyer
	}
	return ""
}

func (x *ExecuteSaleRequest) GetPaymentMint() string {
	if x != nil {
		return x.PaymentMint
	}
	return ""
}

func (x *ExecuteSaleRequest) GetSecondBidder() string {
	if x != nil {
		return x.SecondBidder
	}
	return ""
}

func (x *ExecuteSaleRequest) GetSecondHighestBid() uint64 {
	if x != nil {
		return x.SecondHighestBid
	}
	return 0
}

type ExecuteSaleResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Sale             *Sale                  `protobuf:"bytes,1,opt,name=sale,proto3" json:"sale,omitempty"`
	RemainingListing *Listing               `protobuf:"bytes,2,opt,name=remaining_listing,json=remainingListing,proto3" json:"remaining_listing,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExecuteSaleResponse) Reset() {
	*x = ExecuteSaleResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExecuteSaleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExecuteSaleResponse) ProtoMessage() {}

func (x *ExecuteSaleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExecuteSaleResponse.ProtoReflect.Descriptor instead.
func (*ExecuteSaleResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{21}
}

func (x *ExecuteSaleResponse) GetSale() *Sale {
	if x != nil {
		return x.Sale
	}
	return nil
}

func (x *ExecuteSaleResponse) GetRemainingListing() *Listing {
	if x != nil {
		return x.RemainingListing
	}
	return nil
}

type GetListingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ListingId     string                 `protobuf:"bytes,1,opt,name=listing_id,json=listingId,proto3" json:"listing_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetListingRequest) Reset() {
	*x = GetListingRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetListingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetListingRequest) ProtoMessage() {}

func (x *GetListingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetListingRequest.ProtoReflect.Descriptor instead.
func (*GetListingRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{22}
}

func (x *GetListingRequest) GetListingId() string {
	if x != nil {
		return x.ListingId
	}
	return ""
}

type GetListingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Listing       *Listing               `protobuf:"bytes,1,opt,name=listing,proto3" json:"listing,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetListingResponse) Reset() {
	*x = GetListingResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetListingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetListingResponse) ProtoMessage() {}

func (x *GetListingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetListingResponse.ProtoReflect.Descriptor instead.
func (*GetListingResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{23}
}

func (x *GetListingResponse) GetListing() *Listing {
	if x != nil {
		return x.Listing
	}
	return nil
}

type ListListingsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	PageSize  int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	// filter is an AIP-160 expression over seller, nft_mint, price, quantity.
	Filter        string `protobuf:"bytes,3,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListListingsRequest) Reset() {
	*x = ListListingsRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListListingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListListingsRequest) ProtoMessage() {}

func (x *ListListingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListListingsRequest.ProtoReflect.Descriptor instead.
func (*ListListingsRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{24}
}

func (x *ListListingsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListListingsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListListingsRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ListListingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Listings      []*Listing             `protobuf:"bytes,1,rep,name=listings,proto3" json:"listings,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListListingsResponse) Reset() {
	*x = ListListingsResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListListingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListListingsResponse) ProtoMessage() {}

func (x *ListListingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListListingsResponse.ProtoReflect.Descriptor instead.
func (*ListListingsResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{25}
}

func (x *ListListingsResponse) GetListings() []*Listing {
	if x != nil {
		return x.Listings
	}
	return nil
}

func (x *ListListingsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type PlaceBidRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bidder        string                 `protobuf:"bytes,1,opt,name=bidder,proto3" json:"bidder,omitempty"`
	NftMint       string                 `protobuf:"bytes,2,opt,name=nft_mint,json=nftMint,proto3" json:"nft_mint,omitempty"`
	PaymentMint   string                 `protobuf:"bytes,3,opt,name=payment_mint,json=paymentMint,proto3" json:"payment_mint,omitempty"`
	Price         uint64                 `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaceBidRequest) Reset() {
	*x = PlaceBidRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaceBidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaceBidRequest) ProtoMessage() {}

func (x *PlaceBidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaceBidRequest.ProtoReflect.Descriptor instead.
func (*PlaceBidRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{26}
}

func (x *PlaceBidRequest) GetBidder() string {
	if x != nil {
		return x.Bidder
	}
	return ""
}

func (x *PlaceBidRequest) GetNftMint() string {
	if x != nil {
		return x.NftMint
	}
	return ""
}

func (x *PlaceBidRequest) GetPaymentMint() string {
	if x != nil {
		return x.PaymentMint
	}
	return ""
}

func (x *PlaceBidRequest) GetPrice() uint64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *PlaceBidRequest) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

type PlaceBidResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bid           *Bid                   `protobuf:"bytes,1,opt,name=bid,proto3" json:"bid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaceBidResponse) Reset() {
	*x = PlaceBidResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaceBidResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaceBidResponse) ProtoMessage() {}

func (x *PlaceBidResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaceBidResponse.ProtoReflect.Descriptor instead.
func (*PlaceBidResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{27}
}

func (x *PlaceBidResponse) GetBid() *Bid {
	if x != nil {
		return x.Bid
	}
	return nil
}

type CancelBidRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BidId         string                 `protobuf:"bytes,1,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
	Bidder        string                 `protobuf:"bytes,2,opt,name=bidder,proto3" json:"bidder,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBidRequest) Reset() {
	*x = CancelBidRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBidRequest) ProtoMessage() {}

func (x *CancelBidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBidRequest.ProtoReflect.Descriptor instead.
func (*CancelBidRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{28}
}

func (x *CancelBidRequest) GetBidId() string {
	if x != nil {
		return x.BidId
	}
	return ""
}

func (x *CancelBidRequest) GetBidder() string {
	if x != nil {
		return x.Bidder
	}
	return ""
}

type CancelBidResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBidResponse) Reset() {
	*x = CancelBidResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBidResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBidResponse) ProtoMessage() {}

func (x *CancelBidResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBidResponse.ProtoReflect.Descriptor instead.
func (*CancelBidResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{29}
}

type AcceptBidRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	BidId            string                 `protobuf:"bytes,1,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
	Seller           string                 `protobuf:"bytes,2,opt,name=seller,proto3" json:"seller,omitempty"`
	SecondBidder     string                 `protobuf:"bytes,3,opt,name=second_bidder,json=secondBidder,proto3" json:"second_bidder,omitempty"`
	SecondHighestBid uint64                 `protobuf:"varint,4,opt,name=second_highest_bid,json=secondHighestBid,proto3" json:"second_highest_bid,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *AcceptBidRequest) Reset() {
	*x = AcceptBidRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptBidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptBidRequest) ProtoMessage() {}

func (x *AcceptBidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptBidRequest.ProtoReflect.Descriptor instead.
func (*AcceptBidRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{30}
}

func (x *AcceptBidRequest) GetBidId() string {
	if x != nil {
		return x.BidId
	}
	return ""
}

func (x *AcceptBidRequest) GetSeller() string {
	if x != nil {
		return x.Seller
	}
	return ""
}

func (x *AcceptBidRequest) GetSecondBidder() string {
	if x != nil {
		return x.SecondBidder
	}
	return ""
}

func (x *AcceptBidRequest) GetSecondHighestBid() uint64 {
	if x != nil {
		return x.SecondHighestBid
	}
	return 0
}

type AcceptBidResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sale          *Sale                  `protobuf:"bytes,1,opt,name=sale,proto3" json:"sale,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptBidResponse) Reset() {
	*x = AcceptBidResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptBidResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptBidResponse) ProtoMessage() {}

func (x *AcceptBidResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptBidResponse.ProtoReflect.Descriptor instead.
func (*AcceptBidResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{31}
}

func (x *AcceptBidResponse) GetSale() *Sale {
	if x != nil {
		return x.Sale
	}
	return nil
}

type GetBidRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BidId         string                 `protobuf:"bytes,1,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBidRequest) Reset() {
	*x = GetBidRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBidRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBidRequest) ProtoMessage() {}

func (x *GetBidRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBidRequest.ProtoReflect.Descriptor instead.
func (*GetBidRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{32}
}

func (x *GetBidRequest) GetBidId() string {
	if x != nil {
		return x.BidId
	}
	return ""
}

type GetBidResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bid           *Bid                   `protobuf:"bytes,1,opt,name=bid,proto3" json:"bid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBidResponse) Reset() {
	*x = GetBidResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBidResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBidResponse) ProtoMessage() {}

func (x *GetBidResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBidResponse.ProtoReflect.Descriptor instead.
func (*GetBidResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{33}
}

func (x *GetBidResponse) GetBid() *Bid {
	if x != nil {
		return x.Bid
	}
	return nil
}

type ListBidsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	PageSize  int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	// filter is an AIP-160 expression over bidder, nft_mint, payment_mint, price.
	Filter        string `protobuf:"bytes,3,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBidsRequest) Reset() {
	*x = ListBidsRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBidsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBidsRequest) ProtoMessage() {}

func (x *ListBidsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBidsRequest.ProtoReflect.Descriptor instead.
func (*ListBidsRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{34}
}

func (x *ListBidsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListBidsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListBidsRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ListBidsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bids          []*Bid                 `protobuf:"bytes,1,rep,name=bids,proto3" json:"bids,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBidsResponse) Reset() {
	*x = ListBidsResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBidsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBidsResponse) ProtoMessage() {}

func (x *ListBidsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBidsResponse.ProtoReflect.Descriptor instead.
func (*ListBidsResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{35}
}

func (x *ListBidsResponse) GetBids() []*Bid {
	if x != nil {
		return x.Bids
	}
	return nil
}

func (x *ListBidsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type ListEventsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	PageSize  int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	// filter is an AIP-160 expression over type, nft_mint, actor, listing_id, bid_id.
	Filter string `protobuf:"bytes,3,opt,name=filter,proto3" json:"filter,omitempty"`
	// order_by is "created_at" (append order, default) or "created_at desc".
	OrderBy       string `protobuf:"bytes,4,opt,name=order_by,json=orderBy,proto3" json:"order_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEventsRequest) Reset() {
	*x = ListEventsRequest{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEventsRequest) ProtoMessage() {}

func (x *ListEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEventsRequest.ProtoReflect.Descriptor instead.
func (*ListEventsRequest) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{36}
}

func (x *ListEventsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListEventsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListEventsRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *ListEventsRequest) GetOrderBy() string {
	if x != nil {
		return x.OrderBy
	}
	return ""
}

type ListEventsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Events        []*MarketplaceEvent    `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEventsResponse) Reset() {
	*x = ListEventsResponse{}
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEventsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEventsResponse) ProtoMessage() {}

func (x *ListEventsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketplace_v1_marketplace_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEventsResponse.ProtoReflect.Descriptor instead.
func (*ListEventsResponse) Descriptor() ([]byte, []int) {
	return file_marketplace_v1_marketplace_proto_rawDescGZIP(), []int{37}
}

func (x *ListEventsResponse) GetEvents() []*MarketplaceEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

func (x *ListEventsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

var File_marketplace_v1_marketplace_proto protoreflect.FileDescriptor

const file_marketplace_v1_marketplace_proto_rawDesc = "" +
	"\n" +
	" marketplace/v1/marketplace.proto\x12\x0emarketplace.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"d\n" +
	"\aCreator\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x1a\n" +
	"\bverified\x18\x02 \x01(\bR\bverified\x12#\n" +
	"\rshare_percent\x18\x03 \x01(\rR\fsharePercent\"\x90\x01\n" +
	"\x04Mint\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x123\n" +
	"\bcreators\x18\x02 \x03(\v2\x17.marketplace.v1.CreatorR\bcreators\x129\n" +
	"\n" +
	"created_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x9c\x01\n" +
	"\fTokenAccount\x12\x14\n" +
	"\x05owner\x18\x01 \x01(\tR\x05owner\x12!\n" +
	"\fmint_address\x18\x02 \x01(\tR\vmintAddress\x12\x18\n" +
	"\abalance\x18\x03 \x01(\x04R\abalance\x129\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x83\x02\n" +
	"\aListing\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\x12\x16\n" +
	"\x06seller\x18\x02 \x01(\tR\x06seller\x12\x19\n" +
	"\bnft_mint\x18\x03 \x01(\tR\anftMint\x12\x14\n" +
	"\x05price\x18\x04 \x01(\x04R\x05price\x12\x1a\n" +
	"\bquantity\x18\x05 \x01(\x04R\bquantity\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"expires_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"\xfe\x01\n" +
	"\x03Bid\x12\x15\n" +
	"\x06bid_id\x18\x01 \x01(\tR\x05bidId\x12\x16\n" +
	"\x06bidder\x18\x02 \x01(\tR\x06bidder\x12\x19\n" +
	"\bnft_mint\x18\x03 \x01(\tR\anftMint\x12!\n" +
	"\fpayment_mint\x18\x04 \x01(\tR\vpaymentMint\x12\x14\n" +
	"\x05price\x18\x05 \x01(\x04R\x05price\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"expires_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"B\n" +
	"\x0eCreatorPayment\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x04R\x06amount\"\xe9\x02\n" +
	"\x04Sale\x12\x19\n" +
	"\bnft_mint\x18\x01 \x01(\tR\anftMint\x12\x16\n" +
	"\x06seller\x18\x02 \x01(\tR\x06seller\x12\x14\n" +
	"\x05buyer\x18\x03 \x01(\tR\x05buyer\x12\x14\n" +
	"\x05price\x18\x04 \x01(\x04R\x05price\x12%\n" +
	"\x0eseller_payment\x18\x05 \x01(\x04R\rsellerPayment\x12I\n" +
	"\x10creator_payments\x18\x06 \x03(\v2\x1e.marketplace.v1.CreatorPaymentR\x0fcreatorPayments\x12'\n" +
	"\x0fmarketplace_fee\x18\a \x01(\x04R\x0emarketplaceFee\x12*\n" +
	"\x11second_bidder_fee\x18\b \x01(\x04R\x0fsecondBidderFee\x12;\n" +
	"\vexecuted_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"executedAt\"\xdf\x02\n" +
	"\x10MarketplaceEvent\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\tR\aeventId\x128\n" +
	"\x04type\x18\x02 \x01(\x0e2$.marketplace.v1.MarketplaceEventTypeR\x04type\x12\x19\n" +
	"\bnft_mint\x18\x03 \x01(\tR\anftMint\x12\x14\n" +
	"\x05actor\x18\x04 \x01(\tR\x05actor\x12\"\n" +
	"\fcounterparty\x18\x05 \x01(\tR\fcounterparty\x12\x14\n" +
	"\x05price\x18\x06 \x01(\x04R\x05price\x12\x1a\n" +
	"\bquantity\x18\a \x01(\x04R\bquantity\x12\x1d\n" +
	"\n" +
	"listing_id\x18\b \x01(\tR\tlistingId\x12\x15\n" +
	"\x06bid_id\x18\t \x01(\tR\x05bidId\x129\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"m\n" +
	"\x13RegisterMintRequest\x12!\n" +
	"\fmint_address\x18\x01 \x01(\tR\vmintAddress\x123\n" +
	"\bcreators\x18\x02 \x03(\v2\x17.marketplace.v1.CreatorR\bcreators\"@\n" +
	"\x14RegisterMintResponse\x12(\n" +
	"\x04mint\x18\x01 \x01(\v2\x14.marketplace.v1.MintR\x04mint\"3\n" +
	"\x0eGetMintRequest\x12!\n" +
	"\fmint_address\x18\x01 \x01(\tR\vmintAddress\";\n" +
	"\x0fGetMintResponse\x12(\n" +
	"\x04mint\x18\x01 \x01(\v2\x14.marketplace.v1.MintR\x04mint\"a\n" +
	"\x0eDepositRequest\x12\x14\n" +
	"\x05owner\x18\x01 \x01(\tR\x05owner\x12!\n" +
	"\fmint_address\x18\x02 \x01(\tR\vmintAddress\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\x04R\x06amount\"I\n" +
	"\x0fDepositResponse\x126\n" +
	"\aaccount\x18\x01 \x01(\v2\x1c.marketplace.v1.TokenAccountR\aaccount\"Q\n" +
	"\x16GetTokenAccountRequest\x12\x14\n" +
	"\x05owner\x18\x01 \x01(\tR\x05owner\x12!\n" +
	"\fmint_address\x18\x02 \x01(\tR\vmintAddress\"Q\n" +
	"\x17GetTokenAccountResponse\x126\n" +
	"\aaccount\x18\x01 \x01(\v2\x1c.marketplace.v1.TokenAccountR\aaccount\"\xb6\x01\n" +
	"\x14CreateListingRequest\x12\x16\n" +
	"\x06seller\x18\x01 \x01(\tR\x06seller\x12\x19\n" +
	"\bnft_mint\x18\x02 \x01(\tR\anftMint\x12\x14\n" +
	"\x05price\x18\x03 \x01(\x04R\x05price\x12\x1a\n" +
	"\bquantity\x18\x04 \x01(\x04R\bquantity\x129\n" +
	"\n" +
	"expires_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"J\n" +
	"\x15CreateListingResponse\x121\n" +
	"\alisting\x18\x01 \x01(\v2\x17.marketplace.v1.ListingR\alisting\"M\n" +
	"\x14CancelListingRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\x12\x16\n" +
	"\x06seller\x18\x02 \x01(\tR\x06seller\"\x17\n" +
	"\x15CancelListingResponse\"\xbf\x01\n" +
	"\x12ExecuteSaleRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\x12\x14\n" +
	"\x05buyer\x18\x02 \x01(\tR\x05buyer\x12!\n" +
	"\fpayment_mint\x18\x03 \x01(\tR\vpaymentMint\x12#\n" +
	"\rsecond_bidder\x18\x04 \x01(\tR\fsecondBidder\x12,\n" +
	"\x12second_highest_bid\x18\x05 \x01(\x04R\x10secondHighestBid\"\x85\x01\n" +
	"\x13ExecuteSaleResponse\x12(\n" +
	"\x04sale\x18\x01 \x01(\v2\x14.marketplace.v1.SaleR\x04sale\x12D\n" +
	"\x11remaining_listing\x18\x02 \x01(\v2\x17.marketplace.v1.ListingR\x10remainingListing\"2\n" +
	"\x11GetListingRequest\x12\x1d\n" +
	"\n" +
	"listing_id\x18\x01 \x01(\tR\tlistingId\"G\n" +
	"\x12GetListingResponse\x121\n" +
	"\alisting\x18\x01 \x01(\v2\x17.marketplace.v1.ListingR\alisting\"i\n" +
	"\x13ListListingsRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\x12\x16\n" +
	"\x06filter\x18\x03 \x01(\tR\x06filter\"s\n" +
	"\x14ListListingsResponse\x123\n" +
	"\blistings\x18\x01 \x03(\v2\x17.marketplace.v1.ListingR\blistings\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\xb8\x01\n" +
	"\x0fPlaceBidRequest\x12\x16\n" +
	"\x06bidder\x18\x01 \x01(\tR\x06bidder\x12\x19\n" +
	"\bnft_mint\x18\x02 \x01(\tR\anftMint\x12!\n" +
	"\fpayment_mint\x18\x03 \x01(\tR\vpaymentMint\x12\x14\n" +
	"\x05price\x18\x04 \x01(\x04R\x05price\x129\n" +
	"\n" +
	"expires_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"9\n" +
	"\x10PlaceBidResponse\x12%\n" +
	"\x03bid\x18\x01 \x01(\v2\x13.marketplace.v1.BidR\x03bid\"A\n" +
	"\x10CancelBidRequest\x12\x15\n" +
	"\x06bid_id\x18\x01 \x01(\tR\x05bidId\x12\x16\n" +
	"\x06bidder\x18\x02 \x01(\tR\x06bidder\"\x13\n" +
	"\x11CancelBidResponse\"\x94\x01\n" +
	"\x10AcceptBidRequest\x12\x15\n" +
	"\x06bid_id\x18\x01 \x01(\tR\x05bidId\x12\x16\n" +
	"\x06seller\x18\x02 \x01(\tR\x06seller\x12#\n" +
	"\rsecond_bidder\x18\x03 \x01(\tR\fsecondBidder\x12,\n" +
	"\x12second_highest_bid\x18\x04 \x01(\x04R\x10secondHighestBid\"=\n" +
	"\x11AcceptBidResponse\x12(\n" +
	"\x04sale\x18\x01 \x01(\v2\x14.marketplace.v1.SaleR\x04sale\"&\n" +
	"\rGetBidRequest\x12\x15\n" +
	"\x06bid_id\x18\x01 \x01(\tR\x05bidId\"7\n" +
	"\x0eGetBidResponse\x12%\n" +
	"\x03bid\x18\x01 \x01(\v2\x13.marketplace.v1.BidR\x03bid\"e\n" +
	"\x0fListBidsRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\x12\x16\n" +
	"\x06filter\x18\x03 \x01(\tR\x06filter\"c\n" +
	"\x10ListBidsResponse\x12'\n" +
	"\x04bids\x18\x01 \x03(\v2\x13.marketplace.v1.BidR\x04bids\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\x82\x01\n" +
	"\x11ListEventsRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\x12\x16\n" +
	"\x06filter\x18\x03 \x01(\tR\x06filter\x12\x19\n" +
	"\border_by\x18\x04 \x01(\tR\aorderBy\"v\n" +
	"\x12ListEventsResponse\x128\n" +
	"\x06events\x18\x01 \x03(\v2 .marketplace.v1.MarketplaceEventR\x06events\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken*\xbc\x02\n" +
	"\x14MarketplaceEventType\x12&\n" +
	"\"MARKETPLACE_EVENT_TYPE_UNSPECIFIED\x10\x00\x12*\n" +
	"&MARKETPLACE_EVENT_TYPE_LISTING_CREATED\x10\x01\x12,\n" +
	"(MARKETPLACE_EVENT_TYPE_LISTING_CANCELLED\x10\x02\x12(\n" +
	"$MARKETPLACE_EVENT_TYPE_SALE_EXECUTED\x10\x03\x12%\n" +
	"!MARKETPLACE_EVENT_TYPE_BID_PLACED\x10\x04\x12(\n" +
	"$MARKETPLACE_EVENT_TYPE_BID_CANCELLED\x10\x05\x12'\n" +
	"#MARKETPLACE_EVENT_TYPE_BID_ACCEPTED\x10\x062\x8f\n" +
	"\n" +
	"\x12MarketplaceService\x12Y\n" +
	"\fRegisterMint\x12#.marketplace.v1.RegisterMintRequest\x1a$.marketplace.v1.RegisterMintResponse\x12J\n" +
	"\aGetMint\x12\x1e.marketplace.v1.GetMintRequest\x1a\x1f.marketplace.v1.GetMintResponse\x12J\n" +
	"\aDeposit\x12\x1e.marketplace.v1.DepositRequest\x1a\x1f.marketplace.v1.DepositResponse\x12b\n" +
	"\x0fGetTokenAccount\x12&.marketplace.v1.GetTokenAccountRequest\x1a'.marketplace.v1.GetTokenAccountResponse\x12\\\n" +
	"\rCreateListing\x12$.marketplace.v1.CreateListingRequest\x1a%.marketplace.v1.CreateListingResponse\x12\\\n" +
	"\rCancelListing\x12$.marketplace.v1.CancelListingRequest\x1a%.marketplace.v1.CancelListingResponse\x12V\n" +
	"\vExecuteSale\x12\".marketplace.v1.ExecuteSaleRequest\x1a#.marketplace.v1.ExecuteSaleResponse\x12S\n" +
	"\n" +
	"GetListing\x12!.marketplace.v1.GetListingRequest\x1a\".marketplace.v1.GetListingResponse\x12Y\n" +
	"\fListListings\x12#.marketplace.v1.ListListingsRequest\x1a$.marketplace.v1.ListListingsResponse\x12M\n" +
	"\bPlaceBid\x12\x1f.marketplace.v1.PlaceBidRequest\x1a .marketplace.v1.PlaceBidResponse\x12P\n" +
	"\tCancelBid\x12 .marketplace.v1.CancelBidRequest\x1a!.marketplace.v1.CancelBidResponse\x12P\n" +
	"\tAcceptBid\x12 .marketplace.v1.AcceptBidRequest\x1a!.marketplace.v1.AcceptBidResponse\x12G\n" +
	"\x06GetBid\x12\x1d.marketplace.v1.GetBidRequest\x1a\x1e.marketplace.v1.GetBidResponse\x12M\n" +
	"\bListBids\x12\x1f.marketplace.v1.ListBidsRequest\x1a .marketplace.v1.ListBidsResponse\x12S\n" +
	"\n" +
	"ListEvents\x12!.marketplace.v1.ListEventsRequest\x1a\".marketplace.v1.ListEventsResponseBHZFgithub.com/flypxyz/marketplace/api/gen/go/marketplace/v1;marketplacev1b\x06proto3"

var (
	file_marketplace_v1_marketplace_proto_rawDescOnce sync.Once
	file_marketplace_v1_marketplace_proto_rawDescData []byte
)

func file_marketplace_v1_marketplace_proto_rawDescGZIP() []byte {
	file_marketplace_v1_marketplace_proto_rawDescOnce.Do(func() {
		file_marketplace_v1_marketplace_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_marketplace_v1_marketplace_proto_rawDesc), len(file_marketplace_v1_marketplace_proto_rawDesc)))
	})
	return file_marketplace_v1_marketplace_proto_rawDescData
}

var file_marketplace_v1_marketplace_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_marketplace_v1_marketplace_proto_msgTypes = make([]protoimpl.MessageInfo, 38)
var file_marketplace_v1_marketplace_proto_goTypes = []any{
	(MarketplaceEventType)(0),       // 0: marketplace.v1.MarketplaceEventType
	(*Creator)(nil),                 // 1: marketplace.v1.Creator
	(*Mint)(nil),                    // 2: marketplace.v1.Mint
	(*TokenAccount)(nil),            // 3: marketplace.v1.TokenAccount
	(*Listing)(nil),                 // 4: marketplace.v1.Listing
	(*Bid)(nil),                     // 5: marketplace.v1.Bid
	(*CreatorPayment)(nil),          // 6: marketplace.v1.CreatorPayment
	(*Sale)(nil),                    // 7: marketplace.v1.Sale
	(*MarketplaceEvent)(nil),        // 8: marketplace.v1.MarketplaceEvent
	(*RegisterMintRequest)(nil),     // 9: marketplace.v1.RegisterMintRequest
	(*RegisterMintResponse)(nil),    // 10: marketplace.v1.RegisterMintResponse
	(*GetMintRequest)(nil),          // 11: marketplace.v1.GetMintRequest
	(*GetMintResponse)(nil),         // 12: marketplace.v1.GetMintResponse
	(*DepositRequest)(nil),          // 13: marketplace.v1.DepositRequest
	(*DepositResponse)(nil),         // 14: marketplace.v1.DepositResponse
	(*GetTokenAccountRequest)(nil),  // 15: marketplace.v1.GetTokenAccountRequest
	(*GetTokenAccountResponse)(nil), // 16: marketplace.v1.GetTokenAccountResponse
	(*CreateListingRequest)(nil),    // 17: marketplace.v1.CreateListingRequest
	(*CreateListingResponse)(nil),   // 18: marketplace.v1.CreateListingResponse
	(*CancelListingRequest)(nil),    // 19: marketplace.v1.CancelListingRequest
	(*CancelListingResponse)(nil),   // 20: marketplace.v1.CancelListingResponse
	(*ExecuteSaleRequest)(nil),      // 21: marketplace.v1.ExecuteSaleRequest
	(*ExecuteSaleResponse)(nil),     // 22: marketplace.v1.ExecuteSaleResponse
	(*GetListingRequest)(nil),       // 23: marketplace.v1.GetListingRequest
	(*GetListingResponse)(nil),      // 24: marketplace.v1.GetListingResponse
	(*ListListingsRequest)(nil),     // 25: marketplace.v1.ListListingsRequest
	(*ListListingsResponse)(nil),    // 26: marketplace.v1.ListListingsResponse
	(*PlaceBidRequest)(nil),         // 27: marketplace.v1.PlaceBidRequest
	(*PlaceBidResponse)(nil),        // 28: marketplace.v1.PlaceBidResponse
	(*CancelBidRequest)(nil),        // 29: marketplace.v1.CancelBidRequest
	(*CancelBidResponse)(nil),       // 30: marketplace.v1.CancelBidResponse
	(*AcceptBidRequest)(nil),        // 31: marketplace.v1.AcceptBidRequest
	(*AcceptBidResponse)(nil),       // 32: marketplace.v1.AcceptBidResponse
	(*GetBidRequest)(nil),           // 33: marketplace.v1.GetBidRequest
	(*GetBidResponse)(nil),          // 34: marketplace.v1.GetBidResponse
	(*ListBidsRequest)(nil),         // 35: marketplace.v1.ListBidsRequest
	(*ListBidsResponse)(nil),        // 36: marketplace.v1.ListBidsResponse
	(*ListEventsRequest)(nil),       // 37: marketplace.v1.ListEventsRequest
	(*ListEventsResponse)(nil),      // 38: marketplace.v1.ListEventsResponse
	(*timestamppb.Timestamp)(nil),   // 39: google.protobuf.Timestamp
}
var file_marketplace_v1_marketplace_proto_depIdxs = []int32{
	1,  // 0: marketplace.v1.Mint.creators:type_name -> marketplace.v1.Creator
	39, // 1: marketplace.v1.Mint.created_at:type_name -> google.protobuf.Timestamp
	39, // 2: marketplace.v1.TokenAccount.updated_at:type_name -> google.protobuf.Timestamp
	39, // 3: marketplace.v1.Listing.created_at:type_name -> google.protobuf.Timestamp
	39, // 4: marketplace.v1.Listing.expires_at:type_name -> google.protobuf.Timestamp
	39, // 5: marketplace.v1.Bid.created_at:type_name -> google.protobuf.Timestamp
	39, // 6: marketplace.v1.Bid.expires_at:type_name -> google.protobuf.Timestamp
	6,  // 7: marketplace.v1.Sale.creator_payments:type_name -> marketplace.v1.CreatorPayment
	39, // 8: marketplace.v1.Sale.executed_at:type_name -> google.protobuf.Timestamp
	0,  // 9: marketplace.v1.MarketplaceEvent.type:type_name -> marketplace.v1.MarketplaceEventType
	39, // 10: marketplace.v1.MarketplaceEvent.created_at:type_name -> google.protobuf.Timestamp
	1,  // 11: marketplace.v1.RegisterMintRequest.creators:type_name -> marketplace.v1.Creator
	2,  // 12: marketplace.v1.RegisterMintResponse.mint:type_name -> marketplace.v1.Mint
	2,  // 13: marketplace.v1.GetMintResponse.mint:type_name -> marketplace.v1.Mint
	3,  // 14: marketplace.v1.DepositResponse.account:type_name -> marketplace.v1.TokenAccount
	3,  // 15: marketplace.v1.GetTokenAccountResponse.account:type_name -> marketplace.v1.TokenAccount
	39, // 16: marketplace.v1.CreateListingRequest.expires_at:type_name -> google.protobuf.Timestamp
	4,  // 17: marketplace.v1.CreateListingResponse.listing:type_name -> marketplace.v1.Listing
	7,  // 18: marketplace.v1.ExecuteSaleResponse.sale:type_name -> marketplace.v1.Sale
	4,  // 19: marketplace.v1.ExecuteSaleResponse.remaining_listing:type_name -> marketplace.v1.Listing
	4,  // 20: marketplace.v1.GetListingResponse.listing:type_name -> marketplace.v1.Listing
	4,  // 21: marketplace.v1.ListListingsResponse.listings:type_name -> marketplace.v1.Listing
	39, // 22: marketplace.v1.PlaceBidRequest.expires_at:type_name -> google.protobuf.Timestamp
	5,  // 23: marketplace.v1.PlaceBidResponse.bid:type_name -> marketplace.v1.Bid
	7,  // 24: marketplace.v1.AcceptBidResponse.sale:type_name -> marketplace.v1.Sale
	5,  // 25: marketplace.v1.GetBidResponse.bid:type_name -> marketplace.v1.Bid
	5,  // 26: marketplace.v1.ListBidsResponse.bids:type_name -> marketplace.v1.Bid
	8,  // 27: marketplace.v1.ListEventsResponse.events:type_name -> marketplace.v1.MarketplaceEvent
	9,  // 28: marketplace.v1.MarketplaceService.RegisterMint:input_type -> marketplace.v1.RegisterMintRequest
	11, // 29: marketplace.v1.MarketplaceService.GetMint:input_type -> marketplace.v1.GetMintRequest
	13, // 30: marketplace.v1.MarketplaceService.Deposit:input_type -> marketplace.v1.DepositRequest
	15, // 31: marketplace.v1.MarketplaceService.GetTokenAccount:input_type -> marketplace.v1.GetTokenAccountRequest
	17, // 32: marketplace.v1.MarketplaceService.CreateListing:input_type -> marketplace.v1.CreateListingRequest
	19, // 33: marketplace.v1.MarketplaceService.CancelListing:input_type -> marketplace.v1.CancelListingRequest
	21, // 34: marketplace.v1.MarketplaceService.ExecuteSale:input_type -> marketplace.v1.ExecuteSaleRequest
	23, // 35: marketplace.v1.MarketplaceService.GetListing:input_type -> marketplace.v1.GetListingRequest
	25, // 36: marketplace.v1.MarketplaceService.ListListings:input_type -> marketplace.v1.ListListingsRequest
	27, // 37: marketplace.v1.MarketplaceService.PlaceBid:input_type -> marketplace.v1.PlaceBidRequest
	29, // 38: marketplace.v1.MarketplaceService.CancelBid:input_type -> marketplace.v1.CancelBidRequest
	31, // 39: marketplace.v1.MarketplaceService.AcceptBid:input_type -> marketplace.v1.AcceptBidRequest
	33, // 40: marketplace.v1.MarketplaceService.GetBid:input_type -> marketplace.v1.GetBidRequest
	35, // 41: marketplace.v1.MarketplaceService.ListBids:input_type -> marketplace.v1.ListBidsRequest
	37, // 42: marketplace.v1.MarketplaceService.ListEvents:input_type -> marketplace.v1.ListEventsRequest
	10, // 43: marketplace.v1.MarketplaceService.RegisterMint:output_type -> marketplace.v1.RegisterMintResponse
	12, // 44: marketplace.v1.MarketplaceService.GetMint:output_type -> marketplace.v1.GetMintResponse
	14, // 45: marketplace.v1.MarketplaceService.Deposit:output_type -> marketplace.v1.DepositResponse
	16, // 46: marketplace.v1.MarketplaceService.GetTokenAccount:output_type -> marketplace.v1.GetTokenAccountResponse
	18, // 47: marketplace.v1.MarketplaceService.CreateListing:output_type -> marketplace.v1.CreateListingResponse
	20, // 48: marketplace.v1.MarketplaceService.CancelListing:output_type -> marketplace.v1.CancelListingResponse
	22, // 49: marketplace.v1.MarketplaceService.ExecuteSale:output_type -> marketplace.v1.ExecuteSaleResponse
	24, // 50: marketplace.v1.MarketplaceService.GetListing:output_type -> marketplace.v1.GetListingResponse
	26, // 51: marketplace.v1.MarketplaceService.ListListings:output_type -> marketplace.v1.ListListingsResponse
	28, // 52: marketplace.v1.MarketplaceService.PlaceBid:output_type -> marketplace.v1.PlaceBidResponse
	30, // 53: marketplace.v1.MarketplaceService.CancelBid:output_type -> marketplace.v1.CancelBidResponse
	32, // 54: marketplace.v1.MarketplaceService.AcceptBid:output_type -> marketplace.v1.AcceptBidResponse
	34, // 55: marketplace.v1.MarketplaceService.GetBid:output_type -> marketplace.v1.GetBidResponse
	36, // 56: marketplace.v1.MarketplaceService.ListBids:output_type -> marketplace.v1.ListBidsResponse
	38, // 57: marketplace.v1.MarketplaceService.ListEvents:output_type -> marketplace.v1.ListEventsResponse
	43, // [43:58] is the sub-list for method output_type
	28, // [28:43] is the sub-list for method input_type
	28, // [28:28] is the sub-list for extension type_name
	28, // [28:28] is the sub-list for extension extendee
	0,  // [0:28] is the sub-list for field type_name
}

func init() { file_marketplace_v1_marketplace_proto_init() }
func file_marketplace_v1_marketplace_proto_init() {
	if File_marketplace_v1_marketplace_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_marketplace_v1_marketplace_proto_rawDesc), len(file_marketplace_v1_marketplace_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   38,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_marketplace_v1_marketplace_proto_goTypes,
		DependencyIndexes: file_marketplace_v1_marketplace_proto_depIdxs,
		EnumInfos:         file_marketplace_v1_marketplace_proto_enumTypes,
		MessageInfos:      file_marketplace_v1_marketplace_proto_msgTypes,
	}.Build()
	File_marketplace_v1_marketplace_proto = out.File
	file_marketplace_v1_marketplace_proto_goTypes = nil
	file_marketplace_v1_marketplace_proto_depIdxs = nil
}
