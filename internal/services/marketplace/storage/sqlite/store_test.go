package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/flypxyz/marketplace/internal/services/marketplace/core/filter"
	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestCreateGetMintRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	mint := domain.Mint{
		Address: "nft-1",
		Creators: []domain.Creator{
			{Address: "creator-1", Verified: true, SharePercent: 10},
			{Address: "creator-2", Verified: false, SharePercent: 5},
		},
		CreatedAt: testNow,
	}
	if err := store.CreateMint(context.Background(), mint); err != nil {
		t.Fatalf("create mint: %v", err)
	}

	got, err := store.GetMint(context.Background(), "nft-1")
	if err != nil {
		t.Fatalf("get mint: %v", err)
	}
	if got.Address != "nft-1" {
		t.Fatalf("address = %q, want nft-1", got.Address)
	}
	if len(got.Creators) != 2 {
		t.Fatalf("creators = %d, want 2", len(got.Creators))
	}
	if got.Creators[0] != mint.Creators[0] || got.Creators[1] != mint.Creators[1] {
		t.Fatalf("creators = %+v, want %+v", got.Creators, mint.Creators)
	}
	if !got.CreatedAt.Equal(testNow) {
		t.Fatalf("created at = %v, want %v", got.CreatedAt, testNow)
	}
}

func TestCreateMintReturnsAlreadyExistsOnDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	mint := domain.Mint{Address: "nft-dup", CreatedAt: testNow}
	if err := store.CreateMint(context.Background(), mint); err != nil {
		t.Fatalf("create mint: %v", err)
	}
	if err := store.CreateMint(context.Background(), mint); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestGetMintMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetMint(context.Background(), "absent"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDepositRequiresRegisteredMint(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.Deposit(context.Background(), "wallet-1", "absent", 100, testNow); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDepositAccumulatesBalance(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "usdc")

	account, err := store.Deposit(context.Background(), "wallet-1", "usdc", 100, testNow)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if account.Balance != 100 {
		t.Fatalf("balance = %d, want 100", account.Balance)
	}
	if !account.UpdatedAt.Equal(testNow) {
		t.Fatalf("updated at = %v, want %v", account.UpdatedAt, testNow)
	}

	account, err = store.Deposit(context.Background(), "wallet-1", "usdc", 50, testNow.Add(time.Minute))
	if err != nil {
		t.Fatalf("second deposit: %v", err)
	}
	if account.Balance != 150 {
		t.Fatalf("balance = %d, want 150", account.Balance)
	}

	got, err := store.GetTokenAccount(context.Background(), "wallet-1", "usdc")
	if err != nil {
		t.Fatalf("get token account: %v", err)
	}
	if got.Balance != 150 {
		t.Fatalf("stored balance = %d, want 150", got.Balance)
	}
	if !got.UpdatedAt.Equal(testNow.Add(time.Minute)) {
		t.Fatalf("stored updated at = %v, want %v", got.UpdatedAt, testNow.Add(time.Minute))
	}
}

func TestGetTokenAccountMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetTokenAccount(context.Background(), "wallet-1", "usdc"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestCreateListingEscrowsQuantity(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	mustDeposit(t, store, "seller-1", "nft-1", 5)

	listing := domain.Listing{
		ID:        "listing-1",
		Seller:    "seller-1",
		NFTMint:   "nft-1",
		Price:     1000,
		Quantity:  3,
		CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "seller-1", To: "vault:listing-1", Mint: "nft-1", Amount: 3}
	event := listingEvent(domain.EventListingCreated, listing)

	if err := store.CreateListing(context.Background(), listing, escrow, event); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	seller, err := store.GetTokenAccount(context.Background(), "seller-1", "nft-1")
	if err != nil {
		t.Fatalf("get seller account: %v", err)
	}
	if seller.Balance != 2 {
		t.Fatalf("seller balance = %d, want 2", seller.Balance)
	}
	vault, err := store.GetTokenAccount(context.Background(), "vault:listing-1", "nft-1")
	if err != nil {
		t.Fatalf("get vault account: %v", err)
	}
	if vault.Balance != 3 {
		t.Fatalf("vault balance = %d, want 3", vault.Balance)
	}

	got, err := store.GetListing(context.Background(), "listing-1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if got.Quantity != 3 || got.Price != 1000 {
		t.Fatalf("listing = %+v", got)
	}
}

func TestCreateListingInsufficientFundsRollsBack(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	mustDeposit(t, store, "seller-1", "nft-1", 1)

	listing := domain.Listing{
		ID:        "listing-1",
		Seller:    "seller-1",
		NFTMint:   "nft-1",
		Price:     1000,
		Quantity:  3,
		CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "seller-1", To: "vault:listing-1", Mint: "nft-1", Amount: 3}
	event := listingEvent(domain.EventListingCreated, listing)

	err := store.CreateListing(context.Background(), listing, escrow, event)
	if !errors.Is(err, storage.ErrInsufficientFunds) {
		t.Fatalf("error = %v, want %v", err, storage.ErrInsufficientFunds)
	}

	// The listing insert rolled back with the failed escrow.
	if _, err := store.GetListing(context.Background(), "listing-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("listing error = %v, want %v", err, storage.ErrNotFound)
	}
	events := mustListEvents(t, store, "")
	if len(events) != 0 {
		t.Fatalf("events = %d, want 0", len(events))
	}
}

func TestCreateListingDuplicateSellerMintReturnsAlreadyExists(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	mustDeposit(t, store, "seller-1", "nft-1", 10)

	first := domain.Listing{
		ID: "listing-1", Seller: "seller-1", NFTMint: "nft-1",
		Price: 1000, Quantity: 1, CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "seller-1", To: "vault:listing-1", Mint: "nft-1", Amount: 1}
	if err := store.CreateListing(context.Background(), first, escrow, listingEvent(domain.EventListingCreated, first)); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	second := first
	second.ID = "listing-2"
	err := store.CreateListing(context.Background(), second, escrow, listingEvent(domain.EventListingCreated, second))
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestCancelListingRefundsEscrow(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	mustDeposit(t, store, "seller-1", "nft-1", 3)

	listing := domain.Listing{
		ID: "listing-1", Seller: "seller-1", NFTMint: "nft-1",
		Price: 1000, Quantity: 3, CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "seller-1", To: "vault:listing-1", Mint: "nft-1", Amount: 3}
	if err := store.CreateListing(context.Background(), listing, escrow, listingEvent(domain.EventListingCreated, listing)); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	refund := domain.Transfer{From: "vault:listing-1", To: "seller-1", Mint: "nft-1", Amount: 3}
	cancelEvent := listingEvent(domain.EventListingCancelled, listing)
	cancelEvent.ID = "event-cancel"
	if err := store.CancelListing(context.Background(), "listing-1", refund, cancelEvent); err != nil {
		t.Fatalf("cancel listing: %v", err)
	}

	seller, err := store.GetTokenAccount(context.Background(), "seller-1", "nft-1")
	if err != nil {
		t.Fatalf("get seller account: %v", err)
	}
	if seller.Balance != 3 {
		t.Fatalf("seller balance = %d, want 3", seller.Balance)
	}
	if _, err := store.GetListing(context.Background(), "listing-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("listing error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestCancelListingMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	err := store.CancelListing(context.Background(), "absent", domain.Transfer{}, domain.Event{ID: "e", CreatedAt: testNow})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestExecuteSaleSettlesAndClosesListing(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	registerMint(t, store, "usdc")
	mustDeposit(t, store, "seller-1", "nft-1", 1)
	mustDeposit(t, store, "buyer-1", "usdc", 200_000)

	listing := domain.Listing{
		ID: "listing-1", Seller: "seller-1", NFTMint: "nft-1",
		Price: 100_000, Quantity: 1, CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "seller-1", To: "vault:listing-1", Mint: "nft-1", Amount: 1}
	if err := store.CreateListing(context.Background(), listing, escrow, listingEvent(domain.EventListingCreated, listing)); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	sale := storage.SaleExecution{
		ListingID:         "listing-1",
		RemainingQuantity: 0,
		Transfers: []domain.Transfer{
			{From: "buyer-1", To: "seller-1", Mint: "usdc", Amount: 97_500},
			{From: "buyer-1", To: "treasury", Mint: "usdc", Amount: 2_250},
			{From: "buyer-1", To: "bidder-2", Mint: "usdc", Amount: 250},
			{From: "vault:listing-1", To: "buyer-1", Mint: "nft-1", Amount: 1},
		},
		Event: domain.Event{
			ID: "event-sale", Type: domain.EventSaleExecuted, NFTMint: "nft-1",
			Actor: "buyer-1", Counterparty: "seller-1", Price: 100_000,
			ListingID: "listing-1", CreatedAt: testNow,
		},
	}
	if err := store.ExecuteSale(context.Background(), sale); err != nil {
		t.Fatalf("execute sale: %v", err)
	}

	// Sold out at quantity 1, the listing is gone.
	if _, err := store.GetListing(context.Background(), "listing-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("listing error = %v, want %v", err, storage.ErrNotFound)
	}

	balances := map[string]uint64{
		"buyer-1":  100_000,
		"seller-1": 97_500,
		"treasury": 2_250,
		"bidder-2": 250,
	}
	for owner, want := range balances {
		account, err := store.GetTokenAccount(context.Background(), owner, "usdc")
		if err != nil {
			t.Fatalf("get %s account: %v", owner, err)
		}
		if account.Balance != want {
			t.Fatalf("%s balance = %d, want %d", owner, account.Balance, want)
		}
	}
	nft, err := store.GetTokenAccount(context.Background(), "buyer-1", "nft-1")
	if err != nil {
		t.Fatalf("get buyer nft account: %v", err)
	}
	if nft.Balance != 1 {
		t.Fatalf("buyer nft balance = %d, want 1", nft.Balance)
	}
}

func TestExecuteSaleDecrementsQuantity(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	registerMint(t, store, "usdc")
	mustDeposit(t, store, "seller-1", "nft-1", 3)
	mustDeposit(t, store, "buyer-1", "usdc", 10_000)

	listing := domain.Listing{
		ID: "listing-1", Seller: "seller-1", NFTMint: "nft-1",
		Price: 1_000, Quantity: 3, CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "seller-1", To: "vault:listing-1", Mint: "nft-1", Amount: 3}
	if err := store.CreateListing(context.Background(), listing, escrow, listingEvent(domain.EventListingCreated, listing)); err != nil {
		t.Fatalf("create listing: %v", err)
	}

	sale := storage.SaleExecution{
		ListingID:         "listing-1",
		RemainingQuantity: 2,
		Transfers: []domain.Transfer{
			{From: "buyer-1", To: "seller-1", Mint: "usdc", Amount: 975},
			{From: "vault:listing-1", To: "buyer-1", Mint: "nft-1", Amount: 1},
		},
		Event: domain.Event{
			ID: "event-sale", Type: domain.EventSaleExecuted, NFTMint: "nft-1",
			Actor: "buyer-1", Counterparty: "seller-1", Price: 1_000,
			ListingID: "listing-1", CreatedAt: testNow,
		},
	}
	if err := store.ExecuteSale(context.Background(), sale); err != nil {
		t.Fatalf("execute sale: %v", err)
	}

	got, err := store.GetListing(context.Background(), "listing-1")
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if got.Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", got.Quantity)
	}
}

func TestPlaceAcceptBidRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	registerMint(t, store, "usdc")
	mustDeposit(t, store, "bidder-1", "usdc", 100_000)
	mustDeposit(t, store, "seller-1", "nft-1", 1)

	bid := domain.Bid{
		ID: "bid-1", Bidder: "bidder-1", NFTMint: "nft-1",
		PaymentMint: "usdc", Price: 100_000, CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "bidder-1", To: "escrow:bid-1", Mint: "usdc", Amount: 100_000}
	event := domain.Event{
		ID: "event-bid", Type: domain.EventBidPlaced, NFTMint: "nft-1",
		Actor: "bidder-1", Price: 100_000, BidID: "bid-1", CreatedAt: testNow,
	}
	if err := store.PlaceBid(context.Background(), bid, escrow, event); err != nil {
		t.Fatalf("place bid: %v", err)
	}

	bidderAccount, err := store.GetTokenAccount(context.Background(), "bidder-1", "usdc")
	if err != nil {
		t.Fatalf("get bidder account: %v", err)
	}
	if bidderAccount.Balance != 0 {
		t.Fatalf("bidder balance = %d, want 0", bidderAccount.Balance)
	}

	acceptance := storage.BidAcceptance{
		BidID: "bid-1",
		Transfers: []domain.Transfer{
			{From: "escrow:bid-1", To: "seller-1", Mint: "usdc", Amount: 97_500},
			{From: "escrow:bid-1", To: "treasury", Mint: "usdc", Amount: 2_500},
			{From: "seller-1", To: "bidder-1", Mint: "nft-1", Amount: 1},
		},
		Event: domain.Event{
			ID: "event-accept", Type: domain.EventBidAccepted, NFTMint: "nft-1",
			Actor: "seller-1", Counterparty: "bidder-1", Price: 100_000,
			BidID: "bid-1", CreatedAt: testNow,
		},
	}
	if err := store.AcceptBid(context.Background(), acceptance); err != nil {
		t.Fatalf("accept bid: %v", err)
	}

	if _, err := store.GetBid(context.Background(), "bid-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("bid error = %v, want %v", err, storage.ErrNotFound)
	}
	seller, err := store.GetTokenAccount(context.Background(), "seller-1", "usdc")
	if err != nil {
		t.Fatalf("get seller account: %v", err)
	}
	if seller.Balance != 97_500 {
		t.Fatalf("seller balance = %d, want 97500", seller.Balance)
	}
	nft, err := store.GetTokenAccount(context.Background(), "bidder-1", "nft-1")
	if err != nil {
		t.Fatalf("get bidder nft account: %v", err)
	}
	if nft.Balance != 1 {
		t.Fatalf("bidder nft balance = %d, want 1", nft.Balance)
	}
}

func TestCancelBidRefundsEscrow(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	registerMint(t, store, "usdc")
	mustDeposit(t, store, "bidder-1", "usdc", 500)

	bid := domain.Bid{
		ID: "bid-1", Bidder: "bidder-1", NFTMint: "nft-1",
		PaymentMint: "usdc", Price: 500, CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "bidder-1", To: "escrow:bid-1", Mint: "usdc", Amount: 500}
	event := domain.Event{
		ID: "event-bid", Type: domain.EventBidPlaced, NFTMint: "nft-1",
		Actor: "bidder-1", Price: 500, BidID: "bid-1", CreatedAt: testNow,
	}
	if err := store.PlaceBid(context.Background(), bid, escrow, event); err != nil {
		t.Fatalf("place bid: %v", err)
	}

	refund := domain.Transfer{From: "escrow:bid-1", To: "bidder-1", Mint: "usdc", Amount: 500}
	cancelEvent := domain.Event{
		ID: "event-cancel", Type: domain.EventBidCancelled, NFTMint: "nft-1",
		Actor: "bidder-1", BidID: "bid-1", CreatedAt: testNow,
	}
	if err := store.CancelBid(context.Background(), "bid-1", refund, cancelEvent); err != nil {
		t.Fatalf("cancel bid: %v", err)
	}

	account, err := store.GetTokenAccount(context.Background(), "bidder-1", "usdc")
	if err != nil {
		t.Fatalf("get bidder account: %v", err)
	}
	if account.Balance != 500 {
		t.Fatalf("bidder balance = %d, want 500", account.Balance)
	}
}

func TestPlaceBidDuplicateBidderMintReturnsAlreadyExists(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	registerMint(t, store, "usdc")
	mustDeposit(t, store, "bidder-1", "usdc", 2_000)

	first := domain.Bid{
		ID: "bid-1", Bidder: "bidder-1", NFTMint: "nft-1",
		PaymentMint: "usdc", Price: 500, CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "bidder-1", To: "escrow:bid-1", Mint: "usdc", Amount: 500}
	event := domain.Event{ID: "event-1", Type: domain.EventBidPlaced, NFTMint: "nft-1", Actor: "bidder-1", BidID: "bid-1", CreatedAt: testNow}
	if err := store.PlaceBid(context.Background(), first, escrow, event); err != nil {
		t.Fatalf("place bid: %v", err)
	}

	second := first
	second.ID = "bid-2"
	err := store.PlaceBid(context.Background(), second, escrow, event)
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestListListingsPaginatesWithFilter(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	mustDeposit(t, store, "seller-1", "nft-1", 10)
	mustDeposit(t, store, "seller-2", "nft-1", 10)

	sellers := []string{"seller-1", "seller-2", "seller-1", "seller-2"}
	mints := []string{"nft-1", "nft-1", "nft-1b", "nft-1b"}
	registerMint(t, store, "nft-1b")
	mustDeposit(t, store, "seller-1", "nft-1b", 10)
	mustDeposit(t, store, "seller-2", "nft-1b", 10)
	for i := range sellers {
		listing := domain.Listing{
			ID:        "listing-" + string(rune('a'+i)),
			Seller:    sellers[i],
			NFTMint:   mints[i],
			Price:     uint64(100 * (i + 1)),
			Quantity:  1,
			CreatedAt: testNow,
		}
		escrow := domain.Transfer{From: sellers[i], To: "vault:" + listing.ID, Mint: mints[i], Amount: 1}
		if err := store.CreateListing(context.Background(), listing, escrow, listingEvent(domain.EventListingCreated, listing)); err != nil {
			t.Fatalf("create listing %d: %v", i, err)
		}
	}

	cond, err := filter.ParseListingFilter(`seller = "seller-1"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	page, err := store.ListListings(context.Background(), storage.ListQuery{
		PageSize: 1,
		Filter:   cond,
	})
	if err != nil {
		t.Fatalf("list listings: %v", err)
	}
	if len(page.Listings) != 1 || page.Listings[0].Seller != "seller-1" {
		t.Fatalf("page = %+v", page.Listings)
	}
	if page.NextPageToken == "" {
		t.Fatal("expected next page token")
	}

	next, err := store.ListListings(context.Background(), storage.ListQuery{
		PageSize:  1,
		PageToken: page.NextPageToken,
		Filter:    cond,
	})
	if err != nil {
		t.Fatalf("list listings next page: %v", err)
	}
	if len(next.Listings) != 1 || next.Listings[0].Seller != "seller-1" {
		t.Fatalf("next page = %+v", next.Listings)
	}
	if next.NextPageToken != "" {
		t.Fatalf("next page token = %q, want empty", next.NextPageToken)
	}
}

func TestListEventsPaginates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	mustDeposit(t, store, "seller-1", "nft-1", 10)

	for i := 0; i < 3; i++ {
		listing := domain.Listing{
			ID:        "listing-" + string(rune('a'+i)),
			Seller:    "seller-1",
			NFTMint:   "nft-1",
			Price:     100,
			Quantity:  1,
			CreatedAt: testNow,
		}
		escrow := domain.Transfer{From: "seller-1", To: "vault:" + listing.ID, Mint: "nft-1", Amount: 1}
		if err := store.CreateListing(context.Background(), listing, escrow, listingEvent(domain.EventListingCreated, listing)); err != nil {
			t.Fatalf("create listing %d: %v", i, err)
		}
		refund := domain.Transfer{From: "vault:" + listing.ID, To: "seller-1", Mint: "nft-1", Amount: 1}
		cancelEvent := listingEvent(domain.EventListingCancelled, listing)
		cancelEvent.ID = "event-cancel-" + listing.ID
		if err := store.CancelListing(context.Background(), listing.ID, refund, cancelEvent); err != nil {
			t.Fatalf("cancel listing %d: %v", i, err)
		}
	}

	page, err := store.ListEvents(context.Background(), storage.ListQuery{PageSize: 4})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(page.Events) != 4 {
		t.Fatalf("events = %d, want 4", len(page.Events))
	}
	if page.NextPageToken == "" {
		t.Fatal("expected next page token")
	}

	rest, err := store.ListEvents(context.Background(), storage.ListQuery{
		PageSize:  4,
		PageToken: page.NextPageToken,
	})
	if err != nil {
		t.Fatalf("list events rest: %v", err)
	}
	if len(rest.Events) != 2 {
		t.Fatalf("remaining events = %d, want 2", len(rest.Events))
	}
	if rest.NextPageToken != "" {
		t.Fatalf("next page token = %q, want empty", rest.NextPageToken)
	}
}

func TestListEventsDescendingReturnsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	mustDeposit(t, store, "seller-1", "nft-1", 10)

	for i := 0; i < 3; i++ {
		listing := domain.Listing{
			ID:        "listing-" + string(rune('a'+i)),
			Seller:    "seller-1",
			NFTMint:   "nft-1",
			Price:     100,
			Quantity:  1,
			CreatedAt: testNow,
		}
		escrow := domain.Transfer{From: "seller-1", To: "vault:" + listing.ID, Mint: "nft-1", Amount: 1}
		if err := store.CreateListing(context.Background(), listing, escrow, listingEvent(domain.EventListingCreated, listing)); err != nil {
			t.Fatalf("create listing %d: %v", i, err)
		}
	}

	page, err := store.ListEvents(context.Background(), storage.ListQuery{
		PageSize:   2,
		Descending: true,
	})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(page.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(page.Events))
	}
	if page.Events[0].ListingID != "listing-c" || page.Events[1].ListingID != "listing-b" {
		t.Fatalf("events = %+v, want listing-c then listing-b", page.Events)
	}
	if page.NextPageToken == "" {
		t.Fatal("expected next page token")
	}

	rest, err := store.ListEvents(context.Background(), storage.ListQuery{
		PageSize:   2,
		PageToken:  page.NextPageToken,
		Descending: true,
	})
	if err != nil {
		t.Fatalf("list events rest: %v", err)
	}
	if len(rest.Events) != 1 || rest.Events[0].ListingID != "listing-a" {
		t.Fatalf("remaining events = %+v, want listing-a", rest.Events)
	}
}

func TestListEventsFiltersByType(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	registerMint(t, store, "nft-1")
	mustDeposit(t, store, "seller-1", "nft-1", 1)

	listing := domain.Listing{
		ID: "listing-1", Seller: "seller-1", NFTMint: "nft-1",
		Price: 100, Quantity: 1, CreatedAt: testNow,
	}
	escrow := domain.Transfer{From: "seller-1", To: "vault:listing-1", Mint: "nft-1", Amount: 1}
	if err := store.CreateListing(context.Background(), listing, escrow, listingEvent(domain.EventListingCreated, listing)); err != nil {
		t.Fatalf("create listing: %v", err)
	}
	refund := domain.Transfer{From: "vault:listing-1", To: "seller-1", Mint: "nft-1", Amount: 1}
	cancelEvent := listingEvent(domain.EventListingCancelled, listing)
	cancelEvent.ID = "event-cancel"
	if err := store.CancelListing(context.Background(), "listing-1", refund, cancelEvent); err != nil {
		t.Fatalf("cancel listing: %v", err)
	}

	cond, err := filter.ParseEventFilter(`type = "LISTING_CANCELLED"`)
	if err != nil {
		t.Fatalf("parse filter: %v", err)
	}
	page, err := store.ListEvents(context.Background(), storage.ListQuery{PageSize: 10, Filter: cond})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(page.Events) != 1 || page.Events[0].Type != domain.EventListingCancelled {
		t.Fatalf("events = %+v", page.Events)
	}
}

// listingEvent builds an audit event for a listing with an ID unique per
// event type and listing.
func listingEvent(eventType domain.EventType, listing domain.Listing) domain.Event {
	return domain.Event{
		ID:        string(eventType) + ":" + listing.ID,
		Type:      eventType,
		NFTMint:   listing.NFTMint,
		Actor:     listing.Seller,
		Price:     listing.Price,
		Quantity:  listing.Quantity,
		ListingID: listing.ID,
		CreatedAt: listing.CreatedAt,
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "marketplace.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func registerMint(t *testing.T, store *Store, address string) {
	t.Helper()

	if err := store.CreateMint(context.Background(), domain.Mint{Address: address, CreatedAt: testNow}); err != nil {
		t.Fatalf("register mint %s: %v", address, err)
	}
}

func mustDeposit(t *testing.T, store *Store, owner, mint string, amount uint64) {
	t.Helper()

	if _, err := store.Deposit(context.Background(), owner, mint, amount, testNow); err != nil {
		t.Fatalf("deposit %d %s to %s: %v", amount, mint, owner, err)
	}
}

func mustListEvents(t *testing.T, store *Store, token string) []domain.Event {
	t.Helper()

	page, err := store.ListEvents(context.Background(), storage.ListQuery{PageSize: 50, PageToken: token})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	return page.Events
}
