package server

import (
	"context"
	"testing"
	"time"

	marketplacev1 "github.com/flypxyz/marketplace/api/gen/go/marketplace/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestServer_ListAndSettleRoundTrip(t *testing.T) {
	dbPath := t.TempDir() + "/marketplace.db"
	t.Setenv("FLYP_MARKETPLACE_DB_PATH", dbPath)
	t.Setenv("FLYP_MARKETPLACE_TREASURY", "treasury-1")

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial marketplace server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})

	client := marketplacev1.NewMarketplaceServiceClient(conn)

	if _, err := client.RegisterMint(context.Background(), &marketplacev1.RegisterMintRequest{
		MintAddress: "nft-1",
	}); err != nil {
		t.Fatalf("register nft mint: %v", err)
	}
	if _, err := client.RegisterMint(context.Background(), &marketplacev1.RegisterMintRequest{
		MintAddress: "usdc",
	}); err != nil {
		t.Fatalf("register payment mint: %v", err)
	}
	if _, err := client.Deposit(context.Background(), &marketplacev1.DepositRequest{
		Owner:       "seller-1",
		MintAddress: "nft-1",
		Amount:      1,
	}); err != nil {
		t.Fatalf("deposit nft: %v", err)
	}
	if _, err := client.Deposit(context.Background(), &marketplacev1.DepositRequest{
		Owner:       "buyer-1",
		MintAddress: "usdc",
		Amount:      100_000,
	}); err != nil {
		t.Fatalf("deposit payment: %v", err)
	}

	createResp, err := client.CreateListing(context.Background(), &marketplacev1.CreateListingRequest{
		Seller:   "seller-1",
		NftMint:  "nft-1",
		Price:    100_000,
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("create listing: %v", err)
	}
	listingID := createResp.GetListing().GetListingId()
	if listingID == "" {
		t.Fatal("expected listing id")
	}

	listResp, err := client.ListListings(context.Background(), &marketplacev1.ListListingsRequest{
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("list listings: %v", err)
	}
	if len(listResp.GetListings()) != 1 {
		t.Fatalf("listings len = %d, want 1", len(listResp.GetListings()))
	}

	saleResp, err := client.ExecuteSale(context.Background(), &marketplacev1.ExecuteSaleRequest{
		ListingId:   listingID,
		Buyer:       "buyer-1",
		PaymentMint: "usdc",
	})
	if err != nil {
		t.Fatalf("execute sale: %v", err)
	}
	if got := saleResp.GetSale().GetSellerPayment(); got != 97_500 {
		t.Fatalf("seller payment = %d, want 97500", got)
	}

	treasury, err := client.GetTokenAccount(context.Background(), &marketplacev1.GetTokenAccountRequest{
		Owner:       "treasury-1",
		MintAddress: "usdc",
	})
	if err != nil {
		t.Fatalf("get treasury account: %v", err)
	}
	if got := treasury.GetAccount().GetBalance(); got != 2_500 {
		t.Fatalf("treasury balance = %d, want 2500", got)
	}

	eventsResp, err := client.ListEvents(context.Background(), &marketplacev1.ListEventsRequest{
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(eventsResp.GetEvents()) != 2 {
		t.Fatalf("events len = %d, want 2", len(eventsResp.GetEvents()))
	}
}
