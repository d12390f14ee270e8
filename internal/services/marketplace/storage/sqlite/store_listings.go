package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
)

const listingColumns = `listing_id, seller, nft_mint, price, quantity, created_at, expires_at`

func scanListing(scan func(...any) error) (domain.Listing, error) {
	var listing domain.Listing
	var price, quantity, createdAt, expiresAt int64
	if err := scan(
		&listing.ID,
		&listing.Seller,
		&listing.NFTMint,
		&price,
		&quantity,
		&createdAt,
		&expiresAt,
	); err != nil {
		return domain.Listing{}, err
	}
	listing.Price = uint64(price)
	listing.Quantity = uint64(quantity)
	listing.CreatedAt = fromMillis(createdAt)
	listing.ExpiresAt = fromMillisOrZero(expiresAt)
	return listing, nil
}

// CreateListing inserts one listing, escrows the listed quantity, and appends
// the audit event in one transaction.
func (s *Store) CreateListing(ctx context.Context, listing domain.Listing, escrow domain.Transfer, event domain.Event) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(listing.ID) == "" {
		return fmt.Errorf("listing id is required")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO listings (`+listingColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			listing.ID,
			listing.Seller,
			listing.NFTMint,
			int64(listing.Price),
			int64(listing.Quantity),
			toMillis(listing.CreatedAt),
			toMillisOrZero(listing.ExpiresAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAlreadyExists
			}
			return fmt.Errorf("create listing: %w", err)
		}
		if err := applyTransfer(ctx, tx, escrow, listing.CreatedAt); err != nil {
			return err
		}
		return insertEvent(ctx, tx, event)
	})
}

// GetListing returns one listing by ID.
func (s *Store) GetListing(ctx context.Context, listingID string) (domain.Listing, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Listing{}, err
	}
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return domain.Listing{}, fmt.Errorf("listing id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+listingColumns+` FROM listings WHERE listing_id = ?`,
		listingID,
	)
	listing, err := scanListing(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Listing{}, storage.ErrNotFound
		}
		return domain.Listing{}, fmt.Errorf("get listing: %w", err)
	}
	return listing, nil
}

// ListListings returns one filtered page of listings in ID order.
func (s *Store) ListListings(ctx context.Context, query storage.ListQuery) (storage.ListingPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.ListingPage{}, err
	}
	if query.PageSize <= 0 {
		return storage.ListingPage{}, fmt.Errorf("page size must be greater than zero")
	}

	var where []string
	var params []any
	if query.Filter.Clause != "" {
		where = append(where, query.Filter.Clause)
		params = append(params, query.Filter.Params...)
	}
	if token := strings.TrimSpace(query.PageToken); token != "" {
		where = append(where, "listing_id > ?")
		params = append(params, token)
	}

	sqlQuery := `SELECT ` + listingColumns + ` FROM listings`
	if len(where) > 0 {
		sqlQuery += " WHERE " + strings.Join(where, " AND ")
	}
	sqlQuery += " ORDER BY listing_id ASC LIMIT ?"
	params = append(params, query.PageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, sqlQuery, params...)
	if err != nil {
		return storage.ListingPage{}, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	page := storage.ListingPage{
		Listings: make([]domain.Listing, 0, query.PageSize),
	}
	for rows.Next() {
		listing, err := scanListing(rows.Scan)
		if err != nil {
			return storage.ListingPage{}, fmt.Errorf("list listings: %w", err)
		}
		page.Listings = append(page.Listings, listing)
	}
	if err := rows.Err(); err != nil {
		return storage.ListingPage{}, fmt.Errorf("list listings: %w", err)
	}
	if len(page.Listings) > query.PageSize {
		page.NextPageToken = page.Listings[query.PageSize-1].ID
		page.Listings = page.Listings[:query.PageSize]
	}
	return page, nil
}

// CancelListing removes the listing, refunds the escrowed quantity, and
// appends the audit event in one transaction.
func (s *Store) CancelListing(ctx context.Context, listingID string, refund domain.Transfer, event domain.Event) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return fmt.Errorf("listing id is required")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM listings WHERE listing_id = ?`, listingID)
		if err != nil {
			return fmt.Errorf("cancel listing: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("cancel listing: %w", err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		if err := applyTransfer(ctx, tx, refund, event.CreatedAt); err != nil {
			return err
		}
		return insertEvent(ctx, tx, event)
	})
}

// ExecuteSale applies the settlement transfers, decrements the listing
// quantity (removing it at zero), and appends the audit event in one
// transaction.
func (s *Store) ExecuteSale(ctx context.Context, sale storage.SaleExecution) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	listingID := strings.TrimSpace(sale.ListingID)
	if listingID == "" {
		return fmt.Errorf("listing id is required")
	}

	now := sale.Event.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var result sql.Result
		var err error
		if sale.RemainingQuantity == 0 {
			result, err = tx.ExecContext(ctx, `DELETE FROM listings WHERE listing_id = ?`, listingID)
		} else {
			result, err = tx.ExecContext(
				ctx,
				`UPDATE listings SET quantity = ? WHERE listing_id = ?`,
				int64(sale.RemainingQuantity), listingID,
			)
		}
		if err != nil {
			return fmt.Errorf("execute sale: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("execute sale: %w", err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}

		for _, transfer := range sale.Transfers {
			if err := applyTransfer(ctx, tx, transfer, now); err != nil {
				return err
			}
		}
		return insertEvent(ctx, tx, sale.Event)
	})
}
