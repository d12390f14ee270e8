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

const bidColumns = `bid_id, bidder, nft_mint, payment_mint, price, created_at, expires_at`

func scanBid(scan func(...any) error) (domain.Bid, error) {
	var bid domain.Bid
	var price, createdAt, expiresAt int64
	if err := scan(
		&bid.ID,
		&bid.Bidder,
		&bid.NFTMint,
		&bid.PaymentMint,
		&price,
		&createdAt,
		&expiresAt,
	); err != nil {
		return domain.Bid{}, err
	}
	bid.Price = uint64(price)
	bid.CreatedAt = fromMillis(createdAt)
	bid.ExpiresAt = fromMillisOrZero(expiresAt)
	return bid, nil
}

// PlaceBid inserts one bid, escrows the bid amount, and appends the audit
// event in one transaction.
func (s *Store) PlaceBid(ctx context.Context, bid domain.Bid, escrow domain.Transfer, event domain.Event) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(bid.ID) == "" {
		return fmt.Errorf("bid id is required")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO bids (`+bidColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			bid.ID,
			bid.Bidder,
			bid.NFTMint,
			bid.PaymentMint,
			int64(bid.Price),
			toMillis(bid.CreatedAt),
			toMillisOrZero(bid.ExpiresAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAlreadyExists
			}
			return fmt.Errorf("place bid: %w", err)
		}
		if err := applyTransfer(ctx, tx, escrow, bid.CreatedAt); err != nil {
			return err
		}
		return insertEvent(ctx, tx, event)
	})
}

// GetBid returns one bid by ID.
func (s *Store) GetBid(ctx context.Context, bidID string) (domain.Bid, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Bid{}, err
	}
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return domain.Bid{}, fmt.Errorf("bid id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+bidColumns+` FROM bids WHERE bid_id = ?`,
		bidID,
	)
	bid, err := scanBid(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Bid{}, storage.ErrNotFound
		}
		return domain.Bid{}, fmt.Errorf("get bid: %w", err)
	}
	return bid, nil
}

// ListBids returns one filtered page of bids in ID order.
func (s *Store) ListBids(ctx context.Context, query storage.ListQuery) (storage.BidPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.BidPage{}, err
	}
	if query.PageSize <= 0 {
		return storage.BidPage{}, fmt.Errorf("page size must be greater than zero")
	}

	var where []string
	var params []any
	if query.Filter.Clause != "" {
		where = append(where, query.Filter.Clause)
		params = append(params, query.Filter.Params...)
	}
	if token := strings.TrimSpace(query.PageToken); token != "" {
		where = append(where, "bid_id > ?")
		params = append(params, token)
	}

	sqlQuery := `SELECT ` + bidColumns + ` FROM bids`
	if len(where) > 0 {
		sqlQuery += " WHERE " + strings.Join(where, " AND ")
	}
	sqlQuery += " ORDER BY bid_id ASC LIMIT ?"
	params = append(params, query.PageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, sqlQuery, params...)
	if err != nil {
		return storage.BidPage{}, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()

	page := storage.BidPage{
		Bids: make([]domain.Bid, 0, query.PageSize),
	}
	for rows.Next() {
		bid, err := scanBid(rows.Scan)
		if err != nil {
			return storage.BidPage{}, fmt.Errorf("list bids: %w", err)
		}
		page.Bids = append(page.Bids, bid)
	}
	if err := rows.Err(); err != nil {
		return storage.BidPage{}, fmt.Errorf("list bids: %w", err)
	}
	if len(page.Bids) > query.PageSize {
		page.NextPageToken = page.Bids[query.PageSize-1].ID
		page.Bids = page.Bids[:query.PageSize]
	}
	return page, nil
}

// CancelBid removes the bid, refunds the escrowed amount, and appends the
// audit event in one transaction.
func (s *Store) CancelBid(ctx context.Context, bidID string, refund domain.Transfer, event domain.Event) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return fmt.Errorf("bid id is required")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM bids WHERE bid_id = ?`, bidID)
		if err != nil {
			return fmt.Errorf("cancel bid: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("cancel bid: %w", err)
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

// AcceptBid removes the bid, applies the settlement transfers, and appends
// the audit event in one transaction.
func (s *Store) AcceptBid(ctx context.Context, acceptance storage.BidAcceptance) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	bidID := strings.TrimSpace(acceptance.BidID)
	if bidID == "" {
		return fmt.Errorf("bid id is required")
	}

	now := acceptance.Event.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM bids WHERE bid_id = ?`, bidID)
		if err != nil {
			return fmt.Errorf("accept bid: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("accept bid: %w", err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}

		for _, transfer := range acceptance.Transfers {
			if err := applyTransfer(ctx, tx, transfer, now); err != nil {
				return err
			}
		}
		return insertEvent(ctx, tx, acceptance.Event)
	})
}
