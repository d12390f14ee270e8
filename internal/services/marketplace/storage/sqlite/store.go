// Package sqlite provides a SQLite-backed marketplace storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/flypxyz/marketplace/internal/platform/storage/sqlitemigrate"
	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists marketplace state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// toMillisOrZero maps the zero time to 0, used for optional expiries.
func toMillisOrZero(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return toMillis(value)
}

func fromMillisOrZero(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return fromMillis(value)
}

// Open opens a SQLite marketplace store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// withTx runs fn inside a transaction, committing on success.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// applyTransfer debits the source account and credits the destination inside
// the given transaction. Escrow and vault accounts are created on first
// credit; a debit against a missing or underfunded account fails.
func applyTransfer(ctx context.Context, tx *sql.Tx, transfer domain.Transfer, at time.Time) error {
	if transfer.Amount == 0 {
		return nil
	}
	if transfer.Amount > math.MaxInt64 {
		return storage.ErrBalanceOverflow
	}
	amount := int64(transfer.Amount)
	atMillis := toMillis(at)

	result, err := tx.ExecContext(
		ctx,
		`UPDATE token_accounts
		    SET balance = balance - ?, updated_at = ?
		  WHERE owner = ? AND mint_address = ? AND balance >= ?`,
		amount, atMillis, transfer.From, transfer.Mint, amount,
	)
	if err != nil {
		return fmt.Errorf("debit %s: %w", transfer.From, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit %s: %w", transfer.From, err)
	}
	if affected == 0 {
		return storage.ErrInsufficientFunds
	}

	var balance int64
	err = tx.QueryRowContext(
		ctx,
		`SELECT balance FROM token_accounts WHERE owner = ? AND mint_address = ?`,
		transfer.To, transfer.Mint,
	).Scan(&balance)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO token_accounts (owner, mint_address, balance, updated_at)
			 VALUES (?, ?, ?, ?)`,
			transfer.To, transfer.Mint, amount, atMillis,
		); err != nil {
			return fmt.Errorf("credit %s: %w", transfer.To, err)
		}
	case err != nil:
		return fmt.Errorf("credit %s: %w", transfer.To, err)
	default:
		if balance > math.MaxInt64-amount {
			return storage.ErrBalanceOverflow
		}
		if _, err := tx.ExecContext(
			ctx,
			`UPDATE token_accounts
			    SET balance = balance + ?, updated_at = ?
			  WHERE owner = ? AND mint_address = ?`,
			amount, atMillis, transfer.To, transfer.Mint,
		); err != nil {
			return fmt.Errorf("credit %s: %w", transfer.To, err)
		}
	}
	return nil
}

// insertEvent appends one audit record inside the given transaction.
func insertEvent(ctx context.Context, tx *sql.Tx, event domain.Event) error {
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO marketplace_events (
		   event_id, event_type, nft_mint, actor, counterparty,
		   price, quantity, listing_id, bid_id, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		string(event.Type),
		event.NFTMint,
		event.Actor,
		event.Counterparty,
		int64(event.Price),
		int64(event.Quantity),
		event.ListingID,
		event.BidID,
		toMillis(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var (
	_ storage.MintStore         = (*Store)(nil)
	_ storage.TokenAccountStore = (*Store)(nil)
	_ storage.ListingStore      = (*Store)(nil)
	_ storage.BidStore          = (*Store)(nil)
	_ storage.EventStore        = (*Store)(nil)
)
