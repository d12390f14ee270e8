package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
)

// Deposit credits an owner's account for a registered mint, creating the
// account on first use. The caller supplies the ledger timestamp.
func (s *Store) Deposit(ctx context.Context, owner, mint string, amount uint64, at time.Time) (storage.TokenAccount, error) {
	if err := s.ready(ctx); err != nil {
		return storage.TokenAccount{}, err
	}
	owner = strings.TrimSpace(owner)
	mint = strings.TrimSpace(mint)
	if owner == "" || mint == "" {
		return storage.TokenAccount{}, fmt.Errorf("owner and mint are required")
	}
	if amount == 0 {
		return storage.TokenAccount{}, fmt.Errorf("amount must be greater than zero")
	}
	if amount > math.MaxInt64 {
		return storage.TokenAccount{}, storage.ErrBalanceOverflow
	}

	now := at.UTC()
	if at.IsZero() {
		now = time.Now().UTC()
	}
	var account storage.TokenAccount
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM mints WHERE address = ?`, mint).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("check mint: %w", err)
		}

		var balance int64
		err = tx.QueryRowContext(
			ctx,
			`SELECT balance FROM token_accounts WHERE owner = ? AND mint_address = ?`,
			owner, mint,
		).Scan(&balance)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			balance = 0
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO token_accounts (owner, mint_address, balance, updated_at)
				 VALUES (?, ?, ?, ?)`,
				owner, mint, int64(amount), toMillis(now),
			); err != nil {
				return fmt.Errorf("create token account: %w", err)
			}
		case err != nil:
			return fmt.Errorf("get token account: %w", err)
		default:
			if balance > math.MaxInt64-int64(amount) {
				return storage.ErrBalanceOverflow
			}
			if _, err := tx.ExecContext(
				ctx,
				`UPDATE token_accounts
				    SET balance = balance + ?, updated_at = ?
				  WHERE owner = ? AND mint_address = ?`,
				int64(amount), toMillis(now), owner, mint,
			); err != nil {
				return fmt.Errorf("credit token account: %w", err)
			}
		}

		account = storage.TokenAccount{
			Owner:     owner,
			Mint:      mint,
			Balance:   uint64(balance) + amount,
			UpdatedAt: now,
		}
		return nil
	})
	if err != nil {
		return storage.TokenAccount{}, err
	}
	return account, nil
}

// GetTokenAccount returns one account balance.
func (s *Store) GetTokenAccount(ctx context.Context, owner, mint string) (storage.TokenAccount, error) {
	if err := s.ready(ctx); err != nil {
		return storage.TokenAccount{}, err
	}
	owner = strings.TrimSpace(owner)
	mint = strings.TrimSpace(mint)
	if owner == "" || mint == "" {
		return storage.TokenAccount{}, fmt.Errorf("owner and mint are required")
	}

	var account storage.TokenAccount
	var balance int64
	var updatedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT owner, mint_address, balance, updated_at
		   FROM token_accounts
		  WHERE owner = ? AND mint_address = ?`,
		owner, mint,
	).Scan(&account.Owner, &account.Mint, &balance, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.TokenAccount{}, storage.ErrNotFound
		}
		return storage.TokenAccount{}, fmt.Errorf("get token account: %w", err)
	}
	account.Balance = uint64(balance)
	account.UpdatedAt = fromMillis(updatedAt)
	return account, nil
}
