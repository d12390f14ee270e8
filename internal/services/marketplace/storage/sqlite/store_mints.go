package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
)

// CreateMint inserts one mint and its royalty creators.
func (s *Store) CreateMint(ctx context.Context, mint domain.Mint) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(mint.Address) == "" {
		return fmt.Errorf("mint address is required")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO mints (address, created_at) VALUES (?, ?)`,
			mint.Address,
			toMillis(mint.CreatedAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAlreadyExists
			}
			return fmt.Errorf("create mint: %w", err)
		}

		for position, creator := range mint.Creators {
			verified := 0
			if creator.Verified {
				verified = 1
			}
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO mint_creators (mint_address, position, address, verified, share_percent)
				 VALUES (?, ?, ?, ?, ?)`,
				mint.Address, position, creator.Address, verified, creator.SharePercent,
			); err != nil {
				return fmt.Errorf("create mint creator: %w", err)
			}
		}
		return nil
	})
}

// GetMint returns one mint with its creators.
func (s *Store) GetMint(ctx context.Context, address string) (domain.Mint, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Mint{}, err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Mint{}, fmt.Errorf("mint address is required")
	}

	var mint domain.Mint
	var createdAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT address, created_at FROM mints WHERE address = ?`,
		address,
	).Scan(&mint.Address, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Mint{}, storage.ErrNotFound
		}
		return domain.Mint{}, fmt.Errorf("get mint: %w", err)
	}
	mint.CreatedAt = fromMillis(createdAt)

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT address, verified, share_percent
		   FROM mint_creators
		  WHERE mint_address = ?
		  ORDER BY position ASC`,
		address,
	)
	if err != nil {
		return domain.Mint{}, fmt.Errorf("get mint creators: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var creator domain.Creator
		var verified int
		if err := rows.Scan(&creator.Address, &verified, &creator.SharePercent); err != nil {
			return domain.Mint{}, fmt.Errorf("get mint creators: %w", err)
		}
		creator.Verified = verified != 0
		mint.Creators = append(mint.Creators, creator)
	}
	if err := rows.Err(); err != nil {
		return domain.Mint{}, fmt.Errorf("get mint creators: %w", err)
	}
	return mint, nil
}
