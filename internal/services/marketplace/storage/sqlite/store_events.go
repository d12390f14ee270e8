package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/flypxyz/marketplace/internal/services/marketplace/domain"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
)

// ListEvents returns one filtered page of audit events in append order, or
// newest first when the query is descending. The page token is the opaque
// row ID of the last event on the previous page.
func (s *Store) ListEvents(ctx context.Context, query storage.ListQuery) (storage.EventPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.EventPage{}, err
	}
	if query.PageSize <= 0 {
		return storage.EventPage{}, fmt.Errorf("page size must be greater than zero")
	}

	var where []string
	var params []any
	if query.Filter.Clause != "" {
		where = append(where, query.Filter.Clause)
		params = append(params, query.Filter.Params...)
	}
	comparison, order := "id > ?", " ORDER BY id ASC LIMIT ?"
	if query.Descending {
		comparison, order = "id < ?", " ORDER BY id DESC LIMIT ?"
	}
	if token := strings.TrimSpace(query.PageToken); token != "" {
		afterID, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return storage.EventPage{}, fmt.Errorf("invalid page token")
		}
		where = append(where, comparison)
		params = append(params, afterID)
	}

	sqlQuery := `SELECT id, event_id, event_type, nft_mint, actor, counterparty,
	        price, quantity, listing_id, bid_id, created_at
	   FROM marketplace_events`
	if len(where) > 0 {
		sqlQuery += " WHERE " + strings.Join(where, " AND ")
	}
	sqlQuery += order
	params = append(params, query.PageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, sqlQuery, params...)
	if err != nil {
		return storage.EventPage{}, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	page := storage.EventPage{
		Events: make([]domain.Event, 0, query.PageSize),
	}
	var lastRowID int64
	var prevRowID int64
	for rows.Next() {
		var event domain.Event
		var rowID, price, quantity, createdAt int64
		var eventType string
		if err := rows.Scan(
			&rowID,
			&event.ID,
			&eventType,
			&event.NFTMint,
			&event.Actor,
			&event.Counterparty,
			&price,
			&quantity,
			&event.ListingID,
			&event.BidID,
			&createdAt,
		); err != nil {
			return storage.EventPage{}, fmt.Errorf("list events: %w", err)
		}
		event.Type = domain.EventType(eventType)
		event.Price = uint64(price)
		event.Quantity = uint64(quantity)
		event.CreatedAt = fromMillis(createdAt)
		prevRowID = lastRowID
		lastRowID = rowID
		page.Events = append(page.Events, event)
	}
	if err := rows.Err(); err != nil {
		return storage.EventPage{}, fmt.Errorf("list events: %w", err)
	}
	if len(page.Events) > query.PageSize {
		page.Events = page.Events[:query.PageSize]
		page.NextPageToken = strconv.FormatInt(prevRowID, 10)
	}
	return page, nil
}
