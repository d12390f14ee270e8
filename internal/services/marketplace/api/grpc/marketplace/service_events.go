package marketplace

import (
	"context"
	"strings"

	marketplacev1 "github.com/flypxyz/marketplace/api/gen/go/marketplace/v1"
	"github.com/flypxyz/marketplace/internal/platform/grpc/pagination"
	"github.com/flypxyz/marketplace/internal/services/marketplace/core/filter"
	"github.com/flypxyz/marketplace/internal/services/marketplace/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ListEvents returns a filtered page of the audit trail in append order.
func (s *Service) ListEvents(ctx context.Context, in *marketplacev1.ListEventsRequest) (*marketplacev1.ListEventsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list events request is required")
	}
	if s == nil || s.stores.Events == nil {
		return nil, status.Error(codes.Internal, "event store is not configured")
	}

	cond, err := filter.ParseEventFilter(in.GetFilter())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "list events: %v", err)
	}
	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListPageSize,
		Max:     maxListPageSize,
	})
	orderBy, err := pagination.NormalizeOrderBy(strings.TrimSpace(in.GetOrderBy()), pagination.OrderByConfig{
		Default: "created_at",
		Allowed: []string{"created_at", "created_at desc"},
	})
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "order_by must be 'created_at' or 'created_at desc'")
	}

	page, err := s.stores.Events.ListEvents(ctx, storage.ListQuery{
		PageSize:   pageSize,
		PageToken:  in.GetPageToken(),
		Filter:     cond,
		Descending: orderBy == "created_at desc",
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list events: %v", err)
	}

	resp := &marketplacev1.ListEventsResponse{
		Events:        make([]*marketplacev1.MarketplaceEvent, 0, len(page.Events)),
		NextPageToken: page.NextPageToken,
	}
	for _, event := range page.Events {
		resp.Events = append(resp.Events, eventToProto(event))
	}
	return resp, nil
}
