// Package filter parses AIP-160 filter expressions and translates them to
// SQL WHERE fragments for the marketplace list endpoints.
package filter

import (
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// SQLCondition is a SQL WHERE fragment with positional parameters.
type SQLCondition struct {
	Clause string
	Params []any
}

// listingColumns maps listing filter fields to SQL columns.
var listingColumns = map[string]string{
	"seller":   "seller",
	"nft_mint": "nft_mint",
	"price":    "price",
	"quantity": "quantity",
}

// bidColumns maps bid filter fields to SQL columns.
var bidColumns = map[string]string{
	"bidder":       "bidder",
	"nft_mint":     "nft_mint",
	"payment_mint": "payment_mint",
	"price":        "price",
}

// eventColumns maps event filter fields to SQL columns.
var eventColumns = map[string]string{
	"type":       "event_type",
	"nft_mint":   "nft_mint",
	"actor":      "actor",
	"listing_id": "listing_id",
	"bid_id":     "bid_id",
	"created_at": "created_at",
}

// ParseListingFilter translates a listing filter expression to SQL.
func ParseListingFilter(filterStr string) (SQLCondition, error) {
	decls, err := filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("seller", filtering.TypeString),
		filtering.DeclareIdent("nft_mint", filtering.TypeString),
		filtering.DeclareIdent("price", filtering.TypeInt),
		filtering.DeclareIdent("quantity", filtering.TypeInt),
	)
	if err != nil {
		return SQLCondition{}, fmt.Errorf("create declarations: %w", err)
	}
	return parse(filterStr, decls, listingColumns)
}

// ParseBidFilter translates a bid filter expression to SQL.
func ParseBidFilter(filterStr string) (SQLCondition, error) {
	decls, err := filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("bidder", filtering.TypeString),
		filtering.DeclareIdent("nft_mint", filtering.TypeString),
		filtering.DeclareIdent("payment_mint", filtering.TypeString),
		filtering.DeclareIdent("price", filtering.TypeInt),
	)
	if err != nil {
		return SQLCondition{}, fmt.Errorf("create declarations: %w", err)
	}
	return parse(filterStr, decls, bidColumns)
}

// ParseEventFilter translates an event filter expression to SQL.
func ParseEventFilter(filterStr string) (SQLCondition, error) {
	decls, err := filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("type", filtering.TypeString),
		filtering.DeclareIdent("nft_mint", filtering.TypeString),
		filtering.DeclareIdent("actor", filtering.TypeString),
		filtering.DeclareIdent("listing_id", filtering.TypeString),
		filtering.DeclareIdent("bid_id", filtering.TypeString),
		filtering.DeclareIdent("created_at", filtering.TypeTimestamp),
	)
	if err != nil {
		return SQLCondition{}, fmt.Errorf("create declarations: %w", err)
	}
	return parse(filterStr, decls, eventColumns)
}

// parse runs the AIP-160 parser and translates the checked expression using
// the given field-to-column mapping. An empty filter yields an empty
// condition.
func parse(filterStr string, decls *filtering.Declarations, columns map[string]string) (SQLCondition, error) {
	if strings.TrimSpace(filterStr) == "" {
		return SQLCondition{}, nil
	}

	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return SQLCondition{}, fmt.Errorf("parse filter: %w", err)
	}

	tr := translator{columns: columns}
	return tr.expr(parsed.CheckedExpr.Expr)
}

type translator struct {
	columns map[string]string
}

func (tr translator) expr(e *expr.Expr) (SQLCondition, error) {
	if e == nil {
		return SQLCondition{}, nil
	}

	call, ok := e.ExprKind.(*expr.Expr_CallExpr)
	if !ok {
		return SQLCondition{}, fmt.Errorf("unsupported expression type: %T", e.ExprKind)
	}
	return tr.call(call.CallExpr)
}

func (tr translator) call(call *expr.Expr_Call) (SQLCondition, error) {
	switch call.Function {
	case "_&&_", "AND":
		return tr.logical(call.Args, "AND")
	case "_||_", "OR":
		return tr.logical(call.Args, "OR")
	case "_==_", "=":
		return tr.comparison(call.Args, "=")
	case "_!=_", "!=":
		return tr.comparison(call.Args, "!=")
	case "_<_", "<":
		return tr.comparison(call.Args, "<")
	case "_<=_", "<=":
		return tr.comparison(call.Args, "<=")
	case "_>_", ">":
		return tr.comparison(call.Args, ">")
	case "_>=_", ">=":
		return tr.comparison(call.Args, ">=")
	default:
		return SQLCondition{}, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func (tr translator) logical(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("%s requires 2 arguments", op)
	}

	left, err := tr.expr(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	right, err := tr.expr(args[1])
	if err != nil {
		return SQLCondition{}, err
	}

	return SQLCondition{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func (tr translator) comparison(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := fieldName(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	column, ok := tr.columns[field]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unknown field: %s", field)
	}

	value, err := constValue(args[1])
	if err != nil {
		return SQLCondition{}, err
	}

	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func fieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}
	ident, ok := e.ExprKind.(*expr.Expr_IdentExpr)
	if !ok {
		return "", fmt.Errorf("expected identifier, got %T", e.ExprKind)
	}
	return ident.IdentExpr.Name, nil
}

func constValue(e *expr.Expr) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_ConstExpr:
		switch c := kind.ConstExpr.ConstantKind.(type) {
		case *expr.Constant_StringValue:
			return c.StringValue, nil
		case *expr.Constant_Int64Value:
			return c.Int64Value, nil
		case *expr.Constant_Uint64Value:
			return c.Uint64Value, nil
		case *expr.Constant_BoolValue:
			return c.BoolValue, nil
		default:
			return nil, fmt.Errorf("unsupported constant type: %T", c)
		}
	case *expr.Expr_CallExpr:
		// timestamp("...") in value position becomes a unix millisecond
		// comparison against the stored column.
		if kind.CallExpr.Function == "timestamp" && len(kind.CallExpr.Args) == 1 {
			return timestampMillis(kind.CallExpr.Args[0])
		}
		return nil, fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.Function)
	default:
		return nil, fmt.Errorf("expected constant or timestamp, got %T", kind)
	}
}

func timestampMillis(e *expr.Expr) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("nil timestamp argument")
	}
	constExpr, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return 0, fmt.Errorf("timestamp argument must be a constant string")
	}
	strVal, ok := constExpr.ConstExpr.ConstantKind.(*expr.Constant_StringValue)
	if !ok {
		return 0, fmt.Errorf("timestamp argument must be a string")
	}

	t, err := time.Parse(time.RFC3339, strVal.StringValue)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, strVal.StringValue)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", strVal.StringValue)
		}
	}
	return t.UTC().UnixMilli(), nil
}
