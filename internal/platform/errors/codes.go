// Package errors provides structured error handling for marketplace operations.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Mint errors
	CodeMintEmptyAddress        Code = "MINT_EMPTY_ADDRESS"
	CodeMintCreatorEmptyAddress Code = "MINT_CREATOR_EMPTY_ADDRESS"
	CodeMintCreatorShareInvalid Code = "MINT_CREATOR_SHARE_INVALID"
	CodeMintSharesExceedWhole   Code = "MINT_SHARES_EXCEED_WHOLE"

	// Listing errors
	CodeListingEmptySeller     Code = "LISTING_EMPTY_SELLER"
	CodeListingEmptyMint       Code = "LISTING_EMPTY_MINT"
	CodeListingInvalidPrice    Code = "LISTING_INVALID_PRICE"
	CodeListingInvalidQuantity Code = "LISTING_INVALID_QUANTITY"
	CodeListingInvalidExpiry   Code = "LISTING_INVALID_EXPIRY"
	CodeListingExpired         Code = "LISTING_EXPIRED"

	// Bid errors
	CodeBidEmptyBidder   Code = "BID_EMPTY_BIDDER"
	CodeBidEmptyMint     Code = "BID_EMPTY_MINT"
	CodeBidInvalidPrice  Code = "BID_INVALID_PRICE"
	CodeBidInvalidExpiry Code = "BID_INVALID_EXPIRY"
	CodeBidExpired       Code = "BID_EXPIRED"

	// Settlement errors
	CodeSettlementOverflow     Code = "SETTLEMENT_OVERFLOW"
	CodeSettlementRoyaltyDrain Code = "SETTLEMENT_ROYALTY_DRAIN"

	// Trade grant errors
	CodeTradeGrantInvalid  Code = "TRADE_GRANT_INVALID"
	CodeTradeGrantExpired  Code = "TRADE_GRANT_EXPIRED"
	CodeTradeGrantMismatch Code = "TRADE_GRANT_MISMATCH"

	// Storage errors
	CodeNotFound          Code = "NOT_FOUND"
	CodeAlreadyExists     Code = "ALREADY_EXISTS"
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeMintEmptyAddress,
		CodeMintCreatorEmptyAddress,
		CodeMintCreatorShareInvalid,
		CodeMintSharesExceedWhole,
		CodeListingEmptySeller,
		CodeListingEmptyMint,
		CodeListingInvalidPrice,
		CodeListingInvalidQuantity,
		CodeListingInvalidExpiry,
		CodeBidEmptyBidder,
		CodeBidEmptyMint,
		CodeBidInvalidPrice,
		CodeBidInvalidExpiry,
		CodeSettlementOverflow,
		CodeSettlementRoyaltyDrain:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeListingExpired,
		CodeBidExpired,
		CodeInsufficientFunds,
		CodeTradeGrantExpired:
		return codes.FailedPrecondition

	// Unauthenticated - trade grant failures
	case CodeTradeGrantInvalid,
		CodeTradeGrantMismatch:
		return codes.Unauthenticated

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeAlreadyExists:
		return codes.AlreadyExists

	default:
		return codes.Internal
	}
}
