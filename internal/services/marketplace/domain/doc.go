// Package domain holds the marketplace's core types and settlement rules:
// mints with royalty creators, listings that escrow NFTs, bids that escrow
// payment, and the fee math that splits a sale between seller, creators,
// marketplace, and the second-highest bidder.
package domain
