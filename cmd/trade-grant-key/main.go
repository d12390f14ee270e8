// Package main provides a one-shot utility for trade-grant key generation.
//
// It emits the asymmetric keypair used to sign and verify trade grants.
package main

import (
	"os"

	"github.com/flypxyz/marketplace/internal/platform/config"
	"github.com/flypxyz/marketplace/internal/tools/tradegrantkey"
)

func main() {
	if err := tradegrantkey.Run(os.Stdout, nil); err != nil {
		config.Exitf("generate trade grant key: %v", err)
	}
}
