// Package main probes a running marketplace service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/flypxyz/marketplace/internal/platform/config"
	"github.com/flypxyz/marketplace/internal/tools/marketplaceprobe"
)

func main() {
	cfg, err := marketplaceprobe.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := marketplaceprobe.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
