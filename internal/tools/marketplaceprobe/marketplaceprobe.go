// Package marketplaceprobe checks a running marketplace service from the
// outside. It dials the gRPC endpoint, waits for the health check to serve,
// and issues a read query to confirm the storage path answers.
package marketplaceprobe

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	marketplacev1 "github.com/flypxyz/marketplace/api/gen/go/marketplace/v1"
	platformgrpc "github.com/flypxyz/marketplace/internal/platform/grpc"
	"github.com/flypxyz/marketplace/internal/platform/timeouts"
)

// Config holds probe command configuration.
type Config struct {
	Addr    string        `env:"FLYP_MARKETPLACE_ADDR" envDefault:"localhost:8090"`
	Timeout time.Duration `env:"FLYP_MARKETPLACE_PROBE_TIMEOUT" envDefault:"10s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "marketplace gRPC address")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall probe timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run dials the marketplace service and reports its health and query path.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return fmt.Errorf("marketplace address is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	conn, err := platformgrpc.DialWithHealth(
		ctx, nil, addr, timeouts.GRPCDial, nil,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return fmt.Errorf("probe marketplace at %s: %w", addr, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	client := marketplacev1.NewMarketplaceServiceClient(conn)
	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	resp, err := client.ListListings(callCtx, &marketplacev1.ListListingsRequest{PageSize: 1})
	if err != nil {
		return fmt.Errorf("probe marketplace listings at %s: %w", addr, err)
	}

	fmt.Fprintf(out, "marketplace at %s is serving (%d listings on first page)\n", addr, len(resp.GetListings()))
	return nil
}
