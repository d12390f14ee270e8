// Package marketplace parses marketplace service flags and launches the
// service.
package marketplace

import (
	"context"
	"flag"

	entrypoint "github.com/flypxyz/marketplace/internal/platform/cmd"
	server "github.com/flypxyz/marketplace/internal/services/marketplace/app"
)

// Config holds marketplace command configuration.
type Config struct {
	Port int `env:"FLYP_MARKETPLACE_PORT" envDefault:"8090"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The marketplace gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the marketplace gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMarketplace, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
