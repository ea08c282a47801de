// Package cardpreview wires configuration and startup for the preview command.
package cardpreview

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/cardrow/internal/platform/cmd"
	"github.com/louisbranch/cardrow/internal/platform/theme"
	"github.com/louisbranch/cardrow/internal/services/cardpreview"
)

// Config holds the preview command configuration.
type Config struct {
	HTTPAddr  string `env:"CARDROW_HTTP_ADDR" envDefault:"localhost:8095"`
	ThemeFile string `env:"CARDROW_THEME_FILE"`
}

// ParseConfig reads environment defaults and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		fs = flag.NewFlagSet(entrypoint.ServiceCardPreview, flag.ContinueOnError)
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ThemeFile, "theme-file", cfg.ThemeFile, "Optional TOML theme override file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the preview server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	th, err := theme.LoadFile(cfg.ThemeFile)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCardPreview, func(ctx context.Context) error {
		server, err := cardpreview.NewServer(cardpreview.Config{
			HTTPAddr: cfg.HTTPAddr,
			Theme:    th,
			Logger:   log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init preview server: %w", err)
		}
		defer server.Close()

		log.Printf("listening addr=%s", server.Addr())
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve preview: %w", err)
		}
		return nil
	})
}
