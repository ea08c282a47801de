// Package main starts the card preview service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cardpreviewcmd "github.com/louisbranch/cardrow/internal/cmd/cardpreview"
	entrypoint "github.com/louisbranch/cardrow/internal/platform/cmd"
	"github.com/louisbranch/cardrow/internal/platform/config"
)

func main() {
	cfg, err := cardpreviewcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceCardPreview))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cardpreviewcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
