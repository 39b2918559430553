// Package main provides the locale file synchronizer.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/localesync/internal/platform/cmd"
	"github.com/louisbranch/localesync/internal/platform/config"
	apperrors "github.com/louisbranch/localesync/internal/platform/errors"
	"github.com/louisbranch/localesync/internal/tools/localesync"
)

// exitOutOfSync distinguishes a failed -check from a failed run.
const exitOutOfSync = 2

func main() {
	cfg, err := localesync.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceLocaleSync, func(ctx context.Context) error {
		return localesync.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err == nil {
		return
	}
	if apperrors.HasCode(err, apperrors.CodeOutOfSync) {
		config.Exit(exitOutOfSync, "Error: %v", err)
	}
	config.Exitf("Error: %v", err)
}
