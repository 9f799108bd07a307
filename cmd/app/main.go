// Package main provides the entry point for the seikyu CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/seikyu/internal/config"
)

func main() {
	cmd := &cli.Command{
		Name:     "seikyu",
		Usage:    "Issue Japanese freelance invoices with consumption and withholding tax",
		Version:  config.Version,
		Commands: getCommands(config.Version),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
