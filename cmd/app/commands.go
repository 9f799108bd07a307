package main

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/seikyu/internal/app"
	"github.com/allisson/seikyu/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getProfileCommands())
	cmds = append(cmds, getInvoiceCommands())
	return cmds
}

// loadContainer loads and validates the configuration. Logs of one-shot commands go to
// stderr so that stdout carries only command output.
func loadContainer(stderrLogs bool) (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	container := app.NewContainer(cfg)
	if stderrLogs {
		container.SetLogger(app.NewLogger(os.Stderr, cfg.LogLevel))
	}
	return container, nil
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func yesFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
}
