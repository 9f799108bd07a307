package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/seikyu/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := loadContainer(false)
				if err != nil {
					return err
				}
				return commands.RunServer(ctx, container, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Create the key/value table for the postgres and mysql storage drivers",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Value:   "migrations",
					Usage:   "Directory holding the postgresql/ and mysql/ migration sets",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := loadContainer(true)
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				cfg := container.Config()
				return commands.RunMigrations(
					container.Logger(),
					cmd.String("dir"),
					cfg.StorageDriver,
					cfg.DBConnectionString,
				)
			},
		},
		{
			Name:  "calc",
			Usage: "Calculate consumption and withholding tax for a list of items",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "item",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Item as description:quantity:unitPrice (repeatable)",
				},
				&cli.BoolFlag{
					Name:    "withholding",
					Aliases: []string{"w"},
					Value:   true,
					Usage:   "Deduct withholding income tax",
				},
				&cli.StringFlag{
					Name:    "method",
					Aliases: []string{"m"},
					Value:   "included",
					Usage:   "Withholding base: 'included' or 'separate'",
				},
				&cli.BoolFlag{
					Name:  "compare",
					Usage: "Show both calculation methods side by side",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCalc(
					commands.DefaultIO(),
					cmd.StringSlice("item"),
					cmd.Bool("withholding"),
					cmd.String("method"),
					cmd.Bool("compare"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "storage",
			Usage: "Inspect or clear persisted data",
			Commands: []*cli.Command{
				{
					Name:  "info",
					Usage: "Show stored keys and their sizes",
					Flags: []cli.Flag{formatFlag()},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						container, err := loadContainer(true)
						if err != nil {
							return err
						}
						defer func() { _ = container.Shutdown(ctx) }()

						store, err := container.StorageService()
						if err != nil {
							return err
						}
						return commands.RunStorageInfo(
							ctx,
							store,
							commands.DefaultIO(),
							container.Config().StorageDriver,
							cmd.String("format"),
						)
					},
				},
				{
					Name:  "clear",
					Usage: "Delete all profiles, invoices and the invoice counter",
					Flags: []cli.Flag{yesFlag()},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						container, err := loadContainer(true)
						if err != nil {
							return err
						}
						defer func() { _ = container.Shutdown(ctx) }()

						store, err := container.StorageService()
						if err != nil {
							return err
						}
						return commands.RunStorageClear(ctx, store, commands.DefaultIO(), cmd.Bool("yes"))
					},
				},
			},
		},
	}
}
