package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/allisson/seikyu/cmd/app/commands"
	"github.com/allisson/seikyu/internal/app"
	profileUseCase "github.com/allisson/seikyu/internal/profile/usecase"
)

// withProfiles runs fn with a profile use case backed by the configured storage.
func withProfiles(
	ctx context.Context,
	fn func(container *app.Container, useCase profileUseCase.ProfileUseCase) error,
) error {
	container, err := loadContainer(true)
	if err != nil {
		return err
	}
	defer func() { _ = container.Shutdown(ctx) }()

	useCase, err := container.ProfileUseCase()
	if err != nil {
		return err
	}
	return fn(container, useCase)
}

func getProfileCommands() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Manage issuer profiles",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all profiles",
				Flags: []cli.Flag{formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withProfiles(ctx, func(_ *app.Container, uc profileUseCase.ProfileUseCase) error {
						return commands.RunProfileList(ctx, uc, commands.DefaultIO(), cmd.String("format"))
					})
				},
			},
			{
				Name:  "show",
				Usage: "Show a profile (the default profile when --id is omitted)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "id",
						Aliases: []string{"i"},
						Usage:   "Profile ID",
					},
					formatFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withProfiles(ctx, func(_ *app.Container, uc profileUseCase.ProfileUseCase) error {
						return commands.RunProfileShow(
							ctx, uc, commands.DefaultIO(), cmd.String("id"), cmd.String("format"),
						)
					})
				},
			},
			{
				Name:  "create",
				Usage: "Create a profile from a JSON document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"F"},
						Required: true,
						Usage:    "Path to the JSON document ('-' for stdin)",
					},
					formatFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withProfiles(ctx, func(container *app.Container, uc profileUseCase.ProfileUseCase) error {
						return commands.RunProfileCreate(
							ctx,
							uc,
							container.Logger(),
							commands.DefaultIO(),
							cmd.String("file"),
							cmd.String("format"),
						)
					})
				},
			},
			{
				Name:  "update",
				Usage: "Update sections of a profile from a partial JSON document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Profile ID",
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"F"},
						Required: true,
						Usage:    "Path to the JSON document ('-' for stdin)",
					},
					formatFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withProfiles(ctx, func(container *app.Container, uc profileUseCase.ProfileUseCase) error {
						return commands.RunProfileUpdate(
							ctx,
							uc,
							container.Logger(),
							commands.DefaultIO(),
							cmd.String("id"),
							cmd.String("file"),
							cmd.String("format"),
						)
					})
				},
			},
			{
				Name:  "delete",
				Usage: "Delete a profile",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Profile ID",
					},
					yesFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withProfiles(ctx, func(_ *app.Container, uc profileUseCase.ProfileUseCase) error {
						return commands.RunProfileDelete(ctx, uc, commands.DefaultIO(), cmd.String("id"), cmd.Bool("yes"))
					})
				},
			},
			{
				Name:  "set-default",
				Usage: "Make a profile the default issuer",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Profile ID",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withProfiles(ctx, func(_ *app.Container, uc profileUseCase.ProfileUseCase) error {
						return commands.RunProfileSetDefault(ctx, uc, commands.DefaultIO(), cmd.String("id"))
					})
				},
			},
			{
				Name:  "export",
				Usage: "Write an unencrypted backup of all profiles",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file or directory (stdout when omitted)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withProfiles(ctx, func(_ *app.Container, uc profileUseCase.ProfileUseCase) error {
						return commands.RunProfileExport(ctx, uc, commands.DefaultIO(), cmd.String("output"), time.Now())
					})
				},
			},
			{
				Name:  "import",
				Usage: "Replace all profiles with those of a backup",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"F"},
						Required: true,
						Usage:    "Path to the backup ('-' for stdin, requires --yes)",
					},
					yesFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withProfiles(ctx, func(container *app.Container, uc profileUseCase.ProfileUseCase) error {
						return commands.RunProfileImport(
							ctx,
							uc,
							container.Logger(),
							commands.DefaultIO(),
							cmd.String("file"),
							cmd.Bool("yes"),
						)
					})
				},
			},
		},
	}
}
