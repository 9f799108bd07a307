package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/seikyu/cmd/app/commands"
	"github.com/allisson/seikyu/internal/app"
	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	invoiceUseCase "github.com/allisson/seikyu/internal/invoice/usecase"
)

// withInvoices runs fn with an invoice use case backed by the configured storage.
func withInvoices(
	ctx context.Context,
	fn func(container *app.Container, useCase invoiceUseCase.InvoiceUseCase) error,
) error {
	container, err := loadContainer(true)
	if err != nil {
		return err
	}
	defer func() { _ = container.Shutdown(ctx) }()

	useCase, err := container.InvoiceUseCase()
	if err != nil {
		return err
	}
	return fn(container, useCase)
}

func invoiceIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "id",
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "Invoice ID",
	}
}

func getInvoiceCommands() *cli.Command {
	return &cli.Command{
		Name:  "invoice",
		Usage: "Issue and browse invoices",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Issue an invoice from a JSON document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"F"},
						Required: true,
						Usage:    "Path to the JSON document ('-' for stdin)",
					},
					&cli.StringFlag{
						Name:    "profile",
						Aliases: []string{"p"},
						Usage:   "Issuer profile ID (the default profile when omitted)",
					},
					formatFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withInvoices(ctx, func(container *app.Container, uc invoiceUseCase.InvoiceUseCase) error {
						return commands.RunInvoiceCreate(
							ctx,
							uc,
							container.Logger(),
							commands.DefaultIO(),
							cmd.String("file"),
							cmd.String("profile"),
							cmd.String("format"),
						)
					})
				},
			},
			{
				Name:  "list",
				Usage: "List issued invoices",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "client",
						Aliases: []string{"c"},
						Usage:   "Filter by client or company name (substring, case-insensitive)",
					},
					&cli.StringFlag{
						Name:  "from",
						Usage: "Earliest issue date (YYYY-MM-DD)",
					},
					&cli.StringFlag{
						Name:  "to",
						Usage: "Latest issue date (YYYY-MM-DD)",
					},
					formatFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					filter := invoiceDomain.InvoiceFilter{
						ClientName: cmd.String("client"),
						DateFrom:   cmd.String("from"),
						DateTo:     cmd.String("to"),
					}
					return withInvoices(ctx, func(_ *app.Container, uc invoiceUseCase.InvoiceUseCase) error {
						return commands.RunInvoiceList(ctx, uc, commands.DefaultIO(), filter, cmd.String("format"))
					})
				},
			},
			{
				Name:  "show",
				Usage: "Show an invoice",
				Flags: []cli.Flag{invoiceIDFlag(), formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withInvoices(ctx, func(_ *app.Container, uc invoiceUseCase.InvoiceUseCase) error {
						return commands.RunInvoiceShow(ctx, uc, commands.DefaultIO(), cmd.String("id"), cmd.String("format"))
					})
				},
			},
			{
				Name:  "delete",
				Usage: "Delete an invoice",
				Flags: []cli.Flag{invoiceIDFlag(), yesFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withInvoices(ctx, func(_ *app.Container, uc invoiceUseCase.InvoiceUseCase) error {
						return commands.RunInvoiceDelete(ctx, uc, commands.DefaultIO(), cmd.String("id"), cmd.Bool("yes"))
					})
				},
			},
			{
				Name:  "next-number",
				Usage: "Preview the number the next invoice will receive",
				Flags: []cli.Flag{formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withInvoices(ctx, func(_ *app.Container, uc invoiceUseCase.InvoiceUseCase) error {
						return commands.RunInvoiceNextNumber(ctx, uc, commands.DefaultIO(), cmd.String("format"))
					})
				},
			},
		},
	}
}
