package commands

import (
	"context"
	"fmt"
	"log/slog"

	invoiceDomain "github.com/allisson/seikyu/internal/invoice/domain"
	"github.com/allisson/seikyu/internal/invoice/http/dto"
	invoiceUseCase "github.com/allisson/seikyu/internal/invoice/usecase"
	taxService "github.com/allisson/seikyu/internal/tax/service"
)

// RunInvoiceCreate issues an invoice from a JSON document read from file ("-" for stdin).
// A non-empty profileID overrides the document's profileId.
func RunInvoiceCreate(
	ctx context.Context,
	useCase invoiceUseCase.InvoiceUseCase,
	logger *slog.Logger,
	streams IOTuple,
	file string,
	profileID string,
	format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	var req dto.CreateInvoiceRequest
	if err := decodeInput(streams, file, &req); err != nil {
		return err
	}
	if profileID != "" {
		req.ProfileID = profileID
	}

	record, err := useCase.CreateForProfile(ctx, req.ProfileID, req.ToDomain())
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	logger.Info("invoice created", slog.String("invoice_number", record.InvoiceNumber))
	return writeInvoice(streams, record, format)
}

// RunInvoiceList prints the invoices matching filter.
func RunInvoiceList(
	ctx context.Context,
	useCase invoiceUseCase.InvoiceUseCase,
	streams IOTuple,
	filter invoiceDomain.InvoiceFilter,
	format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	summaries, err := useCase.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list invoices: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(streams.Writer, dto.ListInvoicesResponse{Data: summaries, Total: len(summaries)})
	}

	if len(summaries) == 0 {
		_, _ = fmt.Fprintln(streams.Writer, "No invoices found.")
		return nil
	}

	table := newTable(streams.Writer)
	_, _ = fmt.Fprintln(table, "NUMBER\tISSUED\tCLIENT\tAMOUNT DUE\tID")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n",
			s.InvoiceNumber,
			s.IssueDate,
			s.ClientName,
			taxService.FormatCurrencyWithSymbol(s.FinalAmount),
			s.ID,
		)
	}
	return table.Flush()
}

// RunInvoiceShow prints one invoice.
func RunInvoiceShow(
	ctx context.Context,
	useCase invoiceUseCase.InvoiceUseCase,
	streams IOTuple,
	id string,
	format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	record, err := useCase.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get invoice: %w", err)
	}
	return writeInvoice(streams, record, format)
}

// RunInvoiceDelete removes an invoice after confirmation, unless yes is set.
func RunInvoiceDelete(
	ctx context.Context,
	useCase invoiceUseCase.InvoiceUseCase,
	streams IOTuple,
	id string,
	yes bool,
) error {
	if !yes {
		ok, err := confirm(streams, fmt.Sprintf("Delete invoice %s?", id))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(streams.Writer, "Aborted.")
			return nil
		}
	}

	if err := useCase.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	_, _ = fmt.Fprintf(streams.Writer, "Invoice %s deleted.\n", id)
	return nil
}

// RunInvoiceNextNumber prints the number the next invoice will receive.
func RunInvoiceNextNumber(
	ctx context.Context,
	useCase invoiceUseCase.InvoiceUseCase,
	streams IOTuple,
	format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	number, err := useCase.NextNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to preview invoice number: %w", err)
	}

	if format == FormatJSON {
		return writeJSON(streams.Writer, dto.NextNumberResponse{InvoiceNumber: number})
	}
	_, err = fmt.Fprintln(streams.Writer, number)
	return err
}

func writeInvoice(streams IOTuple, record *invoiceDomain.InvoiceRecord, format string) error {
	if format == FormatJSON {
		return writeJSON(streams.Writer, dto.MapInvoiceToResponse(record))
	}

	table := newTable(streams.Writer)
	_, _ = fmt.Fprintf(table, "Invoice\t%s\n", record.InvoiceNumber)
	_, _ = fmt.Fprintf(table, "ID\t%s\n", record.ID)
	_, _ = fmt.Fprintf(table, "Issued\t%s\n", record.IssueDate)
	_, _ = fmt.Fprintf(table, "Due\t%s\n", record.DueDate)
	_, _ = fmt.Fprintf(table, "Issuer\t%s\n", record.Issuer.PersonalInfo.Name)
	client := record.Client.Name
	if record.Client.CompanyName != "" {
		client = record.Client.CompanyName + " " + client
	}
	_, _ = fmt.Fprintf(table, "Client\t%s\n", client)
	_, _ = fmt.Fprintln(table)
	if err := table.Flush(); err != nil {
		return err
	}

	if err := writeCalculation(streams, record.Items, record.Calculation); err != nil {
		return err
	}
	if record.Notes != "" {
		_, _ = fmt.Fprintf(streams.Writer, "\nNotes: %s\n", record.Notes)
	}
	return nil
}
