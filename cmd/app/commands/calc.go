package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
	"github.com/allisson/seikyu/internal/tax/http/dto"
	taxService "github.com/allisson/seikyu/internal/tax/service"
	"github.com/allisson/seikyu/internal/validation"
)

// RunCalc prices items given as "description:quantity:unitPrice" and prints the totals.
// With compare set, the result of both withholding methods is shown side by side.
func RunCalc(
	streams IOTuple,
	itemSpecs []string,
	hasWithholding bool,
	method string,
	compare bool,
	format string,
) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	items, err := parseItems(itemSpecs)
	if err != nil {
		return err
	}

	input := &taxDomain.CalculationInput{
		Items:          items,
		HasWithholding: hasWithholding,
		TaxMethod:      taxDomain.TaxCalculationMethod(method),
	}
	input.ApplyDefaults()
	if err := input.Validate(); err != nil {
		return validation.WrapValidationError(err)
	}

	priced := taxService.WithAmounts(input.Items)

	if compare {
		included := taxService.Calculate(priced, hasWithholding, taxDomain.TaxMethodIncluded)
		separate := taxService.Calculate(priced, hasWithholding, taxDomain.TaxMethodSeparate)
		if format == FormatJSON {
			return writeJSON(streams.Writer, map[string]dto.CalculateResponse{
				string(taxDomain.TaxMethodIncluded): dto.MapCalculationToResponse(priced, included),
				string(taxDomain.TaxMethodSeparate): dto.MapCalculationToResponse(priced, separate),
			})
		}
		return writeComparison(streams, included, separate)
	}

	calc := taxService.Calculate(priced, input.HasWithholding, input.TaxMethod)
	if format == FormatJSON {
		return writeJSON(streams.Writer, dto.MapCalculationToResponse(priced, calc))
	}
	return writeCalculation(streams, priced, calc)
}

// parseItems parses each item string from the right so descriptions may contain colons.
func parseItems(raws []string) ([]taxDomain.InvoiceItem, error) {
	items := make([]taxDomain.InvoiceItem, 0, len(raws))
	for _, raw := range raws {
		parts := strings.Split(raw, ":")
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid item %q: expected description:quantity:unitPrice", raw)
		}
		n := len(parts)
		quantity, err := strconv.ParseInt(strings.TrimSpace(parts[n-2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in item %q: %w", raw, err)
		}
		unitPrice, err := strconv.ParseInt(strings.TrimSpace(parts[n-1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid unit price in item %q: %w", raw, err)
		}
		items = append(items, taxDomain.InvoiceItem{
			Description: strings.Join(parts[:n-2], ":"),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}
	return items, nil
}

func writeCalculation(streams IOTuple, items []taxDomain.InvoiceItem, calc taxDomain.InvoiceCalculation) error {
	table := newTable(streams.Writer)
	_, _ = fmt.Fprintln(table, "DESCRIPTION\tQTY\tUNIT PRICE\tAMOUNT")
	for _, item := range items {
		_, _ = fmt.Fprintf(table, "%s\t%d\t%s\t%s\n",
			item.Description,
			item.Quantity,
			taxService.FormatCurrencyWithSymbol(item.UnitPrice),
			taxService.FormatCurrencyWithSymbol(item.Amount),
		)
	}
	_, _ = fmt.Fprintln(table)
	writeTotals(table, calc)
	return table.Flush()
}

func writeTotals(table io.Writer, calc taxDomain.InvoiceCalculation) {
	_, _ = fmt.Fprintf(table, "Subtotal\t%s\n", taxService.FormatCurrencyWithSymbol(calc.Subtotal))
	_, _ = fmt.Fprintf(table, "Consumption tax (10%%)\t%s\n", taxService.FormatCurrencyWithSymbol(calc.ConsumptionTax))
	_, _ = fmt.Fprintf(table, "Withholding tax (10.21%%, %s)\t-%s\n",
		calc.TaxMethod, taxService.FormatCurrencyWithSymbol(calc.WithholdingTax))
	_, _ = fmt.Fprintf(table, "Amount due\t%s\n", taxService.FormatCurrencyWithSymbol(calc.FinalAmount))
}

func writeComparison(streams IOTuple, included, separate taxDomain.InvoiceCalculation) error {
	table := newTable(streams.Writer)
	_, _ = fmt.Fprintln(table, "\tINCLUDED\tSEPARATE")
	row := func(label string, a, b int64) {
		_, _ = fmt.Fprintf(table, "%s\t%s\t%s\n", label,
			taxService.FormatCurrencyWithSymbol(a), taxService.FormatCurrencyWithSymbol(b))
	}
	row("Subtotal", included.Subtotal, separate.Subtotal)
	row("Consumption tax", included.ConsumptionTax, separate.ConsumptionTax)
	row("Withholding tax", included.WithholdingTax, separate.WithholdingTax)
	row("Amount due", included.FinalAmount, separate.FinalAmount)
	return table.Flush()
}
