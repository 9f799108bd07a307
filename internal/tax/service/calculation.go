// Package service implements the invoice tax calculation.
//
// The rules follow the National Tax Agency guidance for withholding on fees paid to
// individuals: every intermediate tax amount is rounded down to the yen, and the
// withholding base depends on whether consumption tax is stated separately.
package service

import (
	"github.com/shopspring/decimal"

	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
)

var (
	consumptionTaxRate = decimal.RequireFromString(taxDomain.ConsumptionTaxRate)
	withholdingTaxRate = decimal.RequireFromString(taxDomain.WithholdingTaxRate)
)

// ItemAmount returns quantity * unitPrice. The product is formed as a decimal, so
// quantities and prices within the validated limits never wrap.
func ItemAmount(quantity, unitPrice int64) int64 {
	return taxDomain.LineAmount(quantity, unitPrice).IntPart()
}

// WithAmounts returns a copy of items with Amount recomputed from Quantity and UnitPrice.
func WithAmounts(items []taxDomain.InvoiceItem) []taxDomain.InvoiceItem {
	out := make([]taxDomain.InvoiceItem, len(items))
	for i, item := range items {
		item.Amount = ItemAmount(item.Quantity, item.UnitPrice)
		out[i] = item
	}
	return out
}

// Calculate computes subtotal, consumption tax, withholding tax and the final amount.
//
// It is pure and total: it never fails and has no side effects, so it can back a live
// preview. Item amounts are recomputed from quantity and unit price. Any method other
// than TaxMethodSeparate is treated as TaxMethodIncluded; input validation is the
// caller's job. Results are exact for inputs that pass CalculationInput.Validate.
func Calculate(
	items []taxDomain.InvoiceItem,
	hasWithholding bool,
	method taxDomain.TaxCalculationMethod,
) taxDomain.InvoiceCalculation {
	subtotal := taxDomain.ItemsSubtotal(items)

	consumptionTax := subtotal.Mul(consumptionTaxRate).Floor()

	withholdingTax := decimal.Zero
	if hasWithholding {
		base := subtotal.Add(consumptionTax)
		if method == taxDomain.TaxMethodSeparate {
			base = subtotal
		}
		withholdingTax = base.Mul(withholdingTaxRate).Floor()
	}

	finalAmount := subtotal.Add(consumptionTax).Sub(withholdingTax)

	return taxDomain.InvoiceCalculation{
		Subtotal:       subtotal.IntPart(),
		ConsumptionTax: consumptionTax.IntPart(),
		WithholdingTax: withholdingTax.IntPart(),
		FinalAmount:    finalAmount.IntPart(),
		TaxMethod:      method,
	}
}

// Example calculates a single-item invoice of amount yen. Used to illustrate the
// difference between the two withholding methods.
func Example(
	amount int64,
	hasWithholding bool,
	method taxDomain.TaxCalculationMethod,
) taxDomain.InvoiceCalculation {
	return Calculate([]taxDomain.InvoiceItem{{
		ID:          "sample",
		Description: "sample",
		Quantity:    1,
		UnitPrice:   amount,
	}}, hasWithholding, method)
}
