// Package domain defines the invoice line item and calculation types together with
// the statutory Japanese tax rates applied to them.
package domain

// TaxCalculationMethod selects the withholding-tax base.
type TaxCalculationMethod string

const (
	// TaxMethodIncluded computes withholding tax on the consumption-tax inclusive amount.
	// This is the general rule and the default.
	TaxMethodIncluded TaxCalculationMethod = "included"

	// TaxMethodSeparate computes withholding tax on the tax-exclusive subtotal. Allowed
	// when consumption tax is stated separately on the invoice.
	TaxMethodSeparate TaxCalculationMethod = "separate"
)

// Statutory rates, as strings so they can be parsed into exact decimals.
const (
	// ConsumptionTaxRate is the standard consumption tax rate (10%).
	ConsumptionTaxRate = "0.10"

	// WithholdingTaxRate is income tax (10%) plus the reconstruction special income
	// tax (0.21%).
	WithholdingTaxRate = "0.1021"
)

// Valid reports whether m is a known method.
func (m TaxCalculationMethod) Valid() bool {
	return m == TaxMethodIncluded || m == TaxMethodSeparate
}

// InvoiceItem is one billed line. Amounts are whole yen.
type InvoiceItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	// Amount is Quantity * UnitPrice. It is recomputed on every calculation and
	// never trusted as input.
	Amount int64 `json:"amount"`
}

// InvoiceCalculation is the result of a tax calculation. All fields are whole yen
// and FinalAmount == Subtotal + ConsumptionTax - WithholdingTax.
type InvoiceCalculation struct {
	Subtotal       int64                `json:"subtotal"`
	ConsumptionTax int64                `json:"consumptionTax"`
	WithholdingTax int64                `json:"withholdingTax"`
	FinalAmount    int64                `json:"finalAmount"`
	TaxMethod      TaxCalculationMethod `json:"taxMethod"`
}
