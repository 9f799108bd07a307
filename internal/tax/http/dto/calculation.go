// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
	taxService "github.com/allisson/seikyu/internal/tax/service"
)

// CalculateRequest contains the items to price.
type CalculateRequest struct {
	Items          []taxDomain.InvoiceItem        `json:"items"`
	HasWithholding bool                           `json:"hasWithholding"`
	TaxMethod      taxDomain.TaxCalculationMethod `json:"taxMethod"`
}

// ToDomain converts the request into a calculation input.
func (r *CalculateRequest) ToDomain() *taxDomain.CalculationInput {
	return &taxDomain.CalculationInput{
		Items:          r.Items,
		HasWithholding: r.HasWithholding,
		TaxMethod:      r.TaxMethod,
	}
}

// FormattedAmounts holds display strings for each amount, e.g. ¥30,000.
type FormattedAmounts struct {
	Subtotal       string `json:"subtotal"`
	ConsumptionTax string `json:"consumptionTax"`
	WithholdingTax string `json:"withholdingTax"`
	FinalAmount    string `json:"finalAmount"`
}

// CalculateResponse is the priced result.
type CalculateResponse struct {
	Items       []taxDomain.InvoiceItem      `json:"items"`
	Calculation taxDomain.InvoiceCalculation `json:"calculation"`
	Formatted   FormattedAmounts             `json:"formatted"`
}

// MapCalculationToResponse builds the response for priced items.
func MapCalculationToResponse(
	items []taxDomain.InvoiceItem,
	calc taxDomain.InvoiceCalculation,
) CalculateResponse {
	return CalculateResponse{
		Items:       items,
		Calculation: calc,
		Formatted: FormattedAmounts{
			Subtotal:       taxService.FormatCurrencyWithSymbol(calc.Subtotal),
			ConsumptionTax: taxService.FormatCurrencyWithSymbol(calc.ConsumptionTax),
			WithholdingTax: taxService.FormatCurrencyWithSymbol(calc.WithholdingTax),
			FinalAmount:    taxService.FormatCurrencyWithSymbol(calc.FinalAmount),
		},
	}
}
