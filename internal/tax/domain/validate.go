package domain

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	customValidation "github.com/allisson/seikyu/internal/validation"
)

// Input limits. With these caps every line amount, subtotal, tax and final amount fits
// in an int64 with a wide margin.
const (
	MaxQuantity  int64 = 1_000_000
	MaxUnitPrice int64 = 1_000_000_000_000
	MaxSubtotal  int64 = 1_000_000_000_000_000
)

// ErrSubtotalTooLarge is reported when the items add up to more than MaxSubtotal.
var ErrSubtotalTooLarge = validation.NewError(
	"validation_subtotal_too_large",
	"subtotal must be no greater than 1000000000000000",
)

// CalculationInput is a request to price a set of items.
type CalculationInput struct {
	Items          []InvoiceItem        `json:"items"`
	HasWithholding bool                 `json:"hasWithholding"`
	TaxMethod      TaxCalculationMethod `json:"taxMethod"`
}

// LineAmount returns quantity * unitPrice as an exact decimal.
func LineAmount(quantity, unitPrice int64) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(decimal.NewFromInt(unitPrice))
}

// ItemsSubtotal sums the line amounts of items without intermediate int64 arithmetic.
func ItemsSubtotal(items []InvoiceItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineAmount(item.Quantity, item.UnitPrice))
	}
	return subtotal
}

// SubtotalWithinLimit rejects item lists whose subtotal exceeds MaxSubtotal.
var SubtotalWithinLimit = validation.By(func(value any) error {
	items, ok := value.([]InvoiceItem)
	if !ok {
		return nil
	}
	if ItemsSubtotal(items).GreaterThan(decimal.NewFromInt(MaxSubtotal)) {
		return ErrSubtotalTooLarge
	}
	return nil
})

// Validate checks a single line. Quantity must be between 1 and MaxQuantity and the
// unit price between 0 and MaxUnitPrice.
func (i InvoiceItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Description, validation.Required, customValidation.NotBlank),
		validation.Field(&i.Quantity, validation.Required,
			validation.Min(int64(1)), validation.Max(MaxQuantity)),
		validation.Field(&i.UnitPrice, validation.Min(int64(0)), validation.Max(MaxUnitPrice)),
	)
}

// Validate checks the method, every item and the subtotal.
func (c *CalculationInput) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Items, validation.Required, SubtotalWithinLimit),
		validation.Field(&c.TaxMethod, validation.Required, validation.In(TaxMethodIncluded, TaxMethodSeparate)),
	)
}

// ApplyDefaults selects the included method when none is given.
func (c *CalculationInput) ApplyDefaults() {
	if c.TaxMethod == "" {
		c.TaxMethod = TaxMethodIncluded
	}
}
