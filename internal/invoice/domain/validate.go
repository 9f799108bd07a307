package domain

import (
	"errors"
	"time"

	validation "github.com/jellydator/validation"

	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
	customValidation "github.com/allisson/seikyu/internal/validation"
)

// Validate checks the client section.
func (c ClientInfo) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&c.Email, customValidation.Email),
	)
}

// Validate checks the input. Dates must already be filled in.
func (i *CreateInvoiceInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Client),
		validation.Field(&i.Items, validation.Required, taxDomain.SubtotalWithinLimit),
		validation.Field(&i.TaxMethod, validation.Required,
			validation.In(taxDomain.TaxMethodIncluded, taxDomain.TaxMethodSeparate)),
		validation.Field(&i.IssueDate, validation.Required, customValidation.ISODate),
		validation.Field(&i.DueDate, validation.Required, customValidation.ISODate,
			validation.By(notBefore(i.IssueDate))),
		validation.Field(&i.Notes, validation.Length(0, 2000)),
	)
}

// ApplyDefaults fills the method and the dates. today is the issue date when none is
// given and the due date defaults to the issue date plus paymentTermsDays.
func (i *CreateInvoiceInput) ApplyDefaults(today time.Time, paymentTermsDays int) {
	if i.TaxMethod == "" {
		i.TaxMethod = taxDomain.TaxMethodIncluded
	}
	if i.IssueDate == "" {
		i.IssueDate = today.Format(customValidation.ISODateLayout)
	}
	if i.DueDate == "" {
		issued, err := time.Parse(customValidation.ISODateLayout, i.IssueDate)
		if err != nil {
			// Left empty so Validate reports the bad issue date.
			return
		}
		i.DueDate = issued.AddDate(0, 0, paymentTermsDays).Format(customValidation.ISODateLayout)
	}
}

// Validate checks the filter bounds.
func (f InvoiceFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.DateFrom, customValidation.ISODate),
		validation.Field(&f.DateTo, customValidation.ISODate),
	)
}

func notBefore(start string) validation.RuleFunc {
	return func(value any) error {
		end, _ := value.(string)
		if end == "" || start == "" {
			return nil
		}
		if end < start {
			return errors.New("must not be before the issue date")
		}
		return nil
	}
}
