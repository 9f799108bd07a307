package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
)

func validInput() *CreateInvoiceInput {
	return &CreateInvoiceInput{
		Client: ClientInfo{Name: "株式会社サンプル"},
		Items: []taxDomain.InvoiceItem{
			{ID: "1", Description: "Webサイト制作", Quantity: 1, UnitPrice: 30000},
		},
		HasWithholding: true,
		TaxMethod:      taxDomain.TaxMethodIncluded,
		IssueDate:      "2026-10-19",
		DueDate:        "2026-11-18",
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "2026-001", FormatInvoiceNumber("", 2026, 1, 3))
	assert.Equal(t, "2026-042", FormatInvoiceNumber("", 2026, 42, 3))
	assert.Equal(t, "2026-1000", FormatInvoiceNumber("", 2026, 1000, 3))
	assert.Equal(t, "INV-2027-00007", FormatInvoiceNumber("INV-", 2027, 7, 5))
}

func TestCreateInvoiceInput_ApplyDefaults(t *testing.T) {
	today := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

	t.Run("fills dates and method", func(t *testing.T) {
		input := &CreateInvoiceInput{}
		input.ApplyDefaults(today, DefaultPaymentTermsDays)

		assert.Equal(t, "2026-10-19", input.IssueDate)
		assert.Equal(t, "2026-11-18", input.DueDate)
		assert.Equal(t, taxDomain.TaxMethodIncluded, input.TaxMethod)
	})

	t.Run("due date follows explicit issue date", func(t *testing.T) {
		input := &CreateInvoiceInput{IssueDate: "2026-12-15", TaxMethod: taxDomain.TaxMethodSeparate}
		input.ApplyDefaults(today, 30)

		assert.Equal(t, "2027-01-14", input.DueDate)
		assert.Equal(t, taxDomain.TaxMethodSeparate, input.TaxMethod)
	})

	t.Run("keeps explicit dates", func(t *testing.T) {
		input := &CreateInvoiceInput{IssueDate: "2026-01-01", DueDate: "2026-01-31"}
		input.ApplyDefaults(today, 30)

		assert.Equal(t, "2026-01-01", input.IssueDate)
		assert.Equal(t, "2026-01-31", input.DueDate)
	})

	t.Run("bad issue date leaves due date empty", func(t *testing.T) {
		input := &CreateInvoiceInput{IssueDate: "19/10/2026"}
		input.ApplyDefaults(today, 30)

		assert.Empty(t, input.DueDate)
		assert.Error(t, input.Validate())
	})
}

func TestCreateInvoiceInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateInvoiceInput)
		wantErr string
	}{
		{"valid", func(*CreateInvoiceInput) {}, ""},
		{"missing client name", func(i *CreateInvoiceInput) { i.Client.Name = "" }, "name"},
		{"invalid client email", func(i *CreateInvoiceInput) { i.Client.Email = "nope" }, "email"},
		{"no items", func(i *CreateInvoiceInput) { i.Items = nil }, "items"},
		{"zero quantity", func(i *CreateInvoiceInput) { i.Items[0].Quantity = 0 }, "quantity"},
		{"negative unit price", func(i *CreateInvoiceInput) { i.Items[0].UnitPrice = -1 }, "unitPrice"},
		{"quantity above limit", func(i *CreateInvoiceInput) { i.Items[0].Quantity = taxDomain.MaxQuantity + 1 }, "quantity"},
		{"subtotal at limit", func(i *CreateInvoiceInput) {
			i.Items[0].Quantity = taxDomain.MaxQuantity
			i.Items[0].UnitPrice = taxDomain.MaxSubtotal / taxDomain.MaxQuantity
		}, ""},
		{"subtotal above limit", func(i *CreateInvoiceInput) {
			big := taxDomain.InvoiceItem{
				Description: "保守",
				Quantity:    taxDomain.MaxQuantity,
				UnitPrice:   taxDomain.MaxUnitPrice,
			}
			i.Items = []taxDomain.InvoiceItem{big, big}
		}, "subtotal"},
		{"unknown method", func(i *CreateInvoiceInput) { i.TaxMethod = "gross" }, "taxMethod"},
		{"bad issue date", func(i *CreateInvoiceInput) { i.IssueDate = "2026-13-01" }, "issueDate"},
		{"due before issue", func(i *CreateInvoiceInput) { i.DueDate = "2026-10-18" }, "dueDate"},
		{"due on issue date", func(i *CreateInvoiceInput) { i.DueDate = "2026-10-19" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			err := input.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInvoiceFilter_Matches(t *testing.T) {
	record := &InvoiceRecord{
		IssueDate: "2026-10-19",
		Client:    ClientInfo{Name: "Sample Client", CompanyName: "株式会社サンプル"},
	}

	tests := []struct {
		name   string
		filter InvoiceFilter
		want   bool
	}{
		{"empty filter", InvoiceFilter{}, true},
		{"client name case-insensitive", InvoiceFilter{ClientName: "sample"}, true},
		{"company name", InvoiceFilter{ClientName: "サンプル"}, true},
		{"other client", InvoiceFilter{ClientName: "other"}, false},
		{"inclusive from", InvoiceFilter{DateFrom: "2026-10-19"}, true},
		{"after from", InvoiceFilter{DateFrom: "2026-10-20"}, false},
		{"inclusive to", InvoiceFilter{DateTo: "2026-10-19"}, true},
		{"before to", InvoiceFilter{DateTo: "2026-10-18"}, false},
		{"range", InvoiceFilter{DateFrom: "2026-10-01", DateTo: "2026-10-31"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(record))
		})
	}
}

func TestInvoiceFilter_Validate(t *testing.T) {
	assert.NoError(t, InvoiceFilter{}.Validate())
	assert.NoError(t, InvoiceFilter{DateFrom: "2026-01-01", DateTo: "2026-12-31"}.Validate())
	assert.Error(t, InvoiceFilter{DateFrom: "yesterday"}.Validate())
}

func TestInvoiceRecord_Summary(t *testing.T) {
	record := &InvoiceRecord{
		ID:            "inv-1",
		InvoiceNumber: "2026-001",
		IssueDate:     "2026-10-19",
		Client:        ClientInfo{Name: "株式会社サンプル"},
		Calculation:   taxDomain.InvoiceCalculation{FinalAmount: 29631},
	}

	assert.Equal(t, InvoiceSummary{
		ID:            "inv-1",
		InvoiceNumber: "2026-001",
		ClientName:    "株式会社サンプル",
		FinalAmount:   29631,
		IssueDate:     "2026-10-19",
	}, record.Summary())
}
