package domain

import (
	validation "github.com/jellydator/validation"

	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
	customValidation "github.com/allisson/seikyu/internal/validation"
)

// Validate checks the personal section.
func (p PersonalInfo) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&p.PostalCode, validation.Required, customValidation.PostalCode),
		validation.Field(&p.Address, validation.Required, customValidation.NotBlank),
		validation.Field(&p.Phone, customValidation.Phone),
		validation.Field(&p.Email, customValidation.Email),
	)
}

// Validate checks the bank section.
func (b BankInfo) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.BankName, validation.Required, customValidation.NotBlank),
		validation.Field(&b.BranchName, validation.Required, customValidation.NotBlank),
		validation.Field(&b.AccountType, validation.Required,
			validation.In(AccountTypeOrdinary, AccountTypeChecking)),
		validation.Field(&b.AccountNumber, validation.Required, customValidation.Digits),
		validation.Field(&b.AccountHolder, validation.Required, customValidation.NotBlank),
	)
}

// Validate checks the tax section.
func (t TaxInfo) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.InvoiceNumber, customValidation.QualifiedInvoiceNumber),
		validation.Field(&t.TaxMethod, validation.Required,
			validation.In(taxDomain.TaxMethodIncluded, taxDomain.TaxMethodSeparate)),
	)
}

// Validate checks every section of the input.
func (i *CreateProfileInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.PersonalInfo),
		validation.Field(&i.BankInfo),
		validation.Field(&i.TaxInfo),
		validation.Field(&i.ProfileName, validation.Length(0, 100)),
	)
}

// Validate checks the sections present in the update.
func (i *UpdateProfileInput) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.PersonalInfo),
		validation.Field(&i.BankInfo),
		validation.Field(&i.TaxInfo),
		validation.Field(&i.ProfileName, validation.NilOrNotEmpty, customValidation.NotBlank,
			validation.Length(0, 100)),
	)
}

// ApplyDefaults fills the fields a form would preselect.
func (i *CreateProfileInput) ApplyDefaults() {
	if i.BankInfo.AccountType == "" {
		i.BankInfo.AccountType = AccountTypeOrdinary
	}
	if i.TaxInfo.TaxMethod == "" {
		i.TaxInfo.TaxMethod = taxDomain.TaxMethodIncluded
	}
	if i.ProfileName == "" {
		i.ProfileName = DefaultProfileName
	}
}
