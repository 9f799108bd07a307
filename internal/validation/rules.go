// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/seikyu/internal/errors"
)

// ISODateLayout is the calendar date format used for issue and due dates.
const ISODateLayout = "2006-01-02"

var (
	emailRegex                  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	postalCodeRegex             = regexp.MustCompile(`^\d{3}-\d{4}$`)
	digitsRegex                 = regexp.MustCompile(`^\d+$`)
	phoneRegex                  = regexp.MustCompile(`^[\d\-+() ]+$`)
	qualifiedInvoiceNumberRegex = regexp.MustCompile(`^T\d{13}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// PostalCode validates a Japanese postal code such as 123-4567.
var PostalCode = validation.NewStringRuleWithError(
	postalCodeRegex.MatchString,
	validation.NewError("validation_postal_code", "must be a postal code in the form 123-4567"),
)

// Digits validates that a string holds only ASCII digits.
var Digits = validation.NewStringRuleWithError(
	digitsRegex.MatchString,
	validation.NewError("validation_digits", "must contain digits only"),
)

// Phone validates a phone number made of digits, spaces, and + - ( ).
var Phone = validation.NewStringRuleWithError(
	phoneRegex.MatchString,
	validation.NewError("validation_phone", "must be a valid phone number"),
)

// QualifiedInvoiceNumber validates a qualified invoice issuer registration number
// (T followed by 13 digits).
var QualifiedInvoiceNumber = validation.NewStringRuleWithError(
	qualifiedInvoiceNumberRegex.MatchString,
	validation.NewError("validation_qualified_invoice_number", "must be T followed by 13 digits"),
)

// ISODate validates a YYYY-MM-DD calendar date.
var ISODate = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := time.Parse(ISODateLayout, s)
		return err == nil
	},
	validation.NewError("validation_iso_date", "must be a date in the form YYYY-MM-DD"),
)
