// Package domain defines the issuer profile: the identity, bank account and tax
// registration printed on every invoice. Profiles are kept as one collection in which
// exactly one profile is the default whenever the collection is not empty.
package domain

import (
	"time"

	taxDomain "github.com/allisson/seikyu/internal/tax/domain"
)

const (
	// DataVersion is written into stored collections and backup documents.
	DataVersion = "1.0.0"

	// DefaultProfileName is used when a profile is created without a name.
	DefaultProfileName = "新しいプロフィール"
)

// AccountType is the Japanese bank account type.
type AccountType string

const (
	// AccountTypeOrdinary is a savings (普通) account.
	AccountTypeOrdinary AccountType = "普通"
	// AccountTypeChecking is a checking (当座) account.
	AccountTypeChecking AccountType = "当座"
)

// PersonalInfo identifies the issuer.
type PersonalInfo struct {
	Name         string `json:"name"`
	BusinessName string `json:"businessName,omitempty"`
	PostalCode   string `json:"postalCode"`
	Address      string `json:"address"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

// BankInfo is the account payments are transferred to.
type BankInfo struct {
	BankName      string      `json:"bankName"`
	BranchName    string      `json:"branchName"`
	AccountType   AccountType `json:"accountType"`
	AccountNumber string      `json:"accountNumber"`
	AccountHolder string      `json:"accountHolder"`
}

// TaxInfo holds the issuer's tax registration.
type TaxInfo struct {
	// InvoiceNumber is the qualified invoice issuer registration number (T + 13 digits).
	InvoiceNumber string                         `json:"invoiceNumber,omitempty"`
	TaxMethod     taxDomain.TaxCalculationMethod `json:"taxMethod"`
}

// ProfileMeta holds bookkeeping attributes.
type ProfileMeta struct {
	ProfileName string    `json:"profileName"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IssuerProfile is a complete issuer identity. It holds no references, so a plain
// assignment is a deep copy.
type IssuerProfile struct {
	ID           string       `json:"id"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	BankInfo     BankInfo     `json:"bankInfo"`
	TaxInfo      TaxInfo      `json:"taxInfo"`
	Meta         ProfileMeta  `json:"meta"`
}

// CreateProfileInput contains the data for a new profile. ID and timestamps are assigned
// by the use case.
type CreateProfileInput struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	BankInfo     BankInfo     `json:"bankInfo"`
	TaxInfo      TaxInfo      `json:"taxInfo"`
	ProfileName  string       `json:"profileName"`
}

// UpdateProfileInput is a partial update. Each non-nil section replaces the stored one.
// The default flag is changed only through SetDefault.
type UpdateProfileInput struct {
	PersonalInfo *PersonalInfo `json:"personalInfo,omitempty"`
	BankInfo     *BankInfo     `json:"bankInfo,omitempty"`
	TaxInfo      *TaxInfo      `json:"taxInfo,omitempty"`
	ProfileName  *string       `json:"profileName,omitempty"`
}

// ProfileStorageData is the document sealed under the profiles storage key.
type ProfileStorageData struct {
	Profiles   []IssuerProfile `json:"profiles"`
	Version    string          `json:"version"`
	LastBackup *time.Time      `json:"lastBackup,omitempty"`
}

// BackupDocument is the plaintext export format.
type BackupDocument struct {
	Profiles   []IssuerProfile `json:"profiles"`
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exportedAt"`
}

// BackupFilename returns the suggested file name for a backup exported at t.
func BackupFilename(t time.Time) string {
	return "invoice-backup-" + t.UTC().Format("2006-01-02") + ".json"
}
