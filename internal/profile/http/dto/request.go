// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
)

// CreateProfileRequest contains the parameters for creating a profile.
type CreateProfileRequest struct {
	PersonalInfo profileDomain.PersonalInfo `json:"personalInfo"`
	BankInfo     profileDomain.BankInfo     `json:"bankInfo"`
	TaxInfo      profileDomain.TaxInfo      `json:"taxInfo"`
	ProfileName  string                     `json:"profileName"`
}

// ToDomain converts the request into a use case input.
func (r *CreateProfileRequest) ToDomain() *profileDomain.CreateProfileInput {
	return &profileDomain.CreateProfileInput{
		PersonalInfo: r.PersonalInfo,
		BankInfo:     r.BankInfo,
		TaxInfo:      r.TaxInfo,
		ProfileName:  r.ProfileName,
	}
}

// UpdateProfileRequest contains a partial profile update. Omitted sections are kept.
type UpdateProfileRequest struct {
	PersonalInfo *profileDomain.PersonalInfo `json:"personalInfo"`
	BankInfo     *profileDomain.BankInfo     `json:"bankInfo"`
	TaxInfo      *profileDomain.TaxInfo      `json:"taxInfo"`
	ProfileName  *string                     `json:"profileName"`
}

// ToDomain converts the request into a use case input.
func (r *UpdateProfileRequest) ToDomain() *profileDomain.UpdateProfileInput {
	return &profileDomain.UpdateProfileInput{
		PersonalInfo: r.PersonalInfo,
		BankInfo:     r.BankInfo,
		TaxInfo:      r.TaxInfo,
		ProfileName:  r.ProfileName,
	}
}
