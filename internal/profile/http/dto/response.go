package dto

import (
	"time"

	"github.com/samber/lo"

	profileDomain "github.com/allisson/seikyu/internal/profile/domain"
)

// ProfileResponse is the JSON representation of a profile.
type ProfileResponse struct {
	ID           string                     `json:"id"`
	PersonalInfo profileDomain.PersonalInfo `json:"personalInfo"`
	BankInfo     profileDomain.BankInfo     `json:"bankInfo"`
	TaxInfo      profileDomain.TaxInfo      `json:"taxInfo"`
	ProfileName  string                     `json:"profileName"`
	IsDefault    bool                       `json:"isDefault"`
	CreatedAt    time.Time                  `json:"createdAt"`
	UpdatedAt    time.Time                  `json:"updatedAt"`
}

// ListProfilesResponse wraps a list of profiles.
type ListProfilesResponse struct {
	Data []ProfileResponse `json:"data"`
}

// ImportProfilesResponse reports the result of an import.
type ImportProfilesResponse struct {
	Imported int `json:"imported"`
}

// MapProfileToResponse converts a domain profile to its response.
func MapProfileToResponse(p *profileDomain.IssuerProfile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID,
		PersonalInfo: p.PersonalInfo,
		BankInfo:     p.BankInfo,
		TaxInfo:      p.TaxInfo,
		ProfileName:  p.Meta.ProfileName,
		IsDefault:    p.Meta.IsDefault,
		CreatedAt:    p.Meta.CreatedAt,
		UpdatedAt:    p.Meta.UpdatedAt,
	}
}

// MapProfilesToListResponse converts domain profiles to a list response.
func MapProfilesToListResponse(profiles []profileDomain.IssuerProfile) ListProfilesResponse {
	return ListProfilesResponse{
		Data: lo.Map(profiles, func(p profileDomain.IssuerProfile, _ int) ProfileResponse {
			return MapProfileToResponse(&p)
		}),
	}
}
