package domain

import (
	"github.com/samber/lo"
)

// FindByID returns the index of the profile with id, or -1.
func FindByID(profiles []IssuerProfile, id string) int {
	_, index, _ := lo.FindIndexOf(profiles, func(p IssuerProfile) bool {
		return p.ID == id
	})
	return index
}

// DefaultIndex returns the index of the first default profile, or -1.
func DefaultIndex(profiles []IssuerProfile) int {
	_, index, _ := lo.FindIndexOf(profiles, func(p IssuerProfile) bool {
		return p.Meta.IsDefault
	})
	return index
}

// MarkDefault sets the default flag on the profile at index and clears it everywhere else.
func MarkDefault(profiles []IssuerProfile, index int) {
	for i := range profiles {
		profiles[i].Meta.IsDefault = i == index
	}
}

// NormalizeDefault restores the single-default invariant in place: the first default
// profile is kept, or the first profile is promoted when none is marked. It reports
// whether any flag changed.
func NormalizeDefault(profiles []IssuerProfile) bool {
	if len(profiles) == 0 {
		return false
	}

	index := DefaultIndex(profiles)
	if index < 0 {
		index = 0
	}

	changed := false
	for i := range profiles {
		want := i == index
		if profiles[i].Meta.IsDefault != want {
			profiles[i].Meta.IsDefault = want
			changed = true
		}
	}
	return changed
}
