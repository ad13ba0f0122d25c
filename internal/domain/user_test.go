package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeUser() *User {
	gender := GenderFemale
	profession := "Designer"
	budgetMin := 10000
	budgetMax := 20000
	return &User{
		Name:       "Aizhan",
		Email:      "aizhan@example.com",
		Gender:     &gender,
		Profession: &profession,
		BudgetMin:  &budgetMin,
		BudgetMax:  &budgetMax,
	}
}

func completeDetails() *ProfileDetails {
	return &ProfileDetails{
		PreferredLocations: []Location{{Area: "Esentai", City: "Almaty"}},
	}
}

func TestProfileComplete(t *testing.T) {
	assert.True(t, ProfileComplete(completeUser(), completeDetails()))
}

func TestProfileComplete_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(u *User, d *ProfileDetails) (*User, *ProfileDetails)
	}{
		{"no name", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			u.Name = ""
			return u, d
		}},
		{"no email", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			u.Email = ""
			return u, d
		}},
		{"nil gender", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			u.Gender = nil
			return u, d
		}},
		{"invalid gender", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			g := Gender("Robot")
			u.Gender = &g
			return u, d
		}},
		{"empty profession", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			p := ""
			u.Profession = &p
			return u, d
		}},
		{"nil budget min", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			u.BudgetMin = nil
			return u, d
		}},
		{"zero budget max", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			zero := 0
			u.BudgetMax = &zero
			return u, d
		}},
		{"nil details", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			return u, nil
		}},
		{"no preferred locations", func(u *User, d *ProfileDetails) (*User, *ProfileDetails) {
			d.PreferredLocations = nil
			return u, d
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, d := tt.mutate(completeUser(), completeDetails())
			assert.False(t, ProfileComplete(u, d))
		})
	}
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, GenderUndisclosed.Valid())
	assert.False(t, Gender("male").Valid(), "enum matching is case-sensitive")
	assert.True(t, LookingForBoth.Valid())
	assert.False(t, LookingFor("Apartment").Valid())
	assert.True(t, OccupationProfessional.Valid())
	assert.False(t, Occupation("").Valid())
}
