package domain

import "time"

type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderOther       Gender = "Other"
	GenderUndisclosed Gender = "Prefer not to say"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUndisclosed:
		return true
	}
	return false
}

type LookingFor string

const (
	LookingForRoom     LookingFor = "Room"
	LookingForRoommate LookingFor = "Roommate"
	LookingForBoth     LookingFor = "Both"
)

func (l LookingFor) Valid() bool {
	switch l {
	case LookingForRoom, LookingForRoommate, LookingForBoth:
		return true
	}
	return false
}

type Occupation string

const (
	OccupationStudent      Occupation = "Student"
	OccupationProfessional Occupation = "Working Professional"
	OccupationFreelancer   Occupation = "Freelancer"
	OccupationBusiness     Occupation = "Business"
	OccupationOther        Occupation = "Other"
)

func (o Occupation) Valid() bool {
	switch o {
	case OccupationStudent, OccupationProfessional, OccupationFreelancer, OccupationBusiness, OccupationOther:
		return true
	}
	return false
}

type User struct {
	ID                string      `json:"id" db:"id"`
	Name              string      `json:"name" db:"name"`
	Email             string      `json:"email" db:"email"`
	PasswordHash      string      `json:"-" db:"password_hash"`
	Phone             *string     `json:"phone,omitempty" db:"phone"`
	ProfilePicture    string      `json:"profilePicture" db:"profile_picture"`
	Gender            *Gender     `json:"gender" db:"gender"`
	Age               *int        `json:"age" db:"age"`
	Profession        *string     `json:"profession" db:"profession"`
	Bio               *string     `json:"bio" db:"bio"`
	BudgetMin         *int        `json:"budgetMin" db:"budget_min"`
	BudgetMax         *int        `json:"budgetMax" db:"budget_max"`
	Currency          string      `json:"currency" db:"currency"`
	LookingFor        LookingFor  `json:"lookingFor" db:"looking_for"`
	Occupation        *Occupation `json:"occupation" db:"occupation"`
	IsProfileComplete bool        `json:"isProfileComplete" db:"is_profile_complete"`
	IsVerified        bool        `json:"isVerified" db:"is_verified"`
	IsActive          bool        `json:"isActive" db:"is_active"`
	CreatedAt         time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time   `json:"updatedAt" db:"updated_at"`
}

// ProfileComplete derives the completion flag from the mandatory fields.
// It is the only source of truth for User.IsProfileComplete; values supplied
// by callers are ignored and the flag is recomputed on every mutating path.
func ProfileComplete(u *User, details *ProfileDetails) bool {
	if u.Name == "" || u.Email == "" {
		return false
	}
	if u.Gender == nil || !u.Gender.Valid() {
		return false
	}
	if u.Profession == nil || *u.Profession == "" {
		return false
	}
	if u.BudgetMin == nil || *u.BudgetMin <= 0 {
		return false
	}
	if u.BudgetMax == nil || *u.BudgetMax <= 0 {
		return false
	}
	return details != nil && len(details.PreferredLocations) > 0
}
