package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type SmokingHabit string

const (
	SmokingYes          SmokingHabit = "Yes"
	SmokingNo           SmokingHabit = "No"
	SmokingOccasionally SmokingHabit = "Occasionally"
)

func (s SmokingHabit) Valid() bool {
	switch s {
	case SmokingYes, SmokingNo, SmokingOccasionally:
		return true
	}
	return false
}

type DrinkingHabit string

const (
	DrinkingYes      DrinkingHabit = "Yes"
	DrinkingNo       DrinkingHabit = "No"
	DrinkingSocially DrinkingHabit = "Socially"
)

func (d DrinkingHabit) Valid() bool {
	switch d {
	case DrinkingYes, DrinkingNo, DrinkingSocially:
		return true
	}
	return false
}

type PetPolicy string

const (
	PetsHave     PetPolicy = "Have pets"
	PetsNone     PetPolicy = "No pets"
	PetsFriendly PetPolicy = "Pet-friendly"
)

func (p PetPolicy) Valid() bool {
	switch p {
	case PetsHave, PetsNone, PetsFriendly:
		return true
	}
	return false
}

type CleanlinessLevel string

const (
	CleanlinessVeryClean CleanlinessLevel = "Very clean"
	CleanlinessModerate  CleanlinessLevel = "Moderate"
	CleanlinessRelaxed   CleanlinessLevel = "Relaxed"
)

func (c CleanlinessLevel) Valid() bool {
	switch c {
	case CleanlinessVeryClean, CleanlinessModerate, CleanlinessRelaxed:
		return true
	}
	return false
}

type FoodPreference string

const (
	FoodVegetarian    FoodPreference = "Vegetarian"
	FoodNonVegetarian FoodPreference = "Non-vegetarian"
	FoodVegan         FoodPreference = "Vegan"
	FoodNoPreference  FoodPreference = "No preference"
)

func (f FoodPreference) Valid() bool {
	switch f {
	case FoodVegetarian, FoodNonVegetarian, FoodVegan, FoodNoPreference:
		return true
	}
	return false
}

type GuestFrequency string

const (
	GuestsFrequently GuestFrequency = "Frequently"
	GuestsSometimes  GuestFrequency = "Sometimes"
	GuestsRarely     GuestFrequency = "Rarely"
	GuestsNever      GuestFrequency = "Never"
)

func (g GuestFrequency) Valid() bool {
	switch g {
	case GuestsFrequently, GuestsSometimes, GuestsRarely, GuestsNever:
		return true
	}
	return false
}

// Habits is stored as a single jsonb column on profile_details.
type Habits struct {
	Smoking        SmokingHabit     `json:"smoking"`
	Drinking       DrinkingHabit    `json:"drinking"`
	Pets           PetPolicy        `json:"pets"`
	Cleanliness    CleanlinessLevel `json:"cleanliness"`
	FoodPreference FoodPreference   `json:"foodPreference,omitempty"`
	NightOwl       bool             `json:"nightOwl"`
	Guests         GuestFrequency   `json:"guests"`
}

// DefaultHabits returns the habit defaults applied when a field is not supplied.
func DefaultHabits() Habits {
	return Habits{
		Smoking:     SmokingNo,
		Drinking:    DrinkingNo,
		Pets:        PetsNone,
		Cleanliness: CleanlinessModerate,
		Guests:      GuestsSometimes,
	}
}

func (h Habits) Validate() error {
	if !h.Smoking.Valid() {
		return fmt.Errorf("%w: smoking %q", ErrInvalidInput, h.Smoking)
	}
	if !h.Drinking.Valid() {
		return fmt.Errorf("%w: drinking %q", ErrInvalidInput, h.Drinking)
	}
	if !h.Pets.Valid() {
		return fmt.Errorf("%w: pets %q", ErrInvalidInput, h.Pets)
	}
	if !h.Cleanliness.Valid() {
		return fmt.Errorf("%w: cleanliness %q", ErrInvalidInput, h.Cleanliness)
	}
	if h.FoodPreference != "" && !h.FoodPreference.Valid() {
		return fmt.Errorf("%w: food preference %q", ErrInvalidInput, h.FoodPreference)
	}
	if !h.Guests.Valid() {
		return fmt.Errorf("%w: guests %q", ErrInvalidInput, h.Guests)
	}
	return nil
}

func (h Habits) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *Habits) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*h = DefaultHabits()
		return nil
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	}
	return fmt.Errorf("cannot scan %T into Habits", src)
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Area        string       `json:"area"`
	City        string       `json:"city"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Locations is stored as a jsonb column on profile_details.
type Locations []Location

func (l Locations) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(Locations{})
	}
	return json.Marshal(l)
}

func (l *Locations) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into Locations", src)
}

// ProfileDetails is the 1:1 sub-record holding lifestyle data, keyed by user id.
type ProfileDetails struct {
	UserID             string     `json:"userId" db:"user_id"`
	Habits             Habits     `json:"habits" db:"habits"`
	PreferredLocations Locations  `json:"preferredLocations" db:"preferred_locations"`
	Languages          []string   `json:"languages" db:"languages"`
	Interests          []string   `json:"interests" db:"interests"`
	MoveInDate         *time.Time `json:"moveInDate" db:"move_in_date"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}
