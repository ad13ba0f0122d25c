package domain

import "time"

type Listing struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Rent        float64   `json:"rent" db:"rent"`
	Type        string    `json:"type" db:"type"`
	Images      []string  `json:"images" db:"images"`
	Amenities   []string  `json:"amenities" db:"amenities"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ListingOwner is the trimmed owner projection attached to listing responses.
type ListingOwner struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}
