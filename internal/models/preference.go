package models

import (
	"time"

	"github.com/google/uuid"
)

// Preference is a saved buyer search owned by a single user. Zipcodes are
// stored as separate rows referencing the preference, not embedded here.
type Preference struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	MinPrice  int       `json:"min_price" db:"min_price"`
	MaxPrice  int       `json:"max_price" db:"max_price"`
	Beds      int       `json:"beds" db:"beds"`
	Baths     int       `json:"baths" db:"baths"`
	MinArea   float64   `json:"min_area" db:"min_area"`
	Type      string    `json:"type" db:"type"`
	City      string    `json:"city" db:"city"`
	State     string    `json:"state" db:"state"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Zipcode struct {
	ID           uuid.UUID `json:"id" db:"id"`
	PreferenceID uuid.UUID `json:"preference_id" db:"preference_id"`
	Zipcode      string    `json:"zipcode" db:"zipcode"`
}
