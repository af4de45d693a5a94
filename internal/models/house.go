package models

import (
	"github.com/google/uuid"
)

type House struct {
	ID       uuid.UUID  `json:"id" db:"id"`
	Zpid     string     `json:"zpid" db:"zpid"`
	Price    int        `json:"price" db:"price"`
	Beds     int        `json:"beds" db:"beds"`
	Baths    int        `json:"baths" db:"baths"`
	Status   string     `json:"status" db:"status"`
	Area     *float64   `json:"area" db:"area"` // Living area
	Type     string     `json:"type" db:"type"`
	URL      string     `json:"url" db:"url"` // Detail URL
	BrokerID *uuid.UUID `json:"broker_id" db:"broker_id"`
}

// Address is the optional 1:1 location record for a house.
type Address struct {
	ID      uuid.UUID `json:"id" db:"id"`
	HouseID uuid.UUID `json:"house_id" db:"house_id"`
	Street  string    `json:"street" db:"street"`
	City    string    `json:"city" db:"city"`
	State   string    `json:"state" db:"state"`
	Zipcode string    `json:"zipcode" db:"zipcode"`
}

// HouseImage references a listing photo. ObjectKey points at an object in the
// image bucket; URL is used as-is when no object key is set.
type HouseImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	HouseID   uuid.UUID `json:"house_id" db:"house_id"`
	ObjectKey string    `json:"object_key" db:"object_key"`
	URL       string    `json:"url" db:"url"`
}

// HouseListing is the response shape for broker listing queries.
type HouseListing struct {
	Price      string  `json:"price"`
	Status     string  `json:"status"`
	Type       string  `json:"type"`
	Area       float64 `json:"area"`
	Beds       int     `json:"beds"`
	Baths      int     `json:"baths"`
	ImageURL   string  `json:"image_url"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Zip        string  `json:"zip"`
	BrokerName string  `json:"broker_name"`
}
