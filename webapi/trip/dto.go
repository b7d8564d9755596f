package trip

import "time"

// NewTrip represents the request body for creating a trip. The caller becomes
// its organizer.
type NewTrip struct {
	Name              string    `json:"name" validate:"required,max=100"`
	Price             float64   `json:"price" validate:"gte=0"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	ValidityDate      time.Time `json:"validity_date"`
	NumberMaxOfPeople int       `json:"number_max_of_people" validate:"required,gte=1"`
	Description       string    `json:"description" validate:"max=1000"`
	Location          string    `json:"location" validate:"max=200"`
}

// PriceInput represents the request body for a price change.
type PriceInput struct {
	Price float64 `json:"price" validate:"gte=0"`
}

// CapacityInput represents the request body for a capacity change.
type CapacityInput struct {
	NumberMaxOfPeople int `json:"number_max_of_people" validate:"required,gte=1"`
}
