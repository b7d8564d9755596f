package domain

import "time"

// Trip is a planned group event owning its participants and its pot.
type Trip struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name" validate:"required,max=100"`
	Price             float64   `json:"price" validate:"gte=0"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	ValidityDate      time.Time `json:"validity_date"`
	NumberMaxOfPeople int       `json:"number_max_of_people" validate:"gte=1"`
	Description       string    `json:"description"`
	Organizer         string    `json:"organizer" validate:"required"`
	Location          string    `json:"location"`
	Note              float64   `json:"note"`

	Participants []*TripParticipant `json:"participants,omitempty"`
	TripPot      *Pot               `json:"pot,omitempty"`
}

// SharePrice is the amount each member owes for the trip.
func (t *Trip) SharePrice() float64 {
	return SplitPrice(t.Price, t.NumberMaxOfPeople)
}

// SplitPrice divides price between people; zero people owe nothing.
func SplitPrice(price float64, people int) float64 {
	if people <= 0 {
		return 0
	}
	return price / float64(people)
}

// AddParticipant attaches a participation record to the trip.
func (t *Trip) AddParticipant(p *TripParticipant) {
	t.Participants = append(t.Participants, p)
}

// RemoveParticipant detaches the participation record of pseudo, if any.
func (t *Trip) RemoveParticipant(pseudo string) {
	for i, p := range t.Participants {
		if p.UserPseudo == pseudo {
			t.Participants = append(t.Participants[:i], t.Participants[i+1:]...)
			return
		}
	}
}

// TripParticipant records a user's participation, keyed by (TripID, UserPseudo).
type TripParticipant struct {
	TripID          int64     `json:"trip_id"`
	UserPseudo      string    `json:"user_pseudo"`
	HasParticipated bool      `json:"has_participated"`
	TripNote        float64   `json:"trip_note"`
	ValidationDate  time.Time `json:"validation_date"`
}

// UserTrip is the per-user view of a trip, keyed by (UserID, TripName).
type UserTrip struct {
	UserID          int64   `json:"user_id"`
	TripName        string  `json:"trip_name"`
	HasParticipated bool    `json:"has_participated"`
	HasOrganized    bool    `json:"has_organized"`
	TripAmount      float64 `json:"trip_amount"`
}
