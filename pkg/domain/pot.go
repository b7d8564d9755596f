package domain

import (
	"math"
	"time"
)

// PaymentEpsilon is the tolerance used when comparing paid and owed amounts.
const PaymentEpsilon = 1e-9

// PotMode tells who drives the pot.
type PotMode int

const (
	// PotModeLead pots are managed by the trip organizer.
	PotModeLead PotMode = iota
	// PotModeShared pots are managed by every member.
	PotModeShared
)

func (m PotMode) String() string {
	switch m {
	case PotModeLead:
		return "lead"
	case PotModeShared:
		return "shared"
	default:
		return "unknown"
	}
}

// Pot is a shared fund tracking the collected amount against a target.
// CurrentAmount is kept equal to the sum of its members' Amount by the pot
// operations.
type Pot struct {
	ID                 int64     `json:"id"`
	TripID             int64     `json:"trip_id"`
	Name               string    `json:"name" validate:"required"`
	Organizer          string    `json:"organizer"`
	Mode               PotMode   `json:"mode"`
	CurrentAmount      float64   `json:"current_amount"`
	TargetAmount       float64   `json:"target_amount" validate:"gte=0"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	ValidityDate       time.Time `json:"validity_date"`
	Description        string    `json:"description"`
	IsCancelled        bool      `json:"is_cancelled"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CancellationDate   time.Time `json:"cancellation_date,omitempty"`

	Participants []*PotUser `json:"participants,omitempty"`
}

// NewTripPot creates the lead pot owned by trip.
func NewTripPot(trip *Trip) *Pot {
	return &Pot{
		TripID:        trip.ID,
		Name:          "Pot " + trip.Name,
		Organizer:     trip.Organizer,
		Mode:          PotModeLead,
		CurrentAmount: 0,
		TargetAmount:  trip.Price,
		StartDate:     trip.StartDate,
		EndDate:       trip.EndDate,
		ValidityDate:  trip.ValidityDate,
		Description:   trip.Description,
	}
}

// AddParticipant attaches a member record to the pot.
func (p *Pot) AddParticipant(pu *PotUser) {
	p.Participants = append(p.Participants, pu)
}

// RemoveParticipant detaches the member record of userID, if any.
func (p *Pot) RemoveParticipant(userID int64) {
	for i, pu := range p.Participants {
		if pu.UserID == userID {
			p.Participants = append(p.Participants[:i], p.Participants[i+1:]...)
			return
		}
	}
}

// Participant returns the in-memory member record of userID.
func (p *Pot) Participant(userID int64) *PotUser {
	for _, pu := range p.Participants {
		if pu.UserID == userID {
			return pu
		}
	}
	return nil
}

// PotUser is a member contribution record, keyed by (PotID, UserID).
type PotUser struct {
	PotID        int64   `json:"pot_id"`
	UserID       int64   `json:"user_id"`
	Amount       float64 `json:"amount"`
	TargetAmount float64 `json:"target_amount"`
	HasPayed     bool    `json:"has_payed"`
	HasCancelled bool    `json:"has_cancelled"`
}

// NewPotUser creates an empty member record owing target.
func NewPotUser(potID, userID int64, target float64) *PotUser {
	pu := &PotUser{PotID: potID, UserID: userID, TargetAmount: target}
	pu.RefreshPayment()
	return pu
}

// RefreshPayment recomputes HasPayed from Amount and TargetAmount.
func (pu *PotUser) RefreshPayment() {
	pu.HasPayed = IsPaid(pu.Amount, pu.TargetAmount)
}

// IsPaid reports whether amount matches target within PaymentEpsilon.
func IsPaid(amount, target float64) bool {
	return math.Abs(amount-target) < PaymentEpsilon
}
