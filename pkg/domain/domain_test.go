package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPaid(t *testing.T) {
	assert.True(t, domain.IsPaid(200, 200))
	assert.True(t, domain.IsPaid(0.1+0.2, 0.3))
	assert.False(t, domain.IsPaid(100, 300))
	assert.False(t, domain.IsPaid(300.001, 300))
}

func TestPotUser_RefreshPayment(t *testing.T) {
	pu := domain.NewPotUser(1, 2, 200)
	assert.False(t, pu.HasPayed)

	pu.Amount = 200
	pu.RefreshPayment()
	assert.True(t, pu.HasPayed)

	pu.Amount = 150
	pu.RefreshPayment()
	assert.False(t, pu.HasPayed)
}

func TestNewTripPot(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	trip := &domain.Trip{
		ID:                7,
		Name:              "Lisbon",
		Price:             900,
		StartDate:         start,
		EndDate:           start.AddDate(0, 0, 7),
		ValidityDate:      start.AddDate(0, 0, -14),
		NumberMaxOfPeople: 3,
		Description:       "sun",
		Organizer:         "alice",
	}

	pot := domain.NewTripPot(trip)
	assert.Equal(t, int64(7), pot.TripID)
	assert.Equal(t, "Pot Lisbon", pot.Name)
	assert.Equal(t, domain.PotModeLead, pot.Mode)
	assert.Equal(t, 900.0, pot.TargetAmount)
	assert.Zero(t, pot.CurrentAmount)
	assert.Equal(t, trip.StartDate, pot.StartDate)
	assert.Equal(t, trip.EndDate, pot.EndDate)
	assert.Equal(t, trip.ValidityDate, pot.ValidityDate)
	assert.Equal(t, "sun", pot.Description)
	assert.Equal(t, 300.0, trip.SharePrice())
}

func TestSplitPrice(t *testing.T) {
	assert.Equal(t, 50.0, domain.SplitPrice(200, 4))
	assert.Zero(t, domain.SplitPrice(200, 0))
}

func TestPot_Participants(t *testing.T) {
	pot := &domain.Pot{ID: 1}
	pot.AddParticipant(domain.NewPotUser(1, 10, 50))
	pot.AddParticipant(domain.NewPotUser(1, 11, 50))

	require.NotNil(t, pot.Participant(11))
	pot.RemoveParticipant(10)
	assert.Len(t, pot.Participants, 1)
	assert.Nil(t, pot.Participant(10))
	pot.RemoveParticipant(42)
	assert.Len(t, pot.Participants, 1)
}

func TestTrip_RemoveParticipant(t *testing.T) {
	trip := &domain.Trip{ID: 1}
	trip.AddParticipant(&domain.TripParticipant{TripID: 1, UserPseudo: "alice"})
	trip.AddParticipant(&domain.TripParticipant{TripID: 1, UserPseudo: "bob"})

	trip.RemoveParticipant("alice")
	require.Len(t, trip.Participants, 1)
	assert.Equal(t, "bob", trip.Participants[0].UserPseudo)
}

func TestFriendship_Mirror(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	f := domain.NewFriendship(1, "bob", start)
	assert.True(t, f.IsRequested)
	assert.True(t, f.IsWaiting)

	m := f.Mirror(2, "alice")
	assert.Equal(t, int64(2), m.UserID)
	assert.Equal(t, "alice", m.FriendName)
	assert.False(t, m.IsRequested)
	assert.True(t, m.IsWaiting)
	assert.Equal(t, start, m.StartDate)
}

func TestUser_AddFriendAndTrip(t *testing.T) {
	u := domain.NewUser("alice", "alice@example.com", "secret1", time.Now())
	assert.Equal(t, domain.RoleUser, u.Role)
	u.AddFriend(&domain.Friendship{UserID: 1, FriendName: "bob"})
	u.AddTrip(&domain.UserTrip{UserID: 1, TripName: "Lisbon"})
	assert.Len(t, u.Friends, 1)
	assert.Len(t, u.Trips, 1)
}

func TestValidate(t *testing.T) {
	err := domain.Validate(&domain.Trip{Name: "x", Organizer: "alice", NumberMaxOfPeople: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	err = domain.Validate(&domain.Trip{Name: "x", Organizer: "alice", NumberMaxOfPeople: 2, Price: 10})
	assert.NoError(t, err)

	err = domain.Validate(domain.NewUser("al", "nope", "secret1", time.Now()))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
