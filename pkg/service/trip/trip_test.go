package trip_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/tripool/internal/fixtures/mocks"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/amirasaad/tripool/pkg/repository"
	tripsvc "github.com/amirasaad/tripool/pkg/service/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc          *tripsvc.Service
	uow          *mocks.MockUnitOfWork
	trips        *mocks.MockTripRepository
	pots         *mocks.MockPotRepository
	potUsers     *mocks.MockPotUserRepository
	participants *mocks.MockTripParticipantRepository
	userTrips    *mocks.MockUserTripRepository
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:          mocks.NewMockUnitOfWork(t),
		trips:        mocks.NewMockTripRepository(t),
		pots:         mocks.NewMockPotRepository(t),
		potUsers:     mocks.NewMockPotUserRepository(t),
		participants: mocks.NewMockTripParticipantRepository(t),
		userTrips:    mocks.NewMockUserTripRepository(t),
	}
	f.uow.EXPECT().TripRepository().Return(f.trips).Maybe()
	f.uow.EXPECT().PotRepository().Return(f.pots).Maybe()
	f.uow.EXPECT().PotUserRepository().Return(f.potUsers).Maybe()
	f.uow.EXPECT().TripParticipantRepository().Return(f.participants).Maybe()
	f.uow.EXPECT().UserTripRepository().Return(f.userTrips).Maybe()
	f.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(f.uow)
		},
	).Maybe()
	f.svc = tripsvc.New(f.uow, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func newTrip() *domain.Trip {
	return &domain.Trip{Name: "Alps", Price: 900, NumberMaxOfPeople: 3, Organizer: "alice"}
}

func (f *fixture) expectSaves(saveErr map[string]error) {
	f.trips.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, t *domain.Trip) error {
			t.ID = 10
			return saveErr["trip"]
		},
	).Maybe()
	f.pots.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, p *domain.Pot) error {
			p.ID = 20
			return saveErr["pot"]
		},
	).Maybe()
	f.userTrips.EXPECT().Save(mock.Anything, mock.Anything).Return(saveErr["userTrip"]).Maybe()
	f.participants.EXPECT().Save(mock.Anything, mock.Anything).Return(saveErr["participant"]).Maybe()
	f.potUsers.EXPECT().Save(mock.Anything, mock.Anything).Return(saveErr["potUser"]).Maybe()
}

func TestCreateTrip_Success(t *testing.T) {
	f := newFixture(t)
	f.expectSaves(nil)
	trip := newTrip()

	require.NoError(t, f.svc.CreateTrip(context.Background(), trip, 1))

	assert.Equal(t, int64(10), trip.ID)
	require.Len(t, trip.Participants, 1)
	assert.Equal(t, "alice", trip.Participants[0].UserPseudo)
	assert.False(t, trip.Participants[0].HasParticipated)

	require.NotNil(t, trip.TripPot)
	pot := trip.TripPot
	assert.Equal(t, int64(20), pot.ID)
	assert.Equal(t, int64(10), pot.TripID)
	assert.Equal(t, "Pot Alps", pot.Name)
	assert.Equal(t, domain.PotModeLead, pot.Mode)
	assert.InDelta(t, 900, pot.TargetAmount, domain.PaymentEpsilon)
	assert.Zero(t, pot.CurrentAmount)
	require.Len(t, pot.Participants, 1)
	assert.Equal(t, int64(1), pot.Participants[0].UserID)
	assert.InDelta(t, 300, pot.Participants[0].TargetAmount, domain.PaymentEpsilon)

	f.userTrips.AssertCalled(t, "Save", mock.Anything, mock.MatchedBy(func(ut *domain.UserTrip) bool {
		return ut.UserID == 1 && ut.TripName == "Alps" && ut.HasOrganized && ut.TripAmount == 0
	}))
}

func TestCreateTrip_StepFailures(t *testing.T) {
	cases := []struct {
		step string
		msg  string
	}{
		{"trip", tripsvc.MsgSaveTrip},
		{"pot", tripsvc.MsgSavePot},
		{"userTrip", tripsvc.MsgSaveUserTrip},
		{"participant", tripsvc.MsgSaveTripParticipant},
		{"potUser", tripsvc.MsgSavePotUser},
	}
	for _, tc := range cases {
		t.Run(tc.step, func(t *testing.T) {
			f := newFixture(t)
			f.expectSaves(map[string]error{tc.step: errors.New("db error")})
			trip := newTrip()

			err := f.svc.CreateTrip(context.Background(), trip, 1)
			assert.Equal(t, []string{tc.msg, "db error"}, failure.Messages(err))
			assert.Zero(t, trip.ID)
			assert.Nil(t, trip.TripPot)
			assert.Empty(t, trip.Participants)
		})
	}
}

func TestCreateTrip_Invalid(t *testing.T) {
	f := newFixture(t)
	trip := newTrip()
	trip.NumberMaxOfPeople = 0

	err := f.svc.CreateTrip(context.Background(), trip, 1)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, tripsvc.MsgInvalidTrip, failure.Messages(err)[0])
	f.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestDeleteTrip_Success(t *testing.T) {
	f := newFixture(t)
	trip := &domain.Trip{ID: 10, Name: "Alps"}
	pot := &domain.Pot{ID: 20, TripID: 10}
	f.participants.EXPECT().ListByTrip(mock.Anything, int64(10)).Return([]*domain.TripParticipant{
		{TripID: 10, UserPseudo: "alice"}, {TripID: 10, UserPseudo: "bob"},
	}, nil)
	f.participants.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.userTrips.EXPECT().ListByTripName(mock.Anything, "Alps").Return([]*domain.UserTrip{
		{UserID: 1, TripName: "Alps"}, {UserID: 2, TripName: "Alps"},
	}, nil)
	f.userTrips.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.pots.EXPECT().GetByTrip(mock.Anything, int64(10)).Return(pot, nil)
	f.potUsers.EXPECT().ListByPot(mock.Anything, int64(20)).Return([]*domain.PotUser{
		{PotID: 20, UserID: 1}, {PotID: 20, UserID: 2},
	}, nil)
	f.potUsers.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.pots.EXPECT().Delete(mock.Anything, pot).Return(nil)
	f.trips.EXPECT().Delete(mock.Anything, trip).Return(nil)

	require.NoError(t, f.svc.DeleteTrip(context.Background(), trip))
}

func TestDeleteTrip_AbortsOnPotUserFailure(t *testing.T) {
	f := newFixture(t)
	trip := &domain.Trip{ID: 10, Name: "Alps"}
	pot := &domain.Pot{ID: 20, TripID: 10}
	first := &domain.PotUser{PotID: 20, UserID: 1}
	second := &domain.PotUser{PotID: 20, UserID: 2}
	f.participants.EXPECT().ListByTrip(mock.Anything, int64(10)).Return(nil, nil)
	f.userTrips.EXPECT().ListByTripName(mock.Anything, "Alps").Return(nil, nil)
	f.pots.EXPECT().GetByTrip(mock.Anything, int64(10)).Return(pot, nil)
	f.potUsers.EXPECT().ListByPot(mock.Anything, int64(20)).Return([]*domain.PotUser{first, second}, nil)
	f.potUsers.EXPECT().Delete(mock.Anything, first).Return(nil)
	f.potUsers.EXPECT().Delete(mock.Anything, second).Return(errors.New("locked"))

	err := f.svc.DeleteTrip(context.Background(), trip)
	assert.Equal(t, []string{tripsvc.MsgDeletePotUser, "locked"}, failure.Messages(err))
	f.pots.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.trips.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestParticipate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		pot := &domain.Pot{ID: 20, TripID: 10}
		trip := &domain.Trip{ID: 10, Name: "Alps", Price: 900, NumberMaxOfPeople: 3, TripPot: pot}
		f.participants.EXPECT().ListByTrip(mock.Anything, int64(10)).Return([]*domain.TripParticipant{{TripID: 10, UserPseudo: "alice"}}, nil)
		f.participants.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
		f.userTrips.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
		f.potUsers.EXPECT().Save(mock.Anything, mock.MatchedBy(func(pu *domain.PotUser) bool {
			return pu.PotID == 20 && pu.UserID == 2 && pu.TargetAmount == 300
		})).Return(nil)

		require.NoError(t, f.svc.Participate(context.Background(), trip, 2, "bob"))
		require.Len(t, trip.Participants, 1)
		assert.Equal(t, "bob", trip.Participants[0].UserPseudo)
		assert.NotNil(t, pot.Participant(2))
	})
	t.Run("full", func(t *testing.T) {
		f := newFixture(t)
		trip := &domain.Trip{ID: 10, Name: "Alps", NumberMaxOfPeople: 1}
		f.participants.EXPECT().ListByTrip(mock.Anything, int64(10)).Return([]*domain.TripParticipant{{TripID: 10, UserPseudo: "alice"}}, nil)

		err := f.svc.Participate(context.Background(), trip, 2, "bob")
		assert.Equal(t, []string{tripsvc.MsgTripFull}, failure.Messages(err))
		f.participants.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestQuit(t *testing.T) {
	t.Run("success takes paid amount out of the pot", func(t *testing.T) {
		f := newFixture(t)
		pot := &domain.Pot{ID: 20, TripID: 10, CurrentAmount: 500}
		pot.AddParticipant(&domain.PotUser{PotID: 20, UserID: 2, Amount: 200})
		trip := &domain.Trip{ID: 10, Name: "Alps", TripPot: pot}
		trip.AddParticipant(&domain.TripParticipant{TripID: 10, UserPseudo: "bob"})
		member := &domain.PotUser{PotID: 20, UserID: 2, Amount: 200}
		f.participants.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)
		f.userTrips.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)
		f.potUsers.EXPECT().Get(mock.Anything, int64(20), int64(2)).Return(member, nil)
		f.potUsers.EXPECT().Delete(mock.Anything, member).Return(nil)
		f.pots.EXPECT().Update(mock.Anything, pot).Return(nil)

		require.NoError(t, f.svc.Quit(context.Background(), trip, 2, "bob"))
		assert.InDelta(t, 300, pot.CurrentAmount, domain.PaymentEpsilon)
		assert.Empty(t, trip.Participants)
		assert.Nil(t, pot.Participant(2))
	})
	t.Run("pot update failure restores the amount", func(t *testing.T) {
		f := newFixture(t)
		pot := &domain.Pot{ID: 20, TripID: 10, CurrentAmount: 500}
		trip := &domain.Trip{ID: 10, Name: "Alps", TripPot: pot}
		trip.AddParticipant(&domain.TripParticipant{TripID: 10, UserPseudo: "bob"})
		member := &domain.PotUser{PotID: 20, UserID: 2, Amount: 200}
		f.participants.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)
		f.userTrips.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)
		f.potUsers.EXPECT().Get(mock.Anything, int64(20), int64(2)).Return(member, nil)
		f.potUsers.EXPECT().Delete(mock.Anything, member).Return(nil)
		f.pots.EXPECT().Update(mock.Anything, pot).Return(errors.New("db down"))

		err := f.svc.Quit(context.Background(), trip, 2, "bob")
		assert.Equal(t, []string{tripsvc.MsgUpdatePot, "db down"}, failure.Messages(err))
		assert.InDelta(t, 500, pot.CurrentAmount, domain.PaymentEpsilon)
		assert.Len(t, trip.Participants, 1)
	})
	t.Run("nothing paid leaves the pot alone", func(t *testing.T) {
		f := newFixture(t)
		pot := &domain.Pot{ID: 20, TripID: 10, CurrentAmount: 500}
		trip := &domain.Trip{ID: 10, Name: "Alps"}
		member := &domain.PotUser{PotID: 20, UserID: 2}
		f.participants.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)
		f.userTrips.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil)
		f.pots.EXPECT().GetByTrip(mock.Anything, int64(10)).Return(pot, nil)
		f.potUsers.EXPECT().Get(mock.Anything, int64(20), int64(2)).Return(member, nil)
		f.potUsers.EXPECT().Delete(mock.Anything, member).Return(nil)

		require.NoError(t, f.svc.Quit(context.Background(), trip, 2, "bob"))
		f.pots.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Same(t, pot, trip.TripPot)
	})
}

func priceFixture(t *testing.T) (*fixture, *domain.Trip, []*domain.PotUser) {
	f := newFixture(t)
	pot := &domain.Pot{ID: 20, TripID: 10, TargetAmount: 900}
	trip := &domain.Trip{ID: 10, Name: "Alps", Price: 900, NumberMaxOfPeople: 3, TripPot: pot}
	members := []*domain.PotUser{
		{PotID: 20, UserID: 1, TargetAmount: 300},
		{PotID: 20, UserID: 2, TargetAmount: 300},
	}
	f.potUsers.EXPECT().ListByPot(mock.Anything, int64(20)).Return(members, nil)
	return f, trip, members
}

func TestUpdatePrice_Success(t *testing.T) {
	f, trip, members := priceFixture(t)
	f.potUsers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.pots.EXPECT().Update(mock.Anything, trip.TripPot).Return(nil)
	f.trips.EXPECT().Update(mock.Anything, trip).Return(nil)

	require.NoError(t, f.svc.UpdatePrice(context.Background(), trip, 1200))
	assert.InDelta(t, 1200, trip.Price, domain.PaymentEpsilon)
	assert.InDelta(t, 1200, trip.TripPot.TargetAmount, domain.PaymentEpsilon)
	for _, m := range members {
		assert.InDelta(t, 400, m.TargetAmount, domain.PaymentEpsilon)
	}
}

func TestUpdatePrice_PotFailureFallsThrough(t *testing.T) {
	f, trip, _ := priceFixture(t)
	f.potUsers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.pots.EXPECT().Update(mock.Anything, trip.TripPot).Return(errors.New("pot down"))
	f.trips.EXPECT().Update(mock.Anything, trip).Return(errors.New("trip down"))

	err := f.svc.UpdatePrice(context.Background(), trip, 1200)
	assert.Equal(t, []string{tripsvc.MsgUpdatePot, "pot down", tripsvc.MsgUpdateTrip, "trip down"}, failure.Messages(err))
	assert.InDelta(t, 900, trip.TripPot.TargetAmount, domain.PaymentEpsilon)
	assert.InDelta(t, 900, trip.Price, domain.PaymentEpsilon)
}

func TestUpdatePrice_PotFailureRestoresTripAndMembers(t *testing.T) {
	f, trip, members := priceFixture(t)
	trip.TripPot.Participants = []*domain.PotUser{
		{PotID: 20, UserID: 1, TargetAmount: 300},
		{PotID: 20, UserID: 2, TargetAmount: 300},
	}
	f.potUsers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.pots.EXPECT().Update(mock.Anything, trip.TripPot).Return(errors.New("pot down"))
	f.trips.EXPECT().Update(mock.Anything, trip).Return(nil)

	err := f.svc.UpdatePrice(context.Background(), trip, 1200)
	assert.Equal(t, []string{tripsvc.MsgUpdatePot, "pot down"}, failure.Messages(err))
	assert.InDelta(t, 900, trip.Price, domain.PaymentEpsilon)
	assert.InDelta(t, 900, trip.TripPot.TargetAmount, domain.PaymentEpsilon)
	for _, m := range members {
		assert.InDelta(t, 300, m.TargetAmount, domain.PaymentEpsilon)
	}
	for _, p := range trip.TripPot.Participants {
		assert.InDelta(t, 300, p.TargetAmount, domain.PaymentEpsilon)
	}
}

func TestUpdatePrice_MemberFailureStops(t *testing.T) {
	f, trip, members := priceFixture(t)
	f.potUsers.EXPECT().Update(mock.Anything, members[0]).Return(nil)
	f.potUsers.EXPECT().Update(mock.Anything, members[1]).Return(errors.New("db error"))

	err := f.svc.UpdatePrice(context.Background(), trip, 1200)
	assert.Equal(t, []string{tripsvc.MsgUpdatePotUser, "db error"}, failure.Messages(err))
	for _, m := range members {
		assert.InDelta(t, 300, m.TargetAmount, domain.PaymentEpsilon)
	}
	assert.InDelta(t, 900, trip.Price, domain.PaymentEpsilon)
	f.trips.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateAllowedNumberOfPeople(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f, trip, members := priceFixture(t)
		f.potUsers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)
		f.pots.EXPECT().Update(mock.Anything, trip.TripPot).Return(nil)
		f.trips.EXPECT().Update(mock.Anything, trip).Return(nil)

		require.NoError(t, f.svc.UpdateAllowedNumberOfPeople(context.Background(), trip, 4))
		assert.Equal(t, 4, trip.NumberMaxOfPeople)
		assert.InDelta(t, 225, members[1].TargetAmount, domain.PaymentEpsilon)
	})
	t.Run("pot failure returns early", func(t *testing.T) {
		f, trip, members := priceFixture(t)
		f.potUsers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)
		f.pots.EXPECT().Update(mock.Anything, trip.TripPot).Return(errors.New("pot down"))

		err := f.svc.UpdateAllowedNumberOfPeople(context.Background(), trip, 4)
		assert.Equal(t, []string{tripsvc.MsgUpdatePot, "pot down"}, failure.Messages(err))
		assert.Equal(t, 3, trip.NumberMaxOfPeople)
		assert.InDelta(t, 300, members[0].TargetAmount, domain.PaymentEpsilon)
		f.trips.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
	t.Run("trip failure restores the count", func(t *testing.T) {
		f, trip, _ := priceFixture(t)
		f.potUsers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)
		f.pots.EXPECT().Update(mock.Anything, trip.TripPot).Return(nil)
		f.trips.EXPECT().Update(mock.Anything, trip).Return(errors.New("trip down"))

		err := f.svc.UpdateAllowedNumberOfPeople(context.Background(), trip, 4)
		assert.Equal(t, []string{tripsvc.MsgUpdateTrip, "trip down"}, failure.Messages(err))
		assert.Equal(t, 3, trip.NumberMaxOfPeople)
	})
	t.Run("count below one", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.UpdateAllowedNumberOfPeople(context.Background(), newTrip(), 0)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestGetTrip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.trips.EXPECT().Get(mock.Anything, int64(10)).Return(&domain.Trip{ID: 10, Name: "Alps"}, nil)
		f.participants.EXPECT().ListByTrip(mock.Anything, int64(10)).Return([]*domain.TripParticipant{{TripID: 10, UserPseudo: "alice"}}, nil)
		f.pots.EXPECT().GetByTrip(mock.Anything, int64(10)).Return(&domain.Pot{ID: 20, TripID: 10}, nil)
		f.potUsers.EXPECT().ListByPot(mock.Anything, int64(20)).Return([]*domain.PotUser{{PotID: 20, UserID: 1}}, nil)

		trip, err := f.svc.GetTrip(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, trip.Participants, 1)
		require.NotNil(t, trip.TripPot)
		assert.Len(t, trip.TripPot.Participants, 1)
	})
	t.Run("pot stage fails", func(t *testing.T) {
		f := newFixture(t)
		f.trips.EXPECT().Get(mock.Anything, int64(10)).Return(&domain.Trip{ID: 10}, nil)
		f.participants.EXPECT().ListByTrip(mock.Anything, int64(10)).Return(nil, nil)
		f.pots.EXPECT().GetByTrip(mock.Anything, int64(10)).Return(nil, domain.ErrNotFound)

		trip, err := f.svc.GetTrip(context.Background(), 10)
		assert.Nil(t, trip)
		assert.Equal(t, []string{"Unable to find pot for trip with id: 10", domain.ErrNotFound.Error()}, failure.Messages(err))
	})
}
