package pot_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/tripool/internal/fixtures/mocks"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/amirasaad/tripool/pkg/repository"
	potsvc "github.com/amirasaad/tripool/pkg/service/pot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *potsvc.Service
	uow      *mocks.MockUnitOfWork
	pots     *mocks.MockPotRepository
	potUsers *mocks.MockPotUserRepository
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:      mocks.NewMockUnitOfWork(t),
		pots:     mocks.NewMockPotRepository(t),
		potUsers: mocks.NewMockPotUserRepository(t),
	}
	f.uow.EXPECT().PotRepository().Return(f.pots).Maybe()
	f.uow.EXPECT().PotUserRepository().Return(f.potUsers).Maybe()
	f.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(f.uow)
		},
	).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = potsvc.New(f.uow, clock.Fixed{At: now}, logger)
	return f
}

func TestCredit_Example(t *testing.T) {
	f := newFixture(t)
	pot := &domain.Pot{ID: 1, CurrentAmount: 400, TargetAmount: 600}
	member := &domain.PotUser{PotID: 1, UserID: 2, Amount: 0, TargetAmount: 200}
	f.potUsers.EXPECT().Get(mock.Anything, int64(1), int64(2)).Return(member, nil)
	f.potUsers.EXPECT().Update(mock.Anything, member).Return(nil)
	f.pots.EXPECT().Update(mock.Anything, pot).Return(nil)

	err := f.svc.Credit(context.Background(), pot, 2, 200)
	require.NoError(t, err)
	assert.InDelta(t, 600, pot.CurrentAmount, domain.PaymentEpsilon)
	assert.InDelta(t, 200, member.Amount, domain.PaymentEpsilon)
	assert.True(t, member.HasPayed)
}

func TestDebit_Example(t *testing.T) {
	f := newFixture(t)
	pot := &domain.Pot{ID: 1, CurrentAmount: 600, TargetAmount: 700}
	member := &domain.PotUser{PotID: 1, UserID: 2, Amount: 300, TargetAmount: 300, HasPayed: true}
	f.potUsers.EXPECT().Get(mock.Anything, int64(1), int64(2)).Return(member, nil)
	f.potUsers.EXPECT().Update(mock.Anything, member).Return(nil)
	f.pots.EXPECT().Update(mock.Anything, pot).Return(nil)

	err := f.svc.Debit(context.Background(), pot, 2, 200)
	require.NoError(t, err)
	assert.InDelta(t, 400, pot.CurrentAmount, domain.PaymentEpsilon)
	assert.InDelta(t, 100, member.Amount, domain.PaymentEpsilon)
	assert.False(t, member.HasPayed)
}

func TestCreditThenDebit_RoundTrip(t *testing.T) {
	f := newFixture(t)
	pot := &domain.Pot{ID: 1, CurrentAmount: 120.5, TargetAmount: 900}
	member := &domain.PotUser{PotID: 1, UserID: 2, Amount: 20.5, TargetAmount: 300}
	member.RefreshPayment()
	f.potUsers.EXPECT().Get(mock.Anything, int64(1), int64(2)).Return(member, nil).Times(2)
	f.potUsers.EXPECT().Update(mock.Anything, member).Return(nil).Times(2)
	f.pots.EXPECT().Update(mock.Anything, pot).Return(nil).Times(2)

	require.NoError(t, f.svc.Credit(context.Background(), pot, 2, 279.5))
	assert.True(t, member.HasPayed)
	require.NoError(t, f.svc.Debit(context.Background(), pot, 2, 279.5))

	assert.InDelta(t, 120.5, pot.CurrentAmount, domain.PaymentEpsilon)
	assert.InDelta(t, 20.5, member.Amount, domain.PaymentEpsilon)
	assert.False(t, member.HasPayed)
}

func TestCredit_UpdatesInMemoryParticipant(t *testing.T) {
	f := newFixture(t)
	pot := &domain.Pot{ID: 1, TargetAmount: 100}
	pot.AddParticipant(&domain.PotUser{PotID: 1, UserID: 2, TargetAmount: 100})
	stored := &domain.PotUser{PotID: 1, UserID: 2, TargetAmount: 100}
	f.potUsers.EXPECT().Get(mock.Anything, int64(1), int64(2)).Return(stored, nil)
	f.potUsers.EXPECT().Update(mock.Anything, stored).Return(nil)
	f.pots.EXPECT().Update(mock.Anything, pot).Return(nil)

	require.NoError(t, f.svc.Credit(context.Background(), pot, 2, 100))
	assert.True(t, pot.Participant(2).HasPayed)
	assert.InDelta(t, 100, pot.Participant(2).Amount, domain.PaymentEpsilon)
}

func TestCreditDebit_UserNotInPot(t *testing.T) {
	for _, op := range []string{"Credit", "Debit"} {
		t.Run(op, func(t *testing.T) {
			f := newFixture(t)
			pot := &domain.Pot{ID: 1, CurrentAmount: 50}
			f.potUsers.EXPECT().Get(mock.Anything, int64(1), int64(9)).Return(nil, domain.ErrNotFound)

			var err error
			if op == "Credit" {
				err = f.svc.Credit(context.Background(), pot, 9, 10)
			} else {
				err = f.svc.Debit(context.Background(), pot, 9, 10)
			}
			require.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, []string{potsvc.MsgUserNotInPot, domain.ErrNotFound.Error()}, failure.Messages(err))
			assert.InDelta(t, 50, pot.CurrentAmount, domain.PaymentEpsilon)
		})
	}
}

func TestCredit_PotUserUpdateFails(t *testing.T) {
	f := newFixture(t)
	pot := &domain.Pot{ID: 1, CurrentAmount: 50}
	member := &domain.PotUser{PotID: 1, UserID: 2, TargetAmount: 100}
	f.potUsers.EXPECT().Get(mock.Anything, int64(1), int64(2)).Return(member, nil)
	f.potUsers.EXPECT().Update(mock.Anything, member).Return(errors.New("db error"))

	err := f.svc.Credit(context.Background(), pot, 2, 10)
	require.Error(t, err)
	assert.Equal(t, []string{potsvc.MsgUpdatePotUser, "db error"}, failure.Messages(err))
	assert.InDelta(t, 50, pot.CurrentAmount, domain.PaymentEpsilon)
	f.pots.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreditDebit_PotUpdateFailsRestoresPot(t *testing.T) {
	for _, op := range []string{"Credit", "Debit"} {
		t.Run(op, func(t *testing.T) {
			f := newFixture(t)
			pot := &domain.Pot{ID: 1, CurrentAmount: 300, TargetAmount: 600}
			member := &domain.PotUser{PotID: 1, UserID: 2, Amount: 100, TargetAmount: 200}
			f.potUsers.EXPECT().Get(mock.Anything, int64(1), int64(2)).Return(member, nil)
			f.potUsers.EXPECT().Update(mock.Anything, member).Return(nil)
			f.pots.EXPECT().Update(mock.Anything, pot).Return(errors.New("db down"))

			var err error
			want := 200.0
			if op == "Credit" {
				err = f.svc.Credit(context.Background(), pot, 2, 100)
			} else {
				err = f.svc.Debit(context.Background(), pot, 2, 100)
				want = 0
			}
			require.Error(t, err)
			assert.Equal(t, []string{potsvc.MsgUpdatePot, "db down"}, failure.Messages(err))
			assert.InDelta(t, 300, pot.CurrentAmount, domain.PaymentEpsilon)
			// the member record keeps its new amount
			assert.InDelta(t, want, member.Amount, domain.PaymentEpsilon)
		})
	}
}

func TestCredit_CancelledPot(t *testing.T) {
	f := newFixture(t)
	pot := &domain.Pot{ID: 1, IsCancelled: true}

	err := f.svc.Credit(context.Background(), pot, 2, 10)
	require.Error(t, err)
	assert.Equal(t, []string{potsvc.MsgPotCancelled}, failure.Messages(err))
	f.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestCredit_RepositoryPanic(t *testing.T) {
	f := newFixture(t)
	pot := &domain.Pot{ID: 1}
	f.potUsers.EXPECT().Get(mock.Anything, int64(1), int64(2)).RunAndReturn(
		func(context.Context, int64, int64) (*domain.PotUser, error) {
			panic("connection refused")
		},
	)

	err := f.svc.Credit(context.Background(), pot, 2, 10)
	require.Error(t, err)
	assert.Equal(t, []string{"connection refused"}, failure.Messages(err))
}

func TestGetPot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.pots.EXPECT().Get(mock.Anything, int64(3)).Return(&domain.Pot{ID: 3, Name: "Pot Alps"}, nil)
		f.potUsers.EXPECT().ListByPot(mock.Anything, int64(3)).Return([]*domain.PotUser{
			{PotID: 3, UserID: 1}, {PotID: 3, UserID: 2},
		}, nil)

		pot, err := f.svc.GetPot(context.Background(), 3)
		require.NoError(t, err)
		assert.Len(t, pot.Participants, 2)
	})
	t.Run("pot missing", func(t *testing.T) {
		f := newFixture(t)
		f.pots.EXPECT().Get(mock.Anything, int64(3)).Return(nil, domain.ErrNotFound)

		pot, err := f.svc.GetPot(context.Background(), 3)
		assert.Nil(t, pot)
		assert.Equal(t, []string{"Unable to find pot with id: 3", domain.ErrNotFound.Error()}, failure.Messages(err))
	})
	t.Run("members fail", func(t *testing.T) {
		f := newFixture(t)
		f.pots.EXPECT().Get(mock.Anything, int64(3)).Return(&domain.Pot{ID: 3}, nil)
		f.potUsers.EXPECT().ListByPot(mock.Anything, int64(3)).Return(nil, errors.New("timeout"))

		pot, err := f.svc.GetPot(context.Background(), 3)
		assert.Nil(t, pot)
		assert.Equal(t, []string{"Unable to find users for pot with id: 3", "timeout"}, failure.Messages(err))
	})
}

func TestGetPotMembers_NeverNil(t *testing.T) {
	f := newFixture(t)
	f.potUsers.EXPECT().ListByPot(mock.Anything, int64(3)).Return(nil, errors.New("timeout")).Once()

	members, err := f.svc.GetPotMembers(context.Background(), 3)
	require.Error(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)

	f.potUsers.EXPECT().ListByPot(mock.Anything, int64(3)).Return(nil, nil).Once()
	members, err = f.svc.GetPotMembers(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, members)
}

func TestCancel(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		pot := &domain.Pot{ID: 1}
		f.pots.EXPECT().Update(mock.Anything, pot).Return(nil)

		require.NoError(t, f.svc.Cancel(context.Background(), pot, "weather"))
		assert.True(t, pot.IsCancelled)
		assert.Equal(t, "weather", pot.CancellationReason)
		assert.Equal(t, now, pot.CancellationDate)
	})
	t.Run("update fails", func(t *testing.T) {
		f := newFixture(t)
		pot := &domain.Pot{ID: 1}
		f.pots.EXPECT().Update(mock.Anything, pot).Return(errors.New("db down"))

		err := f.svc.Cancel(context.Background(), pot, "weather")
		assert.Equal(t, []string{potsvc.MsgCancelPot, "db down"}, failure.Messages(err))
		assert.False(t, pot.IsCancelled)
		assert.Empty(t, pot.CancellationReason)
		assert.True(t, pot.CancellationDate.IsZero())
	})
}

func TestClose_NotImplemented(t *testing.T) {
	f := newFixture(t)
	err := f.svc.Close(context.Background(), &domain.Pot{ID: 1})
	require.ErrorIs(t, err, domain.ErrNotImplemented)
}
