package friendship_test

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
	friendsvc "github.com/amirasaad/tripool/pkg/service/friendship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*friendsvc.Service, *mocks.MockFriendshipRepository, *mocks.MockUserRepository, *mocks.MockUnitOfWork) {
	friendships := mocks.NewMockFriendshipRepository(t)
	users := mocks.NewMockUserRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().FriendshipRepository().Return(friendships).Maybe()
	uow.EXPECT().UserRepository().Return(users).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	svc := friendsvc.New(uow, clock.Fixed{At: now}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, friendships, users, uow
}

var bob = &domain.User{ID: 2, Pseudo: "bob"}

func TestRequestFriendship_SavesBothRows(t *testing.T) {
	svc, friendships, users, _ := newService(t)
	var saved []*domain.Friendship
	friendships.EXPECT().Save(mock.Anything, mock.Anything).Run(func(_ context.Context, f *domain.Friendship) {
		saved = append(saved, f)
	}).Return(nil).Times(2)
	users.EXPECT().GetByPseudo(mock.Anything, "bob").Return(bob, nil)

	f := &domain.Friendship{UserID: 1, FriendName: "bob", IsRequested: true, IsWaiting: true}
	require.NoError(t, svc.RequestFriendship(context.Background(), f, "alice"))

	require.Len(t, saved, 2)
	assert.Equal(t, &domain.Friendship{UserID: 1, FriendName: "bob", IsRequested: true, IsWaiting: true, StartDate: now}, saved[0])
	assert.Equal(t, &domain.Friendship{UserID: 2, FriendName: "alice", IsRequested: false, IsWaiting: true, StartDate: now}, saved[1])
}

func TestRequestFriendship_Failures(t *testing.T) {
	t.Run("unknown friend", func(t *testing.T) {
		svc, friendships, users, _ := newService(t)
		friendships.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		users.EXPECT().GetByPseudo(mock.Anything, "bob").Return(nil, domain.ErrNotFound)

		err := svc.RequestFriendship(context.Background(), domain.NewFriendship(1, "bob", now), "alice")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "Unable to find user: bob", failure.Messages(err)[0])
	})
	t.Run("mirror save", func(t *testing.T) {
		svc, friendships, users, _ := newService(t)
		friendships.EXPECT().Save(mock.Anything, mock.MatchedBy(func(f *domain.Friendship) bool { return f.UserID == 1 })).Return(nil)
		friendships.EXPECT().Save(mock.Anything, mock.MatchedBy(func(f *domain.Friendship) bool { return f.UserID == 2 })).Return(domain.ErrAlreadyExists)
		users.EXPECT().GetByPseudo(mock.Anything, "bob").Return(bob, nil)

		err := svc.RequestFriendship(context.Background(), domain.NewFriendship(1, "bob", now), "alice")
		assert.Equal(t, []string{friendsvc.MsgSaveFriendFriendship, domain.ErrAlreadyExists.Error()}, failure.Messages(err))
	})
	t.Run("self request", func(t *testing.T) {
		svc, _, _, uow := newService(t)
		err := svc.RequestFriendship(context.Background(), domain.NewFriendship(1, "alice", now), "alice")
		require.ErrorIs(t, err, domain.ErrValidation)
		uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	})
}

func TestAcceptFriendship_FlipsBothRows(t *testing.T) {
	svc, friendships, users, _ := newService(t)
	f := &domain.Friendship{UserID: 1, FriendName: "bob", IsWaiting: true}
	mirror := &domain.Friendship{UserID: 2, FriendName: "alice", IsRequested: true, IsWaiting: true}
	friendships.EXPECT().Update(mock.Anything, f).Return(nil)
	users.EXPECT().GetByPseudo(mock.Anything, "bob").Return(bob, nil)
	friendships.EXPECT().Get(mock.Anything, int64(2), "alice").Return(mirror, nil)
	friendships.EXPECT().Update(mock.Anything, mirror).Return(nil)

	require.NoError(t, svc.AcceptFriendship(context.Background(), f, "alice"))
	assert.False(t, f.IsWaiting)
	assert.False(t, mirror.IsWaiting)
}

func TestAcceptFriendship_SecondFlipFailureRestoresFirst(t *testing.T) {
	svc, friendships, users, _ := newService(t)
	f := &domain.Friendship{UserID: 1, FriendName: "bob", IsWaiting: true}
	mirror := &domain.Friendship{UserID: 2, FriendName: "alice", IsRequested: true, IsWaiting: true}
	friendships.EXPECT().Update(mock.Anything, f).Return(nil)
	users.EXPECT().GetByPseudo(mock.Anything, "bob").Return(bob, nil)
	friendships.EXPECT().Get(mock.Anything, int64(2), "alice").Return(mirror, nil)
	friendships.EXPECT().Update(mock.Anything, mirror).Return(errors.New("db down"))

	err := svc.AcceptFriendship(context.Background(), f, "alice")
	assert.Equal(t, []string{friendsvc.MsgUpdateFriendFriend, "db down"}, failure.Messages(err))
	assert.True(t, f.IsWaiting)
	assert.True(t, mirror.IsWaiting)
}

func TestAcceptFriendship_EarlyFailuresRestoreFlag(t *testing.T) {
	t.Run("first update", func(t *testing.T) {
		svc, friendships, _, _ := newService(t)
		f := &domain.Friendship{UserID: 1, FriendName: "bob", IsWaiting: true}
		friendships.EXPECT().Update(mock.Anything, f).Return(domain.ErrNotFound)

		err := svc.AcceptFriendship(context.Background(), f, "alice")
		assert.Equal(t, []string{friendsvc.MsgUpdateFriendship, domain.ErrNotFound.Error()}, failure.Messages(err))
		assert.True(t, f.IsWaiting)
	})
	t.Run("mirror missing", func(t *testing.T) {
		svc, friendships, users, _ := newService(t)
		f := &domain.Friendship{UserID: 1, FriendName: "bob", IsWaiting: true}
		friendships.EXPECT().Update(mock.Anything, f).Return(nil)
		users.EXPECT().GetByPseudo(mock.Anything, "bob").Return(bob, nil)
		friendships.EXPECT().Get(mock.Anything, int64(2), "alice").Return(nil, domain.ErrNotFound)

		err := svc.AcceptFriendship(context.Background(), f, "alice")
		assert.Equal(t, friendsvc.MsgFindFriendFriendship, failure.Messages(err)[0])
		assert.True(t, f.IsWaiting)
	})
}

func TestDenyFriendship(t *testing.T) {
	t.Run("deletes both rows", func(t *testing.T) {
		svc, friendships, users, _ := newService(t)
		f := &domain.Friendship{UserID: 1, FriendName: "bob"}
		friendships.EXPECT().Delete(mock.Anything, f).Return(nil)
		users.EXPECT().GetByPseudo(mock.Anything, "bob").Return(bob, nil)
		friendships.EXPECT().Delete(mock.Anything, &domain.Friendship{UserID: 2, FriendName: "alice"}).Return(nil)

		require.NoError(t, svc.DenyFriendship(context.Background(), f, "alice"))
	})
	t.Run("first delete fails", func(t *testing.T) {
		svc, friendships, _, _ := newService(t)
		f := &domain.Friendship{UserID: 1, FriendName: "bob"}
		friendships.EXPECT().Delete(mock.Anything, f).Return(domain.ErrNotFound)

		err := svc.DenyFriendship(context.Background(), f, "alice")
		assert.Equal(t, []string{friendsvc.MsgDeleteFriendship, domain.ErrNotFound.Error()}, failure.Messages(err))
	})
}

func TestGetFriendship(t *testing.T) {
	svc, friendships, _, _ := newService(t)
	want := &domain.Friendship{UserID: 1, FriendName: "bob"}
	friendships.EXPECT().Get(mock.Anything, int64(1), "bob").Return(want, nil)
	friendships.EXPECT().Get(mock.Anything, int64(1), "carol").Return(nil, domain.ErrNotFound)

	got, err := svc.GetFriendship(context.Background(), 1, "bob")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = svc.GetFriendship(context.Background(), 1, "carol")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}

func TestListings(t *testing.T) {
	svc, friendships, users, _ := newService(t)
	rows := []*domain.Friendship{{UserID: 1, FriendName: "bob"}}
	friendships.EXPECT().ListByUser(mock.Anything, int64(1)).Return(rows, nil)
	friendships.EXPECT().ListRequested(mock.Anything, int64(1)).Return(rows, nil)
	friendships.EXPECT().ListWaiting(mock.Anything, int64(1)).Return(nil, errors.New("timeout"))
	users.EXPECT().GetByPseudo(mock.Anything, "alice").Return(&domain.User{ID: 1, Pseudo: "alice"}, nil)
	users.EXPECT().GetByPseudo(mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	ctx := context.Background()
	got, err := svc.GetUserFriendships(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	got, err = svc.GetRequestedFriendships(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	got, err = svc.GetWaitingFriendships(ctx, 1)
	assert.Equal(t, []string{friendsvc.MsgFindFriendships, "timeout"}, failure.Messages(err))
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = svc.GetUserFriendshipsByPseudo(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	got, err = svc.GetUserFriendshipsByPseudo(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, got)
}
