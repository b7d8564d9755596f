// Package friendship provides the friendship operations. A friendship between
// two users is stored as two directed rows which are always changed together.
package friendship

import (
	"context"
	"log/slog"

	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/amirasaad/tripool/pkg/repository"
	"github.com/amirasaad/tripool/pkg/service"
)

const (
	MsgSelfRequest          = "Unable to request yourself as a friend"
	MsgSaveFriendship       = "Unable to save friendship"
	MsgSaveFriendFriendship = "Unable to save friend friendship"
	MsgFindUser             = "Unable to find user: %s"
	MsgFindFriendship       = "Unable to find friendship"
	MsgFindFriendFriendship = "Unable to find friend friendship"
	MsgUpdateFriendship     = "Unable to update friendship"
	MsgUpdateFriendFriend   = "Unable to update friend friendship"
	MsgDeleteFriendship     = "Unable to delete friendship"
	MsgDeleteFriendFriend   = "Unable to delete friend friendship"
	MsgFindFriendships      = "Unable to find friendships"
)

// Service provides the friendship operations.
type Service struct {
	uow    repository.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new friendship Service.
func New(uow repository.UnitOfWork, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{uow: uow, clock: clk, logger: logger}
}

// RequestFriendship saves the request f made by userPseudo and the waiting
// row on the friend's side.
func (s *Service) RequestFriendship(ctx context.Context, f *domain.Friendship, userPseudo string) error {
	logger := s.logger.With("userID", f.UserID, "pseudo", userPseudo, "friend", f.FriendName)
	logger.Info("RequestFriendship started")
	if f.FriendName == userPseudo {
		return failure.Wrap(MsgSelfRequest, domain.ErrValidation)
	}
	if f.StartDate.IsZero() {
		f.StartDate = s.clock.Now()
	}

	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		friendships := uow.FriendshipRepository()
		if err := friendships.Save(ctx, f); err != nil {
			return failure.Wrap(MsgSaveFriendship, err)
		}
		friend, err := uow.UserRepository().GetByPseudo(ctx, f.FriendName)
		if err != nil {
			return failure.Wrapf(err, MsgFindUser, f.FriendName)
		}
		if err := friendships.Save(ctx, f.Mirror(friend.ID, userPseudo)); err != nil {
			return failure.Wrap(MsgSaveFriendFriendship, err)
		}
		return nil
	})
	if err != nil {
		logger.Error("RequestFriendship failed", "error", err)
		return err
	}
	logger.Info("RequestFriendship successful")
	return nil
}

// AcceptFriendship clears the waiting flag on f, owned by userPseudo, and on
// its mirror row. When any step fails f is left waiting again.
func (s *Service) AcceptFriendship(ctx context.Context, f *domain.Friendship, userPseudo string) error {
	logger := s.logger.With("userID", f.UserID, "pseudo", userPseudo, "friend", f.FriendName)
	logger.Info("AcceptFriendship started")

	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		friendships := uow.FriendshipRepository()
		f.IsWaiting = false
		if err := friendships.Update(ctx, f); err != nil {
			f.IsWaiting = true
			return failure.Wrap(MsgUpdateFriendship, err)
		}

		friend, err := uow.UserRepository().GetByPseudo(ctx, f.FriendName)
		if err != nil {
			f.IsWaiting = true
			return failure.Wrapf(err, MsgFindUser, f.FriendName)
		}
		mirror, err := friendships.Get(ctx, friend.ID, userPseudo)
		if err != nil {
			f.IsWaiting = true
			return failure.Wrap(MsgFindFriendFriendship, err)
		}
		mirror.IsWaiting = false
		if err := friendships.Update(ctx, mirror); err != nil {
			mirror.IsWaiting = true
			f.IsWaiting = true
			return failure.Wrap(MsgUpdateFriendFriend, err)
		}
		return nil
	})
	if err != nil {
		logger.Error("AcceptFriendship failed", "error", err)
		return err
	}
	logger.Info("AcceptFriendship successful")
	return nil
}

// DenyFriendship deletes f, owned by userPseudo, and its mirror row.
func (s *Service) DenyFriendship(ctx context.Context, f *domain.Friendship, userPseudo string) error {
	logger := s.logger.With("userID", f.UserID, "pseudo", userPseudo, "friend", f.FriendName)
	logger.Info("DenyFriendship started")

	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		friendships := uow.FriendshipRepository()
		if err := friendships.Delete(ctx, f); err != nil {
			return failure.Wrap(MsgDeleteFriendship, err)
		}
		friend, err := uow.UserRepository().GetByPseudo(ctx, f.FriendName)
		if err != nil {
			return failure.Wrapf(err, MsgFindUser, f.FriendName)
		}
		if err := friendships.Delete(ctx, &domain.Friendship{UserID: friend.ID, FriendName: userPseudo}); err != nil {
			return failure.Wrap(MsgDeleteFriendFriend, err)
		}
		return nil
	})
	if err != nil {
		logger.Error("DenyFriendship failed", "error", err)
		return err
	}
	logger.Info("DenyFriendship successful")
	return nil
}

// GetFriendship returns the row of userID pointing at friendName.
func (s *Service) GetFriendship(ctx context.Context, userID int64, friendName string) (f *domain.Friendship, err error) {
	err = service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		found, err := uow.FriendshipRepository().Get(ctx, userID, friendName)
		if err != nil {
			return failure.Wrap(MsgFindFriendship, err)
		}
		f = found
		return nil
	})
	if err != nil {
		s.logger.Error("GetFriendship failed", "userID", userID, "friend", friendName, "error", err)
		return nil, err
	}
	return f, nil
}

// GetUserFriendships lists every row owned by userID.
func (s *Service) GetUserFriendships(ctx context.Context, userID int64) ([]*domain.Friendship, error) {
	return s.list(ctx, "GetUserFriendships", userID, repository.FriendshipRepository.ListByUser)
}

// GetRequestedFriendships lists the requests sent by userID still waiting
// for an answer.
func (s *Service) GetRequestedFriendships(ctx context.Context, userID int64) ([]*domain.Friendship, error) {
	return s.list(ctx, "GetRequestedFriendships", userID, repository.FriendshipRepository.ListRequested)
}

// GetWaitingFriendships lists the requests userID received and has not
// answered.
func (s *Service) GetWaitingFriendships(ctx context.Context, userID int64) ([]*domain.Friendship, error) {
	return s.list(ctx, "GetWaitingFriendships", userID, repository.FriendshipRepository.ListWaiting)
}

// GetUserFriendshipsByPseudo lists every row owned by the user called pseudo.
func (s *Service) GetUserFriendshipsByPseudo(ctx context.Context, pseudo string) ([]*domain.Friendship, error) {
	friendships := []*domain.Friendship{}
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		u, err := uow.UserRepository().GetByPseudo(ctx, pseudo)
		if err != nil {
			return failure.Wrapf(err, MsgFindUser, pseudo)
		}
		list, err := uow.FriendshipRepository().ListByUser(ctx, u.ID)
		if err != nil {
			return failure.Wrap(MsgFindFriendships, err)
		}
		if list != nil {
			friendships = list
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetUserFriendshipsByPseudo failed", "pseudo", pseudo, "error", err)
		return []*domain.Friendship{}, err
	}
	return friendships, nil
}

type lister func(repository.FriendshipRepository, context.Context, int64) ([]*domain.Friendship, error)

func (s *Service) list(ctx context.Context, op string, userID int64, find lister) ([]*domain.Friendship, error) {
	friendships := []*domain.Friendship{}
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		list, err := find(uow.FriendshipRepository(), ctx, userID)
		if err != nil {
			return failure.Wrap(MsgFindFriendships, err)
		}
		if list != nil {
			friendships = list
		}
		return nil
	})
	if err != nil {
		s.logger.Error(op+" failed", "userID", userID, "error", err)
		return []*domain.Friendship{}, err
	}
	return friendships, nil
}
