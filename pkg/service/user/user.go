// Package user provides business logic for user management: accounts, login,
// cascading deletion and the cached user directory.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/tripool/pkg/cache"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/amirasaad/tripool/pkg/repository"
	"github.com/amirasaad/tripool/pkg/service"
	"github.com/amirasaad/tripool/pkg/utils"
	"golang.org/x/sync/singleflight"
)

const (
	MsgInvalidUser          = "Invalid user"
	MsgPseudoUsed           = "Pseudo already used"
	MsgMailUsed             = "Mail already used"
	MsgHashPassword         = "Unable to hash password"
	MsgSaveUser             = "Unable to save user"
	MsgUpdateUser           = "Unable to update user"
	MsgDeleteUser           = "Unable to delete user"
	MsgFindUser             = "Unable to find user: %s"
	MsgFindUserID           = "Unable to find user with id: %d"
	MsgFindFriendships      = "Unable to find friendships"
	MsgFindFriendFriendship = "Unable to find friend friendship"
	MsgDeleteFriendship     = "Unable to delete friendship"
	MsgDeleteFriendFriend   = "Unable to delete friend friendship"
	MsgFindUserTrips        = "Unable to find user trips"
	MsgDeleteUserTrip       = "Unable to delete user trip"
	MsgInvalidCredentials   = "Invalid credentials"
	MsgFillTrips            = "Unable to load user trips"
	MsgFillFriends          = "Unable to load user friends"
	MsgListUsers            = "Unable to list users"
	MsgRefreshCache         = "Unable to refresh user cache"
	MsgClearCache           = "Unable to clear user cache"
)

// Service provides business logic for user operations.
type Service struct {
	uow    repository.UnitOfWork
	dir    *cache.Directory
	clock  clock.Clock
	logger *slog.Logger
	loads  singleflight.Group
}

// New creates a new user Service.
func New(
	uow repository.UnitOfWork,
	dir *cache.Directory,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		dir:    dir,
		clock:  clk,
		logger: logger,
	}
}

// CreateUser saves u, whose Password holds the plain password. On success
// u carries its id and the password hash.
func (s *Service) CreateUser(ctx context.Context, u *domain.User) error {
	logger := s.logger.With("pseudo", u.Pseudo, "mail", u.Mail)
	logger.Info("CreateUser started")
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if u.UserType == "" {
		u.UserType = domain.UserTypeStandard
	}
	if u.CreationDate.IsZero() {
		u.CreationDate = s.clock.Now()
	}
	if err := domain.Validate(u); err != nil {
		logger.Error("CreateUser failed: validation", "error", err)
		return failure.Wrap(MsgInvalidUser, err)
	}

	plain := u.Password
	hashed, err := utils.HashPassword(plain)
	if err != nil {
		logger.Error("CreateUser failed: hash", "error", err)
		return failure.Wrap(MsgHashPassword, err)
	}

	err = service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		users := uow.UserRepository()
		if err := unused(users.GetByPseudo(ctx, u.Pseudo)); err != nil {
			return failure.Wrap(MsgPseudoUsed, err)
		}
		if err := unused(users.GetByMail(ctx, u.Mail)); err != nil {
			return failure.Wrap(MsgMailUsed, err)
		}
		u.Password = hashed
		if err := users.Save(ctx, u); err != nil {
			return failure.Wrap(MsgSaveUser, err)
		}
		return nil
	})
	if err != nil {
		u.ID = 0
		u.Password = plain
		logger.Error("CreateUser failed", "error", err)
		return err
	}
	if err := s.dir.Put(ctx, u); err != nil {
		logger.Warn("CreateUser: cache put failed", "error", err)
	}
	logger.Info("CreateUser successful", "userID", u.ID)
	return nil
}

// unused turns the result of a uniqueness lookup into an error: a found row
// is ErrAlreadyExists, a missing row is nil.
func unused(found *domain.User, err error) error {
	switch {
	case err == nil && found != nil:
		return domain.ErrAlreadyExists
	case err == nil, errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}

// UpdateUser persists the profile of u. An empty Password keeps the stored
// hash.
func (s *Service) UpdateUser(ctx context.Context, u *domain.User) error {
	logger := s.logger.With("userID", u.ID)
	logger.Info("UpdateUser started")
	var previous string
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		users := uow.UserRepository()
		current, err := users.Get(ctx, u.ID)
		if err != nil {
			return failure.Wrapf(err, MsgFindUserID, u.ID)
		}
		if u.Password == "" {
			u.Password = current.Password
		}
		if err := users.Update(ctx, u); err != nil {
			return failure.Wrap(MsgUpdateUser, err)
		}
		previous = current.Pseudo
		return nil
	})
	if err != nil {
		logger.Error("UpdateUser failed", "error", err)
		return err
	}
	stale := []string{u.Pseudo}
	if previous != u.Pseudo {
		stale = append(stale, previous)
	}
	for _, pseudo := range stale {
		if err := s.dir.Forget(ctx, pseudo); err != nil {
			logger.Warn("UpdateUser: cache forget failed", "pseudo", pseudo, "error", err)
		}
	}
	logger.Info("UpdateUser successful")
	return nil
}

// DeleteUser removes u together with both rows of each of its friendships
// and its user trips.
func (s *Service) DeleteUser(ctx context.Context, u *domain.User) error {
	logger := s.logger.With("userID", u.ID, "pseudo", u.Pseudo)
	logger.Info("DeleteUser started")
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		users := uow.UserRepository()
		friendships := uow.FriendshipRepository()
		owned, err := friendships.ListByUser(ctx, u.ID)
		if err != nil {
			return failure.Wrap(MsgFindFriendships, err)
		}

		// The loop stops at the first failure; the outcome is checked once
		// it is done.
		var errs error
		for _, f := range owned {
			friend, err := users.GetByPseudo(ctx, f.FriendName)
			if err != nil {
				errs = failure.Wrapf(err, MsgFindUser, f.FriendName)
				break
			}
			mirror, err := friendships.Get(ctx, friend.ID, u.Pseudo)
			if err != nil {
				errs = failure.Wrap(MsgFindFriendFriendship, err)
				break
			}
			if err := friendships.Delete(ctx, f); err != nil {
				errs = failure.Wrap(MsgDeleteFriendship, err)
				break
			}
			if err := friendships.Delete(ctx, mirror); err != nil {
				errs = failure.Wrap(MsgDeleteFriendFriend, err)
				break
			}
		}
		if errs != nil {
			return errs
		}

		userTrips := uow.UserTripRepository()
		trips, err := userTrips.ListByUser(ctx, u.ID)
		if err != nil {
			return failure.Wrap(MsgFindUserTrips, err)
		}
		for _, ut := range trips {
			if err := userTrips.Delete(ctx, ut); err != nil {
				return failure.Wrap(MsgDeleteUserTrip, err)
			}
		}

		if err := users.Delete(ctx, u); err != nil {
			return failure.Wrap(MsgDeleteUser, err)
		}
		return nil
	})
	if err != nil {
		logger.Error("DeleteUser failed", "error", err)
		return err
	}
	if err := s.dir.Forget(ctx, u.Pseudo); err != nil {
		logger.Warn("DeleteUser: cache forget failed", "error", err)
	}
	u.Friends, u.Trips = nil, nil
	logger.Info("DeleteUser successful")
	return nil
}

// LoginByMail authenticates the user registered with mail and returns it
// filled with its trips and friends.
func (s *Service) LoginByMail(ctx context.Context, mail, password string) (*domain.User, error) {
	return s.login(ctx, "LoginByMail", mail, password, repository.UserRepository.GetByMail)
}

// LoginByPseudo authenticates the user called pseudo and returns it filled
// with its trips and friends.
func (s *Service) LoginByPseudo(ctx context.Context, pseudo, password string) (*domain.User, error) {
	return s.login(ctx, "LoginByPseudo", pseudo, password, repository.UserRepository.GetByPseudo)
}

type finder func(repository.UserRepository, context.Context, string) (*domain.User, error)

func (s *Service) login(ctx context.Context, op, identity, password string, find finder) (u *domain.User, err error) {
	log := s.logger.With("context", op, "identity", identity)
	log.Debug(op + " called")
	err = service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		found, err := find(uow.UserRepository(), ctx, identity)
		if errors.Is(err, domain.ErrNotFound) || (err == nil && found == nil) {
			utils.BurnPasswordCheck(password)
			return failure.Wrap(MsgInvalidCredentials, domain.ErrUnauthorized)
		}
		if err != nil {
			return failure.Wrapf(err, MsgFindUser, identity)
		}
		if !utils.CheckPasswordHash(password, found.Password) {
			return failure.Wrap(MsgInvalidCredentials, domain.ErrUnauthorized)
		}
		if err := fill(ctx, uow, found); err != nil {
			return err
		}
		u = found
		return nil
	})
	if err != nil {
		log.Error(op+" failed", "error", err)
		return nil, err
	}
	log.Info(op+" successful", "userID", u.ID)
	return u, nil
}

// fill attaches the trips and friendships of u.
func fill(ctx context.Context, uow repository.UnitOfWork, u *domain.User) error {
	trips, err := uow.UserTripRepository().ListByUser(ctx, u.ID)
	if err != nil {
		return failure.Wrap(MsgFillTrips, err)
	}
	friends, err := uow.FriendshipRepository().ListByUser(ctx, u.ID)
	if err != nil {
		return failure.Wrap(MsgFillFriends, err)
	}
	for _, ut := range trips {
		u.AddTrip(ut)
	}
	for _, f := range friends {
		u.AddFriend(f)
	}
	return nil
}

// GetUserInfo returns the public profile of the user called pseudo, served
// from the user directory when cached.
func (s *Service) GetUserInfo(ctx context.Context, pseudo string) (*domain.User, error) {
	logger := s.logger.With("pseudo", pseudo)
	if cached, err := s.dir.Lookup(ctx, pseudo); err != nil {
		logger.Warn("GetUserInfo: cache lookup failed", "error", err)
	} else if cached != nil {
		logger.Debug("GetUserInfo cache hit")
		return cached, nil
	}

	// Concurrent misses for one pseudo share a single load, which outlives
	// the cancellation of the caller that started it.
	loadCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(pseudo, func() (any, error) {
		ctx := loadCtx
		if cached, err := s.dir.Lookup(ctx, pseudo); err == nil && cached != nil {
			return cached, nil
		}
		var u *domain.User
		err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
			found, err := uow.UserRepository().GetByPseudo(ctx, pseudo)
			if err != nil {
				return failure.Wrapf(err, MsgFindUser, pseudo)
			}
			u = found
			return nil
		})
		if err != nil {
			return nil, err
		}
		u.Password = ""
		if err := s.dir.Put(ctx, u); err != nil {
			logger.Warn("GetUserInfo: cache put failed", "error", err)
		}
		return u, nil
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		logger.Error("GetUserInfo failed", "error", res.Err)
		return nil, res.Err
	}
	if res.Shared {
		logger.Debug("GetUserInfo shared load")
	}
	cp := *res.Val.(*domain.User)
	return &cp, nil
}

// GetUserTrips lists the trip records of userID. The returned slice is never
// nil.
func (s *Service) GetUserTrips(ctx context.Context, userID int64) ([]*domain.UserTrip, error) {
	trips := []*domain.UserTrip{}
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		list, err := uow.UserTripRepository().ListByUser(ctx, userID)
		if err != nil {
			return failure.Wrap(MsgFindUserTrips, err)
		}
		if list != nil {
			trips = list
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetUserTrips failed", "userID", userID, "error", err)
		return []*domain.UserTrip{}, err
	}
	return trips, nil
}

// GetAllUsers lists every user. The returned slice is never nil.
func (s *Service) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	users := []*domain.User{}
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		list, err := uow.UserRepository().List(ctx)
		if err != nil {
			return failure.Wrap(MsgListUsers, err)
		}
		if list != nil {
			users = list
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetAllUsers failed", "error", err)
		return []*domain.User{}, err
	}
	return users, nil
}

// RefreshCache reloads the user directory from the database.
func (s *Service) RefreshCache(ctx context.Context) error {
	users, err := s.GetAllUsers(ctx)
	if err != nil {
		return err
	}
	if err := s.dir.Refresh(ctx, users); err != nil {
		s.logger.Error("RefreshCache failed", "error", err)
		return failure.Wrap(MsgRefreshCache, err)
	}
	s.logger.Info("RefreshCache successful", "users", len(users))
	return nil
}

// ClearCache empties the user directory.
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.dir.Clear(ctx); err != nil {
		s.logger.Error("ClearCache failed", "error", err)
		return failure.Wrap(MsgClearCache, err)
	}
	return nil
}

// CacheRefreshed reports whether the user directory has been loaded.
func (s *Service) CacheRefreshed(ctx context.Context) bool {
	return s.dir.Refreshed(ctx)
}
