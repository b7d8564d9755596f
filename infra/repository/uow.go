package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do share the transaction session.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a transaction, committing when fn returns nil and rolling
// back on error or panic.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) UserRepository() repository.UserRepository {
	return NewUserRepository(u.session())
}

func (u *UoW) FriendshipRepository() repository.FriendshipRepository {
	return NewFriendshipRepository(u.session())
}

func (u *UoW) TripRepository() repository.TripRepository {
	return NewTripRepository(u.session())
}

func (u *UoW) TripParticipantRepository() repository.TripParticipantRepository {
	return NewTripParticipantRepository(u.session())
}

func (u *UoW) PotRepository() repository.PotRepository {
	return NewPotRepository(u.session())
}

func (u *UoW) PotUserRepository() repository.PotUserRepository {
	return NewPotUserRepository(u.session())
}

func (u *UoW) UserTripRepository() repository.UserTripRepository {
	return NewUserTripRepository(u.session())
}

var _ repository.UnitOfWork = (*UoW)(nil)
