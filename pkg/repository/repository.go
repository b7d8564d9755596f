// Package repository declares the single-entity persistence contracts used by
// the services. Every method runs on the session it was obtained from, so
// repositories taken from a UnitOfWork inside Do share its transaction.
package repository

import (
	"context"

	"github.com/amirasaad/tripool/pkg/domain"
)

// UserRepository persists users. Save allocates the id.
type UserRepository interface {
	Save(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	GetByPseudo(ctx context.Context, pseudo string) (*domain.User, error)
	GetByMail(ctx context.Context, mail string) (*domain.User, error)
}

// FriendshipRepository persists directed friendship rows keyed by
// (UserID, FriendName).
type FriendshipRepository interface {
	Save(ctx context.Context, f *domain.Friendship) error
	Update(ctx context.Context, f *domain.Friendship) error
	Delete(ctx context.Context, f *domain.Friendship) error
	Get(ctx context.Context, userID int64, friendName string) (*domain.Friendship, error)
	List(ctx context.Context) ([]*domain.Friendship, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Friendship, error)
	// ListRequested returns the rows of userID it sent and that are still waiting.
	ListRequested(ctx context.Context, userID int64) ([]*domain.Friendship, error)
	// ListWaiting returns the rows of userID it received and has not answered.
	ListWaiting(ctx context.Context, userID int64) ([]*domain.Friendship, error)
}

// TripRepository persists trips. Save allocates the id.
type TripRepository interface {
	Save(ctx context.Context, t *domain.Trip) error
	Update(ctx context.Context, t *domain.Trip) error
	Delete(ctx context.Context, t *domain.Trip) error
	Get(ctx context.Context, id int64) (*domain.Trip, error)
	List(ctx context.Context) ([]*domain.Trip, error)
}

// TripParticipantRepository persists participation rows keyed by
// (TripID, UserPseudo).
type TripParticipantRepository interface {
	Save(ctx context.Context, p *domain.TripParticipant) error
	Update(ctx context.Context, p *domain.TripParticipant) error
	Delete(ctx context.Context, p *domain.TripParticipant) error
	Get(ctx context.Context, tripID int64, pseudo string) (*domain.TripParticipant, error)
	List(ctx context.Context) ([]*domain.TripParticipant, error)
	ListByTrip(ctx context.Context, tripID int64) ([]*domain.TripParticipant, error)
}

// PotRepository persists pots. Save allocates the id.
type PotRepository interface {
	Save(ctx context.Context, p *domain.Pot) error
	Update(ctx context.Context, p *domain.Pot) error
	Delete(ctx context.Context, p *domain.Pot) error
	Get(ctx context.Context, id int64) (*domain.Pot, error)
	List(ctx context.Context) ([]*domain.Pot, error)
	GetByTrip(ctx context.Context, tripID int64) (*domain.Pot, error)
}

// PotUserRepository persists member contribution rows keyed by (PotID, UserID).
type PotUserRepository interface {
	Save(ctx context.Context, pu *domain.PotUser) error
	Update(ctx context.Context, pu *domain.PotUser) error
	Delete(ctx context.Context, pu *domain.PotUser) error
	Get(ctx context.Context, potID, userID int64) (*domain.PotUser, error)
	List(ctx context.Context) ([]*domain.PotUser, error)
	ListByPot(ctx context.Context, potID int64) ([]*domain.PotUser, error)
}

// UserTripRepository persists per-user trip rows keyed by (UserID, TripName).
type UserTripRepository interface {
	Save(ctx context.Context, ut *domain.UserTrip) error
	Update(ctx context.Context, ut *domain.UserTrip) error
	Delete(ctx context.Context, ut *domain.UserTrip) error
	Get(ctx context.Context, userID int64, tripName string) (*domain.UserTrip, error)
	List(ctx context.Context) ([]*domain.UserTrip, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.UserTrip, error)
	ListByTripName(ctx context.Context, tripName string) ([]*domain.UserTrip, error)
}
