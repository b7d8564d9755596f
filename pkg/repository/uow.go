package repository

import "context"

// UnitOfWork defines the transaction boundary and the repository access bound
// to it.
//
// Do runs fn inside one transaction: every write made through the
// repositories of the UnitOfWork handed to fn commits when fn returns nil and
// is discarded when fn returns an error or panics.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() UserRepository
	FriendshipRepository() FriendshipRepository
	TripRepository() TripRepository
	TripParticipantRepository() TripParticipantRepository
	PotRepository() PotRepository
	PotUserRepository() PotUserRepository
	UserTripRepository() UserTripRepository
}
