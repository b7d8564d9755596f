// Package trip provides the trip operations. A trip is created and destroyed
// together with its pot, its participants and the per-user trip records.
package trip

import (
	"context"
	"log/slog"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/failure"
	"github.com/amirasaad/tripool/pkg/repository"
	"github.com/amirasaad/tripool/pkg/service"
)

const (
	MsgInvalidTrip           = "Invalid trip"
	MsgSaveTrip              = "Unable to save trip"
	MsgSavePot               = "Unable to save pot"
	MsgSaveUserTrip          = "Unable to save user trip"
	MsgSaveTripParticipant   = "Unable to save trip participant"
	MsgSavePotUser           = "Unable to save pot user"
	MsgTripFull              = "Trip is full"
	MsgFindParticipants      = "Unable to find trip participants"
	MsgFindUserTrips         = "Unable to find user trips"
	MsgFindTripPot           = "Unable to find trip pot"
	MsgFindPotUsers          = "Unable to find pot users"
	MsgFindPotUser           = "Unable to find user in the pot"
	MsgDeleteTripParticipant = "Unable to delete trip participant"
	MsgDeleteUserTrip        = "Unable to delete user trip"
	MsgDeletePotUser         = "Unable to delete pot user"
	MsgDeletePot             = "Unable to delete pot"
	MsgDeleteTrip            = "Unable to delete trip"
	MsgUpdatePotUser         = "Unable to update pot user"
	MsgUpdatePot             = "Unable to update pot"
	MsgUpdateTrip            = "Unable to update trip"
	MsgInvalidPeopleCount    = "Number of people must be at least 1"
	MsgTripNotFound          = "Unable to find trip with id: %d"
	MsgTripParticipants      = "Unable to find participants for trip with id: %d"
	MsgTripPotNotFound       = "Unable to find pot for trip with id: %d"
	MsgTripPotUsers          = "Unable to find users for pot with id: %d"
)

// Service provides the trip operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new trip Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateTrip saves trip organized by userID along with its pot, the
// organizer's user trip, participation and pot membership. The in-memory
// graph is wired only once every row is saved.
func (s *Service) CreateTrip(ctx context.Context, trip *domain.Trip, userID int64) error {
	logger := s.logger.With("trip", trip.Name, "userID", userID)
	logger.Info("CreateTrip started")
	if err := domain.Validate(trip); err != nil {
		logger.Error("CreateTrip failed: validation", "error", err)
		return failure.Wrap(MsgInvalidTrip, err)
	}

	prevID := trip.ID
	var (
		pot         *domain.Pot
		participant *domain.TripParticipant
		member      *domain.PotUser
	)
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		if err := uow.TripRepository().Save(ctx, trip); err != nil {
			return failure.Wrap(MsgSaveTrip, err)
		}

		pot = domain.NewTripPot(trip)
		if err := uow.PotRepository().Save(ctx, pot); err != nil {
			return failure.Wrap(MsgSavePot, err)
		}

		organized := &domain.UserTrip{UserID: userID, TripName: trip.Name, HasOrganized: true}
		if err := uow.UserTripRepository().Save(ctx, organized); err != nil {
			return failure.Wrap(MsgSaveUserTrip, err)
		}

		participant = &domain.TripParticipant{TripID: trip.ID, UserPseudo: trip.Organizer}
		if err := uow.TripParticipantRepository().Save(ctx, participant); err != nil {
			return failure.Wrap(MsgSaveTripParticipant, err)
		}

		member = domain.NewPotUser(pot.ID, userID, trip.SharePrice())
		if err := uow.PotUserRepository().Save(ctx, member); err != nil {
			return failure.Wrap(MsgSavePotUser, err)
		}
		return nil
	})
	if err != nil {
		trip.ID = prevID
		logger.Error("CreateTrip failed", "error", err)
		return err
	}

	trip.TripPot = pot
	trip.AddParticipant(participant)
	pot.AddParticipant(member)
	logger.Info("CreateTrip successful", "tripID", trip.ID, "potID", pot.ID)
	return nil
}

// DeleteTrip removes the trip with its participants, user trips, pot members
// and pot. Nothing is removed unless every step succeeds.
func (s *Service) DeleteTrip(ctx context.Context, trip *domain.Trip) error {
	logger := s.logger.With("tripID", trip.ID, "trip", trip.Name)
	logger.Info("DeleteTrip started")
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		participants := uow.TripParticipantRepository()
		list, err := participants.ListByTrip(ctx, trip.ID)
		if err != nil {
			return failure.Wrap(MsgFindParticipants, err)
		}
		for _, p := range list {
			if err := participants.Delete(ctx, p); err != nil {
				return failure.Wrap(MsgDeleteTripParticipant, err)
			}
		}

		userTrips := uow.UserTripRepository()
		records, err := userTrips.ListByTripName(ctx, trip.Name)
		if err != nil {
			return failure.Wrap(MsgFindUserTrips, err)
		}
		for _, ut := range records {
			if err := userTrips.Delete(ctx, ut); err != nil {
				return failure.Wrap(MsgDeleteUserTrip, err)
			}
		}

		pot, err := uow.PotRepository().GetByTrip(ctx, trip.ID)
		if err != nil {
			return failure.Wrap(MsgFindTripPot, err)
		}
		potUsers := uow.PotUserRepository()
		members, err := potUsers.ListByPot(ctx, pot.ID)
		if err != nil {
			return failure.Wrap(MsgFindPotUsers, err)
		}
		for _, pu := range members {
			if err := potUsers.Delete(ctx, pu); err != nil {
				return failure.Wrap(MsgDeletePotUser, err)
			}
		}
		if err := uow.PotRepository().Delete(ctx, pot); err != nil {
			return failure.Wrap(MsgDeletePot, err)
		}

		if err := uow.TripRepository().Delete(ctx, trip); err != nil {
			return failure.Wrap(MsgDeleteTrip, err)
		}
		return nil
	})
	if err != nil {
		logger.Error("DeleteTrip failed", "error", err)
		return err
	}
	logger.Info("DeleteTrip successful")
	return nil
}

// Participate adds userID, known as pseudo, to trip and to its pot.
func (s *Service) Participate(ctx context.Context, trip *domain.Trip, userID int64, pseudo string) error {
	logger := s.logger.With("tripID", trip.ID, "userID", userID, "pseudo", pseudo)
	logger.Info("Participate started")

	var (
		pot         *domain.Pot
		participant *domain.TripParticipant
		member      *domain.PotUser
	)
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		participants := uow.TripParticipantRepository()
		list, err := participants.ListByTrip(ctx, trip.ID)
		if err != nil {
			return failure.Wrap(MsgFindParticipants, err)
		}
		if len(list) >= trip.NumberMaxOfPeople {
			return failure.New(MsgTripFull)
		}

		participant = &domain.TripParticipant{TripID: trip.ID, UserPseudo: pseudo}
		if err := participants.Save(ctx, participant); err != nil {
			return failure.Wrap(MsgSaveTripParticipant, err)
		}
		if err := uow.UserTripRepository().Save(ctx, &domain.UserTrip{UserID: userID, TripName: trip.Name}); err != nil {
			return failure.Wrap(MsgSaveUserTrip, err)
		}

		if pot, err = tripPot(ctx, uow, trip); err != nil {
			return err
		}
		member = domain.NewPotUser(pot.ID, userID, trip.SharePrice())
		if err := uow.PotUserRepository().Save(ctx, member); err != nil {
			return failure.Wrap(MsgSavePotUser, err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Participate failed", "error", err)
		return err
	}

	trip.AddParticipant(participant)
	trip.TripPot = pot
	pot.AddParticipant(member)
	logger.Info("Participate successful")
	return nil
}

// Quit removes userID, known as pseudo, from trip and from its pot. What the
// user already paid is taken out of the pot total.
func (s *Service) Quit(ctx context.Context, trip *domain.Trip, userID int64, pseudo string) error {
	logger := s.logger.With("tripID", trip.ID, "userID", userID, "pseudo", pseudo)
	logger.Info("Quit started")

	var pot *domain.Pot
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		participant := &domain.TripParticipant{TripID: trip.ID, UserPseudo: pseudo}
		if err := uow.TripParticipantRepository().Delete(ctx, participant); err != nil {
			return failure.Wrap(MsgDeleteTripParticipant, err)
		}
		if err := uow.UserTripRepository().Delete(ctx, &domain.UserTrip{UserID: userID, TripName: trip.Name}); err != nil {
			return failure.Wrap(MsgDeleteUserTrip, err)
		}

		var err error
		if pot, err = tripPot(ctx, uow, trip); err != nil {
			return err
		}
		potUsers := uow.PotUserRepository()
		member, err := potUsers.Get(ctx, pot.ID, userID)
		if err != nil {
			return failure.Wrap(MsgFindPotUser, err)
		}
		if err := potUsers.Delete(ctx, member); err != nil {
			return failure.Wrap(MsgDeletePotUser, err)
		}

		if paid := member.Amount; paid > 0 {
			pot.CurrentAmount -= paid
			if err := uow.PotRepository().Update(ctx, pot); err != nil {
				pot.CurrentAmount += paid
				return failure.Wrap(MsgUpdatePot, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Quit failed", "error", err)
		return err
	}

	trip.RemoveParticipant(pseudo)
	trip.TripPot = pot
	pot.RemoveParticipant(userID)
	logger.Info("Quit successful")
	return nil
}

// UpdatePrice sets the trip price to amount and spreads it over the pot
// members. The pot and the trip updates are both attempted and their failures
// reported together.
func (s *Service) UpdatePrice(ctx context.Context, trip *domain.Trip, amount float64) error {
	logger := s.logger.With("tripID", trip.ID, "price", amount)
	logger.Info("UpdatePrice started")
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		pot, err := tripPot(ctx, uow, trip)
		if err != nil {
			return err
		}
		restoreTargets, err := updateTargets(ctx, uow, pot, domain.SplitPrice(amount, trip.NumberMaxOfPeople))
		if err != nil {
			return err
		}

		var errs error
		prevTarget := pot.TargetAmount
		prevPrice := trip.Price
		pot.TargetAmount = amount
		if err := uow.PotRepository().Update(ctx, pot); err != nil {
			errs = failure.Wrap(MsgUpdatePot, err)
		}

		trip.Price = amount
		if err := uow.TripRepository().Update(ctx, trip); err != nil {
			errs = failure.Append(errs, failure.Wrap(MsgUpdateTrip, err))
		}
		if errs != nil {
			// The whole unit of work rolls back, so every field written
			// above goes back too.
			trip.Price = prevPrice
			pot.TargetAmount = prevTarget
			restoreTargets()
		}
		return errs
	})
	if err != nil {
		logger.Error("UpdatePrice failed", "error", err)
		return err
	}
	logger.Info("UpdatePrice successful")
	return nil
}

// UpdateAllowedNumberOfPeople changes the trip capacity and the share owed by
// each pot member.
func (s *Service) UpdateAllowedNumberOfPeople(ctx context.Context, trip *domain.Trip, count int) error {
	logger := s.logger.With("tripID", trip.ID, "count", count)
	logger.Info("UpdateAllowedNumberOfPeople started")
	if count < 1 {
		return failure.Wrap(MsgInvalidPeopleCount, domain.ErrValidation)
	}
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		pot, err := tripPot(ctx, uow, trip)
		if err != nil {
			return err
		}
		restoreTargets, err := updateTargets(ctx, uow, pot, domain.SplitPrice(trip.Price, count))
		if err != nil {
			return err
		}

		prevTarget := pot.TargetAmount
		pot.TargetAmount = trip.Price
		if err := uow.PotRepository().Update(ctx, pot); err != nil {
			pot.TargetAmount = prevTarget
			restoreTargets()
			return failure.Wrap(MsgUpdatePot, err)
		}

		prevCount := trip.NumberMaxOfPeople
		trip.NumberMaxOfPeople = count
		if err := uow.TripRepository().Update(ctx, trip); err != nil {
			trip.NumberMaxOfPeople = prevCount
			pot.TargetAmount = prevTarget
			restoreTargets()
			return failure.Wrap(MsgUpdateTrip, err)
		}
		return nil
	})
	if err != nil {
		logger.Error("UpdateAllowedNumberOfPeople failed", "error", err)
		return err
	}
	logger.Info("UpdateAllowedNumberOfPeople successful")
	return nil
}

// GetTrip loads the trip aggregate: participants, pot and pot members.
func (s *Service) GetTrip(ctx context.Context, tripID int64) (trip *domain.Trip, err error) {
	err = service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		t, err := uow.TripRepository().Get(ctx, tripID)
		if err != nil {
			return failure.Wrapf(err, MsgTripNotFound, tripID)
		}
		participants, err := uow.TripParticipantRepository().ListByTrip(ctx, tripID)
		if err != nil {
			return failure.Wrapf(err, MsgTripParticipants, tripID)
		}
		pot, err := uow.PotRepository().GetByTrip(ctx, tripID)
		if err != nil {
			return failure.Wrapf(err, MsgTripPotNotFound, tripID)
		}
		members, err := uow.PotUserRepository().ListByPot(ctx, pot.ID)
		if err != nil {
			return failure.Wrapf(err, MsgTripPotUsers, pot.ID)
		}

		for _, p := range participants {
			t.AddParticipant(p)
		}
		for _, pu := range members {
			pot.AddParticipant(pu)
		}
		t.TripPot = pot
		trip = t
		return nil
	})
	if err != nil {
		s.logger.Error("GetTrip failed", "tripID", tripID, "error", err)
		return nil, err
	}
	return trip, nil
}

// GetTrips lists every trip without its aggregate.
func (s *Service) GetTrips(ctx context.Context) (trips []*domain.Trip, err error) {
	err = service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		trips, err = uow.TripRepository().List(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("GetTrips failed", "error", err)
		return []*domain.Trip{}, err
	}
	return trips, nil
}

// tripPot returns the pot attached to trip, loading it when the trip was not
// fetched with its aggregate.
func tripPot(ctx context.Context, uow repository.UnitOfWork, trip *domain.Trip) (*domain.Pot, error) {
	if trip.TripPot != nil {
		return trip.TripPot, nil
	}
	pot, err := uow.PotRepository().GetByTrip(ctx, trip.ID)
	if err != nil {
		return nil, failure.Wrap(MsgFindTripPot, err)
	}
	return pot, nil
}

// updateTargets persists share as the target of every pot member. The
// returned func puts back the targets written in memory; it has already run
// when err is non-nil.
func updateTargets(
	ctx context.Context,
	uow repository.UnitOfWork,
	pot *domain.Pot,
	share float64,
) (restore func(), err error) {
	potUsers := uow.PotUserRepository()
	members, err := potUsers.ListByPot(ctx, pot.ID)
	if err != nil {
		return func() {}, failure.Wrap(MsgFindPotUsers, err)
	}
	var undo []func()
	restore = func() {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	}
	for _, pu := range members {
		undo = append(undo, setTarget(pu, share))
		if err := potUsers.Update(ctx, pu); err != nil {
			restore()
			return func() {}, failure.Wrap(MsgUpdatePotUser, err)
		}
		if p := pot.Participant(pu.UserID); p != nil && p != pu {
			undo = append(undo, setTarget(p, share))
		}
	}
	return restore, nil
}

func setTarget(pu *domain.PotUser, target float64) (undo func()) {
	prev := pu.TargetAmount
	pu.TargetAmount = target
	pu.RefreshPayment()
	return func() {
		pu.TargetAmount = prev
		pu.RefreshPayment()
	}
}
