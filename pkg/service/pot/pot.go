// Package pot provides the pot operations: member credits and debits, pot
// lookup and cancellation.
package pot

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
	MsgUserNotInPot     = "Unable to find user in the pot"
	MsgUpdatePotUser    = "Unable to update pot user"
	MsgUpdatePot        = "Unable to debit pot"
	MsgPotCancelled     = "Pot is cancelled"
	MsgCancelPot        = "Unable to cancel pot"
	MsgPotNotFound      = "Unable to find pot with id: %d"
	MsgPotUsersNotFound = "Unable to find users for pot with id: %d"
)

// Service provides the pot operations.
type Service struct {
	uow    repository.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new pot Service.
func New(
	uow repository.UnitOfWork,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// movement describes one signed change of a member contribution.
type movement struct {
	member   func(pu *domain.PotUser)
	apply    func(p *domain.Pot)
	rollback func(p *domain.Pot)
}

// Credit adds amount to the contribution of userID and to the pot total.
func (s *Service) Credit(ctx context.Context, pot *domain.Pot, userID int64, amount float64) error {
	return s.move(ctx, "Credit", pot, userID, amount, movement{
		member:   func(pu *domain.PotUser) { pu.Amount += amount },
		apply:    func(p *domain.Pot) { p.CurrentAmount += amount },
		rollback: func(p *domain.Pot) { p.CurrentAmount -= amount },
	})
}

// Debit removes amount from the contribution of userID and from the pot
// total.
func (s *Service) Debit(ctx context.Context, pot *domain.Pot, userID int64, amount float64) error {
	return s.move(ctx, "Debit", pot, userID, amount, movement{
		member:   func(pu *domain.PotUser) { pu.Amount -= amount },
		apply:    func(p *domain.Pot) { p.CurrentAmount -= amount },
		rollback: func(p *domain.Pot) { p.CurrentAmount += amount },
	})
}

func (s *Service) move(
	ctx context.Context,
	op string,
	pot *domain.Pot,
	userID int64,
	amount float64,
	m movement,
) error {
	logger := s.logger.With("potID", pot.ID, "userID", userID, "amount", amount)
	logger.Info(op + " started")
	if pot.IsCancelled {
		logger.Error(op+" failed: pot cancelled", "reason", pot.CancellationReason)
		return failure.New(MsgPotCancelled)
	}

	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		potUsers := uow.PotUserRepository()
		member, err := potUsers.Get(ctx, pot.ID, userID)
		if err != nil {
			return failure.Wrap(MsgUserNotInPot, err)
		}
		if member == nil {
			return failure.New(MsgUserNotInPot)
		}

		m.member(member)
		member.RefreshPayment()
		if err := potUsers.Update(ctx, member); err != nil {
			return failure.Wrap(MsgUpdatePotUser, err)
		}
		if p := pot.Participant(userID); p != nil && p != member {
			*p = *member
		}

		m.apply(pot)
		if err := uow.PotRepository().Update(ctx, pot); err != nil {
			m.rollback(pot)
			return failure.Wrap(MsgUpdatePot, err)
		}
		return nil
	})
	if err != nil {
		logger.Error(op+" failed", "error", err)
		return err
	}
	logger.Info(op+" successful", "currentAmount", pot.CurrentAmount)
	return nil
}

// GetPot loads a pot together with its members.
func (s *Service) GetPot(ctx context.Context, potID int64) (pot *domain.Pot, err error) {
	logger := s.logger.With("potID", potID)
	err = service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		p, err := uow.PotRepository().Get(ctx, potID)
		if err != nil || p == nil {
			return failure.Wrapf(err, MsgPotNotFound, potID)
		}
		members, err := uow.PotUserRepository().ListByPot(ctx, potID)
		if err != nil {
			return failure.Wrapf(err, MsgPotUsersNotFound, potID)
		}
		for _, pu := range members {
			p.AddParticipant(pu)
		}
		pot = p
		return nil
	})
	if err != nil {
		logger.Error("GetPot failed", "error", err)
		return nil, err
	}
	return pot, nil
}

// GetPotMembers lists the members of a pot. The returned slice is never nil.
func (s *Service) GetPotMembers(ctx context.Context, potID int64) ([]*domain.PotUser, error) {
	members := []*domain.PotUser{}
	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		list, err := uow.PotUserRepository().ListByPot(ctx, potID)
		if err != nil {
			return failure.Wrapf(err, MsgPotUsersNotFound, potID)
		}
		if list != nil {
			members = list
		}
		return nil
	})
	if err != nil {
		s.logger.Error("GetPotMembers failed", "potID", potID, "error", err)
		return []*domain.PotUser{}, err
	}
	return members, nil
}

// Cancel marks the pot cancelled with reason. The in-memory pot is restored
// when the update fails.
func (s *Service) Cancel(ctx context.Context, pot *domain.Pot, reason string) error {
	logger := s.logger.With("potID", pot.ID)
	logger.Info("Cancel started", "reason", reason)
	prevCancelled, prevReason, prevDate := pot.IsCancelled, pot.CancellationReason, pot.CancellationDate

	err := service.Transact(ctx, s.uow, func(uow repository.UnitOfWork) error {
		pot.IsCancelled = true
		pot.CancellationReason = reason
		pot.CancellationDate = s.clock.Now()
		if err := uow.PotRepository().Update(ctx, pot); err != nil {
			pot.IsCancelled, pot.CancellationReason, pot.CancellationDate = prevCancelled, prevReason, prevDate
			return failure.Wrap(MsgCancelPot, err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Cancel failed", "error", err)
		return err
	}
	logger.Info("Cancel successful")
	return nil
}

// Close settles a pot. Settlement is not supported yet.
func (s *Service) Close(ctx context.Context, pot *domain.Pot) error {
	s.logger.Warn("Close called", "potID", pot.ID)
	return failure.Wrap("Closing a pot is not supported", domain.ErrNotImplemented)
}
