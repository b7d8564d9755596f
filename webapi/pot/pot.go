package pot

import (
	"context"

	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/middleware"
	authsvc "github.com/amirasaad/tripool/pkg/service/auth"
	potsvc "github.com/amirasaad/tripool/pkg/service/pot"
	"github.com/amirasaad/tripool/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, potSvc *potsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	group := app.Group("/pots", middleware.JwtProtected(cfg.Auth.Jwt))
	group.Get("/:id", GetPot(potSvc))
	group.Get("/:id/members", GetPotMembers(potSvc))
	group.Post("/:id/credit", Move(potSvc, authSvc, potSvc.Credit))
	group.Post("/:id/debit", Move(potSvc, authSvc, potSvc.Debit))
	group.Post("/:id/cancel", Cancel(potSvc, authSvc))
	group.Post("/:id/close", Close(potSvc, authSvc))
}

// GetPot returns a pot with its members.
// @Summary Get pot
// @Tags pots
// @Produce json
// @Param id path int true "Pot ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /pots/{id} [get]
// @Security BearerAuth
func GetPot(potSvc *potsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParamID(c, "id")
		if !ok {
			return err
		}
		pot, err := potSvc.GetPot(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Pot not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pot found", pot)
	}
}

// GetPotMembers lists the member contributions of a pot.
// @Summary List pot members
// @Tags pots
// @Produce json
// @Param id path int true "Pot ID"
// @Success 200 {object} common.Response
// @Router /pots/{id}/members [get]
// @Security BearerAuth
func GetPotMembers(potSvc *potsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParamID(c, "id")
		if !ok {
			return err
		}
		members, err := potSvc.GetPotMembers(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list pot members", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pot members found", members)
	}
}

type mover func(ctx context.Context, pot *domain.Pot, userID int64, amount float64) error

// Move credits or debits the caller's contribution.
// @Summary Credit or debit the caller's contribution
// @Tags pots
// @Accept json
// @Produce json
// @Param id path int true "Pot ID"
// @Param request body AmountInput true "Amount"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /pots/{id}/credit [post]
// @Router /pots/{id}/debit [post]
// @Security BearerAuth
func Move(potSvc *potsvc.Service, authSvc *authsvc.Service, move mover) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountInput](c)
		if input == nil {
			return err
		}
		id, ok, err := common.ParamID(c, "id")
		if !ok {
			return err
		}
		userID, _, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		pot, err := potSvc.GetPot(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Pot not found", err)
		}
		if pot.IsCancelled {
			return common.ProblemDetailsJSON(c, "Pot is closed for payments", nil, potsvc.MsgPotCancelled, fiber.StatusConflict)
		}
		if err := move(c.Context(), pot, userID, input.Amount); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update contribution", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Contribution updated", pot)
	}
}

// organizedPot loads pot :id and checks the caller organizes it.
func organizedPot(c *fiber.Ctx, potSvc *potsvc.Service, authSvc *authsvc.Service) (*domain.Pot, error) {
	id, ok, err := common.ParamID(c, "id")
	if !ok {
		return nil, err
	}
	_, pseudo, ok, err := common.CurrentUser(c, authSvc)
	if !ok {
		return nil, err
	}
	pot, err := potSvc.GetPot(c.Context(), id)
	if err != nil {
		return nil, common.ProblemDetailsJSON(c, "Pot not found", err)
	}
	if pot.Organizer != pseudo {
		return nil, common.ProblemDetailsJSON(c, "Forbidden", nil, "Only the organizer can change this pot", fiber.StatusForbidden)
	}
	return pot, nil
}

// Cancel cancels a pot.
// @Summary Cancel pot
// @Tags pots
// @Accept json
// @Produce json
// @Param id path int true "Pot ID"
// @Param request body CancelInput true "Reason"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /pots/{id}/cancel [post]
// @Security BearerAuth
func Cancel(potSvc *potsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CancelInput](c)
		if input == nil {
			return err
		}
		pot, err := organizedPot(c, potSvc, authSvc)
		if pot == nil {
			return err
		}
		if err := potSvc.Cancel(c.Context(), pot, input.Reason); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't cancel pot", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pot cancelled", pot)
	}
}

// Close settles a pot.
// @Summary Close pot
// @Tags pots
// @Param id path int true "Pot ID"
// @Failure 403 {object} common.ProblemDetails
// @Failure 501 {object} common.ProblemDetails
// @Router /pots/{id}/close [post]
// @Security BearerAuth
func Close(potSvc *potsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pot, err := organizedPot(c, potSvc, authSvc)
		if pot == nil {
			return err
		}
		if err := potSvc.Close(c.Context(), pot); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't close pot", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pot closed", pot)
	}
}
