package trip

import (
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/middleware"
	authsvc "github.com/amirasaad/tripool/pkg/service/auth"
	tripsvc "github.com/amirasaad/tripool/pkg/service/trip"
	"github.com/amirasaad/tripool/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, tripSvc *tripsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/trips", GetTrips(tripSvc))
	app.Get("/trips/:id", GetTrip(tripSvc))
	app.Post("/trips", protected, CreateTrip(tripSvc, authSvc))
	app.Delete("/trips/:id", protected, DeleteTrip(tripSvc, authSvc))
	app.Post("/trips/:id/participants", protected, Participate(tripSvc, authSvc))
	app.Delete("/trips/:id/participants", protected, Quit(tripSvc, authSvc))
	app.Put("/trips/:id/price", protected, UpdatePrice(tripSvc, authSvc))
	app.Put("/trips/:id/capacity", protected, UpdateCapacity(tripSvc, authSvc))
}

// GetTrips lists every trip.
// @Summary List trips
// @Tags trips
// @Produce json
// @Success 200 {object} common.Response
// @Router /trips [get]
func GetTrips(tripSvc *tripsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		trips, err := tripSvc.GetTrips(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list trips", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trips found", trips)
	}
}

// GetTrip returns a trip with its participants and pot.
// @Summary Get trip
// @Tags trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /trips/{id} [get]
func GetTrip(tripSvc *tripsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParamID(c, "id")
		if !ok {
			return err
		}
		trip, err := tripSvc.GetTrip(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Trip not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trip found", trip)
	}
}

// CreateTrip creates a trip organized by the caller, with its pot.
// @Summary Create trip
// @Tags trips
// @Accept json
// @Produce json
// @Param request body NewTrip true "Trip data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /trips [post]
// @Security BearerAuth
func CreateTrip(tripSvc *tripsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewTrip](c)
		if input == nil {
			return err
		}
		userID, pseudo, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		trip := &domain.Trip{
			Name:              input.Name,
			Price:             input.Price,
			StartDate:         input.StartDate,
			EndDate:           input.EndDate,
			ValidityDate:      input.ValidityDate,
			NumberMaxOfPeople: input.NumberMaxOfPeople,
			Description:       input.Description,
			Organizer:         pseudo,
			Location:          input.Location,
		}
		if err := tripSvc.CreateTrip(c.Context(), trip, userID); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create trip", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created trip", trip)
	}
}

// organizedTrip loads trip :id and checks the caller organizes it. On
// failure the response is already written and trip is nil.
func organizedTrip(c *fiber.Ctx, tripSvc *tripsvc.Service, authSvc *authsvc.Service) (*domain.Trip, error) {
	id, ok, err := common.ParamID(c, "id")
	if !ok {
		return nil, err
	}
	_, pseudo, ok, err := common.CurrentUser(c, authSvc)
	if !ok {
		return nil, err
	}
	trip, err := tripSvc.GetTrip(c.Context(), id)
	if err != nil {
		return nil, common.ProblemDetailsJSON(c, "Trip not found", err)
	}
	if trip.Organizer != pseudo {
		return nil, common.ProblemDetailsJSON(c, "Forbidden", nil, "Only the organizer can change this trip", fiber.StatusForbidden)
	}
	return trip, nil
}

// DeleteTrip deletes a trip and everything attached to it.
// @Summary Delete trip
// @Tags trips
// @Param id path int true "Trip ID"
// @Success 204 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /trips/{id} [delete]
// @Security BearerAuth
func DeleteTrip(tripSvc *tripsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		trip, err := organizedTrip(c, tripSvc, authSvc)
		if trip == nil {
			return err
		}
		if err := tripSvc.DeleteTrip(c.Context(), trip); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete trip", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Trip deleted", nil)
	}
}

// Participate adds the caller to a trip.
// @Summary Join trip
// @Tags trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /trips/{id}/participants [post]
// @Security BearerAuth
func Participate(tripSvc *tripsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParamID(c, "id")
		if !ok {
			return err
		}
		userID, pseudo, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		trip, err := tripSvc.GetTrip(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Trip not found", err)
		}
		if len(trip.Participants) >= trip.NumberMaxOfPeople {
			return common.ProblemDetailsJSON(c, "Couldn't join trip", nil, tripsvc.MsgTripFull, fiber.StatusConflict)
		}
		if err := tripSvc.Participate(c.Context(), trip, userID, pseudo); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't join trip", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Joined trip", trip)
	}
}

// Quit removes the caller from a trip.
// @Summary Leave trip
// @Tags trips
// @Produce json
// @Param id path int true "Trip ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /trips/{id}/participants [delete]
// @Security BearerAuth
func Quit(tripSvc *tripsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParamID(c, "id")
		if !ok {
			return err
		}
		userID, pseudo, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		trip, err := tripSvc.GetTrip(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Trip not found", err)
		}
		if err := tripSvc.Quit(c.Context(), trip, userID, pseudo); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't leave trip", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Left trip", trip)
	}
}

// UpdatePrice changes the trip price and the share owed by each member.
// @Summary Update trip price
// @Tags trips
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Param request body PriceInput true "New price"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /trips/{id}/price [put]
// @Security BearerAuth
func UpdatePrice(tripSvc *tripsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PriceInput](c)
		if input == nil {
			return err
		}
		trip, err := organizedTrip(c, tripSvc, authSvc)
		if trip == nil {
			return err
		}
		if err := tripSvc.UpdatePrice(c.Context(), trip, input.Price); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update trip price", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trip price updated", trip)
	}
}

// UpdateCapacity changes the number of people allowed on the trip.
// @Summary Update trip capacity
// @Tags trips
// @Accept json
// @Produce json
// @Param id path int true "Trip ID"
// @Param request body CapacityInput true "New capacity"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /trips/{id}/capacity [put]
// @Security BearerAuth
func UpdateCapacity(tripSvc *tripsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CapacityInput](c)
		if input == nil {
			return err
		}
		trip, err := organizedTrip(c, tripSvc, authSvc)
		if trip == nil {
			return err
		}
		if err := tripSvc.UpdateAllowedNumberOfPeople(c.Context(), trip, input.NumberMaxOfPeople); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update trip capacity", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Trip capacity updated", trip)
	}
}
