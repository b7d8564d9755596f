package friendship

import (
	"context"

	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/middleware"
	authsvc "github.com/amirasaad/tripool/pkg/service/auth"
	friendshipsvc "github.com/amirasaad/tripool/pkg/service/friendship"
	"github.com/amirasaad/tripool/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, friendshipSvc *friendshipsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	group := app.Group("/friendships", middleware.JwtProtected(cfg.Auth.Jwt))
	group.Get("/", List(authSvc, friendshipSvc.GetUserFriendships))
	group.Get("/requested", List(authSvc, friendshipSvc.GetRequestedFriendships))
	group.Get("/waiting", List(authSvc, friendshipSvc.GetWaitingFriendships))
	group.Get("/of/:pseudo", ListByPseudo(friendshipSvc))
	group.Get("/:friend", GetFriendship(friendshipSvc, authSvc))
	group.Post("/", RequestFriendship(friendshipSvc, authSvc))
	group.Put("/:friend/accept", AcceptFriendship(friendshipSvc, authSvc))
	group.Delete("/:friend", DenyFriendship(friendshipSvc, authSvc))
}

type lister func(ctx context.Context, userID int64) ([]*domain.Friendship, error)

// List returns the friendships of the authenticated user selected by find.
// @Summary List friendships
// @Description All, requested (sent) or waiting (received) friendships of the caller
// @Tags friendships
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /friendships [get]
// @Router /friendships/requested [get]
// @Router /friendships/waiting [get]
// @Security BearerAuth
func List(authSvc *authsvc.Service, find lister) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		friendships, err := find(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list friendships", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Friendships found", friendships)
	}
}

// ListByPseudo returns the friendships of another user.
// @Summary List the friendships of a user
// @Tags friendships
// @Produce json
// @Param pseudo path string true "User pseudo"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /friendships/of/{pseudo} [get]
// @Security BearerAuth
func ListByPseudo(friendshipSvc *friendshipsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		friendships, err := friendshipSvc.GetUserFriendshipsByPseudo(c.Context(), c.Params("pseudo"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list friendships", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Friendships found", friendships)
	}
}

// GetFriendship returns the caller's friendship with friend.
// @Summary Get friendship
// @Tags friendships
// @Produce json
// @Param friend path string true "Friend pseudo"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /friendships/{friend} [get]
// @Security BearerAuth
func GetFriendship(friendshipSvc *friendshipsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		f, err := friendshipSvc.GetFriendship(c.Context(), userID, c.Params("friend"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Friendship not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Friendship found", f)
	}
}

// RequestFriendship sends a friendship request.
// @Summary Request friendship
// @Tags friendships
// @Accept json
// @Produce json
// @Param request body RequestInput true "Friend to request"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /friendships [post]
// @Security BearerAuth
func RequestFriendship(friendshipSvc *friendshipsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RequestInput](c)
		if input == nil {
			return err
		}
		userID, pseudo, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		f := &domain.Friendship{UserID: userID, FriendName: input.FriendName, IsRequested: true, IsWaiting: true}
		if err := friendshipSvc.RequestFriendship(c.Context(), f, pseudo); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't request friendship", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Friendship requested", f)
	}
}

// AcceptFriendship accepts a received request.
// @Summary Accept friendship
// @Tags friendships
// @Produce json
// @Param friend path string true "Friend pseudo"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /friendships/{friend}/accept [put]
// @Security BearerAuth
func AcceptFriendship(friendshipSvc *friendshipsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, pseudo, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		f, err := friendshipSvc.GetFriendship(c.Context(), userID, c.Params("friend"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Friendship not found", err)
		}
		if err := friendshipSvc.AcceptFriendship(c.Context(), f, pseudo); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't accept friendship", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Friendship accepted", f)
	}
}

// DenyFriendship refuses a request or ends a friendship.
// @Summary Deny friendship
// @Tags friendships
// @Param friend path string true "Friend pseudo"
// @Success 204 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /friendships/{friend} [delete]
// @Security BearerAuth
func DenyFriendship(friendshipSvc *friendshipsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, pseudo, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		f, err := friendshipSvc.GetFriendship(c.Context(), userID, c.Params("friend"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Friendship not found", err)
		}
		if err := friendshipSvc.DenyFriendship(c.Context(), f, pseudo); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't deny friendship", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Friendship denied", nil)
	}
}
