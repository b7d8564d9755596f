package user

import (
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/middleware"
	authsvc "github.com/amirasaad/tripool/pkg/service/auth"
	usersvc "github.com/amirasaad/tripool/pkg/service/user"
	"github.com/amirasaad/tripool/pkg/utils"
	"github.com/amirasaad/tripool/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/user", CreateUser(userSvc))
	app.Get("/users", protected, GetAllUsers(userSvc))
	app.Get("/user/:pseudo", protected, GetUser(userSvc))
	app.Get("/user/:pseudo/trips", protected, GetUserTrips(userSvc))
	app.Put("/user", protected, UpdateUser(userSvc, authSvc))
	app.Delete("/user", protected, DeleteUser(userSvc, authSvc))
}

// GetUser returns a Fiber handler for retrieving a user profile by pseudo.
// @Summary Get user by pseudo
// @Description Retrieve the public profile of a user
// @Tags users
// @Produce json
// @Param pseudo path string true "User pseudo"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /user/{pseudo} [get]
// @Security BearerAuth
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userSvc.GetUserInfo(c.Context(), c.Params("pseudo"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", user)
	}
}

// GetAllUsers lists every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /users [get]
// @Security BearerAuth
func GetAllUsers(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.GetAllUsers(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list users", err)
		}
		for _, u := range users {
			u.Password = ""
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users found", users)
	}
}

// GetUserTrips lists the trips of a user.
// @Summary List user trips
// @Tags users
// @Produce json
// @Param pseudo path string true "User pseudo"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /user/{pseudo}/trips [get]
// @Security BearerAuth
func GetUserTrips(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userSvc.GetUserInfo(c.Context(), c.Params("pseudo"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		trips, err := userSvc.GetUserTrips(c.Context(), user.ID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list user trips", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User trips found", trips)
	}
}

// CreateUser creates a new user account.
// @Summary Create a new user
// @Description Create a new user account with pseudo, mail, and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body NewUser true "User creation data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user [post]
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err // error response already written
		}
		user := &domain.User{
			Pseudo:      input.Pseudo,
			Mail:        input.Mail,
			Password:    input.Password,
			Age:         input.Age,
			Description: input.Description,
			PhoneNumber: input.PhoneNumber,
		}
		if err := userSvc.CreateUser(c.Context(), user); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		user.Password = ""
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created user", user)
	}
}

// UpdateUser updates the profile of the authenticated user.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateUserInput true "User update data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user [put]
// @Security BearerAuth
func UpdateUser(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateUserInput](c)
		if input == nil {
			return err // error response already written
		}
		_, pseudo, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		user, err := userSvc.GetUserInfo(c.Context(), pseudo)
		if err != nil {
			return common.ProblemDetailsJSON(c, "User not found", err)
		}
		if input.Mail != "" {
			user.Mail = input.Mail
		}
		if input.Age != nil {
			user.Age = *input.Age
		}
		if input.Description != "" {
			user.Description = input.Description
		}
		if input.PhoneNumber != "" {
			user.PhoneNumber = input.PhoneNumber
		}
		if input.Password != "" {
			if user.Password, err = utils.HashPassword(input.Password); err != nil {
				return common.ProblemDetailsJSON(c, "Failed to hash password", err, fiber.StatusInternalServerError)
			}
		}
		if err := userSvc.UpdateUser(c.Context(), user); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update user", err)
		}
		user.Password = ""
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated successfully", user)
	}
}

// DeleteUser deletes the authenticated user after a password confirmation.
// @Summary Delete user
// @Tags users
// @Accept json
// @Produce json
// @Param request body PasswordInput true "Password confirmation"
// @Success 204 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user [delete]
// @Security BearerAuth
func DeleteUser(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PasswordInput](c)
		if input == nil {
			return err // error response already written
		}
		_, pseudo, ok, err := common.CurrentUser(c, authSvc)
		if !ok {
			return err
		}
		user, err := authSvc.Login(c.Context(), pseudo, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid credentials", err)
		}
		if err := userSvc.DeleteUser(c.Context(), user); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "User successfully deleted", nil)
	}
}
