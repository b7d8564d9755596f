// Package common holds the response envelopes, request binding and error
// mapping shared by the webapi handlers.
package common

import (
	"errors"
	"strconv"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/failure"
	authsvc "github.com/amirasaad/tripool/pkg/service/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var validate = validator.New()

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string   `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string   `json:"title"`              // Short, human-readable summary
	Status   int      `json:"status"`             // HTTP status code
	Detail   string   `json:"detail,omitempty"`   // Human-readable explanation
	Instance string   `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   []string `json:"errors,omitempty"`   // Ordered failure messages
}

// SuccessResponseJSON writes a Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	if status == fiber.StatusNoContent {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ProblemDetailsJSON writes an RFC 9457 problem. The optional args are a
// string detail and an int status. Without a status, err decides it through
// ErrorToStatusCode and a nil err means 400.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := fiber.StatusBadRequest
	if err != nil {
		status = ErrorToStatusCode(err)
	}
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Instance: c.OriginalURL(),
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			pd.Detail = v
		case int:
			status = v
		}
	}
	pd.Status = status
	if err != nil {
		pd.Errors = failure.Messages(err)
		if pd.Detail == "" && len(pd.Errors) > 0 {
			pd.Detail = pd.Errors[0]
		}
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotImplemented):
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", nil, err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", nil, err.Error())
	}
	return &input, nil
}

// CurrentUser reads the id and pseudo of the caller from the verified token.
// On failure the 401 response is already written and ok is false.
func CurrentUser(c *fiber.Ctx, authSvc *authsvc.Service) (userID int64, pseudo string, ok bool, err error) {
	token, isToken := c.Locals("user").(*jwt.Token)
	if !isToken {
		return 0, "", false, ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
	}
	userID, err = authSvc.GetCurrentUserID(token)
	if err != nil {
		return 0, "", false, ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
	}
	pseudo, err = authSvc.GetCurrentPseudo(token)
	if err != nil {
		return 0, "", false, ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
	}
	return userID, pseudo, true, nil
}

// ParamID parses the positive integer path parameter name. On failure the
// 400 response is already written and ok is false.
func ParamID(c *fiber.Ctx, name string) (id int64, ok bool, err error) {
	id, parseErr := strconv.ParseInt(c.Params(name), 10, 64)
	if parseErr != nil || id <= 0 {
		return 0, false, ProblemDetailsJSON(c, "Invalid "+name, nil, name+" must be a positive integer", fiber.StatusBadRequest)
	}
	return id, true, nil
}
