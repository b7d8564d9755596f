// Package webapi provides HTTP handlers and API endpoints for the tripool application.
// It is organized into sub-packages for different domains:
// - auth: Authentication endpoints
// - user: User management endpoints
// - friendship: Friendship request endpoints
// - trip: Trip and participation endpoints
// - pot: Pot contribution endpoints
package webapi

import (
	"errors"
	"strings"

	_ "github.com/amirasaad/tripool/docs"
	"github.com/amirasaad/tripool/pkg/app"
	authweb "github.com/amirasaad/tripool/webapi/auth"
	"github.com/amirasaad/tripool/webapi/common"
	friendshipweb "github.com/amirasaad/tripool/webapi/friendship"
	potweb "github.com/amirasaad/tripool/webapi/pot"
	tripweb "github.com/amirasaad/tripool/webapi/trip"
	userweb "github.com/amirasaad/tripool/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, fe.Message, nil, fe.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
	}))

	// Uses X-Forwarded-For header when behind a proxy
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Tripool API is running! 🚀")
	})

	authweb.Routes(fiberApp, app.AuthService)
	userweb.Routes(fiberApp, app.UserService, app.AuthService, app.Config)
	friendshipweb.Routes(fiberApp, app.FriendshipService, app.AuthService, app.Config)
	tripweb.Routes(fiberApp, app.TripService, app.AuthService, app.Config)
	potweb.Routes(fiberApp, app.PotService, app.AuthService, app.Config)
	return fiberApp
}
