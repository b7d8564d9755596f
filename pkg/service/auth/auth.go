// Package auth issues and verifies the credentials used by the HTTP and CLI
// surfaces. Password checks are delegated to the user service.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

// Authenticator checks a user's password. The user service implements it.
type Authenticator interface {
	LoginByMail(ctx context.Context, mail, password string) (*domain.User, error)
	LoginByPseudo(ctx context.Context, pseudo, password string) (*domain.User, error)
}

type Strategy interface {
	Login(ctx context.Context, identity, password string) (*domain.User, error)
	GetCurrentUserID(ctx context.Context) (int64, error)
	GenerateToken(ctx context.Context, u *domain.User) (string, error)
}

type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

func New(strategy Strategy, logger *slog.Logger) *Service {
	return &Service{strategy: strategy, logger: logger}
}

func NewWithBasic(users Authenticator, logger *slog.Logger) *Service {
	return New(NewBasicAuthStrategy(users, logger), logger)
}

func NewWithJWT(
	users Authenticator,
	cfg *config.Jwt,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return New(NewJWTStrategy(users, cfg, clk, logger), logger)
}

func (s *Service) GetCurrentUserID(token *jwt.Token) (userID int64, err error) {
	log := s.logger.With("context", "GetCurrentUserID")
	log.Debug("GetCurrentUserID called")
	userID, err = s.strategy.GetCurrentUserID(
		context.WithValue(context.Background(), userContextKey, token),
	)
	if err != nil {
		log.Error("GetCurrentUserID failed", "error", err)
		return
	}
	log.Info("GetCurrentUserID successful", "userID", userID)
	return
}

// GetCurrentPseudo reads the pseudo claim of a verified token.
func (s *Service) GetCurrentPseudo(token *jwt.Token) (string, error) {
	if token == nil {
		return "", domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	pseudo, ok := claims["pseudo"].(string)
	if !ok || pseudo == "" {
		return "", domain.ErrUnauthorized
	}
	return pseudo, nil
}

func (s *Service) Login(ctx context.Context, identity, password string) (u *domain.User, err error) {
	log := s.logger.With("context", "Login")
	log.Debug("Login called", "identity", identity)
	u, err = s.strategy.Login(ctx, identity, password)
	if err != nil {
		log.Error("Login failed", "identity", identity, "error", err)
		return
	}
	log.Info("Login successful", "userID", u.ID)
	return
}

func (s *Service) GenerateToken(ctx context.Context, u *domain.User) (string, error) {
	log := s.logger.With("userID", u.ID)
	log.Debug("GenerateToken called")
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Info("GenerateToken successful")
	return token, nil
}

// login picks the finder from the shape of identity.
func login(ctx context.Context, users Authenticator, identity, password string) (*domain.User, error) {
	if utils.IsEmail(identity) {
		return users.LoginByMail(ctx, identity, password)
	}
	return users.LoginByPseudo(ctx, identity, password)
}

// JWTStrategy signs HS256 tokens carrying the user id, pseudo and mail.
type JWTStrategy struct {
	users  Authenticator
	cfg    *config.Jwt
	clock  clock.Clock
	logger *slog.Logger
}

func NewJWTStrategy(
	users Authenticator,
	cfg *config.Jwt,
	clk clock.Clock,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{users: users, cfg: cfg, clock: clk, logger: logger}
}

func (s *JWTStrategy) GenerateToken(ctx context.Context, u *domain.User) (string, error) {
	log := s.logger.With("userID", u.ID)
	log.Debug("GenerateToken called")
	now := s.clock.Now()
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["jti"] = uuid.NewString()
	claims["user_id"] = u.ID
	claims["pseudo"] = u.Pseudo
	claims["mail"] = u.Mail
	claims["role"] = string(u.Role)
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	return tokenString, nil
}

func (s *JWTStrategy) Login(ctx context.Context, identity, password string) (*domain.User, error) {
	s.logger.Debug("Login called", "identity", identity)
	return login(ctx, s.users, identity, password)
}

func (s *JWTStrategy) GetCurrentUserID(ctx context.Context) (int64, error) {
	token, ok := ctx.Value(userContextKey).(*jwt.Token)
	if !ok || token == nil {
		return 0, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	// Parsed tokens carry numbers as float64 unless the parser uses json.Number.
	var userID int64
	switch v := claims["user_id"].(type) {
	case float64:
		userID = int64(v)
	case int64:
		userID = v
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, domain.ErrUnauthorized
		}
		userID = n
	default:
		return 0, domain.ErrUnauthorized
	}
	if userID <= 0 {
		return 0, domain.ErrUnauthorized
	}
	return userID, nil
}

// BasicAuthStrategy implements Strategy for the CLI: a password check, no
// tokens.
type BasicAuthStrategy struct {
	users  Authenticator
	logger *slog.Logger
}

func NewBasicAuthStrategy(users Authenticator, logger *slog.Logger) *BasicAuthStrategy {
	return &BasicAuthStrategy{users: users, logger: logger}
}

func (s *BasicAuthStrategy) Login(ctx context.Context, identity, password string) (*domain.User, error) {
	s.logger.Info("BasicAuth Login called", "identity", identity)
	return login(ctx, s.users, identity, password)
}

func (s *BasicAuthStrategy) GetCurrentUserID(ctx context.Context) (int64, error) {
	return 0, domain.ErrUnauthorized
}

func (s *BasicAuthStrategy) GenerateToken(ctx context.Context, u *domain.User) (string, error) {
	return "", nil
}
