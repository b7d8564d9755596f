package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"time"

	infracache "github.com/amirasaad/tripool/infra/cache"
	"github.com/amirasaad/tripool/infra/database"
	infrarepo "github.com/amirasaad/tripool/infra/repository"
	"github.com/amirasaad/tripool/pkg/app"
	"github.com/amirasaad/tripool/pkg/cache"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/pkg/utils"
	"github.com/amirasaad/tripool/webapi"
	"github.com/amirasaad/tripool/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the password of every user created by CreateTestUser.
const TestPassword = "password123"

// E2ETestSuite runs the whole HTTP stack over a throwaway sqlite database.
type E2ETestSuite struct {
	suite.Suite
	App   *app.App
	app   *fiber.App
	store *infracache.MemoryCache
	db    *gorm.DB
}

// NewTestConfig returns a configuration suited to the test stack.
func NewTestConfig(dbURL string) *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:       &config.Log{Format: "text", Prefix: "[tripool]"},
		DB:        &config.DB{Url: dbURL, Migrate: true},
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "e2e-secret", Expiry: time.Hour}},
		Redis:     &config.Redis{},
		Cache:     &config.Cache{TTL: time.Minute},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
}

// SetupSuite builds the stack over a fresh database shared by the suite.
func (s *E2ETestSuite) SetupSuite() {
	utils.PasswordCost = bcrypt.MinCost
	cfg := NewTestConfig("sqlite://" + filepath.Join(s.T().TempDir(), "e2e.db"))
	clk := clock.Real{}

	db, err := database.NewDBConnection(cfg.DB, cfg.Env, clk)
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db

	s.store = infracache.NewMemoryCache(clk)
	deps := &config.Deps{
		Uow:       infrarepo.NewUoW(db),
		Directory: cache.NewDirectory(s.store, cfg.Cache.TTL, clk),
		Clock:     clk,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:    cfg,
	}
	s.App = app.New(deps, cfg)
	s.app = webapi.SetupApp(s.App)
}

func (s *E2ETestSuite) TearDownSuite() {
	s.store.Close()
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Decode reads a Response envelope, closing the body.
func (s *E2ETestSuite) Decode(resp *http.Response) common.Response {
	defer resp.Body.Close() //nolint: errcheck
	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response
}

// DecodeProblem reads a ProblemDetails body, closing the body.
func (s *E2ETestSuite) DecodeProblem(resp *http.Response) common.ProblemDetails {
	defer resp.Body.Close() //nolint: errcheck
	var pd common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

// CreateTestUser creates a unique test user via the POST /user endpoint
func (s *E2ETestSuite) CreateTestUser() *domain.User {
	randomID := uuid.New().String()[:8]
	body := fmt.Sprintf(`{"pseudo":"user_%s","mail":"user_%s@example.com","password":"%s"}`, randomID, randomID, TestPassword)
	resp := s.MakeRequest(http.MethodPost, "/user", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	data := s.Decode(resp).Data.(map[string]any)
	return &domain.User{
		ID:     int64(data["id"].(float64)),
		Pseudo: data["pseudo"].(string),
		Mail:   data["mail"].(string),
	}
}

// LoginUser makes an actual HTTP request to login and returns the JWT token
func (s *E2ETestSuite) LoginUser(u *domain.User) string {
	body := fmt.Sprintf(`{"identity":"%s","password":"%s"}`, u.Mail, TestPassword)
	resp := s.MakeRequest(http.MethodPost, "/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	token, _ := s.Decode(resp).Data.(map[string]any)["token"].(string)
	s.Require().NotEmpty(token)
	return token
}

// CreateTestTrip creates a trip organized by the owner of token and returns
// its id and the id of its pot.
func (s *E2ETestSuite) CreateTestTrip(token string, price float64, people int) (tripID, potID int64) {
	body := fmt.Sprintf(`{"name":"trip_%s","price":%g,"number_max_of_people":%d}`, uuid.New().String()[:8], price, people)
	resp := s.MakeRequest(http.MethodPost, "/trips", body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	data := s.Decode(resp).Data.(map[string]any)
	tripID = int64(data["id"].(float64))
	potID = int64(data["pot"].(map[string]any)["id"].(float64))
	return tripID, potID
}
