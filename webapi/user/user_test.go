package user_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/amirasaad/tripool/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	testutils.E2ETestSuite
	testUser *domain.User
	token    string
}

func (s *UserTestSuite) SetupTest() {
	// Create test user via POST /user endpoint
	s.testUser = s.CreateTestUser()
	s.token = s.LoginUser(s.testUser)
}

func (s *UserTestSuite) TestCreateUserVariants() {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       `{"pseudo":"newuser","mail":"new@example.com","password":"password123"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "pseudo already used",
			body:       `{"pseudo":"` + s.testUser.Pseudo + `","mail":"other@example.com","password":"password123"}`,
			wantStatus: fiber.StatusConflict,
		},
		{
			desc:       "mail already used",
			body:       `{"pseudo":"otheruser","mail":"` + s.testUser.Mail + `","password":"password123"}`,
			wantStatus: fiber.StatusConflict,
		},
		{
			desc:       "invalid mail",
			body:       `{"pseudo":"bademail","mail":"not-a-mail","password":"password123"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "invalid body",
			body:       `{"pseudo":123}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/user", tc.body, "")
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *UserTestSuite) TestCreateUserHidesPassword() {
	resp := s.MakeRequest(http.MethodPost, "/user", `{"pseudo":"hidden","mail":"hidden@example.com","password":"password123"}`, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	data := s.Decode(resp).Data.(map[string]any)
	s.NotContains(data, "password")
	s.Equal("user", data["role"])
}

func (s *UserTestSuite) TestGetUserVariants() {
	testCases := []struct {
		pseudo     string
		desc       string
		wantStatus int
	}{
		{
			pseudo:     "ghost",
			desc:       "user not found",
			wantStatus: fiber.StatusNotFound,
		},
		{
			pseudo:     s.testUser.Pseudo,
			desc:       "get user success",
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodGet, "/user/"+tc.pseudo, "", s.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *UserTestSuite) TestGetUserRequiresToken() {
	resp := s.MakeRequest(http.MethodGet, "/user/"+s.testUser.Pseudo, "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *UserTestSuite) TestGetAllUsers() {
	resp := s.MakeRequest(http.MethodGet, "/users", "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	users := s.Decode(resp).Data.([]any)
	s.NotEmpty(users)
}

func (s *UserTestSuite) TestGetUserTrips() {
	s.CreateTestTrip(s.token, 100, 4)

	resp := s.MakeRequest(http.MethodGet, "/user/"+s.testUser.Pseudo+"/trips", "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	trips := s.Decode(resp).Data.([]any)
	s.Require().Len(trips, 1)
	s.Equal(true, trips[0].(map[string]any)["has_organized"])
}

func (s *UserTestSuite) TestUpdateUser() {
	resp := s.MakeRequest(http.MethodPut, "/user", `{"description":"likes hiking","age":31}`, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := s.Decode(resp).Data.(map[string]any)
	s.Equal("likes hiking", data["description"])
	s.EqualValues(31, data["age"])

	resp = s.MakeRequest(http.MethodGet, "/user/"+s.testUser.Pseudo, "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("likes hiking", s.Decode(resp).Data.(map[string]any)["description"])

	// Password is kept when not provided.
	s.NotEmpty(s.LoginUser(s.testUser))
}

func (s *UserTestSuite) TestUpdateUserInvalidMail() {
	resp := s.MakeRequest(http.MethodPut, "/user", `{"mail":"nope"}`, s.token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *UserTestSuite) TestDeleteUserVariants() {
	resp := s.MakeRequest(http.MethodDelete, "/user", `{"password":"wrongpass"}`, s.token)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = s.MakeRequest(http.MethodDelete, "/user", `{}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = s.MakeRequest(http.MethodDelete, "/user", `{"password":"`+testutils.TestPassword+`"}`, s.token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = s.MakeRequest(http.MethodGet, "/user/"+s.testUser.Pseudo, "", s.token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}
