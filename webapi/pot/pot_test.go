package pot_test

import (
	"fmt"
	"net/http"
	"testing"

	potsvc "github.com/amirasaad/tripool/pkg/service/pot"
	"github.com/amirasaad/tripool/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type PotTestSuite struct {
	testutils.E2ETestSuite
	token string
	potID int64
}

func (s *PotTestSuite) SetupTest() {
	s.token = s.LoginUser(s.CreateTestUser())
	_, s.potID = s.CreateTestTrip(s.token, 200, 2)
}

func (s *PotTestSuite) path(suffix string) string {
	return fmt.Sprintf("/pots/%d%s", s.potID, suffix)
}

func (s *PotTestSuite) TestGetPot() {
	resp := s.MakeRequest(http.MethodGet, s.path(""), "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := s.Decode(resp).Data.(map[string]any)
	s.EqualValues(200, data["target_amount"])
	s.EqualValues(0, data["current_amount"])

	resp = s.MakeRequest(http.MethodGet, "/pots/999999", "", s.token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *PotTestSuite) TestGetPotRequiresToken() {
	resp := s.MakeRequest(http.MethodGet, s.path(""), "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *PotTestSuite) TestCreditAndDebit() {
	resp := s.MakeRequest(http.MethodPost, s.path("/credit"), `{"amount":100}`, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.EqualValues(100, s.Decode(resp).Data.(map[string]any)["current_amount"])

	resp = s.MakeRequest(http.MethodGet, s.path("/members"), "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	members := s.Decode(resp).Data.([]any)
	s.Require().Len(members, 1)
	member := members[0].(map[string]any)
	s.EqualValues(100, member["amount"])
	s.Equal(true, member["has_payed"])

	resp = s.MakeRequest(http.MethodPost, s.path("/debit"), `{"amount":40}`, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.EqualValues(60, s.Decode(resp).Data.(map[string]any)["current_amount"])

	resp = s.MakeRequest(http.MethodGet, s.path("/members"), "", s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	member = s.Decode(resp).Data.([]any)[0].(map[string]any)
	s.EqualValues(60, member["amount"])
	s.Equal(false, member["has_payed"])
}

func (s *PotTestSuite) TestMoveVariants() {
	stranger := s.LoginUser(s.CreateTestUser())

	testCases := []struct {
		desc       string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{desc: "zero amount", path: s.path("/credit"), body: `{"amount":0}`, token: s.token, wantStatus: fiber.StatusBadRequest},
		{desc: "negative amount", path: s.path("/debit"), body: `{"amount":-5}`, token: s.token, wantStatus: fiber.StatusBadRequest},
		{desc: "not a member", path: s.path("/credit"), body: `{"amount":10}`, token: stranger, wantStatus: fiber.StatusNotFound},
		{desc: "unknown pot", path: "/pots/999999/credit", body: `{"amount":10}`, token: s.token, wantStatus: fiber.StatusNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, tc.path, tc.body, tc.token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *PotTestSuite) TestCancelBlocksPayments() {
	other := s.LoginUser(s.CreateTestUser())
	resp := s.MakeRequest(http.MethodPost, s.path("/cancel"), `{"reason":"storm"}`, other)
	s.Equal(fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = s.MakeRequest(http.MethodPost, s.path("/cancel"), `{}`, s.token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = s.MakeRequest(http.MethodPost, s.path("/cancel"), `{"reason":"storm"}`, s.token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := s.Decode(resp).Data.(map[string]any)
	s.Equal(true, data["is_cancelled"])
	s.Equal("storm", data["cancellation_reason"])

	resp = s.MakeRequest(http.MethodPost, s.path("/credit"), `{"amount":10}`, s.token)
	s.Require().Equal(fiber.StatusConflict, resp.StatusCode)
	s.Equal(potsvc.MsgPotCancelled, s.DecodeProblem(resp).Detail)
}

func (s *PotTestSuite) TestCloseNotImplemented() {
	resp := s.MakeRequest(http.MethodPost, s.path("/close"), "", s.token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotImplemented, resp.StatusCode)
}

func TestPotTestSuite(t *testing.T) {
	suite.Run(t, new(PotTestSuite))
}
