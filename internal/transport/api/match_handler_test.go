package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/logger"
	"github.com/thanhnd-dev/casso-recon/internal/service"
	"github.com/thanhnd-dev/casso-recon/internal/transport/api/mocks"
	"github.com/thanhnd-dev/casso-recon/internal/transport/api/testutils"
	"github.com/thanhnd-dev/casso-recon/internal/transport/api/tokens"
)

type MatchHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockRecon *mocks.MockReconciler
	jwtSecret []byte
}

func TestMatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}

func (s *MatchHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockRecon = mocks.NewMockReconciler(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:             logger.New(os.Stdout),
		Recon:              s.mockRecon,
		WebhookSecureToken: testSecureToken,
		JWTSecretKey:       s.jwtSecret,
	})
}

func (s *MatchHandlerTestSuite) operatorToken(operatorID int64) string {
	token, err := tokens.GenerateOperatorJWT(operatorID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *MatchHandlerTestSuite) postManualMatch(payload map[string]any, token string) *http.Response {
	body, marshalErr := json.Marshal(payload)
	s.Require().NoError(marshalErr)

	opts := []func(*testutils.RequestOptions){
		testutils.WithHeader("Content-Type", "application/json"),
	}
	if token != "" {
		opts = append(opts, testutils.WithHeader("Authorization", "Bearer "+token))
	}

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + ManualMatchRoute,
		Body:   bytes.NewReader(body),
	}, opts...)
	s.Require().NoError(err)
	return resp
}

func (s *MatchHandlerTestSuite) TestManualMatch() {
	s.mockRecon.EXPECT().
		ManualMatch(gomock.Any(), service.ManualMatchArgs{
			TransactionID: "bank-tx-1",
			OrderID:       42,
			OperatorID:    7,
		}).
		Return(&service.ReconResult{
			Outcome: domain.OutcomeMatched,
			Reason:  "matched manually by operator 7",
			Order:   &domain.Order{OrderNumber: "TBL-20250810-000123"},
		}, nil)

	resp := s.postManualMatch(map[string]any{
		"transactionId": "bank-tx-1",
		"orderId":       42,
	}, s.operatorToken(7))
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var parsed ManualMatchResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&parsed))
	s.True(parsed.Settled)
	s.Equal("TBL-20250810-000123", parsed.OrderNumber)
}

func (s *MatchHandlerTestSuite) TestManualMatchByOrderNumber() {
	s.mockRecon.EXPECT().
		ManualMatch(gomock.Any(), gomock.Any()).
		Return(&service.ReconResult{Outcome: domain.OutcomeMatched}, nil)

	resp := s.postManualMatch(map[string]any{
		"transactionId": "bank-tx-1",
		"orderNumber":   "TBL-20250810-000123",
	}, s.operatorToken(7))
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *MatchHandlerTestSuite) TestManualMatchWithoutToken() {
	resp := s.postManualMatch(map[string]any{
		"transactionId": "bank-tx-1",
		"orderId":       42,
	}, "")
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *MatchHandlerTestSuite) TestManualMatchForgedToken() {
	forged, err := tokens.GenerateOperatorJWT(7, time.Hour, []byte("other secret"))
	s.Require().NoError(err)

	resp := s.postManualMatch(map[string]any{
		"transactionId": "bank-tx-1",
		"orderId":       42,
	}, forged)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *MatchHandlerTestSuite) TestManualMatchValidation() {
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"missing transaction id", map[string]any{"orderId": 42}},
		{"neither order id nor number", map[string]any{"transactionId": "bank-tx-1"}},
		{"malformed order number", map[string]any{
			"transactionId": "bank-tx-1",
			"orderNumber":   "not-an-order",
		}},
		{"negative order id", map[string]any{
			"transactionId": "bank-tx-1",
			"orderId":       -1,
		}},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			resp := s.postManualMatch(c.payload, s.operatorToken(7))
			defer resp.Body.Close()

			s.Equal(http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func (s *MatchHandlerTestSuite) TestManualMatchOrderNotFound() {
	s.mockRecon.EXPECT().
		ManualMatch(gomock.Any(), gomock.Any()).
		Return(&service.ReconResult{Outcome: domain.OutcomeOrderNotFound, Reason: "order not found"}, nil)

	resp := s.postManualMatch(map[string]any{
		"transactionId": "bank-tx-1",
		"orderId":       404,
	}, s.operatorToken(7))
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *MatchHandlerTestSuite) TestManualMatchConflict() {
	s.mockRecon.EXPECT().
		ManualMatch(gomock.Any(), gomock.Any()).
		Return(&service.ReconResult{
			Outcome: domain.OutcomeAlreadyPaid,
			Reason:  "order TBL-20250810-000123 already settled by transaction bank-tx-0",
		}, nil)

	resp := s.postManualMatch(map[string]any{
		"transactionId": "bank-tx-1",
		"orderId":       42,
	}, s.operatorToken(7))
	defer resp.Body.Close()

	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *MatchHandlerTestSuite) TestManualMatchUpstreamUnavailable() {
	s.mockRecon.EXPECT().
		ManualMatch(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUpstreamUnavailable)

	resp := s.postManualMatch(map[string]any{
		"transactionId": "bank-tx-1",
		"orderId":       42,
	}, s.operatorToken(7))
	defer resp.Body.Close()

	s.Equal(http.StatusBadGateway, resp.StatusCode)
}

func (s *MatchHandlerTestSuite) getUnmatched(url, token string) *http.Response {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    url,
	}, testutils.WithHeader("Authorization", "Bearer "+token))
	s.Require().NoError(err)
	return resp
}

func (s *MatchHandlerTestSuite) TestUnmatched() {
	s.mockRecon.EXPECT().
		UnmatchedAttempts(gomock.Any(), uint(50)).
		Return([]domain.MatchAttempt{
			{
				ID:            1,
				TransactionID: "bank-tx-9",
				Outcome:       domain.OutcomeNoReference,
				Reason:        "no order reference found in transfer description",
				CreatedAt:     time.Now(),
			},
		}, nil)

	resp := s.getUnmatched(RouteGroup+UnmatchedRoute, s.operatorToken(7))
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var parsed []UnmatchedResponseItem
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&parsed))
	s.Require().Len(parsed, 1)
	s.Equal("bank-tx-9", parsed[0].TransactionID)
}

func (s *MatchHandlerTestSuite) TestUnmatchedCustomLimit() {
	s.mockRecon.EXPECT().
		UnmatchedAttempts(gomock.Any(), uint(10)).
		Return([]domain.MatchAttempt{{ID: 1, CreatedAt: time.Now()}}, nil)

	resp := s.getUnmatched(RouteGroup+UnmatchedRoute+"?limit=10", s.operatorToken(7))
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *MatchHandlerTestSuite) TestUnmatchedEmpty() {
	s.mockRecon.EXPECT().
		UnmatchedAttempts(gomock.Any(), uint(50)).
		Return(nil, nil)

	resp := s.getUnmatched(RouteGroup+UnmatchedRoute, s.operatorToken(7))
	defer resp.Body.Close()

	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *MatchHandlerTestSuite) TestUnmatchedWithoutToken() {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + UnmatchedRoute,
	})
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
