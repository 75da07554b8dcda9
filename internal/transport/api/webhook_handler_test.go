package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/logger"
	"github.com/thanhnd-dev/casso-recon/internal/service"
	"github.com/thanhnd-dev/casso-recon/internal/transport/api/mocks"
	"github.com/thanhnd-dev/casso-recon/internal/transport/api/testutils"
)

const testSecureToken = "webhook secret"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockRecon *mocks.MockReconciler
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockRecon = mocks.NewMockReconciler(mockCtrl)

	s.router = New(RouterArgs{
		Logger:             logger.New(os.Stdout),
		Recon:              s.mockRecon,
		WebhookSecureToken: testSecureToken,
		JWTSecretKey:       []byte("jwt secret"),
	})
}

func (s *WebhookHandlerTestSuite) webhookPayload(txs ...map[string]any) []byte {
	body, err := json.Marshal(map[string]any{"error": 0, "data": txs})
	s.Require().NoError(err)
	return body
}

func (s *WebhookHandlerTestSuite) webhookTx(id string) map[string]any {
	return map[string]any{
		"id":          id,
		"amount":      246000,
		"description": "CK TBL-20250810-000123",
		"when":        "2025-08-10 12:00:00",
	}
}

func (s *WebhookHandlerTestSuite) post(body []byte, token string) *http.Response {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + WebhookRoute,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader("Secure-Token", token))
	s.Require().NoError(err)
	return resp
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, tx domain.ExternalTransaction) (*service.ReconResult, error) {
			s.Equal("tx-1", tx.ID)
			s.Equal(int64(246000), tx.Amount)
			return &service.ReconResult{Outcome: domain.OutcomeMatched}, nil
		})

	resp := s.post(s.webhookPayload(s.webhookTx("tx-1")), testSecureToken)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var parsed struct {
		Results []WebhookResultItem `json:"results"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&parsed))
	s.Require().Len(parsed.Results, 1)
	s.Equal(domain.OutcomeMatched, parsed.Results[0].Outcome)
}

func (s *WebhookHandlerTestSuite) TestReceiveBatch() {
	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(&service.ReconResult{Outcome: domain.OutcomeNoReference}, nil).
		Times(3)

	resp := s.post(
		s.webhookPayload(s.webhookTx("tx-1"), s.webhookTx("tx-2"), s.webhookTx("tx-3")),
		testSecureToken,
	)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *WebhookHandlerTestSuite) TestReceiveUnmatchedStill200() {
	// несошедшаяся транзакция — штатный исход, не ошибка протокола.
	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(&service.ReconResult{
			Outcome: domain.OutcomeAmountMismatch,
			Reason:  "amount mismatch: transferred 100 VND, order total is 246000 VND",
		}, nil)

	resp := s.post(s.webhookPayload(s.webhookTx("tx-1")), testSecureToken)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *WebhookHandlerTestSuite) TestReceiveWrongSecret() {
	// мок не настроен: до обработки дойти не должно.
	resp := s.post(s.webhookPayload(s.webhookTx("tx-1")), "wrong secret")
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *WebhookHandlerTestSuite) TestReceiveMissingSecret() {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + WebhookRoute,
		Body:   bytes.NewReader(s.webhookPayload(s.webhookTx("tx-1"))),
	})
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *WebhookHandlerTestSuite) TestReceiveMalformedPayload() {
	cases := []struct {
		name string
		body []byte
	}{
		{"not json", []byte("not json at all")},
		{"empty data", s.webhookPayload()},
		{"missing fields", s.webhookPayload(map[string]any{"id": "tx-1"})},
		{"bad time format", s.webhookPayload(map[string]any{
			"id": "tx-1", "amount": 1, "description": "x", "when": "yesterday",
		})},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			resp := s.post(c.body, testSecureToken)
			defer resp.Body.Close()

			s.Equal(http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func (s *WebhookHandlerTestSuite) TestReceiveInfraFailure() {
	s.mockRecon.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("db unavailable"))

	resp := s.post(s.webhookPayload(s.webhookTx("tx-1")), testSecureToken)
	defer resp.Body.Close()

	s.Equal(http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	s.NotContains(string(body), "db unavailable", "internal errors must not leak to the gateway")
}
