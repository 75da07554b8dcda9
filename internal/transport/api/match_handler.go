package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/service"
)

type MatchHandler struct {
	recon Reconciler
}

func NewMatchHandler(recon Reconciler) *MatchHandler {
	return &MatchHandler{
		recon: recon,
	}
}

type ManualMatchParams struct {
	TransactionID string `json:"transactionId" binding:"required"`
	OrderNumber   string `json:"orderNumber"   binding:"omitempty,order_ref"`
	OrderID       int64  `json:"orderId"       binding:"omitempty,gt=0"`
}

type ManualMatchResponse struct {
	Outcome     domain.MatchOutcome `json:"outcome"`
	Settled     bool                `json:"settled"`
	Replayed    bool                `json:"replayed,omitempty"`
	Reason      string              `json:"reason,omitempty"`
	OrderNumber string              `json:"orderNumber,omitempty"`
}

// ManualMatch POST RouteGroup + ManualMatchRoute. Только для операторов.
func (m *MatchHandler) ManualMatch(c *gin.Context) {
	operatorID := getOperatorIDFromContext(c)

	var params ManualMatchParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.OrderNumber == "" && params.OrderID == 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, matchErr := m.recon.ManualMatch(reqCtx, service.ManualMatchArgs{
		TransactionID: params.TransactionID,
		OrderID:       params.OrderID,
		OrderNumber:   params.OrderNumber,
		OperatorID:    operatorID,
	})
	if matchErr != nil {
		if errors.Is(matchErr, domain.ErrUpstreamUnavailable) {
			_ = c.AbortWithError(http.StatusBadGateway, matchErr).SetType(gin.ErrorTypePrivate)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, matchErr).SetType(gin.ErrorTypePrivate)
		return
	}

	response := ManualMatchResponse{
		Outcome:  res.Outcome,
		Settled:  res.Outcome == domain.OutcomeMatched && !res.Replayed,
		Replayed: res.Replayed,
		Reason:   res.Reason,
	}
	if res.Order != nil {
		response.OrderNumber = res.Order.OrderNumber
	}

	switch res.Outcome {
	case domain.OutcomeOrderNotFound:
		c.JSON(http.StatusNotFound, response)
	case domain.OutcomeAlreadyPaid:
		// охрана не прошла — заказ уже закрыт другой транзакцией.
		c.JSON(http.StatusConflict, response)
	default:
		c.JSON(http.StatusOK, response)
	}
}

type UnmatchedResponseItem struct {
	TransactionID   string              `json:"transactionId"`
	ExtractedNumber string              `json:"extractedNumber,omitempty"`
	ExpectedNumber  string              `json:"expectedNumber,omitempty"`
	AmountDelta     int64               `json:"amountDelta,omitempty"`
	Outcome         domain.MatchOutcome `json:"outcome"`
	Reason          string              `json:"reason"`
	CreatedAt       string              `json:"createdAt"`
}

// Unmatched GET RouteGroup + UnmatchedRoute. Лента операторской очереди.
func (m *MatchHandler) Unmatched(c *gin.Context) {
	limit := parseLimitQuery(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	attempts, err := m.recon.UnmatchedAttempts(reqCtx, limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(attempts) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]UnmatchedResponseItem, len(attempts))
	for i, attempt := range attempts {
		response[i] = UnmatchedResponseItem{
			TransactionID:   attempt.TransactionID,
			ExtractedNumber: attempt.ExtractedNumber,
			ExpectedNumber:  attempt.ExpectedNumber,
			AmountDelta:     attempt.AmountDelta,
			Outcome:         attempt.Outcome,
			Reason:          attempt.Reason,
			CreatedAt:       attempt.CreatedAt.Format(timeFormat),
		}
	}

	c.JSON(http.StatusOK, response)
}
