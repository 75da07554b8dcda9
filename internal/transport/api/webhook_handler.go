package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
)

// webhookTimeLayout время в payload'е Casso, без зоны.
const webhookTimeLayout = "2006-01-02 15:04:05"

type WebhookHandler struct {
	recon Reconciler
}

func NewWebhookHandler(recon Reconciler) *WebhookHandler {
	return &WebhookHandler{
		recon: recon,
	}
}

type WebhookTransaction struct {
	ID          string `json:"id"          binding:"required"`
	Amount      int64  `json:"amount"      binding:"required"`
	Description string `json:"description" binding:"required"`
	When        string `json:"when"        binding:"required"`
}

type WebhookParams struct {
	Error int                  `json:"error"`
	Data  []WebhookTransaction `json:"data" binding:"required,min=1,dive"`
}

type WebhookResultItem struct {
	TransactionID string              `json:"transactionId"`
	Outcome       domain.MatchOutcome `json:"outcome"`
	Replayed      bool                `json:"replayed,omitempty"`
	Reason        string              `json:"reason,omitempty"`
}

// Receive POST RouteGroup + WebhookRoute.
//
// Несошедшаяся транзакция — не протокольная ошибка: шлюзу всегда отвечаем
// 200, иначе он будет бесконечно ретраить заведомо чужие переводы. 400
// возвращается только на некорректный payload, до каких-либо изменений
// состояния: сначала валидируется весь батч, потом обрабатывается.
func (w *WebhookHandler) Receive(c *gin.Context) {
	var params WebhookParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	transactions, parseErr := convertWebhookBatch(params.Data)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypePrivate)
		return
	}

	results := make([]WebhookResultItem, 0, len(transactions))
	for _, tx := range transactions {
		reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
		res, ingestErr := w.recon.Ingest(reqCtx, tx)
		cancel()

		if ingestErr != nil {
			// инфраструктурный сбой: 500, шлюз повторит доставку, повтор
			// безопасен благодаря идемпотентности.
			_ = c.AbortWithError(http.StatusInternalServerError, ingestErr).SetType(gin.ErrorTypePrivate)
			return
		}

		results = append(results, WebhookResultItem{
			TransactionID: tx.ID,
			Outcome:       res.Outcome,
			Replayed:      res.Replayed,
			Reason:        res.Reason,
		})
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func convertWebhookBatch(data []WebhookTransaction) ([]domain.ExternalTransaction, error) {
	var transactions = make([]domain.ExternalTransaction, len(data))
	for i, item := range data {
		when, err := time.ParseInLocation(webhookTimeLayout, item.When, time.Local)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		transactions[i] = domain.ExternalTransaction{
			ID:          item.ID,
			Amount:      item.Amount,
			Description: item.Description,
			When:        when,
		}
	}
	return transactions, nil
}
