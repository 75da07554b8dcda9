package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
)

type PaymentHandler struct {
	recon Reconciler
}

func NewPaymentHandler(recon Reconciler) *PaymentHandler {
	return &PaymentHandler{
		recon: recon,
	}
}

type PaymentStatusTransaction struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	PaidAt string `json:"paidAt"`
}

type PaymentStatusResponse struct {
	Paid          bool                      `json:"paid"`
	PaymentStatus domain.PaymentStatus      `json:"paymentStatus"`
	Transaction   *PaymentStatusTransaction `json:"transaction,omitempty"`
}

// Status GET RouteGroup + PaymentStatusRoute. Read-only, без побочных
// эффектов, витрина дергает его поллингом сколь угодно часто.
func (p *PaymentHandler) Status(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := p.recon.PaymentStatus(reqCtx, orderNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := PaymentStatusResponse{
		Paid:          res.Paid,
		PaymentStatus: res.Status,
	}
	if res.Transaction != nil {
		response.Transaction = &PaymentStatusTransaction{
			ID:     res.Transaction.TransactionID,
			Amount: res.Transaction.Amount,
			PaidAt: res.Transaction.CreatedAt.Format(timeFormat),
		}
	}

	c.JSON(http.StatusOK, response)
}
