package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/thanhnd-dev/casso-recon/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup         = "/api"
	WebhookRoute       = "/payment/webhook"
	ManualMatchRoute   = "/payment/manual-match"
	PaymentStatusRoute = "/payment/status/:orderNumber"
	UnmatchedRoute     = "/payment/unmatched"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	Recon              Reconciler
	WebhookSecureToken string
	JWTSecretKey       []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	if err := registerValidators(); err != nil {
		panic(err)
	}

	webhookHandler := NewWebhookHandler(args.Recon)
	matchHandler := NewMatchHandler(args.Recon)
	paymentHandler := NewPaymentHandler(args.Recon)

	api := r.Group(RouteGroup)

	api.POST(WebhookRoute, middlewares.WebhookAuth(args.WebhookSecureToken), webhookHandler.Receive)
	api.GET(PaymentStatusRoute, paymentHandler.Status)

	// ниже все роуты группы требуют авторизованного оператора.
	api.Use(middlewares.OperatorRequired(args.JWTSecretKey))
	api.POST(ManualMatchRoute, matchHandler.ManualMatch)
	api.GET(UnmatchedRoute, matchHandler.Unmatched)

	return r
}
