package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/service"
)

type Reconciler interface {
	Ingest(ctx context.Context, tx domain.ExternalTransaction) (*service.ReconResult, error)
	ManualMatch(ctx context.Context, args service.ManualMatchArgs) (*service.ReconResult, error)
	PaymentStatus(ctx context.Context, orderNumber string) (*service.PaymentStatusResult, error)
	UnmatchedAttempts(ctx context.Context, limit uint) ([]domain.MatchAttempt, error)
}
