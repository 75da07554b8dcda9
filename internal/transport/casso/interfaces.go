package casso

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/service"
)

type Client interface {
	ListTransactions(ctx context.Context, page uint, from time.Time) ([]domain.ExternalTransaction, bool, error)
	GetTransaction(ctx context.Context, id string) (*domain.ExternalTransaction, error)
}

type Reconciler interface {
	Ingest(ctx context.Context, tx domain.ExternalTransaction) (*service.ReconResult, error)
}
