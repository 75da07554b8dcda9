package service

import (
	"context"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type OrderRepository interface {
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	SettlePayment(ctx context.Context, args repoargs.SettlePayment) (*domain.Order, error)
}

type ProcessedTransactionRepository interface {
	Create(ctx context.Context, args repoargs.ProcessedTransactionCreate) (*domain.ProcessedTransaction, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.ProcessedTransaction, error)
}

type MatchAttemptRepository interface {
	Create(ctx context.Context, args repoargs.MatchAttemptCreate) (*domain.MatchAttempt, error)
	ListUnmatched(ctx context.Context, limit uint) ([]domain.MatchAttempt, error)
}

// TransactionFetcher достает транзакцию у шлюза по ID. Нужен ручной привязке:
// оператор передает только ID, сумму и описание мы берем у первоисточника.
type TransactionFetcher interface {
	GetTransaction(ctx context.Context, id string) (*domain.ExternalTransaction, error)
}

// Notifier однонаправленный сток уведомлений. Вызов не блокирует и не
// возвращает ошибку — доставка best-effort.
type Notifier interface {
	Notify(room string, event string, payload any)
}
