package pgrepo

import (
	"context"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/repository/repoargs"
	"github.com/thanhnd-dev/casso-recon/pkg/uow"
)

type ProcessedTransactionRepository struct {
	db uow.DBTX
}

func NewProcessedTransactionRepository(db uow.DBTX) *ProcessedTransactionRepository {
	return &ProcessedTransactionRepository{db: db}
}

// Create вставляет запись идемпотентности. Уникальный индекс по transaction_id
// превращает гонку двух одновременных применений одной транзакции в
// domain.ErrDuplicateKey у проигравшего.
func (p *ProcessedTransactionRepository) Create(
	ctx context.Context,
	args repoargs.ProcessedTransactionCreate,
) (*domain.ProcessedTransaction, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO processed_transactions
			(transaction_id, order_id, amount, outcome, manual, operator_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, transaction_id, order_id, amount, outcome, manual, operator_id`,
		args.TransactionID, args.OrderID, args.Amount, args.Outcome, args.Manual, args.OperatorID,
	)

	var pt domain.ProcessedTransaction
	err := row.Scan(
		&pt.ID, &pt.CreatedAt, &pt.TransactionID, &pt.OrderID,
		&pt.Amount, &pt.Outcome, &pt.Manual, &pt.OperatorID,
	)
	if err != nil {
		return nil, convertErr(err, "creating processed transaction `%s`", args.TransactionID)
	}
	return &pt, nil
}

func (p *ProcessedTransactionRepository) FindByTransactionID(
	ctx context.Context,
	transactionID string,
) (*domain.ProcessedTransaction, error) {
	row := p.db.QueryRow(ctx,
		`SELECT id, created_at, transaction_id, order_id, amount, outcome, manual, operator_id
		FROM processed_transactions WHERE transaction_id = $1`,
		transactionID,
	)

	var pt domain.ProcessedTransaction
	err := row.Scan(
		&pt.ID, &pt.CreatedAt, &pt.TransactionID, &pt.OrderID,
		&pt.Amount, &pt.Outcome, &pt.Manual, &pt.OperatorID,
	)
	if err != nil {
		return nil, convertErr(err, "finding processed transaction `%s`", transactionID)
	}
	return &pt, nil
}
