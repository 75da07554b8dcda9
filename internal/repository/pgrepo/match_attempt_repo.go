package pgrepo

import (
	"context"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/repository/repoargs"
	"github.com/thanhnd-dev/casso-recon/pkg/uow"
)

type MatchAttemptRepository struct {
	db uow.DBTX
}

func NewMatchAttemptRepository(db uow.DBTX) *MatchAttemptRepository {
	return &MatchAttemptRepository{db: db}
}

func (m *MatchAttemptRepository) Create(ctx context.Context, args repoargs.MatchAttemptCreate) (*domain.MatchAttempt, error) {
	row := m.db.QueryRow(ctx,
		`INSERT INTO match_attempts
			(transaction_id, extracted_number, expected_number, amount_delta, outcome, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, transaction_id, extracted_number, expected_number, amount_delta, outcome, reason`,
		args.TransactionID, args.ExtractedNumber, args.ExpectedNumber,
		args.AmountDelta, args.Outcome, args.Reason,
	)

	var attempt domain.MatchAttempt
	err := row.Scan(
		&attempt.ID, &attempt.CreatedAt, &attempt.TransactionID,
		&attempt.ExtractedNumber, &attempt.ExpectedNumber,
		&attempt.AmountDelta, &attempt.Outcome, &attempt.Reason,
	)
	if err != nil {
		return nil, convertErr(err, "creating match attempt for transaction `%s`", args.TransactionID)
	}
	return &attempt, nil
}

// ListUnmatched возвращает последние неуспешные попытки сверки — ленту
// операторской очереди ручной привязки.
func (m *MatchAttemptRepository) ListUnmatched(ctx context.Context, limit uint) ([]domain.MatchAttempt, error) {
	rows, err := m.db.Query(ctx,
		`SELECT id, created_at, transaction_id, extracted_number, expected_number, amount_delta, outcome, reason
		FROM match_attempts
		WHERE outcome != $1
		ORDER BY created_at DESC
		LIMIT $2`,
		domain.OutcomeMatched, int64(limit), //nolint:gosec
	)
	if err != nil {
		return nil, convertErr(err, "listing unmatched attempts")
	}
	defer rows.Close()

	var attempts []domain.MatchAttempt
	for rows.Next() {
		var attempt domain.MatchAttempt
		if scanErr := rows.Scan(
			&attempt.ID, &attempt.CreatedAt, &attempt.TransactionID,
			&attempt.ExtractedNumber, &attempt.ExpectedNumber,
			&attempt.AmountDelta, &attempt.Outcome, &attempt.Reason,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning match attempt")
		}
		attempts = append(attempts, attempt)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing unmatched attempts")
	}
	return attempts, nil
}
