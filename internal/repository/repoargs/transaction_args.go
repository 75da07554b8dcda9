package repoargs

import "github.com/thanhnd-dev/casso-recon/internal/domain"

// ProcessedTransactionCreate аргументы вставки в таблицу идемпотентности.
type ProcessedTransactionCreate struct {
	TransactionID string
	OrderID       int64
	Amount        int64
	Outcome       domain.MatchOutcome
	Manual        bool
	OperatorID    int64
}

// MatchAttemptCreate аргументы журнальной записи попытки сверки.
type MatchAttemptCreate struct {
	TransactionID   string
	ExtractedNumber string
	ExpectedNumber  string
	AmountDelta     int64
	Outcome         domain.MatchOutcome
	Reason          string
}
