package repoargs

import "time"

// SettlePayment аргументы охраняемого перехода pending → paid.
type SettlePayment struct {
	OrderID       int64
	TransactionID string
	PaidAt        time.Time
}
