package domain

import (
	"time"
)

// Order хранит заказ ресторанной платформы. Ядро сверки читает и пишет только
// фасеты Pricing и Payment, остальные поля принадлежат сервису заказов.
type Order struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	OrderNumber  string
	CustomerID   int64
	DeliveryType DeliveryType
	Tier         MemberTier
	Items        []OrderItem
	Coupon       *Coupon
	Pricing      Pricing
	Payment      Payment
}

type OrderItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// Pricing денежная раскладка заказа. Все суммы в целых донгах (у VND нет
// дробной единицы). Total — авторитетная сумма, которую должна покрыть
// входящая транзакция.
type Pricing struct {
	Subtotal    int64
	Tax         int64
	DeliveryFee int64
	Discount    int64
	Total       int64
}

// Payment платежный фасет заказа. TransactionID выставляется ровно один раз,
// при переходе в PaymentStatusPaid, и после этого не меняется.
type Payment struct {
	Method        string
	Status        PaymentStatus
	TransactionID string
	PaidAt        *time.Time
}

// ExternalTransaction транзакция банковского перевода, полученная от Casso.
// Description — произвольный текст, набранный человеком в назначении платежа.
type ExternalTransaction struct {
	ID          string
	Amount      int64
	Description string
	When        time.Time
}

// Coupon снимок купона на момент оформления заказа. Читается движком цен.
type Coupon struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue int64        `json:"discountValue"`
	MinOrderValue int64        `json:"minOrderValue"`
	UsageLimit    int64        `json:"usageLimit"`
	UsedCount     int64        `json:"usedCount"`
	IsActive      bool         `json:"isActive"`
	ExpiresAt     time.Time    `json:"expiresAt"`
}

// MatchAttempt журнальная запись "почему (не) сошлось" для операторской
// консоли. Никогда не влияет на дальнейшую обработку.
type MatchAttempt struct {
	ID              int64
	CreatedAt       time.Time
	TransactionID   string
	ExtractedNumber string
	ExpectedNumber  string
	AmountDelta     int64
	Outcome         MatchOutcome
	Reason          string
}

// ProcessedTransaction запись таблицы идемпотентности: транзакция с таким
// TransactionID уже была успешно применена к заказу OrderID.
type ProcessedTransaction struct {
	ID            int64
	CreatedAt     time.Time
	TransactionID string
	OrderID       int64
	Amount        int64
	Outcome       MatchOutcome
	Manual        bool
	OperatorID    int64
}
