package domain

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type DeliveryType string

const (
	DeliveryTypeDineIn   DeliveryType = "dine_in"
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

type MemberTier string

const (
	TierBronze   MemberTier = "bronze"
	TierSilver   MemberTier = "silver"
	TierGold     MemberTier = "gold"
	TierPlatinum MemberTier = "platinum"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// MatchOutcome итог обработки одной транзакции относительно заказа.
// Все значения кроме OutcomeMatched — штатные, а не ошибочные: большинство
// переводов на счет ресторана вообще не связаны с заказами.
type MatchOutcome string

const (
	OutcomeMatched        MatchOutcome = "matched"
	OutcomeNoReference    MatchOutcome = "no_reference"
	OutcomeOrderNotFound  MatchOutcome = "order_not_found"
	OutcomeNumberMismatch MatchOutcome = "number_mismatch"
	OutcomeAmountMismatch MatchOutcome = "amount_mismatch"
	OutcomeAlreadyPaid    MatchOutcome = "already_paid"
)

// AmountTolerance допустимое расхождение суммы перевода с суммой заказа
// в донгах. Покрывает банковские округления, а не логику скидок.
const AmountTolerance int64 = 1000
