// Package pricing чистый движок расчета денежной раскладки заказа.
//
// Функция расчета не имеет внешнего I/O и детерминирована: по тем же позициям,
// типу доставки, уровню клиента и снимку купона она обязана выдавать байт в
// байт тот же результат и в момент оформления заказа, и в момент сверки
// платежа. Сверка никогда не доверяет закэшированному total без возможности
// его пересчитать.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
)

const (
	DefaultTaxRate                     = 0.08
	DefaultFlatDeliveryFee       int64 = 30000
	DefaultFreeDeliveryThreshold int64 = 500000
)

// tierRates ставки скидки программы лояльности от subtotal.
var tierRates = map[domain.MemberTier]decimal.Decimal{
	domain.TierBronze:   decimal.Zero,
	domain.TierSilver:   decimal.NewFromFloat(0.05),
	domain.TierGold:     decimal.NewFromFloat(0.10),
	domain.TierPlatinum: decimal.NewFromFloat(0.15),
}

type Config struct {
	TaxRate               decimal.Decimal
	FlatDeliveryFee       int64
	FreeDeliveryThreshold int64
}

func DefaultConfig() Config {
	return Config{
		TaxRate:               decimal.NewFromFloat(DefaultTaxRate),
		FlatDeliveryFee:       DefaultFlatDeliveryFee,
		FreeDeliveryThreshold: DefaultFreeDeliveryThreshold,
	}
}

type Engine struct {
	conf Config
}

func New(conf Config) *Engine {
	return &Engine{conf: conf}
}

// Compute считает раскладку заказа на момент at. Момент оценки — явный
// вход: валидность купона зависит от времени, а сверка обязана уметь
// пересчитать раскладку на момент оформления заказа и получить байт в байт
// тот же итог.
//
// Алгоритм работы:
//  1. subtotal — сумма цена*количество по позициям.
//  2. Доставка бесплатна для не-доставки, для заказов от FreeDeliveryThreshold
//     и для уровней gold/platinum; иначе плоская ставка.
//  3. Налог и скидка лояльности — округленные доли subtotal.
//  4. Невалидный купон молча дает нулевую скидку (бизнес-решение: просроченный
//     купон на кассе просто игнорируется, это не ошибка).
//  5. Итог прижат к нулю снизу: никакое наложение скидок не дает
//     отрицательного счета.
func (e *Engine) Compute(
	items []domain.OrderItem,
	deliveryType domain.DeliveryType,
	tier domain.MemberTier,
	coupon *domain.Coupon,
	at time.Time,
) domain.Pricing {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}

	subtotalDec := decimal.NewFromInt(subtotal)

	tax := subtotalDec.Mul(e.conf.TaxRate).Round(0).IntPart()
	deliveryFee := e.deliveryFee(subtotal, deliveryType, tier)
	discount := e.membershipDiscount(subtotalDec, tier) + e.couponDiscount(subtotal, coupon, at)

	total := subtotal + tax + deliveryFee - discount
	if total < 0 {
		total = 0
	}

	return domain.Pricing{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		Total:       total,
	}
}

func (e *Engine) deliveryFee(subtotal int64, deliveryType domain.DeliveryType, tier domain.MemberTier) int64 {
	if deliveryType != domain.DeliveryTypeDelivery {
		return 0
	}
	if subtotal >= e.conf.FreeDeliveryThreshold {
		return 0
	}
	if tier == domain.TierGold || tier == domain.TierPlatinum {
		return 0
	}
	return e.conf.FlatDeliveryFee
}

func (e *Engine) membershipDiscount(subtotal decimal.Decimal, tier domain.MemberTier) int64 {
	rate, ok := tierRates[tier]
	if !ok {
		// неизвестный уровень приравниваем к bronze.
		return 0
	}
	return subtotal.Mul(rate).Round(0).IntPart()
}

func (e *Engine) couponDiscount(subtotal int64, coupon *domain.Coupon, at time.Time) int64 {
	if !ValidateCoupon(coupon, subtotal, at) {
		return 0
	}

	var discount int64
	switch coupon.DiscountType {
	case domain.DiscountTypePercentage:
		discount = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(coupon.DiscountValue)).
			Div(decimal.NewFromInt(100)). //nolint:mnd
			Round(0).
			IntPart()
	case domain.DiscountTypeFixed:
		discount = coupon.DiscountValue
	default:
		return 0
	}

	// скидка не может превышать subtotal.
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}
