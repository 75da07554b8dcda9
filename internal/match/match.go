// Package match решает, закрывает ли внешняя транзакция конкретный заказ.
package match

import (
	"fmt"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
	"github.com/thanhnd-dev/casso-recon/internal/extract"
)

// Result итог сопоставления. Reason — человекочитаемое объяснение для
// операторской консоли, не машинный код: оператору по нему нужно решать,
// делать ли ручную привязку.
type Result struct {
	Matched     bool
	Outcome     domain.MatchOutcome
	Extracted   string
	AmountDelta int64
	Reason      string
}

// Match трехступенчатая проверка с коротким замыканием: извлечение кода,
// текстовое сравнение, числовое сравнение. Текстовая идентичность дешева и
// сильно дискриминирует, поэтому идет раньше числовой. Сравнение кодов
// точное и нечувствительно к регистру по построению — извлечение приводит
// код к верхнему регистру.
func Match(tx domain.ExternalTransaction, order domain.Order) Result {
	extracted, ok := extract.Extract(tx.Description)
	if !ok {
		return Result{
			Outcome: domain.OutcomeNoReference,
			Reason:  "no order reference found in transfer description",
		}
	}

	if extracted != order.OrderNumber {
		return Result{
			Outcome:   domain.OutcomeNumberMismatch,
			Extracted: extracted,
			Reason: fmt.Sprintf(
				"order number mismatch: transfer references %s, order is %s",
				extracted, order.OrderNumber,
			),
		}
	}

	delta := tx.Amount - order.Pricing.Total
	if delta < 0 {
		delta = -delta
	}
	if delta > domain.AmountTolerance {
		return Result{
			Outcome:     domain.OutcomeAmountMismatch,
			Extracted:   extracted,
			AmountDelta: delta,
			Reason: fmt.Sprintf(
				"amount mismatch: transferred %d VND, order total is %d VND",
				tx.Amount, order.Pricing.Total,
			),
		}
	}

	return Result{
		Matched:     true,
		Outcome:     domain.OutcomeMatched,
		Extracted:   extracted,
		AmountDelta: delta,
	}
}
