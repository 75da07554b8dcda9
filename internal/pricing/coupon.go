package pricing

import (
	"time"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
)

// ValidateCoupon проверяет применимость купона к заказу на момент now.
// Купон валиден, если он активен, не просрочен, subtotal не меньше
// минимальной суммы заказа и лимит использований не исчерпан.
func ValidateCoupon(coupon *domain.Coupon, subtotal int64, now time.Time) bool {
	if coupon == nil {
		return false
	}
	if !coupon.IsActive {
		return false
	}
	if now.After(coupon.ExpiresAt) {
		return false
	}
	if subtotal < coupon.MinOrderValue {
		return false
	}
	if coupon.UsedCount >= coupon.UsageLimit {
		return false
	}
	return true
}
