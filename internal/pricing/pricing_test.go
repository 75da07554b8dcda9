package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/thanhnd-dev/casso-recon/internal/domain"
)

type PricingTestSuite struct {
	suite.Suite
	engine *Engine
	now    time.Time
}

func TestPricingSuite(t *testing.T) {
	suite.Run(t, new(PricingTestSuite))
}

func (s *PricingTestSuite) SetupTest() {
	s.engine = New(DefaultConfig())
	s.now = time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)
}

func (s *PricingTestSuite) items(prices ...int64) []domain.OrderItem {
	items := make([]domain.OrderItem, len(prices))
	for i, p := range prices {
		items[i] = domain.OrderItem{Name: "pho bo", Price: p, Quantity: 1}
	}
	return items
}

func (s *PricingTestSuite) validCoupon() *domain.Coupon {
	return &domain.Coupon{
		Code:          "SUMMER10",
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: 10,
		MinOrderValue: 100000,
		UsageLimit:    100,
		UsedCount:     5,
		IsActive:      true,
		ExpiresAt:     s.now.Add(24 * time.Hour),
	}
}

func (s *PricingTestSuite) TestComputeDeliveryOrder() {
	// 200000 subtotal, 8% налог, плоская доставка, без скидок.
	got := s.engine.Compute(
		s.items(150000, 50000),
		domain.DeliveryTypeDelivery,
		domain.TierBronze,
		nil,
		s.now,
	)

	s.Equal(domain.Pricing{
		Subtotal:    200000,
		Tax:         16000,
		DeliveryFee: 30000,
		Discount:    0,
		Total:       246000,
	}, got)
}

func (s *PricingTestSuite) TestComputeIsDeterministic() {
	coupon := s.validCoupon()
	items := []domain.OrderItem{
		{Name: "bun cha", Price: 65000, Quantity: 3},
		{Name: "tra da", Price: 10000, Quantity: 2},
	}

	first := s.engine.Compute(items, domain.DeliveryTypeDelivery, domain.TierSilver, coupon, s.now)
	for i := 0; i < 10; i++ {
		s.Equal(first, s.engine.Compute(items, domain.DeliveryTypeDelivery, domain.TierSilver, coupon, s.now))
	}
}

func (s *PricingTestSuite) TestDeliveryFeeWaivers() {
	cases := []struct {
		name         string
		subtotal     int64
		deliveryType domain.DeliveryType
		tier         domain.MemberTier
		wantFee      int64
	}{
		{"dine in never pays delivery", 100000, domain.DeliveryTypeDineIn, domain.TierBronze, 0},
		{"pickup never pays delivery", 100000, domain.DeliveryTypePickup, domain.TierBronze, 0},
		{"small delivery pays flat fee", 100000, domain.DeliveryTypeDelivery, domain.TierBronze, 30000},
		{"threshold exactly met waives fee", 500000, domain.DeliveryTypeDelivery, domain.TierBronze, 0},
		{"gold rides free", 100000, domain.DeliveryTypeDelivery, domain.TierGold, 0},
		{"platinum rides free", 100000, domain.DeliveryTypeDelivery, domain.TierPlatinum, 0},
		{"silver pays like everyone", 100000, domain.DeliveryTypeDelivery, domain.TierSilver, 30000},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			got := s.engine.Compute(s.items(c.subtotal), c.deliveryType, c.tier, nil, s.now)
			s.Equal(c.wantFee, got.DeliveryFee)
		})
	}
}

func (s *PricingTestSuite) TestMembershipDiscount() {
	cases := []struct {
		tier domain.MemberTier
		want int64
	}{
		{domain.TierBronze, 0},
		{domain.TierSilver, 10000},
		{domain.TierGold, 20000},
		{domain.TierPlatinum, 30000},
	}

	for _, c := range cases {
		s.Run(string(c.tier), func() {
			got := s.engine.Compute(s.items(200000), domain.DeliveryTypeDineIn, c.tier, nil, s.now)
			s.Equal(c.want, got.Discount)
		})
	}
}

func (s *PricingTestSuite) TestCouponDiscount() {
	s.Run("percentage coupon", func() {
		got := s.engine.Compute(s.items(200000), domain.DeliveryTypeDineIn, domain.TierBronze, s.validCoupon(), s.now)
		s.Equal(int64(20000), got.Discount)
	})

	s.Run("fixed coupon", func() {
		coupon := s.validCoupon()
		coupon.DiscountType = domain.DiscountTypeFixed
		coupon.DiscountValue = 50000

		got := s.engine.Compute(s.items(200000), domain.DeliveryTypeDineIn, domain.TierBronze, coupon, s.now)
		s.Equal(int64(50000), got.Discount)
	})

	s.Run("fixed coupon capped at subtotal", func() {
		coupon := s.validCoupon()
		coupon.DiscountType = domain.DiscountTypeFixed
		coupon.DiscountValue = 500000
		coupon.MinOrderValue = 0

		got := s.engine.Compute(s.items(100000), domain.DeliveryTypeDineIn, domain.TierBronze, coupon, s.now)
		s.Equal(int64(100000), got.Discount)
	})

	s.Run("expired coupon silently ignored", func() {
		coupon := s.validCoupon()
		coupon.ExpiresAt = s.now.Add(-time.Hour)

		got := s.engine.Compute(s.items(200000), domain.DeliveryTypeDineIn, domain.TierBronze, coupon, s.now)
		s.Equal(int64(0), got.Discount)
	})

	s.Run("below minimum order value", func() {
		coupon := s.validCoupon()

		got := s.engine.Compute(s.items(90000), domain.DeliveryTypeDineIn, domain.TierBronze, coupon, s.now)
		s.Equal(int64(0), got.Discount)
	})

	s.Run("usage limit exhausted", func() {
		coupon := s.validCoupon()
		coupon.UsedCount = coupon.UsageLimit

		got := s.engine.Compute(s.items(200000), domain.DeliveryTypeDineIn, domain.TierBronze, coupon, s.now)
		s.Equal(int64(0), got.Discount)
	})

	s.Run("inactive coupon", func() {
		coupon := s.validCoupon()
		coupon.IsActive = false

		got := s.engine.Compute(s.items(200000), domain.DeliveryTypeDineIn, domain.TierBronze, coupon, s.now)
		s.Equal(int64(0), got.Discount)
	})
}

func (s *PricingTestSuite) TestTotalNeverNegative() {
	coupon := s.validCoupon()
	coupon.DiscountType = domain.DiscountTypeFixed
	coupon.DiscountValue = 10000000
	coupon.MinOrderValue = 0

	// platinum скидка + купон на всю сумму: total прижат к нулю.
	got := s.engine.Compute(s.items(100000), domain.DeliveryTypeDineIn, domain.TierPlatinum, coupon, s.now)
	s.GreaterOrEqual(got.Total, int64(0))
}

func (s *PricingTestSuite) TestEmptyOrder() {
	got := s.engine.Compute(nil, domain.DeliveryTypeDineIn, domain.TierBronze, nil, s.now)
	s.Equal(domain.Pricing{}, got)
}

func (s *PricingTestSuite) TestValidateCoupon() {
	s.True(ValidateCoupon(s.validCoupon(), 150000, s.now))
	s.False(ValidateCoupon(nil, 150000, s.now))
	s.True(ValidateCoupon(s.validCoupon(), 100000, s.now), "minimum order value is inclusive")
}
