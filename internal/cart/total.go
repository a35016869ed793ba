package cart

import (
	"fmt"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// computeSummary сворачивает коллекции в итог строго в таком порядке:
// сумма -> скидки позиций -> подытог -> налоги -> купоны (с пересчётом налогов) -> сборы.
func computeSummary(items []domain.LineItem, coupons []domain.Coupon, charges []domain.OtherCharge) (domain.Summary, error) {
	var (
		summary  domain.Summary
		discount float64
		taxRate  float64
	)

	for _, item := range items {
		summary.Amount += float64(item.Quantity) * item.Price

		d, err := domain.ParsePercentage(item.Discount)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("item %s discount: %w", item.ID, err)
		}
		discount += d

		t, err := domain.ParsePercentage(item.Tax)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("item %s tax: %w", item.ID, err)
		}
		taxRate += t
	}

	summary.Discount = discount
	summary.DiscountValue = summary.Amount * discount
	summary.SubTotal = summary.Amount + summary.DiscountValue
	summary.Taxes = summary.SubTotal * taxRate

	var chargesSum float64
	if len(charges) > 0 {
		summary.OtherCharges = make([]domain.ChargeLine, 0, len(charges))
	}
	for _, charge := range charges {
		amount, err := domain.ParseAmount(charge.Amount)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("other charge %s amount: %w", charge.ID, err)
		}
		summary.OtherCharges = append(summary.OtherCharges, domain.ChargeLine{
			ID:     charge.ID,
			Name:   charge.Name,
			Amount: amount,
		})
		chargesSum += amount
	}

	if len(coupons) == 0 {
		summary.TotalDue = summary.SubTotal + summary.Taxes + chargesSum
		return summary, nil
	}

	var couponDiscount float64
	for _, coupon := range coupons {
		d, err := domain.ParsePercentage(coupon.Discount)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("coupon %s discount: %w", coupon.ID, err)
		}
		couponDiscount += d
	}

	summary.CouponsApplied = true
	summary.CouponDiscount = couponDiscount
	summary.CouponDiscountValue = summary.SubTotal * couponDiscount
	summary.Total = summary.SubTotal + summary.CouponDiscountValue
	// Налог берётся с суммы после купонов.
	summary.Taxes = summary.Total * taxRate
	summary.TotalDue = summary.Total + summary.Taxes + chargesSum

	return summary, nil
}
