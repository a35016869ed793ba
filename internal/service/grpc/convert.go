package grpcsvc

import (
	"github.com/vladislavdragonenkov/cart/internal/domain"
	cartv1 "github.com/vladislavdragonenkov/cart/proto/cart/v1"
)

// fromProtoItem отклоняет позицию без quantity или price.
func fromProtoItem(item *cartv1.LineItem) (domain.LineItem, error) {
	if item == nil {
		return domain.LineItem{}, domain.NewValidationError("item is required")
	}
	if item.Quantity == nil {
		return domain.LineItem{}, domain.NewValidationError("item quantity is required")
	}
	if item.Price == nil {
		return domain.LineItem{}, domain.NewValidationError("item price is required")
	}
	return domain.LineItem{
		ID:       item.GetId(),
		Name:     item.GetName(),
		Quantity: int(item.GetQuantity()),
		Price:    item.GetPrice(),
		Tax:      item.GetTax(),
		Discount: item.GetDiscount(),
	}, nil
}

func fromProtoCoupon(coupon *cartv1.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:       coupon.GetId(),
		Name:     coupon.GetName(),
		Code:     coupon.GetCode(),
		Discount: coupon.GetDiscount(),
	}
}

func fromProtoCharge(charge *cartv1.OtherCharge) domain.OtherCharge {
	return domain.OtherCharge{
		ID:     charge.GetId(),
		Name:   charge.GetName(),
		Amount: charge.GetAmount(),
	}
}

func toProtoItem(item domain.LineItem) *cartv1.LineItem {
	quantity := int32(item.Quantity)
	price := item.Price
	return &cartv1.LineItem{
		Id:       item.ID,
		Name:     item.Name,
		Quantity: &quantity,
		Price:    &price,
		Tax:      item.Tax,
		Discount: item.Discount,
	}
}

func toProtoItems(items []domain.LineItem) []*cartv1.LineItem {
	out := make([]*cartv1.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, toProtoItem(item))
	}
	return out
}

func toProtoCoupons(coupons []domain.Coupon) []*cartv1.Coupon {
	out := make([]*cartv1.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		out = append(out, &cartv1.Coupon{
			Id:       coupon.ID,
			Name:     coupon.Name,
			Code:     coupon.Code,
			Discount: coupon.Discount,
		})
	}
	return out
}

func toProtoCharges(charges []domain.OtherCharge) []*cartv1.OtherCharge {
	out := make([]*cartv1.OtherCharge, 0, len(charges))
	for _, charge := range charges {
		out = append(out, &cartv1.OtherCharge{
			Id:     charge.ID,
			Name:   charge.Name,
			Amount: charge.Amount,
		})
	}
	return out
}

func toProtoSummary(summary domain.Summary) *cartv1.Summary {
	lines := make([]*cartv1.ChargeLine, 0, len(summary.OtherCharges))
	for _, line := range summary.OtherCharges {
		lines = append(lines, &cartv1.ChargeLine{
			Id:     line.ID,
			Name:   line.Name,
			Amount: line.Amount,
		})
	}

	return &cartv1.Summary{
		Amount:              summary.Amount,
		Discount:            summary.Discount,
		DiscountValue:       summary.DiscountValue,
		SubTotal:            summary.SubTotal,
		Taxes:               summary.Taxes,
		CouponsApplied:      summary.CouponsApplied,
		CouponDiscount:      summary.CouponDiscount,
		CouponDiscountValue: summary.CouponDiscountValue,
		Total:               summary.Total,
		OtherCharges:        lines,
		TotalDue:            summary.TotalDue,
	}
}
