package domain

// LineItem описывает позицию корзины.
type LineItem struct {
	// ID уникален в пределах коллекции позиций.
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	// Tax задаёт процент налога вида "5.27%".
	Tax string `json:"tax"`
	// Discount задаёт отрицательный процент скидки вида "-15.50%".
	Discount string `json:"discount"`
}

// Coupon даёт скидку на всю корзину, без количества.
type Coupon struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Discount string `json:"discount"`
}

// OtherCharge описывает фиксированный сбор (например, доставку), который добавляется после налогов.
type OtherCharge struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ChargeLine соответствует строке сбора в разбивке итога.
type ChargeLine struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Summary содержит полную разбивку итога корзины.
type Summary struct {
	Amount        float64 `json:"amount"`
	Discount      float64 `json:"discount"`
	DiscountValue float64 `json:"discount_value"`
	SubTotal      float64 `json:"sub_total"`
	Taxes         float64 `json:"taxes"`

	// Поля ниже заполняются только при наличии купонов.
	CouponsApplied      bool    `json:"coupons_applied"`
	CouponDiscount      float64 `json:"coupon_discount,omitempty"`
	CouponDiscountValue float64 `json:"coupon_discount_value,omitempty"`
	Total               float64 `json:"total,omitempty"`

	OtherCharges []ChargeLine `json:"other_charges,omitempty"`
	TotalDue     float64      `json:"total_due"`
}
