package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultTax подставляется, если налог не указан.
	DefaultTax = "0%"
	// DefaultDiscount подставляется, если скидка не указана; парсится в ноль и проходит формат скидки.
	DefaultDiscount = "-0%"
)

var (
	taxPattern      = regexp.MustCompile(`^[0-9]*\.?\d{1,2}%$`)
	discountPattern = regexp.MustCompile(`^-[0-9]*\.?\d{1,2}%$`)
	amountPattern   = regexp.MustCompile(`^[0-9]*\.?\d{1,2}$`)
)

// ValidateItem проверяет позицию и возвращает её копию с налогом и скидкой по умолчанию.
func ValidateItem(item LineItem) (LineItem, error) {
	var errs []error

	if strings.TrimSpace(item.ID) == "" {
		errs = append(errs, validationErrorf("item id is required"))
	}
	if strings.TrimSpace(item.Name) == "" {
		errs = append(errs, validationErrorf("item name is required"))
	}
	if item.Quantity < 0 {
		errs = append(errs, validationErrorf("item quantity must be non-negative"))
	}
	if item.Price < 0 {
		errs = append(errs, validationErrorf("item price must be non-negative"))
	}

	if item.Tax == "" {
		item.Tax = DefaultTax
	} else if !taxPattern.MatchString(item.Tax) {
		errs = append(errs, validationErrorf("tax %q must be a positive percentage, for example '5.27%%'", item.Tax))
	}

	if item.Discount == "" {
		item.Discount = DefaultDiscount
	} else if !discountPattern.MatchString(item.Discount) {
		errs = append(errs, validationErrorf("discount %q must be a negative percentage, for example '-15.50%%'", item.Discount))
	}

	if len(errs) > 0 {
		return LineItem{}, errors.Join(errs...)
	}
	return item, nil
}

// ValidateCoupon проверяет купон; скидка обязательна.
func ValidateCoupon(coupon Coupon) (Coupon, error) {
	var errs []error

	if strings.TrimSpace(coupon.ID) == "" {
		errs = append(errs, validationErrorf("coupon id is required"))
	}
	if strings.TrimSpace(coupon.Name) == "" {
		errs = append(errs, validationErrorf("coupon name is required"))
	}
	if strings.TrimSpace(coupon.Code) == "" {
		errs = append(errs, validationErrorf("coupon code is required"))
	}
	switch {
	case coupon.Discount == "":
		errs = append(errs, validationErrorf("coupon discount is required"))
	case !discountPattern.MatchString(coupon.Discount):
		errs = append(errs, validationErrorf("discount %q must be a negative percentage, for example '-15.50%%'", coupon.Discount))
	}

	if len(errs) > 0 {
		return Coupon{}, errors.Join(errs...)
	}
	return coupon, nil
}

// ValidateOtherCharge проверяет дополнительный сбор.
func ValidateOtherCharge(charge OtherCharge) (OtherCharge, error) {
	var errs []error

	if strings.TrimSpace(charge.ID) == "" {
		errs = append(errs, validationErrorf("other charge id is required"))
	}
	if strings.TrimSpace(charge.Name) == "" {
		errs = append(errs, validationErrorf("other charge name is required"))
	}
	switch {
	case charge.Amount == "":
		errs = append(errs, validationErrorf("other charge amount is required"))
	case !amountPattern.MatchString(charge.Amount):
		errs = append(errs, validationErrorf("amount %q must be a numeric value, for example '15.00'", charge.Amount))
	}

	if len(errs) > 0 {
		return OtherCharge{}, errors.Join(errs...)
	}
	return charge, nil
}

// ParsePercentage переводит строку вида "-15.5%" в долю (-0.155).
// Нулевое значение всегда даёт ровно 0, в том числе "-0%".
func ParsePercentage(value string) (float64, error) {
	raw, ok := strings.CutSuffix(strings.TrimSpace(value), "%")
	if !ok {
		return 0, validationErrorf("percentage %q must end with %%", value)
	}
	number, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, validationErrorf("percentage %q is not numeric", value)
	}
	if number == 0 {
		return 0, nil
	}
	return number / 100, nil
}

// ParseTax проверяет формат налога и возвращает его долю.
func ParseTax(value string) (float64, error) {
	if !taxPattern.MatchString(value) {
		return 0, validationErrorf("tax %q must be a positive percentage", value)
	}
	return ParsePercentage(value)
}

// ParseDiscount проверяет формат скидки и возвращает её (отрицательную) долю.
func ParseDiscount(value string) (float64, error) {
	if !discountPattern.MatchString(value) {
		return 0, validationErrorf("discount %q must be a negative percentage", value)
	}
	return ParsePercentage(value)
}

// ParseAmount переводит сумму сбора в число.
func ParseAmount(value string) (float64, error) {
	if !amountPattern.MatchString(value) {
		return 0, validationErrorf("amount %q must be a numeric value", value)
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, validationErrorf("amount %q is not numeric", value)
	}
	return amount, nil
}
