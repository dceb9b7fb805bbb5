package services

import (
	"github.com/denmor86/interview-market/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ChargeAmount - сумма к оплате с учётом купона, не меньше floor.
// Процентная скидка округляется до целых минимальных единиц от нуля
func ChargeAmount(base int64, coupon *models.Coupon, floor int64) int64 {
	amount := base
	if coupon != nil {
		switch coupon.DiscountType {
		case models.DiscountPercentage:
			pct := min(max(coupon.DiscountValue, 0), 100)
			amount = decimal.NewFromInt(base).
				Mul(hundred.Sub(decimal.NewFromInt(pct))).
				Div(hundred).
				Round(0).
				IntPart()
		case models.DiscountFlat:
			amount = base - coupon.DiscountValue
		}
	}
	if amount < floor {
		return floor
	}
	return amount
}

// FormatAmount - сумма в минимальных единицах в виде "499.00 INR"
func FormatAmount(minor int64, currency string) string {
	return decimal.New(minor, -2).StringFixed(2) + " " + currency
}
