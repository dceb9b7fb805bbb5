package models

import "time"

// Типы скидок
const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

// Coupon - модель купона на скидку
type Coupon struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue int64      `json:"discount_value"`
	PerUserLimit  int        `json:"per_user_limit"`
	GlobalLimit   *int       `json:"global_limit,omitempty"`
	UsedCount     int        `json:"used_count"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// CouponValidation - результат проверки купона
type CouponValidation struct {
	Valid         bool    `json:"valid"`
	Reason        string  `json:"reason,omitempty"`
	RemainingUses int     `json:"remaining_uses"`
	Coupon        *Coupon `json:"coupon,omitempty"`
}
