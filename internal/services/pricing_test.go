package services

import (
	"testing"

	"github.com/denmor86/interview-market/internal/models"
)

func TestChargeAmount(t *testing.T) {
	testCases := []struct {
		Name     string
		Base     int64
		Coupon   *models.Coupon
		Floor    int64
		Expected int64
	}{
		{
			Name:     "Without coupon #1",
			Base:     49900,
			Floor:    100,
			Expected: 49900,
		},
		{
			Name:     "Percentage #2",
			Base:     49900,
			Coupon:   &models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 10},
			Floor:    100,
			Expected: 44910,
		},
		{
			Name:     "Percentage rounds half away from zero #3",
			Base:     999,
			Coupon:   &models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 50},
			Floor:    100,
			Expected: 500,
		},
		{
			Name:     "Percentage 100 is clamped to floor #4",
			Base:     49900,
			Coupon:   &models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 100},
			Floor:    100,
			Expected: 100,
		},
		{
			Name:     "Flat #5",
			Base:     49900,
			Coupon:   &models.Coupon{DiscountType: models.DiscountFlat, DiscountValue: 10000},
			Floor:    100,
			Expected: 39900,
		},
		{
			Name:     "Flat above base is clamped to floor #6",
			Base:     49900,
			Coupon:   &models.Coupon{DiscountType: models.DiscountFlat, DiscountValue: 60000},
			Floor:    100,
			Expected: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			amount := ChargeAmount(tc.Base, tc.Coupon, tc.Floor)
			if amount != tc.Expected {
				t.Errorf("Expected amount %d, got %d", tc.Expected, amount)
			}
			if amount <= 0 {
				t.Errorf("Expected positive amount, got %d", amount)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		Minor    int64
		Expected string
	}{
		{Minor: 49900, Expected: "499.00 INR"},
		{Minor: 5, Expected: "0.05 INR"},
		{Minor: 123456, Expected: "1234.56 INR"},
	}
	for _, tc := range testCases {
		if got := FormatAmount(tc.Minor, "INR"); got != tc.Expected {
			t.Errorf("Expected %q, got %q", tc.Expected, got)
		}
	}
}
