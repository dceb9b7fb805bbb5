package handlers

import (
	"net/http"
	"strings"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/services"
)

// ValidateCouponHandler - проверка купона без его применения
func ValidateCouponHandler(c services.CouponsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		code := strings.TrimSpace(r.URL.Query().Get("code"))
		if code == "" {
			http.Error(w, "coupon code is required", http.StatusBadRequest)
			return
		}
		validation, err := c.Validate(r.Context(), code, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, validation)
	})
}

// CreateCouponHandler - создание купона администратором
func CreateCouponHandler(c services.CouponsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var coupon models.Coupon
		if !decodeJSON(w, r, &coupon) {
			return
		}
		created, err := c.CreateCoupon(r.Context(), coupon)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	})
}
