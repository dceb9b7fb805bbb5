package handlers

import (
	"net/http"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/services"
)

// CheckoutHandler - создание платёжного заказа. Сумма рассчитывается сервером
func CheckoutHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		var checkout models.CheckoutRequest
		if !decodeJSON(w, r, &checkout) {
			return
		}
		order, err := p.CreateOrder(r.Context(), userID, checkout)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, order)
	})
}

// VerifyPaymentHandler - подтверждение оплаты с подписью от клиента
func VerifyPaymentHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		var confirmation models.ClientConfirmation
		if !decodeJSON(w, r, &confirmation) {
			return
		}
		payment, err := p.VerifyClientPayment(r.Context(), userID, confirmation)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPaymentResponse(payment))
	})
}

// ListPaymentsHandler - платежи пользователя
func ListPaymentsHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		payments, err := p.ListPayments(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if len(payments) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		response := make([]models.PaymentResponse, 0, len(payments))
		for i := range payments {
			response = append(response, toPaymentResponse(&payments[i]))
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// RefundPaymentHandler - возврат платежа администратором
func RefundPaymentHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		payment, err := p.Refund(r.Context(), adminID, urlID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toPaymentResponse(payment))
	})
}
