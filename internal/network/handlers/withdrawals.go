package handlers

import (
	"net/http"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/services"
)

// GetBalanceHandler - баланс исполнителя
func GetBalanceHandler(s services.WithdrawalsService, currency string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		balance, err := s.GetBalance(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toBalanceResponse(balance, currency))
	})
}

// CreateWithdrawalHandler - запрос на вывод средств
func CreateWithdrawalHandler(s services.WithdrawalsService, currency string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		var request models.WithdrawalRequest
		if !decodeJSON(w, r, &request) {
			return
		}
		request.ProviderID = userID

		withdrawal, err := s.CreateWithdrawal(r.Context(), request)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusAccepted, toWithdrawalResponse(withdrawal, currency))
	})
}

// ListWithdrawalsHandler - выводы средств исполнителя
func ListWithdrawalsHandler(s services.WithdrawalsService, currency string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		withdrawals, err := s.ListWithdrawals(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if len(withdrawals) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		response := make([]models.WithdrawalResponse, 0, len(withdrawals))
		for i := range withdrawals {
			response = append(response, toWithdrawalResponse(&withdrawals[i], currency))
		}
		writeJSON(w, http.StatusOK, response)
	})
}
