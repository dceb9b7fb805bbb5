package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/interview-market/internal/apperr"
	"github.com/denmor86/interview-market/internal/helpers"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/services"
	"go.uber.org/zap"
)

// writeError - ответ с HTTP-статусом категории ошибки
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrInvalidCredentials) {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Errorw("Request failed", "uri", r.RequestURI, "error", err)
	} else {
		logger.Debugw("Request rejected", "uri", r.RequestURI, "error", err)
	}
	http.Error(w, apperr.Message(err), status)
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, value any) bool {
	if err := json.NewDecoder(r.Body).Decode(value); err != nil {
		logger.Warn("Invalid request format:", zap.Error(err))
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return false
	}
	return true
}

// currentUser - идентификатор и роль пользователя из токена
func currentUser(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID, err := helpers.GetUserID(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", "", false
	}
	role, err := helpers.GetRole(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", "", false
	}
	return userID, role, true
}
