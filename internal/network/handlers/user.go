package handlers

import (
	"net/http"

	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/services"
	"go.uber.org/zap"
)

// TokenResponse - ответ с токеном доступа
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func writeToken(w http.ResponseWriter, i services.IdentityService, user *models.UserData) {
	token, err := i.GenerateJWT(user)
	if err != nil {
		logger.Error("Failed to generate token", zap.Error(err))
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusOK, TokenResponse{Token: token, UserID: user.UserID, Role: user.Role})
}

// RegisterUserHandler - регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if !decodeJSON(w, r, &user) {
			return
		}

		if err := i.RegisterUser(r.Context(), user); err != nil {
			writeError(w, r, err)
			return
		}

		// сразу аутентифицируем, чтобы получить идентификатор и роль
		data, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			writeError(w, r, err)
			return
		}
		logger.Info("User registered and authenticated", data.Login)
		writeToken(w, i, data)
	})
}

// AuthenticateUserHandle - аутентификация пользователя
func AuthenticateUserHandle(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if !decodeJSON(w, r, &user) {
			return
		}
		data, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			logger.Warn("Authentication failed", user.Login)
			writeError(w, r, err)
			return
		}
		writeToken(w, i, data)
	})
}

// SetExpertiseHandler - обновление навыков исполнителя
func SetExpertiseHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.ExpertiseRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		skills, err := i.SetExpertise(r.Context(), userID, req.Skills)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.ExpertiseRequest{Skills: skills})
	})
}

// ApproveProviderHandler - одобрение исполнителя администратором
func ApproveProviderHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := i.ApproveProvider(r.Context(), urlID(r)); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
