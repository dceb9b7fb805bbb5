package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/interview-market/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

func claim(ctx context.Context, name string) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	value, ok := claims[name].(string)
	if !ok || value == "" {
		logger.Warn("Undefined claim from token:", name)
		return "", fmt.Errorf("undefined %s", name)
	}
	return value, nil
}

// GetUserID - извлекает идентификатор пользователя из контекста JWT токена
func GetUserID(ctx context.Context) (string, error) {
	return claim(ctx, "user_id")
}

// GetRole - извлекает роль пользователя из контекста JWT токена
func GetRole(ctx context.Context) (string, error) {
	return claim(ctx, "role")
}
