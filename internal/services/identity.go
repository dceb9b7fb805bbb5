package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.IStorage
}

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.IStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Storage: storage}
}

// Регистрация нового пользователя. Администраторы через регистрацию не создаются
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) error {
	logger.Info("Register user:", user.Login)

	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		return ErrInvalidUserData
	}
	role := user.Role
	if role == "" {
		role = models.RoleRequester
	}
	if role != models.RoleRequester && role != models.RoleProvider {
		return ErrInvalidRole
	}
	return i.addUser(ctx, user.Login, user.Password, role)
}

func (i *Identity) addUser(ctx context.Context, login string, password string, role string) error {
	existing, err := i.Storage.GetUser(ctx, login)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		logger.Error("Error getting user", zap.Error(err))
		return err
	}
	if existing != nil {
		logger.Warn("User already exist")
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", zap.Error(err))
		return err
	}

	err = i.Storage.AddUser(ctx, models.UserData{
		UserID:       uuid.NewString(),
		Login:        login,
		PasswordHash: string(hashedPassword),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrUserAlreadyExists
		}
		logger.Error("Error registering user", login, zap.Error(err))
		return err
	}
	return nil
}

// EnsureAdmin - создание учётной записи администратора из настроек при старте
func (i *Identity) EnsureAdmin(ctx context.Context, login string, password string) error {
	if login == "" || password == "" {
		return nil
	}
	err := i.addUser(ctx, login, password, models.RoleAdmin)
	if errors.Is(err, ErrUserAlreadyExists) {
		return nil
	}
	if err == nil {
		logger.Info("Admin account created:", login)
	}
	return err
}

// Аутентификация пользователя
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error) {
	logger.Info("Authenticate user", user.Login)

	data, err := i.Storage.GetUser(ctx, user.Login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Error getting user", zap.Error(err))
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(data.PasswordHash), []byte(user.Password))
	if err != nil {
		logger.Warn("Invalid password", user.Login)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", user.Login)
	return data, nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(user *models.UserData) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"user_id":  user.UserID,
		"role":     user.Role,
		"username": user.Login,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}

// ApproveProvider - одобрение исполнителя администратором
func (i *Identity) ApproveProvider(ctx context.Context, providerID string) error {
	if err := i.Storage.ApproveProvider(ctx, providerID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logger.Error("Error approving provider", zap.Error(err))
		return err
	}
	logger.Infow("provider approved", "provider_id", providerID)
	return nil
}

// SetExpertise - замена навыков исполнителя
func (i *Identity) SetExpertise(ctx context.Context, providerID string, skills []string) ([]string, error) {
	normalized := NormalizeSkills(skills)
	if len(normalized) == 0 {
		return nil, ErrNoSkills
	}
	if err := i.Storage.SetExpertise(ctx, providerID, normalized); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrNotProvider
		}
		logger.Error("Error setting expertise", zap.Error(err))
		return nil, err
	}
	return normalized, nil
}
