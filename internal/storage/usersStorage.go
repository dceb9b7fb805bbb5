package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	InsertUser = `INSERT INTO USERS (id, login, password, role, expertise, approved) 
						VALUES ($1, $2, $3, $4, $5, $6) 
						ON CONFLICT (login) DO NOTHING
						RETURNING login;`
	userColumns   = `id, login, password, role, expertise, approved, discounted_used`
	GetUser       = `SELECT ` + userColumns + ` FROM USERS WHERE login=$1;`
	GetUserByID   = `SELECT ` + userColumns + ` FROM USERS WHERE id=$1;`
	SetExpertise  = `UPDATE USERS SET expertise = $2 WHERE id = $1 AND role = 'provider';`
	ApproveUser   = `UPDATE USERS SET approved = TRUE WHERE id = $1 AND role = 'provider';`
	ListProviders = `SELECT ` + userColumns + ` FROM USERS 
						WHERE role = 'provider' AND approved AND expertise && $1
						ORDER BY login;`
	IncrementDiscounted = `UPDATE USERS SET discounted_used = discounted_used + 1 WHERE id = $1;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func scanUser(row pgx.Row) (*models.UserData, error) {
	var user models.UserData
	err := row.Scan(
		&user.UserID,
		&user.Login,
		&user.PasswordHash,
		&user.Role,
		&user.Expertise,
		&user.Approved,
		&user.DiscountedUsed,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserDatabase) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	user, err := scanUser(s.DB.Pool.QueryRow(ctx, GetUser, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserDatabase) GetUserByID(ctx context.Context, userID string) (*models.UserData, error) {
	user, err := scanUser(s.DB.Pool.QueryRow(ctx, GetUserByID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserDatabase) AddUser(ctx context.Context, user models.UserData) error {
	var prevLogin string
	expertise := user.Expertise
	if expertise == nil {
		expertise = []string{}
	}

	err := s.DB.Pool.QueryRow(ctx, InsertUser,
		user.UserID, user.Login, user.PasswordHash, user.Role, expertise, user.Approved).Scan(&prevLogin)

	// Успешное добавление
	if err == nil {
		return nil
	}

	// ON CONFLICT DO NOTHING не возвращает строк, гонка вставок даёт 23505
	if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add user: %w", err)
}

func (s *UserDatabase) SetExpertise(ctx context.Context, userID string, skills []string) error {
	tag, err := s.DB.Pool.Exec(ctx, SetExpertise, userID, skills)
	if err != nil {
		return fmt.Errorf("failed to set expertise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserDatabase) ApproveProvider(ctx context.Context, userID string) error {
	tag, err := s.DB.Pool.Exec(ctx, ApproveUser, userID)
	if err != nil {
		return fmt.Errorf("failed to approve provider: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserDatabase) ListProvidersBySkills(ctx context.Context, skills []string) ([]models.UserData, error) {
	rows, err := s.DB.Pool.Query(ctx, ListProviders, skills)
	if err != nil {
		return nil, fmt.Errorf("failed to get providers: %w", err)
	}
	defer rows.Close()

	var users []models.UserData
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return users, fmt.Errorf("failed scan provider data: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (s *UserDatabase) IncrementDiscountedUsage(ctx context.Context, userID string) error {
	tag, err := s.DB.Pool.Exec(ctx, IncrementDiscounted, userID)
	if err != nil {
		return fmt.Errorf("failed to increment discounted usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
