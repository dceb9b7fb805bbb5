package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	withdrawalColumns = `id, provider_id, amount, method, destination, status, gateway_payout_id, failure_reason,
						created_at, updated_at`
	// заработок - завершённые платежи, привязанные к завершённым интервью исполнителя
	GetBalance = `SELECT
						COALESCE((SELECT SUM(p.amount) FROM PAYMENTS p
						          JOIN INTERVIEW_REQUESTS r ON r.id = p.request_id
						          WHERE r.provider_id = $1 AND r.status = 'COMPLETED' AND p.status = 'COMPLETED'), 0)::BIGINT,
						COALESCE((SELECT SUM(amount) FROM WITHDRAWALS
						          WHERE provider_id = $1 AND status = 'COMPLETED'), 0)::BIGINT,
						COALESCE((SELECT SUM(amount) FROM WITHDRAWALS
						          WHERE provider_id = $1 AND status IN ('PENDING', 'PROCESSING')), 0)::BIGINT;`
	HasInFlightWithdrawal = `SELECT EXISTS(SELECT 1 FROM WITHDRAWALS 
						WHERE provider_id = $1 AND status IN ('PENDING', 'PROCESSING'));`
	InsertWithdrawal = `INSERT INTO WITHDRAWALS (id, provider_id, amount, method, destination, status, created_at, updated_at) 
						VALUES ($1, $2, $3, $4, $5, $6, $7, $7);`
	GetWithdrawal         = `SELECT ` + withdrawalColumns + ` FROM WITHDRAWALS WHERE id = $1;`
	GetWithdrawalByPayout = `SELECT ` + withdrawalColumns + ` FROM WITHDRAWALS WHERE gateway_payout_id = $1;`
	ListWithdrawals       = `SELECT ` + withdrawalColumns + ` FROM WITHDRAWALS WHERE provider_id = $1 ORDER BY created_at DESC;`
	AttachPayout          = `UPDATE WITHDRAWALS 
						SET gateway_payout_id = $2,
						    status = CASE WHEN status = 'PENDING' THEN 'PROCESSING' ELSE status END,
						    updated_at = NOW()
						WHERE id = $1 AND (gateway_payout_id IS NULL OR gateway_payout_id = $2)
						RETURNING ` + withdrawalColumns + `;`
	TransitionWithdrawal = `UPDATE WITHDRAWALS 
						SET status = $2,
						    gateway_payout_id = COALESCE(gateway_payout_id, $3),
						    failure_reason = COALESCE($4, failure_reason),
						    updated_at = NOW()
						WHERE id = $1 AND status = ANY($5)
						RETURNING ` + withdrawalColumns + `;`
	ClaimStaleWithdrawals = `UPDATE WITHDRAWALS 
						SET updated_at = NOW()
						WHERE id IN (
						    SELECT id FROM WITHDRAWALS 
						    WHERE updated_at < $1
						      AND (status = 'PENDING' OR (status = 'PROCESSING' AND gateway_payout_id IS NOT NULL))
						    ORDER BY updated_at 
						    LIMIT $2
						    FOR UPDATE SKIP LOCKED
						)
						RETURNING ` + withdrawalColumns + `;`
)

type WithdrawalDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db}
}

func scanWithdrawal(row pgx.Row) (*models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(
		&w.ID,
		&w.ProviderID,
		&w.Amount,
		&w.Method,
		&w.Destination,
		&w.Status,
		&w.GatewayPayoutID,
		&w.FailureReason,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func scanWithdrawals(rows pgx.Rows) ([]models.Withdrawal, error) {
	defer rows.Close()
	var withdrawals []models.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

func balance(ctx context.Context, q querier, providerID string) (*models.Balance, error) {
	var b models.Balance
	if err := q.QueryRow(ctx, GetBalance, providerID).Scan(&b.Earnings, &b.Withdrawn, &b.Reserved); err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &b, nil
}

func (s *WithdrawalDatabase) GetBalance(ctx context.Context, providerID string) (*models.Balance, error) {
	return balance(ctx, s.DB.Pool, providerID)
}

// ReserveWithdrawal - проверка незавершённых выводов и баланса и вставка под блокировкой строки исполнителя
func (s *WithdrawalDatabase) ReserveWithdrawal(ctx context.Context, withdrawal models.Withdrawal) error {
	return s.DB.WithTx(ctx, "ReserveWithdrawal", func(tx pgx.Tx) error {
		if err := lockUser(ctx, tx, withdrawal.ProviderID); err != nil {
			return err
		}

		var inFlight bool
		if err := tx.QueryRow(ctx, HasInFlightWithdrawal, withdrawal.ProviderID).Scan(&inFlight); err != nil {
			return fmt.Errorf("failed to check pending withdrawals: %w", err)
		}
		if inFlight {
			return ErrPendingWithdrawal
		}

		b, err := balance(ctx, tx, withdrawal.ProviderID)
		if err != nil {
			return err
		}
		if withdrawal.Amount > b.Signed() {
			return ErrInsufficientBalance
		}

		_, err = tx.Exec(ctx, InsertWithdrawal,
			withdrawal.ID,
			withdrawal.ProviderID,
			withdrawal.Amount,
			withdrawal.Method,
			withdrawal.Destination,
			withdrawal.Status,
			withdrawal.CreatedAt,
		)
		if err != nil {
			// частичный уникальный индекс на незавершённые выводы
			if isUniqueViolation(err) {
				return ErrPendingWithdrawal
			}
			return fmt.Errorf("failed to add withdrawal: %w", err)
		}
		return nil
	})
}

func (s *WithdrawalDatabase) queryWithdrawal(ctx context.Context, query string, arg string) (*models.Withdrawal, error) {
	w, err := scanWithdrawal(s.DB.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}
	return w, nil
}

func (s *WithdrawalDatabase) GetWithdrawal(ctx context.Context, withdrawalID string) (*models.Withdrawal, error) {
	return s.queryWithdrawal(ctx, GetWithdrawal, withdrawalID)
}

func (s *WithdrawalDatabase) GetWithdrawalByPayoutID(ctx context.Context, payoutID string) (*models.Withdrawal, error) {
	return s.queryWithdrawal(ctx, GetWithdrawalByPayout, payoutID)
}

func (s *WithdrawalDatabase) ListWithdrawals(ctx context.Context, providerID string) ([]models.Withdrawal, error) {
	rows, err := s.DB.Pool.Query(ctx, ListWithdrawals, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	return scanWithdrawals(rows)
}

// AttachPayout - сохранение идентификатора выплаты; PENDING переходит в PROCESSING
func (s *WithdrawalDatabase) AttachPayout(ctx context.Context, withdrawalID string, payoutID string) (*models.Withdrawal, error) {
	w, err := scanWithdrawal(s.DB.Pool.QueryRow(ctx, AttachPayout, withdrawalID, payoutID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidTransition
		}
		if isUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to attach payout: %w", err)
	}
	return w, nil
}

func (s *WithdrawalDatabase) TransitionWithdrawal(ctx context.Context, t models.WithdrawalTransition) (*models.Withdrawal, bool, error) {
	w, err := scanWithdrawal(s.DB.Pool.QueryRow(ctx, TransitionWithdrawal,
		t.WithdrawalID, t.To, t.PayoutID, t.FailureReason, t.From))
	if err == nil {
		return w, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to update withdrawal status: %w", err)
	}
	w, err = s.GetWithdrawal(ctx, t.WithdrawalID)
	if err != nil {
		return nil, false, err
	}
	return w, false, nil
}

func (s *WithdrawalDatabase) ClaimStaleWithdrawals(ctx context.Context, olderThan time.Time, count int) ([]models.Withdrawal, error) {
	rows, err := s.DB.Pool.Query(ctx, ClaimStaleWithdrawals, olderThan, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale withdrawals: %w", err)
	}
	return scanWithdrawals(rows)
}
