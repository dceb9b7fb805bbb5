package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	paymentColumns = `id, payer_id, request_id, amount, base_amount, currency, coupon_id, gateway_order_id,
						gateway_payment_id, idempotency_key, gateway_refund_id, failure_reason, status,
						created_at, updated_at`
	InsertPayment = `INSERT INTO PAYMENTS (id, payer_id, request_id, amount, base_amount, currency, coupon_id,
						gateway_order_id, status, created_at, updated_at) 
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10);`
	GetPayment           = `SELECT ` + paymentColumns + ` FROM PAYMENTS WHERE id = $1;`
	GetPaymentByOrder    = `SELECT ` + paymentColumns + ` FROM PAYMENTS WHERE gateway_order_id = $1;`
	FindProcessedPayment = `SELECT ` + paymentColumns + ` FROM PAYMENTS 
						WHERE idempotency_key = $1 OR gateway_payment_id = $2
						LIMIT 1;`
	ListUserPayments = `SELECT ` + paymentColumns + ` FROM PAYMENTS WHERE payer_id = $1 ORDER BY created_at DESC;`
	CompletePayment  = `UPDATE PAYMENTS 
						SET status = 'COMPLETED',
						    gateway_payment_id = $2,
						    idempotency_key = $3,
						    failure_reason = NULL,
						    updated_at = NOW()
						WHERE gateway_order_id = $1 AND status IN ('PENDING', 'PROCESSING', 'FAILED', 'ABANDONED')
						RETURNING ` + paymentColumns + `;`
	UnlinkHeldRequest = `UPDATE PAYMENTS p
						SET request_id = NULL
						WHERE p.gateway_order_id = $1
						  AND p.request_id IS NOT NULL
						  AND p.status IN ('PENDING', 'PROCESSING', 'FAILED', 'ABANDONED')
						  AND EXISTS (
						      SELECT 1 FROM PAYMENTS o
						      WHERE o.request_id = p.request_id AND o.id <> p.id
						        AND o.status NOT IN ('FAILED', 'ABANDONED'));`
	MarkRequestPaid = `UPDATE INTERVIEW_REQUESTS 
						SET is_paid = TRUE, payment_id = $2, updated_at = NOW()
						WHERE id = $1 AND is_paid = FALSE;`
	AbandonPayment = `UPDATE PAYMENTS 
						SET status = 'ABANDONED', updated_at = NOW()
						WHERE id = $1 AND status IN ('PENDING', 'FAILED')
						RETURNING ` + paymentColumns + `;`
	ListRequestPayments = `SELECT ` + paymentColumns + ` FROM PAYMENTS WHERE request_id = $1 ORDER BY created_at DESC;`
	ListStalePayments   = `SELECT ` + paymentColumns + ` FROM PAYMENTS 
						WHERE status IN ('PENDING', 'FAILED') AND updated_at < $1
						ORDER BY updated_at
						LIMIT $2;`
	FailPayment = `UPDATE PAYMENTS 
						SET status = 'FAILED', failure_reason = $2, updated_at = NOW()
						WHERE gateway_order_id = $1 AND status IN ('PENDING', 'PROCESSING')
						RETURNING ` + paymentColumns + `;`
	RefundPayment = `UPDATE PAYMENTS 
						SET status = 'REFUNDED', gateway_refund_id = $2, updated_at = NOW()
						WHERE gateway_payment_id = $1 AND status = 'COMPLETED'
						RETURNING ` + paymentColumns + `;`
)

type PaymentDatabase struct {
	DB *Database
}

// Создание хранилища
func NewPaymentsStorage(db *Database) PaymentsStorage {
	return &PaymentDatabase{DB: db}
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.PayerID,
		&p.RequestID,
		&p.Amount,
		&p.BaseAmount,
		&p.Currency,
		&p.CouponID,
		&p.GatewayOrderID,
		&p.GatewayPaymentID,
		&p.IdempotencyKey,
		&p.GatewayRefundID,
		&p.FailureReason,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PaymentDatabase) queryPayment(ctx context.Context, q querier, query string, args ...any) (*models.Payment, error) {
	p, err := scanPayment(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

func (s *PaymentDatabase) AddPayment(ctx context.Context, payment models.Payment) error {
	_, err := s.DB.Pool.Exec(ctx, InsertPayment,
		payment.ID,
		payment.PayerID,
		payment.RequestID,
		payment.Amount,
		payment.BaseAmount,
		payment.Currency,
		payment.CouponID,
		payment.GatewayOrderID,
		payment.Status,
		payment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to add payment: %w", err)
	}
	return nil
}

func (s *PaymentDatabase) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	return s.queryPayment(ctx, s.DB.Pool, GetPayment, paymentID)
}

func (s *PaymentDatabase) GetPaymentByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	return s.queryPayment(ctx, s.DB.Pool, GetPaymentByOrder, orderID)
}

func (s *PaymentDatabase) FindProcessedPayment(ctx context.Context, idempotencyKey string, gatewayPaymentID string) (*models.Payment, error) {
	return s.queryPayment(ctx, s.DB.Pool, FindProcessedPayment, idempotencyKey, gatewayPaymentID)
}

func (s *PaymentDatabase) ListUserPayments(ctx context.Context, payerID string) ([]models.Payment, error) {
	return s.listPayments(ctx, ListUserPayments, payerID)
}

func (s *PaymentDatabase) ListRequestPayments(ctx context.Context, requestID string) ([]models.Payment, error) {
	return s.listPayments(ctx, ListRequestPayments, requestID)
}

func (s *PaymentDatabase) ListStalePayments(ctx context.Context, olderThan time.Time, count int) ([]models.Payment, error) {
	return s.listPayments(ctx, ListStalePayments, olderThan, count)
}

func (s *PaymentDatabase) listPayments(ctx context.Context, query string, args ...any) ([]models.Payment, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return payments, fmt.Errorf("failed scan payment data: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// CompletePayment - перевод платежа в COMPLETED и отметка связанной заявки оплаченной в одной транзакции
func (s *PaymentDatabase) CompletePayment(ctx context.Context, orderID string, gatewayPaymentID string, idempotencyKey string) (*models.Payment, bool, error) {
	var (
		payment *models.Payment
		changed bool
	)
	err := s.DB.WithTx(ctx, "CompletePayment", func(tx pgx.Tx) error {
		// заявку уже удерживает другой платёж: поздняя оплата остаётся самостоятельной
		if _, err := tx.Exec(ctx, UnlinkHeldRequest, orderID); err != nil {
			return fmt.Errorf("failed to unlink held request: %w", err)
		}
		p, err := scanPayment(tx.QueryRow(ctx, CompletePayment, orderID, gatewayPaymentID, idempotencyKey))
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				if isUniqueViolation(err) {
					return ErrAlreadyExists
				}
				return fmt.Errorf("failed to complete payment: %w", err)
			}
			// платёж уже в конечном состоянии или отсутствует
			payment, err = s.queryPayment(ctx, tx, GetPaymentByOrder, orderID)
			return err
		}
		if p.RequestID != nil {
			if _, err := tx.Exec(ctx, MarkRequestPaid, *p.RequestID, p.ID); err != nil {
				return fmt.Errorf("failed to mark request paid: %w", err)
			}
			logger.Debugw("interview request marked paid", "request_id", *p.RequestID, "payment_id", p.ID)
		}
		payment, changed = p, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return payment, changed, nil
}

func (s *PaymentDatabase) FailPayment(ctx context.Context, orderID string, reason string) (*models.Payment, bool, error) {
	p, err := scanPayment(s.DB.Pool.QueryRow(ctx, FailPayment, orderID, reason))
	if err == nil {
		return p, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to fail payment: %w", err)
	}
	p, err = s.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}

func (s *PaymentDatabase) AbandonPayment(ctx context.Context, paymentID string) (*models.Payment, bool, error) {
	p, err := scanPayment(s.DB.Pool.QueryRow(ctx, AbandonPayment, paymentID))
	if err == nil {
		return p, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to abandon payment: %w", err)
	}
	p, err = s.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}

func (s *PaymentDatabase) RefundPayment(ctx context.Context, gatewayPaymentID string, refundID string) (*models.Payment, bool, error) {
	p, err := scanPayment(s.DB.Pool.QueryRow(ctx, RefundPayment, gatewayPaymentID, refundID))
	if err == nil {
		return p, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to refund payment: %w", err)
	}
	p, err = s.queryPayment(ctx, s.DB.Pool, FindProcessedPayment, "", gatewayPaymentID)
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}
