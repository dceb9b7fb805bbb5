package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	InsertCoupon = `INSERT INTO COUPONS (id, code, discount_type, discount_value, per_user_limit, global_limit,
						used_count, expires_at, active, created_at) 
						VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9)
						ON CONFLICT (code) DO NOTHING
						RETURNING id;`
	couponColumns = `id, code, discount_type, discount_value, per_user_limit, global_limit, used_count,
						expires_at, active, created_at`
	GetCouponByCode = `SELECT ` + couponColumns + ` FROM COUPONS WHERE code = $1;`
	GetCoupon       = `SELECT ` + couponColumns + ` FROM COUPONS WHERE id = $1;`
	GetCouponUsage  = `SELECT count FROM COUPON_USAGES WHERE coupon_id = $1 AND user_id = $2;`
	// глобальный счётчик увеличивается только пока купон активен, не истёк и лимит не исчерпан
	IncrementCouponGlobal = `UPDATE COUPONS 
						SET used_count = used_count + 1
						WHERE id = $1 
						  AND active
						  AND (expires_at IS NULL OR expires_at > NOW())
						  AND (global_limit IS NULL OR used_count < global_limit)
						RETURNING used_count;`
	IncrementCouponUser = `INSERT INTO COUPON_USAGES (coupon_id, user_id, count) 
						VALUES ($1, $2, 1)
						ON CONFLICT (coupon_id, user_id) DO UPDATE 
						SET count = COUPON_USAGES.count + 1
						WHERE COUPON_USAGES.count < $3
						RETURNING count;`
	ReleaseCouponUser = `UPDATE COUPON_USAGES 
						SET count = count - 1
						WHERE coupon_id = $1 AND user_id = $2 AND count > 0;`
	ReleaseCouponGlobal = `UPDATE COUPONS 
						SET used_count = used_count - 1
						WHERE id = $1 AND used_count > 0;`
)

type CouponDatabase struct {
	DB *Database
}

// Создание хранилища
func NewCouponsStorage(db *Database) CouponsStorage {
	return &CouponDatabase{DB: db}
}

func (s *CouponDatabase) AddCoupon(ctx context.Context, coupon models.Coupon) error {
	var id string
	err := s.DB.Pool.QueryRow(ctx, InsertCoupon,
		coupon.ID,
		coupon.Code,
		coupon.DiscountType,
		coupon.DiscountValue,
		coupon.PerUserLimit,
		coupon.GlobalLimit,
		coupon.ExpiresAt,
		coupon.Active,
		coupon.CreatedAt,
	).Scan(&id)

	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to add coupon: %w", err)
}

func (s *CouponDatabase) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	return s.queryCoupon(ctx, GetCouponByCode, code)
}

func (s *CouponDatabase) GetCoupon(ctx context.Context, couponID string) (*models.Coupon, error) {
	return s.queryCoupon(ctx, GetCoupon, couponID)
}

func (s *CouponDatabase) queryCoupon(ctx context.Context, query string, arg string) (*models.Coupon, error) {
	var c models.Coupon
	err := s.DB.Pool.QueryRow(ctx, query, arg).Scan(
		&c.ID,
		&c.Code,
		&c.DiscountType,
		&c.DiscountValue,
		&c.PerUserLimit,
		&c.GlobalLimit,
		&c.UsedCount,
		&c.ExpiresAt,
		&c.Active,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return &c, nil
}

func (s *CouponDatabase) GetCouponUsage(ctx context.Context, couponID string, userID string) (int, error) {
	var count int
	err := s.DB.Pool.QueryRow(ctx, GetCouponUsage, couponID, userID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get coupon usage: %w", err)
	}
	return count, nil
}

// IncrementCouponUsage - условное увеличение глобального и пользовательского счётчиков в одной транзакции.
// Конкурирующие погашения сериализуются блокировкой строки купона
func (s *CouponDatabase) IncrementCouponUsage(ctx context.Context, couponID string, userID string, perUserLimit int) error {
	return s.DB.WithTx(ctx, "IncrementCouponUsage", func(tx pgx.Tx) error {
		var used int
		if err := tx.QueryRow(ctx, IncrementCouponGlobal, couponID).Scan(&used); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrLimitExceeded
			}
			return fmt.Errorf("failed to increment coupon usage: %w", err)
		}
		var count int
		if err := tx.QueryRow(ctx, IncrementCouponUser, couponID, userID, perUserLimit).Scan(&count); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrLimitExceeded
			}
			return fmt.Errorf("failed to increment user coupon usage: %w", err)
		}
		return nil
	})
}

func (s *CouponDatabase) ReleaseCouponUsage(ctx context.Context, couponID string, userID string) error {
	return s.DB.WithTx(ctx, "ReleaseCouponUsage", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, ReleaseCouponUser, couponID, userID)
		if err != nil {
			return fmt.Errorf("failed to release user coupon usage: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, ReleaseCouponGlobal, couponID); err != nil {
			return fmt.Errorf("failed to release coupon usage: %w", err)
		}
		return nil
	})
}
