package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Причины недействительности купона
const (
	CouponReasonUnknown      = "unknown coupon"
	CouponReasonInactive     = "coupon is inactive"
	CouponReasonExpired      = "coupon expired"
	CouponReasonGlobalLimit  = "coupon usage limit reached"
	CouponReasonUserLimit    = "coupon already used"
	CouponReasonUnauthorized = "user is required"
)

type Coupons struct {
	Storage storage.IStorage
	Now     func() time.Time
}

// Создание сервиса
func NewCoupons(storage storage.IStorage) *Coupons {
	return &Coupons{Storage: storage, Now: time.Now}
}

func invalidCoupon(reason string) *models.CouponValidation {
	return &models.CouponValidation{Valid: false, Reason: reason}
}

// Validate - проверка купона без погашения. Любая неопределённость трактуется как недействительный купон
func (s *Coupons) Validate(ctx context.Context, code string, userID string) (*models.CouponValidation, error) {
	if userID == "" {
		return invalidCoupon(CouponReasonUnauthorized), nil
	}
	coupon, err := s.Storage.GetCouponByCode(ctx, NormalizeCouponCode(code))
	if err != nil {
		if errors.Is(err, storage.ErrCouponNotFound) {
			return invalidCoupon(CouponReasonUnknown), nil
		}
		logger.Error("Failed to get coupon", zap.Error(err))
		return nil, err
	}

	if !coupon.Active {
		return invalidCoupon(CouponReasonInactive), nil
	}
	if coupon.ExpiresAt != nil && !coupon.ExpiresAt.After(s.Now()) {
		return invalidCoupon(CouponReasonExpired), nil
	}
	if coupon.GlobalLimit != nil && coupon.UsedCount >= *coupon.GlobalLimit {
		return invalidCoupon(CouponReasonGlobalLimit), nil
	}

	used, err := s.Storage.GetCouponUsage(ctx, coupon.ID, userID)
	if err != nil {
		logger.Error("Failed to get coupon usage", zap.Error(err))
		return nil, err
	}
	if used >= coupon.PerUserLimit {
		return invalidCoupon(CouponReasonUserLimit), nil
	}

	return &models.CouponValidation{
		Valid:         true,
		RemainingUses: coupon.PerUserLimit - used,
		Coupon:        coupon,
	}, nil
}

// Apply - повторная проверка и погашение купона одним условным обновлением счётчиков
func (s *Coupons) Apply(ctx context.Context, code string, userID string) (*models.Coupon, error) {
	validation, err := s.Validate(ctx, code, userID)
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		if validation.Reason == CouponReasonGlobalLimit || validation.Reason == CouponReasonUserLimit {
			return nil, fmt.Errorf("%w: %s", ErrCouponLimitExceeded, validation.Reason)
		}
		return nil, fmt.Errorf("%w: %s", ErrCouponInvalid, validation.Reason)
	}

	coupon := validation.Coupon
	err = s.Storage.IncrementCouponUsage(ctx, coupon.ID, userID, coupon.PerUserLimit)
	if err != nil {
		if errors.Is(err, storage.ErrLimitExceeded) {
			logger.Warnw("coupon redemption lost the race", "coupon_id", coupon.ID, "user_id", userID)
			return nil, ErrCouponLimitExceeded
		}
		logger.Error("Failed to increment coupon usage", zap.Error(err))
		return nil, err
	}
	audit("coupon_usage", coupon.ID, "", "applied", "user_id", userID)
	return coupon, nil
}

// Release - компенсирующее освобождение погашения
func (s *Coupons) Release(ctx context.Context, couponID string, userID string) error {
	if err := s.Storage.ReleaseCouponUsage(ctx, couponID, userID); err != nil {
		logger.Error("Failed to release coupon usage", zap.Error(err))
		return err
	}
	audit("coupon_usage", couponID, "applied", "released", "user_id", userID)
	return nil
}

// CreateCoupon - создание купона администратором
func (s *Coupons) CreateCoupon(ctx context.Context, coupon models.Coupon) (*models.Coupon, error) {
	coupon.Code = NormalizeCouponCode(coupon.Code)
	if !couponPattern.MatchString(coupon.Code) {
		return nil, fmt.Errorf("%w: code must be 3-32 characters of A-Z, 0-9, _ or -", ErrInvalidCoupon)
	}
	switch coupon.DiscountType {
	case models.DiscountPercentage:
		if coupon.DiscountValue < 1 || coupon.DiscountValue > 100 {
			return nil, fmt.Errorf("%w: percentage must be between 1 and 100", ErrInvalidCoupon)
		}
	case models.DiscountFlat:
		if coupon.DiscountValue <= 0 {
			return nil, fmt.Errorf("%w: flat discount must be positive", ErrInvalidCoupon)
		}
	default:
		return nil, fmt.Errorf("%w: discount type must be percentage or flat", ErrInvalidCoupon)
	}
	if coupon.PerUserLimit == 0 {
		coupon.PerUserLimit = 1
	}
	if coupon.PerUserLimit < 0 {
		return nil, fmt.Errorf("%w: per user limit must be positive", ErrInvalidCoupon)
	}
	if coupon.GlobalLimit != nil && *coupon.GlobalLimit < 1 {
		return nil, fmt.Errorf("%w: global limit must be positive", ErrInvalidCoupon)
	}
	now := s.Now()
	if coupon.ExpiresAt != nil && !coupon.ExpiresAt.After(now) {
		return nil, fmt.Errorf("%w: expiry must be in the future", ErrInvalidCoupon)
	}

	coupon.ID = uuid.NewString()
	coupon.UsedCount = 0
	coupon.Active = true
	coupon.CreatedAt = now

	if err := s.Storage.AddCoupon(ctx, coupon); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrCouponExists
		}
		logger.Error("Failed to add coupon", zap.Error(err))
		return nil, err
	}
	logger.Info("Coupon created:", coupon.Code)
	return &coupon, nil
}
