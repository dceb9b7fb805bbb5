package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/storage"
	"github.com/denmor86/interview-market/internal/storage/memory"
	"github.com/denmor86/interview-market/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"
)

func TestCouponsService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	testConfig(t)

	now := time.Now()
	expired := now.Add(-time.Hour)
	limit := 5
	active := models.Coupon{ID: "c1", Code: "WELCOME", DiscountType: models.DiscountFlat, DiscountValue: 100, PerUserLimit: 2, Active: true}

	testCases := []struct {
		Name               string
		Code               string
		UserID             string
		SetupMocks         func()
		ExpectedError      error
		ExpectedValidation *models.CouponValidation
	}{
		{
			Name:   "Invalid. Unknown code #1",
			Code:   "nope",
			UserID: "u1",
			SetupMocks: func() {
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "NOPE").Return(nil, storage.ErrCouponNotFound)
			},
			ExpectedValidation: &models.CouponValidation{Reason: CouponReasonUnknown},
		},
		{
			Name:   "Invalid. Inactive #2",
			Code:   "welcome",
			UserID: "u1",
			SetupMocks: func() {
				c := active
				c.Active = false
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(&c, nil)
			},
			ExpectedValidation: &models.CouponValidation{Reason: CouponReasonInactive},
		},
		{
			Name:   "Invalid. Expired #3",
			Code:   "WELCOME",
			UserID: "u1",
			SetupMocks: func() {
				c := active
				c.ExpiresAt = &expired
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(&c, nil)
			},
			ExpectedValidation: &models.CouponValidation{Reason: CouponReasonExpired},
		},
		{
			Name:   "Invalid. Global limit reached #4",
			Code:   "WELCOME",
			UserID: "u1",
			SetupMocks: func() {
				c := active
				c.GlobalLimit = &limit
				c.UsedCount = 5
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(&c, nil)
			},
			ExpectedValidation: &models.CouponValidation{Reason: CouponReasonGlobalLimit},
		},
		{
			Name:   "Invalid. User limit reached #5",
			Code:   "WELCOME",
			UserID: "u1",
			SetupMocks: func() {
				c := active
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(&c, nil)
				mockStorage.EXPECT().GetCouponUsage(gomock.Any(), "c1", "u1").Return(2, nil)
			},
			ExpectedValidation: &models.CouponValidation{Reason: CouponReasonUserLimit},
		},
		{
			Name:   "Error. Storage failure #6",
			Code:   "WELCOME",
			UserID: "u1",
			SetupMocks: func() {
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(nil, errors.New("connection refused"))
			},
			ExpectedError: errors.New("connection refused"),
		},
		{
			Name:   "Success #7",
			Code:   " welcome ",
			UserID: "u1",
			SetupMocks: func() {
				c := active
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(&c, nil)
				mockStorage.EXPECT().GetCouponUsage(gomock.Any(), "c1", "u1").Return(1, nil)
			},
			ExpectedValidation: &models.CouponValidation{Valid: true, RemainingUses: 1, Coupon: &active},
		},
	}

	coupons := NewCoupons(mockStorage)
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			validation, err := coupons.Validate(ctx, tc.Code, tc.UserID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedValidation, validation)
			if len(diff) != 0 {
				t.Errorf("expected validation mismatch:\n %s", diff)
			}
		})
	}
}

func TestCouponsService_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)
	testConfig(t)

	coupon := models.Coupon{ID: "c1", Code: "WELCOME", DiscountType: models.DiscountPercentage, DiscountValue: 100, PerUserLimit: 1, Active: true}

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Error. Lost the race on conditional increment #1",
			SetupMocks: func() {
				c := coupon
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(&c, nil)
				mockStorage.EXPECT().GetCouponUsage(gomock.Any(), "c1", "u1").Return(0, nil)
				mockStorage.EXPECT().IncrementCouponUsage(gomock.Any(), "c1", "u1", 1).Return(storage.ErrLimitExceeded)
			},
			ExpectedError: ErrCouponLimitExceeded,
		},
		{
			Name: "Error. Already used #2",
			SetupMocks: func() {
				c := coupon
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(&c, nil)
				mockStorage.EXPECT().GetCouponUsage(gomock.Any(), "c1", "u1").Return(1, nil)
			},
			ExpectedError: ErrCouponLimitExceeded,
		},
		{
			Name: "Error. Unknown coupon #3",
			SetupMocks: func() {
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(nil, storage.ErrCouponNotFound)
			},
			ExpectedError: ErrCouponInvalid,
		},
		{
			Name: "Success #4",
			SetupMocks: func() {
				c := coupon
				mockStorage.EXPECT().GetCouponByCode(gomock.Any(), "WELCOME").Return(&c, nil)
				mockStorage.EXPECT().GetCouponUsage(gomock.Any(), "c1", "u1").Return(0, nil)
				mockStorage.EXPECT().IncrementCouponUsage(gomock.Any(), "c1", "u1", 1).Return(nil)
			},
		},
	}

	coupons := NewCoupons(mockStorage)
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			applied, err := coupons.Apply(context.Background(), "WELCOME", "u1")
			if !errors.Is(err, tc.ExpectedError) {
				t.Fatalf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err == nil && applied.ID != "c1" {
				t.Errorf("Expected coupon c1, got %v", applied)
			}
		})
	}
}

func TestCouponsService_ApplyConcurrentSameUser(t *testing.T) {
	testConfig(t)
	store := memory.NewStorage()
	coupon := addCoupon(t, store, models.Coupon{Code: "FREE", DiscountType: models.DiscountPercentage, DiscountValue: 100, PerUserLimit: 1})
	coupons := NewCoupons(store)

	const attempts = 2
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		limited   atomic.Int32
		start     = make(chan struct{})
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := coupons.Apply(context.Background(), "FREE", "u1")
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, ErrCouponLimitExceeded):
				limited.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if successes.Load() != 1 || limited.Load() != attempts-1 {
		t.Errorf("Expected 1 success and %d limit errors, got %d and %d", attempts-1, successes.Load(), limited.Load())
	}
	used, _ := store.GetCouponUsage(context.Background(), coupon.ID, "u1")
	if used != 1 {
		t.Errorf("Expected usage 1, got %d", used)
	}
}

func TestCouponsService_ApplyConcurrentGlobalLimit(t *testing.T) {
	testConfig(t)
	store := memory.NewStorage()
	limit := 3
	addCoupon(t, store, models.Coupon{Code: "LAUNCH", DiscountType: models.DiscountFlat, DiscountValue: 1000, PerUserLimit: 1, GlobalLimit: &limit})
	coupons := NewCoupons(store)

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for i := range 10 {
		wg.Add(1)
		go func(user int) {
			defer wg.Done()
			if _, err := coupons.Apply(context.Background(), "LAUNCH", string(rune('a'+user))); err == nil {
				successes.Add(1)
			}
		}(i)
	}
	wg.Wait()

	if int(successes.Load()) != limit {
		t.Errorf("Expected %d successful redemptions, got %d", limit, successes.Load())
	}
	stored, _ := store.GetCouponByCode(context.Background(), "LAUNCH")
	if stored.UsedCount != limit {
		t.Errorf("Expected used count %d, got %d", limit, stored.UsedCount)
	}
}

func TestCouponsService_Release(t *testing.T) {
	testConfig(t)
	store := memory.NewStorage()
	coupon := addCoupon(t, store, models.Coupon{Code: "ONCE", DiscountType: models.DiscountFlat, DiscountValue: 1000})
	coupons := NewCoupons(store)
	ctx := context.Background()

	if _, err := coupons.Apply(ctx, "ONCE", "u1"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if err := coupons.Release(ctx, coupon.ID, "u1"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	// освобождённое погашение можно использовать снова, повторное освобождение ничего не меняет
	if err := coupons.Release(ctx, coupon.ID, "u1"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	validation, err := coupons.Validate(ctx, "ONCE", "u1")
	if err != nil || !validation.Valid || validation.RemainingUses != 1 {
		t.Errorf("Expected coupon to be valid again, got %+v, %v", validation, err)
	}
	stored, _ := store.GetCouponByCode(ctx, "ONCE")
	if stored.UsedCount != 0 {
		t.Errorf("Expected used count 0, got %d", stored.UsedCount)
	}
}

func TestCouponsService_CreateCoupon(t *testing.T) {
	testConfig(t)
	past := time.Now().Add(-time.Hour)
	zero := 0

	testCases := []struct {
		Name          string
		Coupon        models.Coupon
		ExpectedError error
		Expected      *models.Coupon
	}{
		{
			Name:     "Success. Code normalized, per user limit defaulted #1",
			Coupon:   models.Coupon{Code: " spring-25 ", DiscountType: models.DiscountPercentage, DiscountValue: 25},
			Expected: &models.Coupon{Code: "SPRING-25", DiscountType: models.DiscountPercentage, DiscountValue: 25, PerUserLimit: 1, Active: true},
		},
		{
			Name:          "Error. Invalid code #2",
			Coupon:        models.Coupon{Code: "a", DiscountType: models.DiscountFlat, DiscountValue: 100},
			ExpectedError: ErrInvalidCoupon,
		},
		{
			Name:          "Error. Percentage above 100 #3",
			Coupon:        models.Coupon{Code: "MANY", DiscountType: models.DiscountPercentage, DiscountValue: 101},
			ExpectedError: ErrInvalidCoupon,
		},
		{
			Name:          "Error. Flat not positive #4",
			Coupon:        models.Coupon{Code: "ZERO", DiscountType: models.DiscountFlat},
			ExpectedError: ErrInvalidCoupon,
		},
		{
			Name:          "Error. Unknown type #5",
			Coupon:        models.Coupon{Code: "WHAT", DiscountType: "bogo", DiscountValue: 1},
			ExpectedError: ErrInvalidCoupon,
		},
		{
			Name:          "Error. Global limit not positive #6",
			Coupon:        models.Coupon{Code: "NONE", DiscountType: models.DiscountFlat, DiscountValue: 1, GlobalLimit: &zero},
			ExpectedError: ErrInvalidCoupon,
		},
		{
			Name:          "Error. Expiry in the past #7",
			Coupon:        models.Coupon{Code: "OLD", DiscountType: models.DiscountFlat, DiscountValue: 1, ExpiresAt: &past},
			ExpectedError: ErrInvalidCoupon,
		},
	}

	coupons := NewCoupons(memory.NewStorage())
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			created, err := coupons.CreateCoupon(context.Background(), tc.Coupon)
			if !errors.Is(err, tc.ExpectedError) {
				t.Fatalf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.Expected, created, cmpopts.IgnoreFields(models.Coupon{}, "ID", "CreatedAt"))
			if len(diff) != 0 {
				t.Errorf("expected coupon mismatch:\n %s", diff)
			}
		})
	}

	_, err := coupons.CreateCoupon(context.Background(), models.Coupon{Code: "SPRING-25", DiscountType: models.DiscountFlat, DiscountValue: 1})
	if !errors.Is(err, ErrCouponExists) {
		t.Errorf("Expected error '%v', got: '%v'", ErrCouponExists, err)
	}
}
