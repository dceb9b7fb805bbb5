package services

import (
	"context"
	"testing"
	"time"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/storage/memory"
	"github.com/google/uuid"
)

const (
	testKeySecret     = "key_secret"
	testWebhookSecret = "webhook_secret"
	testPayoutSecret  = "payout_secret"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	cfg.Gateway.KeyID = "key_id"
	cfg.Gateway.KeySecret = testKeySecret
	cfg.Gateway.WebhookSecret = testWebhookSecret
	cfg.Payout.WebhookSecret = testPayoutSecret
	cfg.Payout.AccountNumber = "2323230000000001"
	return cfg
}

func addUser(t *testing.T, store *memory.Storage, user models.UserData) models.UserData {
	t.Helper()
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	if user.Login == "" {
		user.Login = user.UserID
	}
	if err := store.AddUser(context.Background(), user); err != nil {
		t.Fatalf("failed to add user: %v", err)
	}
	return user
}

func addCoupon(t *testing.T, store *memory.Storage, coupon models.Coupon) models.Coupon {
	t.Helper()
	if coupon.ID == "" {
		coupon.ID = uuid.NewString()
	}
	if coupon.PerUserLimit == 0 {
		coupon.PerUserLimit = 1
	}
	coupon.Active = true
	if err := store.AddCoupon(context.Background(), coupon); err != nil {
		t.Fatalf("failed to add coupon: %v", err)
	}
	return coupon
}

// addEarnings - завершённое оплаченное интервью исполнителя
func addEarnings(t *testing.T, store *memory.Storage, requesterID, providerID string, amount int64) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	scheduled := now.Add(-2 * time.Hour)
	requestID := uuid.NewString()
	err := store.AddRequest(ctx, models.InterviewRequest{
		ID:              requestID,
		RequesterID:     requesterID,
		ProviderID:      &providerID,
		Skills:          []string{"go"},
		DurationMinutes: 60,
		ScheduledAt:     &scheduled,
		Status:          models.RequestStatusCompleted,
		IsPaid:          true,
		ExpiresAt:       now.Add(time.Hour),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, "")
	if err != nil {
		t.Fatalf("failed to add request: %v", err)
	}
	paymentID := uuid.NewString()
	err = store.AddPayment(ctx, models.Payment{
		ID:             paymentID,
		PayerID:        requesterID,
		RequestID:      &requestID,
		Amount:         amount,
		BaseAmount:     amount,
		Currency:       "INR",
		GatewayOrderID: "order_" + paymentID,
		Status:         models.PaymentStatusCompleted,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		t.Fatalf("failed to add payment: %v", err)
	}
}
