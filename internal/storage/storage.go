package storage

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/interview-market/internal/models"
)

type UsersStorage interface {
	AddUser(ctx context.Context, user models.UserData) error
	GetUser(ctx context.Context, login string) (*models.UserData, error)
	GetUserByID(ctx context.Context, userID string) (*models.UserData, error)
	SetExpertise(ctx context.Context, userID string, skills []string) error
	ApproveProvider(ctx context.Context, userID string) error
	ListProvidersBySkills(ctx context.Context, skills []string) ([]models.UserData, error)
	IncrementDiscountedUsage(ctx context.Context, userID string) error
}

type InterviewsStorage interface {
	// AddRequest сохраняет заявку; если paymentID не пуст, платёж атомарно привязывается к заявке
	AddRequest(ctx context.Context, request models.InterviewRequest, paymentID string) error
	GetRequest(ctx context.Context, requestID string) (*models.InterviewRequest, error)
	ListAvailableRequests(ctx context.Context, skills []string, now time.Time) ([]models.InterviewRequest, error)
	ListUserRequests(ctx context.Context, userID string) ([]models.InterviewRequest, error)
	// ClaimRequest проверяет пересечение расписания исполнителя и захватывает заявку одним условным обновлением
	ClaimRequest(ctx context.Context, claim models.ClaimData) (*models.InterviewRequest, error)
	TransitionRequest(ctx context.Context, transition models.RequestTransition) (*models.InterviewRequest, error)
	SetMeetingLink(ctx context.Context, requestID string, link string) (string, error)
	ExpireRequests(ctx context.Context, now time.Time) (int64, error)
	AddFeedback(ctx context.Context, feedback models.Feedback) error
}

type PaymentsStorage interface {
	AddPayment(ctx context.Context, payment models.Payment) error
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	GetPaymentByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	FindProcessedPayment(ctx context.Context, idempotencyKey string, gatewayPaymentID string) (*models.Payment, error)
	ListUserPayments(ctx context.Context, payerID string) ([]models.Payment, error)
	// CompletePayment переводит платёж в COMPLETED и помечает связанную заявку оплаченной. changed=false, если переход не выполнен
	CompletePayment(ctx context.Context, orderID string, gatewayPaymentID string, idempotencyKey string) (*models.Payment, bool, error)
	FailPayment(ctx context.Context, orderID string, reason string) (*models.Payment, bool, error)
	RefundPayment(ctx context.Context, gatewayPaymentID string, refundID string) (*models.Payment, bool, error)
	// AbandonPayment окончательно закрывает PENDING или FAILED платёж. changed=false, если переход не выполнен
	AbandonPayment(ctx context.Context, paymentID string) (*models.Payment, bool, error)
	ListRequestPayments(ctx context.Context, requestID string) ([]models.Payment, error)
	// ListStalePayments возвращает PENDING и FAILED платежи без обновлений с olderThan
	ListStalePayments(ctx context.Context, olderThan time.Time, count int) ([]models.Payment, error)
}

type CouponsStorage interface {
	AddCoupon(ctx context.Context, coupon models.Coupon) error
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
	GetCoupon(ctx context.Context, couponID string) (*models.Coupon, error)
	GetCouponUsage(ctx context.Context, couponID string, userID string) (int, error)
	// IncrementCouponUsage условно увеличивает глобальный и пользовательский счётчики, ErrLimitExceeded если лимит исчерпан
	IncrementCouponUsage(ctx context.Context, couponID string, userID string, perUserLimit int) error
	ReleaseCouponUsage(ctx context.Context, couponID string, userID string) error
}

type WithdrawalsStorage interface {
	GetBalance(ctx context.Context, providerID string) (*models.Balance, error)
	// ReserveWithdrawal проверяет отсутствие незавершённого вывода и достаточность баланса и сохраняет вывод в PENDING
	ReserveWithdrawal(ctx context.Context, withdrawal models.Withdrawal) error
	GetWithdrawal(ctx context.Context, withdrawalID string) (*models.Withdrawal, error)
	GetWithdrawalByPayoutID(ctx context.Context, payoutID string) (*models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, providerID string) ([]models.Withdrawal, error)
	AttachPayout(ctx context.Context, withdrawalID string, payoutID string) (*models.Withdrawal, error)
	TransitionWithdrawal(ctx context.Context, transition models.WithdrawalTransition) (*models.Withdrawal, bool, error)
	ClaimStaleWithdrawals(ctx context.Context, olderThan time.Time, count int) ([]models.Withdrawal, error)
}

type IStorage interface {
	UsersStorage
	InterviewsStorage
	PaymentsStorage
	CouponsStorage
	WithdrawalsStorage
	Close() error
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRequestNotFound    = errors.New("interview request not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	ErrAlreadyExists       = errors.New("already exists")
	ErrAlreadyClaimed      = errors.New("interview request already claimed")
	ErrScheduleConflict    = errors.New("provider schedule conflict")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrPaymentUnavailable  = errors.New("payment is not completed or already linked")
	ErrLimitExceeded       = errors.New("coupon limit exceeded")
	ErrPendingWithdrawal   = errors.New("withdrawal already in progress")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
