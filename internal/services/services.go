package services

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/go-chi/jwtauth/v5"
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) error
	AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.UserData, error)
	GenerateJWT(user *models.UserData) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
	ApproveProvider(ctx context.Context, providerID string) error
	SetExpertise(ctx context.Context, providerID string, skills []string) ([]string, error)
}

type CouponsService interface {
	Validate(ctx context.Context, code string, userID string) (*models.CouponValidation, error)
	Apply(ctx context.Context, code string, userID string) (*models.Coupon, error)
	Release(ctx context.Context, couponID string, userID string) error
	CreateCoupon(ctx context.Context, coupon models.Coupon) (*models.Coupon, error)
}

type PaymentsService interface {
	CreateOrder(ctx context.Context, payerID string, checkout models.CheckoutRequest) (*models.CheckoutResponse, error)
	VerifyClientPayment(ctx context.Context, payerID string, confirmation models.ClientConfirmation) (*models.Payment, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	Confirm(ctx context.Context, orderID string, paymentID string) (*models.Payment, error)
	Refund(ctx context.Context, adminID string, paymentID string) (*models.Payment, error)
	ListPayments(ctx context.Context, payerID string) ([]models.Payment, error)
	ExpireAbandonedPayments(ctx context.Context) (int64, error)
}

type InterviewsService interface {
	CreateRequest(ctx context.Context, data models.CreateRequestData) (*models.InterviewRequest, error)
	ListAvailable(ctx context.Context, providerID string) ([]models.InterviewRequest, error)
	Claim(ctx context.Context, claim models.ClaimData) (*models.InterviewRequest, error)
	Start(ctx context.Context, requestID string, providerID string) (*models.InterviewRequest, error)
	Complete(ctx context.Context, requestID string, providerID string) (*models.InterviewRequest, error)
	Cancel(ctx context.Context, requestID string, actorID string, reason string) (*models.InterviewRequest, error)
	MarkNoShow(ctx context.Context, requestID string, providerID string) (*models.InterviewRequest, error)
	SubmitFeedback(ctx context.Context, feedback models.Feedback) (*models.InterviewRequest, error)
	GetRequest(ctx context.Context, requestID string, actorID string, role string) (*models.InterviewRequest, error)
	ListMine(ctx context.Context, userID string) ([]models.InterviewRequest, error)
	ExpireOldRequests(ctx context.Context) (int64, error)
}

type WithdrawalsService interface {
	GetBalance(ctx context.Context, providerID string) (*models.Balance, error)
	CreateWithdrawal(ctx context.Context, request models.WithdrawalRequest) (*models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, providerID string) ([]models.Withdrawal, error)
	HandlePayoutWebhook(ctx context.Context, body []byte, signature string) error
	ApplyPayoutStatus(ctx context.Context, payoutID string, referenceID string, status string, reason string) (*models.Withdrawal, error)
	GetStaleWithdrawals(ctx context.Context, count int) ([]models.Withdrawal, error)
	SyncPayout(ctx context.Context, withdrawal models.Withdrawal) error
}
