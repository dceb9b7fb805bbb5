package services

import (
	"errors"

	"github.com/denmor86/interview-market/internal/apperr"
)

// Пользователи
var (
	ErrUserAlreadyExists  = apperr.Conflict("user already exists")
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidUserData    = apperr.Validation("login and password are required")
	ErrInvalidRole        = apperr.Validation("role must be requester or provider")
	ErrNotProvider        = apperr.Forbidden("user is not a provider")
	ErrNotApproved        = apperr.Forbidden("provider is not approved")
	ErrNotRequester       = apperr.Forbidden("only requesters can create interview requests")
)

// Купоны
var (
	ErrCouponNotFound      = apperr.NotFound("coupon not found")
	ErrCouponInvalid       = apperr.Validation("coupon is not valid")
	ErrCouponLimitExceeded = apperr.Conflict("coupon limit exceeded")
	ErrCouponExists        = apperr.Conflict("coupon code already exists")
	ErrInvalidCoupon       = apperr.Validation("invalid coupon definition")
)

// Платежи
var (
	ErrInvalidSignature     = apperr.New(apperr.KindSignatureInvalid, "invalid signature")
	ErrInvalidPayload       = apperr.Validation("invalid payload")
	ErrInvalidPurpose       = apperr.Validation("unsupported checkout purpose")
	ErrPaymentNotFound      = apperr.NotFound("payment not found")
	ErrPaymentForbidden     = apperr.Forbidden("payment belongs to another user")
	ErrPaymentMismatch      = apperr.Conflict("payment id belongs to another order")
	ErrPaymentNotRefundable = apperr.Conflict("only completed payments can be refunded")
	ErrRequestNotPayable    = apperr.Conflict("interview request cannot be paid")
)

// Заявки на интервью
var (
	ErrNoSkills           = apperr.Validation("at least one skill is required")
	ErrInvalidDuration    = apperr.Validation("duration is out of range")
	ErrGateRequired       = apperr.New(apperr.KindPaymentRequired, "exactly one of payment or coupon is required")
	ErrPaymentRequired    = apperr.New(apperr.KindPaymentRequired, "completed payment for the interview price is required")
	ErrPaymentAlreadyUsed = apperr.Conflict("payment is already linked to a request")
	ErrRequestNotFound    = apperr.NotFound("interview request not found")
	ErrRequestForbidden   = apperr.Forbidden("not a participant of the interview")
	ErrAlreadyClaimed     = apperr.Conflict("interview request already claimed")
	ErrRequestExpired     = apperr.Conflict("interview request expired")
	ErrScheduleConflict   = apperr.Conflict("provider has an overlapping interview")
	ErrSkillMismatch      = apperr.Forbidden("provider expertise does not match requested skills")
	ErrInvalidSchedule    = apperr.Validation("scheduled time must be in the future")
	ErrInvalidTransition  = apperr.Conflict("transition is not allowed in the current status")
	ErrNotStartedYet      = apperr.Conflict("interview has not started yet")
	ErrInvalidRating      = apperr.Validation("rating must be between 1 and 5")
	ErrFeedbackExists     = apperr.Conflict("feedback already submitted")
)

// Выводы средств
var (
	ErrAmountOutOfBounds      = apperr.Validation("withdrawal amount is out of range")
	ErrInvalidMethod          = apperr.Validation("method must be bank_transfer or upi")
	ErrInvalidTransferDetails = apperr.Validation("invalid transfer details")
	ErrPendingWithdrawal      = apperr.Conflict("withdrawal already in progress")
	ErrInsufficientBalance    = apperr.Validation("insufficient balance")
	ErrWithdrawalNotFound     = apperr.NotFound("withdrawal not found")
)
