package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/interview-market/internal/apperr"
	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/gateway"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/notify"
	"github.com/denmor86/interview-market/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// События вебхука платёжного шлюза
const (
	EventPaymentCaptured = "payment.captured"
	EventOrderPaid       = "order.paid"
	EventPaymentFailed   = "payment.failed"
	EventRefundCreated   = "refund.created"
	EventRefundProcessed = "refund.processed"
)

const abandonBatchSize = 100

type Payments struct {
	Storage  storage.IStorage
	Gateway  gateway.Payments
	Coupons  CouponsService
	Notifier notify.Notifier
	Config   config.Config
	Now      func() time.Time
}

// Создание сервиса
func NewPayments(cfg config.Config, storage storage.IStorage, gw gateway.Payments, coupons CouponsService, notifier notify.Notifier) *Payments {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &Payments{
		Storage:  storage,
		Gateway:  gw,
		Coupons:  coupons,
		Notifier: notifier,
		Config:   cfg,
		Now:      time.Now,
	}
}

func isTerminalRequest(status string) bool {
	switch status {
	case models.RequestStatusCompleted, models.RequestStatusCancelled, models.RequestStatusNoShow, models.RequestStatusExpired:
		return true
	}
	return false
}

// CreateOrder - создание платёжного заказа. Сумма вычисляется только на сервере, купон погашается здесь же
func (s *Payments) CreateOrder(ctx context.Context, payerID string, checkout models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if checkout.Purpose != models.PurposeInterviewRequest {
		return nil, ErrInvalidPurpose
	}
	if checkout.Amount != 0 {
		logger.Warnw("client supplied amount ignored", "payer_id", payerID, "amount", checkout.Amount)
	}

	var requestID *string
	if checkout.RequestID != "" {
		request, err := s.Storage.GetRequest(ctx, checkout.RequestID)
		if err != nil {
			if errors.Is(err, storage.ErrRequestNotFound) {
				return nil, ErrRequestNotFound
			}
			logger.Error("Failed to get interview request", zap.Error(err))
			return nil, err
		}
		if request.RequesterID != payerID {
			return nil, ErrRequestForbidden
		}
		if request.IsPaid || isTerminalRequest(request.Status) {
			return nil, ErrRequestNotPayable
		}
		requestID = &request.ID

		live, err := s.supersede(ctx, request.ID)
		if err != nil {
			return nil, err
		}
		if live != nil {
			logger.Infow("checkout resumed", "payment_id", live.ID, "request_id", request.ID)
			return s.checkoutResponse(live), nil
		}
	}

	var coupon *models.Coupon
	if checkout.CouponCode != "" {
		applied, err := s.Coupons.Apply(ctx, checkout.CouponCode, payerID)
		if err != nil {
			return nil, err
		}
		coupon = applied
	}
	// погашение купона откатывается, если заказ так и не был создан
	release := func() {
		if coupon == nil {
			return
		}
		if err := s.Coupons.Release(ctx, coupon.ID, payerID); err != nil {
			logger.Errorw("failed to release coupon after checkout failure", "coupon_id", coupon.ID, "error", err)
		}
	}

	base := s.Config.Pricing.InterviewPrice
	amount := ChargeAmount(base, coupon, s.Config.Pricing.MinCharge)
	currency := s.Config.Gateway.Currency
	paymentID := uuid.NewString()

	order, err := s.Gateway.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  paymentID,
		Notes: map[string]string{
			"payer_id": payerID,
			"purpose":  checkout.Purpose,
		},
	})
	if err != nil {
		release()
		logger.Errorw("failed to create gateway order", "payer_id", payerID, "error", err)
		return nil, apperr.Upstream(err)
	}

	now := s.Now()
	payment := models.Payment{
		ID:             paymentID,
		PayerID:        payerID,
		RequestID:      requestID,
		Amount:         amount,
		BaseAmount:     base,
		Currency:       currency,
		GatewayOrderID: order.ID,
		Status:         models.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if coupon != nil {
		payment.CouponID = &coupon.ID
	}
	if err := s.Storage.AddPayment(ctx, payment); err != nil {
		release()
		if errors.Is(err, storage.ErrAlreadyExists) && requestID != nil {
			// параллельный checkout по той же заявке успел создать заказ
			live, lerr := s.supersede(ctx, *requestID)
			if lerr == nil && live != nil {
				return s.checkoutResponse(live), nil
			}
			return nil, ErrRequestNotPayable
		}
		logger.Error("Failed to add payment", zap.Error(err))
		return nil, err
	}
	audit("payment", payment.ID, "", payment.Status, "order_id", order.ID, "amount", amount, "base_amount", base)
	return s.checkoutResponse(&payment), nil
}

func (s *Payments) checkoutResponse(payment *models.Payment) *models.CheckoutResponse {
	return &models.CheckoutResponse{
		PaymentID: payment.ID,
		OrderID:   payment.GatewayOrderID,
		Amount:    payment.Amount,
		Display:   FormatAmount(payment.Amount, payment.Currency),
		Currency:  payment.Currency,
		KeyID:     s.Config.Gateway.KeyID,
	}
}

// supersede - возвращает незавершённый заказ по заявке, неудавшиеся заказы закрываются с освобождением купона
func (s *Payments) supersede(ctx context.Context, requestID string) (*models.Payment, error) {
	payments, err := s.Storage.ListRequestPayments(ctx, requestID)
	if err != nil {
		logger.Error("Failed to list request payments", zap.Error(err))
		return nil, err
	}
	var live *models.Payment
	for i := range payments {
		p := &payments[i]
		switch p.Status {
		case models.PaymentStatusPending, models.PaymentStatusProcessing:
			if live == nil {
				live = p
			}
		case models.PaymentStatusCompleted, models.PaymentStatusRefunded:
			return nil, ErrRequestNotPayable
		case models.PaymentStatusFailed:
			if _, err := s.abandon(ctx, p, "superseded"); err != nil {
				return nil, err
			}
		}
	}
	return live, nil
}

// abandon - окончательное закрытие PENDING или FAILED платежа. Купон освобождается только здесь
func (s *Payments) abandon(ctx context.Context, current *models.Payment, reason string) (bool, error) {
	payment, changed, err := s.Storage.AbandonPayment(ctx, current.ID)
	if err != nil {
		logger.Error("Failed to abandon payment", zap.Error(err))
		return false, err
	}
	if !changed {
		return false, nil
	}
	audit("payment", payment.ID, current.Status, payment.Status, "order_id", payment.GatewayOrderID, "reason", reason)
	if payment.CouponID != nil {
		if err := s.Coupons.Release(ctx, *payment.CouponID, payment.PayerID); err != nil {
			logger.Errorw("failed to release coupon of abandoned payment", "payment_id", payment.ID, "error", err)
		}
	}
	return true, nil
}

// ExpireAbandonedPayments - закрытие заказов, оставшихся в PENDING или FAILED дольше AbandonAfter
func (s *Payments) ExpireAbandonedPayments(ctx context.Context) (int64, error) {
	if s.Config.Gateway.AbandonAfter <= 0 {
		return 0, nil
	}
	stale, err := s.Storage.ListStalePayments(ctx, s.Now().Add(-s.Config.Gateway.AbandonAfter), abandonBatchSize)
	if err != nil {
		logger.Error("Failed to list stale payments", zap.Error(err))
		return 0, err
	}
	var abandoned int64
	for i := range stale {
		changed, err := s.abandon(ctx, &stale[i], "expired")
		if err != nil {
			return abandoned, err
		}
		if changed {
			abandoned++
		}
	}
	return abandoned, nil
}

// VerifyClientPayment - подтверждение оплаты по подписи, полученной клиентом от виджета шлюза
func (s *Payments) VerifyClientPayment(ctx context.Context, payerID string, confirmation models.ClientConfirmation) (*models.Payment, error) {
	if confirmation.OrderID == "" || confirmation.PaymentID == "" || confirmation.Signature == "" {
		return nil, ErrInvalidPayload
	}
	payload := gateway.ClientPaymentPayload(confirmation.OrderID, confirmation.PaymentID)
	if !gateway.VerifySignature(payload, confirmation.Signature, s.Config.Gateway.KeySecret) {
		securityEvent("client_verify", "payer_id", payerID, "order_id", confirmation.OrderID)
		return nil, ErrInvalidSignature
	}

	payment, err := s.Storage.GetPaymentByOrderID(ctx, confirmation.OrderID)
	if err != nil {
		if errors.Is(err, storage.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		logger.Error("Failed to get payment", zap.Error(err))
		return nil, err
	}
	if payment.PayerID != payerID {
		return nil, ErrPaymentForbidden
	}
	return s.Confirm(ctx, confirmation.OrderID, confirmation.PaymentID)
}

// Confirm - сходящийся переход платежа в COMPLETED. Повторные вызовы возвращают сохранённую запись
func (s *Payments) Confirm(ctx context.Context, orderID string, paymentID string) (*models.Payment, error) {
	if orderID == "" || paymentID == "" {
		return nil, ErrInvalidPayload
	}
	key := orderID + ":" + paymentID

	processed, err := s.Storage.FindProcessedPayment(ctx, key, paymentID)
	switch {
	case err == nil:
		if processed.GatewayOrderID != orderID {
			return nil, ErrPaymentMismatch
		}
		if processed.Status == models.PaymentStatusCompleted || processed.Status == models.PaymentStatusRefunded {
			logger.Infow("payment confirmation replay", "payment_id", processed.ID, "status", processed.Status)
			return processed, nil
		}
	case !errors.Is(err, storage.ErrPaymentNotFound):
		logger.Error("Failed to find processed payment", zap.Error(err))
		return nil, err
	}

	current, err := s.Storage.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		logger.Error("Failed to get payment", zap.Error(err))
		return nil, err
	}

	payment, changed, err := s.Storage.CompletePayment(ctx, orderID, paymentID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrPaymentNotFound):
			return nil, ErrPaymentNotFound
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, ErrPaymentMismatch
		}
		logger.Error("Failed to complete payment", zap.Error(err))
		return nil, err
	}
	if !changed {
		logger.Infow("payment confirmation replay", "payment_id", payment.ID, "status", payment.Status)
		return payment, nil
	}
	audit("payment", payment.ID, current.Status, payment.Status, "order_id", orderID, "gateway_payment_id", paymentID)

	if current.Status == models.PaymentStatusAbandoned {
		s.lateCapture(ctx, current, payment)
	}

	s.Notifier.Notify(ctx, models.Notification{
		UserID:  payment.PayerID,
		Type:    models.NotifyPaymentCompleted,
		Title:   "Payment received",
		Message: "Payment of " + FormatAmount(payment.Amount, payment.Currency) + " is confirmed",
		Data:    map[string]string{"payment_id": payment.ID},
	})
	return payment, nil
}

// lateCapture - оплата уже закрытого заказа. Купон погашается повторно в пределах лимита пользователя
func (s *Payments) lateCapture(ctx context.Context, before *models.Payment, payment *models.Payment) {
	if before.RequestID != nil && payment.RequestID == nil {
		logger.Warnw("late capture kept standalone, request is held by another payment",
			"payment_id", payment.ID, "request_id", *before.RequestID)
	}
	if payment.CouponID == nil {
		return
	}
	couponID := *payment.CouponID
	err := s.reapplyCoupon(ctx, couponID, payment.PayerID)
	if err != nil {
		logger.Warnw("coupon not re-applied after late capture", "payment_id", payment.ID, "coupon_id", couponID, "error", err)
		audit("coupon_usage", couponID, "released", "not_reapplied", "user_id", payment.PayerID, "payment_id", payment.ID)
		return
	}
	audit("coupon_usage", couponID, "released", "applied", "user_id", payment.PayerID, "payment_id", payment.ID)
}

func (s *Payments) reapplyCoupon(ctx context.Context, couponID string, userID string) error {
	coupon, err := s.Storage.GetCoupon(ctx, couponID)
	if err != nil {
		return err
	}
	return s.Storage.IncrementCouponUsage(ctx, coupon.ID, userID, coupon.PerUserLimit)
}

func (s *Payments) fail(ctx context.Context, orderID string, reason string) error {
	current, err := s.Storage.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrPaymentNotFound) {
			logger.Warnw("payment failure for unknown order", "order_id", orderID)
			return nil
		}
		logger.Error("Failed to get payment", zap.Error(err))
		return err
	}
	payment, changed, err := s.Storage.FailPayment(ctx, orderID, reason)
	if err != nil {
		logger.Error("Failed to mark payment failed", zap.Error(err))
		return err
	}
	if !changed {
		logger.Infow("payment failure ignored", "payment_id", payment.ID, "status", payment.Status)
		return nil
	}
	audit("payment", payment.ID, current.Status, payment.Status, "order_id", orderID, "reason", reason)

	// FAILED может завершиться успешной попыткой, купон остаётся погашенным
	s.Notifier.Notify(ctx, models.Notification{
		UserID:  payment.PayerID,
		Type:    models.NotifyPaymentFailed,
		Title:   "Payment failed",
		Message: reason,
		Data:    map[string]string{"payment_id": payment.ID},
	})
	return nil
}

func (s *Payments) refunded(ctx context.Context, gatewayPaymentID string, refundID string) (*models.Payment, bool, error) {
	payment, changed, err := s.Storage.RefundPayment(ctx, gatewayPaymentID, refundID)
	if err != nil {
		return nil, false, err
	}
	if changed {
		audit("payment", payment.ID, models.PaymentStatusCompleted, payment.Status, "refund_id", refundID)
		s.Notifier.Notify(ctx, models.Notification{
			UserID:  payment.PayerID,
			Type:    models.NotifyPaymentRefunded,
			Title:   "Payment refunded",
			Message: "Refund of " + FormatAmount(payment.Amount, payment.Currency) + " is issued",
			Data:    map[string]string{"payment_id": payment.ID},
		})
	}
	return payment, changed, nil
}

// HandleWebhook - обработка события шлюза. Повторы и неизвестные события подтверждаются без ошибки
func (s *Payments) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !gateway.VerifySignature(body, signature, s.Config.Gateway.WebhookSecret) {
		securityEvent("payment_webhook")
		return ErrInvalidSignature
	}

	var event models.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, err.Error())
	}
	logger.Debugw("payment webhook", "event", event.Event)

	switch event.Event {
	case EventPaymentCaptured, EventOrderPaid:
		if event.Payload.Payment == nil {
			return ErrInvalidPayload
		}
		entity := event.Payload.Payment.Entity
		_, err := s.Confirm(ctx, entity.OrderID, entity.ID)
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			logger.Warnw("payment webhook for unknown order", "order_id", entity.OrderID)
			return nil
		case errors.Is(err, ErrPaymentMismatch):
			logger.Warnw("payment webhook with conflicting payment id", "order_id", entity.OrderID, "gateway_payment_id", entity.ID)
			return nil
		}
		return err
	case EventPaymentFailed:
		if event.Payload.Payment == nil {
			return ErrInvalidPayload
		}
		entity := event.Payload.Payment.Entity
		reason := entity.ErrorDescription
		if reason == "" {
			reason = "payment failed"
		}
		return s.fail(ctx, entity.OrderID, reason)
	case EventRefundCreated, EventRefundProcessed:
		if event.Payload.Refund == nil {
			return ErrInvalidPayload
		}
		entity := event.Payload.Refund.Entity
		_, _, err := s.refunded(ctx, entity.PaymentID, entity.ID)
		if errors.Is(err, storage.ErrPaymentNotFound) {
			logger.Warnw("refund webhook for unknown payment", "gateway_payment_id", entity.PaymentID)
			return nil
		}
		if err != nil {
			logger.Error("Failed to refund payment", zap.Error(err))
		}
		return err
	default:
		logger.Infow("payment webhook event ignored", "event", event.Event)
		return nil
	}
}

// Refund - возврат завершённого платежа администратором
func (s *Payments) Refund(ctx context.Context, adminID string, paymentID string) (*models.Payment, error) {
	payment, err := s.Storage.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, storage.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		logger.Error("Failed to get payment", zap.Error(err))
		return nil, err
	}
	if payment.Status != models.PaymentStatusCompleted || payment.GatewayPaymentID == nil {
		return nil, ErrPaymentNotRefundable
	}

	refund, err := s.Gateway.RefundPayment(ctx, *payment.GatewayPaymentID, payment.Amount)
	if err != nil {
		logger.Errorw("failed to refund payment at gateway", "payment_id", payment.ID, "error", err)
		return nil, apperr.Upstream(err)
	}

	updated, changed, err := s.refunded(ctx, *payment.GatewayPaymentID, refund.ID)
	if err != nil {
		logger.Error("Failed to refund payment", zap.Error(err))
		return nil, err
	}
	if !changed && updated.Status != models.PaymentStatusRefunded {
		return nil, ErrPaymentNotRefundable
	}
	logger.Infow("payment refunded by admin", "payment_id", updated.ID, "admin_id", adminID, "refund_id", refund.ID)
	return updated, nil
}

func (s *Payments) ListPayments(ctx context.Context, payerID string) ([]models.Payment, error) {
	payments, err := s.Storage.ListUserPayments(ctx, payerID)
	if err != nil {
		logger.Error("Failed to list payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
