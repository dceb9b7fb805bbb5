package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/interview-market/internal/apperr"
	"github.com/denmor86/interview-market/internal/gateway"
	gmocks "github.com/denmor86/interview-market/internal/gateway/mocks"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/notify"
	nmocks "github.com/denmor86/interview-market/internal/notify/mocks"
	"github.com/denmor86/interview-market/internal/storage/memory"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func paymentEvent(t *testing.T, event string, orderID string, paymentID string) ([]byte, string) {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"event": event,
		"payload": map[string]any{
			"payment": map[string]any{
				"entity": map[string]any{
					"id":                paymentID,
					"order_id":          orderID,
					"amount":            49900,
					"status":            "captured",
					"error_description": "card declined",
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return body, gateway.Sign(body, testWebhookSecret)
}

func refundEvent(t *testing.T, gatewayPaymentID string, refundID string) ([]byte, string) {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"event": EventRefundCreated,
		"payload": map[string]any{
			"refund": map[string]any{
				"entity": map[string]any{"id": refundID, "payment_id": gatewayPaymentID, "amount": 49900},
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return body, gateway.Sign(body, testWebhookSecret)
}

type paymentsFixture struct {
	store    *memory.Storage
	gateway  *gmocks.MockPayments
	payments *Payments
	payer    models.UserData
}

func newPaymentsFixture(t *testing.T, ctrl *gomock.Controller, notifier notify.Notifier) *paymentsFixture {
	t.Helper()
	cfg := testConfig(t)
	store := memory.NewStorage()
	gw := gmocks.NewMockPayments(ctrl)
	payer := addUser(t, store, models.UserData{Login: "requester", Role: models.RoleRequester})
	return &paymentsFixture{
		store:    store,
		gateway:  gw,
		payments: NewPayments(cfg, store, gw, NewCoupons(store), notifier),
		payer:    payer,
	}
}

// checkout - заказ, который шлюз создаёт с переданной суммой
func (f *paymentsFixture) checkout(t *testing.T, orderID string, checkout models.CheckoutRequest) *models.CheckoutResponse {
	t.Helper()
	f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, order gateway.OrderRequest) (*gateway.Order, error) {
			return &gateway.Order{ID: orderID, Amount: order.Amount, Currency: order.Currency, Receipt: order.Receipt, Status: "created"}, nil
		})
	checkout.Purpose = models.PurposeInterviewRequest
	response, err := f.payments.CreateOrder(context.Background(), f.payer.UserID, checkout)
	if err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	return response
}

func TestPaymentsService_CreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentsFixture(t, ctrl, notify.LogNotifier{})
	addCoupon(t, f.store, models.Coupon{Code: "FREE", DiscountType: models.DiscountPercentage, DiscountValue: 100})
	addCoupon(t, f.store, models.Coupon{Code: "FLAT100", DiscountType: models.DiscountFlat, DiscountValue: 10000})

	testCases := []struct {
		Name           string
		Checkout       models.CheckoutRequest
		ExpectedAmount int64
		Display        string
	}{
		{
			Name:           "Base price, client amount ignored #1",
			Checkout:       models.CheckoutRequest{Amount: 1},
			ExpectedAmount: 49900,
			Display:        "499.00 INR",
		},
		{
			Name:           "Full discount clamped to minimum charge #2",
			Checkout:       models.CheckoutRequest{CouponCode: "free"},
			ExpectedAmount: 100,
			Display:        "1.00 INR",
		},
		{
			Name:           "Flat discount #3",
			Checkout:       models.CheckoutRequest{CouponCode: "FLAT100"},
			ExpectedAmount: 39900,
			Display:        "399.00 INR",
		},
	}

	for i, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			response := f.checkout(t, "order_"+string(rune('a'+i)), tc.Checkout)
			if response.Amount != tc.ExpectedAmount || response.Display != tc.Display {
				t.Errorf("Expected %d (%s), got %d (%s)", tc.ExpectedAmount, tc.Display, response.Amount, response.Display)
			}
			if response.KeyID != "key_id" {
				t.Errorf("Expected key id to be returned, got %q", response.KeyID)
			}
			payment, err := f.store.GetPayment(context.Background(), response.PaymentID)
			if err != nil {
				t.Fatalf("payment not stored: %v", err)
			}
			if payment.Status != models.PaymentStatusPending || payment.BaseAmount != 49900 {
				t.Errorf("unexpected stored payment %+v", payment)
			}
		})
	}

	t.Run("Error. Unsupported purpose #4", func(t *testing.T) {
		_, err := f.payments.CreateOrder(context.Background(), f.payer.UserID, models.CheckoutRequest{Purpose: "tip"})
		if !errors.Is(err, ErrInvalidPurpose) {
			t.Errorf("Expected error '%v', got: '%v'", ErrInvalidPurpose, err)
		}
	})

	t.Run("Error. Gateway failure releases coupon #5", func(t *testing.T) {
		coupon := addCoupon(t, f.store, models.Coupon{Code: "RETRY", DiscountType: models.DiscountFlat, DiscountValue: 100})
		f.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, &gateway.UpstreamError{StatusCode: 502})

		_, err := f.payments.CreateOrder(context.Background(), f.payer.UserID,
			models.CheckoutRequest{Purpose: models.PurposeInterviewRequest, CouponCode: "RETRY"})
		if apperr.KindOf(err) != apperr.KindUpstream {
			t.Errorf("Expected upstream error, got: '%v'", err)
		}
		used, _ := f.store.GetCouponUsage(context.Background(), coupon.ID, f.payer.UserID)
		if used != 0 {
			t.Errorf("Expected coupon usage to be released, got %d", used)
		}
	})
}

func TestPaymentsService_WebhookReplayIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockNotifier := nmocks.NewMockNotifier(ctrl)
	f := newPaymentsFixture(t, ctrl, mockNotifier)

	order := f.checkout(t, "order_replay", models.CheckoutRequest{})
	// уведомление об оплате отправляется ровно один раз
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(1)

	body, signature := paymentEvent(t, EventPaymentCaptured, order.OrderID, "pay_replay")
	const deliveries = 5
	var wg sync.WaitGroup
	for range deliveries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.payments.HandleWebhook(context.Background(), body, signature); err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
		}()
	}
	wg.Wait()

	payment, err := f.store.GetPaymentByOrderID(context.Background(), order.OrderID)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if payment.Status != models.PaymentStatusCompleted {
		t.Errorf("Expected COMPLETED, got %s", payment.Status)
	}
	if payment.IdempotencyKey == nil || *payment.IdempotencyKey != order.OrderID+":pay_replay" {
		t.Errorf("unexpected idempotency key %v", payment.IdempotencyKey)
	}
}

func TestPaymentsService_ClientAndWebhookRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockNotifier := nmocks.NewMockNotifier(ctrl)
	f := newPaymentsFixture(t, ctrl, mockNotifier)

	order := f.checkout(t, "order_race", models.CheckoutRequest{})
	mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(1)

	body, signature := paymentEvent(t, EventOrderPaid, order.OrderID, "pay_race")
	confirmation := models.ClientConfirmation{
		OrderID:   order.OrderID,
		PaymentID: "pay_race",
		Signature: gateway.Sign(gateway.ClientPaymentPayload(order.OrderID, "pay_race"), testKeySecret),
	}

	var (
		wg      sync.WaitGroup
		results = make([]*models.Payment, 2)
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := f.payments.HandleWebhook(context.Background(), body, signature); err != nil {
			t.Errorf("webhook: expected no error, got: '%v'", err)
		}
	}()
	go func() {
		defer wg.Done()
		payment, err := f.payments.VerifyClientPayment(context.Background(), f.payer.UserID, confirmation)
		if err != nil {
			t.Errorf("verify: expected no error, got: '%v'", err)
		}
		results[1] = payment
	}()
	wg.Wait()

	if results[1] == nil || results[1].Status != models.PaymentStatusCompleted {
		t.Errorf("Expected client verification to return COMPLETED payment, got %+v", results[1])
	}
}

func TestPaymentsService_VerifyClientPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentsFixture(t, ctrl, notify.LogNotifier{})
	order := f.checkout(t, "order_verify", models.CheckoutRequest{})
	other := addUser(t, f.store, models.UserData{Login: "other", Role: models.RoleRequester})

	valid := gateway.Sign(gateway.ClientPaymentPayload(order.OrderID, "pay_1"), testKeySecret)
	testCases := []struct {
		Name          string
		PayerID       string
		Confirmation  models.ClientConfirmation
		ExpectedError error
	}{
		{
			Name:          "Error. Tampered signature #1",
			PayerID:       f.payer.UserID,
			Confirmation:  models.ClientConfirmation{OrderID: order.OrderID, PaymentID: "pay_2", Signature: valid},
			ExpectedError: ErrInvalidSignature,
		},
		{
			Name:          "Error. Missing fields #2",
			PayerID:       f.payer.UserID,
			Confirmation:  models.ClientConfirmation{OrderID: order.OrderID},
			ExpectedError: ErrInvalidPayload,
		},
		{
			Name:          "Error. Another payer #3",
			PayerID:       other.UserID,
			Confirmation:  models.ClientConfirmation{OrderID: order.OrderID, PaymentID: "pay_1", Signature: valid},
			ExpectedError: ErrPaymentForbidden,
		},
		{
			Name:         "Success #4",
			PayerID:      f.payer.UserID,
			Confirmation: models.ClientConfirmation{OrderID: order.OrderID, PaymentID: "pay_1", Signature: valid},
		},
		{
			Name:         "Success. Replay #5",
			PayerID:      f.payer.UserID,
			Confirmation: models.ClientConfirmation{OrderID: order.OrderID, PaymentID: "pay_1", Signature: valid},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			payment, err := f.payments.VerifyClientPayment(context.Background(), tc.PayerID, tc.Confirmation)
			if !errors.Is(err, tc.ExpectedError) {
				t.Fatalf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if err == nil && payment.Status != models.PaymentStatusCompleted {
				t.Errorf("Expected COMPLETED, got %s", payment.Status)
			}
		})
	}
}

func TestPaymentsService_FailedThenCaptured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentsFixture(t, ctrl, notify.LogNotifier{})
	coupon := addCoupon(t, f.store, models.Coupon{Code: "HALF", DiscountType: models.DiscountPercentage, DiscountValue: 50})
	order := f.checkout(t, "order_retry", models.CheckoutRequest{CouponCode: "HALF"})
	ctx := context.Background()

	usage := func() int {
		used, _ := f.store.GetCouponUsage(ctx, coupon.ID, f.payer.UserID)
		return used
	}
	if usage() != 1 {
		t.Fatalf("Expected coupon applied at checkout")
	}

	body, signature := paymentEvent(t, EventPaymentFailed, order.OrderID, "pay_bad")
	for range 2 {
		if err := f.payments.HandleWebhook(ctx, body, signature); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
	}
	payment, _ := f.store.GetPaymentByOrderID(ctx, order.OrderID)
	if payment.Status != models.PaymentStatusFailed || payment.FailureReason == nil || *payment.FailureReason != "card declined" {
		t.Errorf("Expected FAILED with reason, got %+v", payment)
	}
	if usage() != 1 {
		t.Errorf("Expected coupon held while the order may still be paid, usage %d", usage())
	}

	// пока заказ не закрыт, последнее использование купона недоступно
	if _, err := f.payments.Coupons.Apply(ctx, "HALF", f.payer.UserID); !errors.Is(err, ErrCouponLimitExceeded) {
		t.Errorf("Expected error '%v', got: '%v'", ErrCouponLimitExceeded, err)
	}

	body, signature = paymentEvent(t, EventPaymentCaptured, order.OrderID, "pay_good")
	if err := f.payments.HandleWebhook(ctx, body, signature); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	payment, _ = f.store.GetPaymentByOrderID(ctx, order.OrderID)
	if payment.Status != models.PaymentStatusCompleted || payment.FailureReason != nil {
		t.Errorf("Expected COMPLETED after later attempt, got %+v", payment)
	}
	if usage() != 1 {
		t.Errorf("Expected coupon consumed exactly once, usage %d", usage())
	}
}

// addPayableRequest - заявка, созданная по купону и ожидающая оплаты
func addPayableRequest(t *testing.T, f *paymentsFixture) string {
	t.Helper()
	now := time.Now()
	requestID := uuid.NewString()
	err := f.store.AddRequest(context.Background(), models.InterviewRequest{
		ID:              requestID,
		RequesterID:     f.payer.UserID,
		Skills:          []string{"go"},
		DurationMinutes: 60,
		Status:          models.RequestStatusRequested,
		ExpiresAt:       now.Add(7 * 24 * time.Hour),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, "")
	if err != nil {
		t.Fatalf("failed to add request: %v", err)
	}
	return requestID
}

func TestPaymentsService_RequestCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentsFixture(t, ctrl, notify.LogNotifier{})
	coupon := addCoupon(t, f.store, models.Coupon{Code: "TENOFF", DiscountType: models.DiscountPercentage, DiscountValue: 10})
	ctx := context.Background()
	requestID := addPayableRequest(t, f)

	first := f.checkout(t, "order_first", models.CheckoutRequest{RequestID: requestID, CouponCode: "TENOFF"})

	t.Run("Live order is resumed #1", func(t *testing.T) {
		resumed, err := f.payments.CreateOrder(ctx, f.payer.UserID,
			models.CheckoutRequest{Purpose: models.PurposeInterviewRequest, RequestID: requestID})
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if resumed.OrderID != first.OrderID || resumed.PaymentID != first.PaymentID {
			t.Errorf("Expected order %s to be resumed, got %s", first.OrderID, resumed.OrderID)
		}
	})

	t.Run("Failed order is superseded #2", func(t *testing.T) {
		body, signature := paymentEvent(t, EventPaymentFailed, first.OrderID, "pay_declined")
		if err := f.payments.HandleWebhook(ctx, body, signature); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}

		second := f.checkout(t, "order_second", models.CheckoutRequest{RequestID: requestID, CouponCode: "TENOFF"})
		if second.OrderID == first.OrderID {
			t.Fatalf("Expected a new order after failure")
		}
		previous, _ := f.store.GetPayment(ctx, first.PaymentID)
		if previous.Status != models.PaymentStatusAbandoned {
			t.Errorf("Expected failed order to be ABANDONED, got %s", previous.Status)
		}
		used, _ := f.store.GetCouponUsage(ctx, coupon.ID, f.payer.UserID)
		if used != 1 {
			t.Errorf("Expected coupon released and applied again, usage %d", used)
		}

		if _, err := f.payments.Confirm(ctx, second.OrderID, "pay_second"); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		request, _ := f.store.GetRequest(ctx, requestID)
		if !request.IsPaid || request.PaymentID == nil || *request.PaymentID != second.PaymentID {
			t.Errorf("Expected request paid by the second order, got %+v", request)
		}
	})

	t.Run("Error. Paid request #3", func(t *testing.T) {
		_, err := f.payments.CreateOrder(ctx, f.payer.UserID,
			models.CheckoutRequest{Purpose: models.PurposeInterviewRequest, RequestID: requestID})
		if !errors.Is(err, ErrRequestNotPayable) {
			t.Errorf("Expected error '%v', got: '%v'", ErrRequestNotPayable, err)
		}
	})

	t.Run("Late capture of abandoned order stays standalone #4", func(t *testing.T) {
		payment, err := f.payments.Confirm(ctx, first.OrderID, "pay_late")
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if payment.Status != models.PaymentStatusCompleted || payment.RequestID != nil {
			t.Errorf("Expected standalone COMPLETED payment, got %+v", payment)
		}
		// купон уже погашен вторым заказом, лимит пользователя не превышается
		used, _ := f.store.GetCouponUsage(ctx, coupon.ID, f.payer.UserID)
		if used != 1 {
			t.Errorf("Expected per-user limit to hold, usage %d", used)
		}
	})
}

func TestPaymentsService_ExpireAbandonedPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentsFixture(t, ctrl, notify.LogNotifier{})
	coupon := addCoupon(t, f.store, models.Coupon{Code: "ONCE", DiscountType: models.DiscountFlat, DiscountValue: 1000})
	ctx := context.Background()

	pending := f.checkout(t, "order_pending", models.CheckoutRequest{CouponCode: "ONCE"})
	paid := f.checkout(t, "order_paid", models.CheckoutRequest{})
	if _, err := f.payments.Confirm(ctx, paid.OrderID, "pay_paid"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	abandoned, err := f.payments.ExpireAbandonedPayments(ctx)
	if err != nil || abandoned != 0 {
		t.Fatalf("Expected fresh orders to stay open, got %d, %v", abandoned, err)
	}

	f.payments.Now = func() time.Time { return time.Now().Add(2 * f.payments.Config.Gateway.AbandonAfter) }
	for i, expected := range []int64{1, 0} {
		abandoned, err := f.payments.ExpireAbandonedPayments(ctx)
		if err != nil {
			t.Fatalf("sweep %d: expected no error, got: '%v'", i, err)
		}
		if abandoned != expected {
			t.Errorf("sweep %d: expected %d abandoned, got %d", i, expected, abandoned)
		}
	}

	payment, _ := f.store.GetPayment(ctx, pending.PaymentID)
	if payment.Status != models.PaymentStatusAbandoned {
		t.Errorf("Expected ABANDONED, got %s", payment.Status)
	}
	completed, _ := f.store.GetPayment(ctx, paid.PaymentID)
	if completed.Status != models.PaymentStatusCompleted {
		t.Errorf("Expected COMPLETED payment untouched, got %s", completed.Status)
	}
	used, _ := f.store.GetCouponUsage(ctx, coupon.ID, f.payer.UserID)
	if used != 0 {
		t.Errorf("Expected coupon released, usage %d", used)
	}

	// купон потрачен на другой заказ до поздней оплаты закрытого
	if _, err := f.payments.Coupons.Apply(ctx, "ONCE", f.payer.UserID); err != nil {
		t.Fatalf("Expected released coupon to be usable, got: '%v'", err)
	}
	if _, err := f.payments.Confirm(ctx, pending.OrderID, "pay_late"); err != nil {
		t.Fatalf("Expected late capture to be accepted, got: '%v'", err)
	}
	used, _ = f.store.GetCouponUsage(ctx, coupon.ID, f.payer.UserID)
	if used != coupon.PerUserLimit {
		t.Errorf("Expected usage to stay at perUserLimit %d, got %d", coupon.PerUserLimit, used)
	}
}

func TestPaymentsService_HandleWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentsFixture(t, ctrl, notify.LogNotifier{})

	captured, capturedSig := paymentEvent(t, EventPaymentCaptured, "order_unknown", "pay_x")
	ignored := []byte(`{"event":"payment.authorized","payload":{}}`)

	testCases := []struct {
		Name          string
		Body          []byte
		Signature     string
		ExpectedError error
	}{
		{
			Name:          "Error. Invalid signature #1",
			Body:          captured,
			Signature:     gateway.Sign(captured, "wrong"),
			ExpectedError: ErrInvalidSignature,
		},
		{
			Name:          "Error. Empty signature #2",
			Body:          captured,
			ExpectedError: ErrInvalidSignature,
		},
		{
			Name:          "Error. Malformed body #3",
			Body:          []byte("{"),
			Signature:     gateway.Sign([]byte("{"), testWebhookSecret),
			ExpectedError: ErrInvalidPayload,
		},
		{
			Name:      "Success. Unknown order is acknowledged #4",
			Body:      captured,
			Signature: capturedSig,
		},
		{
			Name:      "Success. Unsupported event is acknowledged #5",
			Body:      ignored,
			Signature: gateway.Sign(ignored, testWebhookSecret),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := f.payments.HandleWebhook(context.Background(), tc.Body, tc.Signature)
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestPaymentsService_Refund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newPaymentsFixture(t, ctrl, notify.LogNotifier{})
	ctx := context.Background()

	order := f.checkout(t, "order_refund", models.CheckoutRequest{})
	if _, err := f.payments.Refund(ctx, "admin", order.PaymentID); !errors.Is(err, ErrPaymentNotRefundable) {
		t.Fatalf("Expected error '%v' for pending payment, got: '%v'", ErrPaymentNotRefundable, err)
	}
	if _, err := f.payments.Confirm(ctx, order.OrderID, "pay_refund"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	f.gateway.EXPECT().RefundPayment(gomock.Any(), "pay_refund", int64(49900)).
		Return(&gateway.Refund{ID: "rfnd_1", PaymentID: "pay_refund", Amount: 49900, Status: "processed"}, nil)
	payment, err := f.payments.Refund(ctx, "admin", order.PaymentID)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if payment.Status != models.PaymentStatusRefunded {
		t.Errorf("Expected REFUNDED, got %s", payment.Status)
	}

	// вебхук о том же возврате приходит после синхронного вызова
	body, signature := refundEvent(t, "pay_refund", "rfnd_1")
	if err := f.payments.HandleWebhook(ctx, body, signature); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}
	// повторное подтверждение возвращённого платежа не меняет статус
	payment, err = f.payments.Confirm(ctx, order.OrderID, "pay_refund")
	if err != nil || payment.Status != models.PaymentStatusRefunded {
		t.Errorf("Expected REFUNDED replay, got %+v, %v", payment, err)
	}
	if _, err := f.payments.Refund(ctx, "admin", order.PaymentID); !errors.Is(err, ErrPaymentNotRefundable) {
		t.Errorf("Expected error '%v', got: '%v'", ErrPaymentNotRefundable, err)
	}
	if _, err := f.payments.Refund(ctx, "admin", "missing"); !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("Expected error '%v', got: '%v'", ErrPaymentNotFound, err)
	}
}
