package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/interview-market/internal/apperr"
	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/gateway"
	gmocks "github.com/denmor86/interview-market/internal/gateway/mocks"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/storage/memory"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

var (
	bankDetails = models.TransferDetails{AccountHolder: "Jane Doe", AccountNumber: "123456789012", IFSC: "hdfc0001234"}
	upiDetails  = models.TransferDetails{VPA: "jane.doe@okaxis"}
)

func payoutEvent(t *testing.T, event string, payoutID string, referenceID string) ([]byte, string) {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"event": event,
		"payload": map[string]any{
			"payout": map[string]any{
				"entity": map[string]any{
					"id":           payoutID,
					"reference_id": referenceID,
					"status":       strings.TrimPrefix(event, "payout."),
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return body, gateway.Sign(body, testPayoutSecret)
}

type withdrawalsFixture struct {
	store       *memory.Storage
	payouts     *gmocks.MockPayouts
	withdrawals *Withdrawals
	notifier    *recordingNotifier
	provider    models.UserData
	requester   models.UserData
}

func newWithdrawalsFixture(t *testing.T, ctrl *gomock.Controller, mode string, earnings int64) *withdrawalsFixture {
	t.Helper()
	cfg := testConfig(t)
	cfg.Payout.Mode = mode
	store := memory.NewStorage()
	payouts := gmocks.NewMockPayouts(ctrl)
	notifier := &recordingNotifier{}
	f := &withdrawalsFixture{
		store:       store,
		payouts:     payouts,
		withdrawals: NewWithdrawals(cfg, store, payouts, notifier),
		notifier:    notifier,
		requester:   addUser(t, store, models.UserData{Login: "requester", Role: models.RoleRequester}),
		provider:    addUser(t, store, models.UserData{Login: "provider", Role: models.RoleProvider, Approved: true}),
	}
	if earnings > 0 {
		addEarnings(t, store, f.requester.UserID, f.provider.UserID, earnings)
	}
	return f
}

// expectPayout - успешное создание контакта и счёта, выплата с заданным статусом
func (f *withdrawalsFixture) expectPayout(payoutID string, status string) {
	f.payouts.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(&gateway.Contact{ID: "cont_1"}, nil)
	f.payouts.EXPECT().CreateFundAccount(gomock.Any(), gomock.Any()).Return(&gateway.FundAccount{ID: "fa_1"}, nil)
	f.payouts.EXPECT().CreatePayout(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, payout gateway.PayoutRequest, idempotencyKey string) (*gateway.Payout, error) {
			return &gateway.Payout{ID: payoutID, Status: status, Amount: payout.Amount, ReferenceID: payout.ReferenceID}, nil
		})
}

func (f *withdrawalsFixture) available(t *testing.T) int64 {
	t.Helper()
	balance, err := f.withdrawals.GetBalance(context.Background(), f.provider.UserID)
	if err != nil {
		t.Fatalf("failed to get balance: %v", err)
	}
	return balance.Available()
}

func TestWithdrawalsService_CreateWithdrawalValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeSimulated, 50000)

	testCases := []struct {
		Name          string
		Request       models.WithdrawalRequest
		ExpectedError error
	}{
		{
			Name:          "Error. Below minimum #1",
			Request:       models.WithdrawalRequest{ProviderID: f.provider.UserID, Amount: 9999, Method: models.MethodUPI, Details: upiDetails},
			ExpectedError: ErrAmountOutOfBounds,
		},
		{
			Name:          "Error. Above maximum #2",
			Request:       models.WithdrawalRequest{ProviderID: f.provider.UserID, Amount: 5000001, Method: models.MethodUPI, Details: upiDetails},
			ExpectedError: ErrAmountOutOfBounds,
		},
		{
			Name:          "Error. Unknown method #3",
			Request:       models.WithdrawalRequest{ProviderID: f.provider.UserID, Amount: 10000, Method: "cash", Details: upiDetails},
			ExpectedError: ErrInvalidMethod,
		},
		{
			Name:          "Error. Invalid details #4",
			Request:       models.WithdrawalRequest{ProviderID: f.provider.UserID, Amount: 10000, Method: models.MethodBankTransfer, Details: upiDetails},
			ExpectedError: ErrInvalidTransferDetails,
		},
		{
			Name:          "Error. Requester cannot withdraw #5",
			Request:       models.WithdrawalRequest{ProviderID: f.requester.UserID, Amount: 10000, Method: models.MethodUPI, Details: upiDetails},
			ExpectedError: ErrNotProvider,
		},
		{
			Name:          "Error. Unknown user #6",
			Request:       models.WithdrawalRequest{ProviderID: "missing", Amount: 10000, Method: models.MethodUPI, Details: upiDetails},
			ExpectedError: ErrUserNotFound,
		},
		{
			Name:          "Error. Insufficient balance #7",
			Request:       models.WithdrawalRequest{ProviderID: f.provider.UserID, Amount: 50001, Method: models.MethodUPI, Details: upiDetails},
			ExpectedError: ErrInsufficientBalance,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := f.withdrawals.CreateWithdrawal(context.Background(), tc.Request)
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}

	withdrawals, _ := f.withdrawals.ListWithdrawals(context.Background(), f.provider.UserID)
	if len(withdrawals) != 0 {
		t.Errorf("Expected nothing reserved, got %d withdrawals", len(withdrawals))
	}
}

func TestWithdrawalsService_Simulated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeSimulated, 50000)
	ctx := context.Background()

	withdrawal, err := f.withdrawals.CreateWithdrawal(ctx, models.WithdrawalRequest{
		ProviderID: f.provider.UserID,
		Amount:     20000,
		Method:     models.MethodBankTransfer,
		Details:    bankDetails,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if withdrawal.Status != models.WithdrawalStatusCompleted {
		t.Errorf("Expected COMPLETED, got %s", withdrawal.Status)
	}
	if withdrawal.GatewayPayoutID == nil || *withdrawal.GatewayPayoutID != "sim_"+withdrawal.ID {
		t.Errorf("unexpected payout id %v", withdrawal.GatewayPayoutID)
	}
	if withdrawal.Destination != "HDFC0001234 XXXXXXXX9012" {
		t.Errorf("Expected masked destination, got %q", withdrawal.Destination)
	}

	balance, _ := f.withdrawals.GetBalance(ctx, f.provider.UserID)
	if diff := cmp.Diff(&models.Balance{Earnings: 50000, Withdrawn: 20000}, balance); diff != "" {
		t.Errorf("Balance mismatch (-want +got):\n%s", diff)
	}
	if sent := f.notifier.byType(models.NotifyWithdrawalUpdated); len(sent) != 1 {
		t.Errorf("Expected one notification, got %d", len(sent))
	}
}

func TestWithdrawalsService_BalanceInvariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeLive, 100000)
	ctx := context.Background()

	if got := f.available(t); got != 100000 {
		t.Fatalf("Expected available 100000, got %d", got)
	}

	f.payouts.EXPECT().CreateContact(gomock.Any(), gateway.ContactRequest{
		Name:        "Jane Doe",
		Type:        "vendor",
		ReferenceID: f.provider.UserID,
	}).Return(&gateway.Contact{ID: "cont_1"}, nil)
	f.payouts.EXPECT().CreateFundAccount(gomock.Any(), gateway.FundAccountRequest{
		ContactID:   "cont_1",
		AccountType: gateway.AccountTypeBank,
		BankAccount: &gateway.BankAccount{Name: "Jane Doe", IFSC: "HDFC0001234", AccountNumber: "123456789012"},
	}).Return(&gateway.FundAccount{ID: "fa_1"}, nil)
	f.payouts.EXPECT().CreatePayout(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, payout gateway.PayoutRequest, idempotencyKey string) (*gateway.Payout, error) {
			if idempotencyKey != payout.ReferenceID || payout.Mode != "IMPS" || payout.AccountNumber == "" {
				t.Errorf("unexpected payout request %+v, key %q", payout, idempotencyKey)
			}
			return &gateway.Payout{ID: "pout_1", Status: gateway.PayoutStatusProcessing, Amount: payout.Amount}, nil
		})

	withdrawal, err := f.withdrawals.CreateWithdrawal(ctx, models.WithdrawalRequest{
		ProviderID: f.provider.UserID,
		Amount:     40000,
		Method:     models.MethodBankTransfer,
		Details:    bankDetails,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if withdrawal.Status != models.WithdrawalStatusProcessing || withdrawal.GatewayPayoutID == nil || *withdrawal.GatewayPayoutID != "pout_1" {
		t.Fatalf("unexpected withdrawal %+v", withdrawal)
	}
	if got := f.available(t); got != 60000 {
		t.Errorf("Expected reserved amount excluded, available %d", got)
	}

	// второй вывод невозможен, пока первый не завершён
	_, err = f.withdrawals.CreateWithdrawal(ctx, models.WithdrawalRequest{
		ProviderID: f.provider.UserID,
		Amount:     10000,
		Method:     models.MethodUPI,
		Details:    upiDetails,
	})
	if !errors.Is(err, ErrPendingWithdrawal) {
		t.Errorf("Expected error '%v', got: '%v'", ErrPendingWithdrawal, err)
	}

	body, signature := payoutEvent(t, "payout.processed", "pout_1", withdrawal.ID)
	for range 3 {
		if err := f.withdrawals.HandlePayoutWebhook(ctx, body, signature); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
	}
	stored, _ := f.store.GetWithdrawal(ctx, withdrawal.ID)
	if stored.Status != models.WithdrawalStatusCompleted {
		t.Errorf("Expected COMPLETED, got %s", stored.Status)
	}
	if got := f.available(t); got != 60000 {
		t.Errorf("Expected withdrawn amount excluded, available %d", got)
	}

	body, signature = payoutEvent(t, "payout.reversed", "pout_1", withdrawal.ID)
	if err := f.withdrawals.HandlePayoutWebhook(ctx, body, signature); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	stored, _ = f.store.GetWithdrawal(ctx, withdrawal.ID)
	if stored.Status != models.WithdrawalStatusReversed || stored.FailureReason == nil {
		t.Errorf("Expected REVERSED with reason, got %+v", stored)
	}
	if got := f.available(t); got != 100000 {
		t.Errorf("Expected reversed amount returned, available %d", got)
	}

	// ошибка шлюза при запуске выплаты
	f.payouts.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(nil, &gateway.UpstreamError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "invalid"})
	failed, err := f.withdrawals.CreateWithdrawal(ctx, models.WithdrawalRequest{
		ProviderID: f.provider.UserID,
		Amount:     70000,
		Method:     models.MethodUPI,
		Details:    upiDetails,
	})
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Errorf("Expected upstream error, got: '%v'", err)
	}
	if failed == nil || failed.Status != models.WithdrawalStatusFailed || failed.FailureReason == nil {
		t.Fatalf("Expected FAILED withdrawal with reason, got %+v", failed)
	}
	if got := f.available(t); got != 100000 {
		t.Errorf("Expected failed amount returned, available %d", got)
	}

	// COMPLETED, REVERSED и FAILED по отдельному уведомлению
	if sent := f.notifier.byType(models.NotifyWithdrawalUpdated); len(sent) != 3 {
		t.Errorf("Expected 3 notifications, got %d", len(sent))
	}

	_, err = f.withdrawals.CreateWithdrawal(ctx, models.WithdrawalRequest{
		ProviderID: f.provider.UserID,
		Amount:     100001,
		Method:     models.MethodUPI,
		Details:    upiDetails,
	})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("Expected error '%v', got: '%v'", ErrInsufficientBalance, err)
	}
}

func TestWithdrawalsService_SynchronousRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeLive, 30000)
	f.expectPayout("pout_rej", gateway.PayoutStatusRejected)

	withdrawal, err := f.withdrawals.CreateWithdrawal(context.Background(), models.WithdrawalRequest{
		ProviderID: f.provider.UserID,
		Amount:     30000,
		Method:     models.MethodUPI,
		Details:    upiDetails,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if withdrawal.Status != models.WithdrawalStatusFailed || withdrawal.FailureReason == nil || *withdrawal.FailureReason != "payout rejected" {
		t.Errorf("unexpected withdrawal %+v", withdrawal)
	}
	if got := f.available(t); got != 30000 {
		t.Errorf("Expected balance restored, available %d", got)
	}
}

func TestWithdrawalsService_ConcurrentRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeLive, 50000)
	f.expectPayout("pout_once", gateway.PayoutStatusQueued)

	const attempts = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.withdrawals.CreateWithdrawal(context.Background(), models.WithdrawalRequest{
				ProviderID: f.provider.UserID,
				Amount:     40000,
				Method:     models.MethodUPI,
				Details:    upiDetails,
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			if !errors.Is(err, ErrPendingWithdrawal) && !errors.Is(err, ErrInsufficientBalance) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Errorf("Expected exactly one withdrawal, got %d", succeeded)
	}
	balance, _ := f.withdrawals.GetBalance(context.Background(), f.provider.UserID)
	if balance.Reserved != 40000 || balance.Signed() < 0 {
		t.Errorf("unexpected balance %+v", balance)
	}
}

func TestWithdrawalsService_HandlePayoutWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeLive, 0)

	unknown, unknownSig := payoutEvent(t, "payout.processed", "pout_unknown", "")
	queued, queuedSig := payoutEvent(t, "payout.queued", "pout_unknown", "")
	empty, emptySig := payoutEvent(t, "payout.failed", "", "")
	other := []byte(`{"event":"transaction.created","payload":{}}`)

	testCases := []struct {
		Name          string
		Body          []byte
		Signature     string
		ExpectedError error
	}{
		{
			Name:          "Error. Invalid signature #1",
			Body:          unknown,
			Signature:     gateway.Sign(unknown, testWebhookSecret),
			ExpectedError: ErrInvalidSignature,
		},
		{
			Name:          "Error. Malformed body #2",
			Body:          []byte("not json"),
			Signature:     gateway.Sign([]byte("not json"), testPayoutSecret),
			ExpectedError: ErrInvalidPayload,
		},
		{
			Name:          "Error. No identifiers #3",
			Body:          empty,
			Signature:     emptySig,
			ExpectedError: ErrInvalidPayload,
		},
		{
			Name:      "Success. Unknown withdrawal is acknowledged #4",
			Body:      unknown,
			Signature: unknownSig,
		},
		{
			Name:      "Success. Intermediate status is ignored #5",
			Body:      queued,
			Signature: queuedSig,
		},
		{
			Name:      "Success. Other event is ignored #6",
			Body:      other,
			Signature: gateway.Sign(other, testPayoutSecret),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := f.withdrawals.HandlePayoutWebhook(context.Background(), tc.Body, tc.Signature)
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestWithdrawalsService_StaleAndSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeLive, 50000)
	ctx := context.Background()

	f.expectPayout("pout_sync", gateway.PayoutStatusProcessing)
	withdrawal, err := f.withdrawals.CreateWithdrawal(ctx, models.WithdrawalRequest{
		ProviderID: f.provider.UserID,
		Amount:     25000,
		Method:     models.MethodUPI,
		Details:    upiDetails,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	stale, err := f.withdrawals.GetStaleWithdrawals(ctx, 10)
	if err != nil || len(stale) != 0 {
		t.Fatalf("Expected fresh withdrawal to be skipped, got %d, %v", len(stale), err)
	}

	f.withdrawals.Now = func() time.Time { return time.Now().Add(time.Hour) }
	stale, err = f.withdrawals.GetStaleWithdrawals(ctx, 10)
	if err != nil || len(stale) != 1 || stale[0].ID != withdrawal.ID {
		t.Fatalf("Expected stale withdrawal, got %+v, %v", stale, err)
	}

	f.payouts.EXPECT().GetPayout(gomock.Any(), "pout_sync").
		Return(&gateway.Payout{ID: "pout_sync", Status: gateway.PayoutStatusProcessed}, nil)
	if err := f.withdrawals.SyncPayout(ctx, stale[0]); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	stored, _ := f.store.GetWithdrawal(ctx, withdrawal.ID)
	if stored.Status != models.WithdrawalStatusCompleted {
		t.Errorf("Expected COMPLETED, got %s", stored.Status)
	}

	// без идентификатора выплаты опрашивать нечего
	if err := f.withdrawals.SyncPayout(ctx, models.Withdrawal{ID: "w"}); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}

	f.payouts.EXPECT().GetPayout(gomock.Any(), "pout_sync").Return(nil, gateway.ErrServiceUnavailable)
	if err := f.withdrawals.SyncPayout(ctx, *stored); !errors.Is(err, gateway.ErrServiceUnavailable) {
		t.Errorf("Expected error '%v', got: '%v'", gateway.ErrServiceUnavailable, err)
	}
}

func TestWithdrawalsService_SyncStuckPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeLive, 50000)
	ctx := context.Background()

	// вывод зарезервирован, но запуск выплаты не дошёл до сохранения
	reserve := func(t *testing.T, id string) models.Withdrawal {
		t.Helper()
		old := time.Now().Add(-time.Hour)
		withdrawal := models.Withdrawal{
			ID:          id,
			ProviderID:  f.provider.UserID,
			Amount:      20000,
			Method:      models.MethodUPI,
			Destination: "ja****@okaxis",
			Status:      models.WithdrawalStatusPending,
			CreatedAt:   old,
			UpdatedAt:   old,
		}
		if err := f.store.ReserveWithdrawal(ctx, withdrawal); err != nil {
			t.Fatalf("failed to reserve withdrawal: %v", err)
		}
		return withdrawal
	}

	t.Run("Unknown at gateway is failed #1", func(t *testing.T) {
		withdrawal := reserve(t, "wd_lost")
		f.payouts.EXPECT().FindPayoutByReference(gomock.Any(), "2323230000000001", "wd_lost").
			Return(nil, gateway.ErrPayoutNotFound)

		if err := f.withdrawals.SyncPayout(ctx, withdrawal); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		stored, _ := f.store.GetWithdrawal(ctx, withdrawal.ID)
		if stored.Status != models.WithdrawalStatusFailed || stored.FailureReason == nil {
			t.Errorf("Expected FAILED with reason, got %+v", stored)
		}
		if got := f.available(t); got != 50000 {
			t.Errorf("Expected full balance available again, got %d", got)
		}
		if len(f.notifier.byType(models.NotifyWithdrawalUpdated)) != 1 {
			t.Errorf("Expected provider to be notified once")
		}
	})

	t.Run("Accepted payout is recovered by reference #2", func(t *testing.T) {
		withdrawal := reserve(t, "wd_accepted")
		f.payouts.EXPECT().FindPayoutByReference(gomock.Any(), "2323230000000001", "wd_accepted").
			Return(&gateway.Payout{ID: "pout_found", Status: gateway.PayoutStatusProcessed, ReferenceID: "wd_accepted"}, nil)

		if err := f.withdrawals.SyncPayout(ctx, withdrawal); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		stored, _ := f.store.GetWithdrawal(ctx, withdrawal.ID)
		if stored.Status != models.WithdrawalStatusCompleted || stored.GatewayPayoutID == nil || *stored.GatewayPayoutID != "pout_found" {
			t.Errorf("Expected COMPLETED with recovered payout, got %+v", stored)
		}
		if got := f.available(t); got != 30000 {
			t.Errorf("Expected 30000 available, got %d", got)
		}
	})
}

func TestWithdrawalsService_ProcessedAfterInitiationTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalsFixture(t, ctrl, config.PayoutModeLive, 50000)
	ctx := context.Background()

	// шлюз принял выплату, но ответ не дошёл до клиента
	f.payouts.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(&gateway.Contact{ID: "cont_1"}, nil)
	f.payouts.EXPECT().CreateFundAccount(gomock.Any(), gomock.Any()).Return(&gateway.FundAccount{ID: "fa_1"}, nil)
	f.payouts.EXPECT().CreatePayout(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

	request := models.WithdrawalRequest{ProviderID: f.provider.UserID, Amount: 50000, Method: models.MethodUPI, Details: upiDetails}
	withdrawal, err := f.withdrawals.CreateWithdrawal(ctx, request)
	if err == nil {
		t.Fatalf("Expected initiation error, got none")
	}
	if withdrawal == nil || withdrawal.Status != models.WithdrawalStatusFailed {
		t.Fatalf("Expected FAILED withdrawal, got %+v", withdrawal)
	}

	body, signature := payoutEvent(t, "payout.processed", "pout_late", withdrawal.ID)
	for range 2 {
		if err := f.withdrawals.HandlePayoutWebhook(ctx, body, signature); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
	}
	stored, _ := f.store.GetWithdrawal(ctx, withdrawal.ID)
	if stored.Status != models.WithdrawalStatusCompleted || stored.GatewayPayoutID == nil || *stored.GatewayPayoutID != "pout_late" {
		t.Errorf("Expected late payout to complete the withdrawal, got %+v", stored)
	}
	if got := f.available(t); got != 0 {
		t.Errorf("Expected paid out earnings to be debited, available %d", got)
	}

	// те же заработки второй раз не выводятся
	if _, err := f.withdrawals.CreateWithdrawal(ctx, request); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("Expected error '%v', got: '%v'", ErrInsufficientBalance, err)
	}
}
