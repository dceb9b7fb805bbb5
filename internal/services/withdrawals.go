package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
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

const (
	payoutEventPrefix = "payout."
	payoutPurpose     = "payout"
	payoutNarration   = "Interview earnings"
	stuckPayoutReason = "payout was not initiated"
)

type Withdrawals struct {
	Storage  storage.IStorage
	Payouts  gateway.Payouts
	Notifier notify.Notifier
	Config   config.Config
	Now      func() time.Time
}

// Создание сервиса. В режиме simulated payouts может быть nil
func NewWithdrawals(cfg config.Config, storage storage.IStorage, payouts gateway.Payouts, notifier notify.Notifier) *Withdrawals {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &Withdrawals{
		Storage:  storage,
		Payouts:  payouts,
		Notifier: notifier,
		Config:   cfg,
		Now:      time.Now,
	}
}

func (s *Withdrawals) GetBalance(ctx context.Context, providerID string) (*models.Balance, error) {
	balance, err := s.Storage.GetBalance(ctx, providerID)
	if err != nil {
		logger.Error("Failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Withdrawals) ListWithdrawals(ctx context.Context, providerID string) ([]models.Withdrawal, error) {
	withdrawals, err := s.Storage.ListWithdrawals(ctx, providerID)
	if err != nil {
		logger.Error("Failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// CreateWithdrawal - резервирование средств и запуск выплаты. Ошибка запуска переводит вывод в FAILED
func (s *Withdrawals) CreateWithdrawal(ctx context.Context, request models.WithdrawalRequest) (*models.Withdrawal, error) {
	if request.Amount < s.Config.Payout.MinAmount || request.Amount > s.Config.Payout.MaxAmount {
		return nil, ErrAmountOutOfBounds
	}
	destination, err := ValidateTransferDetails(request.Method, request.Details)
	if err != nil {
		return nil, err
	}

	provider, err := s.Storage.GetUserByID(ctx, request.ProviderID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}
	if provider.Role != models.RoleProvider {
		return nil, ErrNotProvider
	}

	now := s.Now()
	withdrawal := models.Withdrawal{
		ID:          uuid.NewString(),
		ProviderID:  provider.UserID,
		Amount:      request.Amount,
		Method:      request.Method,
		Destination: destination,
		Status:      models.WithdrawalStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Storage.ReserveWithdrawal(ctx, withdrawal); err != nil {
		switch {
		case errors.Is(err, storage.ErrPendingWithdrawal):
			return nil, ErrPendingWithdrawal
		case errors.Is(err, storage.ErrInsufficientBalance):
			return nil, ErrInsufficientBalance
		case errors.Is(err, storage.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to reserve withdrawal", zap.Error(err))
		return nil, err
	}
	audit("withdrawal", withdrawal.ID, "", withdrawal.Status, "provider_id", withdrawal.ProviderID, "amount", withdrawal.Amount)

	if s.Config.Payout.Mode != config.PayoutModeLive || s.Payouts == nil {
		return s.completeSimulated(ctx, &withdrawal)
	}
	return s.initiatePayout(ctx, &withdrawal, provider, request.Details)
}

func (s *Withdrawals) completeSimulated(ctx context.Context, withdrawal *models.Withdrawal) (*models.Withdrawal, error) {
	payoutID := "sim_" + withdrawal.ID
	updated, changed, err := s.Storage.TransitionWithdrawal(ctx, models.WithdrawalTransition{
		WithdrawalID: withdrawal.ID,
		From:         []string{models.WithdrawalStatusPending},
		To:           models.WithdrawalStatusCompleted,
		PayoutID:     &payoutID,
	})
	if err != nil {
		logger.Error("Failed to complete simulated payout", zap.Error(err))
		return nil, err
	}
	if changed {
		audit("withdrawal", updated.ID, withdrawal.Status, updated.Status, "payout_id", payoutID, "mode", config.PayoutModeSimulated)
		s.notifyProvider(ctx, updated)
	}
	return updated, nil
}

func (s *Withdrawals) requestPayout(ctx context.Context, withdrawal *models.Withdrawal, provider *models.UserData, details models.TransferDetails) (*gateway.Payout, error) {
	name := strings.TrimSpace(details.AccountHolder)
	if name == "" {
		name = provider.Login
	}
	contact, err := s.Payouts.CreateContact(ctx, gateway.ContactRequest{
		Name:        name,
		Type:        "vendor",
		ReferenceID: provider.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	account := gateway.FundAccountRequest{ContactID: contact.ID}
	mode := "IMPS"
	switch withdrawal.Method {
	case models.MethodUPI:
		account.AccountType = gateway.AccountTypeVPA
		account.VPA = &gateway.VPA{Address: details.VPA}
		mode = "UPI"
	default:
		account.AccountType = gateway.AccountTypeBank
		account.BankAccount = &gateway.BankAccount{
			Name:          name,
			IFSC:          strings.ToUpper(details.IFSC),
			AccountNumber: details.AccountNumber,
		}
	}
	fundAccount, err := s.Payouts.CreateFundAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("create fund account: %w", err)
	}

	// идентификатор вывода служит ключом идемпотентности выплаты
	payout, err := s.Payouts.CreatePayout(ctx, gateway.PayoutRequest{
		AccountNumber:     s.Config.Payout.AccountNumber,
		FundAccountID:     fundAccount.ID,
		Amount:            withdrawal.Amount,
		Currency:          s.Config.Gateway.Currency,
		Mode:              mode,
		Purpose:           payoutPurpose,
		QueueIfLowBalance: true,
		ReferenceID:       withdrawal.ID,
		Narration:         payoutNarration,
	}, withdrawal.ID)
	if err != nil {
		return nil, fmt.Errorf("create payout: %w", err)
	}
	return payout, nil
}

func (s *Withdrawals) initiatePayout(ctx context.Context, withdrawal *models.Withdrawal, provider *models.UserData, details models.TransferDetails) (*models.Withdrawal, error) {
	payout, err := s.requestPayout(ctx, withdrawal, provider, details)
	if err != nil {
		logger.Errorw("payout initiation failed", "withdrawal_id", withdrawal.ID, "error", err)
		reason := err.Error()
		failed, changed, terr := s.Storage.TransitionWithdrawal(ctx, models.WithdrawalTransition{
			WithdrawalID:  withdrawal.ID,
			From:          []string{models.WithdrawalStatusPending},
			To:            models.WithdrawalStatusFailed,
			FailureReason: &reason,
		})
		if terr != nil {
			logger.Error("Failed to mark withdrawal failed", zap.Error(terr))
			return nil, terr
		}
		if changed {
			audit("withdrawal", failed.ID, withdrawal.Status, failed.Status, "reason", reason)
			s.notifyProvider(ctx, failed)
		}
		return failed, apperr.Upstream(err)
	}

	updated, err := s.Storage.AttachPayout(ctx, withdrawal.ID, payout.ID)
	if err != nil {
		logger.Error("Failed to attach payout", zap.Error(err))
		return nil, err
	}
	audit("withdrawal", updated.ID, withdrawal.Status, updated.Status, "payout_id", payout.ID)

	switch payout.Status {
	case gateway.PayoutStatusProcessed, gateway.PayoutStatusFailed, gateway.PayoutStatusRejected,
		gateway.PayoutStatusReversed, gateway.PayoutStatusCancelled:
		return s.ApplyPayoutStatus(ctx, payout.ID, withdrawal.ID, payout.Status, payout.Reason())
	}
	return updated, nil
}

func (s *Withdrawals) findWithdrawal(ctx context.Context, payoutID string, referenceID string) (*models.Withdrawal, error) {
	if payoutID != "" {
		withdrawal, err := s.Storage.GetWithdrawalByPayoutID(ctx, payoutID)
		if err == nil {
			return withdrawal, nil
		}
		if !errors.Is(err, storage.ErrWithdrawalNotFound) {
			return nil, err
		}
	}
	if referenceID == "" {
		return nil, ErrWithdrawalNotFound
	}
	withdrawal, err := s.Storage.GetWithdrawal(ctx, referenceID)
	if err != nil {
		if errors.Is(err, storage.ErrWithdrawalNotFound) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, err
	}
	return withdrawal, nil
}

// ApplyPayoutStatus - применение статуса выплаты шлюза. Общий путь для вебхука и опроса
func (s *Withdrawals) ApplyPayoutStatus(ctx context.Context, payoutID string, referenceID string, status string, reason string) (*models.Withdrawal, error) {
	withdrawal, err := s.findWithdrawal(ctx, payoutID, referenceID)
	if err != nil {
		if !errors.Is(err, ErrWithdrawalNotFound) {
			logger.Error("Failed to get withdrawal", zap.Error(err))
		}
		return nil, err
	}

	inFlight := []string{models.WithdrawalStatusPending, models.WithdrawalStatusProcessing}
	t := models.WithdrawalTransition{WithdrawalID: withdrawal.ID}
	switch status {
	case gateway.PayoutStatusProcessed:
		// FAILED после неоднозначной ошибки запуска: деньги всё равно могли уйти
		t.From, t.To = append(inFlight, models.WithdrawalStatusFailed), models.WithdrawalStatusCompleted
	case gateway.PayoutStatusFailed, gateway.PayoutStatusRejected, gateway.PayoutStatusCancelled:
		t.From, t.To = inFlight, models.WithdrawalStatusFailed
	case gateway.PayoutStatusReversed:
		t.From, t.To = append(inFlight, models.WithdrawalStatusCompleted), models.WithdrawalStatusReversed
	case gateway.PayoutStatusQueued, gateway.PayoutStatusPending, gateway.PayoutStatusProcessing:
		logger.Debugw("payout still in progress", "withdrawal_id", withdrawal.ID, "status", status)
		return withdrawal, nil
	default:
		logger.Warnw("unknown payout status", "withdrawal_id", withdrawal.ID, "status", status)
		return withdrawal, nil
	}
	if payoutID != "" {
		t.PayoutID = &payoutID
	}
	if t.To != models.WithdrawalStatusCompleted {
		if reason == "" {
			reason = "payout " + status
		}
		t.FailureReason = &reason
	}

	updated, changed, err := s.Storage.TransitionWithdrawal(ctx, t)
	if err != nil {
		logger.Error("Failed to change withdrawal status", zap.Error(err))
		return nil, err
	}
	if !changed {
		logger.Infow("payout status replay", "withdrawal_id", updated.ID, "status", updated.Status, "payout_status", status)
		return updated, nil
	}
	if withdrawal.Status == models.WithdrawalStatusFailed {
		logger.Warnw("payout processed after withdrawal was failed",
			"withdrawal_id", updated.ID, "provider_id", updated.ProviderID, "payout_id", payoutID, "amount", updated.Amount)
		audit("withdrawal", updated.ID, withdrawal.Status, updated.Status, "payout_id", payoutID, "payout_status", status, "late_success", true)
	} else {
		audit("withdrawal", updated.ID, withdrawal.Status, updated.Status, "payout_id", payoutID, "payout_status", status)
	}
	s.notifyProvider(ctx, updated)
	return updated, nil
}

// HandlePayoutWebhook - обработка вебхука сервиса выплат
func (s *Withdrawals) HandlePayoutWebhook(ctx context.Context, body []byte, signature string) error {
	if !gateway.VerifySignature(body, signature, s.Config.Payout.WebhookSecret) {
		securityEvent("payout_webhook")
		return ErrInvalidSignature
	}

	var event models.PayoutEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPayload, err.Error())
	}
	status, ok := strings.CutPrefix(event.Event, payoutEventPrefix)
	if !ok {
		logger.Infow("payout webhook event ignored", "event", event.Event)
		return nil
	}
	switch status {
	case gateway.PayoutStatusProcessed, gateway.PayoutStatusFailed, gateway.PayoutStatusRejected, gateway.PayoutStatusReversed:
	default:
		logger.Infow("payout webhook event ignored", "event", event.Event)
		return nil
	}

	entity := event.Payload.Payout.Entity
	if entity.ID == "" && entity.ReferenceID == "" {
		return ErrInvalidPayload
	}
	_, err := s.ApplyPayoutStatus(ctx, entity.ID, entity.ReferenceID, status, entity.Reason())
	if errors.Is(err, ErrWithdrawalNotFound) {
		logger.Warnw("payout webhook for unknown withdrawal", "payout_id", entity.ID, "reference_id", entity.ReferenceID)
		return nil
	}
	return err
}

// GetStaleWithdrawals - выводы в PENDING или PROCESSING без обновлений дольше StaleAfter
func (s *Withdrawals) GetStaleWithdrawals(ctx context.Context, count int) ([]models.Withdrawal, error) {
	withdrawals, err := s.Storage.ClaimStaleWithdrawals(ctx, s.Now().Add(-s.Config.Payout.StaleAfter), count)
	if err != nil {
		logger.Error("Failed to get stale withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// SyncPayout - запрос статуса выплаты у шлюза. Вывод в PENDING без выплаты ищется по своему идентификатору,
// а если шлюз его не знает, переводится в FAILED с возвратом средств на баланс
func (s *Withdrawals) SyncPayout(ctx context.Context, withdrawal models.Withdrawal) error {
	if withdrawal.GatewayPayoutID != nil {
		if s.Payouts == nil {
			return nil
		}
		payout, err := s.Payouts.GetPayout(ctx, *withdrawal.GatewayPayoutID)
		if err != nil {
			return err
		}
		_, err = s.ApplyPayoutStatus(ctx, payout.ID, withdrawal.ID, payout.Status, payout.Reason())
		return err
	}
	if withdrawal.Status != models.WithdrawalStatusPending {
		return nil
	}

	if s.Config.Payout.Mode != config.PayoutModeLive || s.Payouts == nil {
		return s.failStuck(ctx, &withdrawal)
	}
	payout, err := s.Payouts.FindPayoutByReference(ctx, s.Config.Payout.AccountNumber, withdrawal.ID)
	if err != nil {
		if errors.Is(err, gateway.ErrPayoutNotFound) {
			return s.failStuck(ctx, &withdrawal)
		}
		return err
	}
	if _, err := s.Storage.AttachPayout(ctx, withdrawal.ID, payout.ID); err != nil {
		logger.Error("Failed to attach payout", zap.Error(err))
		return err
	}
	audit("withdrawal", withdrawal.ID, withdrawal.Status, models.WithdrawalStatusProcessing, "payout_id", payout.ID, "recovered", true)
	_, err = s.ApplyPayoutStatus(ctx, payout.ID, withdrawal.ID, payout.Status, payout.Reason())
	return err
}

func (s *Withdrawals) failStuck(ctx context.Context, withdrawal *models.Withdrawal) error {
	reason := stuckPayoutReason
	failed, changed, err := s.Storage.TransitionWithdrawal(ctx, models.WithdrawalTransition{
		WithdrawalID:  withdrawal.ID,
		From:          []string{models.WithdrawalStatusPending},
		To:            models.WithdrawalStatusFailed,
		FailureReason: &reason,
	})
	if err != nil {
		logger.Error("Failed to mark withdrawal failed", zap.Error(err))
		return err
	}
	if changed {
		logger.Warnw("stuck withdrawal failed", "withdrawal_id", failed.ID, "provider_id", failed.ProviderID)
		audit("withdrawal", failed.ID, withdrawal.Status, failed.Status, "reason", reason)
		s.notifyProvider(ctx, failed)
	}
	return nil
}

func (s *Withdrawals) notifyProvider(ctx context.Context, withdrawal *models.Withdrawal) {
	message := "Withdrawal of " + FormatAmount(withdrawal.Amount, s.Config.Gateway.Currency) + " is " + strings.ToLower(withdrawal.Status)
	if withdrawal.FailureReason != nil && withdrawal.Status != models.WithdrawalStatusCompleted {
		message += ": " + *withdrawal.FailureReason
	}
	s.Notifier.Notify(ctx, models.Notification{
		UserID:  withdrawal.ProviderID,
		Type:    models.NotifyWithdrawalUpdated,
		Title:   "Withdrawal " + strings.ToLower(withdrawal.Status),
		Message: message,
		Data: map[string]string{
			"withdrawal_id": withdrawal.ID,
			"status":        withdrawal.Status,
		},
	})
}
