package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/gateway"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/services"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// PayoutWorker - воркер сверки зависших выплат со шлюзом
type PayoutWorker struct {
	Withdrawals  services.WithdrawalsService
	Payouts      gateway.Payouts
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewPayoutWorker - конструктор воркера сверки выплат
func NewPayoutWorker(cfg config.PayoutConfig, withdrawals services.WithdrawalsService, payouts gateway.Payouts) *PayoutWorker {
	return &PayoutWorker{
		Withdrawals:  withdrawals,
		Payouts:      payouts,
		Breaker:      gateway.InitCircuitBreaker("payout-sync"),
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *PayoutWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PayoutWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

func (w *PayoutWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PayoutWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ProcessStale(ctx)
		}
	}
}

// ProcessStale - сверка пачки выплат, зависших в обработке. Возвращает число сверенных
func (w *PayoutWorker) ProcessStale(ctx context.Context) int {
	if w.Breaker.State() == gobreaker.StateOpen || !w.Payouts.Available() {
		logger.Warnw("payout gateway unavailable, waiting", "breaker", w.Breaker.Name())
		return 0
	}

	withdrawals, err := w.Withdrawals.GetStaleWithdrawals(ctx, w.BatchSize)
	if err != nil {
		logger.Error("Failed to get stale withdrawals", zap.Error(err))
		return 0
	}

	synced := 0
	for _, withdrawal := range withdrawals {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Withdrawals.SyncPayout(ctx, withdrawal)
		})
		if err != nil {
			logger.Errorw("Failed to sync payout", "withdrawal", withdrawal.ID, "error", err)
			continue
		}
		synced++
	}
	return synced
}
