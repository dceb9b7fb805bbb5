package worker

import (
	"context"

	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/services"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger - адаптер логгера сервиса под интерфейс cron.Logger
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

// ExpiryWorker - периодический перевод просроченных заявок в EXPIRED и закрытие брошенных заказов
type ExpiryWorker struct {
	Interviews services.InterviewsService
	Payments   services.PaymentsService
	Schedule   string
	cron       *cron.Cron
}

func NewExpiryWorker(schedule string, interviews services.InterviewsService, payments services.PaymentsService) *ExpiryWorker {
	return &ExpiryWorker{
		Interviews: interviews,
		Payments:   payments,
		Schedule:   schedule,
		cron:       cron.New(cron.WithLogger(cronLogger{}), cron.WithChain(cron.Recover(cronLogger{}))),
	}
}

// Start - регистрирует задачу по расписанию и запускает планировщик
func (w *ExpiryWorker) Start(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.Schedule, func() { w.Sweep(ctx) }); err != nil {
		return err
	}
	w.cron.Start()
	return nil
}

// Stop - останавливает планировщик и дожидается выполняющейся задачи
func (w *ExpiryWorker) Stop() {
	<-w.cron.Stop().Done()
	logger.Info("ExpiryWorker signal stop")
}

// Sweep - однократный проход по просроченным заявкам и брошенным заказам. Возвращает число закрытых записей
func (w *ExpiryWorker) Sweep(ctx context.Context) int64 {
	var total int64
	expired, err := w.Interviews.ExpireOldRequests(ctx)
	if err != nil {
		logger.Error("Failed to expire interview requests", zap.Error(err))
	} else if expired > 0 {
		logger.Infow("interview requests expired", "count", expired)
		total += expired
	}

	if w.Payments == nil {
		return total
	}
	abandoned, err := w.Payments.ExpireAbandonedPayments(ctx)
	if err != nil {
		logger.Error("Failed to expire abandoned payments", zap.Error(err))
	}
	if abandoned > 0 {
		logger.Infow("abandoned payments closed", "count", abandoned)
		total += abandoned
	}
	return total
}
