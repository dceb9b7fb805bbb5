package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/gateway"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/meetings"
	"github.com/denmor86/interview-market/internal/network/router"
	"github.com/denmor86/interview-market/internal/notify"
	"github.com/denmor86/interview-market/internal/storage"
	"github.com/denmor86/interview-market/internal/storage/memory"
	"github.com/denmor86/interview-market/internal/worker"
	"go.uber.org/zap"
)

const (
	upstreamTimeout = 15 * time.Second
	// секрет подписи клиентских подтверждений в режиме без ключей шлюза
	sandboxKeySecret = "sandbox_secret"
)

type adminBootstrapper interface {
	EnsureAdmin(ctx context.Context, login string, password string) error
}

// NewStorage - PostgreSQL при заданном DSN, иначе хранилище в памяти
func NewStorage(cfg config.ServerConfig) (storage.IStorage, error) {
	if cfg.DatabaseDSN == "" {
		logger.Warn("Database DSN is not set, using in-memory storage")
		return memory.NewStorage(), nil
	}
	db, err := storage.NewDatabase(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := db.Initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return storage.NewStorage(db), nil
}

// newCollaborators - шлюз, сервис комнат и доставка уведомлений по настройкам
func newCollaborators(cfg *config.Config) (router.Collaborators, *gateway.Client, func()) {
	httpClient := &http.Client{Timeout: upstreamTimeout}
	deps := router.Collaborators{
		Rooms:    meetings.NewClient(cfg.Interviews.MeetingURL, httpClient),
		Notifier: notify.LogNotifier{},
	}
	closer := func() {}

	var client *gateway.Client
	if cfg.Gateway.KeyID == "" {
		logger.Warn("Gateway key is not set, using sandbox gateway")
		deps.Payments = gateway.Sandbox{}
		if cfg.Gateway.KeySecret == "" {
			cfg.Gateway.KeySecret = sandboxKeySecret
		}
	} else {
		client = gateway.NewClient(cfg.Gateway, httpClient)
		deps.Payments = client
	}

	if cfg.Payout.Mode == config.PayoutModeLive {
		if client == nil {
			logger.Warn("Live payouts require gateway keys, falling back to simulated mode")
			cfg.Payout.Mode = config.PayoutModeSimulated
		} else {
			deps.Payouts = client
		}
	}

	if cfg.Notify.AMQPURL != "" {
		producer, err := notify.NewEventProducer(cfg.Notify.AMQPURL)
		if err != nil {
			logger.Error("Failed to connect notification broker, using log notifier", zap.Error(err))
		} else {
			notifier := notify.NewBrokerNotifier(producer, cfg.Notify.Exchange)
			deps.Notifier = notifier
			closer = func() {
				notifier.Wait()
				if err := producer.Close(); err != nil {
					logger.Error("error close broker", zap.Error(err))
				}
			}
		}
	}
	return deps, client, closer
}

func Run(cfg config.Config) error {
	store, err := NewStorage(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	deps, client, closeBroker := newCollaborators(&cfg)
	defer closeBroker()

	router := router.NewRouter(cfg, store, deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if admin, ok := router.Identity.(adminBootstrapper); ok {
		if err := admin.EnsureAdmin(ctx, cfg.Server.AdminLogin, cfg.Server.AdminPassword); err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
	}

	server := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	// Создание и запуск воркеров
	expiry := worker.NewExpiryWorker(cfg.Interviews.ExpirySchedule, router.Interviews, router.Payments)
	if err := expiry.Start(ctx); err != nil {
		return fmt.Errorf("failed to schedule expiry: %w", err)
	}
	var payouts *worker.PayoutWorker
	if cfg.Payout.Mode == config.PayoutModeLive && client != nil {
		payouts = worker.NewPayoutWorker(cfg.Payout, router.Withdrawals, client)
		payouts.Start(ctx)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infow("Starting server",
			"address", cfg.Server.ListenAddr,
			"payout_mode", cfg.Payout.Mode,
			"currency", cfg.Gateway.Currency,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	logger.Info("Shutdown server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	expiry.Stop()
	if payouts != nil {
		payouts.Stop()
	}
	logger.Info("Server stopped")
	return nil
}
