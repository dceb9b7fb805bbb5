package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Режимы выплат
const (
	PayoutModeSimulated = "simulated"
	PayoutModeLive      = "live"
)

type Arguments struct {
	ListenAddr  string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"secret"`

	AdminLogin    string `env:"ADMIN_LOGIN" envDefault:""`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`

	GatewayURL           string        `env:"GATEWAY_URL" envDefault:"https://api.razorpay.com"`
	GatewayKeyID         string        `env:"GATEWAY_KEY_ID" envDefault:""`
	GatewayKeySecret     string        `env:"GATEWAY_KEY_SECRET" envDefault:""`
	GatewayWebhookSecret string        `env:"GATEWAY_WEBHOOK_SECRET" envDefault:""`
	Currency             string        `env:"CURRENCY" envDefault:"INR"`
	PaymentAbandonAfter  time.Duration `env:"PAYMENT_ABANDON_AFTER" envDefault:"24h"`

	PayoutMode          string        `env:"PAYOUT_MODE" envDefault:"simulated"`
	PayoutWebhookSecret string        `env:"PAYOUT_WEBHOOK_SECRET" envDefault:""`
	PayoutAccount       string        `env:"PAYOUT_ACCOUNT_NUMBER" envDefault:""`
	MinWithdrawal       int64         `env:"MIN_WITHDRAWAL" envDefault:"10000"`
	MaxWithdrawal       int64         `env:"MAX_WITHDRAWAL" envDefault:"5000000"`
	PayoutPollInterval  time.Duration `env:"PAYOUT_POLL_INTERVAL" envDefault:"1m"`
	PayoutStaleAfter    time.Duration `env:"PAYOUT_STALE_AFTER" envDefault:"10m"`

	InterviewPrice int64 `env:"INTERVIEW_PRICE" envDefault:"49900"`
	MinCharge      int64 `env:"MIN_CHARGE" envDefault:"100"`

	RequestTTL     time.Duration `env:"REQUEST_TTL" envDefault:"168h"`
	ExpirySchedule string        `env:"EXPIRY_SCHEDULE" envDefault:"@every 5m"`
	PanelURL       string        `env:"PANEL_URL" envDefault:"https://app.interview.market"`
	MeetingURL     string        `env:"MEETING_SERVICE_URL" envDefault:""`

	AMQPURL  string `env:"AMQP_URL" envDefault:""`
	Exchange string `env:"NOTIFY_EXCHANGE" envDefault:"notifications"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr    string
	LogLevel      string
	JWTSecret     string
	DatabaseDSN   string
	AdminLogin    string
	AdminPassword string
}

// GatewayConfig модель настроек платёжного шлюза
type GatewayConfig struct {
	BaseURL       string
	KeyID         string
	KeySecret     string
	WebhookSecret string
	Currency      string

	// заказ в PENDING или FAILED дольше этого срока закрывается с освобождением купона
	AbandonAfter time.Duration
}

// PayoutConfig модель настроек выплат исполнителям
type PayoutConfig struct {
	Mode          string
	WebhookSecret string
	AccountNumber string
	MinAmount     int64
	MaxAmount     int64
	PollInterval  time.Duration
	StaleAfter    time.Duration
	BatchSize     int
}

// PricingConfig модель настроек цен (в минимальных единицах валюты)
type PricingConfig struct {
	InterviewPrice int64
	MinCharge      int64
}

// InterviewsConfig модель настроек жизненного цикла заявок на интервью
type InterviewsConfig struct {
	RequestTTL     time.Duration
	ExpirySchedule string
	MinDuration    int
	MaxDuration    int
	PanelURL       string
	MeetingURL     string
}

// NotifyConfig модель настроек доставки уведомлений
type NotifyConfig struct {
	AMQPURL  string
	Exchange string
}

// Config модель настроек сервиса
type Config struct {
	Server     ServerConfig
	Gateway    GatewayConfig
	Payout     PayoutConfig
	Pricing    PricingConfig
	Interviews InterviewsConfig
	Notify     NotifyConfig
}

func NewConfig() Config {
	// .env не обязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server     = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel   = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN        = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret     = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		gateway    = pflag.StringP("gateway", "g", args.GatewayURL, "Payment gateway base URL.")
		payoutMode = pflag.StringP("payout_mode", "p", args.PayoutMode, "Payout mode: simulated or live.")
		amqpURL    = pflag.StringP("amqp", "q", args.AMQPURL, "RabbitMQ URL for notifications.")
	)
	pflag.Parse()

	cfg := DefaultConfig()
	cfg.Server = ServerConfig{
		ListenAddr:    *server,
		LogLevel:      *logLevel,
		DatabaseDSN:   *DSN,
		JWTSecret:     *secret,
		AdminLogin:    args.AdminLogin,
		AdminPassword: args.AdminPassword,
	}
	cfg.Gateway = GatewayConfig{
		BaseURL:       *gateway,
		KeyID:         args.GatewayKeyID,
		KeySecret:     args.GatewayKeySecret,
		WebhookSecret: args.GatewayWebhookSecret,
		Currency:      args.Currency,
		AbandonAfter:  args.PaymentAbandonAfter,
	}
	cfg.Payout.Mode = *payoutMode
	cfg.Payout.WebhookSecret = args.PayoutWebhookSecret
	cfg.Payout.AccountNumber = args.PayoutAccount
	cfg.Payout.MinAmount = args.MinWithdrawal
	cfg.Payout.MaxAmount = args.MaxWithdrawal
	cfg.Payout.PollInterval = args.PayoutPollInterval
	cfg.Payout.StaleAfter = args.PayoutStaleAfter
	cfg.Pricing = PricingConfig{
		InterviewPrice: args.InterviewPrice,
		MinCharge:      args.MinCharge,
	}
	cfg.Interviews.RequestTTL = args.RequestTTL
	cfg.Interviews.ExpirySchedule = args.ExpirySchedule
	cfg.Interviews.PanelURL = args.PanelURL
	cfg.Interviews.MeetingURL = args.MeetingURL
	cfg.Notify = NotifyConfig{
		AMQPURL:  *amqpURL,
		Exchange: args.Exchange,
	}
	return cfg
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Gateway: GatewayConfig{
			BaseURL:      "https://api.razorpay.com",
			Currency:     "INR",
			AbandonAfter: 24 * time.Hour,
		},
		Payout: PayoutConfig{
			Mode:         PayoutModeSimulated,
			MinAmount:    10000,
			MaxAmount:    5000000,
			PollInterval: time.Minute,
			StaleAfter:   10 * time.Minute,
			BatchSize:    10,
		},
		Pricing: PricingConfig{
			InterviewPrice: 49900,
			MinCharge:      100,
		},
		Interviews: InterviewsConfig{
			RequestTTL:     7 * 24 * time.Hour,
			ExpirySchedule: "@every 5m",
			MinDuration:    15,
			MaxDuration:    180,
			PanelURL:       "https://app.interview.market",
		},
		Notify: NotifyConfig{
			Exchange: "notifications",
		},
	}
}
