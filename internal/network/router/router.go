package router

import (
	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/gateway"
	"github.com/denmor86/interview-market/internal/meetings"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/network/handlers"
	"github.com/denmor86/interview-market/internal/network/middleware"
	"github.com/denmor86/interview-market/internal/notify"
	"github.com/denmor86/interview-market/internal/services"
	"github.com/denmor86/interview-market/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

// Collaborators - внешние зависимости сервисов
type Collaborators struct {
	Payments gateway.Payments
	// nil в режиме simulated
	Payouts  gateway.Payouts
	Rooms    meetings.Rooms
	Notifier notify.Notifier
}

type Router struct {
	Config      config.Config
	Identity    services.IdentityService
	Coupons     services.CouponsService
	Payments    services.PaymentsService
	Interviews  services.InterviewsService
	Withdrawals services.WithdrawalsService
}

func NewRouter(config config.Config, storage storage.IStorage, deps Collaborators) *Router {
	coupons := services.NewCoupons(storage)
	return &Router{
		Config:      config,
		Identity:    services.NewIdentity(config, storage),
		Coupons:     coupons,
		Payments:    services.NewPayments(config, storage, deps.Payments, coupons, deps.Notifier),
		Interviews:  services.NewInterviews(config, storage, coupons, deps.Rooms, deps.Notifier),
		Withdrawals: services.NewWithdrawals(config, storage, deps.Payouts, deps.Notifier),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	currency := router.Config.Gateway.Currency

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandle(router.Identity))
		})
		// подлинность вебхуков проверяется подписью, а не токеном
		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/payments", handlers.PaymentWebhookHandler(router.Payments))
			r.Post("/payouts", handlers.PayoutWebhookHandler(router.Withdrawals))
		})

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))

			r.Get("/coupons/validate", handlers.ValidateCouponHandler(router.Coupons))

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", handlers.ListPaymentsHandler(router.Payments))
				r.With(middleware.RequireRole(models.RoleRequester)).Post("/checkout", handlers.CheckoutHandler(router.Payments))
				r.With(middleware.RequireRole(models.RoleRequester)).Post("/verify", handlers.VerifyPaymentHandler(router.Payments))
			})

			r.Route("/interviews", func(r chi.Router) {
				r.Get("/", handlers.ListMyInterviewsHandler(router.Interviews))
				r.Get("/{id}", handlers.GetInterviewHandler(router.Interviews))
				r.Post("/{id}/cancel", handlers.CancelInterviewHandler(router.Interviews))

				r.With(middleware.RequireRole(models.RoleRequester)).Post("/", handlers.CreateInterviewHandler(router.Interviews))

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(models.RoleProvider))
					r.Get("/available", handlers.ListAvailableInterviewsHandler(router.Interviews))
					r.Post("/{id}/claim", handlers.ClaimInterviewHandler(router.Interviews))
					r.Post("/{id}/start", handlers.StartInterviewHandler(router.Interviews))
					r.Post("/{id}/complete", handlers.CompleteInterviewHandler(router.Interviews))
					r.Post("/{id}/no-show", handlers.NoShowInterviewHandler(router.Interviews))
					r.Post("/{id}/feedback", handlers.FeedbackHandler(router.Interviews))
				})
			})

			r.Route("/provider", func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleProvider))
				r.Get("/balance", handlers.GetBalanceHandler(router.Withdrawals, currency))
				r.Get("/withdrawals", handlers.ListWithdrawalsHandler(router.Withdrawals, currency))
				r.Post("/withdrawals", handlers.CreateWithdrawalHandler(router.Withdrawals, currency))
				r.Put("/expertise", handlers.SetExpertiseHandler(router.Identity))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))
				r.Post("/coupons", handlers.CreateCouponHandler(router.Coupons))
				r.Post("/providers/{id}/approve", handlers.ApproveProviderHandler(router.Identity))
				r.Post("/payments/{id}/refund", handlers.RefundPaymentHandler(router.Payments))
			})
		})
	})
	return r
}
