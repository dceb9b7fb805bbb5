package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/google/go-cmp/cmp"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	if err := logger.Initialize(config.DefaultConfig().Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig().Gateway
	cfg.BaseURL = server.URL
	cfg.KeyID = "key_id"
	cfg.KeySecret = "key_secret"
	return NewClient(cfg, server.Client())
}

func TestClient_CreateOrder(t *testing.T) {
	testCases := []struct {
		Name          string
		Handler       http.HandlerFunc
		ExpectedOrder *Order
		ExpectedError error
	}{
		{
			Name: "Success #1",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				if !ok || user != "key_id" || pass != "key_secret" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				if r.URL.Path != "/v1/orders" || r.Method != http.MethodPost {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				var req OrderRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				json.NewEncoder(w).Encode(Order{ID: "order_1", Amount: req.Amount, Currency: req.Currency, Receipt: req.Receipt, Status: "created"})
			},
			ExpectedOrder: &Order{ID: "order_1", Amount: 49900, Currency: "INR", Receipt: "rcpt_1", Status: "created"},
		},
		{
			Name: "Error. Bad request #2",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount must be at least 100"}}`))
			},
			ExpectedError: &UpstreamError{StatusCode: http.StatusBadRequest, Code: "BAD_REQUEST_ERROR", Description: "amount must be at least 100"},
		},
		{
			Name: "Error. Gateway failure without body #3",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			ExpectedError: &UpstreamError{StatusCode: http.StatusBadGateway},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			client := newTestClient(t, tc.Handler)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			order, err := client.CreateOrder(ctx, OrderRequest{Amount: 49900, Currency: "INR", Receipt: "rcpt_1"})
			if tc.ExpectedError != nil {
				var upstream *UpstreamError
				if !errors.As(err, &upstream) {
					t.Fatalf("Expected UpstreamError, got: '%v'", err)
				}
				if diff := cmp.Diff(tc.ExpectedError, upstream); diff != "" {
					t.Errorf("Error mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedOrder, order); diff != "" {
				t.Errorf("Order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClient_CreatePayoutIdempotencyKey(t *testing.T) {
	var gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Idempotency-Key")
		json.NewEncoder(w).Encode(Payout{ID: "pout_1", Status: PayoutStatusProcessing, ReferenceID: "w-1"})
	})

	payout, err := client.CreatePayout(context.Background(), PayoutRequest{Amount: 10000, ReferenceID: "w-1"}, "w-1")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if gotKey != "w-1" {
		t.Errorf("Expected idempotency key 'w-1', got: '%s'", gotKey)
	}
	if payout.ID != "pout_1" || payout.Status != PayoutStatusProcessing {
		t.Errorf("Unexpected payout: %+v", payout)
	}
}

func TestClient_RateLimit(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetPayout(context.Background(), "pout_1")
	var limited *RateLimitError
	if !errors.As(err, &limited) {
		t.Fatalf("Expected RateLimitError, got: '%v'", err)
	}
	if limited.RetryAfter != time.Minute {
		t.Errorf("Expected retry after 1m, got: %v", limited.RetryAfter)
	}

	// пока действует блокировка, запросы к шлюзу не отправляются
	_, err = client.GetPayout(context.Background(), "pout_1")
	if !errors.As(err, &limited) {
		t.Fatalf("Expected RateLimitError, got: '%v'", err)
	}
	if calls.Load() != 1 {
		t.Errorf("Expected 1 gateway call, got: %d", calls.Load())
	}
	if client.Available() {
		t.Errorf("Expected client to be unavailable while rate limited")
	}
}

func TestClient_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 5; i++ {
		if _, err := client.GetPayout(context.Background(), "pout_1"); err == nil {
			t.Fatalf("Expected error on call %d", i)
		}
	}
	_, err := client.GetPayout(context.Background(), "pout_1")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("Expected ErrServiceUnavailable, got: '%v'", err)
	}
	if calls.Load() != 5 {
		t.Errorf("Expected 5 gateway calls, got: %d", calls.Load())
	}
	if client.Available() {
		t.Errorf("Expected client to be unavailable with open breaker")
	}
}

func TestClient_ClientErrorsKeepBreakerClosed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	for i := 0; i < 10; i++ {
		client.GetPayout(context.Background(), "pout_1")
	}
	if !client.Available() {
		t.Errorf("Expected client to stay available after validation errors")
	}
}

func TestClient_FindPayoutByReference(t *testing.T) {
	testCases := []struct {
		Name           string
		Handler        http.HandlerFunc
		ExpectedPayout *Payout
		ExpectedError  error
	}{
		{
			Name: "Success #1",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				query := r.URL.Query()
				if r.URL.Path != "/v1/payouts" || query.Get("reference_id") != "wd_1" || query.Get("account_number") != "acc_1" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				json.NewEncoder(w).Encode(PayoutCollection{Count: 1, Items: []Payout{{ID: "pout_1", Status: PayoutStatusProcessed, Amount: 10000, ReferenceID: "wd_1"}}})
			},
			ExpectedPayout: &Payout{ID: "pout_1", Status: PayoutStatusProcessed, Amount: 10000, ReferenceID: "wd_1"},
		},
		{
			Name: "Error. Unknown reference #2",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(PayoutCollection{})
			},
			ExpectedError: ErrPayoutNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			client := newTestClient(t, tc.Handler)
			payout, err := client.FindPayoutByReference(context.Background(), "acc_1", "wd_1")
			if !errors.Is(err, tc.ExpectedError) {
				t.Fatalf("Expected error %v, got: '%v'", tc.ExpectedError, err)
			}
			if diff := cmp.Diff(tc.ExpectedPayout, payout); diff != "" {
				t.Errorf("payout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
