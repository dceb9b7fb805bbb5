package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/sony/gobreaker"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient HTTPClient
	limiter    *RateLimiter
	breaker    *gobreaker.CircuitBreaker
}

func InitCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 неудачных обращений подряд
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return !isFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

func NewClient(cfg config.GatewayConfig, client HTTPClient) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		httpClient: client,
		limiter:    NewRateLimiter(),
		breaker:    InitCircuitBreaker("payment-gateway"),
	}
}

var (
	_ Payments = (*Client)(nil)
	_ Payouts  = (*Client)(nil)
)

func (c *Client) Available() bool {
	return c.breaker.State() != gobreaker.StateOpen && c.limiter.RetryIn() == 0
}

// do - выполнение запроса к шлюзу через автомат защиты и ограничитель частоты
func (c *Client) do(ctx context.Context, method, path, idempotencyKey string, in, out any) error {
	if left := c.limiter.RetryIn(); left > 0 {
		return &RateLimitError{RetryAfter: left}
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.send(ctx, method, path, idempotencyKey, in, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	var limited *RateLimitError
	if errors.As(err, &limited) {
		logger.Warnw("gateway rate limit exceeded", "path", path, "retry_after", limited.RetryAfter.String())
		c.limiter.BlockFor(limited.RetryAfter)
	}
	return err
}

func (c *Client) send(ctx context.Context, method, path, idempotencyKey string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return fmt.Errorf("failed to encode gateway request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return HandleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}

func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (*Order, error) {
	var result Order
	if err := c.do(ctx, http.MethodPost, "/v1/orders", "", order, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RefundPayment(ctx context.Context, paymentID string, amount int64) (*Refund, error) {
	var result Refund
	path := "/v1/payments/" + url.PathEscape(paymentID) + "/refund"
	if err := c.do(ctx, http.MethodPost, path, "", map[string]int64{"amount": amount}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateContact(ctx context.Context, contact ContactRequest) (*Contact, error) {
	var result Contact
	if err := c.do(ctx, http.MethodPost, "/v1/contacts", "", contact, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateFundAccount(ctx context.Context, account FundAccountRequest) (*FundAccount, error) {
	var result FundAccount
	if err := c.do(ctx, http.MethodPost, "/v1/fund_accounts", "", account, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreatePayout(ctx context.Context, payout PayoutRequest, idempotencyKey string) (*Payout, error) {
	var result Payout
	if err := c.do(ctx, http.MethodPost, "/v1/payouts", idempotencyKey, payout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetPayout(ctx context.Context, payoutID string) (*Payout, error) {
	var result Payout
	if err := c.do(ctx, http.MethodGet, "/v1/payouts/"+url.PathEscape(payoutID), "", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) FindPayoutByReference(ctx context.Context, accountNumber string, referenceID string) (*Payout, error) {
	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("reference_id", referenceID)
	var result PayoutCollection
	if err := c.do(ctx, http.MethodGet, "/v1/payouts?"+query.Encode(), "", nil, &result); err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, ErrPayoutNotFound
	}
	return &result.Items[0], nil
}
