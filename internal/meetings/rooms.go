// Package meetings - клиент сервиса видеовстреч
package meetings

//go:generate mockgen -source=rooms.go -destination=mocks/mock_rooms.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/denmor86/interview-market/internal/logger"
	"github.com/sony/gobreaker"
)

type Rooms interface {
	CreateRoom(ctx context.Context, creatorID string, title string) (string, error)
}

var (
	ErrDisabled = errors.New("meeting service is not configured")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type roomRequest struct {
	CreatorID string `json:"creator_id"`
	Title     string `json:"title"`
}

type roomResponse struct {
	URL string `json:"url"`
}

// Client - HTTP-клиент сервиса комнат. Пустой baseURL отключает клиент
type Client struct {
	baseURL    string
	httpClient HTTPClient
	breaker    *gobreaker.CircuitBreaker
}

// newBreaker - при недоступном сервисе комнат заявки сразу получают резервную ссылку
func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "meeting-rooms",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnw("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		breaker:    newBreaker(),
	}
}

func (c *Client) CreateRoom(ctx context.Context, creatorID string, title string) (string, error) {
	if c.baseURL == "" {
		return "", ErrDisabled
	}
	url, err := c.breaker.Execute(func() (interface{}, error) {
		return c.createRoom(ctx, creatorID, title)
	})
	if err != nil {
		return "", err
	}
	return url.(string), nil
}

func (c *Client) createRoom(ctx context.Context, creatorID string, title string) (string, error) {
	body, err := json.Marshal(roomRequest{CreatorID: creatorID, Title: title})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rooms", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("meeting service returned status %d", resp.StatusCode)
	}

	var result roomResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode meeting room: %w", err)
	}
	if result.URL == "" {
		return "", errors.New("meeting service returned empty url")
	}
	return result.URL, nil
}

// FallbackLink - статическая ссылка на панель интервью
func FallbackLink(panelURL string, requestID string) string {
	return strings.TrimRight(panelURL, "/") + "/interviews/" + requestID
}
