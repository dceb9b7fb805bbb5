package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrServiceUnavailable = errors.New("payment gateway unavailable")
	ErrPayoutNotFound     = errors.New("payout not found")
)

// UpstreamError - ошибка, возвращённая шлюзом
type UpstreamError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *UpstreamError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("gateway error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway error: %s (%s)", e.Description, e.Code)
}

// Temporary - ошибка на стороне шлюза, запрос можно повторить
func (e *UpstreamError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}

type errorBody struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func HandleErrorResponse(resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return NewRateLimitError(resp.Header)
	}

	upstream := &UpstreamError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		var body errorBody
		if json.Unmarshal(data, &body) == nil {
			upstream.Code = body.Error.Code
			upstream.Description = body.Error.Description
		}
	}
	return upstream
}

// isFailure - ошибки, которые учитывает автомат защиты
func isFailure(err error) bool {
	if err == nil {
		return false
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Temporary()
	}
	var limited *RateLimitError
	return !errors.As(err, &limited)
}
