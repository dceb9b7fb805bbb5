package meetings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/meetings/mocks"
	"github.com/sony/gobreaker"
	"go.uber.org/mock/gomock"
)

func TestClient_CreateRoom(t *testing.T) {
	testCases := []struct {
		Name        string
		Handler     http.HandlerFunc
		ExpectedURL string
		ExpectError bool
	}{
		{
			Name: "Success #1",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				var req roomRequest
				json.NewDecoder(r.Body).Decode(&req)
				if r.URL.Path != "/rooms" || req.CreatorID != "provider-1" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(roomResponse{URL: "https://meet.example/r/1"})
			},
			ExpectedURL: "https://meet.example/r/1",
		},
		{
			Name: "Error. Service failure #2",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			ExpectError: true,
		},
		{
			Name: "Error. Empty url #3",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(roomResponse{})
			},
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			server := httptest.NewServer(tc.Handler)
			defer server.Close()

			url, err := NewClient(server.URL+"/", server.Client()).CreateRoom(context.Background(), "provider-1", "Interview")
			if tc.ExpectError {
				if err == nil {
					t.Errorf("Expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if url != tc.ExpectedURL {
				t.Errorf("Expected '%s', got '%s'", tc.ExpectedURL, url)
			}
		})
	}
}

func TestClient_BreakerOpens(t *testing.T) {
	if err := logger.Initialize(config.DefaultConfig().Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	for range 3 {
		if _, err := client.CreateRoom(context.Background(), "provider-1", "Interview"); err == nil {
			t.Fatalf("Expected error, got none")
		}
	}
	_, err := client.CreateRoom(context.Background(), "provider-1", "Interview")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected open breaker, got: '%v'", err)
	}
	if calls.Load() != 3 {
		t.Errorf("Expected 3 requests to the service, got %d", calls.Load())
	}
}

func TestClient_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// запросы не отправляются, если адрес сервиса не задан
	mockHTTP := mocks.NewMockHTTPClient(ctrl)

	_, err := NewClient("", mockHTTP).CreateRoom(context.Background(), "provider-1", "Interview")
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got: '%v'", err)
	}
}

func TestFallbackLink(t *testing.T) {
	if got := FallbackLink("https://app.interview.market/", "req-1"); got != "https://app.interview.market/interviews/req-1" {
		t.Errorf("Unexpected fallback link: %s", got)
	}
}
