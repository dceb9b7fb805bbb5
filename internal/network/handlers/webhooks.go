package handlers

import (
	"io"
	"net/http"

	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/services"
	"go.uber.org/zap"
)

// SignatureHeader - заголовок с подписью тела вебхука
const SignatureHeader = "X-Razorpay-Signature"

// максимальный размер тела вебхука
const maxWebhookBody = 1 << 20

// подпись проверяется по сырому телу, поэтому тело не декодируется до передачи в сервис
func readWebhook(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		logger.Warn("Failed to read webhook body:", zap.Error(err))
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

// PaymentWebhookHandler - события платёжного шлюза
func PaymentWebhookHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := readWebhook(w, r)
		if !ok {
			return
		}
		if err := p.HandleWebhook(r.Context(), body, r.Header.Get(SignatureHeader)); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// PayoutWebhookHandler - события сервиса выплат
func PayoutWebhookHandler(wd services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := readWebhook(w, r)
		if !ok {
			return
		}
		if err := wd.HandlePayoutWebhook(r.Context(), body, r.Header.Get(SignatureHeader)); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
