package handlers

import (
	"time"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/services"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toInterviewResponse(r *models.InterviewRequest) models.InterviewResponse {
	response := models.InterviewResponse{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		ProviderID:      r.ProviderID,
		Skills:          r.Skills,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Status:          r.Status,
		IsPaid:          r.IsPaid,
		MeetingLink:     r.MeetingLink,
		CancelReason:    r.CancelReason,
		ExpiresAt:       formatTime(r.ExpiresAt),
		CreatedAt:       formatTime(r.CreatedAt),
	}
	if r.ScheduledAt != nil {
		response.ScheduledAt = formatTime(*r.ScheduledAt)
	}
	return response
}

func toInterviewResponses(requests []models.InterviewRequest) []models.InterviewResponse {
	response := make([]models.InterviewResponse, 0, len(requests))
	for i := range requests {
		response = append(response, toInterviewResponse(&requests[i]))
	}
	return response
}

func toPaymentResponse(p *models.Payment) models.PaymentResponse {
	return models.PaymentResponse{
		ID:        p.ID,
		RequestID: p.RequestID,
		Amount:    p.Amount,
		Display:   services.FormatAmount(p.Amount, p.Currency),
		Currency:  p.Currency,
		OrderID:   p.GatewayOrderID,
		Status:    p.Status,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func toWithdrawalResponse(wd *models.Withdrawal, currency string) models.WithdrawalResponse {
	return models.WithdrawalResponse{
		ID:            wd.ID,
		Amount:        wd.Amount,
		Display:       services.FormatAmount(wd.Amount, currency),
		Method:        wd.Method,
		Destination:   wd.Destination,
		Status:        wd.Status,
		FailureReason: wd.FailureReason,
		CreatedAt:     formatTime(wd.CreatedAt),
	}
}

func toBalanceResponse(b *models.Balance, currency string) models.BalanceResponse {
	return models.BalanceResponse{
		Available:        b.Available(),
		AvailableDisplay: services.FormatAmount(b.Available(), currency),
		Earnings:         b.Earnings,
		Withdrawn:        b.Withdrawn,
		Reserved:         b.Reserved,
	}
}
