package models

import "time"

// Статусы заявок на интервью
const (
	RequestStatusRequested  = "REQUESTED"
	RequestStatusScheduled  = "SCHEDULED"
	RequestStatusInProgress = "IN_PROGRESS"
	RequestStatusCompleted  = "COMPLETED"
	RequestStatusCancelled  = "CANCELLED"
	RequestStatusNoShow     = "NO_SHOW"
	RequestStatusExpired    = "EXPIRED"
)

// InterviewRequest - модель заявки на интервью
type InterviewRequest struct {
	ID              string
	RequesterID     string
	ProviderID      *string
	Skills          []string
	DurationMinutes int
	Notes           string
	ScheduledAt     *time.Time
	Status          string
	PaymentID       *string
	IsPaid          bool
	CouponID        *string
	MeetingLink     *string
	CancelReason    *string
	CancelledBy     *string
	ExpiresAt       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsParticipant - пользователь является участником интервью
func (r *InterviewRequest) IsParticipant(userID string) bool {
	if r.RequesterID == userID {
		return true
	}
	return r.ProviderID != nil && *r.ProviderID == userID
}

// EndsAt - время окончания интервью (nil, если интервью не назначено)
func (r *InterviewRequest) EndsAt() *time.Time {
	if r.ScheduledAt == nil {
		return nil
	}
	end := r.ScheduledAt.Add(time.Duration(r.DurationMinutes) * time.Minute)
	return &end
}

// CreateRequestData - данные для создания заявки. Должен быть указан ровно один из PaymentID и CouponCode
type CreateRequestData struct {
	RequesterID     string
	Skills          []string
	DurationMinutes int
	Notes           string
	PaymentID       string
	CouponCode      string
}

// ClaimData - данные захвата заявки исполнителем
type ClaimData struct {
	RequestID       string
	ProviderID      string
	ScheduledAt     time.Time
	DurationMinutes int
	// момент проверки срока жизни заявки
	Now time.Time
}

// RequestTransition - условный переход статуса заявки
type RequestTransition struct {
	RequestID string
	From      []string
	To        string
	// если задан, заявка должна принадлежать исполнителю
	ProviderID string
	// если задан, пользователь должен быть заказчиком или исполнителем
	ParticipantID string
	// если задан, интервью должно начаться раньше указанного времени
	ScheduledBefore *time.Time
	Reason          *string
}

// Feedback - отзыв исполнителя по итогам интервью
type Feedback struct {
	RequestID  string
	ProviderID string
	Rating     int
	Comments   string
	CreatedAt  time.Time
}

// CreateRequestBody - тело запроса на создание заявки
type CreateRequestBody struct {
	Skills          []string `json:"skills"`
	DurationMinutes int      `json:"duration_minutes"`
	Notes           string   `json:"notes"`
	PaymentID       string   `json:"payment_id,omitempty"`
	CouponCode      string   `json:"coupon_code,omitempty"`
}

// ClaimBody - тело запроса на захват заявки
type ClaimBody struct {
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

// CancelBody - тело запроса на отмену
type CancelBody struct {
	Reason string `json:"reason"`
}

// FeedbackBody - тело запроса с отзывом
type FeedbackBody struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// InterviewResponse - модель заявки для выдачи
type InterviewResponse struct {
	ID              string   `json:"id"`
	RequesterID     string   `json:"requester_id"`
	ProviderID      *string  `json:"provider_id"`
	Skills          []string `json:"skills"`
	DurationMinutes int      `json:"duration_minutes"`
	Notes           string   `json:"notes,omitempty"`
	ScheduledAt     string   `json:"scheduled_at,omitempty"`
	Status          string   `json:"status"`
	IsPaid          bool     `json:"is_paid"`
	MeetingLink     *string  `json:"meeting_link,omitempty"`
	CancelReason    *string  `json:"cancel_reason,omitempty"`
	ExpiresAt       string   `json:"expires_at"`
	CreatedAt       string   `json:"created_at"`
}
