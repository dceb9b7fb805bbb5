package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/denmor86/interview-market/internal/config"
	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/meetings"
	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/notify"
	"github.com/denmor86/interview-market/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Interviews struct {
	Storage  storage.IStorage
	Coupons  CouponsService
	Rooms    meetings.Rooms
	Notifier notify.Notifier
	Config   config.Config
	Now      func() time.Time
}

// Создание сервиса
func NewInterviews(cfg config.Config, storage storage.IStorage, coupons CouponsService, rooms meetings.Rooms, notifier notify.Notifier) *Interviews {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &Interviews{
		Storage:  storage,
		Coupons:  coupons,
		Rooms:    rooms,
		Notifier: notifier,
		Config:   cfg,
		Now:      time.Now,
	}
}

func (s *Interviews) validDuration(minutes int) bool {
	return minutes >= s.Config.Interviews.MinDuration && minutes <= s.Config.Interviews.MaxDuration
}

// CreateRequest - создание заявки. Купон погашается последним, после всех остальных проверок
func (s *Interviews) CreateRequest(ctx context.Context, data models.CreateRequestData) (*models.InterviewRequest, error) {
	skills := NormalizeSkills(data.Skills)
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}
	if !s.validDuration(data.DurationMinutes) {
		return nil, ErrInvalidDuration
	}
	data.CouponCode = strings.TrimSpace(data.CouponCode)
	hasPayment, hasCoupon := data.PaymentID != "", data.CouponCode != ""
	if hasPayment == hasCoupon {
		return nil, ErrGateRequired
	}

	requester, err := s.Storage.GetUserByID(ctx, data.RequesterID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}
	if requester.Role != models.RoleRequester {
		return nil, ErrNotRequester
	}

	if hasPayment {
		payment, err := s.Storage.GetPayment(ctx, data.PaymentID)
		if err != nil {
			if errors.Is(err, storage.ErrPaymentNotFound) {
				return nil, ErrPaymentNotFound
			}
			logger.Error("Failed to get payment", zap.Error(err))
			return nil, err
		}
		if payment.PayerID != requester.UserID {
			return nil, ErrPaymentForbidden
		}
		// сумма до скидки: оплата со скидочным купоном тоже покрывает цену интервью
		if payment.Status != models.PaymentStatusCompleted || payment.BaseAmount < s.Config.Pricing.InterviewPrice {
			return nil, ErrPaymentRequired
		}
		if payment.RequestID != nil {
			return nil, ErrPaymentAlreadyUsed
		}
	}

	now := s.Now()
	request := models.InterviewRequest{
		ID:              uuid.NewString(),
		RequesterID:     requester.UserID,
		Skills:          skills,
		DurationMinutes: data.DurationMinutes,
		Notes:           strings.TrimSpace(data.Notes),
		Status:          models.RequestStatusRequested,
		IsPaid:          hasPayment,
		ExpiresAt:       now.Add(s.Config.Interviews.RequestTTL),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if hasPayment {
		request.PaymentID = &data.PaymentID
	}

	var coupon *models.Coupon
	if hasCoupon {
		coupon, err = s.Coupons.Apply(ctx, data.CouponCode, requester.UserID)
		if err != nil {
			return nil, err
		}
		request.CouponID = &coupon.ID
	}

	if err := s.Storage.AddRequest(ctx, request, data.PaymentID); err != nil {
		if coupon != nil {
			if rerr := s.Coupons.Release(ctx, coupon.ID, requester.UserID); rerr != nil {
				logger.Errorw("failed to release coupon after request failure", "coupon_id", coupon.ID, "error", rerr)
			}
		}
		if errors.Is(err, storage.ErrPaymentUnavailable) {
			return nil, ErrPaymentAlreadyUsed
		}
		logger.Error("Failed to add interview request", zap.Error(err))
		return nil, err
	}
	logger.Infow("interview request created",
		"request_id", request.ID,
		"requester_id", request.RequesterID,
		"is_paid", request.IsPaid)

	s.notifyProviders(ctx, &request)
	return &request, nil
}

func (s *Interviews) notifyProviders(ctx context.Context, request *models.InterviewRequest) {
	providers, err := s.Storage.ListProvidersBySkills(ctx, request.Skills)
	if err != nil {
		logger.Errorw("failed to list providers for notification", "request_id", request.ID, "error", err)
		return
	}
	for _, provider := range providers {
		s.Notifier.Notify(ctx, models.Notification{
			UserID:  provider.UserID,
			Type:    models.NotifyNewRequest,
			Title:   "New interview request",
			Message: "Requested skills: " + strings.Join(request.Skills, ", "),
			Data:    map[string]string{"request_id": request.ID},
		})
	}
}

func (s *Interviews) approvedProvider(ctx context.Context, providerID string) (*models.UserData, error) {
	provider, err := s.Storage.GetUserByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}
	if provider.Role != models.RoleProvider {
		return nil, ErrNotProvider
	}
	if !provider.Approved {
		return nil, ErrNotApproved
	}
	return provider, nil
}

func (s *Interviews) ListAvailable(ctx context.Context, providerID string) ([]models.InterviewRequest, error) {
	provider, err := s.approvedProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if len(provider.Expertise) == 0 {
		return nil, nil
	}
	requests, err := s.Storage.ListAvailableRequests(ctx, provider.Expertise, s.Now())
	if err != nil {
		logger.Error("Failed to list available requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// Claim - захват заявки исполнителем. Проверка расписания и условное обновление выполняются хранилищем атомарно
func (s *Interviews) Claim(ctx context.Context, claim models.ClaimData) (*models.InterviewRequest, error) {
	provider, err := s.approvedProvider(ctx, claim.ProviderID)
	if err != nil {
		return nil, err
	}

	request, err := s.Storage.GetRequest(ctx, claim.RequestID)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		logger.Error("Failed to get interview request", zap.Error(err))
		return nil, err
	}
	now := s.Now()
	switch {
	case request.Status == models.RequestStatusExpired:
		return nil, ErrRequestExpired
	case request.Status != models.RequestStatusRequested || request.ProviderID != nil:
		return nil, ErrAlreadyClaimed
	case !request.ExpiresAt.After(now):
		return nil, ErrRequestExpired
	}
	if !intersects(provider.Expertise, request.Skills) {
		return nil, ErrSkillMismatch
	}
	if !claim.ScheduledAt.After(now) {
		return nil, ErrInvalidSchedule
	}
	if claim.DurationMinutes == 0 {
		claim.DurationMinutes = request.DurationMinutes
	} else if !s.validDuration(claim.DurationMinutes) {
		return nil, ErrInvalidDuration
	}
	claim.Now = now

	claimed, err := s.Storage.ClaimRequest(ctx, claim)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyClaimed):
			logger.Infow("interview request claim lost the race", "request_id", claim.RequestID, "provider_id", claim.ProviderID)
			return nil, ErrAlreadyClaimed
		case errors.Is(err, storage.ErrScheduleConflict):
			return nil, ErrScheduleConflict
		case errors.Is(err, storage.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to claim interview request", zap.Error(err))
		return nil, err
	}
	logger.Infow("interview request claimed",
		"request_id", claimed.ID,
		"provider_id", claim.ProviderID,
		"scheduled_at", claim.ScheduledAt)

	if !claimed.IsPaid {
		if err := s.Storage.IncrementDiscountedUsage(ctx, claimed.RequesterID); err != nil {
			logger.Errorw("failed to increment discounted usage", "user_id", claimed.RequesterID, "error", err)
		}
	}

	link := s.ensureMeetingLink(ctx, claimed)
	claimed.MeetingLink = &link

	s.Notifier.Notify(ctx, models.Notification{
		UserID:  claimed.RequesterID,
		Type:    models.NotifyRequestClaimed,
		Title:   "Interview scheduled",
		Message: "Your interview is scheduled for " + claim.ScheduledAt.UTC().Format(time.RFC3339),
		Data: map[string]string{
			"request_id":   claimed.ID,
			"meeting_link": link,
		},
	})
	return claimed, nil
}

// ensureMeetingLink - ссылка на встречу. Ошибка сервиса комнат заменяется ссылкой на панель
func (s *Interviews) ensureMeetingLink(ctx context.Context, request *models.InterviewRequest) string {
	if request.MeetingLink != nil && *request.MeetingLink != "" {
		return *request.MeetingLink
	}

	link := ""
	if s.Rooms != nil {
		creatorID := request.RequesterID
		if request.ProviderID != nil {
			creatorID = *request.ProviderID
		}
		url, err := s.Rooms.CreateRoom(ctx, creatorID, "Interview "+request.ID)
		if err == nil {
			link = url
		} else if !errors.Is(err, meetings.ErrDisabled) {
			logger.Warnw("failed to create meeting room, using panel link", "request_id", request.ID, "error", err)
		}
	}
	if link == "" {
		link = meetings.FallbackLink(s.Config.Interviews.PanelURL, request.ID)
	}

	stored, err := s.Storage.SetMeetingLink(ctx, request.ID, link)
	if err != nil {
		logger.Errorw("failed to store meeting link", "request_id", request.ID, "error", err)
		return link
	}
	return stored
}

// transition - условный переход; при отказе причина уточняется по текущему состоянию
func (s *Interviews) transition(ctx context.Context, t models.RequestTransition) (*models.InterviewRequest, error) {
	updated, err := s.Storage.TransitionRequest(ctx, t)
	if err == nil {
		logger.Infow("interview request status changed", "request_id", updated.ID, "from", t.From, "to", updated.Status)
		return updated, nil
	}
	if !errors.Is(err, storage.ErrInvalidTransition) {
		logger.Error("Failed to change interview request status", zap.Error(err))
		return nil, err
	}

	current, err := s.Storage.GetRequest(ctx, t.RequestID)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		logger.Error("Failed to get interview request", zap.Error(err))
		return nil, err
	}
	if t.ProviderID != "" && (current.ProviderID == nil || *current.ProviderID != t.ProviderID) {
		return nil, ErrRequestForbidden
	}
	if t.ParticipantID != "" && !current.IsParticipant(t.ParticipantID) {
		return nil, ErrRequestForbidden
	}
	if t.ScheduledBefore != nil && slices.Contains(t.From, current.Status) {
		return nil, ErrNotStartedYet
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidTransition, current.Status)
}

// Start - исполнитель начинает интервью
func (s *Interviews) Start(ctx context.Context, requestID string, providerID string) (*models.InterviewRequest, error) {
	request, err := s.transition(ctx, models.RequestTransition{
		RequestID:  requestID,
		From:       []string{models.RequestStatusScheduled},
		To:         models.RequestStatusInProgress,
		ProviderID: providerID,
	})
	if err != nil {
		return nil, err
	}
	link := s.ensureMeetingLink(ctx, request)
	request.MeetingLink = &link
	return request, nil
}

// Complete - исполнитель завершает интервью
func (s *Interviews) Complete(ctx context.Context, requestID string, providerID string) (*models.InterviewRequest, error) {
	return s.transition(ctx, models.RequestTransition{
		RequestID:  requestID,
		From:       []string{models.RequestStatusInProgress},
		To:         models.RequestStatusCompleted,
		ProviderID: providerID,
	})
}

// Cancel - отмена назначенного интервью любой из сторон
func (s *Interviews) Cancel(ctx context.Context, requestID string, actorID string, reason string) (*models.InterviewRequest, error) {
	t := models.RequestTransition{
		RequestID:     requestID,
		From:          []string{models.RequestStatusScheduled},
		To:            models.RequestStatusCancelled,
		ParticipantID: actorID,
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		t.Reason = &reason
	}
	request, err := s.transition(ctx, t)
	if err != nil {
		return nil, err
	}

	other := request.RequesterID
	if other == actorID && request.ProviderID != nil {
		other = *request.ProviderID
	}
	message := "The interview was cancelled"
	if reason != "" {
		message += ": " + reason
	}
	s.Notifier.Notify(ctx, models.Notification{
		UserID:  other,
		Type:    models.NotifyRequestCancelled,
		Title:   "Interview cancelled",
		Message: message,
		Data:    map[string]string{"request_id": request.ID},
	})
	return request, nil
}

// MarkNoShow - заказчик не пришёл на интервью, отметить можно только после назначенного времени
func (s *Interviews) MarkNoShow(ctx context.Context, requestID string, providerID string) (*models.InterviewRequest, error) {
	now := s.Now()
	return s.transition(ctx, models.RequestTransition{
		RequestID:       requestID,
		From:            []string{models.RequestStatusScheduled},
		To:              models.RequestStatusNoShow,
		ProviderID:      providerID,
		ScheduledBefore: &now,
	})
}

// SubmitFeedback - отзыв исполнителя; интервью в процессе при этом завершается
func (s *Interviews) SubmitFeedback(ctx context.Context, feedback models.Feedback) (*models.InterviewRequest, error) {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return nil, ErrInvalidRating
	}
	request, err := s.Storage.GetRequest(ctx, feedback.RequestID)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		logger.Error("Failed to get interview request", zap.Error(err))
		return nil, err
	}
	if request.ProviderID == nil || *request.ProviderID != feedback.ProviderID {
		return nil, ErrRequestForbidden
	}
	if request.Status != models.RequestStatusInProgress && request.Status != models.RequestStatusCompleted {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTransition, request.Status)
	}

	feedback.Comments = strings.TrimSpace(feedback.Comments)
	feedback.CreatedAt = s.Now()
	if err := s.Storage.AddFeedback(ctx, feedback); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrFeedbackExists
		}
		logger.Error("Failed to add feedback", zap.Error(err))
		return nil, err
	}
	logger.Infow("feedback submitted", "request_id", feedback.RequestID, "rating", feedback.Rating)

	if request.Status == models.RequestStatusCompleted {
		return request, nil
	}
	completed, err := s.Complete(ctx, feedback.RequestID, feedback.ProviderID)
	if errors.Is(err, ErrInvalidTransition) {
		// интервью уже завершено параллельным запросом
		return s.Storage.GetRequest(ctx, feedback.RequestID)
	}
	return completed, err
}

// GetRequest - заявка доступна только участникам и администратору
func (s *Interviews) GetRequest(ctx context.Context, requestID string, actorID string, role string) (*models.InterviewRequest, error) {
	request, err := s.Storage.GetRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		logger.Error("Failed to get interview request", zap.Error(err))
		return nil, err
	}
	if role != models.RoleAdmin && !request.IsParticipant(actorID) {
		return nil, ErrRequestForbidden
	}
	return request, nil
}

func (s *Interviews) ListMine(ctx context.Context, userID string) ([]models.InterviewRequest, error) {
	requests, err := s.Storage.ListUserRequests(ctx, userID)
	if err != nil {
		logger.Error("Failed to list user requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// ExpireOldRequests - перевод просроченных заявок в EXPIRED. Повторный вызов ничего не меняет
func (s *Interviews) ExpireOldRequests(ctx context.Context) (int64, error) {
	expired, err := s.Storage.ExpireRequests(ctx, s.Now())
	if err != nil {
		logger.Error("Failed to expire requests", zap.Error(err))
		return 0, err
	}
	if expired > 0 {
		logger.Infow("interview requests expired", "count", expired)
	}
	return expired, nil
}
