package handlers

import (
	"context"
	"net/http"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/services"
	"github.com/go-chi/chi/v5"
)

func urlID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// CreateInterviewHandler - создание заявки на интервью
func CreateInterviewHandler(s services.InterviewsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		var body models.CreateRequestBody
		if !decodeJSON(w, r, &body) {
			return
		}
		request, err := s.CreateRequest(r.Context(), models.CreateRequestData{
			RequesterID:     userID,
			Skills:          body.Skills,
			DurationMinutes: body.DurationMinutes,
			Notes:           body.Notes,
			PaymentID:       body.PaymentID,
			CouponCode:      body.CouponCode,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toInterviewResponse(request))
	})
}

func listHandler(list func(ctx context.Context, userID string) ([]models.InterviewRequest, error)) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		requests, err := list(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if len(requests) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, toInterviewResponses(requests))
	})
}

// ListMyInterviewsHandler - заявки, где пользователь заказчик или исполнитель
func ListMyInterviewsHandler(s services.InterviewsService) http.HandlerFunc {
	return listHandler(s.ListMine)
}

// ListAvailableInterviewsHandler - открытые заявки, подходящие исполнителю
func ListAvailableInterviewsHandler(s services.InterviewsService) http.HandlerFunc {
	return listHandler(s.ListAvailable)
}

// GetInterviewHandler - заявка по идентификатору
func GetInterviewHandler(s services.InterviewsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, role, ok := currentUser(w, r)
		if !ok {
			return
		}
		request, err := s.GetRequest(r.Context(), urlID(r), userID, role)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toInterviewResponse(request))
	})
}

// ClaimInterviewHandler - захват заявки исполнителем
func ClaimInterviewHandler(s services.InterviewsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		var body models.ClaimBody
		if !decodeJSON(w, r, &body) {
			return
		}
		request, err := s.Claim(r.Context(), models.ClaimData{
			RequestID:       urlID(r),
			ProviderID:      userID,
			ScheduledAt:     body.ScheduledAt,
			DurationMinutes: body.DurationMinutes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toInterviewResponse(request))
	})
}

// actionHandler - переход статуса без тела запроса
func actionHandler(action func(ctx context.Context, requestID string, userID string) (*models.InterviewRequest, error)) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		request, err := action(r.Context(), urlID(r), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toInterviewResponse(request))
	})
}

// StartInterviewHandler - начало интервью
func StartInterviewHandler(s services.InterviewsService) http.HandlerFunc {
	return actionHandler(s.Start)
}

// CompleteInterviewHandler - завершение интервью
func CompleteInterviewHandler(s services.InterviewsService) http.HandlerFunc {
	return actionHandler(s.Complete)
}

// NoShowInterviewHandler - отметка о неявке заказчика
func NoShowInterviewHandler(s services.InterviewsService) http.HandlerFunc {
	return actionHandler(s.MarkNoShow)
}

// CancelInterviewHandler - отмена заявки участником
func CancelInterviewHandler(s services.InterviewsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		var body models.CancelBody
		// причина необязательна
		if r.ContentLength != 0 && !decodeJSON(w, r, &body) {
			return
		}
		request, err := s.Cancel(r.Context(), urlID(r), userID, body.Reason)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toInterviewResponse(request))
	})
}

// FeedbackHandler - отзыв исполнителя по итогам интервью
func FeedbackHandler(s services.InterviewsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := currentUser(w, r)
		if !ok {
			return
		}
		var body models.FeedbackBody
		if !decodeJSON(w, r, &body) {
			return
		}
		request, err := s.SubmitFeedback(r.Context(), models.Feedback{
			RequestID:  urlID(r),
			ProviderID: userID,
			Rating:     body.Rating,
			Comments:   body.Comments,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toInterviewResponse(request))
	})
}
