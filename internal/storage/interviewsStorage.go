package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	requestColumns = `id, requester_id, provider_id, skills, duration_minutes, notes, scheduled_at, status,
						payment_id, is_paid, coupon_id, meeting_link, cancel_reason, cancelled_by,
						expires_at, created_at, updated_at`
	InsertRequest = `INSERT INTO INTERVIEW_REQUESTS (id, requester_id, skills, duration_minutes, notes, status,
						payment_id, is_paid, coupon_id, expires_at, created_at, updated_at) 
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11);`
	LinkPayment = `UPDATE PAYMENTS 
						SET request_id = $2, updated_at = NOW()
						WHERE id = $1 AND payer_id = $3 AND status = 'COMPLETED' AND request_id IS NULL;`
	GetRequest            = `SELECT ` + requestColumns + ` FROM INTERVIEW_REQUESTS WHERE id = $1;`
	ListAvailableRequests = `SELECT ` + requestColumns + ` FROM INTERVIEW_REQUESTS 
						WHERE status = 'REQUESTED' AND provider_id IS NULL AND expires_at > $2 AND skills && $1
						ORDER BY created_at;`
	ListUserRequests = `SELECT ` + requestColumns + ` FROM INTERVIEW_REQUESTS 
						WHERE requester_id = $1 OR provider_id = $1
						ORDER BY created_at DESC;`
	CheckScheduleConflict = `SELECT EXISTS(
						SELECT 1 FROM INTERVIEW_REQUESTS 
						WHERE provider_id = $1 
						  AND status IN ('SCHEDULED', 'IN_PROGRESS')
						  AND scheduled_at < $3
						  AND scheduled_at + make_interval(mins => duration_minutes) > $2);`
	ClaimRequest = `UPDATE INTERVIEW_REQUESTS 
						SET provider_id = $2,
						    scheduled_at = $3,
						    duration_minutes = $4,
						    status = 'SCHEDULED',
						    updated_at = NOW()
						WHERE id = $1 AND status = 'REQUESTED' AND provider_id IS NULL AND expires_at > $5
						RETURNING ` + requestColumns + `;`
	SetMeetingLink = `UPDATE INTERVIEW_REQUESTS 
						SET meeting_link = COALESCE(meeting_link, $2), updated_at = NOW()
						WHERE id = $1
						RETURNING meeting_link;`
	ExpireRequests = `UPDATE INTERVIEW_REQUESTS 
						SET status = 'EXPIRED', updated_at = NOW()
						WHERE status = 'REQUESTED' AND provider_id IS NULL AND expires_at <= $1;`
	InsertFeedback = `INSERT INTO INTERVIEW_FEEDBACK (request_id, provider_id, rating, comments, created_at) 
						VALUES ($1, $2, $3, $4, $5) 
						ON CONFLICT (request_id) DO NOTHING
						RETURNING request_id;`
)

type InterviewDatabase struct {
	DB *Database
}

// Создание хранилища
func NewInterviewsStorage(db *Database) InterviewsStorage {
	return &InterviewDatabase{DB: db}
}

func scanRequest(row pgx.Row) (*models.InterviewRequest, error) {
	var r models.InterviewRequest
	err := row.Scan(
		&r.ID,
		&r.RequesterID,
		&r.ProviderID,
		&r.Skills,
		&r.DurationMinutes,
		&r.Notes,
		&r.ScheduledAt,
		&r.Status,
		&r.PaymentID,
		&r.IsPaid,
		&r.CouponID,
		&r.MeetingLink,
		&r.CancelReason,
		&r.CancelledBy,
		&r.ExpiresAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanRequests(rows pgx.Rows) ([]models.InterviewRequest, error) {
	defer rows.Close()
	var requests []models.InterviewRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return requests, fmt.Errorf("failed scan interview request: %w", err)
		}
		requests = append(requests, *r)
	}
	return requests, rows.Err()
}

// AddRequest - сохранение заявки и привязка оплаченного платежа в одной транзакции
func (s *InterviewDatabase) AddRequest(ctx context.Context, request models.InterviewRequest, paymentID string) error {
	return s.DB.WithTx(ctx, "AddRequest", func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, InsertRequest,
			request.ID,
			request.RequesterID,
			request.Skills,
			request.DurationMinutes,
			request.Notes,
			request.Status,
			request.PaymentID,
			request.IsPaid,
			request.CouponID,
			request.ExpiresAt,
			request.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to add interview request: %w", err)
		}
		if paymentID == "" {
			return nil
		}
		tag, err := tx.Exec(ctx, LinkPayment, paymentID, request.ID, request.RequesterID)
		if err != nil {
			return fmt.Errorf("failed to link payment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrPaymentUnavailable
		}
		return nil
	})
}

func (s *InterviewDatabase) GetRequest(ctx context.Context, requestID string) (*models.InterviewRequest, error) {
	r, err := scanRequest(s.DB.Pool.QueryRow(ctx, GetRequest, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get interview request: %w", err)
	}
	return r, nil
}

func (s *InterviewDatabase) ListAvailableRequests(ctx context.Context, skills []string, now time.Time) ([]models.InterviewRequest, error) {
	rows, err := s.DB.Pool.Query(ctx, ListAvailableRequests, skills, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get available requests: %w", err)
	}
	return scanRequests(rows)
}

func (s *InterviewDatabase) ListUserRequests(ctx context.Context, userID string) ([]models.InterviewRequest, error) {
	rows, err := s.DB.Pool.Query(ctx, ListUserRequests, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user requests: %w", err)
	}
	return scanRequests(rows)
}

// ClaimRequest - захват заявки. Строка исполнителя блокируется, чтобы параллельные захваты
// одним исполнителем не пропустили пересечение расписания
func (s *InterviewDatabase) ClaimRequest(ctx context.Context, claim models.ClaimData) (*models.InterviewRequest, error) {
	var claimed *models.InterviewRequest
	err := s.DB.WithTx(ctx, "ClaimRequest", func(tx pgx.Tx) error {
		if err := lockUser(ctx, tx, claim.ProviderID); err != nil {
			return err
		}

		end := claim.ScheduledAt.Add(time.Duration(claim.DurationMinutes) * time.Minute)
		var conflict bool
		if err := tx.QueryRow(ctx, CheckScheduleConflict, claim.ProviderID, claim.ScheduledAt, end).Scan(&conflict); err != nil {
			return fmt.Errorf("failed to check schedule conflict: %w", err)
		}
		if conflict {
			return ErrScheduleConflict
		}

		r, err := scanRequest(tx.QueryRow(ctx, ClaimRequest,
			claim.RequestID, claim.ProviderID, claim.ScheduledAt, claim.DurationMinutes, claim.Now))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrAlreadyClaimed
			}
			return fmt.Errorf("failed to claim interview request: %w", err)
		}
		claimed = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// TransitionRequest - условный переход статуса; ErrInvalidTransition, если условие не выполнено
func (s *InterviewDatabase) TransitionRequest(ctx context.Context, t models.RequestTransition) (*models.InterviewRequest, error) {
	args := []any{t.RequestID, t.To, t.From}
	set := []string{"status = $2", "updated_at = NOW()"}
	where := []string{"id = $1", "status = ANY($3)"}

	if t.Reason != nil {
		args = append(args, *t.Reason)
		set = append(set, fmt.Sprintf("cancel_reason = $%d", len(args)))
	}
	if t.ProviderID != "" {
		args = append(args, t.ProviderID)
		where = append(where, fmt.Sprintf("provider_id = $%d", len(args)))
	}
	if t.ParticipantID != "" {
		args = append(args, t.ParticipantID)
		where = append(where, fmt.Sprintf("(requester_id = $%d OR provider_id = $%d)", len(args), len(args)))
		if t.To == models.RequestStatusCancelled {
			set = append(set, fmt.Sprintf("cancelled_by = $%d", len(args)))
		}
	}
	if t.ScheduledBefore != nil {
		args = append(args, *t.ScheduledBefore)
		where = append(where, fmt.Sprintf("scheduled_at <= $%d", len(args)))
	}

	query := `UPDATE INTERVIEW_REQUESTS SET ` + strings.Join(set, ", ") +
		` WHERE ` + strings.Join(where, " AND ") +
		` RETURNING ` + requestColumns + `;`

	r, err := scanRequest(s.DB.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update interview request status: %w", err)
	}
	return r, nil
}

// SetMeetingLink - сохраняет ссылку, если она ещё не задана, и возвращает действующую
func (s *InterviewDatabase) SetMeetingLink(ctx context.Context, requestID string, link string) (string, error) {
	var current string
	err := s.DB.Pool.QueryRow(ctx, SetMeetingLink, requestID, link).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrRequestNotFound
		}
		return "", fmt.Errorf("failed to set meeting link: %w", err)
	}
	return current, nil
}

func (s *InterviewDatabase) ExpireRequests(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, ExpireRequests, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire interview requests: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *InterviewDatabase) AddFeedback(ctx context.Context, feedback models.Feedback) error {
	var requestID string
	err := s.DB.Pool.QueryRow(ctx, InsertFeedback,
		feedback.RequestID, feedback.ProviderID, feedback.Rating, feedback.Comments, feedback.CreatedAt).Scan(&requestID)

	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to add feedback: %w", err)
}
