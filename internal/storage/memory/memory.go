// Package memory - хранилище в памяти процесса. Используется в режиме песочницы
// без DATABASE_DSN и в тестах; условные обновления выполняются под одним мьютексом.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/denmor86/interview-market/internal/models"
	"github.com/denmor86/interview-market/internal/storage"
)

type Storage struct {
	mu sync.Mutex

	users       map[string]*models.UserData
	logins      map[string]string
	requests    map[string]*models.InterviewRequest
	feedback    map[string]models.Feedback
	payments    map[string]*models.Payment
	orders      map[string]string
	coupons     map[string]*models.Coupon
	codes       map[string]string
	usages      map[string]int
	withdrawals map[string]*models.Withdrawal
}

func NewStorage() *Storage {
	return &Storage{
		users:       make(map[string]*models.UserData),
		logins:      make(map[string]string),
		requests:    make(map[string]*models.InterviewRequest),
		feedback:    make(map[string]models.Feedback),
		payments:    make(map[string]*models.Payment),
		orders:      make(map[string]string),
		coupons:     make(map[string]*models.Coupon),
		codes:       make(map[string]string),
		usages:      make(map[string]int),
		withdrawals: make(map[string]*models.Withdrawal),
	}
}

var _ storage.IStorage = (*Storage)(nil)

func (s *Storage) Close() error {
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}

func copyUser(u *models.UserData) *models.UserData {
	c := *u
	c.Expertise = slices.Clone(u.Expertise)
	return &c
}

func copyRequest(r *models.InterviewRequest) *models.InterviewRequest {
	c := *r
	c.Skills = slices.Clone(r.Skills)
	c.ProviderID = clonePtr(r.ProviderID)
	c.ScheduledAt = clonePtr(r.ScheduledAt)
	c.PaymentID = clonePtr(r.PaymentID)
	c.CouponID = clonePtr(r.CouponID)
	c.MeetingLink = clonePtr(r.MeetingLink)
	c.CancelReason = clonePtr(r.CancelReason)
	c.CancelledBy = clonePtr(r.CancelledBy)
	return &c
}

func copyPayment(p *models.Payment) *models.Payment {
	c := *p
	c.RequestID = clonePtr(p.RequestID)
	c.CouponID = clonePtr(p.CouponID)
	c.GatewayPaymentID = clonePtr(p.GatewayPaymentID)
	c.IdempotencyKey = clonePtr(p.IdempotencyKey)
	c.GatewayRefundID = clonePtr(p.GatewayRefundID)
	c.FailureReason = clonePtr(p.FailureReason)
	return &c
}

func copyCoupon(c *models.Coupon) *models.Coupon {
	r := *c
	r.GlobalLimit = clonePtr(c.GlobalLimit)
	r.ExpiresAt = clonePtr(c.ExpiresAt)
	return &r
}

func copyWithdrawal(w *models.Withdrawal) *models.Withdrawal {
	c := *w
	c.GatewayPayoutID = clonePtr(w.GatewayPayoutID)
	c.FailureReason = clonePtr(w.FailureReason)
	return &c
}

// Пользователи

func (s *Storage) AddUser(ctx context.Context, user models.UserData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.logins[user.Login]; ok {
		return storage.ErrAlreadyExists
	}
	if _, ok := s.users[user.UserID]; ok {
		return storage.ErrAlreadyExists
	}
	s.users[user.UserID] = copyUser(&user)
	s.logins[user.Login] = user.UserID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.logins[login]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return copyUser(s.users[id]), nil
}

func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (s *Storage) provider(userID string) (*models.UserData, error) {
	u, ok := s.users[userID]
	if !ok || u.Role != models.RoleProvider {
		return nil, storage.ErrUserNotFound
	}
	return u, nil
}

func (s *Storage) SetExpertise(ctx context.Context, userID string, skills []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.provider(userID)
	if err != nil {
		return err
	}
	u.Expertise = slices.Clone(skills)
	return nil
}

func (s *Storage) ApproveProvider(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.provider(userID)
	if err != nil {
		return err
	}
	u.Approved = true
	return nil
}

func (s *Storage) ListProvidersBySkills(ctx context.Context, skills []string) ([]models.UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []models.UserData
	for _, u := range s.users {
		if u.IsApprovedProvider() && intersects(u.Expertise, skills) {
			users = append(users, *copyUser(u))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Login < users[j].Login })
	return users, nil
}

func (s *Storage) IncrementDiscountedUsage(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return storage.ErrUserNotFound
	}
	u.DiscountedUsed++
	return nil
}

// Заявки на интервью

func (s *Storage) AddRequest(ctx context.Context, request models.InterviewRequest, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[request.ID]; ok {
		return storage.ErrAlreadyExists
	}
	if paymentID != "" {
		p, ok := s.payments[paymentID]
		if !ok || p.PayerID != request.RequesterID || p.Status != models.PaymentStatusCompleted || p.RequestID != nil {
			return storage.ErrPaymentUnavailable
		}
		p.RequestID = ptr(request.ID)
		p.UpdatedAt = time.Now()
	}
	s.requests[request.ID] = copyRequest(&request)
	return nil
}

func (s *Storage) GetRequest(ctx context.Context, requestID string) (*models.InterviewRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, storage.ErrRequestNotFound
	}
	return copyRequest(r), nil
}

func (s *Storage) sortedRequests(filter func(r *models.InterviewRequest) bool) []models.InterviewRequest {
	var requests []models.InterviewRequest
	for _, r := range s.requests {
		if filter(r) {
			requests = append(requests, *copyRequest(r))
		}
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].CreatedAt.Before(requests[j].CreatedAt) })
	return requests
}

func (s *Storage) ListAvailableRequests(ctx context.Context, skills []string, now time.Time) ([]models.InterviewRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedRequests(func(r *models.InterviewRequest) bool {
		return r.Status == models.RequestStatusRequested &&
			r.ProviderID == nil &&
			r.ExpiresAt.After(now) &&
			intersects(r.Skills, skills)
	}), nil
}

func (s *Storage) ListUserRequests(ctx context.Context, userID string) ([]models.InterviewRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	requests := s.sortedRequests(func(r *models.InterviewRequest) bool {
		return r.IsParticipant(userID)
	})
	slices.Reverse(requests)
	return requests, nil
}

func (s *Storage) ClaimRequest(ctx context.Context, claim models.ClaimData) (*models.InterviewRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[claim.ProviderID]; !ok {
		return nil, storage.ErrUserNotFound
	}

	start := claim.ScheduledAt
	end := start.Add(time.Duration(claim.DurationMinutes) * time.Minute)
	for _, r := range s.requests {
		if r.ProviderID == nil || *r.ProviderID != claim.ProviderID {
			continue
		}
		if r.Status != models.RequestStatusScheduled && r.Status != models.RequestStatusInProgress {
			continue
		}
		if r.ScheduledAt.Before(end) && r.EndsAt().After(start) {
			return nil, storage.ErrScheduleConflict
		}
	}

	r, ok := s.requests[claim.RequestID]
	if !ok || r.Status != models.RequestStatusRequested || r.ProviderID != nil || !r.ExpiresAt.After(claim.Now) {
		return nil, storage.ErrAlreadyClaimed
	}
	r.ProviderID = ptr(claim.ProviderID)
	r.ScheduledAt = ptr(claim.ScheduledAt)
	r.DurationMinutes = claim.DurationMinutes
	r.Status = models.RequestStatusScheduled
	r.UpdatedAt = time.Now()
	return copyRequest(r), nil
}

func (s *Storage) TransitionRequest(ctx context.Context, t models.RequestTransition) (*models.InterviewRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[t.RequestID]
	if !ok || !slices.Contains(t.From, r.Status) {
		return nil, storage.ErrInvalidTransition
	}
	if t.ProviderID != "" && (r.ProviderID == nil || *r.ProviderID != t.ProviderID) {
		return nil, storage.ErrInvalidTransition
	}
	if t.ParticipantID != "" && !r.IsParticipant(t.ParticipantID) {
		return nil, storage.ErrInvalidTransition
	}
	if t.ScheduledBefore != nil && (r.ScheduledAt == nil || r.ScheduledAt.After(*t.ScheduledBefore)) {
		return nil, storage.ErrInvalidTransition
	}

	r.Status = t.To
	if t.Reason != nil {
		r.CancelReason = ptr(*t.Reason)
	}
	if t.ParticipantID != "" && t.To == models.RequestStatusCancelled {
		r.CancelledBy = ptr(t.ParticipantID)
	}
	r.UpdatedAt = time.Now()
	return copyRequest(r), nil
}

func (s *Storage) SetMeetingLink(ctx context.Context, requestID string, link string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[requestID]
	if !ok {
		return "", storage.ErrRequestNotFound
	}
	if r.MeetingLink == nil {
		r.MeetingLink = ptr(link)
		r.UpdatedAt = time.Now()
	}
	return *r.MeetingLink, nil
}

func (s *Storage) ExpireRequests(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired int64
	for _, r := range s.requests {
		if r.Status == models.RequestStatusRequested && r.ProviderID == nil && !r.ExpiresAt.After(now) {
			r.Status = models.RequestStatusExpired
			r.UpdatedAt = time.Now()
			expired++
		}
	}
	return expired, nil
}

func (s *Storage) AddFeedback(ctx context.Context, feedback models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.feedback[feedback.RequestID]; ok {
		return storage.ErrAlreadyExists
	}
	s.feedback[feedback.RequestID] = feedback
	return nil
}

// Платежи

func (s *Storage) AddPayment(ctx context.Context, payment models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[payment.ID]; ok {
		return storage.ErrAlreadyExists
	}
	if _, ok := s.orders[payment.GatewayOrderID]; ok {
		return storage.ErrAlreadyExists
	}
	if payment.RequestID != nil && s.requestHolder(*payment.RequestID, "") != nil {
		return storage.ErrAlreadyExists
	}
	s.payments[payment.ID] = copyPayment(&payment)
	s.orders[payment.GatewayOrderID] = payment.ID
	return nil
}

// requestHolder - платёж, удерживающий заявку. FAILED и ABANDONED заявку не удерживают
func (s *Storage) requestHolder(requestID string, exceptID string) *models.Payment {
	for _, p := range s.payments {
		if p.ID == exceptID || p.RequestID == nil || *p.RequestID != requestID {
			continue
		}
		if p.Status != models.PaymentStatusFailed && p.Status != models.PaymentStatusAbandoned {
			return p
		}
	}
	return nil
}

func (s *Storage) GetPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, storage.ErrPaymentNotFound
	}
	return copyPayment(p), nil
}

func (s *Storage) byOrder(orderID string) (*models.Payment, bool) {
	id, ok := s.orders[orderID]
	if !ok {
		return nil, false
	}
	return s.payments[id], true
}

func (s *Storage) GetPaymentByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byOrder(orderID)
	if !ok {
		return nil, storage.ErrPaymentNotFound
	}
	return copyPayment(p), nil
}

func (s *Storage) findProcessed(idempotencyKey string, gatewayPaymentID string) *models.Payment {
	for _, p := range s.payments {
		if idempotencyKey != "" && p.IdempotencyKey != nil && *p.IdempotencyKey == idempotencyKey {
			return p
		}
		if gatewayPaymentID != "" && p.GatewayPaymentID != nil && *p.GatewayPaymentID == gatewayPaymentID {
			return p
		}
	}
	return nil
}

func (s *Storage) FindProcessedPayment(ctx context.Context, idempotencyKey string, gatewayPaymentID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProcessed(idempotencyKey, gatewayPaymentID)
	if p == nil {
		return nil, storage.ErrPaymentNotFound
	}
	return copyPayment(p), nil
}

func (s *Storage) ListUserPayments(ctx context.Context, payerID string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var payments []models.Payment
	for _, p := range s.payments {
		if p.PayerID == payerID {
			payments = append(payments, *copyPayment(p))
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].CreatedAt.After(payments[j].CreatedAt) })
	return payments, nil
}

func (s *Storage) CompletePayment(ctx context.Context, orderID string, gatewayPaymentID string, idempotencyKey string) (*models.Payment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byOrder(orderID)
	if !ok {
		return nil, false, storage.ErrPaymentNotFound
	}
	switch p.Status {
	case models.PaymentStatusPending, models.PaymentStatusProcessing, models.PaymentStatusFailed, models.PaymentStatusAbandoned:
	default:
		return copyPayment(p), false, nil
	}
	if other := s.findProcessed(idempotencyKey, gatewayPaymentID); other != nil && other != p {
		return nil, false, storage.ErrAlreadyExists
	}

	// заявку уже удерживает другой платёж: поздняя оплата остаётся самостоятельной
	if p.RequestID != nil && s.requestHolder(*p.RequestID, p.ID) != nil {
		p.RequestID = nil
	}
	p.Status = models.PaymentStatusCompleted
	p.GatewayPaymentID = ptr(gatewayPaymentID)
	p.IdempotencyKey = ptr(idempotencyKey)
	p.FailureReason = nil
	p.UpdatedAt = time.Now()
	if p.RequestID != nil {
		if r, ok := s.requests[*p.RequestID]; ok && !r.IsPaid {
			r.IsPaid = true
			r.PaymentID = ptr(p.ID)
			r.UpdatedAt = time.Now()
		}
	}
	return copyPayment(p), true, nil
}

func (s *Storage) FailPayment(ctx context.Context, orderID string, reason string) (*models.Payment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byOrder(orderID)
	if !ok {
		return nil, false, storage.ErrPaymentNotFound
	}
	if p.Status != models.PaymentStatusPending && p.Status != models.PaymentStatusProcessing {
		return copyPayment(p), false, nil
	}
	p.Status = models.PaymentStatusFailed
	p.FailureReason = ptr(reason)
	p.UpdatedAt = time.Now()
	return copyPayment(p), true, nil
}

func (s *Storage) AbandonPayment(ctx context.Context, paymentID string) (*models.Payment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, false, storage.ErrPaymentNotFound
	}
	if p.Status != models.PaymentStatusPending && p.Status != models.PaymentStatusFailed {
		return copyPayment(p), false, nil
	}
	p.Status = models.PaymentStatusAbandoned
	p.UpdatedAt = time.Now()
	return copyPayment(p), true, nil
}

func (s *Storage) ListRequestPayments(ctx context.Context, requestID string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var payments []models.Payment
	for _, p := range s.payments {
		if p.RequestID != nil && *p.RequestID == requestID {
			payments = append(payments, *copyPayment(p))
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].CreatedAt.After(payments[j].CreatedAt) })
	return payments, nil
}

func (s *Storage) ListStalePayments(ctx context.Context, olderThan time.Time, count int) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var payments []models.Payment
	for _, p := range s.payments {
		if (p.Status == models.PaymentStatusPending || p.Status == models.PaymentStatusFailed) && p.UpdatedAt.Before(olderThan) {
			payments = append(payments, *copyPayment(p))
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].UpdatedAt.Before(payments[j].UpdatedAt) })
	if len(payments) > count {
		payments = payments[:count]
	}
	return payments, nil
}

func (s *Storage) RefundPayment(ctx context.Context, gatewayPaymentID string, refundID string) (*models.Payment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProcessed("", gatewayPaymentID)
	if p == nil {
		return nil, false, storage.ErrPaymentNotFound
	}
	if p.Status != models.PaymentStatusCompleted {
		return copyPayment(p), false, nil
	}
	p.Status = models.PaymentStatusRefunded
	p.GatewayRefundID = ptr(refundID)
	p.UpdatedAt = time.Now()
	return copyPayment(p), true, nil
}

// Купоны

func usageKey(couponID, userID string) string {
	return couponID + "|" + userID
}

func (s *Storage) AddCoupon(ctx context.Context, coupon models.Coupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.codes[coupon.Code]; ok {
		return storage.ErrAlreadyExists
	}
	c := copyCoupon(&coupon)
	c.UsedCount = 0
	s.coupons[coupon.ID] = c
	s.codes[coupon.Code] = coupon.ID
	return nil
}

func (s *Storage) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.codes[code]
	if !ok {
		return nil, storage.ErrCouponNotFound
	}
	return copyCoupon(s.coupons[id]), nil
}

func (s *Storage) GetCoupon(ctx context.Context, couponID string) (*models.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coupons[couponID]
	if !ok {
		return nil, storage.ErrCouponNotFound
	}
	return copyCoupon(c), nil
}

func (s *Storage) GetCouponUsage(ctx context.Context, couponID string, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usages[usageKey(couponID, userID)], nil
}

func (s *Storage) IncrementCouponUsage(ctx context.Context, couponID string, userID string, perUserLimit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coupons[couponID]
	if !ok || !c.Active || (c.ExpiresAt != nil && !c.ExpiresAt.After(time.Now())) {
		return storage.ErrLimitExceeded
	}
	if c.GlobalLimit != nil && c.UsedCount >= *c.GlobalLimit {
		return storage.ErrLimitExceeded
	}
	key := usageKey(couponID, userID)
	if s.usages[key] >= perUserLimit {
		return storage.ErrLimitExceeded
	}
	c.UsedCount++
	s.usages[key]++
	return nil
}

func (s *Storage) ReleaseCouponUsage(ctx context.Context, couponID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := usageKey(couponID, userID)
	if s.usages[key] == 0 {
		return nil
	}
	s.usages[key]--
	if c, ok := s.coupons[couponID]; ok && c.UsedCount > 0 {
		c.UsedCount--
	}
	return nil
}

// Выводы средств

func (s *Storage) balance(providerID string) *models.Balance {
	var b models.Balance
	for _, p := range s.payments {
		if p.Status != models.PaymentStatusCompleted || p.RequestID == nil {
			continue
		}
		r, ok := s.requests[*p.RequestID]
		if !ok || r.Status != models.RequestStatusCompleted || r.ProviderID == nil || *r.ProviderID != providerID {
			continue
		}
		b.Earnings += p.Amount
	}
	for _, w := range s.withdrawals {
		if w.ProviderID != providerID {
			continue
		}
		switch w.Status {
		case models.WithdrawalStatusCompleted:
			b.Withdrawn += w.Amount
		case models.WithdrawalStatusPending, models.WithdrawalStatusProcessing:
			b.Reserved += w.Amount
		}
	}
	return &b
}

func (s *Storage) GetBalance(ctx context.Context, providerID string) (*models.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance(providerID), nil
}

func (s *Storage) ReserveWithdrawal(ctx context.Context, withdrawal models.Withdrawal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[withdrawal.ProviderID]; !ok {
		return storage.ErrUserNotFound
	}
	for _, w := range s.withdrawals {
		if w.ProviderID == withdrawal.ProviderID &&
			(w.Status == models.WithdrawalStatusPending || w.Status == models.WithdrawalStatusProcessing) {
			return storage.ErrPendingWithdrawal
		}
	}
	if withdrawal.Amount > s.balance(withdrawal.ProviderID).Signed() {
		return storage.ErrInsufficientBalance
	}
	s.withdrawals[withdrawal.ID] = copyWithdrawal(&withdrawal)
	return nil
}

func (s *Storage) GetWithdrawal(ctx context.Context, withdrawalID string) (*models.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.withdrawals[withdrawalID]
	if !ok {
		return nil, storage.ErrWithdrawalNotFound
	}
	return copyWithdrawal(w), nil
}

func (s *Storage) byPayout(payoutID string) *models.Withdrawal {
	for _, w := range s.withdrawals {
		if w.GatewayPayoutID != nil && *w.GatewayPayoutID == payoutID {
			return w
		}
	}
	return nil
}

func (s *Storage) GetWithdrawalByPayoutID(ctx context.Context, payoutID string) (*models.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.byPayout(payoutID)
	if w == nil {
		return nil, storage.ErrWithdrawalNotFound
	}
	return copyWithdrawal(w), nil
}

func (s *Storage) ListWithdrawals(ctx context.Context, providerID string) ([]models.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var withdrawals []models.Withdrawal
	for _, w := range s.withdrawals {
		if w.ProviderID == providerID {
			withdrawals = append(withdrawals, *copyWithdrawal(w))
		}
	}
	sort.Slice(withdrawals, func(i, j int) bool { return withdrawals[i].CreatedAt.After(withdrawals[j].CreatedAt) })
	return withdrawals, nil
}

func (s *Storage) AttachPayout(ctx context.Context, withdrawalID string, payoutID string) (*models.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.withdrawals[withdrawalID]
	if !ok || (w.GatewayPayoutID != nil && *w.GatewayPayoutID != payoutID) {
		return nil, storage.ErrInvalidTransition
	}
	if other := s.byPayout(payoutID); other != nil && other != w {
		return nil, storage.ErrAlreadyExists
	}
	w.GatewayPayoutID = ptr(payoutID)
	if w.Status == models.WithdrawalStatusPending {
		w.Status = models.WithdrawalStatusProcessing
	}
	w.UpdatedAt = time.Now()
	return copyWithdrawal(w), nil
}

func (s *Storage) TransitionWithdrawal(ctx context.Context, t models.WithdrawalTransition) (*models.Withdrawal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.withdrawals[t.WithdrawalID]
	if !ok {
		return nil, false, storage.ErrWithdrawalNotFound
	}
	if !slices.Contains(t.From, w.Status) {
		return copyWithdrawal(w), false, nil
	}
	w.Status = t.To
	if w.GatewayPayoutID == nil && t.PayoutID != nil {
		w.GatewayPayoutID = ptr(*t.PayoutID)
	}
	if t.FailureReason != nil {
		w.FailureReason = ptr(*t.FailureReason)
	}
	w.UpdatedAt = time.Now()
	return copyWithdrawal(w), true, nil
}

func (s *Storage) ClaimStaleWithdrawals(ctx context.Context, olderThan time.Time, count int) ([]models.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stale []*models.Withdrawal
	for _, w := range s.withdrawals {
		if !w.UpdatedAt.Before(olderThan) {
			continue
		}
		// PENDING без выплаты остаётся после сбоя между резервированием и запуском выплаты
		if w.Status == models.WithdrawalStatusPending || (w.Status == models.WithdrawalStatusProcessing && w.GatewayPayoutID != nil) {
			stale = append(stale, w)
		}
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i].UpdatedAt.Before(stale[j].UpdatedAt) })
	if len(stale) > count {
		stale = stale[:count]
	}
	claimed := make([]models.Withdrawal, 0, len(stale))
	now := time.Now()
	for _, w := range stale {
		w.UpdatedAt = now
		claimed = append(claimed, *copyWithdrawal(w))
	}
	return claimed, nil
}
