package models

// Типы уведомлений
const (
	NotifyNewRequest        = "interview.requested"
	NotifyRequestClaimed    = "interview.scheduled"
	NotifyRequestCancelled  = "interview.cancelled"
	NotifyPaymentCompleted  = "payment.completed"
	NotifyPaymentFailed     = "payment.failed"
	NotifyPaymentRefunded   = "payment.refunded"
	NotifyWithdrawalUpdated = "withdrawal.updated"
)

// Notification - уведомление пользователю
type Notification struct {
	UserID  string            `json:"user_id"`
	Type    string            `json:"type"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}
