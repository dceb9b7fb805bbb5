package models

import "time"

// Статусы платежей
const (
	PaymentStatusPending    = "PENDING"
	PaymentStatusProcessing = "PROCESSING"
	PaymentStatusCompleted  = "COMPLETED"
	PaymentStatusFailed     = "FAILED"
	PaymentStatusRefunded   = "REFUNDED"
	PaymentStatusAbandoned  = "ABANDONED"
)

// Назначения платежа
const (
	PurposeInterviewRequest = "interview_request"
)

// Payment - модель платежа
type Payment struct {
	ID               string
	PayerID          string
	RequestID        *string
	Amount           int64
	BaseAmount       int64
	Currency         string
	CouponID         *string
	GatewayOrderID   string
	GatewayPaymentID *string
	IdempotencyKey   *string
	GatewayRefundID  *string
	FailureReason    *string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CheckoutRequest - запрос на создание платёжного заказа. Сумма всегда вычисляется на сервере
type CheckoutRequest struct {
	Purpose    string `json:"purpose"`
	CouponCode string `json:"coupon_code,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	// Amount присылается клиентом и игнорируется
	Amount int64 `json:"amount,omitempty"`
}

// CheckoutResponse - ответ с данными заказа для клиентского виджета оплаты
type CheckoutResponse struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"`
	Display   string `json:"amount_display"`
	Currency  string `json:"currency"`
	KeyID     string `json:"key_id"`
}

// ClientConfirmation - подтверждение оплаты от клиента
type ClientConfirmation struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// PaymentResponse - модель платежа для выдачи
type PaymentResponse struct {
	ID        string  `json:"id"`
	RequestID *string `json:"request_id,omitempty"`
	Amount    int64   `json:"amount"`
	Display   string  `json:"amount_display"`
	Currency  string  `json:"currency"`
	OrderID   string  `json:"order_id"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// PaymentEvent - вебхук платёжного шлюза
type PaymentEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment *struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment,omitempty"`
		Refund *struct {
			Entity RefundEntity `json:"entity"`
		} `json:"refund,omitempty"`
	} `json:"payload"`
}

// PaymentEntity - платёж в терминах шлюза
type PaymentEntity struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	Amount           int64  `json:"amount"`
	Status           string `json:"status"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// RefundEntity - возврат в терминах шлюза
type RefundEntity struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
}
