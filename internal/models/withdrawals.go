package models

import "time"

// Статусы выводов средств
const (
	WithdrawalStatusPending    = "PENDING"
	WithdrawalStatusProcessing = "PROCESSING"
	WithdrawalStatusCompleted  = "COMPLETED"
	WithdrawalStatusFailed     = "FAILED"
	WithdrawalStatusReversed   = "REVERSED"
)

// Способы вывода
const (
	MethodBankTransfer = "bank_transfer"
	MethodUPI          = "upi"
)

// TransferDetails - реквизиты получателя. В хранилище попадает только маскированное значение
type TransferDetails struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	VPA           string `json:"vpa,omitempty"`
}

// WithdrawalRequest - запрос на вывод средств
type WithdrawalRequest struct {
	ProviderID string          `json:"-"`
	Amount     int64           `json:"amount"`
	Method     string          `json:"method"`
	Details    TransferDetails `json:"transfer_details"`
}

// Withdrawal - модель вывода средств
type Withdrawal struct {
	ID              string
	ProviderID      string
	Amount          int64
	Method          string
	Destination     string
	Status          string
	GatewayPayoutID *string
	FailureReason   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WithdrawalTransition - условный переход статуса вывода
type WithdrawalTransition struct {
	WithdrawalID  string
	From          []string
	To            string
	PayoutID      *string
	FailureReason *string
}

// Balance - производный баланс исполнителя (не хранится)
type Balance struct {
	Earnings  int64
	Withdrawn int64
	Reserved  int64
}

// Signed - баланс со знаком
func (b Balance) Signed() int64 {
	return b.Earnings - b.Withdrawn - b.Reserved
}

// Available - доступная к выводу сумма, не меньше нуля
func (b Balance) Available() int64 {
	if s := b.Signed(); s > 0 {
		return s
	}
	return 0
}

// BalanceResponse - модель баланса для выдачи
type BalanceResponse struct {
	Available        int64  `json:"available"`
	AvailableDisplay string `json:"available_display"`
	Earnings         int64  `json:"earnings"`
	Withdrawn        int64  `json:"withdrawn"`
	Reserved         int64  `json:"reserved"`
}

// WithdrawalResponse - структура ответа о выводе средств
type WithdrawalResponse struct {
	ID            string  `json:"id"`
	Amount        int64   `json:"amount"`
	Display       string  `json:"amount_display"`
	Method        string  `json:"method"`
	Destination   string  `json:"destination"`
	Status        string  `json:"status"`
	FailureReason *string `json:"failure_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// PayoutEvent - вебхук сервиса выплат
type PayoutEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payout struct {
			Entity PayoutEntity `json:"entity"`
		} `json:"payout"`
	} `json:"payload"`
}

// PayoutEntity - выплата в терминах шлюза
type PayoutEntity struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	ReferenceID   string `json:"reference_id"`
	FailureReason string `json:"failure_reason,omitempty"`
	StatusDetails *struct {
		Description string `json:"description"`
	} `json:"status_details,omitempty"`
}

// Reason - причина отказа из события выплаты
func (p PayoutEntity) Reason() string {
	if p.FailureReason != "" {
		return p.FailureReason
	}
	if p.StatusDetails != nil {
		return p.StatusDetails.Description
	}
	return ""
}
