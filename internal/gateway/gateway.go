// Package gateway - клиент внешнего платёжного шлюза: заказы, возвраты и выплаты исполнителям.
package gateway

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

import (
	"context"
)

// Payments - операции приёма платежей
type Payments interface {
	CreateOrder(ctx context.Context, order OrderRequest) (*Order, error)
	RefundPayment(ctx context.Context, paymentID string, amount int64) (*Refund, error)
}

// Payouts - операции выплат
type Payouts interface {
	CreateContact(ctx context.Context, contact ContactRequest) (*Contact, error)
	CreateFundAccount(ctx context.Context, account FundAccountRequest) (*FundAccount, error)
	CreatePayout(ctx context.Context, payout PayoutRequest, idempotencyKey string) (*Payout, error)
	GetPayout(ctx context.Context, payoutID string) (*Payout, error)
	// FindPayoutByReference ищет выплату по идентификатору вывода, ErrPayoutNotFound если шлюз её не знает
	FindPayoutByReference(ctx context.Context, accountNumber string, referenceID string) (*Payout, error)
	// Available - false, пока открыт автомат защиты
	Available() bool
}

type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Refund struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

type ContactRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	ReferenceID string `json:"reference_id"`
}

type Contact struct {
	ID string `json:"id"`
}

// Типы счетов получателя
const (
	AccountTypeBank = "bank_account"
	AccountTypeVPA  = "vpa"
)

type BankAccount struct {
	Name          string `json:"name"`
	IFSC          string `json:"ifsc"`
	AccountNumber string `json:"account_number"`
}

type VPA struct {
	Address string `json:"address"`
}

type FundAccountRequest struct {
	ContactID   string       `json:"contact_id"`
	AccountType string       `json:"account_type"`
	BankAccount *BankAccount `json:"bank_account,omitempty"`
	VPA         *VPA         `json:"vpa,omitempty"`
}

type FundAccount struct {
	ID string `json:"id"`
}

type PayoutRequest struct {
	AccountNumber     string `json:"account_number"`
	FundAccountID     string `json:"fund_account_id"`
	Amount            int64  `json:"amount"`
	Currency          string `json:"currency"`
	Mode              string `json:"mode"`
	Purpose           string `json:"purpose"`
	QueueIfLowBalance bool   `json:"queue_if_low_balance"`
	ReferenceID       string `json:"reference_id"`
	Narration         string `json:"narration,omitempty"`
}

// Статусы выплаты на стороне шлюза
const (
	PayoutStatusQueued     = "queued"
	PayoutStatusPending    = "pending"
	PayoutStatusProcessing = "processing"
	PayoutStatusProcessed  = "processed"
	PayoutStatusFailed     = "failed"
	PayoutStatusRejected   = "rejected"
	PayoutStatusReversed   = "reversed"
	PayoutStatusCancelled  = "cancelled"
)

type Payout struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	Amount        int64  `json:"amount"`
	ReferenceID   string `json:"reference_id"`
	FailureReason string `json:"failure_reason,omitempty"`
	StatusDetails *struct {
		Description string `json:"description"`
	} `json:"status_details,omitempty"`
}

// PayoutCollection - страница списка выплат
type PayoutCollection struct {
	Count int      `json:"count"`
	Items []Payout `json:"items"`
}

// Reason - причина отказа по данным шлюза
func (p *Payout) Reason() string {
	if p.FailureReason != "" {
		return p.FailureReason
	}
	if p.StatusDetails != nil {
		return p.StatusDetails.Description
	}
	return ""
}
