package gateway

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Sandbox - локальный шлюз без внешних вызовов для запуска без ключей доступа.
// Заказы и возвраты создаются сразу, выплаты в этом режиме не выполняются
type Sandbox struct{}

var _ Payments = Sandbox{}

func sandboxID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}

func (Sandbox) CreateOrder(ctx context.Context, order OrderRequest) (*Order, error) {
	return &Order{
		ID:       sandboxID("order"),
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   "created",
	}, nil
}

func (Sandbox) RefundPayment(ctx context.Context, paymentID string, amount int64) (*Refund, error) {
	return &Refund{
		ID:        sandboxID("rfnd"),
		PaymentID: paymentID,
		Amount:    amount,
		Status:    "processed",
	}, nil
}
