// Package notify - доставка уведомлений пользователям. Ошибки доставки логируются и не возвращаются вызывающему
package notify

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/interview-market/internal/logger"
	"github.com/denmor86/interview-market/internal/models"
)

type Notifier interface {
	Notify(ctx context.Context, notification models.Notification)
}

// Publisher - публикация сообщения в брокер
type Publisher interface {
	Publish(ctx context.Context, exchange string, routingKey string, body any) error
}

// LogNotifier - уведомления только пишутся в лог
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n models.Notification) {
	logger.Infow("notification", "user_id", n.UserID, "type", n.Type, "title", n.Title)
}

// BrokerNotifier - публикация уведомлений в topic exchange с ключом notification.<type>.
// Публикация выполняется в фоне, Wait дожидается отправки перед закрытием брокера
type BrokerNotifier struct {
	publisher Publisher
	exchange  string
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewBrokerNotifier(publisher Publisher, exchange string) *BrokerNotifier {
	return &BrokerNotifier{
		publisher: publisher,
		exchange:  exchange,
		timeout:   5 * time.Second,
	}
}

func RoutingKey(notificationType string) string {
	return "notification." + notificationType
}

func (n *BrokerNotifier) Notify(ctx context.Context, notification models.Notification) {
	// уведомление не должно отменяться вместе с запросом, который его породил
	ctx = context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.publish(ctx, notification)
	}()
}

// Wait - ожидание фоновых публикаций
func (n *BrokerNotifier) Wait() {
	n.wg.Wait()
}

func (n *BrokerNotifier) publish(ctx context.Context, notification models.Notification) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.publisher.Publish(ctx, n.exchange, RoutingKey(notification.Type), notification); err != nil {
		logger.Errorw("failed to publish notification",
			"user_id", notification.UserID,
			"type", notification.Type,
			"error", err)
		return
	}
	logger.Debugw("notification published", "user_id", notification.UserID, "type", notification.Type)
}
