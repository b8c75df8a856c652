package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/ibrahimhozhun/food-ordering-app/internal/config"
	"github.com/ibrahimhozhun/food-ordering-app/internal/events"
)

// EventPublisher fans an encoded event out to interested clients. Satisfied
// by the Redis wrapper.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotificationService handles emitting notifications for order events.
// Fanout failures are logged, never propagated to the originating request.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  EventPublisher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, publisher EventPublisher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventOrderCreated, n.handleOrderCreated)
	n.dispatcher.Subscribe(events.EventOrderStatusChanged, n.handleOrderStatusChanged)
}

func (n *NotificationService) handleOrderCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderCreated", zap.String("order_id", event.OrderID.String()), zap.Any("payload", event.Payload))
	n.fanout(ctx, event)
	return nil
}

func (n *NotificationService) handleOrderStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderStatusChanged", zap.String("order_id", event.OrderID.String()), zap.Any("payload", event.Payload))
	n.fanout(ctx, event)
	return nil
}

func (n *NotificationService) fanout(ctx context.Context, event events.Event) {
	if n.publisher == nil || n.cfg.OrderEventsChannel == "" {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("encode event", zap.Error(err))
		return
	}
	if err := n.publisher.Publish(ctx, n.cfg.OrderEventsChannel, payload); err != nil {
		n.logger.Warn("publish event",
			zap.String("channel", n.cfg.OrderEventsChannel),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}
