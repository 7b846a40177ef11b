package worker

import (
	"context"
	"fmt"
	"log"

	"bmb-admin/internal/broker"
	"bmb-admin/internal/models"
	"bmb-admin/internal/store"
	"bmb-admin/internal/util"
)

// NotificationWorker consumes order status events and writes rows into the
// admin notification inbox.
type NotificationWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	store        *store.Store
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(consumer *broker.Consumer, store *store.Store) *NotificationWorker {
	w := &NotificationWorker{
		consumer: consumer,
		store:    store,
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnOrderStatusChanged(w.handleStatusChanged)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *NotificationWorker) Start(ctx context.Context) error {
	log.Println("Starting notification worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *NotificationWorker) Stop() error {
	log.Println("Stopping notification worker...")
	return w.consumer.Close()
}

func (w *NotificationWorker) handleStatusChanged(ctx context.Context, event *models.OrderStatusChangedEvent) error {
	title := fmt.Sprintf("Order #%d %s", event.OrderID, event.NewStatus)
	message := fmt.Sprintf("Order #%d moved from %s to %s", event.OrderID, event.OldStatus, event.NewStatus)
	if event.AdminID != "" {
		message += fmt.Sprintf(" by %s", event.AdminID)
	}
	if event.Notes != "" {
		message += fmt.Sprintf(" (%s)", event.Notes)
	}

	if err := w.store.CreateNotification(ctx, title, message, "order_status"); err != nil {
		return err
	}

	util.NotificationsCreatedTotal.Inc()
	return nil
}
