package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"bmb-admin/internal/broker"
	"bmb-admin/internal/models"
	"bmb-admin/internal/store"
	"bmb-admin/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order mutations for the admin panel.
type OrderService struct {
	store          *store.Store
	eventPublisher *broker.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store *store.Store, eventPublisher *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// UpdateOrderStatus validates the request, applies the status change together
// with its audit-log row, and publishes a status-changed event. The returned
// message is safe to show to the admin user.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, newStatus, adminID, notes string) (bool, string) {
	ctx, span := util.StartSpan(ctx, "OrderService.UpdateOrderStatus")
	defer span.End()

	newStatus = strings.TrimSpace(newStatus)
	if newStatus == "" {
		util.OrderStatusUpdateFailures.WithLabelValues("validation").Inc()
		return false, "Status is required"
	}

	oldStatus, err := s.store.UpdateOrderStatus(ctx, orderID, newStatus, adminID, strings.TrimSpace(notes))
	if errors.Is(err, store.ErrNotFound) {
		util.OrderStatusUpdateFailures.WithLabelValues("not_found").Inc()
		return false, "Order not found"
	}
	if err != nil {
		s.logger.Error("Failed to update order status",
			zap.Int64("order_id", orderID),
			zap.String("new_status", newStatus),
			zap.Error(err))
		util.OrderStatusUpdateFailures.WithLabelValues("db_error").Inc()
		return false, err.Error()
	}

	util.OrderStatusUpdatesTotal.WithLabelValues(newStatus).Inc()
	s.logger.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("old_status", oldStatus),
		zap.String("new_status", newStatus),
		zap.String("admin_id", adminID))

	if s.eventPublisher != nil {
		event := &models.OrderStatusChangedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeOrderStatusChanged,
				Timestamp: time.Now(),
			},
			OrderID:   orderID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			AdminID:   adminID,
			Notes:     notes,
		}
		if err := s.eventPublisher.PublishOrderStatusChanged(ctx, event); err != nil {
			s.logger.Error("Failed to publish OrderStatusChanged event", zap.Error(err))
		}
	}

	return true, "Status updated successfully"
}
