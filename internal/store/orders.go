package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bmb-admin/internal/models"
	"bmb-admin/internal/stats"
	"bmb-admin/internal/util"
)

// Today's orders are capped; the dashboard only shows the most recent page.
const todaysOrdersLimit = 20

const orderColumns = `o.order_id, o.user_id, o.user_name, o.user_phone, o.user_email,
	o.total_amount, o.payment_mode, o.delivery_location, o.delivery_date, o.status, o.order_date`

// GetTodaysOrders returns orders placed today (display timezone), newest
// first, each annotated with its item count.
func (s *Store) GetTodaysOrders(ctx context.Context) ([]models.OrderSummary, error) {
	window := stats.TimePeriodDates(stats.PeriodToday, util.ISTNow())

	query := fmt.Sprintf(`
		SELECT %s, COUNT(oi.order_item_id) AS item_count
		FROM orders o
		LEFT JOIN order_items oi ON o.order_id = oi.order_id
		WHERE o.order_date BETWEEN $1 AND $2
		GROUP BY o.order_id
		ORDER BY o.order_date DESC
		LIMIT %d`, orderColumns, todaysOrdersLimit)

	orders := []models.OrderSummary{}
	err := s.db.SelectContext(ctx, &orders, query, window.Start, window.End)
	return orders, err
}

// GetAllOrders returns one page of orders matching the optional status and
// search filters, plus the total matching count. Pages are 1-based.
func (s *Store) GetAllOrders(ctx context.Context, page, perPage int, status, search string) ([]models.OrderSummary, int, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	var conditions []string
	var args []interface{}

	if status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			`(o.user_name ILIKE $%d OR o.user_phone ILIKE $%d OR o.user_email ILIKE $%d OR CAST(o.order_id AS TEXT) ILIKE $%d)`,
			n, n, n, n))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// The count query shares the filter predicate with the page query.
	countQuery := "SELECT COUNT(DISTINCT o.order_id) FROM orders o" + whereClause
	var total int
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, COUNT(oi.order_item_id) AS item_count, p.payment_status
		FROM orders o
		LEFT JOIN order_items oi ON o.order_id = oi.order_id
		LEFT JOIN payments p ON o.order_id = p.order_id
		%s
		GROUP BY o.order_id, p.payment_status
		ORDER BY o.order_date DESC
		LIMIT $%d OFFSET $%d`, orderColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, perPage, offset)

	orders := []models.OrderSummary{}
	if err := s.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, total, nil
}

// GetOrderDetails returns the order with its items, owning customer and
// default address, payment, and the full status-change audit log.
func (s *Store) GetOrderDetails(ctx context.Context, orderID int64) (*models.OrderDetails, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, fmt.Sprintf(
		"SELECT %s FROM orders o WHERE o.order_id = $1", orderColumns), orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	details := &models.OrderDetails{Order: order}

	itemsQuery := `
		SELECT oi.order_item_id, oi.order_id, oi.item_type, oi.item_id, oi.item_name,
			oi.quantity, oi.price, oi.total,
			CASE
				WHEN oi.item_type = 'service' THEN s.name
				WHEN oi.item_type = 'menu' THEN m.name
				ELSE 'Unknown Item'
			END AS full_name,
			CASE
				WHEN oi.item_type = 'service' THEN s.photo
				WHEN oi.item_type = 'menu' THEN m.photo
			END AS photo
		FROM order_items oi
		LEFT JOIN services s ON oi.item_type = 'service' AND oi.item_id = s.id
		LEFT JOIN menu m ON oi.item_type = 'menu' AND oi.item_id = m.id
		WHERE oi.order_id = $1
		ORDER BY oi.order_item_id`
	details.Items = []models.OrderItem{}
	if err := s.db.SelectContext(ctx, &details.Items, itemsQuery, orderID); err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	if order.UserID != nil {
		var customer models.Customer
		err := s.db.GetContext(ctx, &customer,
			"SELECT id, full_name, phone, email, created_at, last_login FROM users WHERE id = $1",
			*order.UserID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to load customer: %w", err)
		}
		if err == nil {
			details.Customer = &customer

			var addr models.Address
			err = s.db.GetContext(ctx, &addr, `
				SELECT address_id, user_id, address_line1, address_line2, city, state,
					pincode, is_default, latitude, longitude
				FROM addresses
				WHERE user_id = $1 AND is_default = TRUE
				LIMIT 1`, *order.UserID)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("failed to load default address: %w", err)
			}
			if err == nil {
				addr.MapLink = util.MapLink(addr.Latitude, addr.Longitude)
				details.Address = &addr
			}
		}
	}

	var payment models.Payment
	err = s.db.GetContext(ctx, &payment, `
		SELECT payment_id, order_id, payment_status, transaction_id, razorpay_order_id,
			razorpay_payment_id, razorpay_signature, amount, payment_date
		FROM payments
		WHERE order_id = $1
		LIMIT 1`, orderID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	if err == nil {
		details.Payment = &payment
	}

	details.Logs = []models.OrderLog{}
	err = s.db.SelectContext(ctx, &details.Logs, `
		SELECT log_id, order_id, admin_id, action, details, old_status, new_status, created_at
		FROM order_logs
		WHERE order_id = $1
		ORDER BY created_at DESC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order logs: %w", err)
	}

	return details, nil
}

// GetPaymentByOrderID returns the payment for an order joined with order
// context for the payment modal.
func (s *Store) GetPaymentByOrderID(ctx context.Context, orderID int64) (*models.PaymentDetail, error) {
	var payment models.PaymentDetail
	err := s.db.GetContext(ctx, &payment, `
		SELECT p.payment_id, p.order_id, p.payment_status, p.transaction_id,
			p.razorpay_order_id, p.razorpay_payment_id, p.razorpay_signature,
			p.amount, p.payment_date,
			o.total_amount, o.user_name, o.order_date
		FROM payments p
		JOIN orders o ON p.order_id = o.order_id
		WHERE p.order_id = $1
		LIMIT 1`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment for order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetOrderUserID resolves the owning customer of an order.
func (s *Store) GetOrderUserID(ctx context.Context, orderID int64) (*int64, error) {
	var userID *int64
	err := s.db.GetContext(ctx, &userID, "SELECT user_id FROM orders WHERE order_id = $1", orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return userID, nil
}

// UpdateOrderStatus writes the new status and appends one audit-log row as a
// single transaction. Returns the status the order had before the update.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID int64, newStatus, adminID, notes string) (string, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var oldStatus string
	err = tx.GetContext(ctx, &oldStatus,
		"SELECT status FROM orders WHERE order_id = $1 FOR UPDATE", orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read current status: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE order_id = $2", newStatus, orderID)
	if err != nil {
		return "", fmt.Errorf("failed to update status: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_logs (order_id, admin_id, action, details, old_status, new_status)
		VALUES ($1, $2, 'status_update', $3, $4, $5)`,
		orderID, nullIfEmpty(adminID), nullIfEmpty(notes), oldStatus, newStatus)
	if err != nil {
		return "", fmt.Errorf("failed to write audit log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit status update: %w", err)
	}

	return oldStatus, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
