package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"bmb-admin/internal/models"
	"bmb-admin/internal/util"
)

const recentOrdersLimit = 10

// GetCustomers returns one page of customers annotated with order aggregates
// and default-address fields, newest accounts first, plus the total count.
func (s *Store) GetCustomers(ctx context.Context, page, perPage int, search string) ([]models.CustomerSummary, int, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	var conditions []string
	var args []interface{}

	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(u.full_name ILIKE $%d OR u.phone ILIKE $%d OR u.email ILIKE $%d)", n, n, n))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM users u"+whereClause, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.full_name, u.phone, u.email, u.created_at, u.last_login,
			COUNT(o.order_id) AS total_orders,
			SUM(o.total_amount) AS total_spent,
			MAX(o.order_date) AS last_order_date,
			a.address_line1, a.city, a.state
		FROM users u
		LEFT JOIN orders o ON u.id = o.user_id
		LEFT JOIN addresses a ON u.id = a.user_id AND a.is_default = TRUE
		%s
		GROUP BY u.id, a.address_line1, a.city, a.state
		ORDER BY u.created_at DESC
		LIMIT $%d OFFSET $%d`, whereClause, len(args)+1, len(args)+2)
	args = append(args, perPage, offset)

	customers := []models.CustomerSummary{}
	if err := s.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

// GetCustomerDetails returns the profile, all addresses (default first), the
// most recent orders, and aggregate spend stats for one customer.
func (s *Store) GetCustomerDetails(ctx context.Context, userID int64) (*models.CustomerDetails, error) {
	var customer models.Customer
	err := s.db.GetContext(ctx, &customer,
		"SELECT id, full_name, phone, email, created_at, last_login FROM users WHERE id = $1", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	details := &models.CustomerDetails{Customer: customer}

	details.Addresses = []models.Address{}
	err = s.db.SelectContext(ctx, &details.Addresses, `
		SELECT address_id, user_id, address_line1, address_line2, city, state,
			pincode, is_default, latitude, longitude
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}
	for i := range details.Addresses {
		addr := &details.Addresses[i]
		addr.MapLink = util.MapLink(addr.Latitude, addr.Longitude)
	}

	details.Orders = []models.Order{}
	err = s.db.SelectContext(ctx, &details.Orders, fmt.Sprintf(`
		SELECT %s FROM orders o
		WHERE o.user_id = $1
		ORDER BY o.order_date DESC
		LIMIT %d`, orderColumns, recentOrdersLimit), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}

	err = s.db.GetContext(ctx, &details.Stats, `
		SELECT COUNT(*) AS total_orders,
			SUM(total_amount) AS total_spent,
			AVG(total_amount) AS avg_order_value
		FROM orders
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer stats: %w", err)
	}

	return details, nil
}
