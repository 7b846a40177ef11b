package store

import (
	"context"
	"fmt"

	"bmb-admin/internal/models"
	"bmb-admin/internal/stats"
	"bmb-admin/internal/util"
)

func bucketExpr(g stats.Granularity) string {
	switch g {
	case stats.GranularityHour:
		return "DATE_TRUNC('hour', order_date)"
	case stats.GranularityDay:
		return "DATE_TRUNC('day', order_date)"
	default:
		return "DATE_TRUNC('month', order_date)"
	}
}

// GetOrderStatistics computes the four aggregate result sets for one
// time window. Null sums coalesce to zero.
func (s *Store) GetOrderStatistics(ctx context.Context, window stats.Window) (*models.OrderStatistics, error) {
	result := &models.OrderStatistics{
		Timeline:           []models.TimeBucket{},
		TopItems:           []models.TopItem{},
		StatusDistribution: []models.StatusCount{},
	}

	timelineQuery := fmt.Sprintf(`
		SELECT %s AS period,
			COUNT(*) AS order_count,
			COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM orders
		WHERE order_date BETWEEN $1 AND $2
		GROUP BY period
		ORDER BY period`, bucketExpr(window.Granularity))
	err := s.db.SelectContext(ctx, &result.Timeline, timelineQuery, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders timeline: %w", err)
	}

	err = s.db.SelectContext(ctx, &result.TopItems, `
		SELECT oi.item_name, oi.item_type,
			COALESCE(SUM(oi.quantity), 0) AS total_quantity,
			COALESCE(SUM(oi.total), 0) AS total_revenue
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.order_id
		WHERE o.order_date BETWEEN $1 AND $2
		GROUP BY oi.item_name, oi.item_type
		ORDER BY total_quantity DESC
		LIMIT 10`, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load top items: %w", err)
	}

	err = s.db.SelectContext(ctx, &result.StatusDistribution, `
		SELECT status, COUNT(*) AS count
		FROM orders
		WHERE order_date BETWEEN $1 AND $2
		GROUP BY status`, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load status distribution: %w", err)
	}

	err = s.db.GetContext(ctx, &result.Totals, `
		SELECT COUNT(*) AS total_orders,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(AVG(total_amount), 0) AS avg_order_value
		FROM orders
		WHERE order_date BETWEEN $1 AND $2`, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load stat totals: %w", err)
	}

	return result, nil
}

// GetDashboardStats computes the quick counters on the dashboard page.
func (s *Store) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	window := stats.TimePeriodDates(stats.PeriodToday, util.ISTNow())

	var result models.DashboardStats
	err := s.db.GetContext(ctx, &result, `
		SELECT COUNT(*) AS total_orders,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(AVG(total_amount), 0) AS avg_order_value
		FROM orders
		WHERE order_date BETWEEN $1 AND $2`, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's totals: %w", err)
	}

	err = s.db.GetContext(ctx, &result.PendingOrders,
		"SELECT COUNT(*) FROM orders WHERE status = 'pending'")
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	err = s.db.GetContext(ctx, &result.NewCustomers,
		"SELECT COUNT(*) FROM users WHERE created_at >= $1", window.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to count new customers: %w", err)
	}

	return &result, nil
}

// GetAdminOverview computes the all-time counters shown in the layout header.
func (s *Store) GetAdminOverview(ctx context.Context) (*models.AdminOverview, error) {
	var overview models.AdminOverview

	err := s.db.GetContext(ctx, &overview, `
		SELECT COUNT(*) AS total_orders,
			COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("failed to load order totals: %w", err)
	}

	err = s.db.GetContext(ctx, &overview.TotalCustomers, "SELECT COUNT(*) FROM users")
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	err = s.db.GetContext(ctx, &overview.PendingOrders,
		"SELECT COUNT(*) FROM orders WHERE status = 'pending'")
	if err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	return &overview, nil
}

// CreateNotification appends a row to the admin notification inbox.
func (s *Store) CreateNotification(ctx context.Context, title, message, notificationType string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO admin_notifications (title, message, notification_type)
		VALUES ($1, $2, $3)`, title, message, notificationType)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}
