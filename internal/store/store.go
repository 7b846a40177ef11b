package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrNotFound marks lookups whose target row does not exist, so callers can
// distinguish a missing entity from a data-access fault.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// Health verifies database connectivity.
func (s *Store) Health(ctx context.Context) error {
	var one int
	return s.db.GetContext(ctx, &one, "SELECT 1")
}

var adminTableDDL = []string{
	`CREATE TABLE IF NOT EXISTS admin_settings (
		id SERIAL PRIMARY KEY,
		setting_key VARCHAR(100) UNIQUE NOT NULL,
		setting_value TEXT,
		setting_type VARCHAR(50),
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_logs (
		log_id SERIAL PRIMARY KEY,
		order_id INTEGER REFERENCES orders(order_id) ON DELETE CASCADE,
		admin_id VARCHAR(100),
		action VARCHAR(50) NOT NULL,
		details TEXT,
		old_status VARCHAR(50),
		new_status VARCHAR(50),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS payment_logs (
		log_id SERIAL PRIMARY KEY,
		payment_id INTEGER REFERENCES payments(payment_id) ON DELETE CASCADE,
		admin_id VARCHAR(100),
		action VARCHAR(50) NOT NULL,
		details TEXT,
		old_status VARCHAR(50),
		new_status VARCHAR(50),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS admin_notifications (
		notification_id SERIAL PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		message TEXT NOT NULL,
		notification_type VARCHAR(50),
		is_read BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		read_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_logs_order_id ON order_logs(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_logs_payment_id ON payment_logs(payment_id)`,
	`CREATE INDEX IF NOT EXISTS idx_admin_notifications_read ON admin_notifications(is_read)`,
}

var defaultSettings = [][4]string{
	{"site_name", "Bite Me Buddy Admin", "text", "Website name displayed in admin panel"},
	{"currency_symbol", "₹", "text", "Currency symbol for display"},
	{"timezone", "Asia/Kolkata", "text", "Default timezone"},
	{"items_per_page", "20", "number", "Number of items per page in lists"},
	{"default_order_status", "pending", "text", "Default status for new orders"},
	{"enable_email_notifications", "true", "boolean", "Enable email notifications"},
	{"enable_sms_notifications", "true", "boolean", "Enable SMS notifications"},
	{"order_notification_email", "admin@bitemebuddy.com", "text", "Email for order notifications"},
}

// InitAdminTables creates the admin-owned tables if absent and seeds the
// default settings rows. Safe to call on every startup.
func (s *Store) InitAdminTables(ctx context.Context) error {
	for _, ddl := range adminTableDDL {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create admin tables: %w", err)
		}
	}

	for _, setting := range defaultSettings {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO admin_settings (setting_key, setting_value, setting_type, description)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (setting_key) DO NOTHING`,
			setting[0], setting[1], setting[2], setting[3])
		if err != nil {
			return fmt.Errorf("failed to seed admin settings: %w", err)
		}
	}

	return nil
}
