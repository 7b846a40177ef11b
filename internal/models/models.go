package models

import "time"

// Order represents a customer order. Customer contact fields are denormalized
// onto the order row; UserID is nil for guest checkouts.
type Order struct {
	OrderID          int64      `db:"order_id" json:"order_id"`
	UserID           *int64     `db:"user_id" json:"user_id,omitempty"`
	UserName         string     `db:"user_name" json:"user_name"`
	UserPhone        string     `db:"user_phone" json:"user_phone"`
	UserEmail        *string    `db:"user_email" json:"user_email,omitempty"`
	TotalAmount      float64    `db:"total_amount" json:"total_amount"`
	PaymentMode      *string    `db:"payment_mode" json:"payment_mode,omitempty"`
	DeliveryLocation *string    `db:"delivery_location" json:"delivery_location,omitempty"`
	DeliveryDate     *time.Time `db:"delivery_date" json:"delivery_date,omitempty"`
	Status           string     `db:"status" json:"status"`
	OrderDate        time.Time  `db:"order_date" json:"order_date"`
}

// OrderSummary is an order row annotated for list views.
type OrderSummary struct {
	Order
	ItemCount     int     `db:"item_count" json:"item_count"`
	PaymentStatus *string `db:"payment_status" json:"payment_status,omitempty"`
}

// OrderItem references a catalog item polymorphically by (ItemType, ItemID).
type OrderItem struct {
	OrderItemID int64   `db:"order_item_id" json:"order_item_id"`
	OrderID     int64   `db:"order_id" json:"order_id"`
	ItemType    string  `db:"item_type" json:"item_type"`
	ItemID      int64   `db:"item_id" json:"item_id"`
	ItemName    string  `db:"item_name" json:"item_name"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Price       float64 `db:"price" json:"price"`
	Total       float64 `db:"total" json:"total"`
	// Resolved from the referenced services/menu row at query time.
	FullName *string `db:"full_name" json:"full_name,omitempty"`
	Photo    *string `db:"photo" json:"photo,omitempty"`
}

// Payment is the at-most-one payment record for an order.
type Payment struct {
	PaymentID         int64      `db:"payment_id" json:"payment_id"`
	OrderID           int64      `db:"order_id" json:"order_id"`
	PaymentStatus     *string    `db:"payment_status" json:"payment_status,omitempty"`
	TransactionID     *string    `db:"transaction_id" json:"transaction_id,omitempty"`
	RazorpayOrderID   *string    `db:"razorpay_order_id" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID *string    `db:"razorpay_payment_id" json:"razorpay_payment_id,omitempty"`
	RazorpaySignature *string    `db:"razorpay_signature" json:"razorpay_signature,omitempty"`
	Amount            *float64   `db:"amount" json:"amount,omitempty"`
	PaymentDate       *time.Time `db:"payment_date" json:"payment_date,omitempty"`
}

// PaymentDetail joins the payment with order context for the payment modal.
type PaymentDetail struct {
	Payment
	TotalAmount float64   `db:"total_amount" json:"total_amount"`
	UserName    string    `db:"user_name" json:"user_name"`
	OrderDate   time.Time `db:"order_date" json:"order_date"`
}

// OrderLog is one append-only audit row per status change.
type OrderLog struct {
	LogID     int64     `db:"log_id" json:"log_id"`
	OrderID   int64     `db:"order_id" json:"order_id"`
	AdminID   *string   `db:"admin_id" json:"admin_id,omitempty"`
	Action    string    `db:"action" json:"action"`
	Details   *string   `db:"details" json:"details,omitempty"`
	OldStatus *string   `db:"old_status" json:"old_status,omitempty"`
	NewStatus *string   `db:"new_status" json:"new_status,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Customer is a registered user account.
type Customer struct {
	ID        int64      `db:"id" json:"id"`
	FullName  string     `db:"full_name" json:"full_name"`
	Phone     *string    `db:"phone" json:"phone,omitempty"`
	Email     *string    `db:"email" json:"email,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	LastLogin *time.Time `db:"last_login" json:"last_login,omitempty"`
}

// CustomerSummary is a customer row annotated for the list view.
type CustomerSummary struct {
	Customer
	TotalOrders   int        `db:"total_orders" json:"total_orders"`
	TotalSpent    *float64   `db:"total_spent" json:"total_spent,omitempty"`
	LastOrderDate *time.Time `db:"last_order_date" json:"last_order_date,omitempty"`
	AddressLine1  *string    `db:"address_line1" json:"address_line1,omitempty"`
	City          *string    `db:"city" json:"city,omitempty"`
	State         *string    `db:"state" json:"state,omitempty"`
}

// Address belongs to a customer; at most one is expected to carry IsDefault.
type Address struct {
	AddressID    int64    `db:"address_id" json:"address_id"`
	UserID       int64    `db:"user_id" json:"user_id"`
	AddressLine1 *string  `db:"address_line1" json:"address_line1,omitempty"`
	AddressLine2 *string  `db:"address_line2" json:"address_line2,omitempty"`
	City         *string  `db:"city" json:"city,omitempty"`
	State        *string  `db:"state" json:"state,omitempty"`
	Pincode      *string  `db:"pincode" json:"pincode,omitempty"`
	IsDefault    bool     `db:"is_default" json:"is_default"`
	Latitude     *float64 `db:"latitude" json:"latitude,omitempty"`
	Longitude    *float64 `db:"longitude" json:"longitude,omitempty"`
	// Derived, not stored.
	MapLink string `db:"-" json:"map_link,omitempty"`
}

// CustomerStats aggregates a single customer's order history.
type CustomerStats struct {
	TotalOrders   int      `db:"total_orders" json:"total_orders"`
	TotalSpent    *float64 `db:"total_spent" json:"total_spent,omitempty"`
	AvgOrderValue *float64 `db:"avg_order_value" json:"avg_order_value,omitempty"`
}

// CatalogItem is a purchasable service or menu entry, annotated with how
// often it has been ordered.
type CatalogItem struct {
	ID            int64    `db:"id" json:"id"`
	Name          string   `db:"name" json:"name"`
	Description   *string  `db:"description" json:"description,omitempty"`
	Price         float64  `db:"price" json:"price"`
	Discount      *float64 `db:"discount" json:"discount,omitempty"`
	FinalPrice    *float64 `db:"final_price" json:"final_price,omitempty"`
	Category      *string  `db:"category" json:"category,omitempty"`
	Photo         *string  `db:"photo" json:"photo,omitempty"`
	Status        string   `db:"status" json:"status"`
	Position      *int     `db:"position" json:"position,omitempty"`
	TimesOrdered  int      `db:"times_ordered" json:"times_ordered"`
	TotalQuantity int      `db:"total_quantity" json:"total_quantity"`
}

// OrderDetails bundles everything the order detail modal needs.
type OrderDetails struct {
	Order     Order       `json:"order"`
	Items     []OrderItem `json:"items"`
	Customer  *Customer   `json:"customer,omitempty"`
	Address   *Address    `json:"address,omitempty"`
	Payment   *Payment    `json:"payment,omitempty"`
	Logs      []OrderLog  `json:"logs"`
}

// CustomerDetails bundles a customer profile with addresses, recent orders
// and aggregate stats.
type CustomerDetails struct {
	Customer  Customer      `json:"customer"`
	Addresses []Address     `json:"addresses"`
	Orders    []Order       `json:"orders"`
	Stats     CustomerStats `json:"stats"`
}

// TimeBucket is one row of the orders-over-time aggregate.
type TimeBucket struct {
	Period       time.Time `db:"period" json:"period"`
	OrderCount   int       `db:"order_count" json:"order_count"`
	TotalRevenue float64   `db:"total_revenue" json:"total_revenue"`
}

// TopItem is one row of the top-items-by-quantity aggregate.
type TopItem struct {
	ItemName      string  `db:"item_name" json:"item_name"`
	ItemType      string  `db:"item_type" json:"item_type"`
	TotalQuantity int     `db:"total_quantity" json:"total_quantity"`
	TotalRevenue  float64 `db:"total_revenue" json:"total_revenue"`
}

// StatusCount is one row of the orders-by-status aggregate.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// StatTotals are the grand totals over a statistics window.
type StatTotals struct {
	TotalOrders   int     `db:"total_orders" json:"total_orders"`
	TotalRevenue  float64 `db:"total_revenue" json:"total_revenue"`
	AvgOrderValue float64 `db:"avg_order_value" json:"avg_order_value"`
}

// OrderStatistics is the full aggregate result for one time period.
type OrderStatistics struct {
	Timeline           []TimeBucket  `json:"orders_timeline"`
	TopItems           []TopItem     `json:"top_items"`
	StatusDistribution []StatusCount `json:"status_distribution"`
	Totals             StatTotals    `json:"totals"`
}

// DashboardStats are the quick counters on the dashboard page.
type DashboardStats struct {
	TotalOrders   int     `db:"total_orders" json:"total_orders"`
	TotalRevenue  float64 `db:"total_revenue" json:"total_revenue"`
	AvgOrderValue float64 `db:"avg_order_value" json:"avg_order_value"`
	PendingOrders int     `db:"pending_orders" json:"pending_orders"`
	NewCustomers  int     `db:"new_customers" json:"new_customers"`
}

// AdminOverview feeds the all-time counters in the layout header.
type AdminOverview struct {
	TotalOrders    int     `db:"total_orders" json:"total_orders"`
	TotalRevenue   float64 `db:"total_revenue" json:"total_revenue"`
	TotalCustomers int     `db:"total_customers" json:"total_customers"`
	PendingOrders  int     `db:"pending_orders" json:"pending_orders"`
}

// AdminNotification is a row in the admin_notifications inbox.
type AdminNotification struct {
	NotificationID   int64      `db:"notification_id" json:"notification_id"`
	Title            string     `db:"title" json:"title"`
	Message          string     `db:"message" json:"message"`
	NotificationType *string    `db:"notification_type" json:"notification_type,omitempty"`
	IsRead           bool       `db:"is_read" json:"is_read"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	ReadAt           *time.Time `db:"read_at" json:"read_at,omitempty"`
}

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// Catalog item types
const (
	ItemTypeService = "service"
	ItemTypeMenu    = "menu"
)
