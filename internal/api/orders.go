package api

import (
	"errors"
	"net/http"
	"strconv"

	"bmb-admin/internal/models"
	"bmb-admin/internal/store"
	"bmb-admin/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type orderJSON struct {
	models.Order
	OrderDateFormatted    string `json:"order_date_formatted"`
	DeliveryDateFormatted string `json:"delivery_date_formatted,omitempty"`
	TotalAmountFormatted  string `json:"total_amount_formatted"`
}

func shapeOrder(o models.Order) orderJSON {
	return orderJSON{
		Order:                 o,
		OrderDateFormatted:    util.FormatISTTime(o.OrderDate),
		DeliveryDateFormatted: util.FormatISTTimePtr(o.DeliveryDate),
		TotalAmountFormatted:  util.FormatCurrency(o.TotalAmount),
	}
}

type orderItemJSON struct {
	models.OrderItem
	PriceFormatted string `json:"price_formatted"`
	TotalFormatted string `json:"total_formatted"`
}

type orderLogJSON struct {
	models.OrderLog
	CreatedAtFormatted string `json:"created_at_formatted"`
}

type customerJSON struct {
	models.Customer
	CreatedAtFormatted string `json:"created_at_formatted"`
	LastLoginFormatted string `json:"last_login_formatted,omitempty"`
}

func shapeCustomer(cu models.Customer) customerJSON {
	return customerJSON{
		Customer:           cu,
		CreatedAtFormatted: util.FormatISTTime(cu.CreatedAt),
		LastLoginFormatted: util.FormatISTTimePtr(cu.LastLogin),
	}
}

type paymentJSON struct {
	models.PaymentDetail
	PaymentDateFormatted string `json:"payment_date_formatted,omitempty"`
	OrderDateFormatted   string `json:"order_date_formatted"`
	AmountFormatted      string `json:"amount_formatted"`
	TotalAmountFormatted string `json:"total_amount_formatted"`
}

type customerStatsJSON struct {
	models.CustomerStats
	TotalSpentFormatted    string `json:"total_spent_formatted"`
	AvgOrderValueFormatted string `json:"avg_order_value_formatted"`
}

func jsonFailure(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

func orderIDParam(c *gin.Context) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		jsonFailure(c, "Invalid order ID")
		return 0, false
	}
	return orderID, true
}

// ordersPage renders the paginated, filterable order list.
func (h *Handler) ordersPage(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	status := c.Query("status")
	search := c.Query("search")
	perPage := h.cfg.Display.ItemsPerPage

	orders, total, err := h.store.GetAllOrders(c.Request.Context(), page, perPage, status, search)
	if err != nil {
		h.logger.Error("Failed to load orders page", zap.Error(err))
		orders, total = []models.OrderSummary{}, 0
	}

	c.HTML(http.StatusOK, "orders.html", gin.H{
		"flashes":       popFlashes(c),
		"admin":         adminUsername(c),
		"overview":      h.overview(c),
		"orders":        orderRows(orders),
		"page":          page,
		"prevPage":      page - 1,
		"nextPage":      page + 1,
		"totalPages":    totalPages(total, perPage),
		"total":         total,
		"currentStatus": status,
		"currentSearch": search,
	})
}

// orderDetails returns the order detail payload for the modal.
func (h *Handler) orderDetails(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	details, err := h.store.GetOrderDetails(c.Request.Context(), orderID)
	if errors.Is(err, store.ErrNotFound) {
		jsonFailure(c, "Order not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load order details", zap.Int64("order_id", orderID), zap.Error(err))
		jsonFailure(c, err.Error())
		return
	}

	items := make([]orderItemJSON, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, orderItemJSON{
			OrderItem:      item,
			PriceFormatted: util.FormatCurrency(item.Price),
			TotalFormatted: util.FormatCurrency(item.Total),
		})
	}

	logs := make([]orderLogJSON, 0, len(details.Logs))
	for _, logRow := range details.Logs {
		logs = append(logs, orderLogJSON{
			OrderLog:           logRow,
			CreatedAtFormatted: util.FormatISTTime(logRow.CreatedAt),
		})
	}

	resp := gin.H{
		"success": true,
		"order":   shapeOrder(details.Order),
		"items":   items,
		"logs":    logs,
	}
	if details.Customer != nil {
		resp["customer"] = shapeCustomer(*details.Customer)
	} else {
		resp["customer"] = nil
	}
	resp["address"] = details.Address
	resp["payment"] = details.Payment

	c.JSON(http.StatusOK, resp)
}

// orderPayment returns the payment payload for the modal.
func (h *Handler) orderPayment(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	payment, err := h.store.GetPaymentByOrderID(c.Request.Context(), orderID)
	if errors.Is(err, store.ErrNotFound) {
		jsonFailure(c, "Payment not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load payment", zap.Int64("order_id", orderID), zap.Error(err))
		jsonFailure(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"payment": paymentJSON{
			PaymentDetail:        *payment,
			PaymentDateFormatted: util.FormatISTTimePtr(payment.PaymentDate),
			OrderDateFormatted:   util.FormatISTTime(payment.OrderDate),
			AmountFormatted:      util.FormatCurrencyPtr(payment.Amount),
			TotalAmountFormatted: util.FormatCurrency(payment.TotalAmount),
		},
	})
}

// orderCustomer returns the customer payload for an order's modal.
func (h *Handler) orderCustomer(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	userID, err := h.store.GetOrderUserID(ctx, orderID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && userID == nil) {
		jsonFailure(c, "Customer not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to resolve order customer", zap.Int64("order_id", orderID), zap.Error(err))
		jsonFailure(c, err.Error())
		return
	}

	details, err := h.store.GetCustomerDetails(ctx, *userID)
	if errors.Is(err, store.ErrNotFound) {
		jsonFailure(c, "Customer details not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load customer details", zap.Int64("user_id", *userID), zap.Error(err))
		jsonFailure(c, err.Error())
		return
	}

	orders := make([]orderJSON, 0, len(details.Orders))
	for _, o := range details.Orders {
		orders = append(orders, shapeOrder(o))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"customer":  shapeCustomer(details.Customer),
		"addresses": details.Addresses,
		"stats": customerStatsJSON{
			CustomerStats:          details.Stats,
			TotalSpentFormatted:    util.FormatCurrencyPtr(details.Stats.TotalSpent),
			AvgOrderValueFormatted: util.FormatCurrencyPtr(details.Stats.AvgOrderValue),
		},
		"orders": orders,
	})
}

// updateOrderStatus mutates an order's status from the modal form.
func (h *Handler) updateOrderStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	newStatus := c.PostForm("status")
	notes := c.PostForm("notes")

	success, message := h.orders.UpdateOrderStatus(
		c.Request.Context(), orderID, newStatus, adminUsername(c), notes)
	if success {
		h.stats.InvalidateCache(c.Request.Context())
	}

	c.JSON(http.StatusOK, gin.H{"success": success, "message": message})
}
