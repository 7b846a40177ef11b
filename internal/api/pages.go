package api

import (
	"net/http"
	"strconv"

	"bmb-admin/internal/models"
	"bmb-admin/internal/stats"
	"bmb-admin/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// customersPage renders the paginated customer list.
func (h *Handler) customersPage(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	search := c.Query("search")
	perPage := h.cfg.Display.ItemsPerPage

	customers, total, err := h.store.GetCustomers(c.Request.Context(), page, perPage, search)
	if err != nil {
		h.logger.Error("Failed to load customers page", zap.Error(err))
		customers, total = []models.CustomerSummary{}, 0
	}

	c.HTML(http.StatusOK, "customers.html", gin.H{
		"flashes":       popFlashes(c),
		"admin":         adminUsername(c),
		"overview":      h.overview(c),
		"customers":     customerRows(customers),
		"page":          page,
		"prevPage":      page - 1,
		"nextPage":      page + 1,
		"totalPages":    totalPages(total, perPage),
		"total":         total,
		"currentSearch": search,
	})
}

// statisticsPage renders the statistics view for the selected period.
func (h *Handler) statisticsPage(c *gin.Context) {
	period := c.DefaultQuery("period", stats.PeriodToday)
	if !stats.ValidPeriod(period) {
		period = stats.PeriodToday
	}

	result, charts, err := h.stats.GetStatistics(c.Request.Context(), period)
	if err != nil {
		h.logger.Error("Failed to load statistics", zap.String("period", period), zap.Error(err))
		result = &models.OrderStatistics{}
	}

	c.HTML(http.StatusOK, "statistics.html", gin.H{
		"flashes":           popFlashes(c),
		"admin":             adminUsername(c),
		"overview":          h.overview(c),
		"period":            period,
		"charts":            charts,
		"totals":            result.Totals,
		"revenueFormatted":  util.FormatCurrency(result.Totals.TotalRevenue),
		"avgOrderFormatted": util.FormatCurrency(result.Totals.AvgOrderValue),
	})
}

// apiStatistics serves the chart refresh endpoint.
func (h *Handler) apiStatistics(c *gin.Context) {
	period := c.DefaultQuery("period", stats.PeriodToday)

	result, charts, err := h.stats.GetStatistics(c.Request.Context(), period)
	if err != nil {
		h.logger.Error("Failed to load statistics", zap.String("period", period), zap.Error(err))
		jsonFailure(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"timeline": charts.Timeline,
		"items":    charts.Items,
		"status":   charts.Status,
		"totals": gin.H{
			"total_orders":            result.Totals.TotalOrders,
			"total_revenue":           result.Totals.TotalRevenue,
			"total_revenue_formatted": util.FormatCurrency(result.Totals.TotalRevenue),
			"avg_order_value":         result.Totals.AvgOrderValue,
			"avg_order_formatted":     util.FormatCurrency(result.Totals.AvgOrderValue),
		},
	})
}

// itemsPage renders the catalog browser for services or menu items.
func (h *Handler) itemsPage(c *gin.Context) {
	itemType := c.DefaultQuery("type", models.ItemTypeService)
	if itemType != models.ItemTypeService && itemType != models.ItemTypeMenu {
		itemType = models.ItemTypeService
	}
	search := c.Query("search")

	items, err := h.store.GetCatalogItems(c.Request.Context(), itemType, search)
	if err != nil {
		h.logger.Error("Failed to load catalog items", zap.String("type", itemType), zap.Error(err))
		items = []models.CatalogItem{}
	}

	c.HTML(http.StatusOK, "items.html", gin.H{
		"flashes":       popFlashes(c),
		"admin":         adminUsername(c),
		"overview":      h.overview(c),
		"items":         catalogRows(items),
		"itemType":      itemType,
		"currentSearch": search,
	})
}
