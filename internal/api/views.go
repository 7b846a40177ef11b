package api

import (
	"bmb-admin/internal/models"
	"bmb-admin/internal/stats"
	"bmb-admin/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type flash struct {
	Category string
	Message  string
}

// popFlashes drains the session flash queues for rendering.
func popFlashes(c *gin.Context) []flash {
	sess := sessions.Default(c)

	var flashes []flash
	for _, category := range []string{"error", "warning", "success"} {
		for _, msg := range sess.Flashes(category) {
			if text, ok := msg.(string); ok {
				flashes = append(flashes, flash{Category: category, Message: text})
			}
		}
	}
	_ = sess.Save()
	return flashes
}

// overview loads the all-time header counters; failures degrade to zeros.
func (h *Handler) overview(c *gin.Context) *models.AdminOverview {
	ov, err := h.store.GetAdminOverview(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load admin overview", zap.Error(err))
		return &models.AdminOverview{}
	}
	return ov
}

type orderRow struct {
	models.OrderSummary
	AmountFormatted string
	DateFormatted   string
	StatusColor     string
}

func orderRows(orders []models.OrderSummary) []orderRow {
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{
			OrderSummary:    o,
			AmountFormatted: util.FormatCurrency(o.TotalAmount),
			DateFormatted:   util.FormatISTTime(o.OrderDate),
			StatusColor:     stats.StatusColor(o.Status),
		})
	}
	return rows
}

type customerRow struct {
	models.CustomerSummary
	SpentFormatted     string
	CreatedFormatted   string
	LastOrderFormatted string
}

func customerRows(customers []models.CustomerSummary) []customerRow {
	rows := make([]customerRow, 0, len(customers))
	for _, cu := range customers {
		rows = append(rows, customerRow{
			CustomerSummary:    cu,
			SpentFormatted:     util.FormatCurrencyPtr(cu.TotalSpent),
			CreatedFormatted:   util.FormatISTTime(cu.CreatedAt),
			LastOrderFormatted: util.FormatISTTimePtr(cu.LastOrderDate),
		})
	}
	return rows
}

type catalogRow struct {
	models.CatalogItem
	PriceFormatted      string
	FinalPriceFormatted string
	DiscountFormatted   string
}

func catalogRows(items []models.CatalogItem) []catalogRow {
	rows := make([]catalogRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, catalogRow{
			CatalogItem:         item,
			PriceFormatted:      util.FormatCurrency(item.Price),
			FinalPriceFormatted: util.FormatCurrencyPtr(item.FinalPrice),
			DiscountFormatted:   util.FormatCurrencyPtr(item.Discount),
		})
	}
	return rows
}

// totalPages turns a row count into a 1-based page count.
func totalPages(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
