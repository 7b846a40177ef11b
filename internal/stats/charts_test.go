package stats

import (
	"fmt"
	"testing"
	"time"

	"bmb-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareChartDataEmptyInput(t *testing.T) {
	data := PrepareChartData(nil, nil, nil)

	assert.NotNil(t, data.Timeline.Labels)
	assert.Empty(t, data.Timeline.Labels)
	assert.NotNil(t, data.Items.Labels)
	assert.Empty(t, data.Items.Quantities)
	assert.NotNil(t, data.Status.Colors)
	assert.Empty(t, data.Status.Values)
}

func TestPrepareChartDataTimelineTruncation(t *testing.T) {
	timeline := make([]models.TimeBucket, 30)
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := range timeline {
		timeline[i] = models.TimeBucket{
			Period:       base.Add(time.Duration(i) * time.Hour),
			OrderCount:   i,
			TotalRevenue: float64(i) * 100,
		}
	}

	data := PrepareChartData(timeline, nil, nil)

	assert.Len(t, data.Timeline.Labels, 20)
	assert.Len(t, data.Timeline.Orders, 20)
	assert.Len(t, data.Timeline.Revenue, 20)
	// First buckets survive, later ones are dropped.
	assert.Equal(t, 0, data.Timeline.Orders[0])
	assert.Equal(t, 19, data.Timeline.Orders[19])
}

func TestPrepareChartDataTopItemsTruncation(t *testing.T) {
	items := make([]models.TopItem, 15)
	for i := range items {
		items[i] = models.TopItem{
			ItemName:      fmt.Sprintf("Item %d", i),
			ItemType:      models.ItemTypeMenu,
			TotalQuantity: 15 - i,
			TotalRevenue:  float64(15-i) * 50,
		}
	}

	data := PrepareChartData(nil, items, nil)

	assert.Len(t, data.Items.Labels, 10)
	assert.Len(t, data.Items.Quantities, 10)
	assert.Len(t, data.Items.Revenues, 10)
}

func TestPrepareChartDataItemLabelTruncation(t *testing.T) {
	items := []models.TopItem{
		{ItemName: "Paneer Butter Masala Special Thali", TotalQuantity: 5},
		{ItemName: "Short Name", TotalQuantity: 3},
	}

	data := PrepareChartData(nil, items, nil)

	require.Len(t, data.Items.Labels, 2)
	assert.Equal(t, "Paneer Butter Masala...", data.Items.Labels[0])
	assert.Equal(t, "Short Name", data.Items.Labels[1])
}

func TestPrepareChartDataStatusColors(t *testing.T) {
	statuses := []models.StatusCount{
		{Status: "delivered", Count: 7},
		{Status: "unknown_status", Count: 1},
	}

	data := PrepareChartData(nil, nil, statuses)

	assert.Equal(t, []string{"Delivered", "Unknown_status"}, data.Status.Labels)
	assert.Equal(t, []int{7, 1}, data.Status.Values)
	assert.Equal(t, []string{"#28a745", "#6c757d"}, data.Status.Colors)
}

func TestStatusColorLookup(t *testing.T) {
	assert.Equal(t, "#ffc107", StatusColor("pending"))
	assert.Equal(t, "#ffc107", StatusColor("PENDING"))
	assert.Equal(t, "#dc3545", StatusColor("cancelled"))
	assert.Equal(t, "#6c757d", StatusColor("refunded"))
	assert.Equal(t, "#6c757d", StatusColor(""))
}
