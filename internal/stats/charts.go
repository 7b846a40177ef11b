package stats

import (
	"strings"
	"unicode/utf8"

	"bmb-admin/internal/models"
	"bmb-admin/internal/util"
)

const (
	maxTimelinePoints = 20
	maxTopItems       = 10
	maxItemLabelLen   = 20
	fallbackColor     = "#6c757d"
)

var statusColors = map[string]string{
	"pending":    "#ffc107",
	"confirmed":  "#17a2b8",
	"processing": "#007bff",
	"shipped":    "#6f42c1",
	"delivered":  "#28a745",
	"cancelled":  "#dc3545",
}

// TimelineChart holds the orders-over-time series for the front end.
type TimelineChart struct {
	Labels  []string  `json:"labels"`
	Orders  []int     `json:"orders"`
	Revenue []float64 `json:"revenue"`
}

// ItemsChart holds the top-items series.
type ItemsChart struct {
	Labels     []string  `json:"labels"`
	Quantities []int     `json:"quantities"`
	Revenues   []float64 `json:"revenues"`
}

// StatusChart holds the status distribution with one color per slice.
type StatusChart struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Colors []string `json:"colors"`
}

// ChartData is the shape consumed directly by the charting front end.
type ChartData struct {
	Timeline TimelineChart `json:"timeline"`
	Items    ItemsChart    `json:"items"`
	Status   StatusChart   `json:"status"`
}

func emptyChartData() ChartData {
	return ChartData{
		Timeline: TimelineChart{Labels: []string{}, Orders: []int{}, Revenue: []float64{}},
		Items:    ItemsChart{Labels: []string{}, Quantities: []int{}, Revenues: []float64{}},
		Status:   StatusChart{Labels: []string{}, Values: []int{}, Colors: []string{}},
	}
}

// PrepareChartData reshapes the aggregate query results into parallel
// label/value arrays. It never fails: any panic during shaping yields the
// empty structure of the same shape.
func PrepareChartData(timeline []models.TimeBucket, topItems []models.TopItem, statuses []models.StatusCount) (data ChartData) {
	defer func() {
		if r := recover(); r != nil {
			data = emptyChartData()
		}
	}()

	data = emptyChartData()

	for i, bucket := range timeline {
		if i >= maxTimelinePoints {
			break
		}
		data.Timeline.Labels = append(data.Timeline.Labels, formatBucketLabel(bucket))
		data.Timeline.Orders = append(data.Timeline.Orders, bucket.OrderCount)
		data.Timeline.Revenue = append(data.Timeline.Revenue, bucket.TotalRevenue)
	}

	for i, item := range topItems {
		if i >= maxTopItems {
			break
		}
		data.Items.Labels = append(data.Items.Labels, truncateLabel(item.ItemName))
		data.Items.Quantities = append(data.Items.Quantities, item.TotalQuantity)
		data.Items.Revenues = append(data.Items.Revenues, item.TotalRevenue)
	}

	for _, sc := range statuses {
		label := titleCase(sc.Status)
		data.Status.Labels = append(data.Status.Labels, label)
		data.Status.Values = append(data.Status.Values, sc.Count)
		data.Status.Colors = append(data.Status.Colors, statusColor(sc.Status))
	}

	return data
}

// StatusColor returns the chart color for a status, with a fixed fallback
// for unrecognized statuses.
func StatusColor(status string) string {
	return statusColor(status)
}

func statusColor(status string) string {
	if c, ok := statusColors[strings.ToLower(status)]; ok {
		return c
	}
	return fallbackColor
}

func formatBucketLabel(bucket models.TimeBucket) string {
	return util.ToIST(bucket.Period).Format(util.ChartTimeFormat)
}

func truncateLabel(name string) string {
	if utf8.RuneCountInString(name) <= maxItemLabelLen {
		return name
	}
	runes := []rune(name)
	return string(runes[:maxItemLabelLen]) + "..."
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
