package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatCurrency(0))
	assert.Equal(t, "₹450.00", FormatCurrency(450))
	assert.Equal(t, "₹1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "₹12,500.00", FormatCurrency(12500))
	assert.Equal(t, "₹1,234,567.89", FormatCurrency(1234567.89))
	assert.Equal(t, "-₹250.00", FormatCurrency(-250))
}

func TestFormatCurrencyPtrNil(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatCurrencyPtr(nil))

	amount := 830.0
	assert.Equal(t, "₹830.00", FormatCurrencyPtr(&amount))
}

func TestFormatISTTime(t *testing.T) {
	// 2025-03-05 11:00 UTC is 16:30 IST.
	ts := time.Date(2025, 3, 5, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, "05 Mar 2025, 04:30 PM", FormatISTTime(ts))

	assert.Equal(t, "", FormatISTTime(time.Time{}))
	assert.Equal(t, "", FormatISTTimePtr(nil))
}

func TestMapLink(t *testing.T) {
	lat, lng := 12.9716, 77.5946
	assert.Equal(t, "https://www.google.com/maps?q=12.9716,77.5946", MapLink(&lat, &lng))
	assert.Equal(t, "", MapLink(&lat, nil))
	assert.Equal(t, "", MapLink(nil, nil))
}
