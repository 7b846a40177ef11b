package util

import (
	"fmt"
	"strings"
	"time"
)

// DisplayTimeFormat renders timestamps the way admins expect them,
// e.g. "05 Mar 2025, 04:30 PM".
const DisplayTimeFormat = "02 Jan 2006, 03:04 PM"

// ChartTimeFormat is the compact variant used for timeline chart labels.
const ChartTimeFormat = "02 Jan 03:04 PM"

const currencySymbol = "₹"

var istLocation *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// tzdata absent on the host; IST has no DST so a fixed offset is exact.
		loc = time.FixedZone("IST", 5*3600+30*60)
	}
	istLocation = loc
}

// ISTNow returns the current time in the display timezone.
func ISTNow() time.Time {
	return time.Now().In(istLocation)
}

// ToIST converts a timestamp to the display timezone.
func ToIST(t time.Time) time.Time {
	return t.In(istLocation)
}

// ISTLocation returns the display timezone.
func ISTLocation() *time.Location {
	return istLocation
}

// FormatISTTime renders a timestamp in the display timezone.
// The zero time renders as an empty string.
func FormatISTTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return ToIST(t).Format(DisplayTimeFormat)
}

// FormatISTTimePtr is FormatISTTime for nullable timestamps.
func FormatISTTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatISTTime(*t)
}

// FormatCurrency renders an amount with the currency symbol and thousands
// separators, e.g. "₹1,234.50".
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(currencySymbol)
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatCurrencyPtr is FormatCurrency for nullable amounts; nil formats as
// the zero amount, never an error.
func FormatCurrencyPtr(amount *float64) string {
	if amount == nil {
		return FormatCurrency(0)
	}
	return FormatCurrency(*amount)
}

// MapLink builds a Google Maps link from coordinates, or "" when either
// coordinate is missing.
func MapLink(latitude, longitude *float64) string {
	if latitude == nil || longitude == nil {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", *latitude, *longitude)
}
