// Package render turns API results into terminal text. Nothing here talks
// to the backend.
package render

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006, 03:04 PM"
)

var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders backend timestamps as "Jan 2, 2006". Unparseable input
// is returned unchanged.
func FormatDate(s string) string {
	t, ok := parseTime(s)
	if !ok {
		return s
	}
	return t.Format(dateLayout)
}

func FormatDateTime(s string) string {
	t, ok := parseTime(s)
	if !ok {
		return s
	}
	return t.Format(dateTimeLayout)
}

type Band string

const (
	BandGood Band = "good"
	BandFair Band = "fair"
	BandPoor Band = "poor"
)

// ScoreBand: 70 and above is good, 50 and above fair.
func ScoreBand(percentage float64) Band {
	switch {
	case percentage >= 70:
		return BandGood
	case percentage >= 50:
		return BandFair
	}
	return BandPoor
}

func (b Band) Color() *color.Color {
	switch b {
	case BandGood:
		return color.New(color.FgGreen, color.Bold)
	case BandFair:
		return color.New(color.FgYellow, color.Bold)
	}
	return color.New(color.FgRed, color.Bold)
}

// Percent formats a percentage coloured by its band.
func Percent(percentage float64) string {
	return ScoreBand(percentage).Color().Sprintf("%s%%", trimFloat(percentage))
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.1f", f)
}

// Hours prints 1.5 as "1.5h" and 2 as "2h".
func Hours(h float64) string {
	return trimFloat(h) + "h"
}
