// Package renderer turns engine results into human-readable reports:
// markdown for the terminal, and the fixed-format CPA text export.
package renderer

import (
	"fmt"

	"github.com/rentfolio/rentfolio"
)

// usd formats an engine figure as US dollars.
func usd(v float64) string { return rentfolio.USD(v) }

// signed formats an engine figure with an explicit sign, for variance-style
// columns.
func signed(v float64) string { return rentfolio.M(v, "USD").SignedString() }

// pct formats a decimal rate as a percentage.
func pct(rate float64) string { return rentfolio.PercentOfRate(rate).String() }

// metricCell renders a metric value, or the N/A dash when it has none.
func metricCell(m rentfolio.Metric) string {
	if !m.Valid {
		return "-"
	}
	return usd(m.Value)
}

// statusCell renders a metric's status, with its message when degraded.
func statusCell(m rentfolio.Metric) string {
	if m.Message == "" {
		return m.Status.String()
	}
	return fmt.Sprintf("%s (%s)", m.Status, m.Message)
}
