package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rentfolio/rentfolio"
)

// CashflowMarkdown renders the monthly cash-flow report to a markdown string.
func CashflowMarkdown(address string, r *rentfolio.CashflowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Monthly Cash Flow"
	if address != "" {
		title = fmt.Sprintf("Monthly Cash Flow for %s", address)
	}
	doc.H1(title)

	doc.H2("Projected vs Actual")
	doc.Table(md.TableSet{
		Header: []string{"", "Projected", "Actual"},
		Rows: [][]string{
			{"Gross Income", trackCell(r.Projected, r.Projected.GrossIncome), trackCell(r.Actual, r.Actual.GrossIncome)},
			{"Fixed Expenses", trackCell(r.Projected, r.Projected.FixedExpenses), trackCell(r.Actual, r.Actual.FixedExpenses)},
			{"CapEx Reserve", trackCell(r.Projected, r.Projected.CapexReserve), trackCell(r.Actual, r.Actual.CapexReserve)},
			{"NOI", trackCell(r.Projected, r.Projected.NOI), trackCell(r.Actual, r.Actual.NOI)},
			{"Debt Service", trackCell(r.Projected, r.Projected.DebtService), trackCell(r.Actual, r.Actual.DebtService)},
			{"Cash Flow", trackCell(r.Projected, r.Projected.CashFlow), trackCell(r.Actual, r.Actual.CashFlow)},
		},
	})

	variance := fmt.Sprintf("Variance: %s", signed(r.Variance))
	if r.VariancePercent != nil {
		variance = fmt.Sprintf("Variance: %s (%+.1f%%)", signed(r.Variance), *r.VariancePercent)
	}
	doc.PlainText(variance)

	doc.H2("Metrics")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value", "Status"},
		Rows: [][]string{
			{"Cash Flow", metricCell(r.CashFlow), statusCell(r.CashFlow)},
			{"Cap Rate", capRateCell(r.CapRate), statusCell(r.CapRate)},
			{"Equity", metricCell(r.Equity), statusCell(r.Equity)},
			{"LTV", capRateCell(r.LTV), statusCell(r.LTV)},
		},
	})

	return doc.String()
}

// trackCell renders a track figure, or the N/A dash when the track had no data.
func trackCell(t rentfolio.Track, v float64) string {
	if !t.HasData {
		return "-"
	}
	return usd(v)
}

// capRateCell renders a rate-valued metric as a percentage.
func capRateCell(m rentfolio.Metric) string {
	if !m.Valid {
		return "-"
	}
	return pct(m.Value)
}
