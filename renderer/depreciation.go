package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rentfolio/rentfolio"
)

// DepreciationMarkdown renders the year-by-year schedule and the current
// state summary to a markdown string.
func DepreciationMarkdown(address string, cb rentfolio.CostBasis, years float64, schedule []rentfolio.ScheduleItem, state *rentfolio.DepreciationState) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Depreciation Schedule"
	if address != "" {
		title = fmt.Sprintf("Depreciation Schedule for %s", address)
	}
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("%.1f-year straight line, mid-month convention", years))

	doc.H2("Cost Basis")
	landLabel := "Land Value"
	if cb.LandValueAssumed {
		landLabel = "Land Value (assumed)"
	}
	doc.Table(md.TableSet{
		Header: []string{"Component", "Amount"},
		Rows: [][]string{
			{"Total Basis", usd(cb.TotalBasis)},
			{landLabel, usd(cb.LandValue)},
			{"Depreciable Basis", usd(cb.DepreciableBasis)},
		},
	})

	if state != nil {
		doc.H2("Current State")
		doc.Table(md.TableSet{
			Header: []string{"", "Value"},
			Rows: [][]string{
				{"Annual Depreciation", usd(state.Annual)},
				{"Accumulated", usd(state.Accumulated)},
				{"Remaining Basis", usd(state.RemainingBasis)},
				{"Years Completed", fmt.Sprintf("%.1f of %.1f", state.YearsCompleted, state.Years)},
				{"Years Remaining", fmt.Sprintf("%.1f", state.YearsRemaining)},
			},
		})
	}

	doc.H2("Annual Schedule")
	rows := make([][]string, 0, len(schedule))
	for _, item := range schedule {
		rows = append(rows, []string{
			fmt.Sprintf("%d", item.Year),
			fmt.Sprintf("%.1f", item.Months),
			usd(item.BeginningBasis),
			usd(item.Depreciation),
			usd(item.Accumulated),
			usd(item.RemainingBasis),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Year", "Months", "Beginning Basis", "Depreciation", "Accumulated", "Remaining"},
		Rows:   rows,
	})

	return doc.String()
}

// TaxShieldMarkdown renders the tax-shield valuation and the paper-loss
// comparison to a markdown string.
func TaxShieldMarkdown(shield rentfolio.TaxShield, loss rentfolio.PaperLoss) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Depreciation Tax Shield")
	doc.PlainText(fmt.Sprintf("Marginal rate: %s", pct(shield.MarginalRate)))
	doc.Table(md.TableSet{
		Header: []string{"", "Value"},
		Rows: [][]string{
			{"Annual Depreciation", usd(shield.AnnualDepreciation)},
			{"Annual Tax Shield", usd(shield.Annual)},
			{"Monthly Tax Shield", usd(shield.Monthly)},
			{"Total Shield To Date", usd(shield.TotalToDate)},
		},
	})

	doc.H2("Paper Loss")
	doc.Table(md.TableSet{
		Header: []string{"", "Value"},
		Rows: [][]string{
			{"Annual Cash Flow", usd(loss.AnnualCashFlow)},
			{"Annual Depreciation", usd(loss.AnnualDepreciation)},
			{"Taxable Income", usd(loss.TaxableIncome)},
			{"Tax Savings", usd(loss.TaxSavings)},
			{"Effective Cash Flow", usd(loss.EffectiveCashFlow)},
		},
	})

	return doc.String()
}

// CostSegMarkdown renders the cost-segregation estimate to a markdown string.
func CostSegMarkdown(est rentfolio.CostSegEstimate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cost Segregation Potential")
	doc.PlainText("Bucketed estimate, not an engineering study.")
	doc.Table(md.TableSet{
		Header: []string{"", "Value"},
		Rows: [][]string{
			{"Depreciable Basis", usd(est.DepreciableBasis)},
			{"Tier", est.Label},
			{"Acceleration Rate", pct(est.Rate)},
			{"Eligible Amount", usd(est.EligibleAmount)},
		},
	})

	return doc.String()
}
