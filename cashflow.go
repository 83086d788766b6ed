package rentfolio

import "math"

// NOI returns the net operating income: gross income minus fixed operating
// expenses and CapEx reserve, before debt service.
func NOI(grossIncome, fixedExpenses, capexReserve float64) float64 {
	return grossIncome - fixedExpenses - capexReserve
}

// Track is one side of the dual cash-flow report: either the projected
// figures from structured data or the actual figures from the transaction
// stream. HasData distinguishes a true zero from "nothing was available".
type Track struct {
	GrossIncome   float64 `json:"grossIncome"`
	FixedExpenses float64 `json:"fixedExpenses"`
	CapexReserve  float64 `json:"capexReserve"`
	NOI           float64 `json:"noi"`
	DebtService   float64 `json:"debtService"`
	CashFlow      float64 `json:"cashFlow"`
	HasData       bool    `json:"hasData"`
}

// CashflowReport is the full monthly cash-flow analysis of a property:
// projected and actual tracks, their variance, and the status-tagged
// headline metrics.
type CashflowReport struct {
	Projected Track `json:"projected"`
	Actual    Track `json:"actual"`

	// Variance is actual minus projected cash flow. VariancePercent is nil
	// when the projected cash flow is exactly zero.
	Variance        float64  `json:"variance"`
	VariancePercent *float64 `json:"variancePercent"`

	CashFlow Metric `json:"cashFlowMetric"`
	CapRate  Metric `json:"capRateMetric"`
	Equity   Metric `json:"equityMetric"`
	LTV      Metric `json:"ltvMetric"`
}

// Cashflow computes the monthly cash-flow analysis for a property given its
// transaction slice for the reporting period.
//
// The projected track is built from structured data only, the actual track
// from transactions only; the income/expense precedence rule applies inside
// each aggregate, not between tracks. Status tagging follows the degradation
// policy: zero gross income tags the results "warning", income without a
// configured expense record tags them "incomplete" so an inflated cash flow
// is never silently reported as verified.
func (e *Engine) Cashflow(p *Property, ts Transactions) *CashflowReport {
	debt := TotalDebtService(p.Loans)
	capexRate := 0.0
	if p.Expenses != nil {
		capexRate = p.Expenses.CapexRate
	}

	// Projected: structured records only.
	structured := StructuredIncome(p.Income)
	projIncome := structured.Value
	projExpenses := StructuredExpenses(p.Expenses, projIncome).Value
	projCapex := CapexReserve(projIncome, capexRate)
	projNOI := NOI(projIncome, projExpenses, projCapex)
	projected := Track{
		GrossIncome:   projIncome,
		FixedExpenses: projExpenses,
		CapexReserve:  projCapex,
		NOI:           projNOI,
		DebtService:   debt,
		CashFlow:      projNOI - debt,
		HasData:       p.Income != nil || p.Expenses != nil,
	}

	// Actual: transaction aggregates only. One-off expenses belong here and
	// only here.
	derived := TransactionIncome(ts)
	actIncome := derived.Value
	actExpenses := RecurringExpenses(ts).Value + OneOffExpenses(ts)
	actCapex := CapexReserve(actIncome, capexRate)
	actNOI := NOI(actIncome, actExpenses, actCapex)
	actual := Track{
		GrossIncome:   actIncome,
		FixedExpenses: actExpenses,
		CapexReserve:  actCapex,
		NOI:           actNOI,
		DebtService:   debt,
		CashFlow:      actNOI - debt,
		HasData:       derived.HasData() || len(ts.Expenses()) > 0,
	}

	report := &CashflowReport{
		Projected: projected,
		Actual:    actual,
		Variance:  actual.CashFlow - projected.CashFlow,
		Equity:    Equity(p.CurrentValue, p.Loans),
		LTV:       LTV(p.CurrentValue, p.Loans),
	}
	if projected.CashFlow != 0 {
		vp := report.Variance / math.Abs(projected.CashFlow) * 100
		report.VariancePercent = &vp
	}

	// Headline metrics follow the resolved income (structured wins unless
	// absent or zero), so a property living on transaction history still
	// reports a figure.
	gross := GrossIncome(p.Income, ts)
	fixed := FixedMonthlyExpenses(p.Expenses, ts, gross)
	capex := CapexReserve(gross, capexRate)
	noi := NOI(gross, fixed, capex)
	cash := noi - debt

	switch {
	case gross == 0:
		report.CashFlow = Warning(cash, "monthly rent not set")
	case p.Expenses == nil && !RecurringExpenses(ts).HasData():
		report.CashFlow = Incomplete(cash, "operating expenses not configured")
	default:
		report.CashFlow = Success(cash)
	}

	report.CapRate = capRate(noi, p.CurrentValue, report.CashFlow.Status, report.CashFlow.Message)
	return report
}

// capRate annualizes NOI against the current property value, inheriting the
// cash-flow degradation status when the value itself is computable.
func capRate(monthlyNOI float64, currentValue *float64, status Status, message string) Metric {
	if currentValue == nil || *currentValue <= 0 {
		return NoValue(StatusIncomplete, "property value not set")
	}
	rate := monthlyNOI * 12 / *currentValue
	if status == StatusSuccess {
		return Success(rate)
	}
	return Metric{Value: rate, Valid: true, Status: status, Message: message}
}
