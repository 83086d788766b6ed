package rentfolio

// This file aggregates operating expenses. CapEx reserve and debt service are
// deliberately not part of "fixed expenses": they are computed and applied
// separately in the cash-flow roll-up.

// ManagementFee returns the monthly management fee. A configured flat fee
// wins; otherwise a configured rate is applied to gross income; otherwise 0.
// Only one of the two is ever applied.
func ManagementFee(oe *OperatingExpenses, grossIncome float64) float64 {
	if oe == nil {
		return 0
	}
	if oe.ManagementFeeFlat != nil {
		return *oe.ManagementFeeFlat
	}
	if oe.ManagementFeeRate != nil {
		return *oe.ManagementFeeRate * grossIncome
	}
	return 0
}

// StructuredExpenses sums the structured fixed operating-expense fields into
// a monthly figure: annual fields divided by 12, monthly fields as-is, plus
// the management fee. A nil record reports SourceUnavailable.
func StructuredExpenses(oe *OperatingExpenses, grossIncome float64) DataSource {
	if oe == nil {
		return NoSource()
	}
	sum := oe.PropertyTaxAnnual/12 +
		oe.InsuranceAnnual/12 +
		oe.HOA +
		oe.Utilities +
		oe.LawnCare +
		oe.PestControl +
		oe.Trash +
		oe.Other +
		ManagementFee(oe, grossIncome)
	return StructuredSource(sum)
}

// RecurringExpenses sums the non-excluded recurring expense transactions,
// the derived-side counterpart of the structured fixed expenses. One-off
// transactions are intentionally left out: they only surface in the
// actual-side cash-flow track (see OneOffExpenses), so a single source feeds
// the fixed-expense figure and overlap double counting cannot occur.
func RecurringExpenses(ts Transactions) DataSource {
	recurring := ts.Recurring(TxExpense)
	if len(recurring) == 0 {
		return NoSource()
	}
	return DerivedSource(recurring.Total())
}

// OneOffExpenses sums the non-excluded non-recurring expense transactions.
func OneOffExpenses(ts Transactions) float64 {
	return ts.OneOff(TxExpense).Total()
}

// FixedMonthlyExpenses resolves the monthly fixed operating expenses between
// the structured record and the recurring expense transactions, under the
// same precedence rule as income.
func FixedMonthlyExpenses(oe *OperatingExpenses, ts Transactions, grossIncome float64) float64 {
	return Resolve(StructuredExpenses(oe, grossIncome), RecurringExpenses(ts)).Value
}

// CapexReserve derives the monthly capital-expenditure reserve as a rate
// applied to gross income. Returns 0 when income is non-positive or the rate
// is unset.
func CapexReserve(grossIncome, rate float64) float64 {
	if grossIncome <= 0 || rate <= 0 {
		return 0
	}
	return grossIncome * rate
}
