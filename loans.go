package rentfolio

import "math"

// MonthlyPrincipalInterest computes the standard fixed-rate amortization
// payment for a loan. The annual rate is a decimal (0.065 for 6.5%).
// A zero rate degenerates to straight principal/term; non-positive principal
// or term returns 0 rather than a division error.
func MonthlyPrincipalInterest(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(termMonths)
	}
	r := annualRate / 12
	pow := math.Pow(1+r, float64(termMonths))
	return principal * r * pow / (pow - 1)
}

// Payment returns the loan's total monthly payment: the known total when
// recorded, otherwise principal-and-interest plus escrow, each defaulting to
// zero when absent. P&I missing from the record is derived from balance,
// rate and term via standard amortization.
func (l Loan) Payment() float64 {
	if l.TotalMonthlyPayment != nil {
		return *l.TotalMonthlyPayment
	}
	var pi float64
	if l.MonthlyPI != nil {
		pi = *l.MonthlyPI
	} else {
		pi = MonthlyPrincipalInterest(l.Balance, l.InterestRate, l.TermMonths)
	}
	var escrow float64
	if l.MonthlyEscrow != nil {
		escrow = *l.MonthlyEscrow
	}
	return pi + escrow
}

// TotalDebtService sums the monthly payments of the active loans. Inactive
// loans never contribute.
func TotalDebtService(loans []Loan) float64 {
	var total float64
	for _, l := range loans {
		if l.Status != LoanActive {
			continue
		}
		total += l.Payment()
	}
	return total
}

// TotalLoanBalance sums the outstanding balances of the active loans.
func TotalLoanBalance(loans []Loan) float64 {
	var total float64
	for _, l := range loans {
		if l.Status != LoanActive {
			continue
		}
		total += l.Balance
	}
	return total
}

// PrimaryLoan returns the active loan flagged primary, falling back to the
// first active loan, or nil when no loan is active. Used for interest-rate
// reporting.
func PrimaryLoan(loans []Loan) *Loan {
	var first *Loan
	for i := range loans {
		l := &loans[i]
		if l.Status != LoanActive {
			continue
		}
		if l.Primary {
			return l
		}
		if first == nil {
			first = l
		}
	}
	return first
}

// Equity is the property's current value minus active loan balances. Without
// any value signal the metric has no meaning and reports no value.
func Equity(currentValue *float64, loans []Loan) Metric {
	if currentValue == nil {
		return NoValue(StatusIncomplete, "property value not set")
	}
	return Success(*currentValue - TotalLoanBalance(loans))
}

// LTV is the loan-to-value ratio as a decimal. Null-guarded: a missing or
// non-positive property value yields no value instead of Inf.
func LTV(currentValue *float64, loans []Loan) Metric {
	if currentValue == nil || *currentValue <= 0 {
		return NoValue(StatusIncomplete, "property value not set")
	}
	return Success(TotalLoanBalance(loans) / *currentValue)
}
