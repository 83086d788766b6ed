package rentfolio

import "testing"

func TestMonthlyPrincipalInterest(t *testing.T) {
	testCases := []struct {
		name       string
		principal  float64
		rate       float64
		termMonths int
		want       float64
		delta      float64
	}{
		// 30-year fixed at 6.5%: the classic reference figure
		{"standard 30y mortgage", 200_000, 0.065, 360, 1264.14, 0.01},
		{"15-year at 5%", 150_000, 0.05, 180, 1186.19, 0.01},
		// degenerate inputs
		{"zero rate degenerates to principal over term", 120_000, 0, 360, 333.333, 0.001},
		{"zero principal", 0, 0.065, 360, 0, 0},
		{"negative principal", -5, 0.065, 360, 0, 0},
		{"zero term", 200_000, 0.065, 0, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlyPrincipalInterest(tc.principal, tc.rate, tc.termMonths)
			inDelta(t, "MonthlyPrincipalInterest", got, tc.want, tc.delta)
		})
	}
}

func TestTotalDebtService(t *testing.T) {
	loans := []Loan{
		{Status: LoanActive, TotalMonthlyPayment: f(1500)},
		{Status: LoanActive, MonthlyPI: f(400), MonthlyEscrow: f(100)},
		{Status: LoanPaidOff, TotalMonthlyPayment: f(900)}, // inactive, ignored
		{Status: LoanActive, MonthlyPI: f(250)},            // escrow absent defaults to 0
	}
	inDelta(t, "TotalDebtService", TotalDebtService(loans), 2250, 0.001)
}

func TestLoanPayment_DerivesPI(t *testing.T) {
	l := Loan{Status: LoanActive, Balance: 200_000, InterestRate: 0.065, TermMonths: 360}
	inDelta(t, "Payment", l.Payment(), 1264.14, 0.01)
}

func TestPrimaryLoan(t *testing.T) {
	loans := []Loan{
		{Name: "heloc", Status: LoanActive},
		{Name: "mortgage", Status: LoanActive, Primary: true},
		{Name: "old", Status: LoanPaidOff, Primary: true},
	}
	if got := PrimaryLoan(loans); got == nil || got.Name != "mortgage" {
		t.Errorf("PrimaryLoan = %v, want the active primary", got)
	}

	noPrimary := []Loan{
		{Name: "old", Status: LoanPaidOff},
		{Name: "first-active", Status: LoanActive},
	}
	if got := PrimaryLoan(noPrimary); got == nil || got.Name != "first-active" {
		t.Errorf("PrimaryLoan = %v, want the first active", got)
	}

	if got := PrimaryLoan(nil); got != nil {
		t.Errorf("PrimaryLoan(nil) = %v, want nil", got)
	}
}

func TestEquityAndLTV(t *testing.T) {
	loans := []Loan{
		{Status: LoanActive, Balance: 160_000},
		{Status: LoanPaidOff, Balance: 40_000},
	}

	equity := Equity(f(250_000), loans)
	if !equity.Valid || equity.Value != 90_000 || equity.Status != StatusSuccess {
		t.Errorf("Equity = %+v, want 90000 success", equity)
	}

	ltv := LTV(f(250_000), loans)
	if !ltv.Valid {
		t.Fatalf("LTV should have a value")
	}
	inDelta(t, "LTV", ltv.Value, 0.64, 0.0001)

	// null propagation without a value signal
	if m := Equity(nil, loans); m.Valid || m.Status != StatusIncomplete {
		t.Errorf("Equity without value = %+v, want no value, incomplete", m)
	}
	if m := LTV(f(0), loans); m.Valid {
		t.Errorf("LTV with zero value = %+v, want no value (never Inf)", m)
	}
}
