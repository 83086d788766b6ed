package rentfolio

import "testing"

func TestManagementFee(t *testing.T) {
	testCases := []struct {
		name        string
		oe          *OperatingExpenses
		grossIncome float64
		want        float64
	}{
		{
			name:        "flat fee wins even when a rate is also configured",
			oe:          &OperatingExpenses{ManagementFeeFlat: f(150), ManagementFeeRate: f(0.10)},
			grossIncome: 2000,
			want:        150,
		},
		{
			name:        "rate applied to gross income",
			oe:          &OperatingExpenses{ManagementFeeRate: f(0.08)},
			grossIncome: 2000,
			want:        160,
		},
		{
			name:        "flat fee configured as zero is respected",
			oe:          &OperatingExpenses{ManagementFeeFlat: f(0), ManagementFeeRate: f(0.08)},
			grossIncome: 2000,
			want:        0,
		},
		{
			name:        "neither configured",
			oe:          &OperatingExpenses{},
			grossIncome: 2000,
			want:        0,
		},
		{
			name:        "nil record",
			oe:          nil,
			grossIncome: 2000,
			want:        0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ManagementFee(tc.oe, tc.grossIncome); got != tc.want {
				t.Errorf("ManagementFee = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStructuredExpenses_AnnualFieldsDividedBy12(t *testing.T) {
	oe := &OperatingExpenses{
		PropertyTaxAnnual: 3600, // 300/mo
		InsuranceAnnual:   1200, // 100/mo
		HOA:               250,
		Utilities:         80,
	}
	got := StructuredExpenses(oe, 2000)
	if got.Kind != SourceStructured {
		t.Fatalf("Kind = %v, want structured", got.Kind)
	}
	inDelta(t, "StructuredExpenses", got.Value, 730, 0.001)
}

func TestFixedMonthlyExpenses_Resolution(t *testing.T) {
	oe := &OperatingExpenses{HOA: 300}
	recurring := Transactions{
		{Type: TxExpense, Amount: M(110.0, "USD"), Date: MustParseDate("2025-02-01"), Recurring: true},
		{Type: TxExpense, Amount: M(90.0, "USD"), Date: MustParseDate("2025-02-05"), Recurring: true},
		// one-off transactions never enter the fixed-expense figure
		NewTransaction(TxExpense, MustParseDate("2025-02-20"), 5000, "roof"),
	}

	if got := FixedMonthlyExpenses(oe, recurring, 2000); got != 300 {
		t.Errorf("structured should win: got %v, want 300", got)
	}
	if got := FixedMonthlyExpenses(nil, recurring, 2000); got != 200 {
		t.Errorf("derived fallback should sum recurring only: got %v, want 200", got)
	}
	if got := FixedMonthlyExpenses(nil, nil, 2000); got != 0 {
		t.Errorf("no data: got %v, want 0", got)
	}
}

func TestOneOffExpenses(t *testing.T) {
	ts := Transactions{
		NewTransaction(TxExpense, MustParseDate("2025-02-20"), 5000, "roof"),
		{Type: TxExpense, Amount: M(110.0, "USD"), Date: MustParseDate("2025-02-01"), Recurring: true},
		{Type: TxExpense, Amount: M(700.0, "USD"), Date: MustParseDate("2025-02-02"), Excluded: true},
	}
	if got := OneOffExpenses(ts); got != 5000 {
		t.Errorf("OneOffExpenses = %v, want 5000", got)
	}
}

func TestCapexReserve(t *testing.T) {
	testCases := []struct {
		name        string
		grossIncome float64
		rate        float64
		want        float64
	}{
		{"standard", 2000, 0.05, 100},
		{"zero income", 0, 0.05, 0},
		{"negative income", -100, 0.05, 0},
		{"unset rate", 2000, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CapexReserve(tc.grossIncome, tc.rate); got != tc.want {
				t.Errorf("CapexReserve = %v, want %v", got, tc.want)
			}
		})
	}
}
