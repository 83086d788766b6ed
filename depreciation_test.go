package rentfolio

import (
	"math"
	"testing"
	"time"
)

func TestFirstYearFraction_Complementarity(t *testing.T) {
	// the two partial years must always sum to exactly one full year
	for m := time.January; m <= time.December; m++ {
		sum := FirstYearFraction(m) + LastYearFraction(m)
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("month %v: first+last = %v, want 1", m, sum)
		}
	}
	inDelta(t, "January", FirstYearFraction(time.January), 11.5/12, 1e-12)
	inDelta(t, "December", FirstYearFraction(time.December), 0.5/12, 1e-12)
}

func TestGenerateSchedule_ResidentialJanuary(t *testing.T) {
	// basis $275,000 over 27.5 years placed in service January 2024:
	// annual $10,000, first year 11.5/12 of it.
	schedule := GenerateSchedule(275_000, 27.5, MustParseDate("2024-01-15"))
	if len(schedule) == 0 {
		t.Fatal("empty schedule")
	}
	inDelta(t, "first year", schedule[0].Depreciation, 9583.33, 0.01)
	inDelta(t, "first year months", schedule[0].Months, 11.5, 0.001)
	if schedule[0].Year != 1 {
		t.Errorf("first row year = %d, want 1", schedule[0].Year)
	}
}

func TestGenerateSchedule_CommercialJuly(t *testing.T) {
	// basis $390,000 over 39 years placed in service July: annual $10,000,
	// first year 5.5/12 of it.
	schedule := GenerateSchedule(390_000, 39, MustParseDate("2024-07-01"))
	if len(schedule) == 0 {
		t.Fatal("empty schedule")
	}
	inDelta(t, "first year", schedule[0].Depreciation, 10_000*5.5/12, 0.01)
}

func TestGenerateSchedule_TotalInvariant(t *testing.T) {
	// the schedule must depreciate exactly the basis, within $1
	testCases := []struct {
		name  string
		basis float64
		years float64
		date  string
	}{
		{"residential january", 275_000, 27.5, "2024-01-15"},
		{"residential december", 275_000, 27.5, "2024-12-01"},
		{"residential june", 123_456.78, 27.5, "2020-06-10"},
		{"commercial july", 390_000, 39, "2024-07-01"},
		{"commercial march", 1_000_000, 39, "2019-03-31"},
		{"small basis", 999.99, 27.5, "2024-05-01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schedule := GenerateSchedule(tc.basis, tc.years, MustParseDate(tc.date))
			var total float64
			for _, item := range schedule {
				total += item.Depreciation
			}
			inDelta(t, "total depreciation", total, tc.basis, 1)
			inDelta(t, "final remaining basis", schedule[len(schedule)-1].RemainingBasis, 0, 1)
		})
	}
}

func TestGenerateSchedule_MonotonicRemainingBasis(t *testing.T) {
	schedule := GenerateSchedule(275_000, 27.5, MustParseDate("2024-03-15"))
	prev := math.Inf(1)
	for _, item := range schedule {
		if item.RemainingBasis > prev {
			t.Fatalf("year %d: remaining basis %v increased from %v", item.Year, item.RemainingBasis, prev)
		}
		prev = item.RemainingBasis
	}
}

func TestGenerateSchedule_SpansCeilYears(t *testing.T) {
	// a 27.5-year schedule runs 28 tax years, a 39-year one runs 40
	if got := len(GenerateSchedule(275_000, 27.5, MustParseDate("2024-06-01"))); got != 28 {
		t.Errorf("residential schedule has %d rows, want 28", got)
	}
	if got := len(GenerateSchedule(390_000, 39, MustParseDate("2024-06-01"))); got != 40 {
		t.Errorf("commercial schedule has %d rows, want 40", got)
	}
}

func TestGenerateSchedule_DegenerateInputs(t *testing.T) {
	if got := GenerateSchedule(0, 27.5, MustParseDate("2024-01-01")); got != nil {
		t.Errorf("zero basis: got %d rows, want none", len(got))
	}
	if got := GenerateSchedule(-100, 27.5, MustParseDate("2024-01-01")); got != nil {
		t.Errorf("negative basis: got %d rows, want none", len(got))
	}
}

func TestYearDepreciation_ExhaustedSchedule(t *testing.T) {
	if got := YearDepreciation(100_000, 27.5, 12, time.January, 100_000); got != 0 {
		t.Errorf("exhausted schedule returned %v, want 0", got)
	}
	if got := YearDepreciation(100_000, 27.5, 12, time.January, 100_001); got != 0 {
		t.Errorf("over-depreciated schedule returned %v, want 0", got)
	}
}

func TestDepreciationYears(t *testing.T) {
	e := DefaultEngine()
	testCases := []struct {
		typ  PropertyType
		want float64
	}{
		{SingleFamily, 27.5},
		{Duplex, 27.5},
		{Triplex, 27.5},
		{Fourplex, 27.5},
		{Condo, 27.5},
		{Townhouse, 27.5},
		{MultiFamily, 39},
		{Commercial, 39},
		{"", 27.5},          // unknown defaults to residential
		{"houseboat", 27.5}, // unrecognized defaults to residential
	}
	for _, tc := range testCases {
		if got := e.DepreciationYears(tc.typ); got != tc.want {
			t.Errorf("DepreciationYears(%q) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

func TestDepreciationSummary(t *testing.T) {
	// placed in service January 2024, checked end of June 2026:
	// 2024 full first year 9583.33, 2025 full 10000, 2026 prorated 6/12.
	state := DepreciationSummary(275_000, 27.5, d("2024-01-15"), MustParseDate("2026-06-30"))
	if state == nil {
		t.Fatal("expected a summary")
	}
	inDelta(t, "Annual", state.Annual, 10_000, 0.01)
	inDelta(t, "Accumulated", state.Accumulated, 9583.33+10_000+5000, 0.01)
	inDelta(t, "RemainingBasis", state.RemainingBasis, 275_000-24_583.33, 0.01)
	inDelta(t, "YearsCompleted", state.YearsCompleted, 2.458, 0.001)
	inDelta(t, "YearsRemaining", state.YearsRemaining, 27.5-2.458, 0.001)
}

func TestDepreciationSummary_NullPropagation(t *testing.T) {
	if got := DepreciationSummary(0, 27.5, d("2024-01-15"), Today()); got != nil {
		t.Error("zero basis should yield no summary")
	}
	if got := DepreciationSummary(275_000, 27.5, nil, Today()); got != nil {
		t.Error("missing in-service date should yield no summary")
	}
}

func TestDepreciationSummary_NotYetInService(t *testing.T) {
	state := DepreciationSummary(275_000, 27.5, d("2030-01-01"), MustParseDate("2025-06-01"))
	if state == nil {
		t.Fatal("expected a summary")
	}
	if state.Accumulated != 0 {
		t.Errorf("Accumulated = %v, want 0 before in-service date", state.Accumulated)
	}
	inDelta(t, "YearsRemaining", state.YearsRemaining, 27.5, 0.001)
}

func TestUnclaimedDepreciation(t *testing.T) {
	// owned exactly one average-month: annual/12 worth of depreciation
	asOf := MustParseDate("2024-01-31")

	value, ok := UnclaimedDepreciation(d("2023-01-31"), 275_000, 27.5, asOf)
	if !ok {
		t.Fatal("expected a value")
	}
	// 365 days / 30.44 = 11.99 months of a 10000 annual amount
	inDelta(t, "one year owned", value, 10_000*(365/30.44)/12, 0.01)

	if _, ok := UnclaimedDepreciation(nil, 275_000, 27.5, asOf); ok {
		t.Error("missing purchase date should yield no value")
	}
	if _, ok := UnclaimedDepreciation(d("2023-01-31"), 0, 27.5, asOf); ok {
		t.Error("missing basis should yield no value")
	}

	value, ok = UnclaimedDepreciation(d("2030-01-01"), 275_000, 27.5, asOf)
	if !ok || value != 0 {
		t.Errorf("future purchase = (%v, %v), want (0, true)", value, ok)
	}
}
