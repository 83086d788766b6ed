package rentfolio

import (
	"math"
	"time"
)

// This file implements IRS straight-line depreciation with the mid-month
// convention: the first tax year gets a prorated share of the annual amount
// based on the calendar month the property was placed in service, and the
// final partial year takes whatever basis remains, so the schedule always
// depreciates the full basis.

// DepreciationYears returns the recovery period for a property type:
// residential types depreciate over the residential period, everything else
// over the commercial one. An unknown or empty type defaults to residential.
func (e *Engine) DepreciationYears(t PropertyType) float64 {
	if t.Residential() {
		return e.Config.ResidentialYears
	}
	return e.Config.CommercialYears
}

// FirstYearFraction returns the mid-month fraction of a full year's
// depreciation allowed in the first tax year for a property placed in
// service in the given calendar month: (12.5 - m) / 12, so January yields
// 11.5/12 and December 0.5/12.
func FirstYearFraction(month time.Month) float64 {
	return (12.5 - float64(month)) / 12
}

// LastYearFraction is the complement of FirstYearFraction; together they sum
// to exactly one full year.
func LastYearFraction(month time.Month) float64 {
	return 1 - FirstYearFraction(month)
}

// YearDepreciation returns the depreciation allowed in a single tax year of
// the schedule. yearNumber counts from 1; accumulatedBefore is the total
// depreciation taken in earlier years. Every branch clamps to the remaining
// basis, so floating-point drift can never depreciate more than the basis
// and the final year naturally takes whatever is left. On whole-year
// recovery periods that final amount equals annual x LastYearFraction
// exactly, so the two partial years sum to one full year.
func YearDepreciation(basis, years float64, yearNumber int, placedInService time.Month, accumulatedBefore float64) float64 {
	remaining := basis - accumulatedBefore
	if remaining <= 0 {
		return 0
	}
	annual := basis / years
	if yearNumber == 1 {
		return math.Min(annual*FirstYearFraction(placedInService), remaining)
	}
	return math.Min(annual, remaining)
}

// ScheduleItem is one row of a depreciation schedule: one tax year.
type ScheduleItem struct {
	Year           int     `json:"year"`           // 1-based year number
	Months         float64 `json:"months"`         // months depreciated in the year
	BeginningBasis float64 `json:"beginningBasis"` // basis remaining at the start of the year
	Depreciation   float64 `json:"depreciation"`   // depreciation taken this year
	Accumulated    float64 `json:"accumulated"`    // total depreciation through this year
	RemainingBasis float64 `json:"remainingBasis"` // basis remaining at the end of the year
}

// GenerateSchedule produces the full year-by-year depreciation schedule for
// a depreciable basis placed in service on the given date. The sum of the
// Depreciation column equals the basis within rounding tolerance, and the
// RemainingBasis column is non-increasing and ends at ~0. Returns nil when
// the basis is non-positive.
func GenerateSchedule(basis, years float64, placedInService Date) []ScheduleItem {
	if basis <= 0 || years <= 0 {
		return nil
	}
	month := placedInService.Month()
	annual := basis / years
	schedule := make([]ScheduleItem, 0, int(math.Ceil(years))+1)

	var accumulated float64
	for year := 1; ; year++ {
		amount := YearDepreciation(basis, years, year, month, accumulated)
		if amount <= 0 {
			break // fully depreciated
		}
		item := ScheduleItem{
			Year:           year,
			Months:         12 * amount / annual,
			BeginningBasis: basis - accumulated,
		}
		accumulated += amount
		item.Depreciation = amount
		item.Accumulated = accumulated
		item.RemainingBasis = basis - accumulated
		schedule = append(schedule, item)
	}
	return schedule
}

// DepreciationState summarizes where a property stands in its depreciation
// schedule as of a given date.
type DepreciationState struct {
	Annual          float64 `json:"annual"`          // full-year depreciation amount
	Accumulated     float64 `json:"accumulated"`     // depreciation taken through asOf
	RemainingBasis  float64 `json:"remainingBasis"`  // basis not yet depreciated
	YearsCompleted  float64 `json:"yearsCompleted"`  // schedule-years worth of depreciation taken
	YearsRemaining  float64 `json:"yearsRemaining"`  // schedule-years left
	Years           float64 `json:"years"`           // total recovery period
	PlacedInService Date    `json:"placedInService"` // start of the schedule
}

// DepreciationSummary walks the schedule up to asOf, counting fully elapsed
// calendar years in full and prorating the current calendar year by the
// months elapsed. Returns nil when the basis is non-positive or the
// placed-in-service date is unknown: depreciation state is meaningless
// without both.
func DepreciationSummary(basis, years float64, placedInService *Date, asOf Date) *DepreciationState {
	if basis <= 0 || placedInService == nil || placedInService.IsZero() {
		return nil
	}
	schedule := GenerateSchedule(basis, years, *placedInService)
	if schedule == nil {
		return nil
	}

	annual := basis / years
	state := &DepreciationState{
		Annual:          annual,
		RemainingBasis:  basis,
		Years:           years,
		YearsRemaining:  years,
		PlacedInService: *placedInService,
	}
	if asOf.Before(*placedInService) {
		return state // not yet in service, nothing accumulated
	}

	var accumulated float64
	startYear := placedInService.Year()
	for _, item := range schedule {
		calendarYear := startYear + item.Year - 1
		switch {
		case calendarYear < asOf.Year():
			accumulated += item.Depreciation
		case calendarYear == asOf.Year():
			monthsElapsed := float64(asOf.Month())
			accumulated += item.Depreciation * math.Min(1, monthsElapsed/12)
		default:
			// future years take nothing
		}
	}

	state.Accumulated = accumulated
	state.RemainingBasis = basis - accumulated
	state.YearsCompleted = accumulated / annual
	state.YearsRemaining = math.Max(0, years-state.YearsCompleted)
	return state
}

// UnclaimedDepreciation approximates the depreciation a property has earned
// since purchase, using an average month length of 30.44 days rather than
// calendar-month counting. It is intentionally simpler and less precise than
// the full schedule and exists for callers that only know a purchase date.
// Returns ok=false when either input is missing, and 0 when the purchase
// date is in the future.
func UnclaimedDepreciation(purchaseDate *Date, basis, years float64, asOf Date) (value float64, ok bool) {
	if purchaseDate == nil || purchaseDate.IsZero() || basis <= 0 || years <= 0 {
		return 0, false
	}
	daysOwned := asOf.DaysSince(*purchaseDate)
	if daysOwned < 0 {
		return 0, true
	}
	monthsOwned := float64(daysOwned) / 30.44
	annual := basis / years
	unclaimed := annual * monthsOwned / 12
	return math.Min(unclaimed, basis), true
}
