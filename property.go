package rentfolio

import (
	"github.com/rentfolio/rentfolio/date"
)

// Date is re-exported for convenience so callers of the engine do not need to
// import the date package for the common cases.
type Date = date.Date

// Today returns the current date.
func Today() Date { return date.Today() }

// ParseDate parses a local calendar date string like "2025-07-01".
func ParseDate(s string) (Date, error) { return date.Parse(s) }

// PropertyType classifies a property for depreciation schedule selection.
type PropertyType string

const (
	SingleFamily PropertyType = "single_family"
	Duplex       PropertyType = "duplex"
	Triplex      PropertyType = "triplex"
	Fourplex     PropertyType = "fourplex"
	Condo        PropertyType = "condo"
	Townhouse    PropertyType = "townhouse"
	// MultiFamily is 5+ units, depreciated on the commercial schedule.
	MultiFamily PropertyType = "multifamily"
	Commercial  PropertyType = "commercial"
)

// Residential reports whether the property depreciates on the residential
// 27.5-year schedule. An unknown or empty type defaults to residential.
func (t PropertyType) Residential() bool {
	switch t {
	case SingleFamily, Duplex, Triplex, Fourplex, Condo, Townhouse, "":
		return true
	case MultiFamily, Commercial:
		return false
	default:
		return true
	}
}

// RentalIncome holds the structured monthly income fields of a property.
// A missing field contributes zero. The engine does not reject negative
// inputs; range validation belongs to the boundary layer.
type RentalIncome struct {
	MonthlyRent          float64 `json:"monthlyRent,omitempty"`
	OtherIncome          float64 `json:"otherIncome,omitempty"`
	Parking              float64 `json:"parking,omitempty"`
	Laundry              float64 `json:"laundry,omitempty"`
	PetRent              float64 `json:"petRent,omitempty"`
	Storage              float64 `json:"storage,omitempty"`
	UtilityReimbursement float64 `json:"utilityReimbursement,omitempty"`
}

// OperatingExpenses holds the structured operating-expense fields.
// Annual fields are divided by 12 before aggregation; rate fields are
// decimals in [0,1] (0.05 = 5%).
//
// The management fee is either a flat monthly amount or a rate applied to
// gross income, never both; pointers distinguish "configured as zero" from
// "not configured".
type OperatingExpenses struct {
	PropertyTaxAnnual float64 `json:"propertyTaxAnnual,omitempty"`
	InsuranceAnnual   float64 `json:"insuranceAnnual,omitempty"`

	HOA         float64 `json:"hoa,omitempty"`
	Utilities   float64 `json:"utilities,omitempty"`
	LawnCare    float64 `json:"lawnCare,omitempty"`
	PestControl float64 `json:"pestControl,omitempty"`
	Trash       float64 `json:"trash,omitempty"`
	Other       float64 `json:"other,omitempty"`

	ManagementFeeFlat *float64 `json:"managementFeeFlat,omitempty"`
	ManagementFeeRate *float64 `json:"managementFeeRate,omitempty"`

	CapexRate float64 `json:"capexRate,omitempty"`
	// VacancyRate is carried for completeness but not applied to any formula.
	VacancyRate float64 `json:"vacancyRate,omitempty"`
}

// LoanStatus describes whether a loan participates in debt service.
type LoanStatus string

const (
	LoanActive  LoanStatus = "active"
	LoanPaidOff LoanStatus = "paid_off"
	LoanPending LoanStatus = "pending"
)

// Loan describes a single loan against a property. Only active loans
// contribute to debt service. At most one loan is primary per property, for
// interest-rate reporting purposes.
type Loan struct {
	Name    string     `json:"name,omitempty"`
	Status  LoanStatus `json:"status"`
	Primary bool       `json:"primary,omitempty"`

	Balance      float64 `json:"balance,omitempty"`
	InterestRate float64 `json:"interestRate,omitempty"` // annual rate as a decimal, e.g. 0.065
	TermMonths   int     `json:"termMonths,omitempty"`

	// MonthlyPI is the known principal-and-interest payment. When nil it is
	// derived from balance, rate and term via standard amortization.
	MonthlyPI           *float64 `json:"monthlyPI,omitempty"`
	MonthlyEscrow       *float64 `json:"monthlyEscrow,omitempty"`
	TotalMonthlyPayment *float64 `json:"totalMonthlyPayment,omitempty"`
}

// Property is the structured input record for a single property. The engine
// never creates, mutates, or destroys properties; it only reads and derives.
type Property struct {
	Address string       `json:"address,omitempty"`
	Type    PropertyType `json:"type,omitempty"`

	PurchasePrice float64 `json:"purchasePrice,omitempty"`
	ClosingCosts  float64 `json:"closingCosts,omitempty"`
	Improvements  float64 `json:"improvements,omitempty"`
	// LandValue is explicit when known; when nil it defaults to a fixed
	// ratio of the total basis (see TaxConfig.DefaultLandRatio).
	LandValue *float64 `json:"landValue,omitempty"`

	CurrentValue    *float64 `json:"currentValue,omitempty"`
	PurchaseDate    *Date    `json:"purchaseDate,omitempty"`
	PlacedInService *Date    `json:"placedInService,omitempty"`

	Income   *RentalIncome      `json:"income,omitempty"`
	Expenses *OperatingExpenses `json:"expenses,omitempty"`
	Loans    []Loan             `json:"loans,omitempty"`
}
