package rentfolio

// TaxShield is the dollar value of the depreciation deduction at a marginal
// tax rate.
type TaxShield struct {
	AnnualDepreciation float64 `json:"annualDepreciation"`
	MarginalRate       float64 `json:"marginalRate"`
	Annual             float64 `json:"annual"`      // annual tax savings
	Monthly            float64 `json:"monthly"`     // annual / 12
	TotalToDate        float64 `json:"totalToDate"` // accumulated depreciation x rate
}

// TaxShield values the depreciation deduction. A nil marginal rate uses the
// configured default.
func (e *Engine) TaxShield(annualDepreciation, accumulatedDepreciation float64, marginalRate *float64) TaxShield {
	rate := e.Config.DefaultMarginalRate
	if marginalRate != nil {
		rate = *marginalRate
	}
	annual := annualDepreciation * rate
	return TaxShield{
		AnnualDepreciation: annualDepreciation,
		MarginalRate:       rate,
		Annual:             annual,
		Monthly:            annual / 12,
		TotalToDate:        accumulatedDepreciation * rate,
	}
}

// PaperLoss models depreciation as a non-cash deduction shielding otherwise
// taxable cash flow. TaxableIncome may go negative, a real "paper loss".
type PaperLoss struct {
	AnnualCashFlow     float64 `json:"annualCashFlow"`
	AnnualDepreciation float64 `json:"annualDepreciation"`
	TaxableIncome      float64 `json:"taxableIncome"`     // cash flow minus depreciation
	TaxSavings         float64 `json:"taxSavings"`        // depreciation x marginal rate
	EffectiveCashFlow  float64 `json:"effectiveCashFlow"` // cash flow plus tax savings
}

// PaperLossComparison compares pre-tax and depreciation-shielded cash flow.
// A nil marginal rate uses the configured default.
func (e *Engine) PaperLossComparison(annualCashFlow, annualDepreciation float64, marginalRate *float64) PaperLoss {
	rate := e.Config.DefaultMarginalRate
	if marginalRate != nil {
		rate = *marginalRate
	}
	savings := annualDepreciation * rate
	return PaperLoss{
		AnnualCashFlow:     annualCashFlow,
		AnnualDepreciation: annualDepreciation,
		TaxableIncome:      annualCashFlow - annualDepreciation,
		TaxSavings:         savings,
		EffectiveCashFlow:  annualCashFlow + savings,
	}
}

// CostSegEstimate is a bucketed estimate of the basis eligible for
// accelerated depreciation through a cost-segregation study.
type CostSegEstimate struct {
	DepreciableBasis float64 `json:"depreciableBasis"`
	Rate             float64 `json:"rate"`
	Label            string  `json:"label"`
	EligibleAmount   float64 `json:"eligibleAmount"`
}

// CostSegPotential estimates how much of a depreciable basis could be
// reclassified into shorter (5/7/15-year) lives. This is a product
// heuristic, not a computed engineering study: the configured tiers are
// placeholder percentages chosen for the dashboard, applied as-is.
func (e *Engine) CostSegPotential(depreciableBasis float64) CostSegEstimate {
	for _, tier := range e.Config.CostSegTiers {
		if depreciableBasis >= tier.MinBasis {
			return CostSegEstimate{
				DepreciableBasis: depreciableBasis,
				Rate:             tier.Rate,
				Label:            tier.Label,
				EligibleAmount:   depreciableBasis * tier.Rate,
			}
		}
	}
	return CostSegEstimate{DepreciableBasis: depreciableBasis}
}
