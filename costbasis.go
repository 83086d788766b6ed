package rentfolio

// CostBasis breaks a property's acquisition cost into the components that
// matter for depreciation. Land is never depreciable, so the depreciable
// basis is the total basis minus land value, floored at zero.
type CostBasis struct {
	TotalBasis       float64 `json:"totalBasis"`
	LandValue        float64 `json:"landValue"`
	DepreciableBasis float64 `json:"depreciableBasis"`
	// LandValueAssumed is true when no explicit land value was known and the
	// configured default ratio was applied.
	LandValueAssumed bool `json:"landValueAssumed,omitempty"`
}

// CostBasis derives the cost basis components from purchase price, closing
// costs and initial improvements. When landValue is nil the configured
// default ratio of the total basis is attributed to land.
func (e *Engine) CostBasis(purchasePrice, closingCosts, improvements float64, landValue *float64) CostBasis {
	total := purchasePrice + closingCosts + improvements
	cb := CostBasis{TotalBasis: total}
	if landValue != nil {
		cb.LandValue = *landValue
	} else {
		cb.LandValue = total * e.Config.DefaultLandRatio
		cb.LandValueAssumed = true
	}
	cb.DepreciableBasis = total - cb.LandValue
	if cb.DepreciableBasis < 0 {
		cb.DepreciableBasis = 0
	}
	return cb
}

// PropertyCostBasis derives the cost basis of a property record.
func (e *Engine) PropertyCostBasis(p *Property) CostBasis {
	return e.CostBasis(p.PurchasePrice, p.ClosingCosts, p.Improvements, p.LandValue)
}
