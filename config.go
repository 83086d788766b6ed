package rentfolio

// CostSegTier is one bucket of the cost-segregation estimate: any depreciable
// basis at or above MinBasis is assumed to have Rate of its value eligible
// for accelerated (5/7/15-year) treatment.
type CostSegTier struct {
	MinBasis float64
	Rate     float64
	Label    string
}

// TaxConfig gathers the tax-law and product constants the engine depends on,
// so a jurisdiction or tax-law change is a one-line edit rather than a hunt
// through formulas.
type TaxConfig struct {
	// ResidentialYears is the straight-line recovery period for residential
	// rental property (IRS: 27.5 years).
	ResidentialYears float64
	// CommercialYears is the recovery period for nonresidential property
	// (IRS: 39 years).
	CommercialYears float64
	// DefaultMarginalRate is the marginal tax rate assumed when the caller
	// does not supply one.
	DefaultMarginalRate float64
	// DefaultLandRatio is the share of total basis attributed to land when
	// no explicit land value is known. Land is never depreciable.
	DefaultLandRatio float64
	// CostSegTiers are the cost-segregation estimate buckets, highest
	// MinBasis first. These are product-chosen heuristics, not the result
	// of an engineering study.
	CostSegTiers []CostSegTier
}

// DefaultTaxConfig returns the engine's standard configuration: US federal
// recovery periods, a 24% marginal rate, a 20% land ratio, and the
// 35/30/25% cost-segregation buckets.
func DefaultTaxConfig() TaxConfig {
	return TaxConfig{
		ResidentialYears:    27.5,
		CommercialYears:     39,
		DefaultMarginalRate: 0.24,
		DefaultLandRatio:    0.20,
		CostSegTiers: []CostSegTier{
			{MinBasis: 500_000, Rate: 0.35, Label: "High Alpha"},
			{MinBasis: 200_000, Rate: 0.30, Label: "Medium"},
			{MinBasis: 0, Rate: 0.25, Label: "Low"},
		},
	}
}

// Engine evaluates the rentfolio calculations under a given TaxConfig. The
// zero-value-adjacent NewEngine(DefaultTaxConfig()) reproduces the standard
// behavior; a custom config changes only the named constants, never the
// formulas.
type Engine struct {
	Config TaxConfig
}

// NewEngine returns an engine using the given configuration.
func NewEngine(cfg TaxConfig) *Engine { return &Engine{Config: cfg} }

// DefaultEngine returns an engine using DefaultTaxConfig.
func DefaultEngine() *Engine { return NewEngine(DefaultTaxConfig()) }
