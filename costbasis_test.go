package rentfolio

import "testing"

func TestCostBasis(t *testing.T) {
	e := DefaultEngine()

	t.Run("explicit land value", func(t *testing.T) {
		cb := e.CostBasis(300_000, 8000, 12_000, f(45_000))
		inDelta(t, "TotalBasis", cb.TotalBasis, 320_000, 0.01)
		inDelta(t, "LandValue", cb.LandValue, 45_000, 0.01)
		inDelta(t, "DepreciableBasis", cb.DepreciableBasis, 275_000, 0.01)
		if cb.LandValueAssumed {
			t.Error("LandValueAssumed set despite an explicit land value")
		}
	})

	t.Run("assumed land ratio", func(t *testing.T) {
		cb := e.CostBasis(300_000, 0, 0, nil)
		inDelta(t, "LandValue", cb.LandValue, 60_000, 0.01) // 20% of total
		inDelta(t, "DepreciableBasis", cb.DepreciableBasis, 240_000, 0.01)
		if !cb.LandValueAssumed {
			t.Error("LandValueAssumed not set when the default ratio applies")
		}
	})

	t.Run("land exceeding basis floors at zero", func(t *testing.T) {
		cb := e.CostBasis(100_000, 0, 0, f(150_000))
		inDelta(t, "DepreciableBasis", cb.DepreciableBasis, 0, 1e-12)
	})
}

func TestPropertyCostBasis(t *testing.T) {
	e := DefaultEngine()
	p := &Property{
		Address:       "12 Elm St",
		PurchasePrice: 250_000,
		ClosingCosts:  5000,
		Improvements:  20_000,
	}
	cb := e.PropertyCostBasis(p)
	inDelta(t, "TotalBasis", cb.TotalBasis, 275_000, 0.01)
	inDelta(t, "DepreciableBasis", cb.DepreciableBasis, 220_000, 0.01)
}
