package rentfolio

// StructuredIncome sums the structured monthly income fields of a rental
// income record. A nil record reports SourceUnavailable; missing fields
// contribute zero.
func StructuredIncome(ri *RentalIncome) DataSource {
	if ri == nil {
		return NoSource()
	}
	sum := ri.MonthlyRent +
		ri.OtherIncome +
		ri.Parking +
		ri.Laundry +
		ri.PetRent +
		ri.Storage +
		ri.UtilityReimbursement
	return StructuredSource(sum)
}

// TransactionIncome sums the non-excluded income transactions. The caller
// scopes the slice to the reporting period; the engine does not window it.
func TransactionIncome(ts Transactions) DataSource {
	income := ts.Income()
	if len(income) == 0 {
		return NoSource()
	}
	return DerivedSource(income.Total())
}

// GrossIncome returns the gross monthly income figure for a property,
// resolving between the structured record and the transaction stream.
// The two sources are never added together: structured data wins unless it
// is absent or exactly zero, in which case real transaction history is used
// so that a partially configured property does not report zero income.
func GrossIncome(ri *RentalIncome, ts Transactions) float64 {
	return Resolve(StructuredIncome(ri), TransactionIncome(ts)).Value
}
