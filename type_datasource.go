package rentfolio

import "fmt"

// SourceKind identifies where an aggregated figure came from.
type SourceKind int

const (
	// SourceUnavailable means no data exists on this side.
	SourceUnavailable SourceKind = iota
	// SourceStructured means the figure was summed from structured record fields.
	SourceStructured
	// SourceDerived means the figure was summed from the transaction stream.
	SourceDerived
)

func (k SourceKind) String() string {
	switch k {
	case SourceUnavailable:
		return "unavailable"
	case SourceStructured:
		return "structured"
	case SourceDerived:
		return "derived"
	default:
		panic(fmt.Sprintf("unknown source kind %d", int(k)))
	}
}

// DataSource is an aggregated figure tagged with its origin. Aggregators
// produce one DataSource per side (structured and derived) and Resolve picks
// the authoritative one; the precedence rule lives in exactly one place.
type DataSource struct {
	Kind  SourceKind
	Value float64
}

// StructuredSource tags a figure summed from structured record fields.
func StructuredSource(value float64) DataSource {
	return DataSource{Kind: SourceStructured, Value: value}
}

// DerivedSource tags a figure summed from the transaction stream.
func DerivedSource(value float64) DataSource {
	return DataSource{Kind: SourceDerived, Value: value}
}

// NoSource reports that no data exists on this side.
func NoSource() DataSource { return DataSource{Kind: SourceUnavailable} }

// HasData reports whether this side had any data at all, letting callers
// distinguish "zero because truly zero" from "zero because nothing was there".
func (s DataSource) HasData() bool { return s.Kind != SourceUnavailable }

// Resolve picks the authoritative figure between a structured side and a
// transaction-derived side. Structured data wins unless it is absent or
// exactly zero; the derived side is the fallback so that a partially
// configured property does not report zero when real transaction history
// exists. The two sides are never added together.
func Resolve(structured, derived DataSource) DataSource {
	if structured.Kind == SourceStructured && structured.Value != 0 {
		return structured
	}
	if derived.Kind == SourceDerived && derived.Value != 0 {
		return derived
	}
	if structured.Kind == SourceStructured {
		return structured
	}
	return derived
}
