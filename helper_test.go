package rentfolio

import (
	"math"
	"testing"
)

// inDelta fails the test when got is not within delta of want.
func inDelta(t *testing.T, name string, got, want, delta float64) {
	t.Helper()
	if math.Abs(got-want) > delta {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, delta)
	}
}

func f(v float64) *float64 { return &v }

func d(s string) *Date {
	on := MustParseDate(s)
	return &on
}

// MustParseDate is a test convenience around ParseDate.
func MustParseDate(s string) Date {
	on, err := ParseDate(s)
	if err != nil {
		panic(err.Error())
	}
	return on
}
