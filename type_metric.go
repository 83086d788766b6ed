package rentfolio

import (
	"encoding/json"
	"fmt"
)

// Status describes how much of the required data was available when a metric
// was computed. A metric is never simply right or wrong: a value derived from
// partial data must be visibly distinguishable from one derived from complete
// data, without blocking the computation itself.
type Status int

const (
	// StatusSuccess means the metric was computed from complete data.
	StatusSuccess Status = iota
	// StatusIncomplete means the metric was computed, but part of the
	// required structured data was never configured.
	StatusIncomplete
	// StatusWarning means a required input is zero or suspicious and the
	// metric is likely meaningless.
	StatusWarning
	// StatusError means the metric could not be computed at all.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusIncomplete:
		return "incomplete"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		panic(fmt.Sprintf("unknown status %d", int(s)))
	}
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "success":
		return StatusSuccess, nil
	case "incomplete":
		return StatusIncomplete, nil
	case "warning":
		return StatusWarning, nil
	case "error":
		return StatusError, nil
	default:
		return 0, fmt.Errorf("unknown status: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Status.
func (s Status) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// UnmarshalJSON implements the json.Unmarshaler interface for Status.
func (s *Status) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Metric is a computed numeric value tagged with a confidence status and an
// optional human readable message explaining why the value is degraded.
// When Valid is false the metric has no meaningful value and renderers are
// expected to show "N/A" instead of a number.
type Metric struct {
	Value   float64
	Valid   bool
	Status  Status
	Message string
}

// Success returns a Metric computed from complete data.
func Success(value float64) Metric {
	return Metric{Value: value, Valid: true, Status: StatusSuccess}
}

// Incomplete returns a Metric computed from partially configured data.
func Incomplete(value float64, message string) Metric {
	return Metric{Value: value, Valid: true, Status: StatusIncomplete, Message: message}
}

// Warning returns a Metric whose inputs make the value suspect.
func Warning(value float64, message string) Metric {
	return Metric{Value: value, Valid: true, Status: StatusWarning, Message: message}
}

// NoValue returns a Metric that could not be computed. The status explains
// whether the cause is missing configuration or a hard error.
func NoValue(status Status, message string) Metric {
	return Metric{Valid: false, Status: status, Message: message}
}

// MarshalJSON encodes the metric as {"value": <number>|null, "status": ..., "message": ...}.
func (m Metric) MarshalJSON() ([]byte, error) {
	type jmetric struct {
		Value   *float64 `json:"value"`
		Status  Status   `json:"status"`
		Message string   `json:"message,omitempty"`
	}
	j := jmetric{Status: m.Status, Message: m.Message}
	if m.Valid {
		v := m.Value
		j.Value = &v
	}
	return json.Marshal(j)
}
