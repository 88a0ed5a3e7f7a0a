package wind

import (
	"windfit/domain/core"
)

// LowConfidenceThreshold is the minimum sample size for stable parameter
// estimation. Smaller samples are still processed but flagged.
const LowConfidenceThreshold = 30

// Sample is a labeled, ordered sequence of wind-speed observations in m/s.
// The analysis engine treats it as read-only: no computation mutates it.
type Sample struct {
	Label  string    `json:"label"`
	Speeds []float64 `json:"speeds"`
}

// NewSample creates a sample for a named region or measurement site
func NewSample(label string, speeds []float64) Sample {
	return Sample{Label: label, Speeds: speeds}
}

// Len returns the number of observations
func (s Sample) Len() int {
	return len(s.Speeds)
}

// Validate checks the sample invariants: at least one observation and no
// negative speeds. Low sample size is not a validation failure.
func (s Sample) Validate() error {
	if len(s.Speeds) == 0 {
		return core.NewInsufficientDataError(0, 1)
	}
	for i, v := range s.Speeds {
		if v < 0 {
			return core.NewNegativeSpeedError(i, v)
		}
	}
	return nil
}

// LowConfidence reports whether the sample is below the recommended size
// for stable parameter estimation
func (s Sample) LowConfidence() bool {
	return len(s.Speeds) < LowConfidenceThreshold
}
