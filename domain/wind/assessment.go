package wind

import (
	"windfit/domain/core"
)

// Estimation strategy names
const (
	StrategyMoment = "moment"
	StrategyMLE    = "mle"
)

// Assessment bundles everything derived from one sample: the fitted
// parameters, analytic summary, characteristic speeds, goodness-of-fit
// evidence and the energy profile. It is the unit of persistence and of
// API exchange; it holds no reference back to the sample data.
type Assessment struct {
	ID            core.ID              `json:"id"`
	Label         string               `json:"label"`
	N             int                  `json:"n"`
	Stats         SampleStats          `json:"stats"`
	Parameters    Parameters           `json:"parameters"`
	Summary       DistributionSummary  `json:"summary"`
	Speeds        CharacteristicSpeeds `json:"speeds"`
	Fit           ValidationReport     `json:"fit"`
	Energy        EnergyProfile        `json:"energy"`
	Strategy      string               `json:"strategy"`
	LowConfidence bool                 `json:"low_confidence"`
	CreatedAt     core.Timestamp       `json:"created_at"`
}
