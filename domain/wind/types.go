package wind

import (
	"windfit/domain/core"
)

// Parameters holds the two-parameter Weibull fit: shape k and scale c (m/s).
// Both are strictly positive; the invalid state is never constructed.
type Parameters struct {
	K float64 `json:"k"`
	C float64 `json:"c"`
}

// NewParameters validates and constructs a Weibull parameter pair
func NewParameters(k, c float64) (Parameters, error) {
	if !(k > 0) || !(c > 0) {
		return Parameters{}, core.NewInvalidParameterError(k, c)
	}
	return Parameters{K: k, C: c}, nil
}

// SampleStats holds the descriptive statistics of a raw sample, computed
// with the sample (n-1) variance convention throughout.
type SampleStats struct {
	N             int     `json:"n"`
	Mean          float64 `json:"mean"`
	Variance      float64 `json:"variance"`
	StdDev        float64 `json:"std_dev"`
	LowConfidence bool    `json:"low_confidence"`
}

// DistributionSummary holds the analytic moments of a fitted distribution.
// Immutable once created; fully determined by its parameters.
type DistributionSummary struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Mode     float64 `json:"mode"`
	Median   float64 `json:"median"`
}

// CharacteristicSpeeds holds the physically meaningful speeds derived from
// a Weibull fit.
type CharacteristicSpeeds struct {
	// MostProbable is the density peak v_mp = c*((k-1)/k)^(1/k), 0 when k <= 1
	MostProbable float64 `json:"most_probable"`
	// MaxEnergy is v_MAXE = c*((k+2)/k)^(1/k), the speed contributing most
	// to power output given power ~ v^3
	MaxEnergy float64 `json:"max_energy"`
	// Median is c*(ln 2)^(1/k)
	Median float64 `json:"median"`
	// TheoreticalMean is c*Gamma(1+1/k)
	TheoreticalMean float64 `json:"theoretical_mean"`
}

// PoorFitThreshold flags a fit whose histogram R-squared falls below it.
// Flagged assessments are still returned; callers decide acceptability.
const PoorFitThreshold = 0.8

// ValidationReport holds goodness-of-fit evidence for one (sample, fit)
// pair. Produced once, never mutated.
type ValidationReport struct {
	KolmogorovSmirnov float64 `json:"kolmogorov_smirnov"`
	KSPValue          float64 `json:"ks_p_value"`
	AndersonDarling   float64 `json:"anderson_darling"`
	RSquared          float64 `json:"r_squared"`
	RMSE              float64 `json:"rmse"`
	MAE               float64 `json:"mae"`
	// CoherenceDelta is |analytic mean - sample mean| / sample mean. Near
	// zero under moment matching; a large value signals an estimator defect.
	CoherenceDelta float64 `json:"coherence_delta"`
	PoorFit        bool    `json:"poor_fit"`
}

// EnergyProfile holds wind-power density figures (W/m^2) for a fitted site
type EnergyProfile struct {
	PowerAtMostProbable float64 `json:"power_at_most_probable"`
	PowerAtMaxEnergy    float64 `json:"power_at_max_energy"`
	MeanPowerDensity    float64 `json:"mean_power_density"`
	CapacityFactor      float64 `json:"capacity_factor"`
	EquivalentHours     float64 `json:"equivalent_hours"`
	ResourceClass       string  `json:"resource_class"`
}
