package analysis

import (
	"math"

	"windfit/domain/core"
	"windfit/domain/wind"
)

// Estimator derives Weibull parameters from a sample and its statistics
type Estimator interface {
	Name() string
	Estimate(s wind.Sample, st wind.SampleStats) (wind.Parameters, error)
}

// momentShapeExponent is the empirical exponent of the wind-speed moment
// approximation k = (sigma/mean)^(-1.09)
const momentShapeExponent = -1.09

// MomentEstimator implements the closed-form empirical approximation
//
//	k = (sigma/mean)^(-1.09)
//	c = mean / Gamma(1 + 1/k)
//
// The scale equation inverts the analytic mean, so the fitted mean matches
// the sample mean by construction.
type MomentEstimator struct{}

// NewMomentEstimator creates the default closed-form estimator
func NewMomentEstimator() MomentEstimator {
	return MomentEstimator{}
}

func (MomentEstimator) Name() string { return wind.StrategyMoment }

// Estimate computes (k, c) from the sample mean and standard deviation
func (MomentEstimator) Estimate(_ wind.Sample, st wind.SampleStats) (wind.Parameters, error) {
	if st.N == 0 {
		return wind.Parameters{}, core.NewInsufficientDataError(0, 1)
	}
	if st.Mean <= 0 {
		return wind.Parameters{}, core.NewDegenerateSampleError("zero mean speed, shape is undefined")
	}
	if st.StdDev <= 0 {
		return wind.Parameters{}, core.NewDegenerateSampleError("zero spread, shape is unbounded")
	}

	k := math.Pow(st.StdDev/st.Mean, momentShapeExponent)
	c := st.Mean / math.Gamma(1+1/k)
	return wind.NewParameters(k, c)
}

// Default bounds for the maximum-likelihood refinement
const (
	DefaultMLETolerance     = 1e-6
	DefaultMLEMaxIterations = 100
)

// MLEEstimator refines the shape parameter by fixed-point iteration on the
// Weibull log-likelihood,
//
//	1/k = sum(v^k ln v)/sum(v^k) - mean(ln v)
//
// then recovers the scale as c = (mean of v^k)^(1/k). Exceeding the
// iteration bound fails rather than returning a stale estimate.
type MLEEstimator struct {
	Tolerance     float64
	MaxIterations int
}

// NewMLEEstimator creates a maximum-likelihood estimator. Non-positive
// tolerance or iteration bound fall back to the package defaults.
func NewMLEEstimator(tolerance float64, maxIterations int) *MLEEstimator {
	if tolerance <= 0 {
		tolerance = DefaultMLETolerance
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMLEMaxIterations
	}
	return &MLEEstimator{Tolerance: tolerance, MaxIterations: maxIterations}
}

func (*MLEEstimator) Name() string { return wind.StrategyMLE }

// Estimate iterates on k until the relative change drops below Tolerance
func (e *MLEEstimator) Estimate(s wind.Sample, st wind.SampleStats) (wind.Parameters, error) {
	if s.Len() == 0 {
		return wind.Parameters{}, core.NewInsufficientDataError(0, 1)
	}
	if err := s.Validate(); err != nil {
		return wind.Parameters{}, err
	}
	if st.Mean <= 0 {
		return wind.Parameters{}, core.NewDegenerateSampleError("zero mean speed, likelihood is undefined")
	}

	// Zero observations contribute nothing to the log terms
	// (lim v->0 of v^k ln v = 0 for k > 0) and are excluded here.
	positive := make([]float64, 0, s.Len())
	for _, v := range s.Speeds {
		if v > 0 {
			positive = append(positive, v)
		}
	}
	if len(positive) == 0 {
		return wind.Parameters{}, core.NewDegenerateSampleError("all observations are zero")
	}

	meanLog := 0.0
	for _, v := range positive {
		meanLog += math.Log(v)
	}
	meanLog /= float64(len(positive))

	// Seed with the moment approximation when the sample has spread,
	// otherwise with the Rayleigh shape.
	k := 2.0
	if st.StdDev > 0 && st.Mean > 0 {
		k = math.Pow(st.StdDev/st.Mean, momentShapeExponent)
	}

	converged := false
	for i := 0; i < e.MaxIterations; i++ {
		var sumPow, sumPowLog float64
		for _, v := range positive {
			p := math.Pow(v, k)
			sumPow += p
			sumPowLog += p * math.Log(v)
		}

		next := 1.0 / (sumPowLog/sumPow - meanLog)
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= 0 {
			return wind.Parameters{}, core.NewConvergenceError(i+1, k)
		}
		if math.Abs(next-k)/k < e.Tolerance {
			k = next
			converged = true
			break
		}
		k = next
	}
	if !converged {
		return wind.Parameters{}, core.NewConvergenceError(e.MaxIterations, k)
	}

	// c = (mean of v^k)^(1/k), zeros included
	sumPow := 0.0
	for _, v := range s.Speeds {
		sumPow += math.Pow(v, k)
	}
	c := math.Pow(sumPow/float64(s.Len()), 1/k)

	return wind.NewParameters(k, c)
}
