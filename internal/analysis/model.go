package analysis

import (
	"fmt"
	"math"

	"windfit/domain/core"
	"windfit/domain/wind"

	"gonum.org/v1/gonum/stat/distuv"
)

// Model is a validated two-parameter Weibull distribution. Parameters are
// checked once at construction; every method is a pure function of them.
// The exponential (k=1) and Rayleigh (k=2) equivalences fall out of the
// general form and are verified in tests.
type Model struct {
	params wind.Parameters
	dist   distuv.Weibull
}

// NewModel validates (k, c) and builds the distribution
func NewModel(p wind.Parameters) (*Model, error) {
	if !(p.K > 0) || !(p.C > 0) {
		return nil, core.NewInvalidParameterError(p.K, p.C)
	}
	return &Model{
		params: p,
		dist:   distuv.Weibull{K: p.K, Lambda: p.C},
	}, nil
}

// Parameters returns the validated parameter pair
func (m *Model) Parameters() wind.Parameters {
	return m.params
}

// Density evaluates f(v) = (k/c)*(v/c)^(k-1)*exp(-(v/c)^k), 0 for v < 0.
// At the origin the general form has a shape-dependent limit, evaluated
// here from the parameters: 0 for k > 1, 1/c for k = 1, divergent for k < 1.
func (m *Model) Density(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v == 0 {
		switch {
		case m.params.K > 1:
			return 0
		case m.params.K == 1:
			return 1 / m.params.C
		}
		return math.Inf(1)
	}
	return m.dist.Prob(v)
}

// Cumulative evaluates F(v) = 1 - exp(-(v/c)^k), 0 for v < 0
func (m *Model) Cumulative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return m.dist.CDF(v)
}

// Survival evaluates S(v) = exp(-(v/c)^k), 1 for v < 0
func (m *Model) Survival(v float64) float64 {
	if v < 0 {
		return 1
	}
	return m.dist.Survival(v)
}

// Hazard evaluates h(v) = f(v)/S(v) = (k/c)*(v/c)^(k-1) in closed form,
// avoiding the 0/0 the quotient produces deep in the tail
func (m *Model) Hazard(v float64) float64 {
	if v < 0 {
		return 0
	}
	return (m.params.K / m.params.C) * math.Pow(v/m.params.C, m.params.K-1)
}

// Mean returns the analytic mean c*Gamma(1+1/k)
func (m *Model) Mean() float64 {
	return m.params.C * math.Gamma(1+1/m.params.K)
}

// Variance returns the analytic variance c^2*(Gamma(1+2/k) - Gamma(1+1/k)^2)
func (m *Model) Variance() float64 {
	g1 := math.Gamma(1 + 1/m.params.K)
	g2 := math.Gamma(1 + 2/m.params.K)
	return m.params.C * m.params.C * (g2 - g1*g1)
}

// StdDev returns the analytic standard deviation
func (m *Model) StdDev() float64 {
	return math.Sqrt(m.Variance())
}

// Mode returns the density peak c*((k-1)/k)^(1/k), 0 when k <= 1 since the
// density is then monotonically decreasing from the origin
func (m *Model) Mode() float64 {
	if m.params.K <= 1 {
		return 0
	}
	return m.params.C * math.Pow((m.params.K-1)/m.params.K, 1/m.params.K)
}

// Median returns c*(ln 2)^(1/k)
func (m *Model) Median() float64 {
	return m.params.C * math.Pow(math.Ln2, 1/m.params.K)
}

// Quantile inverts the cumulative: c*(-ln(1-p))^(1/k) for p in [0, 1].
// The p = 1 endpoint yields +Inf, the supremum of the support.
func (m *Model) Quantile(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("quantile probability must be in [0, 1], got %g", p)
	}
	return m.dist.Quantile(p), nil
}

// Summary assembles the analytic moments into an immutable value
func (m *Model) Summary() wind.DistributionSummary {
	return wind.DistributionSummary{
		Mean:     m.Mean(),
		Variance: m.Variance(),
		StdDev:   m.StdDev(),
		Mode:     m.Mode(),
		Median:   m.Median(),
	}
}
