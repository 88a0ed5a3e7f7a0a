package analysis

import (
	"errors"
	"math"
	"testing"

	"windfit/domain/core"
	"windfit/domain/wind"
	"windfit/internal/testkit"
)

func TestMomentEstimator_ClosedForm(t *testing.T) {
	// Known statistics from the wind literature: mean 7.5 m/s, sigma 3.2 m/s
	st := wind.SampleStats{N: 365, Mean: 7.5, StdDev: 3.2, Variance: 3.2 * 3.2}

	p, err := NewMomentEstimator().Estimate(wind.Sample{}, st)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}

	wantK := math.Pow(3.2/7.5, -1.09)
	if math.Abs(p.K-wantK) > 1e-12 {
		t.Errorf("K = %g, want %g", p.K, wantK)
	}
	if p.K < 2.4 || p.K > 2.6 {
		t.Errorf("K = %g, outside the expected range for cv=0.427", p.K)
	}

	wantC := 7.5 / math.Gamma(1+1/wantK)
	if math.Abs(p.C-wantC) > 1e-12 {
		t.Errorf("C = %g, want %g", p.C, wantC)
	}

	// The scale equation inverts the analytic mean, so the fitted mean
	// reproduces the sample mean exactly
	if math.Abs(p.C*math.Gamma(1+1/p.K)-7.5) > 1e-9 {
		t.Errorf("fitted mean %g, want 7.5", p.C*math.Gamma(1+1/p.K))
	}
}

func TestMomentEstimator_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		st   wind.SampleStats
	}{
		{name: "zero mean", st: wind.SampleStats{N: 40, Mean: 0, StdDev: 0}},
		{name: "zero spread", st: wind.SampleStats{N: 40, Mean: 5, StdDev: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMomentEstimator().Estimate(wind.Sample{}, tt.st)
			if !errors.Is(err, core.ErrDegenerateSample) {
				t.Fatalf("error = %v, want ErrDegenerateSample", err)
			}
		})
	}
}

func TestEstimators_RoundTrip(t *testing.T) {
	// Recovering known parameters from a large synthetic sample must land
	// within 5% for both strategies.
	cases := []struct {
		k, c float64
	}{
		{k: 1.8, c: 6.0},
		{k: 2.0, c: 8.0},
		{k: 2.4, c: 7.5},
		{k: 3.0, c: 5.0},
	}

	for _, tc := range cases {
		gen := testkit.NewWeibullGenerator(tc.k, tc.c, 42)
		sample := gen.WindSample("synthetic", 50000)
		st, err := ComputeSampleStats(sample)
		if err != nil {
			t.Fatalf("stats: %v", err)
		}

		for _, est := range []Estimator{NewMomentEstimator(), NewMLEEstimator(0, 0)} {
			p, err := est.Estimate(sample, st)
			if err != nil {
				t.Fatalf("%s(k=%g, c=%g): %v", est.Name(), tc.k, tc.c, err)
			}
			if rel := math.Abs(p.K-tc.k) / tc.k; rel > 0.05 {
				t.Errorf("%s: K = %g, want %g within 5%% (off by %.1f%%)", est.Name(), p.K, tc.k, rel*100)
			}
			if rel := math.Abs(p.C-tc.c) / tc.c; rel > 0.05 {
				t.Errorf("%s: C = %g, want %g within 5%% (off by %.1f%%)", est.Name(), p.C, tc.c, rel*100)
			}
		}
	}
}

func TestEstimators_Agree(t *testing.T) {
	gen := testkit.NewWeibullGenerator(2.2, 7.0, 7)
	sample := gen.WindSample("coastal", 20000)
	st, err := ComputeSampleStats(sample)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	moment, err := NewMomentEstimator().Estimate(sample, st)
	if err != nil {
		t.Fatalf("moment: %v", err)
	}
	mle, err := NewMLEEstimator(1e-6, 100).Estimate(sample, st)
	if err != nil {
		t.Fatalf("mle: %v", err)
	}

	if rel := math.Abs(moment.K-mle.K) / mle.K; rel > 0.05 {
		t.Errorf("shape disagreement %.1f%%: moment %g vs mle %g", rel*100, moment.K, mle.K)
	}
	if rel := math.Abs(moment.C-mle.C) / mle.C; rel > 0.05 {
		t.Errorf("scale disagreement %.1f%%: moment %g vs mle %g", rel*100, moment.C, mle.C)
	}
}

func TestMLEEstimator_ConstantSample(t *testing.T) {
	speeds := make([]float64, 100)
	for i := range speeds {
		speeds[i] = 5.0
	}
	sample := wind.NewSample("flat", speeds)
	st, err := ComputeSampleStats(sample)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	_, err = NewMLEEstimator(1e-6, 100).Estimate(sample, st)
	if !errors.Is(err, core.ErrConvergence) {
		t.Fatalf("error = %v, want ErrConvergence", err)
	}
}

func TestMLEEstimator_AllZero(t *testing.T) {
	sample := wind.NewSample("calm", make([]float64, 50))
	st := wind.SampleStats{N: 50, Mean: 0}

	_, err := NewMLEEstimator(1e-6, 100).Estimate(sample, st)
	if !errors.Is(err, core.ErrDegenerateSample) {
		t.Fatalf("error = %v, want ErrDegenerateSample", err)
	}
}

func TestMLEEstimator_ZerosMixedIn(t *testing.T) {
	// Calm periods (v = 0) must not break the log-likelihood terms
	gen := testkit.NewWeibullGenerator(2.0, 6.0, 99)
	speeds := gen.Sample(5000)
	for i := 0; i < len(speeds); i += 100 {
		speeds[i] = 0
	}
	sample := wind.NewSample("with-calms", speeds)
	st, err := ComputeSampleStats(sample)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	p, err := NewMLEEstimator(1e-6, 100).Estimate(sample, st)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if p.K <= 0 || p.C <= 0 {
		t.Errorf("got invalid parameters (%g, %g)", p.K, p.C)
	}
}
