package analysis

import (
	"errors"
	"math"
	"testing"

	"windfit/domain/core"
	"windfit/domain/wind"

	"gonum.org/v1/gonum/integrate"
)

func mustModel(t *testing.T, k, c float64) *Model {
	t.Helper()
	m, err := NewModel(wind.Parameters{K: k, C: c})
	if err != nil {
		t.Fatalf("NewModel(%g, %g): %v", k, c, err)
	}
	return m
}

func TestNewModel_RejectsInvalidParameters(t *testing.T) {
	cases := []struct{ k, c float64 }{
		{k: 0, c: 1},
		{k: 1, c: -1},
		{k: -2, c: 3},
		{k: math.NaN(), c: 1},
	}
	for _, tc := range cases {
		if _, err := NewModel(wind.Parameters{K: tc.k, C: tc.c}); !errors.Is(err, core.ErrInvalidParameter) {
			t.Errorf("NewModel(%g, %g) error = %v, want ErrInvalidParameter", tc.k, tc.c, err)
		}
	}
}

func TestModel_CumulativeProperties(t *testing.T) {
	for _, tc := range []struct{ k, c float64 }{
		{1, 7.2}, {1.5, 6}, {2, 8}, {3, 5},
	} {
		m := mustModel(t, tc.k, tc.c)

		if got := m.Cumulative(0); got != 0 {
			t.Errorf("k=%g: Cumulative(0) = %g, want 0", tc.k, got)
		}
		if got := m.Cumulative(-1); got != 0 {
			t.Errorf("k=%g: Cumulative(-1) = %g, want 0", tc.k, got)
		}

		prev := 0.0
		for v := 0.0; v <= 5*tc.c; v += 0.05 {
			f := m.Cumulative(v)
			if f < prev {
				t.Fatalf("k=%g: cumulative decreases at v=%g", tc.k, v)
			}
			if f < 0 || f > 1 {
				t.Fatalf("k=%g: cumulative out of [0,1] at v=%g: %g", tc.k, v, f)
			}
			if math.Abs(f+m.Survival(v)-1) > 1e-9 {
				t.Fatalf("k=%g: F(v)+S(v) != 1 at v=%g", tc.k, v)
			}
			prev = f
		}
	}
}

func TestModel_DensityIntegratesToOne(t *testing.T) {
	for _, tc := range []struct{ k, c float64 }{
		{1, 7.2}, {1.5, 6}, {2, 8}, {3, 5},
	} {
		m := mustModel(t, tc.k, tc.c)

		// Upper bound carries all but ~1e-9 of the mass
		upper, err := m.Quantile(1 - 1e-9)
		if err != nil {
			t.Fatalf("quantile: %v", err)
		}

		const steps = 100000
		xs := make([]float64, steps+1)
		ys := make([]float64, steps+1)
		for i := 0; i <= steps; i++ {
			xs[i] = upper * float64(i) / steps
			ys[i] = m.Density(xs[i])
		}

		total := integrate.Trapezoidal(xs, ys)
		if math.Abs(total-1) > 1e-4 {
			t.Errorf("k=%g c=%g: density integrates to %g, want 1 within 1e-4", tc.k, tc.c, total)
		}
	}
}

func TestModel_ExponentialEquivalence(t *testing.T) {
	// k = 1 reduces to the exponential distribution with rate 1/c
	c := 6.5
	m := mustModel(t, 1, c)

	for _, v := range []float64{0, 0.5, 1, 3, 6.5, 12, 20} {
		wantDensity := math.Exp(-v/c) / c
		wantCDF := 1 - math.Exp(-v/c)
		if math.Abs(m.Density(v)-wantDensity) > 1e-12 {
			t.Errorf("Density(%g) = %g, want exponential %g", v, m.Density(v), wantDensity)
		}
		if math.Abs(m.Cumulative(v)-wantCDF) > 1e-12 {
			t.Errorf("Cumulative(%g) = %g, want exponential %g", v, m.Cumulative(v), wantCDF)
		}
	}

	if math.Abs(m.Mean()-c) > 1e-12 {
		t.Errorf("Mean = %g, want %g", m.Mean(), c)
	}
}

func TestModel_RayleighEquivalence(t *testing.T) {
	// k = 2 reduces to the Rayleigh distribution with sigma = c/sqrt(2)
	c := 8.0
	m := mustModel(t, 2, c)
	sigma := c / math.Sqrt2

	for _, v := range []float64{0, 1, 2.5, 5, 8, 12, 16} {
		wantDensity := v / (sigma * sigma) * math.Exp(-v*v/(2*sigma*sigma))
		wantCDF := 1 - math.Exp(-v*v/(2*sigma*sigma))
		if math.Abs(m.Density(v)-wantDensity) > 1e-12 {
			t.Errorf("Density(%g) = %g, want rayleigh %g", v, m.Density(v), wantDensity)
		}
		if math.Abs(m.Cumulative(v)-wantCDF) > 1e-12 {
			t.Errorf("Cumulative(%g) = %g, want rayleigh %g", v, m.Cumulative(v), wantCDF)
		}
	}

	wantMean := c * math.Sqrt(math.Pi) / 2
	if math.Abs(m.Mean()-wantMean) > 1e-12 {
		t.Errorf("Mean = %g, want %g", m.Mean(), wantMean)
	}
}

func TestModel_DensityAtOrigin(t *testing.T) {
	// The density at v = 0 is the limit of the general form, which depends
	// on the shape alone for its kind but on the scale for its value
	cases := []struct {
		k, c float64
		want float64
	}{
		{k: 2.5, c: 7, want: 0},
		{k: 1.01, c: 7, want: 0},
		{k: 1, c: 6.5, want: 1 / 6.5},
		{k: 1, c: 2, want: 0.5},
	}
	for _, tc := range cases {
		m := mustModel(t, tc.k, tc.c)
		if got := m.Density(0); math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("Density(0) with k=%g c=%g = %g, want %g", tc.k, tc.c, got, tc.want)
		}
	}

	// Below k = 1 the density diverges at the origin
	if got := mustModel(t, 0.8, 5).Density(0); !math.IsInf(got, 1) {
		t.Errorf("Density(0) with k=0.8 = %g, want +Inf", got)
	}
}

func TestModel_HazardMatchesQuotient(t *testing.T) {
	m := mustModel(t, 2.3, 7)
	for _, v := range []float64{0.1, 1, 4, 7, 11} {
		quotient := m.Density(v) / m.Survival(v)
		if math.Abs(m.Hazard(v)-quotient) > 1e-9 {
			t.Errorf("Hazard(%g) = %g, quotient gives %g", v, m.Hazard(v), quotient)
		}
	}
	if got := m.Hazard(-2); got != 0 {
		t.Errorf("Hazard(-2) = %g, want 0", got)
	}
}

func TestModel_SummaryMoments(t *testing.T) {
	k, c := 2.0, 8.0
	m := mustModel(t, k, c)
	s := m.Summary()

	g1 := math.Gamma(1 + 1/k)
	g2 := math.Gamma(1 + 2/k)
	if math.Abs(s.Mean-c*g1) > 1e-12 {
		t.Errorf("Mean = %g, want %g", s.Mean, c*g1)
	}
	if math.Abs(s.Variance-c*c*(g2-g1*g1)) > 1e-12 {
		t.Errorf("Variance = %g, want %g", s.Variance, c*c*(g2-g1*g1))
	}
	if math.Abs(s.Median-m.Median()) > 1e-12 {
		t.Errorf("Median = %g, want %g", s.Median, m.Median())
	}
	wantMode := c * math.Pow((k-1)/k, 1/k)
	if math.Abs(s.Mode-wantMode) > 1e-12 {
		t.Errorf("Mode = %g, want %g", s.Mode, wantMode)
	}

	// Monotone density below 1 puts the mode at the origin
	low := mustModel(t, 0.9, 5)
	if got := low.Mode(); got != 0 {
		t.Errorf("Mode with k=0.9 = %g, want 0", got)
	}
}

func TestModel_Quantile(t *testing.T) {
	m := mustModel(t, 2, 8)

	if _, err := m.Quantile(-0.1); err == nil {
		t.Error("Quantile(-0.1) should fail")
	}
	if _, err := m.Quantile(1.1); err == nil {
		t.Error("Quantile(1.1) should fail")
	}

	// The endpoint is the supremum of the support
	sup, err := m.Quantile(1)
	if err != nil {
		t.Fatalf("Quantile(1): %v", err)
	}
	if !math.IsInf(sup, 1) {
		t.Errorf("Quantile(1) = %g, want +Inf", sup)
	}

	median, err := m.Quantile(0.5)
	if err != nil {
		t.Fatalf("Quantile(0.5): %v", err)
	}
	if math.Abs(median-m.Median()) > 1e-9 {
		t.Errorf("Quantile(0.5) = %g, want median %g", median, m.Median())
	}

	// Quantile inverts the cumulative
	for _, p := range []float64{0, 0.25, 0.5, 0.9, 0.99} {
		v, err := m.Quantile(p)
		if err != nil {
			t.Fatalf("Quantile(%g): %v", p, err)
		}
		if math.Abs(m.Cumulative(v)-p) > 1e-9 {
			t.Errorf("Cumulative(Quantile(%g)) = %g", p, m.Cumulative(v))
		}
	}
}
