package analysis

import (
	"errors"
	"math"
	"testing"

	"windfit/domain/core"
	"windfit/domain/wind"
)

func TestComputeCharacteristicSpeeds(t *testing.T) {
	p := wind.Parameters{K: 2.0, C: 8.0}

	got, err := ComputeCharacteristicSpeeds(p)
	if err != nil {
		t.Fatalf("ComputeCharacteristicSpeeds() error = %v", err)
	}

	wantMP := 8 * math.Pow(0.5, 0.5)
	wantMaxE := 8 * math.Pow(2, 0.5)
	wantMedian := 8 * math.Pow(math.Ln2, 0.5)
	wantMean := 8 * math.Gamma(1.5)

	if math.Abs(got.MostProbable-wantMP) > 1e-12 {
		t.Errorf("MostProbable = %g, want %g", got.MostProbable, wantMP)
	}
	if math.Abs(got.MaxEnergy-wantMaxE) > 1e-12 {
		t.Errorf("MaxEnergy = %g, want %g", got.MaxEnergy, wantMaxE)
	}
	if math.Abs(got.Median-wantMedian) > 1e-12 {
		t.Errorf("Median = %g, want %g", got.Median, wantMedian)
	}
	if math.Abs(got.TheoreticalMean-wantMean) > 1e-12 {
		t.Errorf("TheoreticalMean = %g, want %g", got.TheoreticalMean, wantMean)
	}
}

func TestComputeCharacteristicSpeeds_Ordering(t *testing.T) {
	// The energy-weighted peak sits above the density peak for every k > 1
	for _, k := range []float64{1.1, 1.5, 2, 2.5, 3, 4, 6} {
		for _, c := range []float64{3, 6, 9} {
			sp, err := ComputeCharacteristicSpeeds(wind.Parameters{K: k, C: c})
			if err != nil {
				t.Fatalf("k=%g c=%g: %v", k, c, err)
			}
			if sp.MaxEnergy <= sp.MostProbable {
				t.Errorf("k=%g c=%g: MaxEnergy %g <= MostProbable %g",
					k, c, sp.MaxEnergy, sp.MostProbable)
			}
		}
	}
}

func TestComputeCharacteristicSpeeds_LowShape(t *testing.T) {
	// At k <= 1 the density is monotone decreasing and the most probable
	// speed collapses to zero
	for _, k := range []float64{0.5, 1.0} {
		sp, err := ComputeCharacteristicSpeeds(wind.Parameters{K: k, C: 7})
		if err != nil {
			t.Fatalf("k=%g: %v", k, err)
		}
		if sp.MostProbable != 0 {
			t.Errorf("k=%g: MostProbable = %g, want 0", k, sp.MostProbable)
		}
		if sp.MaxEnergy <= 0 {
			t.Errorf("k=%g: MaxEnergy = %g, want > 0", k, sp.MaxEnergy)
		}
	}
}

func TestComputeCharacteristicSpeeds_InvalidParameters(t *testing.T) {
	for _, p := range []wind.Parameters{{K: 0, C: 5}, {K: 2, C: 0}, {K: -1, C: -1}} {
		if _, err := ComputeCharacteristicSpeeds(p); !errors.Is(err, core.ErrInvalidParameter) {
			t.Errorf("(%g, %g): error = %v, want ErrInvalidParameter", p.K, p.C, err)
		}
	}
}
