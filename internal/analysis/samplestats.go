package analysis

import (
	"windfit/domain/core"
	"windfit/domain/wind"

	"github.com/montanaflynn/stats"
)

// ComputeSampleStats computes mean, variance and standard deviation of a
// raw speed sample using the sample (n-1) convention. An empty sample is
// an error; a small one (n < 30) is flagged low-confidence, never rejected.
func ComputeSampleStats(s wind.Sample) (wind.SampleStats, error) {
	if s.Len() == 0 {
		return wind.SampleStats{}, core.NewInsufficientDataError(0, 1)
	}
	if err := s.Validate(); err != nil {
		return wind.SampleStats{}, err
	}

	mean, err := stats.Mean(s.Speeds)
	if err != nil {
		return wind.SampleStats{}, core.NewDegenerateSampleError(err.Error())
	}

	// A single observation has zero spread under the n-1 convention
	variance := 0.0
	if s.Len() > 1 {
		variance, err = stats.SampleVariance(s.Speeds)
		if err != nil {
			return wind.SampleStats{}, core.NewDegenerateSampleError(err.Error())
		}
	}

	stdDev := 0.0
	if s.Len() > 1 {
		stdDev, err = stats.StandardDeviationSample(s.Speeds)
		if err != nil {
			return wind.SampleStats{}, core.NewDegenerateSampleError(err.Error())
		}
	}

	return wind.SampleStats{
		N:             s.Len(),
		Mean:          mean,
		Variance:      variance,
		StdDev:        stdDev,
		LowConfidence: s.LowConfidence(),
	}, nil
}
