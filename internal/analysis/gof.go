package analysis

import (
	"math"
	"sort"

	"windfit/domain/core"
	"windfit/domain/wind"
)

// cdfClamp keeps log arguments in the Anderson-Darling sum finite
const cdfClamp = 1e-10

// Validate compares a fitted model against the empirical sample it was
// derived from. A poor fit is reported through low scores and the PoorFit
// flag, never as an error; errors are reserved for invalid inputs.
func Validate(s wind.Sample, m *Model, st wind.SampleStats) (wind.ValidationReport, error) {
	if s.Len() == 0 {
		return wind.ValidationReport{}, core.NewInsufficientDataError(0, 1)
	}
	if err := s.Validate(); err != nil {
		return wind.ValidationReport{}, err
	}
	if st.Mean <= 0 {
		return wind.ValidationReport{}, core.NewDegenerateSampleError("zero mean speed, coherence is undefined")
	}

	sorted := make([]float64, s.Len())
	copy(sorted, s.Speeds)
	sort.Float64s(sorted)

	ks := ksStatistic(sorted, m)
	rsq, rmse, mae := histogramFit(sorted, m)

	report := wind.ValidationReport{
		KolmogorovSmirnov: ks,
		KSPValue:          ksPValue(ks, len(sorted)),
		AndersonDarling:   andersonDarling(sorted, m),
		RSquared:          rsq,
		RMSE:              rmse,
		MAE:               mae,
		CoherenceDelta:    math.Abs(m.Mean()-st.Mean) / st.Mean,
	}
	report.PoorFit = report.RSquared < wind.PoorFitThreshold
	return report, nil
}

// ksStatistic is the maximum distance between the empirical step function
// and the model cumulative, checked on both sides of each step
func ksStatistic(sorted []float64, m *Model) float64 {
	n := float64(len(sorted))
	d := 0.0
	for i, v := range sorted {
		f := m.Cumulative(v)
		upper := math.Abs(float64(i+1)/n - f)
		lower := math.Abs(f - float64(i)/n)
		d = math.Max(d, math.Max(upper, lower))
	}
	return d
}

// ksPValue is the asymptotic Kolmogorov p-value surrogate
// Q(lambda) = 2*sum_{j>=1} (-1)^(j-1) exp(-2 j^2 lambda^2)
// with the small-sample correction lambda = (sqrt(n)+0.12+0.11/sqrt(n))*D
func ksPValue(d float64, n int) float64 {
	if d <= 0 {
		return 1
	}
	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d

	sum := 0.0
	sign := 1.0
	for j := 1; j <= 100; j++ {
		term := math.Exp(-2 * lambda * lambda * float64(j) * float64(j))
		sum += sign * term
		sign = -sign
		if term < 1e-12 {
			break
		}
	}
	return math.Max(0, math.Min(1, 2*sum))
}

// andersonDarling computes A^2, which weights tail discrepancies more
// heavily than the Kolmogorov-Smirnov distance
func andersonDarling(sorted []float64, m *Model) float64 {
	n := len(sorted)
	sum := 0.0
	for i := 0; i < n; i++ {
		fi := clampUnit(m.Cumulative(sorted[i]))
		fj := clampUnit(m.Cumulative(sorted[n-1-i]))
		sum += float64(2*i+1) * (math.Log(fi) + math.Log(1-fj))
	}
	return -float64(n) - sum/float64(n)
}

func clampUnit(f float64) float64 {
	return math.Max(cdfClamp, math.Min(1-cdfClamp, f))
}

// histogramFit bins the sample over [0, max], compares the empirical bin
// density against the model density at each bin center, and reports
// R-squared, RMSE and MAE. Bin count follows the Sturges rule.
func histogramFit(sorted []float64, m *Model) (rsq, rmse, mae float64) {
	n := len(sorted)
	maxSpeed := sorted[n-1]
	if maxSpeed <= 0 {
		// All-zero sample never reaches the validator through estimation,
		// but keep the histogram well-defined regardless.
		return 0, 0, 0
	}

	bins := int(math.Ceil(math.Log2(float64(n)))) + 1
	if bins < 1 {
		bins = 1
	}
	width := maxSpeed / float64(bins)

	counts := make([]int, bins)
	for _, v := range sorted {
		idx := int(v / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	empirical := make([]float64, bins)
	modeled := make([]float64, bins)
	meanEmp := 0.0
	for i := 0; i < bins; i++ {
		empirical[i] = float64(counts[i]) / (float64(n) * width)
		modeled[i] = m.Density((float64(i) + 0.5) * width)
		meanEmp += empirical[i]
	}
	meanEmp /= float64(bins)

	var ssRes, ssTot, sumAbs float64
	for i := 0; i < bins; i++ {
		resid := empirical[i] - modeled[i]
		ssRes += resid * resid
		sumAbs += math.Abs(resid)
		dev := empirical[i] - meanEmp
		ssTot += dev * dev
	}

	rmse = math.Sqrt(ssRes / float64(bins))
	mae = sumAbs / float64(bins)
	if ssTot > 0 {
		rsq = 1 - ssRes/ssTot
	} else if ssRes == 0 {
		rsq = 1
	}
	return rsq, rmse, mae
}
