package analysis

import (
	"math"

	"windfit/domain/core"
	"windfit/domain/wind"
)

// ComputeCharacteristicSpeeds derives the physically meaningful speeds
// from a Weibull fit:
//
//	v_mp     = c*((k-1)/k)^(1/k)  (0 when k <= 1)
//	v_MAXE   = c*((k+2)/k)^(1/k)
//	median   = c*(ln 2)^(1/k)
//	mean     = c*Gamma(1+1/k)
//
// For k > 1 the physical expectation v_MAXE > v_mp holds, since power
// scales with v^3 and shifts the energy-weighted peak above the density
// peak. That ordering is verified in tests, not enforced here.
func ComputeCharacteristicSpeeds(p wind.Parameters) (wind.CharacteristicSpeeds, error) {
	if !(p.K > 0) || !(p.C > 0) {
		return wind.CharacteristicSpeeds{}, core.NewInvalidParameterError(p.K, p.C)
	}

	mostProbable := 0.0
	if p.K > 1 {
		mostProbable = p.C * math.Pow((p.K-1)/p.K, 1/p.K)
	}

	return wind.CharacteristicSpeeds{
		MostProbable:    mostProbable,
		MaxEnergy:       p.C * math.Pow((p.K+2)/p.K, 1/p.K),
		Median:          p.C * math.Pow(math.Ln2, 1/p.K),
		TheoreticalMean: p.C * math.Gamma(1+1/p.K),
	}, nil
}
