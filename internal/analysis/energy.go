package analysis

import (
	"math"

	"windfit/domain/core"
	"windfit/domain/wind"
)

// Physical defaults for the energy calculator
const (
	// DefaultAirDensity is sea-level air density in kg/m^3
	DefaultAirDensity = 1.225
	// DefaultNominalSpeed is the turbine rated speed (m/s) used for the
	// capacity factor
	DefaultNominalSpeed = 12.0
	// HoursPerYear converts a capacity factor into equivalent full-load hours
	HoursPerYear = 8760.0
)

// EnergyCalculator derives wind-power density figures from a Weibull fit.
// Air density, nominal speed and the band table are explicit construction
// inputs so concurrent per-region runs share no implicit state.
type EnergyCalculator struct {
	airDensity   float64
	nominalSpeed float64
	bands        []wind.ResourceBand
}

// NewEnergyCalculator builds a calculator. Non-positive density or nominal
// speed fall back to the physical defaults; a nil band table falls back to
// the default classification bands.
func NewEnergyCalculator(airDensity, nominalSpeed float64, bands []wind.ResourceBand) *EnergyCalculator {
	if airDensity <= 0 {
		airDensity = DefaultAirDensity
	}
	if nominalSpeed <= 0 {
		nominalSpeed = DefaultNominalSpeed
	}
	if bands == nil {
		bands = wind.DefaultResourceBands()
	}
	return &EnergyCalculator{
		airDensity:   airDensity,
		nominalSpeed: nominalSpeed,
		bands:        bands,
	}
}

// PowerDensity evaluates the instantaneous power density 0.5*rho*v^3 (W/m^2)
func (e *EnergyCalculator) PowerDensity(v float64) float64 {
	return 0.5 * e.airDensity * v * v * v
}

// Profile computes the energy profile of a site: power density at the
// most-probable and maximum-energy speeds, the probability-weighted mean
// power density in its closed form 0.5*rho*c^3*Gamma(1+3/k) (no numerical
// integration), the capacity factor against the nominal speed, and the
// resource class.
func (e *EnergyCalculator) Profile(p wind.Parameters, speeds wind.CharacteristicSpeeds) (wind.EnergyProfile, error) {
	if !(p.K > 0) || !(p.C > 0) {
		return wind.EnergyProfile{}, core.NewInvalidParameterError(p.K, p.C)
	}

	meanPower := 0.5 * e.airDensity * math.Pow(p.C, 3) * math.Gamma(1+3/p.K)
	capacityFactor := meanPower / e.PowerDensity(e.nominalSpeed)

	return wind.EnergyProfile{
		PowerAtMostProbable: e.PowerDensity(speeds.MostProbable),
		PowerAtMaxEnergy:    e.PowerDensity(speeds.MaxEnergy),
		MeanPowerDensity:    meanPower,
		CapacityFactor:      capacityFactor,
		EquivalentHours:     capacityFactor * HoursPerYear,
		ResourceClass:       wind.Classify(meanPower, e.bands),
	}, nil
}
