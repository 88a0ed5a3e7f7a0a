package wind

// Unclassified is returned when the mean power density falls below the
// lowest configured band.
const Unclassified = "Unclassified"

// ResourceBand maps a minimum mean power density (W/m^2) to a resource
// class label. Bands are configuration data, not classification logic.
type ResourceBand struct {
	Class           string  `json:"class"`
	MinPowerDensity float64 `json:"min_power_density"`
}

// DefaultResourceBands returns the band table used when no site-specific
// table is configured. Thresholds correspond to mean power density at
// roughly 10, 8, 6 and 4 m/s mean speed at standard air density.
func DefaultResourceBands() []ResourceBand {
	return []ResourceBand{
		{Class: "Excellent", MinPowerDensity: 612.5},
		{Class: "Good", MinPowerDensity: 313.6},
		{Class: "Moderate", MinPowerDensity: 132.3},
		{Class: "Limited", MinPowerDensity: 39.2},
	}
}

// Classify returns the label of the highest band whose threshold the given
// mean power density meets, or Unclassified below the lowest band. The band
// slice must be ordered by descending threshold.
func Classify(meanPowerDensity float64, bands []ResourceBand) string {
	for _, b := range bands {
		if meanPowerDensity >= b.MinPowerDensity {
			return b.Class
		}
	}
	return Unclassified
}
