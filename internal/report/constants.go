package report

import (
	"math/big"

	"github.com/rlmsinclair/lhc/internal/magnitude"
)

// Constants holds the static descriptive parameters that appear in reports:
// collider machine figures and the cosmological reference the sequential
// estimate is compared against. They are declared inputs passed to the
// composer, never ambient globals, so both report variants stay pure and
// independently testable.
type Constants struct {
	// RingCircumferenceMeters is the accelerator ring circumference.
	RingCircumferenceMeters int64
	// LightSpeedMetersPerSec is the speed of light, used for the beam
	// circulation time figure.
	LightSpeedMetersPerSec int64
	// BeamEnergyTeV is the nominal energy per beam.
	BeamEnergyTeV float64
	// BunchesPerBeam is the number of particle bunches per beam.
	BunchesPerBeam int64
	// BunchSpacingNanos is the spacing between bunches in nanoseconds.
	BunchSpacingNanos int64
	// MagneticFieldTesla is the dipole field strength.
	MagneticFieldTesla float64
	// AgeOfUniverseYears is the reference age of the universe in years.
	AgeOfUniverseYears float64
}

// DefaultConstants returns the standard machine and reference figures used by
// the illustrative reports.
func DefaultConstants() Constants {
	return Constants{
		RingCircumferenceMeters: 27_000,
		LightSpeedMetersPerSec:  299_792_458,
		BeamEnergyTeV:           6.5,
		BunchesPerBeam:          2_808,
		BunchSpacingNanos:       25,
		MagneticFieldTesla:      8.33,
		AgeOfUniverseYears:      1.38e10,
	}
}

// AgeOfUniverseSeconds returns the reference age of the universe converted to
// seconds (about 4.35 × 10^17 for the default 1.38 × 10^10 years).
func (c Constants) AgeOfUniverseSeconds() magnitude.Value {
	years := new(big.Rat).SetFloat64(c.AgeOfUniverseYears)
	if years == nil {
		years = new(big.Rat)
	}
	seconds := new(big.Rat).Mul(years, new(big.Rat).SetInt64(magnitude.SecondsPerYear))
	return magnitude.FromRat(seconds)
}

// CirculationSeconds returns the exact time light needs for one turn of the
// ring, as a rational number of seconds (about 90 microseconds).
func (c Constants) CirculationSeconds() magnitude.Value {
	return magnitude.FromRat(big.NewRat(c.RingCircumferenceMeters, c.LightSpeedMetersPerSec))
}
