package magnitude

import (
	"math/big"
	"strconv"

	apperrors "github.com/rlmsinclair/lhc/internal/errors"
)

// Time unit conversion constants, in seconds. The year uses 365.25 days,
// matching the reference constants the reports are compared against.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3_600
	SecondsPerDay    = 86_400
	SecondsPerYear   = 31_557_600
)

// Unit identifies the human-scaled time unit selected for display.
type Unit int

// Display units, ordered from smallest to largest.
const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitYear
)

// String returns the unit's display name.
func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "seconds"
	case UnitMinute:
		return "minutes"
	case UnitHour:
		return "hours"
	case UnitDay:
		return "days"
	case UnitYear:
		return "years"
	default:
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Seconds returns the unit's length in seconds.
func (u Unit) Seconds() int64 {
	switch u {
	case UnitMinute:
		return SecondsPerMinute
	case UnitHour:
		return SecondsPerHour
	case UnitDay:
		return SecondsPerDay
	case UnitYear:
		return SecondsPerYear
	default:
		return 1
	}
}

// TimeEstimate is an elapsed-time magnitude tagged with its display unit.
// The underlying value is always held exactly in seconds; the unit only
// affects presentation.
type TimeEstimate struct {
	// Seconds is the exact elapsed time in seconds.
	Seconds Value
	// Unit is the human-scaled display unit selected for this estimate.
	Unit Unit
}

// Scaled returns the elapsed time expressed in the estimate's display unit.
func (t TimeEstimate) Scaled() Value {
	scaled, _ := t.Seconds.Div(FromInt64(t.Unit.Seconds())) // unit seconds are never zero
	return scaled
}

// Format renders the estimate as "value unit", e.g. "2.05 × 10^1 minutes".
//
// Parameters:
//   - sigfigs: Significant digits for the scientific mantissa.
//   - threshold: Maximum digit count for the exact integer suffix.
//
// Returns:
//   - string: The formatted estimate.
func (t TimeEstimate) Format(sigfigs, threshold int) string {
	return FormatValue(t.Scaled(), sigfigs, threshold) + " " + t.Unit.String()
}

// NewTimeEstimate tags an exact duration in seconds with the display unit
// selected by the standard scaling policy.
//
// Parameters:
//   - seconds: The exact duration in seconds.
//
// Returns:
//   - TimeEstimate: The tagged estimate.
func NewTimeEstimate(seconds Value) TimeEstimate {
	return TimeEstimate{Seconds: seconds, Unit: selectUnit(seconds)}
}

// EstimateElapsedTime computes the sequential elapsed time for enumerating
// spaceSize states at the given rate (operations per second), as an exact
// rational, and selects the human-scaled display unit: seconds when the total
// is under a minute, otherwise the largest unit whose scaled magnitude is at
// least 1.
//
// Parameters:
//   - spaceSize: The number of operations (state-space size).
//   - rate: Operations per second; must be strictly positive.
//
// Returns:
//   - TimeEstimate: The exact elapsed time with its display unit.
//   - error: A DomainError if rate is not strictly positive or not finite.
func EstimateElapsedTime(spaceSize Value, rate float64) (TimeEstimate, error) {
	rateRat := new(big.Rat).SetFloat64(rate)
	if rateRat == nil || rateRat.Sign() <= 0 {
		return TimeEstimate{}, apperrors.NewDomainError("rate", "must be > 0", strconv.FormatFloat(rate, 'g', -1, 64))
	}
	seconds, err := spaceSize.Div(FromRat(rateRat))
	if err != nil {
		return TimeEstimate{}, err
	}
	return TimeEstimate{Seconds: seconds, Unit: selectUnit(seconds)}, nil
}

// ApplyDilation compresses an elapsed-time estimate by the given factor,
// re-applying the unit selection policy to the shortened duration. A factor
// of exactly 1 returns an estimate equal to the input. Factors below 1 would
// imply time expansion and are rejected.
//
// Parameters:
//   - estimate: The baseline elapsed-time estimate.
//   - factor: The time-compression multiplier; must be >= 1.
//
// Returns:
//   - TimeEstimate: The dilated estimate.
//   - error: A DomainError if factor is below 1 or not finite.
func ApplyDilation(estimate TimeEstimate, factor float64) (TimeEstimate, error) {
	factorRat := new(big.Rat).SetFloat64(factor)
	if factorRat == nil || factorRat.Cmp(big.NewRat(1, 1)) < 0 {
		return TimeEstimate{}, apperrors.NewDomainError("dilation", "must be >= 1", strconv.FormatFloat(factor, 'g', -1, 64))
	}
	seconds, err := estimate.Seconds.Div(FromRat(factorRat))
	if err != nil {
		return TimeEstimate{}, err
	}
	return TimeEstimate{Seconds: seconds, Unit: selectUnit(seconds)}, nil
}

// selectUnit picks the display unit for an exact duration in seconds:
// seconds below one minute, otherwise the largest unit keeping the scaled
// magnitude at or above 1.
func selectUnit(seconds Value) Unit {
	for _, unit := range []Unit{UnitYear, UnitDay, UnitHour, UnitMinute} {
		if seconds.Cmp(FromInt64(unit.Seconds())) >= 0 {
			return unit
		}
	}
	return UnitSecond
}
