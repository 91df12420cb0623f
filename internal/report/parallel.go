package report

import (
	"fmt"
	"math/big"
	"time"

	apperrors "github.com/rlmsinclair/lhc/internal/errors"
	"github.com/rlmsinclair/lhc/internal/magnitude"
)

// ParallelParams are the inputs of the parallel-feasibility report. The total
// reported time is preparation plus acceleration and is declared independent
// of the exponent; the dilation factor only shapes the contrasting
// naively-dilated sequential figure.
type ParallelParams struct {
	// Exponent is the bit width N of the 2^N state space (display only).
	Exponent int
	// Rate is the sequential enumeration rate used for the contrast figure.
	Rate float64
	// PreparationTime is the fixed state-preparation duration.
	PreparationTime time.Duration
	// AccelerationTime is the fixed acceleration-ramp duration.
	AccelerationTime time.Duration
	// DilationFactor is the time-compression multiplier (>= 1).
	DilationFactor float64
}

// Parallel composes the parallel-feasibility report: the state-space size for
// display, the fixed total elapsed time, the dilation factor, and how a
// naively-dilated sequential estimate would still compare. As with the
// sequential variant, validation and computation complete before any line is
// recorded.
//
// Parameters:
//   - params: The report inputs.
//   - consts: The static machine constants.
//   - opts: Display precision options.
//
// Returns:
//   - Report: The composed report.
//   - error: An InvalidArgumentError or DomainError; no lines are produced on failure.
func Parallel(params ParallelParams, consts Constants, opts Options) (Report, error) {
	opts = opts.normalize()

	if params.PreparationTime < 0 {
		return Report{}, apperrors.NewInvalidArgument("preparation", "must be non-negative, got %s", params.PreparationTime)
	}
	if params.AccelerationTime < 0 {
		return Report{}, apperrors.NewInvalidArgument("acceleration", "must be non-negative, got %s", params.AccelerationTime)
	}

	space, err := magnitude.StateSpaceSize(params.Exponent)
	if err != nil {
		return Report{}, err
	}
	sequential, err := magnitude.EstimateElapsedTime(space, params.Rate)
	if err != nil {
		return Report{}, err
	}
	dilated, err := magnitude.ApplyDilation(sequential, params.DilationFactor)
	if err != nil {
		return Report{}, err
	}

	total := durationEstimate(params.PreparationTime + params.AccelerationTime)
	if total.Seconds.Sign() == 0 {
		return Report{}, apperrors.NewInvalidArgument("total", "preparation + acceleration must be positive")
	}
	advantage, err := magnitude.CompareOrders(sequential.Seconds, total.Seconds)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Title: fmt.Sprintf("Parallel processing of 2^%d states", params.Exponent),
		Lines: []Line{
			{Label: "State-space size", Value: magnitude.FormatValue(space, opts.SigFigs, opts.DigitThreshold)},
			{Label: "Preparation time", Value: formatExactSeconds(durationEstimate(params.PreparationTime), opts)},
			{Label: "Acceleration time", Value: formatExactSeconds(durationEstimate(params.AccelerationTime), opts)},
			{Label: "Total elapsed time", Value: formatExactSeconds(total, opts)},
			{Label: "Dilation factor", Value: formatFactor(params.DilationFactor) + "×"},
			{Label: "Dilated sequential estimate", Value: dilated.Format(opts.SigFigs, opts.DigitThreshold)},
			{Label: "Advantage over sequential", Value: formatOrders(advantage) + " orders of magnitude"},
			{Label: "Ring circumference", Value: formatGroupedInt64(consts.RingCircumferenceMeters) + " m"},
			{Label: "Beam circulation time", Value: magnitude.NewTimeEstimate(consts.CirculationSeconds()).Format(opts.SigFigs, opts.DigitThreshold)},
			{Label: "Beam energy", Value: formatPlainDecimal(mustFromFloat(consts.BeamEnergyTeV), 2) + " TeV"},
			{Label: "Bunches per beam", Value: formatGroupedInt64(consts.BunchesPerBeam)},
			{Label: "Bunch spacing", Value: formatGroupedInt64(consts.BunchSpacingNanos) + " ns"},
			{Label: "Dipole field", Value: formatPlainDecimal(mustFromFloat(consts.MagneticFieldTesla), 2) + " T"},
		},
	}, nil
}

// durationEstimate converts a native duration to an exact time estimate in
// seconds with the standard display unit selection.
func durationEstimate(d time.Duration) magnitude.TimeEstimate {
	seconds := magnitude.FromRat(big.NewRat(d.Nanoseconds(), int64(time.Second)))
	return magnitude.NewTimeEstimate(seconds)
}
