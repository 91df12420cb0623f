package report

import (
	"fmt"

	"github.com/rlmsinclair/lhc/internal/magnitude"
)

// SequentialParams are the inputs of the sequential-enumeration report.
type SequentialParams struct {
	// Exponent is the bit width N of the 2^N state space.
	Exponent int
	// Rate is the enumeration rate in operations per second.
	Rate float64
}

// rateLadder lists the named enumeration rates of the verbose section, from
// conservative hardware up to the theoretical limit.
var rateLadder = []struct {
	name string
	rate float64
}{
	{"Conservative (1 MHz)", 1e6},
	{"Standard (1 GHz)", 1e9},
	{"Maximum (1 THz)", 1e12},
	{"Theoretical limit (1 PHz)", 1e15},
}

// Sequential composes the sequential-impossibility report: the exact
// state-space size, the elapsed time of an exhaustive enumeration at the
// given rate, and how many orders of magnitude that exceeds the age of the
// universe. All computation happens before the first line is recorded.
//
// Parameters:
//   - params: The report inputs (exponent, rate).
//   - consts: The static reference constants.
//   - opts: Display precision options.
//
// Returns:
//   - Report: The composed report.
//   - error: An InvalidArgumentError or DomainError; no lines are produced on failure.
func Sequential(params SequentialParams, consts Constants, opts Options) (Report, error) {
	opts = opts.normalize()

	space, err := magnitude.StateSpaceSize(params.Exponent)
	if err != nil {
		return Report{}, err
	}
	elapsed, err := magnitude.EstimateElapsedTime(space, params.Rate)
	if err != nil {
		return Report{}, err
	}
	age := consts.AgeOfUniverseSeconds()
	excess, err := magnitude.CompareOrders(elapsed.Seconds, age)
	if err != nil {
		return Report{}, err
	}

	var ladder []Line
	if opts.Verbose {
		ladder = make([]Line, 0, len(rateLadder)+1)
		ladder = append(ladder, Line{Label: "Enumeration time by rate:"})
		for _, step := range rateLadder {
			est, err := magnitude.EstimateElapsedTime(space, step.rate)
			if err != nil {
				return Report{}, err
			}
			ladder = append(ladder, Line{
				Label: "  " + step.name,
				Value: est.Format(opts.SigFigs, opts.DigitThreshold),
			})
		}
	}

	r := Report{
		Title: fmt.Sprintf("Sequential enumeration of 2^%d states", params.Exponent),
		Lines: []Line{
			{Label: "State-space size", Value: magnitude.FormatValue(space, opts.SigFigs, opts.DigitThreshold)},
			{Label: "Decimal digits", Value: formatGroupedInt64(int64(space.DecimalDigits()))},
			{Label: "Enumeration rate", Value: magnitude.FormatScientific(mustFromFloat(params.Rate), opts.SigFigs) + " ops/second"},
			{Label: "Sequential enumeration time", Value: elapsed.Format(opts.SigFigs, opts.DigitThreshold)},
			{Label: "Age of the universe", Value: magnitude.FormatScientific(age, opts.SigFigs) + " seconds"},
			{Label: "Excess over the universe age", Value: formatOrders(excess) + " orders of magnitude"},
		},
	}
	r.Lines = append(r.Lines, ladder...)
	return r, nil
}

// mustFromFloat converts an already-validated finite float to a Value.
// Validation happened in EstimateElapsedTime before any call reaches here.
func mustFromFloat(f float64) magnitude.Value {
	v, err := magnitude.FromFloat(f)
	if err != nil {
		return magnitude.Value{}
	}
	return v
}
