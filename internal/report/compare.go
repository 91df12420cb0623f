package report

import (
	"strconv"
	"time"

	"github.com/rlmsinclair/lhc/internal/magnitude"
)

// ComparisonRow is one line of the sequential-vs-parallel table: the elapsed
// times of both models for one exponent and the resulting speedup.
type ComparisonRow struct {
	// Exponent is the state-space bit width N.
	Exponent int
	// Sequential is the formatted sequential enumeration time.
	Sequential string
	// Parallel is the formatted fixed parallel time.
	Parallel string
	// Speedup is the formatted speedup factor (2^N, exact when small).
	Speedup string
}

// comparisonExponents are the ladder steps of the comparison table,
// doubling from a single byte up to the full 4096-bit space.
var comparisonExponents = []int{8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096}

// speedupExactLimit is the largest exponent whose 2^N speedup is shown as an
// exact grouped integer; larger speedups render in power form.
const speedupExactLimit = 20

// Compare builds the sequential-vs-parallel comparison table across the
// standard exponent ladder. The parallel time is the fixed preparation +
// acceleration total for every row, regardless of exponent.
//
// Parameters:
//   - rate: The sequential enumeration rate in operations per second.
//   - parallelTotal: The fixed parallel elapsed time.
//   - opts: Display precision options.
//
// Returns:
//   - []ComparisonRow: One row per ladder exponent.
//   - error: A DomainError if rate is not strictly positive.
func Compare(rate float64, parallelTotal time.Duration, opts Options) ([]ComparisonRow, error) {
	opts = opts.normalize()
	parallel := formatExactSeconds(durationEstimate(parallelTotal), opts)

	rows := make([]ComparisonRow, 0, len(comparisonExponents))
	for _, exponent := range comparisonExponents {
		space, err := magnitude.StateSpaceSize(exponent)
		if err != nil {
			return nil, err
		}
		elapsed, err := magnitude.EstimateElapsedTime(space, rate)
		if err != nil {
			return nil, err
		}

		speedup := "2^" + strconv.Itoa(exponent)
		if exponent <= speedupExactLimit {
			if exact, ok := space.GroupedExact(opts.DigitThreshold); ok {
				speedup = exact
			}
		}

		rows = append(rows, ComparisonRow{
			Exponent:   exponent,
			Sequential: elapsed.Format(opts.SigFigs, opts.DigitThreshold),
			Parallel:   parallel,
			Speedup:    speedup + "×",
		})
	}
	return rows, nil
}
