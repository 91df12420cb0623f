package report

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/rlmsinclair/lhc/internal/format"
	"github.com/rlmsinclair/lhc/internal/magnitude"
)

// Line is a single labeled entry of a report: a label and its formatted
// value, or a label with an empty value for section text.
type Line struct {
	// Label is the left-hand descriptor of the entry.
	Label string
	// Value is the formatted right-hand value; empty for plain text lines.
	Value string
}

// Report is an ordered sequence of lines. Lines render in declaration order
// with no duplicate suppression or reordering.
type Report struct {
	// Title identifies the report variant.
	Title string
	// Lines are the report entries in emission order.
	Lines []Line
}

// Render writes the report to w, one line per entry, label followed by value.
// The full sequence is always written; Render never emits a partial report
// because construction is fail-fast.
//
// Parameters:
//   - w: The destination writer.
//
// Returns:
//   - error: The first write error, if any.
func (r Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "--- %s ---\n", r.Title); err != nil {
		return err
	}
	for _, line := range r.Lines {
		var err error
		if line.Value == "" {
			_, err = fmt.Fprintln(w, line.Label)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", line.Label, line.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Options controls display precision shared by all lines of one report.
type Options struct {
	// SigFigs is the significant digit count for scientific notation.
	SigFigs int
	// DigitThreshold is the maximum digit count for exact integer display.
	DigitThreshold int
	// Verbose enables the supplementary rate-ladder section.
	Verbose bool
}

// DefaultOptions returns the display options used when the caller does not
// override them.
func DefaultOptions() Options {
	return Options{
		SigFigs:        magnitude.DefaultSigFigs,
		DigitThreshold: magnitude.DefaultDigitThreshold,
	}
}

// normalize clamps unset option fields to their defaults.
func (o Options) normalize() Options {
	if o.SigFigs <= 0 {
		o.SigFigs = magnitude.DefaultSigFigs
	}
	if o.DigitThreshold <= 0 {
		o.DigitThreshold = magnitude.DefaultDigitThreshold
	}
	return o
}

// formatOrders renders an exponent difference as a power of ten, e.g.
// "10^1201".
func formatOrders(orders int) string {
	return "10^" + strconv.Itoa(orders)
}

// formatExactSeconds renders an exact duration as grouped whole seconds with
// the human-scaled form in parentheses, e.g. "1,230 seconds (20.5 minutes)".
// Durations that are not whole seconds or too long for exact display fall
// back to the estimate's scientific form.
func formatExactSeconds(est magnitude.TimeEstimate, opts Options) string {
	exact, ok := est.Seconds.GroupedExact(opts.DigitThreshold)
	if !ok {
		return est.Format(opts.SigFigs, opts.DigitThreshold)
	}
	if est.Unit == magnitude.UnitSecond {
		return exact + " seconds"
	}
	return fmt.Sprintf("%s seconds (%s %s)", exact, formatPlainDecimal(est.Scaled(), 2), est.Unit)
}

// formatPlainDecimal renders a value in plain decimal with at most the given
// number of fractional places, trimming trailing zeros ("20.50" -> "20.5").
func formatPlainDecimal(v magnitude.Value, places int) string {
	s := v.Rat().FloatString(places)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// formatGroupedInt64 renders a native integer with comma grouping.
func formatGroupedInt64(i int64) string {
	return format.FormatNumberString(strconv.FormatInt(i, 10))
}

// formatFactor renders a dilation factor: grouped when integral, plain
// decimal otherwise.
func formatFactor(factor float64) string {
	if factor == float64(int64(factor)) {
		return formatGroupedInt64(int64(factor))
	}
	r := new(big.Rat).SetFloat64(factor)
	if r == nil {
		return strconv.FormatFloat(factor, 'g', -1, 64)
	}
	return formatPlainDecimal(magnitude.FromRat(r), 2)
}
