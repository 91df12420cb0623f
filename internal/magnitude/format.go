package magnitude

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	apperrors "github.com/rlmsinclair/lhc/internal/errors"
	"github.com/rlmsinclair/lhc/internal/format"
)

const (
	// DefaultSigFigs is the number of significant digits used for scientific
	// notation when the caller does not override it. A single report always
	// uses one consistent value.
	DefaultSigFigs = 4

	// DefaultDigitThreshold is the decimal digit count above which exact
	// integers are shown only in exponential form. Below it, the exact
	// comma-grouped integer accompanies the scientific rendering.
	DefaultDigitThreshold = 40

	// scientificSeparator joins the mantissa and the power of ten.
	scientificSeparator = " × 10^"
)

// FormatScientific renders a value as "mantissa × 10^exponent" with the
// mantissa rounded half-up to sigfigs significant digits.
//
// Parameters:
//   - v: The value to format.
//   - sigfigs: The number of significant digits (clamped to at least 1).
//
// Returns:
//   - string: The formatted representation ("0" for a zero value).
func FormatScientific(v Value, sigfigs int) string {
	mantissa, exponent, err := v.Decimal(sigfigs)
	if err != nil {
		return "0"
	}
	return mantissa + scientificSeparator + strconv.Itoa(exponent)
}

// Decimal derives the display representation of the value: a mantissa string
// with sigfigs significant digits, rounded half-up, and the matching decimal
// exponent, such that v ≈ mantissa × 10^exponent.
//
// Parameters:
//   - sigfigs: The number of significant digits (clamped to at least 1).
//
// Returns:
//   - string: The mantissa, e.g. "1.045" (a leading "-" for negatives).
//   - int: The decimal exponent.
//   - error: A DomainError if the value is zero.
func (v Value) Decimal(sigfigs int) (string, int, error) {
	if sigfigs < 1 {
		sigfigs = 1
	}
	exponent, err := v.OrderOfMagnitude()
	if err != nil {
		return "", 0, err
	}

	negative := v.Sign() < 0
	abs := new(big.Rat).Abs(v.rat)

	// Scale |v| so that sigfigs digits sit left of the decimal point, then
	// round half-up with one exact integer division.
	scale := sigfigs - 1 - exponent
	num := new(big.Int).Set(abs.Num())
	den := new(big.Int).Set(abs.Denom())
	if scale >= 0 {
		num.Mul(num, pow10(scale))
	} else {
		den.Mul(den, pow10(-scale))
	}
	digits, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Lsh(rem, 1).Cmp(den) >= 0 {
		digits.Add(digits, big.NewInt(1))
	}

	// Rounding 9.99… up produces one digit too many; renormalize.
	if decimalLength(digits) > sigfigs {
		digits.Quo(digits, big.NewInt(10))
		exponent++
	}

	text := digits.Text(10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(text[:1])
	if len(text) > 1 {
		b.WriteByte('.')
		b.WriteString(text[1:])
	}
	return b.String(), exponent, nil
}

// ParseScientific parses a string produced by FormatScientific back into an
// exact Value. The reconstructed value reproduces the original's order of
// magnitude within the declared rounding precision.
//
// Parameters:
//   - s: A string of the form "mantissa × 10^exponent".
//
// Returns:
//   - Value: The reconstructed value.
//   - error: An InvalidArgumentError if s is not in scientific form.
func ParseScientific(s string) (Value, error) {
	mantissaText, exponentText, found := strings.Cut(s, scientificSeparator)
	if !found {
		return Value{}, apperrors.NewInvalidArgument("scientific", "missing %q separator in %q", scientificSeparator, s)
	}
	mantissa, ok := new(big.Rat).SetString(mantissaText)
	if !ok {
		return Value{}, apperrors.NewInvalidArgument("scientific", "invalid mantissa %q", mantissaText)
	}
	exponent, err := strconv.Atoi(exponentText)
	if err != nil {
		return Value{}, apperrors.NewInvalidArgument("scientific", "invalid exponent %q", exponentText)
	}

	scaled := new(big.Rat).Set(mantissa)
	if exponent >= 0 {
		scaled.Mul(scaled, new(big.Rat).SetInt(pow10(exponent)))
	} else {
		scaled.Quo(scaled, new(big.Rat).SetInt(pow10(-exponent)))
	}
	return Value{rat: scaled}, nil
}

// GroupedExact returns the exact integer rendering with comma-grouped digits
// when the value is an integer whose digit count does not exceed threshold.
// The second return value is false when the value is fractional or too large
// to display exactly, in which case callers fall back to exponential form.
//
// Parameters:
//   - threshold: The maximum digit count for exact display.
//
// Returns:
//   - string: The grouped integer, e.g. "1,048,576".
//   - bool: Whether an exact rendering was produced.
func (v Value) GroupedExact(threshold int) (string, bool) {
	i, ok := v.Integer()
	if !ok {
		return "", false
	}
	text := i.Text(10)
	if len(strings.TrimPrefix(text, "-")) > threshold {
		return "", false
	}
	return format.FormatNumberString(text), true
}

// FormatValue renders a value for a report line: the scientific form, with
// the exact grouped integer appended in parentheses when it fits within the
// digit threshold.
//
// Parameters:
//   - v: The value to format.
//   - sigfigs: Significant digits for the scientific mantissa.
//   - threshold: Maximum digit count for the exact integer suffix.
//
// Returns:
//   - string: The combined display string.
func FormatValue(v Value, sigfigs, threshold int) string {
	sci := FormatScientific(v, sigfigs)
	if exact, ok := v.GroupedExact(threshold); ok {
		return fmt.Sprintf("%s (%s)", sci, exact)
	}
	return sci
}
