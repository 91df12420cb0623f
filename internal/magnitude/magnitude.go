package magnitude

import (
	"math/big"

	apperrors "github.com/rlmsinclair/lhc/internal/errors"
)

// Value is an immutable exact magnitude: an arbitrary-precision rational
// with derived decimal representations for display. The zero Value is the
// number zero.
type Value struct {
	rat *big.Rat
}

// FromInt creates a Value from an arbitrary-precision integer.
// The integer is copied; the caller retains ownership of i.
//
// Parameters:
//   - i: The integer value.
//
// Returns:
//   - Value: The exact magnitude.
func FromInt(i *big.Int) Value {
	return Value{rat: new(big.Rat).SetInt(i)}
}

// FromInt64 creates a Value from a native integer.
func FromInt64(i int64) Value {
	return Value{rat: new(big.Rat).SetInt64(i)}
}

// FromRat creates a Value from an arbitrary-precision rational.
// The rational is copied; the caller retains ownership of r.
func FromRat(r *big.Rat) Value {
	return Value{rat: new(big.Rat).Set(r)}
}

// FromFloat creates a Value from a float64. NaN and infinities have no exact
// rational representation and yield an InvalidArgumentError.
//
// Parameters:
//   - f: The floating-point value.
//
// Returns:
//   - Value: The exact magnitude.
//   - error: An InvalidArgumentError if f is not finite.
func FromFloat(f float64) (Value, error) {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Value{}, apperrors.NewInvalidArgument("value", "must be a finite number, got %v", f)
	}
	return Value{rat: r}, nil
}

// StateSpaceSize returns 2^n, the count of distinct n-bit combinations, as an
// exact arbitrary-precision integer. The computation never overflows or
// truncates regardless of n; 2^4096 (1234 decimal digits) and far beyond are
// handled exactly.
//
// Parameters:
//   - n: The bit width of the state space.
//
// Returns:
//   - Value: The exact value of 2^n.
//   - error: An InvalidArgumentError if n is negative.
func StateSpaceSize(n int) (Value, error) {
	if n < 0 {
		return Value{}, apperrors.NewInvalidArgument("exponent", "must be non-negative, got %d", n)
	}
	return FromInt(powerOfTwo(uint(n))), nil
}

// Rat returns a copy of the exact rational representation.
func (v Value) Rat() *big.Rat {
	if v.rat == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(v.rat)
}

// Sign returns -1, 0 or +1 depending on the sign of the value.
func (v Value) Sign() int {
	if v.rat == nil {
		return 0
	}
	return v.rat.Sign()
}

// Cmp compares v and other, returning -1, 0 or +1.
func (v Value) Cmp(other Value) int {
	return v.Rat().Cmp(other.Rat())
}

// IsInt reports whether the value is an exact integer.
func (v Value) IsInt() bool {
	return v.rat == nil || v.rat.IsInt()
}

// Integer returns the exact integer form of the value and true when the value
// is an integer, or nil and false otherwise.
func (v Value) Integer() (*big.Int, bool) {
	if v.rat == nil {
		return new(big.Int), true
	}
	if !v.rat.IsInt() {
		return nil, false
	}
	return new(big.Int).Set(v.rat.Num()), true
}

// Div returns v / divisor as a new exact Value. Division by zero yields a
// DomainError.
//
// Parameters:
//   - divisor: The divisor.
//
// Returns:
//   - Value: The exact quotient.
//   - error: A DomainError if divisor is zero.
func (v Value) Div(divisor Value) (Value, error) {
	if divisor.Sign() == 0 {
		return Value{}, apperrors.NewDomainError("divisor", "must be non-zero", "0")
	}
	return Value{rat: new(big.Rat).Quo(v.Rat(), divisor.Rat())}, nil
}

// Mul returns v * other as a new exact Value.
func (v Value) Mul(other Value) Value {
	return Value{rat: new(big.Rat).Mul(v.Rat(), other.Rat())}
}

// Add returns v + other as a new exact Value.
func (v Value) Add(other Value) Value {
	return Value{rat: new(big.Rat).Add(v.Rat(), other.Rat())}
}

// DecimalDigits returns the number of decimal digits of the integer part of
// |v|, or 1 for values below 1. For exact integers this is the printed digit
// count (e.g., 1234 for 2^4096).
func (v Value) DecimalDigits() int {
	ord, err := v.OrderOfMagnitude()
	if err != nil || ord < 0 {
		return 1
	}
	return ord + 1
}

// OrderOfMagnitude returns floor(log10 |v|) computed from exact digit counts,
// never via floating-point logarithms. A DomainError is returned for zero,
// which has no order of magnitude.
//
// Returns:
//   - int: floor(log10 |v|).
//   - error: A DomainError if v is zero.
func (v Value) OrderOfMagnitude() (int, error) {
	if v.Sign() == 0 {
		return 0, apperrors.NewDomainError("value", "must be non-zero", "0")
	}
	num := new(big.Int).Abs(v.rat.Num())
	den := v.rat.Denom() // always positive

	// First estimate from printed digit counts, then correct by one exact
	// comparison: |v| >= 10^e iff num*10^max(0,-e) >= den*10^max(0,e).
	e := decimalLength(num) - decimalLength(den)
	if geScaled(num, den, e) {
		return e, nil
	}
	return e - 1, nil
}

// CompareOrders returns floor(log10 a) - floor(log10 b): the number of
// decimal orders of magnitude by which a exceeds b (negative when b is
// larger). Both values must be non-zero.
//
// Parameters:
//   - a: The first magnitude.
//   - b: The second magnitude.
//
// Returns:
//   - int: The exponent difference.
//   - error: A DomainError if either value is zero.
func CompareOrders(a, b Value) (int, error) {
	oa, err := a.OrderOfMagnitude()
	if err != nil {
		return 0, err
	}
	ob, err := b.OrderOfMagnitude()
	if err != nil {
		return 0, err
	}
	return oa - ob, nil
}

// decimalLength returns the number of decimal digits of a non-negative
// integer (1 for zero).
func decimalLength(i *big.Int) int {
	if i.Sign() == 0 {
		return 1
	}
	return len(i.Text(10))
}

// geScaled reports whether num/den >= 10^e, using a single exact big.Int
// comparison with the power of ten applied to whichever side keeps both
// operands integral.
func geScaled(num, den *big.Int, e int) bool {
	if e >= 0 {
		scaled := new(big.Int).Mul(den, pow10(e))
		return num.Cmp(scaled) >= 0
	}
	scaled := new(big.Int).Mul(num, pow10(-e))
	return scaled.Cmp(den) >= 0
}

// pow10 returns 10^e for e >= 0.
func pow10(e int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
}
