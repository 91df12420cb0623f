// Package magnitude implements exact arithmetic and display formatting for
// numbers whose size vastly exceeds native fixed-width ranges, such as the
// 2^4096 state-space counts this calculator reports on.
//
// All values are held as exact arbitrary-precision rationals; decimal
// mantissa/exponent representations are derived only at display time, and
// order-of-magnitude comparisons are computed from exact digit counts rather
// than floating-point logarithms, so no precision is lost for values with
// thousands of digits.
package magnitude
