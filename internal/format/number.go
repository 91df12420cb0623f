package format

import "strings"

// FormatNumberString inserts comma separators into a decimal digit string,
// grouping digits in threes from the right (e.g., "1048576" -> "1,048,576").
// A leading minus sign is preserved. The input is assumed to be a plain
// base-10 integer representation; non-digit content other than a leading
// sign is returned unchanged.
//
// Parameters:
//   - s: The decimal digit string to group.
//
// Returns:
//   - string: The grouped representation.
func FormatNumberString(s string) string {
	if s == "" {
		return s
	}

	sign := ""
	digits := s
	if digits[0] == '-' || digits[0] == '+' {
		sign = digits[:1]
		digits = digits[1:]
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return s
		}
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var builder strings.Builder
	builder.Grow(len(digits) + len(digits)/3 + len(sign))
	builder.WriteString(sign)

	lead := len(digits) % 3
	if lead > 0 {
		builder.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(digits[i : i+3])
	}
	return builder.String()
}
