package report

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rlmsinclair/lhc/internal/errors"
)

func TestSequential_LineOrder(t *testing.T) {
	r, err := Sequential(SequentialParams{Exponent: 4096, Rate: 1e15}, DefaultConstants(), DefaultOptions())
	require.NoError(t, err)

	labels := make([]string, len(r.Lines))
	for i, line := range r.Lines {
		labels[i] = line.Label
	}
	assert.Equal(t, []string{
		"State-space size",
		"Decimal digits",
		"Enumeration rate",
		"Sequential enumeration time",
		"Age of the universe",
		"Excess over the universe age",
	}, labels)
}

func TestSequential_4096AtTheoreticalLimit(t *testing.T) {
	r, err := Sequential(SequentialParams{Exponent: 4096, Rate: 1e15}, DefaultConstants(), DefaultOptions())
	require.NoError(t, err)

	byLabel := linesByLabel(r)
	assert.Equal(t, "1.044 × 10^1233", byLabel["State-space size"])
	assert.Equal(t, "1,234", byLabel["Decimal digits"])
	assert.Contains(t, byLabel["Sequential enumeration time"], "years")

	// The elapsed time must exceed the universe age by at least 10^1000.
	excess := byLabel["Excess over the universe age"]
	require.True(t, strings.HasPrefix(excess, "10^"), "excess line %q", excess)
	orders, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(excess, "10^"), " orders of magnitude"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, orders, 1000)
}

func TestSequential_ZeroExponentBoundary(t *testing.T) {
	r, err := Sequential(SequentialParams{Exponent: 0, Rate: 1e15}, DefaultConstants(), DefaultOptions())
	require.NoError(t, err)

	byLabel := linesByLabel(r)
	assert.Equal(t, "1.000 × 10^0 (1)", byLabel["State-space size"])
	assert.Equal(t, "1.000 × 10^-15 seconds", byLabel["Sequential enumeration time"])
}

func TestSequential_VerboseRateLadder(t *testing.T) {
	opts := DefaultOptions()
	opts.Verbose = true
	r, err := Sequential(SequentialParams{Exponent: 64, Rate: 1e9}, DefaultConstants(), opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	out := buf.String()
	for _, name := range []string{"Conservative (1 MHz)", "Standard (1 GHz)", "Maximum (1 THz)", "Theoretical limit (1 PHz)"} {
		assert.Contains(t, out, name)
	}
}

func TestSequential_InvalidInputsEmitNothing(t *testing.T) {
	tests := []struct {
		name   string
		params SequentialParams
	}{
		{"negative exponent", SequentialParams{Exponent: -1, Rate: 1e15}},
		{"zero rate", SequentialParams{Exponent: 4096, Rate: 0}},
		{"negative rate", SequentialParams{Exponent: 4096, Rate: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Sequential(tt.params, DefaultConstants(), DefaultOptions())
			require.Error(t, err)
			assert.True(t, apperrors.IsParameterError(err), "error %v should classify as a parameter error", err)
			assert.Empty(t, r.Lines, "a failed build must not produce lines")
		})
	}
}

func TestReport_RenderOrder(t *testing.T) {
	r := Report{
		Title: "test",
		Lines: []Line{
			{Label: "First", Value: "1"},
			{Label: "section text"},
			{Label: "Second", Value: "2"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))

	assert.Equal(t, "--- test ---\nFirst: 1\nsection text\nSecond: 2\n", buf.String())
}

func linesByLabel(r Report) map[string]string {
	m := make(map[string]string, len(r.Lines))
	for _, line := range r.Lines {
		m[line.Label] = line.Value
	}
	return m
}
