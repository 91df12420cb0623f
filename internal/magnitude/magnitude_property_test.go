package magnitude

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCompareOrders_Antisymmetry verifies that swapping the operands of the
// order comparison negates the result: CompareOrders(a, b) == -CompareOrders(b, a).
func TestCompareOrders_Antisymmetry(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("CompareOrders is antisymmetric", prop.ForAll(
		func(na, nb int) bool {
			a, err := StateSpaceSize(na)
			if err != nil {
				return false
			}
			b, err := StateSpaceSize(nb)
			if err != nil {
				return false
			}
			ab, err := CompareOrders(a, b)
			if err != nil {
				return false
			}
			ba, err := CompareOrders(b, a)
			if err != nil {
				return false
			}
			return ab == -ba
		},
		gen.IntRange(0, 8192),
		gen.IntRange(0, 8192),
	))

	properties.TestingRun(t)
}

// TestEstimateElapsedTime_MonotonicInSpace verifies that a strictly larger
// state space never yields a shorter sequential estimate at a fixed rate.
func TestEstimateElapsedTime_MonotonicInSpace(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("elapsed time grows with the state space", prop.ForAll(
		func(na, nb int) bool {
			if na == nb {
				return true
			}
			lo, hi := na, nb
			if lo > hi {
				lo, hi = hi, lo
			}
			small, err := StateSpaceSize(lo)
			if err != nil {
				return false
			}
			large, err := StateSpaceSize(hi)
			if err != nil {
				return false
			}
			estSmall, err := EstimateElapsedTime(small, 1e15)
			if err != nil {
				return false
			}
			estLarge, err := EstimateElapsedTime(large, 1e15)
			if err != nil {
				return false
			}
			return estLarge.Seconds.Cmp(estSmall.Seconds) > 0
		},
		gen.IntRange(0, 4096),
		gen.IntRange(0, 4096),
	))

	properties.TestingRun(t)
}

// TestEstimateElapsedTime_MonotonicInRate verifies that a strictly faster
// rate never yields a longer sequential estimate for a fixed state space.
func TestEstimateElapsedTime_MonotonicInRate(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	space := mustStateSpaceProp(t, 1024)

	properties.Property("elapsed time shrinks as the rate grows", prop.ForAll(
		func(ra, rb float64) bool {
			if ra == rb {
				return true
			}
			slow, fast := ra, rb
			if slow > fast {
				slow, fast = fast, slow
			}
			estSlow, err := EstimateElapsedTime(space, slow)
			if err != nil {
				return false
			}
			estFast, err := EstimateElapsedTime(space, fast)
			if err != nil {
				return false
			}
			return estFast.Seconds.Cmp(estSlow.Seconds) < 0
		},
		gen.Float64Range(1, 1e15),
		gen.Float64Range(1, 1e15),
	))

	properties.TestingRun(t)
}

// TestApplyDilation_Identity verifies the identity law: dilation by exactly
// 1 returns an estimate equal to its input.
func TestApplyDilation_Identity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("dilation by 1 is the identity", prop.ForAll(
		func(n int) bool {
			space, err := StateSpaceSize(n)
			if err != nil {
				return false
			}
			est, err := EstimateElapsedTime(space, 1e9)
			if err != nil {
				return false
			}
			dilated, err := ApplyDilation(est, 1)
			if err != nil {
				return false
			}
			return dilated.Seconds.Cmp(est.Seconds) == 0 && dilated.Unit == est.Unit
		},
		gen.IntRange(0, 4096),
	))

	properties.TestingRun(t)
}

// TestFormatScientific_RoundTripOrder verifies that formatting and re-parsing
// a state-space size preserves its order of magnitude.
func TestFormatScientific_RoundTripOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("scientific round-trip preserves the order of magnitude", prop.ForAll(
		func(n, sigfigs int) bool {
			v, err := StateSpaceSize(n)
			if err != nil {
				return false
			}
			parsed, err := ParseScientific(FormatScientific(v, sigfigs))
			if err != nil {
				return false
			}
			wantOrder, err := v.OrderOfMagnitude()
			if err != nil {
				return false
			}
			gotOrder, err := parsed.OrderOfMagnitude()
			if err != nil {
				return false
			}
			// Rounding half-up can promote 9.99…×10^k to 1×10^(k+1).
			return gotOrder == wantOrder || gotOrder == wantOrder+1
		},
		gen.IntRange(0, 4096),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}

func mustStateSpaceProp(t *testing.T, n int) Value {
	t.Helper()
	v, err := StateSpaceSize(n)
	if err != nil {
		t.Fatalf("StateSpaceSize(%d): %v", n, err)
	}
	return v
}
