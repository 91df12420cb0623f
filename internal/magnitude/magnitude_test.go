package magnitude

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	apperrors "github.com/rlmsinclair/lhc/internal/errors"
)

func TestStateSpaceSize_ExactValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"zero exponent", 0, "1"},
		{"one bit", 1, "2"},
		{"ten bits", 10, "1024"},
		{"sixteen bits", 16, "65536"},
		{"sixty-four bits", 64, "18446744073709551616"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v, err := StateSpaceSize(tt.n)
			if err != nil {
				t.Fatalf("StateSpaceSize(%d) error: %v", tt.n, err)
			}
			i, ok := v.Integer()
			if !ok {
				t.Fatalf("StateSpaceSize(%d) is not an integer", tt.n)
			}
			if i.Text(10) != tt.want {
				t.Errorf("StateSpaceSize(%d) = %s, want %s", tt.n, i.Text(10), tt.want)
			}
		})
	}
}

func TestStateSpaceSize_4096(t *testing.T) {
	t.Parallel()
	v, err := StateSpaceSize(4096)
	if err != nil {
		t.Fatalf("StateSpaceSize(4096) error: %v", err)
	}

	i, ok := v.Integer()
	if !ok {
		t.Fatal("2^4096 must be an exact integer")
	}
	text := i.Text(10)

	if len(text) != 1234 {
		t.Errorf("2^4096 has %d decimal digits, want 1234", len(text))
	}
	if !strings.HasPrefix(text, "10443888814131525066") {
		t.Errorf("2^4096 leading digits = %s…, want 10443888814131525066…", text[:20])
	}

	// Cross-check against an independent computation.
	expected := new(big.Int).Exp(big.NewInt(2), big.NewInt(4096), nil)
	if i.Cmp(expected) != 0 {
		t.Error("2^4096 does not match big.Int.Exp reference")
	}
}

func TestStateSpaceSize_NegativeExponent(t *testing.T) {
	t.Parallel()
	_, err := StateSpaceSize(-1)
	if err == nil {
		t.Fatal("StateSpaceSize(-1) should fail")
	}
	var invalid *apperrors.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Errorf("error type = %T, want InvalidArgumentError", err)
	}
	if invalid.Param != "exponent" {
		t.Errorf("Param = %q, want %q", invalid.Param, "exponent")
	}
}

func TestOrderOfMagnitude(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value Value
		want  int
	}{
		{"one", FromInt64(1), 0},
		{"nine", FromInt64(9), 0},
		{"ten", FromInt64(10), 1},
		{"ninety-nine", FromInt64(99), 1},
		{"thousand", FromInt64(1000), 3},
		{"negative thousand", FromInt64(-1000), 3},
		{"one tenth", FromRat(big.NewRat(1, 10)), -1},
		{"half", FromRat(big.NewRat(1, 2)), -1},
		{"femto", FromRat(big.NewRat(1, 1_000_000_000_000_000)), -15},
		{"just below ten", FromRat(big.NewRat(9999, 1000)), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.value.OrderOfMagnitude()
			if err != nil {
				t.Fatalf("OrderOfMagnitude error: %v", err)
			}
			if got != tt.want {
				t.Errorf("OrderOfMagnitude = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("2^4096 has order 1233", func(t *testing.T) {
		t.Parallel()
		v, _ := StateSpaceSize(4096)
		got, err := v.OrderOfMagnitude()
		if err != nil {
			t.Fatal(err)
		}
		if got != 1233 {
			t.Errorf("order of 2^4096 = %d, want 1233", got)
		}
	})

	t.Run("zero has no order", func(t *testing.T) {
		t.Parallel()
		if _, err := FromInt64(0).OrderOfMagnitude(); err == nil {
			t.Error("OrderOfMagnitude(0) should fail")
		}
	})
}

func TestCompareOrders(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"equal orders", FromInt64(5), FromInt64(9), 0},
		{"one order apart", FromInt64(100), FromInt64(10), 1},
		{"three orders apart", FromInt64(1), FromRat(big.NewRat(1, 1000)), 3},
		{"b larger", FromInt64(10), FromInt64(100_000), -4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CompareOrders(tt.a, tt.b)
			if err != nil {
				t.Fatalf("CompareOrders error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CompareOrders = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("zero operand is rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := CompareOrders(FromInt64(0), FromInt64(1)); err == nil {
			t.Error("CompareOrders(0, 1) should fail")
		}
		if _, err := CompareOrders(FromInt64(1), FromInt64(0)); err == nil {
			t.Error("CompareOrders(1, 0) should fail")
		}
	})
}

func TestValue_DecimalDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value Value
		want  int
	}{
		{"one", FromInt64(1), 1},
		{"1024", FromInt64(1024), 4},
		{"below one", FromRat(big.NewRat(1, 2)), 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.value.DecimalDigits(); got != tt.want {
				t.Errorf("DecimalDigits = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValue_Div(t *testing.T) {
	t.Parallel()
	t.Run("exact quotient", func(t *testing.T) {
		t.Parallel()
		q, err := FromInt64(10).Div(FromInt64(4))
		if err != nil {
			t.Fatal(err)
		}
		if q.Rat().Cmp(big.NewRat(5, 2)) != 0 {
			t.Errorf("10/4 = %s, want 5/2", q.Rat())
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		t.Parallel()
		_, err := FromInt64(10).Div(FromInt64(0))
		var domain *apperrors.DomainError
		if !errors.As(err, &domain) {
			t.Errorf("error type = %T, want DomainError", err)
		}
	})
}

func TestFromFloat(t *testing.T) {
	t.Parallel()
	t.Run("exact power of ten", func(t *testing.T) {
		t.Parallel()
		v, err := FromFloat(1e15)
		if err != nil {
			t.Fatal(err)
		}
		if v.Rat().Cmp(new(big.Rat).SetInt64(1_000_000_000_000_000)) != 0 {
			t.Errorf("FromFloat(1e15) = %s", v.Rat())
		}
	})

	t.Run("NaN rejected", func(t *testing.T) {
		t.Parallel()
		nan := func() float64 { z := 0.0; return z / z }()
		if _, err := FromFloat(nan); err == nil {
			t.Error("FromFloat(NaN) should fail")
		}
	})
}
