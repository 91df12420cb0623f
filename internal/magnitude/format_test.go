package magnitude

import (
	"math/big"
	"strings"
	"testing"
)

func TestFormatScientific(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		value   Value
		sigfigs int
		want    string
	}{
		{"one", FromInt64(1), 4, "1.000 × 10^0"},
		{"1024 at four figures", FromInt64(1024), 4, "1.024 × 10^3"},
		{"round half up", FromRat(big.NewRat(125, 100)), 2, "1.3 × 10^0"},
		{"round half up carries", FromRat(big.NewRat(9995, 1000)), 3, "1.00 × 10^1"},
		{"rounds down below half", FromRat(big.NewRat(1249, 1000)), 2, "1.2 × 10^0"},
		{"negative value", FromInt64(-1024), 4, "-1.024 × 10^3"},
		{"single sigfig", FromInt64(987), 1, "1 × 10^3"},
		{"below one", FromRat(big.NewRat(1, 1_000_000_000_000_000)), 3, "1.00 × 10^-15"},
		{"zero", FromInt64(0), 4, "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatScientific(tt.value, tt.sigfigs); got != tt.want {
				t.Errorf("FormatScientific = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("2^4096 at four figures", func(t *testing.T) {
		t.Parallel()
		v, _ := StateSpaceSize(4096)
		want := "1.044 × 10^1233"
		if got := FormatScientific(v, 4); got != want {
			t.Errorf("FormatScientific(2^4096) = %q, want %q", got, want)
		}
	})
}

func TestParseScientific_RoundTrip(t *testing.T) {
	t.Parallel()
	values := []struct {
		name  string
		value Value
	}{
		{"small integer", FromInt64(1024)},
		{"large power", mustStateSpace(t, 4096)},
		{"fraction", FromRat(big.NewRat(1, 1_000_000_000_000_000))},
		{"negative", FromInt64(-65536)},
	}

	for _, tt := range values {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			formatted := FormatScientific(tt.value, DefaultSigFigs)
			parsed, err := ParseScientific(formatted)
			if err != nil {
				t.Fatalf("ParseScientific(%q) error: %v", formatted, err)
			}

			wantOrder, err := tt.value.OrderOfMagnitude()
			if err != nil {
				t.Fatal(err)
			}
			gotOrder, err := parsed.OrderOfMagnitude()
			if err != nil {
				t.Fatal(err)
			}
			if gotOrder != wantOrder {
				t.Errorf("round-trip order = %d, want %d", gotOrder, wantOrder)
			}
		})
	}

	t.Run("rejects plain numbers", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseScientific("1234"); err == nil {
			t.Error("ParseScientific should reject input without separator")
		}
	})
}

func TestGroupedExact(t *testing.T) {
	t.Parallel()
	t.Run("small integer is grouped", func(t *testing.T) {
		t.Parallel()
		got, ok := FromInt64(1048576).GroupedExact(DefaultDigitThreshold)
		if !ok || got != "1,048,576" {
			t.Errorf("GroupedExact = %q, %v; want %q, true", got, ok, "1,048,576")
		}
	})

	t.Run("oversized integer falls back", func(t *testing.T) {
		t.Parallel()
		v, _ := StateSpaceSize(4096)
		if _, ok := v.GroupedExact(DefaultDigitThreshold); ok {
			t.Error("2^4096 exceeds the digit threshold and must not render exactly")
		}
	})

	t.Run("fraction has no exact form", func(t *testing.T) {
		t.Parallel()
		if _, ok := FromRat(big.NewRat(1, 2)).GroupedExact(DefaultDigitThreshold); ok {
			t.Error("fractional values must not render as grouped integers")
		}
	})

	t.Run("threshold boundary", func(t *testing.T) {
		t.Parallel()
		v, _ := StateSpaceSize(132) // 40 decimal digits
		if _, ok := v.GroupedExact(40); !ok {
			t.Error("a 40-digit integer should render at threshold 40")
		}
		v, _ = StateSpaceSize(133) // 41 decimal digits
		if _, ok := v.GroupedExact(40); ok {
			t.Error("a 41-digit integer should not render at threshold 40")
		}
	})
}

func TestFormatValue(t *testing.T) {
	t.Parallel()
	t.Run("appends exact form when it fits", func(t *testing.T) {
		t.Parallel()
		got := FormatValue(FromInt64(1024), 4, DefaultDigitThreshold)
		want := "1.024 × 10^3 (1,024)"
		if got != want {
			t.Errorf("FormatValue = %q, want %q", got, want)
		}
	})

	t.Run("exponential only above threshold", func(t *testing.T) {
		t.Parallel()
		v, _ := StateSpaceSize(4096)
		got := FormatValue(v, 4, DefaultDigitThreshold)
		if strings.Contains(got, "(") {
			t.Errorf("oversized value should not carry an exact suffix: %q", got)
		}
	})
}

func mustStateSpace(t *testing.T, n int) Value {
	t.Helper()
	v, err := StateSpaceSize(n)
	if err != nil {
		t.Fatalf("StateSpaceSize(%d): %v", n, err)
	}
	return v
}
