// Package config defines the application configuration and its resolution
// chain. Values resolve with the priority: CLI flags > environment variables
// (LHCCALC_ prefix) > built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	apperrors "github.com/rlmsinclair/lhc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "LHCCALC_"

// Report variant selectors accepted by the -variant flag.
const (
	VariantSequential = "sequential"
	VariantParallel   = "parallel"
	VariantBoth       = "both"
)

// Default configuration values.
const (
	// DefaultExponent is the bit width of the illustrative state space.
	DefaultExponent = 4096
	// DefaultRate is the sequential enumeration rate in ops/second, the
	// theoretical one-femtosecond-per-operation limit.
	DefaultRate = 1e15
	// DefaultDilationFactor is the relativistic time-compression factor of
	// a 6.5 TeV proton.
	DefaultDilationFactor = 7460
	// DefaultPreparationTime is the fixed state-preparation duration.
	DefaultPreparationTime = 30 * time.Second
	// DefaultAccelerationTime is the fixed acceleration-ramp duration.
	DefaultAccelerationTime = 20 * time.Minute
	// DefaultTimeout bounds the whole run.
	DefaultTimeout = 1 * time.Minute
)

// AppConfig holds all runtime configuration of the calculator.
type AppConfig struct {
	// Variant selects the report(s) to compose: sequential, parallel or both.
	Variant string
	// Exponent is the state-space bit width N.
	Exponent int
	// Rate is the sequential enumeration rate in operations per second.
	Rate float64
	// DilationFactor is the time-compression multiplier (>= 1).
	DilationFactor float64
	// PreparationTime is the fixed state-preparation duration.
	PreparationTime time.Duration
	// AccelerationTime is the fixed acceleration-ramp duration.
	AccelerationTime time.Duration
	// SigFigs is the significant digit count for scientific notation.
	SigFigs int
	// DigitThreshold is the maximum digit count for exact integer display.
	DigitThreshold int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Compare adds the sequential-vs-parallel comparison table.
	Compare bool
	// Verbose enables supplementary report sections and debug logging.
	Verbose bool
	// Quiet suppresses progress output; only the reports are written.
	Quiet bool
	// NoColor disables ANSI colors in terminal output.
	NoColor bool
	// TUI launches the interactive terminal interface.
	TUI bool
	// ShowMetrics dumps Prometheus metrics to stderr after the run.
	ShowMetrics bool
	// OutputFile, when set, additionally writes the reports to this path.
	OutputFile string
}

// DefaultConfig returns the configuration with every field at its default.
func DefaultConfig() AppConfig {
	return AppConfig{
		Variant:          VariantBoth,
		Exponent:         DefaultExponent,
		Rate:             DefaultRate,
		DilationFactor:   DefaultDilationFactor,
		PreparationTime:  DefaultPreparationTime,
		AccelerationTime: DefaultAccelerationTime,
		SigFigs:          0, // resolved by the display layer
		DigitThreshold:   0, // resolved by the display layer
		Timeout:          DefaultTimeout,
	}
}

// ParseConfig parses args (without the program name) into an AppConfig,
// applying environment overrides for flags not set on the command line and
// validating the result.
//
// Parameters:
//   - args: The command-line arguments, excluding the program name.
//   - output: Destination for usage text on parse errors.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError on parse or validation failure.
func ParseConfig(args []string, output io.Writer) (AppConfig, error) {
	config := DefaultConfig()

	fs := flag.NewFlagSet("lhccalc", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.Variant, "variant", config.Variant, "Report variant: sequential, parallel or both")
	fs.IntVar(&config.Exponent, "n", config.Exponent, "State-space bit width N (size is 2^N)")
	fs.Float64Var(&config.Rate, "rate", config.Rate, "Sequential enumeration rate in operations per second")
	fs.Float64Var(&config.DilationFactor, "dilation", config.DilationFactor, "Relativistic time-dilation factor (>= 1)")
	fs.DurationVar(&config.PreparationTime, "prep", config.PreparationTime, "Fixed state-preparation duration")
	fs.DurationVar(&config.AccelerationTime, "accel", config.AccelerationTime, "Fixed acceleration-ramp duration")
	fs.IntVar(&config.SigFigs, "sigfigs", config.SigFigs, "Significant digits in scientific notation (0 = default)")
	fs.IntVar(&config.DigitThreshold, "digit-threshold", config.DigitThreshold, "Maximum digits for exact integer display (0 = default)")
	fs.DurationVar(&config.Timeout, "timeout", config.Timeout, "Global timeout for the run")
	fs.BoolVar(&config.Compare, "compare", config.Compare, "Append the sequential-vs-parallel comparison table")
	fs.BoolVar(&config.Verbose, "v", config.Verbose, "Verbose output (supplementary sections, debug logging)")
	fs.BoolVar(&config.Quiet, "q", config.Quiet, "Quiet mode: reports only, no progress output")
	fs.BoolVar(&config.NoColor, "no-color", config.NoColor, "Disable ANSI colors")
	fs.BoolVar(&config.TUI, "tui", config.TUI, "Launch the interactive terminal interface")
	fs.BoolVar(&config.ShowMetrics, "show-metrics", config.ShowMetrics, "Dump Prometheus metrics to stderr after the run")
	fs.StringVar(&config.OutputFile, "o", config.OutputFile, "Also write the reports to this file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("parsing flags: %v", err)
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks cross-field constraints that flag parsing cannot express.
//
// Returns:
//   - error: The first violation found. Engine parameter values yield an
//     InvalidArgumentError or DomainError; problems with the configuration
//     surface itself yield a ConfigError.
func (c AppConfig) Validate() error {
	switch strings.ToLower(c.Variant) {
	case VariantSequential, VariantParallel, VariantBoth:
	default:
		return apperrors.NewConfigError("unknown variant %q: must be %s, %s or %s",
			c.Variant, VariantSequential, VariantParallel, VariantBoth)
	}
	// Parameter-value violations carry their engine classification so the
	// exit code lands on the parameter contract, not the config one.
	if c.Exponent < 0 {
		return apperrors.NewInvalidArgument("exponent", "must be >= 0, got %d", c.Exponent)
	}
	if c.Rate <= 0 || math.IsInf(c.Rate, 0) || math.IsNaN(c.Rate) {
		return apperrors.NewDomainError("rate", "must be a finite number > 0", c.Rate)
	}
	if c.DilationFactor < 1 {
		return apperrors.NewDomainError("dilation", "must be >= 1", c.DilationFactor)
	}
	if c.PreparationTime < 0 {
		return apperrors.NewInvalidArgument("preparation", "must be non-negative, got %s", c.PreparationTime)
	}
	if c.AccelerationTime < 0 {
		return apperrors.NewInvalidArgument("acceleration", "must be non-negative, got %s", c.AccelerationTime)
	}
	if c.PreparationTime+c.AccelerationTime <= 0 {
		return apperrors.NewInvalidArgument("total", "preparation + acceleration must be positive")
	}
	if c.SigFigs < 0 {
		return apperrors.NewInvalidArgument("sigfigs", "must be >= 0, got %d", c.SigFigs)
	}
	if c.DigitThreshold < 0 {
		return apperrors.NewInvalidArgument("digit-threshold", "must be >= 0, got %d", c.DigitThreshold)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("quiet and verbose are mutually exclusive")
	}
	return nil
}

// NormalizedVariant returns the variant selector lowercased.
func (c AppConfig) NormalizedVariant() string {
	return strings.ToLower(c.Variant)
}

// String renders the configuration for debug logging.
func (c AppConfig) String() string {
	return fmt.Sprintf("variant=%s n=%d rate=%g dilation=%g prep=%s accel=%s timeout=%s",
		c.NormalizedVariant(), c.Exponent, c.Rate, c.DilationFactor,
		c.PreparationTime, c.AccelerationTime, c.Timeout)
}
