package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/rlmsinclair/lhc/internal/cli"
	"github.com/rlmsinclair/lhc/internal/config"
	apperrors "github.com/rlmsinclair/lhc/internal/errors"
	"github.com/rlmsinclair/lhc/internal/format"
	"github.com/rlmsinclair/lhc/internal/logging"
	"github.com/rlmsinclair/lhc/internal/metrics"
	"github.com/rlmsinclair/lhc/internal/report"
)

// tracerName identifies this instrumentation scope.
const tracerName = "github.com/rlmsinclair/lhc/internal/app"

// runReports composes the configured report variant(s), displays them, and
// optionally appends the comparison table and writes everything to a file.
func (a *Application) runReports(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
	}

	var reports []report.Report
	err := cli.RunWithSpinner(out, "composing reports", a.Config.Quiet, func() error {
		var composeErr error
		reports, composeErr = a.composeReports(ctx)
		return composeErr
	})
	if err != nil {
		return a.handleReportError(err)
	}

	if a.Config.Verbose {
		snap := metrics.NewMemoryCollector().Snapshot()
		a.Logger.Debug("composition memory",
			logging.Uint64("heap_alloc", snap.HeapAlloc),
			logging.Uint64("heap_objects", snap.HeapObjects))
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := cli.DisplayReport(out, r, outputCfg); err != nil {
			return a.handleReportError(err)
		}
	}

	var rows []report.ComparisonRow
	if a.Config.Compare {
		rows, err = report.Compare(a.Config.Rate, a.parallelTotal(), a.reportOptions())
		if err != nil {
			return a.handleReportError(err)
		}
		cli.DisplayComparisonTable(out, rows, outputCfg)
	}

	if err := cli.WriteReportsToFile(reports, rows, outputCfg); err != nil {
		return a.handleReportError(err)
	}
	if a.Config.OutputFile != "" && !a.Config.Quiet {
		cli.DisplaySavedNotice(out, a.Config.OutputFile)
	}
	return apperrors.ExitSuccess
}

// composeReports builds the selected variant(s). When both are requested they
// compose concurrently; the order of the returned slice is always sequential
// first.
func (a *Application) composeReports(ctx context.Context) ([]report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch a.Config.NormalizedVariant() {
	case config.VariantSequential:
		r, err := a.composeSequential(ctx)
		if err != nil {
			return nil, err
		}
		return []report.Report{r}, nil
	case config.VariantParallel:
		r, err := a.composeParallel(ctx)
		if err != nil {
			return nil, err
		}
		return []report.Report{r}, nil
	default:
		reports := make([]report.Report, 2)
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			reports[0], err = a.composeSequential(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			reports[1], err = a.composeParallel(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return reports, nil
	}
}

// composeSequential builds the sequential-enumeration report, traced and
// observed by the metrics collector.
func (a *Application) composeSequential(ctx context.Context) (report.Report, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "compose.sequential")
	span.SetAttributes(
		attribute.Int("exponent", a.Config.Exponent),
		attribute.Float64("rate", a.Config.Rate),
	)
	defer span.End()

	start := time.Now()
	r, err := report.Sequential(report.SequentialParams{
		Exponent: a.Config.Exponent,
		Rate:     a.Config.Rate,
	}, report.DefaultConstants(), a.reportOptions())
	elapsed := time.Since(start)
	a.Metrics.ObserveReport(config.VariantSequential, a.Config.Exponent, elapsed, err)
	if err != nil {
		span.RecordError(err)
		return report.Report{}, apperrors.NewReportError(config.VariantSequential, err)
	}
	a.Logger.Debug("sequential report composed",
		logging.Int("lines", len(r.Lines)),
		logging.String("elapsed", format.FormatExecutionDuration(elapsed)))
	return r, nil
}

// composeParallel builds the parallel-feasibility report, traced and observed
// by the metrics collector.
func (a *Application) composeParallel(ctx context.Context) (report.Report, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "compose.parallel")
	span.SetAttributes(
		attribute.Int("exponent", a.Config.Exponent),
		attribute.Float64("dilation", a.Config.DilationFactor),
	)
	defer span.End()

	start := time.Now()
	r, err := report.Parallel(report.ParallelParams{
		Exponent:         a.Config.Exponent,
		Rate:             a.Config.Rate,
		PreparationTime:  a.Config.PreparationTime,
		AccelerationTime: a.Config.AccelerationTime,
		DilationFactor:   a.Config.DilationFactor,
	}, report.DefaultConstants(), a.reportOptions())
	elapsed := time.Since(start)
	a.Metrics.ObserveReport(config.VariantParallel, a.Config.Exponent, elapsed, err)
	if err != nil {
		span.RecordError(err)
		return report.Report{}, apperrors.NewReportError(config.VariantParallel, err)
	}
	a.Logger.Debug("parallel report composed",
		logging.Int("lines", len(r.Lines)),
		logging.String("elapsed", format.FormatExecutionDuration(elapsed)))
	return r, nil
}

// reportOptions maps the configuration to the composer display options.
func (a *Application) reportOptions() report.Options {
	return report.Options{
		SigFigs:        a.Config.SigFigs,
		DigitThreshold: a.Config.DigitThreshold,
		Verbose:        a.Config.Verbose,
	}
}

// parallelTotal is the fixed parallel elapsed time used by the comparison
// table.
func (a *Application) parallelTotal() time.Duration {
	return a.Config.PreparationTime + a.Config.AccelerationTime
}

// handleReportError logs err and maps it to the exit code contract.
func (a *Application) handleReportError(err error) int {
	if apperrors.IsContextError(err) {
		fmt.Fprintf(a.ErrWriter, "Aborted: %v\n", err)
	} else {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	}
	a.Logger.Error("report run failed", err)
	return apperrors.ExitCodeFor(err)
}
