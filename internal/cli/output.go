// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayComparisonTable].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatReportLine].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportsToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rlmsinclair/lhc/internal/report"
	"github.com/rlmsinclair/lhc/internal/ui"
)

// OutputConfig holds configuration for report output.
type OutputConfig struct {
	// OutputFile is the path to save the reports (empty for no file output).
	OutputFile string
	// Quiet mode suppresses decoration; reports render uncolored.
	Quiet bool
}

// FormatReportLine formats one report entry as "label: value", or the bare
// label for section text.
//
// Parameters:
//   - line: The report entry.
//
// Returns:
//   - string: The formatted line, without a trailing newline.
func FormatReportLine(line report.Line) string {
	if line.Value == "" {
		return line.Label
	}
	return fmt.Sprintf("%s: %s", line.Label, line.Value)
}

// DisplayReport writes a report to out with the title emphasized and each
// label colorized. Quiet mode falls back to the report's plain rendering.
//
// Parameters:
//   - out: The output writer.
//   - r: The report to display.
//   - config: Output configuration.
//
// Returns:
//   - error: The first write error, if any.
func DisplayReport(out io.Writer, r report.Report, config OutputConfig) error {
	if config.Quiet {
		return r.Render(out)
	}

	if _, err := fmt.Fprintf(out, "%s%s--- %s ---%s\n", ui.ColorBold(), ui.ColorCyan(), r.Title, ui.ColorReset()); err != nil {
		return err
	}
	for _, line := range r.Lines {
		var err error
		if line.Value == "" {
			_, err = fmt.Fprintln(out, line.Label)
		} else {
			_, err = fmt.Fprintf(out, "%s%s:%s %s\n", ui.ColorPrimary(), line.Label, ui.ColorReset(), line.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DisplayComparisonTable displays the sequential-vs-parallel table with
// aligned columns. Uses manual padding to correctly handle ANSI color codes.
//
// Parameters:
//   - out: The output writer.
//   - rows: The comparison rows, one per exponent.
//   - config: Output configuration.
func DisplayComparisonTable(out io.Writer, rows []report.ComparisonRow, config OutputConfig) {
	fmt.Fprintf(out, "\n--- Sequential vs. parallel ---\n")

	headers := [4]string{"N", "Sequential", "Parallel", "Speedup"}
	widths := [4]int{len(headers[0]), len(headers[1]), len(headers[2]), len(headers[3])}
	cells := make([][4]string, len(rows))
	for i, row := range rows {
		cells[i] = [4]string{fmt.Sprintf("2^%d", row.Exponent), row.Sequential, row.Parallel, row.Speedup}
		for col, cell := range cells[i] {
			if len(cell) > widths[col] {
				widths[col] = len(cell)
			}
		}
	}

	underline, reset := "", ""
	if !config.Quiet {
		underline, reset = ui.ColorUnderline(), ui.ColorReset()
	}
	for col, header := range headers {
		fmt.Fprintf(out, "%s%s%s%s   ", underline, header, reset, padRight("", widths[col]-len(header)))
	}
	fmt.Fprintln(out)

	for _, row := range cells {
		for col, cell := range row {
			fmt.Fprintf(out, "%s%s   ", cell, padRight("", widths[col]-len(cell)))
		}
		fmt.Fprintln(out)
	}
}

// padRight returns s extended with spaces to the given extra length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// WriteReportsToFile writes the composed reports (and the comparison table,
// when present) to the configured file, uncolored, with a generation header.
//
// Parameters:
//   - reports: The composed reports, in display order.
//   - rows: The comparison rows; nil when the table was not requested.
//   - config: Output configuration; a no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportsToFile(reports []report.Report, rows []report.ComparisonRow, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# State-Space Feasibility Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "\n")

	for _, r := range reports {
		if err := r.Render(file); err != nil {
			return fmt.Errorf("failed to write report %q: %w", r.Title, err)
		}
		fmt.Fprintln(file)
	}
	if rows != nil {
		DisplayComparisonTable(file, rows, OutputConfig{Quiet: true})
	}
	return nil
}

// DisplaySavedNotice confirms the file write on the terminal.
func DisplaySavedNotice(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Reports saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
