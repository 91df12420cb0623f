package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	// Build the binary
	tmpDir := t.TempDir()
	binName := "lhccalc"
	if runtime.GOOS == "windows" {
		binName = "lhccalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with CWD set to this package directory.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/lhccalc")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build lhccalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Default Run",
			args:     []string{"-q"},
			wantOut:  "Sequential enumeration of 2^4096 states",
			wantCode: 0,
		},
		{
			name:     "Both Reports",
			args:     []string{"-q", "-n", "64"},
			wantOut:  "Parallel processing of 2^64 states",
			wantCode: 0,
		},
		{
			name:     "Fixed Parallel Total",
			args:     []string{"-q", "-variant", "parallel"},
			wantOut:  "1,230 seconds (20.5 minutes)",
			wantCode: 0,
		},
		{
			name:     "Comparison Table",
			args:     []string{"-q", "-compare"},
			wantOut:  "Sequential vs. parallel",
			wantCode: 0,
		},
		{
			name:     "Verbose Rate Ladder",
			args:     []string{"-v", "-variant", "sequential", "-no-color"},
			wantOut:  "Theoretical limit (1 PHz)",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "lhccalc",
			wantCode: 0,
		},
		{
			name:     "Invalid Variant",
			args:     []string{"-variant", "quantum"},
			wantOut:  "",
			wantCode: 4,
		},
		{
			name:     "Negative Exponent",
			args:     []string{"-n", "-5"},
			wantOut:  "",
			wantCode: 3,
		},
		{
			name:     "Zero Rate",
			args:     []string{"-rate", "0"},
			wantOut:  "",
			wantCode: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				if err == nil {
					t.Fatalf("Expected exit code %d, but command succeeded.\nOutput: %s", tt.wantCode, outStr)
				}
				if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() != tt.wantCode {
					t.Errorf("Exit code = %d, want %d.\nOutput: %s", exitErr.ExitCode(), tt.wantCode, outStr)
				}
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}

// TestCLI_OutputFile verifies the -o flag writes the reports to disk.
func TestCLI_OutputFile(t *testing.T) {
	tmpDir := t.TempDir()
	binPath := filepath.Join(tmpDir, "lhccalc")

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/lhccalc")
	cmd.Dir = "../.."
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build lhccalc: %v\n%s", err, out)
	}

	outFile := filepath.Join(tmpDir, "reports.txt")
	run := exec.Command(binPath, "-q", "-n", "64", "-o", outFile)
	run.Env = append(os.Environ(), "NO_COLOR=1")
	if out, err := run.CombinedOutput(); err != nil {
		t.Fatalf("Command failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), "Sequential enumeration of 2^64 states") {
		t.Errorf("output file missing report:\n%s", data)
	}
}
