// Package ui provides theme and color support for the calculator's output.
// It defines color schemes and ANSI escape code accessors shared by the CLI
// report renderer and the TUI dashboard, so presentation styling stays
// decoupled from the magnitude engine and the report composer.
package ui
