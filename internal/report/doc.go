// Package report composes the calculator's two report variants from computed
// magnitudes and static machine constants. Composition is fail-fast: every
// parameter is validated and every quantity computed before the first line of
// a report exists, so a failed build never produces partial output.
//
// The composer performs no arithmetic of its own beyond sequencing; all
// numeric work is delegated to the magnitude engine.
package report
