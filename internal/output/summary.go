// Package output renders the end-of-run console summary.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Wintoo12/Automation/internal/metrics"
	"github.com/Wintoo12/Automation/internal/orchestrator"
)

// Rounding for durations in the summary; finer precision is noise at
// human scale.
const (
	summaryElapsedPrecision = 10 * time.Millisecond
	statPrecision           = time.Millisecond
)

// Formatter writes the human-readable execution summary.
type Formatter struct {
	w       io.Writer
	scheme  *ColorScheme
	noColor bool
}

// NewFormatter creates a Formatter writing to w. Colors are disabled when
// noColor is set or when w is not a terminal.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	if w == nil {
		w = os.Stdout
	}
	if noColor || !IsTerminal(w) {
		return &Formatter{w: w, scheme: NoColorScheme(), noColor: true}
	}
	return &Formatter{w: w, scheme: DefaultColorScheme()}
}

// PrintSummary renders the run's outcome: which scripts passed, which
// failed, and the attempt duration statistics when any were recorded.
func (f *Formatter) PrintSummary(summary *orchestrator.Summary, stats metrics.Snapshot) {
	fmt.Fprintln(f.w)
	f.scheme.Header.Fprintln(f.w, "Execution Summary")
	f.scheme.Header.Fprintln(f.w, "=================")

	for _, path := range summary.Successful {
		fmt.Fprintf(f.w, "  %s %s\n", SuccessIcon(f.noColor), f.scheme.Script.Sprint(path))
	}
	for _, path := range summary.Failed {
		fmt.Fprintf(f.w, "  %s %s\n", ErrorIcon(f.noColor), f.scheme.Script.Sprint(path))
	}

	fmt.Fprintf(f.w, "\n%s succeeded, %s failed (of %s scripts) in %s\n",
		f.scheme.Success.Sprintf("%d", len(summary.Successful)),
		f.scheme.Error.Sprintf("%d", len(summary.Failed)),
		f.scheme.Count.Sprintf("%d", summary.Total()),
		summary.Elapsed.Round(summaryElapsedPrecision),
	)

	if stats.Count > 0 {
		fmt.Fprintf(f.w, "attempt durations: %s\n", f.scheme.Stat.Sprintf(
			"n=%d min=%v mean=%v p95=%v max=%v",
			stats.Count,
			stats.Min.Round(statPrecision),
			stats.Mean.Round(statPrecision),
			stats.P95.Round(statPrecision),
			stats.Max.Round(statPrecision),
		))
	}
}

// PrintValidation renders one script's pre-flight validation verdict.
func (f *Formatter) PrintValidation(path string, valid bool) {
	icon := SuccessIcon(f.noColor)
	if !valid {
		icon = ErrorIcon(f.noColor)
	}
	fmt.Fprintf(f.w, "  %s %s\n", icon, f.scheme.Script.Sprint(path))
}
