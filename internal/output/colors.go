package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for the console summary.
type ColorScheme struct {
	Header  *color.Color
	Script  *color.Color
	Success *color.Color
	Error   *color.Color
	Count   *color.Color
	Stat    *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:  color.New(color.FgWhite, color.Bold),
		Script:  color.New(color.FgCyan),
		Success: color.New(color.FgGreen),
		Error:   color.New(color.FgRed),
		Count:   color.New(color.FgYellow, color.Bold),
		Stat:    color.New(color.FgMagenta),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Header.DisableColor()
	scheme.Script.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Count.DisableColor()
	scheme.Stat.DisableColor()

	return scheme
}

// SuccessIcon returns a checkmark symbol with appropriate color.
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color.
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}

// IsTerminal reports whether w is attached to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
