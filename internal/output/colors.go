package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Time          func(format string, a ...interface{}) string
	Countdown     func(format string, a ...interface{}) string
	CountdownSoon func(format string, a ...interface{}) string
	CountdownNow  func(format string, a ...interface{}) string
	Line          func(format string, a ...interface{}) string
	Station       func(format string, a ...interface{}) string
	Dest          func(format string, a ...interface{}) string
	Note          func(format string, a ...interface{}) string
	Priority      func(format string, a ...interface{}) string
	Header        func(format string, a ...interface{}) string
	Muted         func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	// Determine if we should use colors
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		// Return no-op color functions
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Time:          noColor,
			Countdown:     noColor,
			CountdownSoon: noColor,
			CountdownNow:  noColor,
			Line:          noColor,
			Station:       noColor,
			Dest:          noColor,
			Note:          noColor,
			Priority:      noColor,
			Header:        noColor,
			Muted:         noColor,
		}
	}

	// Create colored functions
	return &Colors{
		Time:          color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Countdown:     color.New(color.FgGreen).SprintfFunc(),
		CountdownSoon: color.New(color.FgYellow).SprintfFunc(),
		CountdownNow:  color.New(color.FgRed, color.Bold).SprintfFunc(),
		Line:          color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Station:       color.New(color.FgMagenta).SprintfFunc(),
		Dest:          color.New(color.FgWhite).SprintfFunc(),
		Note:          color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Priority:      color.New(color.FgRed, color.Bold).SprintfFunc(),
		Header:        color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:         color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatCountdown formats a countdown value with appropriate color (fixed 4-char width)
func (c *Colors) FormatCountdown(countdown int) string {
	if countdown < 0 {
		return c.Muted("%4d", countdown)
	}
	if countdown <= 2 {
		return c.CountdownNow("%4d", countdown)
	}
	if countdown <= 5 {
		return c.CountdownSoon("%4d", countdown)
	}
	return c.Countdown("%4d", countdown)
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
