// Package widgets renders small reusable text widgets for the dashboard.
package widgets

import (
	"math"
	"strings"
)

// GaugeConfig controls the appearance of a horizontal bar gauge.
type GaugeConfig struct {
	// Width is the total character width of the gauge bar.
	Width int
	// Percent is the value from 0 to 100. Values outside are clamped.
	Percent float64
	// FilledChar is the character for filled portion (default: "█").
	FilledChar string
	// EmptyChar is the character for empty portion (default: "░").
	EmptyChar string
}

// DefaultGaugeConfig returns a GaugeConfig with sensible defaults.
func DefaultGaugeConfig() GaugeConfig {
	return GaugeConfig{
		Width:      20,
		FilledChar: "█",
		EmptyChar:  "░",
	}
}

// GaugeCells returns how many of width cells are filled at percent.
func GaugeCells(percent float64, width int) int {
	if width <= 0 {
		return 0
	}
	percent = math.Max(0, math.Min(100, percent))
	return int(math.Round(percent / 100.0 * float64(width)))
}

// RenderGauge renders an unstyled horizontal bar exactly cfg.Width cells
// wide. Colour is left to the caller. A non-positive width yields "".
func RenderGauge(cfg GaugeConfig) string {
	if cfg.Width <= 0 {
		return ""
	}

	filledChar := cfg.FilledChar
	if filledChar == "" {
		filledChar = "█"
	}
	emptyChar := cfg.EmptyChar
	if emptyChar == "" {
		emptyChar = "░"
	}

	filled := GaugeCells(cfg.Percent, cfg.Width)
	return strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, cfg.Width-filled)
}

// RenderBar is RenderGauge with the default characters.
func RenderBar(percent float64, width int) string {
	cfg := DefaultGaugeConfig()
	cfg.Width = width
	cfg.Percent = percent
	return RenderGauge(cfg)
}
