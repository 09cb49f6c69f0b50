package render

import "github.com/charmbracelet/lipgloss"

// Color palette for the dashboard. Each panel has one fixed colour.
const (
	colorCyan    = lipgloss.Color("#06B6D4")
	colorGreen   = lipgloss.Color("#22C55E")
	colorMagenta = lipgloss.Color("#C026D3")
	colorRed     = lipgloss.Color("#EF4444")
	colorBlue    = lipgloss.Color("#3B82F6")
	colorYellow  = lipgloss.Color("#EAB308")
	colorGray    = lipgloss.Color("#6B7280")
)

// Styles used by the panel builders.
var (
	styleTitleText = Style{Fg: colorCyan, Bold: true}
	styleTitle     = Style{Fg: colorCyan}
	styleArt       = Style{Fg: colorCyan}
	styleSystem    = Style{Fg: colorGreen}
	styleLabel     = Style{Fg: colorYellow, Bold: true}
	styleHardware  = Style{Fg: colorMagenta}
	styleCPU       = Style{Fg: colorRed}
	styleCPULabel  = Style{Fg: colorRed, Bold: true}
	styleMemory    = Style{Fg: colorBlue}
	styleMemLabel  = Style{Fg: colorBlue, Bold: true}
	styleGPU       = Style{Fg: colorMagenta}
	styleGPULabel  = Style{Fg: colorMagenta, Bold: true}
	styleNetwork   = Style{Fg: colorCyan}
	styleNetLabel  = Style{Fg: colorCyan, Bold: true}
	styleDisk      = Style{Fg: colorYellow}
	styleDiskLabel = Style{Fg: colorYellow, Bold: true}
	styleHelp      = Style{Fg: colorGray}
)

// lipglossStyle converts a Style to its lipgloss equivalent.
func lipglossStyle(s Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.Fg != "" {
		ls = ls.Foreground(s.Fg)
	}
	if s.Bold {
		ls = ls.Bold(true)
	}
	return ls
}
