package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysfetch/display/layout"
)

// Panel identifies the content a region of the screen hosts.
type Panel int

const (
	PanelScreen Panel = iota
	PanelTitle
	PanelBody
	PanelHelp
	PanelArt
	PanelInfoStack
	PanelSystem
	PanelHardware
	PanelCPU
	PanelMemory
	PanelGPU
	PanelNetwork
	PanelDisk
	PanelCompactInfo
)

var panelNames = map[Panel]string{
	PanelScreen:      "screen",
	PanelTitle:       "title",
	PanelBody:        "body",
	PanelHelp:        "help",
	PanelArt:         "art",
	PanelInfoStack:   "info-stack",
	PanelSystem:      "system",
	PanelHardware:    "hardware",
	PanelCPU:         "cpu",
	PanelMemory:      "memory",
	PanelGPU:         "gpu",
	PanelNetwork:     "network",
	PanelDisk:        "disk",
	PanelCompactInfo: "compact-info",
}

// String returns the panel's name.
func (p Panel) String() string {
	if name, ok := panelNames[p]; ok {
		return name
	}
	return "unknown"
}

// Region is one node of a LayoutPlan: a rectangle tagged with the panel it
// hosts and the regions nested inside it.
type Region struct {
	Panel    Panel
	Area     layout.Rect
	Children []*Region
}

// add nests a new region under r and returns it.
func (r *Region) add(panel Panel, area layout.Rect) *Region {
	child := &Region{Panel: panel, Area: area}
	r.Children = append(r.Children, child)
	return child
}

// Find returns the first region hosting panel in depth-first order.
func (r *Region) Find(panel Panel) *Region {
	if r == nil {
		return nil
	}
	if r.Panel == panel {
		return r
	}
	for _, c := range r.Children {
		if found := c.Find(panel); found != nil {
			return found
		}
	}
	return nil
}

// Style is the fixed colour and weight of a piece of text or border.
// The zero Style is unstyled.
type Style struct {
	Fg   lipgloss.Color
	Bold bool
}

// Span is a run of text drawn in one style.
type Span struct {
	Text  string
	Style Style
}

// Line is a row of spans.
type Line []Span

// Plain returns a single unstyled span line.
func Plain(s string) Line {
	return Line{{Text: s}}
}

// Labeled returns a line with a styled label followed by a plain value.
func Labeled(label string, labelStyle Style, value string) Line {
	return Line{{Text: label, Style: labelStyle}, {Text: value}}
}

// String returns the line's text without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Align positions text horizontally within its area.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// OpKind identifies a draw operation.
type OpKind int

const (
	// OpBlock draws a bordered box with an optional title.
	OpBlock OpKind = iota
	// OpText draws lines of styled text, clipped to the area.
	OpText
	// OpGauge draws a proportional bar on the first row of the area.
	OpGauge
)

// Op is a single draw operation. Ops are applied in order.
type Op struct {
	Kind  OpKind
	Panel Panel
	Area  layout.Rect
	Style Style

	// Title is the border caption of an OpBlock.
	Title string

	// Lines, Align and Wrap apply to OpText.
	Lines []Line
	Align Align
	Wrap  bool

	// Percent is the OpGauge fill. It is not clamped here.
	Percent int
}

// Frame is the output of Render: the chosen mode, the LayoutPlan tree and
// the ordered draw operations for one terminal size.
type Frame struct {
	Mode   layout.Mode
	Width  int
	Height int
	Plan   *Region
	Ops    []Op
}

// OpsFor returns the operations drawn for panel, in order.
func (f *Frame) OpsFor(panel Panel) []Op {
	var ops []Op
	for _, op := range f.Ops {
		if op.Panel == panel {
			ops = append(ops, op)
		}
	}
	return ops
}

// Text returns the unstyled text lines drawn for panel.
func (f *Frame) Text(panel Panel) []string {
	var lines []string
	for _, op := range f.OpsFor(panel) {
		if op.Kind != OpText {
			continue
		}
		for _, l := range op.Lines {
			lines = append(lines, l.String())
		}
	}
	return lines
}

// HasGauge reports whether a bar is drawn for panel.
func (f *Frame) HasGauge(panel Panel) bool {
	for _, op := range f.OpsFor(panel) {
		if op.Kind == OpGauge {
			return true
		}
	}
	return false
}

func (f *Frame) push(op Op) {
	f.Ops = append(f.Ops, op)
}
