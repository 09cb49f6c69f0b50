// Package render turns a terminal size and a SystemSnapshot into a Frame:
// a LayoutPlan of nested regions and the ordered draw operations that fill
// them. Render is pure; Canvas rasterizes a Frame into terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"gitlab.com/tinyland/lab/sysfetch/collectors"
	"gitlab.com/tinyland/lab/sysfetch/display/art"
	"gitlab.com/tinyland/lab/sysfetch/display/layout"
	"gitlab.com/tinyland/lab/sysfetch/internal/format"
)

const (
	appTitle     = "sysfetch"
	helpText     = "Press 'q' or 'Esc' to quit"
	compactHelp  = "q: quit"
	bandHeight   = 3
	artHeight    = 8
	systemHeight = 8

	// hardwareSections is the number of stacked hardware panels.
	hardwareSections = 5
	// minSectionHeight is a border plus one line of content.
	minSectionHeight = 3
	// gaugeMinInterior is the interior height needed for text plus a bar.
	gaugeMinInterior = 3
)

// Render computes the frame for a width x height terminal. Negative sizes
// are treated as zero. The snapshot is only read.
func Render(width, height int, snap *collectors.SystemSnapshot) *Frame {
	width = max(width, 0)
	height = max(height, 0)
	if snap == nil {
		empty := collectors.EmptySnapshot()
		snap = &empty
	}

	screen := layout.Rect{W: width, H: height}
	f := &Frame{
		Mode:   layout.DetectMode(width, height),
		Width:  width,
		Height: height,
		Plan:   &Region{Panel: PanelScreen, Area: screen},
	}
	b := &builder{frame: f, snap: snap}
	if f.Mode == layout.ModeCompact {
		b.compact(f.Plan)
	} else {
		b.full(f.Plan)
	}
	return f
}

type builder struct {
	frame *Frame
	snap  *collectors.SystemSnapshot
}

func (b *builder) full(screen *Region) {
	area := screen.Area.Inner(layout.Uniform(1))
	rows := layout.Split(area, layout.Vertical,
		layout.Fixed(bandHeight), layout.Remainder(), layout.Fixed(bandHeight))

	b.band(screen.add(PanelTitle, rows[0]), PanelTitle, styleTitle,
		Line{{Text: appTitle, Style: styleTitleText}})

	body := screen.add(PanelBody, rows[1])
	if b.frame.Mode == layout.ModeNarrow {
		b.narrow(body)
	} else {
		b.wide(body)
	}

	b.band(screen.add(PanelHelp, rows[2]), PanelHelp, styleHelp,
		Line{{Text: helpText, Style: styleHelp}})
}

// band draws a bordered, centered single-line strip.
func (b *builder) band(r *Region, panel Panel, border Style, line Line) {
	b.frame.push(Op{Kind: OpBlock, Panel: panel, Area: r.Area, Style: border})
	b.frame.push(Op{
		Kind:  OpText,
		Panel: panel,
		Area:  r.Area.Inner(layout.Uniform(1)),
		Lines: []Line{line},
		Align: AlignCenter,
	})
}

func (b *builder) narrow(body *Region) {
	parts := layout.Split(body.Area, layout.Vertical,
		layout.Fixed(artHeight), layout.Remainder())
	b.art(body.add(PanelArt, parts[0]))

	stack := body.add(PanelInfoStack, parts[1])
	rows := layout.Split(stack.Area, layout.Vertical,
		layout.Fixed(systemHeight), layout.Remainder())
	b.system(stack.add(PanelSystem, rows[0]))
	b.hardware(stack.add(PanelHardware, rows[1]))
}

func (b *builder) wide(body *Region) {
	cols := layout.Split(body.Area, layout.Horizontal,
		layout.Percent(40), layout.Percent(60))
	b.art(body.add(PanelArt, cols[0]))

	stack := body.add(PanelInfoStack, cols[1])
	rows := layout.Split(stack.Area, layout.Vertical,
		layout.Percent(30), layout.Percent(70))
	b.system(stack.add(PanelSystem, rows[0]))
	b.hardware(stack.add(PanelHardware, rows[1]))
}

func (b *builder) art(r *Region) {
	b.frame.push(Op{Kind: OpBlock, Panel: PanelArt, Area: r.Area, Style: styleArt, Title: "System"})

	rows := art.Lines()
	widest := 0
	for _, row := range rows {
		widest = max(widest, runewidth.StringWidth(row))
	}
	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		// Pad to a common width so centering keeps the rows aligned.
		padded := row + strings.Repeat(" ", widest-runewidth.StringWidth(row))
		lines = append(lines, Line{{Text: padded, Style: styleArt}})
	}
	b.frame.push(Op{
		Kind:  OpText,
		Panel: PanelArt,
		Area:  r.Area.Inner(layout.Uniform(1)),
		Lines: lines,
		Align: AlignCenter,
	})
}

func (b *builder) system(r *Region) {
	s := b.snap
	b.frame.push(Op{Kind: OpBlock, Panel: PanelSystem, Area: r.Area, Style: styleSystem, Title: "System Info"})
	b.frame.push(Op{
		Kind:  OpText,
		Panel: PanelSystem,
		Area:  r.Area.Inner(layout.Uniform(1)),
		Lines: []Line{
			Labeled("OS: ", styleLabel, strings.TrimSpace(s.OSName+" "+s.OSVersion)),
			Labeled("Kernel: ", styleLabel, s.KernelVersion),
			Labeled("Host: ", styleLabel, s.Hostname),
			Labeled("User: ", styleLabel, s.Username),
			Labeled("Uptime: ", styleLabel, s.Uptime),
		},
		Wrap: true,
	})
}

// hardwareConstraints sizes the CPU, memory, GPU, network and disk panels.
// When every panel can hold at least a border and one line of content, the
// first four get fixed heights and disk takes the rest; otherwise the space
// is shared proportionally.
func hardwareConstraints(available int) []layout.Constraint {
	if available >= hardwareSections*minSectionHeight {
		return []layout.Constraint{
			layout.Fixed(4), // CPU
			layout.Fixed(4), // Memory
			layout.Fixed(3), // GPU
			layout.Fixed(3), // Network
			layout.Remainder(),
		}
	}
	return []layout.Constraint{
		layout.Percent(20),
		layout.Percent(25),
		layout.Percent(15),
		layout.Percent(15),
		layout.Percent(25),
	}
}

func (b *builder) hardware(r *Region) {
	s := b.snap
	b.frame.push(Op{Kind: OpBlock, Panel: PanelHardware, Area: r.Area, Style: styleHardware, Title: "Hardware Info"})

	available := max(r.Area.H-2, 0)
	parts := layout.Split(r.Area.Inner(layout.Uniform(1)), layout.Vertical, hardwareConstraints(available)...)

	cpu := r.add(PanelCPU, parts[0])
	b.frame.push(Op{Kind: OpBlock, Panel: PanelCPU, Area: cpu.Area, Style: styleCPU, Title: "CPU"})
	b.frame.push(Op{
		Kind:  OpText,
		Panel: PanelCPU,
		Area:  cpu.Area.Inner(layout.Uniform(1)),
		Lines: []Line{Labeled("CPU: ", styleCPULabel, fmt.Sprintf("%s (%d Cores)", s.CPUModel, s.CPUCores))},
	})

	b.gauge(r.add(PanelMemory, parts[1]), PanelMemory, "Memory", styleMemory, styleMemLabel, s.MemoryUsed, s.MemoryTotal, s.MemoryPercent())

	gpu := r.add(PanelGPU, parts[2])
	b.frame.push(Op{Kind: OpBlock, Panel: PanelGPU, Area: gpu.Area, Style: styleGPU, Title: "GPU"})
	b.frame.push(Op{
		Kind:  OpText,
		Panel: PanelGPU,
		Area:  gpu.Area.Inner(layout.Uniform(1)),
		Lines: []Line{Labeled("GPU: ", styleGPULabel, s.GPUInfo)},
		Wrap:  true,
	})

	net := r.add(PanelNetwork, parts[3])
	b.frame.push(Op{Kind: OpBlock, Panel: PanelNetwork, Area: net.Area, Style: styleNetwork, Title: "Network"})
	b.frame.push(Op{
		Kind:  OpText,
		Panel: PanelNetwork,
		Area:  net.Area.Inner(layout.Uniform(1)),
		Lines: []Line{Labeled("Local IP: ", styleNetLabel, s.LocalIP)},
	})

	b.gauge(r.add(PanelDisk, parts[4]), PanelDisk, "Disk", styleDisk, styleDiskLabel, s.DiskUsed, s.DiskTotal, s.DiskPercent())
}

// usageText formats "used / total (pct%)".
func usageText(used, total uint64, percent int) string {
	return fmt.Sprintf("%s / %s (%d%%)", format.FormatBytes(used), format.FormatBytes(total), percent)
}

// gauge draws a usage panel. With at least three interior rows it shows the
// usage text and a bar beneath it; otherwise only the centered text.
func (b *builder) gauge(r *Region, panel Panel, title string, border, bar Style, used, total uint64, percent int) {
	b.frame.push(Op{Kind: OpBlock, Panel: panel, Area: r.Area, Style: border, Title: title})

	inner := r.Area.Inner(layout.Uniform(1))
	text := Plain(usageText(used, total, percent))
	if r.Area.H-2 < gaugeMinInterior {
		b.frame.push(Op{Kind: OpText, Panel: panel, Area: inner, Lines: []Line{text}, Align: AlignCenter})
		return
	}

	rows := layout.Split(inner, layout.Vertical, layout.Fixed(1), layout.Fixed(1), layout.Remainder())
	b.frame.push(Op{Kind: OpText, Panel: panel, Area: rows[0], Lines: []Line{text}})
	b.frame.push(Op{
		Kind:    OpGauge,
		Panel:   panel,
		Area:    rows[1],
		Style:   bar,
		Percent: percent,
	})
}

func (b *builder) compact(screen *Region) {
	s := b.snap
	area := screen.Area.Inner(layout.Uniform(1))
	rows := layout.Split(area, layout.Vertical,
		layout.Fixed(1), layout.Remainder(), layout.Fixed(1))

	title := screen.add(PanelTitle, rows[0])
	b.frame.push(Op{Kind: OpText, Panel: PanelTitle, Area: title.Area, Lines: []Line{Plain(appTitle)}, Align: AlignCenter})

	info := screen.add(PanelCompactInfo, rows[1])
	b.frame.push(Op{Kind: OpBlock, Panel: PanelCompactInfo, Area: info.Area, Style: styleSystem, Title: "System Info"})
	b.frame.push(Op{
		Kind:  OpText,
		Panel: PanelCompactInfo,
		Area:  info.Area.Inner(layout.Uniform(1)),
		Lines: []Line{
			Plain("OS: " + strings.TrimSpace(s.OSName+" "+s.OSVersion)),
			Plain("Host: " + s.Hostname),
			Plain("CPU: " + s.CPUModel),
			Plain(fmt.Sprintf("Memory: %s / %s", format.FormatBytes(s.MemoryUsed), format.FormatBytes(s.MemoryTotal))),
			Plain(fmt.Sprintf("Disk: %s / %s", format.FormatBytes(s.DiskUsed), format.FormatBytes(s.DiskTotal))),
		},
		Wrap: true,
	})

	help := screen.add(PanelHelp, rows[2])
	b.frame.push(Op{Kind: OpText, Panel: PanelHelp, Area: help.Area, Lines: []Line{Plain(compactHelp)}, Align: AlignCenter})
}
