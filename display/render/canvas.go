package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"gitlab.com/tinyland/lab/sysfetch/display/widgets"
	"gitlab.com/tinyland/lab/sysfetch/internal/format"
)

type cell struct {
	r     rune
	style Style
	// tail marks the second column of a double-width rune.
	tail bool
}

// Canvas is a fixed-size grid of styled cells. Every write is clipped to
// the grid, so drawing into out-of-range or degenerate regions is a no-op.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// NewCanvas returns a blank canvas. Negative sizes are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([]cell, width*height)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

// Draw rasterizes f and returns the styled terminal text.
func Draw(f *Frame) string {
	c := NewCanvas(f.Width, f.Height)
	c.DrawFrame(f)
	return c.String()
}

// DrawFrame applies the frame's operations in order.
func (c *Canvas) DrawFrame(f *Frame) {
	for _, op := range f.Ops {
		c.DrawOp(op)
	}
}

// DrawOp applies a single operation.
func (c *Canvas) DrawOp(op Op) {
	switch op.Kind {
	case OpBlock:
		c.drawBlock(op)
	case OpText:
		c.drawText(op)
	case OpGauge:
		c.drawGauge(op)
	}
}

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// put writes r at (x, y) and returns the number of columns it used. A
// double-width rune that would cross limit is not written.
func (c *Canvas) put(x, y, limit int, r rune, style Style) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if x+w > limit {
		return -1
	}
	cur := c.at(x, y)
	if cur == nil {
		return w
	}
	// Blank any double-width rune this write would split.
	if cur.tail {
		if left := c.at(x-1, y); left != nil {
			*left = cell{r: ' ', style: left.style}
		}
	}
	if next := c.at(x+1, y); next != nil && next.tail && w == 1 {
		*next = cell{r: ' ', style: next.style}
	}
	*cur = cell{r: r, style: style}
	if w == 2 {
		if next := c.at(x+1, y); next != nil {
			if after := c.at(x+2, y); after != nil && after.tail {
				*after = cell{r: ' ', style: after.style}
			}
			*next = cell{r: ' ', style: style, tail: true}
		}
	}
	return w
}

// writeLine draws line starting at (x, y), stopping at column limit.
func (c *Canvas) writeLine(x, y, limit int, line Line) {
	for _, span := range line {
		for _, r := range span.Text {
			w := c.put(x, y, limit, r, span.Style)
			if w < 0 {
				return
			}
			x += w
		}
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

func (c *Canvas) drawBlock(op Op) {
	a := op.Area
	if a.W < 2 || a.H < 2 {
		return
	}
	border := lipgloss.RoundedBorder()
	right, bottom := a.Right()-1, a.Bottom()-1
	limit := a.Right()

	top := firstRune(border.Top, '-')
	side := firstRune(border.Left, '|')
	for x := a.X + 1; x < right; x++ {
		c.put(x, a.Y, limit, top, op.Style)
		c.put(x, bottom, limit, firstRune(border.Bottom, '-'), op.Style)
	}
	for y := a.Y + 1; y < bottom; y++ {
		c.put(a.X, y, limit, side, op.Style)
		c.put(right, y, limit, firstRune(border.Right, '|'), op.Style)
	}
	c.put(a.X, a.Y, limit, firstRune(border.TopLeft, '+'), op.Style)
	c.put(right, a.Y, limit, firstRune(border.TopRight, '+'), op.Style)
	c.put(a.X, bottom, limit, firstRune(border.BottomLeft, '+'), op.Style)
	c.put(right, bottom, limit, firstRune(border.BottomRight, '+'), op.Style)

	if op.Title != "" && a.W > 2 {
		title := format.TruncateWithEllipsis(op.Title, a.W-2)
		c.writeLine(a.X+1, a.Y, right, Line{{Text: title, Style: Style{Fg: op.Style.Fg, Bold: true}}})
	}
}

func (c *Canvas) drawText(op Op) {
	a := op.Area
	if a.Empty() {
		return
	}
	lines := op.Lines
	if op.Wrap {
		var wrapped []Line
		for _, l := range lines {
			wrapped = append(wrapped, wrapLine(l, a.W)...)
		}
		lines = wrapped
	}
	for i, line := range lines {
		if i >= a.H {
			break
		}
		x := a.X
		if op.Align == AlignCenter {
			if w := lineWidth(line); w < a.W {
				x += (a.W - w) / 2
			}
		}
		c.writeLine(x, a.Y+i, a.Right(), line)
	}
}

func (c *Canvas) drawGauge(op Op) {
	a := op.Area
	if a.Empty() {
		return
	}
	bar := widgets.RenderBar(float64(op.Percent), a.W)
	c.writeLine(a.X, a.Y, a.Right(), Line{{Text: bar, Style: op.Style}})
}

// String renders the canvas as rows joined by newlines, grouping runs of
// equally styled cells into a single lipgloss render.
func (c *Canvas) String() string {
	styles := make(map[Style]lipgloss.Style)
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var runStyle Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == (Style{}) {
				out.WriteString(run.String())
			} else {
				ls, ok := styles[runStyle]
				if !ok {
					ls = lipglossStyle(runStyle)
					styles[runStyle] = ls
				}
				out.WriteString(ls.Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.tail {
				continue
			}
			style := cl.style
			if cl.r == ' ' {
				// Spaces carry no visible foreground.
				style = Style{}
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}

// Lines returns the canvas rows without styling.
func (c *Canvas) Lines() []string {
	rows := make([]string, c.height)
	var b strings.Builder
	for y := range rows {
		b.Reset()
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if !cl.tail {
				b.WriteRune(cl.r)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func lineWidth(l Line) int {
	w := 0
	for _, s := range l {
		w += ansi.StringWidth(s.Text)
	}
	return w
}

type glyph struct {
	r     rune
	style Style
}

func toLine(gs []glyph) Line {
	var line Line
	for _, g := range gs {
		if n := len(line); n > 0 && line[n-1].Style == g.style {
			line[n-1].Text += string(g.r)
			continue
		}
		line = append(line, Span{Text: string(g.r), Style: g.style})
	}
	return line
}

// wrapLine breaks l into lines no wider than width using ansi.Wrap, then
// maps each span style back onto the wrapped runes. Leading spaces of
// continuation lines and trailing spaces of every line are dropped.
func wrapLine(l Line, width int) []Line {
	if width <= 0 {
		return nil
	}
	var src []glyph
	for _, s := range l {
		for _, r := range s.Text {
			src = append(src, glyph{r: r, style: s.Style})
		}
	}

	rows := strings.Split(ansi.Wrap(l.String(), width, ""), "\n")
	out := make([]Line, 0, len(rows))
	k := 0
	for n, row := range rows {
		var gs []glyph
		for _, r := range row {
			// Spaces swallowed at a break are absent from the output.
			for k < len(src) && src[k].r != r && src[k].r == ' ' {
				k++
			}
			g := glyph{r: r}
			if k < len(src) && src[k].r == r {
				g.style = src[k].style
				k++
			}
			gs = append(gs, g)
		}
		for len(gs) > 0 && gs[len(gs)-1].r == ' ' {
			gs = gs[:len(gs)-1]
		}
		for n > 0 && len(gs) > 0 && gs[0].r == ' ' {
			gs = gs[1:]
		}
		out = append(out, toLine(gs))
	}
	return out
}
