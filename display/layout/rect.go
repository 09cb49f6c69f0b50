package layout

// Rect is a rectangular region of terminal cells. X and Y are the
// zero-based column and row of the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the region holds no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the column just past the region.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the row just past the region.
func (r Rect) Bottom() int { return r.Y + r.H }

// Margin is the space trimmed from each side of a region.
type Margin struct {
	Horizontal int
	Vertical   int
}

// Uniform returns a Margin of n cells on every side.
func Uniform(n int) Margin {
	return Margin{Horizontal: n, Vertical: n}
}

// Inner shrinks r by m on every side. Sizes saturate at zero; the origin
// never moves past the far edge.
func (r Rect) Inner(m Margin) Rect {
	w := r.W - 2*m.Horizontal
	h := r.H - 2*m.Vertical
	if w <= 0 || h <= 0 {
		return Rect{X: r.X + min(m.Horizontal, r.W), Y: r.Y + min(m.Vertical, r.H)}
	}
	return Rect{X: r.X + m.Horizontal, Y: r.Y + m.Vertical, W: w, H: h}
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}
