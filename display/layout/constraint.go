package layout

// Direction is the axis along which Split partitions a region.
type Direction int

const (
	// Vertical stacks segments top to bottom.
	Vertical Direction = iota
	// Horizontal places segments left to right.
	Horizontal
)

// ConstraintKind identifies how a segment's length is chosen.
type ConstraintKind int

const (
	// KindFixed asks for an exact number of cells.
	KindFixed ConstraintKind = iota
	// KindPercent asks for a share of the region's length.
	KindPercent
	// KindRemainder takes whatever is left after the other segments.
	KindRemainder
)

// Constraint sizes one segment of a Split.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Fixed returns a constraint for exactly n cells.
func Fixed(n int) Constraint { return Constraint{Kind: KindFixed, Value: n} }

// Percent returns a constraint for p percent of the region, rounded down.
func Percent(p int) Constraint { return Constraint{Kind: KindPercent, Value: p} }

// Remainder returns a constraint for the space left over.
func Remainder() Constraint { return Constraint{Kind: KindRemainder} }

// Split partitions area along dir into one Rect per constraint, in order.
//
// Fixed and Percent segments are sized first, in order, each clamped to
// the space still unclaimed, so earlier segments win when the region is
// too small. Leftover space is shared evenly by Remainder segments, the
// last one taking any odd cells. With no Remainder the leftover goes to
// the final segment, so the segments always tile the region exactly.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}

	total := area.H
	if dir == Horizontal {
		total = area.W
	}
	total = max(total, 0)

	sizes := make([]int, len(constraints))
	used := 0
	remainders := 0
	for i, c := range constraints {
		var want int
		switch c.Kind {
		case KindFixed:
			want = c.Value
		case KindPercent:
			want = total * c.Value / 100
		case KindRemainder:
			remainders++
			continue
		}
		want = min(max(want, 0), total-used)
		sizes[i] = want
		used += want
	}

	if leftover := total - used; leftover > 0 {
		if remainders == 0 {
			sizes[len(sizes)-1] += leftover
		} else {
			share := leftover / remainders
			extra := leftover - share*remainders
			seen := 0
			for i, c := range constraints {
				if c.Kind != KindRemainder {
					continue
				}
				seen++
				sizes[i] = share
				if seen == remainders {
					sizes[i] += extra
				}
			}
		}
	}

	rects := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, W: size, H: max(area.H, 0)}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, W: max(area.W, 0), H: size}
		}
		offset += size
	}
	return rects
}
