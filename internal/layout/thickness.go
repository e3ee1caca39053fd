package layout

// Thickness represents values for four sides of a box.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// ThicknessAll creates a Thickness with the same value on all sides.
func ThicknessAll(n float64) Thickness {
	return Thickness{Left: n, Top: n, Right: n, Bottom: n}
}

// ThicknessSymmetric creates a Thickness with horizontal (left/right) and
// vertical (top/bottom) values.
func ThicknessSymmetric(h, v float64) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// ThicknessLTRB creates a Thickness in left, top, right, bottom order.
func ThicknessLTRB(l, t, r, b float64) Thickness {
	return Thickness{Left: l, Top: t, Right: r, Bottom: b}
}

// Horizontal returns the sum of Left and Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the sum of Top and Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Extents returns the horizontal and vertical sums as a Size.
func (t Thickness) Extents() Size {
	return Size{X: t.Horizontal(), Y: t.Vertical()}
}

// IsZero returns true if all sides are zero.
func (t Thickness) IsZero() bool {
	return t.Left == 0 && t.Top == 0 && t.Right == 0 && t.Bottom == 0
}
