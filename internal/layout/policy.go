package layout

import "math"

// Policy decides how a node sizes its content and places its children.
// Measure and Arrange handle margin, min/max constraints, alignment and
// clipping around the policy; the policy only deals with content.
type Policy interface {
	// MeasureContent returns the content size the node wants given the
	// clamped budget. Implementations measure children here. NaN components
	// mean the size could not be determined.
	MeasureContent(n *Node, available Size) Size

	// ArrangeContent arranges children within final and returns the size
	// the node actually occupies.
	ArrangeContent(n *Node, final Size) Size
}

// PolicyFuncs adapts a pair of functions to the Policy interface. A nil
// function falls back to Overlay.
type PolicyFuncs struct {
	Measure func(n *Node, available Size) Size
	Arrange func(n *Node, final Size) Size
}

// MeasureContent implements Policy.
func (p PolicyFuncs) MeasureContent(n *Node, available Size) Size {
	if p.Measure == nil {
		return Overlay{}.MeasureContent(n, available)
	}
	return p.Measure(n, available)
}

// ArrangeContent implements Policy.
func (p PolicyFuncs) ArrangeContent(n *Node, final Size) Size {
	if p.Arrange == nil {
		return Overlay{}.ArrangeContent(n, final)
	}
	return p.Arrange(n, final)
}

// Overlay is the default policy. Every child is measured with the full
// budget and arranged over the full final size, so children stack on top
// of each other. The node takes whatever budget it is given; on an infinite
// axis it falls back to the largest child's desired size. NaN components
// of a child's desired size are ignored there so they stay contained to
// that child.
type Overlay struct{}

// MeasureContent implements Policy.
func (Overlay) MeasureContent(n *Node, available Size) Size {
	var content Size
	for _, child := range n.children {
		child.Measure(available)
		desired := child.DesiredSize()
		if !math.IsNaN(desired.X) {
			content.X = math.Max(content.X, desired.X)
		}
		if !math.IsNaN(desired.Y) {
			content.Y = math.Max(content.Y, desired.Y)
		}
	}
	size := available
	if math.IsInf(size.X, 1) {
		size.X = content.X
	}
	if math.IsInf(size.Y, 1) {
		size.Y = content.Y
	}
	return size
}

// ArrangeContent implements Policy.
func (Overlay) ArrangeContent(n *Node, final Size) Size {
	for _, child := range n.children {
		child.Arrange(RectFromSize(final))
	}
	return final
}

// Intrinsic is a leaf policy reporting a fixed content size, such as an
// image or a pre-shaped label. Children, if any, are laid out as with
// Overlay but do not affect the reported size.
type Intrinsic struct {
	Size Size
}

// MeasureContent implements Policy.
func (p Intrinsic) MeasureContent(n *Node, available Size) Size {
	for _, child := range n.children {
		child.Measure(available)
	}
	return p.Size
}

// ArrangeContent implements Policy.
func (Intrinsic) ArrangeContent(n *Node, final Size) Size {
	return Overlay{}.ArrangeContent(n, final)
}

// Orientation is the stacking axis of a Stack.
type Orientation uint8

const (
	Vertical   Orientation = iota // Top to bottom
	Horizontal                    // Left to right
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Stack places children one after another along its orientation, with
// Spacing between consecutive children. Children are measured with an
// unbounded stacking axis and the full cross axis.
type Stack struct {
	Orientation Orientation
	Spacing     float64
}

// MeasureContent implements Policy.
func (p Stack) MeasureContent(n *Node, available Size) Size {
	childAvailable := available
	if p.Orientation == Vertical {
		childAvailable.Y = Infinity
	} else {
		childAvailable.X = Infinity
	}

	var total Size
	for i, child := range n.children {
		child.Measure(childAvailable)
		d := child.DesiredSize()
		gap := 0.0
		if i > 0 {
			gap = p.Spacing
		}
		if p.Orientation == Vertical {
			total.Y += d.Y + gap
			total.X = math.Max(total.X, d.X)
		} else {
			total.X += d.X + gap
			total.Y = math.Max(total.Y, d.Y)
		}
	}
	return total
}

// ArrangeContent implements Policy.
func (p Stack) ArrangeContent(n *Node, final Size) Size {
	pos := 0.0
	for _, child := range n.children {
		d := child.DesiredSize()
		if p.Orientation == Vertical {
			child.Arrange(NewRect(0, pos, final.X, d.Y))
			pos += d.Y + p.Spacing
		} else {
			child.Arrange(NewRect(pos, 0, d.X, final.Y))
			pos += d.X + p.Spacing
		}
	}
	return final
}
