package layout

import "math"

// Measure computes the node's desired size for the given available size.
// Components of available must be non-negative or Infinity.
//
// Measure is a no-op for detached nodes and for nodes whose measure result
// is still valid. Afterwards DesiredSize includes the margin, never exceeds
// available, and the content policy has measured the node's children.
func (n *Node) Measure(available Size) {
	if !n.attached || !n.IsMeasureDirty() {
		return
	}

	margin := n.margin.Extents()
	budget := available.Sub(margin)

	minSize, maxSize := n.MinMax()
	budget.X = math.Max(minSize.X, math.Min(budget.X, maxSize.X))
	budget.Y = math.Max(minSize.Y, math.Min(budget.Y, maxSize.Y))

	desired := n.policy.MeasureContent(n, budget)
	unclipped := desired

	clipped := false
	if desired.X > maxSize.X {
		desired.X = maxSize.X
		clipped = true
	}
	if desired.Y > maxSize.Y {
		desired.Y = maxSize.Y
		clipped = true
	}

	outer := desired.Add(margin)
	if outer.X > available.X {
		outer.X = available.X
		clipped = true
	}
	if outer.Y > available.Y {
		outer.Y = available.Y
		clipped = true
	}

	if clipped || outer.X < 0 || outer.Y < 0 {
		n.layout.UnclippedDesiredSize = unclipped
		n.layout.HasUnclipped = true
	} else {
		n.layout.UnclippedDesiredSize = Size{}
		n.layout.HasUnclipped = false
	}
	n.layout.DesiredSize = outer
	n.dirty &^= DirtyMeasure

	if n.observer != nil {
		n.observer.Measured(n)
	}
}
