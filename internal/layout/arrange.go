package layout

import (
	"math"

	"github.com/gogpu/gg"
)

// Arrange places the node inside rect, the rectangle its parent allocates
// in the parent's coordinate space.
//
// Arrange is a no-op for detached nodes, for rectangles with zero width and
// height, and when neither the node nor any ancestor needs arranging.
// Afterwards the render size, layout offset, bound, clip bound and clip flag
// are consistent with the latest desired size and rect.
func (n *Node) Arrange(rect Rect) {
	if !n.attached {
		return
	}

	ancestorDirty := false
	n.traverseUp(func(p *Node) bool {
		if p.IsArrangeDirty() {
			ancestorDirty = true
			return false
		}
		return true
	})

	rectSize := rect.Size()
	if (!n.IsArrangeDirty() && !ancestorDirty) || rectSize.IsZero() {
		return
	}

	margin := n.margin.Extents()
	arrangeSize := rectSize
	clip := false

	desired := n.layout.DesiredSize
	if desired.HasNaN() {
		if n.layout.HasUnclipped {
			desired = n.layout.UnclippedDesiredSize.Sub(margin)
		} else {
			desired = arrangeSize.Sub(margin)
		}
	}

	// Overflow the allocation rather than shrink below the desired size.
	if arrangeSize.X < desired.X {
		clip = true
		arrangeSize.X = desired.X
	}
	if arrangeSize.Y < desired.Y {
		clip = true
		arrangeSize.Y = desired.Y
	}

	if n.hAlign != AlignStretch {
		arrangeSize.X = desired.X
	}
	if n.vAlign != AlignStretch {
		arrangeSize.Y = desired.Y
	}

	_, maxSize := n.MinMax()
	if limit := math.Max(desired.X, maxSize.X); limit < arrangeSize.X {
		clip = true
		arrangeSize.X = limit
	}
	if limit := math.Max(desired.Y, maxSize.Y); limit < arrangeSize.Y {
		clip = true
		arrangeSize.Y = limit
	}

	result := n.policy.ArrangeContent(n, arrangeSize)
	if result != n.layout.RenderSize {
		n.InvalidateVisual()
	}
	n.setRenderSize(result)

	clippedResult := result.Min(maxSize)
	if !clip {
		clip = clippedResult.X < result.X || clippedResult.Y < result.Y
	}

	client := Size{
		X: math.Max(0, rectSize.X-margin.X),
		Y: math.Max(0, rectSize.Y-margin.Y),
	}
	if !clip {
		clip = client.X < clippedResult.X || client.Y < clippedResult.Y
	}
	n.layout.ClipEnabled = clip

	offset := Point{
		X: alignOffset(n.hAlign, client.X, clippedResult.X),
		Y: alignOffset(n.vAlign, client.Y, clippedResult.Y),
	}.Add(rect.Origin())

	if clip || n.clipToBound {
		Logger().Debug("layout: clipping", "node", n.name, "client", client, "render", result)
		n.core.SetClipBound(RectFromSize(client))
	}

	n.setOffset(offset)
	n.updateTransform()
	n.dirty &^= DirtyArrange

	if n.observer != nil {
		n.observer.Arranged(n)
	}
}

// alignOffset positions a span of length size inside client. Stretch cannot
// grow past the client, so an oversized stretched span anchors to the start;
// otherwise it is centered, which is a no-op when the lengths already match.
func alignOffset(a Align, client, size float64) float64 {
	if a == AlignStretch && size > client {
		a = AlignStart
	}
	switch a {
	case AlignCenter, AlignStretch:
		return (client - size) / 2
	case AlignEnd:
		return client - size
	default:
		return 0
	}
}

// updateTransform rewrites the render core geometry when the render size or
// offset changed since the last arrange.
func (n *Node) updateTransform() {
	if !n.IsTransformDirty() {
		return
	}
	outer := RectFromSize(n.layout.RenderSize)
	n.core.SetBound(outer.Inset(n.margin))
	n.core.SetClipBound(outer)
	n.core.SetTransform(gg.Translate(n.layout.Offset.X, n.layout.Offset.Y))
	n.dirty &^= DirtyTransform
}
