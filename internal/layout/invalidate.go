package layout

// InvalidateMeasure marks this node and all ancestors as needing a new
// Measure and Arrange. Descendants are left alone: they are revisited by the
// next top-down pass an ancestor triggers.
func (n *Node) InvalidateMeasure() {
	n.dirty |= DirtyMeasure | DirtyArrange
	n.traverseUp(func(p *Node) bool {
		p.dirty |= DirtyMeasure | DirtyArrange
		return true
	})
}

// InvalidateArrange marks this node and all ancestors as needing a new Arrange.
func (n *Node) InvalidateArrange() {
	n.dirty |= DirtyArrange
	n.traverseUp(func(p *Node) bool {
		p.dirty |= DirtyArrange
		return true
	})
}

// InvalidateVisual marks this node and all ancestors fully dirty and, when
// attached, asks the render core to schedule a repaint.
func (n *Node) InvalidateVisual() {
	n.dirty = dirtyAll
	n.traverseUp(func(p *Node) bool {
		p.dirty = dirtyAll
		return true
	})
	if n.attached {
		Logger().Debug("layout: redraw requested", "node", n.name)
		n.core.InvalidateRender()
	}
}
