package render

import (
	"github.com/gogpu/gg"

	"github.com/grindlemire/go-layout2d/internal/layout"
)

var _ layout.RenderCore = (*Core)(nil)

// Core is the per-node render object the layout engine writes into.
type Core struct {
	node      *layout.Node
	scheduler *Scheduler

	bound     layout.Rect
	clipBound layout.Rect
	transform gg.Matrix
	redraws   int
}

// NewCore creates a Core for n reporting redraws to s. A nil scheduler
// drops redraw requests after counting them.
func NewCore(n *layout.Node, s *Scheduler) *Core {
	return &Core{
		node:      n,
		scheduler: s,
		transform: gg.Identity(),
	}
}

func (c *Core) Bound() layout.Rect         { return c.bound }
func (c *Core) SetBound(r layout.Rect)     { c.bound = r }
func (c *Core) ClipBound() layout.Rect     { return c.clipBound }
func (c *Core) SetClipBound(r layout.Rect) { c.clipBound = r }
func (c *Core) Transform() gg.Matrix       { return c.transform }
func (c *Core) SetTransform(m gg.Matrix)   { c.transform = m }

// InvalidateRender records a redraw request for the node.
func (c *Core) InvalidateRender() {
	c.redraws++
	if c.scheduler != nil {
		c.scheduler.Request(c.node)
	}
}

// Redraws returns how many redraws this core has requested.
func (c *Core) Redraws() int {
	return c.redraws
}
