package layout

import "github.com/gogpu/gg"

// RenderCore is the render-side object a node writes its geometry into.
// The node never owns this storage; it only proxies writes to it.
type RenderCore interface {
	Bound() Rect
	SetBound(Rect)
	ClipBound() Rect
	SetClipBound(Rect)
	Transform() gg.Matrix
	SetTransform(gg.Matrix)

	// InvalidateRender asks the renderer to schedule a repaint. It must not
	// block or call back into the layout engine.
	InvalidateRender()
}

// Host is the render pipeline an attached node belongs to.
type Host interface {
	// RenderCoreFor returns the render core for a node joining the pipeline.
	RenderCoreFor(n *Node) RenderCore
}

// Observer is optionally implemented by a Host to be told when a node
// actually recomputes its measure or arrange results.
type Observer interface {
	Measured(n *Node)
	Arranged(n *Node)
}

// localCore stores geometry for nodes that are not attached to a pipeline.
type localCore struct {
	bound     Rect
	clipBound Rect
	transform gg.Matrix
}

func newLocalCore() *localCore {
	return &localCore{transform: gg.Identity()}
}

func (c *localCore) Bound() Rect              { return c.bound }
func (c *localCore) SetBound(r Rect)          { c.bound = r }
func (c *localCore) ClipBound() Rect          { return c.clipBound }
func (c *localCore) SetClipBound(r Rect)      { c.clipBound = r }
func (c *localCore) Transform() gg.Matrix     { return c.transform }
func (c *localCore) SetTransform(m gg.Matrix) { c.transform = m }
func (c *localCore) InvalidateRender()        {}
