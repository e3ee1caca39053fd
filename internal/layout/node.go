package layout

import "github.com/gogpu/gg"

// Dirty is the set of stale layout results on a node.
type Dirty uint8

const (
	DirtyMeasure   Dirty = 1 << iota // Desired size is stale
	DirtyArrange                     // Render size and offset are stale
	DirtyTransform                   // Bound, clip bound and transform are stale

	dirtyAll = DirtyMeasure | DirtyArrange | DirtyTransform
)

// Layout holds the results computed by the last Measure and Arrange.
type Layout struct {
	// DesiredSize is the size requested from the parent, margin included.
	DesiredSize Size

	// UnclippedDesiredSize is the raw policy result when Measure had to clip
	// it. Only meaningful when HasUnclipped is true.
	UnclippedDesiredSize Size
	HasUnclipped         bool

	// RenderSize is the size occupied after Arrange, margin included.
	RenderSize Size

	// Offset is the translation from the parent's origin.
	Offset Point

	// ClipEnabled is true when content overflows the allocation.
	ClipEnabled bool
}

// Node is a participant in the layout tree.
type Node struct {
	name string

	// Tree structure. parent is a back-pointer for upward traversal only;
	// a node is owned by whoever holds it in a children slice.
	children []*Node
	parent   *Node

	// Declared constraints
	margin              Thickness
	width, height       float64
	minWidth, minHeight float64
	maxWidth, maxHeight float64
	hAlign, vAlign      Align
	clipToBound         bool

	// Pipeline membership
	attached     bool
	host         Host
	observer     Observer
	core         RenderCore
	coreInjected bool

	dirty  Dirty
	layout Layout
	policy Policy
}

// NewNode creates a new Node with the given options.
// By default a node sizes to content on both axes, stretches on both axes,
// and needs a full layout pass.
func NewNode(opts ...Option) *Node {
	n := &Node{
		width:     Infinity,
		height:    Infinity,
		maxWidth:  Infinity,
		maxHeight: Infinity,
		dirty:     dirtyAll,
		policy:    Overlay{},
		core:      newLocalCore(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// --- Tree ---

// AddChild appends children to this node. Children join the node's render
// pipeline if it has one. A nil child, the node itself, or one of its
// ancestors is skipped, since linking it would make the tree cyclic.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child == nil || child.isAncestorOf(n) {
			continue
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
		if n.host != nil {
			child.Attach(n.host)
		}
	}
	n.InvalidateMeasure()
}

// isAncestorOf returns true if n is d or one of d's ancestors.
func (n *Node) isAncestorOf(d *Node) bool {
	for p := d; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// RemoveChild removes a child from this node, preserving the order of the
// remaining children. Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			child.Detach()
			n.InvalidateMeasure()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes every child from this node.
func (n *Node) RemoveAllChildren() {
	for _, child := range n.children {
		child.parent = nil
		child.Detach()
	}
	n.children = nil
	n.InvalidateMeasure()
}

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil if this is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Walk calls fn for n and every descendant in depth-first order. Returning
// false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// traverseUp calls fn on each ancestor, nearest first, until fn returns
// false or the root is passed.
func (n *Node) traverseUp(fn func(*Node) bool) {
	for p := n.parent; p != nil; p = p.parent {
		if !fn(p) {
			return
		}
	}
}

// --- Pipeline membership ---

// Attach joins n and its subtree to a render pipeline. Nodes without an
// injected render core receive one from the host. The whole subtree is
// marked dirty and a redraw is requested.
func (n *Node) Attach(h Host) {
	n.Walk(func(node *Node) bool {
		node.host = h
		node.observer, _ = h.(Observer)
		if !node.coreInjected {
			node.core = h.RenderCoreFor(node)
		}
		node.attached = true
		node.dirty = dirtyAll
		return true
	})
	n.InvalidateVisual()
}

// Detach removes n and its subtree from its render pipeline. Computed
// geometry stays readable but Measure and Arrange become no-ops.
func (n *Node) Detach() {
	n.Walk(func(node *Node) bool {
		node.attached = false
		node.host = nil
		node.observer = nil
		return true
	})
}

// IsAttached returns whether the node participates in a render pipeline.
func (n *Node) IsAttached() bool {
	return n.attached
}

// RenderCore returns the render core geometry is written to.
func (n *Node) RenderCore() RenderCore {
	return n.core
}

// --- Declared constraints ---

// Margin returns the node's margin.
func (n *Node) Margin() Thickness {
	return n.margin
}

// SetMargin sets the margin and invalidates measure if it changed.
func (n *Node) SetMargin(m Thickness) {
	if n.margin == m {
		return
	}
	n.margin = m
	n.InvalidateMeasure()
}

// Width returns the declared width; Infinity means size to content.
func (n *Node) Width() float64 {
	return n.width
}

// SetWidth sets the declared width.
func (n *Node) SetWidth(v float64) {
	n.setLength(&n.width, v)
}

// Height returns the declared height; Infinity means size to content.
func (n *Node) Height() float64 {
	return n.height
}

// SetHeight sets the declared height.
func (n *Node) SetHeight(v float64) {
	n.setLength(&n.height, v)
}

// MinWidth returns the declared minimum width.
func (n *Node) MinWidth() float64 {
	return n.minWidth
}

// SetMinWidth sets the declared minimum width.
func (n *Node) SetMinWidth(v float64) {
	n.setLength(&n.minWidth, v)
}

// MinHeight returns the declared minimum height.
func (n *Node) MinHeight() float64 {
	return n.minHeight
}

// SetMinHeight sets the declared minimum height.
func (n *Node) SetMinHeight(v float64) {
	n.setLength(&n.minHeight, v)
}

// MaxWidth returns the declared maximum width.
func (n *Node) MaxWidth() float64 {
	return n.maxWidth
}

// SetMaxWidth sets the declared maximum width.
func (n *Node) SetMaxWidth(v float64) {
	n.setLength(&n.maxWidth, v)
}

// MaxHeight returns the declared maximum height.
func (n *Node) MaxHeight() float64 {
	return n.maxHeight
}

// SetMaxHeight sets the declared maximum height.
func (n *Node) SetMaxHeight(v float64) {
	n.setLength(&n.maxHeight, v)
}

// Size returns the declared width and height.
func (n *Node) Size() Size {
	return Size{X: n.width, Y: n.height}
}

func (n *Node) setLength(field *float64, v float64) {
	if *field == v {
		return
	}
	*field = v
	n.InvalidateMeasure()
}

// HorizontalAlign returns the horizontal alignment.
func (n *Node) HorizontalAlign() Align {
	return n.hAlign
}

// SetHorizontalAlign sets the horizontal alignment and invalidates arrange.
func (n *Node) SetHorizontalAlign(a Align) {
	if n.hAlign == a {
		return
	}
	n.hAlign = a
	n.InvalidateArrange()
}

// VerticalAlign returns the vertical alignment.
func (n *Node) VerticalAlign() Align {
	return n.vAlign
}

// SetVerticalAlign sets the vertical alignment and invalidates arrange.
func (n *Node) SetVerticalAlign(a Align) {
	if n.vAlign == a {
		return
	}
	n.vAlign = a
	n.InvalidateArrange()
}

// ClipToBound returns whether the clip bound is always written on arrange.
func (n *Node) ClipToBound() bool {
	return n.clipToBound
}

// SetClipToBound sets whether the clip bound is always written on arrange.
func (n *Node) SetClipToBound(v bool) {
	if n.clipToBound == v {
		return
	}
	n.clipToBound = v
	n.InvalidateArrange()
}

// Policy returns the node's content policy.
func (n *Node) Policy() Policy {
	return n.policy
}

// SetPolicy replaces the content policy and invalidates measure.
func (n *Node) SetPolicy(p Policy) {
	if p == nil {
		p = Overlay{}
	}
	n.policy = p
	n.InvalidateMeasure()
}

// --- Computed outputs ---

// GetLayout returns the last computed layout.
func (n *Node) GetLayout() Layout {
	return n.layout
}

// DesiredSize returns the size requested by the last Measure, margin included.
func (n *Node) DesiredSize() Size {
	return n.layout.DesiredSize
}

// UnclippedDesiredSize returns the policy's raw result from the last Measure
// when it had to be clipped. The boolean is false when no clipping occurred.
func (n *Node) UnclippedDesiredSize() (Size, bool) {
	return n.layout.UnclippedDesiredSize, n.layout.HasUnclipped
}

// RenderSize returns the size occupied after the last Arrange.
func (n *Node) RenderSize() Size {
	return n.layout.RenderSize
}

// LayoutOffset returns the translation from the parent's origin.
func (n *Node) LayoutOffset() Point {
	return n.layout.Offset
}

// ClipEnabled returns whether the last Arrange had to clip the node.
func (n *Node) ClipEnabled() bool {
	return n.layout.ClipEnabled
}

// Bound returns the node's local content rectangle.
func (n *Node) Bound() Rect {
	return n.core.Bound()
}

// ClipBound returns the rectangle beyond which content is truncated.
func (n *Node) ClipBound() Rect {
	return n.core.ClipBound()
}

// Transform returns the layout translation transform.
func (n *Node) Transform() gg.Matrix {
	return n.core.Transform()
}

// Dirty returns the node's stale result set.
func (n *Node) Dirty() Dirty {
	return n.dirty
}

// IsMeasureDirty returns whether the desired size is stale.
func (n *Node) IsMeasureDirty() bool {
	return n.dirty&DirtyMeasure != 0
}

// IsArrangeDirty returns whether the arrange results are stale.
func (n *Node) IsArrangeDirty() bool {
	return n.dirty&DirtyArrange != 0
}

// IsTransformDirty returns whether bound and transform are stale.
func (n *Node) IsTransformDirty() bool {
	return n.dirty&DirtyTransform != 0
}

func (n *Node) setRenderSize(s Size) {
	if n.layout.RenderSize != s {
		n.layout.RenderSize = s
		n.dirty |= DirtyTransform
	}
}

func (n *Node) setOffset(p Point) {
	if n.layout.Offset != p {
		n.layout.Offset = p
		n.dirty |= DirtyTransform
	}
}
