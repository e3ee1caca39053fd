// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package layout2d

import (
	"log/slog"

	"github.com/grindlemire/go-layout2d/internal/layout"
)

// Infinity marks an unbounded budget or an auto-sized dimension.
var Infinity = layout.Infinity

// Auto returns the declared-size value meaning "size to content".
func Auto() float64 { return layout.Auto() }

// Size represents a width/height pair.
type Size = layout.Size

// Point represents a 2D position.
type Point = layout.Point

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Thickness represents spacing on four sides (left, top, right, bottom).
type Thickness = layout.Thickness

// Align specifies how a node is placed inside its allocation on one axis.
type Align = layout.Align

const (
	AlignStretch = layout.AlignStretch
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
)

// Node is an element of the layout tree.
type Node = layout.Node

// Option configures a Node.
type Option = layout.Option

// Layout holds the results computed by the last Measure and Arrange.
type Layout = layout.Layout

// Dirty is the set of stale layout results on a node.
type Dirty = layout.Dirty

const (
	DirtyMeasure   = layout.DirtyMeasure
	DirtyArrange   = layout.DirtyArrange
	DirtyTransform = layout.DirtyTransform
)

// Policy decides how a node sizes its content and places its children.
type Policy = layout.Policy

// PolicyFuncs adapts a pair of functions to the Policy interface.
type PolicyFuncs = layout.PolicyFuncs

// Overlay stacks children on top of each other. It is the default policy.
type Overlay = layout.Overlay

// Intrinsic is a leaf policy reporting a fixed content size.
type Intrinsic = layout.Intrinsic

// Stack places children one after another.
type Stack = layout.Stack

// Orientation is the stacking axis of a Stack.
type Orientation = layout.Orientation

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// RenderCore is the render-side object a node writes its geometry into.
type RenderCore = layout.RenderCore

var (
	NewNode            = layout.NewNode
	NewSize            = layout.NewSize
	NewRect            = layout.NewRect
	RectFromSize       = layout.RectFromSize
	ThicknessAll       = layout.ThicknessAll
	ThicknessSymmetric = layout.ThicknessSymmetric
	ThicknessLTRB      = layout.ThicknessLTRB
	ParseAlign         = layout.ParseAlign
	ResolveConstraints = layout.ResolveConstraints
)

var (
	WithName            = layout.WithName
	WithWidth           = layout.WithWidth
	WithHeight          = layout.WithHeight
	WithSize            = layout.WithSize
	WithMinWidth        = layout.WithMinWidth
	WithMinHeight       = layout.WithMinHeight
	WithMaxWidth        = layout.WithMaxWidth
	WithMaxHeight       = layout.WithMaxHeight
	WithMargin          = layout.WithMargin
	WithAlign           = layout.WithAlign
	WithHorizontalAlign = layout.WithHorizontalAlign
	WithVerticalAlign   = layout.WithVerticalAlign
	WithClipToBound     = layout.WithClipToBound
	WithPolicy          = layout.WithPolicy
	WithRenderCore      = layout.WithRenderCore
	WithChildren        = layout.WithChildren
)

// SetLogger configures the logger used by the layout engine. Pass nil to
// silence it again.
func SetLogger(l *slog.Logger) {
	layout.SetLogger(l)
}
