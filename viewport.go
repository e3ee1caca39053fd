package layout2d

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-layout2d/internal/layout"
	"github.com/grindlemire/go-layout2d/internal/metrics"
	"github.com/grindlemire/go-layout2d/internal/render"
)

const defaultMaxPasses = 4

var (
	// ErrNoRoot is returned by Update when no root node has been set.
	ErrNoRoot = errors.New("layout2d: viewport has no root")

	// ErrInvalidSize is returned for negative, NaN or infinite viewport sizes.
	ErrInvalidSize = errors.New("layout2d: invalid viewport size")
)

// UpdateResult describes one call to Viewport.Update.
type UpdateResult struct {
	// Passes is the number of Measure+Arrange passes run until the tree was
	// clean.
	Passes int

	// Measured and Arranged count nodes whose results were recomputed.
	Measured int
	Arranged int

	// Touched is the number of distinct nodes measured or arranged.
	Touched int

	// Redraws is the number of distinct nodes that requested a repaint.
	Redraws int

	// Redrawn lists those nodes in request order.
	Redrawn []*Node

	Duration time.Duration
}

// Viewport owns a layout tree and the render pipeline its nodes write into.
// A Viewport is not safe for concurrent use.
type Viewport struct {
	root      *Node
	size      Size
	scheduler *render.Scheduler
	cores     map[*Node]*render.Core
	dirty     atomic.Bool

	logger    *slog.Logger
	recorder  *metrics.Recorder
	maxPasses int
	onRedraw  func([]*Node)

	// per-update counters fed by the host
	measured int
	arranged int
	touched  map[*Node]struct{}
}

// NewViewport creates a Viewport. Without WithViewportSize the viewport is
// 0x0 and Update lays nothing out until Resize is called.
func NewViewport(opts ...ViewportOption) (*Viewport, error) {
	v := &Viewport{
		cores:     make(map[*Node]*render.Core),
		touched:   make(map[*Node]struct{}),
		logger:    slog.New(slog.DiscardHandler),
		maxPasses: defaultMaxPasses,
	}
	v.scheduler = render.NewScheduler(v.MarkDirty)

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Root returns the root node, or nil.
func (v *Viewport) Root() *Node {
	return v.root
}

// Size returns the viewport size.
func (v *Viewport) Size() Size {
	return v.size
}

// SetRoot replaces the root node. The previous root is detached. The new
// root and its subtree join the viewport's render pipeline and are fully
// invalidated. Passing nil clears the root.
func (v *Viewport) SetRoot(n *Node) {
	if v.root == n {
		return
	}
	if v.root != nil {
		v.root.Detach()
		clear(v.cores)
		v.scheduler.Drain()
	}
	v.root = n
	if n == nil {
		return
	}
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
	n.Attach(viewportHost{v})
	v.MarkDirty()
	v.logger.Debug("viewport root set", "root", n.Name())
}

// Resize changes the viewport size and invalidates measure on the root.
func (v *Viewport) Resize(width, height float64) error {
	s, err := validateSize(width, height)
	if err != nil {
		return err
	}
	if s == v.size {
		return nil
	}
	v.size = s
	if v.root != nil {
		v.root.InvalidateMeasure()
	}
	v.MarkDirty()
	v.logger.Debug("viewport resized", "width", width, "height", height)
	return nil
}

// Core returns the render core the viewport created for n, or nil when n
// is not in the viewport's tree or brought its own core.
func (v *Viewport) Core(n *Node) *render.Core {
	return v.cores[n]
}

// Update measures the root against the viewport size and then arranges it
// in the viewport rectangle. Passes repeat while the root is still dirty,
// up to the configured limit, since a pass that changes render sizes asks
// for a repaint and marks its ancestors stale again.
func (v *Viewport) Update() (UpdateResult, error) {
	if v.root == nil {
		return UpdateResult{}, ErrNoRoot
	}
	if v.size.IsZero() {
		// Arrange ignores empty rectangles, so passes could never settle.
		// The tree stays dirty and Resize marks the viewport again.
		v.checkAndClearDirty()
		return UpdateResult{}, nil
	}

	start := time.Now()
	v.measured, v.arranged = 0, 0
	clear(v.touched)

	var res UpdateResult
	for res.Passes < v.maxPasses && !isClean(v.root) {
		v.root.Measure(v.size)
		v.root.Arrange(RectFromSize(v.size))
		res.Passes++
	}

	res.Measured = v.measured
	res.Arranged = v.arranged
	res.Touched = len(v.touched)
	res.Redrawn = v.scheduler.Drain()
	res.Redraws = len(res.Redrawn)
	res.Duration = time.Since(start)

	if isClean(v.root) {
		v.checkAndClearDirty()
	} else {
		v.logger.Warn("layout did not settle", "passes", res.Passes, "root", v.root.Name())
	}

	v.recorder.Observe(metrics.UpdateStats{
		Measured: res.Measured,
		Arranged: res.Arranged,
		Touched:  res.Touched,
		Redraws:  res.Redraws,
		Duration: res.Duration,
	})
	if v.onRedraw != nil && len(res.Redrawn) > 0 {
		v.onRedraw(res.Redrawn)
	}

	v.logger.Debug("viewport updated",
		"passes", res.Passes,
		"measured", res.Measured,
		"arranged", res.Arranged,
		"redraws", res.Redraws,
		"duration", res.Duration,
	)
	return res, nil
}

func isClean(n *Node) bool {
	return !n.IsMeasureDirty() && !n.IsArrangeDirty()
}

func validateSize(width, height float64) (Size, error) {
	for _, d := range [2]float64{width, height} {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return Size{}, fmt.Errorf("%w: %gx%g", ErrInvalidSize, width, height)
		}
	}
	return NewSize(width, height), nil
}

// viewportHost connects attached nodes to the viewport without exposing the
// layout.Host and layout.Observer methods on Viewport itself.
type viewportHost struct {
	v *Viewport
}

var (
	_ layout.Host     = viewportHost{}
	_ layout.Observer = viewportHost{}
)

func (h viewportHost) RenderCoreFor(n *Node) RenderCore {
	c, ok := h.v.cores[n]
	if !ok {
		c = render.NewCore(n, h.v.scheduler)
		h.v.cores[n] = c
	}
	return c
}

func (h viewportHost) Measured(n *Node) {
	h.v.measured++
	h.v.touched[n] = struct{}{}
}

func (h viewportHost) Arranged(n *Node) {
	h.v.arranged++
	h.v.touched[n] = struct{}{}
}
