package layout2d

import (
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestViewport(t *testing.T, opts ...ViewportOption) *Viewport {
	t.Helper()
	v, err := NewViewport(opts...)
	if err != nil {
		t.Fatalf("NewViewport() error = %v", err)
	}
	return v
}

func centeredPanel() *Node {
	return NewNode(
		WithName("panel"),
		WithSize(200, 100),
		WithMargin(ThicknessAll(10)),
		WithAlign(AlignCenter, AlignCenter),
	)
}

func TestNewViewport_Options(t *testing.T) {
	type tc struct {
		opts    []ViewportOption
		wantErr error
		size    Size
	}

	tests := map[string]tc{
		"defaults": {
			size: Size{},
		},
		"viewport size": {
			opts: []ViewportOption{WithViewportSize(800, 600)},
			size: NewSize(800, 600),
		},
		"negative size": {
			opts:    []ViewportOption{WithViewportSize(-1, 600)},
			wantErr: ErrInvalidSize,
		},
		"infinite size": {
			opts:    []ViewportOption{WithViewportSize(Infinity, 600)},
			wantErr: ErrInvalidSize,
		},
		"nan size": {
			opts:    []ViewportOption{WithViewportSize(100, math.NaN())},
			wantErr: ErrInvalidSize,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := NewViewport(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewViewport() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewViewport() error = %v", err)
			}
			if v.Size() != tt.size {
				t.Errorf("Size() = %v, want %v", v.Size(), tt.size)
			}
		})
	}
}

func TestNewViewport_RejectsBadOptions(t *testing.T) {
	type tc struct {
		opt ViewportOption
	}

	tests := map[string]tc{
		"nil logger":  {opt: WithLogger(nil)},
		"zero passes": {opt: WithMaxPasses(0)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewViewport(tt.opt); err == nil {
				t.Error("NewViewport() error = nil, want error")
			}
		})
	}
}

func TestViewport_UpdateWithoutRoot(t *testing.T) {
	v := newTestViewport(t, WithViewportSize(10, 10))
	if _, err := v.Update(); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Update() error = %v, want ErrNoRoot", err)
	}
}

func TestViewport_UpdateAtZeroSizeDefersLayout(t *testing.T) {
	v := newTestViewport(t)
	panel := centeredPanel()
	v.SetRoot(panel)

	res, err := v.Update()
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if res.Passes != 0 || res.Measured != 0 || res.Arranged != 0 {
		t.Errorf("Update() at 0x0 = %+v, want no work", res)
	}
	if v.NeedsUpdate() {
		t.Error("NeedsUpdate() = true after zero-size Update, want false")
	}

	if err := v.Resize(800, 600); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if !v.NeedsUpdate() {
		t.Error("NeedsUpdate() = false after Resize, want true")
	}
	res, err = v.Update()
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if res.Passes == 0 {
		t.Error("Update() after Resize did no passes")
	}
	if got, want := panel.LayoutOffset(), (Point{X: 290, Y: 240}); got != want {
		t.Errorf("LayoutOffset() = %v, want %v", got, want)
	}
}

func TestViewport_CentersPanel(t *testing.T) {
	v := newTestViewport(t, WithViewportSize(800, 600), WithLogger(slog.New(slog.DiscardHandler)))
	panel := centeredPanel()
	v.SetRoot(panel)

	res, err := v.Update()
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if res.Passes != 2 {
		t.Errorf("Passes = %d, want 2", res.Passes)
	}
	if res.Redraws != 1 {
		t.Errorf("Redraws = %d, want 1", res.Redraws)
	}
	if res.Arranged < 1 || res.Measured < 1 {
		t.Errorf("Measured = %d, Arranged = %d, want both >= 1", res.Measured, res.Arranged)
	}

	if got, want := panel.RenderSize(), NewSize(220, 120); got != want {
		t.Errorf("RenderSize() = %v, want %v", got, want)
	}
	if got, want := panel.LayoutOffset(), (Point{X: 290, Y: 240}); got != want {
		t.Errorf("LayoutOffset() = %v, want %v", got, want)
	}
	if got, want := panel.Bound(), NewRect(10, 10, 200, 100); got != want {
		t.Errorf("Bound() = %v, want %v", got, want)
	}

	core := v.Core(panel)
	if core == nil {
		t.Fatal("Core(panel) = nil, want viewport render core")
	}
	if core.Bound() != panel.Bound() {
		t.Errorf("core bound %v differs from node bound %v", core.Bound(), panel.Bound())
	}
}

func TestViewport_UpdateIsIdempotent(t *testing.T) {
	v := newTestViewport(t, WithViewportSize(800, 600))
	panel := centeredPanel()
	v.SetRoot(panel)
	if _, err := v.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	before := panel.GetLayout()

	res, err := v.Update()
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if res.Passes != 0 || res.Measured != 0 || res.Arranged != 0 || res.Redraws != 0 {
		t.Errorf("second Update() = %+v, want no work", res)
	}
	if panel.GetLayout() != before {
		t.Errorf("layout changed on clean update: %+v -> %+v", before, panel.GetLayout())
	}
}

func TestViewport_Resize(t *testing.T) {
	v := newTestViewport(t, WithViewportSize(800, 600))
	panel := centeredPanel()
	v.SetRoot(panel)
	if _, err := v.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := v.Resize(400, 300); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if !panel.IsMeasureDirty() {
		t.Error("Resize() did not invalidate measure on the root")
	}

	res, err := v.Update()
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if res.Passes != 1 {
		t.Errorf("Passes = %d, want 1", res.Passes)
	}
	if got, want := panel.LayoutOffset(), (Point{X: 90, Y: 90}); got != want {
		t.Errorf("LayoutOffset() = %v, want %v", got, want)
	}
	if got, want := panel.Transform().C, 90.0; got != want {
		t.Errorf("Transform().C = %v, want %v", got, want)
	}

	if err := v.Resize(-5, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(-5, 10) error = %v, want ErrInvalidSize", err)
	}
	if v.Size() != NewSize(400, 300) {
		t.Errorf("Size() = %v after rejected resize, want 400x300", v.Size())
	}
}

func TestViewport_SetRootReplacesTree(t *testing.T) {
	v := newTestViewport(t, WithViewportSize(100, 100))
	first := NewNode(WithName("first"))
	second := NewNode(WithName("second"))

	v.SetRoot(first)
	if !first.IsAttached() {
		t.Fatal("first root not attached")
	}

	v.SetRoot(second)
	if first.IsAttached() {
		t.Error("previous root still attached after SetRoot")
	}
	if !second.IsAttached() {
		t.Error("new root not attached")
	}
	if v.Core(first) != nil {
		t.Error("viewport kept a render core for the previous root")
	}
	if v.Root() != second {
		t.Errorf("Root() = %v, want second", v.Root().Name())
	}

	v.SetRoot(nil)
	if second.IsAttached() {
		t.Error("root still attached after SetRoot(nil)")
	}
	if _, err := v.Update(); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Update() error = %v, want ErrNoRoot", err)
	}
}

func TestViewport_SetRootDetachesFromParent(t *testing.T) {
	v := newTestViewport(t, WithViewportSize(100, 100))
	child := NewNode(WithName("child"))
	parent := NewNode(WithChildren(child))

	v.SetRoot(child)
	if child.Parent() != nil {
		t.Error("root still has a parent")
	}
	if len(parent.Children()) != 0 {
		t.Errorf("former parent has %d children, want 0", len(parent.Children()))
	}
}

func TestViewport_ChildAddedAfterUpdateGetsCore(t *testing.T) {
	v := newTestViewport(t, WithViewportSize(300, 200))
	root := NewNode(WithName("root"))
	v.SetRoot(root)
	if _, err := v.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	child := NewNode(WithName("child"), WithSize(50, 40), WithAlign(AlignStart, AlignStart))
	root.AddChild(child)
	if v.Core(child) == nil {
		t.Fatal("child added to an attached tree has no viewport core")
	}

	if _, err := v.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got, want := child.RenderSize(), NewSize(50, 40); got != want {
		t.Errorf("child RenderSize() = %v, want %v", got, want)
	}
	if got, want := child.Bound(), NewRect(0, 0, 50, 40); got != want {
		t.Errorf("child Bound() = %v, want %v", got, want)
	}
}

func TestViewport_OnRedraw(t *testing.T) {
	var got []*Node
	v := newTestViewport(t,
		WithViewportSize(800, 600),
		WithOnRedraw(func(nodes []*Node) { got = append(got, nodes...) }),
	)
	panel := centeredPanel()
	v.SetRoot(panel)
	if _, err := v.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(got) != 1 || got[0] != panel {
		t.Errorf("OnRedraw nodes = %v, want [panel]", got)
	}
}

func TestViewport_MaxPassesLimitsWork(t *testing.T) {
	v := newTestViewport(t, WithViewportSize(800, 600), WithMaxPasses(1))
	v.SetRoot(centeredPanel())

	res, err := v.Update()
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if res.Passes != 1 {
		t.Errorf("Passes = %d, want 1", res.Passes)
	}
	if !v.NeedsUpdate() {
		t.Error("NeedsUpdate() = false with an unsettled tree")
	}
}

func TestViewport_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	v := newTestViewport(t, WithViewportSize(800, 600), WithMetrics(reg))
	v.SetRoot(centeredPanel())
	if _, err := v.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	n, err := testutil.GatherAndCount(reg, "layout2d_updates_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if n != 1 {
		t.Errorf("layout2d_updates_total series = %d, want 1", n)
	}

	if _, err := NewViewport(WithMetrics(reg)); err == nil {
		t.Error("second viewport on the same registry should fail to register")
	}
}

func TestViewport_LastUpdateNodesCountsDistinctNodes(t *testing.T) {
	reg := prometheus.NewRegistry()
	v := newTestViewport(t, WithViewportSize(800, 600), WithMetrics(reg))
	panel := centeredPanel()
	panel.AddChild(NewNode(WithName("label")))
	v.SetRoot(panel)

	res, err := v.Update()
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if res.Touched != 2 {
		t.Errorf("Touched = %d, want 2", res.Touched)
	}
	if res.Arranged < res.Touched {
		t.Errorf("Arranged = %d, want at least Touched = %d", res.Arranged, res.Touched)
	}

	want := `
# HELP layout2d_last_update_nodes Distinct nodes measured or arranged by the most recent update.
# TYPE layout2d_last_update_nodes gauge
layout2d_last_update_nodes 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "layout2d_last_update_nodes"); err != nil {
		t.Error(err)
	}
}
