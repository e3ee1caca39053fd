package layout

import (
	"math"
	"testing"
)

func TestMeasure_MarginRoundTrip(t *testing.T) {
	var got Size
	probe := PolicyFuncs{
		Measure: func(n *Node, available Size) Size {
			got = available
			return available
		},
	}

	n := NewNode(WithMargin(ThicknessLTRB(1, 2, 3, 4)), WithPolicy(probe))
	attach(n)
	n.Measure(NewSize(100, 50))

	if got != NewSize(96, 44) {
		t.Errorf("content budget = %+v, want {96 44}", got)
	}
	if n.DesiredSize() != NewSize(100, 50) {
		t.Errorf("DesiredSize() = %+v, want {100 50}", n.DesiredSize())
	}
	if _, ok := n.UnclippedDesiredSize(); ok {
		t.Error("UnclippedDesiredSize should be unset when nothing was clipped")
	}
}

func TestMeasure_SizeContainment(t *testing.T) {
	type tc struct {
		opts      []Option
		available Size
	}

	tests := map[string]tc{
		"intrinsic larger than available": {
			opts:      []Option{WithPolicy(Intrinsic{Size: NewSize(500, 500)})},
			available: NewSize(100, 80),
		},
		"min larger than available": {
			opts:      []Option{WithMinWidth(300), WithMinHeight(300)},
			available: NewSize(100, 80),
		},
		"fixed size with margin": {
			opts:      []Option{WithSize(100, 80), WithMargin(ThicknessAll(10))},
			available: NewSize(100, 80),
		},
		"auto size": {
			opts:      nil,
			available: NewSize(64, 32),
		},
		"infinite available": {
			opts:      []Option{WithPolicy(Intrinsic{Size: NewSize(20, 10)})},
			available: NewSize(Infinity, Infinity),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := NewNode(tt.opts...)
			attach(n)
			n.Measure(tt.available)

			d := n.DesiredSize()
			if d.X > tt.available.X || d.Y > tt.available.Y {
				t.Errorf("DesiredSize() = %+v exceeds available %+v", d, tt.available)
			}
			if n.IsMeasureDirty() {
				t.Error("measure flag should be cleared")
			}
		})
	}
}

func TestMeasure_ClipsToMaxAndRecordsUnclipped(t *testing.T) {
	root := NewNode()
	child := NewNode(
		WithPolicy(Intrinsic{Size: NewSize(50, 50)}),
		WithMaxWidth(40),
		WithMargin(ThicknessAll(5)),
	)
	root.AddChild(child)
	attach(root)

	root.Measure(NewSize(800, 600))

	if got := child.DesiredSize(); got != NewSize(50, 60) {
		t.Errorf("child DesiredSize() = %+v, want {50 60}", got)
	}
	unclipped, ok := child.UnclippedDesiredSize()
	if !ok {
		t.Fatal("UnclippedDesiredSize should be set after clipping")
	}
	if unclipped.X != 50 {
		t.Errorf("UnclippedDesiredSize().X = %v, want 50", unclipped.X)
	}
}

func TestMeasure_ClipsToAvailable(t *testing.T) {
	n := NewNode(WithMinWidth(300))
	attach(n)
	n.Measure(NewSize(200, 100))

	if got := n.DesiredSize(); got != NewSize(200, 100) {
		t.Errorf("DesiredSize() = %+v, want {200 100}", got)
	}
	unclipped, ok := n.UnclippedDesiredSize()
	if !ok || unclipped.X != 300 {
		t.Errorf("UnclippedDesiredSize() = %+v, %v; want {300 100}, true", unclipped, ok)
	}
}

func TestMeasure_DetachedIsNoop(t *testing.T) {
	n := NewNode(WithSize(10, 10))
	n.Measure(NewSize(100, 100))

	if n.DesiredSize() != (Size{}) {
		t.Errorf("detached DesiredSize() = %+v, want zero", n.DesiredSize())
	}
	if !n.IsMeasureDirty() {
		t.Error("detached node should stay dirty")
	}
}

func TestMeasure_CleanIsNoop(t *testing.T) {
	calls := 0
	n := NewNode(WithPolicy(PolicyFuncs{
		Measure: func(n *Node, available Size) Size {
			calls++
			return available
		},
	}))
	attach(n)

	n.Measure(NewSize(100, 100))
	n.Measure(NewSize(50, 50))

	if calls != 1 {
		t.Errorf("policy called %d times, want 1", calls)
	}
	if n.DesiredSize() != NewSize(100, 100) {
		t.Errorf("DesiredSize() = %+v, want {100 100}", n.DesiredSize())
	}
}

func TestMeasure_NaNPassesThrough(t *testing.T) {
	n := NewNode(WithPolicy(Intrinsic{Size: NewSize(math.NaN(), math.NaN())}))
	attach(n)
	n.Measure(NewSize(100, 80))

	if !n.DesiredSize().HasNaN() {
		t.Errorf("DesiredSize() = %+v, want NaN components", n.DesiredSize())
	}
	if _, ok := n.UnclippedDesiredSize(); ok {
		t.Error("NaN result should not be recorded as unclipped")
	}
}
