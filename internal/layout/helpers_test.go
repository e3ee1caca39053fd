package layout

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// testCore records geometry writes and redraw requests.
type testCore struct {
	localCore
	redraws int
}

func (c *testCore) InvalidateRender() { c.redraws++ }

// testHost hands out testCores and records pass notifications.
type testHost struct {
	cores    map[*Node]*testCore
	measured []*Node
	arranged []*Node
}

func newTestHost() *testHost {
	return &testHost{cores: make(map[*Node]*testCore)}
}

func (h *testHost) RenderCoreFor(n *Node) RenderCore {
	c := &testCore{localCore: localCore{transform: gg.Identity()}}
	h.cores[n] = c
	return c
}

func (h *testHost) Measured(n *Node) { h.measured = append(h.measured, n) }
func (h *testHost) Arranged(n *Node) { h.arranged = append(h.arranged, n) }

func (h *testHost) reset() {
	h.measured = nil
	h.arranged = nil
}

func (h *testHost) redraws() int {
	total := 0
	for _, c := range h.cores {
		total += c.redraws
	}
	return total
}

// attach attaches root to a fresh test host.
func attach(root *Node) *testHost {
	h := newTestHost()
	root.Attach(h)
	return h
}

// settle runs layout passes until the tree is clean. The first arrange of a
// node changes its render size, which invalidates measure again.
func settle(t *testing.T, root *Node, available Size) {
	t.Helper()
	for i := 0; i < 4; i++ {
		root.Measure(available)
		root.Arrange(RectFromSize(available))
		if isClean(root) {
			return
		}
	}
	t.Fatalf("tree did not settle")
}

func isClean(root *Node) bool {
	clean := true
	root.Walk(func(n *Node) bool {
		if n.Dirty() != 0 {
			clean = false
		}
		return true
	})
	return clean
}

func approx(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) < 1e-9
}
