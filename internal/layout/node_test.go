package layout

import (
	"math"
	"testing"
)

func TestNewNode(t *testing.T) {
	n := NewNode()

	if !math.IsInf(n.Width(), 1) || !math.IsInf(n.Height(), 1) {
		t.Errorf("NewNode size = %+v, want auto", n.Size())
	}
	if n.MinWidth() != 0 || n.MinHeight() != 0 {
		t.Errorf("NewNode min = (%v, %v), want (0, 0)", n.MinWidth(), n.MinHeight())
	}
	if !math.IsInf(n.MaxWidth(), 1) || !math.IsInf(n.MaxHeight(), 1) {
		t.Errorf("NewNode max = (%v, %v), want infinite", n.MaxWidth(), n.MaxHeight())
	}
	if n.HorizontalAlign() != AlignStretch || n.VerticalAlign() != AlignStretch {
		t.Error("NewNode should stretch on both axes")
	}
	if n.Dirty() != dirtyAll {
		t.Errorf("NewNode dirty = %b, want all", n.Dirty())
	}
	if n.IsAttached() {
		t.Error("NewNode should not be attached")
	}
	if _, ok := n.UnclippedDesiredSize(); ok {
		t.Error("NewNode should have no unclipped desired size")
	}
	if _, ok := n.Policy().(Overlay); !ok {
		t.Errorf("NewNode policy = %T, want Overlay", n.Policy())
	}
}

func TestNode_AddChild(t *testing.T) {
	parent := NewNode()
	child1 := NewNode()
	child2 := NewNode()

	// Clear dirty flag to test that AddChild marks dirty
	parent.dirty = 0

	parent.AddChild(child1, child2)

	if len(parent.Children()) != 2 {
		t.Fatalf("AddChild: len(Children) = %d, want 2", len(parent.Children()))
	}
	if parent.Children()[0] != child1 || parent.Children()[1] != child2 {
		t.Error("AddChild: children out of insertion order")
	}
	if child1.Parent() != parent || child2.Parent() != parent {
		t.Error("AddChild: parent not set")
	}
	if !parent.IsMeasureDirty() {
		t.Error("AddChild should mark parent dirty")
	}
}

func TestNode_AddChildReparents(t *testing.T) {
	a := NewNode()
	b := NewNode()
	child := NewNode()

	a.AddChild(child)
	b.AddChild(child)

	if len(a.Children()) != 0 {
		t.Errorf("old parent still has %d children", len(a.Children()))
	}
	if child.Parent() != b {
		t.Error("child should belong to new parent")
	}
}

func TestNode_AddChildRejectsCycles(t *testing.T) {
	type tc struct {
		link func(a, b, c *Node)
	}

	tests := map[string]tc{
		"self": {
			link: func(a, _, _ *Node) { a.AddChild(a) },
		},
		"parent": {
			link: func(a, b, _ *Node) { b.AddChild(a) },
		},
		"grandparent": {
			link: func(a, _, c *Node) { c.AddChild(a) },
		},
		"nil": {
			link: func(a, _, _ *Node) { a.AddChild(nil) },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, b, c := NewNode(), NewNode(), NewNode()
			a.AddChild(b)
			b.AddChild(c)
			attach(a)

			tt.link(a, b, c)

			if a.Parent() != nil {
				t.Errorf("root gained parent %p", a.Parent())
			}
			if len(a.Children()) != 1 || a.Children()[0] != b {
				t.Errorf("root children = %v, want [b]", a.Children())
			}
			if len(c.Children()) != 0 {
				t.Errorf("leaf gained %d children", len(c.Children()))
			}
			if c.Root() != a {
				t.Error("leaf no longer reaches root")
			}
		})
	}
}

func TestNode_RemoveChild(t *testing.T) {
	type tc struct {
		remove      int // index into children, -1 for a stranger
		expectFound bool
		expectNames []string
	}

	tests := map[string]tc{
		"remove first keeps order":  {remove: 0, expectFound: true, expectNames: []string{"b", "c"}},
		"remove middle keeps order": {remove: 1, expectFound: true, expectNames: []string{"a", "c"}},
		"remove non-existent child": {remove: -1, expectFound: false, expectNames: []string{"a", "b", "c"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode()
			kids := []*Node{NewNode(WithName("a")), NewNode(WithName("b")), NewNode(WithName("c"))}
			parent.AddChild(kids...)
			attach(parent)
			settle(t, parent, NewSize(10, 10))

			target := NewNode()
			if tt.remove >= 0 {
				target = kids[tt.remove]
			}

			found := parent.RemoveChild(target)

			if found != tt.expectFound {
				t.Errorf("RemoveChild() = %v, want %v", found, tt.expectFound)
			}
			var names []string
			for _, c := range parent.Children() {
				names = append(names, c.Name())
			}
			if len(names) != len(tt.expectNames) {
				t.Fatalf("children = %v, want %v", names, tt.expectNames)
			}
			for i := range names {
				if names[i] != tt.expectNames[i] {
					t.Errorf("children = %v, want %v", names, tt.expectNames)
				}
			}
			if found {
				if target.Parent() != nil || target.IsAttached() {
					t.Error("removed child should be detached")
				}
				if !parent.IsMeasureDirty() {
					t.Error("RemoveChild should mark parent dirty")
				}
			}
		})
	}
}

func TestNode_RemoveAllChildren(t *testing.T) {
	parent := NewNode()
	a, b := NewNode(), NewNode()
	parent.AddChild(a, b)
	attach(parent)

	parent.RemoveAllChildren()

	if len(parent.Children()) != 0 {
		t.Errorf("len(Children) = %d, want 0", len(parent.Children()))
	}
	if a.Parent() != nil || b.IsAttached() {
		t.Error("children should be orphaned and detached")
	}
}

func TestNode_AttachAssignsRenderCores(t *testing.T) {
	injected := newLocalCore()
	root := NewNode()
	plain := NewNode()
	custom := NewNode(WithRenderCore(injected))
	root.AddChild(plain, custom)

	h := attach(root)

	if _, ok := h.cores[plain]; !ok {
		t.Error("attached node without a core should get one from the host")
	}
	if _, ok := h.cores[custom]; ok {
		t.Error("injected core should not be replaced")
	}
	if custom.RenderCore() != injected {
		t.Error("injected core lost on attach")
	}

	late := NewNode()
	root.AddChild(late)
	if !late.IsAttached() {
		t.Error("child added to an attached parent should be attached")
	}
	if _, ok := h.cores[late]; !ok {
		t.Error("late child should get a core from the host")
	}
}

func TestNode_RootAndWalk(t *testing.T) {
	root, _, grandchild, sibling, _ := buildFamily()

	if grandchild.Root() != root {
		t.Error("Root() should return the topmost ancestor")
	}

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name())
		return n != sibling
	})

	want := []string{"root", "parent", "grandchild", "sibling"}
	if len(names) != len(want) {
		t.Fatalf("Walk visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Walk visited %v, want %v", names, want)
		}
	}
}
