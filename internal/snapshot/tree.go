package snapshot

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	rootStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	clipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Tree renders snap as an indented tree, one line per node:
//
//	hud 220x120 @ (290,240)
//	├── title 220x50 @ (0,0)
//	╰── body 320x140 @ (0,54) clip
//
// Sizes are render sizes and positions are layout offsets. Set plain to
// drop colors.
func Tree(snap Snapshot, plain bool) string {
	t := buildTree(snap.Root, plain).Enumerator(tree.RoundedEnumerator)
	if !plain {
		t = t.EnumeratorStyle(dimStyle).RootStyle(rootStyle)
	}
	return t.String()
}

func buildTree(n Node, plain bool) *tree.Tree {
	t := tree.Root(label(n, plain))
	for _, child := range n.Children {
		if len(child.Children) == 0 {
			t.Child(label(child, plain))
			continue
		}
		t.Child(buildTree(child, plain))
	}
	return t
}

func label(n Node, plain bool) string {
	s := fmt.Sprintf("%s %gx%g @ (%g,%g)", n.Name, n.Render.X, n.Render.Y, n.Offset.X, n.Offset.Y)
	if n.Clip {
		if plain {
			s += " clip"
		} else {
			s += " " + clipStyle.Render("clip")
		}
	}
	if len(n.Dirty) > 0 {
		s += fmt.Sprintf(" %v", n.Dirty)
	}
	return s
}
