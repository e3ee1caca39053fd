package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/grindlemire/go-layout2d/internal/layout"
)

// Build validates doc and constructs its root node. Nodes without a name
// get a random UUID so they can be told apart in logs and snapshots.
func Build(doc *Document) (*layout.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("build scene: nil document")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return buildNode(doc.Root)
}

// Size returns the viewport size declared by the document.
func (d *Document) Size() layout.Size {
	return layout.NewSize(d.Viewport.Width, d.Viewport.Height)
}

func buildNode(ns NodeSpec) (*layout.Node, error) {
	name := ns.Name
	if name == "" {
		name = uuid.NewString()
	}

	margin, err := thickness(ns.Margin)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", name, err)
	}

	opts := []layout.Option{
		layout.WithName(name),
		layout.WithWidth(ns.Width.Or(layout.Infinity)),
		layout.WithHeight(ns.Height.Or(layout.Infinity)),
		layout.WithMinWidth(ns.MinWidth.Or(0)),
		layout.WithMinHeight(ns.MinHeight.Or(0)),
		layout.WithMaxWidth(ns.MaxWidth.Or(layout.Infinity)),
		layout.WithMaxHeight(ns.MaxHeight.Or(layout.Infinity)),
		layout.WithMargin(margin),
		layout.WithPolicy(policy(ns)),
	}
	if ns.HAlign != "" {
		a, _ := layout.ParseAlign(ns.HAlign)
		opts = append(opts, layout.WithHorizontalAlign(a))
	}
	if ns.VAlign != "" {
		a, _ := layout.ParseAlign(ns.VAlign)
		opts = append(opts, layout.WithVerticalAlign(a))
	}
	if ns.ClipToBound {
		opts = append(opts, layout.WithClipToBound())
	}

	n := layout.NewNode(opts...)
	for i, childNS := range ns.Children {
		child, err := buildNode(childNS)
		if err != nil {
			return nil, fmt.Errorf("%s.children[%d]: %w", name, i, err)
		}
		n.AddChild(child)
	}
	return n, nil
}

func thickness(vals []float64) (layout.Thickness, error) {
	switch len(vals) {
	case 0:
		return layout.Thickness{}, nil
	case 1:
		return layout.ThicknessAll(vals[0]), nil
	case 2:
		return layout.ThicknessSymmetric(vals[0], vals[1]), nil
	case 4:
		return layout.ThicknessLTRB(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return layout.Thickness{}, fmt.Errorf("margin needs 1, 2 or 4 values, got %d", len(vals))
	}
}

func policy(ns NodeSpec) layout.Policy {
	switch ns.Policy {
	case "stack":
		o := layout.Vertical
		if ns.Orientation == "horizontal" {
			o = layout.Horizontal
		}
		return layout.Stack{Orientation: o, Spacing: ns.Spacing}
	case "intrinsic":
		var s layout.Size
		if len(ns.Content) == 2 {
			s = layout.NewSize(ns.Content[0], ns.Content[1])
		}
		return layout.Intrinsic{Size: s}
	default:
		return layout.Overlay{}
	}
}
