// Package snapshot captures the computed geometry of a layout tree so it
// can be printed, diffed or stored.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-layout2d/internal/layout"
)

// Format is a snapshot encoding.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

// ErrUnknownFormat is returned for unsupported encodings.
var ErrUnknownFormat = errors.New("snapshot: unknown format")

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatTOML, FormatMsgpack:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "mp", "msgp":
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Vec is a width/height or x/y pair.
type Vec struct {
	X float64 `yaml:"x" toml:"x" msgpack:"x"`
	Y float64 `yaml:"y" toml:"y" msgpack:"y"`
}

// Box is a rectangle.
type Box struct {
	X      float64 `yaml:"x" toml:"x" msgpack:"x"`
	Y      float64 `yaml:"y" toml:"y" msgpack:"y"`
	Width  float64 `yaml:"width" toml:"width" msgpack:"width"`
	Height float64 `yaml:"height" toml:"height" msgpack:"height"`
}

// Node is the captured state of one layout node and its subtree.
type Node struct {
	Name      string   `yaml:"name" toml:"name" msgpack:"name"`
	Attached  bool     `yaml:"attached" toml:"attached" msgpack:"attached"`
	Desired   Vec      `yaml:"desired" toml:"desired" msgpack:"desired"`
	Unclipped *Vec     `yaml:"unclipped,omitempty" toml:"unclipped,omitempty" msgpack:"unclipped,omitempty"`
	Render    Vec      `yaml:"render" toml:"render" msgpack:"render"`
	Offset    Vec      `yaml:"offset" toml:"offset" msgpack:"offset"`
	Bound     Box      `yaml:"bound" toml:"bound" msgpack:"bound"`
	ClipBound Box      `yaml:"clip_bound" toml:"clip_bound" msgpack:"clip_bound"`
	Clip      bool     `yaml:"clip" toml:"clip" msgpack:"clip"`
	Dirty     []string `yaml:"dirty,omitempty" toml:"dirty,omitempty" msgpack:"dirty,omitempty"`
	Children  []Node   `yaml:"children,omitempty" toml:"children,omitempty" msgpack:"children,omitempty"`
}

// Snapshot is a captured layout tree.
type Snapshot struct {
	Root Node `yaml:"root" toml:"root" msgpack:"root"`
}

// Capture records the current layout results of root and its descendants.
// It does not run a layout pass.
func Capture(root *layout.Node) Snapshot {
	return Snapshot{Root: captureNode(root)}
}

func captureNode(n *layout.Node) Node {
	out := Node{
		Name:      n.Name(),
		Attached:  n.IsAttached(),
		Desired:   vec(n.DesiredSize()),
		Render:    vec(n.RenderSize()),
		Offset:    Vec{X: n.LayoutOffset().X, Y: n.LayoutOffset().Y},
		Bound:     box(n.Bound()),
		ClipBound: box(n.ClipBound()),
		Clip:      n.ClipEnabled(),
		Dirty:     dirtyNames(n.Dirty()),
	}
	if u, ok := n.UnclippedDesiredSize(); ok {
		v := vec(u)
		out.Unclipped = &v
	}
	for _, child := range n.Children() {
		out.Children = append(out.Children, captureNode(child))
	}
	return out
}

func vec(s layout.Size) Vec {
	return Vec{X: s.X, Y: s.Y}
}

func box(r layout.Rect) Box {
	return Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func dirtyNames(d layout.Dirty) []string {
	var names []string
	if d&layout.DirtyMeasure != 0 {
		names = append(names, "measure")
	}
	if d&layout.DirtyArrange != 0 {
		names = append(names, "arrange")
	}
	if d&layout.DirtyTransform != 0 {
		names = append(names, "transform")
	}
	return names
}

// Find returns the first node named name in depth-first order.
func (s Snapshot) Find(name string) (Node, bool) {
	return s.Root.find(name)
}

func (n Node) find(name string) (Node, bool) {
	if n.Name == name {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.find(name); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Encode writes snap to w in the given format.
func Encode(w io.Writer, snap Snapshot, format Format) error {
	var err error
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(snap); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(snap)
	case FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(snap)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", format, err)
	}
	return nil
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader, format Format) (Snapshot, error) {
	var snap Snapshot
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&snap)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&snap)
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&snap)
	default:
		return Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode %s snapshot: %w", format, err)
	}
	return snap, nil
}
