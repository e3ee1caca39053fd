package render

import (
	"fmt"
	"io"
	"math"

	"fortio.org/safecast"
	"github.com/gogpu/gg"

	"github.com/grindlemire/go-layout2d/internal/layout"
)

// Palette holds the colors used by the Rasterizer.
type Palette struct {
	Background gg.RGBA
	Bound      gg.RGBA
	Clip       gg.RGBA
	Margin     gg.RGBA
}

// DefaultPalette draws on a dark background with cyan bounds and red clips.
func DefaultPalette() Palette {
	return Palette{
		Background: gg.Hex("#1e1e2e"),
		Bound:      gg.Hex("#89dceb"),
		Clip:       gg.Hex("#f38ba8"),
		Margin:     gg.RGBA2(0.98, 0.89, 0.69, 0.25),
	}
}

// Rasterizer draws an arranged layout tree: each node's bound as a stroked
// rectangle, its margin box filled translucently, and its clip bound dashed
// when clipping is enabled.
type Rasterizer struct {
	dc      *gg.Context
	palette Palette
	scale   float64
}

// NewRasterizer creates a Rasterizer for a canvas covering size, scaled by
// scale (1 when scale <= 0).
func NewRasterizer(size layout.Size, scale float64) (*Rasterizer, error) {
	if scale <= 0 {
		scale = 1
	}
	w, err := pixels(size.X * scale)
	if err != nil {
		return nil, fmt.Errorf("canvas width: %w", err)
	}
	h, err := pixels(size.Y * scale)
	if err != nil {
		return nil, fmt.Errorf("canvas height: %w", err)
	}
	return &Rasterizer{
		dc:      gg.NewContext(w, h),
		palette: DefaultPalette(),
		scale:   scale,
	}, nil
}

// pixels converts a length to a canvas dimension of at least one pixel.
func pixels(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite length %v", v)
	}
	n, err := safecast.Convert[int](math.Ceil(v))
	if err != nil {
		return 0, err
	}
	return max(n, 1), nil
}

// SetPalette replaces the drawing colors.
func (r *Rasterizer) SetPalette(p Palette) {
	r.palette = p
}

// Draw clears the canvas and draws root and its descendants.
func (r *Rasterizer) Draw(root *layout.Node) error {
	r.dc.ClearWithColor(r.palette.Background)
	r.dc.Identity()
	r.dc.Scale(r.scale, r.scale)
	return r.drawNode(root)
}

func (r *Rasterizer) drawNode(n *layout.Node) error {
	r.dc.Push()
	defer r.dc.Pop()

	r.dc.Transform(n.Transform())

	render := n.RenderSize()
	if render.X > 0 && render.Y > 0 && !n.Margin().IsZero() {
		r.dc.SetColor(r.palette.Margin.Color())
		r.dc.DrawRectangle(0, 0, render.X, render.Y)
		if err := r.dc.Fill(); err != nil {
			return fmt.Errorf("fill margin of %q: %w", n.Name(), err)
		}
	}

	if b := n.Bound(); !b.IsEmpty() {
		r.dc.SetColor(r.palette.Bound.Color())
		r.dc.SetLineWidth(1 / r.scale)
		r.dc.ClearDash()
		r.dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		if err := r.dc.Stroke(); err != nil {
			return fmt.Errorf("stroke bound of %q: %w", n.Name(), err)
		}
	}

	if c, ok := visibleClip(n); ok {
		r.dc.SetColor(r.palette.Clip.Color())
		r.dc.SetDash(4/r.scale, 2/r.scale)
		r.dc.DrawRectangle(c.X, c.Y, c.Width, c.Height)
		if err := r.dc.Stroke(); err != nil {
			return fmt.Errorf("stroke clip of %q: %w", n.Name(), err)
		}
		r.dc.ClearDash()
	}

	for _, child := range n.Children() {
		if err := r.drawNode(child); err != nil {
			return err
		}
	}
	return nil
}

// visibleClip returns the part of the node's clip bound that lies inside
// its render area, or false when the node is not clipped.
func visibleClip(n *layout.Node) (layout.Rect, bool) {
	if !n.ClipEnabled() {
		return layout.Rect{}, false
	}
	c := n.ClipBound().Intersect(layout.RectFromSize(n.RenderSize()))
	return c, !c.IsEmpty()
}

// EncodePNG writes the canvas as PNG.
func (r *Rasterizer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (r *Rasterizer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// Width returns the canvas width in pixels.
func (r *Rasterizer) Width() int {
	return r.dc.Width()
}

// Height returns the canvas height in pixels.
func (r *Rasterizer) Height() int {
	return r.dc.Height()
}

// Close releases the drawing context.
func (r *Rasterizer) Close() error {
	return r.dc.Close()
}
