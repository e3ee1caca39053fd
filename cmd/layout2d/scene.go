package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	layout2d "github.com/grindlemire/go-layout2d"
	"github.com/grindlemire/go-layout2d/internal/debug"
	"github.com/grindlemire/go-layout2d/internal/scene"
	"github.com/grindlemire/go-layout2d/internal/snapshot"
)

var (
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow)
)

// sizeFlags overrides the viewport size declared by a scene. Zero keeps
// the scene value.
type sizeFlags struct {
	width  float64
	height float64
}

func (s sizeFlags) resolve(doc *scene.Document) (float64, float64) {
	w, h := doc.Viewport.Width, doc.Viewport.Height
	if s.width != 0 {
		w = s.width
	}
	if s.height != 0 {
		h = s.height
	}
	return w, h
}

// layoutScene loads the scene at path and runs one update over it.
func layoutScene(path string, size sizeFlags, opts ...layout2d.ViewportOption) (*layout2d.Viewport, layout2d.UpdateResult, error) {
	doc, err := scene.Load(path)
	if err != nil {
		return nil, layout2d.UpdateResult{}, err
	}
	root, err := scene.Build(doc)
	if err != nil {
		return nil, layout2d.UpdateResult{}, fmt.Errorf("%s: %w", path, err)
	}

	w, h := size.resolve(doc)
	opts = append([]layout2d.ViewportOption{
		layout2d.WithViewportSize(w, h),
		layout2d.WithLogger(debug.Logger()),
	}, opts...)
	vp, err := layout2d.NewViewport(opts...)
	if err != nil {
		return nil, layout2d.UpdateResult{}, err
	}
	vp.SetRoot(root)

	res, err := vp.Update()
	if err != nil {
		return nil, layout2d.UpdateResult{}, err
	}
	return vp, res, nil
}

func printStatus(w io.Writer, path string, vp *layout2d.Viewport, res layout2d.UpdateResult) {
	size := vp.Size()
	okColor.Fprint(w, "✓ ")
	fmt.Fprintf(w, "%s ", path)
	infoColor.Fprintf(w, "%gx%g", size.X, size.Y)
	fmt.Fprintf(w, " passes=%d measured=%d arranged=%d nodes=%d redraws=%d in %s\n",
		res.Passes, res.Measured, res.Arranged, res.Touched, res.Redraws, res.Duration)
	if vp.NeedsUpdate() {
		warnColor.Fprintln(w, "! layout did not settle")
	}
}

func printTree(w io.Writer, vp *layout2d.Viewport) {
	fmt.Fprintln(w, snapshot.Tree(snapshot.Capture(vp.Root()), color.NoColor))
}
