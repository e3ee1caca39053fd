// Package layout2d lays out 2D overlay elements drawn inside a 3D scene.
//
// Elements form a retained tree of nodes. Each update runs two passes over
// the nodes that changed: Measure walks down the tree asking every node how
// large it wants to be within an available budget, then Arrange walks down
// again assigning every node a final rectangle, alignment offset and clip.
// Changing a node's declared size, margin or alignment only marks the node
// and its ancestors dirty; the work happens at the next update.
//
// A Viewport owns the root node and the render pipeline nodes write their
// geometry into:
//
//	vp, err := layout2d.NewViewport(layout2d.WithViewportSize(800, 600))
//	if err != nil {
//		return err
//	}
//	panel := layout2d.NewNode(
//		layout2d.WithSize(200, 100),
//		layout2d.WithMargin(layout2d.ThicknessAll(10)),
//		layout2d.WithAlign(layout2d.AlignCenter, layout2d.AlignCenter),
//	)
//	vp.SetRoot(panel)
//	res, err := vp.Update()
//
// After Update, Bound, ClipBound and Transform on each node describe where
// the renderer should draw it.
package layout2d
