// Package layout implements a retained-mode 2D layout engine for elements
// drawn as overlays inside a 3D scene.
//
// Layout is a two-phase protocol. [Node.Measure] asks every node how much
// space it wants given an available budget; [Node.Arrange] then hands each
// node a final rectangle and resolves alignment, clipping and the node's
// render bound. Property setters mark the node and its ancestors dirty, so
// the next top-down pass only recomputes the affected path.
//
// Types are re-exported through the root layout2d package for public
// consumption.
package layout
