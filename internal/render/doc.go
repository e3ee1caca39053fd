// Package render is the render-side collaborator of the layout engine.
//
// [Core] stores the bound, clip bound and translation each node writes
// during arrange, and forwards redraw requests to a [Scheduler] that
// coalesces them until the host drains them. [Rasterizer] draws an
// arranged tree's bounds and clip rectangles with gogpu/gg for debugging.
package render
