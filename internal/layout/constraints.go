package layout

import "math"

// ResolveConstraints computes the effective minimum and maximum for one axis
// from a declared size and explicit min/max bounds.
//
// A finite declared size acts as both ceiling and floor, so a node with a
// fixed width behaves as if min == max == width unless the explicit bounds
// are tighter. An infinite declared size leaves the ceiling to max and drops
// the floor to min. Inverted bounds (min > max) are tolerated: min wins.
func ResolveConstraints(declared, minimum, maximum float64) (effMin, effMax float64) {
	effMax = math.Max(math.Min(declared, maximum), minimum)

	baseline := declared
	if math.IsInf(declared, 0) {
		baseline = 0
	}
	effMin = math.Max(math.Min(effMax, baseline), minimum)
	return effMin, effMax
}

// MinMax returns the effective minimum and maximum sizes of the node.
// It is recomputed on every call; nothing is cached between passes.
func (n *Node) MinMax() (minSize, maxSize Size) {
	minSize.X, maxSize.X = ResolveConstraints(n.width, n.minWidth, n.maxWidth)
	minSize.Y, maxSize.Y = ResolveConstraints(n.height, n.minHeight, n.maxHeight)
	return minSize, maxSize
}
