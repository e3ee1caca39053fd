// Package scene reads declarative layout trees from TOML or YAML documents
// and builds them into layout nodes.
//
// A document names a viewport size and a root node. Each node may declare
// its size, constraints, margin, alignment, content policy and children:
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[root]
//	name = "hud"
//	policy = "stack"
//	spacing = 4
//
//	[[root.children]]
//	width = 200
//	height = "auto"
//	margin = [10]
//	halign = "center"
//
// Sizes accept a number or the strings "auto" and "inf".
package scene
