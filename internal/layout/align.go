package layout

// Align specifies how a node is placed inside its allocated rectangle along
// one axis.
type Align uint8

const (
	AlignStretch Align = iota // Fill the allocation (default)
	AlignStart                // Left or top
	AlignCenter               // Centered
	AlignEnd                  // Right or bottom
)

// String returns the lowercase name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "stretch"
	}
}

// ParseAlign parses an alignment name. Left and top are accepted as start,
// right and bottom as end.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "", "stretch":
		return AlignStretch, true
	case "start", "left", "top":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end", "right", "bottom":
		return AlignEnd, true
	}
	return AlignStretch, false
}
