package layout

// Option configures a Node.
type Option func(*Node)

// WithName sets the node's name, used in logs and snapshots.
func WithName(name string) Option {
	return func(n *Node) {
		n.name = name
	}
}

// --- Dimension Options ---

// WithWidth sets the declared width. Use Auto() to size to content.
func WithWidth(w float64) Option {
	return func(n *Node) {
		n.width = w
	}
}

// WithHeight sets the declared height. Use Auto() to size to content.
func WithHeight(h float64) Option {
	return func(n *Node) {
		n.height = h
	}
}

// WithSize sets both declared width and height.
func WithSize(w, h float64) Option {
	return func(n *Node) {
		n.width = w
		n.height = h
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(w float64) Option {
	return func(n *Node) {
		n.minWidth = w
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(h float64) Option {
	return func(n *Node) {
		n.minHeight = h
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(w float64) Option {
	return func(n *Node) {
		n.maxWidth = w
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(h float64) Option {
	return func(n *Node) {
		n.maxHeight = h
	}
}

// WithMargin sets the margin.
func WithMargin(m Thickness) Option {
	return func(n *Node) {
		n.margin = m
	}
}

// --- Alignment Options ---

// WithAlign sets horizontal and vertical alignment.
func WithAlign(h, v Align) Option {
	return func(n *Node) {
		n.hAlign = h
		n.vAlign = v
	}
}

// WithHorizontalAlign sets the horizontal alignment.
func WithHorizontalAlign(a Align) Option {
	return func(n *Node) {
		n.hAlign = a
	}
}

// WithVerticalAlign sets the vertical alignment.
func WithVerticalAlign(a Align) Option {
	return func(n *Node) {
		n.vAlign = a
	}
}

// WithClipToBound always writes the clip bound on arrange, even when the
// content fits.
func WithClipToBound() Option {
	return func(n *Node) {
		n.clipToBound = true
	}
}

// --- Content Options ---

// WithPolicy sets the content policy. Defaults to Overlay.
func WithPolicy(p Policy) Option {
	return func(n *Node) {
		if p != nil {
			n.policy = p
		}
	}
}

// WithRenderCore injects the render core geometry is written to. Attaching
// the node to a host does not replace an injected core.
func WithRenderCore(c RenderCore) Option {
	return func(n *Node) {
		if c != nil {
			n.core = c
			n.coreInjected = true
		}
	}
}

// WithChildren appends children.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		for _, child := range children {
			child.parent = n
			n.children = append(n.children, child)
		}
	}
}
