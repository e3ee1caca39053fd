package layout2d

// MarkDirty flags the viewport as needing an Update. The render scheduler
// calls it when the first repaint request arrives; Resize and SetRoot call
// it directly.
func (v *Viewport) MarkDirty() {
	if v == nil {
		panic("layout2d: nil viewport in MarkDirty")
	}
	v.dirty.Store(true)
}

// NeedsUpdate reports whether the viewport has changed since the last
// Update that left the tree clean.
func (v *Viewport) NeedsUpdate() bool {
	return v.dirty.Load()
}

// checkAndClearDirty returns true if dirty and clears the flag.
func (v *Viewport) checkAndClearDirty() bool {
	return v.dirty.Swap(false)
}
