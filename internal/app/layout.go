package app

// Layout computes the dimensions for each panel.
type Layout struct {
	TreeWidth    int
	EditorWidth  int
	EditorHeight int
	TabHeight    int
	SearchHeight int
	Height       int
	StatusHeight int
}

// ComputeLayout calculates panel dimensions based on total width/height,
// tree visibility, and the current search bar height.
func ComputeLayout(totalWidth, totalHeight int, showTree bool, treeWidth, searchHeight int) Layout {
	// During live resizes some terminals momentarily report 0 (or even
	// negative) dimensions; clamp to avoid propagating invalid sizes into
	// panels.
	if totalWidth < 1 {
		totalWidth = 1
	}
	if totalHeight < 3 { // tab row + content row + status row
		totalHeight = 3
	}

	l := Layout{
		StatusHeight: 1,
		TabHeight:    1,
		SearchHeight: searchHeight,
		Height:       totalHeight - 1, // reserve 1 row for status bar
	}

	remaining := totalWidth

	if showTree {
		l.TreeWidth = treeWidth
		if l.TreeWidth > remaining/3 {
			l.TreeWidth = remaining / 3
		}
		remaining -= l.TreeWidth - 1 // -1 for border overlap
	}

	l.EditorWidth = remaining
	// During extreme resizes the terminal can get very narrow; never force a
	// minimum width larger than the available space.
	if l.EditorWidth < 1 {
		l.EditorWidth = 1
	}

	l.EditorHeight = l.Height - l.TabHeight - l.SearchHeight
	if l.EditorHeight < 1 {
		l.EditorHeight = 1
	}

	return l
}
