package sapling

// treeCache is the derived data for one committed tree: the tree as laid
// out, its flattened slots, and their layout. Trailing placeholders are only
// added when they are shown, so hidden slots take no column. It is rebuilt
// in full whenever the tree changes and never patched.
type treeCache[T any] struct {
	expanded Tree[T]
	flat     []Entry[T]
	layout   Layout
}

func buildCache[T any](t Tree[T], cfg Config) treeCache[T] {
	expanded := t
	if cfg.ShowPlaceholders {
		expanded = AddTrailingEmpties(t)
	}
	return treeCache[T]{
		expanded: expanded,
		flat:     Flatten(expanded),
		layout:   ComputeLayout(expanded),
	}
}
