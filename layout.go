package sapling

// Position is the grid placement of one slot. Center.X is measured in leaf
// slots and Center.Y in levels; ChildCenters holds the X of each child in
// order, the endpoints of the connectors drawn from this slot.
type Position struct {
	Center       Vec2
	ChildCenters []float64
}

// Layout maps paths to grid positions. Grid units are resolution independent;
// Config.ToPixels scales them by cell size and gaps.
type Layout struct {
	positions map[string]Position
	width     float64
	depth     int
}

// Lookup returns the position of path. Stale paths report false.
func (l Layout) Lookup(path NodePath) (Position, bool) {
	p, ok := l.positions[path.String()]
	return p, ok
}

// Len returns the number of positioned slots.
func (l Layout) Len() int {
	return len(l.positions)
}

// Width returns the number of leaf columns.
func (l Layout) Width() float64 {
	return l.width
}

// Depth returns the number of levels.
func (l Layout) Depth() int {
	return l.depth
}

// ComputeLayout positions every slot of the (placeholder expanded) tree.
//
// The analyze pass runs bottom-up: leaves take consecutive columns 0, 1, 2, …
// in left-to-right order and every node sits at the plain average of its
// children's columns, however wide each child's subtree is. The layout pass
// runs top-down and assigns each slot its depth as the row. Children keep
// their stored order and no collision resolution is done.
func ComputeLayout[T any](t Tree[T]) Layout {
	l := Layout{positions: make(map[string]Position, Count(t))}
	var nextLeaf float64
	centers := make(map[string]float64, Count(t))
	analyze(NodePath{}, t, &nextLeaf, centers)
	l.width = nextLeaf
	place(NodePath{}, t, centers, &l)
	return l
}

func analyze[T any](path NodePath, t Tree[T], nextLeaf *float64, centers map[string]float64) float64 {
	if t.Len() == 0 {
		x := *nextLeaf
		*nextLeaf++
		centers[path.String()] = x
		return x
	}
	var sum float64
	for i, c := range t.n.children {
		sum += analyze(path.Child(i), c, nextLeaf, centers)
	}
	x := sum / float64(len(t.n.children))
	centers[path.String()] = x
	return x
}

func place[T any](path NodePath, t Tree[T], centers map[string]float64, l *Layout) {
	depth := path.Depth()
	if depth+1 > l.depth {
		l.depth = depth + 1
	}
	pos := Position{Center: Vec2{X: centers[path.String()], Y: float64(depth)}}
	if n := t.Len(); n > 0 {
		pos.ChildCenters = make([]float64, n)
		for i := 0; i < n; i++ {
			pos.ChildCenters[i] = centers[path.Child(i).String()]
		}
	}
	l.positions[path.String()] = pos
	for i := 0; i < t.Len(); i++ {
		place(path.Child(i), t.n.children[i], centers, l)
	}
}
