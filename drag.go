package sapling

// DragState tracks an in-progress pointer drag independently of the tree.
// The zero value is Idle. Transitions return new values.
type DragState struct {
	active bool
	origin NodePath
	start  Vec2
	offset Vec2
}

// StartDrag begins a drag of the slot at path. The pointer-down point (x, y)
// becomes the reference for every later offset.
func StartDrag(path NodePath, x, y float64) DragState {
	return DragState{active: true, origin: path.Clone(), start: Vec2{x, y}}
}

// Active reports whether a drag is in progress.
func (d DragState) Active() bool {
	return d.active
}

// Origin returns the path being dragged.
func (d DragState) Origin() (NodePath, bool) {
	if !d.active {
		return nil, false
	}
	return d.origin, true
}

// Offset is the cumulative pointer displacement since StartDrag.
func (d DragState) Offset() Vec2 {
	return d.offset
}

// Move sets the offset to the displacement of (x, y) from the drag's start
// point. Idle states are returned unchanged.
func (d DragState) Move(x, y float64) DragState {
	if !d.active {
		return d
	}
	d.offset = Vec2{x - d.start.X, y - d.start.Y}
	return d
}

// Cancel abandons the drag without resolving a target.
func (d DragState) Cancel() DragState {
	return DragState{}
}

// DropTarget returns the first slot, in flatten order, whose static pixel
// center lies within one node cell of the dragged slot's current center.
// The origin and every ancestor or descendant of it are never candidates.
// The first match wins even when a later one is closer. Empty slots are only
// candidates while placeholders are shown.
func DropTarget[T any](d DragState, layout Layout, flat []Entry[T], cfg Config) (NodePath, bool) {
	if !d.active {
		return nil, false
	}
	pos, ok := layout.Lookup(d.origin)
	if !ok {
		return nil, false
	}
	dragged := cfg.ToPixels(pos.Center).Add(d.offset)
	for _, e := range flat {
		if !e.HasItem && !cfg.ShowPlaceholders {
			continue
		}
		if e.Path.Related(d.origin) {
			continue
		}
		cand, ok := layout.Lookup(e.Path)
		if !ok {
			continue
		}
		c := cfg.ToPixels(cand.Center)
		if abs(c.X-dragged.X) < cfg.NodeWidth && abs(c.Y-dragged.Y) < cfg.NodeHeight {
			return e.Path, true
		}
	}
	return nil, false
}

// EndDrag finishes the drag. It returns the resolved drop target, if any,
// and the Idle state. A drag with no target is simply abandoned and the
// dragged slot snaps back.
func EndDrag[T any](d DragState, layout Layout, flat []Entry[T], cfg Config) (NodePath, bool, DragState) {
	target, ok := DropTarget(d, layout, flat, cfg)
	return target, ok, DragState{}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
