package sapling

// RenderContext tells a renderer how the slot it draws is being shown.
type RenderContext struct {
	Path         NodePath
	IsActive     bool
	IsNew        bool
	IsDropTarget bool
	IsDragged    bool

	// Position is the top-left pixel of the slot's box and Center its
	// midpoint. Both include the drag offset when IsDragged is set.
	Position Vec2
	Center   Vec2
}

// ItemRenderer produces the host visual for a node.
type ItemRenderer[T, V any] func(item T, ctx RenderContext) V

// PlaceholderRenderer produces the host visual for an Empty slot.
type PlaceholderRenderer[V any] func(ctx RenderContext) V

// Placed is one positioned visual.
type Placed[V any] struct {
	Path        NodePath
	Placeholder bool
	Bounds      Rect
	Context     RenderContext
	Visual      V
}

// Connector is a straight line from a parent's center to a child's center.
type Connector struct {
	Parent, Child NodePath
	From, To      Vec2
}

// Frame is everything a host needs to paint one editor state. Nodes are in
// painter order: flatten order, with the dragged slot moved last so it draws
// on top. Hit testing should walk Nodes backwards.
type Frame[V any] struct {
	Nodes      []Placed[V]
	Connectors []Connector
}

// HitTest returns the topmost placed slot containing the pixel (x, y).
func (f Frame[V]) HitTest(x, y float64) (Placed[V], bool) {
	for i := len(f.Nodes) - 1; i >= 0; i-- {
		if f.Nodes[i].Bounds.Contains(x, y) {
			return f.Nodes[i], true
		}
	}
	return Placed[V]{}, false
}

// Render positions every visible slot of s in pixels and asks the host
// renderers for their visuals. Placeholders are skipped when the config hides
// them. A nil placeholder renderer yields zero visuals for placeholders.
func Render[T, V any](s State[T], item ItemRenderer[T, V], placeholder PlaceholderRenderer[V]) Frame[V] {
	cfg := s.cfg
	layout := s.cache.layout
	active, hasActive := s.ActivePath()
	newPath, hasNew := s.NewPath()
	target, hasTarget := s.DropTarget()
	origin, dragging := s.drag.Origin()
	dragging = dragging && s.isDragging

	frame := Frame[V]{Nodes: make([]Placed[V], 0, len(s.cache.flat))}
	var dragged *Placed[V]

	for _, e := range s.cache.flat {
		if !e.HasItem && !cfg.ShowPlaceholders {
			continue
		}
		pos, ok := layout.Lookup(e.Path)
		if !ok {
			continue
		}
		center := cfg.ToPixels(pos.Center)
		ctx := RenderContext{
			Path:         e.Path,
			IsActive:     hasActive && e.Path.Equal(active),
			IsNew:        hasNew && e.Path.Equal(newPath),
			IsDropTarget: hasTarget && e.Path.Equal(target),
			IsDragged:    dragging && e.Path.Equal(origin),
		}
		if ctx.IsDragged {
			center = center.Add(s.drag.Offset())
		}
		bounds := rectAround(center, cfg.NodeWidth, cfg.NodeHeight)
		ctx.Center = center
		ctx.Position = Vec2{bounds.X, bounds.Y}

		p := Placed[V]{Path: e.Path, Placeholder: !e.HasItem, Bounds: bounds, Context: ctx}
		switch {
		case e.HasItem && item != nil:
			p.Visual = item(e.Item, ctx)
		case !e.HasItem && placeholder != nil:
			p.Visual = placeholder(ctx)
		}

		if ctx.IsDragged {
			dp := p
			dragged = &dp
		} else {
			frame.Nodes = append(frame.Nodes, p)
		}

		if e.HasItem {
			frame.Connectors = appendConnectors(frame.Connectors, s, e.Path, pos)
		}
	}
	if dragged != nil {
		frame.Nodes = append(frame.Nodes, *dragged)
	}
	return frame
}

func appendConnectors[T any](out []Connector, s State[T], path NodePath, pos Position) []Connector {
	cfg := s.cfg
	from := cfg.ToPixels(pos.Center)
	childY := pos.Center.Y + 1
	for i, x := range pos.ChildCenters {
		child := path.Child(i)
		if !cfg.ShowPlaceholders {
			if sub, ok := Find(child, s.cache.expanded); !ok || sub.IsEmpty() {
				continue
			}
		}
		out = append(out, Connector{
			Parent: path,
			Child:  child,
			From:   from,
			To:     cfg.ToPixels(Vec2{X: x, Y: childY}),
		})
	}
	return out
}
