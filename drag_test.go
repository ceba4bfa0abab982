package sapling

import "testing"

func testConfig() Config {
	return Config{
		NodeWidth:        100,
		NodeHeight:       40,
		HorizontalGap:    20,
		VerticalGap:      40,
		DragEnabled:      true,
		ShowPlaceholders: true,
		AllowDeactivate:  true,
	}
}

// pixelCenter returns the static pixel center of p in the expanded tree.
func pixelCenter[T any](t *testing.T, s State[T], p NodePath) Vec2 {
	t.Helper()
	pos, ok := s.Layout().Lookup(p)
	if !ok {
		t.Fatalf("no layout for %v", p)
	}
	return s.Config().ToPixels(pos.Center)
}

func TestDragStartMoveOffsets(t *testing.T) {
	d := StartDrag(NodePath{1}, 10, 20)
	if !d.Active() || d.Offset() != (Vec2{}) {
		t.Fatalf("fresh drag = %+v", d)
	}
	d = d.Move(15, 25)
	d = d.Move(40, 10)
	if d.Offset() != (Vec2{30, -10}) {
		t.Errorf("offset = %v, want cumulative (30, -10) from the start point", d.Offset())
	}
	if o, ok := d.Origin(); !ok || !o.Equal(NodePath{1}) {
		t.Errorf("origin = %v, %v", o, ok)
	}
}

func TestDragMoveWhileIdleIsNoop(t *testing.T) {
	var d DragState
	if d = d.Move(5, 5); d.Active() || d.Offset() != (Vec2{}) {
		t.Errorf("idle move changed state: %+v", d)
	}
	if _, ok := d.Origin(); ok {
		t.Error("idle drag has no origin")
	}
}

func TestDragStartClonesPath(t *testing.T) {
	p := NodePath{0, 1}
	d := StartDrag(p, 0, 0)
	p[0] = 9
	if o, _ := d.Origin(); !o.Equal(NodePath{0, 1}) {
		t.Errorf("origin aliased caller path: %v", o)
	}
}

func TestDropTargetFindsSibling(t *testing.T) {
	s := Init(NewNode("A", leaf("B"), leaf("C")), testConfig())
	from := pixelCenter(t, s, NodePath{0})
	to := pixelCenter(t, s, NodePath{1})

	d := StartDrag(NodePath{0}, from.X, from.Y).Move(to.X, to.Y)
	got, ok := DropTarget(d, s.Layout(), s.Flat(), s.Config())
	if !ok || !got.Equal(NodePath{1}) {
		t.Errorf("DropTarget = %v, %v; want [1]", got, ok)
	}
}

func TestDropTargetNoneWhenFar(t *testing.T) {
	s := Init(NewNode("A", leaf("B"), leaf("C")), testConfig())
	d := StartDrag(NodePath{0}, 0, 0).Move(5000, 5000)
	if got, ok := DropTarget(d, s.Layout(), s.Flat(), s.Config()); ok {
		t.Errorf("DropTarget = %v, want none", got)
	}
}

func TestDropTargetNoneWithoutMoving(t *testing.T) {
	s := Init(NewNode("A", leaf("B"), leaf("C")), testConfig())
	d := StartDrag(NodePath{0}, 0, 0)
	if got, ok := DropTarget(d, s.Layout(), s.Flat(), s.Config()); ok {
		t.Errorf("stationary drag resolved %v", got)
	}
}

func TestDropTargetExcludesAncestry(t *testing.T) {
	// r[a[b]]: a is [0], b is [0,0].
	s := Init(NewNode("r", NewNode("a", leaf("b"))), testConfig())
	a := pixelCenter(t, s, NodePath{0})
	b := pixelCenter(t, s, NodePath{0, 0})

	down := StartDrag(NodePath{0}, a.X, a.Y).Move(b.X, b.Y)
	if got, ok := DropTarget(down, s.Layout(), s.Flat(), s.Config()); ok && got.Equal(NodePath{0, 0}) {
		t.Errorf("dragging [0] resolved its descendant %v", got)
	}

	up := StartDrag(NodePath{0, 0}, b.X, b.Y).Move(a.X, a.Y)
	if got, ok := DropTarget(up, s.Layout(), s.Flat(), s.Config()); ok && got.Equal(NodePath{0}) {
		t.Errorf("dragging [0,0] resolved its ancestor %v", got)
	}
}

func TestDropTargetFirstMatchWins(t *testing.T) {
	// Zero gaps put neighbouring leaves one node width apart; aiming between
	// [0] and [1] but closer to [1] must still pick [0], the first in
	// flatten order.
	cfg := testConfig()
	cfg.HorizontalGap = 0
	cfg.ShowPlaceholders = false
	s := Init(NewNode("R", leaf("a"), leaf("b"), leaf("c")), cfg)

	a := pixelCenter(t, s, NodePath{0})
	b := pixelCenter(t, s, NodePath{1})
	c := pixelCenter(t, s, NodePath{2})
	aim := Vec2{X: a.X + 0.6*(b.X-a.X), Y: a.Y}

	d := StartDrag(NodePath{2}, c.X, c.Y).Move(aim.X, aim.Y)
	got, ok := DropTarget(d, s.Layout(), s.Flat(), s.Config())
	if !ok || !got.Equal(NodePath{0}) {
		t.Errorf("DropTarget = %v, %v; want first match [0]", got, ok)
	}
}

func TestDropTargetSkipsHiddenPlaceholders(t *testing.T) {
	cfg := testConfig()
	s := Init(NewNode("R", leaf("a"), leaf("b")), cfg)
	slot := pixelCenter(t, s, NodePath{2})
	b := pixelCenter(t, s, NodePath{1})
	d := StartDrag(NodePath{1}, b.X, b.Y).Move(slot.X, slot.Y)

	if got, ok := DropTarget(d, s.Layout(), s.Flat(), cfg); !ok || !got.Equal(NodePath{2}) {
		t.Fatalf("visible placeholder: DropTarget = %v, %v; want [2]", got, ok)
	}
	cfg.ShowPlaceholders = false
	if got, ok := DropTarget(d, s.Layout(), s.Flat(), cfg); ok {
		t.Errorf("hidden placeholder resolved %v", got)
	}
}

func TestEndDragReturnsIdle(t *testing.T) {
	s := Init(NewNode("A", leaf("B"), leaf("C")), testConfig())
	from := pixelCenter(t, s, NodePath{0})
	to := pixelCenter(t, s, NodePath{1})
	d := StartDrag(NodePath{0}, from.X, from.Y).Move(to.X, to.Y)

	target, ok, idle := EndDrag(d, s.Layout(), s.Flat(), s.Config())
	if !ok || !target.Equal(NodePath{1}) {
		t.Errorf("EndDrag target = %v, %v", target, ok)
	}
	if idle.Active() || idle.Offset() != (Vec2{}) {
		t.Errorf("EndDrag should return Idle, got %+v", idle)
	}
	if c := d.Cancel(); c.Active() {
		t.Error("Cancel should return Idle")
	}
}
