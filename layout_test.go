package sapling

import "testing"

func centerOf(t *testing.T, l Layout, p NodePath) Vec2 {
	t.Helper()
	pos, ok := l.Lookup(p)
	if !ok {
		t.Fatalf("no position for %v", p)
	}
	return pos.Center
}

func TestLayoutCentersParentOverTwoLeaves(t *testing.T) {
	l := ComputeLayout(NewNode("p", leaf("a"), leaf("b")))
	a := centerOf(t, l, NodePath{0})
	b := centerOf(t, l, NodePath{1})
	p := centerOf(t, l, Root)
	if p.X != (a.X+b.X)/2 {
		t.Errorf("parent x = %v, want mean of %v and %v", p.X, a.X, b.X)
	}
	if a.X != 0 || b.X != 1 {
		t.Errorf("leaves at %v, %v; want 0, 1", a.X, b.X)
	}
}

func TestLayoutUnweightedAverage(t *testing.T) {
	// r[a[x, y], z]: a sits between x and y, r between a and z regardless of
	// how many leaves each side holds.
	l := ComputeLayout(NewNode("r", NewNode("a", leaf("x"), leaf("y")), leaf("z")))
	tests := []struct {
		path NodePath
		want Vec2
	}{
		{NodePath{0, 0}, Vec2{0, 2}},
		{NodePath{0, 1}, Vec2{1, 2}},
		{NodePath{0}, Vec2{0.5, 1}},
		{NodePath{1}, Vec2{2, 1}},
		{Root, Vec2{1.25, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			if got := centerOf(t, l, tt.path); got != tt.want {
				t.Errorf("center = %v, want %v", got, tt.want)
			}
		})
	}
	if l.Width() != 3 || l.Depth() != 3 {
		t.Errorf("extent = %v x %d, want 3 x 3", l.Width(), l.Depth())
	}
}

func TestLayoutChildCenters(t *testing.T) {
	l := ComputeLayout(NewNode("r", NewNode("a", leaf("x"), leaf("y")), leaf("z")))
	pos, _ := l.Lookup(Root)
	if len(pos.ChildCenters) != 2 || pos.ChildCenters[0] != 0.5 || pos.ChildCenters[1] != 2 {
		t.Errorf("ChildCenters = %v, want [0.5 2]", pos.ChildCenters)
	}
	leafPos, _ := l.Lookup(NodePath{1})
	if leafPos.ChildCenters != nil {
		t.Errorf("leaf ChildCenters = %v, want nil", leafPos.ChildCenters)
	}
}

func TestLayoutEmptyRoot(t *testing.T) {
	l := ComputeLayout(AddTrailingEmpties(Empty[string]()))
	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
	if c := centerOf(t, l, Root); c != (Vec2{}) {
		t.Errorf("empty root at %v, want origin", c)
	}
}

func TestLayoutCoversEveryFlattenedSlot(t *testing.T) {
	expanded := AddTrailingEmpties(sample())
	l := ComputeLayout(expanded)
	for _, e := range Flatten(expanded) {
		pos, ok := l.Lookup(e.Path)
		if !ok {
			t.Errorf("missing %v", e.Path)
			continue
		}
		if pos.Center.Y != float64(e.Path.Depth()) {
			t.Errorf("%v at row %v, want depth %d", e.Path, pos.Center.Y, e.Path.Depth())
		}
	}
	if _, ok := l.Lookup(NodePath{9}); ok {
		t.Error("stale path should not resolve")
	}
}

func TestLayoutKeepsStoredOrder(t *testing.T) {
	l := ComputeLayout(NewNode("r", leaf("a"), leaf("b"), leaf("c")))
	prev := -1.0
	for i := 0; i < 3; i++ {
		x := centerOf(t, l, NodePath{i}).X
		if x <= prev {
			t.Errorf("child %d at %v is not right of %v", i, x, prev)
		}
		prev = x
	}
}
