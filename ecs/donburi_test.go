package ecs

import (
	"testing"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/canvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEdit(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []canvas.EditEvent
	EditEventType.Subscribe(world, func(w donburi.World, e canvas.EditEvent) {
		received = append(received, e)
	})

	store.EmitEdit(canvas.EditEvent{
		Kind:  sapling.EditInsert,
		Path:  sapling.NodePath{0, 1},
		Label: "leaf",
		Slots: 7,
	})
	store.EmitEdit(canvas.EditEvent{
		Kind:   sapling.EditSwap,
		Path:   sapling.NodePath{0},
		Target: sapling.NodePath{1},
	})

	// Events are queued until processed.
	EditEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Kind != sapling.EditInsert || !e0.Path.Equal(sapling.NodePath{0, 1}) {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Label != "leaf" || e0.Slots != 7 {
		t.Errorf("event 0 payload: %q, %d", e0.Label, e0.Slots)
	}

	e1 := received[1]
	if e1.Kind != sapling.EditSwap || !e1.Target.Equal(sapling.NodePath{1}) {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEditStore(t *testing.T) {
	world := donburi.NewWorld()
	var store canvas.EditStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	EditEventType.Subscribe(world, func(w donburi.World, e canvas.EditEvent) {
		count1++
	})
	EditEventType.Subscribe(world, func(w donburi.World, e canvas.EditEvent) {
		count2++
	})

	store.EmitEdit(canvas.EditEvent{Kind: sapling.EditDelete})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
