// Package ecs provides ECS adapters for sapling.
package ecs

import (
	"github.com/phanxgames/sapling/canvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditEventType is the Donburi event type for committed tree edits.
var EditEventType = events.NewEventType[canvas.EditEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EditStore backed by a Donburi world.
// Edits are published to EditEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) canvas.EditStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEdit(event canvas.EditEvent) {
	EditEventType.Publish(s.world, event)
}
