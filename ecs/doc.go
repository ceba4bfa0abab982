// Package ecs provides ECS adapters for sapling's edit events.
//
// The primary adapter is [NewDonburiStore], which bridges edits committed
// on a canvas (updates, inserts, deletes, swaps) into a [Donburi] world as
// typed events. Subscribe to [EditEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	c.SetEditStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
