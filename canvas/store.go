package canvas

import "github.com/phanxgames/sapling"

// EditEvent describes one committed structural edit. Label is the formatted
// item now at Path, empty when the slot is Empty after the edit.
type EditEvent struct {
	Kind   sapling.EditKind
	Path   sapling.NodePath
	Target sapling.NodePath
	Label  string
	// Slots is the number of slots, placeholders included, after the edit.
	Slots int
}

// EditStore receives committed edits, for bridging into an ECS or an
// application model. See package ecs for a Donburi implementation.
type EditStore interface {
	EmitEdit(EditEvent)
}

// SetEditStore sets the store that receives committed edits. Pass nil to
// stop publishing.
func (c *Canvas[T]) SetEditStore(store EditStore) {
	c.store = store
}

// emitEdit publishes the last committed edit, if any.
func (c *Canvas[T]) emitEdit() {
	e, ok := c.state.LastEdit()
	if !ok {
		return
	}
	ev := EditEvent{
		Kind:   e.Kind,
		Path:   e.Path.Clone(),
		Target: e.Target.Clone(),
		Slots:  len(c.state.Flat()),
	}
	if sub, found := sapling.Find(e.Path, c.state.Tree()); found {
		if item, has := sub.Item(); has {
			ev.Label = c.codec.Format(item)
		}
	}
	log.Debug("edit committed", "kind", e.Kind.String(), "path", e.Path.String(), "label", ev.Label)
	if c.store != nil {
		c.store.EmitEdit(ev)
	}
}
