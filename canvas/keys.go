package canvas

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sapling"
)

// editKey is a key with an editing meaning.
type editKey uint8

const (
	keyNone editKey = iota
	keyEnter
	keyEscape
	keyDelete
	keyBackspace
	keyHome // scroll to the selection
)

// keyEvent is one keyboard sample: typed runes or a single edit key.
type keyEvent struct {
	runes []rune
	key   editKey
}

var keyNames = map[string]editKey{
	"enter":     keyEnter,
	"escape":    keyEscape,
	"delete":    keyDelete,
	"backspace": keyBackspace,
	"home":      keyHome,
}

// parseKey maps a script key name to an edit key.
func parseKey(name string) (editKey, bool) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// InjectText queues typed text, consumed on the next frame.
func (c *Canvas[T]) InjectText(s string) {
	c.keyQueue = append(c.keyQueue, keyEvent{runes: []rune(s)})
}

// InjectKey queues a named key press ("enter", "escape", "delete",
// "backspace", "home"). Unknown names are ignored.
func (c *Canvas[T]) InjectKey(name string) {
	k, ok := parseKey(name)
	if !ok {
		log.Warn("unknown key ignored", "key", name)
		return
	}
	c.keyQueue = append(c.keyQueue, keyEvent{key: k})
}

// processKeys handles one queued key event, or the real keyboard when the
// queue is empty.
func (c *Canvas[T]) processKeys() {
	if len(c.keyQueue) > 0 {
		ev := c.keyQueue[0]
		copy(c.keyQueue, c.keyQueue[1:])
		c.keyQueue = c.keyQueue[:len(c.keyQueue)-1]
		c.typeRunes(ev.runes)
		c.pressKey(ev.key)
		return
	}

	c.typeRunes(ebiten.AppendInputChars(nil))
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		c.pressKey(keyEnter)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		c.pressKey(keyEscape)
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		c.pressKey(keyDelete)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		c.pressKey(keyHome)
	case repeating(ebiten.KeyBackspace):
		c.pressKey(keyBackspace)
	}
}

// repeating reports a key press with key-repeat after a short hold.
func repeating(key ebiten.Key) bool {
	const delay, interval = 30, 3
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

// editing reports whether typed text has somewhere to go.
func (c *Canvas[T]) editing() bool {
	_, active := c.state.ActivePath()
	_, pending := c.state.NewPath()
	return active || pending
}

func (c *Canvas[T]) typeRunes(rs []rune) {
	if len(rs) == 0 || !c.editing() {
		return
	}
	c.buffer = append(c.buffer, rs...)
	c.refresh()
}

func (c *Canvas[T]) pressKey(k editKey) {
	switch k {
	case keyEnter:
		c.commitBuffer()
	case keyEscape:
		if d := c.state.Drag(); d.Active() {
			origin, ok := d.Origin()
			moved := c.state.IsDragging()
			c.Dispatch(sapling.CancelDrag{})
			if ok && moved && c.opts.SnapBackDuration > 0 {
				c.snaps = append(c.snaps, newSnapBack(origin, d.Offset(), c.opts.SnapBackDuration))
			}
			return
		}
		c.Dispatch(sapling.Deactivate{})
	case keyDelete:
		c.Dispatch(sapling.DeleteActive{})
	case keyBackspace:
		if len(c.buffer) == 0 {
			return
		}
		c.buffer = c.buffer[:len(c.buffer)-1]
		c.refresh()
	case keyHome:
		c.ScrollToActive()
	}
}

// commitBuffer parses the typed label and sends it as the active item or
// the pending new item. Labels that fail to parse are dropped.
func (c *Canvas[T]) commitBuffer() {
	if !c.editing() {
		return
	}
	item, err := c.codec.Parse(string(c.buffer))
	if err != nil {
		log.Warn("label rejected", "text", string(c.buffer), "error", err)
		return
	}
	if _, ok := c.state.NewPath(); ok {
		c.Dispatch(sapling.SetNewItem[T]{Item: item})
		return
	}
	c.Dispatch(sapling.SetActiveItem[T]{Item: item})
}
