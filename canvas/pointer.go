package canvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sapling"
)

const (
	defaultDragDeadZone = 4.0 // pixels
	wheelZoomStep       = 1.1
)

// mouseButton identifies the button captured at press time.
type mouseButton uint8

const (
	buttonLeft mouseButton = iota
	buttonRight
	buttonMiddle
)

// pointerState is the mouse state machine. Coordinates are in screen space.
type pointerState struct {
	down     bool
	button   mouseButton
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	onSlot   bool // the press landed on a rendered slot
	dragging bool // moved past the dead zone
}

// processInput feeds one pointer sample per frame: an injected event when
// one is queued, the real mouse otherwise.
func (c *Canvas[T]) processInput() {
	if c.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	var pressed bool
	var button mouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = buttonLeft
		case right:
			button = buttonRight
		default:
			button = buttonMiddle
		}
	}
	c.processPointer(sx, sy, pressed, button)

	if _, wy := ebiten.Wheel(); wy != 0 {
		c.camera.ZoomAt(math.Pow(wheelZoomStep, wy), sx, sy)
	}
}

// processPointer runs the pointer state machine for one sample.
func (c *Canvas[T]) processPointer(sx, sy float64, pressed bool, button mouseButton) {
	ps := &c.pointer
	wx, wy := c.camera.ScreenToWorld(sx, sy)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		ps.dragging = false
		ps.onSlot = false
		if button != buttonLeft {
			return
		}
		c.throttle.Reset()
		if hit, ok := c.frame.HitTest(wx, wy); ok {
			ps.onSlot = true
			c.Dispatch(sapling.MouseDown{Placeholder: hit.Placeholder, Path: hit.Path, X: wx, Y: wy})
		} else {
			c.Dispatch(sapling.Deactivate{})
		}

	case pressed && ps.down:
		if sx == ps.lastX && sy == ps.lastY {
			return
		}
		dsx, dsy := sx-ps.lastX, sy-ps.lastY
		ps.lastX, ps.lastY = sx, sy

		if !ps.onSlot {
			c.camera.Pan(dsx, dsy)
			return
		}
		if !ps.dragging {
			dx, dy := sx-ps.startX, sy-ps.startY
			if math.Sqrt(dx*dx+dy*dy) <= c.deadZone() {
				return
			}
			ps.dragging = true
		}
		if c.throttle.Allow(c.now()) {
			c.Dispatch(sapling.MouseMove{X: wx, Y: wy})
		}

	case !pressed && ps.down:
		if ps.onSlot {
			c.release(sx, sy)
		}
		ps.down = false
		ps.onSlot = false
		ps.dragging = false
		ps.lastX, ps.lastY = sx, sy

	default:
		ps.lastX, ps.lastY = sx, sy
	}
}

// release ends a press that started on a slot. A press that never left the
// dead zone is released where it started so a click never moves anything.
func (c *Canvas[T]) release(sx, sy float64) {
	ps := &c.pointer
	if !ps.dragging {
		sx, sy = ps.startX, ps.startY
	}
	wx, wy := c.camera.ScreenToWorld(sx, sy)

	wasDragging := c.state.IsDragging()
	origin, hasOrigin := c.state.Drag().Origin()
	offset := c.state.Drag().Move(wx, wy).Offset()

	c.Dispatch(sapling.MouseUp{X: wx, Y: wy})

	if e, ok := c.state.LastEdit(); ok && e.Kind == sapling.EditSwap {
		return
	}
	if wasDragging && hasOrigin && c.opts.SnapBackDuration > 0 {
		c.snaps = append(c.snaps, newSnapBack(origin, offset, c.opts.SnapBackDuration))
	}
}

func (c *Canvas[T]) deadZone() float64 {
	if c.opts.DragDeadZone < 0 {
		return 0
	}
	return c.opts.DragDeadZone
}
