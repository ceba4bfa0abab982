package canvas

// syntheticPointerEvent is one injected pointer sample in screen
// coordinates, the same space a screenshot shows.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           mouseButton
}

// InjectPress queues a left-button press at screen (x, y). Each queued event
// is consumed by one frame, in place of the real mouse.
func (c *Canvas[T]) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  buttonLeft,
	})
}

// InjectMove queues pointer motion with the button held. Use it between
// InjectPress and InjectRelease.
func (c *Canvas[T]) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  buttonLeft,
	})
}

// InjectRelease queues a button release at screen (x, y).
func (c *Canvas[T]) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  buttonLeft,
	})
}

// InjectClick queues a press and a release at the same point. Consumes two
// frames.
func (c *Canvas[T]) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). Frames below 2 are raised to 2.
func (c *Canvas[T]) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event and runs it through the
// pointer state machine. It reports whether an event was consumed.
func (c *Canvas[T]) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.processPointer(evt.screenX, evt.screenY, evt.pressed, evt.button)
	return true
}
