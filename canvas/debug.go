package canvas

import "time"

// frameStats holds per-frame metrics, only collected in debug mode.
type frameStats struct {
	updateTime time.Duration
	nodes      int
	connectors int
	snaps      int
}

// debugLog logs frame metrics at debug level.
func (c *Canvas[T]) debugLog(stats frameStats) {
	if !c.opts.Debug {
		return
	}
	origin := "-"
	if p, ok := c.state.Drag().Origin(); ok {
		origin = p.String()
	}
	log.Debug("frame",
		"update", stats.updateTime,
		"nodes", stats.nodes,
		"connectors", stats.connectors,
		"snap_backs", stats.snaps,
		"dragging", c.state.IsDragging(),
		"drag_origin", origin,
		"zoom", c.camera.Zoom,
	)
}
