package canvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/sapling"
)

const (
	minZoom = 0.25
	maxZoom = 4.0
)

var easeScroll = ease.InOutQuad

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps world (layout pixel) coordinates to the screen. X and Y are the
// world point shown at the screen's top-left corner.
type Camera struct {
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64

	scroll *scrollAnim
}

func newCamera() *Camera {
	return &Camera{Zoom: 1}
}

// ScreenToWorld converts a screen point to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx/c.Zoom + c.X, sy/c.Zoom + c.Y
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx - c.X) * c.Zoom, (wy - c.Y) * c.Zoom
}

// Pan moves the view by a screen-space delta, as when dragging the
// background.
func (c *Camera) Pan(dsx, dsy float64) {
	c.X -= dsx / c.Zoom
	c.Y -= dsy / c.Zoom
	c.scroll = nil
}

// ZoomAt multiplies the zoom by factor, keeping the world point under the
// screen point (sx, sy) fixed. Zoom is clamped to [0.25, 4].
func (c *Camera) ZoomAt(factor, sx, sy float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	z := c.Zoom * factor
	if z < minZoom {
		z = minZoom
	}
	if z > maxZoom {
		z = maxZoom
	}
	c.Zoom = z
	c.X = wx - sx/z
	c.Y = wy - sy/z
}

// ScrollTo animates the camera so world point (wx, wy) ends up at the
// center of a screen of the given size.
func (c *Camera) ScrollTo(wx, wy, screenW, screenH float64, duration float32, easeFn ease.TweenFunc) {
	tx := wx - screenW/(2*c.Zoom)
	ty := wy - screenH/(2*c.Zoom)
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(tx), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(ty), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// update advances the scroll animation by dt seconds.
func (c *Camera) update(dt float32) {
	if c.scroll == nil {
		return
	}
	s := c.scroll
	if !s.doneX {
		x, done := s.tweenX.Update(dt)
		c.X = float64(x)
		s.doneX = done
	}
	if !s.doneY {
		y, done := s.tweenY.Update(dt)
		c.Y = float64(y)
		s.doneY = done
	}
	if s.doneX && s.doneY {
		c.scroll = nil
	}
}

// screenRect converts a world rectangle to screen space.
func (c *Camera) screenRect(r sapling.Rect) sapling.Rect {
	x, y := c.WorldToScreen(r.X, r.Y)
	return sapling.Rect{X: x, Y: y, Width: r.Width * c.Zoom, Height: r.Height * c.Zoom}
}
