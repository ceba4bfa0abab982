package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/sapling"
)

func TestCameraRoundTrip(t *testing.T) {
	cam := newCamera()
	cam.X, cam.Y, cam.Zoom = 40, -20, 2

	sx, sy := cam.WorldToScreen(100, 50)
	assert.InDelta(t, 120, sx, 1e-9)
	assert.InDelta(t, 140, sy, 1e-9)

	wx, wy := cam.ScreenToWorld(sx, sy)
	assert.InDelta(t, 100, wx, 1e-9)
	assert.InDelta(t, 50, wy, 1e-9)
}

func TestCameraZoomAtKeepsPointFixed(t *testing.T) {
	cam := newCamera()
	wx0, wy0 := cam.ScreenToWorld(200, 150)
	cam.ZoomAt(1.5, 200, 150)

	wx1, wy1 := cam.ScreenToWorld(200, 150)
	assert.InDelta(t, wx0, wx1, 1e-9)
	assert.InDelta(t, wy0, wy1, 1e-9)
	assert.InDelta(t, 1.5, cam.Zoom, 1e-9)
}

func TestCameraZoomClamps(t *testing.T) {
	cam := newCamera()
	cam.ZoomAt(100, 0, 0)
	assert.Equal(t, maxZoom, cam.Zoom)
	cam.ZoomAt(0.0001, 0, 0)
	assert.Equal(t, minZoom, cam.Zoom)
}

func TestCameraScrollToCompletes(t *testing.T) {
	cam := newCamera()
	cam.ScrollTo(500, 300, 200, 100, 0.5, ease.Linear)
	assert.True(t, cam.Scrolling())

	for i := 0; i < 60 && cam.Scrolling(); i++ {
		cam.update(1.0 / 60)
	}
	assert.False(t, cam.Scrolling())
	assert.InDelta(t, 400, cam.X, 1e-3)
	assert.InDelta(t, 250, cam.Y, 1e-3)
}

func TestCameraPanCancelsScroll(t *testing.T) {
	cam := newCamera()
	cam.ScrollTo(500, 300, 200, 100, 1, ease.Linear)
	cam.Pan(10, 0)
	assert.False(t, cam.Scrolling())
}

func TestCameraScreenRect(t *testing.T) {
	cam := newCamera()
	cam.X, cam.Zoom = 10, 2
	got := cam.screenRect(sapling.Rect{X: 20, Y: 5, Width: 30, Height: 10})
	assert.Equal(t, sapling.Rect{X: 20, Y: 10, Width: 60, Height: 20}, got)
}

func TestSnapBackEasesToZero(t *testing.T) {
	s := newSnapBack(sapling.NodePath{0, 1}, sapling.Vec2{X: 100, Y: -40}, 0.2)
	assert.Equal(t, sapling.Vec2{X: 100, Y: -40}, s.current())

	s.update(0.1)
	mid := s.current()
	assert.Greater(t, mid.X, 0.0)
	assert.Less(t, mid.X, 100.0)
	assert.False(t, s.done)

	s.update(0.2)
	assert.True(t, s.done)
	assert.Equal(t, sapling.Vec2{}, s.current())
}

func TestUpdateSnapBacksDropsFinished(t *testing.T) {
	list := []*snapBack{
		newSnapBack(sapling.NodePath{0}, sapling.Vec2{X: 10}, 0.1),
		newSnapBack(sapling.NodePath{1}, sapling.Vec2{X: 10}, 1),
	}
	list = updateSnapBacks(list, 0.5)
	assert.Len(t, list, 1)

	_, ok := snapOffset(list, sapling.NodePath{0})
	assert.False(t, ok)
	_, ok = snapOffset(list, sapling.NodePath{1})
	assert.True(t, ok)
}

func TestColorLerpAndRGBA(t *testing.T) {
	black := Color{0, 0, 0, 1}
	mid := black.Lerp(ColorWhite, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.Equal(t, black, black.Lerp(ColorWhite, -1))

	half := Color{1, 1, 1, 0.5}.toRGBA()
	assert.Equal(t, uint8(127), half.R, "premultiplied")
	assert.Equal(t, uint8(127), half.A)
}
