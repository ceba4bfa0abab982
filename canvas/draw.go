package canvas

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/sapling"
)

const (
	borderWidth    = 2.0
	connectorWidth = 2.0
	labelPadding   = 6.0
)

// whitePixel is scaled and tinted for every rectangle and line.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.toRGBA())
}

// drawFrame paints connectors, then boxes in painter order, then overlays.
func (c *Canvas[T]) drawFrame(screen *ebiten.Image) {
	screen.Fill(c.opts.ClearColor.toRGBA())

	for _, cn := range c.frame.Connectors {
		from, to := cn.From, cn.To
		if d, ok := snapOffset(c.snaps, cn.Parent); ok {
			from = from.Add(d)
		}
		if d, ok := snapOffset(c.snaps, cn.Child); ok {
			to = to.Add(d)
		}
		fx, fy := c.camera.WorldToScreen(from.X, from.Y)
		tx, ty := c.camera.WorldToScreen(to.X, to.Y)
		drawLine(screen, fx, fy, tx, ty, connectorWidth*c.camera.Zoom, c.opts.ConnectorColor)
	}

	for _, n := range c.frame.Nodes {
		bounds := n.Bounds
		if d, ok := snapOffset(c.snaps, n.Path); ok && !n.Context.IsDragged {
			bounds = bounds.Translate(d)
		}
		r := c.camera.screenRect(bounds)
		fillRect(screen, r, n.Visual.Fill)
		strokeRect(screen, r, borderWidth, n.Visual.Border)
		c.drawLabel(screen, n.Visual.Label, r)
	}
	// Keep the drop target's border visible under the dragged box.
	for _, n := range c.frame.Nodes {
		if n.Context.IsDropTarget {
			strokeRect(screen, c.camera.screenRect(n.Bounds), borderWidth, n.Visual.Border)
		}
	}

	if c.opts.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// fillRect draws a solid screen-space rectangle.
func fillRect(dst *ebiten.Image, r sapling.Rect, clr Color) {
	if r.Width <= 0 || r.Height <= 0 || clr.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	dst.DrawImage(whitePixel, &op)
}

// strokeRect draws the outline of r with edges w pixels wide, inside r.
func strokeRect(dst *ebiten.Image, r sapling.Rect, w float64, clr Color) {
	w = math.Min(w, math.Min(r.Width, r.Height)/2)
	fillRect(dst, sapling.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: w}, clr)
	fillRect(dst, sapling.Rect{X: r.X, Y: r.Y + r.Height - w, Width: r.Width, Height: w}, clr)
	fillRect(dst, sapling.Rect{X: r.X, Y: r.Y + w, Width: w, Height: r.Height - 2*w}, clr)
	fillRect(dst, sapling.Rect{X: r.X + r.Width - w, Y: r.Y + w, Width: w, Height: r.Height - 2*w}, clr)
}

// drawLine draws a segment as a rotated quad centered on the segment.
func drawLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || clr.A <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(length, width)
	op.GeoM.Translate(0, -width/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x0, y0)
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	dst.DrawImage(whitePixel, &op)
}

// drawLabel centers s in r, trimming runes until it fits.
func (c *Canvas[T]) drawLabel(dst *ebiten.Image, s string, r sapling.Rect) {
	if s == "" {
		return
	}
	face := *c.face
	face.Size = c.face.Size * c.camera.Zoom
	maxW := r.Width - 2*labelPadding*c.camera.Zoom
	s = fitLabel(s, maxW, func(v string) float64 {
		w, _ := text.Measure(v, &face, 0)
		return w
	})
	if s == "" {
		return
	}
	w, h := text.Measure(s, &face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+(r.Width-w)/2, r.Y+(r.Height-h)/2)
	op.ColorScale.ScaleWithColor(c.opts.TextColor.toRGBA())
	text.Draw(dst, s, &face, op)
}

// fitLabel shortens s with a trailing ellipsis until measure reports it fits
// in maxW.
func fitLabel(s string, maxW float64, measure func(string) float64) string {
	if maxW <= 0 {
		return ""
	}
	if measure(s) <= maxW {
		return s
	}
	rs := []rune(s)
	for n := len(rs) - 1; n > 0; n-- {
		v := string(rs[:n]) + "…"
		if measure(v) <= maxW {
			return v
		}
	}
	return ""
}
