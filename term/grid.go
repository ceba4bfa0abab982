package term

import (
	"math"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/phanxgames/sapling"
)

// Line directions joined into box-drawing runes.
const (
	lineUp uint8 = 1 << iota
	lineDown
	lineLeft
	lineRight
)

var lineRunes = map[uint8]rune{
	lineUp:                                  '│',
	lineDown:                                '│',
	lineUp | lineDown:                       '│',
	lineLeft:                                '─',
	lineRight:                               '─',
	lineLeft | lineRight:                    '─',
	lineDown | lineRight:                    '┌',
	lineDown | lineLeft:                     '┐',
	lineUp | lineRight:                      '└',
	lineUp | lineLeft:                       '┘',
	lineUp | lineDown | lineRight:           '├',
	lineUp | lineDown | lineLeft:            '┤',
	lineLeft | lineRight | lineDown:         '┬',
	lineLeft | lineRight | lineUp:           '┴',
	lineUp | lineDown | lineLeft | lineRight: '┼',
}

type border struct {
	tl, tr, bl, br, h, v rune
}

var (
	solidBorder  = border{'┌', '┐', '└', '┘', '─', '│'}
	heavyBorder  = border{'┏', '┓', '┗', '┛', '━', '┃'}
	dashedBorder = border{'╭', '╮', '╰', '╯', '┄', '┆'}
)

// grid is a fixed-size rune canvas. Connector lines are collected as
// direction masks and turned into runes before boxes are painted over them.
type grid struct {
	w, h   int
	runes  []rune
	styles []cellStyle
	lines  []uint8
}

func newGrid(w, h int) *grid {
	w, h = max(w, 0), max(h, 0)
	g := &grid{
		w:      w,
		h:      h,
		runes:  make([]rune, w*h),
		styles: make([]cellStyle, w*h),
		lines:  make([]uint8, w*h),
	}
	for i := range g.runes {
		g.runes[i] = ' '
	}
	return g
}

func (g *grid) in(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *grid) set(x, y int, r rune, st cellStyle) {
	if !g.in(x, y) {
		return
	}
	g.runes[y*g.w+x] = r
	g.styles[y*g.w+x] = st
}

func (g *grid) line(x, y int, dirs uint8) {
	if !g.in(x, y) {
		return
	}
	g.lines[y*g.w+x] |= dirs
}

// connector routes a parent-to-child line through the rows between the
// parent's bottom edge and the child's top edge: down from the parent, across
// the middle row, down into the child.
func (g *grid) connector(px, parentBottom, cx, childTop int) {
	if childTop-parentBottom < 2 {
		return
	}
	mid := parentBottom + 1 + (childTop-parentBottom-2)/2
	for y := parentBottom + 1; y < mid; y++ {
		g.line(px, y, lineUp|lineDown)
	}
	for y := mid + 1; y < childTop; y++ {
		g.line(cx, y, lineUp|lineDown)
	}
	g.line(px, mid, lineUp)
	g.line(cx, mid, lineDown)
	lo, hi := min(px, cx), max(px, cx)
	for x := lo; x <= hi; x++ {
		var d uint8
		if x > lo {
			d |= lineLeft
		}
		if x < hi {
			d |= lineRight
		}
		g.line(x, mid, d)
	}
}

// resolveLines paints every collected line mask.
func (g *grid) resolveLines() {
	for i, m := range g.lines {
		if m == 0 {
			continue
		}
		if r, ok := lineRunes[m]; ok {
			g.runes[i] = r
			g.styles[i] = styleConnector
		}
	}
}

// box draws a bordered box with label centered on its middle row. The label
// is truncated to the inner width.
func (g *grid) box(x, y, w, h int, label string, b border, st cellStyle) {
	if w < 2 || h < 2 {
		return
	}
	for j := y + 1; j < y+h-1; j++ {
		for i := x + 1; i < x+w-1; i++ {
			g.set(i, j, ' ', st)
		}
	}
	g.outline(x, y, w, h, b, st)

	inner := w - 2
	if inner <= 0 || h < 3 || label == "" {
		return
	}
	label = truncate.StringWithTail(label, uint(inner), "…")
	rs := []rune(label)
	start := x + 1 + (inner-len(rs))/2
	row := y + (h-1)/2
	for i, r := range rs {
		g.set(start+i, row, r, st)
	}
}

// outline draws only the border of a box, leaving its inside untouched.
func (g *grid) outline(x, y, w, h int, b border, st cellStyle) {
	if w < 2 || h < 2 {
		return
	}
	for i := x + 1; i < x+w-1; i++ {
		g.set(i, y, b.h, st)
		g.set(i, y+h-1, b.h, st)
	}
	for j := y + 1; j < y+h-1; j++ {
		g.set(x, j, b.v, st)
		g.set(x+w-1, j, b.v, st)
	}
	g.set(x, y, b.tl, st)
	g.set(x+w-1, y, b.tr, st)
	g.set(x, y+h-1, b.bl, st)
	g.set(x+w-1, y+h-1, b.br, st)
}

// String renders the grid, passing each run of equally styled cells
// through paint.
func (g *grid) String(paint func(cellStyle, string) string) string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := y * g.w
		for x := 0; x < g.w; {
			st := g.styles[row+x]
			end := x + 1
			for end < g.w && g.styles[row+end] == st {
				end++
			}
			b.WriteString(paint(st, string(g.runes[row+x:row+end])))
			x = end
		}
	}
	return b.String()
}

// cellRect converts a cell-unit rectangle to whole cells, shifted by the
// scroll offset.
func cellRect(r sapling.Rect, offX, offY int) (x, y, w, h int) {
	x = int(math.Round(r.X)) - offX
	y = int(math.Round(r.Y)) - offY
	w = int(math.Round(r.Width))
	h = int(math.Round(r.Height))
	return x, y, w, h
}
