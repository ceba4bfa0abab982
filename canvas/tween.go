package canvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/sapling"
)

const defaultSnapBackDuration = 0.18 // seconds

// snapBack eases an abandoned drag's offset back to zero so the box slides
// home instead of jumping.
type snapBack struct {
	path   sapling.NodePath
	offset sapling.Vec2
	tween  *gween.Tween
	scale  float64
	done   bool
}

func newSnapBack(path sapling.NodePath, offset sapling.Vec2, duration float32) *snapBack {
	return &snapBack{
		path:   path.Clone(),
		offset: offset,
		tween:  gween.New(1, 0, duration, ease.OutCubic),
		scale:  1,
	}
}

// update advances the tween by dt seconds.
func (s *snapBack) update(dt float32) {
	if s.done {
		return
	}
	v, finished := s.tween.Update(dt)
	s.scale = float64(v)
	s.done = finished
	if finished {
		s.scale = 0
	}
}

// current returns the remaining displacement.
func (s *snapBack) current() sapling.Vec2 {
	return sapling.Vec2{X: s.offset.X * s.scale, Y: s.offset.Y * s.scale}
}

// updateSnapBacks advances every running tween and drops finished ones.
func updateSnapBacks(list []*snapBack, dt float32) []*snapBack {
	out := list[:0]
	for _, s := range list {
		s.update(dt)
		if !s.done {
			out = append(out, s)
		}
	}
	for i := len(out); i < len(list); i++ {
		list[i] = nil
	}
	return out
}

// snapOffset returns the displacement to draw path with, if a snap-back is
// running for it.
func snapOffset(list []*snapBack, path sapling.NodePath) (sapling.Vec2, bool) {
	for _, s := range list {
		if s.path.Equal(path) {
			return s.current(), true
		}
	}
	return sapling.Vec2{}, false
}
