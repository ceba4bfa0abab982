package sapling

import (
	"fmt"

	"github.com/phanxgames/sapling/internal/logging"
)

var log = logging.New("editor")

// Msg is a discrete input to Update. The set of messages is closed; hosts
// translate their own pointer and keyboard events into these.
type Msg interface {
	isMsg()
}

// SetActiveItem replaces the item of the active node, keeping its children.
type SetActiveItem[T any] struct {
	Item T
}

// SetNewItem fills the pending placeholder with a new node holding Item.
type SetNewItem[T any] struct {
	Item T
}

// DeleteActive clears the active node's slot, discarding its subtree.
type DeleteActive struct{}

// MouseDown is a pointer press on a rendered slot. Placeholder is true when
// the slot is Empty.
type MouseDown struct {
	Placeholder bool
	Path        NodePath
	X, Y        float64
}

// MouseMove is pointer motion while a button is held.
type MouseMove struct {
	X, Y float64
}

// MouseUp is a pointer release anywhere.
type MouseUp struct {
	X, Y float64
}

// Deactivate is a click on the background.
type Deactivate struct{}

// CancelDrag abandons the current drag without committing, for hosts that
// lose pointer capture.
type CancelDrag struct{}

func (SetActiveItem[T]) isMsg() {}
func (SetNewItem[T]) isMsg()    {}
func (DeleteActive) isMsg()     {}
func (MouseDown) isMsg()        {}
func (MouseMove) isMsg()        {}
func (MouseUp) isMsg()          {}
func (Deactivate) isMsg()       {}
func (CancelDrag) isMsg()       {}

// EditKind identifies the structural change an Update committed.
type EditKind uint8

const (
	EditNone   EditKind = iota // no structural change
	EditUpdate                 // an item was replaced
	EditInsert                 // a placeholder was filled
	EditDelete                 // a subtree was cleared
	EditSwap                   // two subtrees were exchanged by a drop
)

func (k EditKind) String() string {
	switch k {
	case EditUpdate:
		return "update"
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	case EditSwap:
		return "swap"
	default:
		return "none"
	}
}

// Edit describes the structural change made by the most recent Update.
// Target is only set for EditSwap.
type Edit struct {
	Kind   EditKind
	Path   NodePath
	Target NodePath
}

// Option configures a State at Init.
type Option[T any] func(*State[T])

// WithItemEqual lets SetActiveItem recognise an unchanged item and skip the
// cache rebuild. Without it every SetActiveItem counts as a change.
func WithItemEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(s *State[T]) {
		s.itemEq = eq
	}
}

// State is the complete editor state for one mounted editor. It is a value:
// Update returns a new State and never modifies the one passed in, and no two
// editors share anything mutable.
type State[T any] struct {
	cfg   Config
	tree  Tree[T]
	cache treeCache[T]

	active    NodePath
	hasActive bool
	newPath   NodePath
	hasNew    bool

	isDragging bool
	drag       DragState

	itemEq func(a, b T) bool
	edit   Edit
}

// Init creates the editor state for start.
func Init[T any](start Tree[T], cfg Config, opts ...Option[T]) State[T] {
	s := State[T]{cfg: cfg, tree: start, cache: buildCache(start, cfg)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Tree returns the committed tree.
func (s State[T]) Tree() Tree[T] { return s.tree }

// Config returns the configuration fixed at Init.
func (s State[T]) Config() Config { return s.cfg }

// Expanded returns the committed tree as laid out: with trailing
// placeholder slots when the config shows them, unchanged otherwise.
func (s State[T]) Expanded() Tree[T] { return s.cache.expanded }

// Flat returns the flattened slots of Expanded in render order.
// The returned slice MUST NOT be mutated.
func (s State[T]) Flat() []Entry[T] { return s.cache.flat }

// Layout returns the grid layout of Expanded.
func (s State[T]) Layout() Layout { return s.cache.layout }

// ActivePath returns the selected node, if any.
func (s State[T]) ActivePath() (NodePath, bool) {
	if !s.hasActive {
		return nil, false
	}
	return s.active, true
}

// NewPath returns the placeholder slot awaiting SetNewItem, if any. Use
// NewParent for the node that will receive the new child.
func (s State[T]) NewPath() (NodePath, bool) {
	if !s.hasNew {
		return nil, false
	}
	return s.newPath, true
}

// NewParent returns the node that will receive the pending new child. It is
// false when nothing is pending or the pending slot is the root.
func (s State[T]) NewParent() (NodePath, bool) {
	if !s.hasNew {
		return nil, false
	}
	return s.newPath.Parent()
}

// IsDragging reports whether pointer motion has been seen since MouseDown.
func (s State[T]) IsDragging() bool { return s.isDragging }

// Drag returns the drag state machine.
func (s State[T]) Drag() DragState { return s.drag }

// DropTarget resolves the slot the current drag would be dropped on.
func (s State[T]) DropTarget() (NodePath, bool) {
	if !s.isDragging {
		return nil, false
	}
	return DropTarget(s.drag, s.cache.layout, s.cache.flat, s.cfg)
}

// LastEdit returns the structural change made by the Update that produced s.
func (s State[T]) LastEdit() (Edit, bool) {
	return s.edit, s.edit.Kind != EditNone
}

// commit installs a new tree and rebuilds the cache in the same step, so
// callers never observe a tree with a stale cache.
func (s *State[T]) commit(t Tree[T], e Edit) {
	s.tree = t
	s.cache = buildCache(t, s.cfg)
	s.edit = e
	log.Debug("tree committed", "edit", e.Kind.String(), "path", e.Path.String(), "slots", len(s.cache.flat))
}

func (s *State[T]) setActive(p NodePath) {
	s.active, s.hasActive = p.Clone(), true
	s.newPath, s.hasNew = nil, false
}

func (s *State[T]) setNew(p NodePath) {
	s.newPath, s.hasNew = p.Clone(), true
	s.active, s.hasActive = nil, false
}

func (s *State[T]) clearSelection() {
	s.active, s.hasActive = nil, false
	s.newPath, s.hasNew = nil, false
}

// Update applies msg to s and returns the resulting state. Every message is
// total: preconditions that do not hold make it a no-op. The cache is rebuilt
// exactly when the tree changes.
func Update[T any](msg Msg, s State[T]) State[T] {
	s.edit = Edit{}

	switch m := msg.(type) {
	case SetActiveItem[T]:
		if !s.hasActive {
			log.Debug("set active item ignored: nothing active")
			return s
		}
		cur, ok := Find(s.active, s.tree)
		if !ok || cur.IsEmpty() {
			return s
		}
		if old, _ := cur.Item(); s.itemEq != nil && s.itemEq(old, m.Item) {
			return s
		}
		s.commit(UpdateItem(s.active, m.Item, s.tree), Edit{Kind: EditUpdate, Path: s.active})

	case DeleteActive:
		if !s.hasActive {
			log.Debug("delete ignored: nothing active")
			return s
		}
		path := s.active
		s.active, s.hasActive = nil, false
		if _, ok := Find(path, s.tree); !ok {
			return s
		}
		s.commit(Delete(path, s.tree), Edit{Kind: EditDelete, Path: path})

	case SetNewItem[T]:
		if !s.hasNew {
			log.Debug("set new item ignored: no placeholder pending")
			return s
		}
		path := s.newPath
		s.newPath, s.hasNew = nil, false
		if _, ok := slot(path, s.tree); !ok {
			return s
		}
		s.commit(Insert(path, m.Item, s.tree), Edit{Kind: EditInsert, Path: path})

	case MouseDown:
		s.drag = DragState{}
		if s.cfg.DragEnabled {
			s.drag = StartDrag(m.Path, m.X, m.Y)
		}
		s.isDragging = false
		if m.Placeholder {
			s.setNew(m.Path)
		} else {
			s.setActive(m.Path)
		}

	case MouseMove:
		if !s.drag.Active() {
			return s
		}
		s.drag = s.drag.Move(m.X, m.Y)
		s.isDragging = true

	case MouseUp:
		if !s.drag.Active() {
			s.isDragging = false
			return s
		}
		// A release without any observed motion is a click and never drops.
		moved := s.isDragging
		origin := s.drag.origin
		target, ok, idle := EndDrag(s.drag.Move(m.X, m.Y), s.cache.layout, s.cache.flat, s.cfg)
		s.drag = idle
		s.isDragging = false
		if !ok || !moved {
			return s
		}
		s.commit(Swap(origin, target, s.tree), Edit{Kind: EditSwap, Path: origin, Target: target})
		if s.hasActive {
			s.active = remapSwapped(s.active, origin, target)
		}
		if s.hasNew {
			s.newPath = remapSwapped(s.newPath, origin, target)
		}

	case Deactivate:
		if s.cfg.AllowDeactivate {
			s.clearSelection()
		}

	case CancelDrag:
		s.drag = s.drag.Cancel()
		s.isDragging = false

	default:
		log.Debug("unknown message ignored", "type", fmt.Sprintf("%T", msg))
	}
	return s
}

// remapSwapped follows p across a swap of a and b so a selection stays on
// the subtree it pointed at.
func remapSwapped(p, a, b NodePath) NodePath {
	switch {
	case p.StartsWith(a):
		return append(b.Clone(), p[len(a):]...)
	case p.StartsWith(b):
		return append(a.Clone(), p[len(b):]...)
	default:
		return p
	}
}
