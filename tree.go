package sapling

// Tree is an immutable ordered tree: either Empty (a placeholder slot that
// holds no item) or a Node with an item and an ordered list of children.
//
// Tree values are never modified in place. Every edit rebuilds the path from
// the root to the edited slot and shares untouched sibling subtrees, which is
// safe because nothing reachable from a Tree is ever written again.
type Tree[T any] struct {
	n *node[T] // nil means Empty
}

type node[T any] struct {
	item     T
	children []Tree[T]
}

// Empty returns a placeholder slot.
func Empty[T any]() Tree[T] {
	return Tree[T]{}
}

// NewNode returns a node holding item with the given children, in order.
func NewNode[T any](item T, children ...Tree[T]) Tree[T] {
	var kids []Tree[T]
	if len(children) > 0 {
		kids = make([]Tree[T], len(children))
		copy(kids, children)
	}
	return Tree[T]{n: &node[T]{item: item, children: kids}}
}

// IsEmpty reports whether t is a placeholder slot.
func (t Tree[T]) IsEmpty() bool {
	return t.n == nil
}

// Item returns the node's item. The second result is false for Empty.
func (t Tree[T]) Item() (T, bool) {
	if t.n == nil {
		var zero T
		return zero, false
	}
	return t.n.item, true
}

// Len returns the number of children. Empty has none.
func (t Tree[T]) Len() int {
	if t.n == nil {
		return 0
	}
	return len(t.n.children)
}

// Child returns the i-th child, or Empty when i is out of range.
func (t Tree[T]) Child(i int) Tree[T] {
	if t.n == nil || i < 0 || i >= len(t.n.children) {
		return Tree[T]{}
	}
	return t.n.children[i]
}

// Children returns a copy of the child list.
func (t Tree[T]) Children() []Tree[T] {
	if t.n == nil || len(t.n.children) == 0 {
		return nil
	}
	out := make([]Tree[T], len(t.n.children))
	copy(out, t.n.children)
	return out
}

// Find returns the subtree at path. The second result is false when any
// index along the path is out of range; that is a normal outcome for stale
// paths, not an error.
func Find[T any](path NodePath, t Tree[T]) (Tree[T], bool) {
	cur := t
	for _, idx := range path {
		if cur.n == nil || idx < 0 || idx >= len(cur.n.children) {
			return Tree[T]{}, false
		}
		cur = cur.n.children[idx]
	}
	return cur, true
}

// slot resolves path like Find but also accepts the trailing "add child"
// slot of a node (last index == child count), which reads as Empty.
func slot[T any](path NodePath, t Tree[T]) (Tree[T], bool) {
	if len(path) == 0 {
		return t, true
	}
	parent, ok := Find(path[:len(path)-1], t)
	if !ok || parent.n == nil {
		return Tree[T]{}, false
	}
	idx := path[len(path)-1]
	switch {
	case idx >= 0 && idx < len(parent.n.children):
		return parent.n.children[idx], true
	case idx == len(parent.n.children):
		return Tree[T]{}, true
	default:
		return Tree[T]{}, false
	}
}

// replace rebuilds t with the slot at path set to sub. A path ending at the
// trailing slot of a node appends; appending Empty is skipped so that trailing
// placeholders never accumulate. Invalid paths leave t unchanged.
func replace[T any](path NodePath, t, sub Tree[T]) Tree[T] {
	if len(path) == 0 {
		return sub
	}
	if t.n == nil {
		return t
	}
	idx := path[0]
	kids := t.n.children
	switch {
	case idx >= 0 && idx < len(kids):
		next := replace(path[1:], kids[idx], sub)
		out := make([]Tree[T], len(kids))
		copy(out, kids)
		out[idx] = next
		return Tree[T]{n: &node[T]{item: t.n.item, children: out}}
	case idx == len(kids) && len(path) == 1:
		if sub.n == nil {
			return t
		}
		out := make([]Tree[T], len(kids), len(kids)+1)
		copy(out, kids)
		out = append(out, sub)
		return Tree[T]{n: &node[T]{item: t.n.item, children: out}}
	default:
		return t
	}
}

// Insert places a new childless node holding item at path. The path normally
// addresses a placeholder: an Empty child or a node's trailing "add child"
// slot (index equal to the child count), which appends. An occupied path is
// overwritten and its descendants are discarded.
func Insert[T any](path NodePath, item T, t Tree[T]) Tree[T] {
	if _, ok := slot(path, t); !ok {
		return t
	}
	return replace(path, t, NewNode(item))
}

// UpdateItem replaces the item of the node at path and keeps its children.
// It is a no-op unless path addresses a node.
func UpdateItem[T any](path NodePath, item T, t Tree[T]) Tree[T] {
	cur, ok := Find(path, t)
	if !ok || cur.n == nil {
		return t
	}
	return replace(path, t, Tree[T]{n: &node[T]{item: item, children: cur.n.children}})
}

// Delete turns the slot at path into Empty, discarding the subtree. Deleting
// the root clears the whole tree.
func Delete[T any](path NodePath, t Tree[T]) Tree[T] {
	if _, ok := Find(path, t); !ok {
		return t
	}
	return replace(path, t, Tree[T]{})
}

// Swap exchanges the subtrees rooted at a and b, each keeping its own
// descendants. Trailing "add child" slots take part as Empty slots, which is
// how a subtree is moved under a new parent.
//
// a and b must not be related (neither a prefix of the other). Swap does not
// check this; callers filter related paths before calling it.
func Swap[T any](a, b NodePath, t Tree[T]) Tree[T] {
	sa, ok := slot(a, t)
	if !ok {
		return t
	}
	sb, ok := slot(b, t)
	if !ok {
		return t
	}
	return replace(b, replace(a, t, sb), sa)
}

// AddTrailingEmpties returns t with one extra Empty child appended to every
// node, the "add child" affordance. A wholly Empty tree stays a single Empty
// root so the "add root" affordance renders. Always derive it from the
// canonical tree; expanding an expanded tree adds a second row of slots.
func AddTrailingEmpties[T any](t Tree[T]) Tree[T] {
	if t.n == nil {
		return t
	}
	out := make([]Tree[T], len(t.n.children)+1)
	for i, c := range t.n.children {
		out[i] = AddTrailingEmpties(c)
	}
	return Tree[T]{n: &node[T]{item: t.n.item, children: out}}
}

// Entry is one element of a flattened tree.
type Entry[T any] struct {
	Path    NodePath
	Item    T
	HasItem bool
}

// Flatten lists every slot of t in depth-first pre-order, left to right.
// Empty slots appear with HasItem false. The order is render order.
func Flatten[T any](t Tree[T]) []Entry[T] {
	out := make([]Entry[T], 0, Count(t))
	return flattenInto(out, NodePath{}, t)
}

func flattenInto[T any](out []Entry[T], path NodePath, t Tree[T]) []Entry[T] {
	if t.n == nil {
		return append(out, Entry[T]{Path: path})
	}
	out = append(out, Entry[T]{Path: path, Item: t.n.item, HasItem: true})
	for i, c := range t.n.children {
		out = flattenInto(out, path.Child(i), c)
	}
	return out
}

// Count returns the number of slots in t, Empty ones included.
func Count[T any](t Tree[T]) int {
	if t.n == nil {
		return 1
	}
	n := 1
	for _, c := range t.n.children {
		n += Count(c)
	}
	return n
}

// Walk calls fn for every slot in pre-order. Returning false from fn skips
// that slot's children.
func Walk[T any](t Tree[T], fn func(path NodePath, sub Tree[T]) bool) {
	walk(NodePath{}, t, fn)
}

func walk[T any](path NodePath, t Tree[T], fn func(NodePath, Tree[T]) bool) {
	if !fn(path, t) || t.n == nil {
		return
	}
	for i, c := range t.n.children {
		walk(path.Child(i), c, fn)
	}
}

// Equal reports whether a and b have the same shape and equal items under eq.
func Equal[T any](a, b Tree[T], eq func(x, y T) bool) bool {
	if a.n == nil || b.n == nil {
		return a.n == nil && b.n == nil
	}
	if !eq(a.n.item, b.n.item) || len(a.n.children) != len(b.n.children) {
		return false
	}
	for i := range a.n.children {
		if !Equal(a.n.children[i], b.n.children[i], eq) {
			return false
		}
	}
	return true
}
