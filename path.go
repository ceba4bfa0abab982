package sapling

import (
	"fmt"
	"strconv"
	"strings"
)

// NodePath addresses a node by descending child indices from the root.
// The empty path is the root. Paths are plain values; no node identity
// survives a structural edit beyond path equality at the time of the edit.
type NodePath []int

// Root is the path of the root node.
var Root = NodePath{}

// Clone returns a copy of p that shares no storage with it.
func (p NodePath) Clone() NodePath {
	out := make(NodePath, len(p))
	copy(out, p)
	return out
}

// Child returns the path of the i-th child of p.
func (p NodePath) Child(i int) NodePath {
	out := make(NodePath, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// Parent returns the path of p's parent. The root has no parent.
func (p NodePath) Parent() (NodePath, bool) {
	if len(p) == 0 {
		return nil, false
	}
	return p[:len(p)-1].Clone(), true
}

// Depth is the number of edges between the root and p.
func (p NodePath) Depth() int {
	return len(p)
}

// Last returns the final child index of p. The root reports -1.
func (p NodePath) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// Equal reports whether p and o address the same slot.
func (p NodePath) Equal(o NodePath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// StartsWith reports whether prefix is a prefix of p. Every path starts with
// the root and with itself.
func (p NodePath) StartsWith(prefix NodePath) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// IsAncestorOf reports whether p is a strict ancestor of o.
func (p NodePath) IsAncestorOf(o NodePath) bool {
	return len(p) < len(o) && o.StartsWith(p)
}

// Related reports whether either path is a prefix of the other. Swapping two
// related paths would place a subtree inside itself.
func (p NodePath) Related(o NodePath) bool {
	return p.StartsWith(o) || o.StartsWith(p)
}

// String renders p as dot-separated indices, "/" for the root.
func (p NodePath) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for i, idx := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

// ParsePath parses the format produced by String.
func ParsePath(s string) (NodePath, error) {
	s = strings.TrimSpace(s)
	if s == "/" || s == "" {
		return NodePath{}, nil
	}
	parts := strings.Split(s, ".")
	out := make(NodePath, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse path %q: %w", s, err)
		}
		if idx < 0 {
			return nil, fmt.Errorf("parse path %q: negative index %d", s, idx)
		}
		out = append(out, idx)
	}
	return out, nil
}
