// Package sapling is the engine of an embeddable interactive tree editor.
//
// Sapling renders a rooted, ordered tree as connected boxes on a 2D canvas and
// turns pointer and edit messages into structural edits: select and edit a
// node's item, fill "add child" placeholders, delete subtrees, and reparent
// subtrees by drag and drop.
//
// The package has no UI dependency. Hosts such as the Ebitengine canvas in
// package canvas or the terminal host in package term own the event loop and
// the painting; sapling owns the state.
//
// # Trees and paths
//
// A [Tree] is immutable: either [Empty] (a placeholder slot) or a node built
// with [NewNode]. Slots are addressed by [NodePath], the child indices from
// the root. [Find], [Insert], [UpdateItem], [Delete], and [Swap] return new
// trees and treat stale paths as no-ops.
//
//	t := sapling.NewNode("root",
//		sapling.NewNode("a"),
//		sapling.NewNode("b"),
//	)
//	t = sapling.Swap(sapling.NodePath{0}, sapling.NodePath{1}, t)
//
// # Editor protocol
//
// [Init] creates a [State]; [Update] applies one [Msg] and returns the next
// State. Every message is processed to completion, in arrival order.
//
//	s := sapling.Init(t, sapling.DefaultConfig())
//	s = sapling.Update(sapling.MouseDown{Path: sapling.NodePath{0}, X: 10, Y: 10}, s)
//	s = sapling.Update(sapling.SetActiveItem[string]{Item: "renamed"}, s)
//
// # Layout and rendering
//
// [ComputeLayout] places leaves in consecutive columns and centers each
// parent over its children. [Render] scales that grid by [Config] cell sizes
// and returns a [Frame] of positioned host visuals plus connector lines.
//
// Hosts call Render after each Update; the cached layout is only recomputed
// when the tree itself changes, never on pointer motion.
package sapling
