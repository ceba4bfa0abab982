// Package term hosts a sapling editor in a terminal with bubbletea.
//
// Boxes are drawn on a cell grid from the same Frame the canvas host uses,
// so a Config sized in cells (see DefaultConfig) lays the tree out on the
// screen. Click a box to select it and edit its label in the input line,
// click a dashed placeholder to add a child, and drag boxes to swap subtrees.
//
//	m, err := term.New(tree, term.DefaultConfig(), sapling.StringCodec())
//	if err != nil {
//		return err
//	}
//	tree, err = term.Run(m)
package term
