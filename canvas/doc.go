// Package canvas hosts a sapling editor on [Ebitengine].
//
// A [Canvas] owns one editor State, turns mouse and keyboard input into
// sapling messages, and paints the resulting Frame as boxes and connector
// lines. It implements [ebiten.Game], so the simplest program is:
//
//	c, err := canvas.New(tree, sapling.DefaultConfig(), sapling.StringCodec(), canvas.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := canvas.Run(c, canvas.RunConfig{Title: "Tree"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Interaction
//
// Left-press a box to select it, or a placeholder to start a new child. Type
// to edit the label, Enter commits, Escape deselects, Delete removes the
// selected subtree. Dragging a box past the dead zone and releasing it over
// another slot swaps the two subtrees; releasing elsewhere snaps it back.
// Right-drag pans the camera and the wheel zooms.
//
// # Scripted input
//
// [Canvas.InjectPress], [Canvas.InjectMove], [Canvas.InjectRelease] and
// [Canvas.InjectDrag] queue synthetic pointer events consumed one per frame.
// [LoadTestScript] sequences them, with typing and screenshots, from JSON.
//
// [Ebitengine]: https://ebitengine.org
package canvas
