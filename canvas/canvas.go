package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/internal/logging"
)

var log = logging.New("canvas")

// Options controls how the canvas looks and reacts. Zero colors are drawn
// as transparent; start from DefaultOptions.
type Options struct {
	ClearColor       Color
	NodeColor        Color
	ActiveColor      Color
	NewColor         Color
	PlaceholderColor Color
	DropTargetColor  Color
	BorderColor      Color
	ConnectorColor   Color
	TextColor        Color

	FontSize float64

	// DragDeadZone is the distance in screen pixels the pointer must travel
	// after a press before moves are forwarded as a drag.
	DragDeadZone float64

	// SnapBackDuration is how long, in seconds, an abandoned drag takes to
	// slide home. Zero disables the animation.
	SnapBackDuration float32

	// Debug logs per-frame timing at debug level.
	Debug bool
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool

	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir string
	// ExitAfterScript ends the game loop once an attached test script is done.
	ExitAfterScript bool
}

// DefaultOptions returns a dark theme with a 4 pixel drag dead zone.
func DefaultOptions() Options {
	return Options{
		ClearColor:       Color{0.118, 0.118, 0.157, 1},
		NodeColor:        Color{0.22, 0.27, 0.36, 1},
		ActiveColor:      Color{0.31, 0.71, 1, 1},
		NewColor:         Color{0.4, 0.8, 0.45, 1},
		PlaceholderColor: Color{0.3, 0.3, 0.35, 0.5},
		DropTargetColor:  Color{1, 0.78, 0.2, 1},
		BorderColor:      Color{0.6, 0.65, 0.75, 1},
		ConnectorColor:   Color{0.5, 0.55, 0.65, 1},
		TextColor:        ColorWhite,
		FontSize:         16,
		DragDeadZone:     defaultDragDeadZone,
		SnapBackDuration: defaultSnapBackDuration,
		ScreenshotDir:    "screenshots",
	}
}

// Box is the visual the canvas renders for each slot.
type Box struct {
	Label  string
	Fill   Color
	Border Color
}

// Canvas hosts one sapling editor. It implements ebiten.Game.
type Canvas[T any] struct {
	state sapling.State[T]
	codec sapling.Codec[T]
	opts  Options
	frame sapling.Frame[Box]

	camera   *Camera
	face     *text.GoTextFace
	pointer  pointerState
	throttle *sapling.MoveThrottle
	snaps    []*snapBack

	// buffer is the label being typed for the active node or pending
	// placeholder; bufferKey identifies which.
	buffer    []rune
	bufferKey string

	store           EditStore
	injectQueue     []syntheticPointerEvent
	keyQueue        []keyEvent
	runner          *TestRunner
	screenshotQueue []string

	now           func() time.Time
	width, height int
}

// New creates a canvas editing start. The config is validated; editor
// options such as sapling.WithItemEqual are passed through to sapling.Init.
func New[T any](start sapling.Tree[T], cfg sapling.Config, codec sapling.Codec[T], opts Options, editorOpts ...sapling.Option[T]) (*Canvas[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !codec.Valid() {
		return nil, sapling.ErrNoCodec
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("canvas: load font: %w", err)
	}
	size := opts.FontSize
	if size <= 0 {
		size = DefaultOptions().FontSize
	}

	c := &Canvas[T]{
		state:    sapling.Init(start, cfg, editorOpts...),
		codec:    codec,
		opts:     opts,
		camera:   newCamera(),
		face:     &text.GoTextFace{Source: source, Size: size},
		throttle: sapling.NewMoveThrottle(cfg.MoveThrottle),
		now:      time.Now,
		width:    int(cfg.CanvasWidth),
		height:   int(cfg.CanvasHeight),
	}
	c.refresh()
	log.Debug("canvas created", "slots", len(c.state.Flat()), "width", c.width, "height", c.height)
	return c, nil
}

// State returns the current editor state.
func (c *Canvas[T]) State() sapling.State[T] { return c.state }

// Tree returns the committed tree.
func (c *Canvas[T]) Tree() sapling.Tree[T] { return c.state.Tree() }

// Frame returns the frame drawn on the next Draw, in world coordinates.
func (c *Canvas[T]) Frame() sapling.Frame[Box] { return c.frame }

// Camera returns the view camera.
func (c *Canvas[T]) Camera() *Camera { return c.camera }

// Text returns the label currently being typed.
func (c *Canvas[T]) Text() string { return string(c.buffer) }

// Dispatch applies msg to the editor, publishes any committed edit and
// refreshes the frame.
func (c *Canvas[T]) Dispatch(msg sapling.Msg) {
	c.state = sapling.Update(msg, c.state)
	_, edited := c.state.LastEdit()
	if edited {
		// Paths may have moved under a running snap-back.
		c.snaps = c.snaps[:0]
		c.emitEdit()
	}
	c.syncBuffer(edited)
	c.refresh()
}

// syncBuffer reloads the typing buffer when the selection moves to a
// different slot or the tree changed.
func (c *Canvas[T]) syncBuffer(force bool) {
	key := ""
	var label string
	if p, ok := c.state.ActivePath(); ok {
		key = "a" + p.String()
		if sub, found := sapling.Find(p, c.state.Tree()); found {
			if item, has := sub.Item(); has {
				label = c.codec.Format(item)
			}
		}
	} else if p, ok := c.state.NewPath(); ok {
		key = "n" + p.String()
	}
	if key == c.bufferKey && !force {
		return
	}
	c.bufferKey = key
	c.buffer = append(c.buffer[:0], []rune(label)...)
}

// refresh re-renders the frame from the current state.
func (c *Canvas[T]) refresh() {
	c.frame = sapling.Render(c.state, c.renderItem, c.renderPlaceholder)
}

func (c *Canvas[T]) renderItem(item T, ctx sapling.RenderContext) Box {
	b := Box{Label: c.codec.Format(item), Fill: c.opts.NodeColor, Border: c.opts.BorderColor}
	if ctx.IsActive {
		b.Fill = c.opts.ActiveColor
		b.Label = string(c.buffer)
	}
	if ctx.IsDropTarget {
		b.Border = c.opts.DropTargetColor
	}
	if ctx.IsDragged {
		b.Fill.A *= 0.85
	}
	return b
}

func (c *Canvas[T]) renderPlaceholder(ctx sapling.RenderContext) Box {
	b := Box{Label: "+", Fill: c.opts.PlaceholderColor, Border: c.opts.PlaceholderColor}
	if ctx.IsNew {
		b.Fill = c.opts.NewColor
		b.Label = string(c.buffer)
	}
	if ctx.IsDropTarget {
		b.Border = c.opts.DropTargetColor
	}
	return b
}

// Update implements ebiten.Game.
func (c *Canvas[T]) Update() error {
	var stats frameStats
	var t0 time.Time
	if c.opts.Debug {
		t0 = time.Now()
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	c.camera.update(dt)
	c.snaps = updateSnapBacks(c.snaps, dt)

	if c.runner != nil {
		c.runner.step(c)
	}
	c.processInput()
	c.processKeys()

	if c.opts.Debug {
		stats.updateTime = time.Since(t0)
		stats.nodes = len(c.frame.Nodes)
		stats.connectors = len(c.frame.Connectors)
		stats.snaps = len(c.snaps)
		c.debugLog(stats)
	}
	if c.opts.ExitAfterScript && c.runner != nil && c.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (c *Canvas[T]) Draw(screen *ebiten.Image) {
	c.drawFrame(screen)
	c.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The canvas follows the window size.
func (c *Canvas[T]) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.width, c.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// ScrollToActive centers the camera on the active node or pending
// placeholder.
func (c *Canvas[T]) ScrollToActive() {
	p, ok := c.state.ActivePath()
	if !ok {
		if p, ok = c.state.NewPath(); !ok {
			return
		}
	}
	for _, n := range c.frame.Nodes {
		if n.Path.Equal(p) {
			ctr := n.Bounds.Center()
			c.camera.ScrollTo(ctr.X, ctr.Y, float64(c.width), float64(c.height), 0.4, easeScroll)
			return
		}
	}
}

// RunConfig sets up the window for Run.
type RunConfig struct {
	Title string
	// Width and Height default to the config's canvas size.
	Width, Height int
	Resizable     bool
}

// Run opens a window and runs c until the window closes or the game loop
// terminates.
func Run[T any](c *Canvas[T], cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = c.width
	}
	if h <= 0 {
		h = c.height
	}
	if w <= 0 || h <= 0 {
		w, h = 960, 640
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("canvas: run: %w", err)
	}
	return nil
}
