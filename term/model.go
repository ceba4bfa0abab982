package term

import (
	"fmt"
	"math"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/internal/logging"
)

var log = logging.New("term")

const (
	defaultWidth  = 80
	defaultHeight = 24
	headerRows    = 1
	footerRows    = 2
)

const helpText = "click select · type to edit · enter commit · esc deselect · ctrl+x delete · ctrl+y copy · drag to move · q quit"

// DefaultConfig returns a layout sized in terminal cells: 12x3 boxes, two
// columns and one row apart.
func DefaultConfig() sapling.Config {
	cfg := sapling.DefaultConfig()
	cfg.NodeWidth = 12
	cfg.NodeHeight = 3
	cfg.HorizontalGap = 2
	cfg.VerticalGap = 1
	cfg.CanvasWidth = defaultWidth
	cfg.CanvasHeight = defaultHeight - headerRows - footerRows
	cfg.CenterOffset = sapling.Vec2{X: 6, Y: 1.5}
	cfg.MoveThrottle = 0
	return cfg
}

// cellBox is the visual rendered for each slot.
type cellBox struct {
	label  string
	style  cellStyle
	border border
}

// Model is a bubbletea model hosting one sapling editor.
type Model[T any] struct {
	state  sapling.State[T]
	codec  sapling.Codec[T]
	styles Styles

	input    textinput.Model
	inputKey string

	throttle *sapling.MoveThrottle
	pressed  bool

	width, height int
	offX, offY    int
	status        string

	now       func() time.Time
	writeClip func(string) error
}

// New creates a model editing start. Editor options pass through to
// sapling.Init.
func New[T any](start sapling.Tree[T], cfg sapling.Config, codec sapling.Codec[T], opts ...sapling.Option[T]) (*Model[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !codec.Valid() {
		return nil, sapling.ErrNoCodec
	}
	ti := textinput.New()
	ti.Prompt = "label: "
	ti.Placeholder = "type a label"
	ti.CharLimit = 200

	m := &Model[T]{
		state:     sapling.Init(start, cfg, opts...),
		codec:     codec,
		styles:    DefaultStyles(),
		input:     ti,
		throttle:  sapling.NewMoveThrottle(cfg.MoveThrottle),
		width:     defaultWidth,
		height:    defaultHeight,
		status:    "ready",
		now:       time.Now,
		writeClip: clipboard.WriteAll,
	}
	if cfg.CanvasWidth > 0 {
		m.width = int(cfg.CanvasWidth)
	}
	if cfg.CanvasHeight > 0 {
		m.height = int(cfg.CanvasHeight) + headerRows + footerRows
	}
	return m, nil
}

// SetStyles replaces the theme.
func (m *Model[T]) SetStyles(s Styles) { m.styles = s }

// State returns the current editor state.
func (m *Model[T]) State() sapling.State[T] { return m.state }

// Tree returns the committed tree.
func (m *Model[T]) Tree() sapling.Tree[T] { return m.state.Tree() }

// Status returns the message shown in the header.
func (m *Model[T]) Status() string { return m.status }

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	if m.editing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Dispatch applies msg to the editor and returns the command that focuses
// or blurs the label input.
func (m *Model[T]) Dispatch(msg sapling.Msg) tea.Cmd {
	m.state = sapling.Update(msg, m.state)
	e, edited := m.state.LastEdit()
	if edited {
		m.status = describeEdit(e)
		log.Debug("edit committed", "kind", e.Kind.String(), "path", e.Path.String())
	}
	return m.syncInput(edited)
}

func describeEdit(e sapling.Edit) string {
	switch e.Kind {
	case sapling.EditSwap:
		return fmt.Sprintf("moved %s to %s", e.Path, e.Target)
	case sapling.EditInsert:
		return fmt.Sprintf("added %s", e.Path)
	case sapling.EditDelete:
		return fmt.Sprintf("deleted %s", e.Path)
	default:
		return fmt.Sprintf("updated %s", e.Path)
	}
}

func (m *Model[T]) editing() bool {
	_, active := m.state.ActivePath()
	_, pending := m.state.NewPath()
	return active || pending
}

// activeLabel returns the formatted item of the active node.
func (m *Model[T]) activeLabel() (string, bool) {
	p, ok := m.state.ActivePath()
	if !ok {
		return "", false
	}
	sub, found := sapling.Find(p, m.state.Tree())
	if !found {
		return "", false
	}
	item, has := sub.Item()
	if !has {
		return "", false
	}
	return m.codec.Format(item), true
}

// syncInput reloads the label input when the selection moves or the tree
// changed.
func (m *Model[T]) syncInput(force bool) tea.Cmd {
	key := ""
	if p, ok := m.state.ActivePath(); ok {
		key = "a" + p.String()
	} else if p, ok := m.state.NewPath(); ok {
		key = "n" + p.String()
	}
	if key == m.inputKey && !force {
		return nil
	}
	m.inputKey = key
	label, _ := m.activeLabel()
	m.input.SetValue(label)
	m.input.CursorEnd()
	if key == "" {
		m.input.Blur()
		return nil
	}
	return m.input.Focus()
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		if m.state.Drag().Active() {
			return m.Dispatch(sapling.CancelDrag{})
		}
		return m.Dispatch(sapling.Deactivate{})
	case "enter":
		return m.commitInput()
	case "ctrl+x":
		return m.Dispatch(sapling.DeleteActive{})
	case "ctrl+y":
		m.copyActive()
		return nil
	}

	if m.editing() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		m.offY = max(m.offY-1, 0)
	case "down", "j":
		m.offY++
	case "left", "h":
		m.offX = max(m.offX-1, 0)
	case "right", "l":
		m.offX++
	}
	return nil
}

// commitInput parses the input and sends it as the pending new item or the
// active item.
func (m *Model[T]) commitInput() tea.Cmd {
	if !m.editing() {
		return nil
	}
	item, err := m.codec.Parse(m.input.Value())
	if err != nil {
		m.status = "invalid label: " + err.Error()
		log.Warn("label rejected", "text", m.input.Value(), "error", err)
		return nil
	}
	if _, ok := m.state.NewPath(); ok {
		return m.Dispatch(sapling.SetNewItem[T]{Item: item})
	}
	return m.Dispatch(sapling.SetActiveItem[T]{Item: item})
}

func (m *Model[T]) copyActive() {
	label, ok := m.activeLabel()
	if !ok {
		m.status = "nothing to copy"
		return
	}
	if err := m.writeClip(label); err != nil {
		m.status = "copy failed: " + err.Error()
		log.Warn("clipboard write failed", "error", err)
		return
	}
	m.status = "copied " + label
}

// toWorld maps a terminal cell to layout coordinates, aiming at the cell's
// middle. It is false for cells outside the tree area.
func (m *Model[T]) toWorld(x, y int) (float64, float64, bool) {
	row := y - headerRows
	inside := row >= 0 && row < m.canvasRows() && x >= 0 && x < m.width
	return float64(x+m.offX) + 0.5, float64(row+m.offY) + 0.5, inside
}

func (m *Model[T]) canvasRows() int {
	return max(m.height-headerRows-footerRows, 0)
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.offY = max(m.offY-1, 0)
		return nil
	case tea.MouseButtonWheelDown:
		m.offY++
		return nil
	}

	wx, wy, inside := m.toWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return nil
		}
		m.pressed = true
		m.throttle.Reset()
		if hit, ok := m.frame().HitTest(wx, wy); ok {
			return m.Dispatch(sapling.MouseDown{Placeholder: hit.Placeholder, Path: hit.Path, X: wx, Y: wy})
		}
		return m.Dispatch(sapling.Deactivate{})

	case tea.MouseActionMotion:
		if !m.pressed || !m.throttle.Allow(m.now()) {
			return nil
		}
		return m.Dispatch(sapling.MouseMove{X: wx, Y: wy})

	case tea.MouseActionRelease:
		if !m.pressed {
			return nil
		}
		m.pressed = false
		return m.Dispatch(sapling.MouseUp{X: wx, Y: wy})
	}
	return nil
}

// frame renders the current state with cell visuals.
func (m *Model[T]) frame() sapling.Frame[cellBox] {
	return sapling.Render(m.state, m.renderItem, m.renderPlaceholder)
}

func (m *Model[T]) renderItem(item T, ctx sapling.RenderContext) cellBox {
	b := cellBox{label: m.codec.Format(item), style: styleNode, border: solidBorder}
	switch {
	case ctx.IsDragged:
		b.style = styleDragged
	case ctx.IsDropTarget:
		b.style, b.border = styleDropTarget, heavyBorder
	case ctx.IsActive:
		b.style, b.border = styleActive, heavyBorder
		b.label = m.input.Value()
	}
	return b
}

func (m *Model[T]) renderPlaceholder(ctx sapling.RenderContext) cellBox {
	b := cellBox{label: "+", style: stylePlaceholder, border: dashedBorder}
	switch {
	case ctx.IsDropTarget:
		b.style = styleDropTarget
	case ctx.IsNew:
		b.style = styleNew
		if v := m.input.Value(); v != "" {
			b.label = v
		}
	}
	return b
}

// View implements tea.Model.
func (m *Model[T]) View() string {
	width := max(m.width, 1)
	header := m.styles.Status.Render(truncate.StringWithTail("sapling · "+m.status, uint(max(width-2, 1)), "…"))
	body := m.drawTree(width, m.canvasRows())

	footer := m.styles.Help.Render(truncate.StringWithTail(helpText, uint(width), "…"))
	if m.editing() {
		footer = m.input.View() + "\n" + footer
	} else {
		footer = "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// drawTree paints connectors, then boxes in painter order.
func (m *Model[T]) drawTree(w, h int) string {
	g := newGrid(w, h)
	f := m.frame()
	cfg := m.state.Config()
	halfH := cfg.NodeHeight / 2

	for _, c := range f.Connectors {
		px := int(math.Floor(c.From.X)) - m.offX
		cx := int(math.Floor(c.To.X)) - m.offX
		parentBottom := int(math.Round(c.From.Y-halfH)) + int(math.Round(cfg.NodeHeight)) - 1 - m.offY
		childTop := int(math.Round(c.To.Y-halfH)) - m.offY
		g.connector(px, parentBottom, cx, childTop)
	}
	g.resolveLines()

	for _, n := range f.Nodes {
		x, y, bw, bh := cellRect(n.Bounds, m.offX, m.offY)
		g.box(x, y, bw, bh, n.Visual.label, n.Visual.border, n.Visual.style)
	}
	// The dragged box is painted last; the drop target's border stays on
	// top so it shows even under the pointer.
	for _, n := range f.Nodes {
		if n.Context.IsDropTarget {
			x, y, bw, bh := cellRect(n.Bounds, m.offX, m.offY)
			g.outline(x, y, bw, bh, n.Visual.border, n.Visual.style)
		}
	}
	return g.String(m.styles.paint)
}

// Run starts a full-screen program with mouse support and returns the tree
// as it was when the user quit.
func Run[T any](m *Model[T]) (sapling.Tree[T], error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return m.Tree(), fmt.Errorf("term: run: %w", err)
	}
	return m.Tree(), nil
}
