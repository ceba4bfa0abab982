package term

import "github.com/charmbracelet/lipgloss"

// cellStyle tags each grid cell with the style it is painted in.
type cellStyle uint8

const (
	styleNone cellStyle = iota
	styleConnector
	styleNode
	styleActive
	styleNew
	stylePlaceholder
	styleDropTarget
	styleDragged
)

// Styles holds the lipgloss styles for each kind of cell and for the
// status and help lines.
type Styles struct {
	Connector   lipgloss.Style
	Node        lipgloss.Style
	Active      lipgloss.Style
	New         lipgloss.Style
	Placeholder lipgloss.Style
	DropTarget  lipgloss.Style
	Dragged     lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the 256-color theme.
func DefaultStyles() Styles {
	return Styles{
		Connector:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Node:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Active:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		New:         lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		DropTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Dragged:     lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s Styles) of(st cellStyle) (lipgloss.Style, bool) {
	switch st {
	case styleConnector:
		return s.Connector, true
	case styleNode:
		return s.Node, true
	case styleActive:
		return s.Active, true
	case styleNew:
		return s.New, true
	case stylePlaceholder:
		return s.Placeholder, true
	case styleDropTarget:
		return s.DropTarget, true
	case styleDragged:
		return s.Dragged, true
	default:
		return lipgloss.Style{}, false
	}
}

// paint renders s in the style for st.
func (s Styles) paint(st cellStyle, text string) string {
	if style, ok := s.of(st); ok {
		return style.Render(text)
	}
	return text
}
