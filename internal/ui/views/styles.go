package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Main          lipgloss.Style
	Container     lipgloss.Style
	ContainerIdle lipgloss.Style
	Toggle        lipgloss.Style
	ToggleFocused lipgloss.Style
	Overlay       lipgloss.Style
	Row           lipgloss.Style
	RowHovered    lipgloss.Style
	RowSelected   lipgloss.Style
	Scroll        lipgloss.Style
	Dim           lipgloss.Style
	Result        lipgloss.Style
	ResultValue   lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		ContainerIdle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Toggle:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ToggleFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Reverse(true),
		// no top border: rows start right under the container
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, true, true).
			BorderForeground(lipgloss.Color("241")),
		Row:         lipgloss.NewStyle(),
		RowHovered:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		RowSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Result:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ResultValue: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
