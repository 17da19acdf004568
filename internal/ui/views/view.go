package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/ztolley/combobox/internal/domain"
	"github.com/ztolley/combobox/internal/ui/input/types"
)

const (
	toggleClosed = " ▾ "
	toggleOpen   = " ▴ "
	doneButton   = "[ Done ]"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string

	Input string // rendered text input
	Focus types.Focus

	IsOpen      bool
	Suggestions []domain.Candidate // visible window of the filtered list
	Offset      int                // index of Suggestions[0] in the filtered list
	Total       int                // length of the filtered list
	Hovered     *domain.Candidate
	Selected    *domain.Candidate

	// measured container box, zero until the first measurement
	OverlayWidth int
	OverlayTop   int

	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering.
// It remembers where the last frame put each interactive region so mouse
// coordinates can be mapped back to targets.
type Renderer struct {
	styles  *Styles
	overlay *OverlayRenderer
	layout  Layout
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		overlay: NewOverlayRenderer(styles),
	}
}

// RenderContainer draws the bordered input row with its toggle button
func (r *Renderer) RenderContainer(state ViewState) string {
	style := r.styles.ContainerIdle
	if state.Focus == types.FocusInput || state.Focus == types.FocusToggle {
		style = r.styles.Container
	}
	return style.Render(state.Input + " " + r.renderToggle(state))
}

// MeasureContainer returns the rendered width and height of the container
func (r *Renderer) MeasureContainer(state ViewState) (int, int) {
	box := r.RenderContainer(state)
	return lipgloss.Width(box), lipgloss.Height(box)
}

func (r *Renderer) renderToggle(state ViewState) string {
	glyph := toggleClosed
	if state.IsOpen {
		glyph = toggleOpen
	}
	if state.Focus == types.FocusToggle {
		return r.styles.ToggleFocused.Render(glyph)
	}
	return r.styles.Toggle.Render(glyph)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	title := state.Title
	if title == "" {
		title = "combobox"
	}
	titleBlock := r.styles.Title.Render(title)
	container := r.RenderContainer(state)

	body := &strings.Builder{}
	body.WriteString(titleBlock)
	body.WriteString("\n")
	body.WriteString(container)
	body.WriteString("\n")

	below := r.renderBelow(state)
	body.WriteString(below)

	containerTop := lipgloss.Height(titleBlock)
	containerW, containerH := lipgloss.Width(container), lipgloss.Height(container)
	inputW := lipgloss.Width(state.Input)
	toggleW := lipgloss.Width(r.renderToggle(state))

	layout := Layout{
		Input:  Rect{X: 0, Y: containerTop, W: containerW, H: containerH},
		Toggle: Rect{X: 1 + 1 + inputW + 1, Y: containerTop, W: toggleW, H: containerH}, // border, padding, input, space
	}

	// "Selected option" line, blank, then the Done button
	doneY := containerTop + containerH + 3
	layout.Done = Rect{X: 0, Y: doneY, W: lipgloss.Width(doneButton), H: 1}

	frame := body.String()
	if state.IsOpen {
		width, top := state.OverlayWidth, state.OverlayTop
		if width <= 0 {
			width = containerW
		}
		if top <= 0 {
			top = containerH
		}
		overlay := r.overlay.Render(state, width)
		frame = Place(frame, overlay, 0, containerTop+top)
		overlayW := lipgloss.Width(overlay)
		layout.Rows = Rect{X: 0, Y: containerTop + top, W: overlayW, H: len(state.Suggestions)}
		layout.Overlay = Rect{X: 0, Y: containerTop + top, W: overlayW, H: lipgloss.Height(overlay)}
	}

	out := r.styles.Main.Render(frame)

	top, _, _, left := r.styles.Main.GetPadding()
	r.layout = layout.Shift(left, top)
	return out
}

func (r *Renderer) renderBelow(state ViewState) string {
	lines := []string{""}

	label := r.styles.Dim.Render("none")
	if state.Selected != nil {
		label = r.styles.ResultValue.Render(state.Selected.Label)
	}
	lines = append(lines, r.styles.Result.Render("Selected option: ")+label, "")

	if state.Focus == types.FocusOutside {
		lines = append(lines, r.styles.ButtonFocused.Render(doneButton))
	} else {
		lines = append(lines, r.styles.Button.Render(doneButton))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, "", style.Render(state.StatusMessage))
	}

	if state.ShowHelp && state.KeyMap != nil {
		lines = append(lines, "", r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	return strings.Join(lines, "\n")
}

// Layout returns the regions recorded by the last Render
func (r *Renderer) Layout() Layout {
	return r.layout
}

// HitTest maps a terminal cell to the region drawn there by the last Render
func (r *Renderer) HitTest(x, y int) types.Region {
	return r.layout.HitTest(x, y)
}
