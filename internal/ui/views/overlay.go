package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/ztolley/combobox/internal/domain"
)

const minOverlayWidth = 6

// OverlayRenderer draws the suggestion list that floats under the container
type OverlayRenderer struct {
	styles *Styles
}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer(styles *Styles) *OverlayRenderer {
	return &OverlayRenderer{
		styles: styles,
	}
}

// Render draws the visible window of suggestions in a box exactly width cells wide.
// Row i of the result (after the box's missing top border) shows state.Suggestions[i].
func (o *OverlayRenderer) Render(state ViewState, width int) string {
	if width < minOverlayWidth {
		width = minOverlayWidth
	}
	inner := width - 2 // left and right border

	var rows []string
	for _, c := range state.Suggestions {
		rows = append(rows, o.renderRow(c, state, inner))
	}

	if len(state.Suggestions) == 0 {
		rows = append(rows, o.styles.Dim.Width(inner).Render(fit("No matches", inner)))
	}

	if more := state.Total - state.Offset - len(state.Suggestions); state.Offset > 0 || more > 0 {
		indicator := fmt.Sprintf("%d-%d of %d", state.Offset+1, state.Offset+len(state.Suggestions), state.Total)
		rows = append(rows, o.styles.Scroll.Width(inner).Render(fit(indicator, inner)))
	}

	return o.styles.Overlay.Width(inner).Render(strings.Join(rows, "\n"))
}

func (o *OverlayRenderer) renderRow(c domain.Candidate, state ViewState, inner int) string {
	marker := "  "
	if state.Selected != nil && state.Selected.ID == c.ID {
		marker = "✓ "
	}
	text := fit(marker+c.Label, inner)

	switch {
	case state.Hovered != nil && state.Hovered.ID == c.ID:
		return o.styles.RowHovered.Width(inner).Render(text)
	case marker != "  ":
		return o.styles.RowSelected.Width(inner).Render(text)
	default:
		return o.styles.Row.Width(inner).Render(text)
	}
}

// fit truncates s to at most width cells
func fit(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Place paints overlay on top of base, starting at row top and column left.
// Lines of base outside the overlay's box are left intact; base is extended
// with blank lines when the overlay reaches past its end.
func Place(base, overlay string, left, top int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(overlay, "\n")

	for len(baseLines) < top+len(overLines) {
		baseLines = append(baseLines, "")
	}

	for i, ol := range overLines {
		row := top + i
		line := baseLines[row]
		w := lipgloss.Width(ol)

		head := ansi.Truncate(line, left, "")
		if pad := left - ansi.StringWidth(head); pad > 0 {
			head += strings.Repeat(" ", pad)
		}
		tail := ansi.TruncateLeft(line, left+w, "")
		baseLines[row] = head + ol + tail
	}

	return strings.Join(baseLines, "\n")
}
