package focus

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ztolley/combobox/internal/ui/input/keys"
	"github.com/ztolley/combobox/internal/ui/input/types"
)

// InputFocus handles keys while the text field is focused.
// Keys it does not consume are edits for the text field.
type InputFocus struct {
	keys keys.KeyMap
}

func NewInputFocus(km keys.KeyMap) *InputFocus {
	return &InputFocus{keys: km}
}

func (f *InputFocus) Name() string {
	return "input"
}

func (f *InputFocus) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, f.keys.Down):
		return []types.Action{types.ArrowDownAction{}}, true
	case key.Matches(msg, f.keys.Up):
		return []types.Action{types.ArrowUpAction{}}, true
	case key.Matches(msg, f.keys.Pick):
		return []types.Action{types.EnterAction{}}, true
	case key.Matches(msg, f.keys.Close):
		if ctx.IsOpen() {
			return []types.Action{types.EscapeAction{}}, true
		}
		// Esc on a closed list leaves the field, like clicking elsewhere
		return []types.Action{types.MoveFocusAction{To: types.FocusOutside}}, true
	case key.Matches(msg, f.keys.Clear):
		return []types.Action{types.ClearAction{}}, true
	}
	return nil, false
}
