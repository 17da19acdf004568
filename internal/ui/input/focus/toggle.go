package focus

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ztolley/combobox/internal/ui/input/keys"
	"github.com/ztolley/combobox/internal/ui/input/types"
)

// ToggleFocus handles keys while the ▾ button is focused
type ToggleFocus struct {
	keys keys.KeyMap
}

func NewToggleFocus(km keys.KeyMap) *ToggleFocus {
	return &ToggleFocus{keys: km}
}

func (f *ToggleFocus) Name() string {
	return "toggle"
}

func (f *ToggleFocus) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, f.keys.Toggle):
		return []types.Action{types.ToggleAction{}}, true
	case key.Matches(msg, f.keys.Down):
		if !ctx.IsOpen() {
			return []types.Action{types.ToggleAction{}}, true
		}
		return nil, true
	case key.Matches(msg, f.keys.Close):
		if ctx.IsOpen() {
			return []types.Action{types.EscapeAction{}}, true
		}
		return nil, true
	case key.Matches(msg, f.keys.Clear):
		return []types.Action{types.ClearAction{}}, true
	}
	return nil, false
}
