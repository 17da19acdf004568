package focus

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ztolley/combobox/internal/ui/input/keys"
	"github.com/ztolley/combobox/internal/ui/input/types"
)

// OutsideFocus handles keys while focus is on the result panel.
// Finish there ends the program and reports the selection.
type OutsideFocus struct {
	keys keys.KeyMap
}

func NewOutsideFocus(km keys.KeyMap) *OutsideFocus {
	return &OutsideFocus{keys: km}
}

func (f *OutsideFocus) Name() string {
	return "outside"
}

func (f *OutsideFocus) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, f.keys.Finish):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, f.keys.Clear):
		return []types.Action{types.ClearAction{}}, true
	}
	return nil, true
}
