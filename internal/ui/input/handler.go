package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ztolley/combobox/internal/ui/input/focus"
	"github.com/ztolley/combobox/internal/ui/input/keys"
	"github.com/ztolley/combobox/internal/ui/input/types"
)

// focusOrder is the tab order of the controls
var focusOrder = []types.Focus{types.FocusInput, types.FocusToggle, types.FocusOutside}

// Handler turns terminal input into selector actions. It owns the text field
// and keyboard focus; the selector itself only sees focus and blur actions.
type Handler struct {
	focus     types.Focus
	keys      keys.KeyMap
	handlers  map[types.Focus]types.FocusHandler
	textInput *textinput.Model
}

// New creates a handler with the text field focused
func New(km keys.KeyMap, prompt, placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.Focus()

	h := &Handler{
		focus:     types.FocusInput,
		keys:      km,
		textInput: &ti,
		handlers:  make(map[types.Focus]types.FocusHandler),
	}

	h.handlers[types.FocusInput] = focus.NewInputFocus(km)
	h.handlers[types.FocusToggle] = focus.NewToggleFocus(km)
	h.handlers[types.FocusOutside] = focus.NewOutsideFocus(km)

	return h
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// Focus returns the control that owns keyboard focus
func (h *Handler) Focus() types.Focus {
	if h == nil {
		return types.FocusInput
	}
	return h.focus
}

// KeyMap returns the bindings in use
func (h *Handler) KeyMap() keys.KeyMap {
	return h.keys
}

// TextInput returns the text field model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetWidth sets the visible width of the text field
func (h *Handler) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	h.textInput.Width = w
}

// SyncText makes the text field show text, e.g. after a pick or a clear
func (h *Handler) SyncText(text string) {
	if h.textInput.Value() == text {
		return
	}
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// MoveFocus moves keyboard focus and returns the resulting focus/blur actions.
// Leaving the text field reports whether focus went to the toggle.
func (h *Handler) MoveFocus(to types.Focus) ([]types.Action, tea.Cmd) {
	from := h.focus
	if from == to {
		return nil, nil
	}
	h.focus = to

	var actions []types.Action
	var cmd tea.Cmd
	if from == types.FocusInput {
		h.textInput.Blur()
		actions = append(actions, types.BlurAction{ToToggle: to == types.FocusToggle})
	}
	if to == types.FocusInput {
		cmd = h.textInput.Focus()
		actions = append(actions, types.FocusAction{})
	}
	return actions, cmd
}

// HandleKey processes a key message and returns the actions it produced
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, nil
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, nil
	case key.Matches(msg, h.keys.NextFocus):
		return h.MoveFocus(h.neighbour(1))
	case key.Matches(msg, h.keys.PrevFocus):
		return h.MoveFocus(h.neighbour(-1))
	}

	handler := h.handlers[h.focus]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || h.focus != types.FocusInput {
		return h.expandFocusMoves(actions)
	}

	// Unconsumed keys in the text field are edits
	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.TextChangedAction{Text: after})
	}
	return actions, cmd
}

// HandleMouse processes a mouse message using the regions of the last frame
func (h *Handler) HandleMouse(msg tea.MouseMsg, hits types.HitTester, ctx types.Context) ([]types.Action, tea.Cmd) {
	region := hits.HitTest(msg.X, msg.Y)

	if msg.Action == tea.MouseActionMotion {
		if region.Kind == types.RegionSuggestion {
			if c, ok := ctx.SuggestionAt(region.Row); ok {
				return []types.Action{types.HoverAction{Candidate: c}}, nil
			}
		}
		return nil, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil, nil
	}

	switch region.Kind {
	case types.RegionInput:
		return h.MoveFocus(types.FocusInput)
	case types.RegionToggle:
		// Focus lands on the toggle before the click toggles the list
		actions, cmd := h.MoveFocus(types.FocusToggle)
		return append(actions, types.ToggleAction{}), cmd
	case types.RegionSuggestion:
		// Picking does not move focus, so the list is not closed by a blur first
		if c, ok := ctx.SuggestionAt(region.Row); ok {
			return []types.Action{types.PickAction{Candidate: c}}, nil
		}
		return nil, nil
	case types.RegionDone:
		actions, cmd := h.MoveFocus(types.FocusOutside)
		return append(actions, types.QuitAction{}), cmd
	case types.RegionList:
		return nil, nil
	default:
		return h.MoveFocus(types.FocusOutside)
	}
}

// Update handles non-keyboard messages for the text field (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) neighbour(delta int) types.Focus {
	for i, f := range focusOrder {
		if f == h.focus {
			n := len(focusOrder)
			return focusOrder[(i+delta+n)%n]
		}
	}
	return types.FocusInput
}

// expandFocusMoves replaces MoveFocusAction with the focus/blur actions it causes
func (h *Handler) expandFocusMoves(actions []types.Action) ([]types.Action, tea.Cmd) {
	var out []types.Action
	var cmds []tea.Cmd
	for _, a := range actions {
		if mv, ok := a.(types.MoveFocusAction); ok {
			moved, cmd := h.MoveFocus(mv.To)
			out = append(out, moved...)
			cmds = append(cmds, cmd)
			continue
		}
		out = append(out, a)
	}
	return out, tea.Batch(cmds...)
}
