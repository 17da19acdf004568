package types

import "github.com/ztolley/combobox/internal/domain"

// Selector actions

type TextChangedAction struct {
	Text string
}

func (a TextChangedAction) Type() string { return "text_changed" }

type FocusAction struct{}

func (a FocusAction) Type() string { return "focus" }

// BlurAction is sent when the input loses focus. ToToggle is true when focus
// moved to the toggle control, which must not close the list.
type BlurAction struct {
	ToToggle bool
}

func (a BlurAction) Type() string { return "blur" }

type ToggleAction struct{}

func (a ToggleAction) Type() string { return "toggle" }

type ArrowDownAction struct{}

func (a ArrowDownAction) Type() string { return "arrow_down" }

type ArrowUpAction struct{}

func (a ArrowUpAction) Type() string { return "arrow_up" }

type EnterAction struct{}

func (a EnterAction) Type() string { return "enter" }

type PickAction struct {
	Candidate domain.Candidate
}

func (a PickAction) Type() string { return "pick" }

type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// HoverAction highlights a candidate under the mouse pointer
type HoverAction struct {
	Candidate domain.Candidate
}

func (a HoverAction) Type() string { return "hover" }

// EscapeAction closes the list without touching text or selection
type EscapeAction struct{}

func (a EscapeAction) Type() string { return "escape" }

// Application actions, handled by the UI model rather than the selector

type MoveFocusAction struct {
	To Focus
}

func (a MoveFocusAction) Type() string { return "move_focus" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for a normal exit that reports the selection
}

func (a QuitAction) Type() string { return "quit" }
