package controller

import (
	"unicode/utf8"

	"github.com/ztolley/combobox/internal/domain"
	"github.com/ztolley/combobox/internal/ui/input/types"
	"github.com/ztolley/combobox/internal/ui/logic"
	"github.com/ztolley/combobox/internal/ui/state"
)

// Effect is a one-shot side effect requested from the presentation layer
type Effect uint8

const (
	// EffectRefocusInput asks the presentation layer to move focus back to the text field
	EffectRefocusInput Effect = 1 << iota
)

// Has reports whether e includes f
func (e Effect) Has(f Effect) bool {
	return e&f != 0
}

// Options configures filtering
type Options struct {
	Filter logic.FilterOptions
}

// FilterState computes the candidates visible for s. It is never cached.
func FilterState(catalog *domain.Catalog, opts Options, s state.InteractionState) []domain.Candidate {
	return logic.Filter(catalog, logic.Query{
		Text:         s.SearchText,
		HasSelection: s.HasSelection(),
		Edited:       s.Edited,
	}, opts.Filter)
}

// Reduce applies action to s and returns the next state. It is pure: the
// catalog and s are not modified. Actions that reference candidates outside
// the current filtered list are ignored.
func Reduce(catalog *domain.Catalog, opts Options, s state.InteractionState, action types.Action) (state.InteractionState, Effect) {
	var effect Effect
	next := s

	switch a := action.(type) {
	case types.TextChangedAction:
		next.SearchText = a.Text
		next.Edited = next.HasSelection() && a.Text != next.Selected.Label
		// Open on any change of length, typing or deleting
		if utf8.RuneCountInString(a.Text) != utf8.RuneCountInString(s.SearchText) {
			next.IsOpen = true
		}

	case types.FocusAction:
		next.IsOpen = true

	case types.BlurAction:
		if a.ToToggle {
			return s, 0
		}
		next = next.Closed()
		if !next.HasSelection() {
			next.SearchText = ""
			next.Edited = false
		}

	case types.ToggleAction:
		if s.IsOpen {
			next = next.Closed()
		} else {
			next.IsOpen = true
			effect |= EffectRefocusInput
		}

	case types.ArrowDownAction:
		next = step(catalog, opts, s, logic.Down)

	case types.ArrowUpAction:
		next = step(catalog, opts, s, logic.Up)

	case types.EnterAction:
		if !s.IsOpen || !s.HasHover() {
			return s, 0
		}
		return Reduce(catalog, opts, s, types.PickAction{Candidate: *s.Hovered})

	case types.PickAction:
		list := FilterState(catalog, opts, s)
		idx := logic.IndexOf(list, a.Candidate)
		if idx < 0 {
			return s, 0
		}
		next = next.Committed(list[idx])

	case types.ClearAction:
		next = state.NewInteractionState()

	case types.HoverAction:
		if !s.IsOpen {
			return s, 0
		}
		list := FilterState(catalog, opts, s)
		idx := logic.IndexOf(list, a.Candidate)
		if idx < 0 {
			return s, 0
		}
		next = next.WithHover(list[idx])

	case types.EscapeAction:
		next = next.Closed()

	default:
		return s, 0
	}

	return normalizeHover(catalog, opts, next), effect
}

func step(catalog *domain.Catalog, opts Options, s state.InteractionState, dir logic.Direction) state.InteractionState {
	if !s.IsOpen {
		return s
	}
	c, ok := logic.Step(FilterState(catalog, opts, s), s.Hovered, dir)
	if !ok {
		return s.WithoutHover()
	}
	return s.WithHover(c)
}

// normalizeHover drops a hover that is no longer visible
func normalizeHover(catalog *domain.Catalog, opts Options, s state.InteractionState) state.InteractionState {
	if !s.HasHover() {
		return s
	}
	if !s.IsOpen || !logic.Contains(FilterState(catalog, opts, s), *s.Hovered) {
		return s.WithoutHover()
	}
	return s
}
