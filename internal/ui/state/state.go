package state

import (
	"github.com/ztolley/combobox/internal/domain"
)

// InteractionState is a snapshot of everything the selector tracks about user interaction.
// Snapshots are values; transitions return a new one instead of mutating in place.
type InteractionState struct {
	SearchText string            // current text in the input field
	IsOpen     bool              // whether the suggestion list is visible
	Hovered    *domain.Candidate // highlighted candidate, nil for none
	Selected   *domain.Candidate // last committed choice, nil for none

	// Edited is set while the text differs from the committed label
	Edited bool
}

// NewInteractionState returns the initial closed, empty state
func NewInteractionState() InteractionState {
	return InteractionState{}
}

// NewInteractionStateWithSelection returns a closed state with c already committed
func NewInteractionStateWithSelection(c domain.Candidate) InteractionState {
	return InteractionState{
		SearchText: c.Label,
		Selected:   &c,
	}
}

// HasSelection reports whether a candidate is committed
func (s InteractionState) HasSelection() bool {
	return s.Selected != nil
}

// HasHover reports whether a candidate is highlighted
func (s InteractionState) HasHover() bool {
	return s.Hovered != nil
}

// WithHover returns a copy highlighting c
func (s InteractionState) WithHover(c domain.Candidate) InteractionState {
	s.Hovered = &c
	return s
}

// WithoutHover returns a copy with no highlight
func (s InteractionState) WithoutHover() InteractionState {
	s.Hovered = nil
	return s
}

// Closed returns a copy with the list hidden. Hover only exists while open.
func (s InteractionState) Closed() InteractionState {
	s.IsOpen = false
	s.Hovered = nil
	return s
}

// Committed returns a copy with c selected and shown in the input
func (s InteractionState) Committed(c domain.Candidate) InteractionState {
	s.Selected = &c
	s.SearchText = c.Label
	s.Edited = false
	return s.Closed()
}
