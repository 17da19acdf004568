package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ztolley/combobox/internal/domain"
)

// Focus identifies which control owns keyboard focus
type Focus int

const (
	FocusInput Focus = iota
	FocusToggle
	FocusOutside
)

func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusToggle:
		return "toggle"
	default:
		return "outside"
	}
}

// Action represents an interaction event the selector should apply
type Action interface {
	Type() string
}

// Context provides read-only access to selector state needed for input handling
type Context interface {
	IsOpen() bool
	SearchText() string
	Suggestions() []domain.Candidate
	// SuggestionAt maps a row of the rendered overlay to a candidate
	SuggestionAt(row int) (domain.Candidate, bool)
}

// FocusHandler handles keys for the control that currently owns focus
type FocusHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the control name for display
	Name() string
}

// RegionKind names an area of the rendered selector
type RegionKind int

const (
	RegionOutside RegionKind = iota
	RegionInput
	RegionToggle
	RegionSuggestion
	RegionDone
	RegionList // overlay frame, scroll indicator or empty-list message
)

// Region is the result of hit-testing a screen position
type Region struct {
	Kind RegionKind
	Row  int // overlay row for RegionSuggestion
}

// HitTester maps screen cells to regions of the last rendered frame
type HitTester interface {
	HitTest(x, y int) Region
}
