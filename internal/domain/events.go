package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionCommitted EventType = "SelectionCommitted"
	EventSelectionCleared   EventType = "SelectionCleared"
	EventSuggestionsOpened  EventType = "SuggestionsOpened"
	EventSuggestionsClosed  EventType = "SuggestionsClosed"
	EventCatalogLoaded      EventType = "CatalogLoaded"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionCommittedEvent is emitted when a candidate becomes the selection
type SelectionCommittedEvent struct {
	Candidate Candidate
	Previous  *Candidate // nil if nothing was selected before
}

func (e SelectionCommittedEvent) Type() EventType { return EventSelectionCommitted }

// SelectionClearedEvent is emitted when the selection is removed
type SelectionClearedEvent struct {
	Previous Candidate
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// SuggestionsOpenedEvent is emitted when the suggestion list becomes visible
type SuggestionsOpenedEvent struct {
	SearchText string
	Count      int // number of visible suggestions
}

func (e SuggestionsOpenedEvent) Type() EventType { return EventSuggestionsOpened }

// SuggestionsClosedEvent is emitted when the suggestion list is hidden
type SuggestionsClosedEvent struct{}

func (e SuggestionsClosedEvent) Type() EventType { return EventSuggestionsClosed }

// CatalogLoadedEvent is emitted after the candidate catalog was read
type CatalogLoadedEvent struct {
	Source string // file path, or "builtin"
	Count  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
