// Package controller owns the selector's interaction state. All transitions go
// through Dispatch, which runs the pure Reduce function and reports what changed.
package controller

import (
	"fmt"

	"github.com/ztolley/combobox/internal/domain"
	"github.com/ztolley/combobox/internal/ui/input/types"
	"github.com/ztolley/combobox/internal/ui/state"
)

// Geometry is the rendered size of the selector container. The suggestion
// overlay is as wide as the container and starts Height rows below its top.
type Geometry struct {
	Width  int
	Height int
}

// Result describes a single transition
type Result struct {
	Prev   state.InteractionState
	Next   state.InteractionState
	Effect Effect
}

// SelectionChanged reports whether the committed candidate changed
func (r Result) SelectionChanged() bool {
	switch {
	case r.Prev.Selected == nil && r.Next.Selected == nil:
		return false
	case r.Prev.Selected == nil || r.Next.Selected == nil:
		return true
	default:
		return *r.Prev.Selected != *r.Next.Selected
	}
}

// Opened reports whether the list went from hidden to visible
func (r Result) Opened() bool {
	return !r.Prev.IsOpen && r.Next.IsOpen
}

// Closed reports whether the list went from visible to hidden
func (r Result) Closed() bool {
	return r.Prev.IsOpen && !r.Next.IsOpen
}

// Controller is the single authority over interaction state.
// It is not safe for concurrent use; events must be dispatched in order from one goroutine.
type Controller struct {
	catalog  *domain.Catalog
	opts     Options
	state    state.InteractionState
	geometry Geometry
}

// New creates a controller in the initial closed, empty state
func New(catalog *domain.Catalog, opts Options) *Controller {
	return &Controller{
		catalog: catalog,
		opts:    opts,
		state:   state.NewInteractionState(),
	}
}

// NewWithSelection creates a controller with the candidate id already committed
func NewWithSelection(catalog *domain.Catalog, opts Options, id int) (*Controller, error) {
	c, ok := catalog.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("default candidate %d not in catalog", id)
	}
	ctrl := New(catalog, opts)
	ctrl.state = state.NewInteractionStateWithSelection(c)
	return ctrl, nil
}

// Dispatch applies an action and returns the transition
func (c *Controller) Dispatch(action types.Action) Result {
	prev := c.state
	next, effect := Reduce(c.catalog, c.opts, prev, action)
	c.state = next
	return Result{Prev: prev, Next: next, Effect: effect}
}

// State returns the current snapshot
func (c *Controller) State() state.InteractionState {
	return c.state
}

// Filtered returns the candidates visible for the current state
func (c *Controller) Filtered() []domain.Candidate {
	return FilterState(c.catalog, c.opts, c.state)
}

// Resize records the measured container box and reports whether it changed
func (c *Controller) Resize(width, height int) bool {
	g := Geometry{Width: width, Height: height}
	if g == c.geometry {
		return false
	}
	c.geometry = g
	return true
}

// Geometry returns the last measured container box
func (c *Controller) Geometry() Geometry {
	return c.geometry
}
