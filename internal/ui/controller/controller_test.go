package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ztolley/combobox/internal/domain"
	"github.com/ztolley/combobox/internal/ui/input/types"
)

func TestControllerInitialState(t *testing.T) {
	c := New(testCatalog(), Options{})

	s := c.State()
	assert.False(t, s.IsOpen)
	assert.Empty(t, s.SearchText)
	assert.Nil(t, s.Hovered)
	assert.Nil(t, s.Selected)
	assert.Equal(t, testCatalog().All(), c.Filtered())
}

func TestControllerDispatchReportsTransitions(t *testing.T) {
	c := New(testCatalog(), Options{})

	r := c.Dispatch(types.TextChangedAction{Text: "ba"})
	assert.True(t, r.Opened())
	assert.False(t, r.SelectionChanged())
	assert.Equal(t, []domain.Candidate{barney}, c.Filtered())

	c.Dispatch(types.ArrowDownAction{})
	r = c.Dispatch(types.EnterAction{})
	assert.True(t, r.Closed())
	assert.True(t, r.SelectionChanged())
	assert.Equal(t, "Barney", c.State().SearchText)

	r = c.Dispatch(types.PickAction{Candidate: barney})
	assert.False(t, r.SelectionChanged(), "re-picking the same candidate is not a change")

	r = c.Dispatch(types.ClearAction{})
	assert.True(t, r.SelectionChanged())
	assert.Nil(t, r.Next.Selected)
	require.NotNil(t, r.Prev.Selected)
	assert.Equal(t, barney, *r.Prev.Selected)
}

func TestControllerFilteredIsRecomputed(t *testing.T) {
	c := New(testCatalog(), Options{})

	c.Dispatch(types.TextChangedAction{Text: "w"})
	assert.Equal(t, []domain.Candidate{wilma}, c.Filtered())

	c.Dispatch(types.TextChangedAction{Text: "r"})
	assert.Equal(t, []domain.Candidate{fred, barney}, c.Filtered())

	c.Dispatch(types.PickAction{Candidate: fred})
	assert.Len(t, c.Filtered(), 3, "a committed selection shows the whole catalog")
}

func TestControllerToggleEffect(t *testing.T) {
	c := New(testCatalog(), Options{})

	r := c.Dispatch(types.ToggleAction{})
	assert.True(t, r.Effect.Has(EffectRefocusInput))

	r = c.Dispatch(types.ToggleAction{})
	assert.False(t, r.Effect.Has(EffectRefocusInput))
}

func TestNewWithSelection(t *testing.T) {
	c, err := NewWithSelection(testCatalog(), Options{}, 3)
	require.NoError(t, err)
	assert.Equal(t, "Wilma", c.State().SearchText)
	assert.Equal(t, wilma, *c.State().Selected)
	assert.False(t, c.State().IsOpen)

	_, err = NewWithSelection(testCatalog(), Options{}, 42)
	assert.Error(t, err)
}

func TestControllerResize(t *testing.T) {
	c := New(testCatalog(), Options{})
	assert.Equal(t, Geometry{}, c.Geometry())

	assert.True(t, c.Resize(40, 3))
	assert.False(t, c.Resize(40, 3), "same box is not a change")
	assert.True(t, c.Resize(60, 3))
	assert.Equal(t, Geometry{Width: 60, Height: 3}, c.Geometry())
}
