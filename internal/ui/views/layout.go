package views

import (
	"github.com/ztolley/combobox/internal/ui/input/types"
)

// Rect is a cell-aligned box on screen
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the box
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) shift(dx, dy int) Rect {
	if r == (Rect{}) {
		return r
	}
	r.X += dx
	r.Y += dy
	return r
}

// Layout records where the interactive parts of a frame were drawn.
// Rows covers only the suggestion rows, one per line, top to bottom.
// Overlay is the whole drawn list including its border.
type Layout struct {
	Input   Rect
	Toggle  Rect
	Rows    Rect
	Overlay Rect
	Done    Rect
}

// Shift moves every region by (dx, dy)
func (l Layout) Shift(dx, dy int) Layout {
	return Layout{
		Input:   l.Input.shift(dx, dy),
		Toggle:  l.Toggle.shift(dx, dy),
		Rows:    l.Rows.shift(dx, dy),
		Overlay: l.Overlay.shift(dx, dy),
		Done:    l.Done.shift(dx, dy),
	}
}

// HitTest resolves (x, y) to a region. The overlay is drawn on top of
// everything else so it wins over whatever lies beneath it.
func (l Layout) HitTest(x, y int) types.Region {
	switch {
	case l.Rows.Contains(x, y):
		return types.Region{Kind: types.RegionSuggestion, Row: y - l.Rows.Y}
	case l.Overlay.Contains(x, y):
		return types.Region{Kind: types.RegionList}
	case l.Toggle.Contains(x, y):
		return types.Region{Kind: types.RegionToggle}
	case l.Input.Contains(x, y):
		return types.Region{Kind: types.RegionInput}
	case l.Done.Contains(x, y):
		return types.Region{Kind: types.RegionDone}
	default:
		return types.Region{Kind: types.RegionOutside}
	}
}
