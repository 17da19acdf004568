package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/ztolley/combobox/internal/config"
	"github.com/ztolley/combobox/internal/domain"
	"github.com/ztolley/combobox/internal/ui/controller"
	"github.com/ztolley/combobox/internal/ui/input/types"
	"github.com/ztolley/combobox/internal/ui/logic"
	"github.com/ztolley/combobox/internal/ui/state"
	"github.com/ztolley/combobox/internal/ui/views"
)

// rows the frame needs besides the overlay: padding, title, container, result panel
const chromeRows = 9

// ViewModel transforms controller state into view-ready data.
// It owns the scroll window of the overlay, which is pure presentation.
type ViewModel struct {
	config    *config.Config
	width     int
	height    int
	help      help.Model
	keys      help.KeyMap
	offset    int
	window    []domain.Candidate
	total     int
	status    string
	statusErr bool
}

// NewViewModel creates a new view model
func NewViewModel(cfg *config.Config, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		config: cfg,
		help:   help.New(),
		keys:   keys,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetStatus sets the status line, isErr switches to the error style
func (vm *ViewModel) SetStatus(msg string, isErr bool) {
	vm.status = msg
	vm.statusErr = isErr
}

// MaxRows returns how many suggestion rows fit on screen
func (vm *ViewModel) MaxRows() int {
	limit := vm.config.UISettings.MaxSuggestions
	if vm.height > 0 {
		fit := vm.height - chromeRows
		if fit < 1 {
			fit = 1
		}
		if limit <= 0 || fit < limit {
			limit = fit
		}
	}
	return limit
}

// Sync recomputes the visible window so the hovered candidate stays on screen
func (vm *ViewModel) Sync(s state.InteractionState, filtered []domain.Candidate) {
	vm.total = len(filtered)
	if !s.IsOpen {
		vm.offset = 0
		vm.window = nil
		return
	}

	hovered := -1
	if s.Hovered != nil {
		hovered = logic.IndexOf(filtered, *s.Hovered)
	}

	limit := vm.MaxRows()
	vm.offset = ScrollOffset(len(filtered), limit, vm.offset, hovered)
	end := len(filtered)
	if limit > 0 && vm.offset+limit < end {
		end = vm.offset + limit
	}
	vm.window = filtered[vm.offset:end]
}

// SuggestionAt returns the candidate drawn on overlay row
func (vm *ViewModel) SuggestionAt(row int) (domain.Candidate, bool) {
	if row < 0 || row >= len(vm.window) {
		return domain.Candidate{}, false
	}
	return vm.window[row], true
}

// Visible returns the candidates currently drawn in the overlay
func (vm *ViewModel) Visible() []domain.Candidate {
	return vm.window
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(s state.InteractionState, g controller.Geometry, input string, focus types.Focus) views.ViewState {
	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Input:         input,
		Focus:         focus,
		IsOpen:        s.IsOpen,
		Suggestions:   vm.window,
		Offset:        vm.offset,
		Total:         vm.total,
		Hovered:       s.Hovered,
		Selected:      s.Selected,
		OverlayWidth:  g.Width,
		OverlayTop:    g.Height,
		StatusMessage: vm.status,
		StatusIsError: vm.statusErr,
		ShowHelp:      vm.config.UISettings.ShowHelp,
		HelpModel:     vm.help,
		KeyMap:        vm.keys,
	}
}

// ScrollOffset returns the first visible index of a list of total items shown
// limit at a time, moved as little as possible from offset to keep hovered in view.
// A hovered value of -1 means nothing is highlighted.
func ScrollOffset(total, limit, offset, hovered int) int {
	if limit <= 0 || total <= limit {
		return 0
	}
	if hovered >= 0 {
		if hovered < offset {
			offset = hovered
		} else if hovered >= offset+limit {
			offset = hovered - limit + 1
		}
	}
	if offset > total-limit {
		offset = total - limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
