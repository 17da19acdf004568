package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ztolley/combobox/internal/config"
	"github.com/ztolley/combobox/internal/domain"
	"github.com/ztolley/combobox/internal/eventbus"
	"github.com/ztolley/combobox/internal/ui/controller"
	"github.com/ztolley/combobox/internal/ui/input"
	"github.com/ztolley/combobox/internal/ui/input/keys"
	inputtypes "github.com/ztolley/combobox/internal/ui/input/types"
	"github.com/ztolley/combobox/internal/ui/viewmodels"
	"github.com/ztolley/combobox/internal/ui/views"
)

// cells around the text field: main padding, container border and padding, gap, toggle
const inputChrome = 4 + 4 + 1 + 3

// Model hosts the selector controller in a Bubble Tea program
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	ctrl   *controller.Controller

	width       int
	height      int
	inPagerMode bool
	quitting    bool
	aborted     bool

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRender   *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around ctrl
func NewModel(bus eventbus.EventBus, cfg *config.Config, ctrl *controller.Controller) *Model {
	handler := input.New(keys.Default(), cfg.UISettings.Prompt, cfg.UISettings.Placeholder)

	m := &Model{
		bus:          bus,
		config:       cfg,
		ctrl:         ctrl,
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(cfg, handler.KeyMap()),
		inputHandler: handler,
		helpRender:   NewHelpRenderer(handler.KeyMap()),
		helpOps:      NewHelpOps(nil),
	}

	m.inputHandler.SyncText(ctrl.State().SearchText)
	if cfg.UISettings.Width > 0 {
		m.inputHandler.SetWidth(cfg.UISettings.Width)
	}
	m.relayout()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Selected returns the committed candidate once the program has finished.
// Nothing is reported when the user aborted with the quit key.
func (m *Model) Selected() (domain.Candidate, bool) {
	s := m.ctrl.State()
	if m.aborted || s.Selected == nil {
		return domain.Candidate{}, false
	}
	return *s.Selected, true
}

// Aborted reports whether the program was left with the quit key
func (m *Model) Aborted() bool {
	return m.aborted
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		if m.config.UISettings.Width <= 0 {
			m.inputHandler.SetWidth(msg.Width - inputChrome - lipgloss.Width(m.config.UISettings.Prompt))
		}
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		return m, m.processActions(actions, cmd)

	case tea.MouseMsg:
		actions, cmd := m.inputHandler.HandleMouse(msg, m.renderer, m)
		return m, m.processActions(actions, cmd)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting || m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	return m.viewModel.BuildViewState(
		m.ctrl.State(),
		m.ctrl.Geometry(),
		m.inputHandler.TextInput().View(),
		m.inputHandler.Focus(),
	)
}

// relayout recomputes everything derived from controller state: the visible
// window of suggestions and the container box the overlay is placed against.
func (m *Model) relayout() {
	m.viewModel.Sync(m.ctrl.State(), m.ctrl.Filtered())
	w, h := m.renderer.MeasureContainer(m.viewState())
	if m.ctrl.Resize(w, h) {
		log.Printf("container resized to %dx%d", w, h)
	}
}

func (m *Model) processActions(actions []inputtypes.Action, cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	m.relayout()
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.QuitAction:
		m.quitting = true
		m.aborted = a.Force
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(m.helpRender.RenderHelpContent())

	case inputtypes.MoveFocusAction:
		actions, cmd := m.inputHandler.MoveFocus(a.To)
		return m.processActions(actions, cmd)

	default:
		return m.dispatch(action)
	}
}

// dispatch hands a selector action to the controller and applies its effects
func (m *Model) dispatch(action inputtypes.Action) tea.Cmd {
	res := m.ctrl.Dispatch(action)
	m.inputHandler.SyncText(res.Next.SearchText)
	m.publish(res)

	if res.Effect.Has(controller.EffectRefocusInput) && m.inputHandler.Focus() != inputtypes.FocusInput {
		actions, cmd := m.inputHandler.MoveFocus(inputtypes.FocusInput)
		return m.processActions(actions, cmd)
	}
	return nil
}

func (m *Model) publish(res controller.Result) {
	if m.bus == nil {
		return
	}

	if res.SelectionChanged() {
		if res.Next.Selected != nil {
			log.Printf("selection committed: %d %q", res.Next.Selected.ID, res.Next.Selected.Label)
			m.bus.Publish(eventbus.SelectionCommittedEvent{
				Candidate: *res.Next.Selected,
				Previous:  res.Prev.Selected,
			})
		} else {
			log.Printf("selection cleared")
			m.bus.Publish(eventbus.SelectionClearedEvent{Previous: *res.Prev.Selected})
		}
	}

	switch {
	case res.Opened():
		m.bus.Publish(eventbus.SuggestionsOpenedEvent{
			SearchText: res.Next.SearchText,
			Count:      len(m.ctrl.Filtered()),
		})
	case res.Closed():
		m.bus.Publish(eventbus.SuggestionsClosedEvent{})
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}

		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.viewModel.SetStatus("", false)
		return m, nil

	default:
		return m, nil
	}
}

// handleEvent shows bus events that matter to the user on the status line
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		m.viewModel.SetStatus(fmt.Sprintf("%d candidates from %s", e.Count, e.Source), false)
		return nil
	case eventbus.ErrorEvent:
		m.viewModel.SetStatus(e.Message, true)
		return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	default:
		return nil
	}
}

// IsOpen reports whether suggestions are visible
func (m *Model) IsOpen() bool {
	return m.ctrl.State().IsOpen
}

// SearchText returns the current query
func (m *Model) SearchText() string {
	return m.ctrl.State().SearchText
}

// Suggestions returns the filtered list
func (m *Model) Suggestions() []domain.Candidate {
	return m.ctrl.Filtered()
}

// SuggestionAt returns the candidate drawn on overlay row
func (m *Model) SuggestionAt(row int) (domain.Candidate, bool) {
	return m.viewModel.SuggestionAt(row)
}
