package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"github.com/ztolley/combobox/internal/ui/input/keys"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keys.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(km keys.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: km}
}

type helpLine struct {
	key  string
	desc string
}

func fromBinding(b key.Binding) helpLine {
	return helpLine{key: b.Help().Key, desc: b.Help().Desc}
}

// RenderHelpContent generates the key reference shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []struct {
		title string
		lines []helpLine
	}{
		{"Search", []helpLine{
			{key: "type", desc: "filter suggestions (case-insensitive)"},
			{key: "backspace", desc: "delete and reopen suggestions"},
			fromBinding(r.keys.Down),
			fromBinding(r.keys.Up),
			fromBinding(r.keys.Pick),
			fromBinding(r.keys.Close),
			fromBinding(r.keys.Clear),
		}},
		{"Focus", []helpLine{
			fromBinding(r.keys.NextFocus),
			fromBinding(r.keys.PrevFocus),
			fromBinding(r.keys.Toggle),
		}},
		{"Mouse", []helpLine{
			{key: "click field", desc: "focus and show suggestions"},
			{key: "click ▾", desc: "show or hide suggestions"},
			{key: "click row", desc: "pick suggestion"},
			{key: "click Done", desc: "finish and print selection"},
		}},
		{"Other", []helpLine{
			{key: r.keys.Finish.Help().Key + " on Done", desc: "finish and print selection"},
			fromBinding(r.keys.Help),
			fromBinding(r.keys.Quit),
		}},
	}

	width := 0
	for _, s := range sections {
		for _, l := range s.lines {
			width = max(width, lipgloss.Width(l.key))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("combobox help"))
	help.WriteString("\n")

	for _, s := range sections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, l := range s.lines {
			pad := strings.Repeat(" ", width-lipgloss.Width(l.key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(l.key), pad, descStyle.Render(l.desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal the pager borrows
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	defer func() {
		// let ov finish with the terminal before Bubble Tea takes it back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// vimKeyBindings are merged over ov's defaults; actions not listed keep their keys
var vimKeyBindings = map[string][]string{
	"exit":           {"Escape", "q", "F1"},
	"down":           {"Enter", "Down", "ctrl+n", "j"},
	"up":             {"Up", "ctrl+p", "k"},
	"top":            {"Home", "g"},
	"bottom":         {"End", "G"},
	"page_half_down": {"ctrl+d"},
	"page_half_up":   {"ctrl+u"},
}

func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string, len(vimKeyBindings))
	}
	for action, bound := range vimKeyBindings {
		config.Keybind[action] = bound
	}
}
