// Package app wires configuration, catalog loading, the event bus and the
// terminal UI into a runnable program.
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/ztolley/combobox/internal/catalog"
	"github.com/ztolley/combobox/internal/config"
	"github.com/ztolley/combobox/internal/domain"
	"github.com/ztolley/combobox/internal/eventbus"
	"github.com/ztolley/combobox/internal/ui"
	"github.com/ztolley/combobox/internal/ui/controller"
	"github.com/ztolley/combobox/internal/ui/logic"
)

// ReadySignal is printed once the program is running when E2EEnv is set
const (
	ReadySignal = "__READY__"
	E2EEnv      = "COMBOBOX_E2E_TEST"
)

// Options holds the command line
type Options struct {
	ConfigPath  string
	CatalogPath string
	Select      int
	Match       string
	MinQuery    int
	Freeze      string
	Debug       bool
	WriteConfig bool
	Help        bool

	set map[string]bool
}

// IsSet reports whether the named flag was given on the command line
func (o Options) IsSet(name string) bool {
	return o.set[name]
}

func newFlagSet(opts *Options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("combobox", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: user config dir/combobox/config.toml)")
	flagSet.StringVarP(&opts.CatalogPath, "catalog", "f", "", "catalog file (.toml, .yaml, .json, .jsonc)")
	flagSet.IntVarP(&opts.Select, "select", "s", 0, "id of the candidate selected at start")
	flagSet.StringVar(&opts.Match, "match", "", "match mode: substring or fuzzy")
	flagSet.IntVar(&opts.MinQuery, "min-query", 0, "shortest query that filters the list")
	flagSet.StringVar(&opts.Freeze, "freeze", "", "freeze policy: until-cleared or until-edited")
	flagSet.BoolVar(&opts.Debug, "debug", false, "write a debug log to combobox.log")
	flagSet.BoolVar(&opts.WriteConfig, "write-config", false, "write the effective config file and exit")
	flagSet.BoolVarP(&opts.Help, "help", "h", false, "show help")
	return flagSet
}

// ParseFlags parses args (without the program name)
func ParseFlags(args []string) (Options, error) {
	var opts Options
	flagSet := newFlagSet(&opts)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.Help = true
			return opts, nil
		}
		return opts, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	opts.set = make(map[string]bool)
	flagSet.Visit(func(f *pflag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// Usage returns the flag reference
func Usage() string {
	var opts Options
	return "Usage: combobox [flags]\n\n" +
		"Pick one entry from a catalog; the chosen label is printed on exit.\n\n" +
		newFlagSet(&opts).FlagUsages()
}

// LoadConfig reads the config named by opts, or the default file, and applies flag overrides
func LoadConfig(opts Options, bus eventbus.EventBus) (config.ConfigService, *config.Config, error) {
	var svc config.ConfigService
	if opts.ConfigPath != "" {
		svc = config.NewConfigServiceAt(opts.ConfigPath, bus)
	} else {
		svc = config.NewConfigServiceWithBus(bus)
	}

	var cfg *config.Config
	var err error
	if opts.ConfigPath != "" && !opts.WriteConfig {
		// an explicit file must exist unless it is about to be written
		cfg, err = svc.LoadFromPath(opts.ConfigPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("Config path: %s", svc.Path())

	if opts.IsSet("catalog") {
		cfg.Catalog.Path = opts.CatalogPath
	} else if cfg.Catalog.Path != "" && !filepath.IsAbs(cfg.Catalog.Path) {
		cfg.Catalog.Path = filepath.Join(filepath.Dir(svc.Path()), cfg.Catalog.Path)
	}
	if opts.IsSet("select") {
		id := opts.Select
		cfg.Catalog.DefaultID = &id
	}
	if opts.IsSet("match") {
		cfg.Selector.MatchMode = opts.Match
	}
	if opts.IsSet("min-query") {
		cfg.Selector.MinQueryLength = opts.MinQuery
	}
	if opts.IsSet("freeze") {
		cfg.Selector.Freeze = opts.Freeze
	}

	return svc, cfg, nil
}

// LoadCatalog returns the catalog the config points at and a name for where it came from
func LoadCatalog(cfg *config.Config) (*domain.Catalog, string, error) {
	switch {
	case cfg.Catalog.Path != "":
		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, "", err
		}
		return cat, cfg.Catalog.Path, nil
	case len(cfg.Catalog.Candidates) > 0:
		cat, err := catalog.New(cfg.Catalog.Candidates)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load inline catalog: %w", err)
		}
		return cat, "config", nil
	default:
		cat, err := catalog.New(catalog.Builtin())
		return cat, catalog.BuiltinSource, err
	}
}

// SelectorOptions turns the selector settings into controller options
func SelectorOptions(s config.SelectorSettings) (controller.Options, error) {
	mode, err := logic.ParseMatchMode(s.MatchMode)
	if err != nil {
		return controller.Options{}, err
	}
	freeze, err := logic.ParseFreezePolicy(s.Freeze)
	if err != nil {
		return controller.Options{}, err
	}
	if s.MinQueryLength < 0 {
		return controller.Options{}, fmt.Errorf("min query length must not be negative, got %d", s.MinQueryLength)
	}
	return controller.Options{Filter: logic.FilterOptions{
		Mode:           mode,
		Freeze:         freeze,
		MinQueryLength: s.MinQueryLength,
	}}, nil
}

// NewController builds the selector for cat, pre-selecting the configured default
func NewController(cfg *config.Config, cat *domain.Catalog) (*controller.Controller, error) {
	opts, err := SelectorOptions(cfg.Selector)
	if err != nil {
		return nil, fmt.Errorf("failed to configure selector: %w", err)
	}
	if cfg.Catalog.DefaultID == nil {
		return controller.New(cat, opts), nil
	}
	return controller.NewWithSelection(cat, opts, *cfg.Catalog.DefaultID)
}

// subscribeLogging logs selection events as they are published
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSelectionCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionCommittedEvent); ok {
			log.Printf("onChange: %d %q", event.Candidate.ID, event.Candidate.Label)
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		log.Printf("onChange: cleared")
	})
	bus.Subscribe(eventbus.EventSuggestionsOpened, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SuggestionsOpenedEvent); ok {
			log.Printf("suggestions opened for %q (%d)", event.SearchText, event.Count)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
}

// Run executes the program with args and returns the process exit code.
// The selected label, if any, is written to stdout.
func Run(args []string, stdout, stderr io.Writer) int {
	opts, err := ParseFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n\n%s", err, Usage())
		return 2
	}
	if opts.Help {
		fmt.Fprint(stderr, Usage())
		return 0
	}

	// Enable debug logging when requested; the terminal belongs to the UI otherwise
	if opts.Debug || len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("combobox.log", "combobox")
		if err != nil {
			fmt.Fprintf(stderr, "fatal: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	svc, cfg, err := LoadConfig(opts, bus)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if opts.WriteConfig {
		if err := svc.Save(cfg); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stderr, "wrote", svc.Path())
		return 0
	}

	cat, source, err := LoadCatalog(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	log.Printf("Loaded %d candidates from %s", cat.Len(), source)

	ctrl, err := NewController(cfg, cat)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	model := ui.NewModel(bus, cfg, ctrl)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(stderr)}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventCatalogLoaded, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	bus.Publish(eventbus.CatalogLoadedEvent{Source: source, Count: cat.Len()})

	if os.Getenv(E2EEnv) == "1" {
		fmt.Fprintln(stderr, ReadySignal)
	}

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")

	// Cleanup: stop publishers before closing the channel they feed
	bus.Close()
	close(eventChan)

	if c, ok := model.Selected(); ok {
		fmt.Fprintln(stdout, c.Label)
	}
	return 0
}
