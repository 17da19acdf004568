// Package catalog loads and validates the static candidate list offered by the selector.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/ztolley/combobox/internal/domain"
)

var (
	// ErrDuplicateID is returned when two candidates share an id
	ErrDuplicateID = errors.New("duplicate candidate id")
	// ErrEmptyLabel is returned for candidates without a label
	ErrEmptyLabel = errors.New("empty candidate label")
	// ErrUnsupportedFormat is returned for catalog files with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrEmptyCatalog is returned when a catalog has no candidates
	ErrEmptyCatalog = errors.New("catalog has no candidates")
)

// BuiltinSource names the catalog used when no file or inline list is configured
const BuiltinSource = "builtin"

// file is the on-disk shape shared by all formats
type file struct {
	Candidates []domain.Candidate `toml:"candidates" yaml:"candidates" json:"candidates"`
}

// Builtin returns the sample catalog
func Builtin() []domain.Candidate {
	return []domain.Candidate{
		{ID: 1, Label: "Fred"},
		{ID: 2, Label: "Barney"},
		{ID: 3, Label: "Wilma"},
		{ID: 4, Label: "Betty"},
		{ID: 5, Label: "Pebbles"},
		{ID: 6, Label: "Bamm-Bamm"},
		{ID: 7, Label: "Dino"},
		{ID: 8, Label: "Mr. Slate"},
	}
}

// Validate checks that ids are unique and labels are not blank
func Validate(candidates []domain.Candidate) error {
	if len(candidates) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[int]struct{}, len(candidates))
	for i, c := range candidates {
		if strings.TrimSpace(c.Label) == "" {
			return fmt.Errorf("candidate %d (id %d): %w", i, c.ID, ErrEmptyLabel)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("candidate %d (%q): %w %d", i, c.Label, ErrDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// New validates candidates and builds a catalog from them
func New(candidates []domain.Candidate) (*domain.Catalog, error) {
	if err := Validate(candidates); err != nil {
		return nil, err
	}
	return domain.NewCatalog(candidates), nil
}

// Load reads a catalog file. The format is chosen by extension:
// .toml, .yaml/.yml, .json/.jsonc (comments and trailing commas allowed).
func Load(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	candidates, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	return New(candidates)
}

// Parse decodes catalog data of the given extension
func Parse(ext string, data []byte) ([]domain.Candidate, error) {
	var f file
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f.Candidates, nil
}
