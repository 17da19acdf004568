package logic

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/ztolley/combobox/internal/domain"
)

// MatchMode selects how search text is compared against labels
type MatchMode int

const (
	// MatchSubstring keeps labels containing the text, ignoring case
	MatchSubstring MatchMode = iota
	// MatchFuzzy keeps labels containing the text's characters in order
	MatchFuzzy
)

func (m MatchMode) String() string {
	switch m {
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "substring"
	}
}

// ParseMatchMode converts a config value into a MatchMode
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return MatchSubstring, nil
	case "fuzzy":
		return MatchFuzzy, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q (want substring or fuzzy)", s)
	}
}

// FreezePolicy decides how long a committed selection suspends filtering
type FreezePolicy int

const (
	// FreezeUntilCleared suspends filtering while any selection is committed
	FreezeUntilCleared FreezePolicy = iota
	// FreezeUntilEdited suspends filtering only until the text is edited after a commit
	FreezeUntilEdited
)

func (p FreezePolicy) String() string {
	switch p {
	case FreezeUntilEdited:
		return "until-edited"
	default:
		return "until-cleared"
	}
}

// ParseFreezePolicy converts a config value into a FreezePolicy
func ParseFreezePolicy(s string) (FreezePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "until-cleared":
		return FreezeUntilCleared, nil
	case "until-edited":
		return FreezeUntilEdited, nil
	default:
		return FreezeUntilCleared, fmt.Errorf("unknown freeze policy %q (want until-cleared or until-edited)", s)
	}
}

// FilterOptions tunes Filter
type FilterOptions struct {
	Mode           MatchMode
	Freeze         FreezePolicy
	MinQueryLength int // queries with fewer runes match everything
}

// Query is the part of interaction state filtering depends on
type Query struct {
	Text         string
	HasSelection bool
	Edited       bool // text changed since the selection was committed
}

// Frozen reports whether a committed selection suspends filtering under policy p
func (q Query) Frozen(p FreezePolicy) bool {
	if !q.HasSelection {
		return false
	}
	if p == FreezeUntilEdited {
		return !q.Edited
	}
	return true
}

// Filter returns the candidates matching q, in catalog order.
// Empty text, text shorter than MinQueryLength, or a frozen selection return the whole catalog.
func Filter(catalog *domain.Catalog, q Query, opts FilterOptions) []domain.Candidate {
	all := catalog.All()
	if q.Text == "" || q.Frozen(opts.Freeze) || utf8.RuneCountInString(q.Text) < opts.MinQueryLength {
		return all
	}

	if opts.Mode == MatchFuzzy {
		return filterByFuzzy(q.Text, all)
	}
	return filterBySubstring(q.Text, all)
}

// filterBySubstring keeps candidates whose label contains text, ignoring case
func filterBySubstring(text string, candidates []domain.Candidate) []domain.Candidate {
	needle := strings.ToLower(text)
	out := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Label), needle) {
			out = append(out, c)
		}
	}
	return out
}

// filterByFuzzy keeps candidates that fuzzy-match text. Matches are put back
// into catalog order; the fuzzy score is only used to decide membership.
func filterByFuzzy(text string, candidates []domain.Candidate) []domain.Candidate {
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}

	matched := make([]bool, len(candidates))
	for _, m := range fuzzy.Find(text, labels) {
		matched[m.Index] = true
	}

	out := make([]domain.Candidate, 0, len(candidates))
	for i, c := range candidates {
		if matched[i] {
			out = append(out, c)
		}
	}
	return out
}

// IndexOf returns the position of the candidate with c's id in list, or -1
func IndexOf(list []domain.Candidate, c domain.Candidate) int {
	for i, item := range list {
		if item.ID == c.ID {
			return i
		}
	}
	return -1
}

// Contains reports whether list holds a candidate with c's id
func Contains(list []domain.Candidate, c domain.Candidate) bool {
	return IndexOf(list, c) >= 0
}
