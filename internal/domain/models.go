package domain

// Candidate represents one selectable item in the dropdown
type Candidate struct {
	ID    int    `toml:"id" yaml:"id" json:"id"`
	Label string `toml:"label" yaml:"label" json:"label"`
}

// Catalog is the fixed, ordered set of candidates a selector offers.
// It is built once and never mutated afterwards.
type Catalog struct {
	candidates []Candidate
	byID       map[int]int // id -> position
}

// NewCatalog creates a catalog preserving the given order.
// Later duplicates of an id are ignored; use catalog.Validate to reject them.
func NewCatalog(candidates []Candidate) *Catalog {
	c := &Catalog{
		candidates: make([]Candidate, 0, len(candidates)),
		byID:       make(map[int]int, len(candidates)),
	}
	for _, cand := range candidates {
		if _, exists := c.byID[cand.ID]; exists {
			continue
		}
		c.byID[cand.ID] = len(c.candidates)
		c.candidates = append(c.candidates, cand)
	}
	return c
}

// Len returns the number of candidates
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.candidates)
}

// All returns a copy of the candidates in catalog order
func (c *Catalog) All() []Candidate {
	if c == nil {
		return nil
	}
	return append([]Candidate(nil), c.candidates...)
}

// Lookup finds a candidate by id
func (c *Catalog) Lookup(id int) (Candidate, bool) {
	if c == nil {
		return Candidate{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Candidate{}, false
	}
	return c.candidates[i], true
}

// Labels returns candidate labels in catalog order
func (c *Catalog) Labels() []string {
	if c == nil {
		return nil
	}
	labels := make([]string, len(c.candidates))
	for i, cand := range c.candidates {
		labels[i] = cand.Label
	}
	return labels
}
