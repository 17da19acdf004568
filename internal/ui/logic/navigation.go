package logic

import "github.com/ztolley/combobox/internal/domain"

// Direction is a keyboard movement through the suggestion list
type Direction int

const (
	Down Direction = iota
	Up
)

// Step returns the candidate after (Down) or before (Up) current in list, wrapping
// around at both ends. With no current candidate, or one no longer in list, Down
// starts at the first item and Up at the last. An empty list yields false.
func Step(list []domain.Candidate, current *domain.Candidate, dir Direction) (domain.Candidate, bool) {
	n := len(list)
	if n == 0 {
		return domain.Candidate{}, false
	}

	idx := -1
	if current != nil {
		idx = IndexOf(list, *current)
	}

	if idx < 0 {
		if dir == Up {
			return list[n-1], true
		}
		return list[0], true
	}

	if dir == Up {
		return list[(idx-1+n)%n], true
	}
	return list[(idx+1)%n], true
}
