package season

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Selection is the set of expanded seasons. The zero value is an empty set.
// Selections are never mutated after creation.
type Selection struct {
	seasons map[int]struct{}
}

func NewSelection(seasons ...int) Selection {
	s := Selection{seasons: make(map[int]struct{}, len(seasons))}
	for _, n := range seasons {
		s.seasons[n] = struct{}{}
	}
	return s
}

// Toggle returns a copy of s with season n added if it was missing or removed if it was present.
func (s Selection) Toggle(n int) Selection {
	toggled := NewSelection(s.Numbers()...)
	if _, ok := toggled.seasons[n]; ok {
		delete(toggled.seasons, n)
	} else {
		toggled.seasons[n] = struct{}{}
	}
	return toggled
}

func (s Selection) Contains(n int) bool {
	_, ok := s.seasons[n]
	return ok
}

// Numbers returns the selected seasons in ascending order.
func (s Selection) Numbers() []int {
	numbers := lo.Keys(s.seasons)
	slices.Sort(numbers)
	return numbers
}

func (s Selection) Len() int {
	return len(s.seasons)
}
