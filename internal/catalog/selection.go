package catalog

import "github.com/elegante-shop/storefront-backend/pkg/enums"

// Selection captures the filter and sort state of the catalog browse view.
// The zero value is not valid; use NewSelection.
type Selection struct {
	Search      string
	Categories  []string
	Colors      []string
	PriceBucket string
	Sort        enums.SortOption
}

// NewSelection returns the neutral selection: no search text, the "all"
// category sentinel, no color filter, every price, featured order.
func NewSelection() Selection {
	return Selection{
		Categories:  []string{SelectionAll},
		PriceBucket: SelectionAll,
		Sort:        enums.SortFeatured,
	}
}

// Reset restores the neutral selection (the "clear filters" action).
func (s *Selection) Reset() {
	*s = NewSelection()
}

// ToggleCategory flips a category in or out of the selected set. Selecting
// "all" collapses the set to the sentinel; removing the last concrete
// category falls back to it.
func (s *Selection) ToggleCategory(id string) {
	if id == SelectionAll {
		s.Categories = []string{SelectionAll}
		return
	}

	next := make([]string, 0, len(s.Categories)+1)
	removed := false
	for _, existing := range s.Categories {
		if existing == SelectionAll {
			continue
		}
		if existing == id {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		next = append(next, id)
	}
	if len(next) == 0 {
		next = []string{SelectionAll}
	}
	s.Categories = next
}

// ToggleColor flips a color in or out of the selected set.
func (s *Selection) ToggleColor(color string) {
	for i, existing := range s.Colors {
		if existing == color {
			s.Colors = append(s.Colors[:i], s.Colors[i+1:]...)
			return
		}
	}
	s.Colors = append(s.Colors, color)
}

// ActiveFilterCount reports how many filter groups deviate from the neutral
// selection. Search text is not counted, matching the storefront badge.
func (s Selection) ActiveFilterCount() int {
	count := 0
	if len(s.Categories) > 1 || !s.categoriesAll() {
		count++
	}
	if len(s.Colors) > 0 {
		count++
	}
	if s.PriceBucket != SelectionAll {
		count++
	}
	return count
}

func (s Selection) categoriesAll() bool {
	for _, id := range s.Categories {
		if id == SelectionAll {
			return true
		}
	}
	return false
}

func (s Selection) hasColor(color string) bool {
	for _, existing := range s.Colors {
		if existing == color {
			return true
		}
	}
	return false
}

func (s Selection) hasCategory(id string) bool {
	for _, existing := range s.Categories {
		if existing == id {
			return true
		}
	}
	return false
}
