package enums

import "fmt"

// SortOption represents the catalog orderings exposed to the storefront.
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortNewest    SortOption = "newest"
)

var validSortOptions = []SortOption{
	SortFeatured,
	SortPriceAsc,
	SortPriceDesc,
	SortNameAsc,
	SortNameDesc,
	SortNewest,
}

// SortOptions returns the known sort options in display order.
func SortOptions() []SortOption {
	out := make([]SortOption, len(validSortOptions))
	copy(out, validSortOptions)
	return out
}

// String implements fmt.Stringer.
func (s SortOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOption.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOption converts raw input into a SortOption. Empty input falls back
// to the featured ordering.
func ParseSortOption(value string) (SortOption, error) {
	if value == "" {
		return SortFeatured, nil
	}
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}
