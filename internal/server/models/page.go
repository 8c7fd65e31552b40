package models

import "slices"

const (
	DefaultLimit = 25
	MaxLimit     = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Page selects a window of a sorted list.
type Page struct {
	Offset    int
	Limit     int
	SortField string
	SortOrder string
}

func DefaultPage() Page {
	return Page{Limit: DefaultLimit, SortField: "id", SortOrder: SortAsc}
}

// Validate checks the bounds and that SortField is one of sortable.
// SortField ends up in an ORDER BY clause, so the whitelist is mandatory.
func (p Page) Validate(sortable []string) error {
	if p.Offset < 0 {
		return validationError("offset must not be negative")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return validationError("limit must be between 1 and %d", MaxLimit)
	}
	if !slices.Contains(sortable, p.SortField) {
		return validationError("cannot sort by %q", p.SortField)
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		return validationError("sort_order must be asc or desc")
	}
	return nil
}
