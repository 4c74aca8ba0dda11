package dto

import (
	"time"

	"refbase.app/api-server/internal/store"
)

// PaginationQuery is the shared tail of every list filter. Limit and Offset
// stay pointers so the stores can tell "absent" from zero; clamping happens
// in the store layer.
type PaginationQuery struct {
	Limit  *int   `form:"limit" binding:"omitempty,min=1"`
	Offset *int   `form:"offset" binding:"omitempty,min=0"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc ASC DESC"`
	// Deleted switches the listing to the soft-deleted partition. Anything
	// other than the literal "true" means active rows.
	Deleted string `form:"deleted"`
}

func (p PaginationQuery) base() store.ListQuery {
	return store.ListQuery{
		Deleted: p.Deleted == "true",
		SortBy:  p.SortBy,
		Order:   p.Order,
		Limit:   p.Limit,
		Offset:  p.Offset,
	}
}

// parseCreatedAt accepts a full timestamp or a bare date.
func parseCreatedAt(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, store.NewInvalidArgument("createdAt must be a valid date string")
}
