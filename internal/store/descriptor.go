package store

import "github.com/jackc/pgx/v5"

// Join is one LEFT JOIN of the list projection. An absent related row yields
// nulls, never row exclusion.
type Join struct {
	Table string
	On    string
}

// Descriptor is the static per-resource metadata the generic engine runs on:
// table identity, column lists, the sort allow-list, the list joins, and the
// row scanners. One Descriptor per resource replaces a full hand-written
// service.
//
// Type parameters: T entity, L list item, C create params, K id.
type Descriptor[T, L, C any, K comparable] struct {
	// Singular is the display name used in error messages ("Country").
	Singular string
	// Plural is the lowercase plural used in result summaries ("countries").
	Plural string
	Table  string

	// Columns is the whitelisted select/RETURNING list for single-entity
	// reads and mutations. Unqualified; the engine only uses it on the
	// resource's own table.
	Columns []string

	InsertColumns []string
	InsertValues  func(C) []any

	// SortColumns maps client sort keys to qualified columns. Unknown keys
	// fall back to DefaultSort.
	SortColumns map[string]string
	DefaultSort string

	// ListColumns is the qualified projection of the list query, aligned
	// with ScanList's scan order.
	ListColumns []string
	Joins       []Join

	ScanEntity func(row pgx.Row) (*T, error)
	ScanList   func(row pgx.Row) (*L, int64, error)
}
