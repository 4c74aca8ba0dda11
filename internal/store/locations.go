package store

import (
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/internal/model"
)

type CreateLocationParams struct {
	Address    string
	Title      string
	CityID     int64
	PostalCode string
	IsPrimary  bool
}

type LocationStore = Resource[model.Location, model.LocationListItem, CreateLocationParams, int64]

func newLocationStore(database Database, limits Limits) *LocationStore {
	return NewResource(database, Descriptor[model.Location, model.LocationListItem, CreateLocationParams, int64]{
		Singular:      "Location",
		Plural:        "locations",
		Table:         "locations",
		Columns:       []string{"id", "address", "title", "postal_code", "is_primary", "created_at", "updated_at", "deleted_at"},
		InsertColumns: []string{"address", "title", "city_id", "postal_code", "is_primary"},
		InsertValues: func(p CreateLocationParams) []any {
			return []any{p.Address, p.Title, p.CityID, p.PostalCode, p.IsPrimary}
		},
		// Sorting by name resolves through the joined city.
		SortColumns: map[string]string{
			"id":        "locations.id",
			"name":      "cities.name",
			"createdAt": "locations.created_at",
		},
		DefaultSort: "cities.name",
		ListColumns: []string{
			"locations.id",
			"locations.address",
			"locations.title",
			"locations.postal_code",
			"locations.is_primary",
			"cities.name",
			"locations.created_at",
			"locations.deleted_at",
		},
		Joins:      []Join{{Table: "cities", On: "cities.id = locations.city_id"}},
		ScanEntity: scanLocation,
		ScanList:   scanLocationListItem,
	}, limits)
}

func scanLocation(row pgx.Row) (*model.Location, error) {
	var l model.Location
	if err := row.Scan(&l.ID, &l.Address, &l.Title, &l.PostalCode, &l.IsPrimary, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLocationListItem(row pgx.Row) (*model.LocationListItem, int64, error) {
	var (
		item  model.LocationListItem
		total int64
	)
	if err := row.Scan(&item.ID, &item.Address, &item.Title, &item.PostalCode, &item.IsPrimary, &item.CityName, &item.CreatedAt, &item.DeletedAt, &total); err != nil {
		return nil, 0, err
	}
	return &item, total, nil
}
