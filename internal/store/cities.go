package store

import (
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/internal/model"
)

type CreateCityParams struct {
	Name      string
	CountryID int64
}

type CityStore = Resource[model.City, model.CityListItem, CreateCityParams, int64]

func newCityStore(database Database, limits Limits) *CityStore {
	return NewResource(database, Descriptor[model.City, model.CityListItem, CreateCityParams, int64]{
		Singular:      "City",
		Plural:        "cities",
		Table:         "cities",
		Columns:       []string{"id", "name", "created_at", "updated_at", "deleted_at"},
		InsertColumns: []string{"name", "country_id"},
		InsertValues: func(p CreateCityParams) []any {
			return []any{p.Name, p.CountryID}
		},
		SortColumns: map[string]string{
			"id":        "cities.id",
			"name":      "cities.name",
			"createdAt": "cities.created_at",
		},
		DefaultSort: "cities.name",
		ListColumns: []string{
			"cities.id",
			"cities.name",
			"countries.name",
			"cities.created_at",
			"cities.deleted_at",
		},
		Joins:      []Join{{Table: "countries", On: "countries.id = cities.country_id"}},
		ScanEntity: scanCity,
		ScanList:   scanCityListItem,
	}, limits)
}

func scanCity(row pgx.Row) (*model.City, error) {
	var c model.City
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCityListItem(row pgx.Row) (*model.CityListItem, int64, error) {
	var (
		item  model.CityListItem
		total int64
	)
	if err := row.Scan(&item.ID, &item.Name, &item.CountryName, &item.CreatedAt, &item.DeletedAt, &total); err != nil {
		return nil, 0, err
	}
	return &item, total, nil
}
