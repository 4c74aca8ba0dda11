package store

import (
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/internal/model"
)

type CreateCountryParams struct {
	Name       string
	ISO        string
	Flag       string
	CurrencyID int64
}

type CountryStore = Resource[model.Country, model.CountryListItem, CreateCountryParams, int64]

func newCountryStore(database Database, limits Limits) *CountryStore {
	return NewResource(database, Descriptor[model.Country, model.CountryListItem, CreateCountryParams, int64]{
		Singular:      "Country",
		Plural:        "countries",
		Table:         "countries",
		Columns:       []string{"id", "name", "iso", "flag", "created_at", "updated_at", "deleted_at"},
		InsertColumns: []string{"name", "iso", "flag", "currency_id"},
		InsertValues: func(p CreateCountryParams) []any {
			return []any{p.Name, p.ISO, p.Flag, p.CurrencyID}
		},
		SortColumns: map[string]string{
			"id":        "countries.id",
			"name":      "countries.name",
			"createdAt": "countries.created_at",
		},
		DefaultSort: "countries.name",
		ListColumns: []string{
			"countries.id",
			"countries.name",
			"countries.iso",
			"countries.flag",
			"currencies.name",
			"countries.created_at",
			"countries.deleted_at",
		},
		Joins:      []Join{{Table: "currencies", On: "currencies.id = countries.currency_id"}},
		ScanEntity: scanCountry,
		ScanList:   scanCountryListItem,
	}, limits)
}

func scanCountry(row pgx.Row) (*model.Country, error) {
	var c model.Country
	if err := row.Scan(&c.ID, &c.Name, &c.ISO, &c.Flag, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCountryListItem(row pgx.Row) (*model.CountryListItem, int64, error) {
	var (
		item  model.CountryListItem
		total int64
	)
	if err := row.Scan(&item.ID, &item.Name, &item.ISO, &item.Flag, &item.Currency, &item.CreatedAt, &item.DeletedAt, &total); err != nil {
		return nil, 0, err
	}
	return &item, total, nil
}
