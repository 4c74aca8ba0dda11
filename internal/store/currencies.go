package store

import (
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/internal/model"
)

type CreateCurrencyParams struct {
	Name   string
	Code   string
	Symbol string
}

type CurrencyStore = Resource[model.Currency, model.CurrencyListItem, CreateCurrencyParams, int64]

func newCurrencyStore(database Database, limits Limits) *CurrencyStore {
	return NewResource(database, Descriptor[model.Currency, model.CurrencyListItem, CreateCurrencyParams, int64]{
		Singular:      "Currency",
		Plural:        "currencies",
		Table:         "currencies",
		Columns:       []string{"id", "name", "code", "symbol", "created_at", "updated_at", "deleted_at"},
		InsertColumns: []string{"name", "code", "symbol"},
		InsertValues: func(p CreateCurrencyParams) []any {
			return []any{p.Name, p.Code, p.Symbol}
		},
		SortColumns: map[string]string{
			"id":        "currencies.id",
			"name":      "currencies.name",
			"createdAt": "currencies.created_at",
		},
		DefaultSort: "currencies.name",
		ListColumns: []string{
			"currencies.id",
			"currencies.name",
			"currencies.code",
			"currencies.symbol",
			"currencies.created_at",
			"currencies.deleted_at",
		},
		ScanEntity: scanCurrency,
		ScanList:   scanCurrencyListItem,
	}, limits)
}

func scanCurrency(row pgx.Row) (*model.Currency, error) {
	var c model.Currency
	if err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Symbol, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCurrencyListItem(row pgx.Row) (*model.CurrencyListItem, int64, error) {
	var (
		item  model.CurrencyListItem
		total int64
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Code, &item.Symbol, &item.CreatedAt, &item.DeletedAt, &total); err != nil {
		return nil, 0, err
	}
	return &item, total, nil
}
