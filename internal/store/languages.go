package store

import (
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/internal/model"
)

type CreateLanguageParams struct {
	CountryID int64
	Name      string
	Code      string
	Native    string
}

type LanguageStore = Resource[model.Language, model.LanguageListItem, CreateLanguageParams, int64]

func newLanguageStore(database Database, limits Limits) *LanguageStore {
	return NewResource(database, Descriptor[model.Language, model.LanguageListItem, CreateLanguageParams, int64]{
		Singular:      "Language",
		Plural:        "languages",
		Table:         "languages",
		Columns:       []string{"id", "name", "code", "native", "created_at", "updated_at", "deleted_at"},
		InsertColumns: []string{"country_id", "name", "code", "native"},
		InsertValues: func(p CreateLanguageParams) []any {
			return []any{p.CountryID, p.Name, p.Code, p.Native}
		},
		SortColumns: map[string]string{
			"id":        "languages.id",
			"name":      "languages.name",
			"code":      "languages.code",
			"createdAt": "languages.created_at",
		},
		DefaultSort: "languages.name",
		ListColumns: []string{
			"languages.id",
			"languages.name",
			"languages.code",
			"languages.native",
			"countries.name",
			"languages.created_at",
			"languages.deleted_at",
		},
		Joins:      []Join{{Table: "countries", On: "countries.id = languages.country_id"}},
		ScanEntity: scanLanguage,
		ScanList:   scanLanguageListItem,
	}, limits)
}

func scanLanguage(row pgx.Row) (*model.Language, error) {
	var l model.Language
	if err := row.Scan(&l.ID, &l.Name, &l.Code, &l.Native, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLanguageListItem(row pgx.Row) (*model.LanguageListItem, int64, error) {
	var (
		item  model.LanguageListItem
		total int64
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Code, &item.Native, &item.CountryName, &item.CreatedAt, &item.DeletedAt, &total); err != nil {
		return nil, 0, err
	}
	return &item, total, nil
}
