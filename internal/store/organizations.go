package store

import (
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/internal/model"
)

type CreateOrganizationParams struct {
	CountryID int64
	Name      string
	Phone     string
	Email     string
	URL       *string
}

type OrganizationStore = Resource[model.Organization, model.OrganizationListItem, CreateOrganizationParams, int64]

func newOrganizationStore(database Database, limits Limits) *OrganizationStore {
	return NewResource(database, Descriptor[model.Organization, model.OrganizationListItem, CreateOrganizationParams, int64]{
		Singular:      "Organization",
		Plural:        "organizations",
		Table:         "organizations",
		Columns:       []string{"id", "name", "email", "phone", "url", "created_at", "updated_at", "deleted_at"},
		InsertColumns: []string{"country_id", "name", "phone", "email", "url"},
		InsertValues: func(p CreateOrganizationParams) []any {
			return []any{p.CountryID, p.Name, p.Phone, p.Email, p.URL}
		},
		SortColumns: map[string]string{
			"id":        "organizations.id",
			"name":      "organizations.name",
			"createdAt": "organizations.created_at",
		},
		DefaultSort: "organizations.name",
		ListColumns: []string{
			"organizations.id",
			"organizations.name",
			"organizations.email",
			"organizations.phone",
			"organizations.url",
			"organizations.created_at",
			"organizations.deleted_at",
			"contacts.full_name",
			"contacts.email",
			"contacts.phone",
			"countries.name",
			"countries.iso",
		},
		Joins: []Join{
			{Table: "countries", On: "countries.id = organizations.country_id"},
			{Table: "contacts", On: "contacts.organization_id = organizations.id"},
		},
		ScanEntity: scanOrganization,
		ScanList:   scanOrganizationListItem,
	}, limits)
}

func scanOrganization(row pgx.Row) (*model.Organization, error) {
	var o model.Organization
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.URL, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrganizationListItem(row pgx.Row) (*model.OrganizationListItem, int64, error) {
	var (
		item  model.OrganizationListItem
		total int64
	)
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Email,
		&item.Phone,
		&item.URL,
		&item.CreatedAt,
		&item.DeletedAt,
		&item.Contact.Name,
		&item.Contact.Email,
		&item.Contact.Phone,
		&item.Country.Name,
		&item.Country.ISO,
		&total,
	)
	if err != nil {
		return nil, 0, err
	}
	return &item, total, nil
}
