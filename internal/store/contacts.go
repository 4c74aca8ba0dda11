package store

import (
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/internal/model"
)

type CreateContactParams struct {
	OrganizationID int64
	FullName       string
	Title          string
	Email          string
	Phone          string
}

type ContactStore = Resource[model.Contact, model.ContactListItem, CreateContactParams, int64]

func newContactStore(database Database, limits Limits) *ContactStore {
	return NewResource(database, Descriptor[model.Contact, model.ContactListItem, CreateContactParams, int64]{
		Singular:      "Contact",
		Plural:        "contacts",
		Table:         "contacts",
		Columns:       []string{"id", "full_name", "title", "email", "phone", "created_at", "updated_at", "deleted_at"},
		InsertColumns: []string{"organization_id", "full_name", "title", "email", "phone"},
		InsertValues: func(p CreateContactParams) []any {
			return []any{p.OrganizationID, p.FullName, p.Title, p.Email, p.Phone}
		},
		SortColumns: map[string]string{
			"id":                "contacts.id",
			"fullName":          "contacts.full_name",
			"phone":             "contacts.phone",
			"title":             "contacts.title",
			"organizationName":  "organizations.name",
			"organizationPhone": "organizations.phone",
			"organizationEmail": "organizations.email",
			"createdAt":         "contacts.created_at",
		},
		DefaultSort: "contacts.full_name",
		ListColumns: []string{
			"contacts.id",
			"contacts.full_name",
			"contacts.title",
			"contacts.phone",
			"contacts.email",
			"organizations.name",
			"organizations.phone",
			"organizations.email",
			"contacts.created_at",
			"contacts.deleted_at",
		},
		Joins:      []Join{{Table: "organizations", On: "organizations.id = contacts.organization_id"}},
		ScanEntity: scanContact,
		ScanList:   scanContactListItem,
	}, limits)
}

func scanContact(row pgx.Row) (*model.Contact, error) {
	var c model.Contact
	if err := row.Scan(&c.ID, &c.FullName, &c.Title, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanContactListItem(row pgx.Row) (*model.ContactListItem, int64, error) {
	var (
		item  model.ContactListItem
		total int64
	)
	err := row.Scan(
		&item.ID,
		&item.FullName,
		&item.Title,
		&item.Phone,
		&item.Email,
		&item.OrganizationName,
		&item.OrganizationPhone,
		&item.OrganizationEmail,
		&item.CreatedAt,
		&item.DeletedAt,
		&total,
	)
	if err != nil {
		return nil, 0, err
	}
	return &item, total, nil
}
