package store

import (
	"github.com/jackc/pgx/v5"

	"refbase.app/api-server/internal/model"
)

// CreateUserParams carries the password into the insert; no read path ever
// selects it back.
type CreateUserParams struct {
	UserName string
	Email    string
	Password string
}

type UserStore = Resource[model.User, model.UserListItem, CreateUserParams, string]

func newUserStore(database Database, limits Limits) *UserStore {
	return NewResource(database, Descriptor[model.User, model.UserListItem, CreateUserParams, string]{
		Singular:      "User",
		Plural:        "users",
		Table:         "users",
		Columns:       []string{"id", "user_name", "email", "created_at", "updated_at", "deleted_at"},
		InsertColumns: []string{"user_name", "email", "password"},
		InsertValues: func(p CreateUserParams) []any {
			return []any{p.UserName, p.Email, p.Password}
		},
		SortColumns: map[string]string{
			"id":        "users.id",
			"name":      "users.user_name",
			"createdAt": "users.created_at",
		},
		DefaultSort: "users.user_name",
		ListColumns: []string{
			"users.id",
			"users.user_name",
			"users.email",
			"users.created_at",
			"users.deleted_at",
		},
		ScanEntity: scanUser,
		ScanList:   scanUserListItem,
	}, limits)
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUserListItem(row pgx.Row) (*model.UserListItem, int64, error) {
	var (
		item  model.UserListItem
		total int64
	)
	if err := row.Scan(&item.ID, &item.UserName, &item.Email, &item.CreatedAt, &item.DeletedAt, &total); err != nil {
		return nil, 0, err
	}
	return &item, total, nil
}
