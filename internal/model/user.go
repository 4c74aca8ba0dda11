package model

import "time"

// User never carries the password column; it is write-only at the store layer.
type User struct {
	ID        string     `json:"id"`
	UserName  string     `json:"userName"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

type UserListItem struct {
	ID        string     `json:"id"`
	UserName  string     `json:"userName"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
