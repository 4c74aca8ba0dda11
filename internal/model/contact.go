package model

import "time"

type Contact struct {
	ID        int64      `json:"id"`
	FullName  string     `json:"fullName"`
	Title     string     `json:"title"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

type ContactListItem struct {
	ID                int64      `json:"id"`
	FullName          string     `json:"fullName"`
	Title             string     `json:"title"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	OrganizationName  *string    `json:"organizationName"`
	OrganizationEmail *string    `json:"organizationEmail"`
	OrganizationPhone *string    `json:"organizationPhone"`
	CreatedAt         time.Time  `json:"createdAt"`
	DeletedAt         *time.Time `json:"deletedAt"`
}
