package model

import "time"

type Organization struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	URL       *string    `json:"url"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// OrganizationListItem carries the nested contact and country display blocks
// of the list endpoint.
type OrganizationListItem struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	URL       *string             `json:"url"`
	CreatedAt time.Time           `json:"createdAt"`
	DeletedAt *time.Time          `json:"deletedAt"`
	Contact   OrganizationContact `json:"contact"`
	Country   OrganizationCountry `json:"country"`
}

type OrganizationContact struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type OrganizationCountry struct {
	Name *string `json:"name"`
	ISO  *string `json:"iso"`
}
