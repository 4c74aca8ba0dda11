package model

import "time"

type Location struct {
	ID         int64      `json:"id"`
	Address    string     `json:"address"`
	Title      string     `json:"title"`
	PostalCode string     `json:"postalCode"`
	IsPrimary  bool       `json:"isPrimary"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedAt  *time.Time `json:"deletedAt"`
}

type LocationListItem struct {
	ID         int64      `json:"id"`
	Address    string     `json:"address"`
	Title      string     `json:"title"`
	PostalCode string     `json:"postalCode"`
	IsPrimary  bool       `json:"isPrimary"`
	CityName   *string    `json:"cityName"`
	CreatedAt  time.Time  `json:"createdAt"`
	DeletedAt  *time.Time `json:"deletedAt"`
}
