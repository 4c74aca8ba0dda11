package model

import "time"

type Country struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	ISO       string     `json:"iso"`
	Flag      string     `json:"flag"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// CountryListItem is the list projection: countries joined to their currency.
type CountryListItem struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	ISO       string     `json:"iso"`
	Flag      string     `json:"flag"`
	Currency  *string    `json:"currency"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
