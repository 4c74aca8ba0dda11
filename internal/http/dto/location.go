package dto

import (
	"refbase.app/api-server/internal/store"
)

type CreateLocationRequest struct {
	CityID     int64  `json:"cityId" binding:"required"`
	Address    string `json:"address" binding:"required,min=5,max=35"`
	Title      string `json:"title" binding:"required,min=5,max=20"`
	PostalCode string `json:"postalCode" binding:"required,min=2,max=12"`
	IsPrimary  bool   `json:"isPrimary"`
}

func (r CreateLocationRequest) Params() store.CreateLocationParams {
	return store.CreateLocationParams{
		Address:    r.Address,
		Title:      r.Title,
		CityID:     r.CityID,
		PostalCode: r.PostalCode,
		IsPrimary:  r.IsPrimary,
	}
}

type UpdateLocationRequest struct {
	CityID     *int64  `json:"cityId"`
	Address    *string `json:"address" binding:"omitempty,min=5,max=35"`
	Title      *string `json:"title" binding:"omitempty,min=5,max=20"`
	PostalCode *string `json:"postalCode" binding:"omitempty,min=2,max=12"`
	IsPrimary  *bool   `json:"isPrimary"`
}

func (r UpdateLocationRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.CityID != nil {
		patch["city_id"] = *r.CityID
	}
	if r.Address != nil {
		patch["address"] = *r.Address
	}
	if r.Title != nil {
		patch["title"] = *r.Title
	}
	if r.PostalCode != nil {
		patch["postal_code"] = *r.PostalCode
	}
	if r.IsPrimary != nil {
		patch["is_primary"] = *r.IsPrimary
	}
	return patch
}

type FilterLocationQuery struct {
	PaginationQuery
	PostalCode string `form:"postalCode"`
	CityName   string `form:"cityName"`
	CreatedAt  string `form:"createdAt"`
}

func (q FilterLocationQuery) Query() (store.ListQuery, error) {
	lq := q.base()
	lq.Matches = []store.Match{
		{Column: "locations.postal_code", Value: q.PostalCode},
		{Column: "cities.name", Value: q.CityName},
	}
	createdAt, err := parseCreatedAt(q.CreatedAt)
	if err != nil {
		return store.ListQuery{}, err
	}
	lq.CreatedBefore = createdAt
	return lq, nil
}
