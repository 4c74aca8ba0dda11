package dto

import (
	"refbase.app/api-server/internal/store"
)

type CreateCityRequest struct {
	CountryID int64  `json:"countryId" binding:"required"`
	Name      string `json:"name" binding:"required,min=2,max=20"`
}

func (r CreateCityRequest) Params() store.CreateCityParams {
	return store.CreateCityParams{
		Name:      r.Name,
		CountryID: r.CountryID,
	}
}

type UpdateCityRequest struct {
	CountryID *int64  `json:"countryId"`
	Name      *string `json:"name" binding:"omitempty,min=2,max=20"`
}

func (r UpdateCityRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.CountryID != nil {
		patch["country_id"] = *r.CountryID
	}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	return patch
}

type FilterCityQuery struct {
	PaginationQuery
	Name        string `form:"name"`
	CountryName string `form:"countryName"`
	CreatedAt   string `form:"createdAt"`
}

func (q FilterCityQuery) Query() (store.ListQuery, error) {
	lq := q.base()
	lq.Matches = []store.Match{
		{Column: "cities.name", Value: q.Name},
		{Column: "countries.name", Value: q.CountryName},
	}
	createdAt, err := parseCreatedAt(q.CreatedAt)
	if err != nil {
		return store.ListQuery{}, err
	}
	lq.CreatedBefore = createdAt
	return lq, nil
}
