package dto

import (
	"refbase.app/api-server/internal/store"
)

type CreateLanguageRequest struct {
	CountryID int64  `json:"countryId" binding:"required"`
	Name      string `json:"name" binding:"required,min=2,max=20"`
	Code      string `json:"code" binding:"required,min=2,max=3"`
	Native    string `json:"native" binding:"required,min=2,max=20"`
}

func (r CreateLanguageRequest) Params() store.CreateLanguageParams {
	return store.CreateLanguageParams{
		CountryID: r.CountryID,
		Name:      r.Name,
		Code:      r.Code,
		Native:    r.Native,
	}
}

type UpdateLanguageRequest struct {
	CountryID *int64  `json:"countryId"`
	Name      *string `json:"name" binding:"omitempty,min=2,max=20"`
	Code      *string `json:"code" binding:"omitempty,min=2,max=3"`
	Native    *string `json:"native" binding:"omitempty,min=2,max=20"`
}

func (r UpdateLanguageRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.CountryID != nil {
		patch["country_id"] = *r.CountryID
	}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Code != nil {
		patch["code"] = *r.Code
	}
	if r.Native != nil {
		patch["native"] = *r.Native
	}
	return patch
}

type FilterLanguageQuery struct {
	PaginationQuery
	Name        string `form:"name"`
	Code        string `form:"code"`
	Native      string `form:"native"`
	CountryName string `form:"countryName"`
	CreatedAt   string `form:"createdAt"`
}

func (q FilterLanguageQuery) Query() (store.ListQuery, error) {
	lq := q.base()
	lq.Matches = []store.Match{
		{Column: "languages.name", Value: q.Name},
		{Column: "languages.code", Value: q.Code},
		{Column: "languages.native", Value: q.Native},
		{Column: "countries.name", Value: q.CountryName},
	}
	createdAt, err := parseCreatedAt(q.CreatedAt)
	if err != nil {
		return store.ListQuery{}, err
	}
	lq.CreatedBefore = createdAt
	return lq, nil
}
