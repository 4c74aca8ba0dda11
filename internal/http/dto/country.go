package dto

import (
	"refbase.app/api-server/internal/store"
)

type CreateCountryRequest struct {
	CurrencyID int64  `json:"currencyId" binding:"required"`
	Name       string `json:"name" binding:"required,min=3,max=20"`
	ISO        string `json:"iso" binding:"required,min=2,max=3"`
	Flag       string `json:"flag" binding:"required,min=3,max=20"`
}

func (r CreateCountryRequest) Params() store.CreateCountryParams {
	return store.CreateCountryParams{
		Name:       r.Name,
		ISO:        r.ISO,
		Flag:       r.Flag,
		CurrencyID: r.CurrencyID,
	}
}

type UpdateCountryRequest struct {
	CurrencyID *int64  `json:"currencyId"`
	Name       *string `json:"name" binding:"omitempty,min=3,max=20"`
	ISO        *string `json:"iso" binding:"omitempty,min=2,max=3"`
	Flag       *string `json:"flag" binding:"omitempty,min=3,max=20"`
}

func (r UpdateCountryRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.CurrencyID != nil {
		patch["currency_id"] = *r.CurrencyID
	}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.ISO != nil {
		patch["iso"] = *r.ISO
	}
	if r.Flag != nil {
		patch["flag"] = *r.Flag
	}
	return patch
}

type FilterCountryQuery struct {
	PaginationQuery
	Name      string `form:"name"`
	ISO       string `form:"iso"`
	CreatedAt string `form:"createdAt"`
}

func (q FilterCountryQuery) Query() (store.ListQuery, error) {
	lq := q.base()
	lq.Matches = []store.Match{
		{Column: "countries.name", Value: q.Name},
		{Column: "countries.iso", Value: q.ISO},
	}
	createdAt, err := parseCreatedAt(q.CreatedAt)
	if err != nil {
		return store.ListQuery{}, err
	}
	lq.CreatedBefore = createdAt
	return lq, nil
}
