package dto

import (
	"refbase.app/api-server/internal/store"
)

type CreateCurrencyRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=20"`
	Code   string `json:"code" binding:"required,min=2,max=5"`
	Symbol string `json:"symbol" binding:"required,min=1,max=15"`
}

func (r CreateCurrencyRequest) Params() store.CreateCurrencyParams {
	return store.CreateCurrencyParams{
		Name:   r.Name,
		Code:   r.Code,
		Symbol: r.Symbol,
	}
}

type UpdateCurrencyRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=20"`
	Code   *string `json:"code" binding:"omitempty,min=2,max=5"`
	Symbol *string `json:"symbol" binding:"omitempty,min=1,max=15"`
}

func (r UpdateCurrencyRequest) Patch() map[string]any {
	patch := map[string]any{}
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Code != nil {
		patch["code"] = *r.Code
	}
	if r.Symbol != nil {
		patch["symbol"] = *r.Symbol
	}
	return patch
}

type FilterCurrencyQuery struct {
	PaginationQuery
	Name      string `form:"name"`
	Code      string `form:"code"`
	Symbol    string `form:"symbol"`
	CreatedAt string `form:"createdAt"`
}

func (q FilterCurrencyQuery) Query() (store.ListQuery, error) {
	lq := q.base()
	lq.Matches = []store.Match{
		{Column: "currencies.name", Value: q.Name},
		{Column: "currencies.code", Value: q.Code},
		{Column: "currencies.symbol", Value: q.Symbol},
	}
	createdAt, err := parseCreatedAt(q.CreatedAt)
	if err != nil {
		return store.ListQuery{}, err
	}
	lq.CreatedBefore = createdAt
	return lq, nil
}
