package handler

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/model"
	"refbase.app/api-server/internal/store"
)

type CurrencyService = Service[model.Currency, model.CurrencyListItem, store.CreateCurrencyParams, int64]

func Currencies(svc CurrencyService) Endpoints[model.Currency, model.CurrencyListItem, store.CreateCurrencyParams, int64] {
	return Endpoints[model.Currency, model.CurrencyListItem, store.CreateCurrencyParams, int64]{
		Name:    "currencies",
		Service: svc,
		ParseID: IntIDParser("Currency"),
		BindCreate: func(c *gin.Context) (store.CreateCurrencyParams, error) {
			req, err := bindBody[dto.CreateCurrencyRequest](c)
			if err != nil {
				return store.CreateCurrencyParams{}, err
			}
			return req.Params(), nil
		},
		BindCreateMany: func(c *gin.Context) ([]store.CreateCurrencyParams, error) {
			reqs, err := bindBody[[]dto.CreateCurrencyRequest](c)
			if err != nil {
				return nil, err
			}
			params := make([]store.CreateCurrencyParams, len(reqs))
			for i, r := range reqs {
				params[i] = r.Params()
			}
			return params, nil
		},
		BindPatch: func(c *gin.Context) (map[string]any, error) {
			req, err := bindBody[dto.UpdateCurrencyRequest](c)
			if err != nil {
				return nil, err
			}
			return req.Patch(), nil
		},
		BindQuery: func(c *gin.Context) (store.ListQuery, error) {
			var q dto.FilterCurrencyQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				return store.ListQuery{}, err
			}
			return q.Query()
		},
	}
}
