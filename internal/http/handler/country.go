package handler

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/model"
	"refbase.app/api-server/internal/store"
)

type CountryService = Service[model.Country, model.CountryListItem, store.CreateCountryParams, int64]

func Countries(svc CountryService) Endpoints[model.Country, model.CountryListItem, store.CreateCountryParams, int64] {
	return Endpoints[model.Country, model.CountryListItem, store.CreateCountryParams, int64]{
		Name:    "countries",
		Service: svc,
		ParseID: IntIDParser("Country"),
		BindCreate: func(c *gin.Context) (store.CreateCountryParams, error) {
			req, err := bindBody[dto.CreateCountryRequest](c)
			if err != nil {
				return store.CreateCountryParams{}, err
			}
			return req.Params(), nil
		},
		BindCreateMany: func(c *gin.Context) ([]store.CreateCountryParams, error) {
			reqs, err := bindBody[[]dto.CreateCountryRequest](c)
			if err != nil {
				return nil, err
			}
			params := make([]store.CreateCountryParams, len(reqs))
			for i, r := range reqs {
				params[i] = r.Params()
			}
			return params, nil
		},
		BindPatch: func(c *gin.Context) (map[string]any, error) {
			req, err := bindBody[dto.UpdateCountryRequest](c)
			if err != nil {
				return nil, err
			}
			return req.Patch(), nil
		},
		BindQuery: func(c *gin.Context) (store.ListQuery, error) {
			var q dto.FilterCountryQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				return store.ListQuery{}, err
			}
			return q.Query()
		},
	}
}
