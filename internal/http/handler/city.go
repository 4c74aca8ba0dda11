package handler

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/model"
	"refbase.app/api-server/internal/store"
)

type CityService = Service[model.City, model.CityListItem, store.CreateCityParams, int64]

func Cities(svc CityService) Endpoints[model.City, model.CityListItem, store.CreateCityParams, int64] {
	return Endpoints[model.City, model.CityListItem, store.CreateCityParams, int64]{
		Name:    "cities",
		Service: svc,
		ParseID: IntIDParser("City"),
		BindCreate: func(c *gin.Context) (store.CreateCityParams, error) {
			req, err := bindBody[dto.CreateCityRequest](c)
			if err != nil {
				return store.CreateCityParams{}, err
			}
			return req.Params(), nil
		},
		BindCreateMany: func(c *gin.Context) ([]store.CreateCityParams, error) {
			reqs, err := bindBody[[]dto.CreateCityRequest](c)
			if err != nil {
				return nil, err
			}
			params := make([]store.CreateCityParams, len(reqs))
			for i, r := range reqs {
				params[i] = r.Params()
			}
			return params, nil
		},
		BindPatch: func(c *gin.Context) (map[string]any, error) {
			req, err := bindBody[dto.UpdateCityRequest](c)
			if err != nil {
				return nil, err
			}
			return req.Patch(), nil
		},
		BindQuery: func(c *gin.Context) (store.ListQuery, error) {
			var q dto.FilterCityQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				return store.ListQuery{}, err
			}
			return q.Query()
		},
	}
}
