package handler

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/model"
	"refbase.app/api-server/internal/store"
)

type LocationService = Service[model.Location, model.LocationListItem, store.CreateLocationParams, int64]

func Locations(svc LocationService) Endpoints[model.Location, model.LocationListItem, store.CreateLocationParams, int64] {
	return Endpoints[model.Location, model.LocationListItem, store.CreateLocationParams, int64]{
		Name:    "locations",
		Service: svc,
		ParseID: IntIDParser("Location"),
		BindCreate: func(c *gin.Context) (store.CreateLocationParams, error) {
			req, err := bindBody[dto.CreateLocationRequest](c)
			if err != nil {
				return store.CreateLocationParams{}, err
			}
			return req.Params(), nil
		},
		BindCreateMany: func(c *gin.Context) ([]store.CreateLocationParams, error) {
			reqs, err := bindBody[[]dto.CreateLocationRequest](c)
			if err != nil {
				return nil, err
			}
			params := make([]store.CreateLocationParams, len(reqs))
			for i, r := range reqs {
				params[i] = r.Params()
			}
			return params, nil
		},
		BindPatch: func(c *gin.Context) (map[string]any, error) {
			req, err := bindBody[dto.UpdateLocationRequest](c)
			if err != nil {
				return nil, err
			}
			return req.Patch(), nil
		},
		BindQuery: func(c *gin.Context) (store.ListQuery, error) {
			var q dto.FilterLocationQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				return store.ListQuery{}, err
			}
			return q.Query()
		},
	}
}
