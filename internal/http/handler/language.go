package handler

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/model"
	"refbase.app/api-server/internal/store"
)

type LanguageService = Service[model.Language, model.LanguageListItem, store.CreateLanguageParams, int64]

func Languages(svc LanguageService) Endpoints[model.Language, model.LanguageListItem, store.CreateLanguageParams, int64] {
	return Endpoints[model.Language, model.LanguageListItem, store.CreateLanguageParams, int64]{
		Name:    "languages",
		Service: svc,
		ParseID: IntIDParser("Language"),
		BindCreate: func(c *gin.Context) (store.CreateLanguageParams, error) {
			req, err := bindBody[dto.CreateLanguageRequest](c)
			if err != nil {
				return store.CreateLanguageParams{}, err
			}
			return req.Params(), nil
		},
		BindCreateMany: func(c *gin.Context) ([]store.CreateLanguageParams, error) {
			reqs, err := bindBody[[]dto.CreateLanguageRequest](c)
			if err != nil {
				return nil, err
			}
			params := make([]store.CreateLanguageParams, len(reqs))
			for i, r := range reqs {
				params[i] = r.Params()
			}
			return params, nil
		},
		BindPatch: func(c *gin.Context) (map[string]any, error) {
			req, err := bindBody[dto.UpdateLanguageRequest](c)
			if err != nil {
				return nil, err
			}
			return req.Patch(), nil
		},
		BindQuery: func(c *gin.Context) (store.ListQuery, error) {
			var q dto.FilterLanguageQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				return store.ListQuery{}, err
			}
			return q.Query()
		},
	}
}
