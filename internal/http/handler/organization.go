package handler

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/model"
	"refbase.app/api-server/internal/store"
)

type OrganizationService = Service[model.Organization, model.OrganizationListItem, store.CreateOrganizationParams, int64]

func Organizations(svc OrganizationService) Endpoints[model.Organization, model.OrganizationListItem, store.CreateOrganizationParams, int64] {
	return Endpoints[model.Organization, model.OrganizationListItem, store.CreateOrganizationParams, int64]{
		Name:    "organizations",
		Service: svc,
		ParseID: IntIDParser("Organization"),
		BindCreate: func(c *gin.Context) (store.CreateOrganizationParams, error) {
			req, err := bindBody[dto.CreateOrganizationRequest](c)
			if err != nil {
				return store.CreateOrganizationParams{}, err
			}
			return req.Params(), nil
		},
		BindCreateMany: func(c *gin.Context) ([]store.CreateOrganizationParams, error) {
			reqs, err := bindBody[[]dto.CreateOrganizationRequest](c)
			if err != nil {
				return nil, err
			}
			params := make([]store.CreateOrganizationParams, len(reqs))
			for i, r := range reqs {
				params[i] = r.Params()
			}
			return params, nil
		},
		BindPatch: func(c *gin.Context) (map[string]any, error) {
			req, err := bindBody[dto.UpdateOrganizationRequest](c)
			if err != nil {
				return nil, err
			}
			return req.Patch(), nil
		},
		BindQuery: func(c *gin.Context) (store.ListQuery, error) {
			var q dto.FilterOrganizationQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				return store.ListQuery{}, err
			}
			return q.Query()
		},
	}
}
