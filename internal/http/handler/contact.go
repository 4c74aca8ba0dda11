package handler

import (
	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/model"
	"refbase.app/api-server/internal/store"
)

type ContactService = Service[model.Contact, model.ContactListItem, store.CreateContactParams, int64]

func Contacts(svc ContactService) Endpoints[model.Contact, model.ContactListItem, store.CreateContactParams, int64] {
	return Endpoints[model.Contact, model.ContactListItem, store.CreateContactParams, int64]{
		Name:    "contacts",
		Service: svc,
		ParseID: IntIDParser("Contact"),
		BindCreate: func(c *gin.Context) (store.CreateContactParams, error) {
			req, err := bindBody[dto.CreateContactRequest](c)
			if err != nil {
				return store.CreateContactParams{}, err
			}
			return req.Params(), nil
		},
		BindCreateMany: func(c *gin.Context) ([]store.CreateContactParams, error) {
			reqs, err := bindBody[[]dto.CreateContactRequest](c)
			if err != nil {
				return nil, err
			}
			params := make([]store.CreateContactParams, len(reqs))
			for i, r := range reqs {
				params[i] = r.Params()
			}
			return params, nil
		},
		BindPatch: func(c *gin.Context) (map[string]any, error) {
			req, err := bindBody[dto.UpdateContactRequest](c)
			if err != nil {
				return nil, err
			}
			return req.Patch(), nil
		},
		BindQuery: func(c *gin.Context) (store.ListQuery, error) {
			var q dto.FilterContactQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				return store.ListQuery{}, err
			}
			return q.Query()
		},
	}
}
