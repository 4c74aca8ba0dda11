package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/model"
	"refbase.app/api-server/internal/store"
)

type UserService = Service[model.User, model.UserListItem, store.CreateUserParams, string]

// Users is the only resource keyed by uuid; ids are validated at the edge in
// both the path and bulk-body positions.
func Users(svc UserService) Endpoints[model.User, model.UserListItem, store.CreateUserParams, string] {
	return Endpoints[model.User, model.UserListItem, store.CreateUserParams, string]{
		Name:    "users",
		Service: svc,
		ParseID: UUIDParser("User"),
		BindCreate: func(c *gin.Context) (store.CreateUserParams, error) {
			req, err := bindBody[dto.CreateUserRequest](c)
			if err != nil {
				return store.CreateUserParams{}, err
			}
			if err := req.Validate(); err != nil {
				return store.CreateUserParams{}, err
			}
			return req.Params(), nil
		},
		BindCreateMany: func(c *gin.Context) ([]store.CreateUserParams, error) {
			reqs, err := bindBody[[]dto.CreateUserRequest](c)
			if err != nil {
				return nil, err
			}
			params := make([]store.CreateUserParams, len(reqs))
			for i, r := range reqs {
				if err := r.Validate(); err != nil {
					return nil, err
				}
				params[i] = r.Params()
			}
			return params, nil
		},
		BindPatch: func(c *gin.Context) (map[string]any, error) {
			req, err := bindBody[dto.UpdateUserRequest](c)
			if err != nil {
				return nil, err
			}
			if err := req.Validate(); err != nil {
				return nil, err
			}
			return req.Patch(), nil
		},
		BindQuery: func(c *gin.Context) (store.ListQuery, error) {
			var q dto.FilterUserQuery
			if err := c.ShouldBindQuery(&q); err != nil {
				return store.ListQuery{}, err
			}
			return q.Query()
		},
		BindIDs: func(c *gin.Context) ([]string, error) {
			ids, err := BindIDs[string](c)
			if err != nil {
				return nil, err
			}
			for i, id := range ids {
				parsed, err := uuid.Parse(id)
				if err != nil {
					return nil, store.NewInvalidArgument("A valid User ID is required")
				}
				ids[i] = parsed.String()
			}
			return ids, nil
		},
	}
}
