package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"refbase.app/api-server/common/logger"
	"refbase.app/api-server/internal/http/dto"
	"refbase.app/api-server/internal/store"
)

// Service is the store-side contract each resource handler runs on.
// *store.Resource satisfies it; tests substitute function-field mocks.
type Service[T, L, C any, K comparable] interface {
	Create(ctx context.Context, in C) (K, error)
	Update(ctx context.Context, id K, patch map[string]any) (*T, error)
	FindOne(ctx context.Context, id K, deleted bool) (*T, error)
	FindAll(ctx context.Context, q store.ListQuery) (*store.Page[L], error)
	Remove(ctx context.Context, id K) (*T, error)
	Restore(ctx context.Context, id K) (*T, error)
	Delete(ctx context.Context, id K) (*T, error)
	BulkCreate(ctx context.Context, ins []C) (*store.CreatedBatch[T], error)
	BulkRemove(ctx context.Context, ids []K) (*store.Outcome[K], error)
	BulkRestore(ctx context.Context, ids []K) (*store.Outcome[K], error)
	BulkDelete(ctx context.Context, ids []K) (*store.Outcome[K], error)
}

// Endpoints is one resource's HTTP surface: the service plus the binding glue
// that turns requests into store inputs. Every resource mounts the same
// eleven routes.
type Endpoints[T, L, C any, K comparable] struct {
	// Name is the lowercase route name, used as the resource log field.
	Name    string
	Service Service[T, L, C, K]

	ParseID        func(raw string) (K, error)
	BindCreate     func(c *gin.Context) (C, error)
	BindCreateMany func(c *gin.Context) ([]C, error)
	BindPatch      func(c *gin.Context) (map[string]any, error)
	BindQuery      func(c *gin.Context) (store.ListQuery, error)
	BindIDs        func(c *gin.Context) ([]K, error)
}

// Register mounts the resource routes on the group. Static segments
// ("create", "remove", "delete", "restore") coexist with the ":id" wildcard;
// gin resolves static matches first.
func (e Endpoints[T, L, C, K]) Register(g *gin.RouterGroup) {
	g.Use(e.tagResource)

	g.POST("", e.create)
	g.GET("", e.list)
	g.GET("/:id", e.findOne)
	g.PATCH("/:id", e.update)
	g.DELETE("/:id", e.remove)
	g.PATCH("/restore/:id", e.restore)
	g.DELETE("/delete/:id", e.delete)

	g.POST("/create", e.bulkCreate)
	g.DELETE("/remove", e.bulkRemove)
	g.PATCH("/restore", e.bulkRestore)
	g.DELETE("/delete", e.bulkDelete)
}

func (e Endpoints[T, L, C, K]) tagResource(c *gin.Context) {
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{Resource: logger.Ptr(e.Name)})
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func (e Endpoints[T, L, C, K]) create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := e.BindCreate(c)
	if err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		respondError(c, asInvalidArgument(err))
		return
	}

	id, err := e.Service.Create(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, []dto.CreatedResponse[K]{{ID: id}})
}

func (e Endpoints[T, L, C, K]) list(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := e.BindQuery(c)
	if err != nil {
		slog.WarnContext(ctx, "invalid list query", "error", err)
		respondError(c, asInvalidArgument(err))
		return
	}

	page, err := e.Service.FindAll(ctx, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (e Endpoints[T, L, C, K]) findOne(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := e.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	entity, err := e.Service.FindOne(ctx, id, c.Query("delete") == "true")
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (e Endpoints[T, L, C, K]) update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := e.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	patch, err := e.BindPatch(c)
	if err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		respondError(c, asInvalidArgument(err))
		return
	}

	entity, err := e.Service.Update(ctx, id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (e Endpoints[T, L, C, K]) remove(c *gin.Context) {
	e.mutateOne(c, e.Service.Remove)
}

func (e Endpoints[T, L, C, K]) restore(c *gin.Context) {
	e.mutateOne(c, e.Service.Restore)
}

// delete replies with a single-element array, matching the contract of the
// other mutation endpoints' bulk counterpart.
func (e Endpoints[T, L, C, K]) delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := e.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	entity, err := e.Service.Delete(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, []*T{entity})
}

func (e Endpoints[T, L, C, K]) mutateOne(c *gin.Context, op func(context.Context, K) (*T, error)) {
	ctx := c.Request.Context()

	id, err := e.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	entity, err := op(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (e Endpoints[T, L, C, K]) bulkCreate(c *gin.Context) {
	ctx := c.Request.Context()

	ins, err := e.BindCreateMany(c)
	if err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		respondError(c, asInvalidArgument(err))
		return
	}

	batch, err := e.Service.BulkCreate(ctx, ins)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, batch)
}

func (e Endpoints[T, L, C, K]) bulkRemove(c *gin.Context) {
	ctx := c.Request.Context()

	ids, err := e.bindIDList(c)
	if err != nil {
		respondError(c, err)
		return
	}

	out, err := e.Service.BulkRemove(ctx, ids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkDeletedResponse[K]{Message: out.Message, DeletedIDs: out.IDs})
}

func (e Endpoints[T, L, C, K]) bulkRestore(c *gin.Context) {
	ctx := c.Request.Context()

	ids, err := e.bindIDList(c)
	if err != nil {
		respondError(c, err)
		return
	}

	out, err := e.Service.BulkRestore(ctx, ids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkRestoredResponse[K]{Message: out.Message, RestoredIDs: out.IDs})
}

func (e Endpoints[T, L, C, K]) bulkDelete(c *gin.Context) {
	ctx := c.Request.Context()

	ids, err := e.bindIDList(c)
	if err != nil {
		respondError(c, err)
		return
	}

	out, err := e.Service.BulkDelete(ctx, ids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BulkDeletedResponse[K]{Message: out.Message, DeletedIDs: out.IDs})
}

func (e Endpoints[T, L, C, K]) bindIDList(c *gin.Context) ([]K, error) {
	if e.BindIDs != nil {
		return e.BindIDs(c)
	}
	return BindIDs[K](c)
}

// BindIDs reads the {ids: [...]} body. A missing or malformed body reports
// the same way as an empty list.
func BindIDs[K comparable](c *gin.Context) ([]K, error) {
	var req dto.IDsRequest[K]
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, store.NewInvalidArgument("IDs array is required")
	}
	return req.IDs, nil
}

// IntIDParser rejects non-numeric and zero ids before they reach the store.
func IntIDParser(singular string) func(string) (int64, error) {
	return func(raw string) (int64, error) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id == 0 {
			return 0, store.NewInvalidArgument("A valid %s ID is required", singular)
		}
		return id, nil
	}
}

// UUIDParser validates the id shape at the edge so a malformed uuid is a 400,
// not a failed query.
func UUIDParser(singular string) func(string) (string, error) {
	return func(raw string) (string, error) {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return "", store.NewInvalidArgument("A valid %s ID is required", singular)
		}
		return parsed.String(), nil
	}
}

func bindBody[R any](c *gin.Context) (R, error) {
	var req R
	err := c.ShouldBindJSON(&req)
	return req, err
}

func asInvalidArgument(err error) error {
	var invalid *store.InvalidArgumentError
	if errors.As(err, &invalid) {
		return err
	}
	return store.NewInvalidArgument("%s", err.Error())
}
