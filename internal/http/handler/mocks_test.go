package handler_test

import (
	"context"

	"refbase.app/api-server/internal/store"
)

// mockService implements handler.Service with function fields, one mock for
// every resource shape.
type mockService[T, L, C any, K comparable] struct {
	createFn      func(ctx context.Context, in C) (K, error)
	updateFn      func(ctx context.Context, id K, patch map[string]any) (*T, error)
	findOneFn     func(ctx context.Context, id K, deleted bool) (*T, error)
	findAllFn     func(ctx context.Context, q store.ListQuery) (*store.Page[L], error)
	removeFn      func(ctx context.Context, id K) (*T, error)
	restoreFn     func(ctx context.Context, id K) (*T, error)
	deleteFn      func(ctx context.Context, id K) (*T, error)
	bulkCreateFn  func(ctx context.Context, ins []C) (*store.CreatedBatch[T], error)
	bulkRemoveFn  func(ctx context.Context, ids []K) (*store.Outcome[K], error)
	bulkRestoreFn func(ctx context.Context, ids []K) (*store.Outcome[K], error)
	bulkDeleteFn  func(ctx context.Context, ids []K) (*store.Outcome[K], error)
}

func (m *mockService[T, L, C, K]) Create(ctx context.Context, in C) (K, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	var zero K
	return zero, nil
}

func (m *mockService[T, L, C, K]) Update(ctx context.Context, id K, patch map[string]any) (*T, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockService[T, L, C, K]) FindOne(ctx context.Context, id K, deleted bool) (*T, error) {
	if m.findOneFn != nil {
		return m.findOneFn(ctx, id, deleted)
	}
	return nil, nil
}

func (m *mockService[T, L, C, K]) FindAll(ctx context.Context, q store.ListQuery) (*store.Page[L], error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, q)
	}
	return &store.Page[L]{Data: []L{}}, nil
}

func (m *mockService[T, L, C, K]) Remove(ctx context.Context, id K) (*T, error) {
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return nil, nil
}

func (m *mockService[T, L, C, K]) Restore(ctx context.Context, id K) (*T, error) {
	if m.restoreFn != nil {
		return m.restoreFn(ctx, id)
	}
	return nil, nil
}

func (m *mockService[T, L, C, K]) Delete(ctx context.Context, id K) (*T, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, nil
}

func (m *mockService[T, L, C, K]) BulkCreate(ctx context.Context, ins []C) (*store.CreatedBatch[T], error) {
	if m.bulkCreateFn != nil {
		return m.bulkCreateFn(ctx, ins)
	}
	return nil, nil
}

func (m *mockService[T, L, C, K]) BulkRemove(ctx context.Context, ids []K) (*store.Outcome[K], error) {
	if m.bulkRemoveFn != nil {
		return m.bulkRemoveFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockService[T, L, C, K]) BulkRestore(ctx context.Context, ids []K) (*store.Outcome[K], error) {
	if m.bulkRestoreFn != nil {
		return m.bulkRestoreFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockService[T, L, C, K]) BulkDelete(ctx context.Context, ids []K) (*store.Outcome[K], error) {
	if m.bulkDeleteFn != nil {
		return m.bulkDeleteFn(ctx, ids)
	}
	return nil, nil
}
