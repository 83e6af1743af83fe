package api

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is the five-operation contract every catalog entity shares,
// bound to one collection path such as "/authors". Each operation maps onto
// exactly one HTTP call; there are no retries and no batching.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a resource to a collection path.
func NewResource[T any](c *Client, path string) Resource[T] {
	return Resource[T]{client: c, path: path}
}

// Path returns the collection path the resource is bound to.
func (r Resource[T]) Path() string { return r.path }

// List fetches the full collection.
func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.Do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single record by id.
func (r Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), nil, &out)
	return out, err
}

// Create submits a new record and returns it as stored, id assigned.
func (r Resource[T]) Create(ctx context.Context, v T) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPost, r.path, v, &out)
	return out, err
}

// Update replaces the record with the given id.
func (r Resource[T]) Update(ctx context.Context, id int64, v T) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), v, &out)
	return out, err
}

// Delete removes the record with the given id.
func (r Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.client.Do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
}
