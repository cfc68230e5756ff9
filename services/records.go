package services

import (
	"context"
	"errors"
	"fmt"

	"inventory-backend/store"
)

// records implements the read, list, update and delete contract shared by
// every entity service.
type records[T any] struct {
	coll   store.Collection[T]
	entity string
}

func (r records[T]) get(ctx context.Context, id string) (*T, error) {
	doc, err := r.coll.FindOne(ctx, store.ByID(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Entity: r.entity, ID: id}
		}
		return nil, fmt.Errorf("get %s %s: %w", r.entity, id, err)
	}
	return doc, nil
}

func (r records[T]) list(ctx context.Context) ([]T, error) {
	docs, err := r.coll.Find(ctx, nil, store.DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.coll.Name(), err)
	}
	return docs, nil
}

// update writes set onto an existing record and returns the record as
// stored afterwards. Nothing is written when id does not exist.
func (r records[T]) update(ctx context.Context, id string, set map[string]interface{}) (*T, error) {
	if _, err := r.get(ctx, id); err != nil {
		return nil, err
	}
	if len(set) > 0 {
		if _, err := r.coll.UpdateOne(ctx, store.ByID(id), set); err != nil {
			return nil, fmt.Errorf("update %s %s: %w", r.entity, id, err)
		}
	}
	return r.get(ctx, id)
}

func (r records[T]) delete(ctx context.Context, id string) error {
	n, err := r.coll.DeleteOne(ctx, store.ByID(id))
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", r.entity, id, err)
	}
	if n == 0 {
		return &NotFoundError{Entity: r.entity, ID: id}
	}
	return nil
}
