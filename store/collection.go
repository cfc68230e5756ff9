// Package store exposes named record collections with document-store style
// operations. Records are addressed by column-equality filters and updated
// with column→value sets.
package store

import "context"

// DefaultListLimit caps full-collection reads.
const DefaultListLimit = 1000

// Filter matches records whose columns equal every given value. An empty
// filter matches everything.
type Filter map[string]interface{}

// ByID filters on the primary identifier.
func ByID(id string) Filter {
	return Filter{"id": id}
}

// Collection is a single named set of records of type T.
type Collection[T any] interface {
	// Name returns the collection name used in logs and errors.
	Name() string

	InsertOne(ctx context.Context, doc *T) error
	InsertMany(ctx context.Context, docs []T) error

	// FindOne returns ErrNotFound when nothing matches.
	FindOne(ctx context.Context, filter Filter) (*T, error)

	// Find returns at most limit records in storage order. A limit of zero
	// or less means no limit.
	Find(ctx context.Context, filter Filter, limit int) ([]T, error)

	// UpdateOne applies set to the first matching record and reports how
	// many records matched.
	UpdateOne(ctx context.Context, filter Filter, set map[string]interface{}) (int64, error)

	// DeleteOne removes the first matching record and reports how many
	// records were removed.
	DeleteOne(ctx context.Context, filter Filter) (int64, error)

	DeleteMany(ctx context.Context, filter Filter) (int64, error)
}
