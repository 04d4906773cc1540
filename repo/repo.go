// Package repo provides one generic document repository used by every
// content entity. The Mongo implementation backs the server; the Memory
// implementation backs tests.
package repo

import "context"

// Filter matches documents whose named fields equal the given values. Field
// names are bson tags. An empty filter matches everything.
type Filter map[string]any

// Store is the uniform CRUD surface over a collection of documents of type T.
// Documents carry their identifier in a string field tagged `bson:"id"`.
type Store[T any] interface {
	// List returns all matching documents, fully materialized, in the
	// store's configured order.
	List(ctx context.Context, filter Filter) ([]T, error)
	// GetByID returns apperrors.ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id string) (T, error)
	// GetByField looks a document up by a single field, e.g. slug or email.
	GetByField(ctx context.Context, field, value string) (T, error)
	// Create writes a new document. The caller assigns the id.
	Create(ctx context.Context, doc T) error
	// Update merges fields into the document and returns the result, or
	// apperrors.ErrNotFound when the id is absent.
	Update(ctx context.Context, id string, fields Filter) (T, error)
	// Delete removes the document, apperrors.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
	// Count returns the number of matching documents.
	Count(ctx context.Context, filter Filter) (int64, error)
	// InsertMany writes a batch in one call. Used only for seeding.
	InsertMany(ctx context.Context, docs []T) error
}
