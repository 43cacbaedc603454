// Package tablestore wraps the key-value table service behind the operations
// the repositories need: records live in partition groups ("Vehicle",
// "Client", "Rental") and are addressed by (partition, row) keys.
package tablestore

import (
	"context"
	"errors"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrItemExists   = errors.New("item already exists")

	// ErrEmptyKey mirrors the ValidationException DynamoDB raises for
	// empty string key attributes. Callers must validate keys first.
	ErrEmptyKey = errors.New("empty key attribute")
)

// Filter holds attribute equality conditions applied store-side during a
// partition scan. A nil Filter matches everything.
type Filter map[string]any

type Store interface {
	// Create stores a new record, failing with ErrItemExists if the
	// (partition, row) pair is already taken.
	Create(ctx context.Context, partition, row string, item any) error

	// Get loads a record into out, failing with ErrItemNotFound.
	Get(ctx context.Context, partition, row string, out any) error

	// Merge overwrites only the given attributes, leaving others untouched.
	// An empty attrs set degrades to an existence check. Fails with
	// ErrItemNotFound if the record does not exist.
	Merge(ctx context.Context, partition, row string, attrs map[string]any) error

	// Replace overwrites the whole record.
	Replace(ctx context.Context, partition, row string, item any) error

	// Delete removes a record, failing with ErrItemNotFound.
	Delete(ctx context.Context, partition, row string) error

	// Query scans one partition, applying filter store-side, and decodes the
	// result set into out (a pointer to a slice). Result order is whatever
	// the store yields.
	Query(ctx context.Context, partition string, filter Filter, out any) error
}
