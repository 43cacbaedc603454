// Package blobstore uploads vehicle photos to the object store and hands
// back public URLs.
package blobstore

import "context"

type Store interface {
	// Put stores the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
