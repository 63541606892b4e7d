// Package storage abstracts the object store holding advertisement media.
// Uploads happen out-of-band: the admin UI uploads straight to the CDN and
// hands this API a stable object key. This package only resolves public
// URLs and releases blobs when creatives are deleted or replaced.
package storage

import "context"

// Storage is the minimal media store contract used by the ads domains.
type Storage interface {
	// Delete removes a blob by its key. Returns nil if the blob is already gone.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a blob key.
	GetURL(key string) string
}

// Disabled is used when no media store is configured (local development).
// Deletes are dropped; URLs are returned as bare keys.
type Disabled struct{}

func (Disabled) Delete(ctx context.Context, key string) error { return nil }

func (Disabled) GetURL(key string) string { return key }
