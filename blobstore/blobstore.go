// Package blobstore abstracts the key-addressed object storage the wiki core
// runs on. A record is a whole blob identified by a string key within a named
// collection (bucket); there are no partial reads, no multi-key transactions,
// and a single whole-object write is the only atomic unit.
package blobstore

import "context"

// Store is the capability the wiki stores need from object storage.
// Implementations must be safe for concurrent use.
//
// Every call is a single attempt; callers treat an error as fatal for the
// current request and never retry here.
type Store interface {
	// Exists reports whether a blob is present under bucket/key.
	Exists(ctx context.Context, bucket, key string) (bool, error)

	// Get reads the whole blob. Returns common.ErrNotFound if absent.
	Get(ctx context.Context, bucket, key string) ([]byte, error)

	// Put writes the whole blob, overwriting any previous value.
	Put(ctx context.Context, bucket, key string, data []byte) error

	// List enumerates the keys of a bucket. Order is storage-defined.
	List(ctx context.Context, bucket string) ([]string, error)
}
