// Package images serves read-only image blobs grouped into named
// categories, base64-encoded for direct embedding by the presentation
// layer.
package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bucketwiki/blobstore"
	"github.com/dmitrijs2005/bucketwiki/common"
)

// Store maps image categories to buckets. Nothing is ever written here.
type Store struct {
	blobs      blobstore.Store
	categories map[string]string
}

// NewStore returns an image store with the single "about" category backed
// by aboutBucket.
func NewStore(blobs blobstore.Store, aboutBucket string) *Store {
	return &Store{
		blobs:      blobs,
		categories: map[string]string{"about": aboutBucket},
	}
}

// Get reads an image and returns its sniffed content type and the
// base64-encoded bytes. Unknown categories and unknown names both report
// common.ErrNotFound.
func (s *Store) Get(ctx context.Context, name, category string) (contentType, encoded string, err error) {
	bucket, ok := s.categories[category]
	if !ok {
		return "", "", fmt.Errorf("image category %q: %w", category, common.ErrNotFound)
	}

	data, err := s.blobs.Get(ctx, bucket, name)
	if err != nil {
		return "", "", err
	}

	return http.DetectContentType(data), base64.StdEncoding.EncodeToString(data), nil
}
