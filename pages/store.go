// Package pages manages authored page records on top of plain blob storage.
package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bucketwiki/blobstore"
)

// Store holds page records, one blob per page name.
type Store struct {
	blobs  blobstore.Store
	bucket string
}

func NewStore(blobs blobstore.Store, bucket string) *Store {
	return &Store{blobs: blobs, bucket: bucket}
}

// Get returns the content lines of a page, or common.ErrNotFound.
func (s *Store) Get(ctx context.Context, pageName string) ([]string, error) {
	data, err := s.blobs.Get(ctx, s.bucket, pageName)
	if err != nil {
		return nil, err
	}
	p := &Page{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("page decode error: %w", err)
	}
	return p.Content, nil
}

// ListNames enumerates all page names. Order is storage-defined.
func (s *Store) ListNames(ctx context.Context) ([]string, error) {
	return s.blobs.List(ctx, s.bucket)
}

// splitLines turns an uploaded body into content lines: newline-delimited,
// trailing whitespace stripped per line, a final empty line dropped.
func splitLines(raw []byte) []string {
	lines := strings.Split(string(raw), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}
	if lines == nil {
		lines = []string{}
	}
	return lines
}

// Put stores an upload under pageName on behalf of author.
//
// A fresh name is created; an existing page is overwritten only when author
// matches the recorded creator, otherwise PutDenied is returned and storage
// is left untouched. The upload transport hands us raw bytes, so the raw
// body is written first and then read back and rewritten as the normalized
// JSON record.
func (s *Store) Put(ctx context.Context, pageName string, raw []byte, author string) (PutOutcome, error) {
	exists, err := s.blobs.Exists(ctx, s.bucket, pageName)
	if err != nil {
		return 0, fmt.Errorf("page lookup error: %w", err)
	}

	outcome := PutCreated
	if exists {
		data, err := s.blobs.Get(ctx, s.bucket, pageName)
		if err != nil {
			return 0, fmt.Errorf("page lookup error: %w", err)
		}
		existing := &Page{}
		if err := json.Unmarshal(data, existing); err != nil {
			return 0, fmt.Errorf("page decode error: %w", err)
		}
		if existing.Author != author {
			return PutDenied, nil
		}
		outcome = PutUpdated
	}

	if err := s.blobs.Put(ctx, s.bucket, pageName, raw); err != nil {
		return 0, fmt.Errorf("page write error: %w", err)
	}

	stored, err := s.blobs.Get(ctx, s.bucket, pageName)
	if err != nil {
		return 0, fmt.Errorf("page readback error: %w", err)
	}

	record, err := json.Marshal(&Page{Content: splitLines(stored), Author: author})
	if err != nil {
		return 0, fmt.Errorf("page encode error: %w", err)
	}
	if err := s.blobs.Put(ctx, s.bucket, pageName, record); err != nil {
		return 0, fmt.Errorf("page write error: %w", err)
	}

	return outcome, nil
}
