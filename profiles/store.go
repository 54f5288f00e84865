// Package profiles manages one JSON record per username on top of plain
// blob storage.
//
// Every mutation here is a read-modify-write of the whole record with no
// locking or compare-and-swap: concurrent writers to the same username race
// and the last writer wins. That is the contract of the underlying store
// and is acceptable at this system's scale.
package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/bucketwiki/blobstore"
)

// Store holds profile records, one blob per username.
type Store struct {
	blobs  blobstore.Store
	bucket string
}

func NewStore(blobs blobstore.Store, bucket string) *Store {
	return &Store{blobs: blobs, bucket: bucket}
}

func recordKey(username string) string {
	return username + ".txt"
}

func (s *Store) load(ctx context.Context, username string) (*Profile, error) {
	data, err := s.blobs.Get(ctx, s.bucket, recordKey(username))
	if err != nil {
		return nil, err
	}
	p := &Profile{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("profile decode error: %w", err)
	}
	return p, nil
}

func (s *Store) save(ctx context.Context, p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile encode error: %w", err)
	}
	return s.blobs.Put(ctx, s.bucket, recordKey(p.Username), data)
}

// Create writes a fresh profile with empty lists and unset contact fields.
// Called by the orchestrator right after a successful registration.
func (s *Store) Create(ctx context.Context, username, firstName, lastName string) error {
	return s.save(ctx, &Profile{
		FirstName:     firstName,
		LastName:      lastName,
		Username:      username,
		PagesAuthored: []string{},
		Favorites:     []string{},
	})
}

// Get returns the profile, or common.ErrNotFound if the account is unknown.
func (s *Store) Get(ctx context.Context, username string) (*Profile, error) {
	return s.load(ctx, username)
}

// UpdateContactInfo replaces bio, DOB and location, leaving names and the
// derived lists untouched.
func (s *Store) UpdateContactInfo(ctx context.Context, username string, bio, dob, location *string) error {
	p, err := s.load(ctx, username)
	if err != nil {
		return err
	}
	p.Bio = bio
	p.DOB = dob
	p.Location = location
	return s.save(ctx, p)
}

// RecordAuthoredPage appends pageName to the authored list. No
// de-duplication: the orchestrator only calls this on first creation of a
// page, so the same name never comes in twice through a supported flow.
func (s *Store) RecordAuthoredPage(ctx context.Context, username, pageName string) error {
	p, err := s.load(ctx, username)
	if err != nil {
		return err
	}
	p.PagesAuthored = append(p.PagesAuthored, pageName)
	return s.save(ctx, p)
}

// AddFavorite inserts pageName if absent and keeps the list sorted.
// Adding a present entry is a no-op.
func (s *Store) AddFavorite(ctx context.Context, username, pageName string) error {
	p, err := s.load(ctx, username)
	if err != nil {
		return err
	}
	for _, f := range p.Favorites {
		if f == pageName {
			return nil
		}
	}
	p.Favorites = append(p.Favorites, pageName)
	sort.Strings(p.Favorites)
	return s.save(ctx, p)
}

// RemoveFavorite removes pageName if present and keeps the list sorted.
// Removing an absent entry is a no-op, not an error.
func (s *Store) RemoveFavorite(ctx context.Context, username, pageName string) error {
	p, err := s.load(ctx, username)
	if err != nil {
		return err
	}
	kept := p.Favorites[:0]
	found := false
	for _, f := range p.Favorites {
		if f == pageName {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return nil
	}
	p.Favorites = kept
	sort.Strings(p.Favorites)
	return s.save(ctx, p)
}

// Favorites returns the sorted favorites list for the account.
func (s *Store) Favorites(ctx context.Context, username string) ([]string, error) {
	p, err := s.load(ctx, username)
	if err != nil {
		return nil, err
	}
	return p.Favorites, nil
}
