// Package credentials manages one record per username holding a keyed hash
// of the password, on top of plain blob storage.
//
// The digest is blake2b-256 keyed with a process-wide secret over
// username || 0x00 || password. The username plus the global secret stand in
// for a salt: two accounts with the same password store different digests,
// and digests cannot be recomputed without the secret. A random per-record
// salt would be stronger; the scheme is kept as is because stored digests
// must stay reproducible across deployments sharing the secret.
package credentials

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/dmitrijs2005/bucketwiki/blobstore"
	"github.com/dmitrijs2005/bucketwiki/common"
)

// DisallowedUsernameChars are rejected at registration; they would collide
// with key and path syntax in the storage layer.
const DisallowedUsernameChars = " ,\\/"

// VerifyResult is the tri-state outcome of a login check. An unknown
// username and a wrong password are reported distinctly so the caller can
// produce different user-facing messages.
type VerifyResult int

const (
	VerifyPassed VerifyResult = iota
	VerifyPasswordFail
	VerifyUsernameFail
)

// Store holds credential records, one blob per username.
type Store struct {
	blobs  blobstore.Store
	bucket string
	secret []byte
}

// NewStore returns a credential store writing to the given bucket.
// The secret must be 1..64 bytes (a blake2b key size limit).
func NewStore(blobs blobstore.Store, bucket string, secret string) (*Store, error) {
	if len(secret) == 0 || len(secret) > 64 {
		return nil, fmt.Errorf("secret key must be 1..64 bytes, got %d", len(secret))
	}
	return &Store{blobs: blobs, bucket: bucket, secret: []byte(secret)}, nil
}

// recordKey maps a username to its blob key.
func recordKey(username string) string {
	return username + ".txt"
}

// ValidateUsername rejects empty names and names containing a character
// from DisallowedUsernameChars.
func ValidateUsername(username string) error {
	if username == "" || strings.ContainsAny(username, DisallowedUsernameChars) {
		return common.ErrInvalidUsername
	}
	return nil
}

func (s *Store) digest(username, password string) string {
	h, err := blake2b.New256(s.secret)
	if err != nil {
		// key size is validated in NewStore
		panic(err)
	}
	h.Write([]byte(username))
	h.Write([]byte{0})
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// Exists reports whether a credential record is present for username,
// i.e. whether sign-up for that name has succeeded.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	return s.blobs.Exists(ctx, s.bucket, recordKey(username))
}

// Register validates the username, enforces uniqueness, and persists the
// keyed digest. Returns common.ErrInvalidUsername or common.ErrAlreadyExists
// on the recoverable failures; storage errors propagate untouched.
func (s *Store) Register(ctx context.Context, username, password string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}

	taken, err := s.blobs.Exists(ctx, s.bucket, recordKey(username))
	if err != nil {
		return fmt.Errorf("credential lookup error: %w", err)
	}
	if taken {
		return common.ErrAlreadyExists
	}

	return s.blobs.Put(ctx, s.bucket, recordKey(username), []byte(s.digest(username, password)))
}

// Verify looks up the stored digest and compares it against a recomputed
// one. The error return is reserved for storage failures.
func (s *Store) Verify(ctx context.Context, username, password string) (VerifyResult, error) {
	stored, err := s.blobs.Get(ctx, s.bucket, recordKey(username))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return VerifyUsernameFail, nil
		}
		return 0, fmt.Errorf("credential lookup error: %w", err)
	}

	candidate := s.digest(username, password)
	if subtle.ConstantTimeCompare(stored, []byte(candidate)) != 1 {
		return VerifyPasswordFail, nil
	}
	return VerifyPassed, nil
}
