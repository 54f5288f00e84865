// Package wiki composes the credential, profile, page and image stores into
// the end-to-end workflows the web layer calls: sign-up, sign-in, upload,
// and favorites editing. The workflows are best-effort multi-step sequences;
// the only atomicity available is the single whole-blob write of the
// underlying store.
package wiki

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/bucketwiki/blobstore"
	"github.com/dmitrijs2005/bucketwiki/common"
	"github.com/dmitrijs2005/bucketwiki/config"
	"github.com/dmitrijs2005/bucketwiki/credentials"
	"github.com/dmitrijs2005/bucketwiki/images"
	"github.com/dmitrijs2005/bucketwiki/logging"
	"github.com/dmitrijs2005/bucketwiki/pages"
	"github.com/dmitrijs2005/bucketwiki/profiles"
)

// Status strings handed to the web layer. The sign-in values are shown to
// users as-is, so their exact spelling is part of the contract.
const (
	StatusSuccess         = "Success"
	StatusUsernameTaken   = "Username is taken."
	StatusInvalidUsername = "Invalid username."
	StatusPassed          = "Passed"
	StatusPasswordFail    = "Password fail"
	StatusUsernameFail    = "Username Fail"
	StatusExists          = "Exists"
)

// Backend is the library surface consumed by the web layer.
type Backend struct {
	credentials *credentials.Store
	profiles    *profiles.Store
	pages       *pages.Store
	images      *images.Store
	logger      logging.Logger
}

// NewBackend wires the stores over an already-constructed blob store.
// Tests inject blobstore.NewMemStore() here.
func NewBackend(blobs blobstore.Store, cfg *config.Config, logger logging.Logger) (*Backend, error) {
	creds, err := credentials.NewStore(blobs, cfg.PasswordsBucket, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("credential store init error: %w", err)
	}

	return &Backend{
		credentials: creds,
		profiles:    profiles.NewStore(blobs, cfg.ProfilesBucket),
		pages:       pages.NewStore(blobs, cfg.ContentBucket),
		images:      images.NewStore(blobs, cfg.ImagesBucket),
		logger:      logger,
	}, nil
}

// New builds the blob store selected by cfg.StorageBackend and wires a
// Backend on top of it.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Backend, error) {
	var (
		blobs blobstore.Store
		err   error
	)

	switch cfg.StorageBackend {
	case config.BackendS3:
		blobs, err = blobstore.NewS3Store(ctx, cfg)
	case config.BackendBolt:
		blobs, err = blobstore.OpenBoltStore(cfg.BoltPath)
	case config.BackendPostgres:
		blobs, err = blobstore.OpenPostgresStore(ctx, cfg.DatabaseDSN)
	case config.BackendMemory:
		blobs = blobstore.NewMemStore()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return NewBackend(blobs, cfg, logger)
}

// opLogger tags a child logger with a fresh correlation id so the steps of
// one workflow can be tied together in the output.
func (b *Backend) opLogger(name string) logging.Logger {
	return b.logger.With("op", name, "op_id", uuid.NewString())
}

// SignUp registers an account. The profile is written before the credential
// record: a credential record must never be visible without its profile, so
// a failed profile write aborts the whole sign-up (fail closed).
func (b *Backend) SignUp(ctx context.Context, firstName, lastName, username, password string) (string, error) {
	log := b.opLogger("sign_up")

	if err := credentials.ValidateUsername(username); err != nil {
		return StatusInvalidUsername, nil
	}

	taken, err := b.credentials.Exists(ctx, username)
	if err != nil {
		return "", err
	}
	if taken {
		return StatusUsernameTaken, nil
	}

	if err := b.profiles.Create(ctx, username, firstName, lastName); err != nil {
		return "", err
	}

	if err := b.credentials.Register(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			// lost the race for the name after our existence check
			return StatusUsernameTaken, nil
		}
		return "", err
	}

	log.Info(ctx, "account created", "username", username)
	return StatusSuccess, nil
}

// SignIn checks the credentials and maps the tri-state verification result
// onto the user-facing status strings.
func (b *Backend) SignIn(ctx context.Context, username, password string) (string, error) {
	res, err := b.credentials.Verify(ctx, username, password)
	if err != nil {
		return "", err
	}

	switch res {
	case credentials.VerifyPassed:
		return StatusPassed, nil
	case credentials.VerifyPasswordFail:
		return StatusPasswordFail, nil
	default:
		return StatusUsernameFail, nil
	}
}

// Upload stores a page on behalf of username. On first creation the page
// name is also recorded on the author's profile; a reupload by the author
// replaces content without re-appending; a reupload by anyone else is
// rejected with StatusExists.
func (b *Backend) Upload(ctx context.Context, pageName string, raw []byte, username string) (string, error) {
	log := b.opLogger("upload")

	outcome, err := b.pages.Put(ctx, pageName, raw, username)
	if err != nil {
		return "", err
	}

	switch outcome {
	case pages.PutDenied:
		log.Warn(ctx, "upload rejected, page owned by another author",
			"page", pageName, "username", username)
		return StatusExists, nil
	case pages.PutCreated:
		if err := b.profiles.RecordAuthoredPage(ctx, username, pageName); err != nil {
			return "", err
		}
		log.Info(ctx, "page created", "page", pageName, "author", username)
	case pages.PutUpdated:
		log.Info(ctx, "page updated", "page", pageName, "author", username)
	}

	return StatusPassed, nil
}

// GetWikiPage returns the content lines of a page.
func (b *Backend) GetWikiPage(ctx context.Context, pageName string) ([]string, error) {
	return b.pages.Get(ctx, pageName)
}

// GetAllPageNames enumerates the stored pages in storage-defined order.
func (b *Backend) GetAllPageNames(ctx context.Context) ([]string, error) {
	return b.pages.ListNames(ctx)
}

// GetUserInfo returns the profile for username.
func (b *Backend) GetUserInfo(ctx context.Context, username string) (*profiles.Profile, error) {
	return b.profiles.Get(ctx, username)
}

// UpdateUserInfo replaces the bio, DOB and location fields of the profile.
func (b *Backend) UpdateUserInfo(ctx context.Context, username string, bio, dob, location *string) error {
	return b.profiles.UpdateContactInfo(ctx, username, bio, dob, location)
}

// GetFavoritesList returns the sorted favorites of username.
func (b *Backend) GetFavoritesList(ctx context.Context, username string) ([]string, error) {
	return b.profiles.Favorites(ctx, username)
}

// AddFavorite marks a page as a favorite of username.
func (b *Backend) AddFavorite(ctx context.Context, username, pageName string) error {
	return b.profiles.AddFavorite(ctx, username, pageName)
}

// RemoveFavorite unmarks a page; unknown entries are ignored.
func (b *Backend) RemoveFavorite(ctx context.Context, username, pageName string) error {
	return b.profiles.RemoveFavorite(ctx, username, pageName)
}

// GetImage returns the content type and base64 body of a stored image.
func (b *Backend) GetImage(ctx context.Context, name, category string) (contentType, encoded string, err error) {
	return b.images.Get(ctx, name, category)
}
