package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bucketwiki/blobstore"
	"github.com/dmitrijs2005/bucketwiki/common"
)

const testBucket = "users_profiles"

func strptr(s string) *string { return &s }

func newStore(t *testing.T) (*Store, *blobstore.MemStore) {
	t.Helper()
	blobs := blobstore.NewMemStore()
	return NewStore(blobs, testBucket), blobs
}

func TestCreate_And_Get(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "bob", "Bob", "Williams"))

	p, err := s.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", p.FirstName)
	assert.Equal(t, "Williams", p.LastName)
	assert.Equal(t, "bob", p.Username)
	assert.Empty(t, p.PagesAuthored)
	assert.Empty(t, p.Favorites)
	assert.Nil(t, p.Bio)
	assert.Nil(t, p.DOB)
	assert.Nil(t, p.Location)
}

func TestGet_UnknownUser(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Get(context.Background(), "nobody")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRecordJSONShape(t *testing.T) {
	s, blobs := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "bob", "Bob", "Williams"))

	data, err := blobs.Get(ctx, testBucket, "bob.txt")
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{
		"first_name", "last_name", "username",
		"pages_authored", "favorites", "bio", "DOB", "location",
	} {
		assert.Contains(t, raw, field)
	}
	// empty lists marshal as [], not null
	assert.Equal(t, "[]", string(raw["pages_authored"]))
	assert.Equal(t, "[]", string(raw["favorites"]))
	assert.Equal(t, "null", string(raw["bio"]))
}

func TestUpdateContactInfo_LeavesListsUntouched(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "bob", "Bob", "Williams"))
	require.NoError(t, s.RecordAuthoredPage(ctx, "bob", "go-tips"))
	require.NoError(t, s.AddFavorite(ctx, "bob", "welcome"))

	require.NoError(t, s.UpdateContactInfo(ctx, "bob",
		strptr("gopher"), strptr("1990-01-02"), strptr("Riga")))

	p, err := s.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "gopher", *p.Bio)
	assert.Equal(t, "1990-01-02", *p.DOB)
	assert.Equal(t, "Riga", *p.Location)
	assert.Equal(t, "Bob", p.FirstName)
	assert.Equal(t, []string{"go-tips"}, p.PagesAuthored)
	assert.Equal(t, []string{"welcome"}, p.Favorites)

	// clearing works too
	require.NoError(t, s.UpdateContactInfo(ctx, "bob", nil, nil, nil))
	p, err = s.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, p.Bio)
	assert.Equal(t, []string{"go-tips"}, p.PagesAuthored)
}

func TestRecordAuthoredPage_Appends(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "bob", "Bob", "Williams"))
	require.NoError(t, s.RecordAuthoredPage(ctx, "bob", "z-page"))
	require.NoError(t, s.RecordAuthoredPage(ctx, "bob", "a-page"))

	p, err := s.Get(ctx, "bob")
	require.NoError(t, err)
	// creation order, not sorted
	assert.Equal(t, []string{"z-page", "a-page"}, p.PagesAuthored)
}

func TestAddFavorite_IdempotentAndSorted(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "bob", "Bob", "Williams"))
	require.NoError(t, s.AddFavorite(ctx, "bob", "zebra"))
	require.NoError(t, s.AddFavorite(ctx, "bob", "apple"))
	require.NoError(t, s.AddFavorite(ctx, "bob", "zebra"))

	favs, err := s.Favorites(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "zebra"}, favs)
}

func TestRemoveFavorite(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "bob", "Bob", "Williams"))
	require.NoError(t, s.AddFavorite(ctx, "bob", "apple"))
	require.NoError(t, s.AddFavorite(ctx, "bob", "zebra"))

	require.NoError(t, s.RemoveFavorite(ctx, "bob", "apple"))
	favs, err := s.Favorites(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra"}, favs)

	// removing an absent entry is a no-op
	require.NoError(t, s.RemoveFavorite(ctx, "bob", "apple"))
	favs, err = s.Favorites(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra"}, favs)
}
