package session

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/skillswap/internal/domain"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newStore(t)

	user := &domain.User{
		ID:            uuid.New(),
		Name:          "John Doe",
		Email:         "john@example.com",
		Location:      "New York, NY",
		SkillsOffered: []string{"React", "TypeScript"},
		SkillsWanted:  []string{"Python"},
		Availability:  []string{"Weekends"},
		Rating:        4.8,
		ReviewCount:   12,
		IsPublic:      true,
	}

	require.NoError(t, store.Save(user))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, user.ID, loaded.ID)
	assert.Equal(t, user.Name, loaded.Name)
	assert.Equal(t, user.Location, loaded.Location)
	assert.Equal(t, user.SkillsOffered, loaded.SkillsOffered)
	assert.Equal(t, user.Rating, loaded.Rating)
}

func TestFileStoreLoadAbsent(t *testing.T) {
	store := newStore(t)

	user, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, user, "absent file means logged out")
}

func TestFileStoreSaveReplaces(t *testing.T) {
	store := newStore(t)

	first := &domain.User{ID: uuid.New(), Name: "First"}
	second := &domain.User{ID: uuid.New(), Name: "Second"}

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, second.ID, loaded.ID)
}

func TestFileStoreClearIdempotent(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Save(&domain.User{ID: uuid.New()}))
	require.NoError(t, store.Clear())

	user, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, user)

	// Clearing again is fine.
	require.NoError(t, store.Clear())
}
