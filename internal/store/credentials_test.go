package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oelbekkali/colisops/models"
)

func newFileStore(t *testing.T) (CredentialStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials.json")
	s, err := NewFileCredentialStore(path)
	require.NoError(t, err)

	return s, path
}

func TestFileCredentialStore_TokenRoundTrip(t *testing.T) {
	s, path := newFileStore(t)

	require.NoError(t, s.SaveToken("tkn-123"))
	assert.Equal(t, "tkn-123", s.Token())

	// a fresh store over the same file sees the persisted token
	reopened, err := NewFileCredentialStore(path)
	require.NoError(t, err)
	assert.Equal(t, "tkn-123", reopened.Token())
}

func TestFileCredentialStore_UserRoundTrip(t *testing.T) {
	s, path := newFileStore(t)

	user := models.User{
		Email: "admin@colisops.test",
		Role:  models.RoleEntity{ID: 1, Name: models.RoleAdmin},
	}
	require.NoError(t, s.SaveUser(user))

	got, ok := s.ReadUser()
	require.True(t, ok)
	assert.Equal(t, user, got)

	reopened, err := NewFileCredentialStore(path)
	require.NoError(t, err)
	got, ok = reopened.ReadUser()
	require.True(t, ok)
	assert.Equal(t, user.Email, got.Email)
}

func TestFileCredentialStore_ReadUser_Empty(t *testing.T) {
	s, _ := newFileStore(t)

	_, ok := s.ReadUser()
	assert.False(t, ok)
}

func TestFileCredentialStore_CorruptedProfileKeepsToken(t *testing.T) {
	_, path := newFileStore(t)

	err := os.WriteFile(path, []byte(`{"auth_token":"tkn-123","auth_user":"{not json"}`), 0o600)
	require.NoError(t, err)

	s, err := NewFileCredentialStore(path)
	require.NoError(t, err)

	assert.Equal(t, "tkn-123", s.Token())
	_, ok := s.ReadUser()
	assert.False(t, ok, "a broken profile must read as absent, not fail")
}

func TestFileCredentialStore_CorruptedFileStartsEmpty(t *testing.T) {
	_, path := newFileStore(t)

	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	s, err := NewFileCredentialStore(path)
	require.NoError(t, err)
	assert.Empty(t, s.Token())
}

func TestFileCredentialStore_Clear(t *testing.T) {
	s, path := newFileStore(t)

	require.NoError(t, s.SaveToken("tkn-123"))
	require.NoError(t, s.SaveUser(models.User{Email: "a@b.c"}))

	require.NoError(t, s.Clear())

	assert.Empty(t, s.Token())
	_, ok := s.ReadUser()
	assert.False(t, ok)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "credentials file should be removed")

	// clearing twice is a no-op
	require.NoError(t, s.Clear())
}

func TestFileCredentialStore_InMemory(t *testing.T) {
	s, err := NewFileCredentialStore(":memory:")
	require.NoError(t, err)

	require.NoError(t, s.SaveToken("tkn-123"))
	assert.Equal(t, "tkn-123", s.Token())

	fresh, err := NewFileCredentialStore(":memory:")
	require.NoError(t, err)
	assert.Empty(t, fresh.Token())
}

func TestFileCredentialStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "credentials.json")
	s, err := NewFileCredentialStore(path)
	require.NoError(t, err)

	require.NoError(t, s.SaveToken("tkn-123"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
