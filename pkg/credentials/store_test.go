package credentials_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/pkg/credentials"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "credentials.json")
}

func TestOpenMissingFileIsEmptySession(t *testing.T) {
	s, err := credentials.Open(storePath(t))
	require.NoError(t, err)
	assert.Equal(t, "", s.Token())
	assert.Nil(t, s.CurrentUser())
	assert.False(t, s.IsAdmin())
}

func TestSaveRoundTrip(t *testing.T) {
	path := storePath(t)

	s, err := credentials.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(credentials.Credentials{
		AccessToken:  "tok-123",
		RefreshToken: "ref-456",
		CurrentUser:  &models.User{Email: "alice@example.com", Role: models.RoleAdmin},
	}))

	// A fresh store sees the persisted session.
	reopened, err := credentials.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", reopened.Token())
	assert.Equal(t, "ref-456", reopened.RefreshToken())
	require.NotNil(t, reopened.CurrentUser())
	assert.Equal(t, "alice@example.com", reopened.CurrentUser().Email)
	assert.True(t, reopened.IsAdmin())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestClearRemovesFile(t *testing.T) {
	path := storePath(t)

	s, err := credentials.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(credentials.Credentials{AccessToken: "tok"}))

	require.NoError(t, s.Clear())
	assert.Equal(t, "", s.Token())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing an already-empty session is fine.
	require.NoError(t, s.Clear())
}

func TestSetCurrentUserKeepsTokens(t *testing.T) {
	s, err := credentials.Open(storePath(t))
	require.NoError(t, err)
	require.NoError(t, s.Save(credentials.Credentials{AccessToken: "tok"}))

	require.NoError(t, s.SetCurrentUser(&models.User{Email: "bob@example.com", Role: models.RoleEmployee}))

	assert.Equal(t, "tok", s.Token())
	assert.Equal(t, "bob@example.com", s.CurrentUser().Email)
	assert.False(t, s.IsAdmin())
}

func TestTokenClaims(t *testing.T) {
	s, err := credentials.Open(storePath(t))
	require.NoError(t, err)

	_, err = s.TokenClaims()
	assert.Error(t, err, "no token stored")

	require.NoError(t, s.Save(credentials.Credentials{AccessToken: unsignedJWT(t, map[string]interface{}{
		"sub": "alice@example.com",
		"exp": 1893456000,
	})}))

	claims, err := s.TokenClaims()
	require.NoError(t, err)
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", sub)
}

func TestTokenClaimsRejectsOpaqueToken(t *testing.T) {
	s, err := credentials.Open(storePath(t))
	require.NoError(t, err)
	require.NoError(t, s.Save(credentials.Credentials{AccessToken: "not-a-jwt"}))

	_, err = s.TokenClaims()
	assert.Error(t, err)
}

// unsignedJWT builds a structurally valid header.payload.signature token.
// Claims are read without verification, so the signature can be anything.
func unsignedJWT(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	enc := func(v interface{}) string {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	return fmt.Sprintf("%s.%s.%s", enc(header), enc(claims), base64.RawURLEncoding.EncodeToString([]byte("sig")))
}
