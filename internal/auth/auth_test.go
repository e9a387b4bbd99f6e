package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	s, err := NewSigner("s3cret")
	require.NoError(t, err)

	tok, err := s.GenerateJWT("id-1", "ana", "SUPERADMIN")
	require.NoError(t, err)

	claims, err := s.ParseAndVerify(tok)
	require.NoError(t, err)
	assert.Equal(t, "id-1", claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "SUPERADMIN", claims.Role)
}

func TestRejectsForeignAndExpiredTokens(t *testing.T) {
	a, _ := NewSigner("one")
	b, _ := NewSigner("two")

	tok, err := a.GenerateJWT("id", "u", "ADMIN")
	require.NoError(t, err)
	_, err = b.ParseAndVerify(tok)
	assert.Error(t, err)

	a.now = func() time.Time { return time.Now().Add(-2 * TokenTTL) }
	old, err := a.GenerateJWT("id", "u", "ADMIN")
	require.NoError(t, err)
	_, err = a.ParseAndVerify(old)
	assert.Error(t, err)

	_, err = a.ParseAndVerify("not-a-token")
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := NewSigner("")
	assert.Error(t, err)
}
