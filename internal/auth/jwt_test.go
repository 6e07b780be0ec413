package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager(TokenManagerParams{Secret: "test-secret"})
}

func TestTokenRoundtrip(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	claims, err := m.Verify(access, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, TokenAccess, claims.TokenType)

	claims, err = m.Verify(refresh, TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, TokenRefresh, claims.TokenType)
}

func TestTokenTypeMismatch(t *testing.T) {
	m := newTestManager()

	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	// a refresh token must not open an API session
	_, err = m.Verify(refresh, TokenAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	access, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	_, err = m.Verify(access, TokenRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewTokenManager(TokenManagerParams{Secret: "another-secret"})

	access, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = other.Verify(access, TokenAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	m := newTestManager()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(token, TokenAccess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
