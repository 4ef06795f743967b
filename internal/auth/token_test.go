package auth

import (
	"testing"
	"time"

	"jobportal_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 24*time.Hour)

	token, err := tm.Generate("user-42", "alice", models.UserRoleSeeker)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.UserRoleSeeker, claims.Role)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tm1 := NewTokenManager("secret-one", 24*time.Hour)
	tm2 := NewTokenManager("secret-two", 24*time.Hour)

	token, err := tm1.Generate("user-42", "alice", models.UserRoleSeeker)
	require.NoError(t, err)

	// Подпись чужим секретом не проходит
	_, err = tm2.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 24*time.Hour)

	_, err := tm.Parse("definitely.not.a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tm.Parse("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Expiry(t *testing.T) {
	t.Parallel()

	// Живой токен до истечения срока
	alive := NewTokenManager("test-secret", time.Hour)
	token, err := alive.Generate("user-42", "alice", models.UserRoleEmployer)
	require.NoError(t, err)
	_, err = alive.Parse(token)
	assert.NoError(t, err)

	// Токен с уже истекшим сроком: просрочка различима от битого токена
	expired := NewTokenManager("test-secret", -time.Second)
	token, err = expired.Generate("user-42", "alice", models.UserRoleEmployer)
	require.NoError(t, err)

	_, err = expired.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}
