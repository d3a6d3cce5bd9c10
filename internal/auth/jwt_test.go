package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.GenerateToken("user-1", "user@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.GenerateToken("user-1", "user@example.com", "customer")
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := mgr.GenerateToken("user-1", "user@example.com", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_Garbage(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	_, err := mgr.ValidateToken("not-a-token")
	assert.Error(t, err)
}
