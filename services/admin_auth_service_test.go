package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndVerify(t *testing.T) {
	svc := NewAdminAuthService()

	hash, err := svc.HashPassword("contraseña-segura")
	require.NoError(t, err)
	assert.NotEqual(t, "contraseña-segura", hash)

	assert.True(t, svc.VerifyPassword(hash, "contraseña-segura"))
	assert.False(t, svc.VerifyPassword(hash, "otra-contraseña"))
	assert.False(t, svc.VerifyPassword("not-a-bcrypt-hash", "contraseña-segura"))
}

func TestValidatePassword(t *testing.T) {
	svc := NewAdminAuthService()

	assert.True(t, svc.ValidatePassword("12345678"))
	assert.True(t, svc.ValidatePassword("una contraseña larga"))
	assert.False(t, svc.ValidatePassword("1234567"))
	assert.False(t, svc.ValidatePassword(""))
}

func TestHashToken(t *testing.T) {
	svc := NewAdminAuthService()

	first := svc.HashToken("token-abc")
	assert.Len(t, first, 64)
	assert.Equal(t, first, svc.HashToken("token-abc"))
	assert.NotEqual(t, first, svc.HashToken("token-xyz"))
}
