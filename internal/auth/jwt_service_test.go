package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dinedir/internal/model"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.GenerateToken(7, model.RoleOwner)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.RoleOwner, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)
	other := NewJWTService("other-secret", 30*time.Minute)

	token, err := svc.GenerateToken(7, model.RoleOwner)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	svc.expiry = -time.Minute

	token, err := svc.GenerateToken(7, model.RoleUser)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_UnknownRole(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.GenerateToken(7, model.Role("superuser"))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
