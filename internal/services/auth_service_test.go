package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/talentflow/internal/models"
	pgrepo "github.com/talentflow/talentflow/internal/repositories/postgres"
	"github.com/talentflow/talentflow/internal/utils"
)

func TestLoginWithSeededUsers(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, pgrepo.SeedUsers(db, "admin123"))

	svc := NewAuthService(pgrepo.NewUserRepo(db), "test-secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "recruiter@talentflow.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleRecruiter, user.Role)
	assert.NotEmpty(t, token)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, models.RoleRecruiter, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, pgrepo.SeedUsers(db, "admin123"))

	svc := NewAuthService(pgrepo.NewUserRepo(db), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "admin@talentflow.com", "wrong")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(pgrepo.NewUserRepo(db), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@talentflow.com", "admin123")
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestLoginMissingCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(pgrepo.NewUserRepo(db), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "", "")
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestSeedUsersIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, pgrepo.SeedUsers(db, "admin123"))
	require.NoError(t, pgrepo.SeedUsers(db, "other-password"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}
