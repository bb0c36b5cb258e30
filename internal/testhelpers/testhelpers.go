// Package testhelpers provides shared fixtures for package tests: an
// in-memory sqlite database with the full schema, and canned users with
// valid tokens.
package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkful/recipe-api/internal/database"
	"github.com/forkful/recipe-api/internal/models"
	"github.com/forkful/recipe-api/internal/service"
	"github.com/forkful/recipe-api/internal/types"
)

// TestJWTSecret signs tokens in tests.
const TestJWTSecret = "test-secret"

// TestPassword is the default password for fixture users.
const TestPassword = "testpass123"

// SetupTestDB creates a migrated in-memory sqlite database. Each call
// gets its own database so tests stay independent.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

// CreateTestUser registers a user through the real registration path.
func CreateTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	authService := service.NewAuthService(db, TestJWTSecret)
	user, err := authService.Register(&types.RegisterRequest{
		Email:    email,
		Password: TestPassword,
		Name:     "Test User",
	})
	require.NoError(t, err)

	return user
}

// CreateTestUserAndToken registers a user and returns a valid bearer
// token for it.
func CreateTestUserAndToken(t *testing.T, db *gorm.DB, email string) (*models.User, string) {
	t.Helper()

	user := CreateTestUser(t, db, email)
	authService := service.NewAuthService(db, TestJWTSecret)
	token, err := authService.GenerateToken(user.ID)
	require.NoError(t, err)

	return user, token
}
