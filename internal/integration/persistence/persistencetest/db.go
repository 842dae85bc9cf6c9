// Package persistencetest opens throwaway in-memory databases for tests.
package persistencetest

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/wallet/internal/domain/entity"
	"github.com/finance-tracker/wallet/internal/integration/persistence/model"
)

// NewDB returns a migrated SQLite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dbSQL, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)

	// One connection keeps the in-memory database alive and serializes writers.
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		_ = dbSQL.Close()
	})
	return db
}

// SeedUser inserts a user and returns it.
func SeedUser(t testing.TB, db *gorm.DB) *entity.User {
	t.Helper()

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        uuid.NewString() + "@example.com",
		Name:         "Test User",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.Create(model.UserFromEntity(user)).Error)
	return user
}
