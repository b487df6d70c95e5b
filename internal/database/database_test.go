package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shareit/internal/domain"
)

func TestConnectAndMigrate_SQLiteMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	u := &domain.User{Name: "Ann", Email: "ann@example.com"}
	require.NoError(t, db.Create(u).Error)
	assert.NotZero(t, u.ID)

	dup := &domain.User{Name: "Ann 2", Email: "ann@example.com"}
	err = db.Create(dup).Error
	require.Error(t, err)
	assert.True(t, IsIntegrityViolation(err))
	assert.True(t, IsUniqueViolation(err))
}

func TestIsIntegrityViolation(t *testing.T) {
	assert.False(t, IsIntegrityViolation(nil))
	assert.False(t, IsIntegrityViolation(errors.New("connection refused")))
	assert.True(t, IsIntegrityViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsIntegrityViolation(fmt.Errorf("save: %w", gorm.ErrForeignKeyViolated)))
	assert.True(t, IsIntegrityViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsIntegrityViolation(&pgconn.PgError{Code: "40001"}))

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
