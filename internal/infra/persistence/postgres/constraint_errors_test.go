package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_orders_merchant_uid"}, "insert")

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.Equal(t, "idx_orders_merchant_uid", violatedConstraint(unique))
	assert.Empty(t, violatedConstraint(gorm.ErrDuplicatedKey))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))

	plain := errors.New("connection refused")
	assert.False(t, isUniqueConstraintViolation(plain))
	assert.False(t, isForeignKeyConstraintViolation(plain))
	assert.False(t, isCheckConstraintViolation(plain))
	assert.False(t, isNotNullConstraintViolation(plain))
}
