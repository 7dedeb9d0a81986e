package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classification for order writes. GORM translates the Postgres
// error codes it recognizes into sentinel errors; the message match is the
// fallback for drivers that surface the raw server error.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "23505") // unique_violation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "23503") // foreign_key_violation
}

func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "23502") // not_null_violation
}
