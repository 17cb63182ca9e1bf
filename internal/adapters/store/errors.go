package store

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// mapError converts driver and gorm errors into domain errors.
// Unknown errors pass through unchanged.
func mapError(err error, entity string, id uint64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(entity, id)
	case isUniqueViolation(err):
		return domain.NewConflictError(entity, "already exists")
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "SQLSTATE 23505")
}

func notFound(entity string, id uint64) error {
	return domain.NewNotFoundError(entity, strconv.FormatUint(id, 10))
}
