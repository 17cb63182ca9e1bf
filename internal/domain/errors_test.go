package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrUnauthorized,
		ErrForbidden,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "quote",
			id:          "7",
			expectedMsg: `quote with id "7" not found`,
		},
		{
			name:        "with entity only",
			entity:      "author",
			expectedMsg: "author not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("user", "username already taken")

	assert.Equal(t, "user conflict: username already taken", err.Error())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestValidationError(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		err := NewValidationError("text", MsgRequired)

		assert.Equal(t, "validation failed: text: this field is required", err.Error())
		require.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, map[string]string{"text": MsgRequired}, FieldErrors(err))
	})

	t.Run("fields are listed in name order", func(t *testing.T) {
		err := NewFieldErrors(map[string]string{
			"name":     "b",
			"lastname": "a",
		})

		assert.Equal(t, "validation failed: lastname: a; name: b", err.Error())
	})

	t.Run("empty map yields nil", func(t *testing.T) {
		assert.NoError(t, NewFieldErrors(map[string]string{}))
	})

	t.Run("wrapped error keeps fields", func(t *testing.T) {
		err := fmt.Errorf("creating quote: %w", NewValidationError("author", MsgInvalidAuthor))

		assert.True(t, IsValidation(err))
		assert.Equal(t, MsgInvalidAuthor, FieldErrors(err)["author"])
	})

	t.Run("non validation error has no fields", func(t *testing.T) {
		assert.Nil(t, FieldErrors(ErrNotFound))
	})
}

func TestUnauthorizedError(t *testing.T) {
	assert.Equal(t, "unauthorized", NewUnauthorizedError("").Error())
	assert.Equal(t, "unauthorized: session expired", NewUnauthorizedError("session expired").Error())
	assert.ErrorIs(t, NewUnauthorizedError("x"), ErrUnauthorized)
}

func TestForbiddenError(t *testing.T) {
	tests := []struct {
		name        string
		operation   string
		reason      string
		expectedMsg string
	}{
		{
			name:        "with reason",
			operation:   "delete author",
			reason:      "superuser required",
			expectedMsg: `operation "delete author" forbidden: superuser required`,
		},
		{
			name:        "without reason",
			operation:   "update quote",
			expectedMsg: `operation "update quote" forbidden`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewForbiddenError(tt.operation, tt.reason)

			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("database", "connection refused")

	assert.Equal(t, `service "database" unavailable: connection refused`, err.Error())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, `service "quote-api" unavailable`, NewUnavailableError("quote-api", "").Error())
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", NewNotFoundError("quote", "1"), IsNotFound, true},
		{"conflict", NewConflictError("user", "dup"), IsConflict, true},
		{"validation", NewValidationError("name", MsgRequired), IsValidation, true},
		{"unauthorized", NewUnauthorizedError(""), IsUnauthorized, true},
		{"forbidden", NewForbiddenError("op", ""), IsForbidden, true},
		{"unavailable", NewUnavailableError("db", ""), IsUnavailable, true},
		{"mismatch", NewNotFoundError("quote", "1"), IsValidation, false},
		{"nil", nil, IsNotFound, false},
		{"wrapped", fmt.Errorf("outer: %w", NewNotFoundError("author", "2")), IsNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}
