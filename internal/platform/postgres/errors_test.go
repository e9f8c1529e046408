package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/store"
)

func TestMapError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows is not found", sql.ErrNoRows, store.ErrNotFound},
		{
			"wrapped no rows is not found",
			fmt.Errorf("query task: %w", sql.ErrNoRows),
			store.ErrNotFound,
		},
		{
			"unique violation on title",
			&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "tasks_title_key"},
			store.ErrTitleExists,
		},
		{
			"unique violation on username",
			&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_username_key"},
			store.ErrUsernameExists,
		},
		{
			"unique violation on email",
			&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"},
			store.ErrEmailExists,
		},
		{
			"unique violation on unknown constraint",
			&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "something_else"},
			store.ErrDuplicate,
		},
		{
			"not null violation is invalid entity",
			&pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			store.ErrInvalidEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	// Errors outside the known codes pass through unchanged.
	unknown := errors.New("connection refused")
	assert.Equal(t, unknown, MapError(unknown))
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	assert.True(t, IsUniqueViolation(pgErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("save: %w", pgErr)))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: notNullViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
