package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStorage(t *testing.T) {
	t.Run("unique violation becomes AlreadyExists", func(t *testing.T) {
		err := FromStorage(&pgconn.PgError{Code: "23505"}, EntityBook)

		assert.Equal(t, KindAlreadyExists, KindOf(err))
		assert.ErrorIs(t, err, AlreadyExists(EntityBook, nil))
		assert.NotErrorIs(t, err, AlreadyExists(EntityAuthor, nil))
	})

	t.Run("foreign key violation becomes ReferenceNotFound", func(t *testing.T) {
		err := FromStorage(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), EntityAuthor)
		assert.Equal(t, KindReferenceNotFound, KindOf(err))
	})

	t.Run("no rows becomes NotFound", func(t *testing.T) {
		err := FromStorage(pgx.ErrNoRows, EntityAuthor)
		assert.ErrorIs(t, err, NotFound(EntityAuthor))
	})

	t.Run("classified errors pass through", func(t *testing.T) {
		original := InvalidArgument(EntityBook, "author_ids", "empty")
		assert.Same(t, original, FromStorage(original, EntityAuthor))
	})

	t.Run("unknown errors are unexpected and keep the cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := FromStorage(cause, EntityBook)

		assert.Equal(t, KindUnexpected, KindOf(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, FromStorage(nil, EntityBook))
	})
}

func TestHTTPMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{NotFound(EntityBook), http.StatusNotFound, "NOT_FOUND"},
		{ReferenceNotFound(EntityAuthor, nil), http.StatusNotFound, "REFERENCE_NOT_FOUND"},
		{AlreadyExists(EntityAuthor, nil), http.StatusConflict, "ALREADY_EXISTS"},
		{InvalidStateTransition(EntityBook, "publication_status", "x"), http.StatusBadRequest, "INVALID_STATE_TRANSITION"},
		{InvalidArgument(EntityBook, "author_ids", "x"), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{Unexpected(EntityBook, "x", nil), http.StatusInternalServerError, "UNEXPECTED"},
		{errors.New("plain"), http.StatusInternalServerError, "UNEXPECTED"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "book not found", Describe(NotFound(EntityBook)))
	assert.Equal(t, "author already exists", Describe(AlreadyExists(EntityAuthor, errors.New("dup"))))
	assert.Equal(t, "internal server error", Describe(Unexpected(EntityBook, "secret detail", nil)))
	assert.Equal(t, "internal server error", Describe(errors.New("plain")))
	assert.Equal(t, "cannot unpublish", Describe(InvalidStateTransition(EntityBook, "publication_status", "cannot unpublish")))
}

func TestError_Message(t *testing.T) {
	err := InvalidArgument(EntityBook, "author_ids", "must not be empty")
	require.Error(t, err)
	assert.Equal(t, "invalid_argument: book.author_ids: must not be empty", err.Error())
}
