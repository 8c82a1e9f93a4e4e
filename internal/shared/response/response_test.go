package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-backend/internal/shared/apperror"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAppError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", apperror.NotFound(apperror.EntityBook), http.StatusNotFound, "NOT_FOUND", "book not found"},
		{"reference", apperror.ReferenceNotFound(apperror.EntityAuthor, nil), http.StatusNotFound, "REFERENCE_NOT_FOUND", "referenced author not found"},
		{"conflict", apperror.AlreadyExists(apperror.EntityAuthor, nil), http.StatusConflict, "ALREADY_EXISTS", "author already exists"},
		{"transition", apperror.InvalidStateTransition(apperror.EntityBook, "publication_status", "no"), http.StatusBadRequest, "INVALID_STATE_TRANSITION", "no"},
		{"unexpected hides cause", apperror.Unexpected(apperror.EntityBook, "boom", errors.New("secret")), http.StatusInternalServerError, "UNEXPECTED", "internal server error"},
		{"plain error", errors.New("secret"), http.StatusInternalServerError, "UNEXPECTED", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := record(func(c *gin.Context) { AppError(c, tt.err) })

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
			assert.NotContains(t, w.Body.String(), "secret")
		})
	}

	t.Run("field is reported", func(t *testing.T) {
		_, body := record(func(c *gin.Context) {
			AppError(c, apperror.InvalidArgument(apperror.EntityBook, "price", "negative"))
		})
		assert.Equal(t, "price", body.Error.Field)
	})
}

func TestValidationError(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		ValidationError(c, validation.Errors{"title": errors.New("cannot be blank")})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeValidation, body.Error.Code)
	assert.Equal(t, map[string]interface{}{"title": "cannot be blank"}, body.Error.Details)

	w, body = record(func(c *gin.Context) { ValidationError(c, errors.New("bad json")) })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeBadRequest, body.Error.Code)
}

func TestErrorResponse(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "writer role required")
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
	assert.Equal(t, "writer role required", body.Error.Message)

	w, body = record(func(c *gin.Context) { Unauthorized(c, "missing token") })
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeUnauthorized, body.Error.Code)
}
