package response

import (
	"errors"
	"net/http"

	"catalog-backend/internal/shared/apperror"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
)

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes a failure with an explicit status and code
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// AppError maps a service error to its HTTP status and stable code.
// Unexpected errors are logged by the caller and never exposed.
func AppError(c *gin.Context, err error) {
	body := &Error{
		Code:    apperror.Code(err),
		Message: apperror.Describe(err),
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind != apperror.KindUnexpected {
		body.Field = appErr.Field
	}

	c.JSON(apperror.HTTPStatus(err), Response{Success: false, Error: body})
}

// ValidationError reports request validation failures keyed by JSON field.
// Errors that are not ozzo validation.Errors are reported as a bad request.
func ValidationError(c *gin.Context, err error) {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		ErrorResponse(c, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	details := make(map[string]string, len(errs))
	for field, fe := range errs {
		details[field] = fe.Error()
	}

	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error: &Error{
			Code:    CodeValidation,
			Message: "request validation failed",
			Details: details,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, CodeBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, CodeUnauthorized, message)
}
