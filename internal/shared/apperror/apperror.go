// Package apperror is the closed error taxonomy of the catalog core.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"catalog-backend/pkg/database"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindReferenceNotFound
	KindAlreadyExists
	KindInvalidStateTransition
	KindInvalidArgument
)

// Entity labels used across the catalog
const (
	EntityAuthor     = "author"
	EntityBook       = "book"
	EntityAuthorship = "authorship"
)

var kindInfo = map[Kind]struct {
	Code   string
	Status int
}{
	KindNotFound:               {"NOT_FOUND", http.StatusNotFound},
	KindReferenceNotFound:      {"REFERENCE_NOT_FOUND", http.StatusNotFound},
	KindAlreadyExists:          {"ALREADY_EXISTS", http.StatusConflict},
	KindInvalidStateTransition: {"INVALID_STATE_TRANSITION", http.StatusBadRequest},
	KindInvalidArgument:        {"INVALID_ARGUMENT", http.StatusBadRequest},
	KindUnexpected:             {"UNEXPECTED", http.StatusInternalServerError},
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindReferenceNotFound:
		return "reference_not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidStateTransition:
		return "invalid_state_transition"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unexpected"
	}
}

// Error is a classified failure. Entity names the table/aggregate involved,
// Field the offending attribute when one is known.
type Error struct {
	Kind    Kind
	Entity  string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Entity != "" {
		msg += ": " + e.Entity
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind and, when set on the target, entity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Entity == "" || t.Entity == e.Entity
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity}
}

func ReferenceNotFound(entity string, err error) *Error {
	return &Error{Kind: KindReferenceNotFound, Entity: entity, Err: err}
}

func AlreadyExists(entity string, err error) *Error {
	return &Error{Kind: KindAlreadyExists, Entity: entity, Err: err}
}

func InvalidStateTransition(entity, field, message string) *Error {
	return &Error{Kind: KindInvalidStateTransition, Entity: entity, Field: field, Message: message}
}

func InvalidArgument(entity, field, message string) *Error {
	return &Error{Kind: KindInvalidArgument, Entity: entity, Field: field, Message: message}
}

func Unexpected(entity, message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Entity: entity, Message: message, Err: err}
}

// FromStorage translates a repository error for entity. Unique violations
// become AlreadyExists, foreign key violations ReferenceNotFound, missing
// rows NotFound. Already classified errors are returned as is; anything else
// is wrapped as Unexpected.
func FromStorage(err error, entity string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	err = database.Classify(err)
	switch {
	case errors.Is(err, database.ErrUniqueViolation):
		return AlreadyExists(entity, err)
	case errors.Is(err, database.ErrForeignKeyViolation):
		return ReferenceNotFound(entity, err)
	case errors.Is(err, database.ErrNotFound):
		return NotFound(entity)
	default:
		return Unexpected(entity, "storage failure", err)
	}
}

// KindOf returns the kind of err; unclassified errors are KindUnexpected.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// HTTPStatus maps err to the status code used by the REST handlers.
func HTTPStatus(err error) int {
	return kindInfo[KindOf(err)].Status
}

// Code is the stable machine readable code for err.
func Code(err error) string {
	return kindInfo[KindOf(err)].Code
}

// Describe returns a client facing message. Unexpected failures never leak
// their cause.
func Describe(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindUnexpected {
		return "internal server error"
	}

	switch appErr.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found", appErr.Entity)
	case KindReferenceNotFound:
		return fmt.Sprintf("referenced %s not found", appErr.Entity)
	case KindAlreadyExists:
		return fmt.Sprintf("%s already exists", appErr.Entity)
	}

	if appErr.Message != "" {
		return appErr.Message
	}
	return appErr.Kind.String()
}
