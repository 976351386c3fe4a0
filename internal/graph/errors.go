package graph

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	author "library-backend/internal/domains/author"
	book "library-backend/internal/domains/book"
	user "library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
)

// Machine-readable classification codes carried in error extensions.
// This set is closed: nothing leaves the resolvers with any other code.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// Error is the caller-visible error shape: a human-readable message plus a
// classification code (and per-field details for validation failures) in
// the GraphQL error extensions.
type Error struct {
	Message string
	Code    string
	Details map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions implements the graphql-go ResolverError interface so the code
// and details end up in the response's error extensions.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.Details) > 0 {
		ext["details"] = e.Details
	}
	return ext
}

// mapError classifies every error leaving a resolver. No internal error
// type crosses the API boundary unmapped, and unexpected failures never
// expose internal detail.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			details[field] = ferr.Error()
		}
		return &Error{Message: "invalid input", Code: CodeValidation, Details: details}
	}

	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		return &Error{Message: "not authenticated", Code: CodeUnauthorized}

	case errors.Is(err, user.ErrInvalidCredentials):
		// Covers both unknown username and wrong password
		return &Error{Message: "wrong credentials", Code: CodeValidation}

	case errors.Is(err, user.ErrUsernameTaken),
		errors.Is(err, author.ErrDuplicateName),
		errors.Is(err, book.ErrDuplicateTitle):
		return &Error{Message: err.Error(), Code: CodeConflict}

	case errors.Is(err, author.ErrNameTooShort),
		errors.Is(err, author.ErrNegativeBorn),
		errors.Is(err, book.ErrTitleTooShort):
		return &Error{Message: err.Error(), Code: CodeValidation}

	case errors.Is(err, author.ErrAuthorNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return &Error{Message: err.Error(), Code: CodeNotFound}
	}

	// Anything else is unexpected: log the cause, return a generic message
	log.Error().Err(err).Msg("unexpected resolver error")
	return &Error{Message: "internal server error", Code: CodeInternal}
}
