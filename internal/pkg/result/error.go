package result

import (
	"fmt"
	"maps"
	"slices"
)

// Kind identifies which business error variant an *Error carries.
// The zero value is KindInternal so that an improperly constructed error
// is reported as an internal failure rather than leaking a misleading kind.
type Kind int

const (
	// KindInternal marks an unmodeled failure. Errors of this kind are not
	// produced by the named constructors; the boundary maps them to 500.
	KindInternal Kind = iota

	// KindNotFound marks a lookup whose subject does not exist.
	KindNotFound

	// KindValidationFailed marks rejected input, with per-field messages.
	KindValidationFailed

	// KindConflict marks an operation that contradicts current state.
	KindConflict

	// KindBusinessRule marks a violated domain rule with a stable
	// machine-readable code clients can branch on.
	KindBusinessRule

	// KindUnauthorized marks a request without valid credentials.
	KindUnauthorized

	// KindForbidden marks a request whose credentials lack permission.
	KindForbidden
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidationFailed:
		return "validation_failed"
	case KindConflict:
		return "conflict"
	case KindBusinessRule:
		return "business_rule"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is a business failure attached to a Result. Exactly one kind is
// active, set by the constructor that built the error. Error values are
// immutable: the validation fields map is copied on the way in and on the
// way out.
//
// Every error carries a machine-readable code. For BusinessRule errors the
// code is caller-supplied (e.g. "INSUFFICIENT_STOCK"); the other constructors
// assign a fixed code per kind so clients always have a stable token.
type Error struct {
	kind    Kind
	code    string
	message string
	fields  map[string][]string
}

// NotFound builds a not-found error. An empty message falls back to a
// generic one.
func NotFound(message string) *Error {
	if message == "" {
		message = "object not found"
	}
	return &Error{kind: KindNotFound, code: "NOT_FOUND", message: message}
}

// ValidationFailed builds a validation error from a field name to messages
// map. The map is deep-copied; later mutation of the argument does not
// affect the error.
func ValidationFailed(fields map[string][]string) *Error {
	copied := make(map[string][]string, len(fields))
	for field, messages := range fields {
		copied[field] = slices.Clone(messages)
	}
	return &Error{
		kind:    KindValidationFailed,
		code:    "VALIDATION_FAILED",
		message: "validation failed",
		fields:  copied,
	}
}

// Conflict builds a conflict error.
func Conflict(message string) *Error {
	return &Error{kind: KindConflict, code: "CONFLICT", message: message}
}

// BusinessRule builds a business rule violation. The code is a stable
// machine-readable token, distinct from the human-readable message.
func BusinessRule(code, message string) *Error {
	return &Error{kind: KindBusinessRule, code: code, message: message}
}

// Unauthorized builds an authentication error.
func Unauthorized(message string) *Error {
	return &Error{kind: KindUnauthorized, code: "UNAUTHORIZED", message: message}
}

// Forbidden builds a permission error.
func Forbidden(message string) *Error {
	return &Error{kind: KindForbidden, code: "FORBIDDEN", message: message}
}

// Kind returns the active error variant.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the machine-readable token for this error.
func (e *Error) Code() string {
	return e.code
}

// Message returns the human-readable description.
func (e *Error) Message() string {
	return e.message
}

// Fields returns a copy of the per-field validation messages.
// Nil for every kind except KindValidationFailed.
func (e *Error) Fields() map[string][]string {
	if e.fields == nil {
		return nil
	}
	copied := maps.Clone(e.fields)
	for field, messages := range copied {
		copied[field] = slices.Clone(messages)
	}
	return copied
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}
