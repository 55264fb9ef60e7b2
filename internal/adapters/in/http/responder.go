package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/result"

	"github.com/labstack/echo/v4"
)

// writeError maps a business error to its transport status and payload.
// The mapping is a pure function of the error kind.
func writeError(ctx echo.Context, resErr *result.Error) error {
	switch resErr.Kind() {
	case result.KindNotFound:
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: resErr.Message(),
		})
	case result.KindValidationFailed:
		return ctx.JSON(http.StatusBadRequest, servers.ValidationError{
			Message: resErr.Message(),
			Fields:  resErr.Fields(),
		})
	case result.KindConflict:
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: resErr.Message(),
		})
	case result.KindBusinessRule:
		return ctx.JSON(http.StatusBadRequest, servers.BusinessRuleError{
			Code:    resErr.Code(),
			Message: resErr.Message(),
		})
	case result.KindUnauthorized:
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: resErr.Message(),
		})
	case result.KindForbidden:
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: resErr.Message(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: resErr.Message(),
		})
	}
}

// writeResult maps a no-payload result to an HTTP response, answering
// successStatus with no body on success.
func writeResult(ctx echo.Context, res result.Result, successStatus int) error {
	var httpErr error
	res.Match(
		func() {
			httpErr = ctx.NoContent(successStatus)
		},
		func(resErr *result.Error) {
			httpErr = writeError(ctx, resErr)
		},
	)
	return httpErr
}

// writeValue maps a value-bearing result to an HTTP response. The payload is
// rendered through render on success; an empty result answers 204.
func writeValue[T any](ctx echo.Context, res result.ValueResult[T], successStatus int, render func(T) any) error {
	var httpErr error
	res.Match(
		func(value T) {
			httpErr = ctx.JSON(successStatus, render(value))
		},
		func() {
			httpErr = ctx.NoContent(http.StatusNoContent)
		},
		func(resErr *result.Error) {
			httpErr = writeError(ctx, resErr)
		},
	)
	return httpErr
}

// validationFailed answers 400 with per-field messages.
func validationFailed(ctx echo.Context, fields map[string][]string) error {
	return ctx.JSON(http.StatusBadRequest, servers.ValidationError{
		Message: "validation failed",
		Fields:  fields,
	})
}

// internalError answers 500 without leaking the underlying error.
func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// fieldErrors flattens a constructor error, possibly a joined one, into a
// field to messages map suitable for a validation response.
func fieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)
	collectFieldErrors(err, fields)
	if len(fields) == 0 {
		fields["request"] = []string{err.Error()}
	}
	return fields
}

func collectFieldErrors(err error, fields map[string][]string) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			collectFieldErrors(inner, fields)
		}
		return
	}

	var invalidErr *errs.ValueIsInvalidError
	if errors.As(err, &invalidErr) {
		field := strings.TrimSuffix(invalidErr.ParamName, " is invalid")
		message := "is invalid"
		if invalidErr.Cause != nil {
			message = invalidErr.Cause.Error()
		}
		fields[field] = append(fields[field], message)
		return
	}

	var requiredErr *errs.ValueIsRequiredError
	if errors.As(err, &requiredErr) {
		fields[requiredErr.ParamName] = append(fields[requiredErr.ParamName], "is required")
		return
	}

	var rangeErr *errs.ValueIsOutOfRangeError
	if errors.As(err, &rangeErr) {
		fields[rangeErr.ParamName] = append(fields[rangeErr.ParamName],
			fmt.Sprintf("must be between %v and %v", rangeErr.Min, rangeErr.Max))
		return
	}

	fields["request"] = append(fields["request"], err.Error())
}
