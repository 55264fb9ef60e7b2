package result

import "errors"

// ErrNoValue is returned by ValueResult.Value when the result does not hold
// a payload (Empty or failure). Reading the payload of a non-Value result is
// an invalid-state error, never a silent zero value.
var ErrNoValue = errors.New("result holds no value")

// Result is the outcome of an operation that has no payload on success.
// It has exactly two states, Success and Failure; the zero value is a
// failure with no error attached.
//
// Success and failure must be queried explicitly; there is no implicit
// truthiness. Construct via Success or Fail.
type Result struct {
	err *Error
	ok  bool
}

// Success builds a successful no-payload result.
func Success() Result {
	return Result{ok: true}
}

// Fail builds a failed result carrying the given business error.
func Fail(err *Error) Result {
	return Result{err: err}
}

// IsSuccess reports whether the operation succeeded.
func (r Result) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the operation failed.
func (r Result) IsFailure() bool {
	return !r.ok
}

// Err returns the business error of a failed result, nil on success.
func (r Result) Err() *Error {
	return r.err
}

// Match dispatches on the result state. Both handlers are required, which
// forces callers to handle every case.
func (r Result) Match(onSuccess func(), onFailure func(*Error)) {
	if r.ok {
		onSuccess()
		return
	}
	onFailure(r.err)
}

type valueState int

const (
	// The zero state is failure so that an unassigned ValueResult can never
	// read as success.
	stateFailure valueState = iota
	stateValue
	stateEmpty
)

// ValueResult is the outcome of an operation that yields a payload of type T
// on success. It has exactly three states:
//
//   - Value: success with a payload
//   - Empty: success with no payload, distinct from Value so an operation can
//     signal "done, nothing to return" (a 204-style response)
//   - Failure: a business error
//
// The zero value is a failure with no error attached. Construct via Value,
// Empty, or Failure.
type ValueResult[T any] struct {
	value T
	err   *Error
	state valueState
}

// Value builds a successful result carrying v.
func Value[T any](v T) ValueResult[T] {
	return ValueResult[T]{value: v, state: stateValue}
}

// Empty builds a successful result with no payload.
func Empty[T any]() ValueResult[T] {
	return ValueResult[T]{state: stateEmpty}
}

// Failure builds a failed result carrying the given business error.
func Failure[T any](err *Error) ValueResult[T] {
	return ValueResult[T]{err: err, state: stateFailure}
}

// IsSuccess reports whether the operation succeeded (Value or Empty).
func (r ValueResult[T]) IsSuccess() bool {
	return r.state == stateValue || r.state == stateEmpty
}

// IsEmpty reports whether the operation succeeded without a payload.
func (r ValueResult[T]) IsEmpty() bool {
	return r.state == stateEmpty
}

// IsFailure reports whether the operation failed.
func (r ValueResult[T]) IsFailure() bool {
	return r.state == stateFailure
}

// Err returns the business error of a failed result, nil otherwise.
func (r ValueResult[T]) Err() *Error {
	return r.err
}

// Value returns the payload. It returns ErrNoValue when the result is Empty
// or a failure.
func (r ValueResult[T]) Value() (T, error) {
	if r.state != stateValue {
		var zero T
		return zero, ErrNoValue
	}
	return r.value, nil
}

// Match dispatches on the result state. All three handlers are required,
// which forces callers to handle every case.
func (r ValueResult[T]) Match(onValue func(T), onEmpty func(), onFailure func(*Error)) {
	switch r.state {
	case stateValue:
		onValue(r.value)
	case stateEmpty:
		onEmpty()
	default:
		onFailure(r.err)
	}
}
