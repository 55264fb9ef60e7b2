// Package result provides the typed success/failure values that business
// operations return instead of raising errors for expected outcomes.
//
// Two shapes are provided:
//   - Result: success or failure, no payload
//   - ValueResult[T]: success with a payload, success with no payload (Empty),
//     or failure
//
// Both are immutable once constructed and are built only through their named
// constructors; the zero value of either type reads as a failure so that a
// forgotten assignment can never masquerade as success.
//
// Failures carry an *Error, a closed set of business error kinds (not found,
// validation, conflict, business rule, unauthorized, forbidden). The unit of
// work inspects the result to decide commit or rollback; the HTTP adapter
// inspects the error kind to decide the transport status. Technical failures
// (broken connections, commit errors) stay ordinary Go errors and are never
// folded into a Result.
package result
