// Package errs provides the typed validation and lookup errors used across
// the storefront domain and application layers.
//
// Four error types cover the recurring failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value falls outside its permitted range
//   - ObjectNotFoundError: a lookup finds no object
//
// Each type carries a ParamName naming the offending input, optional Cause
// detail, and unwraps to its sentinel (ErrValueIsRequired and so on) so
// callers classify with errors.Is or errors.As. Constructors pass ParamName
// strings of the form "customerId is invalid"; the HTTP layer trims the
// suffix to recover the field name for validation responses.
package errs
