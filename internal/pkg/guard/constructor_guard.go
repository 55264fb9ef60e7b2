package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as having been produced by its constructor.
// Embed one in a domain object and set it with NewConstructorGuard inside the
// constructor; a zero value guard fails Validate, so objects created by
// struct literals are detected before use.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was produced by NewConstructorGuard.
// For a zero value guard it returns notConstructedErr, falling back to
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
