package throw

import "github.com/pkg/errors"

// Threading errors through every geometry predicate would cost the validator
// its speed and clutter the solvers that call it millions of times. Instead,
// violated preconditions panic, and the public API recovers to convert the
// panic back into an error.

// Error is the panic value raised by Fatalf.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Cause lets errors.Cause see through the wrapper.
func (e *Error) Cause() error {
	return e.cause
}

// Fatalf panics with an *Error.
func Fatalf(format string, args ...interface{}) {
	panic(&Error{errors.Errorf(format, args...)})
}

// Recover converts a value returned by recover() into an error. Panics that
// were not raised by Fatalf are re-panicked.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*Error); ok {
		return err
	}
	panic(r)
}
