package services

import "fmt"

// Failure is the error type returned by AuthService. Kind is one of
// common.ErrAlreadyExists, common.ErrInvalidCredentials, common.ErrUnauthorized
// or common.ErrBadRequest; errors.Is matches against it. Message is safe to
// return to the caller. Err holds the underlying cause, if any.
type Failure struct {
	Kind    error
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil && f.Err.Error() != f.Message {
		return fmt.Sprintf("%s: %s (%v)", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Is(target error) bool {
	return target == f.Kind
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(kind error, message string, cause error) *Failure {
	return &Failure{Kind: kind, Message: message, Err: cause}
}
