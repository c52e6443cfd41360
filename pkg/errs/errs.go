package errs

import "errors"

// Err represents a custom error type with a message.
// It matches the body that the exchange API returns for any non-success response.
type Err struct { //nolint:errname
	Message string `json:"message"`
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error or any error it wraps is of custom Err type.
func IsExpected(err error) bool {
	var customErr *Err
	return errors.As(err, &customErr)
}

// MessageOr returns the message of the custom error found in the chain of err.
// If there is no such error, fallback is returned.
func MessageOr(err error, fallback string) string {
	var customErr *Err
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}

	return fallback
}
