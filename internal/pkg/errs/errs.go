package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches target through wrap chains and through equivalence marks
// attached with Mark. Marks are not part of the Unwrap chain, so stdlib
// errors.Is never sees them; sentinel checks must go through this.
func Is(err, target error) bool {
	return cr.Is(err, target)
}
