package interval

import (
	"fmt"

	"github.com/gruntwork-io/go-commons/errors"
)

// UnknownIntervalError is returned when a name matches no table entry and no quality+degree shape.
type UnknownIntervalError struct {
	Name string
}

func (err UnknownIntervalError) Error() string {
	return fmt.Sprintf("no interval named %q", err.Name)
}

// InvalidQualityError is returned for an unrecognized quality token.
type InvalidQualityError struct {
	Token string
}

func (err InvalidQualityError) Error() string {
	return fmt.Sprintf("invalid interval quality %q", err.Token)
}

// IsUnknownInterval reports whether err is, or wraps, an UnknownIntervalError.
func IsUnknownInterval(err error) bool {
	_, ok := errors.Unwrap(err).(UnknownIntervalError)
	return ok
}

// IsInvalidQuality reports whether err is, or wraps, an InvalidQualityError.
func IsInvalidQuality(err error) bool {
	_, ok := errors.Unwrap(err).(InvalidQualityError)
	return ok
}
