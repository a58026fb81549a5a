package pwerr

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a user supplied value (count, length, alphabet...) is out of range
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfiguration is returned when a static resource such as the word list is missing or unusable
	ErrConfiguration = errors.New("configuration error")
)

const (
	exitConfiguration   = 1
	exitInvalidArgument = 2
)

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// Configurationf wraps ErrConfiguration with a formatted message
func Configurationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalidArgument):
		return exitInvalidArgument
	default:
		return exitConfiguration
	}
}
