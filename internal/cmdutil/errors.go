package cmdutil

import (
	"errors"
	"fmt"

	"github.com/marckohlbrugge/tempmail-cli/internal/iostreams"
)

// FlagErrorf returns a new FlagError that wraps an error produced by
// fmt.Errorf(format, args...).
func FlagErrorf(format string, args ...interface{}) error {
	return FlagErrorWrap(fmt.Errorf(format, args...))
}

// FlagErrorWrap returns a new FlagError that wraps the specified error.
func FlagErrorWrap(err error) error { return &FlagError{err} }

// A *FlagError indicates an error processing command-line flags or other arguments.
type FlagError struct {
	err error
}

func (fe *FlagError) Error() string {
	return fe.err.Error()
}

func (fe *FlagError) Unwrap() error {
	return fe.err
}

// SilentError exits with status 1 without printing anything. Store actions
// report their own failures as notifications, so commands return this.
var SilentError = errors.New("SilentError")

// CancelError signals user-initiated cancellation
var CancelError = errors.New("CancelError")

// SafeModeError indicates a command was blocked due to safe mode
type SafeModeError struct {
	Command string
}

func (e *SafeModeError) Error() string {
	return fmt.Sprintf("'tm %s' is disabled in safe mode.\n\n"+
		"Safe mode is active because stdin is not a terminal, which\n"+
		"keeps scripts from deleting mailboxes or emails by accident.\n\n"+
		"To override, use one of:\n"+
		"  tm %s ... --unsafe     # Allow this command\n"+
		"  TM_UNSAFE=1 tm %s ...  # Allow via environment",
		e.Command, e.Command, e.Command)
}

// CheckSafeMode returns a SafeModeError when command must not run.
func CheckSafeMode(ios *iostreams.IOStreams, unsafe bool, command string) error {
	if ios.IsSafeMode() && !unsafe {
		return &SafeModeError{Command: command}
	}
	return nil
}

// AuthError indicates missing or rejected credentials
type AuthError struct {
	err error
}

func (ae *AuthError) Error() string {
	return ae.err.Error()
}

func NewAuthError(msg string) *AuthError {
	return &AuthError{err: errors.New(msg)}
}

// NotFoundError indicates a resource was not found
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.Resource, e.ID)
}

// MutuallyExclusive returns an error if more than one condition is true
func MutuallyExclusive(message string, conditions ...bool) error {
	numTrue := 0
	for _, ok := range conditions {
		if ok {
			numTrue++
		}
	}
	if numTrue > 1 {
		return FlagErrorf("%s", message)
	}
	return nil
}
