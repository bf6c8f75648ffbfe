// Package keyring wraps the OS keychain with a timeout, since some
// keychain backends block indefinitely waiting on an unlock prompt.
package keyring

import (
	"errors"
	"time"

	"github.com/zalando/go-keyring"
)

// Timeout bounds every keychain call.
var Timeout = 3 * time.Second

// ErrNotFound is returned when no secret is stored for the service and user.
var ErrNotFound = errors.New("secret not found in keyring")

// TimeoutError is returned when the keychain does not answer in time.
type TimeoutError struct {
	message string
}

func (e *TimeoutError) Error() string {
	return e.message
}

// Set stores a secret.
func Set(service, user, secret string) error {
	ch := make(chan error, 1)
	go func() {
		ch <- keyring.Set(service, user, secret)
	}()
	select {
	case err := <-ch:
		return err
	case <-time.After(Timeout):
		return &TimeoutError{"timeout while trying to set secret in keyring"}
	}
}

// Get reads a secret.
func Get(service, user string) (string, error) {
	type result struct {
		val string
		err error
	}
	ch := make(chan result, 1)
	go func() {
		val, err := keyring.Get(service, user)
		ch <- result{val, err}
	}()
	select {
	case res := <-ch:
		if errors.Is(res.err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return res.val, res.err
	case <-time.After(Timeout):
		return "", &TimeoutError{"timeout while trying to get secret from keyring"}
	}
}

// Delete removes a secret. Deleting a missing secret is not an error.
func Delete(service, user string) error {
	ch := make(chan error, 1)
	go func() {
		ch <- keyring.Delete(service, user)
	}()
	select {
	case err := <-ch:
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return err
	case <-time.After(Timeout):
		return &TimeoutError{"timeout while trying to delete secret from keyring"}
	}
}
