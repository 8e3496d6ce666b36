package session

import (
	"errors"
	"fmt"
)

// HandshakeError indicates the daemon did not send a valid greeting.
type HandshakeError struct {
	Addr string
	Err  error
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("handshake with %s: %v", e.Addr, e.Err)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}

// IsHandshakeError reports whether err is a rejected or missing greeting.
func IsHandshakeError(err error) bool {
	var he *HandshakeError
	return errors.As(err, &he)
}

// AuthError indicates the daemon rejected the configured password.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authenticate: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
