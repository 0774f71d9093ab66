package errors

import (
	stderr "errors"
	"fmt"
)

// MissingAddressError indicates that the connection address was not supplied by the launching process.
type MissingAddressError struct {
	Env string
}

// Error is an implementation of the error interface.
func (m *MissingAddressError) Error() string {
	return fmt.Sprintf("%s environment variable not set", m.Env)
}

// ConnectionError indicates that a session could not be established with the host.
type ConnectionError struct {
	Address string
	Err     error
}

// Error is an implementation of the error interface.
func (c *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", c.Address, c.Err)
}

func (c *ConnectionError) Unwrap() error {
	return c.Err
}

// CallError indicates that a remote call failed, either on the host or in transit.
type CallError struct {
	Method string
	Err    error
}

// Error is an implementation of the error interface.
func (c *CallError) Error() string {
	return fmt.Sprintf("calling %s: %v", c.Method, c.Err)
}

func (c *CallError) Unwrap() error {
	return c.Err
}

// FailedMethod returns the remote method name and true if a CallError is part of the error chain.
func FailedMethod(e error) (_ string, ok bool) {
	var ce *CallError
	if !stderr.As(e, &ce) {
		return "", false
	}
	return ce.Method, true
}

// NoSessionFoundError indicates that a session cannot be found within the context.
type NoSessionFoundError struct{}

// Error is an implementation of the error interface.
func (n *NoSessionFoundError) Error() string {
	return "no session found in context"
}
