package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ErrSessionNotConnected reports a remote call on a session that is not connected, or no longer is.
	ErrSessionNotConnected = New("session is not connected")
	// ErrSessionClosed reports an attempt to connect a session that has already been released.
	ErrSessionClosed = New("session is closed")
)

// IsPrecondition reports whether the error was detected locally, before any remote interaction.
func IsPrecondition(e error) bool {
	var missing *MissingAddressError
	return stderr.As(e, &missing)
}

// IsConnection reports whether the error stems from acquiring or losing the connection to the host.
func IsConnection(e error) bool {
	var conn *ConnectionError
	return stderr.As(e, &conn) || stderr.Is(e, ErrSessionNotConnected) || stderr.Is(e, ErrSessionClosed)
}
