package factory

import (
	"github.com/gofrs/uuid"
)

// SessionID returns a fresh random id for a session to the editor host.
func SessionID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
