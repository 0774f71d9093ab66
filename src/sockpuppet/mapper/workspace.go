package mapper

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/entity"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/errors"
)

// WorkspaceFolders normalizes the host's folder list, preserving order. Folders without a host index are indexed by
// position. A nil list maps to an empty, non-nil slice.
func WorkspaceFolders(folders []entity.WorkspaceFolder) []entity.WorkspaceFolder {
	result := make([]entity.WorkspaceFolder, 0, len(folders))
	for i, f := range folders {
		if !f.HasIndex() {
			f.Index = i
		}
		result = append(result, f)
	}
	return result
}

// ContextToSessionUUID extracts the session UUID from a context.
func ContextToSessionUUID(c context.Context) (uuid.UUID, error) {
	s, ok := c.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return s, nil
}
