package sockpuppet

import (
	"context"

	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/entity"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/mapper"
)

type workspace struct {
	session *session
}

// WorkspaceFolders returns the open folders in workspace order. A workspace without folders yields an empty slice.
func (w *workspace) WorkspaceFolders(ctx context.Context) ([]entity.WorkspaceFolder, error) {
	var folders []entity.WorkspaceFolder
	if err := w.session.call(ctx, MethodGetWorkspaceFolders, struct{}{}, &folders); err != nil {
		return nil, err
	}
	return mapper.WorkspaceFolders(folders), nil
}
