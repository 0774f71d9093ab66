// Package entity contains the domain types shared by the automation and its session gateway.
package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// Address is the local endpoint of the editor host: a Unix socket path or a Windows named pipe.
type Address string

// String implements fmt.Stringer.
func (a Address) String() string {
	return string(a)
}

// WorkspaceFolder is a folder open in the editor's current workspace.
//
// The host may describe a folder either as a `{uri, name, index}` object or as a bare string. The descriptor is kept
// as received and is what String prints: the bare string itself, or the compacted JSON object.
type WorkspaceFolder struct {
	URI   uri.URI `json:"uri" zap:"uri"`
	Name  string  `json:"name" zap:"name"`
	Index int     `json:"index" zap:"index"`

	hasIndex   bool
	descriptor string
}

// UnmarshalJSON accepts both descriptor shapes.
func (f *WorkspaceFolder) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = WorkspaceFolder{URI: uri.URI(s), descriptor: s}
		return nil
	}

	var wire struct {
		protocol.WorkspaceFolder
		Index *int `json:"index"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, data); err != nil {
		return err
	}

	*f = WorkspaceFolder{
		URI:        uri.URI(wire.URI),
		Name:       wire.Name,
		descriptor: compacted.String(),
	}
	if wire.Index != nil {
		f.Index, f.hasIndex = *wire.Index, true
	}
	return nil
}

// HasIndex reports whether the host supplied the folder's index.
func (f WorkspaceFolder) HasIndex() bool {
	return f.hasIndex
}

// Path returns the filesystem path of the folder, or its raw URI when the folder is not backed by a local file.
func (f WorkspaceFolder) Path() string {
	if strings.HasPrefix(string(f.URI), uri.FileScheme+"://") {
		return f.URI.Filename()
	}
	return string(f.URI)
}

// String returns the descriptor as the host sent it. Folders built in code print their Path.
func (f WorkspaceFolder) String() string {
	if f.descriptor != "" {
		return f.descriptor
	}
	return f.Path()
}

// InputBoxOptions configures a free-text prompt.
type InputBoxOptions struct {
	Prompt      string
	Placeholder string
	Value       string
	Password    bool
}

// QuickPickOptions configures a single-selection prompt.
type QuickPickOptions struct {
	Placeholder string
}

// OutputChannel describes a named output panel, its initial text, and whether it should be revealed.
type OutputChannel struct {
	Name string
	Text string
	Show bool
}
