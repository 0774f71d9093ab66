// Package sockpuppet is the outbound gateway to the editor host: it opens sessions over the host's pipe and drives window and workspace actions through them.
package sockpuppet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/entity"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/factory"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/jsonrpcfx"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/pipe"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

//go:generate mockgen -source=sockpuppet.go -destination=sockpuppetmock/sockpuppetmock.go -package=sockpuppetmock

const _configKey = "sockpuppet"

// Remote methods understood by the host.
const (
	MethodShowInformationMessage = "window.showInformationMessage"
	MethodShowWarningMessage     = "window.showWarningMessage"
	MethodShowErrorMessage       = "window.showErrorMessage"
	MethodShowInputBox           = "window.showInputBox"
	MethodShowQuickPick          = "window.showQuickPick"
	MethodCreateOutputChannel    = "window.createOutputChannel"
	MethodSetStatusBarMessage    = "window.setStatusBarMessage"
	MethodGetWorkspaceFolders    = "workspace.getWorkspaceFolders"
)

// Config is the `sockpuppet` configuration block.
type Config struct {
	// PipeEnv names the environment variable through which the launching extension passes the host address.
	PipeEnv     string        `yaml:"pipeEnv"`
	DialTimeout time.Duration `yaml:"dialTimeout"`
	// CallTimeout bounds each remote call. Zero leaves calls bounded only by the caller's context, since prompts wait on the user.
	CallTimeout time.Duration `yaml:"callTimeout"`
	WaitForPipe time.Duration `yaml:"waitForPipe"`
}

// Gateway creates sessions to the editor host.
type Gateway interface {
	// NewSession returns an unconnected session bound to address. It performs no I/O.
	NewSession(address entity.Address) Session
}

// Session is an exclusively owned connection to the host.
// Close is idempotent and may be called whether or not Connect succeeded.
type Session interface {
	io.Closer

	Connect(ctx context.Context) error
	UUID() uuid.UUID
	Window() Window
	Workspace() Workspace
}

// Window drives window-level UI actions on the host. Every call blocks until the host replies.
type Window interface {
	ShowInformationMessage(ctx context.Context, message string) error
	ShowWarningMessage(ctx context.Context, message string) error
	ShowErrorMessage(ctx context.Context, message string) error
	// ShowInputBox returns the entered text, or false if the user dismissed the prompt.
	ShowInputBox(ctx context.Context, options entity.InputBoxOptions) (string, bool, error)
	// ShowQuickPick returns the selected item, or false if nothing was selected.
	ShowQuickPick(ctx context.Context, items []string, options entity.QuickPickOptions) (string, bool, error)
	// CreateOutputChannel creates a named output panel on the host. Creating the same name twice is left to the host.
	CreateOutputChannel(ctx context.Context, channel entity.OutputChannel) error
	SetStatusBarMessage(ctx context.Context, text string, timeout time.Duration) error
}

// Workspace introspects the host's open workspace.
type Workspace interface {
	WorkspaceFolders(ctx context.Context) ([]entity.WorkspaceFolder, error)
}

// Params are the dependencies of the gateway.
type Params struct {
	fx.In

	Config    config.Provider
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	NewStream jsonrpcfx.StreamFactory
}

type gateway struct {
	cfg       Config
	dial      pipe.Dialer
	newStream jsonrpcfx.StreamFactory
	logger    *zap.SugaredLogger
	stats     tally.Scope
}

// New returns a Gateway configured from the `sockpuppet` block.
func New(p Params) (Gateway, error) {
	if p.Config == nil || p.Logger == nil || p.Stats == nil || p.NewStream == nil {
		return nil, errors.New("required parameters are missing")
	}

	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", _configKey, err)
	}

	return &gateway{
		cfg:       cfg,
		dial:      pipe.Dial,
		newStream: p.NewStream,
		logger:    p.Logger,
		stats:     p.Stats.SubScope(_configKey),
	}, nil
}

func (g *gateway) NewSession(address entity.Address) Session {
	return &session{
		id:        factory.SessionID(),
		address:   address,
		cfg:       g.cfg,
		dial:      g.dial,
		newStream: g.newStream,
		logger:    g.logger,
		stats:     g.stats,
	}
}
