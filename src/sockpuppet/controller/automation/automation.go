// Package automation implements the one-shot automation run: it attaches to the editor host named by the launching extension and drives a fixed sequence of UI actions.
package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/entity"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/gateway/sockpuppet"
	sperrors "github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/errors"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// ExitOK is returned when every step completed.
	ExitOK = 0
	// ExitFailure is returned for a missing address or any failure after it.
	ExitFailure = 1

	_configKeyAutomation = "automation"
	_configKeyPipeEnv    = "sockpuppet.pipeEnv"

	_msgLaunchHint = "This program should be launched by an extension using the Sockpuppet API"

	_resultSuccess      = "success"
	_resultPrecondition = "precondition"
	_resultConnection   = "connection"
	_resultFailure      = "failure"
)

// Config is the `automation` configuration block. Templates take exactly one %s.
type Config struct {
	Greeting                string        `yaml:"greeting"`
	InputPrompt             string        `yaml:"inputPrompt"`
	InputPlaceholder        string        `yaml:"inputPlaceholder"`
	OutputChannel           string        `yaml:"outputChannel"`
	OutputTemplate          string        `yaml:"outputTemplate"`
	PickPlaceholderTemplate string        `yaml:"pickPlaceholderTemplate"`
	Options                 []string      `yaml:"options"`
	SelectionTemplate       string        `yaml:"selectionTemplate"`
	StatusBarMessage        string        `yaml:"statusBarMessage"`
	StatusBarTimeout        time.Duration `yaml:"statusBarTimeout"`
}

// EnvLookup reads the process environment. It has the signature of os.LookupEnv.
type EnvLookup func(key string) (string, bool)

// Controller runs the automation.
type Controller interface {
	// Run performs the whole automation once and returns the process exit code.
	Run(ctx context.Context) int
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Config  config.Provider
	Gateway sockpuppet.Gateway
	Logger  *zap.SugaredLogger
	Stats   tally.Scope

	LookupEnv EnvLookup `optional:"true"`
	Stdout    io.Writer `name:"stdout" optional:"true"`
}

type controller struct {
	cfg       Config
	pipeEnv   string
	gateway   sockpuppet.Gateway
	logger    *zap.SugaredLogger
	stats     tally.Scope
	lookupEnv EnvLookup
	out       io.Writer
}

// New constructs the automation controller.
func New(p Params) (Controller, error) {
	if p.Config == nil || p.Gateway == nil || p.Logger == nil || p.Stats == nil {
		return nil, errors.New("required parameters are missing")
	}

	c := &controller{
		gateway:   p.Gateway,
		logger:    p.Logger,
		stats:     p.Stats.SubScope(_configKeyAutomation),
		lookupEnv: p.LookupEnv,
		out:       p.Stdout,
	}
	if c.lookupEnv == nil {
		c.lookupEnv = os.LookupEnv
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	if err := c.processConfig(p.Config); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *controller) processConfig(cfg config.Provider) error {
	if err := cfg.Get(_configKeyPipeEnv).Populate(&c.pipeEnv); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyPipeEnv, err)
	}
	if c.pipeEnv == "" {
		return fmt.Errorf("missing field %q in config", _configKeyPipeEnv)
	}

	if err := cfg.Get(_configKeyAutomation).Populate(&c.cfg); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyAutomation, err)
	}

	templates := map[string]string{
		"outputTemplate":          c.cfg.OutputTemplate,
		"pickPlaceholderTemplate": c.cfg.PickPlaceholderTemplate,
		"selectionTemplate":       c.cfg.SelectionTemplate,
	}
	for key, tmpl := range templates {
		verbs := strings.ReplaceAll(tmpl, "%%", "")
		if strings.Count(verbs, "%s") != 1 || strings.Count(verbs, "%") != 1 {
			return fmt.Errorf("config field %q must contain exactly one %%s, got %q", _configKeyAutomation+"."+key, tmpl)
		}
	}
	return nil
}

func (c *controller) Run(ctx context.Context) int {
	err := c.run(ctx)
	if err == nil {
		c.recordRun(_resultSuccess, "")
		return ExitOK
	}

	fmt.Fprintf(c.out, "Error: %v\n", err)

	result := _resultFailure
	switch {
	case sperrors.IsPrecondition(err):
		fmt.Fprintln(c.out, _msgLaunchHint)
		result = _resultPrecondition
	case sperrors.IsConnection(err):
		result = _resultConnection
	}

	method, _ := sperrors.FailedMethod(err)
	c.logger.Infow("automation failed", zap.String("result", result), zap.String("method", method), zap.Error(err))
	c.recordRun(result, method)
	return ExitFailure
}

func (c *controller) run(ctx context.Context) error {
	address, err := c.resolveAddress()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Connecting to VS Code via: %s\n", address)
	return c.automate(ctx, address)
}

// resolveAddress reads the host address handed down by the launching extension.
func (c *controller) resolveAddress() (entity.Address, error) {
	address, ok := c.lookupEnv(c.pipeEnv)
	if !ok || address == "" {
		return "", &sperrors.MissingAddressError{Env: c.pipeEnv}
	}
	return entity.Address(address), nil
}

// automate owns the session for its whole lifetime. The session is closed on every path, including a failed Connect, and a close failure fails the run.
func (c *controller) automate(ctx context.Context, address entity.Address) (err error) {
	session := c.gateway.NewSession(address)
	defer multierr.AppendInvoke(&err, multierr.Close(session))

	if err := session.Connect(ctx); err != nil {
		return err
	}
	ctx = context.WithValue(ctx, entity.SessionContextKey, session.UUID())
	window, workspace := session.Window(), session.Workspace()

	if err := window.ShowInformationMessage(ctx, c.cfg.Greeting); err != nil {
		return err
	}

	folders, err := workspace.WorkspaceFolders(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Workspace folders: %v\n", folders)

	name, ok, err := window.ShowInputBox(ctx, entity.InputBoxOptions{
		Prompt:      c.cfg.InputPrompt,
		Placeholder: c.cfg.InputPlaceholder,
	})
	if err != nil {
		return err
	}

	if ok && name != "" {
		if err := c.greet(ctx, window, name); err != nil {
			return err
		}
	} else {
		c.logger.Infow("no name entered, skipping greeting", zap.Stringer("session", session.UUID()))
	}

	if err := window.SetStatusBarMessage(ctx, c.cfg.StatusBarMessage, c.cfg.StatusBarTimeout); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Automation completed successfully")
	return nil
}

// greet writes to a dedicated output channel and offers the quick pick.
func (c *controller) greet(ctx context.Context, window sockpuppet.Window, name string) error {
	if err := window.CreateOutputChannel(ctx, entity.OutputChannel{
		Name: c.cfg.OutputChannel,
		Text: fmt.Sprintf(c.cfg.OutputTemplate, name),
		Show: true,
	}); err != nil {
		return err
	}

	choice, ok, err := window.ShowQuickPick(ctx, c.cfg.Options, entity.QuickPickOptions{
		Placeholder: fmt.Sprintf(c.cfg.PickPlaceholderTemplate, name),
	})
	if err != nil {
		return err
	}
	if !ok || choice == "" {
		return nil
	}

	return window.ShowInformationMessage(ctx, fmt.Sprintf(c.cfg.SelectionTemplate, choice))
}

// recordRun counts a finished run. Failed remote calls also carry the method tag.
func (c *controller) recordRun(result, method string) {
	tags := map[string]string{"result": result}
	if method != "" {
		tags["method"] = method
	}
	c.stats.Tagged(tags).Counter("runs").Inc(1)
}
