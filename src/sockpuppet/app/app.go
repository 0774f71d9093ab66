package app

import (
	"context"
	"fmt"
	"time"

	tally "github.com/uber-go/tally/v4"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/controller"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/gateway"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/core"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/fs"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/internal/jsonrpcfx"
	"go.uber.org/config"
	"go.uber.org/fx"
)

// MetricsConfig is the `metrics` configuration block.
type MetricsConfig struct {
	Service        string        `yaml:"service"`
	ReportInterval time.Duration `yaml:"reportInterval"`
}

// Module defines the automation application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	controller.Module,
	jsonrpcfx.Module,
	fs.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(newRootScope),
	fx.Decorate(decorateConfigProvider),
)

func newRootScope(cfg config.Provider, lc fx.Lifecycle) (tally.Scope, error) {
	var mc MetricsConfig
	if err := cfg.Get("metrics").Populate(&mc); err != nil {
		return nil, fmt.Errorf("loading metrics config: %w", err)
	}
	if mc.ReportInterval <= 0 {
		mc.ReportInterval = time.Second
	}

	rs, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags: map[string]string{
			"service": mc.Service,
		},
	}, mc.ReportInterval)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closer.Close()
		},
	})

	return rs, nil
}
