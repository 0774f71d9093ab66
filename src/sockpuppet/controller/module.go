package controller

import (
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/controller/automation"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(automation.New),
)
