// Package gateway wires the outbound gateways of the automation.
package gateway

import (
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/gateway/sockpuppet"
	"go.uber.org/fx"
)

// Module provides the outbound gateways.
var Module = fx.Options(
	fx.Provide(sockpuppet.New),
)
