package main

import (
	"context"
	"fmt"
	"os"

	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/app"
	"github.com/uber/vscode-sockpuppet-go/src/sockpuppet/controller/automation"
	"go.uber.org/fx"
)

func opts() fx.Option {
	return fx.Options(
		app.Module,
	)
}

func main() {
	os.Exit(run(opts()))
}

// run starts the application, performs the automation once, and stops the application again.
func run(options fx.Option) int {
	var ctrl automation.Controller
	fxApp := fx.New(options, fx.Populate(&ctrl))
	if err := fxApp.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return automation.ExitFailure
	}

	startCtx, cancel := context.WithTimeout(context.Background(), fxApp.StartTimeout())
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return automation.ExitFailure
	}

	code := ctrl.Run(context.Background())

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil && code == automation.ExitOK {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = automation.ExitFailure
	}

	return code
}
