// Package config holds the built-in configuration of the automation binary.
package config

import _ "embed"

// Base is the default configuration. Files listed in $SOCKPUPPET_CONFIG_DIR/meta.yaml are layered on top of it.
//
//go:embed base.yaml
var Base []byte
