// Package config loads the built-in scaffold blueprint. The blueprint is
// compiled into the binary; there is no user-facing configuration file.
package config

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/copycat-mvp/copyscaff/internal/core/blueprint"
)

//go:embed blueprint.toml
var blueprintTOML []byte

// Load decodes and validates the embedded blueprint. An error here means
// the shipped resource is broken, so callers treat it as fatal.
func Load() (*blueprint.Blueprint, error) {
	var bp blueprint.Blueprint
	if err := toml.Unmarshal(blueprintTOML, &bp); err != nil {
		return nil, fmt.Errorf("decoding embedded blueprint: %w", err)
	}
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	return &bp, nil
}
