// Package config loads HCL simulation configuration for the odds command
// and the evaluation service.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SimConfig is the top-level configuration file layout.
type SimConfig struct {
	Sim     SimSettings    `hcl:"sim,block"`
	Players []PlayerConfig `hcl:"player,block"`
	Board   string         `hcl:"board,optional"`
}

// SimSettings controls the Monte Carlo run.
type SimSettings struct {
	Iterations int    `hcl:"iterations,optional"`
	Seed       int64  `hcl:"seed,optional"`
	Workers    int    `hcl:"workers,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// PlayerConfig names a player and their hole cards, e.g. cards = "AS KS".
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Cards string `hcl:"cards"`
}

// DefaultSimConfig returns the configuration used when no file is given.
func DefaultSimConfig() *SimConfig {
	return &SimConfig{
		Sim: SimSettings{
			Iterations: 10000,
			LogLevel:   "info",
		},
	}
}

// LoadSimConfig loads configuration from an HCL file, falling back to
// defaults when the file does not exist.
func LoadSimConfig(filename string) (*SimConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultSimConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg SimConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Sim.Iterations == 0 {
		cfg.Sim.Iterations = 10000
	}
	if cfg.Sim.LogLevel == "" {
		cfg.Sim.LogLevel = "info"
	}
	return &cfg, nil
}
