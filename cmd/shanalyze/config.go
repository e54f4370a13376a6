// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spharm/shtrans"
)

// Config is the full set of analysis settings. A YAML file given with
// --config fills it first; flags set on the command line win.
type Config struct {
	Lmax      int     `yaml:"lmax"`
	Method    string  `yaml:"method"`
	Out       string  `yaml:"out"`
	ModelName string  `yaml:"model_name"`
	Smooth    string  `yaml:"smooth"`
	RadiusKm  float64 `yaml:"radius_km"`
	Verify    bool    `yaml:"verify"`
	Verbose   bool    `yaml:"verbose"`
}

// DefaultConfig returns the settings used when neither file nor flag says
// otherwise.
func DefaultConfig() Config {
	return Config{
		Lmax:      shtrans.AutoLmax,
		Method:    shtrans.DefaultMethod.String(),
		ModelName: "spharm",
	}
}

// LoadConfig decodes path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and keeps the defaults.
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
