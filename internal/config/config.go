// Package config loads the optional per-run configuration file
// `.myst.yaml`: the trace flag, the default capture-errors mode, and
// the short-circuit setting for && / || (spec §9's open question,
// overridable per run rather than fixed at compile time).
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config is the run configuration a `.myst.yaml` file may override.
// The zero value is not the default configuration: use Default() (or
// Load, which starts from it) to get CaptureErrors and ShortCircuit
// set to true; fields absent from a loaded file keep their defaults.
type Config struct {
	// Trace enables execution tracing (mirrors cmd/myst's --trace flag).
	Trace bool `yaml:"trace"`
	// CaptureErrors is the default for the run command's capture_errors
	// mode (spec §6.3) when the CLI doesn't override it.
	CaptureErrors bool `yaml:"capture_errors"`
	// ShortCircuit controls && / || evaluation; true by default,
	// matching the decision in SPEC_FULL.md.
	ShortCircuit bool `yaml:"short_circuit"`
}

// Default returns the configuration in effect when no file is present.
func Default() Config {
	return Config{CaptureErrors: true, ShortCircuit: true}
}

// Load reads and parses path as a `.myst.yaml` configuration file. A
// missing file is not an error: Load returns Default() unchanged, since
// absence of a config file always means "use defaults" (not "fail the
// run").
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FindAndLoad looks for `.myst.yaml` in dir and loads it if present,
// the convenience entry point cmd/myst uses (searching the directory a
// script was loaded from, mirroring the teacher's unit-search-path
// convention of treating the script's own directory as a config root).
func FindAndLoad(dir string) (Config, error) {
	return Load(filepath.Join(dir, ".myst.yaml"))
}
