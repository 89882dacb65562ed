// Package config resolves project configuration for the observe CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional observe.yaml configuration.
type Config struct {
	Gen GenConfig `yaml:"gen"`
}

// GenConfig contains code generation settings.
type GenConfig struct {
	// Package is the package name of generated files (default "models").
	Package string `yaml:"package,omitempty"`
	// Output is the directory generated files are written to, relative to
	// the project root (default the package name).
	Output string `yaml:"output,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	GenPackage string
	GenOutput  string
}

// LoadOptional reads observe.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "observe.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read observe.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse observe.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads observe.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	pkg := strings.TrimSpace(cfg.Gen.Package)
	if pkg == "" {
		pkg = "models"
	}
	if err := validatePackageName(pkg); err != nil {
		return nil, err
	}

	out := strings.TrimSpace(cfg.Gen.Output)
	if out == "" {
		out = pkg
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		GenPackage: pkg,
		GenOutput:  out,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func validatePackageName(pkg string) error {
	for i, r := range pkg {
		switch {
		case r == '_', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("gen.package cannot start with a digit (%q)", pkg)
			}
		default:
			return fmt.Errorf("gen.package contains invalid character %q (%q)", r, pkg)
		}
	}
	if pkg == "" {
		return fmt.Errorf("gen.package is empty")
	}
	return nil
}
