package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"go.mod": "module example.com/app\n\ngo 1.24.0\n",
	})

	res, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.ModulePath != "example.com/app" {
		t.Errorf("ModulePath = %q", res.ModulePath)
	}
	if res.GenPackage != "models" || res.GenOutput != "models" {
		t.Errorf("GenPackage/GenOutput = %q/%q, want models defaults", res.GenPackage, res.GenOutput)
	}
}

func TestResolveWithConfig(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"go.mod":       "module example.com/app\n\ngo 1.24.0\n",
		"observe.yaml": "gen:\n  package: props\n  output: internal/props\n",
	})

	res, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.GenPackage != "props" || res.GenOutput != "internal/props" {
		t.Errorf("GenPackage/GenOutput = %q/%q", res.GenPackage, res.GenOutput)
	}
}

func TestResolveBadPackageName(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"go.mod":       "module example.com/app\n\ngo 1.24.0\n",
		"observe.yaml": "gen:\n  package: \"9lives\"\n",
	})
	if _, err := Resolve(dir); err == nil {
		t.Error("digit-leading package name should fail")
	}
}

func TestResolveMissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("Resolve without go.mod should fail")
	}
}

func TestLoadOptionalAbsent(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Gen.Package != "" {
		t.Errorf("absent config should be empty, got %+v", cfg)
	}
}

func TestLoadOptionalMalformed(t *testing.T) {
	dir := writeProject(t, map[string]string{"observe.yaml": "gen: ["})
	if _, err := LoadOptional(dir); err == nil {
		t.Error("malformed observe.yaml should fail")
	}
}
