package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "toastify.yml")

	yamlContent := `importPath: "../shared/utils/toast"
files:
  - /srv/app/components/UserList.tsx
  - /srv/app/components/LandingPage.tsx
`

	err := os.WriteFile(configFile, []byte(yamlContent), 0o600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := Load(configFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(config.Files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(config.Files))
	}

	if config.Files[0] != "/srv/app/components/UserList.tsx" {
		t.Errorf("Expected first file to be UserList.tsx, got %s", config.Files[0])
	}

	if config.ImportPath != "../shared/utils/toast" {
		t.Errorf("Expected import path '../shared/utils/toast', got %s", config.ImportPath)
	}
}

func TestLoadConfigDefaultsImportPath(t *testing.T) {
	t.Parallel()

	yamlContent := `files:
  - /srv/app/components/UserList.tsx
`

	config, err := LoadFromYAML([]byte(yamlContent))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.ImportPath != DefaultImportPath {
		t.Errorf("Expected default import path, got %s", config.ImportPath)
	}
}

func TestLoadConfigRejectsEmptyFileList(t *testing.T) {
	t.Parallel()

	yamlContent := `importPath: "../shared/utils/toast"
files: []
`

	_, err := LoadFromYAML([]byte(yamlContent))
	if err == nil {
		t.Fatal("Expected validation error for empty file list")
	}
}

func TestLoadConfigRejectsRelativePath(t *testing.T) {
	t.Parallel()

	yamlContent := `files:
  - components/UserList.tsx
`

	_, err := LoadFromYAML([]byte(yamlContent))
	if err == nil {
		t.Fatal("Expected validation error for relative path")
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.yml")

	config, err := LoadOrDefault(missing)
	if err != nil {
		t.Fatalf("Expected fallback to defaults, got %v", err)
	}

	if config.ImportPath != DefaultImportPath {
		t.Errorf("Expected default import path, got %s", config.ImportPath)
	}

	if len(config.Files) == 0 {
		t.Error("Expected compiled-in file list to be non-empty")
	}
}

func TestLoadOrDefaultSurfacesParseErrors(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "toastify.yml")

	err := os.WriteFile(configFile, []byte("files: {not a list"), 0o600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = LoadOrDefault(configFile)
	if err == nil {
		t.Fatal("Expected parse error to surface")
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Default()
	first.Files[0] = "/tmp/mutated.tsx"

	second := Default()
	if second.Files[0] == "/tmp/mutated.tsx" {
		t.Error("Default() must not share its file slice between callers")
	}
}
