package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return path
}

func TestLoadCatalogFile(t *testing.T) {
	path := writeCatalog(t, `
models:
  - id: gemini-2.5-flash
    display_name: Gemini 2.5 Flash
    max_input_tokens: 1048576
    max_output_tokens: 65536
    default: true
  - id: gemini-2.5-pro
`)

	entries, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "gemini-2.5-flash" || !entries[0].Default {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Default {
		t.Fatalf("second entry must not be default")
	}
}

func TestLoadCatalogFileRejectsMissingDefault(t *testing.T) {
	path := writeCatalog(t, `
models:
  - id: gemini-2.5-flash
  - id: gemini-2.5-pro
`)

	if _, err := LoadCatalogFile(path); err == nil {
		t.Fatal("expected error for missing default")
	}
}

func TestLoadCatalogFileRejectsMultipleDefaults(t *testing.T) {
	path := writeCatalog(t, `
models:
  - id: gemini-2.5-flash
    default: true
  - id: gemini-2.5-pro
    default: true
`)

	if _, err := LoadCatalogFile(path); err == nil {
		t.Fatal("expected error for multiple defaults")
	}
}

func TestLoadCatalogFileRejectsEmpty(t *testing.T) {
	path := writeCatalog(t, "models: []\n")

	if _, err := LoadCatalogFile(path); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
