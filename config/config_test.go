package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ingest.yaml")
	contents := "characterName: Clippy\nfallbackFrameDuration: 0.0833\noutputDirectory: build/clippy\noutputPrefix: clippy\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if opts.CharacterName != "Clippy" {
		t.Errorf("CharacterName = %q, want Clippy", opts.CharacterName)
	}
	if opts.FallbackFrameDuration != 0.0833 {
		t.Errorf("FallbackFrameDuration = %v, want 0.0833", opts.FallbackFrameDuration)
	}
	if opts.OutputDirectory != "build/clippy" {
		t.Errorf("OutputDirectory = %q, want build/clippy", opts.OutputDirectory)
	}
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFailsOnMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("characterName: [unterminated"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
