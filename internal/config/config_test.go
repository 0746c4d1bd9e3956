package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Theme != "" {
		t.Errorf("Theme = %q, want empty", cfg.Theme)
	}
	if cfg.NoColor {
		t.Error("NoColor = true, want false")
	}
	if len(cfg.Exclude) != 0 {
		t.Errorf("len(Exclude) = %d, want 0", len(cfg.Exclude))
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "theme: charm\nno-color: true\nexclude:\n  - scratch-*\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Theme != "charm" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "charm")
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "scratch-*" {
		t.Errorf("Exclude = %v, want [scratch-*]", cfg.Exclude)
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("theme: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"nil config", nil, false},
		{"empty config", &Config{}, false},
		{"valid excludes", &Config{Exclude: []string{"tmp-*", ".*"}}, false},
		{"bad glob", &Config{Exclude: []string{"[unclosed"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetExcludePatterns_NilSafe(t *testing.T) {
	var cfg *Config
	if got := cfg.GetExcludePatterns(); got != nil {
		t.Errorf("GetExcludePatterns() on nil = %v, want nil", got)
	}
}
