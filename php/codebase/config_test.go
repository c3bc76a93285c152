package codebase

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("config = %#v, want defaults", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	root := t.TempDir()
	content := "extensions:\n  - .php\nexclude:\n  - cache\npoll_interval_ms: 250\n"
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Extensions, []string{".php"}) {
		t.Errorf("extensions = %#v", cfg.Extensions)
	}
	if !reflect.DeepEqual(cfg.Exclude, []string{"cache"}) {
		t.Errorf("exclude = %#v", cfg.Exclude)
	}
	if got := cfg.PollInterval(); got != 250*time.Millisecond {
		t.Errorf("poll interval = %v", got)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty extensions", "extensions: []\n"},
		{"extension without dot", "extensions:\n  - php\n"},
		{"non-positive poll interval", "poll_interval_ms: 0\n"},
		{"malformed yaml", "extensions: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(root); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg.Extensions = nil
	if err := cfg.Validate(); !errors.Is(err, ErrConfigValidation) {
		t.Errorf("error = %v, want ErrConfigValidation", err)
	}
}

func TestConfigMatchesExtension(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{"a.php", true},
		{"tpl.phtml", true},
		{"legacy.inc", true},
		{"notes.txt", false},
		{"php", false},
	}

	for _, tt := range tests {
		if got := cfg.matchesExtension(tt.path); got != tt.want {
			t.Errorf("matchesExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestConfigExcludesDir(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.excludesDir("vendor") {
		t.Error("vendor should be excluded")
	}
	if cfg.excludesDir("src") {
		t.Error("src should not be excluded")
	}
}
