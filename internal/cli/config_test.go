package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/topoviz/topoviz/pkg/topo"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
ignore = ["/diagnostics"]
select = ["topics"]
show_types = true

[colors]
topics = "navy"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "/diagnostics" {
		t.Errorf("Ignore = %v", cfg.Ignore)
	}
	if len(cfg.Select) != 1 || cfg.Select[0] != "topics" {
		t.Errorf("Select = %v", cfg.Select)
	}
	if !cfg.ShowTypes {
		t.Error("ShowTypes should be true")
	}

	colors := cfg.Colors.colors()
	if colors.Topics != "navy" {
		t.Errorf("Topics color = %q, want navy", colors.Topics)
	}
	if colors.Services != topo.DefaultColors.Services {
		t.Errorf("Services color = %q, should keep default", colors.Services)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicitly named missing config should error")
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if len(cfg.Ignore) != 0 {
		t.Errorf("missing default config should be empty, got %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("ignore = not-toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("invalid TOML should error")
	}
}

func TestConfigFromContextDefault(t *testing.T) {
	cfg := configFromContext(context.Background())
	if cfg == nil {
		t.Fatal("configFromContext should never return nil")
	}
}

func TestConfigFromContextRoundTrip(t *testing.T) {
	want := &Config{CacheDir: "/tmp/x"}
	ctx := withConfig(context.Background(), want)
	if got := configFromContext(ctx); got != want {
		t.Error("configFromContext should return the attached config")
	}
}

func TestArtifactCacheDirOverride(t *testing.T) {
	dir, err := artifactCacheDir(&Config{CacheDir: "/custom/cache"})
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/custom/cache" {
		t.Errorf("dir = %q, want config override", dir)
	}
}
