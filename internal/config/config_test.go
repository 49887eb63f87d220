package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.SnapshotRate != 20 || cfg.KillLimit != 25 || cfg.RespawnDelay != 3*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("origins = %v, want none", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SKIRMISH_KILL_LIMIT", "10")
	t.Setenv("SKIRMISH_RESPAWN_DELAY", "1500ms")
	t.Setenv("SKIRMISH_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rules := cfg.Rules()
	if rules.KillLimit != 10 || rules.RespawnDelay != 1500*time.Millisecond {
		t.Fatalf("rules not overridden: kill=%d delay=%s", rules.KillLimit, rules.RespawnDelay)
	}
	if len(rules.SpawnPoints) == 0 || len(rules.Weapons.Stats) == 0 {
		t.Fatalf("rules lost the stock tables")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SKIRMISH_SNAPSHOT_HZ", "not-an-int")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	t.Setenv("SKIRMISH_SNAPSHOT_HZ", "0")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected validation error for zero snapshot rate")
	}
}

func TestLoadReadsDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SKIRMISH_MAX_PLAYERS=4\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("SKIRMISH_MAX_PLAYERS") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxPlayers != 4 {
		t.Fatalf("max players = %d, want 4", cfg.MaxPlayers)
	}
}
