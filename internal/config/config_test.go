package config

import (
	"os"
	"path/filepath"
	"testing"

	"sysconf-keeper/internal/env"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(prev) })
	return dir
}

/**
 * Test that defaults apply when no config file exists
 */
func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Address != ":8721" {
		t.Errorf("default address not applied: %q", cfg.Server.Address)
	}
	if cfg.Resolve.Profile != "workstation" {
		t.Errorf("default profile not applied: %q", cfg.Resolve.Profile)
	}
	if !cfg.Metrics.IsEnabled() {
		t.Error("metrics should default to enabled")
	}
}

/**
 * Test that an explicit false toggle in config.yaml survives default
 * filling
 * @description
 * - A zero-valued bool is indistinguishable from unset during the
 *   defaults merge; the pointer form keeps the user's explicit false
 */
func TestLoadConfigExplicitMetricsDisable(t *testing.T) {
	dir := chdirTemp(t)
	content := "metrics:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Metrics.IsEnabled() {
		t.Error("explicit metrics.enabled=false was overridden back to true")
	}
	if cfg.Server.Address != ":8721" {
		t.Errorf("unset fields should still take defaults, got address %q", cfg.Server.Address)
	}
}

/**
 * Test that explicit settings in config.yaml win over defaults
 */
func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	dir := chdirTemp(t)
	content := "server:\n  address: \":9000\"\nresolve:\n  profile: server\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Address != ":9000" {
		t.Errorf("configured address lost: %q", cfg.Server.Address)
	}
	if cfg.Resolve.Profile != "server" {
		t.Errorf("configured profile lost: %q", cfg.Resolve.Profile)
	}
}

/**
 * Test that an invalid configured value fails struct validation
 */
func TestLoadConfigInvalidValue(t *testing.T) {
	dir := chdirTemp(t)
	content := "resolve:\n  profile: desktop\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("unknown profile selector passed config validation")
	}
}

/**
 * Test system definition loading from disk
 * @description
 * - Valid JSON parses into a definition with baseline and profile tables
 * - Malformed JSON fails with an error instead of a partial definition
 */
func TestLoadLocalDefinition(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "system-def.json")
	content := `{
		"configuration": "1",
		"baseline": {"performance": {"swappiness": 30}},
		"profiles": {"minimal": {}}
	}`
	if err := os.WriteFile(good, []byte(content), 0644); err != nil {
		t.Fatalf("write definition failed: %v", err)
	}
	def, err := loadLocalDefinition(good)
	if err != nil {
		t.Fatalf("valid definition rejected: %v", err)
	}
	if def.Configuration != "1" || def.Baseline == nil || def.Profiles == nil {
		t.Errorf("definition parsed incompletely: %+v", def)
	}

	bad := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write broken definition failed: %v", err)
	}
	if _, err := loadLocalDefinition(bad); err == nil {
		t.Error("malformed definition accepted")
	}

	if _, err := loadLocalDefinition(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("missing file accepted")
	}
}

/**
 * Test the host definition lifecycle
 * @description
 * - A host without system-def.json is normal: no error, no definition
 * - Once the file exists, loading picks it up
 */
func TestLoadDefinition(t *testing.T) {
	prevDir, prevDef := env.SysconfDir, definition
	env.SysconfDir = t.TempDir()
	definition = nil
	t.Cleanup(func() { env.SysconfDir, definition = prevDir, prevDef })

	if err := LoadDefinition(); err != nil {
		t.Fatalf("missing definition reported an error: %v", err)
	}
	if Definition() != nil {
		t.Fatal("definition materialized from a missing file")
	}

	shareDir := filepath.Join(env.SysconfDir, "share")
	if err := os.MkdirAll(shareDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	content := `{"configuration": "1", "baseline": {"services": {}}}`
	if err := os.WriteFile(filepath.Join(shareDir, "system-def.json"), []byte(content), 0644); err != nil {
		t.Fatalf("write definition failed: %v", err)
	}
	if err := LoadDefinition(); err != nil {
		t.Fatalf("valid definition failed to load: %v", err)
	}
	if def := Definition(); def == nil || def.Configuration != "1" {
		t.Errorf("loaded definition incomplete: %+v", def)
	}
}
