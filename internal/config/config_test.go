package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.APIURL != "http://127.0.0.1:5000" {
		t.Fatalf("expected default API URL, got %q", cfg.APIURL)
	}
	if cfg.DBPath != "" {
		t.Fatalf("expected empty db path, got %q", cfg.DBPath)
	}
	if cfg.TokenSecret != "" {
		t.Fatalf("expected no default token secret, got %q", cfg.TokenSecret)
	}
	if cfg.RequireAuth {
		t.Fatal("expected require_auth default false")
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("expected default log level %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".innkeep.toml")
	if err := os.WriteFile(path, []byte(`api_url = "http://localhost:9999"
uploads_dir = "/srv/uploads"
require_auth = true
log_level = "warn"
`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://localhost:9999" {
		t.Fatalf("expected api_url override, got %q", cfg.APIURL)
	}
	if cfg.UploadsDir != "/srv/uploads" {
		t.Fatalf("expected uploads_dir override, got %q", cfg.UploadsDir)
	}
	if !cfg.RequireAuth {
		t.Fatal("expected require_auth true")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected log_level 'warn', got %q", cfg.LogLevel)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFile("/nonexistent/path/.innkeep.toml", &cfg); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Fatal("defaults should be preserved")
	}
}

func TestIsAllowedKey(t *testing.T) {
	for _, key := range []string{
		"api_url",
		"db_path",
		"uploads_dir",
		"token_secret",
		"require_auth",
		"cors_allowed_origins",
		"log_level",
	} {
		if !IsAllowedKey(key) {
			t.Fatalf("expected %q to be allowed", key)
		}
	}
	if IsAllowedKey("invalid") {
		t.Fatal("expected 'invalid' to not be allowed")
	}
}

func TestGetRedactsTokenSecret(t *testing.T) {
	cfg := Config{TokenSecret: "hunter2"}
	val, err := cfg.Get("token_secret")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if val == "hunter2" {
		t.Fatal("token_secret must never be printed")
	}

	cfg.TokenSecret = ""
	if val, _ = cfg.Get("token_secret"); val != "" {
		t.Fatalf("expected empty for unset secret, got %q", val)
	}
}

func TestSetKeyCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.toml")
	if err := SetKey(path, "api_url", "http://127.0.0.1:8088"); err != nil {
		t.Fatalf("set: %v", err)
	}

	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:8088" {
		t.Fatalf("expected written api_url, got %q", cfg.APIURL)
	}
}

func TestSetKeyUpdatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.toml")
	if err := os.WriteFile(path, []byte("api_url = \"http://old\"\nlog_level = \"warn\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := SetKey(path, "api_url", "http://new"); err != nil {
		t.Fatalf("set: %v", err)
	}

	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://new" {
		t.Fatalf("expected 'http://new', got %q", cfg.APIURL)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected preserved log_level 'warn', got %q", cfg.LogLevel)
	}
}

func TestSetKeyRequireAuthParsesBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.toml")
	if err := SetKey(path, "require_auth", "true"); err != nil {
		t.Fatalf("set require_auth: %v", err)
	}

	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.RequireAuth {
		t.Fatal("expected require_auth true")
	}

	if err := SetKey(path, "require_auth", "not-a-bool"); err == nil {
		t.Fatal("expected error for non-bool require_auth")
	}
}

func TestSetKeyInvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.toml")
	if err := SetKey(path, "invalid_key", "value"); err == nil {
		t.Fatal("expected error for invalid key")
	}
}

func TestConfigDirOverridePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INNKEEP_CONFIG_DIR", dir)

	path, err := GlobalPath()
	if err != nil {
		t.Fatalf("global path: %v", err)
	}
	if path != filepath.Join(dir, ".innkeep.toml") {
		t.Fatalf("unexpected global path: %s", path)
	}
}

func TestLoadConfigDirOverride(t *testing.T) {
	configDir := t.TempDir()
	cfgPath := filepath.Join(configDir, ".innkeep.toml")
	if err := os.WriteFile(cfgPath, []byte("api_url = \"http://127.0.0.1:9001\"\ntoken_secret = \"file-secret\"\n"), 0o644); err != nil {
		t.Fatalf("write override config: %v", err)
	}

	t.Setenv("INNKEEP_CONFIG_DIR", configDir)
	t.Setenv("INNKEEP_API_URL", "")
	t.Setenv("INNKEEP_DB", "")
	t.Setenv("INNKEEP_UPLOADS_DIR", "")
	t.Setenv("INNKEEP_TOKEN_SECRET", "")
	t.Setenv("INNKEEP_REQUIRE_AUTH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:9001" {
		t.Fatalf("expected config-dir api_url, got %q", cfg.APIURL)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Fatalf("expected file token secret, got %q", cfg.TokenSecret)
	}
	if cfg.DBPath == "" {
		t.Fatal("expected a default db path")
	}
	if cfg.UploadsDir != filepath.Join(filepath.Dir(cfg.DBPath), DefaultUploadsDir) {
		t.Fatalf("expected uploads dir next to db, got %q", cfg.UploadsDir)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("INNKEEP_CONFIG_DIR", t.TempDir())
	t.Setenv("INNKEEP_API_URL", "http://127.0.0.1:8080")
	t.Setenv("INNKEEP_DB", "/tmp/override.db")
	t.Setenv("INNKEEP_UPLOADS_DIR", "/tmp/override-uploads")
	t.Setenv("INNKEEP_TOKEN_SECRET", "env-secret")
	t.Setenv("INNKEEP_REQUIRE_AUTH", "true")
	t.Setenv("INNKEEP_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:8080" {
		t.Fatalf("expected env API URL, got %q", cfg.APIURL)
	}
	if cfg.DBPath != "/tmp/override.db" {
		t.Fatalf("expected env DB path, got %q", cfg.DBPath)
	}
	if cfg.UploadsDir != "/tmp/override-uploads" {
		t.Fatalf("expected env uploads dir, got %q", cfg.UploadsDir)
	}
	if cfg.TokenSecret != "env-secret" {
		t.Fatalf("expected env token secret, got %q", cfg.TokenSecret)
	}
	if !cfg.RequireAuth {
		t.Fatal("expected require_auth enabled via env")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
}
