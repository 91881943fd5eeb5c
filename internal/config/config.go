package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAPIURL     = "http://127.0.0.1:5000"
	DefaultDBFileName = ".innkeep.db"
	DefaultUploadsDir = "uploads"
	DefaultLogLevel   = "info"

	configFileName  = ".innkeep.toml"
	configDirEnvKey = "INNKEEP_CONFIG_DIR"

	apiURLEnvKey      = "INNKEEP_API_URL"
	dbPathEnvKey      = "INNKEEP_DB"
	uploadsDirEnvKey  = "INNKEEP_UPLOADS_DIR"
	tokenSecretEnvKey = "INNKEEP_TOKEN_SECRET"
	requireAuthEnvKey = "INNKEEP_REQUIRE_AUTH"
	corsOriginsEnvKey = "INNKEEP_CORS_ALLOWED_ORIGINS"
)

// TokenSecretEnvKey names the environment variable holding the session
// token signing secret.
const TokenSecretEnvKey = tokenSecretEnvKey

// Config defines runtime configuration for innkeep.
type Config struct {
	APIURL             string   `toml:"api_url"`
	DBPath             string   `toml:"db_path"`
	UploadsDir         string   `toml:"uploads_dir"`
	TokenSecret        string   `toml:"token_secret"`
	RequireAuth        bool     `toml:"require_auth"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	LogLevel           string   `toml:"log_level"`
}

// Default returns default configuration values.
func Default() Config {
	return Config{
		APIURL:   DefaultAPIURL,
		LogLevel: DefaultLogLevel,
	}
}

func loadFile(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func overrideConfigPath() (string, bool) {
	dir := strings.TrimSpace(os.Getenv(configDirEnvKey))
	if dir == "" {
		return "", false
	}
	return filepath.Join(dir, configFileName), true
}

var allowedKeys = []string{
	"api_url",
	"db_path",
	"uploads_dir",
	"token_secret",
	"require_auth",
	"cors_allowed_origins",
	"log_level",
}

// AllowedKeys returns the set of valid config keys.
func AllowedKeys() []string {
	return allowedKeys
}

// IsAllowedKey checks if a key is a valid config key.
func IsAllowedKey(key string) bool {
	for _, k := range allowedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Get returns the value of a config key. The token secret is reported
// redacted so `config get` never prints it.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "db_path":
		return c.DBPath, nil
	case "uploads_dir":
		return c.UploadsDir, nil
	case "token_secret":
		if c.TokenSecret == "" {
			return "", nil
		}
		return "(set)", nil
	case "require_auth":
		return strconv.FormatBool(c.RequireAuth), nil
	case "cors_allowed_origins":
		return strings.Join(c.CORSAllowedOrigins, ","), nil
	case "log_level":
		return c.LogLevel, nil
	default:
		return "", fmt.Errorf("unknown key: %s", key)
	}
}

// GlobalPath returns the path to the config file.
func GlobalPath() (string, error) {
	if path, ok := overrideConfigPath(); ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// SetKey reads the TOML file at path, sets key=value, and writes it back.
func SetKey(path, key, value string) error {
	if !IsAllowedKey(key) {
		return fmt.Errorf("unknown key: %s", key)
	}

	data := make(map[string]any)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &data); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}

	parsed, err := parseSetValue(key, value)
	if err != nil {
		return err
	}
	data[key] = parsed

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(data)
}

// Load reads config from the global file and applies env overrides.
func Load() (*Config, error) {
	cfg := Default()

	path, err := GlobalPath()
	if err == nil {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if cfg.DBPath == "" {
		if cwd, err := os.Getwd(); err == nil {
			cfg.DBPath = filepath.Join(cwd, DefaultDBFileName)
		}
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = filepath.Join(filepath.Dir(cfg.DBPath), DefaultUploadsDir)
	}

	if apiURL := os.Getenv(apiURLEnvKey); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if dbPath := os.Getenv(dbPathEnvKey); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if uploadsDir := os.Getenv(uploadsDirEnvKey); uploadsDir != "" {
		cfg.UploadsDir = uploadsDir
	}
	if secret := os.Getenv(tokenSecretEnvKey); secret != "" {
		cfg.TokenSecret = secret
	}
	if raw := strings.TrimSpace(os.Getenv(requireAuthEnvKey)); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			cfg.RequireAuth = parsed
		}
	}
	if raw := strings.TrimSpace(os.Getenv(corsOriginsEnvKey)); raw != "" {
		cfg.CORSAllowedOrigins = splitCSV(raw)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return &cfg, nil
}

func parseSetValue(key, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch key {
	case "require_auth":
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false", key)
		}
		return parsed, nil
	case "cors_allowed_origins":
		return splitCSV(value), nil
	default:
		return value, nil
	}
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
