package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the pillarscan configuration.
type Config struct {
	Provider   string        `json:"provider"`
	Model      string        `json:"model"`
	Region     string        `json:"region"`
	Profile    string        `json:"profile,omitempty"`
	PromptsDir string        `json:"promptsDir"`
	Extension  string        `json:"extension"`
	ChunkSize  int           `json:"chunkSize"`
	MaxTokens  int           `json:"maxTokens"`
	Pillars    []string      `json:"pillars"`
	Format     string        `json:"format"`
	OutputDir  string        `json:"outputDir"`
	RepoURL    string        `json:"repoUrl,omitempty"`
	CloneDir   string        `json:"cloneDir"`
	Cache      CacheConfig   `json:"cache"`
	Privacy    PrivacyConfig `json:"privacy"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// PrivacyConfig controls secret redaction.
type PrivacyConfig struct {
	RedactSecrets bool `json:"redactSecrets"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:   "bedrock",
		Model:      "us.anthropic.claude-3-7-sonnet-20250219-v1:0",
		Region:     "us-west-2",
		PromptsDir: "prompts",
		Extension:  ".tf",
		ChunkSize:  2000,
		MaxTokens:  4000,
		Pillars: []string{
			"Operational Excellence",
			"Security",
			"Reliability",
			"Performance Efficiency",
			"Cost Optimization",
			"Sustainability",
		},
		Format:    "json",
		OutputDir: ".",
		CloneDir:  "./cloned_repo",
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for pillarscan.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pillarscan"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "pillarscan"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pillarscan"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "pillarscan"), nil
	default:
		return filepath.Join(home, ".config", "pillarscan"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Region != "" {
		dst.Region = src.Region
	}
	if src.Profile != "" {
		dst.Profile = src.Profile
	}
	if src.PromptsDir != "" {
		dst.PromptsDir = src.PromptsDir
	}
	if src.Extension != "" {
		dst.Extension = src.Extension
	}
	if src.ChunkSize > 0 {
		dst.ChunkSize = src.ChunkSize
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if len(src.Pillars) > 0 {
		dst.Pillars = src.Pillars
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.RepoURL != "" {
		dst.RepoURL = src.RepoURL
	}
	if src.CloneDir != "" {
		dst.CloneDir = src.CloneDir
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("PILLARSCAN_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("PILLARSCAN_MODEL"); v != "" {
		cfg.Model = v
	}
	// The original deployment keyed the inference profile off this variable;
	// honor it for drop-in compatibility.
	if v := os.Getenv("BEDROCK_INFERENCE_PROFILE_ARN"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PILLARSCAN_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("AWS_PROFILE"); v != "" && cfg.Profile == "" {
		cfg.Profile = v
	}
	if v := os.Getenv("PILLARSCAN_PROMPTS_DIR"); v != "" {
		cfg.PromptsDir = v
	}
	if v := os.Getenv("PILLARSCAN_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("PILLARSCAN_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ChunkSize = n
		}
	}
	if v := os.Getenv("PILLARSCAN_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	for key, v := range overrides {
		if v == "" {
			continue
		}
		// Reuse SetField so flags and `config set` accept the same keys.
		_ = SetField(cfg, key, v)
	}
}

// SetField sets a single config field by key name. Returns error if key is
// unknown or the value doesn't parse.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "region":
		cfg.Region = value
	case "profile":
		cfg.Profile = value
	case "promptsDir":
		cfg.PromptsDir = value
	case "extension":
		cfg.Extension = value
	case "chunkSize":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("chunkSize must be an integer: %w", err)
		}
		cfg.ChunkSize = n
	case "maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxTokens must be an integer: %w", err)
		}
		cfg.MaxTokens = n
	case "format":
		cfg.Format = value
	case "outputDir":
		cfg.OutputDir = value
	case "repoUrl":
		cfg.RepoURL = value
	case "cloneDir":
		cfg.CloneDir = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
