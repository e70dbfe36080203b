package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all triaged configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// EngineConfig holds triage engine settings.
type EngineConfig struct {
	LexiconPath         string  `yaml:"lexicon_path"`
	MaxFeatures         int     `yaml:"max_features"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	SmoothingAlpha      float64 `yaml:"smoothing_alpha"`
}

// StoreConfig holds assessment storage settings.
type StoreConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Load builds configuration from defaults, an optional YAML file
// (./config.yaml, or the path in TRIAGE_CONFIG), and TRIAGE_* environment
// variables, with each layer overriding the previous one. A missing file is
// fine; a malformed one is an error.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{Addr: ":8080"},
		Engine: EngineConfig{
			LexiconPath:         "data/lexicon.txt",
			MaxFeatures:         1000,
			ConfidenceThreshold: 0.6,
			SmoothingAlpha:      1.0,
		},
		Store: StoreConfig{DBPath: "triage.db"},
		Log:   LogConfig{Level: "info", Format: "text"},
	}

	path := "config.yaml"
	if envPath := os.Getenv("TRIAGE_CONFIG"); envPath != "" {
		path = envPath
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	envOverride(&cfg.Server.Addr, "TRIAGE_ADDR")
	envOverride(&cfg.Engine.LexiconPath, "TRIAGE_LEXICON_PATH")
	envOverrideInt(&cfg.Engine.MaxFeatures, "TRIAGE_MAX_FEATURES")
	envOverrideFloat(&cfg.Engine.ConfidenceThreshold, "TRIAGE_CONFIDENCE_THRESHOLD")
	envOverrideFloat(&cfg.Engine.SmoothingAlpha, "TRIAGE_SMOOTHING_ALPHA")
	envOverride(&cfg.Store.DBPath, "TRIAGE_DB_PATH")
	envOverride(&cfg.Log.Level, "TRIAGE_LOG_LEVEL")
	envOverride(&cfg.Log.Format, "TRIAGE_LOG_FORMAT")

	return cfg, nil
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
