package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"civicworks/internal/models"
)

// Config holds everything the client core needs to talk to the API and run
// the background refresher. Values come from config.yaml, overridden by
// environment variables, with defaults filled last.
type Config struct {
	APIBaseURL        string `yaml:"api_base_url"`
	APITimeoutSeconds int    `yaml:"api_timeout_seconds"`

	PageSize               int    `yaml:"page_size"`
	RefreshIntervalMinutes int    `yaml:"refresh_interval_minutes"`
	StatsFilter            string `yaml:"stats_filter"`
	StatusFilter           string `yaml:"status_filter"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// LoadConfig reads config.yaml (or $CONFIG_PATH), applies env overrides and
// defaults, and exits on invalid values.
func LoadConfig() Config {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.APIBaseURL, "API_BASE_URL")
	envOverrideInt(&cfg.APITimeoutSeconds, "API_TIMEOUT_SECONDS")
	envOverrideInt(&cfg.PageSize, "PAGE_SIZE")
	envOverrideInt(&cfg.RefreshIntervalMinutes, "REFRESH_INTERVAL_MINUTES")
	envOverride(&cfg.StatsFilter, "STATS_FILTER")
	envOverride(&cfg.StatusFilter, "STATUS_FILTER")
	envOverride(&cfg.LogLevel, "LOG_LEVEL")
	envOverride(&cfg.LogFormat, "LOG_FORMAT")

	// Defaults
	if cfg.APITimeoutSeconds == 0 {
		cfg.APITimeoutSeconds = 30
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 10
	}
	if cfg.RefreshIntervalMinutes == 0 {
		cfg.RefreshIntervalMinutes = 15
	}
	if cfg.StatsFilter == "" {
		cfg.StatsFilter = "all"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}

	// Validate required fields
	if cfg.APIBaseURL == "" {
		log.Fatalf("Required config 'api_base_url' is not set (via config.yaml or env var)")
	}
	if cfg.APITimeoutSeconds < 1 {
		log.Fatalf("invalid api_timeout_seconds '%d': must be >= 1", cfg.APITimeoutSeconds)
	}
	if cfg.PageSize < 1 || cfg.PageSize > 100 {
		log.Fatalf("invalid page_size '%d': must be between 1 and 100", cfg.PageSize)
	}
	if cfg.RefreshIntervalMinutes < 1 {
		log.Fatalf("invalid refresh_interval_minutes '%d': must be >= 1", cfg.RefreshIntervalMinutes)
	}
	if cfg.StatusFilter != "" && !models.ValidStatus(cfg.StatusFilter) {
		log.Fatalf("invalid status_filter '%s'", cfg.StatusFilter)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		log.Fatalf("log_format must be 'console' or 'json', got '%s'", cfg.LogFormat)
	}

	return cfg
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}
