package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Export  ExportConfig  `yaml:"export"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// SourceConfig holds the gist API settings
type SourceConfig struct {
	BaseURL        string `yaml:"base_url"`
	GistID         string `yaml:"gist_id"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the HTTP client timeout for gist requests
func (c SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ExportConfig holds report export settings
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir"`
	Formats   []string `yaml:"formats"`
}

// StorageConfig holds the optional S3 upload target for exports
type StorageConfig struct {
	S3Bucket   string `yaml:"s3_bucket"`
	S3Region   string `yaml:"s3_region"`
	S3Prefix   string `yaml:"s3_prefix"`
	AWSProfile string `yaml:"aws_profile"`
}

// S3Enabled reports whether exports should also be uploaded to S3
func (c StorageConfig) S3Enabled() bool {
	return c.S3Bucket != ""
}

// ServerConfig holds the local HTTP surface settings
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Addr returns host:port for the listener
func (c ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file and applies defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Source.BaseURL == "" {
		cfg.Source.BaseURL = "https://api.github.com"
	}
	cfg.Source.BaseURL = strings.TrimRight(cfg.Source.BaseURL, "/")
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = 30
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = "."
	}
	if len(cfg.Export.Formats) == 0 {
		cfg.Export.Formats = []string{"csv", "xlsx"}
	}
	if cfg.Storage.S3Region == "" {
		cfg.Storage.S3Region = "us-west-2"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars.
// A missing config file is not an error: defaults apply.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("GIST_BASE_URL"); v != "" {
		cfg.Source.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("GIST_ID"); v != "" {
		cfg.Source.GistID = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.Source.Token = v
	}
	if v := os.Getenv("DASHBOARD_OUTPUT_DIR"); v != "" {
		cfg.Export.OutputDir = v
	}
	if v := os.Getenv("DASHBOARD_S3_BUCKET"); v != "" {
		cfg.Storage.S3Bucket = v
	}
	if v := os.Getenv("DASHBOARD_S3_REGION"); v != "" {
		cfg.Storage.S3Region = v
	}
	if v := os.Getenv("AWS_PROFILE"); v != "" {
		cfg.Storage.AWSProfile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}

	return cfg, nil
}
