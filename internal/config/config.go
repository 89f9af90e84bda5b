// Package config loads docsync client settings.
//
// Sources are applied in order: defaults, YAML file, DOCSYNC_* environment
// variables, command-line flags. Later sources take precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// ErrInvalidConfig возвращается при недопустимых значениях настроек
var ErrInvalidConfig = errors.New("invalid config")

// Допустимые значения переключателей
const (
	StoreBolt   = "bolt"
	StoreSQLite = "sqlite"

	TransportSocket = "socket"
	TransportHTTP   = "http"

	QueueLocal = "local"
	QueueSQS   = "sqs"
)

// SQSConfig настройки управляемой очереди.
type SQSConfig struct {
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// LogConfig настройки логирования. Пустой File означает вывод в stdout.
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Config holds runtime settings of the docsync client.
type Config struct {
	SQS             SQSConfig     `yaml:"sqs"`
	Log             LogConfig     `yaml:"log"`
	DataPath        string        `yaml:"data_path"`
	StoreDriver     string        `yaml:"store_driver"`
	Transport       string        `yaml:"transport"`
	ServerURL       string        `yaml:"server_url"`
	ClientID        string        `yaml:"client_id"`
	ClientSecret    string        `yaml:"client_secret"`
	Owner           string        `yaml:"owner"`
	QueueDriver     string        `yaml:"queue_driver"`
	QueueURL        string        `yaml:"queue_url"`
	SyncConcurrency int           `yaml:"sync_concurrency"`
	MaxAttempts     int           `yaml:"max_attempts"`
	ChunkSize       int           `yaml:"chunk_size"`
	BaseBackoff     time.Duration `yaml:"base_backoff"`
	MaxBackoff      time.Duration `yaml:"max_backoff"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DataPath = "docsync.db"
	c.StoreDriver = StoreBolt
	c.Transport = TransportHTTP
	c.ServerURL = "http://localhost:8080"
	c.QueueDriver = QueueLocal
	c.QueueURL = "local://notifications"
	c.SyncConcurrency = 4
	c.MaxAttempts = 5
	c.ChunkSize = 1 << 20
	c.BaseBackoff = 500 * time.Millisecond
	c.MaxBackoff = 30 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.SQS.Region = "us-east-1"
	c.Log = LogConfig{
		Level:      "info",
		Format:     "text",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// Load собирает конфигурацию из всех источников.
// args - аргументы командной строки без имени программы.
// Возвращает также позиционные аргументы, оставшиеся после флагов.
func Load(args []string, env func(string) string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs, overrides := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	path := overrides.configPath
	if path == "" {
		path = env(envPrefix + "CONFIG")
	}
	if path != "" {
		if err := parseYAML(cfg, path); err != nil {
			return nil, nil, err
		}
	}

	if err := parseEnv(cfg, env); err != nil {
		return nil, nil, err
	}

	overrides.apply(fs, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate checks switches and numeric bounds.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreBolt, StoreSQLite:
	default:
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalidConfig, c.StoreDriver)
	}
	switch c.Transport {
	case TransportSocket, TransportHTTP:
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidConfig, c.Transport)
	}
	switch c.QueueDriver {
	case QueueLocal, QueueSQS:
	default:
		return fmt.Errorf("%w: unknown queue driver %q", ErrInvalidConfig, c.QueueDriver)
	}
	if c.SyncConcurrency < 1 {
		return fmt.Errorf("%w: sync concurrency must be positive", ErrInvalidConfig)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be positive", ErrInvalidConfig)
	}
	if c.BaseBackoff <= 0 || c.MaxBackoff < c.BaseBackoff {
		return fmt.Errorf("%w: backoff must satisfy 0 < base <= max", ErrInvalidConfig)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size must be positive", ErrInvalidConfig)
	}
	return nil
}

// SQLitePath returns the sqlite file path next to the bolt database.
func (c *Config) SQLitePath() string {
	ext := filepath.Ext(c.DataPath)
	return c.DataPath[:len(c.DataPath)-len(ext)] + ".sqlite"
}
