package config

import (
	"fmt"
	"strconv"
	"time"
)

const envPrefix = "DOCSYNC_"

// parseEnv накладывает переменные окружения DOCSYNC_*.
func parseEnv(cfg *Config, env func(string) string) error {
	strs := map[string]*string{
		"DATA_PATH":             &cfg.DataPath,
		"STORE_DRIVER":          &cfg.StoreDriver,
		"TRANSPORT":             &cfg.Transport,
		"SERVER_URL":            &cfg.ServerURL,
		"CLIENT_ID":             &cfg.ClientID,
		"CLIENT_SECRET":         &cfg.ClientSecret,
		"OWNER":                 &cfg.Owner,
		"QUEUE_DRIVER":          &cfg.QueueDriver,
		"QUEUE_URL":             &cfg.QueueURL,
		"SQS_REGION":            &cfg.SQS.Region,
		"SQS_ENDPOINT":          &cfg.SQS.Endpoint,
		"SQS_ACCESS_KEY_ID":     &cfg.SQS.AccessKeyID,
		"SQS_SECRET_ACCESS_KEY": &cfg.SQS.SecretAccessKey,
		"LOG_LEVEL":             &cfg.Log.Level,
		"LOG_FORMAT":            &cfg.Log.Format,
		"LOG_FILE":              &cfg.Log.File,
	}
	for name, dst := range strs {
		if v := env(envPrefix + name); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"SYNC_CONCURRENCY": &cfg.SyncConcurrency,
		"MAX_ATTEMPTS":     &cfg.MaxAttempts,
		"CHUNK_SIZE":       &cfg.ChunkSize,
	}
	for name, dst := range ints {
		v := env(envPrefix + name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrInvalidConfig, envPrefix, name, err)
		}
		*dst = n
	}

	durations := map[string]*time.Duration{
		"BASE_BACKOFF":    &cfg.BaseBackoff,
		"MAX_BACKOFF":     &cfg.MaxBackoff,
		"REQUEST_TIMEOUT": &cfg.RequestTimeout,
	}
	for name, dst := range durations {
		v := env(envPrefix + name)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s: %w", ErrInvalidConfig, envPrefix, name, err)
		}
		*dst = d
	}
	return nil
}
