package config

import (
	"flag"
	"io"
	"time"
)

// flagOverrides хранит значения флагов до применения: флаги разбираются первыми
// (нужен путь к файлу), но применяются последними.
type flagOverrides struct {
	configPath  string
	dataPath    string
	storeDriver string
	transport   string
	serverURL   string
	owner       string
	queueDriver string
	logLevel    string
	logFile     string
	concurrency int
	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration
}

// newFlagSet регистрирует флаги:
//
//	-config string       path to YAML config
//	-db string           local database path
//	-store string        bolt|sqlite
//	-transport string    socket|http
//	-server string       server URL
//	-owner string        local owner (username)
//	-queue string        local|sqs
//	-concurrency int     sync concurrency
//	-max-attempts int    retry budget per task
//	-base-backoff, -max-backoff duration
//	-log-level, -log-file string
func newFlagSet(cfg *Config) (*flag.FlagSet, *flagOverrides) {
	o := &flagOverrides{}
	fs := flag.NewFlagSet("docsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&o.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&o.dataPath, "db", cfg.DataPath, "path to local database file")
	fs.StringVar(&o.storeDriver, "store", cfg.StoreDriver, "document store driver (bolt|sqlite)")
	fs.StringVar(&o.transport, "transport", cfg.Transport, "transport (socket|http)")
	fs.StringVar(&o.serverURL, "server", cfg.ServerURL, "server URL")
	fs.StringVar(&o.owner, "owner", cfg.Owner, "local owner")
	fs.StringVar(&o.queueDriver, "queue", cfg.QueueDriver, "notification queue driver (local|sqs)")
	fs.StringVar(&o.logLevel, "log-level", cfg.Log.Level, "log level (debug|info|warn|error)")
	fs.StringVar(&o.logFile, "log-file", cfg.Log.File, "log file (stdout when empty)")
	fs.IntVar(&o.concurrency, "concurrency", cfg.SyncConcurrency, "sync concurrency")
	fs.IntVar(&o.maxAttempts, "max-attempts", cfg.MaxAttempts, "sync retry budget")
	fs.DurationVar(&o.baseBackoff, "base-backoff", cfg.BaseBackoff, "initial retry backoff")
	fs.DurationVar(&o.maxBackoff, "max-backoff", cfg.MaxBackoff, "maximum retry backoff")

	return fs, o
}

// apply переносит в cfg только явно заданные флаги
func (o *flagOverrides) apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			cfg.DataPath = o.dataPath
		case "store":
			cfg.StoreDriver = o.storeDriver
		case "transport":
			cfg.Transport = o.transport
		case "server":
			cfg.ServerURL = o.serverURL
		case "owner":
			cfg.Owner = o.owner
		case "queue":
			cfg.QueueDriver = o.queueDriver
		case "log-level":
			cfg.Log.Level = o.logLevel
		case "log-file":
			cfg.Log.File = o.logFile
		case "concurrency":
			cfg.SyncConcurrency = o.concurrency
		case "max-attempts":
			cfg.MaxAttempts = o.maxAttempts
		case "base-backoff":
			cfg.BaseBackoff = o.baseBackoff
		case "max-backoff":
			cfg.MaxBackoff = o.maxBackoff
		}
	})
}
