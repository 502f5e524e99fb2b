package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	AppName            string
	AppBaseURL         string
	MailAPIAddress     string
	MailAPIKey         string
	MailFromEmail      string
	MailFromName       string
	SessionSecret      string
	SessionTTL         time.Duration
	ShutdownTimeout    time.Duration
	RedeliveryInterval time.Duration
	RedeliveryBatch    int
	RedeliveryWorkers  int
}

const (
	defaultRunAddress        = ":8080"
	defaultAppName           = "Order Desk"
	defaultAppBaseURL        = "http://localhost:8080"
	defaultMailAPIAddress    = "https://api.sendgrid.com"
	defaultMailFromEmail     = "no-reply@orderdesk.local"
	defaultSessionSecret     = "change-me-in-production"
	defaultSessionTTL        = time.Hour
	defaultShutdownTimeout   = 10 * time.Second
	defaultRedeliveryBatch   = 16
	defaultRedeliveryWorkers = 2
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		AppName:            getString(lookup, "APP_NAME", defaultAppName),
		AppBaseURL:         getString(lookup, "APP_BASE_URL", defaultAppBaseURL),
		MailAPIAddress:     getString(lookup, "MAIL_API_ADDRESS", defaultMailAPIAddress),
		MailAPIKey:         getString(lookup, "MAIL_API_KEY", ""),
		MailFromEmail:      getString(lookup, "MAIL_FROM_EMAIL", defaultMailFromEmail),
		MailFromName:       getString(lookup, "MAIL_FROM_NAME", defaultAppName),
		SessionSecret:      getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:         getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		RedeliveryInterval: getDuration(lookup, "MAIL_REDELIVERY_INTERVAL", 0),
		RedeliveryBatch:    getInt(lookup, "MAIL_REDELIVERY_BATCH", defaultRedeliveryBatch),
		RedeliveryWorkers:  getInt(lookup, "MAIL_REDELIVERY_WORKERS", defaultRedeliveryWorkers),
	}

	fs := flag.NewFlagSet("backoffice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		redeliveryStr      = cfg.RedeliveryInterval.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Application name used in notifications")
	fs.StringVar(&cfg.AppBaseURL, "base-url", cfg.AppBaseURL, "Public base URL for flashcode scan links")
	fs.StringVar(&cfg.MailAPIAddress, "mail-addr", cfg.MailAPIAddress, "Mail API base URL")
	fs.StringVar(&cfg.MailAPIKey, "mail-key", cfg.MailAPIKey, "Mail API key")
	fs.StringVar(&cfg.MailFromEmail, "mail-from", cfg.MailFromEmail, "Sender email address")
	fs.StringVar(&cfg.MailFromName, "mail-from-name", cfg.MailFromName, "Sender display name")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session and CSRF tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Staff session lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&redeliveryStr, "redelivery-interval", redeliveryStr, "Interval between failed notification redelivery sweeps (0 disables)")
	fs.IntVar(&cfg.RedeliveryBatch, "redelivery-batch", cfg.RedeliveryBatch, "Maximum notifications per redelivery sweep")
	fs.IntVar(&cfg.RedeliveryWorkers, "redelivery-workers", cfg.RedeliveryWorkers, "Number of concurrent redelivery workers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RedeliveryInterval, err = time.ParseDuration(redeliveryStr); err != nil {
		return nil, fmt.Errorf("invalid redelivery interval: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.RedeliveryInterval < 0 {
		cfg.RedeliveryInterval = 0
	}

	if cfg.RedeliveryBatch <= 0 {
		cfg.RedeliveryBatch = defaultRedeliveryBatch
	}

	if cfg.RedeliveryWorkers <= 0 {
		cfg.RedeliveryWorkers = defaultRedeliveryWorkers
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
