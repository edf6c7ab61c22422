package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	SessionSecret   string
	SessionTTL      time.Duration
	RememberTTL     time.Duration
	ArtifactDir     string
	LogLevel        string
	LoginRateLimit  float64
	LoginRateBurst  int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultSessionSecret   = "change-me-in-production"
	defaultSessionTTL      = 24 * time.Hour
	defaultRememberTTL     = 365 * 24 * time.Hour
	defaultArtifactDir     = "."
	defaultLogLevel        = "info"
	defaultLoginRateLimit  = 1.0
	defaultLoginRateBurst  = 5
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		SessionSecret:   getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:      getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		RememberTTL:     getDuration(lookup, "REMEMBER_TTL", defaultRememberTTL),
		ArtifactDir:     getString(lookup, "ARTIFACT_DIR", defaultArtifactDir),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
		LoginRateLimit:  getFloat(lookup, "LOGIN_RATE_LIMIT", defaultLoginRateLimit),
		LoginRateBurst:  getInt(lookup, "LOGIN_RATE_BURST", defaultLoginRateBurst),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("creditscore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		rememberTTLStr     = cfg.RememberTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Lifetime of a regular session")
	fs.StringVar(&rememberTTLStr, "remember-ttl", rememberTTLStr, "Lifetime of a remembered session")
	fs.StringVar(&cfg.ArtifactDir, "artifacts", cfg.ArtifactDir, "Directory holding model artifacts")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.Float64Var(&cfg.LoginRateLimit, "login-rps", cfg.LoginRateLimit, "Login attempts per second per client")
	fs.IntVar(&cfg.LoginRateBurst, "login-burst", cfg.LoginRateBurst, "Login attempts burst per client")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.RememberTTL, err = time.ParseDuration(rememberTTLStr); err != nil {
		return nil, fmt.Errorf("invalid remember ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.RememberTTL <= 0 {
		cfg.RememberTTL = defaultRememberTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.LoginRateLimit <= 0 {
		cfg.LoginRateLimit = defaultLoginRateLimit
	}

	if cfg.LoginRateBurst <= 0 {
		cfg.LoginRateBurst = defaultLoginRateBurst
	}

	if cfg.ArtifactDir == "" {
		cfg.ArtifactDir = defaultArtifactDir
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

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
