package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIAddress    string
	StateDir      string
	EntryPath     string
	IdleThreshold time.Duration
	TickInterval  time.Duration
	TokenTTL      time.Duration
	LogLevel      string
}

func Parse() *Config {
	cfg := Config{
		// Defaults
		APIAddress:    "http://localhost:8000",
		EntryPath:     "/",
		IdleThreshold: 15 * time.Minute,
		TickInterval:  time.Second,
		TokenTTL:      24 * time.Hour,
		LogLevel:      "info",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.StateDir = filepath.Join(home, ".synvotra")
	} else {
		cfg.StateDir = ".synvotra"
	}

	// A .env in the working directory overrides defaults,
	// real environment variables win over both.
	_ = godotenv.Load()
	cfg.updateFromEnv()
	return &cfg
}

func (cfg *Config) updateFromEnv() {
	if addr, ok := os.LookupEnv("SYNVOTRA_API_ADDRESS"); ok {
		cfg.APIAddress = addr
	}
	if dir, ok := os.LookupEnv("SYNVOTRA_STATE_DIR"); ok {
		cfg.StateDir = dir
	}
	if p, ok := os.LookupEnv("SYNVOTRA_ENTRY_PATH"); ok {
		cfg.EntryPath = p
	}
	if d, ok := lookupDuration("SYNVOTRA_IDLE_THRESHOLD"); ok {
		cfg.IdleThreshold = d
	}
	if d, ok := lookupDuration("SYNVOTRA_TICK_INTERVAL"); ok {
		cfg.TickInterval = d
	}
	if d, ok := lookupDuration("SYNVOTRA_TOKEN_TTL"); ok {
		cfg.TokenTTL = d
	}
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = lvl
	}
}

func lookupDuration(name string) (time.Duration, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false
	}
	return d, true
}

// StorePath is the location of the session database inside the state dir.
func (cfg *Config) StorePath() string {
	return filepath.Join(cfg.StateDir, "synvotra.db")
}
