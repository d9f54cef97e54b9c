package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Env         string
	APIURL      string
	SessionDSN  string        // sqlite path, postgres:// URL or memory:
	HTTPTimeout time.Duration // zero means no client-side timeout
	PageSize    int           // tasks per page in list views
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "agridash", "session.db")
}

func Load() Config {
	cfg := Config{
		Env:        env("AGRIDASH_ENV", "dev"),
		APIURL:     env("AGRIDASH_API_URL", "https://sasyak-backend.onrender.com"),
		SessionDSN: env("AGRIDASH_SESSION_DSN", defaultSessionPath()),
		PageSize:   5,
	}
	if d, err := time.ParseDuration(env("AGRIDASH_HTTP_TIMEOUT", "")); err == nil && d > 0 {
		cfg.HTTPTimeout = d
	}
	if n, err := strconv.Atoi(env("AGRIDASH_PAGE_SIZE", "")); err == nil && n > 0 {
		cfg.PageSize = n
	}
	return cfg
}
