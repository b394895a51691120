package main

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// config is everything main reads from the environment (after .env is loaded).
type config struct {
	Port        string
	LogLevel    string
	Origin      string
	Production  bool
	TokenSecret string
	TokenTTL    time.Duration
	CatalogFile string
	CatalogDB   string
	Attempts    int
	DailySalt   string
	SessionTTL  time.Duration
}

func loadConfig() config {
	c := config{
		Port:        getEnv("PORT", "5175"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Origin:      getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:  os.Getenv("APP_ENV") == "production",
		TokenSecret: getEnv("TOKEN_SECRET", "dev_secret_change_me"),
		TokenTTL:    time.Duration(envInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		CatalogFile: os.Getenv("CATALOG_FILE"),
		CatalogDB:   os.Getenv("CATALOG_DB"),
		Attempts:    envInt("PLACEMENT_ATTEMPTS", 100),
		DailySalt:   getEnv("DAILY_SALT", "local_dev_salt"),
		SessionTTL:  time.Duration(envInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
	}
	if c.Production && c.TokenSecret == "dev_secret_change_me" {
		log.Warn().Msg("TOKEN_SECRET is unset in production")
	}
	return c
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, falling back to def when unset or malformed.
func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric env var")
		return def
	}
	return n
}
