package config

import (
	"os"
	"time"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	HTTPAddr    string
	OpsAddr     string
	Location    *time.Location
	LogLevel    string
	Env         string // dev|prod
	SentryDSN   string
	Release     string
}

func Load() (*Config, error) {
	tz := getenv("TZ", "America/Indiana/Indianapolis")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	cfg := &Config{
		DatabaseURL: mustEnv("DATABASE_URL"),
		JWTSecret:   mustEnv("JWT_SECRET"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		OpsAddr:     getenv("OPS_ADDR", ":9090"),
		Location:    loc,
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Env:         getenv("ENV", "dev"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
		Release:     getenv("RELEASE", "dev"),
	}
	return cfg, nil
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("required env " + k + " is empty")
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
