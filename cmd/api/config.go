package main

import (
	"log/slog"
	"time"
)

type apiConfig struct {
	Port            string        `env:"APP_PORT"`
	LogLevel        slog.Level    `env:"APP_LOG_LEVEL"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT"`
	PostgresDSN     string        `env:"PG_DSN"`
	TokenSecret     string        `env:"APP_TOKEN_SECRET"`
	TokenTTL        time.Duration `env:"APP_TOKEN_TTL"`
}
