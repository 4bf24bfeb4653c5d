package testutils

import (
	"time"

	"userservice/internal/config"
)

func GetTestConfig() *config.Config {
	return &config.Config{
		Host:               "127.0.0.1",
		Port:               "8000",
		Environment:        config.Development,
		LogLevel:           "debug",
		CORSAllowedOrigins: []string{"*"},
		ReadHeaderTimeout:  5 * time.Second,
		WriteTimeout:       5 * time.Second,
		IdleTimeout:        5 * time.Second,
		ShutdownTimeout:    2 * time.Second,
	}
}
