package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Model  ModelConfig
	CORS   CORSConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type ModelConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level  string
	Format string
	File   LogFileConfig
}

// LogFileConfig controls the rotating log file. An empty Path disables it.
type LogFileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load reads configuration from the environment, optionally layered over a
// config.yaml found in the working directory.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("MODEL_PATH", "models/mlp_model_final.json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "app.log")
	v.SetDefault("LOGGER_FILE_MAX_SIZE_MB", 10)
	v.SetDefault("LOGGER_FILE_MAX_BACKUPS", 3)
	v.SetDefault("LOGGER_FILE_MAX_AGE_DAYS", 28)

	// File
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Env
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	port := v.GetInt("SERVER_PORT")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT %q", v.GetString("SERVER_PORT"))
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parse SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	modelPath := strings.TrimSpace(v.GetString("MODEL_PATH"))
	if modelPath == "" {
		return nil, errors.New("MODEL_PATH is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
		},
		Model: ModelConfig{
			Path: modelPath,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
			File: LogFileConfig{
				Path:       v.GetString("LOGGER_FILE"),
				MaxSizeMB:  v.GetInt("LOGGER_FILE_MAX_SIZE_MB"),
				MaxBackups: v.GetInt("LOGGER_FILE_MAX_BACKUPS"),
				MaxAgeDays: v.GetInt("LOGGER_FILE_MAX_AGE_DAYS"),
			},
		},
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
