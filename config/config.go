// Package config loads server and cipher settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"vigenere-backend/crypto"
)

// DefaultKey is the passphrase used when a request does not supply one.
const DefaultKey = "°¡! RüST íS CóÓL ¡!°"

// Config is the root of the configuration file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cipher CipherConfig `yaml:"cipher"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP front-end.
type ServerConfig struct {
	Port            string        `yaml:"port"`
	AllowOrigins    []string      `yaml:"allow_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CipherConfig configures request handling around the cipher engine.
type CipherConfig struct {
	DefaultKey    string `yaml:"default_key"`
	MaxTextLength int    `yaml:"max_text_length"` // in symbols
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			AllowOrigins:    []string{"http://localhost:3000"},
			ShutdownTimeout: 5 * time.Second,
		},
		Cipher: CipherConfig{
			DefaultKey:    DefaultKey,
			MaxTextLength: 1 << 20,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, applies PORT and LOG_LEVEL from the
// environment and validates the result. An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Cipher.MaxTextLength <= 0 {
		return fmt.Errorf("cipher.max_text_length must be positive, got %d", c.Cipher.MaxTextLength)
	}
	if c.Cipher.DefaultKey != "" {
		if err := crypto.ValidateKey(c.Cipher.DefaultKey, crypto.NewAlphabet()); err != nil {
			return fmt.Errorf("cipher.default_key: %w", err)
		}
	}
	return nil
}
