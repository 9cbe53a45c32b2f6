// Package config loads the function's settings from the environment.
//
// Variables carry the BOOKSHELF_ prefix; a .env file in the working
// directory is loaded first when present:
//
//	BOOKSHELF_TABLE_NAME           DynamoDB table (default "book")
//	BOOKSHELF_REGION               AWS region (default: AWS_REGION, then us-east-2)
//	BOOKSHELF_ENDPOINT             DynamoDB endpoint override, e.g. DynamoDB Local
//	BOOKSHELF_LOG_LEVEL            debug, info, warn or error (default "info")
//	BOOKSHELF_FAIL_ON_STORE_ERROR  return 502 when a write fails (default false)
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Prefix is the environment variable prefix read by Load.
const Prefix = "BOOKSHELF_"

// Config is the function configuration, established once per execution environment.
type Config struct {
	TableName        string `koanf:"table_name" validate:"required"`
	Region           string `koanf:"region"`
	Endpoint         string `koanf:"endpoint" validate:"omitempty,url"`
	LogLevel         string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
	FailOnStoreError bool   `koanf:"fail_on_store_error"`
}

// Load reads BOOKSHELF_* variables, fills defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(Prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, Prefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// setDefaults fills unset optional values.
func (c *Config) setDefaults() {
	if c.TableName == "" {
		c.TableName = "book"
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
