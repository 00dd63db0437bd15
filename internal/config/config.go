// Package config handles input from etc/main.toml and the RANDSTR_CONFIG_JSON environment variable.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/mormao/randstr/internal/logger"
)

// EnvConfigJSON names the environment variable whose JSON overrides the file config.
const EnvConfigJSON = "RANDSTR_CONFIG_JSON"

// FileName is the config file read from the config directory.
const FileName = "main.toml"

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: logger.Log{
			LogLevel:    "warn",
			AppName:     "randstr",
			ServiceName: "randstr",
			Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
		},
		Generator: Generator{
			Length:      16, //nolint:mnd
			Count:       1,
			MaxAttempts: 10, //nolint:mnd
		},
		DB: DB{
			Engine: "sqlite",
			Path:   "randstr.db",
		},
	}
}

// ReadConfig reads dir/main.toml over the defaults and applies the environment override.
// An empty dir skips the file.
func ReadConfig(dir string) (Config, error) {
	var (
		c             = Default()
		JSONConfigEnv string
		err           error
	)

	if dir != "" {
		if _, err = toml.DecodeFile(filepath.Join(dir, FileName), &c); err != nil {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	}

	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, Validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Validate checks field constraints and the database settings the ledger needs.
// The database is only checked when unique generation is enabled.
func Validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if err := validator.New().Struct(c.Generator); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	if !c.Generator.Unique {
		return nil
	}

	if err := validator.New().Struct(c.DB); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	switch c.DB.Engine {
	case "sqlite":
		if c.DB.Path == "" {
			return errors.Wrap(ErrDBPathEmpty, invalidErrMessage)
		}
	default:
		if c.DB.Host == "" {
			return errors.Wrap(ErrDBHostEmpty, invalidErrMessage)
		}
	}

	return nil
}
