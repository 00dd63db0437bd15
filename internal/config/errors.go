package config

import (
	"errors"
)

var (
	// ErrInvalidConfig wraps struct validation failures.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrDBHostEmpty error if a network database engine is configured without a host.
	ErrDBHostEmpty = errors.New("toml config db.host can not be empty for mysql and postgres")

	// ErrDBPathEmpty error if the sqlite engine is configured without a file path.
	ErrDBPathEmpty = errors.New("toml config db.path can not be empty for sqlite")
)
