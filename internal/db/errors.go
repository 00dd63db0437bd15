package db

import (
	"errors"
)

// ErrUnknownEngine is returned for an engine other than sqlite, mysql or postgres.
var ErrUnknownEngine = errors.New("unknown database engine")
