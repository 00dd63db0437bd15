// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/mormao/randstr/internal/config"
)

// Create builds the Data Source Name for the configured engine.
func Create(dbCfg config.DB) string {
	switch dbCfg.Engine {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			dbCfg.User,
			dbCfg.Password,
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.Name,
			dbCfg.Extras,
		)
	case "postgres":
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			dbCfg.Host,
			dbCfg.Port,
			dbCfg.User,
			dbCfg.Password,
			dbCfg.Name,
		)

		return strings.TrimSpace(out + " " + dbCfg.Extras)
	default:
		if dbCfg.Extras == "" {
			return dbCfg.Path
		}

		return dbCfg.Path + "?" + dbCfg.Extras
	}
}
