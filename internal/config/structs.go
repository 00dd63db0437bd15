package config

import (
	"github.com/mormao/randstr/alphabet"
	"github.com/mormao/randstr/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool                `toml:"devMode"   json:"devMode"` // enable dev mode for development
	Log       logger.Log          `toml:"log"       json:"log"`
	Alphabet  alphabet.Categories `toml:"alphabet"  json:"alphabet"` // all categories when none is set
	Generator Generator           `toml:"generator" json:"generator"`
	DB        DB                  `toml:"db"        json:"db"`
}

// Generator holds the string generation settings.
type Generator struct {
	Length      int    `toml:"length"      json:"length"      validate:"gte=0"`
	Count       int    `toml:"count"       json:"count"       validate:"gte=1"`
	Seeded      bool   `toml:"seeded"      json:"seeded"`                     // use Seed instead of crypto/rand
	Seed        uint64 `toml:"seed"        json:"seed"`                       // only read if Seeded is set
	Unique      bool   `toml:"unique"      json:"unique"`                     // record every string in the ledger
	MaxAttempts int    `toml:"maxAttempts" json:"maxAttempts" validate:"gte=1"` // per unique string
}

// DB holds the ledger database settings.
type DB struct {
	Engine   string `toml:"engine"   json:"engine"   validate:"oneof=sqlite mysql postgres"`
	Path     string `toml:"path"     json:"path"` // sqlite only
	Extras   string `toml:"extras"   json:"extras"`
	Host     string `toml:"host"     json:"host"`
	Port     int    `toml:"port"     json:"port"     validate:"gte=0,lte=65535"`
	User     string `toml:"user"     json:"user"`
	Password string `toml:"password" json:"password"`
	Name     string `toml:"name"     json:"name"`
}
