package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "CELLINFO_"

const (
	BackendModemManager = "modemmanager"
	BackendAndroid      = "android"
)

type ChatId []string

func (c *ChatId) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func (c *ChatId) String() string {
	return strings.Join(*c, ",")
}

// UnmarshalText parses a comma separated list of chat ids.
func (c *ChatId) UnmarshalText(text []byte) error {
	*c = (*c)[:0]
	for _, id := range strings.Split(string(text), ",") {
		if id = strings.TrimSpace(id); id != "" {
			*c = append(*c, id)
		}
	}
	return nil
}

func (c *ChatId) ToInt64() []int64 {
	var ids []int64
	for _, id := range *c {
		id, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

type Config struct {
	BotToken  string `env:"BOT_TOKEN"`
	AdminId   ChatId `env:"ADMIN_ID"`
	Backend   string `env:"BACKEND" envDefault:"modemmanager"`
	Providers string `env:"PROVIDERS"`
	LogFile   string `env:"LOG_FILE"`
	Verbose   bool   `env:"VERBOSE"`
	Dump      bool   `env:"-"`
}

var C = new(Config)

var (
	ErrBotTokenRequired = errors.New("bot token is required")
	ErrAdminIdRequired  = errors.New("admin id is required")
	ErrUnknownBackend   = errors.New("unknown backend")
)

// Load fills c from an optional .env file and CELLINFO_ prefixed
// environment variables. Variables already set in the environment are not
// overridden by the file.
func (c *Config) Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	if err := env.ParseWithOptions(c, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

func (c *Config) IsValid() error {
	if c.Backend != BackendModemManager && c.Backend != BackendAndroid {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Dump {
		return nil
	}
	if c.BotToken == "" {
		return ErrBotTokenRequired
	}
	if len(c.AdminId) == 0 {
		return ErrAdminIdRequired
	}
	return nil
}
