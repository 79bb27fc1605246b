package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

// Env holds the TALLY_* environment overrides.
type Env struct {
	ConfigPath string `env:"TALLY_CONFIG"`
	DataDir    string `env:"TALLY_DATA_DIR" envDefault:"."`
	LogLevel   string `env:"TALLY_LOG_LEVEL" envDefault:"warn"`
	Now        string `env:"TALLY_NOW"`
}

// LoadEnv reads dotenv files that exist, then parses the environment.
// Variables already set in the process win over dotenv values.
func LoadEnv(dotenv ...string) (Env, error) {
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parsing environment: %w", err)
	}
	return e, nil
}

// ParseNow parses a "now" override: RFC 3339, or a YYYY-MM-DD date taken
// as midnight in loc.
func ParseNow(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing now %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}
