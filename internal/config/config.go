// Package config loads CLI settings from defaults, an optional TOML file and
// PATTERNS_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// EnvConfigPath names the variable holding the TOML file path.
const EnvConfigPath = "PATTERNS_CONFIG"

type Config struct {
	Env            string `toml:"env" validate:"required"`
	LogLevel       string `toml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      string `toml:"log_format" validate:"oneof=text json"`
	Parallelism    int    `toml:"parallelism" validate:"gte=1,lte=64"`
	LoggerType     string `toml:"logger_type" validate:"oneof=file database db"`
	DatabaseDSN    string `toml:"database_dsn" validate:"required"`
	LogFileType    string `toml:"log_file_type" validate:"oneof=text xml json"`
	ResumeSeedFile string `toml:"resume_seed_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Env:         "local",
		LogLevel:    "info",
		LogFormat:   "text",
		Parallelism: 4,
		LoggerType:  "file",
		DatabaseDSN: ":memory:",
		LogFileType: "json",
	}
}

var validate = newValidator()

// newValidator reports fields by their TOML key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load builds a Config from the process environment. path overrides
// PATTERNS_CONFIG; when both are empty no file is read.
func Load(path string) (Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an injectable environment lookup.
func LoadWith(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path == "" {
		path, _ = lookup(EnvConfigPath)
	}
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
		}
	}

	e := env{lookup: lookup}
	e.str("PATTERNS_ENV", &cfg.Env)
	e.str("PATTERNS_LOG_LEVEL", &cfg.LogLevel)
	e.str("PATTERNS_LOG_FORMAT", &cfg.LogFormat)
	e.integer("PATTERNS_PARALLELISM", &cfg.Parallelism)
	e.str("PATTERNS_LOGGER_TYPE", &cfg.LoggerType)
	e.str("PATTERNS_DATABASE_DSN", &cfg.DatabaseDSN)
	e.str("PATTERNS_LOG_FILE_TYPE", &cfg.LogFileType)
	e.str("PATTERNS_RESUME_SEEDS", &cfg.ResumeSeedFile)
	if e.err != nil {
		return Config{}, e.err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LoggerType = strings.ToLower(cfg.LoggerType)
	cfg.LogFileType = strings.ToLower(cfg.LogFileType)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field by its TOML key.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Errorf("config: %s: must satisfy %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("config: %s is %s", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("config: %w", err)
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type env struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *env) str(k string, dst *string) {
	if v, ok := e.lookup(k); ok && v != "" {
		*dst = v
	}
}

func (e *env) integer(k string, dst *int) {
	v, ok := e.lookup(k)
	if !ok || v == "" || e.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.err = fmt.Errorf("config: %s must be an integer, got %q", k, v)
		return
	}
	*dst = n
}
