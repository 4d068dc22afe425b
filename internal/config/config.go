// Package config resolves CLI settings from a .env file and CRUDGEN_*
// environment variables. Flags are applied on top by the command layer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDescriptor   = "CRUDGEN_CONFIG"
	EnvRoot         = "CRUDGEN_ROOT"
	EnvLocales      = "CRUDGEN_LOCALES"
	EnvBoilerplates = "CRUDGEN_BOILERPLATES"
	EnvVariant      = "CRUDGEN_VARIANT"
	EnvOpenAPI      = "CRUDGEN_OPENAPI"
	EnvStrict       = "CRUDGEN_STRICT"
	EnvDryRun       = "CRUDGEN_DRY_RUN"
	EnvLogLevel     = "CRUDGEN_LOG_LEVEL"
	EnvLogFormat    = "CRUDGEN_LOG_FORMAT"
	EnvHTTPTimeout  = "CRUDGEN_HTTP_TIMEOUT"
)

// Defaults.
const (
	DefaultDescriptor  = "crudgen.json"
	DefaultRoot        = "server"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultHTTPTimeout = 10 * time.Second
)

// DefaultLocales are generated when no locale is configured.
var DefaultLocales = []string{"en", "it"}

// Config holds resolved settings.
type Config struct {
	Descriptor   string
	Root         string
	Locales      []string
	Boilerplates string
	Variant      string
	OpenAPI      bool
	Strict       bool
	DryRun       bool
	LogLevel     string
	LogFormat    string
	HTTPTimeout  time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Descriptor:  DefaultDescriptor,
		Root:        DefaultRoot,
		Locales:     append([]string(nil), DefaultLocales...),
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		HTTPTimeout: DefaultHTTPTimeout,
	}
}

// Load reads the given .env files (".env" when none are named; missing files
// are ignored) and resolves the configuration from the environment. Variables
// already present in the process environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup resolves the configuration through lookup, which has the
// os.LookupEnv signature.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		value, ok := lookup(key)
		value = strings.TrimSpace(value)
		return value, ok && value != ""
	}

	if v, ok := get(EnvDescriptor); ok {
		cfg.Descriptor = v
	}
	if v, ok := get(EnvRoot); ok {
		cfg.Root = v
	}
	if v, ok := get(EnvLocales); ok {
		cfg.Locales = SplitList(v)
	}
	if v, ok := get(EnvBoilerplates); ok {
		cfg.Boilerplates = v
	}
	if v, ok := get(EnvVariant); ok {
		cfg.Variant = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := get(EnvLogFormat); ok {
		cfg.LogFormat = v
	}

	var errs []error
	for key, dest := range map[string]*bool{
		EnvOpenAPI: &cfg.OpenAPI,
		EnvStrict:  &cfg.Strict,
		EnvDryRun:  &cfg.DryRun,
	} {
		v, ok := get(key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", key, err))
			continue
		}
		*dest = parsed
	}
	if v, ok := get(EnvHTTPTimeout); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", EnvHTTPTimeout, err))
		} else {
			cfg.HTTPTimeout = parsed
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SplitList splits a comma separated list, dropping blanks and duplicates.
func SplitList(raw string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
