// Package config loads gedcheck configuration.
//
// Precedence, lowest first: built-in defaults from the embedded CUE schema,
// an optional CUE file, then GEDCHECK_* environment variables. Command-line
// flags are applied by the caller on top of the result.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"github.com/caarlos0/env/v11"

	"github.com/roach88/gedcheck/internal/rules"
)

//go:embed schema.cue
var schemaCUE string

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GEDCHECK_"

// Config is the resolved configuration.
type Config struct {
	Thresholds rules.Thresholds `json:"thresholds"`
	Timezone   string           `json:"timezone"`
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// envOverrides holds GEDCHECK_* variables. Nil fields are unset.
type envOverrides struct {
	MinMarriageAge     *int    `env:"MIN_MARRIAGE_AGE"`
	AdultAge           *int    `env:"ADULT_AGE"`
	RecentDeathDays    *int    `env:"RECENT_DEATH_DAYS"`
	RecentBirthDays    *int    `env:"RECENT_BIRTH_DAYS"`
	RecentMarriageDays *int    `env:"RECENT_MARRIAGE_DAYS"`
	Timezone           *string `env:"TIMEZONE"`
}

// Error reports an invalid configuration source.
type Error struct {
	Source  string
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

// Default returns the schema defaults.
func Default() Config {
	cfg, err := resolve(nil, "")
	if err != nil {
		// The embedded schema is fixed at build time.
		panic("config: embedded schema: " + err.Error())
	}
	return cfg
}

// Load resolves configuration from an optional CUE file (empty path skips
// it) and the process environment.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, nil)
}

// LoadWithEnv is Load with an explicit environment. A nil environ reads the
// process environment.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := resolve(data, path)
	if err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg, environ); err != nil {
		return Config{}, err
	}

	if err := cfg.Thresholds.Validate(); err != nil {
		return Config{}, &Error{Source: "environment", Message: err.Error()}
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, &Error{Source: "timezone", Message: err.Error()}
	}
	return cfg, nil
}

// resolve unifies the schema with an optional CUE document and decodes it.
func resolve(data []byte, filename string) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, formatCUEError("schema.cue", err)
	}
	v := schema.LookupPath(cue.ParsePath("#Config"))

	if data != nil {
		file := ctx.CompileBytes(data, cue.Filename(filename))
		if err := file.Err(); err != nil {
			return Config{}, formatCUEError(filename, err)
		}
		v = v.Unify(file)
	}

	if err := v.Validate(cue.Concrete(true)); err != nil {
		return Config{}, formatCUEError(filename, err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return Config{}, formatCUEError(filename, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, environ map[string]string) error {
	var o envOverrides
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return &Error{Source: "environment", Message: err.Error()}
	}

	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.Thresholds.MinMarriageAge, o.MinMarriageAge)
	set(&cfg.Thresholds.AdultAge, o.AdultAge)
	set(&cfg.Thresholds.RecentDeathDays, o.RecentDeathDays)
	set(&cfg.Thresholds.RecentBirthDays, o.RecentBirthDays)
	set(&cfg.Thresholds.RecentMarriageDays, o.RecentMarriageDays)
	if o.Timezone != nil {
		cfg.Timezone = *o.Timezone
	}
	return nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(source string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Source: source, Message: err.Error()}
	}

	first := errs[0]
	e := &Error{Source: source, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		e.Pos = positions[0]
	}
	return e
}
