// SPDX-License-Identifier: MIT

// Package config loads and persists the user's solver settings.
//
// Sources, lowest precedence first: built-in defaults, the YAML config file
// (LINSOLVE_CONFIG or <user config dir>/linsolve/config.yaml), LINSOLVE_*
// environment variables. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linsolve/internal/i18n"
	"github.com/katalvlaran/linsolve/solver"
)

// EnvConfigPath names the variable that overrides the config file location.
const EnvConfigPath = "LINSOLVE_CONFIG"

const envPrefix = "LINSOLVE"

// Rounding bounds for display.rounding.
const (
	MinRounding     = 0
	MaxRounding     = 10
	DefaultRounding = 3
)

// ErrInvalidSetting reports a setting outside its allowed values.
var ErrInvalidSetting = errors.New("config: invalid setting")

// Settings holds every user-tunable option.
type Settings struct {
	Solver  SolverSettings  `mapstructure:"solver"`
	Display DisplaySettings `mapstructure:"display"`
	History HistorySettings `mapstructure:"history"`
}

// SolverSettings selects the solution path and its tolerance.
type SolverSettings struct {
	Method    string  `mapstructure:"method"`
	Tolerance float64 `mapstructure:"tolerance"`
}

// DisplaySettings controls how results are shown.
type DisplaySettings struct {
	Rounding int    `mapstructure:"rounding"`
	Language string `mapstructure:"language"`
}

// HistorySettings controls the solution history store.
type HistorySettings struct {
	Path    string `mapstructure:"path"`
	Enabled bool   `mapstructure:"enabled"`
}

// Setting keys accepted by Set.
const (
	KeyMethod    = "solver.method"
	KeyTolerance = "solver.tolerance"
	KeyRounding  = "display.rounding"
	KeyLanguage  = "display.language"
	KeyHistPath  = "history.path"
	KeyHistOn    = "history.enabled"
)

// Keys lists every setting key in display order.
func Keys() []string {
	return []string{KeyMethod, KeyTolerance, KeyRounding, KeyLanguage, KeyHistPath, KeyHistOn}
}

// Dir returns the linsolve directory under the user config dir.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}

	return filepath.Join(base, "linsolve")
}

// Path returns the config file location.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}

	return filepath.Join(Dir(), "config.yaml")
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Solver:  SolverSettings{Method: solver.MethodGauss.String(), Tolerance: solver.DefaultTolerance},
		Display: DisplaySettings{Rounding: DefaultRounding, Language: i18n.DefaultLanguage},
		History: HistorySettings{Path: filepath.Join(Dir(), "history.db"), Enabled: true},
	}
}

// Load reads the settings from path (Path() when empty) and the environment.
// A missing file is not an error. The result is validated.
func Load(path string) (Settings, error) {
	if path == "" {
		path = Path()
	}
	v := newViper(Defaults())
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, err := os.Stat(path); err == nil {
		if err = v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Save writes s to path (Path() when empty) as YAML, creating the directory.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := newViper(s)
	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// newViper returns a viper instance seeded with s as defaults.
func newViper(s Settings) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMethod, s.Solver.Method)
	v.SetDefault(KeyTolerance, s.Solver.Tolerance)
	v.SetDefault(KeyRounding, s.Display.Rounding)
	v.SetDefault(KeyLanguage, s.Display.Language)
	v.SetDefault(KeyHistPath, s.History.Path)
	v.SetDefault(KeyHistOn, s.History.Enabled)

	return v
}

// Method returns the configured solver.Method. Call after Validate.
func (s Settings) Method() solver.Method {
	m, err := solver.ParseMethod(s.Solver.Method)
	if err != nil {
		return solver.MethodGauss
	}

	return m
}

// Validate checks every field and suggests the closest valid name for typos.
func (s Settings) Validate() error {
	if _, err := solver.ParseMethod(s.Solver.Method); err != nil {
		return invalid(KeyMethod, s.Solver.Method, methodNames())
	}
	if s.Solver.Tolerance < 0 || math.IsNaN(s.Solver.Tolerance) || math.IsInf(s.Solver.Tolerance, 0) {
		return fmt.Errorf("%s=%g must be a finite non-negative number: %w", KeyTolerance, s.Solver.Tolerance, ErrInvalidSetting)
	}
	if s.Display.Rounding < MinRounding || s.Display.Rounding > MaxRounding {
		return fmt.Errorf("%s=%d must be within [%d,%d]: %w",
			KeyRounding, s.Display.Rounding, MinRounding, MaxRounding, ErrInvalidSetting)
	}
	if !i18n.Supported(s.Display.Language) {
		return invalid(KeyLanguage, s.Display.Language, i18n.Languages())
	}
	if s.History.Enabled && strings.TrimSpace(s.History.Path) == "" {
		return fmt.Errorf("%s must be set while history is enabled: %w", KeyHistPath, ErrInvalidSetting)
	}

	return nil
}

// Set assigns a single key from its textual form, as typed on the command line.
// s is left unchanged when the value is rejected.
func (s *Settings) Set(key, value string) error {
	next := *s
	value = strings.TrimSpace(value)

	switch strings.ToLower(strings.TrimSpace(key)) {
	case KeyMethod:
		next.Solver.Method = strings.ToLower(value)
	case KeyTolerance:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", KeyTolerance, value, ErrInvalidSetting)
		}
		next.Solver.Tolerance = f
	case KeyRounding:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", KeyRounding, value, ErrInvalidSetting)
		}
		next.Display.Rounding = n
	case KeyLanguage:
		next.Display.Language = strings.ToLower(value)
	case KeyHistPath:
		next.History.Path = value
	case KeyHistOn:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", KeyHistOn, value, ErrInvalidSetting)
		}
		next.History.Enabled = b
	default:
		return invalid("key", key, Keys())
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*s = next

	return nil
}

// Get returns the textual value of key.
func (s Settings) Get(key string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case KeyMethod:
		return s.Solver.Method, nil
	case KeyTolerance:
		return strconv.FormatFloat(s.Solver.Tolerance, 'g', -1, 64), nil
	case KeyRounding:
		return strconv.Itoa(s.Display.Rounding), nil
	case KeyLanguage:
		return s.Display.Language, nil
	case KeyHistPath:
		return s.History.Path, nil
	case KeyHistOn:
		return strconv.FormatBool(s.History.Enabled), nil
	default:
		return "", invalid("key", key, Keys())
	}
}

func methodNames() []string {
	ms := solver.Methods()
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}

	return out
}

// invalid builds an ErrInvalidSetting error with a "did you mean" hint.
func invalid(what, got string, allowed []string) error {
	if s := Suggest(got, allowed); s != "" {
		return fmt.Errorf("%s %q is not one of %v (did you mean %q?): %w", what, got, allowed, s, ErrInvalidSetting)
	}

	return fmt.Errorf("%s %q is not one of %v: %w", what, got, allowed, ErrInvalidSetting)
}

// Suggest returns the candidate closest to input by edit distance, or "" when
// nothing is within half the candidate's length (at least 2 edits).
func Suggest(input string, candidates []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(candidates) == 0 {
		return ""
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestDist := "", -1
	for _, c := range sorted {
		d := levenshtein.ComputeDistance(input, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > max(2, len(best)/2) {
		return ""
	}

	return best
}
