// Package config resolves mdfence defaults from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/ezerfernandes/mdfence/internal/files"
	"github.com/joho/godotenv"
)

// Environment variables read by [Load].
const (
	EnvExtensions = "MDFENCE_EXTENSIONS"
	EnvExclude    = "MDFENCE_EXCLUDE"
	EnvRecursive  = "MDFENCE_RECURSIVE"
	EnvColor      = "MDFENCE_COLOR"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultEnvFile is the env file looked up in the working directory.
const DefaultEnvFile = ".env"

// ErrColorMode is returned for an unknown color mode.
var ErrColorMode = errors.New("color mode must be one of auto, always, never")

// Config holds the defaults applied to command line flags.
type Config struct {
	Extensions []string
	Exclude    []string
	Recursive  bool
	Color      string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Extensions: append([]string(nil), files.DefaultExtensions...),
		Color:      ColorAuto,
	}
}

// Load applies env files and then the process environment on top of [Default].
// Missing env files are ignored. A variable already present in the process
// environment wins over the files; among files the first one wins.
func Load(envFiles ...string) (Config, error) {
	fileVars := make(map[string]string)

	for _, name := range envFiles {
		vars, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return Config{}, fmt.Errorf("%s: %w", name, err)
		}

		for k, v := range vars {
			if _, has := fileVars[k]; !has {
				fileVars[k] = v
			}
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}

		v, ok := fileVars[key]

		return v, ok
	})
}

// FromLookup builds a Config from [Default] and the variables lookup returns.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvExtensions); ok && len(strings.TrimSpace(v)) != 0 {
		cfg.Extensions = splitList(v)
	}

	if v, ok := lookup(EnvExclude); ok {
		cfg.Exclude = splitList(v)
	}

	if v, ok := lookup(EnvRecursive); ok && len(strings.TrimSpace(v)) != 0 {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvRecursive, err)
		}

		cfg.Recursive = b
	}

	if v, ok := lookup(EnvColor); ok && len(strings.TrimSpace(v)) != 0 {
		mode, err := ParseColor(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvColor, err)
		}

		cfg.Color = mode
	}

	return cfg, nil
}

// ParseColor validates a color mode.
func ParseColor(mode string) (string, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))

	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", ErrColorMode
	}
}

func splitList(v string) []string {
	var list []string

	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); len(item) != 0 {
			list = append(list, item)
		}
	}

	return list
}
