package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultYear       = 2022
	defaultScaffold   = "cargo scaffold {day}"
	defaultDownload   = "cargo download {day}"
	defaultEditor     = "code ."
	defaultPuzzleURL  = "https://adventofcode.com/{year}/day/{day}"
	defaultConfigName = "aoc-kickoff.json"

	// firstYear is the first Advent of Code event.
	firstYear = 2015
)

// Environment variables.
const (
	envPrefix = "AOC_"
	envHome   = "AOC_KICKOFF_HOME"
)

// appConfig holds the application configuration.
type appConfig struct {
	Year      int    `json:"year"`
	Scaffold  string `json:"scaffold"`
	Download  string `json:"download"`
	Editor    string `json:"editor"`
	URL       string `json:"url"`
	Shell     string `json:"shell,omitempty"`
	Preflight bool   `json:"preflight,omitempty"`
	Debug     bool   `json:"debug,omitempty"`
}

func defaultConfig() appConfig {
	return appConfig{
		Year:     defaultYear,
		Scaffold: defaultScaffold,
		Download: defaultDownload,
		Editor:   defaultEditor,
		URL:      defaultPuzzleURL,
	}
}

// resolveConfigPath picks the config file: the explicit path if given, then
// $AOC_KICKOFF_HOME, then the working directory.
func resolveConfigPath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if home := strings.TrimSpace(os.Getenv(envHome)); home != "" {
		return filepath.Join(home, defaultConfigName)
	}
	return defaultConfigName
}

// loadConfig loads configuration from path (if it exists) and then applies
// AOC_* environment overrides on top.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()
	k := koanf.New(".")

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
				return appConfig{}, fmt.Errorf("load config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return appConfig{}, fmt.Errorf("stat config: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return appConfig{}, fmt.Errorf("load env: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Scaffold = strings.TrimSpace(cfg.Scaffold)
	cfg.Download = strings.TrimSpace(cfg.Download)
	cfg.Editor = strings.TrimSpace(cfg.Editor)
	cfg.URL = strings.TrimSpace(cfg.URL)
	cfg.Shell = strings.TrimSpace(cfg.Shell)
	if err := cfg.validate(); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

// envKey maps AOC_SCAFFOLD to "scaffold".
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

func (c appConfig) validate() error {
	if c.Year < firstYear {
		return fmt.Errorf("year must be >= %d, got %d", firstYear, c.Year)
	}
	if c.Scaffold == "" {
		return errors.New("scaffold command is required in config")
	}
	if c.Download == "" {
		return errors.New("download command is required in config")
	}
	if c.Editor == "" {
		return errors.New("editor command is required in config")
	}
	if c.URL == "" {
		return errors.New("url is required in config")
	}
	if c.Shell != "" && len(strings.Fields(c.Shell)) < 2 {
		return fmt.Errorf("shell %q needs its command flag, e.g. \"%s -c\"", c.Shell, c.Shell)
	}
	if !strings.Contains(c.URL, "{day}") {
		return fmt.Errorf("url %q has no {day} placeholder", c.URL)
	}
	return nil
}

// render substitutes {day} and {year}. The day is never zero padded.
func render(tmpl string, day, year int) string {
	return strings.NewReplacer(
		"{day}", strconv.Itoa(day),
		"{year}", strconv.Itoa(year),
	).Replace(tmpl)
}
