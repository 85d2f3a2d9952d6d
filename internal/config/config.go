// Package config loads process configuration from built-in defaults,
// environment variables (GOBAN_ prefix), and an optional YAML file via
// viper, in place of a Config struct literal built up field by field.
// Command-line flags are not read here; each cmd/ binary parses its own.
//
// Grounded on the pack's FromYaml (viper.New() + SetConfigFile +
// AddConfigPath + ReadInConfig), generalized to also read env.
package config

import (
	"github.com/spf13/viper"
)

// Config is the full set of knobs every cmd/ binary in this module reads.
type Config struct {
	BoardSize       int     `mapstructure:"board_size"`
	Komi            float64 `mapstructure:"komi"`
	ProhibitSuicide bool    `mapstructure:"prohibit_suicide"`
	SampleCount     int     `mapstructure:"sample_count"`
	WorkerCount     int     `mapstructure:"worker_count"`
	LogLevel        string  `mapstructure:"log_level"`
	ListenAddr      string  `mapstructure:"listen_addr"`
}

// defaults mirror gongo's own multirobot defaults: BoardSize 9,
// SampleCount 1000.
func defaults() Config {
	return Config{
		BoardSize:       9,
		Komi:            6.5,
		ProhibitSuicide: true,
		SampleCount:     1000,
		WorkerCount:     0, // 0 means "a single worker"; resolved by callers
		LogLevel:        "info",
		ListenAddr:      ":8080",
	}
}

// Load reads configuration from (in increasing priority) built-in
// defaults, an optional YAML file at path (skipped when path is empty; a
// non-empty path that can't be read is an error), and GOBAN_-prefixed
// environment variables.
func Load(path string) (Config, error) {
	v := viper.New()
	cfg := defaults()
	v.SetDefault("board_size", cfg.BoardSize)
	v.SetDefault("komi", cfg.Komi)
	v.SetDefault("prohibit_suicide", cfg.ProhibitSuicide)
	v.SetDefault("sample_count", cfg.SampleCount)
	v.SetDefault("worker_count", cfg.WorkerCount)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("listen_addr", cfg.ListenAddr)

	v.SetEnvPrefix("GOBAN")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
