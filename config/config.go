// Package config holds the knobs for the batch runner and puzzle generation.
// Everything has a default and can be overridden through the environment
// with a WATERSORT_ prefix, e.g. WATERSORT_SCRAMBLE_MOVES=40.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Board shape for generated puzzles.
	Capacity   int
	NumColors  int
	EmptyTubes int
	// ScrambleMoves is the length of the backward walk used to generate
	// each puzzle; it is an upper bound on the optimal solution length.
	ScrambleMoves int
	// SolverConcurrency caps how many puzzles the batch runner solves at
	// once. Each individual solve stays single-threaded.
	SolverConcurrency int
	// Debug turns on debug-level logging in the batch runner.
	Debug bool
}

// Load reads the configuration from the environment, falling back to
// defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("watersort")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("capacity", 4)
	v.SetDefault("num-colors", 5)
	v.SetDefault("empty-tubes", 2)
	v.SetDefault("scramble-moves", 30)
	v.SetDefault("solver-concurrency", 4)
	v.SetDefault("debug", false)

	c := &Config{
		Capacity:          v.GetInt("capacity"),
		NumColors:         v.GetInt("num-colors"),
		EmptyTubes:        v.GetInt("empty-tubes"),
		ScrambleMoves:     v.GetInt("scramble-moves"),
		SolverConcurrency: v.GetInt("solver-concurrency"),
		Debug:             v.GetBool("debug"),
	}
	return c, nil
}
