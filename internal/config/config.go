// Package config loads the signfn CLI configuration.
//
// Values are layered: built-in defaults, then an optional .env file, then
// the process environment. Command-line flags are applied on top by the
// caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/born-ml/signfn/internal/nn"
)

// Environment variable names.
const (
	EnvMemoryLen = "SIGNFN_MEMORY_LEN"
	EnvZeroValue = "SIGNFN_ZERO_VALUE"
	EnvSeed      = "SIGNFN_SEED"
)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// Load builds an nn.Config from defaults, envFile (skipped when empty) and
// the process environment.
func Load(envFile string) (nn.Config, error) {
	return load(envFile, os.LookupEnv)
}

func load(envFile string, lookup LookupFunc) (nn.Config, error) {
	cfg := nn.DefaultConfig()

	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return cfg, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		fileValues = values
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	var errs []error
	if v, ok := get(EnvMemoryLen); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("%s=%q: must be a positive integer", EnvMemoryLen, v))
		} else {
			cfg.MemoryLen = n
		}
	}
	if v, ok := get(EnvZeroValue); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			errs = append(errs, fmt.Errorf("%s=%q: must be a number in [0, 1]", EnvZeroValue, v))
		} else {
			cfg.ZeroValue = f
		}
	}
	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: must be an integer", EnvSeed, v))
		} else {
			cfg.Seed = seed
		}
	}

	return cfg, errors.Join(errs...)
}
