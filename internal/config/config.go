// Package config loads kepler-formal's small configuration surface
// (SAT timeout, cone-extraction worker-pool size, arity ceiling) through
// spf13/viper: an optional config file layered under KEPLER_FORMAL_
// environment variables and package defaults.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Defaults, used when no config file or flag overrides them.
const (
	DefaultSATTimeout   = 30 * time.Second
	DefaultWorkerPool   = 0 // 0 means runtime.GOMAXPROCS(0)
	DefaultArityCeiling = 20
)

// Config is kepler-formal's resolved configuration.
type Config struct {
	// SATTimeout is the whole check run's context deadline. The SAT
	// driver checks it before each solve; a solve already running is not
	// interrupted.
	SATTimeout time.Duration
	// WorkerPoolSize bounds concurrent per-output cone-extraction tasks;
	// 0 means runtime.GOMAXPROCS(0).
	WorkerPoolSize int
	// ArityCeiling bounds the arity of any individual driver cell's truth
	// table a cone may graft (the default is below ttable.MaxArity); an
	// output whose cone reaches a wider cell is degraded to "unknown".
	ArityCeiling int
}

// Load reads configuration from an optional file (viper auto-detects
// format by extension) layered under environment variables prefixed
// KEPLER_FORMAL_ and the package defaults. path may be empty, in which
// case only environment variables and defaults apply.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KEPLER_FORMAL")
	v.AutomaticEnv()

	v.SetDefault("sat_timeout", DefaultSATTimeout)
	v.SetDefault("worker_pool_size", DefaultWorkerPool)
	v.SetDefault("arity_ceiling", DefaultArityCeiling)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	return Config{
		SATTimeout:     v.GetDuration("sat_timeout"),
		WorkerPoolSize: v.GetInt("worker_pool_size"),
		ArityCeiling:   v.GetInt("arity_ceiling"),
	}, nil
}
