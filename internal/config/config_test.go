package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nanocoh/kepler-formal/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.DefaultSATTimeout, cfg.SATTimeout)
	require.Equal(t, config.DefaultWorkerPool, cfg.WorkerPoolSize)
	require.Equal(t, config.DefaultArityCeiling, cfg.ArityCeiling)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load("/nonexistent/kepler-formal.yaml")
	require.Error(t, err)
}
