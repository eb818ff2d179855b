package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-ranker/internal/engine"
)

func TestBuildOptions_Defaults(t *testing.T) {
	opts, cfg, err := buildOptions("", 0, 0)
	require.NoError(t, err)

	assert.Nil(t, cfg)
	assert.Equal(t, engine.DefaultOptions().MaxHops, opts.MaxHops)
	assert.Equal(t, engine.DefaultOptions().ResultLimit, opts.ResultLimit)
}

func TestBuildOptions_FlagsOverride(t *testing.T) {
	opts, _, err := buildOptions("", 3, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, opts.ResultLimit)
	assert.Equal(t, 1, opts.MaxHops)
}

func TestBuildOptions_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"max_hops": 1,
		"result_limit": 5,
		"years_ramp_saturation": 4,
		"level_multipliers": {"beginner": 0.4, "intermediate": 0.7, "advanced": 1.0, "expert": 1.3}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, cfg, err := buildOptions(path, 0, 0)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, opts.MaxHops)
	assert.Equal(t, 5, opts.ResultLimit)
	assert.Equal(t, 4, opts.Weights.YearsRampSaturation)
	assert.Equal(t, 1.3, opts.Weights.LevelMultipliers["expert"])
}

func TestBuildOptions_FlagsBeatConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"result_limit": 5}`), 0644))

	opts, _, err := buildOptions(path, 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 20, opts.ResultLimit)
}

func TestBuildOptions_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"max_hops": 9}`), 0644))

	_, _, err := buildOptions(path, 0, 0)
	assert.Error(t, err)
}

func TestBuildOptions_MissingConfigFile(t *testing.T) {
	_, _, err := buildOptions(filepath.Join(t.TempDir(), "nope.json"), 0, 0)
	assert.Error(t, err)
}
