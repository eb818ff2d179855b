package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"max_hops": 1,
		"result_limit": 25,
		"years_ramp_saturation": 5,
		"level_multipliers": {"beginner": 0.4, "expert": 1.5},
		"database_url": "postgres://localhost/ranker",
		"port": 8080,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MaxHops)
	assert.Equal(t, 25, cfg.ResultLimit)
	assert.Equal(t, 5, cfg.YearsRampSaturation)
	assert.Equal(t, 1.5, cfg.LevelMultipliers["expert"])
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{broken`)

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_MaxHopsOutOfRange(t *testing.T) {
	cfg := &Config{MaxHops: 3}

	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeResultLimit(t *testing.T) {
	cfg := &Config{ResultLimit: -1}

	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeMultiplier(t *testing.T) {
	cfg := &Config{LevelMultipliers: map[string]float64{"beginner": -0.5}}

	assert.Error(t, cfg.Validate())
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ResultLimit: 5}
	defaults := Config{
		MaxHops:     2,
		ResultLimit: 10,
		DatabaseURL: "postgres://localhost/ranker",
		Port:        8080,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 5, merged.ResultLimit) // explicit value wins
	assert.Equal(t, 2, merged.MaxHops)
	assert.Equal(t, "postgres://localhost/ranker", merged.DatabaseURL)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaults_LevelMultipliers(t *testing.T) {
	cfg := Config{}
	defaults := Config{LevelMultipliers: map[string]float64{"expert": 1.2}}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 1.2, merged.LevelMultipliers["expert"])
}
