package main

import (
	"fmt"

	"github.com/jonathan/candidate-ranker/internal/config"
	"github.com/jonathan/candidate-ranker/internal/engine"
)

// buildOptions layers engine options: defaults, then the config file, then
// explicit CLI flags. Zero-valued flags leave the lower layer untouched.
func buildOptions(configPath string, limit, maxHops int) (engine.Options, *config.Config, error) {
	opts := engine.DefaultOptions()
	var cfg *config.Config

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return opts, nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return opts, nil, err
		}
		cfg = loaded

		if cfg.MaxHops > 0 {
			opts.MaxHops = cfg.MaxHops
		}
		if cfg.ResultLimit > 0 {
			opts.ResultLimit = cfg.ResultLimit
		}
		if cfg.YearsRampSaturation > 0 {
			opts.Weights.YearsRampSaturation = cfg.YearsRampSaturation
		}
		if cfg.LevelMultipliers != nil {
			opts.Weights.LevelMultipliers = cfg.LevelMultipliers
		}
	}

	if limit > 0 {
		opts.ResultLimit = limit
	}
	if maxHops > 0 {
		opts.MaxHops = maxHops
	}

	return opts, cfg, nil
}
