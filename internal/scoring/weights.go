// Package scoring computes per-match component scores and per-candidate totals.
package scoring

import "github.com/jonathan/candidate-ranker/internal/types"

// Weights holds every tunable of the score calculator. Callers pass a Weights
// value into Score explicitly so runs stay deterministic under varied tunings;
// there is no package-level mutable state.
type Weights struct {
	// Experience policy: component = base + yearsWeight * yearsFactor.
	ExperienceDirectBase        float64 `json:"experience_direct_base"`
	ExperienceAlternativeBase   float64 `json:"experience_alternative_base"`
	ExperienceDirectYearsWeight float64 `json:"experience_direct_years_weight"`
	ExperienceAltYearsWeight    float64 `json:"experience_alternative_years_weight"`

	// Years ramp: factor is 1.0 at or above the saturation tenure, the floor
	// at exactly zero years, and years/saturation + floor in between.
	YearsRampSaturation int     `json:"years_ramp_saturation"`
	ZeroYearsFactor     float64 `json:"zero_years_factor"`

	// Skill policy: component = typeFactor * (yearsWeight*years + levelWeight*level).
	SkillDirectFactor      float64 `json:"skill_direct_factor"`
	SkillAlternativeFactor float64 `json:"skill_alternative_factor"`
	SkillYearsWeight       float64 `json:"skill_years_weight"`
	SkillLevelWeight       float64 `json:"skill_level_weight"`

	// LevelMultipliers maps normalized proficiency levels to multipliers.
	// Unrecognized levels fall back to the beginner entry.
	LevelMultipliers map[string]float64 `json:"level_multipliers"`
}

// DefaultWeights returns the reference tuning. Years dominate for experience
// (tenure is the only signal there); level dominates for skills.
func DefaultWeights() Weights {
	return Weights{
		ExperienceDirectBase:        0.4,
		ExperienceAlternativeBase:   0.2,
		ExperienceDirectYearsWeight: 0.6,
		ExperienceAltYearsWeight:    0.5,
		YearsRampSaturation:         3,
		ZeroYearsFactor:             0.1,
		SkillDirectFactor:           1.0,
		SkillAlternativeFactor:      0.7,
		SkillYearsWeight:            0.3,
		SkillLevelWeight:            0.7,
		LevelMultipliers: map[string]float64{
			types.LevelBeginner:     0.5,
			types.LevelIntermediate: 0.75,
			types.LevelAdvanced:     1.0,
			types.LevelExpert:       1.2,
		},
	}
}

// levelMultiplier looks up the multiplier for a raw level string.
func (w Weights) levelMultiplier(level string) float64 {
	if m, ok := w.LevelMultipliers[types.NormalizeLevel(level)]; ok {
		return m
	}
	return w.LevelMultipliers[types.LevelBeginner]
}
