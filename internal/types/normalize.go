package types

import "strings"

// Proficiency levels recognized for skill scoring.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// CanonicalName returns the identity key used for entity comparison.
// Skill names compare case-insensitively, so they canonicalize to lower case;
// experience and field-of-study titles compare exactly after trimming.
func CanonicalName(kind Kind, name string) string {
	name = strings.TrimSpace(name)
	if kind == KindSkill {
		return strings.ToLower(name)
	}
	return name
}

// NormalizeLevel lower-cases a proficiency level and maps unrecognized values
// to beginner, the documented fallback.
func NormalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelBeginner:
		return LevelBeginner
	case LevelIntermediate:
		return LevelIntermediate
	case LevelAdvanced:
		return LevelAdvanced
	case LevelExpert:
		return LevelExpert
	default:
		return LevelBeginner
	}
}
