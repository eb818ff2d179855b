package scoring

import (
	"math"

	"github.com/jonathan/candidate-ranker/internal/matching"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// round2 rounds to two decimal places. Applied at the component level and
// again at the total, so the total equals the rounded sum of rounded parts.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// yearsFactor implements the tenure ramp: 1.0 at or beyond saturation, the
// configured floor at exactly zero years, and a linear ramp in between. The
// ramp's limit toward zero years coincides with the floor, so the two branches
// agree at the boundary.
func yearsFactor(years int, w Weights) float64 {
	saturation := w.YearsRampSaturation
	if saturation <= 0 {
		saturation = 1
	}
	switch {
	case years >= saturation:
		return 1.0
	case years == 0:
		return w.ZeroYearsFactor
	default:
		return float64(years)/float64(saturation) + w.ZeroYearsFactor
	}
}

// experienceComponent scores one experience (or field-of-study) match.
// fullTenure forces the years factor to 1.0 for entities with no tenure axis.
func experienceComponent(m matching.EntityMatch, w Weights, fullTenure bool) float64 {
	base := w.ExperienceAlternativeBase
	yearsWeight := w.ExperienceAltYearsWeight
	if m.IsDirect {
		base = w.ExperienceDirectBase
		yearsWeight = w.ExperienceDirectYearsWeight
	}
	factor := 1.0
	if !fullTenure {
		factor = yearsFactor(m.Held.Years, w)
	}
	return round2(base + yearsWeight*factor)
}

// skillComponent scores one skill match. With a positive minimum-years
// threshold the years component is held years over the threshold, capped at
// 1.0; without one, years are not discounted.
func skillComponent(m matching.EntityMatch, w Weights) float64 {
	typeFactor := w.SkillAlternativeFactor
	if m.IsDirect {
		typeFactor = w.SkillDirectFactor
	}

	yearsComponent := 1.0
	if m.MinimumYears > 0 {
		yearsComponent = float64(m.Held.Years) / float64(m.MinimumYears)
		if yearsComponent > 1.0 {
			yearsComponent = 1.0
		}
	}

	levelComponent := w.levelMultiplier(m.Held.Level)

	return round2(typeFactor * (w.SkillYearsWeight*yearsComponent + w.SkillLevelWeight*levelComponent))
}

// Component computes the component score for a single entity match.
func Component(m matching.EntityMatch, w Weights) float64 {
	switch m.Held.Kind {
	case types.KindSkill:
		return skillComponent(m, w)
	case types.KindFieldOfStudy:
		// Fields of study have no tenure, so the experience policy applies
		// with a full years factor.
		return experienceComponent(m, w, true)
	default:
		return experienceComponent(m, w, false)
	}
}

// Score aggregates a candidate's entity matches into a CandidateScore. The
// total is uncapped: breadth across many matched skills is rewarded.
func Score(name string, matches []matching.EntityMatch, w Weights) types.CandidateScore {
	score := types.CandidateScore{
		Name:    name,
		Details: make([]types.MatchDetail, 0, len(matches)),
	}

	total := 0.0
	for _, m := range matches {
		component := Component(m, w)
		total += component

		detail := types.MatchDetail{
			EntityKind:     m.Held.Kind,
			EntityName:     m.Held.Name,
			Years:          m.Held.Years,
			IsDirect:       m.IsDirect,
			ComponentScore: component,
		}
		if m.Held.Kind == types.KindSkill {
			detail.Level = types.NormalizeLevel(m.Held.Level)
		}
		score.Details = append(score.Details, detail)
	}

	score.TotalScore = round2(total)
	score.MatchCount = len(matches)
	return score
}
