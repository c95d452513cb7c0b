package grading

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/career-engine/internal/types"
)

// Deterministic scoring constants. The base sits at a solid C+/B- and moves
// with skill breadth, project count and demonstrated capability.
const (
	fallbackBaseScore = 72.0

	largeSkillSetBonus  = 10.0
	mediumSkillSetBonus = 5.0
	smallSkillSetMalus  = 10.0
	largeSkillSetSize   = 15
	mediumSkillSetSize  = 8
	smallSkillSetSize   = 3

	manyProjectsBonus = 8.0
	someProjectsBonus = 5.0
	manyProjectsCount = 4
	someProjectsCount = 2

	masteryBonusScale = 1.5
	masteryBonusCap   = 10.0

	minFallbackScore = 60.0
	maxFallbackScore = 98.0

	completenessScore = 95.0
)

// fallbackGrade computes the deterministic grade used when the collaborator
// is unavailable or fails.
func (e *Engine) fallbackGrade(input Input) types.GradeReport {
	score := fallbackBaseScore

	skillCount := len(input.DetectedSkills)
	switch {
	case skillCount > largeSkillSetSize:
		score += largeSkillSetBonus
	case skillCount > mediumSkillSetSize:
		score += mediumSkillSetBonus
	case skillCount < smallSkillSetSize:
		score -= smallSkillSetMalus
	}

	projectCount := input.ProjectAnalysis.TotalProjects
	switch {
	case projectCount > manyProjectsCount:
		score += manyProjectsBonus
	case projectCount > someProjectsCount:
		score += someProjectsBonus
	}

	capStrength := input.CapabilityAnalysis.OverallCapabilityStrength
	score += math.Min(capStrength*masteryBonusScale, masteryBonusCap)

	score = math.Round(math.Min(maxFallbackScore, math.Max(minFallbackScore, score)))

	topSkills := "core technologies"
	if skillCount > 0 {
		limit := skillCount
		if limit > 4 {
			limit = 4
		}
		topSkills = strings.Join(input.DetectedSkills[:limit], ", ")
	}

	letter, description, justification := gradeBand(score, topSkills, projectCount)

	marketTier := "Mid-Level Professional"
	if score > 80 {
		marketTier = "Senior Professional"
	}

	var strengths []string
	for i, skill := range input.DetectedSkills {
		if i >= 3 {
			break
		}
		strengths = append(strengths, fmt.Sprintf("Strong proficiency in %s", skill))
	}

	percentile := fmt.Sprintf("Top %d%%", int(100-score+10))

	return types.GradeReport{
		OverallScore:     score,
		LetterGrade:      letter,
		GradeDescription: description,
		MarketTier:       marketTier,
		ComponentScores: types.ComponentScores{
			TechnicalDepth:     math.Min(100, score-2),
			ProjectQuality:     math.Min(100, score+2),
			CapabilityStrength: math.Min(100, score+1),
			ExperienceQuality:  math.Min(100, score-3),
			Completeness:       completenessScore,
			Competitiveness:    score,
		},
		Strengths:           strengths,
		Weaknesses:          []string{"Consider adding more quantified impact metrics"},
		ImprovementAreas:    []string{"Highlight system design and architecture experience"},
		CompetitivePosition: percentile + " of applicants",
		PercentileRank:      percentile,
		Justification:       justification,
		AIPowered:           false,
	}
}

// gradeBand maps the final score to a letter, description and templated
// justification.
func gradeBand(score float64, topSkills string, projectCount int) (letter, description, justification string) {
	switch {
	case score >= 90:
		return "A", "Exceptional / FAANG-Ready", fmt.Sprintf(
			"Exceptional resume demonstrating deep expertise in %s. "+
				"The candidate shows strong project leadership and technical complexity suitable for senior roles. "+
				"Competitive for top-tier tech companies.", topSkills)
	case score >= 80:
		return "B+", "Strong Professional", fmt.Sprintf(
			"Strong professional profile with solid competency in %s. "+
				"Detected %d projects indicating practical experience. "+
				"Well-positioned for mid-to-senior level opportunities.", topSkills, projectCount)
	case score >= 70:
		return "B", "Solid Competitor", fmt.Sprintf(
			"Good foundation in %s. The resume meets industry standards "+
				"but could benefit from more detailed project descriptions to highlight impact. "+
				"Suitable for mid-level roles.", topSkills)
	default:
		return "C", "Developing Profile",
			"Resume shows potential but needs more specific technical details. " +
				"Focus on expanding project portfolio and quantifying achievements."
	}
}
