package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/types"
)

func TestAssess_DefaultComplexityWithoutProjectEvidence(t *testing.T) {
	a := NewAssessor()

	report := a.Assess(types.AggregateProjectAnalysis{}, map[string]int{"python": 2})

	assessment, ok := report.DetailedCapabilities["python"]
	require.True(t, ok)

	// mentions 2*2=4, no projects, default complexity 5, no role context.
	assert.Equal(t, 4.0, assessment.MentionScore)
	assert.Equal(t, 0.0, assessment.ProjectScore)
	assert.Equal(t, 5.0, assessment.ComplexityScore)
	assert.InDelta(t, 2.7, assessment.CapabilityScore, 0.001)
	assert.Equal(t, types.LevelNovice, assessment.CapabilityLevel)
	assert.Equal(t, types.ConfidenceLow, assessment.Confidence)
}

func TestAssess_StrongEvidenceReachesExpert(t *testing.T) {
	a := NewAssessor()

	detailed := []types.ProjectAnalysis{
		{Title: "Python Trading Engine", Description: "low latency order matching", Technologies: []string{"python"}, ComplexityScore: 9},
		{Title: "Python ETL", Description: "nightly batch loads", Technologies: []string{"python"}, ComplexityScore: 8},
		{Title: "Python API", Description: "public rest interface", Technologies: []string{"python"}, ComplexityScore: 7},
		{Title: "Python Bot", Description: "chat automation", Technologies: []string{"python"}, ComplexityScore: 6},
	}
	agg := types.AggregateProjectAnalysis{
		TechToProjects:    map[string][]string{"python": {"Python Trading Engine", "Python ETL", "Python API", "Python Bot"}},
		TechMaxComplexity: map[string]float64{"python": 9},
		DetailedProjects:  detailed,
	}

	report := a.Assess(agg, map[string]int{"python": 6})

	assessment := report.DetailedCapabilities["python"]
	assert.Equal(t, 10.0, assessment.MentionScore)
	assert.Equal(t, 10.0, assessment.ProjectScore)
	assert.Equal(t, 9.0, assessment.ComplexityScore)
	assert.Equal(t, 10.0, assessment.RoleScore)
	assert.InDelta(t, 9.5, assessment.CapabilityScore, 0.001)
	assert.Equal(t, types.LevelExpert, assessment.CapabilityLevel)
	assert.Equal(t, types.ConfidenceHigh, assessment.Confidence)

	// Expert skills are also surfaced in the advanced list.
	assert.Contains(t, report.ExpertSkills, "python")
	assert.Contains(t, report.AdvancedSkills, "python")

	// Evidence keeps at most three supporting projects.
	assert.Len(t, assessment.Evidence.Projects, maxEvidenceProjects)
	assert.Equal(t, "Primary Technology", assessment.Evidence.RoleContext)
}

func TestAssess_ComplexityDominatesScore(t *testing.T) {
	a := NewAssessor()

	low := types.AggregateProjectAnalysis{
		TechToProjects:    map[string][]string{"docker": {"A"}},
		TechMaxComplexity: map[string]float64{"docker": 3},
	}
	high := types.AggregateProjectAnalysis{
		TechToProjects:    map[string][]string{"docker": {"A"}},
		TechMaxComplexity: map[string]float64{"docker": 9},
	}
	freq := map[string]int{"docker": 2}

	lowScore := a.Assess(low, freq).DetailedCapabilities["docker"].CapabilityScore
	highScore := a.Assess(high, freq).DetailedCapabilities["docker"].CapabilityScore

	assert.Greater(t, highScore, lowScore)
	assert.InDelta(t, 3.0, highScore-lowScore, 0.001)
}

func TestAssess_EmptyFrequency(t *testing.T) {
	a := NewAssessor()

	report := a.Assess(types.AggregateProjectAnalysis{}, map[string]int{})

	assert.Empty(t, report.DetailedCapabilities)
	assert.Empty(t, report.TopCapabilities)
	assert.Equal(t, 0.0, report.OverallCapabilityStrength)
}

func TestAssess_TopCapabilitiesRankedByScore(t *testing.T) {
	a := NewAssessor()

	agg := types.AggregateProjectAnalysis{
		TechToProjects:    map[string][]string{"aws": {"A", "B"}},
		TechMaxComplexity: map[string]float64{"aws": 8},
	}
	report := a.Assess(agg, map[string]int{"aws": 4, "jira": 1})

	require.Len(t, report.TopCapabilities, 2)
	assert.Equal(t, "aws", report.TopCapabilities[0].Skill)
	assert.Equal(t, "jira", report.TopCapabilities[1].Skill)
}

func TestConfidenceTiers(t *testing.T) {
	assert.Equal(t, types.ConfidenceHigh, confidence(3, 5))
	assert.Equal(t, types.ConfidenceMedium, confidence(2, 0))
	assert.Equal(t, types.ConfidenceMedium, confidence(0, 3))
	assert.Equal(t, types.ConfidenceLow, confidence(1, 2))
}

func TestScoreToLevel(t *testing.T) {
	assert.Equal(t, types.LevelExpert, scoreToLevel(9.0))
	assert.Equal(t, types.LevelAdvanced, scoreToLevel(7.5))
	assert.Equal(t, types.LevelIntermediate, scoreToLevel(5.0))
	assert.Equal(t, types.LevelBeginner, scoreToLevel(3.2))
	assert.Equal(t, types.LevelNovice, scoreToLevel(2.9))
}
