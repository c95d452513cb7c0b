package grading

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/llm"
	"github.com/jonathan/career-engine/internal/types"
)

// fakeClient is a canned llm.Client for engine tests.
type fakeClient struct {
	available bool
	response  string
	err       error
	calls     int
}

func (f *fakeClient) Available() bool { return f.available }

func (f *fakeClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

// instantRetry never sleeps and never retries, keeping tests fast.
func instantRetry() llm.RetryPolicy {
	return llm.RetryPolicy{
		MaxAttempts: 1,
		BaseDelay:   time.Millisecond,
		Retryable:   func(error) bool { return false },
		Sleep:       func(context.Context, time.Duration) error { return nil },
	}
}

const validGradeJSON = `{
  "overall_score": 88,
  "letter_grade": "B+",
  "grade_description": "Strong Professional",
  "market_tier": "Senior Professional",
  "component_scores": {
    "technical_depth": 85,
    "project_quality": 90,
    "capability_strength": 87,
    "experience_quality": 84,
    "completeness": 92,
    "competitiveness": 86
  },
  "strengths": ["Deep python expertise"],
  "weaknesses": ["Few quantified metrics"],
  "improvement_areas": ["More system design detail"],
  "competitive_position": "Top 15% of applicants",
  "percentile_rank": "Top 15%",
  "justification": "Solid breadth and depth."
}`

func TestGrade_UnavailableClientUsesFallback(t *testing.T) {
	client := &fakeClient{available: false}
	e := NewEngine(client, instantRetry())

	report := e.Grade(context.Background(), Input{DetectedSkills: []string{"python", "sql", "docker"}})

	assert.False(t, report.AIPowered)
	assert.Zero(t, client.calls)
	assert.GreaterOrEqual(t, report.OverallScore, 60.0)
	assert.LessOrEqual(t, report.OverallScore, 98.0)
	assert.NotEmpty(t, report.LetterGrade)
}

func TestGrade_ClientErrorFallsBack(t *testing.T) {
	client := &fakeClient{available: true, err: errors.New("model overloaded")}
	e := NewEngine(client, instantRetry())

	report := e.Grade(context.Background(), Input{DetectedSkills: []string{"python"}})

	assert.False(t, report.AIPowered)
	assert.Equal(t, 1, client.calls)
	assert.GreaterOrEqual(t, report.OverallScore, 60.0)
}

func TestGrade_ValidResponse(t *testing.T) {
	client := &fakeClient{available: true, response: validGradeJSON}
	e := NewEngine(client, instantRetry())

	report := e.Grade(context.Background(), Input{DetectedSkills: []string{"python"}})

	assert.True(t, report.AIPowered)
	assert.Equal(t, 88.0, report.OverallScore)
	assert.Equal(t, "B+", report.LetterGrade)
	assert.Equal(t, 85.0, report.ComponentScores.TechnicalDepth)
	assert.Equal(t, "Top 15%", report.PercentileRank)
}

func TestGrade_FencedResponseIsRepaired(t *testing.T) {
	client := &fakeClient{available: true, response: "```json\n" + validGradeJSON + "\n```"}
	e := NewEngine(client, instantRetry())

	report := e.Grade(context.Background(), Input{})

	assert.True(t, report.AIPowered)
	assert.Equal(t, 88.0, report.OverallScore)
}

func TestGrade_UnparseableResponseFallsBack(t *testing.T) {
	client := &fakeClient{available: true, response: "I would grade this resume a B+ overall."}
	e := NewEngine(client, instantRetry())

	report := e.Grade(context.Background(), Input{DetectedSkills: []string{"python"}})

	assert.False(t, report.AIPowered)
}

func TestGrade_OutOfRangeScoreFallsBack(t *testing.T) {
	bad := `{
  "overall_score": 150,
  "letter_grade": "A++",
  "grade_description": "x",
  "market_tier": "x",
  "component_scores": {
    "technical_depth": 85, "project_quality": 90, "capability_strength": 87,
    "experience_quality": 84, "completeness": 92, "competitiveness": 86
  },
  "strengths": [], "weaknesses": [], "improvement_areas": [],
  "competitive_position": "x", "percentile_rank": "x", "justification": "x"
}`
	client := &fakeClient{available: true, response: bad}
	e := NewEngine(client, instantRetry())

	report := e.Grade(context.Background(), Input{})

	assert.False(t, report.AIPowered)
}

func TestFallbackGrade_MinimalResume(t *testing.T) {
	e := NewEngine(nil, instantRetry())

	// Under three skills: 72 - 10 = 62.
	report := e.fallbackGrade(Input{DetectedSkills: []string{"html"}})

	assert.Equal(t, 62.0, report.OverallScore)
	assert.Equal(t, "C", report.LetterGrade)
	assert.Equal(t, "Developing Profile", report.GradeDescription)
	assert.Equal(t, "Mid-Level Professional", report.MarketTier)
	assert.False(t, report.AIPowered)
}

func TestFallbackGrade_StrongResume(t *testing.T) {
	e := NewEngine(nil, instantRetry())

	skills := []string{"python", "django", "sql", "docker", "aws", "react", "kubernetes", "terraform", "linux"}
	report := e.fallbackGrade(Input{
		DetectedSkills:     skills,
		ProjectAnalysis:    types.AggregateProjectAnalysis{TotalProjects: 5},
		CapabilityAnalysis: types.CapabilityReport{OverallCapabilityStrength: 8},
	})

	// 72 + 5 (skills) + 8 (projects) + 10 (capped mastery) = 95.
	assert.Equal(t, 95.0, report.OverallScore)
	assert.Equal(t, "A", report.LetterGrade)
	assert.Equal(t, "Senior Professional", report.MarketTier)
	assert.Equal(t, 95.0, report.ComponentScores.Completeness)
	assert.Len(t, report.Strengths, 3)
	assert.Contains(t, report.Justification, "python, django, sql, docker")
}

func TestFallbackGrade_ScoreClamped(t *testing.T) {
	e := NewEngine(nil, instantRetry())

	report := e.fallbackGrade(Input{})

	require.GreaterOrEqual(t, report.OverallScore, 60.0)
	assert.Contains(t, report.PercentileRank, "Top ")
}

func TestBuildGradingPrompt_IncludesSignals(t *testing.T) {
	prompt := buildGradingPrompt(Input{
		ResumeText:     "resume body",
		DetectedSkills: []string{"python", "sql"},
		ProjectAnalysis: types.AggregateProjectAnalysis{
			DetailedProjects: []types.ProjectAnalysis{
				{Title: "Chat App", Description: "realtime messaging"},
			},
		},
	})

	assert.Contains(t, prompt, "resume body")
	assert.Contains(t, prompt, "python, sql")
	assert.Contains(t, prompt, "- Chat App: realtime messaging")
	assert.Contains(t, prompt, `"overall_score"`)
}

func TestBuildGradingPrompt_TruncatesLongResume(t *testing.T) {
	long := make([]byte, maxResumeExcerpt*2)
	for i := range long {
		long[i] = 'a'
	}

	prompt := buildGradingPrompt(Input{ResumeText: string(long)})

	assert.Less(t, len(prompt), maxResumeExcerpt*2)
	assert.Contains(t, prompt, "No structured projects detected")
}
