// Package projects scores structured resume projects on complexity, impact,
// role and scope, and aggregates per-technology statistics.
package projects

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
	"github.com/jonathan/career-engine/internal/vocab"
)

// Score composition weights for overall project quality.
const (
	complexityWeight = 0.4
	impactWeight     = 0.4
	roleWeight       = 0.2
)

// Normalization divisors. A very complex project sums to roughly 50-60
// indicator weight, which the divisor maps into the 1-10 band.
const (
	complexityDivisor  = 5.0
	impactDivisor      = 4.0
	metricPatternBonus = 8.0
)

// Role classification thresholds over leadership/solo weight sums.
const (
	techLeadThreshold    = 15.0
	seniorThreshold      = 8.0
	soloThreshold        = 8.0
	teamContributorScore = 5.0
	developerScore       = 4.0
)

// metricPatterns detect quantified impact (user counts, percentages,
// revenue). Each matching pattern adds metricPatternBonus before
// normalization.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+k|\d+,\d+)\s*users`),
	regexp.MustCompile(`(\d+)%\s*(?:improvement|increase|reduction)`),
	regexp.MustCompile(`\$(\d+k|\d+m)`),
	regexp.MustCompile(`(\d+)\s*companies`),
}

// recencyTokens mark a project as recent.
var recencyTokens = []string{"2022", "2023", "2024", "2025", "2026", "current", "present", "ongoing"}

// Scope keyword sets, checked in priority order: production beats prototype
// beats learning.
var (
	productionKeywords = []string{"enterprise", "production", "deployed", "1000+ users", "10000+ users"}
	prototypeKeywords  = []string{"prototype", "poc", "proof of concept", "mvp"}
	learningKeywords   = []string{"learning", "tutorial", "practice", "course"}
)

// teamKeywords signal collaborative work for role classification.
var teamKeywords = []string{"team", "collaborated", "group"}

// Analyzer scores projects against the injected keyword tables.
type Analyzer struct {
	tables   *vocab.Tables
	detector *skills.Detector
}

// NewAnalyzer creates an Analyzer over the given tables.
func NewAnalyzer(tables *vocab.Tables, detector *skills.Detector) *Analyzer {
	return &Analyzer{tables: tables, detector: detector}
}

// Analyze scores every project and rolls the results up into an aggregate.
// An empty project list yields the documented zeroed aggregate, not an error.
func (a *Analyzer) Analyze(records []types.ProjectRecord) types.AggregateProjectAnalysis {
	if len(records) == 0 {
		return emptyAggregate()
	}

	analyzed := make([]types.ProjectAnalysis, 0, len(records))
	for _, record := range records {
		analyzed = append(analyzed, a.analyzeProject(record))
	}
	return a.aggregate(analyzed)
}

// analyzeProject scores one project from its combined title+description text.
func (a *Analyzer) analyzeProject(record types.ProjectRecord) types.ProjectAnalysis {
	combined := strings.ToLower(record.Title + " " + record.Description)

	complexity := a.complexityScore(combined)
	impact := a.impactScore(combined)
	roleType, roleScore := a.identifyRole(combined)

	description := record.Description
	if len(description) > 200 {
		description = description[:200]
	}

	return types.ProjectAnalysis{
		Title:           record.Title,
		Description:     description,
		ComplexityScore: complexity,
		ImpactScore:     impact,
		RoleType:        roleType,
		RoleScore:       roleScore,
		Technologies:    a.detector.DetectInLine(combined),
		IsRecent:        isRecent(combined),
		Scope:           detectScope(combined),
		OverallQuality:  qualityScore(complexity, impact, roleScore),
	}
}

// complexityScore sums matched indicator weights, normalizes into [1,10]
// and adds a bonus for broad technology stacks.
func (a *Analyzer) complexityScore(text string) float64 {
	var sum float64
	for _, kw := range a.tables.Complexity {
		if strings.Contains(text, kw.Keyword) {
			sum += kw.Weight
		}
	}

	normalized := math.Min(10, sum/complexityDivisor+1)

	techCount := len(a.detector.DetectInLine(text))
	if techCount > 5 {
		normalized = math.Min(10, normalized+1)
	}
	if techCount > 10 {
		normalized = math.Min(10, normalized+1)
	}
	return round1(normalized)
}

// impactScore sums matched impact weights plus a flat bonus per quantified
// metric pattern, normalized into [1,10].
func (a *Analyzer) impactScore(text string) float64 {
	var sum float64
	for _, kw := range a.tables.Impact {
		if strings.Contains(text, kw.Keyword) {
			sum += kw.Weight
		}
	}
	for _, pattern := range metricPatterns {
		if pattern.MatchString(text) {
			sum += metricPatternBonus
		}
	}
	return round1(math.Min(10, sum/impactDivisor+1))
}

// identifyRole classifies the candidate's role in the project from
// leadership and solo indicator weight sums.
func (a *Analyzer) identifyRole(text string) (string, float64) {
	var leadership float64
	for _, kw := range a.tables.Leadership {
		if strings.Contains(text, kw.Keyword) {
			leadership += kw.Weight
		}
	}

	var solo float64
	for _, kw := range a.tables.Solo {
		if strings.Contains(text, kw.Keyword) {
			solo += kw.Weight
		}
	}

	hasTeam := false
	for _, kw := range teamKeywords {
		if strings.Contains(text, kw) {
			hasTeam = true
			break
		}
	}

	switch {
	case leadership > techLeadThreshold:
		return types.RoleTechLead, leadership
	case leadership > seniorThreshold:
		return types.RoleSeniorContributor, leadership
	case hasTeam:
		return types.RoleTeamContributor, teamContributorScore
	case solo > soloThreshold:
		return types.RoleSoloDeveloper, solo
	default:
		return types.RoleDeveloper, developerScore
	}
}

// detectScope classifies the project, first scope match wins.
func detectScope(text string) string {
	if containsAny(text, productionKeywords) {
		return types.ScopeProduction
	}
	if containsAny(text, prototypeKeywords) {
		return types.ScopePrototype
	}
	if containsAny(text, learningKeywords) {
		return types.ScopeLearning
	}
	return types.ScopeStandardDev
}

// isRecent checks for recent year tokens or ongoing-work words.
func isRecent(text string) bool {
	return containsAny(text, recencyTokens)
}

// qualityScore combines the bounded component scores; role contribution is
// capped at its full weight.
func qualityScore(complexity, impact, roleScore float64) float64 {
	role := math.Min(roleScore/10, 1) * 10
	return round1(complexity*complexityWeight + impact*impactWeight + role*roleWeight)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
