// Package capability assesses per-skill mastery from project evidence.
// Frequency alone is not expertise: the weighting favors the complexity of
// the projects a skill was used in and the role it played there.
package capability

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/career-engine/internal/types"
)

// Sub-factor weights. Complexity and role context together carry 75% of the
// score; raw mention count only confirms relevance.
const (
	mentionWeight    = 0.05
	projectWeight    = 0.20
	complexityWeight = 0.50
	roleWeight       = 0.25
)

// Sub-score scaling constants.
const (
	mentionMultiplier = 2.0
	projectMultiplier = 2.5
	subScoreCap       = 10.0

	// defaultComplexity is assumed when a skill is detected but carries no
	// recorded project complexity. A moderate default beats zero: absence
	// of evidence is not evidence of absence.
	defaultComplexity = 5.0

	// Role-context points per project: primary use (title or the first
	// 100 description chars) counts triple.
	primaryTechPoints    = 3.0
	supportingTechPoints = 1.0
	primaryDescWindow    = 100
)

// Level thresholds over the composite capability score.
const (
	expertThreshold       = 9.0
	advancedThreshold     = 7.0
	intermediateThreshold = 5.0
	beginnerThreshold     = 3.0
)

// Overall-strength weighting per level.
const (
	expertStrengthWeight   = 1.5
	advancedStrengthWeight = 1.2
	baseStrengthWeight     = 1.0
)

// maxTopCapabilities caps the surfaced top-skill list.
const maxTopCapabilities = 10

// maxEvidenceProjects caps supporting project titles in the evidence
// snapshot.
const maxEvidenceProjects = 3

// Assessor combines project analysis with skill frequency into capability
// assessments.
type Assessor struct{}

// NewAssessor creates an Assessor.
func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess produces one assessment per skill in the frequency map plus the
// aggregate report. Empty input yields a report with zero overall strength.
func (a *Assessor) Assess(projects types.AggregateProjectAnalysis, frequency map[string]int) types.CapabilityReport {
	detailed := make(map[string]types.CapabilityAssessment, len(frequency))

	skillNames := make([]string, 0, len(frequency))
	for skill := range frequency {
		skillNames = append(skillNames, skill)
	}
	sort.Strings(skillNames)

	for _, skill := range skillNames {
		detailed[skill] = a.assessSkill(skill, projects, frequency)
	}

	report := types.CapabilityReport{
		DetailedCapabilities:      detailed,
		TopCapabilities:           topCapabilities(skillNames, detailed),
		OverallCapabilityStrength: overallStrength(detailed),
	}
	for _, skill := range skillNames {
		switch detailed[skill].CapabilityLevel {
		case types.LevelExpert:
			report.ExpertSkills = append(report.ExpertSkills, skill)
			report.AdvancedSkills = append(report.AdvancedSkills, skill)
		case types.LevelAdvanced:
			report.AdvancedSkills = append(report.AdvancedSkills, skill)
		case types.LevelIntermediate, types.LevelBeginner:
			report.DevelopingSkills = append(report.DevelopingSkills, skill)
		}
	}
	return report
}

// assessSkill computes the four evidence sub-scores and their weighted
// combination for one skill.
func (a *Assessor) assessSkill(skill string, projects types.AggregateProjectAnalysis, frequency map[string]int) types.CapabilityAssessment {
	mentions := frequency[skill]
	mentionScore := math.Min(float64(mentions)*mentionMultiplier, subScoreCap)

	projectTitles := projects.TechToProjects[skill]
	projectCount := len(projectTitles)
	projectScore := math.Min(float64(projectCount)*projectMultiplier, subScoreCap)

	maxComplexity := projects.TechMaxComplexity[skill]
	complexityScore := maxComplexity
	if complexityScore == 0 {
		complexityScore = defaultComplexity
	}

	roleScore := roleScore(skill, projects.DetailedProjects)

	score := mentionScore*mentionWeight +
		projectScore*projectWeight +
		complexityScore*complexityWeight +
		roleScore*roleWeight

	evidenceProjects := projectTitles
	if len(evidenceProjects) > maxEvidenceProjects {
		evidenceProjects = evidenceProjects[:maxEvidenceProjects]
	}

	evidence := types.SkillEvidence{
		Mentions:      mentions,
		ProjectCount:  projectCount,
		Projects:      evidenceProjects,
		MaxComplexity: maxComplexity,
		RoleContext:   roleContext(skill, projects),
	}

	return types.CapabilityAssessment{
		CapabilityScore: round1(score),
		CapabilityLevel: scoreToLevel(score),
		MentionScore:    round1(mentionScore),
		ProjectScore:    round1(projectScore),
		ComplexityScore: round1(complexityScore),
		RoleScore:       round1(roleScore),
		Evidence:        evidence,
		Confidence:      confidence(projectCount, mentions),
	}
}

// roleScore scores how the skill was used across the detailed projects:
// primary technology (in the title or the opening of the description) earns
// more than a supporting mention.
func roleScore(skill string, detailed []types.ProjectAnalysis) float64 {
	lowerSkill := strings.ToLower(skill)

	var score float64
	for _, project := range detailed {
		if !containsTech(project.Technologies, skill) {
			continue
		}
		title := strings.ToLower(project.Title)
		desc := strings.ToLower(project.Description)

		idx := strings.Index(desc, lowerSkill)
		if strings.Contains(title, lowerSkill) || (idx >= 0 && idx < primaryDescWindow) {
			score += primaryTechPoints
		} else {
			score += supportingTechPoints
		}
	}
	return math.Min(score, subScoreCap)
}

// roleContext labels the skill's usage for the evidence snapshot.
func roleContext(skill string, projects types.AggregateProjectAnalysis) string {
	lowerSkill := strings.ToLower(skill)
	for _, project := range projects.DetailedProjects {
		if containsTech(project.Technologies, skill) &&
			strings.Contains(strings.ToLower(project.Title), lowerSkill) {
			return "Primary Technology"
		}
	}

	switch count := len(projects.TechToProjects[skill]); {
	case count > 2:
		return "Core Technology"
	case count > 0:
		return "Supporting Technology"
	default:
		return "Mentioned"
	}
}

func containsTech(technologies []string, skill string) bool {
	for _, t := range technologies {
		if t == skill {
			return true
		}
	}
	return false
}

func scoreToLevel(score float64) types.CapabilityLevel {
	switch {
	case score >= expertThreshold:
		return types.LevelExpert
	case score >= advancedThreshold:
		return types.LevelAdvanced
	case score >= intermediateThreshold:
		return types.LevelIntermediate
	case score >= beginnerThreshold:
		return types.LevelBeginner
	default:
		return types.LevelNovice
	}
}

func confidence(projectCount, mentions int) types.Confidence {
	switch {
	case projectCount >= 3 && mentions >= 5:
		return types.ConfidenceHigh
	case projectCount >= 2 || mentions >= 3:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// topCapabilities returns the highest-scoring skills, stable on the sorted
// skill-name order for equal scores.
func topCapabilities(skillNames []string, detailed map[string]types.CapabilityAssessment) []types.RankedCapability {
	ranked := make([]types.RankedCapability, 0, len(skillNames))
	for _, skill := range skillNames {
		ranked = append(ranked, types.RankedCapability{
			Skill:                skill,
			CapabilityAssessment: detailed[skill],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CapabilityScore > ranked[j].CapabilityScore
	})
	if len(ranked) > maxTopCapabilities {
		ranked = ranked[:maxTopCapabilities]
	}
	return ranked
}

// overallStrength averages capability scores, weighting expert and advanced
// skills more heavily.
func overallStrength(detailed map[string]types.CapabilityAssessment) float64 {
	if len(detailed) == 0 {
		return 0
	}

	var weightedSum, totalWeight float64
	for _, assessment := range detailed {
		weight := baseStrengthWeight
		switch assessment.CapabilityLevel {
		case types.LevelExpert:
			weight = expertStrengthWeight
		case types.LevelAdvanced:
			weight = advancedStrengthWeight
		}
		weightedSum += assessment.CapabilityScore * weight
		totalWeight += weight
	}
	return round1(weightedSum / totalWeight)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
