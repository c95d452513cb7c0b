// Package career produces the career-fit report: role and domain
// recommendation, skill gap, market alignment, risk index and roadmap.
// It runs off the detected skill list and frequency map alone, independent
// of the project/capability pipeline, and is fully deterministic.
package career

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-engine/internal/types"
	"github.com/jonathan/career-engine/internal/vocab"
)

// General-strength formula constants: mean of weight × (1 + 0.2×frequency),
// scaled by 2.5 and capped at 85.
const (
	depthMultiplierStep    = 0.2
	generalStrengthScale   = 2.5
	generalStrengthCap     = 85
	marketAlignmentDivisor = 2.2
	marketAlignmentCap     = 95
)

// Skill-depth thresholds over raw mention counts.
const (
	advancedDepthMentions     = 3
	intermediateDepthMentions = 2
)

// Orchestrator computes career reports against the injected tables.
type Orchestrator struct {
	tables *vocab.Tables
}

// NewOrchestrator creates an Orchestrator over the given tables.
func NewOrchestrator(tables *vocab.Tables) *Orchestrator {
	return &Orchestrator{tables: tables}
}

// Run produces the full career report for the detected skills.
func (o *Orchestrator) Run(userSkills []string, frequency map[string]int) types.CareerReport {
	ranked := o.rankSkills(userSkills)
	generalStrength := o.generalStrength(userSkills, frequency)

	recommendedRole, roleScores := o.detectBestRole(userSkills)
	strongestDomain, domainScores := o.detectStrongDomain(userSkills)
	missing := o.missingForRole(recommendedRole, userSkills)

	placement := placementProbability(generalStrength)

	top3 := ranked
	if len(top3) > 3 {
		top3 = top3[:3]
	}

	return types.CareerReport{
		RankedSkills:                 ranked,
		Top3Skills:                   top3,
		SkillDepthBreakdown:          skillDepth(frequency),
		ResumeComplexity:             resumeComplexity(len(userSkills)),
		StrongestDomain:              strongestDomain,
		RecommendedRole:              recommendedRole,
		MissingSkillsForBestRole:     missing,
		RiskIndex:                    riskIndex(len(missing)),
		MarketAlignmentScore:         o.marketAlignment(userSkills),
		GeneralStrengthScore:         generalStrength,
		PlacementProbabilityEstimate: placement,
		CareerAlignmentAnalysis:      alignmentAnalysis(strongestDomain, recommendedRole),
		CompetitiveSummary: fmt.Sprintf(
			"You are positioned within the %s tier for %s domain roles.", placement, strongestDomain),
		SkillSynergyAnalysis:    skillSynergy(domainScores),
		ExtractionConfidence:    extractionConfidence(len(userSkills)),
		RoleMatchBreakdown:      roleScores,
		DomainStrengthBreakdown: domainScores,
		Roadmap:                 roadmap(recommendedRole, missing),
	}
}

// rankSkills sorts skills by market weight descending, stable on input
// order for equal weights.
func (o *Orchestrator) rankSkills(userSkills []string) []string {
	ranked := append([]string(nil), userSkills...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return o.tables.SkillWeight(ranked[i]) > o.tables.SkillWeight(ranked[j])
	})
	return ranked
}

// generalStrength is the depth-aware strength score: skill weight scaled by
// a mention-depth multiplier, averaged and mapped to the 0-85 band.
func (o *Orchestrator) generalStrength(userSkills []string, frequency map[string]int) int {
	if len(userSkills) == 0 {
		return 0
	}

	var total float64
	for _, skill := range userSkills {
		count := frequency[skill]
		if count == 0 {
			count = 1
		}
		depth := 1 + float64(count)*depthMultiplierStep
		total += o.tables.SkillWeight(skill) * depth
	}

	average := total / float64(len(userSkills))
	score := int(average * generalStrengthScale)
	if score > generalStrengthCap {
		return generalStrengthCap
	}
	return score
}

// skillDepth labels each skill from its raw mention count.
func skillDepth(frequency map[string]int) map[string]string {
	depth := make(map[string]string, len(frequency))
	for skill, count := range frequency {
		switch {
		case count >= advancedDepthMentions:
			depth[skill] = "Advanced"
		case count == intermediateDepthMentions:
			depth[skill] = "Intermediate"
		default:
			depth[skill] = "Basic"
		}
	}
	return depth
}

// detectBestRole scores every role by required-skill overlap and returns
// the argmax; ties keep the first role in table order.
func (o *Orchestrator) detectBestRole(userSkills []string) (string, map[string]int) {
	userSet := toSet(userSkills)
	scores := make(map[string]int, len(o.tables.Roles))

	best := ""
	bestScore := -1
	for _, role := range o.tables.Roles {
		overlap := 0
		for _, required := range role.Required {
			if userSet[required] {
				overlap++
			}
		}
		scores[role.Title] = overlap
		if overlap > bestScore {
			bestScore = overlap
			best = role.Title
		}
	}
	return best, scores
}

// detectStrongDomain scores every domain by member-skill overlap; ties keep
// the first domain in table order.
func (o *Orchestrator) detectStrongDomain(userSkills []string) (string, map[string]int) {
	userSet := toSet(userSkills)
	scores := make(map[string]int, len(o.tables.Domains))

	best := ""
	bestScore := -1
	for _, domain := range o.tables.Domains {
		overlap := 0
		for _, skill := range domain.Skills {
			if userSet[skill] {
				overlap++
			}
		}
		scores[domain.Name] = overlap
		if overlap > bestScore {
			bestScore = overlap
			best = domain.Name
		}
	}
	return best, scores
}

// missingForRole lists required skills absent from the user's set, in
// table order.
func (o *Orchestrator) missingForRole(roleTitle string, userSkills []string) []string {
	userSet := toSet(userSkills)
	missing := []string{}
	for _, role := range o.tables.Roles {
		if role.Title != roleTitle {
			continue
		}
		for _, required := range role.Required {
			if !userSet[required] {
				missing = append(missing, required)
			}
		}
		break
	}
	return missing
}

// marketAlignment sums skill weights and maps them into the 0-95 band.
func (o *Orchestrator) marketAlignment(userSkills []string) int {
	var sum float64
	for _, skill := range userSkills {
		sum += o.tables.SkillWeight(skill)
	}
	score := int(sum / marketAlignmentDivisor)
	if score > marketAlignmentCap {
		return marketAlignmentCap
	}
	return score
}

// resumeComplexity bands the skill count into profile categories.
func resumeComplexity(skillCount int) string {
	switch {
	case skillCount > 12:
		return "Highly Diversified Profile"
	case skillCount > 8:
		return "Balanced Technical Profile"
	case skillCount > 4:
		return "Focused Skill Profile"
	default:
		return "Emerging Skill Profile"
	}
}

// riskIndex is a strictly increasing-severity step function of the
// missing-skill count, with breakpoints at 0, 2 and 4.
func riskIndex(missingCount int) string {
	switch {
	case missingCount == 0:
		return "Low Strategic Risk"
	case missingCount <= 2:
		return "Moderate Competitive Risk"
	case missingCount <= 4:
		return "High Competitive Risk"
	default:
		return "Critical Skill Gap Risk"
	}
}

// placementProbability maps general strength into named probability bands.
func placementProbability(generalStrength int) string {
	switch {
	case generalStrength > 75:
		return "Very High (75-90%)"
	case generalStrength > 60:
		return "Good (60-75%)"
	case generalStrength > 50:
		return "Moderate (50-60%)"
	default:
		return "Needs Skill Strengthening (<50%)"
	}
}

// alignmentAnalysis compares the strongest domain to the recommended role
// string.
func alignmentAnalysis(strongestDomain, recommendedRole string) string {
	if !strings.Contains(recommendedRole, strongestDomain) {
		return fmt.Sprintf(
			"Your dominant expertise lies in %s. Strategic realignment may maximize growth.", strongestDomain)
	}
	return "Your career alignment is strategically consistent."
}

// extractionConfidence labels how much signal the skill scan produced.
func extractionConfidence(skillCount int) string {
	switch {
	case skillCount > 10:
		return "High Confidence Extraction"
	case skillCount > 6:
		return "Moderate Confidence Extraction"
	default:
		return "Low Confidence Extraction"
	}
}

// skillSynergy reports the first domain cluster with enough overlap to
// count as a specialization.
func skillSynergy(domainScores map[string]int) string {
	if domainScores["Frontend"] >= 3 {
		return "Strong frontend engineering capability with UI stack consistency."
	}
	if domainScores["Data & AI"] >= 3 {
		return "Strong AI/ML analytical foundation detected."
	}
	if domainScores["Backend"] >= 3 {
		return "Strong backend architectural foundation detected."
	}
	if domainScores["DevOps & Cloud"] >= 2 {
		return "Foundational cloud & deployment capability detected."
	}
	return "Cross-domain exposure detected without strong specialization cluster."
}

// roadmap builds the 4-week preparation plan; week 1 targets the first two
// missing skills when there are any.
func roadmap(roleTitle string, missing []string) types.Roadmap {
	week1 := "Refine core strengths"
	if len(missing) > 0 {
		firstTwo := missing
		if len(firstTwo) > 2 {
			firstTwo = firstTwo[:2]
		}
		week1 = fmt.Sprintf("Strengthen fundamentals of %s", strings.Join(firstTwo, ", "))
	}
	return types.Roadmap{
		Week1: week1,
		Week2: fmt.Sprintf("Build an advanced %s level project", roleTitle),
		Week3: "Practice system design, scalability & DSA",
		Week4: "Mock interviews + resume refinement",
	}
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s] = true
	}
	return set
}
