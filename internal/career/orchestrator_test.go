package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/vocab"
)

func newTestOrchestrator() *Orchestrator {
	return NewOrchestrator(vocab.Default())
}

func TestRankSkills_ByMarketWeightDescending(t *testing.T) {
	o := newTestOrchestrator()

	ranked := o.rankSkills([]string{"html", "aws", "python"})

	assert.Equal(t, []string{"aws", "python", "html"}, ranked)
}

func TestRankSkills_StableForEqualWeights(t *testing.T) {
	o := newTestOrchestrator()

	// java and javascript both weigh 8; input order is preserved.
	ranked := o.rankSkills([]string{"javascript", "java"})

	assert.Equal(t, []string{"javascript", "java"}, ranked)
}

func TestGeneralStrength_DepthMultiplier(t *testing.T) {
	o := newTestOrchestrator()

	// kubernetes weighs 10; 3 mentions give depth 1.6: 10*1.6*2.5 = 40.
	score := o.generalStrength([]string{"kubernetes"}, map[string]int{"kubernetes": 3})
	assert.Equal(t, 40, score)

	// Unseen frequency defaults to one mention.
	score = o.generalStrength([]string{"kubernetes"}, map[string]int{})
	assert.Equal(t, 30, score)
}

func TestGeneralStrength_Cap(t *testing.T) {
	o := newTestOrchestrator()

	score := o.generalStrength([]string{"aws"}, map[string]int{"aws": 20})

	assert.Equal(t, 85, score)
}

func TestGeneralStrength_Empty(t *testing.T) {
	o := newTestOrchestrator()

	assert.Equal(t, 0, o.generalStrength(nil, nil))
}

func TestMarketAlignment(t *testing.T) {
	o := newTestOrchestrator()

	// aws + kubernetes = 20 weight, / 2.2 = 9.
	assert.Equal(t, 9, o.marketAlignment([]string{"aws", "kubernetes"}))

	// Skills outside the weight table use the default weight.
	assert.Equal(t, 2, o.marketAlignment([]string{"cobol"}))
}

func TestDetectBestRole_FrontendStack(t *testing.T) {
	o := newTestOrchestrator()

	role, scores := o.detectBestRole([]string{"react", "redux", "html", "css", "javascript"})

	assert.Equal(t, "Frontend Developer", role)
	assert.Equal(t, 5, scores["Frontend Developer"])
	assert.Equal(t, 4, scores["Full Stack Developer"])
	assert.Equal(t, 0, scores["Backend Developer"])
	assert.Len(t, scores, len(vocab.Default().Roles))
}

func TestMissingForRole_FullCoverageMeansLowRisk(t *testing.T) {
	o := newTestOrchestrator()

	var frontendRequired []string
	for _, role := range vocab.Default().Roles {
		if role.Title == "Frontend Developer" {
			frontendRequired = role.Required
		}
	}
	require.NotEmpty(t, frontendRequired)

	missing := o.missingForRole("Frontend Developer", frontendRequired)

	assert.Empty(t, missing)
	assert.Equal(t, "Low Strategic Risk", riskIndex(len(missing)))
}

func TestRiskIndex_Breakpoints(t *testing.T) {
	assert.Equal(t, "Low Strategic Risk", riskIndex(0))
	assert.Equal(t, "Moderate Competitive Risk", riskIndex(1))
	assert.Equal(t, "Moderate Competitive Risk", riskIndex(2))
	assert.Equal(t, "High Competitive Risk", riskIndex(4))
	assert.Equal(t, "Critical Skill Gap Risk", riskIndex(5))
}

func TestPlacementProbability_Bands(t *testing.T) {
	assert.Equal(t, "Very High (75-90%)", placementProbability(76))
	assert.Equal(t, "Good (60-75%)", placementProbability(61))
	assert.Equal(t, "Moderate (50-60%)", placementProbability(51))
	assert.Equal(t, "Needs Skill Strengthening (<50%)", placementProbability(50))
}

func TestResumeComplexity_Bands(t *testing.T) {
	assert.Equal(t, "Highly Diversified Profile", resumeComplexity(13))
	assert.Equal(t, "Balanced Technical Profile", resumeComplexity(9))
	assert.Equal(t, "Focused Skill Profile", resumeComplexity(5))
	assert.Equal(t, "Emerging Skill Profile", resumeComplexity(4))
}

func TestExtractionConfidence_Bands(t *testing.T) {
	assert.Equal(t, "High Confidence Extraction", extractionConfidence(11))
	assert.Equal(t, "Moderate Confidence Extraction", extractionConfidence(7))
	assert.Equal(t, "Low Confidence Extraction", extractionConfidence(6))
}

func TestAlignmentAnalysis(t *testing.T) {
	assert.Equal(t, "Your career alignment is strategically consistent.",
		alignmentAnalysis("Backend", "Backend Developer"))
	assert.Contains(t,
		alignmentAnalysis("Frontend", "Backend Developer"),
		"dominant expertise lies in Frontend")
}

func TestSkillSynergy_OrderedClusters(t *testing.T) {
	assert.Contains(t, skillSynergy(map[string]int{"Frontend": 3}), "frontend")
	assert.Contains(t, skillSynergy(map[string]int{"Data & AI": 3}), "AI/ML")
	assert.Contains(t, skillSynergy(map[string]int{"Backend": 3}), "backend")
	assert.Contains(t, skillSynergy(map[string]int{"DevOps & Cloud": 2}), "cloud")
	assert.Contains(t, skillSynergy(map[string]int{}), "Cross-domain")
}

func TestRoadmap_TargetsFirstTwoMissingSkills(t *testing.T) {
	plan := roadmap("Backend Developer", []string{"go", "kafka", "redis"})

	assert.Equal(t, "Strengthen fundamentals of go, kafka", plan.Week1)
	assert.Contains(t, plan.Week2, "Backend Developer")

	plan = roadmap("Backend Developer", nil)
	assert.Equal(t, "Refine core strengths", plan.Week1)
}

func TestRun_Deterministic(t *testing.T) {
	o := newTestOrchestrator()

	skills := []string{"python", "django", "sql", "docker", "aws"}
	freq := map[string]int{"python": 3, "django": 2, "sql": 1, "docker": 1, "aws": 1}

	first := o.Run(skills, freq)
	second := o.Run(skills, freq)

	assert.Equal(t, first, second)
}

func TestRun_BuildsCompleteReport(t *testing.T) {
	o := newTestOrchestrator()

	skills := []string{"python", "django", "flask", "sql", "api", "microservices", "docker"}
	freq := map[string]int{"python": 3}

	report := o.Run(skills, freq)

	assert.Equal(t, "Backend Developer", report.RecommendedRole)
	assert.Equal(t, "Backend", report.StrongestDomain)
	assert.Len(t, report.Top3Skills, 3)
	assert.Len(t, report.RoleMatchBreakdown, len(vocab.Default().Roles))
	assert.Len(t, report.DomainStrengthBreakdown, 4)
	assert.Contains(t, report.CompetitiveSummary, "Backend")
	assert.Contains(t, report.SkillSynergyAnalysis, "backend")
	assert.NotEmpty(t, report.Roadmap.Week1)
	assert.NotEmpty(t, report.SkillDepthBreakdown)
}
