package types

// ComponentScores breaks the overall grade into the six evaluated
// dimensions, each on a 0-100 scale. Validate tags gate LLM output.
type ComponentScores struct {
	TechnicalDepth     float64 `json:"technical_depth" validate:"min=0,max=100"`
	ProjectQuality     float64 `json:"project_quality" validate:"min=0,max=100"`
	CapabilityStrength float64 `json:"capability_strength" validate:"min=0,max=100"`
	ExperienceQuality  float64 `json:"experience_quality" validate:"min=0,max=100"`
	Completeness       float64 `json:"completeness" validate:"min=0,max=100"`
	Competitiveness    float64 `json:"competitiveness" validate:"min=0,max=100"`
}

// GradeReport is the composite resume grade. AIPowered records which path
// produced it: the reasoning collaborator (true) or the deterministic
// fallback (false).
type GradeReport struct {
	OverallScore        float64         `json:"overall_score" validate:"min=0,max=100"`
	LetterGrade         string          `json:"letter_grade" validate:"required"`
	GradeDescription    string          `json:"grade_description"`
	MarketTier          string          `json:"market_tier"`
	ComponentScores     ComponentScores `json:"component_scores"`
	Strengths           []string        `json:"strengths"`
	Weaknesses          []string        `json:"weaknesses"`
	ImprovementAreas    []string        `json:"improvement_areas"`
	CompetitivePosition string          `json:"competitive_position"`
	PercentileRank      string          `json:"percentile_rank"`
	Justification       string          `json:"justification"`
	AIPowered           bool            `json:"ai_powered"`
}

// Roadmap is the 4-week career preparation plan.
type Roadmap struct {
	Week1 string `json:"week1"`
	Week2 string `json:"week2"`
	Week3 string `json:"week3"`
	Week4 string `json:"week4"`
}

// CareerReport is the career-fit analysis computed independently of the
// project/capability pipeline.
type CareerReport struct {
	RankedSkills                 []string          `json:"ranked_skills"`
	Top3Skills                   []string          `json:"top_3_skills"`
	SkillDepthBreakdown          map[string]string `json:"skill_depth_breakdown"`
	ResumeComplexity             string            `json:"resume_complexity"`
	StrongestDomain              string            `json:"strongest_domain"`
	RecommendedRole              string            `json:"recommended_role"`
	MissingSkillsForBestRole     []string          `json:"missing_skills_for_best_role"`
	RiskIndex                    string            `json:"risk_index"`
	MarketAlignmentScore         int               `json:"market_alignment_score"`
	GeneralStrengthScore         int               `json:"general_strength_score"`
	PlacementProbabilityEstimate string            `json:"placement_probability_estimate"`
	CareerAlignmentAnalysis      string            `json:"career_alignment_analysis"`
	CompetitiveSummary           string            `json:"competitive_summary"`
	SkillSynergyAnalysis         string            `json:"skill_synergy_analysis"`
	ExtractionConfidence         string            `json:"extraction_confidence"`
	RoleMatchBreakdown           map[string]int    `json:"role_match_breakdown"`
	DomainStrengthBreakdown      map[string]int    `json:"domain_strength_breakdown"`
	Roadmap                      Roadmap           `json:"roadmap"`
}

// AnalysisResult is the merged response for one analysis request.
type AnalysisResult struct {
	AnalysisID         string                   `json:"analysis_id"`
	DetectedSkills     []string                 `json:"detected_skills"`
	Analysis           CareerReport             `json:"analysis"`
	ProjectAnalysis    AggregateProjectAnalysis `json:"project_analysis"`
	CapabilityAnalysis CapabilityReport         `json:"capability_analysis"`
	ResumeGrade        GradeReport              `json:"resume_grade"`
	SectionsAnalyzed   SectionsSummary          `json:"sections_analyzed"`
}
