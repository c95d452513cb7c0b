package types

// CapabilityLevel is the ordinal mastery tier derived from the weighted
// evidence score.
type CapabilityLevel string

// Capability levels from lowest to highest evidence score.
const (
	LevelNovice       CapabilityLevel = "NOVICE"
	LevelBeginner     CapabilityLevel = "BEGINNER"
	LevelIntermediate CapabilityLevel = "INTERMEDIATE"
	LevelAdvanced     CapabilityLevel = "ADVANCED"
	LevelExpert       CapabilityLevel = "EXPERT"
)

// Confidence expresses how much project evidence backs an assessment.
type Confidence string

// Confidence tiers.
const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// SkillEvidence is the raw evidence snapshot backing a capability score.
type SkillEvidence struct {
	Mentions      int      `json:"mentions"`
	ProjectCount  int      `json:"project_count"`
	Projects      []string `json:"projects"`
	MaxComplexity float64  `json:"max_complexity"`
	RoleContext   string   `json:"role_context"`
}

// CapabilityAssessment is the per-skill mastery evaluation.
type CapabilityAssessment struct {
	CapabilityScore float64         `json:"capability_score"`
	CapabilityLevel CapabilityLevel `json:"capability_level"`
	MentionScore    float64         `json:"mention_score"`
	ProjectScore    float64         `json:"project_score"`
	ComplexityScore float64         `json:"complexity_score"`
	RoleScore       float64         `json:"role_score"`
	Evidence        SkillEvidence   `json:"evidence"`
	Confidence      Confidence      `json:"confidence"`
}

// RankedCapability pairs a skill with its assessment, used for the ordered
// top-capabilities list.
type RankedCapability struct {
	Skill string `json:"skill"`
	CapabilityAssessment
}

// CapabilityReport aggregates every per-skill assessment.
type CapabilityReport struct {
	DetailedCapabilities      map[string]CapabilityAssessment `json:"detailed_capabilities"`
	TopCapabilities           []RankedCapability              `json:"top_capabilities"`
	ExpertSkills              []string                        `json:"expert_skills"`
	AdvancedSkills            []string                        `json:"advanced_skills"`
	DevelopingSkills          []string                        `json:"developing_skills"`
	OverallCapabilityStrength float64                         `json:"overall_capability_strength"`
}
