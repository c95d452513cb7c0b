package types

// Role types assigned by project analysis, ordered from most to least
// leadership signal.
const (
	RoleTechLead          = "Tech Lead"
	RoleSeniorContributor = "Senior Contributor"
	RoleTeamContributor   = "Team Contributor"
	RoleSoloDeveloper     = "Solo Developer"
	RoleDeveloper         = "Developer"
)

// Project scope categories, checked in this priority order.
const (
	ScopeProduction  = "Production/Enterprise"
	ScopePrototype   = "Prototype/MVP"
	ScopeLearning    = "Learning Project"
	ScopeStandardDev = "Standard Development"
)

// ProjectAnalysis scores a single project across the evaluated dimensions.
// Complexity, impact and quality are on a 1-10 scale.
type ProjectAnalysis struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ComplexityScore float64  `json:"complexity_score"`
	ImpactScore     float64  `json:"impact_score"`
	RoleType        string   `json:"role_type"`
	RoleScore       float64  `json:"role_score"`
	Technologies    []string `json:"technologies"`
	IsRecent        bool     `json:"is_recent"`
	Scope           string   `json:"scope"`
	OverallQuality  float64  `json:"overall_quality"`
}

// QualityDistribution buckets project quality scores.
type QualityDistribution struct {
	Excellent    int `json:"excellent"`     // 8-10
	Good         int `json:"good"`          // 6-8
	Average      int `json:"average"`       // 4-6
	BelowAverage int `json:"below_average"` // <4
}

// AggregateProjectAnalysis is the roll-up over all analyzed projects.
// An empty project list yields the zero totals, never an error.
type AggregateProjectAnalysis struct {
	TotalProjects          int                 `json:"total_projects"`
	AvgComplexity          float64             `json:"avg_complexity"`
	AvgImpact              float64             `json:"avg_impact"`
	AvgQuality             float64             `json:"avg_quality"`
	HighQualityCount       int                 `json:"high_quality_count"`
	StrongestProjectDomain string              `json:"strongest_project_domain"`
	DomainScores           map[string]float64  `json:"domain_scores"`
	TechFrequency          map[string]int      `json:"tech_frequency"`
	TechToProjects         map[string][]string `json:"tech_to_projects"`
	TechMaxComplexity      map[string]float64  `json:"tech_max_complexity"`
	LeadershipExperience   bool                `json:"leadership_experience"`
	LeadershipProjectCount int                 `json:"leadership_project_count"`
	RecentProjects         int                 `json:"recent_projects"`
	DetailedProjects       []ProjectAnalysis   `json:"detailed_projects"`
	QualityDistribution    QualityDistribution `json:"project_quality_distribution"`
}
