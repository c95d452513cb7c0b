// Package vocab holds the static lookup tables the analysis pipeline runs
// against: the skill vocabulary, skill market weights, role requirements,
// domain maps and the keyword-weight tables used for project scoring.
//
// Tables are built once at startup via Default() and passed by value into
// component constructors. Tests substitute smaller fixtures the same way.
package vocab

// WeightedKeyword pairs an indicator phrase with its scoring weight.
// Keywords are matched as lowercase substrings, in slice order.
type WeightedKeyword struct {
	Keyword string
	Weight  float64
}

// RoleProfile associates a target job title with its required skills.
type RoleProfile struct {
	Title    string
	Required []string
}

// Domain associates a broad technology category with its member skills.
type Domain struct {
	Name   string
	Skills []string
}

// Tables bundles every static lookup the pipeline needs. Treat as read-only
// after construction; components receive it by reference and never mutate it.
type Tables struct {
	// Skills is the ordered canonical skill vocabulary, all lowercase.
	Skills []string

	// SkillWeights maps a skill to its market importance. Skills absent
	// from the map score DefaultSkillWeight.
	SkillWeights map[string]float64

	// Roles lists target roles with required skills, in recommendation
	// priority order (first-seen wins on ties).
	Roles []RoleProfile

	// Domains lists technology domains in tie-break order.
	Domains []Domain

	// Complexity, Impact, Leadership and Solo are the keyword-weight
	// tables for project scoring.
	Complexity []WeightedKeyword
	Impact     []WeightedKeyword
	Leadership []WeightedKeyword
	Solo       []WeightedKeyword
}

// DefaultSkillWeight is used for any skill missing from SkillWeights.
const DefaultSkillWeight = 5.0

// SkillWeight returns the market weight for a skill, falling back to
// DefaultSkillWeight for unknown skills.
func (t *Tables) SkillWeight(skill string) float64 {
	if w, ok := t.SkillWeights[skill]; ok {
		return w
	}
	return DefaultSkillWeight
}

// HasSkill reports whether skill is part of the canonical vocabulary.
func (t *Tables) HasSkill(skill string) bool {
	for _, s := range t.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Default returns the production table set.
func Default() *Tables {
	return &Tables{
		Skills:       defaultSkills(),
		SkillWeights: defaultSkillWeights(),
		Roles:        defaultRoles(),
		Domains:      defaultDomains(),
		Complexity:   complexityIndicators(),
		Impact:       impactIndicators(),
		Leadership:   leadershipIndicators(),
		Solo:         soloIndicators(),
	}
}

func defaultSkills() []string {
	return []string{
		// Languages
		"python", "java", "c++", "javascript", "typescript",

		// Backend
		"django", "flask", "nodejs", "express",
		"api", "rest api", "microservices",
		"sql", "mysql", "postgresql",

		// Frontend
		"react", "angular", "html", "css",
		"redux", "nextjs",

		// DevOps
		"docker", "kubernetes", "aws",
		"ci/cd", "linux", "terraform",

		// AI/Data
		"machine learning", "deep learning",
		"pandas", "numpy", "statistics",
		"data analysis",

		// Testing
		"static code analysis", "unit testing",
		"testing", "sonarqube",

		// Tools
		"git", "github", "jira",
	}
}

func defaultSkillWeights() map[string]float64 {
	return map[string]float64{
		"python":           9,
		"java":             8,
		"c++":              7,
		"javascript":       8,
		"typescript":       8,
		"django":           7,
		"flask":            6,
		"nodejs":           7,
		"express":          6,
		"api":              6,
		"rest api":         7,
		"microservices":    9,
		"sql":              8,
		"mysql":            6,
		"postgresql":       7,
		"react":            8,
		"angular":          6,
		"html":             4,
		"css":              4,
		"redux":            5,
		"nextjs":           7,
		"docker":           9,
		"kubernetes":       10,
		"aws":              10,
		"ci/cd":            8,
		"linux":            6,
		"terraform":        8,
		"machine learning": 10,
		"deep learning":    10,
		"pandas":           6,
		"numpy":            6,
		"statistics":       7,
		"data analysis":    7,
		"unit testing":     6,
		"testing":          5,
		"sonarqube":        4,
		"git":              5,
		"github":           4,
		"jira":             3,
	}
}

func defaultRoles() []RoleProfile {
	return []RoleProfile{
		{Title: "Backend Developer", Required: []string{
			"python", "django", "flask", "fastapi", "nodejs", "express", "java", "spring", "spring boot",
			"c#", ".net", "asp.net", "go", "golang", "ruby", "rails", "php", "laravel",
			"sql", "mysql", "postgresql", "mongodb", "redis", "api", "rest api", "graphql",
			"microservices", "docker", "kubernetes", "aws", "kafka",
		}},
		{Title: "Frontend Developer", Required: []string{
			"javascript", "typescript", "react", "redux", "next.js", "nextjs", "vue", "vue.js",
			"angular", "html", "css", "sass", "scss", "tailwind", "bootstrap", "webpack", "vite",
			"figma", "ui/ux", "responsive design",
		}},
		{Title: "Full Stack Developer", Required: []string{
			"javascript", "typescript", "react", "node", "nodejs", "python", "java",
			"html", "css", "sql", "mongodb", "aws", "docker", "git", "rest api",
		}},
		{Title: "Data Scientist", Required: []string{
			"python", "r", "machine learning", "deep learning", "nlp", "computer vision",
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
			"sql", "statistics", "data visualization", "tableau", "power bi", "matplotlib", "seaborn",
			"big data", "spark", "hadoop",
		}},
		{Title: "DevOps Engineer", Required: []string{
			"docker", "kubernetes", "k8s", "aws", "azure", "gcp", "terraform", "ansible",
			"jenkins", "gitlab ci", "github actions", "circleci", "linux", "bash", "shell",
			"monitoring", "prometheus", "grafana", "elk", "networking",
		}},
		{Title: "Mobile Developer", Required: []string{
			"android", "ios", "swift", "kotlin", "java", "objective-c", "react native", "flutter",
			"dart", "xcode", "android studio", "mobile app",
		}},
		{Title: "Cloud Engineer", Required: []string{
			"aws", "azure", "gcp", "cloud formation", "terraform", "iam", "ec2", "s3", "lambda",
			"kubernetes", "docker", "linux", "networking", "python", "bash",
		}},
		{Title: "Cybersecurity Analyst", Required: []string{
			"security", "network security", "penetration testing", "ethical hacking", "firewall",
			"wireshark", "linux", "python", "siem", "splunk", "vulnerability assessment",
		}},
	}
}

func defaultDomains() []Domain {
	return []Domain{
		{Name: "Backend", Skills: []string{
			"python", "django", "flask", "nodejs",
			"express", "api", "microservices", "sql",
		}},
		{Name: "Frontend", Skills: []string{
			"javascript", "react", "html", "css",
			"redux", "typescript",
		}},
		{Name: "Data & AI", Skills: []string{
			"machine learning", "deep learning",
			"pandas", "numpy", "statistics",
		}},
		{Name: "DevOps & Cloud", Skills: []string{
			"docker", "kubernetes", "aws",
			"ci/cd", "terraform",
		}},
	}
}

func complexityIndicators() []WeightedKeyword {
	return []WeightedKeyword{
		// Architecture & scale
		{"microservices", 10}, {"distributed", 10}, {"scalable", 9}, {"load balancing", 9},
		{"high availability", 9}, {"fault tolerant", 9}, {"real-time", 8},
		{"event-driven", 8}, {"message queue", 8}, {"caching", 7},

		// Scale indicators
		{"1000+ users", 10}, {"10000+ users", 10}, {"thousands", 9}, {"production", 9},
		{"enterprise", 9}, {"million", 10}, {"concurrent", 8}, {"high traffic", 9},

		// Advanced patterns
		{"ml model", 9}, {"machine learning", 9}, {"deep learning", 10}, {"neural network", 10},
		{"ci/cd", 8}, {"devops", 7}, {"containerized", 8}, {"orchestration", 9},
		{"authentication", 6}, {"authorization", 6}, {"api gateway", 8},

		// Database sophistication
		{"nosql", 7}, {"sharding", 9}, {"replication", 8}, {"indexing", 7},
		{"transactions", 7}, {"acid", 8}, {"database design", 7},

		// Testing & quality
		{"unit test", 6}, {"integration test", 7}, {"e2e", 7}, {"test coverage", 7},
		{"automated", 6}, {"monitoring", 7}, {"logging", 6},

		// Security
		{"oauth", 7}, {"jwt", 7}, {"encryption", 8}, {"security", 6}, {"ssl", 6},

		// Performance
		{"optimized", 7}, {"performance", 6}, {"cdn", 7},
		{"lazy loading", 6}, {"async", 6}, {"multithreading", 8},
	}
}

func impactIndicators() []WeightedKeyword {
	return []WeightedKeyword{
		{"reduced cost", 10}, {"increased revenue", 10}, {"saved time", 8},
		{"improved", 7}, {"optimized", 7}, {"enhanced", 6},
		{"deployed", 8}, {"live", 8}, {"production", 9},
		{"open source", 7}, {"github", 5}, {"published", 8},
		{"award", 9}, {"recognition", 8}, {"featured", 8},
	}
}

func leadershipIndicators() []WeightedKeyword {
	return []WeightedKeyword{
		{"led", 10}, {"managed", 9}, {"architected", 10}, {"designed", 8},
		{"coordinated", 8}, {"mentored", 9}, {"team", 6}, {"collaborated", 5},
	}
}

func soloIndicators() []WeightedKeyword {
	return []WeightedKeyword{
		{"personal project", 3}, {"side project", 3}, {"built", 4}, {"created", 4},
		{"developed", 4}, {"implemented", 5},
	}
}
