// Package types defines the shared data structures passed between the
// analysis pipeline stages and serialized in the HTTP response.
package types

// ProjectRecord is a structured project parsed out of the resume text.
// Technologies holds canonical vocabulary skills detected in the project text.
type ProjectRecord struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ExperienceEntry is a coarse work-history entry: a header line (company,
// role, date range) and the accumulated description below it.
type ExperienceEntry struct {
	Header      string `json:"header"`
	Description string `json:"description"`
}

// Objective captures career intent extracted from the objective/summary
// section.
type Objective struct {
	Text           string   `json:"text"`
	CareerKeywords []string `json:"career_keywords"`
	PassionSignals []string `json:"passion_signals"`
}

// ResumeSections is the structured output of section extraction. Sections
// missing from the resume are present with zero values, never absent.
type ResumeSections struct {
	Objective      Objective         `json:"objective"`
	Projects       []ProjectRecord   `json:"projects"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []string          `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications string            `json:"certifications"`
	Achievements   string            `json:"achievements"`

	// Raw maps section name to the unparsed text span, for debugging
	// and the sections_analyzed response summary.
	Raw map[string]string `json:"raw_sections"`
}

// SectionsSummary is the condensed view of extraction results returned to
// the front end.
type SectionsSummary struct {
	ObjectiveExcerpt string   `json:"objective_excerpt"`
	ProjectCount     int      `json:"project_count"`
	ExperienceCount  int      `json:"experience_count"`
	Education        []string `json:"education"`
}
