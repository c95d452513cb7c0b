// Package sections segments raw resume text into labeled sections and parses
// them into structured records. Segmentation is heuristic: header lines are
// matched against per-section patterns, and each section spans from the line
// after its header to the next header (or end of document).
package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

// Section names, in header-matching priority order.
const (
	SectionObjective      = "objective"
	SectionProjects       = "projects"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
)

// headerPattern pairs a section name with its header regexp. Patterns are
// tested in order against each lowercased line; first match wins.
type headerPattern struct {
	name    string
	pattern *regexp.Regexp
}

var headerPatterns = []headerPattern{
	{SectionObjective, regexp.MustCompile(`(?:objective|summary|profile|about\s*me|professional\s*summary|career\s*objective)`)},
	{SectionProjects, regexp.MustCompile(`(?:projects?|portfolio|work\s*samples?|personal\s*projects?)`)},
	{SectionExperience, regexp.MustCompile(`(?:experience|work\s*history|employment|professional\s*experience|work\s*experience)`)},
	{SectionEducation, regexp.MustCompile(`(?:education|academic|qualifications?|degrees?)`)},
	{SectionSkills, regexp.MustCompile(`(?:skills?|technical\s*skills?|technologies|competencies)`)},
	{SectionCertifications, regexp.MustCompile(`(?:certifications?|certificates?|licenses?)`)},
	{SectionAchievements, regexp.MustCompile(`(?:achievements?|awards?|accomplishments?|honors?)`)},
}

// Extractor parses resume text into structured sections. It needs a skill
// detector to attach vocabulary technologies to parsed projects.
type Extractor struct {
	detector *skills.Detector
}

// NewExtractor creates an Extractor using the given detector for
// technology extraction.
func NewExtractor(detector *skills.Detector) *Extractor {
	return &Extractor{detector: detector}
}

// Extract segments text into sections and parses each one. Absent sections
// degrade to empty lists/strings; Extract never fails.
func (e *Extractor) Extract(text string) types.ResumeSections {
	lines := nonEmptyLines(text)
	raw := findSections(lines)

	projects := e.parseProjects(raw[SectionProjects])
	if len(projects) == 0 {
		projects = e.projectsFromExperience(raw[SectionExperience])
	}

	return types.ResumeSections{
		Objective:      parseObjective(raw[SectionObjective]),
		Projects:       projects,
		Experience:     parseExperience(raw[SectionExperience]),
		Education:      parseEducation(raw[SectionEducation]),
		Skills:         parseSkills(raw[SectionSkills]),
		Certifications: raw[SectionCertifications],
		Achievements:   raw[SectionAchievements],
		Raw:            raw,
	}
}

// Summarize condenses extraction results for the HTTP response.
func Summarize(s types.ResumeSections) types.SectionsSummary {
	excerpt := s.Objective.Text
	if len(excerpt) > 200 {
		excerpt = excerpt[:200]
	}
	return types.SectionsSummary{
		ObjectiveExcerpt: excerpt,
		ProjectCount:     len(s.Projects),
		ExperienceCount:  len(s.Experience),
		Education:        s.Education,
	}
}

// nonEmptyLines splits text into trimmed lines, dropping blanks.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// findSections locates header lines and returns each section's raw text
// span. A header line both opens its section and closes the previous one;
// the last section runs to end of document. When the same section header
// appears twice, the later span wins.
func findSections(lines []string) map[string]string {
	type headerMatch struct {
		line int
		name string
	}

	var matches []headerMatch
	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, hp := range headerPatterns {
			if hp.pattern.MatchString(lower) {
				matches = append(matches, headerMatch{line: i, name: hp.name})
				break
			}
		}
	}

	sections := make(map[string]string)
	for i, m := range matches {
		end := len(lines)
		if i < len(matches)-1 {
			end = matches[i+1].line
		}
		sections[m.name] = strings.Join(lines[m.line+1:end], "\n")
	}
	return sections
}
