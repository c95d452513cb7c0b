package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-engine/internal/types"
)

// degreePattern matches common degree abbreviations and titles.
var degreePattern = regexp.MustCompile(`(b\.?s\.?|m\.?s\.?|b\.?tech|m\.?tech|bachelor|master|phd|b\.?e\.?|m\.?e\.?)`)

// skillDelimiters splits free-form skills listings.
var skillDelimiters = regexp.MustCompile(`[,;|•\n]`)

// careerIntentPatterns extract what the candidate says they are looking for.
var careerIntentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`seeking\s+(\w+(?:\s+\w+){0,3})\s+(?:role|position)`),
	regexp.MustCompile(`interested\s+in\s+(\w+(?:\s+\w+){0,3})`),
	regexp.MustCompile(`passionate\s+about\s+(\w+(?:\s+\w+){0,3})`),
	regexp.MustCompile(`aspiring\s+(\w+(?:\s+\w+){0,3})`),
	regexp.MustCompile(`looking\s+for\s+(\w+(?:\s+\w+){0,3})\s+(?:role|position|opportunity)`),
}

// passionWords flag motivational language in the objective.
var passionWords = []string{"passionate", "enthusiastic", "love", "excited", "driven", "dedicated"}

// parseExperience splits the experience section into coarse entries.
// Short title-case lines or lines with company/date separators start a new
// entry; following lines accumulate into its description.
func parseExperience(text string) []types.ExperienceEntry {
	if text == "" {
		return nil
	}

	var (
		entries []types.ExperienceEntry
		current *types.ExperienceEntry
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		isHeader := len(line) < 100 &&
			(isTitleCase(line) || strings.Contains(line, "|") || strings.Contains(line, "–"))
		if isHeader {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.ExperienceEntry{Header: line}
		} else if current != nil {
			current.Description += line + " "
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}

	for i := range entries {
		entries[i].Description = strings.TrimSpace(entries[i].Description)
	}
	return entries
}

// parseEducation selects lines matching a degree pattern, falling back to
// the whole block when none match.
func parseEducation(text string) []string {
	if text == "" {
		return nil
	}

	var entries []string
	for _, line := range strings.Split(text, "\n") {
		if degreePattern.MatchString(strings.ToLower(line)) {
			entries = append(entries, strings.TrimSpace(line))
		}
	}

	if len(entries) == 0 {
		entries = []string{strings.TrimSpace(text)}
	}
	return entries
}

// parseSkills splits a skills listing on common delimiters.
func parseSkills(text string) []string {
	var parsed []string
	for _, part := range skillDelimiters.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 1 {
			parsed = append(parsed, part)
		}
	}
	return parsed
}

// parseObjective extracts career-intent phrases and passion signals from
// the objective/summary section.
func parseObjective(text string) types.Objective {
	if text == "" {
		return types.Objective{}
	}

	lower := strings.ToLower(text)

	var keywords []string
	seen := make(map[string]bool)
	for _, pattern := range careerIntentPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			if !seen[match[1]] {
				seen[match[1]] = true
				keywords = append(keywords, match[1])
			}
		}
	}

	var signals []string
	for _, word := range passionWords {
		if strings.Contains(lower, word) {
			signals = append(signals, word)
		}
	}

	return types.Objective{
		Text:           text,
		CareerKeywords: keywords,
		PassionSignals: signals,
	}
}
