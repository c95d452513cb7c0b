package sections

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/career-engine/internal/types"
)

const (
	// maxTitleLength bounds candidate project title lines.
	maxTitleLength = 80
	// minBulletLength is the shortest experience line treated as a
	// pseudo-project in the fallback path.
	minBulletLength = 30
	// maxFallbackProjects caps pseudo-projects derived from experience.
	maxFallbackProjects = 10
)

// simpleTitlePattern matches plain word titles with an optional
// parenthesized qualifier, e.g. "Inventory Tracker (Python, Flask)".
var simpleTitlePattern = regexp.MustCompile(`^[\w\s\-]+(?:\([\w\s,]+\))?$`)

// bulletTitlePattern captures a title-length prefix of a bullet line,
// stopping at sentence punctuation.
var bulletTitlePattern = regexp.MustCompile(`^([^.!?]{10,80})`)

// parserState names the states of the project segmentation machine.
type parserState int

const (
	// stateSeekingTitle: no project open yet; only a title line starts one.
	stateSeekingTitle parserState = iota
	// stateInBody: a project is open; non-title lines accumulate into its
	// description, a title line closes it and opens the next.
	stateInBody
)

// parseProjects segments the projects section into records. A line is a
// candidate title if it is short and all-uppercase, title-case, or a simple
// word/parenthetical pattern. If segmentation finds nothing but the section
// has text, the whole block becomes one unnamed project.
func (e *Extractor) parseProjects(text string) []types.ProjectRecord {
	if text == "" {
		return nil
	}

	var (
		projects []types.ProjectRecord
		current  types.ProjectRecord
		state    = stateSeekingTitle
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case isTitleLine(line):
			if state == stateInBody {
				projects = append(projects, current)
			}
			current = types.ProjectRecord{Title: line}
			state = stateInBody
		case state == stateInBody:
			current.Description += line + " "
		}
	}
	if state == stateInBody {
		projects = append(projects, current)
	}

	if len(projects) == 0 {
		projects = []types.ProjectRecord{{Title: "Project", Description: text}}
	}

	for i := range projects {
		projects[i].Description = strings.TrimSpace(projects[i].Description)
		projects[i].Technologies = e.detector.DetectInLine(projects[i].Description)
	}
	return projects
}

// projectsFromExperience derives pseudo-projects from substantial experience
// bullets. This is the fallback for resumes that list deliverables under
// work history instead of a projects section.
func (e *Extractor) projectsFromExperience(text string) []types.ProjectRecord {
	if text == "" {
		return nil
	}

	var projects []types.ProjectRecord
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) < minBulletLength {
			continue
		}

		line = stripBullet(line)

		title := line
		if m := bulletTitlePattern.FindStringSubmatch(line); m != nil {
			title = strings.TrimSpace(m[1])
		} else if len(title) > 60 {
			title = title[:60]
		}

		projects = append(projects, types.ProjectRecord{
			Title:        title,
			Description:  line,
			Technologies: e.detector.DetectInLine(line),
		})
	}

	// Keep the most substantial bullets first.
	sort.SliceStable(projects, func(i, j int) bool {
		return len(projects[i].Description) > len(projects[j].Description)
	})
	if len(projects) > maxFallbackProjects {
		projects = projects[:maxFallbackProjects]
	}
	return projects
}

// stripBullet removes a single leading bullet glyph.
func stripBullet(line string) string {
	for _, glyph := range []string{"•", "-", "*", "●", "◦"} {
		if strings.HasPrefix(line, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(line, glyph))
		}
	}
	return line
}

// isTitleLine reports whether a line looks like a project title.
func isTitleLine(line string) bool {
	if len(line) >= maxTitleLength {
		return false
	}
	return isUpperCase(line) || isTitleCase(line) || simpleTitlePattern.MatchString(line)
}

// isUpperCase reports whether the line has at least one letter and no
// lowercase letters.
func isUpperCase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether every word starts with an uppercase letter
// followed only by lowercase letters.
func isTitleCase(s string) bool {
	hasWord := false
	for _, word := range strings.Fields(s) {
		first := true
		for _, r := range word {
			if !unicode.IsLetter(r) {
				continue
			}
			if first {
				if !unicode.IsUpper(r) {
					return false
				}
				first = false
				hasWord = true
			} else if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasWord
}
