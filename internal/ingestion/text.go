package ingestion

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// CleanText normalizes extracted resume text while preserving line
// structure, which the section extractor depends on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := removeExcessiveBlankLines(strings.Join(cleaned, "\n"))
	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and collapses runs of spaces, keeping
// leading bullet glyphs intact for the project fallback parser.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return multiSpace.ReplaceAllString(trimmed, " ")
}

// removeExcessiveBlankLines collapses runs of blank lines down to one.
func removeExcessiveBlankLines(content string) string {
	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}
	return content
}
