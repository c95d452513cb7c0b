// Package skills detects vocabulary skills in resume text.
package skills

import (
	"strings"

	"github.com/jonathan/career-engine/internal/vocab"
)

// Detection is the set of vocabulary skills found in a resume plus their
// non-overlapping occurrence counts. Skills and Frequency always cover the
// same keys; Skills preserves vocabulary order.
type Detection struct {
	Skills    []string
	Frequency map[string]int
}

// Detector matches the canonical vocabulary against resume text.
// Matching is substring based, not word-boundary based: short tokens embedded
// in longer tool names ("sql" inside "postgresql") count as occurrences.
// Downstream scoring depends on these counts, so the behavior is kept as is.
type Detector struct {
	tables *vocab.Tables
}

// NewDetector creates a Detector over the given tables.
func NewDetector(tables *vocab.Tables) *Detector {
	return &Detector{tables: tables}
}

// Detect scans text for every vocabulary skill. The scan is case-insensitive
// and side-effect free; empty text yields an empty detection.
func (d *Detector) Detect(text string) Detection {
	detection := Detection{Frequency: make(map[string]int)}
	if text == "" {
		return detection
	}

	lower := strings.ToLower(text)
	for _, skill := range d.tables.Skills {
		count := strings.Count(lower, skill)
		if count > 0 {
			detection.Skills = append(detection.Skills, skill)
			detection.Frequency[skill] = count
		}
	}

	return detection
}

// DetectInLine returns the vocabulary skills present in a single line,
// in vocabulary order. Used by the experience-bullet project fallback.
func (d *Detector) DetectInLine(line string) []string {
	lower := strings.ToLower(line)
	var found []string
	for _, skill := range d.tables.Skills {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}
