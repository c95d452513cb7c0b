// Package ingestion extracts plain text from uploaded resume documents and
// gates it for quality before the analysis pipeline runs.
package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Quality thresholds. Text below MinUsableLength is treated as an
// extraction failure; a successful extraction with fewer than
// MinConfidentSkills detected skills is flagged as degraded.
const (
	MinUsableLength    = 50
	MinConfidentSkills = 3
)

// ExtractText extracts plain text from an uploaded document. PDF uploads go
// through the text-layer reader; anything else is treated as plain text.
// Image-only PDFs yield empty text here; OCR is an external concern.
func ExtractText(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty document")
	}

	if isPDF(data, contentType) {
		text, err := extractPDFText(data)
		if err != nil {
			return "", fmt.Errorf("pdf extraction failed: %w", err)
		}
		return CleanText(text), nil
	}

	return CleanText(string(data)), nil
}

// Usable reports whether extracted text is long enough to analyze.
func Usable(text string) bool {
	return len(strings.TrimSpace(text)) >= MinUsableLength
}

// Degraded reports whether extraction succeeded but produced too little
// signal to trust downstream scores.
func Degraded(text string, detectedSkills int) bool {
	return !Usable(text) || detectedSkills < MinConfidentSkills
}

// isPDF checks the declared content type and the magic prefix; uploads
// frequently arrive with a generic content type.
func isPDF(data []byte, contentType string) bool {
	if strings.Contains(contentType, "pdf") {
		return true
	}
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// extractPDFText walks every page of the text layer.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
