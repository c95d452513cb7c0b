package server

import (
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-engine/internal/ingestion"
)

const maxUploadSize = 10 << 20 // 10MB

// handleAnalyze accepts a multipart resume upload and returns the merged
// analysis. Extraction failures return a JSON error object with status 200
// so the front end can render the message directly.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	defer r.Body.Close()

	file, header, err := r.FormFile("file")
	if err != nil {
		herr := &ErrMissingFile{}
		s.errorResponse(w, HTTPStatus(herr), herr.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		herr := &ErrUnreadableUpload{Err: err}
		s.errorResponse(w, HTTPStatus(herr), herr.Error())
		return
	}

	text, err := ingestion.ExtractText(data, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("text extraction failed for %q: %v", header.Filename, err)
	}
	if err != nil || !ingestion.Usable(text) {
		s.jsonResponse(w, http.StatusOK, map[string]string{
			"error": "Unable to extract text from resume.",
		})
		return
	}

	result := s.runner.Run(r.Context(), text)
	result.AnalysisID = uuid.New().String()

	if ingestion.Degraded(text, len(result.DetectedSkills)) {
		log.Printf("low-confidence extraction for %q: %d chars, %d skills",
			header.Filename, len(text), len(result.DetectedSkills))
	}

	s.jsonResponse(w, http.StatusOK, result)
}
