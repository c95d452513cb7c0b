package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/grading"
	"github.com/jonathan/career-engine/internal/llm"
	"github.com/jonathan/career-engine/internal/pipeline"
	"github.com/jonathan/career-engine/internal/vocab"
)

// newTestServer wires a server with no LLM credential, so grading takes the
// deterministic path and tests stay offline.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine := grading.NewEngine(nil, llm.DefaultRetryPolicy())
	runner := pipeline.New(vocab.Default(), engine)
	return New(Config{Port: 0}, runner)
}

// multipartUpload builds a multipart body with one "file" part.
func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

const testResume = `Objective
Seeking a backend developer role building scalable services.

Projects
Inventory Tracker
Built a REST API with Flask and PostgreSQL, deployed to production with docker.

Education
B.S. Computer Science
`

func TestHandleAnalyze_FullResponse(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartUpload(t, "resume.txt", []byte(testResume))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	for _, key := range []string{
		"analysis_id", "detected_skills", "analysis",
		"project_analysis", "capability_analysis", "resume_grade", "sections_analyzed",
	} {
		assert.Contains(t, result, key)
	}

	var skills []string
	require.NoError(t, json.Unmarshal(result["detected_skills"], &skills))
	assert.Contains(t, skills, "flask")
	assert.Contains(t, skills, "docker")

	var grade struct {
		AIPowered bool `json:"ai_powered"`
	}
	require.NoError(t, json.Unmarshal(result["resume_grade"], &grade))
	assert.False(t, grade.AIPowered)
}

func TestHandleAnalyze_LegacyPath(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartUpload(t, "resume.txt", []byte(testResume))
	req := httptest.NewRequest(http.MethodPost, "/analyze/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleAnalyze_UnusableTextReturnsErrorObject(t *testing.T) {
	srv := newTestServer(t)

	body, contentType := multipartUpload(t, "resume.txt", []byte("hi"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	// Extraction failures report through the payload, not the status code.
	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Unable to extract text from resume.", result["error"])
}

func TestHandleAnalyze_MissingFile(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewBufferString("not multipart"))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result["error"], "file")
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleRoot(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Career Intelligence Engine")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrMissingFile{}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(&ErrFileTooLarge{Limit: 1}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrUnreadableUpload{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
