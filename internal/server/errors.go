package server

import (
	"fmt"
	"net/http"
)

// ErrMissingFile indicates the upload form did not include a resume file
type ErrMissingFile struct{}

func (e *ErrMissingFile) Error() string {
	return "missing form field: file"
}

// ErrFileTooLarge indicates the uploaded file exceeded the size limit
type ErrFileTooLarge struct {
	Limit int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("uploaded file exceeds %d bytes", e.Limit)
}

// ErrUnreadableUpload indicates the uploaded file could not be read
type ErrUnreadableUpload struct {
	Err error
}

func (e *ErrUnreadableUpload) Error() string {
	return fmt.Sprintf("failed to read upload: %v", e.Err)
}

func (e *ErrUnreadableUpload) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingFile:
		return http.StatusBadRequest
	case *ErrFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case *ErrUnreadableUpload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
