// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files managed by net/http.
const multipartMemory = 8 << 20

// UploadLimits bounds the multipart requests accepted by a handler.
type UploadLimits struct {
	Dir      string
	MaxBytes int64
}

// Uploads tracks the local copies of multipart files received by one request.
//
// # Lifecycle
//
// Files are written under the configured upload directory and must be removed
// with [Uploads.Cleanup] once the request finishes, whatever the outcome.
type Uploads struct {
	paths map[string]string
}

/*
ParseUploads parses a multipart request and stores each listed file field on disk.

Description: Absent fields are not an error; callers decide which files are
required. Malformed or oversized bodies are reported as ValidationError.

Parameters:
  - writer: http.ResponseWriter (used to cap the body size)
  - request: *http.Request
  - limits: UploadLimits (Local upload directory and body size cap)
  - fields: ...string (Multipart file field names)

Returns:
  - *Uploads: Local file paths keyed by field
  - error: ValidationError or filesystem failures
*/
func ParseUploads(writer http.ResponseWriter, request *http.Request, limits UploadLimits, fields ...string) (*Uploads, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, limits.MaxBytes)

	if err := request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperr.ValidationError(fmt.Sprintf("Upload exceeds %d bytes", limits.MaxBytes))
		}
		return nil, apperr.ValidationError("Invalid multipart payload")
	}

	uploads := &Uploads{paths: make(map[string]string, len(fields))}

	for _, field := range fields {
		path, err := saveFormFile(request, field, limits.Dir)
		if err != nil {
			uploads.Cleanup()
			return nil, err
		}
		if path != "" {
			uploads.paths[field] = path
		}
	}

	return uploads, nil
}

// Path returns the local path stored for field, or "" if the field was absent.
func (uploads *Uploads) Path(field string) string {
	if uploads == nil {
		return ""
	}
	return uploads.paths[field]
}

// Cleanup removes every stored file. Safe to call on a nil receiver.
func (uploads *Uploads) Cleanup() {
	if uploads == nil {
		return
	}
	for _, path := range uploads.paths {
		_ = os.Remove(path)
	}
}

// FormValue returns a trimmed non-file multipart value.
func FormValue(request *http.Request, key string) string {
	return strings.TrimSpace(request.FormValue(key))
}

func saveFormFile(request *http.Request, field, dir string) (string, error) {
	file, header, err := request.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", apperr.ValidationError("Invalid file field: " + field)
	}
	defer file.Close()

	destination, err := os.CreateTemp(dir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", fmt.Errorf("requestutil: create temp file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, file); err != nil {
		_ = os.Remove(destination.Name())
		return "", fmt.Errorf("requestutil: store %s: %w", field, err)
	}

	return destination.Name(), nil
}
