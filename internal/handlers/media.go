// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"foliocms/internal/models"
	"foliocms/internal/storage"
	"foliocms/internal/store"
)

// maxUploadSize is the maximum allowed file upload size (10 MB).
const maxUploadSize = 10 << 20

// allowedMediaTypes lists the content types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// Media groups the upload and media library HTTP handlers.
type Media struct {
	store   *store.MediaStore
	storage *storage.Client
}

// NewMedia creates a new Media handler group. storage may be nil when
// object storage is not configured.
func NewMedia(s *store.MediaStore, st *storage.Client) *Media {
	return &Media{store: s, storage: st}
}

// Upload stores one multipart file in the bucket and records it.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 10 MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large, maximum size is 10 MB")
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		serverError(w, err)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVG detection: DetectContentType returns text/xml or application/xml for SVGs.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file type %q is not allowed", contentType))
		return
	}

	// Seek back to start after sniffing.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		serverError(w, err)
		return
	}

	// Generate a unique storage key.
	now := time.Now()
	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)

	if err := h.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	created, err := h.store.Create(&models.Media{
		Filename:    header.Filename,
		Key:         key,
		ContentType: contentType,
		Size:        header.Size,
		URL:         h.storage.FileURL(key),
	})
	if err != nil {
		// The object is uploaded but untracked; remove it again.
		if delErr := h.storage.Delete(r.Context(), key); delErr != nil {
			slog.Error("orphan cleanup failed", "error", delErr, "key", key)
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "media": created})
}

// List returns the media library, newest first.
func (h *Media) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List()
	if err != nil {
		serverError(w, err)
		return
	}
	writeListJSON(w, map[string]any{"media": items})
}

// Delete removes a media item from both the bucket and the database.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.store.FindByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "media not found")
		return
	}

	if h.storage != nil {
		if err := h.storage.Delete(r.Context(), item.Key); err != nil {
			slog.Error("s3 delete failed", "error", err, "key", item.Key)
		}
	}

	if _, err := h.store.Delete(id); err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
