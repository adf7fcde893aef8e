// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"foliocms/internal/models"
	"foliocms/internal/store"
)

// Experiences groups the experience HTTP handlers.
type Experiences struct {
	store *store.ExperienceStore
}

// NewExperiences creates a new Experiences handler group.
func NewExperiences(s *store.ExperienceStore) *Experiences {
	return &Experiences{store: s}
}

// List returns all experiences grouped by type and ordered for display.
// An optional type query parameter narrows the result to work or
// education entries.
func (h *Experiences) List(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.store.List()
	if err != nil {
		serverError(w, err)
		return
	}

	if t := models.ExperienceType(r.URL.Query().Get("type")); t != "" {
		if !t.Valid() {
			writeError(w, http.StatusBadRequest, "type must be work or education")
			return
		}
		filtered := []models.Experience{}
		for _, e := range experiences {
			if e.Type == t {
				filtered = append(filtered, e)
			}
		}
		experiences = filtered
	}

	writeListJSON(w, map[string]any{"experiences": experiences})
}

// Get returns a single experience by ID.
func (h *Experiences) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	experience, err := h.store.FindByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if experience == nil {
		writeError(w, http.StatusNotFound, "experience not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "experience": experience})
}

// Create inserts a new experience. A zero display order means "append
// after the existing entries of its type".
func (h *Experiences) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Experience
	if !decodeBody(w, r, &input) {
		return
	}
	if msg := validateExperience(&input); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.store.Create(&input)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "experience": created})
}

// Update merges the provided fields over the stored experience; fields
// absent from the body keep their current values.
func (h *Experiences) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.store.FindByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "experience not found")
		return
	}

	merged := *existing
	if !decodeBody(w, r, &merged) {
		return
	}
	if msg := validateExperience(&merged); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.store.Update(id, &merged)
	if err != nil {
		serverError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "experience not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "experience": updated})
}

// Delete removes an experience.
func (h *Experiences) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.store.Delete(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "experience not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Reorder applies a batch of display-order assignments atomically.
func (h *Experiences) Reorder(w http.ResponseWriter, r *http.Request) {
	var input []models.ExperienceOrder
	if !decodeBody(w, r, &input) {
		return
	}
	if len(input) == 0 {
		writeError(w, http.StatusBadRequest, "reorder batch is empty")
		return
	}

	if err := h.store.Reorder(input); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "reorder references an unknown experience")
			return
		}
		serverError(w, err)
		return
	}

	experiences, err := h.store.List()
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "experiences": experiences})
}
