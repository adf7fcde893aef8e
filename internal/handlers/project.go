// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"foliocms/internal/models"
	"foliocms/internal/store"
)

// Projects groups the project HTTP handlers.
type Projects struct {
	store *store.ProjectStore
}

// NewProjects creates a new Projects handler group.
func NewProjects(s *store.ProjectStore) *Projects {
	return &Projects{store: s}
}

// List returns all projects ordered for display.
func (h *Projects) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.List()
	if err != nil {
		serverError(w, err)
		return
	}
	writeListJSON(w, map[string]any{"projects": projects})
}

// Get returns a single project by ID.
func (h *Projects) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	project, err := h.store.FindByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "project": project})
}

// Create inserts a new project. A zero display order means "append
// after the existing projects".
func (h *Projects) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Project
	if !decodeBody(w, r, &input) {
		return
	}
	if msg := validateProject(&input); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.store.Create(&input)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "project": created})
}

// Update merges the provided fields over the stored project; fields
// absent from the body keep their current values.
func (h *Projects) Update(w http.ResponseWriter, r *http.Request) {
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
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	merged := *existing
	if !decodeBody(w, r, &merged) {
		return
	}
	if msg := validateProject(&merged); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.store.Update(id, &merged)
	if err != nil {
		serverError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "project": updated})
}

// Delete removes a project.
func (h *Projects) Delete(w http.ResponseWriter, r *http.Request) {
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
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
