// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"foliocms/internal/models"
	"foliocms/internal/store"
)

// Skills groups the skill HTTP handlers.
type Skills struct {
	store *store.SkillStore
}

// NewSkills creates a new Skills handler group.
func NewSkills(s *store.SkillStore) *Skills {
	return &Skills{store: s}
}

// List returns all skills grouped by type and ordered for display.
// Optional type and category query parameters narrow the result.
func (h *Skills) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.store.List()
	if err != nil {
		serverError(w, err)
		return
	}

	if t := models.SkillType(r.URL.Query().Get("type")); t != "" {
		if !t.Valid() {
			writeError(w, http.StatusBadRequest, "type must be main, workflow or soft")
			return
		}
		filtered := []models.Skill{}
		for _, sk := range skills {
			if sk.Type == t {
				filtered = append(filtered, sk)
			}
		}
		skills = filtered
	}
	if c := models.SkillCategory(r.URL.Query().Get("category")); c != "" {
		if !c.Valid() {
			writeError(w, http.StatusBadRequest, "category must be language, framework, tool or other")
			return
		}
		filtered := []models.Skill{}
		for _, sk := range skills {
			if sk.Category == c {
				filtered = append(filtered, sk)
			}
		}
		skills = filtered
	}

	writeListJSON(w, map[string]any{"skills": skills})
}

// Get returns a single skill by ID.
func (h *Skills) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	skill, err := h.store.FindByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if skill == nil {
		writeError(w, http.StatusNotFound, "skill not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "skill": skill})
}

// Create inserts a new skill. A zero display order means "append after
// the existing skills of its type".
func (h *Skills) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Skill
	if !decodeBody(w, r, &input) {
		return
	}
	if msg := validateSkill(&input); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.store.Create(&input)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "skill": created})
}

// Update merges the provided fields over the stored skill; fields
// absent from the body keep their current values.
func (h *Skills) Update(w http.ResponseWriter, r *http.Request) {
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
		writeError(w, http.StatusNotFound, "skill not found")
		return
	}

	merged := *existing
	if !decodeBody(w, r, &merged) {
		return
	}
	if msg := validateSkill(&merged); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.store.Update(id, &merged)
	if err != nil {
		serverError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "skill not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "skill": updated})
}

// Delete removes a skill.
func (h *Skills) Delete(w http.ResponseWriter, r *http.Request) {
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
		writeError(w, http.StatusNotFound, "skill not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Tools groups the HTTP handlers shared by the tools and soft skills
// endpoints; the entity and key names feed error messages and response
// envelopes.
type Tools struct {
	store    *store.ToolStore
	entity   string
	singular string
	plural   string
}

// NewTools creates the handler group for the tools endpoints.
func NewTools(s *store.ToolStore) *Tools {
	return &Tools{store: s, entity: "tool", singular: "tool", plural: "tools"}
}

// NewSoftSkills creates the handler group for the soft skills endpoints.
func NewSoftSkills(s *store.ToolStore) *Tools {
	return &Tools{store: s, entity: "soft skill", singular: "softSkill", plural: "softSkills"}
}

// List returns all rows ordered for display. An optional category
// query parameter narrows the result.
func (h *Tools) List(w http.ResponseWriter, r *http.Request) {
	tools, err := h.store.List()
	if err != nil {
		serverError(w, err)
		return
	}

	if c := r.URL.Query().Get("category"); c != "" {
		filtered := []models.Tool{}
		for _, t := range tools {
			if t.Category == c {
				filtered = append(filtered, t)
			}
		}
		tools = filtered
	}

	writeListJSON(w, map[string]any{h.plural: tools})
}

// Get returns a single row by ID.
func (h *Tools) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tool, err := h.store.FindByID(id)
	if err != nil {
		serverError(w, err)
		return
	}
	if tool == nil {
		writeError(w, http.StatusNotFound, h.entity+" not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, h.singular: tool})
}

// Create inserts a new row. A zero display order means "append after
// the existing rows".
func (h *Tools) Create(w http.ResponseWriter, r *http.Request) {
	var input models.Tool
	if !decodeBody(w, r, &input) {
		return
	}
	if msg := validateTool(&input); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.store.Create(&input)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, h.singular: created})
}

// Update merges the provided fields over the stored row; fields absent
// from the body keep their current values.
func (h *Tools) Update(w http.ResponseWriter, r *http.Request) {
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
		writeError(w, http.StatusNotFound, h.entity+" not found")
		return
	}

	merged := *existing
	if !decodeBody(w, r, &merged) {
		return
	}
	if msg := validateTool(&merged); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.store.Update(id, &merged)
	if err != nil {
		serverError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, h.entity+" not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, h.singular: updated})
}

// Delete removes a row.
func (h *Tools) Delete(w http.ResponseWriter, r *http.Request) {
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
		writeError(w, http.StatusNotFound, h.entity+" not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
