// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"foliocms/internal/models"
	"foliocms/internal/store"
)

// Content groups the singleton content and settings HTTP handlers.
// Every GET succeeds: when no row has been saved yet the built-in
// default is returned, so the public site never needs a fallback.
// Every PUT merges the provided fields over the stored row (or the
// default when nothing is stored) before upserting, so partial bodies
// preserve unedited fields.
type Content struct {
	content  *store.SiteContentStore
	settings *store.SettingsStore
}

// NewContent creates a new Content handler group.
func NewContent(content *store.SiteContentStore, settings *store.SettingsStore) *Content {
	return &Content{content: content, settings: settings}
}

// GetHero returns the hero section, or the default when unset.
func (h *Content) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.content.GetHero()
	if err != nil {
		serverError(w, err)
		return
	}
	if hero == nil {
		defaultHero := models.DefaultHero()
		hero = &defaultHero
	}
	writeJSON(w, http.StatusOK, hero)
}

// PutHero saves the hero section.
func (h *Content) PutHero(w http.ResponseWriter, r *http.Request) {
	base, err := h.content.GetHero()
	if err != nil {
		serverError(w, err)
		return
	}
	if base == nil {
		defaults := models.DefaultHero()
		base = &defaults
	}
	if !decodeBody(w, r, base) {
		return
	}

	saved, err := h.content.UpsertHero(base)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetAbout returns the about section, or the default when unset.
func (h *Content) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.content.GetAbout()
	if err != nil {
		serverError(w, err)
		return
	}
	if about == nil {
		defaultAbout := models.DefaultAbout()
		about = &defaultAbout
	}
	writeJSON(w, http.StatusOK, about)
}

// PutAbout saves the about section.
func (h *Content) PutAbout(w http.ResponseWriter, r *http.Request) {
	base, err := h.content.GetAbout()
	if err != nil {
		serverError(w, err)
		return
	}
	if base == nil {
		defaults := models.DefaultAbout()
		base = &defaults
	}
	if !decodeBody(w, r, base) {
		return
	}

	saved, err := h.content.UpsertAbout(base)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetFooter returns the footer section, or the default when unset.
func (h *Content) GetFooter(w http.ResponseWriter, r *http.Request) {
	footer, err := h.content.GetFooter()
	if err != nil {
		serverError(w, err)
		return
	}
	if footer == nil {
		defaultFooter := models.DefaultFooter()
		footer = &defaultFooter
	}
	writeJSON(w, http.StatusOK, footer)
}

// PutFooter saves the footer section.
func (h *Content) PutFooter(w http.ResponseWriter, r *http.Request) {
	base, err := h.content.GetFooter()
	if err != nil {
		serverError(w, err)
		return
	}
	if base == nil {
		defaults := models.DefaultFooter()
		base = &defaults
	}
	if !decodeBody(w, r, base) {
		return
	}

	saved, err := h.content.UpsertFooter(base)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetNavigation returns the navigation settings, or the default when unset.
func (h *Content) GetNavigation(w http.ResponseWriter, r *http.Request) {
	nav, err := h.settings.GetNavigation()
	if err != nil {
		serverError(w, err)
		return
	}
	if nav == nil {
		defaultNav := models.DefaultNavigation()
		nav = &defaultNav
	}
	writeJSON(w, http.StatusOK, nav)
}

// PutNavigation saves the navigation settings.
func (h *Content) PutNavigation(w http.ResponseWriter, r *http.Request) {
	base, err := h.settings.GetNavigation()
	if err != nil {
		serverError(w, err)
		return
	}
	if base == nil {
		defaults := models.DefaultNavigation()
		base = &defaults
	}
	if !decodeBody(w, r, base) {
		return
	}

	saved, err := h.settings.UpsertNavigation(base)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetSeo returns the SEO settings, or the default when unset.
func (h *Content) GetSeo(w http.ResponseWriter, r *http.Request) {
	seo, err := h.settings.GetSeo()
	if err != nil {
		serverError(w, err)
		return
	}
	if seo == nil {
		defaultSeo := models.DefaultSeo()
		seo = &defaultSeo
	}
	writeJSON(w, http.StatusOK, seo)
}

// PutSeo saves the SEO settings.
func (h *Content) PutSeo(w http.ResponseWriter, r *http.Request) {
	base, err := h.settings.GetSeo()
	if err != nil {
		serverError(w, err)
		return
	}
	if base == nil {
		defaults := models.DefaultSeo()
		base = &defaults
	}
	if !decodeBody(w, r, base) {
		return
	}

	saved, err := h.settings.UpsertSeo(base)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetContactSettings returns the contact settings, or the default when unset.
func (h *Content) GetContactSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetContact()
	if err != nil {
		serverError(w, err)
		return
	}
	if settings == nil {
		defaults := models.DefaultContactSettings()
		settings = &defaults
	}
	writeJSON(w, http.StatusOK, settings)
}

// PutContactSettings saves the contact settings.
func (h *Content) PutContactSettings(w http.ResponseWriter, r *http.Request) {
	base, err := h.settings.GetContact()
	if err != nil {
		serverError(w, err)
		return
	}
	if base == nil {
		defaults := models.DefaultContactSettings()
		base = &defaults
	}
	if !decodeBody(w, r, base) {
		return
	}

	if base.AdminEmail != "" && !validEmail(base.AdminEmail) {
		writeError(w, http.StatusBadRequest, "Admin email is not a valid address.")
		return
	}
	for _, cc := range base.CcEmails {
		if !validEmail(cc) {
			writeError(w, http.StatusBadRequest, "CC list contains an invalid address.")
			return
		}
	}

	saved, err := h.settings.UpsertContact(base)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// GetAnalyticsSettings returns the analytics settings, or the default when unset.
func (h *Content) GetAnalyticsSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetAnalytics()
	if err != nil {
		serverError(w, err)
		return
	}
	if settings == nil {
		defaults := models.DefaultAnalyticsSettings()
		settings = &defaults
	}
	writeJSON(w, http.StatusOK, settings)
}

// PutAnalyticsSettings saves the analytics settings.
func (h *Content) PutAnalyticsSettings(w http.ResponseWriter, r *http.Request) {
	base, err := h.settings.GetAnalytics()
	if err != nil {
		serverError(w, err)
		return
	}
	if base == nil {
		defaults := models.DefaultAnalyticsSettings()
		base = &defaults
	}
	if !decodeBody(w, r, base) {
		return
	}

	if base.RetentionDays < 1 {
		writeError(w, http.StatusBadRequest, "Retention must be at least 1 day.")
		return
	}

	saved, err := h.settings.UpsertAnalytics(base)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
