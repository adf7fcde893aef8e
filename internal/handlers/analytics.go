// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"foliocms/internal/auth"
	"foliocms/internal/middleware"
	"foliocms/internal/models"
	"foliocms/internal/store"
)

// topListLimit caps the entries in each stats ranking.
const topListLimit = 10

// Analytics groups the event tracking and stats HTTP handlers.
type Analytics struct {
	analytics *store.AnalyticsStore
	settings  *store.SettingsStore
	projects  *store.ProjectStore
	tokens    *auth.Tokens
}

// NewAnalytics creates a new Analytics handler group.
func NewAnalytics(analytics *store.AnalyticsStore, settings *store.SettingsStore, projects *store.ProjectStore, tokens *auth.Tokens) *Analytics {
	return &Analytics{analytics: analytics, settings: settings, projects: projects, tokens: tokens}
}

// trackRequest is the public tracking payload.
type trackRequest struct {
	EventType string          `json:"eventType"`
	EventName *string         `json:"eventName"`
	Page      *string         `json:"page"`
	ProjectID *uuid.UUID      `json:"projectId"`
	Referrer  *string         `json:"referrer"`
	SessionID *string         `json:"sessionId"`
	Country   *string         `json:"country"`
	Metadata  json.RawMessage `json:"metadata"`
}

// Track records one event. Events the current settings do not accept
// are dropped, and the response does not reveal whether the event was
// kept.
func (h *Analytics) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.EventType == "" {
		writeError(w, http.StatusBadRequest, "eventType is required")
		return
	}

	settings, err := h.settings.GetAnalytics()
	if err != nil {
		serverError(w, err)
		return
	}
	if settings == nil {
		defaults := models.DefaultAnalyticsSettings()
		settings = &defaults
	}

	accepted := settings.Accepts(req.EventType)
	if accepted && settings.ExcludeAdminViews && middleware.IsAuthenticated(h.tokens, r) {
		accepted = false
	}

	if accepted {
		ipHash := HashIP(middleware.ClientIP(r))
		event := &models.AnalyticsEvent{
			EventType: req.EventType,
			EventName: req.EventName,
			Page:      req.Page,
			ProjectID: req.ProjectID,
			IPHash:    &ipHash,
			Country:   req.Country,
			Referrer:  req.Referrer,
			SessionID: req.SessionID,
			Metadata:  req.Metadata,
		}
		if ua := r.UserAgent(); ua != "" {
			event.UserAgent = &ua
		}
		if err := h.analytics.Insert(event); err != nil {
			slog.Error("insert analytics event", "error", err)
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "ok"})
}

// Stats returns the aggregated dashboard payload for a lookback window.
// The period query parameter is in days, defaults to 30 and is clamped
// to [1, 365].
func (h *Analytics) Stats(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("period"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "period must be a number of days")
			return
		}
		days = parsed
	}
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	since := time.Now().AddDate(0, 0, -days)

	pageViews, err := h.analytics.CountByTypeSince(models.EventTypePageView, since)
	if err != nil {
		serverError(w, err)
		return
	}
	projectClicks, err := h.analytics.CountByTypeSince(models.EventTypeProjectClick, since)
	if err != nil {
		serverError(w, err)
		return
	}
	contacts, err := h.analytics.CountByTypeSince(models.EventTypeContactSubmit, since)
	if err != nil {
		serverError(w, err)
		return
	}
	viewsPerDay, err := h.analytics.ViewsPerDay(since)
	if err != nil {
		serverError(w, err)
		return
	}
	topPages, err := h.analytics.TopPages(since, topListLimit)
	if err != nil {
		serverError(w, err)
		return
	}
	topProjects, err := h.analytics.TopProjects(since, topListLimit)
	if err != nil {
		serverError(w, err)
		return
	}
	topCountries, err := h.analytics.TopCountries(since, topListLimit)
	if err != nil {
		serverError(w, err)
		return
	}
	technologies, err := h.projects.TechnologyUsage()
	if err != nil {
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AnalyticsStats{
		PeriodDays:         days,
		TotalPageViews:     pageViews,
		TotalProjectClicks: projectClicks,
		TotalContacts:      contacts,
		ViewsPerDay:        viewsPerDay,
		TopPages:           topPages,
		TopProjects:        topProjects,
		Technologies:       technologies,
		TopCountries:       topCountries,
	})
}
