// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"

	"foliocms/internal/mail"
	"foliocms/internal/middleware"
	"foliocms/internal/models"
	"foliocms/internal/store"
)

// Contact handles the public contact form. The route is rate limited
// upstream; this handler validates, filters spam, renders the templates
// and sends the notification (plus optional auto-reply) over SMTP.
type Contact struct {
	settings  *store.SettingsStore
	analytics *store.AnalyticsStore
	sender    mail.Sender
}

// NewContact creates a new Contact handler. sender may be nil when SMTP
// is not configured.
func NewContact(settings *store.SettingsStore, analytics *store.AnalyticsStore, sender mail.Sender) *Contact {
	return &Contact{settings: settings, analytics: analytics, sender: sender}
}

// contactRequest is the public form payload. Website is a honeypot: the
// real form never fills it, bots usually do.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Website string `json:"website"`
}

// Submit processes one contact form submission.
func (h *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	settings, err := h.settings.GetContact()
	if err != nil {
		serverError(w, err)
		return
	}
	if settings == nil {
		defaults := models.DefaultContactSettings()
		settings = &defaults
	}

	if msg := validateContact(req.Name, req.Email, req.Subject, req.Message); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Honeypot hit: report success so the bot learns nothing, send nothing.
	if strings.TrimSpace(req.Website) != "" {
		slog.Info("contact honeypot triggered", "ip", middleware.ClientIP(r))
		writeJSON(w, http.StatusOK, map[string]string{"message": settings.SuccessMessage})
		return
	}

	if looksLikeSpam(req.Message) {
		writeError(w, http.StatusBadRequest, "Message was rejected.")
		return
	}

	if h.sender == nil || settings.AdminEmail == "" {
		slog.Warn("contact submission dropped: mail not configured")
		writeError(w, http.StatusServiceUnavailable, settings.ErrorMessage)
		return
	}

	values := map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	}

	err = h.sender.Send(r.Context(), &mail.Message{
		To:      settings.AdminEmail,
		Cc:      settings.CcEmails,
		ReplyTo: req.Email,
		Subject: mail.RenderSubject(settings.EmailSubject, values),
		HTML:    mail.Render(settings.EmailTemplate, values),
	})
	if err != nil {
		slog.Error("contact notification failed", "error", err)
		writeError(w, http.StatusInternalServerError, settings.ErrorMessage)
		return
	}

	// Auto-reply failures are logged, not surfaced: the admin already
	// has the message.
	if settings.AutoReplyEnabled {
		err := h.sender.Send(r.Context(), &mail.Message{
			To:      req.Email,
			Subject: mail.RenderSubject(settings.AutoReplySubject, values),
			HTML:    mail.Render(settings.AutoReplyTemplate, values),
		})
		if err != nil {
			slog.Error("contact auto-reply failed", "error", err)
		}
	}

	h.recordSubmission(r)

	writeJSON(w, http.StatusOK, map[string]string{"message": settings.SuccessMessage})
}

// recordSubmission logs a contact_submit analytics event when tracking
// allows it. Analytics failures never affect the form response.
func (h *Contact) recordSubmission(r *http.Request) {
	analytics, err := h.settings.GetAnalytics()
	if err != nil {
		slog.Error("load analytics settings", "error", err)
		return
	}
	if analytics == nil {
		defaults := models.DefaultAnalyticsSettings()
		analytics = &defaults
	}
	if !analytics.Accepts(models.EventTypeContactSubmit) {
		return
	}

	ipHash := HashIP(middleware.ClientIP(r))
	event := &models.AnalyticsEvent{
		EventType: models.EventTypeContactSubmit,
		IPHash:    &ipHash,
	}
	if ua := r.UserAgent(); ua != "" {
		event.UserAgent = &ua
	}
	if err := h.analytics.Insert(event); err != nil {
		slog.Error("record contact event", "error", err)
	}
}

// spamKeywords are phrases that only ever show up in junk submissions.
var spamKeywords = []string{
	"viagra", "casino", "crypto investment", "forex signals",
	"seo services", "buy followers", "work from home opportunity",
}

// scriptMarkers catch naive injection attempts pasted into the message.
var scriptMarkers = []string{"<script", "javascript:", "onerror=", "onload="}

// looksLikeSpam applies cheap heuristics to the message body. Any URL
// is grounds for rejection: the form is for starting a conversation,
// and link-carrying messages are overwhelmingly junk.
func looksLikeSpam(message string) bool {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") {
		return true
	}
	for _, kw := range spamKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	for _, marker := range scriptMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// HashIP returns the hex SHA-256 digest of an IP address. Only the
// digest is ever stored; the raw address never reaches the database.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}
