// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foliocms/internal/models"
)

func TestTrack(t *testing.T) {
	env := newTestEnv(t)
	resetSingletons(t, env.DB, "analytics_settings")
	t.Cleanup(func() { cleanEventsByType(t, env.DB, models.EventTypePageView) })
	cleanEventsByType(t, env.DB, models.EventTypePageView)

	page := "/projects"
	rec := httptest.NewRecorder()
	env.Track.Track(rec, jsonRequest(t, "POST", "/api/analytics/track", map[string]any{
		"eventType": models.EventTypePageView,
		"page":      page,
	}))

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}

	var count int
	if err := env.DB.QueryRow(
		"SELECT COUNT(*) FROM analytics_events WHERE event_type = $1 AND page = $2",
		models.EventTypePageView, page,
	).Scan(&count); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 1 {
		t.Errorf("recorded %d events, want 1", count)
	}
}

func TestTrackMissingEventType(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Track.Track(rec, jsonRequest(t, "POST", "/api/analytics/track", map[string]any{
		"page": "/",
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTrackDisabled(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { resetSingletons(t, env.DB, "analytics_settings") })
	t.Cleanup(func() { cleanEventsByType(t, env.DB, models.EventTypePageView) })
	cleanEventsByType(t, env.DB, models.EventTypePageView)

	settings := models.DefaultAnalyticsSettings()
	settings.Enabled = false
	if _, err := env.Settings.UpsertAnalytics(&settings); err != nil {
		t.Fatalf("upsert settings: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Track.Track(rec, jsonRequest(t, "POST", "/api/analytics/track", map[string]any{
		"eventType": models.EventTypePageView,
		"page":      "/",
	}))

	// The response never reveals whether the event was kept.
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202 even when tracking is off", rec.Code)
	}

	var count int
	if err := env.DB.QueryRow(
		"SELECT COUNT(*) FROM analytics_events WHERE event_type = $1",
		models.EventTypePageView,
	).Scan(&count); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 0 {
		t.Errorf("recorded %d events with tracking disabled, want 0", count)
	}
}

func TestTrackExcludesAdmin(t *testing.T) {
	env := newTestEnv(t)
	resetSingletons(t, env.DB, "analytics_settings")
	cleanUsers(t, env.DB, "track-admin-test")
	t.Cleanup(func() { cleanUsers(t, env.DB, "track-admin-test") })
	t.Cleanup(func() { cleanEventsByType(t, env.DB, models.EventTypePageView) })
	cleanEventsByType(t, env.DB, models.EventTypePageView)

	if _, err := env.Users.Create("track-admin-test", "correct-horse"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	req := jsonRequest(t, "POST", "/api/analytics/track", map[string]any{
		"eventType": models.EventTypePageView,
		"page":      "/",
	})
	req = authedRequest(t, env, req, "track-admin-test")

	rec := httptest.NewRecorder()
	env.Track.Track(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rec.Code)
	}

	var count int
	if err := env.DB.QueryRow(
		"SELECT COUNT(*) FROM analytics_events WHERE event_type = $1",
		models.EventTypePageView,
	).Scan(&count); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 0 {
		t.Errorf("admin page view was recorded, want excluded")
	}
}

func TestTrackCustomEvent(t *testing.T) {
	env := newTestEnv(t)
	t.Cleanup(func() { resetSingletons(t, env.DB, "analytics_settings") })
	t.Cleanup(func() { cleanEventsByType(t, env.DB, "newsletter_signup", "unknown_event") })

	settings := models.DefaultAnalyticsSettings()
	settings.CustomEvents = []string{"newsletter_signup"}
	if _, err := env.Settings.UpsertAnalytics(&settings); err != nil {
		t.Fatalf("upsert settings: %v", err)
	}

	for _, tc := range []struct {
		eventType string
		want      int
	}{
		{"newsletter_signup", 1},
		{"unknown_event", 0},
	} {
		rec := httptest.NewRecorder()
		env.Track.Track(rec, jsonRequest(t, "POST", "/api/analytics/track", map[string]any{
			"eventType": tc.eventType,
		}))
		if rec.Code != http.StatusAccepted {
			t.Fatalf("%s: status = %d", tc.eventType, rec.Code)
		}

		var count int
		if err := env.DB.QueryRow(
			"SELECT COUNT(*) FROM analytics_events WHERE event_type = $1", tc.eventType,
		).Scan(&count); err != nil {
			t.Fatalf("count events: %v", err)
		}
		if count != tc.want {
			t.Errorf("%s: recorded %d events, want %d", tc.eventType, count, tc.want)
		}
	}
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	resetSingletons(t, env.DB, "analytics_settings")
	t.Cleanup(func() {
		cleanEventsByType(t, env.DB, models.EventTypePageView, models.EventTypeContactSubmit)
	})
	cleanEventsByType(t, env.DB, models.EventTypePageView, models.EventTypeContactSubmit)

	page := "/stats-test"
	for i := 0; i < 3; i++ {
		if err := env.Analytics.Insert(&models.AnalyticsEvent{
			EventType: models.EventTypePageView,
			Page:      &page,
		}); err != nil {
			t.Fatalf("insert event: %v", err)
		}
	}
	if err := env.Analytics.Insert(&models.AnalyticsEvent{
		EventType: models.EventTypeContactSubmit,
	}); err != nil {
		t.Fatalf("insert event: %v", err)
	}

	rec := httptest.NewRecorder()
	env.Track.Stats(rec, httptest.NewRequest("GET", "/api/analytics/stats?period=7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var stats models.AnalyticsStats
	decodeResponse(t, rec, &stats)
	if stats.PeriodDays != 7 {
		t.Errorf("PeriodDays = %d, want 7", stats.PeriodDays)
	}
	if stats.TotalPageViews != 3 {
		t.Errorf("TotalPageViews = %d, want 3", stats.TotalPageViews)
	}
	if stats.TotalContacts != 1 {
		t.Errorf("TotalContacts = %d, want 1", stats.TotalContacts)
	}

	found := false
	for _, p := range stats.TopPages {
		if p.Page == page {
			found = true
			if p.Count != 3 {
				t.Errorf("top page count = %d, want 3", p.Count)
			}
		}
	}
	if !found {
		t.Errorf("page %q missing from top pages: %v", page, stats.TopPages)
	}
}

func TestStatsDaysParam(t *testing.T) {
	env := newTestEnv(t)

	t.Run("non-numeric", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.Track.Stats(rec, httptest.NewRequest("GET", "/api/analytics/stats?period=soon", nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("clamped high", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.Track.Stats(rec, httptest.NewRequest("GET", "/api/analytics/stats?period=9000", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var stats models.AnalyticsStats
		decodeResponse(t, rec, &stats)
		if stats.PeriodDays != 365 {
			t.Errorf("PeriodDays = %d, want 365", stats.PeriodDays)
		}
	})

	t.Run("clamped low", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.Track.Stats(rec, httptest.NewRequest("GET", "/api/analytics/stats?period=-3", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var stats models.AnalyticsStats
		decodeResponse(t, rec, &stats)
		if stats.PeriodDays != 1 {
			t.Errorf("PeriodDays = %d, want 1", stats.PeriodDays)
		}
	})
}
