// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"foliocms/internal/auth"
	"foliocms/internal/database"
	"foliocms/internal/mail"
	"foliocms/internal/store"
)

// fakeSender implements mail.Sender and records every message.
type fakeSender struct {
	mu   sync.Mutex
	sent []*mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m *mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeSender) messages() []*mail.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*mail.Message(nil), f.sent...)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "foliocms")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "foliocms")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Tokens    *auth.Tokens
	Sender    *fakeSender
	Users     *store.UserStore
	Projects  *store.ProjectStore
	Settings  *store.SettingsStore
	Site      *store.SiteContentStore
	Analytics *store.AnalyticsStore
	Auth      *Auth
	Content   *Content
	Contact   *Contact
	Track     *Analytics
}

// newTestEnv creates a complete test environment with all handler
// dependencies. SMTP is replaced by a fakeSender.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	tokens := auth.NewTokens("handler-test-secret", false)
	sender := &fakeSender{}

	users := store.NewUserStore(db)
	projects := store.NewProjectStore(db)
	settings := store.NewSettingsStore(db)
	site := store.NewSiteContentStore(db)
	analytics := store.NewAnalyticsStore(db)

	return &testEnv{
		DB:        db,
		Tokens:    tokens,
		Sender:    sender,
		Users:     users,
		Projects:  projects,
		Settings:  settings,
		Site:      site,
		Analytics: analytics,
		Auth:      NewAuth(tokens, users),
		Content:   NewContent(site, settings),
		Contact:   NewContact(settings, analytics, sender),
		Track:     NewAnalytics(analytics, settings, projects, tokens),
	}
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeResponse unmarshals a recorded JSON response.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// authedRequest attaches a valid admin token cookie for the given user.
func authedRequest(t *testing.T, env *testEnv, r *http.Request, username string) *http.Request {
	t.Helper()
	user, err := env.Users.FindByUsername(username)
	if err != nil || user == nil {
		t.Fatalf("authedRequest: user %q not found: %v", username, err)
	}
	token, err := env.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	return r
}

// cleanUsers removes test users by username.
func cleanUsers(t *testing.T, db *sql.DB, usernames ...string) {
	t.Helper()
	for _, u := range usernames {
		db.Exec("DELETE FROM users WHERE username = $1", u)
	}
}

// resetSingletons removes the singleton settings rows touched by a test
// so later tests see defaults again.
func resetSingletons(t *testing.T, db *sql.DB, tables ...string) {
	t.Helper()
	for _, table := range tables {
		db.Exec("DELETE FROM " + table + " WHERE id = 1")
	}
}

// cleanEventsByType removes analytics events created by a test.
func cleanEventsByType(t *testing.T, db *sql.DB, eventTypes ...string) {
	t.Helper()
	for _, et := range eventTypes {
		db.Exec("DELETE FROM analytics_events WHERE event_type = $1", et)
	}
}
