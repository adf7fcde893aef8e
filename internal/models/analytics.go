// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Built-in analytics event types. Additional types can be allowed through
// AnalyticsSettings.CustomEvents.
const (
	EventTypePageView      = "page_view"
	EventTypeProjectClick  = "project_click"
	EventTypeContactSubmit = "contact_submit"
)

// AnalyticsEvent is one row of the append-only event log. IPHash holds a
// one-way SHA-256 digest of the caller address; the raw IP is never stored.
type AnalyticsEvent struct {
	ID        uuid.UUID       `json:"id"`
	EventType string          `json:"eventType"`
	EventName *string         `json:"eventName,omitempty"`
	Page      *string         `json:"page,omitempty"`
	ProjectID *uuid.UUID      `json:"projectId,omitempty"`
	UserAgent *string         `json:"userAgent,omitempty"`
	IPHash    *string         `json:"-"`
	Country   *string         `json:"country,omitempty"`
	Referrer  *string         `json:"referrer,omitempty"`
	SessionID *string         `json:"sessionId,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"timestamp"`
}

// DayCount is one bucket of the per-day view aggregation.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// PageCount is one entry of the top-pages aggregation.
type PageCount struct {
	Page  string `json:"page"`
	Count int    `json:"count"`
}

// ProjectCount is one entry of the top-projects aggregation, joined
// against the project title.
type ProjectCount struct {
	ProjectID uuid.UUID `json:"projectId"`
	Title     string    `json:"title"`
	Count     int       `json:"count"`
}

// CountryCount is one entry of the top-countries aggregation.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// TechnologyUsage is the share of projects using a given technology.
type TechnologyUsage struct {
	Technology string  `json:"technology"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AnalyticsStats is the full aggregation payload returned to the admin
// dashboard for a lookback window.
type AnalyticsStats struct {
	PeriodDays         int               `json:"periodDays"`
	TotalPageViews     int               `json:"totalPageViews"`
	TotalProjectClicks int               `json:"totalProjectClicks"`
	TotalContacts      int               `json:"totalContacts"`
	ViewsPerDay        []DayCount        `json:"viewsPerDay"`
	TopPages           []PageCount       `json:"topPages"`
	TopProjects        []ProjectCount    `json:"topProjects"`
	Technologies       []TechnologyUsage `json:"technologies"`
	TopCountries       []CountryCount    `json:"topCountries"`
}
