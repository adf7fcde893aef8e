// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"foliocms/internal/models"
)

// AnalyticsStore handles the append-only event log and its aggregations.
type AnalyticsStore struct {
	db *sql.DB
}

// NewAnalyticsStore creates a new AnalyticsStore with the given database connection.
func NewAnalyticsStore(db *sql.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// Insert appends one event to the log.
func (s *AnalyticsStore) Insert(e *models.AnalyticsEvent) error {
	var metadata any
	if len(e.Metadata) > 0 {
		metadata = []byte(e.Metadata)
	}
	_, err := s.db.Exec(`
		INSERT INTO analytics_events (event_type, event_name, page, project_id, user_agent, ip_hash, country, referrer, session_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, e.EventType, e.EventName, e.Page, e.ProjectID, e.UserAgent, e.IPHash, e.Country, e.Referrer, e.SessionID, metadata)
	if err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

// CountByTypeSince returns how many events of a type were recorded
// since the given time.
func (s *AnalyticsStore) CountByTypeSince(eventType string, since time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM analytics_events
		WHERE event_type = $1 AND created_at >= $2
	`, eventType, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

// ViewsPerDay buckets page views by calendar day since the given time.
// Days with no views are absent from the result.
func (s *AnalyticsStore) ViewsPerDay(since time.Time) ([]models.DayCount, error) {
	rows, err := s.db.Query(`
		SELECT to_char(created_at::date, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM analytics_events
		WHERE event_type = $1 AND created_at >= $2
		GROUP BY day ORDER BY day ASC
	`, models.EventTypePageView, since)
	if err != nil {
		return nil, fmt.Errorf("views per day: %w", err)
	}
	defer rows.Close()

	days := []models.DayCount{}
	for rows.Next() {
		var d models.DayCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// TopPages returns the most viewed pages since the given time.
func (s *AnalyticsStore) TopPages(since time.Time, limit int) ([]models.PageCount, error) {
	rows, err := s.db.Query(`
		SELECT page, COUNT(*) AS views
		FROM analytics_events
		WHERE event_type = $1 AND created_at >= $2 AND page IS NOT NULL
		GROUP BY page ORDER BY views DESC LIMIT $3
	`, models.EventTypePageView, since, limit)
	if err != nil {
		return nil, fmt.Errorf("top pages: %w", err)
	}
	defer rows.Close()

	pages := []models.PageCount{}
	for rows.Next() {
		var p models.PageCount
		if err := rows.Scan(&p.Page, &p.Count); err != nil {
			return nil, fmt.Errorf("scan page count: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// TopProjects returns the most clicked projects since the given time,
// joined against the project title. Clicks on deleted projects are
// excluded by the join.
func (s *AnalyticsStore) TopProjects(since time.Time, limit int) ([]models.ProjectCount, error) {
	rows, err := s.db.Query(`
		SELECT e.project_id, p.title, COUNT(*) AS clicks
		FROM analytics_events e
		JOIN projects p ON p.id = e.project_id
		WHERE e.event_type = $1 AND e.created_at >= $2
		GROUP BY e.project_id, p.title ORDER BY clicks DESC LIMIT $3
	`, models.EventTypeProjectClick, since, limit)
	if err != nil {
		return nil, fmt.Errorf("top projects: %w", err)
	}
	defer rows.Close()

	projects := []models.ProjectCount{}
	for rows.Next() {
		var p models.ProjectCount
		if err := rows.Scan(&p.ProjectID, &p.Title, &p.Count); err != nil {
			return nil, fmt.Errorf("scan project count: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// TopCountries returns the countries with the most page views since the
// given time. Events without a country are skipped.
func (s *AnalyticsStore) TopCountries(since time.Time, limit int) ([]models.CountryCount, error) {
	rows, err := s.db.Query(`
		SELECT country, COUNT(*) AS views
		FROM analytics_events
		WHERE event_type = $1 AND created_at >= $2 AND country IS NOT NULL AND country <> ''
		GROUP BY country ORDER BY views DESC LIMIT $3
	`, models.EventTypePageView, since, limit)
	if err != nil {
		return nil, fmt.Errorf("top countries: %w", err)
	}
	defer rows.Close()

	countries := []models.CountryCount{}
	for rows.Next() {
		var c models.CountryCount
		if err := rows.Scan(&c.Country, &c.Count); err != nil {
			return nil, fmt.Errorf("scan country count: %w", err)
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// DeleteOlderThan removes events created before the cutoff and returns
// how many rows were deleted.
func (s *AnalyticsStore) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM analytics_events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete old events: %w", err)
	}
	return n, nil
}
