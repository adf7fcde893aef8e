// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"foliocms/internal/models"
)

// SettingsStore handles the navigation, SEO, contact and analytics
// singleton rows. Like site content, each table holds one row at id = 1
// and writes are fixed-key upserts.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a new SettingsStore with the given database connection.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// GetNavigation returns the navigation row, or nil when none has been saved yet.
func (s *SettingsStore) GetNavigation() (*models.NavigationSettings, error) {
	n := &models.NavigationSettings{}
	var items []byte
	err := s.db.QueryRow(`
		SELECT brand_name, logo, show_logo, menu_items,
		       cta_button_text, cta_button_link, show_cta_button, sticky_header, updated_at
		FROM navigation_settings WHERE id = 1
	`).Scan(
		&n.BrandName, &n.Logo, &n.ShowLogo, &items,
		&n.CtaButtonText, &n.CtaButtonLink, &n.ShowCtaButton, &n.StickyHeader, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get navigation: %w", err)
	}
	if err := decodeInto(items, &n.MenuItems); err != nil {
		return nil, fmt.Errorf("get navigation: %w", err)
	}
	if n.MenuItems == nil {
		n.MenuItems = []models.MenuItem{}
	}
	return n, nil
}

// UpsertNavigation saves the navigation row, creating it on first write.
func (s *SettingsStore) UpsertNavigation(n *models.NavigationSettings) (*models.NavigationSettings, error) {
	if n.MenuItems == nil {
		n.MenuItems = []models.MenuItem{}
	}
	items, err := encodeJSON(n.MenuItems)
	if err != nil {
		return nil, err
	}

	saved := &models.NavigationSettings{}
	var rawItems []byte
	err = s.db.QueryRow(`
		INSERT INTO navigation_settings (id, brand_name, logo, show_logo, menu_items,
			cta_button_text, cta_button_link, show_cta_button, sticky_header, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			brand_name = EXCLUDED.brand_name,
			logo = EXCLUDED.logo,
			show_logo = EXCLUDED.show_logo,
			menu_items = EXCLUDED.menu_items,
			cta_button_text = EXCLUDED.cta_button_text,
			cta_button_link = EXCLUDED.cta_button_link,
			show_cta_button = EXCLUDED.show_cta_button,
			sticky_header = EXCLUDED.sticky_header,
			updated_at = NOW()
		RETURNING brand_name, logo, show_logo, menu_items,
			cta_button_text, cta_button_link, show_cta_button, sticky_header, updated_at
	`, n.BrandName, n.Logo, n.ShowLogo, items,
		n.CtaButtonText, n.CtaButtonLink, n.ShowCtaButton, n.StickyHeader,
	).Scan(
		&saved.BrandName, &saved.Logo, &saved.ShowLogo, &rawItems,
		&saved.CtaButtonText, &saved.CtaButtonLink, &saved.ShowCtaButton, &saved.StickyHeader, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert navigation: %w", err)
	}
	if err := decodeInto(rawItems, &saved.MenuItems); err != nil {
		return nil, fmt.Errorf("upsert navigation: %w", err)
	}
	if saved.MenuItems == nil {
		saved.MenuItems = []models.MenuItem{}
	}
	return saved, nil
}

// GetSeo returns the SEO row, or nil when none has been saved yet.
func (s *SettingsStore) GetSeo() (*models.SeoSettings, error) {
	o := &models.SeoSettings{}
	var keywords []byte
	err := s.db.QueryRow(`
		SELECT title, description, keywords, og_title, og_description, og_image,
		       google_analytics_id, structured_data, robots_meta, canonical_url, updated_at
		FROM seo_settings WHERE id = 1
	`).Scan(
		&o.Title, &o.Description, &keywords, &o.OgTitle, &o.OgDescription, &o.OgImage,
		&o.GoogleAnalyticsID, &o.StructuredData, &o.RobotsMeta, &o.CanonicalURL, &o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get seo: %w", err)
	}
	if o.Keywords, err = decodeStrings(keywords); err != nil {
		return nil, fmt.Errorf("get seo: %w", err)
	}
	return o, nil
}

// UpsertSeo saves the SEO row, creating it on first write.
func (s *SettingsStore) UpsertSeo(o *models.SeoSettings) (*models.SeoSettings, error) {
	keywords, err := encodeJSON(o.Keywords)
	if err != nil {
		return nil, err
	}

	saved := &models.SeoSettings{}
	var rawKeywords []byte
	err = s.db.QueryRow(`
		INSERT INTO seo_settings (id, title, description, keywords, og_title, og_description, og_image,
			google_analytics_id, structured_data, robots_meta, canonical_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			keywords = EXCLUDED.keywords,
			og_title = EXCLUDED.og_title,
			og_description = EXCLUDED.og_description,
			og_image = EXCLUDED.og_image,
			google_analytics_id = EXCLUDED.google_analytics_id,
			structured_data = EXCLUDED.structured_data,
			robots_meta = EXCLUDED.robots_meta,
			canonical_url = EXCLUDED.canonical_url,
			updated_at = NOW()
		RETURNING title, description, keywords, og_title, og_description, og_image,
			google_analytics_id, structured_data, robots_meta, canonical_url, updated_at
	`, o.Title, o.Description, keywords, o.OgTitle, o.OgDescription, o.OgImage,
		o.GoogleAnalyticsID, o.StructuredData, o.RobotsMeta, o.CanonicalURL,
	).Scan(
		&saved.Title, &saved.Description, &rawKeywords, &saved.OgTitle, &saved.OgDescription, &saved.OgImage,
		&saved.GoogleAnalyticsID, &saved.StructuredData, &saved.RobotsMeta, &saved.CanonicalURL, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert seo: %w", err)
	}
	if saved.Keywords, err = decodeStrings(rawKeywords); err != nil {
		return nil, fmt.Errorf("upsert seo: %w", err)
	}
	return saved, nil
}

// GetContact returns the contact settings row, or nil when none has been saved yet.
func (s *SettingsStore) GetContact() (*models.ContactSettings, error) {
	c := &models.ContactSettings{}
	var cc []byte
	err := s.db.QueryRow(`
		SELECT success_message, error_message, email_subject, email_template,
		       auto_reply_enabled, auto_reply_subject, auto_reply_template,
		       admin_email, cc_emails, updated_at
		FROM contact_settings WHERE id = 1
	`).Scan(
		&c.SuccessMessage, &c.ErrorMessage, &c.EmailSubject, &c.EmailTemplate,
		&c.AutoReplyEnabled, &c.AutoReplySubject, &c.AutoReplyTemplate,
		&c.AdminEmail, &cc, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact settings: %w", err)
	}
	if c.CcEmails, err = decodeStrings(cc); err != nil {
		return nil, fmt.Errorf("get contact settings: %w", err)
	}
	return c, nil
}

// UpsertContact saves the contact settings row, creating it on first write.
func (s *SettingsStore) UpsertContact(c *models.ContactSettings) (*models.ContactSettings, error) {
	cc, err := encodeJSON(c.CcEmails)
	if err != nil {
		return nil, err
	}

	saved := &models.ContactSettings{}
	var rawCc []byte
	err = s.db.QueryRow(`
		INSERT INTO contact_settings (id, success_message, error_message, email_subject, email_template,
			auto_reply_enabled, auto_reply_subject, auto_reply_template, admin_email, cc_emails, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			success_message = EXCLUDED.success_message,
			error_message = EXCLUDED.error_message,
			email_subject = EXCLUDED.email_subject,
			email_template = EXCLUDED.email_template,
			auto_reply_enabled = EXCLUDED.auto_reply_enabled,
			auto_reply_subject = EXCLUDED.auto_reply_subject,
			auto_reply_template = EXCLUDED.auto_reply_template,
			admin_email = EXCLUDED.admin_email,
			cc_emails = EXCLUDED.cc_emails,
			updated_at = NOW()
		RETURNING success_message, error_message, email_subject, email_template,
			auto_reply_enabled, auto_reply_subject, auto_reply_template,
			admin_email, cc_emails, updated_at
	`, c.SuccessMessage, c.ErrorMessage, c.EmailSubject, c.EmailTemplate,
		c.AutoReplyEnabled, c.AutoReplySubject, c.AutoReplyTemplate, c.AdminEmail, cc,
	).Scan(
		&saved.SuccessMessage, &saved.ErrorMessage, &saved.EmailSubject, &saved.EmailTemplate,
		&saved.AutoReplyEnabled, &saved.AutoReplySubject, &saved.AutoReplyTemplate,
		&saved.AdminEmail, &rawCc, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert contact settings: %w", err)
	}
	if saved.CcEmails, err = decodeStrings(rawCc); err != nil {
		return nil, fmt.Errorf("upsert contact settings: %w", err)
	}
	return saved, nil
}

// GetAnalytics returns the analytics settings row, or nil when none has been saved yet.
func (s *SettingsStore) GetAnalytics() (*models.AnalyticsSettings, error) {
	a := &models.AnalyticsSettings{}
	var events []byte
	err := s.db.QueryRow(`
		SELECT enabled, track_page_views, track_project_clicks, track_contact_submissions,
		       custom_events, retention_days, exclude_admin_views, updated_at
		FROM analytics_settings WHERE id = 1
	`).Scan(
		&a.Enabled, &a.TrackPageViews, &a.TrackProjectClicks, &a.TrackContactSubmissions,
		&events, &a.RetentionDays, &a.ExcludeAdminViews, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get analytics settings: %w", err)
	}
	if a.CustomEvents, err = decodeStrings(events); err != nil {
		return nil, fmt.Errorf("get analytics settings: %w", err)
	}
	return a, nil
}

// UpsertAnalytics saves the analytics settings row, creating it on first write.
func (s *SettingsStore) UpsertAnalytics(a *models.AnalyticsSettings) (*models.AnalyticsSettings, error) {
	events, err := encodeJSON(a.CustomEvents)
	if err != nil {
		return nil, err
	}

	saved := &models.AnalyticsSettings{}
	var rawEvents []byte
	err = s.db.QueryRow(`
		INSERT INTO analytics_settings (id, enabled, track_page_views, track_project_clicks,
			track_contact_submissions, custom_events, retention_days, exclude_admin_views, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			track_page_views = EXCLUDED.track_page_views,
			track_project_clicks = EXCLUDED.track_project_clicks,
			track_contact_submissions = EXCLUDED.track_contact_submissions,
			custom_events = EXCLUDED.custom_events,
			retention_days = EXCLUDED.retention_days,
			exclude_admin_views = EXCLUDED.exclude_admin_views,
			updated_at = NOW()
		RETURNING enabled, track_page_views, track_project_clicks, track_contact_submissions,
			custom_events, retention_days, exclude_admin_views, updated_at
	`, a.Enabled, a.TrackPageViews, a.TrackProjectClicks, a.TrackContactSubmissions,
		events, a.RetentionDays, a.ExcludeAdminViews,
	).Scan(
		&saved.Enabled, &saved.TrackPageViews, &saved.TrackProjectClicks, &saved.TrackContactSubmissions,
		&rawEvents, &saved.RetentionDays, &saved.ExcludeAdminViews, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert analytics settings: %w", err)
	}
	if saved.CustomEvents, err = decodeStrings(rawEvents); err != nil {
		return nil, fmt.Errorf("upsert analytics settings: %w", err)
	}
	return saved, nil
}
