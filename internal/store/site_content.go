// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"foliocms/internal/models"
)

// SiteContentStore handles the hero, about and footer singleton rows.
// Each table holds at most one row pinned to id = 1; writes are upserts
// on that fixed key, so the first save and every later save take the
// same path.
type SiteContentStore struct {
	db *sql.DB
}

// NewSiteContentStore creates a new SiteContentStore with the given database connection.
func NewSiteContentStore(db *sql.DB) *SiteContentStore {
	return &SiteContentStore{db: db}
}

// GetHero returns the hero row, or nil when none has been saved yet.
func (s *SiteContentStore) GetHero() (*models.HeroContent, error) {
	h := &models.HeroContent{}
	err := s.db.QueryRow(`
		SELECT greeting, name, title, description,
		       primary_button_text, primary_button_link,
		       secondary_button_text, secondary_button_link,
		       image_url, updated_at
		FROM hero_content WHERE id = 1
	`).Scan(
		&h.Greeting, &h.Name, &h.Title, &h.Description,
		&h.PrimaryButtonText, &h.PrimaryButtonLink,
		&h.SecondaryButtonText, &h.SecondaryButtonLink,
		&h.ImageURL, &h.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hero: %w", err)
	}
	return h, nil
}

// UpsertHero saves the hero row, creating it on first write.
func (s *SiteContentStore) UpsertHero(h *models.HeroContent) (*models.HeroContent, error) {
	saved := &models.HeroContent{}
	err := s.db.QueryRow(`
		INSERT INTO hero_content (id, greeting, name, title, description,
			primary_button_text, primary_button_link,
			secondary_button_text, secondary_button_link, image_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			greeting = EXCLUDED.greeting,
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			primary_button_text = EXCLUDED.primary_button_text,
			primary_button_link = EXCLUDED.primary_button_link,
			secondary_button_text = EXCLUDED.secondary_button_text,
			secondary_button_link = EXCLUDED.secondary_button_link,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
		RETURNING greeting, name, title, description,
			primary_button_text, primary_button_link,
			secondary_button_text, secondary_button_link, image_url, updated_at
	`, h.Greeting, h.Name, h.Title, h.Description,
		h.PrimaryButtonText, h.PrimaryButtonLink,
		h.SecondaryButtonText, h.SecondaryButtonLink, h.ImageURL,
	).Scan(
		&saved.Greeting, &saved.Name, &saved.Title, &saved.Description,
		&saved.PrimaryButtonText, &saved.PrimaryButtonLink,
		&saved.SecondaryButtonText, &saved.SecondaryButtonLink,
		&saved.ImageURL, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert hero: %w", err)
	}
	return saved, nil
}

// GetAbout returns the about row, or nil when none has been saved yet.
func (s *SiteContentStore) GetAbout() (*models.AboutContent, error) {
	a := &models.AboutContent{}
	err := s.db.QueryRow(`
		SELECT title, bio, image_url, resume_url, updated_at
		FROM about_content WHERE id = 1
	`).Scan(&a.Title, &a.Bio, &a.ImageURL, &a.ResumeURL, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}
	return a, nil
}

// UpsertAbout saves the about row, creating it on first write.
func (s *SiteContentStore) UpsertAbout(a *models.AboutContent) (*models.AboutContent, error) {
	saved := &models.AboutContent{}
	err := s.db.QueryRow(`
		INSERT INTO about_content (id, title, bio, image_url, resume_url, updated_at)
		VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			image_url = EXCLUDED.image_url,
			resume_url = EXCLUDED.resume_url,
			updated_at = NOW()
		RETURNING title, bio, image_url, resume_url, updated_at
	`, a.Title, a.Bio, a.ImageURL, a.ResumeURL,
	).Scan(&saved.Title, &saved.Bio, &saved.ImageURL, &saved.ResumeURL, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert about: %w", err)
	}
	return saved, nil
}

// GetFooter returns the footer row, or nil when none has been saved yet.
func (s *SiteContentStore) GetFooter() (*models.FooterContent, error) {
	f := &models.FooterContent{}
	var links []byte
	err := s.db.QueryRow(`
		SELECT description, copyright, email, quick_links, updated_at
		FROM footer_content WHERE id = 1
	`).Scan(&f.Description, &f.Copyright, &f.Email, &links, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get footer: %w", err)
	}
	if err := decodeInto(links, &f.QuickLinks); err != nil {
		return nil, fmt.Errorf("get footer: %w", err)
	}
	if f.QuickLinks == nil {
		f.QuickLinks = []models.QuickLink{}
	}
	return f, nil
}

// UpsertFooter saves the footer row, creating it on first write.
func (s *SiteContentStore) UpsertFooter(f *models.FooterContent) (*models.FooterContent, error) {
	if f.QuickLinks == nil {
		f.QuickLinks = []models.QuickLink{}
	}
	links, err := encodeJSON(f.QuickLinks)
	if err != nil {
		return nil, err
	}

	saved := &models.FooterContent{}
	var rawLinks []byte
	err = s.db.QueryRow(`
		INSERT INTO footer_content (id, description, copyright, email, quick_links, updated_at)
		VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			description = EXCLUDED.description,
			copyright = EXCLUDED.copyright,
			email = EXCLUDED.email,
			quick_links = EXCLUDED.quick_links,
			updated_at = NOW()
		RETURNING description, copyright, email, quick_links, updated_at
	`, f.Description, f.Copyright, f.Email, links,
	).Scan(&saved.Description, &saved.Copyright, &saved.Email, &rawLinks, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert footer: %w", err)
	}
	if err := decodeInto(rawLinks, &saved.QuickLinks); err != nil {
		return nil, fmt.Errorf("upsert footer: %w", err)
	}
	if saved.QuickLinks == nil {
		saved.QuickLinks = []models.QuickLink{}
	}
	return saved, nil
}

// decodeInto unmarshals a jsonb column into dst, leaving dst untouched
// for null input.
func decodeInto(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode jsonb: %w", err)
	}
	return nil
}
