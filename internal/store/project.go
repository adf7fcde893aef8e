// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all portfolio
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"foliocms/internal/models"
)

// ProjectStore handles all project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, title, description, image, technologies, github_url, live_url, featured, display_order, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	var techs []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, &techs,
		&p.GithubURL, &p.LiveURL, &p.Featured, &p.Order, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Technologies, err = decodeStrings(techs); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all projects ordered for display.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT ` + projectColumns + `
		FROM projects ORDER BY display_order ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(`
		SELECT `+projectColumns+`
		FROM projects WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with generated fields.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	techs, err := encodeJSON(p.Technologies)
	if err != nil {
		return nil, err
	}

	// display_order 0 or below means "append": assign the next free slot.
	created, err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (title, description, image, technologies, github_url, live_url, featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			CASE WHEN $8::int > 0 THEN $8::int
			     ELSE (SELECT COALESCE(MAX(display_order), 0) + 1 FROM projects) END)
		RETURNING `+projectColumns+`
	`, p.Title, p.Description, p.Image, techs, p.GithubURL, p.LiveURL, p.Featured, p.Order))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// Update replaces all editable fields of a project. Returns nil if the
// project does not exist.
func (s *ProjectStore) Update(id uuid.UUID, p *models.Project) (*models.Project, error) {
	techs, err := encodeJSON(p.Technologies)
	if err != nil {
		return nil, err
	}

	updated, err := scanProject(s.db.QueryRow(`
		UPDATE projects
		SET title = $1, description = $2, image = $3, technologies = $4,
		    github_url = $5, live_url = $6, featured = $7, display_order = $8,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING `+projectColumns+`
	`, p.Title, p.Description, p.Image, techs, p.GithubURL, p.LiveURL, p.Featured, p.Order, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return updated, nil
}

// Delete removes a project by ID. Returns false if no row was deleted.
func (s *ProjectStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return n > 0, nil
}

// TechnologyUsage aggregates how many projects use each technology and
// the share of the project list that represents.
func (s *ProjectStore) TechnologyUsage() ([]models.TechnologyUsage, error) {
	projects, err := s.List()
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	order := []string{}
	for _, p := range projects {
		for _, tech := range p.Technologies {
			if _, seen := counts[tech]; !seen {
				order = append(order, tech)
			}
			counts[tech]++
		}
	}

	usage := []models.TechnologyUsage{}
	total := len(projects)
	for _, tech := range order {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[tech]) / float64(total) * 100
		}
		usage = append(usage, models.TechnologyUsage{
			Technology: tech,
			Count:      counts[tech],
			Percentage: pct,
		})
	}
	return usage, nil
}
