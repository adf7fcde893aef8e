// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"foliocms/internal/models"
)

// ExperienceStore handles all experience-related database operations.
type ExperienceStore struct {
	db *sql.DB
}

// NewExperienceStore creates a new ExperienceStore with the given database connection.
func NewExperienceStore(db *sql.DB) *ExperienceStore {
	return &ExperienceStore{db: db}
}

const experienceColumns = `id, title, company, location, start_date, end_date, description, technologies, type, featured, display_order, created_at, updated_at`

func scanExperience(row interface{ Scan(...any) error }) (*models.Experience, error) {
	e := &models.Experience{}
	var desc, techs []byte
	err := row.Scan(
		&e.ID, &e.Title, &e.Company, &e.Location, &e.StartDate, &e.EndDate,
		&desc, &techs, &e.Type, &e.Featured, &e.Order, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if e.Description, err = decodeStrings(desc); err != nil {
		return nil, err
	}
	if e.Technologies, err = decodeStrings(techs); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns all experiences grouped by type and ordered for display.
func (s *ExperienceStore) List() ([]models.Experience, error) {
	rows, err := s.db.Query(`
		SELECT ` + experienceColumns + `
		FROM experiences ORDER BY type ASC, display_order ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	experiences := []models.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		experiences = append(experiences, *e)
	}
	return experiences, rows.Err()
}

// FindByID retrieves an experience by its UUID. Returns nil if not found.
func (s *ExperienceStore) FindByID(id uuid.UUID) (*models.Experience, error) {
	e, err := scanExperience(s.db.QueryRow(`
		SELECT `+experienceColumns+`
		FROM experiences WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find experience by id: %w", err)
	}
	return e, nil
}

// Create inserts a new experience and returns it with generated fields.
func (s *ExperienceStore) Create(e *models.Experience) (*models.Experience, error) {
	desc, err := encodeJSON(e.Description)
	if err != nil {
		return nil, err
	}
	techs, err := encodeJSON(e.Technologies)
	if err != nil {
		return nil, err
	}

	// display_order 0 or below appends within the experience type.
	created, err := scanExperience(s.db.QueryRow(`
		INSERT INTO experiences (title, company, location, start_date, end_date, description, technologies, type, featured, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			CASE WHEN $10::int > 0 THEN $10::int
			     ELSE (SELECT COALESCE(MAX(display_order), 0) + 1 FROM experiences WHERE type = $8) END)
		RETURNING `+experienceColumns+`
	`, e.Title, e.Company, e.Location, e.StartDate, e.EndDate, desc, techs, e.Type, e.Featured, e.Order))
	if err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return created, nil
}

// Update replaces all editable fields of an experience. Returns nil if
// the experience does not exist.
func (s *ExperienceStore) Update(id uuid.UUID, e *models.Experience) (*models.Experience, error) {
	desc, err := encodeJSON(e.Description)
	if err != nil {
		return nil, err
	}
	techs, err := encodeJSON(e.Technologies)
	if err != nil {
		return nil, err
	}

	updated, err := scanExperience(s.db.QueryRow(`
		UPDATE experiences
		SET title = $1, company = $2, location = $3, start_date = $4, end_date = $5,
		    description = $6, technologies = $7, type = $8, featured = $9,
		    display_order = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING `+experienceColumns+`
	`, e.Title, e.Company, e.Location, e.StartDate, e.EndDate, desc, techs, e.Type, e.Featured, e.Order, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	return updated, nil
}

// Delete removes an experience by ID. Returns false if no row was deleted.
func (s *ExperienceStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete experience: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete experience: %w", err)
	}
	return n > 0, nil
}

// Reorder applies a batch of display-order assignments in a single
// transaction: either every row is updated or none are. Unknown IDs
// fail the whole batch.
func (s *ExperienceStore) Reorder(orders []models.ExperienceOrder) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder begin: %w", err)
	}
	defer tx.Rollback()

	for _, o := range orders {
		res, err := tx.Exec(`
			UPDATE experiences SET display_order = $1, updated_at = NOW() WHERE id = $2
		`, o.Order, o.ID)
		if err != nil {
			return fmt.Errorf("reorder update: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reorder update: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("reorder: experience %s: %w", o.ID, ErrNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reorder commit: %w", err)
	}
	return nil
}
