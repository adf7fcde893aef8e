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

// SkillStore handles all skill-related database operations.
type SkillStore struct {
	db *sql.DB
}

// NewSkillStore creates a new SkillStore with the given database connection.
func NewSkillStore(db *sql.DB) *SkillStore {
	return &SkillStore{db: db}
}

const skillColumns = `id, name, category, level, icon, type, display_order, created_at, updated_at`

func scanSkill(row interface{ Scan(...any) error }) (*models.Skill, error) {
	sk := &models.Skill{}
	err := row.Scan(
		&sk.ID, &sk.Name, &sk.Category, &sk.Level, &sk.Icon, &sk.Type,
		&sk.Order, &sk.CreatedAt, &sk.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sk, nil
}

// List returns all skills grouped by type and ordered for display.
func (s *SkillStore) List() ([]models.Skill, error) {
	rows, err := s.db.Query(`
		SELECT ` + skillColumns + `
		FROM skills ORDER BY type ASC, display_order ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, *sk)
	}
	return skills, rows.Err()
}

// FindByID retrieves a skill by its UUID. Returns nil if not found.
func (s *SkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	sk, err := scanSkill(s.db.QueryRow(`
		SELECT `+skillColumns+`
		FROM skills WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find skill by id: %w", err)
	}
	return sk, nil
}

// Create inserts a new skill and returns it with generated fields.
func (s *SkillStore) Create(sk *models.Skill) (*models.Skill, error) {
	// display_order 0 or below appends within the skill type.
	created, err := scanSkill(s.db.QueryRow(`
		INSERT INTO skills (name, category, level, icon, type, display_order)
		VALUES ($1, $2, $3, $4, $5,
			CASE WHEN $6::int > 0 THEN $6::int
			     ELSE (SELECT COALESCE(MAX(display_order), 0) + 1 FROM skills WHERE type = $5) END)
		RETURNING `+skillColumns+`
	`, sk.Name, sk.Category, sk.Level, sk.Icon, sk.Type, sk.Order))
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return created, nil
}

// Update replaces all editable fields of a skill. Returns nil if the
// skill does not exist.
func (s *SkillStore) Update(id uuid.UUID, sk *models.Skill) (*models.Skill, error) {
	updated, err := scanSkill(s.db.QueryRow(`
		UPDATE skills
		SET name = $1, category = $2, level = $3, icon = $4, type = $5,
		    display_order = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+skillColumns+`
	`, sk.Name, sk.Category, sk.Level, sk.Icon, sk.Type, sk.Order, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return updated, nil
}

// Delete removes a skill by ID. Returns false if no row was deleted.
func (s *SkillStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete skill: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete skill: %w", err)
	}
	return n > 0, nil
}
