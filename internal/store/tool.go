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

// ToolStore handles database operations for the tools and soft_skills
// tables. The two tables share a shape, so one store serves both,
// parameterized by table name.
type ToolStore struct {
	db    *sql.DB
	table string
}

// NewToolStore creates a store over the tools table.
func NewToolStore(db *sql.DB) *ToolStore {
	return &ToolStore{db: db, table: "tools"}
}

// NewSoftSkillStore creates a store over the soft_skills table.
func NewSoftSkillStore(db *sql.DB) *ToolStore {
	return &ToolStore{db: db, table: "soft_skills"}
}

const toolColumns = `id, name, category, level, icon, description, display_order, created_at, updated_at`

func scanTool(row interface{ Scan(...any) error }) (*models.Tool, error) {
	t := &models.Tool{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Category, &t.Level, &t.Icon, &t.Description,
		&t.Order, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all rows ordered for display.
func (s *ToolStore) List() ([]models.Tool, error) {
	rows, err := s.db.Query(`
		SELECT ` + toolColumns + `
		FROM ` + s.table + ` ORDER BY display_order ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}
	defer rows.Close()

	tools := []models.Tool{}
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}

// FindByID retrieves a row by its UUID. Returns nil if not found.
func (s *ToolStore) FindByID(id uuid.UUID) (*models.Tool, error) {
	t, err := scanTool(s.db.QueryRow(`
		SELECT `+toolColumns+`
		FROM `+s.table+` WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", s.table, err)
	}
	return t, nil
}

// Create inserts a new row and returns it with generated fields.
func (s *ToolStore) Create(t *models.Tool) (*models.Tool, error) {
	// display_order 0 or below means "append": assign the next free slot.
	created, err := scanTool(s.db.QueryRow(`
		INSERT INTO `+s.table+` (name, category, level, icon, description, display_order)
		VALUES ($1, $2, $3, $4, $5,
			CASE WHEN $6::int > 0 THEN $6::int
			     ELSE (SELECT COALESCE(MAX(display_order), 0) + 1 FROM `+s.table+`) END)
		RETURNING `+toolColumns+`
	`, t.Name, t.Category, t.Level, t.Icon, t.Description, t.Order))
	if err != nil {
		return nil, fmt.Errorf("create in %s: %w", s.table, err)
	}
	return created, nil
}

// Update replaces all editable fields of a row. Returns nil if the row
// does not exist.
func (s *ToolStore) Update(id uuid.UUID, t *models.Tool) (*models.Tool, error) {
	updated, err := scanTool(s.db.QueryRow(`
		UPDATE `+s.table+`
		SET name = $1, category = $2, level = $3, icon = $4, description = $5,
		    display_order = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+toolColumns+`
	`, t.Name, t.Category, t.Level, t.Icon, t.Description, t.Order, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update in %s: %w", s.table, err)
	}
	return updated, nil
}

// Delete removes a row by ID. Returns false if no row was deleted.
func (s *ToolStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM `+s.table+` WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", s.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", s.table, err)
	}
	return n > 0, nil
}
