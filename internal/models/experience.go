// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceType distinguishes work positions from education entries in the
// unified experiences table.
type ExperienceType string

const (
	ExperienceTypeWork      ExperienceType = "work"
	ExperienceTypeEducation ExperienceType = "education"
)

// Valid reports whether the type is one of the known values.
func (t ExperienceType) Valid() bool {
	return t == ExperienceTypeWork || t == ExperienceTypeEducation
}

// Experience represents a work or education timeline entry.
// A nil EndDate means the position is ongoing. Description and
// Technologies are jsonb string arrays.
type Experience struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Company      string         `json:"company"`
	Location     string         `json:"location"`
	StartDate    string         `json:"startDate"`
	EndDate      *string        `json:"endDate,omitempty"`
	Description  []string       `json:"description"`
	Technologies []string       `json:"technologies"`
	Type         ExperienceType `json:"type"`
	Featured     bool           `json:"featured"`
	Order        int            `json:"order"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// ExperienceOrder is one element of a reorder batch: it assigns a new
// display order to an existing experience.
type ExperienceOrder struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
}
