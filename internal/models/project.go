// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project shown on the public site.
// Technologies is stored as a jsonb column and always serializes as a
// JSON array, never as an encoded string.
type Project struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	Technologies []string   `json:"technologies"`
	GithubURL    *string    `json:"githubUrl,omitempty"`
	LiveURL      *string    `json:"liveUrl,omitempty"`
	Featured     bool       `json:"featured"`
	Order        int        `json:"order"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
