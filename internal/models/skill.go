// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategory classifies a skill by the kind of technology it covers.
type SkillCategory string

const (
	SkillCategoryLanguage  SkillCategory = "language"
	SkillCategoryFramework SkillCategory = "framework"
	SkillCategoryTool      SkillCategory = "tool"
	SkillCategoryOther     SkillCategory = "other"
)

// Valid reports whether the category is one of the known values.
func (c SkillCategory) Valid() bool {
	switch c {
	case SkillCategoryLanguage, SkillCategoryFramework, SkillCategoryTool, SkillCategoryOther:
		return true
	}
	return false
}

// SkillLevel is a self-assessed proficiency level.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

// Valid reports whether the level is one of the known values.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}

// SkillType controls which section of the site a skill appears in.
type SkillType string

const (
	SkillTypeMain     SkillType = "main"
	SkillTypeWorkflow SkillType = "workflow"
	SkillTypeSoft     SkillType = "soft"
)

// Valid reports whether the type is one of the known values.
func (t SkillType) Valid() bool {
	return t == SkillTypeMain || t == SkillTypeWorkflow || t == SkillTypeSoft
}

// Skill represents a technology or competency listed on the site.
type Skill struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Category  SkillCategory `json:"category"`
	Level     SkillLevel    `json:"level"`
	Icon      string        `json:"icon"`
	Type      SkillType     `json:"type"`
	Order     int           `json:"order"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Tool represents an entry in the tools section. Tools and soft skills
// share the same shape but live in separate tables.
type Tool struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Icon        string    `json:"icon"`
	Description *string   `json:"description,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SoftSkill is the tools sibling entity for interpersonal skills.
type SoftSkill = Tool
