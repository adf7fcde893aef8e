// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"foliocms/internal/models"
)

// Validation limits for content and contact fields.
const (
	maxTitleLen   = 300
	maxNameLen    = 200
	maxEmailLen   = 320
	maxSubjectLen = 300
	maxMessageLen = 10_000
	maxURLLen     = 2_000
)

// validateProject checks project inputs and returns the first error found.
func validateProject(p *models.Project) string {
	if strings.TrimSpace(p.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(p.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if p.GithubURL != nil && utf8.RuneCountInString(*p.GithubURL) > maxURLLen {
		return "GitHub URL is too long."
	}
	if p.LiveURL != nil && utf8.RuneCountInString(*p.LiveURL) > maxURLLen {
		return "Live URL is too long."
	}
	return ""
}

// validateExperience checks experience inputs and returns the first error found.
func validateExperience(e *models.Experience) string {
	if strings.TrimSpace(e.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(e.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if strings.TrimSpace(e.StartDate) == "" {
		return "Start date is required."
	}
	if !e.Type.Valid() {
		return "Type must be work or education."
	}
	return ""
}

// validateSkill checks skill inputs and returns the first error found.
func validateSkill(s *models.Skill) string {
	if strings.TrimSpace(s.Name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(s.Name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if !s.Category.Valid() {
		return "Category must be language, framework, tool or other."
	}
	if !s.Level.Valid() {
		return "Level must be beginner, intermediate, advanced or expert."
	}
	if !s.Type.Valid() {
		return "Type must be main, workflow or soft."
	}
	return ""
}

// validateTool checks tool and soft skill inputs.
func validateTool(t *models.Tool) string {
	if strings.TrimSpace(t.Name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(t.Name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	return ""
}

// validateContact checks contact form inputs and returns the first error found.
func validateContact(name, email, subject, message string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if !validEmail(email) {
		return "A valid email address is required."
	}
	if strings.TrimSpace(subject) == "" {
		return "Subject is required."
	}
	if utf8.RuneCountInString(subject) > maxSubjectLen {
		return "Subject is too long (max 300 characters)."
	}
	if strings.TrimSpace(message) == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}

// validEmail does a structural check: one @, a non-empty local part, and
// a domain with at least one dot. Full RFC validation is the mail
// server's job.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || utf8.RuneCountInString(email) > maxEmailLen {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t\r\n")
}
