// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// HeroContent is the singleton record for the landing hero section.
// GET always succeeds: if no row exists the API returns DefaultHero().
type HeroContent struct {
	Greeting            string    `json:"greeting"`
	Name                string    `json:"name"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	PrimaryButtonText   string    `json:"primaryButtonText"`
	PrimaryButtonLink   string    `json:"primaryButtonLink"`
	SecondaryButtonText string    `json:"secondaryButtonText"`
	SecondaryButtonLink string    `json:"secondaryButtonLink"`
	ImageURL            *string   `json:"imageUrl,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// DefaultHero returns the built-in hero content served before any admin edit.
func DefaultHero() HeroContent {
	return HeroContent{
		Greeting:            "Hi, my name is",
		Name:                "Your Name",
		Title:               "I build things for the web.",
		Description:         "I'm a software developer specializing in building modern web applications.",
		PrimaryButtonText:   "View Projects",
		PrimaryButtonLink:   "#projects",
		SecondaryButtonText: "Contact Me",
		SecondaryButtonLink: "#contact",
	}
}

// AboutContent is the singleton record for the about section.
type AboutContent struct {
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	ResumeURL *string   `json:"resumeUrl,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultAbout returns the built-in about content served before any admin edit.
func DefaultAbout() AboutContent {
	return AboutContent{
		Title: "About Me",
		Bio:   "Write a short introduction about yourself here.",
	}
}

// QuickLink is a single footer navigation link.
type QuickLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// FooterContent is the singleton record for the site footer.
// QuickLinks is a jsonb array.
type FooterContent struct {
	Description string      `json:"description"`
	Copyright   string      `json:"copyright"`
	Email       string      `json:"email"`
	QuickLinks  []QuickLink `json:"quickLinks"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// DefaultFooter returns the built-in footer content served before any admin edit.
func DefaultFooter() FooterContent {
	return FooterContent{
		Description: "Personal portfolio",
		Copyright:   "All rights reserved.",
		QuickLinks:  []QuickLink{},
	}
}
