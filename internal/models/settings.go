// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// MenuItem is one entry of the site navigation menu.
type MenuItem struct {
	Name     string `json:"name"`
	Href     string `json:"href"`
	External bool   `json:"external"`
	Order    int    `json:"order"`
}

// NavigationSettings is the singleton record controlling the site header.
// MenuItems is a jsonb array.
type NavigationSettings struct {
	BrandName     string     `json:"brandName"`
	Logo          *string    `json:"logo,omitempty"`
	ShowLogo      bool       `json:"showLogo"`
	MenuItems     []MenuItem `json:"menuItems"`
	CtaButtonText string     `json:"ctaButtonText"`
	CtaButtonLink string     `json:"ctaButtonLink"`
	ShowCtaButton bool       `json:"showCtaButton"`
	StickyHeader  bool       `json:"stickyHeader"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// DefaultNavigation returns the built-in navigation served before any admin edit.
func DefaultNavigation() NavigationSettings {
	return NavigationSettings{
		BrandName: "Portfolio",
		ShowLogo:  false,
		MenuItems: []MenuItem{
			{Name: "Home", Href: "#home", Order: 1},
			{Name: "About", Href: "#about", Order: 2},
			{Name: "Projects", Href: "#projects", Order: 3},
			{Name: "Contact", Href: "#contact", Order: 4},
		},
		CtaButtonText: "Get in touch",
		CtaButtonLink: "#contact",
		ShowCtaButton: true,
		StickyHeader:  true,
	}
}

// SeoSettings is the singleton record for site-wide SEO metadata.
// Keywords is a jsonb string array.
type SeoSettings struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Keywords          []string  `json:"keywords"`
	OgTitle           string    `json:"ogTitle"`
	OgDescription     string    `json:"ogDescription"`
	OgImage           string    `json:"ogImage"`
	GoogleAnalyticsID *string   `json:"googleAnalyticsId,omitempty"`
	StructuredData    *string   `json:"structuredData,omitempty"`
	RobotsMeta        string    `json:"robotsMeta"`
	CanonicalURL      *string   `json:"canonicalUrl,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// DefaultSeo returns the built-in SEO metadata served before any admin edit.
func DefaultSeo() SeoSettings {
	return SeoSettings{
		Title:       "Personal Portfolio",
		Description: "Personal portfolio and project showcase.",
		Keywords:    []string{"portfolio", "developer"},
		RobotsMeta:  "index, follow",
	}
}

// ContactSettings is the singleton record driving the contact form pipeline.
// CcEmails is a jsonb string array.
type ContactSettings struct {
	SuccessMessage    string    `json:"successMessage"`
	ErrorMessage      string    `json:"errorMessage"`
	EmailSubject      string    `json:"emailSubject"`
	EmailTemplate     string    `json:"emailTemplate"`
	AutoReplyEnabled  bool      `json:"autoReplyEnabled"`
	AutoReplySubject  string    `json:"autoReplySubject"`
	AutoReplyTemplate string    `json:"autoReplyTemplate"`
	AdminEmail        string    `json:"adminEmail"`
	CcEmails          []string  `json:"ccEmails"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// DefaultContactSettings returns the built-in contact configuration.
// The templates use {{placeholder}} substitution; submitted values are
// HTML-escaped before substitution.
func DefaultContactSettings() ContactSettings {
	return ContactSettings{
		SuccessMessage: "Thanks for reaching out! I'll get back to you soon.",
		ErrorMessage:   "Something went wrong. Please try again later.",
		EmailSubject:   "New contact form message: {{subject}}",
		EmailTemplate: "<h2>New message from {{name}}</h2>" +
			"<p><strong>Email:</strong> {{email}}</p>" +
			"<p><strong>Subject:</strong> {{subject}}</p>" +
			"<p>{{message}}</p>",
		AutoReplyEnabled: false,
		AutoReplySubject: "Thanks for your message",
		AutoReplyTemplate: "<p>Hi {{name}},</p>" +
			"<p>Thanks for getting in touch. I'll reply as soon as I can.</p>",
		CcEmails: []string{},
	}
}

// AnalyticsSettings is the singleton record controlling event tracking.
// CustomEvents is a jsonb string array of additional accepted event types.
type AnalyticsSettings struct {
	Enabled                 bool      `json:"enabled"`
	TrackPageViews          bool      `json:"trackPageViews"`
	TrackProjectClicks      bool      `json:"trackProjectClicks"`
	TrackContactSubmissions bool      `json:"trackContactSubmissions"`
	CustomEvents            []string  `json:"customEvents"`
	RetentionDays           int       `json:"retentionDays"`
	ExcludeAdminViews       bool      `json:"excludeAdminViews"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// DefaultAnalyticsSettings returns the built-in tracking configuration.
func DefaultAnalyticsSettings() AnalyticsSettings {
	return AnalyticsSettings{
		Enabled:                 true,
		TrackPageViews:          true,
		TrackProjectClicks:      true,
		TrackContactSubmissions: true,
		CustomEvents:            []string{},
		RetentionDays:           90,
		ExcludeAdminViews:       true,
	}
}

// Accepts reports whether the given event type is currently tracked.
func (s AnalyticsSettings) Accepts(eventType string) bool {
	if !s.Enabled {
		return false
	}
	switch eventType {
	case EventTypePageView:
		return s.TrackPageViews
	case EventTypeProjectClick:
		return s.TrackProjectClicks
	case EventTypeContactSubmit:
		return s.TrackContactSubmissions
	}
	for _, custom := range s.CustomEvents {
		if custom == eventType {
			return true
		}
	}
	return false
}
