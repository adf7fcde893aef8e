// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mail

import (
	"html"
	"strings"
)

// Render substitutes {{key}} placeholders in a template with values.
// Every value is HTML-escaped before substitution, so submitted form
// content cannot inject markup into the notification email.
func Render(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{{"+key+"}}", html.EscapeString(value))
	}
	return out
}

// RenderSubject substitutes placeholders without HTML escaping; subjects
// are plain text headers, not markup.
func RenderSubject(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}
